package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := decode(defaultRotaryYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults drifted from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
storage:
  path: /tmp/rotary-test.db
solver:
  timeout: 30s
log:
  level: debug
`)

	cfg, err := load(path, nil)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg.Storage.Path != "/tmp/rotary-test.db" {
		t.Errorf("storage.path not applied: %q", cfg.Storage.Path)
	}
	if cfg.Solver.Timeout != 30*time.Second {
		t.Errorf("solver.timeout not applied: %s", cfg.Solver.Timeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level not applied: %q", cfg.Log.Level)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Storage.Driver != "sqlite" || cfg.Solver.PollInterval != 1024 || cfg.Levels.Dir != "./levels" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := load(filepath.Join(dir, "missing.yaml"), nil); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := writeFile(t, dir, "bad.yaml", "storage: [1, 2")
	if _, err := load(bad, nil); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := writeFile(t, dir, "invalid.yaml", "storage:\n  driver: oracle\n")
	if _, err := load(invalid, nil); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.yaml", "log: {level: loud}")
	first := writeFile(t, dir, "first.yaml", "levels: {dir: /first}")
	second := writeFile(t, dir, "second.yaml", "levels: {dir: /second}")
	missing := filepath.Join(dir, "missing.yaml")

	cfg, err := load("", []string{missing, broken, first, second})
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg.Levels.Dir != "/first" {
		t.Errorf("expected first valid candidate to win, got %q", cfg.Levels.Dir)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	cfg, err := load("", []string{filepath.Join(t.TempDir(), "missing.yaml")})
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"postgres", func(c *Config) { c.Storage.Driver = "postgres" }, true},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "mysql" }, false},
		{"sqlite without path", func(c *Config) { c.Storage.Path = "" }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, false},
		{"negative poll", func(c *Config) { c.Solver.PollInterval = -1 }, false},
		{"negative timeout", func(c *Config) { c.Solver.Timeout = -time.Second }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("expected error")
			}
		})
	}
}
