package config

import (
	_ "embed"
)

//go:embed defaults/rotary.yaml
var defaultRotaryYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   "~/.rotary/solutions.db",
			Postgres: PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "rotary",
				Database: "rotary",
				SSLMode:  "disable",
			},
		},
		Levels: LevelsConfig{
			Dir: "./levels",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Solver: SolverConfig{
			PollInterval: 1024,
		},
	}
}
