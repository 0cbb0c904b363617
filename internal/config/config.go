// Package config provides YAML-based configuration loading for Rotary.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for the rotary command.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Levels  LevelsConfig  `yaml:"levels"`
	Log     LogConfig     `yaml:"log"`
	Solver  SolverConfig  `yaml:"solver"`
}

// StorageConfig selects and configures the solution database.
type StorageConfig struct {
	Driver   string         `yaml:"driver"` // "sqlite" or "postgres"
	Path     string         `yaml:"path"`   // SQLite file; ~ is expanded
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig defines PostgreSQL connection parameters.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// LevelsConfig defines where level packs are loaded from.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // Empty means stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// SolverConfig defines search parameters.
type SolverConfig struct {
	PollInterval int           `yaml:"poll_interval"` // Nodes between cancellation checks
	SkipCompact  bool          `yaml:"skip_compact"`
	Timeout      time.Duration `yaml:"timeout"` // Per level; 0 means no limit
}

// Validate checks the configuration for values the program cannot use.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case "sqlite":
		if c.Storage.Path == "" {
			return fmt.Errorf("config: storage.path is required for sqlite")
		}
	case "postgres":
	default:
		return fmt.Errorf("config: unknown storage.driver %q", c.Storage.Driver)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}

	if c.Solver.PollInterval < 0 {
		return fmt.Errorf("config: solver.poll_interval must not be negative")
	}
	if c.Solver.Timeout < 0 {
		return fmt.Errorf("config: solver.timeout must not be negative")
	}
	return nil
}
