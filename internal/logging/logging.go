// Package logging builds the structured logger shared by the rotary command
// and the packages it drives.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/rotary/internal/config"
)

// Prefix is printed in front of every log line.
const Prefix = "rotary"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger from cfg. Output goes to stderr unless cfg.File is
// set, in which case it goes to a size-rotated file in logfmt.
// The returned closer releases the log file and must be called on exit.
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	if cfg.File == "" {
		return newLogger(os.Stderr, level, log.TextFormatter), nopCloser{}, nil
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	return newLogger(file, level, log.LogfmtFormatter), file, nil
}

// NewWriter builds a text logger that writes to w.
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return newLogger(w, level, log.TextFormatter)
}

func newLogger(w io.Writer, level log.Level, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
		Formatter:       formatter,
	})
}

// ParseLevel converts a level name to a log.Level. An empty name is info.
func ParseLevel(name string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("logging: unknown level %q", name)
	}
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
