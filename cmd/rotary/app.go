package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/rotary/internal/autosolve"
	"github.com/vovakirdan/rotary/internal/config"
	"github.com/vovakirdan/rotary/internal/levels"
	"github.com/vovakirdan/rotary/internal/logging"
	"github.com/vovakirdan/rotary/internal/solver"
	"github.com/vovakirdan/rotary/internal/storage"
)

// app holds what every command needs: configuration, a logger and the
// level loader.
type app struct {
	cfg       config.Config
	logger    *log.Logger
	logCloser io.Closer
	loader    *levels.Loader
}

// newApp loads configuration and applies the global flags over it.
func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagDBPath != "" {
		cfg.Storage.Driver = storage.DriverSQLite
		cfg.Storage.Path = flagDBPath
	}
	if flagLevels != "" {
		cfg.Levels.Dir = flagLevels
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	loader := levels.NewLoader(cfg.Levels.Dir)
	loader.Logger = logger

	return &app{cfg: cfg, logger: logger, logCloser: closer, loader: loader}, nil
}

// mustApp is newApp for command handlers.
func mustApp() *app {
	a, err := newApp()
	if err != nil {
		fail("%v", err)
	}
	return a
}

func (a *app) close() {
	if a.logCloser != nil {
		a.logCloser.Close()
	}
}

// openStore opens the configured solutions database.
func (a *app) openStore() (*storage.Store, error) {
	sc := a.cfg.Storage
	cfg := storage.DefaultConfig(sc.Path)
	cfg.Driver = sc.Driver
	cfg.Postgres.DSN = sc.Postgres.DSN
	cfg.Postgres.Host = sc.Postgres.Host
	cfg.Postgres.Port = sc.Postgres.Port
	cfg.Postgres.User = sc.Postgres.User
	cfg.Postgres.Password = sc.Postgres.Password
	cfg.Postgres.Database = sc.Postgres.Database
	cfg.Postgres.SSLMode = sc.Postgres.SSLMode

	store, err := storage.OpenWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("opened solutions database", "driver", store.Driver())
	return store, nil
}

// mustStore is openStore for command handlers.
func (a *app) mustStore() *storage.Store {
	store, err := a.openStore()
	if err != nil {
		fail("opening solutions database: %v", err)
	}
	return store
}

// mustPack loads a pack by ID.
func (a *app) mustPack(id string) levels.Pack {
	pack, err := a.loader.LoadByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'rotary list' to see available packs.")
		os.Exit(1)
	}
	return pack
}

// controllerConfig builds the async controller configuration.
func (a *app) controllerConfig() autosolve.Config {
	cfg := autosolve.DefaultConfig()
	cfg.Logger = a.logger
	cfg.Solver = solver.DefaultConfig()
	cfg.Solver.Logger = a.logger
	if a.cfg.Solver.PollInterval > 0 {
		cfg.Solver.PollInterval = a.cfg.Solver.PollInterval
	}
	cfg.Solver.SkipCompact = a.cfg.Solver.SkipCompact
	return cfg
}

// parseLevel parses a level index argument against a pack.
func parseLevel(pack levels.Pack, arg string) int {
	i, err := strconv.Atoi(arg)
	if err != nil {
		fail("level must be a number, got %q", arg)
	}
	if pack.Len() == 0 {
		fail("pack %s has no levels", pack.ID)
	}
	if i < 0 || i >= pack.Len() {
		fail("pack %s has levels 0-%d, got %d", pack.ID, pack.Len()-1, i)
	}
	return i
}

// interactive reports whether stdout is a terminal.
func interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
