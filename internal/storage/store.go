// Package storage provides SQL persistence for solutions and solve runs.
// SQLite (pure-Go modernc.org/sqlite, no CGO) is the default; PostgreSQL is
// available through lib/pq for shared installations.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/rotary/internal/autosolve"
)

// Store manages the database connection for solution persistence.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Ensure Store satisfies the controller's persistence interfaces.
var (
	_ autosolve.SolutionStore = (*Store)(nil)
	_ autosolve.RunRecorder   = (*Store)(nil)
)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	return OpenWithConfig(DefaultConfig(dbPath))
}

// OpenWithConfig opens the database described by cfg and runs migrations.
func OpenWithConfig(cfg Config) (*Store, error) {
	dialect, err := NewDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	var dsn string
	switch dialect.DriverName() {
	case DriverPostgres:
		dsn = cfg.Postgres.ConnString()
	default:
		if dsn, err = prepareSQLitePath(cfg.SQLitePath); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if dialect.DriverName() == DriverPostgres {
		p := cfg.Postgres
		if p.MaxOpenConns > 0 {
			db.SetMaxOpenConns(p.MaxOpenConns)
		}
		if p.MaxIdleConns > 0 {
			db.SetMaxIdleConns(p.MaxIdleConns)
		}
		if p.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(p.ConnMaxLifetime)
		}
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: init statement %q failed: %w", stmt, err)
		}
	}

	store := &Store{db: db, dialect: dialect}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// prepareSQLitePath expands ~ and creates the parent directories.
func prepareSQLitePath(dbPath string) (string, error) {
	if dbPath == "" {
		return "", fmt.Errorf("storage: sqlite path is empty")
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return dbPath, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	key := s.dialect.AutoIncrementKey()
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS solutions (
			id ` + key + `,
			pack_id TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			actions TEXT NOT NULL,
			move_count INTEGER NOT NULL,
			level_hash BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (pack_id, level_index)
		)`,
		`CREATE TABLE IF NOT EXISTS solve_runs (
			id ` + key + `,
			pack_id TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			move_count INTEGER NOT NULL DEFAULT 0,
			states INTEGER NOT NULL DEFAULT 0,
			duration_ms BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_solve_runs_pack ON solve_runs(pack_id, level_index)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Driver returns the name of the driver in use.
func (s *Store) Driver() string {
	return s.dialect.DriverName()
}

func (s *Store) exec(query string, args ...any) (sql.Result, error) {
	return s.db.Exec(rebind(s.dialect, query), args...)
}

func (s *Store) query(query string, args ...any) (*sql.Rows, error) {
	return s.db.Query(rebind(s.dialect, query), args...)
}

func (s *Store) queryRow(query string, args ...any) *sql.Row {
	return s.db.QueryRow(rebind(s.dialect, query), args...)
}

// parseTime converts a scanned timestamp. Drivers return either time.Time
// or the SQLite text form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		return parseTimeString(t)
	case []byte:
		return parseTimeString(string(t))
	}
	return time.Time{}
}

func parseTimeString(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
