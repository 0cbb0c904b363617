package storage

import (
	"fmt"
	"strings"
)

// Dialect hides the SQL differences between SQLite and PostgreSQL.
type Dialect interface {
	// DriverName returns the driver name for sql.Open().
	DriverName() string

	// Placeholder returns the parameter placeholder for the given position (1-indexed).
	Placeholder(position int) string

	// AutoIncrementKey returns the column definition of a surrogate primary key.
	AutoIncrementKey() string

	// InitStatements are run once after connecting.
	InitStatements() []string
}

// Driver names accepted by Config.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// NewDialect returns the dialect for a driver name. Unknown names are an error.
func NewDialect(driver string) (Dialect, error) {
	switch strings.ToLower(driver) {
	case "", DriverSQLite:
		return sqliteDialect{}, nil
	case DriverPostgres:
		return postgresDialect{}, nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", driver)
	}
}

type sqliteDialect struct{}

func (sqliteDialect) DriverName() string { return DriverSQLite }

// SQLite uses positional ? placeholders.
func (sqliteDialect) Placeholder(int) string { return "?" }

func (sqliteDialect) AutoIncrementKey() string { return "INTEGER PRIMARY KEY AUTOINCREMENT" }

func (sqliteDialect) InitStatements() []string {
	return []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

type postgresDialect struct{}

func (postgresDialect) DriverName() string { return DriverPostgres }

func (postgresDialect) Placeholder(position int) string { return fmt.Sprintf("$%d", position) }

func (postgresDialect) AutoIncrementKey() string { return "BIGSERIAL PRIMARY KEY" }

func (postgresDialect) InitStatements() []string { return nil }

// rebind converts a query written with ? placeholders to the dialect's form.
//
//	input:    "SELECT * FROM runs WHERE pack_id = ? LIMIT ?"
//	Postgres: "SELECT * FROM runs WHERE pack_id = $1 LIMIT $2"
func rebind(d Dialect, query string) string {
	if _, ok := d.(sqliteDialect); ok {
		return query
	}

	var result strings.Builder
	position := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result.WriteString(d.Placeholder(position))
			position++
		} else {
			result.WriteByte(query[i])
		}
	}
	return result.String()
}
