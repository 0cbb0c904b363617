package storage

import (
	"os"
	"testing"

	"github.com/vovakirdan/rotary/internal/autosolve"
	"github.com/vovakirdan/rotary/internal/core"
)

func TestNewDialect(t *testing.T) {
	testCases := []struct {
		driver string
		want   string
	}{
		{"", DriverSQLite},
		{"sqlite", DriverSQLite},
		{"SQLite", DriverSQLite},
		{"postgres", DriverPostgres},
	}
	for _, tc := range testCases {
		d, err := NewDialect(tc.driver)
		if err != nil {
			t.Errorf("NewDialect(%q) failed: %v", tc.driver, err)
			continue
		}
		if d.DriverName() != tc.want {
			t.Errorf("NewDialect(%q): expected %s, got %s", tc.driver, tc.want, d.DriverName())
		}
	}

	if _, err := NewDialect("mysql"); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestRebind(t *testing.T) {
	query := "SELECT * FROM solve_runs WHERE pack_id = ? AND level_index = ? LIMIT ?"

	if got := rebind(sqliteDialect{}, query); got != query {
		t.Errorf("sqlite: query should be unchanged, got %q", got)
	}

	want := "SELECT * FROM solve_runs WHERE pack_id = $1 AND level_index = $2 LIMIT $3"
	if got := rebind(postgresDialect{}, query); got != want {
		t.Errorf("postgres: expected %q, got %q", want, got)
	}
}

func TestPostgresConnString(t *testing.T) {
	cfg := DefaultPostgresConfig()
	cfg.Password = "secret"
	want := "host=localhost port=5432 user=rotary password=secret dbname=rotary sslmode=disable"
	if got := cfg.ConnString(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	cfg.DSN = "postgres://u@db/rotary"
	if got := cfg.ConnString(); got != cfg.DSN {
		t.Errorf("DSN should win, got %q", got)
	}
}

// TestPostgresRoundTrip runs only when ROTARY_TEST_POSTGRES_DSN points at a
// disposable database.
func TestPostgresRoundTrip(t *testing.T) {
	dsn := os.Getenv("ROTARY_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("ROTARY_TEST_POSTGRES_DSN not set")
	}

	cfg := Config{Driver: DriverPostgres, Postgres: DefaultPostgresConfig()}
	cfg.Postgres.DSN = dsn
	store, err := OpenWithConfig(cfg)
	if err != nil {
		t.Fatalf("OpenWithConfig() failed: %v", err)
	}
	defer store.Close()

	const pack = "pg-roundtrip"
	defer store.ClearSolutions(pack)

	actions := []core.Action{core.Activate, core.MoveDown}
	if err := store.SaveSolution(autosolve.SolutionData{PackID: pack, Level: 0, Actions: actions, LevelHash: 1 << 63}); err != nil {
		t.Fatalf("SaveSolution() failed: %v", err)
	}
	if err := store.SaveSolution(autosolve.SolutionData{PackID: pack, Level: 0, Actions: actions[1:]}); err != nil {
		t.Fatalf("SaveSolution() upsert failed: %v", err)
	}

	rec, err := store.Solution(pack, 0)
	if err != nil || rec == nil {
		t.Fatalf("Solution() = %v, %v", rec, err)
	}
	if rec.Moves() != 1 || rec.Actions[0] != core.MoveDown {
		t.Errorf("unexpected actions %v", rec.Actions)
	}

	if err := store.RecordRun(autosolve.RunData{PackID: pack, Outcome: autosolve.OutcomeSolved, Moves: 1}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	runs, err := store.RecentRuns(pack, 1)
	if err != nil || len(runs) != 1 {
		t.Fatalf("RecentRuns() = %v, %v", runs, err)
	}
	if _, err := store.PackStats(pack); err != nil {
		t.Errorf("PackStats() failed: %v", err)
	}
}
