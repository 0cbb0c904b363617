package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/rotary/internal/autosolve"
)

// RunRecord is one finished solve.
type RunRecord struct {
	ID        int64
	PackID    string
	Level     int
	Outcome   string // autosolve.Outcome.String()
	Moves     int
	States    int
	Duration  time.Duration
	CreatedAt time.Time
}

// RecordRun stores the statistics of a finished solve.
// It implements autosolve.RunRecorder.
func (s *Store) RecordRun(data autosolve.RunData) error {
	_, err := s.exec(
		`INSERT INTO solve_runs (pack_id, level_index, outcome, move_count, states, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		data.PackID, data.Level, data.Outcome.String(), data.Moves, data.States, data.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

// RecentRuns returns the most recent runs of a pack, newest first.
// An empty packID returns runs of every pack.
func (s *Store) RecentRuns(packID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.query(
		`SELECT id, pack_id, level_index, outcome, move_count, states, duration_ms, created_at
		 FROM solve_runs
		 WHERE ? = '' OR pack_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		packID, packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			r          RunRecord
			durationMs int64
			createdAt  any
		)
		if err := rows.Scan(&r.ID, &r.PackID, &r.Level, &r.Outcome, &r.Moves, &r.States, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// PackStats contains aggregated statistics for a pack.
type PackStats struct {
	PackID     string
	Solutions  int
	Runs       int
	Solved     int
	Unsolvable int
	AvgMoves   float64 // Over stored solutions
	TotalTime  time.Duration
	LastRun    time.Time
}

// PackStats retrieves aggregated statistics for a pack.
func (s *Store) PackStats(packID string) (*PackStats, error) {
	stats := &PackStats{PackID: packID}

	err := s.queryRow(
		`SELECT COUNT(*), COALESCE(AVG(move_count), 0)
		 FROM solutions WHERE pack_id = ?`,
		packID,
	).Scan(&stats.Solutions, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get solution stats: %w", err)
	}

	var totalMs int64
	err = s.queryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(duration_ms), 0)
		 FROM solve_runs WHERE pack_id = ?`,
		autosolve.OutcomeSolved.String(), autosolve.OutcomeUnsolvable.String(), packID,
	).Scan(&stats.Runs, &stats.Solved, &stats.Unsolvable, &totalMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.TotalTime = time.Duration(totalMs) * time.Millisecond

	if stats.Runs > 0 {
		var lastRun any
		err = s.queryRow(
			`SELECT created_at FROM solve_runs WHERE pack_id = ? ORDER BY id DESC LIMIT 1`,
			packID,
		).Scan(&lastRun)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot get last run: %w", err)
		}
		stats.LastRun = parseTime(lastRun)
	}

	return stats, nil
}
