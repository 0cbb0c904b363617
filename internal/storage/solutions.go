package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/rotary/internal/autosolve"
	"github.com/vovakirdan/rotary/internal/core"
)

// SolutionRecord is a stored solution for one level of a pack.
type SolutionRecord struct {
	PackID    string
	Level     int
	Actions   []core.Action
	LevelHash uint64 // core.Grid.Hash of the level the solution was found for
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Moves returns the number of actions in the solution.
func (r *SolutionRecord) Moves() int {
	return len(r.Actions)
}

// Matches reports whether the solution was computed for g.
// Solutions stored without a hash match any level.
func (r *SolutionRecord) Matches(g *core.Grid) bool {
	return r.LevelHash == 0 || r.LevelHash == g.Hash()
}

// SaveSolution stores the solution for a level, replacing any previous one.
// It implements autosolve.SolutionStore.
func (s *Store) SaveSolution(data autosolve.SolutionData) error {
	_, err := s.exec(
		`INSERT INTO solutions (pack_id, level_index, actions, move_count, level_hash)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (pack_id, level_index) DO UPDATE SET
		   actions = excluded.actions,
		   move_count = excluded.move_count,
		   level_hash = excluded.level_hash,
		   updated_at = CURRENT_TIMESTAMP`,
		data.PackID, data.Level, core.FormatActions(data.Actions), len(data.Actions), int64(data.LevelHash),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save solution: %w", err)
	}
	return nil
}

// Solution returns the stored solution for a level.
// Returns nil, nil if none is on file.
func (s *Store) Solution(packID string, level int) (*SolutionRecord, error) {
	row := s.queryRow(
		`SELECT pack_id, level_index, actions, level_hash, created_at, updated_at
		 FROM solutions
		 WHERE pack_id = ? AND level_index = ?`,
		packID, level,
	)
	rec, err := scanSolution(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solution: %w", err)
	}
	return rec, nil
}

// ListSolutions returns every stored solution of a pack ordered by level.
func (s *Store) ListSolutions(packID string) ([]SolutionRecord, error) {
	rows, err := s.query(
		`SELECT pack_id, level_index, actions, level_hash, created_at, updated_at
		 FROM solutions
		 WHERE pack_id = ?
		 ORDER BY level_index`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solutions: %w", err)
	}
	defer rows.Close()

	var records []SolutionRecord
	for rows.Next() {
		rec, err := scanSolution(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// DeleteSolution removes the stored solution for a level.
// Deleting a solution that does not exist is not an error.
func (s *Store) DeleteSolution(packID string, level int) error {
	_, err := s.exec("DELETE FROM solutions WHERE pack_id = ? AND level_index = ?", packID, level)
	if err != nil {
		return fmt.Errorf("storage: cannot delete solution: %w", err)
	}
	return nil
}

// ClearSolutions deletes all stored solutions of a pack.
func (s *Store) ClearSolutions(packID string) error {
	_, err := s.exec("DELETE FROM solutions WHERE pack_id = ?", packID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solutions: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolution(row scanner) (*SolutionRecord, error) {
	var (
		rec                  SolutionRecord
		actions              string
		hash                 int64
		createdAt, updatedAt any
	)
	if err := row.Scan(&rec.PackID, &rec.Level, &actions, &hash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	parsed, err := core.ParseActions(actions)
	if err != nil {
		return nil, fmt.Errorf("solution %s/%d: %w", rec.PackID, rec.Level, err)
	}
	rec.Actions = parsed
	rec.LevelHash = uint64(hash)
	rec.CreatedAt = parseTime(createdAt)
	rec.UpdatedAt = parseTime(updatedAt)
	return &rec, nil
}
