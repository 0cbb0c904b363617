// Package autosolve runs the solver in the background for one level of a
// pack at a time, persists what it finds and tells the presentation layer
// when it is done.
package autosolve

import (
	"errors"
	"time"

	"github.com/vovakirdan/rotary/internal/core"
	"github.com/vovakirdan/rotary/internal/solver"
)

var (
	// ErrAlreadySolving is returned by Solve while a previous solve is running.
	ErrAlreadySolving = errors.New("autosolve: already solving")
	// ErrLevelIndex is returned by Solve for an index outside the pack.
	ErrLevelIndex = errors.New("autosolve: level index out of range")
)

// Outcome is how a solve ended.
type Outcome int

const (
	OutcomeSolved Outcome = iota
	OutcomeUnsolvable
	OutcomeCancelled
	OutcomeFailed
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeUnsolvable:
		return "unsolvable"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Report describes a finished solve.
type Report struct {
	Pack    string
	Level   int
	Outcome Outcome
	Actions []core.Action // Set when Outcome is OutcomeSolved, or OutcomeFailed after a save error
	Stats   solver.Stats
	Err     error // Set when Outcome is OutcomeFailed
}

// LevelSource provides the levels of one pack.
type LevelSource interface {
	PackID() string
	Len() int
	Level(i int) (*core.Grid, error)
}

// SolutionData contains a solution for persistence.
type SolutionData struct {
	PackID    string
	Level     int
	Actions   []core.Action
	LevelHash uint64 // Hash of the level the solution was computed for
}

// SolutionStore is an interface for saving solutions.
// This allows the controller to persist results without depending on the storage package.
type SolutionStore interface {
	SaveSolution(data SolutionData) error
}

// RunData contains the statistics of a finished solve for persistence.
type RunData struct {
	PackID   string
	Level    int
	Outcome  Outcome
	Moves    int
	States   int
	Duration time.Duration
}

// RunRecorder is an interface for recording solve runs.
type RunRecorder interface {
	RecordRun(data RunData) error
}

// Notifier is told about every finished solve.
type Notifier interface {
	SolveComplete(r Report)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(r Report)

// SolveComplete calls f(r).
func (f NotifierFunc) SolveComplete(r Report) {
	f(r)
}
