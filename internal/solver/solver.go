// Package solver finds the shortest action sequence that brings the player
// of a Rotary grid onto a Finish tile.
//
// The search is a level-synchronised breadth-first search over tile states.
// Each BFS level corresponds to one more state-changing action (rotate or
// activate); free movement between those actions is expanded by a flood fill
// that never leaves the current level. The raw answer is then compacted so
// every movement run is a shortest path.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/rotary/internal/core"
)

var (
	// ErrCancelled is returned when the context is cancelled mid-search.
	// It is never used for unsolvable grids.
	ErrCancelled = errors.New("solver: search cancelled")
)

// Stats describes the work done by a search.
type Stats struct {
	Depth    int           // BFS level reached (state-changing actions in the deepest branch)
	Frontier int           // States waiting in the current level
	Visited  int           // Distinct tile states seen
	Nodes    int           // Flood-fill cells expanded
	Elapsed  time.Duration // Wall time since the search started
}

// Solution is the outcome of a search that ran to completion.
// Found is false when no sequence of actions completes the grid.
type Solution struct {
	Found   bool
	Actions []core.Action // Compacted sequence
	Raw     []core.Action // Sequence as discovered by the search
	Stats   Stats
}

// Config holds configuration for the solver.
type Config struct {
	Logger       *log.Logger      // Optional; nil discards
	OnProgress   func(Stats)      // Optional; called once per BFS level
	PollInterval int              // Flood-fill cells between cancellation checks
	SkipCompact  bool             // Return the raw answer as Actions
	Clock        func() time.Time // Optional; defaults to time.Now
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PollInterval: 1024,
	}
}

// Solver runs searches. A Solver holds no per-search state and may be shared.
type Solver struct {
	config Config
	logger *log.Logger
}

// New creates a new solver with the given configuration.
func New(cfg Config) *Solver {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Solver{config: cfg, logger: logger}
}

// node is one frontier entry: a private grid copy and the actions that led to it.
type node struct {
	grid  *core.Grid
	moves []core.Action
}

// search holds the state of a single Solve call.
type search struct {
	ctx     context.Context
	poll    int
	visited mapset.Set[string]
	next    []node
	nodes   int
}

// Solve searches for the shortest solution of g. The grid is not modified.
//
// An unsolvable grid is reported as Solution{Found: false} with a nil error.
// A malformed grid fails with an error matching core.ErrMalformed before any
// searching; a cancelled context yields an error matching ErrCancelled.
func (s *Solver) Solve(ctx context.Context, g *core.Grid) (Solution, error) {
	if err := g.Validate(); err != nil {
		return Solution{}, fmt.Errorf("solver: %w", err)
	}

	started := s.config.Clock()
	root := g.Clone()
	st := &search{
		ctx:     ctx,
		poll:    s.config.PollInterval,
		visited: mapset.New[string](),
	}
	st.visited.Put(root.Key())

	stats := func(depth, frontier int) Stats {
		return Stats{
			Depth:    depth,
			Frontier: frontier,
			Visited:  st.visited.Size(),
			Nodes:    st.nodes,
			Elapsed:  s.config.Clock().Sub(started),
		}
	}

	frontier := []node{{grid: root}}
	depth := 0
	for ; len(frontier) > 0; depth++ {
		if err := ctx.Err(); err != nil {
			return Solution{Stats: stats(depth, len(frontier))}, cancelled(err)
		}
		s.logger.Debug("expanding level", "depth", depth, "frontier", len(frontier), "visited", st.visited.Size())
		if s.config.OnProgress != nil {
			s.config.OnProgress(stats(depth, len(frontier)))
		}

		st.next = nil
		for _, n := range frontier {
			if err := ctx.Err(); err != nil {
				return Solution{Stats: stats(depth, len(frontier))}, cancelled(err)
			}
			seen := make([]bool, n.grid.W*n.grid.H)
			path := n.moves
			found, err := st.flood(n.grid, seen, &path)
			if err != nil {
				return Solution{Stats: stats(depth, len(frontier))}, cancelled(err)
			}
			if found {
				return s.finish(g, path, stats(depth, len(frontier)))
			}
		}
		frontier = st.next
	}

	final := stats(depth, 0)
	s.logger.Info("no solution", "visited", final.Visited, "nodes", final.Nodes, "elapsed", final.Elapsed)
	return Solution{Found: false, Stats: final}, nil
}

// finish compacts the raw answer and assembles the solution.
func (s *Solver) finish(initial *core.Grid, raw []core.Action, stats Stats) (Solution, error) {
	sol := Solution{
		Found: true,
		Raw:   append([]core.Action{}, raw...),
		Stats: stats,
	}
	sol.Actions = sol.Raw
	if !s.config.SkipCompact {
		compacted, err := Compact(initial, raw)
		if err != nil {
			return Solution{}, err
		}
		sol.Actions = compacted
	}
	s.logger.Info("solution found",
		"actions", len(sol.Actions),
		"raw", len(sol.Raw),
		"depth", stats.Depth,
		"visited", stats.Visited,
		"elapsed", stats.Elapsed)
	return sol, nil
}

func cancelled(err error) error {
	return fmt.Errorf("%w: %w", ErrCancelled, err)
}
