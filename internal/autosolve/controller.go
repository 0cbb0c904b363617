package autosolve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rotary/internal/core"
	"github.com/vovakirdan/rotary/internal/solver"
)

// Config holds configuration for the controller.
type Config struct {
	Solver solver.Config
	Logger *log.Logger // Optional; nil discards
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Solver: solver.DefaultConfig(),
	}
}

// Controller solves levels of one pack in the background.
//
// At most one solve runs at a time. Status flags are published atomically
// when a solve finishes, so IsSolving and IsPossible may be polled from any
// goroutine.
type Controller struct {
	config   Config
	source   LevelSource
	store    SolutionStore // Optional, can be nil
	recorder RunRecorder   // Optional, can be nil
	notifier Notifier      // Optional, can be nil
	logger   *log.Logger

	solving  atomic.Bool
	possible atomic.Bool

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	report   Report
	progress solver.Stats
}

// NewController creates a controller for the levels of source.
func NewController(cfg Config, source LevelSource, store SolutionStore) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		config: cfg,
		source: source,
		store:  store,
		logger: logger,
	}
	c.possible.Store(true)
	return c
}

// SetRunRecorder sets the optional run recorder.
func (c *Controller) SetRunRecorder(r RunRecorder) {
	c.recorder = r
}

// SetNotifier sets the optional completion notifier. The notifier runs on
// the solving goroutine before Wait returns and while IsSolving is still
// true, so it must not call Wait.
func (c *Controller) SetNotifier(n Notifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifier = n
}

// Solve starts solving level in the background. The level is validated and
// copied before Solve returns; later changes to the source do not affect the
// running search.
func (c *Controller) Solve(level int) error {
	if !c.solving.CompareAndSwap(false, true) {
		return ErrAlreadySolving
	}

	grid, err := c.prepare(level)
	if err != nil {
		c.solving.Store(false)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	c.mu.Lock()
	c.cancel = cancel
	c.done = done
	c.progress = solver.Stats{}
	c.report = Report{}
	c.mu.Unlock()

	c.logger.Info("solving", "pack", c.source.PackID(), "level", level)
	go c.run(ctx, cancel, done, level, grid)
	return nil
}

func (c *Controller) prepare(level int) (*core.Grid, error) {
	if level < 0 || level >= c.source.Len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrLevelIndex, level, c.source.Len())
	}
	g, err := c.source.Level(level)
	if err != nil {
		return nil, fmt.Errorf("autosolve: cannot load level %d: %w", level, err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("autosolve: level %d: %w", level, err)
	}
	return g.Clone(), nil
}

func (c *Controller) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}, level int, grid *core.Grid) {
	defer close(done)
	defer cancel()

	cfg := c.config.Solver
	if cfg.Logger == nil {
		cfg.Logger = c.logger
	}
	onProgress := cfg.OnProgress
	cfg.OnProgress = func(s solver.Stats) {
		c.mu.Lock()
		c.progress = s
		c.mu.Unlock()
		if onProgress != nil {
			onProgress(s)
		}
	}

	sol, err := solver.New(cfg).Solve(ctx, grid)
	report := Report{
		Pack:  c.source.PackID(),
		Level: level,
		Stats: sol.Stats,
	}

	switch {
	case errors.Is(err, solver.ErrCancelled):
		report.Outcome = OutcomeCancelled
	case err != nil:
		report.Outcome = OutcomeFailed
		report.Err = err
	case !sol.Found:
		report.Outcome = OutcomeUnsolvable
		c.possible.Store(false)
	default:
		report.Outcome = OutcomeSolved
		report.Actions = sol.Actions
		c.possible.Store(true)
		if err := c.save(report, grid); err != nil {
			report.Outcome = OutcomeFailed
			report.Err = err
		}
	}

	if report.Outcome != OutcomeCancelled {
		c.recordRun(report)
	}

	c.mu.Lock()
	c.report = report
	notifier := c.notifier
	c.mu.Unlock()

	c.logger.Info("solve finished",
		"pack", report.Pack,
		"level", report.Level,
		"outcome", report.Outcome,
		"actions", len(report.Actions),
		"visited", report.Stats.Visited)

	if notifier != nil {
		notifier.SolveComplete(report)
	}

	// Published last so a caller that sees IsSolving() == false can start
	// the next solve without racing this one's notification.
	c.solving.Store(false)
}

func (c *Controller) save(r Report, grid *core.Grid) error {
	if c.store == nil {
		return nil
	}
	err := c.store.SaveSolution(SolutionData{
		PackID:    r.Pack,
		Level:     r.Level,
		Actions:   r.Actions,
		LevelHash: grid.Hash(),
	})
	if err != nil {
		c.logger.Error("could not save solution", "pack", r.Pack, "level", r.Level, "error", err)
		return fmt.Errorf("autosolve: cannot save solution: %w", err)
	}
	return nil
}

func (c *Controller) recordRun(r Report) {
	if c.recorder == nil {
		return
	}
	err := c.recorder.RecordRun(RunData{
		PackID:   r.Pack,
		Level:    r.Level,
		Outcome:  r.Outcome,
		Moves:    len(r.Actions),
		States:   r.Stats.Visited,
		Duration: r.Stats.Elapsed,
	})
	if err != nil {
		// Run history is advisory; a lost record does not change the outcome.
		c.logger.Warn("could not record run", "pack", r.Pack, "level", r.Level, "error", err)
	}
}

// IsSolving reports whether a solve is in progress.
func (c *Controller) IsSolving() bool {
	return c.solving.Load()
}

// IsPossible reports whether the last finished solve found a solution.
// It is true before any solve and is left unchanged by cancelled or failed solves.
func (c *Controller) IsPossible() bool {
	return c.possible.Load()
}

// TerminateSolving asks the running solve to stop. The search abandons its
// work without persisting anything. It is a no-op when nothing is running.
func (c *Controller) TerminateSolving() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Done returns a channel closed when the current solve finishes. With no
// solve started the channel is already closed.
func (c *Controller) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return c.done
}

// Wait blocks until the current solve finishes and returns its report.
func (c *Controller) Wait() Report {
	<-c.Done()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.report
}

// Progress returns the latest per-level statistics of the running solve.
func (c *Controller) Progress() solver.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}

// PackID returns the identifier of the pack being solved.
func (c *Controller) PackID() string {
	return c.source.PackID()
}
