package autosolve_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rotary/internal/autosolve"
	"github.com/vovakirdan/rotary/internal/core"
	"github.com/vovakirdan/rotary/internal/solver"
)

type fakePack struct {
	id    string
	grids []*core.Grid
}

func (p *fakePack) PackID() string { return p.id }
func (p *fakePack) Len() int       { return len(p.grids) }
func (p *fakePack) Level(i int) (*core.Grid, error) {
	return p.grids[i], nil
}

type fakeStore struct {
	mu    sync.Mutex
	saved []autosolve.SolutionData
	runs  []autosolve.RunData
	err   error
}

func (s *fakeStore) SaveSolution(data autosolve.SolutionData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, data)
	return nil
}

func (s *fakeStore) RecordRun(data autosolve.RunData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, data)
	return nil
}

func solvable() *core.Grid {
	return core.FromRows([][]core.Tile{{
		core.Start(core.ColorBlue, core.Conns(0, 1, 0, 0)),
		core.Finish(core.ColorBlue, core.Conns(0, 0, 0, 1)),
	}}, core.P(0, 0))
}

func unsolvable() *core.Grid {
	return core.FromRows([][]core.Tile{{
		core.Start(core.ColorBlue, core.Conns(0, 1, 0, 0)),
		core.Finish(core.ColorBlue, core.Conns(0, 0, 0, 2)),
	}}, core.P(0, 0))
}

func newPack() *fakePack {
	return &fakePack{id: "test", grids: []*core.Grid{solvable(), unsolvable()}}
}

// blockingConfig pauses the search at its first BFS level until release is closed.
func blockingConfig(started chan<- struct{}, release <-chan struct{}) autosolve.Config {
	cfg := autosolve.DefaultConfig()
	var once sync.Once
	cfg.Solver.OnProgress = func(solver.Stats) {
		once.Do(func() { close(started) })
		<-release
	}
	return cfg
}

func TestControllerSolves(t *testing.T) {
	store := &fakeStore{}
	var reports []autosolve.Report
	c := autosolve.NewController(autosolve.DefaultConfig(), newPack(), store)
	c.SetRunRecorder(store)
	c.SetNotifier(autosolve.NotifierFunc(func(r autosolve.Report) {
		reports = append(reports, r)
	}))

	require.NoError(t, c.Solve(0))
	r := c.Wait()

	assert.Equal(t, autosolve.OutcomeSolved, r.Outcome)
	assert.Equal(t, []core.Action{core.MoveRight}, r.Actions)
	assert.NoError(t, r.Err)
	assert.False(t, c.IsSolving())
	assert.True(t, c.IsPossible())

	require.Len(t, store.saved, 1)
	assert.Equal(t, "test", store.saved[0].PackID)
	assert.Equal(t, 0, store.saved[0].Level)
	assert.Equal(t, solvable().Hash(), store.saved[0].LevelHash)

	require.Len(t, store.runs, 1)
	assert.Equal(t, autosolve.OutcomeSolved, store.runs[0].Outcome)
	assert.Equal(t, 1, store.runs[0].Moves)

	require.Len(t, reports, 1)
	assert.Equal(t, r.Outcome, reports[0].Outcome)
}

func TestControllerUnsolvable(t *testing.T) {
	store := &fakeStore{}
	c := autosolve.NewController(autosolve.DefaultConfig(), newPack(), store)
	c.SetRunRecorder(store)

	require.NoError(t, c.Solve(1))
	r := c.Wait()

	assert.Equal(t, autosolve.OutcomeUnsolvable, r.Outcome)
	assert.False(t, c.IsPossible())
	assert.Empty(t, store.saved)
	require.Len(t, store.runs, 1)
	assert.Equal(t, autosolve.OutcomeUnsolvable, store.runs[0].Outcome)

	// A later success flips the flag back.
	require.NoError(t, c.Solve(0))
	c.Wait()
	assert.True(t, c.IsPossible())
}

func TestControllerRejectsBadIndex(t *testing.T) {
	c := autosolve.NewController(autosolve.DefaultConfig(), newPack(), nil)

	for _, level := range []int{-1, 2} {
		err := c.Solve(level)
		assert.ErrorIs(t, err, autosolve.ErrLevelIndex)
		assert.False(t, c.IsSolving())
	}
}

func TestControllerRejectsMalformedLevel(t *testing.T) {
	bad := solvable()
	bad.MovePlayerTo(core.P(5, 5))
	pack := &fakePack{id: "bad", grids: []*core.Grid{bad}}
	c := autosolve.NewController(autosolve.DefaultConfig(), pack, nil)

	err := c.Solve(0)
	assert.ErrorIs(t, err, core.ErrMalformed)
	assert.False(t, c.IsSolving())
}

func TestControllerTerminate(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	store := &fakeStore{}
	c := autosolve.NewController(blockingConfig(started, release), newPack(), store)
	c.SetRunRecorder(store)

	require.NoError(t, c.Solve(0))
	<-started
	assert.True(t, c.IsSolving())

	c.TerminateSolving()
	close(release)

	select {
	case <-c.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("solve did not stop after TerminateSolving")
	}

	r := c.Wait()
	assert.Equal(t, autosolve.OutcomeCancelled, r.Outcome)
	assert.False(t, c.IsSolving())
	assert.True(t, c.IsPossible(), "cancellation must not look like an unsolvable level")
	assert.Empty(t, store.saved)
	assert.Empty(t, store.runs)
}

func TestControllerAlreadySolving(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	c := autosolve.NewController(blockingConfig(started, release), newPack(), nil)

	require.NoError(t, c.Solve(0))
	<-started

	assert.ErrorIs(t, c.Solve(1), autosolve.ErrAlreadySolving)

	close(release)
	r := c.Wait()
	assert.Equal(t, 0, r.Level)
	assert.Equal(t, autosolve.OutcomeSolved, r.Outcome)
}

func TestControllerWorksOnCopy(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	pack := newPack()
	c := autosolve.NewController(blockingConfig(started, release), pack, nil)

	require.NoError(t, c.Solve(0))
	<-started
	// Break the source level while the search runs.
	pack.grids[0].Set(core.P(0, 1), core.Empty())
	close(release)

	r := c.Wait()
	assert.Equal(t, autosolve.OutcomeSolved, r.Outcome)
}

func TestControllerSaveFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	c := autosolve.NewController(autosolve.DefaultConfig(), newPack(), store)

	require.NoError(t, c.Solve(0))
	r := c.Wait()

	assert.Equal(t, autosolve.OutcomeFailed, r.Outcome)
	require.Error(t, r.Err)
	assert.Contains(t, r.Err.Error(), "disk full")
	assert.True(t, c.IsPossible())
}

func TestWaitWithoutSolve(t *testing.T) {
	c := autosolve.NewController(autosolve.DefaultConfig(), newPack(), nil)

	r := c.Wait()
	assert.Equal(t, autosolve.Report{}, r)
	assert.False(t, c.IsSolving())
	assert.True(t, c.IsPossible())
}

func TestProgressIsPublished(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	c := autosolve.NewController(blockingConfig(started, release), newPack(), nil)

	require.NoError(t, c.Solve(0))
	<-started
	p := c.Progress()
	assert.Equal(t, 0, p.Depth)
	assert.Equal(t, 1, p.Frontier)

	close(release)
	c.Wait()
}

func TestSolvingClearedAfterNotifier(t *testing.T) {
	c := autosolve.NewController(autosolve.DefaultConfig(), newPack(), nil)
	var solvingDuringNotify []bool
	c.SetNotifier(autosolve.NotifierFunc(func(autosolve.Report) {
		solvingDuringNotify = append(solvingDuringNotify, c.IsSolving())
	}))

	require.NoError(t, c.Solve(0))
	require.Eventually(t, func() bool { return !c.IsSolving() }, 5*time.Second, time.Millisecond)

	// Starting again as soon as the flag drops must not race the first solve.
	require.NoError(t, c.Solve(1))
	r := c.Wait()
	assert.Equal(t, autosolve.OutcomeUnsolvable, r.Outcome)
	assert.Equal(t, []bool{true, true}, solvingDuringNotify)
}
