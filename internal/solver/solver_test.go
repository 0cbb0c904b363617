package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rotary/internal/core"
	"github.com/vovakirdan/rotary/internal/solver"
)

const (
	blue = core.ColorBlue
	red  = core.ColorRed
)

func conns(up, right, down, left core.Color) [4]core.Color {
	return core.Conns(up, right, down, left)
}

// pair is the smallest solvable level: Start on the left, Finish on the right.
func pair(finishLeft core.Color) *core.Grid {
	return core.FromRows([][]core.Tile{{
		core.Start(blue, conns(0, 1, 0, 1)),
		core.Finish(blue, conns(1, 0, 1, finishLeft)),
	}}, core.P(0, 0))
}

// lockedPath needs the red lock opened before it can be turned toward the finish.
func lockedPath() *core.Grid {
	return core.FromRows([][]core.Tile{{
		core.Key(blue, red, conns(0, 1, 0, 0), core.Pos{}),
		core.Locked(red, conns(0, 0, 1, 1), false),
		core.Finish(blue, conns(0, 0, 0, 1)),
	}}, core.P(0, 0))
}

func solve(t *testing.T, g *core.Grid) solver.Solution {
	t.Helper()
	sol, err := solver.New(solver.DefaultConfig()).Solve(context.Background(), g)
	require.NoError(t, err)
	return sol
}

func TestSolveAdjacentFinish(t *testing.T) {
	sol := solve(t, pair(1))

	require.True(t, sol.Found)
	assert.Equal(t, []core.Action{core.MoveRight}, sol.Actions)
}

func TestSolveMismatchedConnectorsIsUnsolvable(t *testing.T) {
	sol := solve(t, pair(2))

	assert.False(t, sol.Found)
	assert.Empty(t, sol.Actions)
}

func TestSolveWithoutFinishIsUnsolvable(t *testing.T) {
	g := core.FromRows([][]core.Tile{{
		core.Start(blue, conns(0, 1, 0, 0)),
		core.Generic(blue, conns(1, 1, 1, 1)),
	}}, core.P(0, 0))

	sol := solve(t, g)
	assert.False(t, sol.Found)
	assert.Positive(t, sol.Stats.Visited)
}

func TestSolveAlreadyOnFinish(t *testing.T) {
	g := core.FromRows([][]core.Tile{{
		core.Finish(blue, conns(0, 0, 0, 0)),
	}}, core.P(0, 0))

	sol := solve(t, g)
	require.True(t, sol.Found)
	assert.NotNil(t, sol.Actions)
	assert.Empty(t, sol.Actions)
}

func TestSolveUnlocksBeforePassingLock(t *testing.T) {
	g := lockedPath()
	sol := solve(t, g)

	require.True(t, sol.Found)
	assert.Equal(t, []core.Action{core.Activate, core.MoveRight, core.RotateLeft, core.MoveRight}, sol.Actions)

	activations := 0
	for _, a := range sol.Actions {
		if a == core.Activate {
			activations++
		}
	}
	assert.Equal(t, 1, activations)
	require.NoError(t, solver.Verify(g, sol.Actions))
}

func TestSolveUsesTransporter(t *testing.T) {
	g := core.FromRows([][]core.Tile{
		{core.Transport(blue, blue, conns(0, 0, 0, 0), core.Pos{}), core.Empty(), core.Transport(blue, blue, conns(0, 0, 1, 0), core.Pos{})},
		{core.Empty(), core.Empty(), core.Finish(blue, conns(1, 0, 0, 0))},
	}, core.P(0, 0))

	sol := solve(t, g)
	require.True(t, sol.Found)
	assert.Equal(t, []core.Action{core.Activate, core.MoveDown}, sol.Actions)
}

func TestSolveUsesLauncher(t *testing.T) {
	g := core.FromRows([][]core.Tile{{
		core.Start(blue, conns(0, 1, 0, 0)),
		core.Launcher(blue, 0, conns(0, 0, 0, 1), core.DirRight, core.Pos{}),
		core.Empty(),
		core.Finish(blue, conns(0, 0, 0, 0)),
	}}, core.P(0, 0))

	sol := solve(t, g)
	require.True(t, sol.Found)
	assert.Equal(t, []core.Action{core.MoveRight, core.Activate}, sol.Actions)
}

func TestSolveDoesNotModifyInput(t *testing.T) {
	g := lockedPath()
	before := g.Clone()

	solve(t, g)
	assert.True(t, g.Equal(before))
}

func TestSolutionReplaysToCompletion(t *testing.T) {
	levels := []*core.Grid{pair(1), lockedPath()}
	for _, g := range levels {
		sol := solve(t, g)
		require.True(t, sol.Found)

		end, err := solver.Replay(g, sol.Actions)
		require.NoError(t, err)
		assert.True(t, end.IsComplete())
		assert.LessOrEqual(t, len(sol.Actions), len(sol.Raw))
	}
}

func TestSolveMalformedGrid(t *testing.T) {
	g := pair(1)
	g.MovePlayerTo(core.P(3, 3))

	_, err := solver.New(solver.DefaultConfig()).Solve(context.Background(), g)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMalformed)
}

func TestSolveCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := solver.New(solver.DefaultConfig()).Solve(ctx, lockedPath())
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, sol.Found)
}

func TestSolveCancelledDuringSearch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	levels := 0
	cfg := solver.DefaultConfig()
	cfg.OnProgress = func(solver.Stats) {
		levels++
		cancel()
	}

	_, err := solver.New(cfg).Solve(ctx, lockedPath())
	assert.ErrorIs(t, err, solver.ErrCancelled)
	assert.Equal(t, 1, levels)
}

func TestSolveReportsProgressPerLevel(t *testing.T) {
	var depths []int
	cfg := solver.DefaultConfig()
	cfg.OnProgress = func(s solver.Stats) {
		depths = append(depths, s.Depth)
	}

	sol, err := solver.New(cfg).Solve(context.Background(), lockedPath())
	require.NoError(t, err)
	require.True(t, sol.Found)
	assert.Equal(t, []int{0, 1, 2}, depths)
	assert.Equal(t, 2, sol.Stats.Depth)
}

func TestSkipCompactReturnsRaw(t *testing.T) {
	cfg := solver.DefaultConfig()
	cfg.SkipCompact = true

	sol, err := solver.New(cfg).Solve(context.Background(), lockedPath())
	require.NoError(t, err)
	assert.Equal(t, sol.Raw, sol.Actions)
}
