package solver

import (
	"errors"

	"github.com/vovakirdan/rotary/internal/core"
)

// ErrPlaybackDone is returned by Step once every action has been played.
var ErrPlaybackDone = errors.New("solver: playback finished")

// Playback walks a stored solution one action at a time.
type Playback struct {
	initial *core.Grid
	grid    *core.Grid
	actions []core.Action
	index   int
}

// NewPlayback prepares playback of actions on a copy of g.
func NewPlayback(g *core.Grid, actions []core.Action) *Playback {
	return &Playback{
		initial: g.Clone(),
		grid:    g.Clone(),
		actions: append([]core.Action{}, actions...),
	}
}

// Step applies the next action and returns it.
// An illegal action leaves the playback where it was.
func (p *Playback) Step() (core.Action, error) {
	if p.Done() {
		return 0, ErrPlaybackDone
	}
	a := p.actions[p.index]
	if err := p.grid.Apply(a); err != nil {
		return a, err
	}
	p.index++
	return a, nil
}

// NextMove returns the label of the next action, or "" when finished.
func (p *Playback) NextMove() string {
	if p.Done() {
		return ""
	}
	return p.actions[p.index].String()
}

// Done reports whether every action has been played.
func (p *Playback) Done() bool {
	return p.index >= len(p.actions)
}

// Index returns the number of actions played so far.
func (p *Playback) Index() int {
	return p.index
}

// Len returns the total number of actions.
func (p *Playback) Len() int {
	return len(p.actions)
}

// Actions returns the full sequence being played.
func (p *Playback) Actions() []core.Action {
	return p.actions
}

// Grid returns the current state. Callers must not modify it.
func (p *Playback) Grid() *core.Grid {
	return p.grid
}

// Reset rewinds to the initial state.
func (p *Playback) Reset() {
	p.grid = p.initial.Clone()
	p.index = 0
}
