package solver

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rotary/internal/core"
)

// ErrNotComplete is returned by Verify when a sequence replays cleanly but
// leaves the player off a Finish tile.
var ErrNotComplete = errors.New("solver: sequence does not complete the level")

// Replay applies actions to a copy of g, checking each for legality, and
// returns the resulting grid.
func Replay(g *core.Grid, actions []core.Action) (*core.Grid, error) {
	out := g.Clone()
	for i, a := range actions {
		if err := out.Apply(a); err != nil {
			return out, fmt.Errorf("replay step %d: %w", i, err)
		}
	}
	return out, nil
}

// Verify reports whether actions solve g.
func Verify(g *core.Grid, actions []core.Action) error {
	end, err := Replay(g, actions)
	if err != nil {
		return err
	}
	if !end.IsComplete() {
		return fmt.Errorf("%w: player ends at %s", ErrNotComplete, end.Player)
	}
	return nil
}
