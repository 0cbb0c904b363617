package solver

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/rotary/internal/core"
)

// ErrCompaction is returned when a raw action sequence does not fit the grid
// it is compacted against.
var ErrCompaction = errors.New("solver: cannot compact sequence")

// Compact rewrites raw so that every run of movement actions is replaced by a
// shortest movement path to the same cell. Rotations and activations are kept
// verbatim and in order. The result is never longer than raw.
//
// initial is not modified.
func Compact(initial *core.Grid, raw []core.Action) ([]core.Action, error) {
	g := initial.Clone()
	out := make([]core.Action, 0, len(raw))

	i := 0
	for i < len(raw) {
		// State-changing actions are replayed as they are.
		for i < len(raw) && !raw[i].IsMove() {
			if err := g.Apply(raw[i]); err != nil {
				return nil, fmt.Errorf("%w: step %d: %w", ErrCompaction, i, err)
			}
			out = append(out, raw[i])
			i++
		}

		// Sum the following movement run to find where it ends.
		target := g.Player
		for i < len(raw) && raw[i].IsMove() {
			d, _ := raw[i].Dir()
			target = target.Step(d, 1)
			i++
		}

		path, err := shortestPath(g, target)
		if err != nil {
			return nil, err
		}
		out = append(out, path...)

		if g.IsComplete() {
			break
		}
	}
	return out, nil
}

// shortestPath finds the fewest plain moves from the player's position to
// target, stopping early on a Finish tile. On success the player of g is left
// on the reached cell.
func shortestPath(g *core.Grid, target core.Pos) ([]core.Action, error) {
	type step struct {
		pos   core.Pos
		moves []core.Action
	}

	start := g.Player
	visited := mapset.New[core.Pos]()
	visited.Put(start)
	queue := []step{{pos: start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		g.MovePlayerTo(cur.pos)
		if cur.pos == target || g.IsComplete() {
			return cur.moves, nil
		}

		for _, d := range core.Dirs {
			if !g.CanMove(d) {
				continue
			}
			next := cur.pos.Step(d, 1)
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			moves := make([]core.Action, len(cur.moves), len(cur.moves)+1)
			copy(moves, cur.moves)
			queue = append(queue, step{pos: next, moves: append(moves, core.MoveAction(d))})
		}
	}

	g.MovePlayerTo(start)
	return nil, fmt.Errorf("%w: %s unreachable from %s", ErrCompaction, target, start)
}
