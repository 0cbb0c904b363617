package solver

import (
	"github.com/vovakirdan/rotary/internal/core"
)

// flood explores every cell reachable from the player's position by plain
// movement, moving the player of g in place. It reports true as soon as the
// player stands on a Finish tile; path then holds the full answer.
//
// At every cell the state-changing actions are tried on private copies and
// novel results are queued for the next level. seen is scoped to one flood
// call and is unmarked on the way out so sibling paths may cross a cell again.
func (s *search) flood(g *core.Grid, seen []bool, path *[]core.Action) (bool, error) {
	here := g.Player
	idx := here.Row*g.W + here.Col
	if seen[idx] {
		return false, nil
	}
	if g.IsComplete() {
		return true, nil
	}

	s.nodes++
	if s.nodes%s.poll == 0 {
		if err := s.ctx.Err(); err != nil {
			return false, err
		}
	}

	seen[idx] = true
	for _, d := range core.Dirs {
		if !g.CanMove(d) {
			continue
		}
		g.Move(d)
		*path = append(*path, core.MoveAction(d))
		found, err := s.flood(g, seen, path)
		if found || err != nil {
			return found, err
		}
		*path = (*path)[:len(*path)-1]
		g.MovePlayerTo(here)
	}

	if g.CanActivate() {
		s.branch(g, *path, core.Activate)
	}
	if g.CanRotate() {
		s.branch(g, *path, core.RotateLeft)
		s.branch(g, *path, core.RotateRight)
	}

	seen[idx] = false
	return false, nil
}

// branch applies a state-changing action to a copy of g and queues the copy
// for the next level if its state has not been seen before.
func (s *search) branch(g *core.Grid, path []core.Action, a core.Action) {
	next := g.Clone()
	switch a {
	case core.Activate:
		next.Activate()
	case core.RotateLeft:
		next.RotateLeft()
	case core.RotateRight:
		next.RotateRight()
	}

	key := next.Key()
	if s.visited.Has(key) {
		return
	}
	s.visited.Put(key)

	moves := make([]core.Action, len(path), len(path)+1)
	copy(moves, path)
	s.next = append(s.next, node{grid: next, moves: append(moves, a)})
}
