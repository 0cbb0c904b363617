package core

import (
	"fmt"
	"strings"
)

// Action is a single player step. The declaration order is the order in
// which solutions are explored and tie-broken.
type Action uint8

const (
	MoveUp Action = iota
	MoveRight
	MoveDown
	MoveLeft
	RotateLeft
	RotateRight
	Activate
	actionCount
)

// Actions lists every action in declaration order.
var Actions = [...]Action{MoveUp, MoveRight, MoveDown, MoveLeft, RotateLeft, RotateRight, Activate}

// String returns the human-readable label used by the solution display.
func (a Action) String() string {
	switch a {
	case MoveUp:
		return "Move Up"
	case MoveRight:
		return "Move Right"
	case MoveDown:
		return "Move Down"
	case MoveLeft:
		return "Move Left"
	case RotateLeft:
		return "Rotate Left"
	case RotateRight:
		return "Rotate Right"
	case Activate:
		return "Activate Tile"
	default:
		return "Unknown"
	}
}

// Code returns the compact stable form of the action.
func (a Action) Code() string {
	switch a {
	case MoveUp:
		return "U"
	case MoveRight:
		return "R"
	case MoveDown:
		return "D"
	case MoveLeft:
		return "L"
	case RotateLeft:
		return "RL"
	case RotateRight:
		return "RR"
	case Activate:
		return "A"
	default:
		return "?"
	}
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	return a < actionCount
}

// IsMove reports whether the action moves the player by one cell.
func (a Action) IsMove() bool {
	return a <= MoveLeft
}

// Dir returns the direction of a move action. ok is false for non-moves.
func (a Action) Dir() (d Dir, ok bool) {
	if !a.IsMove() {
		return DirUp, false
	}
	return Dir(a), true
}

// MoveAction returns the move action for a direction.
func MoveAction(d Dir) Action {
	return Action(d)
}

// ParseAction accepts either a code ("RL") or a label ("Rotate Left").
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	for _, a := range Actions {
		if strings.EqualFold(s, a.Code()) || strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// FormatActions joins action codes with commas.
func FormatActions(actions []Action) string {
	codes := make([]string, len(actions))
	for i, a := range actions {
		codes[i] = a.Code()
	}
	return strings.Join(codes, ",")
}

// ParseActions is the inverse of FormatActions. An empty string is an empty sequence.
func ParseActions(s string) ([]Action, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []Action{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]Action, 0, len(parts))
	for i, p := range parts {
		a, err := ParseAction(p)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// CanApply reports whether the action is currently legal.
func (g *Grid) CanApply(a Action) bool {
	switch a {
	case MoveUp, MoveRight, MoveDown, MoveLeft:
		d, _ := a.Dir()
		return g.CanMove(d)
	case RotateLeft, RotateRight:
		return g.CanRotate()
	case Activate:
		return g.CanActivate()
	default:
		return false
	}
}

// Apply performs the action after checking that it is legal.
func (g *Grid) Apply(a Action) error {
	if !g.CanApply(a) {
		return fmt.Errorf("%w: %s at %s", ErrIllegalAction, a, g.Player)
	}
	switch a {
	case MoveUp, MoveRight, MoveDown, MoveLeft:
		d, _ := a.Dir()
		g.Move(d)
	case RotateLeft:
		g.RotateLeft()
	case RotateRight:
		g.RotateRight()
	case Activate:
		g.Activate()
	}
	return nil
}
