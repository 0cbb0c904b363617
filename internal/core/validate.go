package core

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is matched by every ValidationError.
	ErrMalformed = errors.New("malformed grid")
	// ErrIllegalAction is returned by Apply when the action is not currently legal.
	ErrIllegalAction = errors.New("illegal action")
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrMalformed) hold for validation errors.
func (e ValidationError) Is(target error) bool {
	return target == ErrMalformed
}

// Validate checks the structural invariants the solver relies on:
//   - positive dimensions and len(Tiles) == W*H
//   - known kinds, colors and launcher facings
//   - every action tile records its own position
//   - the player stands on an enterable tile
func (g *Grid) Validate() error {
	if g.W <= 0 || g.H <= 0 {
		return ValidationError{
			Code:    "BAD_SIZE",
			Message: fmt.Sprintf("grid must be at least 1x1, got %dx%d", g.W, g.H),
		}
	}
	if len(g.Tiles) != g.W*g.H {
		return ValidationError{
			Code:    "BAD_SIZE",
			Message: fmt.Sprintf("grid %dx%d has %d tiles", g.W, g.H, len(g.Tiles)),
		}
	}

	for i, t := range g.Tiles {
		p := P(i/g.W, i%g.W)
		if err := validateTile(t, p); err != nil {
			return err
		}
	}

	if !g.InBounds(g.Player) {
		return ValidationError{
			Code:    "PLAYER_OUT_OF_BOUNDS",
			Message: fmt.Sprintf("player at %s outside %dx%d grid", g.Player, g.W, g.H),
		}
	}
	if !g.Current().CanEnter() {
		return ValidationError{
			Code:    "PLAYER_ON_EMPTY",
			Message: fmt.Sprintf("player at %s is not on an enterable tile", g.Player),
		}
	}
	return nil
}

func validateTile(t Tile, p Pos) error {
	if !t.Kind.Valid() {
		return ValidationError{
			Code:    "INVALID_KIND",
			Message: fmt.Sprintf("tile at %s has unknown kind %d", p, t.Kind),
		}
	}
	colors := append([]Color{t.Color, t.Target}, t.Conn[:]...)
	for _, c := range colors {
		if !c.Valid() {
			return ValidationError{
				Code:    "INVALID_COLOR",
				Message: fmt.Sprintf("tile at %s has color %d out of range", p, c),
			}
		}
	}
	if t.Kind == KindLauncher && !t.Facing.Valid() {
		return ValidationError{
			Code:    "INVALID_FACING",
			Message: fmt.Sprintf("launcher at %s has facing %d", p, t.Facing),
		}
	}
	if t.Kind.IsAction() && t.Pos != p {
		return ValidationError{
			Code:    "POSITION_MISMATCH",
			Message: fmt.Sprintf("%s tile at %s records position %s", t.Kind, p, t.Pos),
		}
	}
	return nil
}
