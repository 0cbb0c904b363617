// Package core provides the tile and grid model for the Rotary puzzle.
// This package is UI-agnostic and deterministic.
package core

// Dir represents one of the four cardinal directions.
// The numeric values double as connector indices on a tile.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
	dirCount
)

// Dirs lists the directions in the order the solver explores them.
var Dirs = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Dir) Valid() bool {
	return d < dirCount
}

// Delta returns the (dRow, dCol) offset for moving one step in this direction.
// Up decreases the row, Down increases it.
func (d Dir) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	return (d + 2) % dirCount
}

// RotateLeft returns the direction a quarter turn counter-clockwise.
func (d Dir) RotateLeft() Dir {
	return (d + 3) % dirCount
}

// RotateRight returns the direction a quarter turn clockwise.
func (d Dir) RotateRight() Dir {
	return (d + 1) % dirCount
}

// Arrow returns a single character pointing in the direction.
func (d Dir) Arrow() rune {
	switch d {
	case DirUp:
		return '^'
	case DirRight:
		return '>'
	case DirDown:
		return 'v'
	case DirLeft:
		return '<'
	default:
		return '?'
	}
}

// DirFromArrow is the inverse of Arrow.
func DirFromArrow(r rune) (Dir, bool) {
	switch r {
	case '^':
		return DirUp, true
	case '>':
		return DirRight, true
	case 'v':
		return DirDown, true
	case '<':
		return DirLeft, true
	default:
		return DirUp, false
	}
}
