package core

import (
	"fmt"
	"strings"
)

// Glyph returns the single-character symbol of a tile kind. Unlocked locks
// render in lowercase.
func (t Tile) Glyph() rune {
	switch t.Kind {
	case KindGeneric:
		return 'G'
	case KindStatic:
		return 'X'
	case KindStart:
		return 'S'
	case KindFinish:
		return 'F'
	case KindLocked:
		if t.Unlocked {
			return 'l'
		}
		return 'L'
	case KindKey:
		return 'K'
	case KindPaint:
		return 'P'
	case KindLauncher:
		return t.Facing.Arrow()
	case KindTransport:
		return 'T'
	default:
		return '.'
	}
}

// RenderASCII draws the grid as 3x3 character blocks per tile: the kind glyph
// in the middle, connector colors as digits on the four sides and '@' in the
// top-left corner of the player's tile.
//
//	@1.
//	2G0
//	.3.
//
// Zero connectors and empty tiles are drawn as '.'.
func RenderASCII(g *Grid) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%dx%d player %s\n", g.W, g.H, g.Player))
	for r := 0; r < g.H; r++ {
		var top, mid, bot strings.Builder
		for c := 0; c < g.W; c++ {
			t := g.TileAt(r, c)
			corner := '.'
			if g.Player == P(r, c) {
				corner = '@'
			}
			top.WriteRune(corner)
			top.WriteRune(connRune(t, DirUp))
			top.WriteRune('.')
			mid.WriteRune(connRune(t, DirLeft))
			mid.WriteRune(t.Glyph())
			mid.WriteRune(connRune(t, DirRight))
			bot.WriteRune('.')
			bot.WriteRune(connRune(t, DirDown))
			bot.WriteRune('.')
		}
		sb.WriteString(top.String() + "\n")
		sb.WriteString(mid.String() + "\n")
		sb.WriteString(bot.String() + "\n")
	}
	return sb.String()
}

func connRune(t Tile, d Dir) rune {
	c := t.Connector(d)
	if t.Kind == KindEmpty || c == ColorNone {
		return '.'
	}
	return rune(c.Digit())
}

// RenderGrid renders one glyph per tile with the player shown as '@'.
func RenderGrid(g *Grid) string {
	var sb strings.Builder
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			if g.Player == P(r, c) {
				sb.WriteRune('@')
				continue
			}
			sb.WriteRune(g.TileAt(r, c).Glyph())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// String implements fmt.Stringer using RenderGrid.
func (g *Grid) String() string {
	return RenderGrid(g)
}
