package tui

import (
	"strings"

	"github.com/vovakirdan/rotary/internal/core"
)

// RenderBoard draws a grid with one styled glyph per tile, separated by
// spaces. The player's tile is drawn as '@'.
func RenderBoard(g *core.Grid, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(g.W*g.H*8 + g.H)

	for r := 0; r < g.H; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := 0; c < g.W; c++ {
			if c > 0 {
				sb.WriteRune(' ')
			}
			p := core.P(r, c)
			t := g.Get(p)
			switch {
			case p == g.Player:
				sb.WriteString(theme.Player.Render("@"))
			case t.Kind == core.KindEmpty:
				sb.WriteString(theme.EmptyCell.Render(string(t.Glyph())))
			default:
				sb.WriteString(theme.TileStyle(t.Color).Render(string(t.Glyph())))
			}
		}
	}
	return sb.String()
}
