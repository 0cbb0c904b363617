package levels

import (
	"fmt"

	"github.com/vovakirdan/rotary/internal/core"
)

// Build turns parsed tile rows into a playable grid.
//
// Rows must all have the same width. The border of empty cells around the
// level is cropped away and action tiles are given their cropped positions.
// The player starts at player (in uncropped coordinates) when given,
// otherwise on the last Start tile in row-major order.
func Build(rows [][]core.Tile, player *core.Pos) (*core.Grid, error) {
	if len(rows) == 0 {
		return nil, core.ValidationError{Code: "NO_ROWS", Message: "level has no rows"}
	}
	width := len(rows[0])
	for r, row := range rows {
		if len(row) != width {
			return nil, core.ValidationError{
				Code:    "RAGGED_ROWS",
				Message: fmt.Sprintf("row %d has %d tiles, expected %d", r, len(row), width),
			}
		}
	}

	first, last, ok := bounds(rows)
	if !ok {
		return nil, core.ValidationError{Code: "NO_TILES", Message: "level has only empty cells"}
	}

	cropped := make([][]core.Tile, 0, last.Row-first.Row+1)
	for r := first.Row; r <= last.Row; r++ {
		cropped = append(cropped, rows[r][first.Col:last.Col+1])
	}

	g := core.FromRows(cropped, core.Pos{})
	if player != nil {
		g.MovePlayerTo(player.Add(-first.Row, -first.Col))
	} else {
		starts := g.Find(core.KindStart)
		if len(starts) == 0 {
			return nil, core.ValidationError{Code: "NO_START", Message: "level has no start tile and no player position"}
		}
		g.MovePlayerTo(starts[len(starts)-1])
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// bounds returns the smallest rectangle holding every non-empty tile.
func bounds(rows [][]core.Tile) (first, last core.Pos, ok bool) {
	first = core.P(len(rows), len(rows[0]))
	last = core.P(-1, -1)
	for r, row := range rows {
		for c, t := range row {
			if t.Kind == core.KindEmpty {
				continue
			}
			first.Row = min(first.Row, r)
			first.Col = min(first.Col, c)
			last.Row = max(last.Row, r)
			last.Col = max(last.Col, c)
		}
	}
	return first, last, last.Row >= 0
}
