package core

// Grid is the complete puzzle state: a rectangular board of tiles plus the
// player position. Tiles are stored in row-major order: index = row*W + col.
type Grid struct {
	W      int    // Number of columns
	H      int    // Number of rows
	Tiles  []Tile // Flat array of tiles, length W*H
	Player Pos
}

// NewGrid creates a grid of the given size with every tile empty.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{
		W:     w,
		H:     h,
		Tiles: make([]Tile, w*h),
	}
}

// FromRows builds a grid from tile rows. Rows must be non-empty and of equal
// length; action tiles get their Pos set to their cell.
func FromRows(rows [][]Tile, player Pos) *Grid {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g := NewGrid(w, h)
	for r, row := range rows {
		for c, t := range row {
			if c >= w {
				break
			}
			if t.Kind.IsAction() {
				t.Pos = P(r, c)
			}
			g.Tiles[g.index(P(r, c))] = t
		}
	}
	g.Player = player
	return g
}

// index converts a position to a flat array index.
func (g *Grid) index(p Pos) int {
	return p.Row*g.W + p.Col
}

// InBounds returns true if the position is within the grid boundaries.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.H && p.Col >= 0 && p.Col < g.W
}

// Get returns the tile at the given position.
// Returns an empty tile if out of bounds.
func (g *Grid) Get(p Pos) Tile {
	if !g.InBounds(p) {
		return Empty()
	}
	return g.Tiles[g.index(p)]
}

// TileAt returns the tile at (row, col), or an empty tile when out of bounds.
func (g *Grid) TileAt(row, col int) Tile {
	return g.Get(P(row, col))
}

// Set replaces the tile at the given position.
func (g *Grid) Set(p Pos, t Tile) {
	if g.InBounds(p) {
		g.Tiles[g.index(p)] = t
	}
}

// at returns a pointer to the tile at p. The caller must check bounds.
func (g *Grid) at(p Pos) *Tile {
	return &g.Tiles[g.index(p)]
}

// Current returns the tile under the player.
func (g *Grid) Current() Tile {
	return g.Get(g.Player)
}

// PlayerPosition returns the player's (row, col).
func (g *Grid) PlayerPosition() (row, col int) {
	return g.Player.Row, g.Player.Col
}

// MovePlayerTo places the player at p without any legality check.
func (g *Grid) MovePlayerTo(p Pos) {
	g.Player = p
}

// CanMove reports whether the player can step one cell in direction d.
func (g *Grid) CanMove(d Dir) bool {
	if !d.Valid() {
		return false
	}
	to := g.Player.Step(d, 1)
	if !g.InBounds(to) || !g.InBounds(g.Player) {
		return false
	}
	return g.Get(g.Player).Connects(d, g.Get(to))
}

// Move steps the player one cell in direction d. The caller is expected to
// have checked CanMove; an illegal move still updates the position.
func (g *Grid) Move(d Dir) {
	g.Player = g.Player.Step(d, 1)
}

func (g *Grid) CanMoveUp() bool    { return g.CanMove(DirUp) }
func (g *Grid) CanMoveRight() bool { return g.CanMove(DirRight) }
func (g *Grid) CanMoveDown() bool  { return g.CanMove(DirDown) }
func (g *Grid) CanMoveLeft() bool  { return g.CanMove(DirLeft) }

func (g *Grid) MoveUp()    { g.Move(DirUp) }
func (g *Grid) MoveRight() { g.Move(DirRight) }
func (g *Grid) MoveDown()  { g.Move(DirDown) }
func (g *Grid) MoveLeft()  { g.Move(DirLeft) }

// CanRotate reports whether the tile under the player can rotate.
func (g *Grid) CanRotate() bool {
	return g.Current().CanRotate()
}

// RotateLeft turns the tile under the player counter-clockwise and every
// existing neighbour, diagonals included, clockwise.
func (g *Grid) RotateLeft() {
	g.rotate(false)
}

// RotateRight turns the tile under the player clockwise and every existing
// neighbour, diagonals included, counter-clockwise.
func (g *Grid) RotateRight() {
	g.rotate(true)
}

func (g *Grid) rotate(right bool) {
	if !g.InBounds(g.Player) {
		return
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			p := g.Player.Add(dr, dc)
			if !g.InBounds(p) {
				continue
			}
			t := g.at(p)
			// The center turns one way, the ring the other.
			center := dr == 0 && dc == 0
			if center == right {
				t.RotateRight()
			} else {
				t.RotateLeft()
			}
		}
	}
}

// IsComplete reports whether the player stands on a Finish tile.
func (g *Grid) IsComplete() bool {
	return g.Current().Kind == KindFinish
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	return &Grid{
		W:      g.W,
		H:      g.H,
		Tiles:  tiles,
		Player: g.Player,
	}
}

// Equal returns true if both grids have the same dimensions, player position
// and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	if g.W != other.W || g.H != other.H || g.Player != other.Player {
		return false
	}
	if len(g.Tiles) != len(other.Tiles) {
		return false
	}
	for i, t := range g.Tiles {
		if t != other.Tiles[i] {
			return false
		}
	}
	return true
}

// CountKind returns the number of tiles of the given kind.
func (g *Grid) CountKind(k Kind) int {
	n := 0
	for _, t := range g.Tiles {
		if t.Kind == k {
			n++
		}
	}
	return n
}

// Find returns the positions of every tile of the given kind in row-major order.
func (g *Grid) Find(k Kind) []Pos {
	var out []Pos
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			if g.Tiles[r*g.W+c].Kind == k {
				out = append(out, P(r, c))
			}
		}
	}
	return out
}
