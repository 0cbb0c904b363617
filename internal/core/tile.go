package core

// Kind identifies the variant of a tile.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindGeneric
	KindStatic
	KindStart
	KindFinish
	KindLocked
	KindKey
	KindPaint
	KindLauncher
	KindTransport
	kindCount
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindGeneric:
		return "generic"
	case KindStatic:
		return "static"
	case KindStart:
		return "start"
	case KindFinish:
		return "finish"
	case KindLocked:
		return "locked"
	case KindKey:
		return "key"
	case KindPaint:
		return "paint"
	case KindLauncher:
		return "launcher"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k < kindCount
}

// IsAction reports whether tiles of this kind have a location-dependent
// activation effect and therefore carry their own coordinates.
func (k Kind) IsAction() bool {
	switch k {
	case KindKey, KindPaint, KindLauncher, KindTransport:
		return true
	default:
		return false
	}
}

// Tile is a single grid cell. It is a plain comparable value: two tiles are
// equal under == exactly when they are the same variant with the same color,
// connectors and variant fields. Constructors leave fields that do not apply
// to a kind at their zero value so that == stays meaningful.
type Tile struct {
	Kind  Kind
	Color Color
	Conn  [4]Color // Indexed by Dir; ColorNone means no connection

	Target   Color // Key, Paint, Transport, Launcher
	Unlocked bool  // Locked only
	Facing   Dir   // Launcher only
	Pos      Pos   // Action tiles only: the tile's own grid coordinates
}

// Empty returns an empty tile. Empty tiles cannot be entered or rotated.
func Empty() Tile {
	return Tile{Kind: KindEmpty}
}

// Generic returns a plain rotatable tile.
func Generic(color Color, conn [4]Color) Tile {
	return Tile{Kind: KindGeneric, Color: color, Conn: conn}
}

// Static returns a tile that can be entered but never rotated.
func Static(color Color, conn [4]Color) Tile {
	return Tile{Kind: KindStatic, Color: color, Conn: conn}
}

// Start returns a start tile.
func Start(color Color, conn [4]Color) Tile {
	return Tile{Kind: KindStart, Color: color, Conn: conn}
}

// Finish returns a finish tile. Standing on one completes the level.
func Finish(color Color, conn [4]Color) Tile {
	return Tile{Kind: KindFinish, Color: color, Conn: conn}
}

// Locked returns a locked tile, rotatable only while unlocked.
func Locked(color Color, conn [4]Color, unlocked bool) Tile {
	return Tile{Kind: KindLocked, Color: color, Conn: conn, Unlocked: unlocked}
}

// Key returns a key tile located at pos that toggles locks of the target color.
func Key(color, target Color, conn [4]Color, pos Pos) Tile {
	return Tile{Kind: KindKey, Color: color, Conn: conn, Target: target, Pos: pos}
}

// Paint returns a paint tile located at pos that repaints tiles of the target color.
func Paint(color, target Color, conn [4]Color, pos Pos) Tile {
	return Tile{Kind: KindPaint, Color: color, Conn: conn, Target: target, Pos: pos}
}

// Launcher returns a launcher tile located at pos facing the given direction.
func Launcher(color, target Color, conn [4]Color, facing Dir, pos Pos) Tile {
	return Tile{Kind: KindLauncher, Color: color, Conn: conn, Target: target, Facing: facing, Pos: pos}
}

// Transport returns a transport tile located at pos linked to transporters of the target color.
func Transport(color, target Color, conn [4]Color, pos Pos) Tile {
	return Tile{Kind: KindTransport, Color: color, Conn: conn, Target: target, Pos: pos}
}

// Conns is a convenience constructor for a connector array in Up, Right, Down, Left order.
func Conns(up, right, down, left Color) [4]Color {
	return [4]Color{up, right, down, left}
}

// CanEnter reports whether the player may stand on the tile.
func (t Tile) CanEnter() bool {
	return t.Kind != KindEmpty
}

// CanRotate reports whether the tile turns when rotated.
func (t Tile) CanRotate() bool {
	switch t.Kind {
	case KindEmpty, KindStatic, KindStart, KindFinish:
		return false
	case KindLocked:
		return t.Unlocked
	default:
		return true
	}
}

// Activatable reports whether the tile kind has an activation effect at all.
// Whether it can fire right now also depends on the grid; see Grid.CanActivate.
func (t Tile) Activatable() bool {
	return t.Kind.IsAction()
}

// Connector returns the connector color on the given side.
func (t Tile) Connector(d Dir) Color {
	if !d.Valid() {
		return ColorNone
	}
	return t.Conn[d]
}

// Connects reports whether a player on t can step in direction d onto target.
func (t Tile) Connects(d Dir, target Tile) bool {
	c := t.Connector(d)
	return c != ColorNone && c == target.Connector(d.Opposite()) && target.CanEnter()
}

// RotateLeft turns the tile a quarter turn counter-clockwise.
// Tiles that cannot rotate are left unchanged.
func (t *Tile) RotateLeft() {
	if !t.CanRotate() {
		return
	}
	first := t.Conn[DirUp]
	t.Conn[DirUp] = t.Conn[DirRight]
	t.Conn[DirRight] = t.Conn[DirDown]
	t.Conn[DirDown] = t.Conn[DirLeft]
	t.Conn[DirLeft] = first
	if t.Kind == KindLauncher {
		t.Facing = t.Facing.RotateLeft()
	}
}

// RotateRight turns the tile a quarter turn clockwise.
// Tiles that cannot rotate are left unchanged.
func (t *Tile) RotateRight() {
	if !t.CanRotate() {
		return
	}
	last := t.Conn[DirLeft]
	t.Conn[DirLeft] = t.Conn[DirDown]
	t.Conn[DirDown] = t.Conn[DirRight]
	t.Conn[DirRight] = t.Conn[DirUp]
	t.Conn[DirUp] = last
	if t.Kind == KindLauncher {
		t.Facing = t.Facing.RotateRight()
	}
}

// Recolor changes the tile color. Empty tiles have no color and ignore it.
func (t *Tile) Recolor(c Color) {
	if t.Kind == KindEmpty {
		return
	}
	t.Color = c
}

// ToggleLock flips the lock state of a Locked tile.
func (t *Tile) ToggleLock() {
	if t.Kind == KindLocked {
		t.Unlocked = !t.Unlocked
	}
}
