package core

// CanActivate reports whether activating the tile under the player would
// change anything.
func (g *Grid) CanActivate() bool {
	t := g.Current()
	switch t.Kind {
	case KindKey:
		return g.anyTile(func(o Tile) bool {
			return o.Kind == KindLocked && o.Color == t.Target
		})
	case KindPaint:
		return g.anyTile(func(o Tile) bool {
			return o.Color == t.Target
		})
	case KindLauncher:
		_, ok := g.launchTarget(t)
		return ok
	case KindTransport:
		return len(g.transportTargets(t)) > 0
	default:
		return false
	}
}

// Activate fires the effect of the tile under the player. It does nothing
// when CanActivate is false.
func (g *Grid) Activate() {
	if !g.CanActivate() {
		return
	}
	t := g.Current()
	switch t.Kind {
	case KindKey:
		for i := range g.Tiles {
			if g.Tiles[i].Kind == KindLocked && g.Tiles[i].Color == t.Target {
				g.Tiles[i].ToggleLock()
			}
		}
	case KindPaint:
		for i := range g.Tiles {
			if g.Tiles[i].Color == t.Target {
				g.Tiles[i].Recolor(t.Color)
			}
		}
		if g.InBounds(t.Pos) {
			self := g.at(t.Pos)
			self.Color, self.Target = t.Target, t.Color
		}
	case KindLauncher:
		if to, ok := g.launchTarget(t); ok {
			g.Player = to
		}
	case KindTransport:
		targets := g.transportTargets(t)
		if len(targets) == 0 {
			return
		}
		g.Player = targets[g.transportIndex(t)%len(targets)]
	}
}

// anyTile reports whether any tile satisfies fn.
func (g *Grid) anyTile(fn func(Tile) bool) bool {
	for _, t := range g.Tiles {
		if fn(t) {
			return true
		}
	}
	return false
}

// launchTarget returns the landing cell two steps along the launcher's facing.
func (g *Grid) launchTarget(t Tile) (Pos, bool) {
	to := t.Pos.Step(t.Facing, 2)
	if !g.InBounds(to) || !g.Get(to).CanEnter() {
		return Pos{}, false
	}
	return to, true
}

// transportTargets lists, in row-major order, every other transporter whose
// color matches t's target.
func (g *Grid) transportTargets(t Tile) []Pos {
	var out []Pos
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			p := P(r, c)
			if p == t.Pos {
				continue
			}
			o := g.Tiles[g.index(p)]
			if o.Kind == KindTransport && o.Color == t.Target {
				out = append(out, p)
			}
		}
	}
	return out
}

// transportIndex is the number of matching transporters that precede t in
// row-major order. Cycling through targets from this index makes a pair of
// transporters always swap with each other.
func (g *Grid) transportIndex(t Tile) int {
	n := 0
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			p := P(r, c)
			if p == t.Pos {
				return n
			}
			o := g.Tiles[g.index(p)]
			if o.Kind == KindTransport && o.Color == t.Target {
				n++
			}
		}
	}
	return n
}
