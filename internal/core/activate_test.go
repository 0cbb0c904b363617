package core_test

import (
	"testing"

	"github.com/vovakirdan/rotary/internal/core"
)

func TestKeyTogglesMatchingLocks(t *testing.T) {
	g := core.FromRows([][]core.Tile{{
		core.Key(blue, red, core.Conns(0, 1, 0, 0), core.Pos{}),
		core.Locked(red, core.Conns(0, 1, 0, 1), false),
		core.Locked(blue, core.Conns(0, 0, 0, 1), false),
	}}, core.P(0, 0))

	if !g.CanActivate() {
		t.Fatal("key with a matching lock should be activatable")
	}
	g.Activate()

	if !g.TileAt(0, 1).Unlocked {
		t.Error("red lock should be unlocked")
	}
	if g.TileAt(0, 2).Unlocked {
		t.Error("blue lock should stay locked")
	}

	g.Activate()
	if g.TileAt(0, 1).Unlocked {
		t.Error("second activation should lock again")
	}
}

func TestKeyWithoutLocksCannotActivate(t *testing.T) {
	g := core.FromRows([][]core.Tile{{
		core.Key(blue, red, core.Conns(0, 1, 0, 0), core.Pos{}),
		core.Generic(red, core.Conns(0, 0, 0, 1)),
	}}, core.P(0, 0))

	if g.CanActivate() {
		t.Error("generic tiles of the target color are not locks")
	}
}

func TestPaintRecolorsAndSwaps(t *testing.T) {
	g := core.FromRows([][]core.Tile{{
		core.Paint(blue, red, core.Conns(0, 1, 0, 0), core.Pos{}),
		core.Generic(red, core.Conns(0, 1, 0, 1)),
		core.Generic(green, core.Conns(0, 0, 0, 1)),
	}}, core.P(0, 0))

	if !g.CanActivate() {
		t.Fatal("paint with a red tile on the board should be activatable")
	}
	g.Activate()

	if got := g.TileAt(0, 1).Color; got != blue {
		t.Errorf("red tile should become blue, got %s", got)
	}
	if got := g.TileAt(0, 2).Color; got != green {
		t.Errorf("green tile should be untouched, got %s", got)
	}
	paint := g.TileAt(0, 0)
	if paint.Color != red || paint.Target != blue {
		t.Errorf("paint should swap to color=red target=blue, got color=%s target=%s", paint.Color, paint.Target)
	}
}

func TestPaintCannotActivateWithoutTarget(t *testing.T) {
	g := core.FromRows([][]core.Tile{{
		core.Paint(blue, yellow, core.Conns(0, 1, 0, 0), core.Pos{}),
		core.Generic(red, core.Conns(0, 0, 0, 1)),
	}}, core.P(0, 0))

	if g.CanActivate() {
		t.Error("no yellow tiles, paint should not be activatable")
	}
	before := g.Clone()
	g.Activate()
	if !g.Equal(before) {
		t.Error("Activate with nothing to do changed the grid")
	}
}

func TestPaintLeavesEmptyTilesAlone(t *testing.T) {
	g := core.FromRows([][]core.Tile{{
		core.Paint(blue, none, core.Conns(0, 0, 0, 0), core.Pos{}),
		core.Empty(),
	}}, core.P(0, 0))

	g.Activate()
	if g.TileAt(0, 1) != core.Empty() {
		t.Errorf("empty tile was recolored: %+v", g.TileAt(0, 1))
	}
}

func TestLauncherJumpsTwoCells(t *testing.T) {
	g := core.FromRows([][]core.Tile{{
		core.Launcher(blue, none, core.Conns(0, 0, 0, 0), core.DirRight, core.Pos{}),
		core.Empty(),
		core.Finish(blue, core.Conns(0, 0, 0, 0)),
	}}, core.P(0, 0))

	if !g.CanActivate() {
		t.Fatal("launcher should be able to jump over the gap")
	}
	g.Activate()
	if g.Player != core.P(0, 2) {
		t.Errorf("expected player at (0,2), got %v", g.Player)
	}
	if !g.IsComplete() {
		t.Error("landing on finish should complete the level")
	}
}

func TestLauncherBlocked(t *testing.T) {
	testCases := []struct {
		name   string
		facing core.Dir
		land   core.Tile
	}{
		{"out of bounds", core.DirUp, core.Finish(blue, core.Conns(0, 0, 0, 0))},
		{"empty landing", core.DirRight, core.Empty()},
	}

	for _, tc := range testCases {
		g := core.FromRows([][]core.Tile{{
			core.Launcher(blue, none, core.Conns(0, 0, 0, 0), tc.facing, core.Pos{}),
			core.Empty(),
			tc.land,
		}}, core.P(0, 0))

		if g.CanActivate() {
			t.Errorf("%s: launcher should not be activatable", tc.name)
		}
	}
}

func TestTransportersSwap(t *testing.T) {
	g := core.FromRows([][]core.Tile{{
		core.Transport(blue, blue, core.Conns(0, 0, 0, 0), core.Pos{}),
		core.Generic(blue, core.Conns(0, 0, 0, 0)),
		core.Transport(blue, blue, core.Conns(0, 0, 0, 0), core.Pos{}),
	}}, core.P(0, 0))

	for i, want := range []core.Pos{core.P(0, 2), core.P(0, 0), core.P(0, 2)} {
		if !g.CanActivate() {
			t.Fatalf("step %d: transporter should be activatable", i)
		}
		g.Activate()
		if g.Player != want {
			t.Errorf("step %d: expected %v, got %v", i, want, g.Player)
		}
	}
}

func TestTransportersCycle(t *testing.T) {
	g := core.FromRows([][]core.Tile{{
		core.Transport(blue, blue, core.Conns(0, 0, 0, 0), core.Pos{}),
		core.Transport(blue, blue, core.Conns(0, 0, 0, 0), core.Pos{}),
		core.Transport(blue, blue, core.Conns(0, 0, 0, 0), core.Pos{}),
	}}, core.P(0, 0))

	for i, want := range []core.Pos{core.P(0, 1), core.P(0, 2), core.P(0, 0)} {
		g.Activate()
		if g.Player != want {
			t.Errorf("step %d: expected %v, got %v", i, want, g.Player)
		}
	}
}

func TestTransportIgnoresOtherColors(t *testing.T) {
	g := core.FromRows([][]core.Tile{{
		core.Transport(blue, red, core.Conns(0, 0, 0, 0), core.Pos{}),
		core.Transport(blue, blue, core.Conns(0, 0, 0, 0), core.Pos{}),
	}}, core.P(0, 0))

	if g.CanActivate() {
		t.Error("no red transporter exists, activation should be impossible")
	}
}
