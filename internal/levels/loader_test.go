package levels_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/rotary/internal/core"
	"github.com/vovakirdan/rotary/internal/levels"
	"github.com/vovakirdan/rotary/internal/solver"
)

func TestLoadAll(t *testing.T) {
	loader := levels.NewLoader("testdata")

	packs, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	// broken.yaml has ragged rows and must be skipped.
	if len(packs) != 2 {
		t.Fatalf("expected 2 packs, got %d", len(packs))
	}
	if packs[0].ID != "basic" || packs[1].ID != "extra" {
		t.Errorf("packs not sorted by id: %q, %q", packs[0].ID, packs[1].ID)
	}
	if packs[0].Len() != 4 {
		t.Errorf("basic: expected 4 levels, got %d", packs[0].Len())
	}
	if packs[0].Metadata["difficulty"] != "easy" {
		t.Errorf("basic: metadata not loaded: %v", packs[0].Metadata)
	}
	if packs[1].FilePath != filepath.Join("testdata", "nested", "extra.yml") {
		t.Errorf("extra: unexpected path %q", packs[1].FilePath)
	}
}

func TestLoadByID(t *testing.T) {
	loader := levels.NewLoader("testdata")

	pack, err := loader.LoadByID("extra")
	if err != nil {
		t.Fatalf("LoadByID() failed: %v", err)
	}
	if pack.Name != "Extras" {
		t.Errorf("expected name Extras, got %q", pack.Name)
	}

	if _, err := loader.LoadByID("broken"); err == nil {
		t.Error("expected error for pack that failed to load")
	}
}

func TestListIDs(t *testing.T) {
	ids, err := levels.NewLoader("testdata").ListIDs()
	if err != nil {
		t.Fatalf("ListIDs() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "basic" || ids[1] != "extra" {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestLoadAllMissingRoot(t *testing.T) {
	if _, err := levels.NewLoader(filepath.Join(t.TempDir(), "missing")).LoadAll(); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestLoadFileRejectsBrokenPack(t *testing.T) {
	if _, err := levels.NewLoader("testdata").LoadFile(filepath.Join("testdata", "broken.yaml")); err == nil {
		t.Error("expected error for ragged rows")
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.json")
	if err := os.WriteFile(path, []byte(`{"id":"x"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := levels.NewLoader(filepath.Dir(path)).LoadFile(path); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestLoadedLevelIsCropped(t *testing.T) {
	pack, err := levels.NewLoader("testdata").LoadByID("basic")
	if err != nil {
		t.Fatal(err)
	}

	g := pack.Levels[1].Grid
	if g.W != 3 || g.H != 1 {
		t.Fatalf("Locked Door: expected 3x1 after cropping, got %dx%d", g.W, g.H)
	}
	if g.Player != core.P(0, 0) {
		t.Errorf("player should be shifted by the crop, got %s", g.Player)
	}
	key := g.Get(core.P(0, 0))
	if key.Kind != core.KindKey || key.Pos != core.P(0, 0) {
		t.Errorf("key should know its cropped position, got %+v", key)
	}
}

func TestPackLevelReturnsCopy(t *testing.T) {
	pack, err := levels.NewLoader("testdata").LoadByID("basic")
	if err != nil {
		t.Fatal(err)
	}

	g, err := pack.Level(0)
	if err != nil {
		t.Fatalf("Level(0) failed: %v", err)
	}
	g.MoveRight()
	if pack.Levels[0].Grid.Player != core.P(0, 0) {
		t.Error("mutating a level copy changed the pack")
	}

	if _, err := pack.Level(4); err == nil {
		t.Error("expected error for out of range level")
	}
	if _, err := pack.Level(-1); err == nil {
		t.Error("expected error for negative level")
	}
}

func TestPackLevelsAreSolvable(t *testing.T) {
	packs, err := levels.NewLoader("testdata").LoadAll()
	if err != nil {
		t.Fatal(err)
	}

	s := solver.New(solver.DefaultConfig())
	for _, pack := range packs {
		for i, l := range pack.Levels {
			sol, err := s.Solve(context.Background(), l.Grid)
			if err != nil {
				t.Fatalf("%s/%s: Solve() failed: %v", pack.ID, l.Name, err)
			}
			if !sol.Found {
				t.Errorf("%s/%s: expected a solution", pack.ID, l.Name)
				continue
			}
			g, _ := pack.Level(i)
			if err := solver.Verify(g, sol.Actions); err != nil {
				t.Errorf("%s/%s: solution %s does not verify: %v",
					pack.ID, l.Name, core.FormatActions(sol.Actions), err)
			}
		}
	}
}
