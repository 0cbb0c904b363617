package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/rotary/internal/core"
)

func TestActionLabels(t *testing.T) {
	want := []string{"Move Up", "Move Right", "Move Down", "Move Left", "Rotate Left", "Rotate Right", "Activate Tile"}
	for i, a := range core.Actions {
		if a.String() != want[i] {
			t.Errorf("action %d: expected %q, got %q", i, want[i], a.String())
		}
	}
}

func TestActionDir(t *testing.T) {
	for _, d := range core.Dirs {
		a := core.MoveAction(d)
		if !a.IsMove() {
			t.Errorf("%s should be a move", a)
		}
		if got, ok := a.Dir(); !ok || got != d {
			t.Errorf("%s: expected dir %s, got %s", a, d, got)
		}
	}
	if _, ok := core.Activate.Dir(); ok {
		t.Error("Activate has no direction")
	}
}

func TestParseAction(t *testing.T) {
	testCases := []struct {
		in   string
		want core.Action
	}{
		{"U", core.MoveUp},
		{"rr", core.RotateRight},
		{" RL ", core.RotateLeft},
		{"Activate Tile", core.Activate},
		{"move left", core.MoveLeft},
	}

	for _, tc := range testCases {
		got, err := core.ParseAction(tc.in)
		if err != nil {
			t.Errorf("ParseAction(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAction(%q): expected %s, got %s", tc.in, tc.want, got)
		}
	}

	if _, err := core.ParseAction("jump"); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestFormatActions(t *testing.T) {
	seq := []core.Action{core.MoveRight, core.RotateLeft, core.Activate, core.MoveDown}
	if got := core.FormatActions(seq); got != "R,RL,A,D" {
		t.Errorf("FormatActions: got %q", got)
	}

	parsed, err := core.ParseActions("R,RL,A,D")
	if err != nil {
		t.Fatalf("ParseActions() failed: %v", err)
	}
	if len(parsed) != len(seq) {
		t.Fatalf("expected %d actions, got %d", len(seq), len(parsed))
	}

	empty, err := core.ParseActions("")
	if err != nil || len(empty) != 0 {
		t.Errorf("empty string should parse to an empty sequence, got %v, %v", empty, err)
	}

	if _, err := core.ParseActions("R,X"); err == nil || !strings.Contains(err.Error(), "action 1") {
		t.Errorf("expected positional error, got %v", err)
	}
}

func TestApply(t *testing.T) {
	g := corridor()
	for _, a := range []core.Action{core.MoveRight, core.MoveRight} {
		if err := g.Apply(a); err != nil {
			t.Fatalf("Apply(%s) failed: %v", a, err)
		}
	}
	if !g.IsComplete() {
		t.Error("expected complete after two moves")
	}
	if err := g.Apply(core.Activate); !errors.Is(err, core.ErrIllegalAction) {
		t.Errorf("activating a finish tile: expected ErrIllegalAction, got %v", err)
	}
}
