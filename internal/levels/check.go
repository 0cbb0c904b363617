package levels

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/rotary/internal/core"
)

// Severity classifies a pack issue.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the string representation of a severity.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is a problem found by Check.
type Issue struct {
	Level    int // -1 for pack-wide issues
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	if i.Level < 0 {
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("%s: level %d: %s", i.Severity, i.Level, i.Message)
}

// Check looks for problems that loading alone does not reject: duplicate
// level names, levels that cannot possibly be finished and action tiles that
// can never fire.
func Check(p *Pack) []Issue {
	var issues []Issue
	if len(p.Levels) == 0 {
		issues = append(issues, Issue{Level: -1, Severity: SeverityError, Message: "pack has no levels"})
	}

	names := mapset.New[string]()
	for i, l := range p.Levels {
		if names.Has(l.Name) {
			issues = append(issues, Issue{Level: i, Severity: SeverityWarning, Message: fmt.Sprintf("duplicate level name %q", l.Name)})
		}
		names.Put(l.Name)
		issues = append(issues, checkGrid(i, l.Grid)...)
	}
	return issues
}

func checkGrid(level int, g *core.Grid) []Issue {
	var issues []Issue
	if err := g.Validate(); err != nil {
		return append(issues, Issue{Level: level, Severity: SeverityError, Message: err.Error()})
	}
	if g.CountKind(core.KindFinish) == 0 {
		issues = append(issues, Issue{Level: level, Severity: SeverityError, Message: "no finish tile"})
	}

	// Colors a transporter may end up with: its own, or any color a paint
	// tile can apply.
	reachable := mapset.New[core.Color]()
	for _, t := range g.Tiles {
		switch t.Kind {
		case core.KindTransport:
			reachable.Put(t.Color)
		case core.KindPaint:
			reachable.Put(t.Color)
			reachable.Put(t.Target)
		}
	}

	// Painting only moves colors between tiles, so a target color missing
	// now can never appear.
	present := mapset.New[core.Color]()
	for _, t := range g.Tiles {
		if t.Kind != core.KindEmpty {
			present.Put(t.Color)
		}
	}
	for _, p := range g.Find(core.KindPaint) {
		if t := g.Get(p); !present.Has(t.Target) {
			issues = append(issues, Issue{Level: level, Severity: SeverityWarning,
				Message: fmt.Sprintf("paint at %s targets %s but no tile has that color", p, t.Target)})
		}
	}

	if keys := g.Find(core.KindKey); len(keys) > 0 && g.CountKind(core.KindLocked) == 0 {
		issues = append(issues, Issue{Level: level, Severity: SeverityWarning,
			Message: fmt.Sprintf("%d key tile(s) but no locks", len(keys))})
	}
	transporters := g.Find(core.KindTransport)
	if len(transporters) == 1 {
		issues = append(issues, Issue{Level: level, Severity: SeverityWarning,
			Message: fmt.Sprintf("transporter at %s has no partner", transporters[0])})
	}
	for _, p := range transporters {
		t := g.Get(p)
		if !reachable.Has(t.Target) {
			issues = append(issues, Issue{Level: level, Severity: SeverityWarning,
				Message: fmt.Sprintf("transporter at %s targets %s but no transporter can have that color", p, t.Target)})
		}
	}
	return issues
}
