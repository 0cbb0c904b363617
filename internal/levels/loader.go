// Package levels provides level pack loading for Rotary.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rotary/internal/core"
	"github.com/vovakirdan/rotary/internal/levels/formats"
)

// Level is a single ready-to-play level of a pack.
type Level struct {
	Name string
	Grid *core.Grid
}

// Pack is an ordered collection of levels loaded from one file.
type Pack struct {
	ID       string
	Name     string
	Metadata map[string]string
	Levels   []Level
	FilePath string
}

// PackID returns the pack identifier.
func (p *Pack) PackID() string {
	return p.ID
}

// Len returns the number of levels in the pack.
func (p *Pack) Len() int {
	return len(p.Levels)
}

// Level returns a fresh copy of level i.
func (p *Pack) Level(i int) (*core.Grid, error) {
	if i < 0 || i >= len(p.Levels) {
		return nil, fmt.Errorf("level %d not in pack %s (%d levels)", i, p.ID, len(p.Levels))
	}
	return p.Levels[i].Grid.Clone(), nil
}

// Loader handles loading level packs from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger // Optional; skipped files are reported here
}

// NewLoader creates a new pack loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}

// LoadAll recursively scans and loads all pack files.
// Returns packs sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Pack, error) {
	var packs []Pack

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		pack, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			l.logger().Warn("skipping level pack", "path", path, "error", err)
			return nil
		}

		packs = append(packs, pack)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})

	return packs, nil
}

// LoadFile loads a single pack file.
func (l *Loader) LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Pack{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	pack := Pack{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Metadata: parsed.Metadata,
		Levels:   make([]Level, 0, len(parsed.Levels)),
		FilePath: path,
	}
	for i, pl := range parsed.Levels {
		g, err := Build(pl.Rows, pl.Player)
		if err != nil {
			return Pack{}, fmt.Errorf("%s level %d (%s): %w", path, i, pl.Name, err)
		}
		pack.Levels = append(pack.Levels, Level{Name: pl.Name, Grid: g})
	}
	return pack, nil
}

// LoadByID loads a specific pack by ID.
func (l *Loader) LoadByID(id string) (Pack, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return Pack{}, err
	}

	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}

	return Pack{}, fmt.Errorf("pack not found: %s", id)
}

// ListIDs returns all pack IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(packs))
	for i, p := range packs {
		ids[i] = p.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Pack, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Pack{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
