// Package formats provides pluggable level pack file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/rotary/internal/core"
	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a level pack file.
type YAMLPack struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
	Levels   []YAMLLevel       `yaml:"levels"`
}

// YAMLLevel represents a single level in YAML format.
type YAMLLevel struct {
	Name   string      `yaml:"name"`
	Rows   []string    `yaml:"rows"`
	Player *YAMLPlayer `yaml:"player,omitempty"`
}

// YAMLPlayer represents an explicit player start position.
type YAMLPlayer struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Pack represents a parsed pack ready for use.
type Pack struct {
	ID       string
	Name     string
	Metadata map[string]string
	Levels   []Level
}

// Level is a parsed but not yet trimmed level.
type Level struct {
	Name   string
	Rows   [][]core.Tile
	Player *core.Pos // Nil means start on a Start tile
}

// ParseYAML parses a YAML pack file.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yp.ID == "" {
		return Pack{}, fmt.Errorf("pack has no id")
	}

	pack := Pack{
		ID:       yp.ID,
		Name:     yp.Name,
		Metadata: yp.Metadata,
		Levels:   make([]Level, 0, len(yp.Levels)),
	}

	for i, yl := range yp.Levels {
		level := Level{Name: yl.Name}
		if level.Name == "" {
			level.Name = fmt.Sprintf("Level %d", i+1)
		}
		for r, row := range yl.Rows {
			tiles, err := ParseRow(row)
			if err != nil {
				return Pack{}, fmt.Errorf("level %d row %d: %w", i, r, err)
			}
			level.Rows = append(level.Rows, tiles)
		}
		if yl.Player != nil {
			p := core.P(yl.Player.Row, yl.Player.Col)
			level.Player = &p
		}
		pack.Levels = append(pack.Levels, level)
	}

	return pack, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
