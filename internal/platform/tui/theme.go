package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rotary/internal/core"
)

// Theme contains all visual styles used by the rotary screens.
type Theme struct {
	// Tile colors, indexed by core.Color
	Tiles [core.ColorCount]lipgloss.Style

	Player    lipgloss.Style
	EmptyCell lipgloss.Style

	Title   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style
	Border  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Tiles: [core.ColorCount]lipgloss.Style{
			core.ColorNone:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			core.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			core.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			core.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
			core.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			core.ColorPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
			core.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			core.ColorGray:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},

		Player:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		EmptyCell: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// MonochromeTheme returns a theme without colors, for terminals that lack them.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	for i := range theme.Tiles {
		theme.Tiles[i] = lipgloss.NewStyle()
	}
	theme.Player = lipgloss.NewStyle().Reverse(true)
	return theme
}

// TileStyle returns the style for a tile color.
func (t Theme) TileStyle(c core.Color) lipgloss.Style {
	if !c.Valid() {
		return t.Tiles[core.ColorNone]
	}
	return t.Tiles[c]
}
