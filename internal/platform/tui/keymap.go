package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// SolveKeyMap defines the key bindings while a solve is running.
type SolveKeyMap struct {
	Cancel key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SolveKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel}
}

// FullHelp returns key bindings for the full help view.
func (k SolveKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Cancel}}
}

// DefaultSolveKeyMap returns default key bindings.
func DefaultSolveKeyMap() SolveKeyMap {
	return SolveKeyMap{
		Cancel: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "stop solving"),
		),
	}
}

// SolutionKeyMap defines the key bindings for the solution player.
type SolutionKeyMap struct {
	Step  key.Binding
	Reset key.Binding
	Up    key.Binding
	Down  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SolutionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SolutionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Reset},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// DefaultSolutionKeyMap returns default key bindings.
func DefaultSolutionKeyMap() SolutionKeyMap {
	return SolutionKeyMap{
		Step: key.NewBinding(
			key.WithKeys(" ", "right", "l", "enter"),
			key.WithHelp("space/→", "next step"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
