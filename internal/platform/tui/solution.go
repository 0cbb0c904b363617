package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rotary/internal/core"
	"github.com/vovakirdan/rotary/internal/solver"
)

// Solution player layout constants
const (
	stepTableHeight = 12
	minTableHeight  = 4
)

// SolutionModel plays back a stored solution one action at a time.
type SolutionModel struct {
	title    string
	theme    Theme
	playback *solver.Playback
	table    table.Model
	help     help.Model
	keys     SolutionKeyMap
	err      error // Last step error; the solution no longer fits the level
	height   int
	quitting bool
}

// NewSolutionModel creates a solution player for actions on a copy of g.
func NewSolutionModel(g *core.Grid, actions []core.Action, title string, theme Theme) SolutionModel {
	m := SolutionModel{
		title:    title,
		theme:    theme,
		playback: solver.NewPlayback(g, actions),
		help:     help.New(),
		keys:     DefaultSolutionKeyMap(),
		height:   stepTableHeight,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates the step table.
func (m *SolutionModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Code", Width: 5},
		{Title: "Action", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height, minTableHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the steps and highlights the next one.
func (m *SolutionModel) updateTableRows() {
	actions := m.playback.Actions()
	rows := make([]table.Row, len(actions))
	for i, a := range actions {
		rows[i] = table.Row{fmt.Sprintf("%d", i+1), a.Code(), a.String()}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(min(m.playback.Index(), max(len(rows)-1, 0)))
}

// Init initializes the solution player.
func (m SolutionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the solution player.
func (m SolutionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Step):
			m.Step()
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			m.Reset()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.height = min(stepTableHeight, msg.Height-m.playback.Grid().H-10)
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// Step plays the next action. It does nothing once playback is done or
// after an action failed to apply.
func (m *SolutionModel) Step() {
	if m.err != nil || m.playback.Done() {
		return
	}
	if _, err := m.playback.Step(); err != nil {
		m.err = err
	}
	m.updateTableRows()
}

// Reset rewinds playback to the start of the level.
func (m *SolutionModel) Reset() {
	m.playback.Reset()
	m.err = nil
	m.updateTableRows()
}

// Playback returns the underlying playback.
func (m SolutionModel) Playback() *solver.Playback {
	return m.playback
}

// Err returns the error of the last step, if any.
func (m SolutionModel) Err() error {
	return m.err
}

// View renders the solution player.
func (m SolutionModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.title))
	b.WriteString("\n\n")

	board := m.theme.Border.Render(RenderBoard(m.playback.Grid(), m.theme))
	steps := m.theme.Border.Render(m.renderSteps())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", steps))
	b.WriteString("\n\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Muted.Render(m.help.View(m.keys)))
	return b.String()
}

func (m SolutionModel) renderSteps() string {
	if m.playback.Len() == 0 {
		return m.theme.Muted.Italic(true).Render("Already on the finish.\nNo moves needed.")
	}
	return m.table.View()
}

func (m SolutionModel) statusLine() string {
	progress := fmt.Sprintf("Step %d/%d", m.playback.Index(), m.playback.Len())
	switch {
	case m.err != nil:
		return m.theme.Failure.Render(fmt.Sprintf("%s  %v", progress, m.err))
	case m.playback.Done() && m.playback.Grid().IsComplete():
		return m.theme.Success.Render(progress + "  Level complete")
	case m.playback.Done():
		return m.theme.Failure.Render(progress + "  Solution did not reach the finish")
	default:
		return m.theme.Value.Render(progress) + "  " +
			m.theme.Muted.Render("Next: ") + m.theme.Title.Render(m.playback.NextMove())
	}
}

// RunSolution runs the solution player until the user quits.
func RunSolution(g *core.Grid, actions []core.Action, title string, theme Theme) error {
	p := tea.NewProgram(
		NewSolutionModel(g, actions, title, theme),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
