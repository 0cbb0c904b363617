package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rotary/internal/autosolve"
	"github.com/vovakirdan/rotary/internal/solver"
)

// SolveController is the part of autosolve.Controller the solve screen uses.
type SolveController interface {
	SetNotifier(n autosolve.Notifier)
	Solve(level int) error
	Wait() autosolve.Report
	Progress() solver.Stats
	TerminateSolving()
}

var _ SolveController = (*autosolve.Controller)(nil)

// SolveDoneMsg is sent when the background solve finishes.
type SolveDoneMsg struct {
	Report autosolve.Report
}

// doneNotifier forwards the controller's completion report as a SolveDoneMsg.
func doneNotifier(send func(tea.Msg)) autosolve.Notifier {
	return autosolve.NotifierFunc(func(r autosolve.Report) {
		send(SolveDoneMsg{Report: r})
	})
}

// SolveModel shows a spinner and live statistics while a solve runs.
// Completion arrives as a SolveDoneMsg from the controller's notifier.
type SolveModel struct {
	ctrl       SolveController
	title      string
	theme      Theme
	spinner    spinner.Model
	help       help.Model
	keys       SolveKeyMap
	progress   solver.Stats
	report     autosolve.Report
	finished   bool
	cancelling bool
}

// NewSolveModel creates a new solve screen for a running solve.
func NewSolveModel(ctrl SolveController, title string, theme Theme) SolveModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.Title

	return SolveModel{
		ctrl:    ctrl,
		title:   title,
		theme:   theme,
		spinner: s,
		help:    help.New(),
		keys:    DefaultSolveKeyMap(),
	}
}

// Init starts the spinner and the refresh tick.
func (m SolveModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd(progressInterval))
}

// Update handles messages for the solve screen.
func (m SolveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) && !m.cancelling {
			m.cancelling = true
			m.ctrl.TerminateSolving()
		}
		return m, nil

	case TickMsg:
		if m.finished {
			return m, nil
		}
		m.progress = m.ctrl.Progress()
		return m, tickCmd(progressInterval)

	case SolveDoneMsg:
		m.finished = true
		m.report = msg.Report
		m.progress = msg.Report.Stats
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the solve screen.
func (m SolveModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.title))
	b.WriteString("\n\n")

	if m.finished {
		b.WriteString(OutcomeLine(m.report, m.theme))
		b.WriteString("\n")
		return b.String()
	}

	status := "Solving"
	if m.cancelling {
		status = "Stopping"
	}
	fmt.Fprintf(&b, "%s %s...\n", m.spinner.View(), status)
	b.WriteString(m.theme.Muted.Render(StatsLine(m.progress)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Muted.Render(m.help.View(m.keys)))
	return b.String()
}

// Report returns the report of the finished solve.
func (m SolveModel) Report() autosolve.Report {
	return m.report
}

// Finished reports whether the solve has completed.
func (m SolveModel) Finished() bool {
	return m.finished
}

// StatsLine formats search statistics on one line.
func StatsLine(s solver.Stats) string {
	return fmt.Sprintf("depth %d  frontier %d  states %d  cells %d  %s",
		s.Depth, s.Frontier, s.Visited, s.Nodes, s.Elapsed.Round(time.Millisecond))
}

// OutcomeLine formats the result of a solve, styled by outcome.
func OutcomeLine(r autosolve.Report, theme Theme) string {
	switch r.Outcome {
	case autosolve.OutcomeSolved:
		return theme.Success.Render(fmt.Sprintf("Solved in %d moves", len(r.Actions))) +
			theme.Muted.Render(fmt.Sprintf(" (%d states, %s)", r.Stats.Visited, r.Stats.Elapsed.Round(time.Millisecond)))
	case autosolve.OutcomeUnsolvable:
		return theme.Failure.Render("No solution exists") +
			theme.Muted.Render(fmt.Sprintf(" (%d states searched)", r.Stats.Visited))
	case autosolve.OutcomeCancelled:
		return theme.Warning.Render("Solve cancelled")
	default:
		return theme.Failure.Render(fmt.Sprintf("Solve failed: %v", r.Err))
	}
}

// RunSolve starts solving level on ctrl and shows the solve screen until the
// controller reports completion. The controller's notifier is replaced.
func RunSolve(ctrl SolveController, level int, title string, theme Theme) (autosolve.Report, error) {
	p := tea.NewProgram(NewSolveModel(ctrl, title, theme))
	// Send returns once the program has exited, so a late report never blocks.
	ctrl.SetNotifier(doneNotifier(p.Send))
	if err := ctrl.Solve(level); err != nil {
		return autosolve.Report{}, err
	}

	_, err := p.Run()
	if err != nil {
		ctrl.TerminateSolving()
	}
	// Wait also guarantees the controller is idle before the next Solve.
	return ctrl.Wait(), err
}
