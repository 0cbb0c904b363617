// Package tui provides the Bubble Tea screens of the rotary command: a
// progress screen while the solver runs and a step-by-step solution player.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// progressInterval is how often the solve screen refreshes its statistics.
const progressInterval = 100 * time.Millisecond

// TickMsg is sent to refresh the progress line.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
