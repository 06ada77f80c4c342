// Package tui provides the Bubble Tea screens shown around the game: the title
// screen before it and the result screen after it.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// blinkInterval is the invader animation period on the title screen.
const blinkInterval = 500 * time.Millisecond

// TickMsg is sent to advance the title screen animation.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
