package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the designer's status-flash countdown.
type TickMsg time.Time

// flashTickRate is how many flash ticks elapse per second.
const flashTickRate = 12

// tickCmd returns a Bubble Tea command that sends the next flash tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/flashTickRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
