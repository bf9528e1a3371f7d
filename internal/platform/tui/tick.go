// Package tui runs the platformer in a terminal with Bubble Tea. It owns the
// tick loop, turns key presses into held input and draws the game's screen
// buffer with lipgloss colors.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per display frame. The simulation measures its own
// frame time, so the timestamp is informational.
type TickMsg time.Time

// FrameInterval returns the time between frames at fps frames per second.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// tickCmd schedules the next frame.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(FrameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
