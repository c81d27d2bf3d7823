// Package tui runs the snake game inside Bubble Tea. It owns the frame
// loop, maps terminal input to game events and turns the game's cell
// buffer into styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame to advance the simulation.
type TickMsg time.Time

// frameInterval returns the time between frames for tickRate frames per second.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 1
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next frame.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
