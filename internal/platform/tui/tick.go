// Package tui provides the Bubble Tea integration for the blocks game.
// It handles the terminal UI loop, input mapping, gravity timing and score
// persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame: queued commands are applied and the
// screen is redrawn.
type TickMsg time.Time

// GravityMsg is sent when the gravity timer fires. Gen identifies the timer
// chain that armed it; messages from superseded chains are dropped.
type GravityMsg struct {
	Gen int
}

// softDropReleaseMsg ends a soft drop when no repeat key event arrived in time.
type softDropReleaseMsg struct {
	gen int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// gravityCmd arms a one-shot gravity timer.
func gravityCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return GravityMsg{Gen: gen}
	})
}

func softDropReleaseCmd(after time.Duration, gen int) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return softDropReleaseMsg{gen: gen}
	})
}
