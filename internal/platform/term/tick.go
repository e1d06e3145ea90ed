// Package term provides the Bubble Tea simulator for the sprite engine:
// a terminal-rendered pixel display, a keyboard input device and the
// model that drives the engine loop one tick per timer message.
package term

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/microsprite/internal/engine"
)

// TickMsg is sent to trigger one engine tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. A non-positive rate falls back to the engine default
// rather than dividing by zero.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = engine.DefaultTargetFPS
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
