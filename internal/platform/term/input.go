package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/microsprite/internal/engine"
)

// defaultHoldTicks is how many polls a key press counts as held.
// Terminals report key presses but never key releases, so the keyboard
// fakes a release by expiring each press after a few ticks; terminal
// auto-repeat keeps the counter topped up while a key is physically down.
const defaultHoldTicks = 3

// Keyboard adapts Bubble Tea key messages to the engine's polled input
// device contract.
type Keyboard struct {
	holdTicks int
	remaining [engine.KeyCount]int // per key, ticks until the fake release
}

// NewKeyboard creates a keyboard with the default hold duration.
func NewKeyboard() *Keyboard {
	return &Keyboard{holdTicks: defaultHoldTicks}
}

// MapKey translates a key message to a logical engine key.
// Returns ok=false for keys with no binding and isQuit=true for the
// global quit chords, which the model handles itself.
func (k *Keyboard) MapKey(msg tea.KeyMsg) (key engine.Key, ok bool, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return 0, false, true
	case "w", "up":
		return engine.KeyUp, true, false
	case "s", "down":
		return engine.KeyDown, true, false
	case "a", "left":
		return engine.KeyLeft, true, false
	case "d", "right":
		return engine.KeyRight, true, false
	case "enter", " ":
		return engine.KeyEnter, true, false
	case "b", "esc":
		return engine.KeyBack, true, false
	}
	return 0, false, false
}

// Press records a logical key press, refreshing its hold window.
func (k *Keyboard) Press(key engine.Key) {
	if int(key) < len(k.remaining) {
		k.remaining[key] = k.holdTicks
	}
}

// Poll implements engine.Device: it reports every key still inside its
// hold window, then ages the windows by one tick.
func (k *Keyboard) Poll() engine.Keys {
	var held engine.Keys
	for i := range k.remaining {
		if k.remaining[i] > 0 {
			held = held.With(engine.Key(i))
			k.remaining[i]--
		}
	}
	return held
}
