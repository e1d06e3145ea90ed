package term

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/microsprite/internal/engine"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	panic("unmapped test key " + s)
}

func TestMapKeyBindings(t *testing.T) {
	kb := NewKeyboard()

	tests := []struct {
		name string
		msg  string
		want engine.Key
	}{
		{"arrow up", "up", engine.KeyUp},
		{"wasd up", "w", engine.KeyUp},
		{"arrow down", "down", engine.KeyDown},
		{"wasd down", "s", engine.KeyDown},
		{"arrow left", "left", engine.KeyLeft},
		{"wasd left", "a", engine.KeyLeft},
		{"arrow right", "right", engine.KeyRight},
		{"wasd right", "d", engine.KeyRight},
		{"enter", "enter", engine.KeyEnter},
		{"space as enter", " ", engine.KeyEnter},
		{"escape as back", "esc", engine.KeyBack},
		{"b as back", "b", engine.KeyBack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok, isQuit := kb.MapKey(keyMsg(tt.msg))
			if isQuit {
				t.Fatalf("MapKey(%q) reported quit", tt.msg)
			}
			if !ok {
				t.Fatalf("MapKey(%q) found no binding", tt.msg)
			}
			if key != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg, key, tt.want)
			}
		})
	}
}

func TestMapKeyQuitChords(t *testing.T) {
	kb := NewKeyboard()

	for _, msg := range []string{"ctrl+c", "q"} {
		if _, _, isQuit := kb.MapKey(keyMsg(msg)); !isQuit {
			t.Errorf("MapKey(%q) did not report quit", msg)
		}
	}
}

func TestMapKeyUnbound(t *testing.T) {
	kb := NewKeyboard()

	if _, ok, isQuit := kb.MapKey(keyMsg("x")); ok || isQuit {
		t.Error("unbound key produced a binding or quit")
	}
}

func TestPollExpiresHeldKeys(t *testing.T) {
	kb := NewKeyboard()
	kb.Press(engine.KeyRight)

	for i := 0; i < defaultHoldTicks; i++ {
		held := kb.Poll()
		if !held.Has(engine.KeyRight) {
			t.Fatalf("poll %d: key already released", i)
		}
	}
	if held := kb.Poll(); !held.Empty() {
		t.Errorf("key still held after hold window expired: %v", held)
	}
}

func TestPressRefreshesHoldWindow(t *testing.T) {
	kb := NewKeyboard()
	kb.Press(engine.KeyUp)
	kb.Poll()
	kb.Poll()

	// A repeat press restarts the window.
	kb.Press(engine.KeyUp)
	for i := 0; i < defaultHoldTicks; i++ {
		if held := kb.Poll(); !held.Has(engine.KeyUp) {
			t.Fatalf("poll %d after refresh: key released", i)
		}
	}
}

func TestPressTracksEveryLogicalKey(t *testing.T) {
	kb := NewKeyboard()
	for k := engine.Key(0); k < engine.KeyCount; k++ {
		kb.Press(k)
	}

	held := kb.Poll()
	for k := engine.Key(0); k < engine.KeyCount; k++ {
		if !held.Has(k) {
			t.Errorf("key %v pressed but not reported held", k)
		}
	}
}

func TestPollReportsMultipleKeys(t *testing.T) {
	kb := NewKeyboard()
	kb.Press(engine.KeyUp)
	kb.Press(engine.KeyRight)

	held := kb.Poll()
	if !held.Has(engine.KeyUp) || !held.Has(engine.KeyRight) {
		t.Errorf("Poll() = %v, expected up and right held", held)
	}
}

func TestTickCmdToleratesZeroRate(t *testing.T) {
	if cmd := tickCmd(0); cmd == nil {
		t.Error("tickCmd(0) returned no command")
	}
	if cmd := tickCmd(-5); cmd == nil {
		t.Error("tickCmd(-5) returned no command")
	}
}
