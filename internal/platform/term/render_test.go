package term

import (
	"strings"
	"testing"

	"github.com/vovakirdan/microsprite/internal/engine"
)

func TestRenderFrameShape(t *testing.T) {
	f := engine.NewFrame(4, 3)
	out := RenderFrame(f)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, "█"); n != 8 {
			t.Errorf("line %d has %d block runes, expected 8 (2 per pixel)", i, n)
		}
	}
}

func TestRenderFrameGroupsRuns(t *testing.T) {
	// A frame with a single colour should render each row as one run:
	// identical content on every line regardless of styling.
	f := engine.NewFrame(8, 2)
	f.Fill(3)

	lines := strings.Split(RenderFrame(f), "\n")
	if lines[0] != lines[1] {
		t.Error("uniform rows rendered differently")
	}
}

func TestScreenPresentStoresView(t *testing.T) {
	s := NewScreen(4, 2)
	if w, h := s.Size(); w != 4 || h != 2 {
		t.Fatalf("Size() = %dx%d, expected 4x2", w, h)
	}

	f := engine.NewFrame(4, 2)
	f.Set(0, 0, 1)
	if err := s.Present(f); err != nil {
		t.Fatalf("Present() failed: %v", err)
	}
	if s.View() == "" {
		t.Error("View() empty after Present()")
	}

	// Present replaces the stored view. Compare shapes rather than
	// styling: colour codes are elided when not attached to a terminal.
	before := s.View()
	if err := s.Present(engine.NewFrame(2, 1)); err != nil {
		t.Fatalf("Present() failed: %v", err)
	}
	if s.View() == before {
		t.Error("View() unchanged after a different frame was presented")
	}
}
