package term

import "github.com/vovakirdan/microsprite/internal/engine"

// Screen is the simulated display: a fixed-size pixel grid that renders
// each presented frame to a styled string for the Bubble Tea view.
type Screen struct {
	width    int
	height   int
	lastView string
}

// NewScreen creates a simulated display of the given pixel dimensions.
func NewScreen(width, height int) *Screen {
	return &Screen{width: width, height: height}
}

// Size returns the display dimensions in pixels.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Present renders the frame to the view string. Rendering a string can
// never fail, so Present always returns nil; hardware screens are where
// the error channel earns its keep.
func (s *Screen) Present(f *engine.Frame) error {
	s.lastView = RenderFrame(f)
	return nil
}

// View returns the most recently presented frame as a styled string.
func (s *Screen) View() string {
	return s.lastView
}
