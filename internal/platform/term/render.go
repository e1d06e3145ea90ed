package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/microsprite/internal/engine"
)

// pixelStyles maps frame buffer values to lipgloss styles. The engine
// itself has no colour model beyond "a byte per pixel"; the simulator
// interprets the low 16 values as the xterm base palette and anything
// above as white.
var pixelStyles = [16]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

func styleFor(v uint8) lipgloss.Style {
	if int(v) < len(pixelStyles) {
		return pixelStyles[v]
	}
	return pixelStyles[15]
}

// RenderFrame converts a composited frame to a styled string for display.
// Each pixel becomes two block runes so it lands roughly square in a
// terminal cell grid. Adjacent pixels with the same value are grouped
// into a single styled run to minimize ANSI escape sequences.
func RenderFrame(f *engine.Frame) string {
	var sb strings.Builder
	sb.Grow(f.Width()*f.Height()*4 + f.Height())

	for y := 0; y < f.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < f.Width() {
			start := f.At(x, y)

			var run strings.Builder
			for x < f.Width() && f.At(x, y) == start {
				run.WriteString("██")
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
