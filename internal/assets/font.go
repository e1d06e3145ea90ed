package assets

import "github.com/vovakirdan/microsprite/internal/engine"

// A 3x5 pixel font covering digits, space, colon and a few letters used
// by HUD overlays. Enough for score and FPS readouts on displays where
// every pixel counts.

const (
	glyphWidth   = 3
	glyphHeight  = 5
	glyphAdvance = glyphWidth + 1
)

var glyphs = map[rune][glyphHeight]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", ".#.", ".#.", ".#."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	':': {"...", ".#.", "...", ".#.", "..."},
	' ': {"...", "...", "...", "...", "..."},
	'F': {"###", "#..", "###", "#..", "#.."},
	'P': {"###", "#.#", "###", "#..", "#.."},
	'S': {"###", "#..", "###", "..#", "###"},
}

// TextWidth returns the pixel width of a rendered string.
func TextWidth(s string) int {
	n := len([]rune(s))
	if n == 0 {
		return 0
	}
	return n*glyphAdvance - 1
}

// TextHeight returns the pixel height of rendered text.
func TextHeight() int {
	return glyphHeight
}

// RenderText draws a string of supported characters into a fresh bitmap,
// using fg for glyph pixels on a zero background. Unsupported characters
// render as blanks. Intended for small HUD overlays whose sprite redraws
// its (exclusively owned) bitmap when the text changes.
func RenderText(s string, fg uint8) (*engine.Bitmap, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		runes = []rune{' '}
	}

	w := len(runes)*glyphAdvance - 1
	pix := make([]uint8, w*glyphHeight)
	for i, r := range runes {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		x0 := i * glyphAdvance
		for y, row := range g {
			for x, c := range row {
				if c == '#' {
					pix[y*w+x0+x] = fg
				}
			}
		}
	}
	return engine.NewBitmap(w, glyphHeight, pix)
}
