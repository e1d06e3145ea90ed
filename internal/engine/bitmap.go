package engine

import "fmt"

// Bitmap is an immutable indexed-pixel image: one byte per pixel,
// row-major. Bitmaps are shared freely between sprites; nothing in the
// engine writes to them after construction.
type Bitmap struct {
	width  int
	height int
	pix    []uint8
}

// NewBitmap creates a bitmap from a row-major pixel slice.
// The slice is copied so callers may reuse their buffer.
func NewBitmap(width, height int, pix []uint8) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("engine: bitmap size %dx%d: %w", width, height, ErrConfig)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("engine: bitmap %dx%d needs %d pixels, got %d: %w",
			width, height, width*height, len(pix), ErrConfig)
	}
	b := &Bitmap{
		width:  width,
		height: height,
		pix:    make([]uint8, len(pix)),
	}
	copy(b.pix, pix)
	return b, nil
}

// MustBitmap is NewBitmap that panics on error. Intended for static
// assets whose dimensions are known at compile time.
func MustBitmap(width, height int, pix []uint8) *Bitmap {
	b, err := NewBitmap(width, height, pix)
	if err != nil {
		panic(err)
	}
	return b
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// At returns the pixel value at (x, y).
// Returns 0 for out-of-bounds coordinates.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}
