package engine

// NoColourKey marks a sprite as fully opaque.
const NoColourKey = -1

// Frame is the mutable composite target handed to Screen.Present.
// The Manager owns a single reusable Frame for the lifetime of the loop;
// sprite update hooks never see it. Layout matches Bitmap: one byte per
// pixel, row-major.
type Frame struct {
	width  int
	height int
	pix    []uint8
}

// NewFrame creates a zero-filled frame buffer.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// At returns the pixel value at (x, y), or 0 when out of bounds.
func (f *Frame) At(x, y int) uint8 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.pix[y*f.width+x]
}

// Set writes a pixel value at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, v uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = v
}

// Fill writes v to every pixel.
func (f *Frame) Fill(v uint8) {
	for i := range f.pix {
		f.pix[i] = v
	}
}

// Clear resets every pixel to 0.
func (f *Frame) Clear() {
	f.Fill(0)
}

// Blit copies a bitmap onto the frame with its top-left corner at (x, y),
// clipped to the frame bounds. Pixels equal to colourkey are skipped;
// pass NoColourKey for an opaque copy.
func (f *Frame) Blit(b *Bitmap, x, y int, colourkey int) {
	if b == nil {
		return
	}

	// Clip the source rectangle against the frame.
	srcX, srcY := 0, 0
	w, h := b.width, b.height
	if x < 0 {
		srcX = -x
		w -= srcX
		x = 0
	}
	if y < 0 {
		srcY = -y
		h -= srcY
		y = 0
	}
	if x+w > f.width {
		w = f.width - x
	}
	if y+h > f.height {
		h = f.height - y
	}
	if w <= 0 || h <= 0 {
		return
	}

	for row := 0; row < h; row++ {
		src := b.pix[(srcY+row)*b.width+srcX:]
		dst := f.pix[(y+row)*f.width+x:]
		for col := 0; col < w; col++ {
			v := src[col]
			if colourkey >= 0 && int(v) == colourkey {
				continue
			}
			dst[col] = v
		}
	}
}

// Pixels returns the backing pixel slice. Screen implementations may read
// it during Present but must not retain it across ticks.
func (f *Frame) Pixels() []uint8 {
	return f.pix
}
