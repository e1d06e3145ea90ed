// Package assets turns declarative sprite-sheet manifests into immutable,
// shared engine bitmaps. Apps describe their art as rows of palette
// characters in YAML, embed the file, and look frames up by name; many
// sprite instances then reference the same bitmaps.
package assets

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/microsprite/internal/engine"
)

// Sheet is one named animation: an optional character palette and a list
// of frames, each frame a list of equally long rows.
type Sheet struct {
	Name    string           `yaml:"name"`
	Palette map[string]uint8 `yaml:"palette"`
	Frames  [][]string       `yaml:"frames"`
}

// manifest is the top-level YAML document.
type manifest struct {
	Sheets []Sheet `yaml:"sheets"`
}

// Library maps sheet names to their decoded animation frames.
type Library map[string][]*engine.Bitmap

// defaultPalette is used when a sheet declares none: '.' is 0, '#' is 1.
var defaultPalette = map[rune]uint8{'.': 0, '#': 1}

// Load parses a manifest and decodes every sheet.
func Load(data []byte) (Library, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: parse manifest: %w", err)
	}
	if len(m.Sheets) == 0 {
		return nil, fmt.Errorf("assets: manifest declares no sheets")
	}

	lib := make(Library, len(m.Sheets))
	for _, sheet := range m.Sheets {
		if sheet.Name == "" {
			return nil, fmt.Errorf("assets: sheet without a name")
		}
		if _, dup := lib[sheet.Name]; dup {
			return nil, fmt.Errorf("assets: duplicate sheet %q", sheet.Name)
		}
		frames, err := decodeFrames(sheet)
		if err != nil {
			return nil, fmt.Errorf("assets: sheet %q: %w", sheet.Name, err)
		}
		lib[sheet.Name] = frames
	}
	return lib, nil
}

// MustLoad is Load that panics on error, for embedded manifests.
func MustLoad(data []byte) Library {
	lib, err := Load(data)
	if err != nil {
		panic(err)
	}
	return lib
}

// Frames returns the animation frames for a sheet name.
func (l Library) Frames(name string) ([]*engine.Bitmap, error) {
	frames, ok := l[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown sheet %q", name)
	}
	return frames, nil
}

func decodeFrames(sheet Sheet) ([]*engine.Bitmap, error) {
	if len(sheet.Frames) == 0 {
		return nil, fmt.Errorf("no frames")
	}

	palette := make(map[rune]uint8, len(sheet.Palette))
	for k, v := range defaultPalette {
		palette[k] = v
	}
	for s, v := range sheet.Palette {
		runes := []rune(s)
		if len(runes) != 1 {
			return nil, fmt.Errorf("palette key %q is not a single character", s)
		}
		palette[runes[0]] = v
	}

	frames := make([]*engine.Bitmap, 0, len(sheet.Frames))
	var w, h int
	for i, rows := range sheet.Frames {
		if len(rows) == 0 {
			return nil, fmt.Errorf("frame %d is empty", i)
		}
		fw := len([]rune(rows[0]))
		fh := len(rows)
		if i == 0 {
			w, h = fw, fh
		} else if fw != w || fh != h {
			return nil, fmt.Errorf("frame %d is %dx%d, expected %dx%d", i, fw, fh, w, h)
		}

		pix := make([]uint8, 0, w*h)
		for _, row := range rows {
			runes := []rune(row)
			if len(runes) != w {
				return nil, fmt.Errorf("frame %d has a row of width %d, expected %d", i, len(runes), w)
			}
			for _, r := range runes {
				v, ok := palette[r]
				if !ok {
					return nil, fmt.Errorf("frame %d uses %q, not in palette", i, string(r))
				}
				pix = append(pix, v)
			}
		}

		bm, err := engine.NewBitmap(w, h, pix)
		if err != nil {
			return nil, err
		}
		frames = append(frames, bm)
	}
	return frames, nil
}
