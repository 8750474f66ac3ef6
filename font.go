package iconize

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/k1LoW/errors"
	"golang.org/x/image/font"
)

// Bold sans-serif TrueType fonts commonly present on developer machines.
// The first readable, parsable file wins.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSansBold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	`C:\Windows\Fonts\arialbd.ttf`,
}

// FindFont returns the path of the first usable font from the candidate
// list, or an empty string when none is available.
func FindFont() string {
	for _, p := range fontCandidates {
		if b, err := os.ReadFile(p); err == nil {
			if _, err := truetype.Parse(b); err == nil {
				return p
			}
		}
	}
	return ""
}

// loadFont parses the font at path. An empty path searches the candidate
// list; exhausting the list is not an error, it just means icons are
// rendered without the badge glyph.
func loadFont(path string) (_ *truetype.Font, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if path == "" {
		if path = FindFont(); path == "" {
			return nil, nil
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return f, nil
}

// face returns a face at the given pixel size, or nil when no font is
// available.
func (g *Generator) face(size int) font.Face {
	if g.font == nil {
		return nil
	}
	return truetype.NewFace(g.font, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
