package iconize

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"sort"

	"github.com/k1LoW/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	accentColor = color.RGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}
	shieldColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	badgeColor  = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
	glyphColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const badgeGlyph = "!"

// Render composes a single icon: an accent background circle, a white shield
// hexagon, a warning badge, and (for sizes >= 48, when a font is available)
// an exclamation mark centered in the badge. The result carries the
// PNG-encoded bytes.
func (g *Generator) Render(size int) (_ *Icon, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if size < 1 {
		return nil, fmt.Errorf("invalid icon size: %d", size)
	}
	geo := layout(size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Background circle inscribed in the square inset by the padding.
	c := float64(size) / 2
	fillCircle(img, c, c, c-float64(geo.Padding), accentColor)

	fillPolygon(img, geo.Shield, shieldColor)

	// Badge sits in the lower-right quadrant, over the shield.
	fillCircle(img, float64(geo.BadgeCenter.X), float64(geo.BadgeCenter.Y), float64(geo.BadgeRadius), badgeColor)

	if geo.GlyphSize > 0 {
		if face := g.face(geo.GlyphSize); face != nil {
			drawGlyphCentered(img, face, badgeGlyph, geo.BadgeCenter.X, geo.BadgeCenter.Y)
		} else {
			g.logger.Info("skipped glyph", slog.Int("size", size))
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode %dpx icon: %w", size, err)
	}
	return &Icon{size: size, b: buf.Bytes()}, nil
}

// fillCircle paints every pixel whose center lies within the circle.
func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	if r <= 0 {
		return
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// fillPolygon fills a polygon with a scanline sweep, pairing edge
// intersections sorted with sort.Float64s.
func fillPolygon(img *image.RGBA, pts []point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	n := len(pts)
	intersections := make([]float64, 0, n)
	for y := minY; y <= maxY; y++ {
		fy := float64(y) + 0.5
		intersections = intersections[:0]
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			y1, y2 := float64(pts[i].Y), float64(pts[j].Y)
			lo, hi := y1, y2
			if lo > hi {
				lo, hi = hi, lo
			}
			if fy < lo || fy >= hi {
				continue
			}
			t := (fy - y1) / (y2 - y1)
			intersections = append(intersections, float64(pts[i].X)+t*float64(pts[j].X-pts[i].X))
		}
		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			x1 := int(math.Ceil(intersections[i]))
			x2 := int(math.Floor(intersections[i+1]))
			for x := x1; x <= x2; x++ {
				if image.Pt(x, y).In(img.Bounds()) {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
}

// drawGlyphCentered draws s so that its visual bounding box is centered on
// (cx, cy). BoundString gives the pixel bounds of the rendered glyphs.
func drawGlyphCentered(img *image.RGBA, face font.Face, s string, cx, cy int) {
	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := cx - w/2 - bounds.Min.X.Floor()
	y := cy - h/2 - bounds.Min.Y.Floor()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(glyphColor),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
