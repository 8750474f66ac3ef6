package iconize

// glyphMinSize is the smallest icon size at which the badge glyph is still
// legible. Below this the badge is drawn without the exclamation mark.
const glyphMinSize = 48

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// geometry is the shape layout for a single icon size. Every value is a pure
// function of the size, so the same size always yields the same layout.
type geometry struct {
	Size        int     `json:"size"`
	Padding     int     `json:"padding"`
	Shield      []point `json:"shield"`
	BadgeCenter point   `json:"badge_center"`
	BadgeRadius int     `json:"badge_radius"`
	GlyphSize   int     `json:"glyph_size,omitempty"`
}

// layout derives the icon geometry from the target size. Integer division
// mirrors the fixed proportions at every scale; sizes below 10 produce
// degenerate (zero-width) shapes rather than errors.
func layout(size int) geometry {
	var (
		top    = size / 4
		bottom = size * 3 / 4
		left   = size / 3
		right  = size * 2 / 3
		inset  = size / 10
	)
	g := geometry{
		Size:    size,
		Padding: size / 10,
		Shield: []point{
			{size / 2, top},
			{right, top + inset},
			{right, bottom - inset},
			{size / 2, bottom},
			{left, bottom - inset},
			{left, top + inset},
		},
		BadgeCenter: point{size * 3 / 4, size * 3 / 4},
		BadgeRadius: size / 8,
	}
	if size >= glyphMinSize {
		g.GlyphSize = max(size/8, 12)
	}
	return g
}
