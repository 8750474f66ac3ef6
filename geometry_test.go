package iconize

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tenntenn/golden"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		size int
		want geometry
	}{
		{
			size: 16,
			want: geometry{
				Size:    16,
				Padding: 1,
				Shield: []point{
					{8, 4}, {10, 5}, {10, 11}, {8, 12}, {5, 11}, {5, 5},
				},
				BadgeCenter: point{12, 12},
				BadgeRadius: 2,
			},
		},
		{
			size: 48,
			want: geometry{
				Size:    48,
				Padding: 4,
				Shield: []point{
					{24, 12}, {32, 16}, {32, 32}, {24, 36}, {16, 32}, {16, 16},
				},
				BadgeCenter: point{36, 36},
				BadgeRadius: 6,
				GlyphSize:   12,
			},
		},
		{
			size: 128,
			want: geometry{
				Size:    128,
				Padding: 12,
				Shield: []point{
					{64, 32}, {85, 44}, {85, 84}, {64, 96}, {42, 84}, {42, 44},
				},
				BadgeCenter: point{96, 96},
				BadgeRadius: 16,
				GlyphSize:   16,
			},
		},
		{
			// Small sizes degrade to degenerate shapes, not errors.
			size: 10,
			want: geometry{
				Size:    10,
				Padding: 1,
				Shield: []point{
					{5, 2}, {6, 3}, {6, 6}, {5, 7}, {3, 6}, {3, 3},
				},
				BadgeCenter: point{7, 7},
				BadgeRadius: 1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("size%d", tt.size), func(t *testing.T) {
			got := layout(tt.size)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestLayoutGolden(t *testing.T) {
	for _, size := range Sizes {
		name := fmt.Sprintf("layout%d", size)
		t.Run(name, func(t *testing.T) {
			got, err := json.MarshalIndent(layout(size), "", "  ")
			if err != nil {
				t.Fatal(err)
			}
			if os.Getenv("UPDATE_GOLDEN") != "" {
				golden.Update(t, "testdata", name, got)
				return
			}
			if diff := golden.Diff(t, "testdata", name, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestLayoutGlyphGate(t *testing.T) {
	tests := []struct {
		size      int
		wantGlyph bool
	}{
		{16, false},
		{47, false},
		{48, true},
		{128, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("size%d", tt.size), func(t *testing.T) {
			g := layout(tt.size)
			if got := g.GlyphSize > 0; got != tt.wantGlyph {
				t.Errorf("layout(%d).GlyphSize = %d, want glyph %v", tt.size, g.GlyphSize, tt.wantGlyph)
			}
			if tt.wantGlyph && g.GlyphSize < 12 {
				t.Errorf("layout(%d).GlyphSize = %d, want >= 12", tt.size, g.GlyphSize)
			}
		})
	}
}
