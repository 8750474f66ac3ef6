// Package iconize generates placeholder PNG icons for the browser extension:
// an accent background circle, a white shield, and a warning badge, at the
// three sizes the extension manifest requires.
package iconize

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/k1LoW/errors"
)

// Sizes are the icon sizes shipped with the extension manifest.
var Sizes = []int{16, 48, 128}

// Filename returns the output filename for a size, e.g. icon48.png.
func Filename(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

type Generator struct {
	dir      string
	fontPath string
	font     *truetype.Font
	logger   *slog.Logger
}

type Option func(*Generator) error

// WithDir sets the output directory. Default is the current directory.
func WithDir(dir string) Option {
	return func(g *Generator) error {
		if dir != "" {
			g.dir = dir
		}
		return nil
	}
}

// WithFontPath sets an explicit TrueType font for the badge glyph instead of
// searching the system font directories.
func WithFontPath(path string) Option {
	return func(g *Generator) error {
		g.fontPath = path
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

// New creates a new Generator. Font acquisition is best effort: any failure
// is logged and the generator renders badges without the glyph.
func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g := &Generator{dir: "."}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	f, err := loadFont(g.fontPath)
	if err != nil {
		g.logger.Warn("failed to load font, rendering without badge glyph", slog.String("error", err.Error()))
	}
	g.font = f
	return g, nil
}

// Preflight verifies the environment can produce icons at all: the PNG codec
// must round-trip a probe image and the output directory must be writable.
// It runs once, before any render, so a broken environment fails before any
// file is touched.
func (g *Generator) Preflight() (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		return fmt.Errorf("PNG encoding is unavailable: %w", err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(buf.Bytes())); err != nil {
		return fmt.Errorf("PNG decoding is unavailable: %w", err)
	}
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", g.dir, err)
	}
	probe, err := os.CreateTemp(g.dir, ".iconize-probe-*")
	if err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", g.dir, err)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return nil
}

// Generate renders every size and writes icon{N}.png into the output
// directory, unconditionally overwriting existing files.
func (g *Generator) Generate(ctx context.Context) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	for _, size := range Sizes {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		icon, err := g.Render(size)
		if err != nil {
			return fmt.Errorf("failed to render %dpx icon: %w", size, err)
		}
		g.logger.Info("rendered icon", slog.Int("size", size))
		path := filepath.Join(g.dir, Filename(size))
		if err := icon.WriteFile(path); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		g.logger.Info("wrote icon", slog.Int("size", size), slog.String("path", path))
	}
	g.logger.Info("generate completed", slog.Int("count", len(Sizes)))
	return nil
}

// Check compares the icons on disk with a fresh render and reports drift
// without writing anything. Files are considered up to date when they are
// byte-identical or perceptually equivalent to the expected render.
func (g *Generator) Check(ctx context.Context) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	var stale []string
	for _, size := range Sizes {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		want, err := g.Render(size)
		if err != nil {
			return fmt.Errorf("failed to render %dpx icon: %w", size, err)
		}
		path := filepath.Join(g.dir, Filename(size))
		got, err := NewIconFromFile(path)
		if err != nil {
			stale = append(stale, fmt.Sprintf("%s: %v", Filename(size), err))
			g.logger.Info("failed to read icon", slog.Int("size", size), slog.String("path", path))
			continue
		}
		if !want.Equivalent(got) {
			stale = append(stale, fmt.Sprintf("%s: differs from expected render", Filename(size)))
			g.logger.Info("icon differs", slog.Int("size", size), slog.String("path", path))
			continue
		}
		g.logger.Info("icon up to date", slog.Int("size", size), slog.String("path", path))
	}
	g.logger.Info("check completed", slog.Int("count", len(Sizes)))
	if len(stale) > 0 {
		return fmt.Errorf("icons out of date: %s", strings.Join(stale, "; "))
	}
	return nil
}
