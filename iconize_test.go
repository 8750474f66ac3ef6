package iconize

import (
	"bytes"
	"context"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{16, "icon16.png"},
		{48, "icon48.png"},
		{128, "icon128.png"},
	}
	for _, tt := range tests {
		if got := Filename(tt.size); got != tt.want {
			t.Errorf("Filename(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	g, err := New(WithDir(dir), WithFontPath(testFontPath(t)))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Preflight(); err != nil {
		t.Fatal(err)
	}
	if err := g.Generate(ctx); err != nil {
		t.Fatal(err)
	}
	for _, size := range Sizes {
		path := filepath.Join(dir, Filename(size))
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("missing output file %s: %v", path, err)
		}
		cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
		if err != nil {
			t.Fatalf("invalid output file %s: %v", path, err)
		}
		if format != "png" {
			t.Errorf("%s format = %s, want png", path, format)
		}
		if cfg.Width != size || cfg.Height != size {
			t.Errorf("%s dimensions = %dx%d, want %dx%d", path, cfg.Width, cfg.Height, size, size)
		}
	}
}

func TestGenerateOverwrites(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	// A stale or even corrupt file at the target path must be replaced.
	stale := filepath.Join(dir, Filename(16))
	if err := os.WriteFile(stale, []byte("stale, not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := New(WithDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Generate(ctx); err != nil {
		t.Fatal(err)
	}
	icon, err := NewIconFromFile(stale)
	if err != nil {
		t.Fatalf("file was not overwritten with a valid icon: %v", err)
	}
	if icon.Size() != 16 {
		t.Errorf("Size() = %d, want 16", icon.Size())
	}
}

func TestPreflightFailure(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the output directory should be makes the
	// environment unusable; nothing may be rendered or written.
	occupied := filepath.Join(dir, "icons")
	if err := os.WriteFile(occupied, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := New(WithDir(occupied))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Preflight(); err == nil {
		t.Fatal("Preflight() = nil error, want error for occupied output path")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output files were created despite failed preflight: %v", entries)
	}
}

func TestPreflightCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets", "icons")
	g, err := New(WithDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Preflight(); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !fi.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}

func TestCheck(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	g, err := New(WithDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Generate(ctx); err != nil {
		t.Fatal(err)
	}
	if err := g.Check(ctx); err != nil {
		t.Fatalf("Check() right after Generate: %v", err)
	}

	// Corrupting one file must be reported, naming the file.
	if err := os.WriteFile(filepath.Join(dir, Filename(48)), []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}
	err = g.Check(ctx)
	if err == nil {
		t.Fatal("Check() = nil error, want error for corrupt icon48.png")
	}
	if !strings.Contains(err.Error(), Filename(48)) {
		t.Errorf("Check() error %q does not name %s", err, Filename(48))
	}

	// Missing files are drift too.
	if err := os.Remove(filepath.Join(dir, Filename(128))); err != nil {
		t.Fatal(err)
	}
	err = g.Check(ctx)
	if err == nil {
		t.Fatal("Check() = nil error, want error for missing icon128.png")
	}
	if !strings.Contains(err.Error(), Filename(128)) {
		t.Errorf("Check() error %q does not name %s", err, Filename(128))
	}
}

// Drift checking is read-only: a check against a directory that does not
// exist must not create it.
func TestCheckDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "icons")
	g, err := New(WithDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Check(ctx); err == nil {
		t.Fatal("Check() = nil error, want error for missing icons")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Check() created %s, want it untouched", dir)
	}
}

func TestGenerateCancelled(t *testing.T) {
	dir := t.TempDir()
	g, err := New(WithDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.Generate(ctx); err == nil {
		t.Fatal("Generate() with cancelled context = nil error, want error")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("output files were created despite cancelled context: %v", entries)
	}
}
