package iconize

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"image"
	"os"

	"github.com/corona10/goimagehash"
	"github.com/k1LoW/errors"
)

// Icon is a rendered icon: PNG-encoded bytes plus lazily computed
// comparison data.
type Icon struct {
	size     int
	b        []byte // PNG-encoded image data
	i        image.Image
	checksum uint32
	pHash    *goimagehash.ImageHash
}

// NewIconFromFile loads a previously written icon. The file must be a square
// PNG.
func NewIconFromFile(path string) (_ *Icon, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read icon file %s: %w", path, err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon %s: %w", path, err)
	}
	if format != "png" {
		return nil, fmt.Errorf("unsupported icon format for %s: %s", path, format)
	}
	if cfg.Width != cfg.Height {
		return nil, fmt.Errorf("icon %s is not square: %dx%d", path, cfg.Width, cfg.Height)
	}
	return &Icon{size: cfg.Width, b: b}, nil
}

func (i *Icon) Size() int {
	if i == nil {
		return 0
	}
	return i.size
}

func (i *Icon) Bytes() []byte {
	if i == nil {
		return nil
	}
	return i.b
}

func (i *Icon) Checksum() uint32 {
	if i == nil {
		return 0
	}
	if i.checksum == 0 {
		i.checksum = crc32.ChecksumIEEE(i.b)
	}
	return i.checksum
}

func (i *Icon) Image() (image.Image, error) {
	if i == nil {
		return nil, fmt.Errorf("icon is nil")
	}
	if i.i == nil {
		img, _, err := image.Decode(bytes.NewReader(i.b))
		if err != nil {
			return nil, fmt.Errorf("failed to decode icon: %w", err)
		}
		i.i = img
	}
	return i.i, nil
}

func (i *Icon) PHash() (_ *goimagehash.ImageHash, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if i == nil {
		return nil, fmt.Errorf("icon is nil")
	}
	if i.pHash == nil {
		img, err := i.Image()
		if err != nil {
			return nil, err
		}
		pHash, err := goimagehash.PerceptionHash(img)
		if err != nil {
			return nil, fmt.Errorf("failed to compute perceptual hash: %w", err)
		}
		i.pHash = pHash
	}
	return i.pHash, nil
}

// Equivalent reports whether two icons represent the same image. Identical
// bytes match via checksum; otherwise perceptual hashes are compared so a
// re-encoded but visually identical file still counts as equivalent.
func (i *Icon) Equivalent(ii *Icon) bool {
	if i == nil || ii == nil {
		return false
	}
	if i.size != ii.size {
		return false
	}
	if i.Checksum() == ii.Checksum() {
		return true
	}
	aHash, err := i.PHash()
	if err != nil {
		return false
	}
	bHash, err := ii.PHash()
	if err != nil {
		return false
	}
	distance, err := aHash.Distance(bHash)
	if err != nil {
		return false
	}
	return distance < 5 // threshold for similarity
}

// WriteFile writes the encoded PNG to path, replacing any existing file.
func (i *Icon) WriteFile(path string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if i == nil {
		return fmt.Errorf("icon is nil")
	}
	if err := os.WriteFile(path, i.b, 0o644); err != nil {
		return fmt.Errorf("failed to write icon file %s: %w", path, err)
	}
	return nil
}
