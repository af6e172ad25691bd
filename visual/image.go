// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package visual

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrEmptyImage is returned for images without pixels.
var ErrEmptyImage = errors.New("visual: empty image")

// Image is a static image resource. Its pixels are normalised to
// non-premultiplied RGBA when the Image is created, so the source image
// may be modified afterwards without affecting rasterization.
type Image struct {
	pix    *image.NRGBA
	width  float64
	height float64
	interp draw.Interpolator
}

// Ensure Image implements Painter.
var _ Painter = (*Image)(nil)

// NewImage wraps img as a visual whose nominal size is the image bounds.
func NewImage(img image.Image) (*Image, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	b := img.Bounds()
	pix := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(pix, pix.Bounds(), img, b.Min, draw.Src)
	return &Image{
		pix:    pix,
		width:  float64(b.Dx()),
		height: float64(b.Dy()),
		interp: draw.ApproxBiLinear,
	}, nil
}

// DecodeImage decodes a PNG, JPEG or WebP stream into an Image.
func DecodeImage(r io.Reader) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("visual: decode image: %w", err)
	}
	return NewImage(img)
}

// LoadImage reads and decodes an image file.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("visual: open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeImage(f)
}

// Size returns the nominal size of the image.
func (im *Image) Size() (width, height float64) {
	return im.width, im.height
}

// SetInterpolator selects the scaler used when the target size differs
// from the image size. The default is draw.ApproxBiLinear.
func (im *Image) SetInterpolator(interp draw.Interpolator) {
	if interp == nil {
		interp = draw.ApproxBiLinear
	}
	im.interp = interp
}

// NRGBA returns the normalised pixels. The caller must not modify them.
func (im *Image) NRGBA() *image.NRGBA {
	return im.pix
}

// Paint draws the image so that it covers dst exactly.
func (im *Image) Paint(dst draw.Image) error {
	r := dst.Bounds()
	src := im.pix
	if b := src.Bounds(); b.Dx() != r.Dx() || b.Dy() != r.Dy() {
		scaled := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		im.interp.Scale(scaled, scaled.Bounds(), src, b, draw.Src, nil)
		src = scaled
	}
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
	return nil
}
