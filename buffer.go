// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggtrim

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/gogpu/gg-trim/backend"
	"github.com/gogpu/gg-trim/internal/pix"
	"golang.org/x/image/draw"
)

// Origin is the row order of a PixelBuffer.
type Origin = backend.Origin

// Row orders.
const (
	OriginTopLeft    = backend.OriginTopLeft
	OriginBottomLeft = backend.OriginBottomLeft
)

// PixelBuffer is an owned RGBA pixel buffer.
//
// Pixels are stored 4 bytes each in R, G, B, A order, row-major. The
// buffer's Origin tells whether the first row is the top or the bottom of
// the image. Coordinates taken by At, RGBAAt, Trim and Crop always use a
// top-left origin.
//
// PixelBuffer implements image.Image, so it can be passed to image/png and
// golang.org/x/image/draw directly.
type PixelBuffer struct {
	data   []byte
	width  int
	height int
	origin Origin
}

// Ensure PixelBuffer implements image.Image.
var _ image.Image = (*PixelBuffer)(nil)

// NewPixelBuffer creates a fully transparent top-left buffer.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &PixelBuffer{
		data:   make([]byte, pix.Len(width, height)),
		width:  width,
		height: height,
		origin: OriginTopLeft,
	}, nil
}

// PixelBufferFromRaw copies data into a new buffer with the given origin.
func PixelBufferFromRaw(data []byte, width, height int, origin Origin) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if want := pix.Len(width, height); len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(data), want)
	}
	return &PixelBuffer{
		data:   bytes.Clone(data),
		width:  width,
		height: height,
		origin: origin,
	}, nil
}

// PixelBufferFromImage converts img into a new top-left buffer.
func PixelBufferFromImage(img image.Image) (*PixelBuffer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidDimensions)
	}
	b := img.Bounds()
	buf, err := NewPixelBuffer(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	dst := &image.RGBA{Pix: buf.data, Stride: pix.Stride(buf.width), Rect: image.Rect(0, 0, buf.width, buf.height)}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return buf, nil
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Origin returns the row order of the buffer.
func (b *PixelBuffer) Origin() Origin {
	return b.origin
}

// Data returns the raw pixel data in the buffer's row order.
// The slice is shared with the buffer.
func (b *PixelBuffer) Data() []byte {
	return b.data
}

// offset returns the index of pixel (x, y), in top-left coordinates.
func (b *PixelBuffer) offset(x, y int) int {
	if b.origin == OriginBottomLeft {
		y = b.height - 1 - y
	}
	return y*pix.Stride(b.width) + x*pix.BytesPerPixel
}

// RGBAAt returns the raw color of pixel (x, y). Pixels outside the buffer
// are transparent.
func (b *PixelBuffer) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	i := b.offset(x, y)
	return color.RGBA{R: b.data[i], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// At implements the image.Image interface.
func (b *PixelBuffer) At(x, y int) color.Color {
	return b.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Flip returns a new buffer with the rows reversed and the origin toggled.
// The pixels it describes are unchanged.
func (b *PixelBuffer) Flip() *PixelBuffer {
	return &PixelBuffer{
		data:   pix.Flipped(b.data, pix.Stride(b.width), b.height),
		width:  b.width,
		height: b.height,
		origin: b.origin.Flipped(),
	}
}

// topDown returns the pixel data in top-left row order. The result
// aliases b.data for top-left buffers.
func (b *PixelBuffer) topDown() []byte {
	if b.origin == OriginTopLeft {
		return b.data
	}
	return pix.Flipped(b.data, pix.Stride(b.width), b.height)
}

// Trim scans the buffer once and returns the smallest rectangle, in
// top-left coordinates, enclosing every pixel with alpha above threshold.
// It reports false when no pixel qualifies.
func (b *PixelBuffer) Trim(threshold uint8) (TrimRect, bool) {
	r, ok := scan(b.data, b.width, b.height, threshold)
	if !ok || b.origin == OriginTopLeft {
		return r, ok
	}
	r.MinY, r.MaxY = b.height-r.MaxY, b.height-r.MinY
	return r, true
}

// Crop returns a new top-left buffer holding the pixels inside r.
func (b *PixelBuffer) Crop(r TrimRect) (*PixelBuffer, error) {
	if r.Empty() || !r.Rectangle().In(b.Bounds()) {
		return nil, fmt.Errorf("%w: crop %v of %dx%d buffer", ErrInvalidDimensions, r.Rectangle(), b.width, b.height)
	}
	return &PixelBuffer{
		data:   pix.CopyRect(b.topDown(), b.width, r.MinX, r.MinY, r.Width(), r.Height()),
		width:  r.Width(),
		height: r.Height(),
		origin: OriginTopLeft,
	}, nil
}

// PixelBufferFromDataURL decodes a base64 image data URL, such as one
// returned by DataURL, into a new top-left buffer. PNG, JPEG and WebP
// payloads are accepted.
func PixelBufferFromDataURL(url string) (*PixelBuffer, error) {
	header, payload, ok := strings.Cut(url, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return nil, fmt.Errorf("%w: want data:image/...;base64 header", ErrInvalidDataURL)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}
	return PixelBufferFromImage(img)
}

// ToRGBA returns a copy of the buffer as a top-left image.RGBA.
func (b *PixelBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	copy(img.Pix, b.topDown())
	return img
}

// EncodePNG writes the buffer to w as a PNG image.
func (b *PixelBuffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.ToRGBA())
}

// DataURL returns the buffer as a base64 PNG data URL.
func (b *PixelBuffer) DataURL() (string, error) {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
