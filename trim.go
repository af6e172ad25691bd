// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggtrim

import (
	"fmt"
	"image"

	"github.com/gogpu/gg-trim/internal/pix"
)

// DefaultAlphaThreshold counts every pixel with non-zero alpha as content.
const DefaultAlphaThreshold uint8 = 0

// TrimRect is the bounding rectangle of the content of a buffer.
//
// The origin is top-left and the rectangle is half-open: it covers
// [MinX, MaxX) x [MinY, MaxY), so MaxX-MinX and MaxY-MinY are the trimmed
// width and height. The zero TrimRect is the result for buffers without
// content.
type TrimRect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns MaxX - MinX.
func (r TrimRect) Width() int {
	return r.MaxX - r.MinX
}

// Height returns MaxY - MinY.
func (r TrimRect) Height() int {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle has no area.
func (r TrimRect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Rectangle converts r to an image.Rectangle.
func (r TrimRect) Rectangle() image.Rectangle {
	return image.Rect(r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// String returns the rectangle as "(minX,minY)-(maxX,maxY)".
func (r TrimRect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// ComputeTrim returns the smallest rectangle enclosing every pixel of a
// top-left RGBA buffer whose alpha is greater than threshold. RGB values
// are ignored.
//
// The boolean reports whether any pixel qualified. A buffer without
// content yields the zero TrimRect and false; that is a normal result.
// An error is returned only for malformed input.
func ComputeTrim(data []byte, width, height int, threshold uint8) (TrimRect, bool, error) {
	if width <= 0 || height <= 0 {
		return TrimRect{}, false, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if want := pix.Len(width, height); len(data) != want {
		return TrimRect{}, false, fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(data), want)
	}
	r, ok := scan(data, width, height, threshold)
	return r, ok, nil
}

// scan visits every pixel once. data must hold width*height pixels.
func scan(data []byte, width, height int, threshold uint8) (TrimRect, bool) {
	minX, minY := width, height
	maxX, maxY := 0, 0

	i := 3
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if data[i] > threshold {
				minX = min(minX, x)
				maxX = max(maxX, x+1)
				minY = min(minY, y)
				maxY = max(maxY, y+1)
			}
			i += pix.BytesPerPixel
		}
	}

	if maxX == 0 {
		return TrimRect{}, false
	}
	return TrimRect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, true
}
