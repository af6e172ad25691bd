// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pix holds row-level helpers for tightly packed RGBA8 data.
//
// All helpers write into a destination slice that must not overlap the
// source. Row reversal in place would read rows that were already
// overwritten, so callers always allocate a fresh destination.
package pix

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Stride returns the number of bytes in one tightly packed row.
func Stride(width int) int {
	return width * BytesPerPixel
}

// Len returns the byte length of a tightly packed width x height buffer.
func Len(width, height int) int {
	return width * height * BytesPerPixel
}

// FlipRows copies src into dst with the row order reversed: row 0 of src
// becomes the last row of dst. Both slices must hold exactly
// height rows of stride bytes.
func FlipRows(dst, src []byte, stride, height int) {
	for y := 0; y < height; y++ {
		s := src[y*stride : (y+1)*stride]
		d := (height - 1 - y) * stride
		copy(dst[d:d+stride], s)
	}
}

// Flipped returns a freshly allocated copy of src with reversed row order.
func Flipped(src []byte, stride, height int) []byte {
	dst := make([]byte, len(src))
	FlipRows(dst, src, stride, height)
	return dst
}

// CopyRect copies the w x h pixel region at (x, y) of a srcWidth-wide
// buffer into a new tightly packed buffer.
func CopyRect(src []byte, srcWidth, x, y, w, h int) []byte {
	srcStride := Stride(srcWidth)
	dstStride := Stride(w)
	dst := make([]byte, dstStride*h)
	for row := 0; row < h; row++ {
		s := (y+row)*srcStride + x*BytesPerPixel
		copy(dst[row*dstStride:(row+1)*dstStride], src[s:s+dstStride])
	}
	return dst
}
