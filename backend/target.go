// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg-trim/internal/pix"
	"github.com/gogpu/gputypes"
)

// PixmapTarget is a CPU-backed off-screen target wrapping a gg.Pixmap.
//
// The pixmap is stored top row first, as gg draws it. ReadPixels returns
// the rows in framebuffer order (bottom row first).
type PixmapTarget struct {
	pm       *gg.Pixmap
	width    int
	height   int
	owner    *SoftwareBackend
	released bool
}

// Ensure PixmapTarget implements Target.
var _ Target = (*PixmapTarget)(nil)

func newPixmapTarget(owner *SoftwareBackend, width, height int) *PixmapTarget {
	return &PixmapTarget{
		pm:     gg.NewPixmap(width, height),
		width:  width,
		height: height,
		owner:  owner,
	}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.width
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.height
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixmap returns the backing pixmap, or nil after release.
func (t *PixmapTarget) Pixmap() *gg.Pixmap {
	if t.released {
		return nil
	}
	return t.pm
}

// Released reports whether the target has been released.
func (t *PixmapTarget) Released() bool {
	return t.released
}

// Clear fills the target with fully transparent black.
func (t *PixmapTarget) Clear() {
	t.pm.Clear(gg.Transparent)
}

// ReadPixels returns a copy of the target in bottom-left row order.
func (t *PixmapTarget) ReadPixels() ([]byte, error) {
	if t.released {
		return nil, ErrTargetReleased
	}
	return pix.Flipped(t.pm.Data(), pix.Stride(t.width), t.height), nil
}

func (t *PixmapTarget) release() {
	t.released = true
	t.pm = nil
}
