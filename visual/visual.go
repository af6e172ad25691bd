// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package visual defines the sources a backend can rasterize for trimming.
//
// Two families of visuals exist:
//
//   - Retained visuals ([Node]) record their content into a [scene.Scene].
//     A backend renders them through a transient camera so the result does
//     not depend on where the node sits in a larger scene.
//   - Immediate visuals ([Image], [Label]) paint directly into a CPU
//     [draw.Image] sized to the off-screen target.
//
// A visual is never mutated by rasterization, apart from a camera node
// that a backend attaches for the duration of one render and detaches
// before returning.
package visual

import (
	"errors"
	"image/draw"

	"github.com/gogpu/gg/scene"
)

// ErrDestroyed is returned when a destroyed node is used.
var ErrDestroyed = errors.New("visual: node destroyed")

// Visual is anything with a nominal size that a backend knows how to draw.
type Visual interface {
	// Size returns the nominal width and height in pixels.
	// Fractional sizes are floored by the extractor.
	Size() (width, height float64)
}

// Recorder is implemented by retained visuals. Record appends the visual's
// content to s in local coordinates, origin at the top-left corner of the
// content box; the current transform of s is honoured.
type Recorder interface {
	Visual
	Record(s *scene.Scene)
}

// Painter is implemented by immediate visuals. Paint draws into dst, whose
// bounds start at (0, 0) and match the off-screen target size. dst holds
// premultiplied pixels and is fully transparent on entry.
type Painter interface {
	Visual
	Paint(dst draw.Image) error
}

// Validator is implemented by visuals that can become unusable, such as
// destroyed nodes.
type Validator interface {
	Valid() bool
}

// IsValid reports whether v can be rasterized. Visuals that do not
// implement Validator are always valid.
func IsValid(v Visual) bool {
	if v == nil {
		return false
	}
	if vv, ok := v.(Validator); ok {
		return vv.Valid()
	}
	return true
}
