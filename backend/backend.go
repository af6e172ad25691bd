// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"context"
	"errors"

	"github.com/gogpu/gg-trim/visual"
	"github.com/gogpu/gputypes"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrTargetSize is returned when a target with a non-positive size is requested.
	ErrTargetSize = errors.New("backend: invalid target size")

	// ErrTargetReleased is returned when a released target is used or released again.
	ErrTargetReleased = errors.New("backend: target already released")

	// ErrForeignTarget is returned when a target created by another backend is passed in.
	ErrForeignTarget = errors.New("backend: target belongs to another backend")

	// ErrUnsupportedVisual is returned for visuals the backend cannot draw.
	ErrUnsupportedVisual = errors.New("backend: unsupported visual")
)

// Origin identifies which image row comes first in a pixel buffer.
type Origin uint8

const (
	// OriginTopLeft means the first row is the top of the image.
	OriginTopLeft Origin = iota

	// OriginBottomLeft means the first row is the bottom of the image,
	// the usual framebuffer readback order.
	OriginBottomLeft
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginTopLeft:
		return "top-left"
	case OriginBottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}

// Flipped returns the origin of the same pixels after row reversal.
func (o Origin) Flipped() Origin {
	if o == OriginTopLeft {
		return OriginBottomLeft
	}
	return OriginTopLeft
}

// Target is an off-screen render target.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// ReadPixels copies the target contents into a new slice of
	// Width*Height*4 bytes in the backend's native row order.
	ReadPixels() ([]byte, error)
}

// Backend is the rasterization capability consumed by the extractor.
//
// Backends must be registered via Register() and are selected via
// Get() or Default(). A Backend is not required to be safe for
// concurrent use; callers serialize access to the shared rendering
// context.
type Backend interface {
	// Name returns the backend identifier (e.g., "software", "gpu").
	Name() string

	// Available reports whether the host can rasterize off-screen with
	// this backend. It must be checked before any target is created.
	Available() bool

	// Origin returns the row order of ReadPixels.
	Origin() Origin

	// NewTarget acquires an off-screen target of the given size.
	NewTarget(width, height int) (Target, error)

	// ReleaseTarget destroys a target acquired with NewTarget.
	ReleaseTarget(t Target) error

	// Rasterize renders v alone into t, replacing its contents.
	Rasterize(ctx context.Context, v visual.Visual, t Target) error
}
