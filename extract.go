// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggtrim

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gg-trim/backend"
	"github.com/gogpu/gg-trim/internal/pix"
	"github.com/gogpu/gg-trim/visual"
)

// Extractor rasterizes visuals off-screen and reads them back into
// PixelBuffers.
//
// Every call acquires its own target and releases it before returning,
// on every exit path. Calls are serialized, since backends share one
// rendering context.
type Extractor struct {
	mu      sync.Mutex
	backend backend.Backend
	flip    bool
}

// NewExtractor creates an extractor that rasterizes with b.
// If b is nil, the best available registered backend is used; when none
// is usable the extractor reports Available() == false.
func NewExtractor(b backend.Backend, opts ...ExtractorOption) *Extractor {
	o := defaultExtractorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if b == nil {
		b = backend.Default()
		if b != nil {
			Logger().Info("ggtrim: backend selected", "backend", b.Name())
		} else {
			Logger().Warn("ggtrim: no usable backend registered")
		}
	}

	return &Extractor{
		backend: b,
		flip:    o.flipVertically,
	}
}

// Backend returns the backend used by the extractor, or nil.
func (e *Extractor) Backend() backend.Backend {
	return e.backend
}

// Available reports whether the extractor can rasterize off-screen.
// Check it before extracting; Extract returns ErrUnavailable otherwise.
func (e *Extractor) Available() bool {
	return e.backend != nil && e.backend.Available()
}

// ExtractVisual extracts v at its nominal size.
func (e *Extractor) ExtractVisual(ctx context.Context, v visual.Visual) (*PixelBuffer, error) {
	if v == nil {
		return nil, ErrInvalidVisual
	}
	w, h := v.Size()
	return e.Extract(ctx, v, w, h)
}

// Extract rasterizes v alone into a width x height buffer, independent of
// where v sits in a larger scene. Fractional sizes are floored.
//
// Errors:
//   - ErrInvalidDimensions if the floored width or height is not positive
//   - ErrUnavailable if the backend cannot rasterize off-screen
//   - ErrInvalidVisual if v is nil or destroyed
//   - ErrRasterizationFailed, wrapping the cause, if the backend fails
//
// No resource is acquired before these checks pass.
func (e *Extractor) Extract(ctx context.Context, v visual.Visual, width, height float64) (*PixelBuffer, error) {
	w, h, err := floorSize(width, height)
	if err != nil {
		return nil, err
	}
	if !e.Available() {
		return nil, ErrUnavailable
	}
	if !visual.IsValid(v) {
		return nil, ErrInvalidVisual
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	t, release, err := e.acquireTarget(w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRasterizationFailed, err)
	}
	defer release()

	if err := e.backend.Rasterize(ctx, v, t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRasterizationFailed, err)
	}
	data, err := t.ReadPixels()
	if err != nil {
		return nil, fmt.Errorf("%w: readback: %w", ErrRasterizationFailed, err)
	}
	if want := pix.Len(w, h); len(data) != want {
		return nil, fmt.Errorf("%w: readback: %w: got %d bytes, want %d",
			ErrRasterizationFailed, ErrBufferSize, len(data), want)
	}

	origin := e.backend.Origin()
	Logger().Debug("ggtrim: extracted", "backend", e.backend.Name(),
		"width", w, "height", h, "origin", origin.String(), "flip", e.flip)

	if e.flip {
		// Rows go to a separate destination; the readback is never
		// reversed in place.
		return &PixelBuffer{
			data:   pix.Flipped(data, pix.Stride(w), h),
			width:  w,
			height: h,
			origin: origin.Flipped(),
		}, nil
	}
	return PixelBufferFromRaw(data, w, h, origin)
}

// acquireTarget creates an off-screen target. The returned release func
// must be deferred right away; release errors are logged, never returned,
// so they cannot mask the primary error.
func (e *Extractor) acquireTarget(width, height int) (backend.Target, func(), error) {
	t, err := e.backend.NewTarget(width, height)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if err := e.backend.ReleaseTarget(t); err != nil {
			Logger().Warn("ggtrim: release target", "backend", e.backend.Name(), "err", err)
		}
	}
	return t, release, nil
}

// floorSize floors a nominal size to whole pixels.
func floorSize(width, height float64) (int, int, error) {
	// The negated comparison also rejects NaN.
	if !(width >= 1 && height >= 1) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return 0, 0, fmt.Errorf("%w: %vx%v", ErrInvalidDimensions, width, height)
	}
	return int(math.Floor(width)), int(math.Floor(height)), nil
}
