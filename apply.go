// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggtrim

import "fmt"

// Margins are the transparent borders a trim removes, in pixels.
type Margins struct {
	Left, Right, Top, Bottom int
}

// IsZero reports whether the trim removes nothing.
func (m Margins) IsZero() bool {
	return m == Margins{}
}

// String returns the margins as "left L, right R, top T, bottom B".
func (m Margins) String() string {
	return fmt.Sprintf("left %d, right %d, top %d, bottom %d", m.Left, m.Right, m.Top, m.Bottom)
}

// Margins returns the borders removed from an original image of the given
// size when it is trimmed to r.
func (r TrimRect) Margins(originalWidth, originalHeight int) Margins {
	return Margins{
		Left:   r.MinX,
		Right:  originalWidth - r.MaxX,
		Top:    r.MinY,
		Bottom: originalHeight - r.MaxY,
	}
}

// DisplayRect is the region of an asset that is rendered, in pixels,
// with a top-left origin.
type DisplayRect struct {
	X, Y          int
	Width, Height int
}

// DisplayRect returns r as a display rectangle.
func (r TrimRect) DisplayRect() DisplayRect {
	return DisplayRect{X: r.MinX, Y: r.MinY, Width: r.Width(), Height: r.Height()}
}

// AssetSink is the asset-system side of a trim: an image whose display
// rectangle can be replaced while its pixel data is kept.
type AssetSink interface {
	// ApplyDisplayRect replaces the rendered region of the asset.
	ApplyDisplayRect(r DisplayRect)

	// SetTrimmed marks whether the asset renders a cropped region.
	SetTrimmed(trimmed bool)
}

// ApplyTrim crops sink to r and marks it trimmed.
//
// Trims without content or with zero area are refused with ErrNoContent
// and leave sink untouched, so a fully transparent visual is never
// collapsed to nothing.
func ApplyTrim(sink AssetSink, r TrimRect, hadContent bool) error {
	if !hadContent || r.Empty() {
		return ErrNoContent
	}
	sink.ApplyDisplayRect(r.DisplayRect())
	sink.SetTrimmed(true)
	return nil
}
