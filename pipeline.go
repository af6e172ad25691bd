// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggtrim

import (
	"context"
	"fmt"

	"github.com/gogpu/gg-trim/visual"
)

// Result is the outcome of trimming a visual.
type Result struct {
	// Width and Height are the extracted size, before trimming.
	Width, Height int

	// Rect is the content rectangle; zero when HadContent is false.
	Rect       TrimRect
	HadContent bool

	// Margins are the borders removed from the extracted size.
	Margins Margins
}

// String returns a one-line report of the trim.
func (r Result) String() string {
	if !r.HadContent {
		return fmt.Sprintf("%dx%d has no content", r.Width, r.Height)
	}
	return fmt.Sprintf("trimmed %dx%d to %dx%d (%s)",
		r.Width, r.Height, r.Rect.Width(), r.Rect.Height(), r.Margins)
}

// Apply hands the trim to sink. See ApplyTrim.
func (r Result) Apply(sink AssetSink) error {
	return ApplyTrim(sink, r.Rect, r.HadContent)
}

// TrimVisual extracts v at its nominal size and computes its trim.
func TrimVisual(ctx context.Context, ex *Extractor, v visual.Visual, threshold uint8) (Result, error) {
	buf, err := ex.ExtractVisual(ctx, v)
	if err != nil {
		return Result{}, err
	}

	rect, ok := buf.Trim(threshold)
	res := Result{
		Width:      buf.Width(),
		Height:     buf.Height(),
		Rect:       rect,
		HadContent: ok,
	}
	if ok {
		res.Margins = rect.Margins(buf.Width(), buf.Height())
	}
	return res, nil
}
