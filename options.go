// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggtrim

// ExtractorOption configures an Extractor during creation.
//
// Example:
//
//	// Keep the backend's native row order.
//	ex := ggtrim.NewExtractor(nil, ggtrim.WithFlipVertically(false))
type ExtractorOption func(*extractorOptions)

// extractorOptions holds optional configuration for Extractor creation.
type extractorOptions struct {
	flipVertically bool
}

// defaultExtractorOptions returns the default extractor options.
func defaultExtractorOptions() extractorOptions {
	return extractorOptions{
		flipVertically: true,
	}
}

// WithFlipVertically sets whether extracted rows are reversed.
// The default is true, which turns the framebuffer readback order of the
// built-in backends into a top-left buffer.
func WithFlipVertically(flip bool) ExtractorOption {
	return func(o *extractorOptions) {
		o.flipVertically = flip
	}
}
