// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggtrim

import "errors"

var (
	// ErrInvalidDimensions is returned for a non-positive width or height,
	// after flooring fractional sizes.
	ErrInvalidDimensions = errors.New("ggtrim: invalid dimensions")

	// ErrUnavailable reports that the host cannot rasterize off-screen.
	// It signals a degraded mode, not a failed extraction: nothing was
	// acquired and no visual was touched.
	ErrUnavailable = errors.New("ggtrim: off-screen rasterization unavailable")

	// ErrRasterizationFailed wraps any failure of the backend while
	// acquiring a target, rasterizing or reading back.
	ErrRasterizationFailed = errors.New("ggtrim: rasterization failed")

	// ErrInvalidVisual is returned for nil or destroyed visuals.
	ErrInvalidVisual = errors.New("ggtrim: invalid visual")

	// ErrBufferSize is returned when a buffer length is not width*height*4.
	ErrBufferSize = errors.New("ggtrim: buffer size mismatch")

	// ErrNoContent is returned by ApplyTrim for trims without any
	// qualifying pixel.
	ErrNoContent = errors.New("ggtrim: no content to trim to")

	// ErrInvalidDataURL is returned for strings that are not base64
	// image data URLs.
	ErrInvalidDataURL = errors.New("ggtrim: invalid data URL")
)
