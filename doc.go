// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggtrim finds the opaque content of rendered visuals and trims
// the transparent padding around them.
//
// # Overview
//
// Trimming is a one-way pipeline. An [Extractor] rasterizes a visual
// off-screen through a [backend.Backend] and reads the pixels back into a
// [PixelBuffer]. [ComputeTrim] (or [PixelBuffer.Trim]) scans the buffer
// once and returns the smallest [TrimRect] enclosing every pixel whose
// alpha exceeds a threshold. [ApplyTrim] hands the rectangle to an
// [AssetSink], which crops its display rectangle while keeping the
// original asset data.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/gg-trim"
//	    "github.com/gogpu/gg-trim/visual"
//	    "github.com/gogpu/gg/scene"
//	)
//
//	n := visual.NewNode("icon", 64, 64)
//	n.Fill(scene.NewRectShape(8, 4, 40, 52), scene.SolidBrush(gg.Red))
//
//	ex := ggtrim.NewExtractor(nil) // best available backend
//	res, err := ggtrim.TrimVisual(ctx, ex, n, ggtrim.DefaultAlphaThreshold)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res) // trimmed 64x64 to 40x52 (left 8, right 16, top 4, bottom 8)
//
// # Unavailable Rasterization
//
// Off-screen rasterization is a host capability. When the selected
// backend cannot run, [Extractor.Available] reports false and Extract
// returns [ErrUnavailable]. Callers should treat this as a degraded mode
// rather than a failure.
//
// # Row Order
//
// Backends read targets back in framebuffer order (bottom row first).
// Extractors flip rows by default so buffers come back top row first;
// [WithFlipVertically] turns the flip off. A PixelBuffer always records
// its [Origin], and trim rectangles always use a top-left origin.
//
// # Concurrency
//
// An Extractor serializes its own calls. ComputeTrim is pure and may be
// called from any goroutine on independently owned buffers.
//
// # Logging
//
// ggtrim is silent by default. Use [SetLogger] to enable structured
// logging through log/slog.
package ggtrim
