// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend provides the off-screen rasterization capability used to
// turn a visual into raw RGBA pixels.
//
// A Backend creates off-screen targets, rasterizes visuals into them and
// releases them again. Rasterization of a scene node goes through a
// transient [Camera] that is attached to the node for the duration of one
// render, clears to fully transparent and maps the node's content box onto
// the target at native resolution.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The software backend is always registered:
//
//	b := backend.Default()          // best available backend
//	b := backend.Get("software")    // a specific backend
//
// This package is CPU-only and never registers gg's GPU accelerator. The
// "gpu" backend lives in a subpackage that callers opt into:
//
//	import _ "github.com/gogpu/gg-trim/backend/gpu"
//
// # Readback Order
//
// Targets read back in framebuffer order: the first row of a readback is
// the bottom row of the image ([OriginBottomLeft]). Callers that need a
// top-left buffer reverse the rows into a fresh slice.
//
// # Available Backends
//
//   - "software": CPU rasterizer built on scene.Renderer and image/draw
//     (always available)
//   - "gpu": registered by backend/gpu; available when gg's GPU
//     accelerator renders a test shape correctly
package backend
