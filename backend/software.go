// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"context"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg-trim/internal/pix"
	"github.com/gogpu/gg-trim/visual"
	"github.com/gogpu/gg/scene"
)

// SoftwareBackend is a CPU-based rasterization backend.
// It renders retained visuals with scene.Renderer through a transient
// camera and immediate visuals straight into the target pixmap. Neither
// path goes through gg's GPU accelerator, so the result does not depend on
// whether one is registered in the process.
type SoftwareBackend struct {
	name    string
	workers int

	mu     sync.Mutex // guards scenes
	scenes *scene.ScenePool

	live atomic.Int64
}

// SoftwareOption configures a SoftwareBackend.
type SoftwareOption func(*SoftwareBackend)

// WithWorkers sets the number of tile workers used for scene rendering.
// If n <= 0, GOMAXPROCS is used.
func WithWorkers(n int) SoftwareOption {
	return func(b *SoftwareBackend) {
		b.workers = n
	}
}

// WithName sets the name reported by Name and attached to log records.
// Backends that reuse the software pipeline use it to identify themselves.
func WithName(name string) SoftwareOption {
	return func(b *SoftwareBackend) {
		if name != "" {
			b.name = name
		}
	}
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() Backend {
		return NewSoftwareBackend()
	})
}

// NewSoftwareBackend creates a new software rasterization backend.
func NewSoftwareBackend(opts ...SoftwareOption) *SoftwareBackend {
	b := &SoftwareBackend{
		name:   BackendSoftware,
		scenes: scene.NewScenePool(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return b.name
}

// Available always reports true: the CPU rasterizer needs no host support.
func (b *SoftwareBackend) Available() bool {
	return true
}

// Origin returns OriginBottomLeft, the readback order of PixmapTarget.
func (b *SoftwareBackend) Origin() Origin {
	return OriginBottomLeft
}

// LiveTargets returns the number of targets created and not yet released.
func (b *SoftwareBackend) LiveTargets() int {
	return int(b.live.Load())
}

// NewTarget acquires a pixmap-backed off-screen target.
func (b *SoftwareBackend) NewTarget(width, height int) (Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTargetSize, width, height)
	}
	t := newPixmapTarget(b, width, height)
	b.live.Add(1)
	Logger().Debug("backend: target acquired", "backend", b.name, "width", width, "height", height)
	return t, nil
}

// ReleaseTarget destroys a target created by this backend.
func (b *SoftwareBackend) ReleaseTarget(t Target) error {
	pt, err := b.own(t)
	if err != nil {
		return err
	}
	if pt.released {
		return ErrTargetReleased
	}
	pt.release()
	b.live.Add(-1)
	Logger().Debug("backend: target released", "backend", b.name)
	return nil
}

// Rasterize renders v alone into t. Scene nodes go through a camera
// attached for the duration of the call; other recorders use a detached
// camera; painters draw into the target pixmap.
func (b *SoftwareBackend) Rasterize(ctx context.Context, v visual.Visual, t Target) error {
	pt, err := b.own(t)
	if err != nil {
		return err
	}
	if pt.released {
		return ErrTargetReleased
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	switch v := v.(type) {
	case *visual.Node:
		cam, release, err := AttachCamera(v, pt)
		if err != nil {
			return err
		}
		defer release()
		return b.renderScene(ctx, cam, v, pt)
	case visual.Recorder:
		w, h := v.Size()
		cam, err := NewCamera(w, h, pt)
		if err != nil {
			return err
		}
		return b.renderScene(ctx, cam, v, pt)
	case visual.Painter:
		return paint(v, pt)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedVisual, v)
	}
}

// renderScene records r into a pooled scene through cam and renders it
// with a renderer scoped to this call.
func (b *SoftwareBackend) renderScene(ctx context.Context, cam *Camera, r visual.Recorder, pt *PixmapTarget) error {
	opts := []scene.RendererOption{}
	if b.workers > 0 {
		opts = append(opts, scene.WithWorkers(b.workers))
	}
	renderer := scene.NewRenderer(pt.width, pt.height, opts...)
	if renderer == nil {
		return fmt.Errorf("%w: %dx%d", ErrTargetSize, pt.width, pt.height)
	}
	defer renderer.Close()

	b.mu.Lock()
	s := b.scenes.Get()
	b.mu.Unlock()
	defer func() {
		b.mu.Lock()
		b.scenes.Put(s)
		b.mu.Unlock()
	}()

	cam.Record(s, r)
	pt.pm.Clear(cam.ClearColor())
	return renderer.RenderWithContext(ctx, pt.pm, s)
}

// paint draws p into an image.RGBA view of the target pixmap. Both hold
// premultiplied RGBA rows top-down.
func paint(p visual.Painter, pt *PixmapTarget) error {
	pt.Clear()
	dst := &image.RGBA{
		Pix:    pt.pm.Data(),
		Stride: pix.Stride(pt.width),
		Rect:   image.Rect(0, 0, pt.width, pt.height),
	}
	return p.Paint(dst)
}

func (b *SoftwareBackend) own(t Target) (*PixmapTarget, error) {
	pt, ok := t.(*PixmapTarget)
	if !ok || pt == nil || pt.owner != b {
		return nil, ErrForeignTarget
	}
	return pt, nil
}
