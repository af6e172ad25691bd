// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Package gpu registers the "gpu" rasterization backend.
//
// The backend package alone is CPU-only. Import this package for its side
// effect to enable gg's GPU accelerator and the "gpu" backend:
//
//	import _ "github.com/gogpu/gg-trim/backend/gpu"
//
// Registering the accelerator does not prove it works: on hosts without a
// usable Vulkan, Metal or DX12 adapter gg still registers it and fails on
// first use. The backend therefore renders a small test shape through the
// accelerator once and reports itself unavailable if that fails, so
// [backend.Default] falls back to the software backend.
package gpu

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg-trim/backend"
	"github.com/gogpu/gg-trim/visual"
	_ "github.com/gogpu/gg/gpu" // registers the gg GPU accelerator
	"github.com/gogpu/gpucontext"
)

// Backend rasterizes on hosts where gg's GPU accelerator is working.
// Targets are host-visible pixmaps, so readback needs no device copy.
type Backend struct {
	soft *backend.SoftwareBackend

	once      sync.Once
	available bool
	check     func() error
}

// Ensure Backend implements backend.Backend.
var _ backend.Backend = (*Backend)(nil)

func init() {
	backend.Register(backend.BackendGPU, func() backend.Backend {
		return New()
	})
}

// New creates a GPU backend. Options configure the shared pipeline that
// renders into host-visible targets.
func New(opts ...backend.SoftwareOption) *Backend {
	opts = append(opts, backend.WithName(backend.BackendGPU))
	return &Backend{
		soft:  backend.NewSoftwareBackend(opts...),
		check: renderTestShape,
	}
}

// SetDeviceProvider shares a host GPU device with the accelerator instead
// of letting it create its own. It is a no-op when no accelerator is
// registered.
func SetDeviceProvider(provider gpucontext.DeviceProvider) error {
	if err := gg.SetAcceleratorDeviceProvider(provider); err != nil {
		return fmt.Errorf("gpu: set device provider: %w", err)
	}
	return nil
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendGPU
}

// Available reports whether the accelerator rendered a test shape
// correctly. The check runs once per Backend.
func (b *Backend) Available() bool {
	b.once.Do(func() {
		err := b.check()
		b.available = err == nil
		if err != nil {
			backend.Logger().Info("backend: gpu unavailable", "err", err)
		}
	})
	return b.available
}

// Origin returns OriginBottomLeft.
func (b *Backend) Origin() backend.Origin {
	return backend.OriginBottomLeft
}

// LiveTargets returns the number of targets created and not yet released.
func (b *Backend) LiveTargets() int {
	return b.soft.LiveTargets()
}

// NewTarget acquires a host-visible target.
func (b *Backend) NewTarget(width, height int) (backend.Target, error) {
	if !b.Available() {
		return nil, backend.ErrBackendNotAvailable
	}
	return b.soft.NewTarget(width, height)
}

// ReleaseTarget destroys a target created by this backend.
func (b *Backend) ReleaseTarget(t backend.Target) error {
	return b.soft.ReleaseTarget(t)
}

// Rasterize renders v alone into t.
func (b *Backend) Rasterize(ctx context.Context, v visual.Visual, t backend.Target) error {
	if !b.Available() {
		return backend.ErrBackendNotAvailable
	}
	return b.soft.Rasterize(ctx, v, t)
}

var errNoAccelerator = errors.New("gpu: no accelerator registered")

// testShapeSize is the edge of the pixmap used by renderTestShape.
const testShapeSize = 8

// renderTestShape draws a filled circle through the registered accelerator
// and reads back its centre pixel.
func renderTestShape() (err error) {
	a := gg.Accelerator()
	if a == nil {
		return errNoAccelerator
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("gpu: %s: panic: %v", a.Name(), r)
		}
	}()

	pm := gg.NewPixmap(testShapeSize, testShapeSize)
	dc := gg.NewContext(testShapeSize, testShapeSize, gg.WithPixmap(pm))
	defer func() { _ = dc.Close() }()

	dc.SetRGBA(1, 0, 0, 1)
	dc.DrawCircle(testShapeSize/2, testShapeSize/2, testShapeSize/2-1)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("gpu: %s: fill: %w", a.Name(), err)
	}
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("gpu: %s: flush: %w", a.Name(), err)
	}
	if c := pm.GetPixel(testShapeSize/2, testShapeSize/2); c.A < 0.99 || c.R < 0.99 {
		return fmt.Errorf("gpu: %s: readback %v, want opaque red", a.Name(), c)
	}
	return nil
}
