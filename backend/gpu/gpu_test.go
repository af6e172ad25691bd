// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg-trim/backend"
	"github.com/gogpu/gg-trim/internal/pix"
	"github.com/gogpu/gg-trim/visual"
	"github.com/gogpu/gg/scene"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpucontext"
)

// withCheck returns a backend whose device check is replaced by err and
// counts how often it runs.
func withCheck(err error, calls *int) *Backend {
	b := New()
	b.check = func() error {
		*calls++
		return err
	}
	return b
}

// replaceRegistered registers factory as the gpu backend for the duration
// of the test.
func replaceRegistered(t *testing.T, factory backend.Factory) {
	t.Helper()
	backend.Register(backend.BackendGPU, factory)
	t.Cleanup(func() {
		backend.Register(backend.BackendGPU, func() backend.Backend { return New() })
	})
}

func TestRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendGPU) {
		t.Fatalf("%q not registered after importing the package", backend.BackendGPU)
	}
	b := backend.Get(backend.BackendGPU)
	if b == nil {
		t.Fatal("Get(gpu) = nil")
	}
	if b.Name() != backend.BackendGPU {
		t.Errorf("Name() = %q, want %q", b.Name(), backend.BackendGPU)
	}
	if b.Origin() != backend.OriginBottomLeft {
		t.Errorf("Origin() = %v, want %v", b.Origin(), backend.OriginBottomLeft)
	}
}

func TestUnavailable(t *testing.T) {
	var calls int
	b := withCheck(errors.New("no adapter"), &calls)

	if b.Available() {
		t.Fatal("Available() = true with a failing device check")
	}
	if _, err := b.NewTarget(4, 4); !errors.Is(err, backend.ErrBackendNotAvailable) {
		t.Errorf("NewTarget() error = %v, want ErrBackendNotAvailable", err)
	}
	n := visual.NewNode("n", 4, 4)
	if err := b.Rasterize(context.Background(), n, nil); !errors.Is(err, backend.ErrBackendNotAvailable) {
		t.Errorf("Rasterize() error = %v, want ErrBackendNotAvailable", err)
	}
	if calls != 1 {
		t.Errorf("device check ran %d times, want 1", calls)
	}
	if n := b.LiveTargets(); n != 0 {
		t.Errorf("LiveTargets() = %d, want 0", n)
	}
}

func TestDefaultFallsBackToSoftware(t *testing.T) {
	var calls int
	replaceRegistered(t, func() backend.Backend {
		return withCheck(errors.New("no adapter"), &calls)
	})

	b := backend.Default()
	if b == nil {
		t.Fatal("Default() = nil")
	}
	if b.Name() != backend.BackendSoftware {
		t.Errorf("Default() = %q, want %q", b.Name(), backend.BackendSoftware)
	}
	if calls != 1 {
		t.Errorf("device check ran %d times, want 1", calls)
	}
}

func TestDefaultPrefersWorkingDevice(t *testing.T) {
	var calls int
	replaceRegistered(t, func() backend.Backend {
		return withCheck(nil, &calls)
	})

	b := backend.Default()
	if b == nil || b.Name() != backend.BackendGPU {
		t.Fatalf("Default() = %v, want %q", b, backend.BackendGPU)
	}
}

func TestRasterizeReleaseBalance(t *testing.T) {
	var calls int
	b := withCheck(nil, &calls)

	n := visual.NewNode("box", 12, 10)
	n.Fill(scene.NewRectShape(3, 2, 4, 5), scene.SolidBrush(gg.Red))

	for i := 0; i < 3; i++ {
		tgt, err := b.NewTarget(12, 10)
		if err != nil {
			t.Fatalf("NewTarget() error = %v", err)
		}
		if got := b.LiveTargets(); got != 1 {
			t.Errorf("LiveTargets() = %d, want 1", got)
		}
		if tgt.Format() != gputypes.TextureFormatRGBA8Unorm {
			t.Errorf("Format() = %v, want RGBA8Unorm", tgt.Format())
		}
		if err := b.Rasterize(context.Background(), n, tgt); err != nil {
			t.Fatalf("Rasterize() error = %v", err)
		}
		data, err := tgt.ReadPixels()
		if err != nil {
			t.Fatalf("ReadPixels() error = %v", err)
		}
		top := pix.Flipped(data, pix.Stride(12), 10)
		if got, want := opaque(top, 12, 10), image.Rect(3, 2, 7, 7); got != want {
			t.Errorf("opaque bounds = %v, want %v", got, want)
		}
		if err := b.ReleaseTarget(tgt); err != nil {
			t.Fatalf("ReleaseTarget() error = %v", err)
		}
		if err := b.ReleaseTarget(tgt); !errors.Is(err, backend.ErrTargetReleased) {
			t.Errorf("second ReleaseTarget() error = %v, want ErrTargetReleased", err)
		}
	}
	if got := b.LiveTargets(); got != 0 {
		t.Errorf("LiveTargets() = %d after release, want 0", got)
	}
	if calls != 1 {
		t.Errorf("device check ran %d times, want 1", calls)
	}
}

func TestForeignTarget(t *testing.T) {
	var calls int
	b := withCheck(nil, &calls)
	soft := backend.NewSoftwareBackend()
	tgt, err := soft.NewTarget(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = soft.ReleaseTarget(tgt) })

	if err := b.ReleaseTarget(tgt); !errors.Is(err, backend.ErrForeignTarget) {
		t.Errorf("ReleaseTarget(foreign) error = %v, want ErrForeignTarget", err)
	}
}

// fakeProvider is a DeviceProvider without HAL access.
type fakeProvider struct{}

func (fakeProvider) Device() gpucontext.Device             { return nil }
func (fakeProvider) Queue() gpucontext.Queue               { return nil }
func (fakeProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatUndefined }
func (fakeProvider) Adapter() gpucontext.Adapter           { return nil }
func (fakeProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{Name: "fake"} }

func TestSetDeviceProvider(t *testing.T) {
	err := SetDeviceProvider(fakeProvider{})
	if gg.Accelerator() == nil {
		if err != nil {
			t.Errorf("SetDeviceProvider() without accelerator error = %v, want nil", err)
		}
		return
	}
	// A provider without HAL device and queue is refused; the
	// accelerator keeps its own device.
	if err == nil {
		t.Error("SetDeviceProvider(fake) error = nil, want rejection")
	}
}

func opaque(data []byte, w, h int) image.Rectangle {
	r := image.Rectangle{}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if data[(y*w+x)*4+3] > 127 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}
