// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package asset

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	ggtrim "github.com/gogpu/gg-trim"
	"github.com/gogpu/gg-trim/backend"
)

func TestNewSpriteFrame(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(5, 5, 15, 11))
	f, err := NewSpriteFrame("hero", tex)
	if err != nil {
		t.Fatalf("NewSpriteFrame() error = %v", err)
	}
	if w, h := f.OriginalSize(); w != 10 || h != 6 {
		t.Errorf("OriginalSize() = %dx%d, want 10x6", w, h)
	}
	if got, want := f.Rect(), (ggtrim.DisplayRect{Width: 10, Height: 6}); got != want {
		t.Errorf("Rect() = %+v, want %+v", got, want)
	}
	if f.Trimmed() {
		t.Error("new frame is trimmed")
	}
	if x, y := f.Offset(); x != 0 || y != 0 {
		t.Errorf("Offset() = (%v, %v), want (0, 0)", x, y)
	}

	for _, tex := range []image.Image{nil, image.NewNRGBA(image.Rectangle{})} {
		if _, err := NewSpriteFrame("bad", tex); !errors.Is(err, ErrEmptyTexture) {
			t.Errorf("NewSpriteFrame(%v) error = %v, want ErrEmptyTexture", tex, err)
		}
	}
}

func TestSpriteFrameApplyTrim(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	tex.SetNRGBA(3, 2, color.NRGBA{R: 200, A: 255})
	f, err := NewSpriteFrame("hero", tex)
	if err != nil {
		t.Fatalf("NewSpriteFrame() error = %v", err)
	}

	r := ggtrim.TrimRect{MinX: 2, MinY: 1, MaxX: 5, MaxY: 4}
	if err := ggtrim.ApplyTrim(f, r, true); err != nil {
		t.Fatalf("ApplyTrim() error = %v", err)
	}
	if !f.Trimmed() {
		t.Error("Trimmed() = false after ApplyTrim")
	}
	if got, want := f.Rect(), (ggtrim.DisplayRect{X: 2, Y: 1, Width: 3, Height: 3}); got != want {
		t.Errorf("Rect() = %+v, want %+v", got, want)
	}
	if w, h := f.OriginalSize(); w != 8 || h != 6 {
		t.Errorf("OriginalSize() = %dx%d, want 8x6", w, h)
	}
	// Centre moves from (4,3) to (3.5,2.5).
	if x, y := f.Offset(); x != -0.5 || y != -0.5 {
		t.Errorf("Offset() = (%v, %v), want (-0.5, -0.5)", x, y)
	}

	img := f.Image()
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 3 {
		t.Fatalf("Image() bounds = %v, want 3x3", b)
	}
	if _, _, _, a := img.At(img.Bounds().Min.X+1, img.Bounds().Min.Y+1).RGBA(); a != 0xffff {
		t.Errorf("content pixel alpha = %#x, want 0xffff", a)
	}
	if f.Texture() != image.Image(tex) || tex.Bounds().Dx() != 8 {
		t.Error("texture replaced or modified")
	}

	f.Reset()
	if f.Trimmed() || f.Rect() != (ggtrim.DisplayRect{Width: 8, Height: 6}) {
		t.Errorf("after Reset: trimmed=%v rect=%+v", f.Trimmed(), f.Rect())
	}
}

func TestSpriteFrameRefusedTrimLeavesFrame(t *testing.T) {
	f, err := NewSpriteFrame("blank", image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	if err != nil {
		t.Fatalf("NewSpriteFrame() error = %v", err)
	}
	if err := ggtrim.ApplyTrim(f, ggtrim.TrimRect{}, false); !errors.Is(err, ggtrim.ErrNoContent) {
		t.Errorf("ApplyTrim() error = %v, want ErrNoContent", err)
	}
	if f.Trimmed() || f.Rect() != (ggtrim.DisplayRect{Width: 4, Height: 4}) {
		t.Errorf("frame changed: trimmed=%v rect=%+v", f.Trimmed(), f.Rect())
	}
}

func TestSpriteFrameApplyDisplayRectClips(t *testing.T) {
	f, err := NewSpriteFrame("hero", image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	if err != nil {
		t.Fatalf("NewSpriteFrame() error = %v", err)
	}

	f.ApplyDisplayRect(ggtrim.DisplayRect{X: 2, Y: -1, Width: 5, Height: 3})
	if got, want := f.Rect(), (ggtrim.DisplayRect{X: 2, Y: 0, Width: 2, Height: 2}); got != want {
		t.Errorf("Rect() = %+v, want %+v", got, want)
	}

	f.ApplyDisplayRect(ggtrim.DisplayRect{X: 10, Y: 10, Width: 2, Height: 2})
	if got, want := f.Rect(), (ggtrim.DisplayRect{X: 2, Y: 0, Width: 2, Height: 2}); got != want {
		t.Errorf("Rect() after outside rect = %+v, want %+v", got, want)
	}
}

// opaqueTexture wraps an image without a SubImage method.
type opaqueTexture struct{ image.Image }

func TestSpriteFrameImageCopiesWithoutSubImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(2, 2, color.NRGBA{B: 255, A: 255})
	f, err := NewSpriteFrame("wrapped", opaqueTexture{src})
	if err != nil {
		t.Fatalf("NewSpriteFrame() error = %v", err)
	}
	f.ApplyDisplayRect(ggtrim.DisplayRect{X: 2, Y: 2, Width: 2, Height: 2})

	img := f.Image()
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("Image() bounds = %v, want (0,0)-(2,2)", img.Bounds())
	}
	if _, _, b, a := img.At(0, 0).RGBA(); b != 0xffff || a != 0xffff {
		t.Errorf("Image().At(0, 0) = %v, want opaque blue", img.At(0, 0))
	}
}

func TestSpriteFrameTrim(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 6, 5))
	for y := 1; y < 4; y++ {
		for x := 2; x < 4; x++ {
			tex.SetNRGBA(x, y, color.NRGBA{G: 255, A: 255})
		}
	}
	f, err := NewSpriteFrame("hero", tex)
	if err != nil {
		t.Fatalf("NewSpriteFrame() error = %v", err)
	}

	sw := backend.NewSoftwareBackend()
	res, err := f.Trim(context.Background(), ggtrim.NewExtractor(sw), 127)
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	if want := (ggtrim.TrimRect{MinX: 2, MinY: 1, MaxX: 4, MaxY: 4}); res.Rect != want {
		t.Errorf("Trim() rect = %v, want %v", res.Rect, want)
	}
	if !f.Trimmed() || f.Rect() != (ggtrim.DisplayRect{X: 2, Y: 1, Width: 2, Height: 3}) {
		t.Errorf("frame after Trim: trimmed=%v rect=%+v", f.Trimmed(), f.Rect())
	}
	if sw.LiveTargets() != 0 {
		t.Errorf("LiveTargets() = %d, want 0", sw.LiveTargets())
	}
}

func TestSpriteFrameTrimBlank(t *testing.T) {
	f, err := NewSpriteFrame("blank", image.NewNRGBA(image.Rect(0, 0, 3, 3)))
	if err != nil {
		t.Fatalf("NewSpriteFrame() error = %v", err)
	}

	res, err := f.Trim(context.Background(), ggtrim.NewExtractor(backend.NewSoftwareBackend()), 0)
	if !errors.Is(err, ggtrim.ErrNoContent) {
		t.Errorf("Trim() error = %v, want ErrNoContent", err)
	}
	if res.HadContent {
		t.Error("blank texture reported content")
	}
	if f.Trimmed() {
		t.Error("blank frame marked trimmed")
	}
}
