// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package visual

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestNewImage_Empty(t *testing.T) {
	if _, err := NewImage(nil); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("NewImage(nil) error = %v, want ErrEmptyImage", err)
	}
	empty := image.NewRGBA(image.Rect(0, 0, 0, 5))
	if _, err := NewImage(empty); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("NewImage(0x5) error = %v, want ErrEmptyImage", err)
	}
}

func TestNewImage_NormalisesOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 14, 23))
	src.SetNRGBA(11, 21, color.NRGBA{R: 9, A: 200})

	im, err := NewImage(src)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	if w, h := im.Size(); w != 4 || h != 3 {
		t.Errorf("Size() = (%v, %v), want (4, 3)", w, h)
	}
	if got := im.NRGBA().NRGBAAt(1, 1); got.A != 200 || got.R != 9 {
		t.Errorf("pixel (1,1) = %+v, want R=9 A=200", got)
	}

	// Later edits to the source must not leak into the visual.
	src.SetNRGBA(11, 21, color.NRGBA{})
	if got := im.NRGBA().NRGBAAt(1, 1); got.A != 200 {
		t.Error("Image shares memory with its source")
	}
}

func TestDecodeImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 6, 2))
	src.SetNRGBA(5, 1, color.NRGBA{A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	im, err := DecodeImage(&buf)
	if err != nil {
		t.Fatalf("DecodeImage() error = %v", err)
	}
	if w, h := im.Size(); w != 6 || h != 2 {
		t.Errorf("Size() = (%v, %v), want (6, 2)", w, h)
	}
}

func TestDecodeImage_Garbage(t *testing.T) {
	if _, err := DecodeImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("DecodeImage(garbage) error = nil")
	}
}

func TestLoadImage_Missing(t *testing.T) {
	if _, err := LoadImage("does/not/exist.png"); err == nil {
		t.Error("LoadImage(missing) error = nil")
	}
}

func TestImage_Paint(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	src.SetNRGBA(5, 2, color.NRGBA{R: 255, A: 255})
	im, err := NewImage(src)
	if err != nil {
		t.Fatal(err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, 8, 6))
	if err := im.Paint(dst); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			want := uint8(0)
			if x == 5 && y == 2 {
				want = 255
			}
			if got := dst.RGBAAt(x, y).A; got != want {
				t.Errorf("alpha at (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestImage_PaintScaled(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	im, err := NewImage(src)
	if err != nil {
		t.Fatal(err)
	}
	im.SetInterpolator(nil)

	dst := image.NewRGBA(image.Rect(0, 0, 6, 4))
	if err := im.Paint(dst); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if got := dst.RGBAAt(5, 3).A; got != 255 {
		t.Errorf("corner alpha = %d, want 255", got)
	}
}
