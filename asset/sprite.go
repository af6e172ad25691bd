// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package asset holds the asset-system side of trimming: sprite frames
// whose display rectangle can be cropped while the texture is kept.
package asset

import (
	"context"
	"errors"
	"image"

	ggtrim "github.com/gogpu/gg-trim"
	"github.com/gogpu/gg-trim/visual"
	"golang.org/x/image/draw"
)

// ErrEmptyTexture is returned for textures without pixels.
var ErrEmptyTexture = errors.New("asset: empty texture")

// SpriteFrame is a named region of a texture.
//
// A fresh frame displays the whole texture. Trimming replaces the display
// rectangle with the content rectangle and marks the frame trimmed; the
// texture itself is never modified, so Reset restores the full frame.
type SpriteFrame struct {
	name     string
	texture  image.Image
	original image.Rectangle // texture bounds, origin at (0,0)
	rect     image.Rectangle
	trimmed  bool
}

// Ensure SpriteFrame implements ggtrim.AssetSink.
var _ ggtrim.AssetSink = (*SpriteFrame)(nil)

// NewSpriteFrame creates an untrimmed frame displaying all of texture.
func NewSpriteFrame(name string, texture image.Image) (*SpriteFrame, error) {
	if texture == nil || texture.Bounds().Empty() {
		return nil, ErrEmptyTexture
	}
	b := texture.Bounds()
	full := image.Rect(0, 0, b.Dx(), b.Dy())
	return &SpriteFrame{
		name:     name,
		texture:  texture,
		original: full,
		rect:     full,
	}, nil
}

// Name returns the frame name.
func (f *SpriteFrame) Name() string {
	return f.name
}

// Texture returns the untouched source texture.
func (f *SpriteFrame) Texture() image.Image {
	return f.texture
}

// OriginalSize returns the size of the frame before trimming.
func (f *SpriteFrame) OriginalSize() (width, height int) {
	return f.original.Dx(), f.original.Dy()
}

// Rect returns the displayed region in texture pixels, origin top-left.
func (f *SpriteFrame) Rect() ggtrim.DisplayRect {
	return ggtrim.DisplayRect{
		X:      f.rect.Min.X,
		Y:      f.rect.Min.Y,
		Width:  f.rect.Dx(),
		Height: f.rect.Dy(),
	}
}

// Trimmed reports whether the frame displays a cropped region.
func (f *SpriteFrame) Trimmed() bool {
	return f.trimmed
}

// Offset returns the distance from the centre of the original frame to
// the centre of the displayed region, y growing downward. Renderers add it
// to the sprite position so a trimmed frame lands where the full one was.
func (f *SpriteFrame) Offset() (x, y float64) {
	cx := float64(f.rect.Min.X+f.rect.Max.X) / 2
	cy := float64(f.rect.Min.Y+f.rect.Max.Y) / 2
	return cx - float64(f.original.Dx())/2, cy - float64(f.original.Dy())/2
}

// ApplyDisplayRect replaces the displayed region. The rectangle is clipped
// to the texture; a rectangle outside it is ignored.
func (f *SpriteFrame) ApplyDisplayRect(r ggtrim.DisplayRect) {
	clipped := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height).Intersect(f.original)
	if clipped.Empty() {
		return
	}
	f.rect = clipped
}

// SetTrimmed marks the frame as trimmed or not.
func (f *SpriteFrame) SetTrimmed(trimmed bool) {
	f.trimmed = trimmed
}

// Reset displays the whole texture again.
func (f *SpriteFrame) Reset() {
	f.rect = f.original
	f.trimmed = false
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Image returns the displayed region with its bounds starting at (0,0)
// relative to the texture. Textures that support SubImage share their
// pixels; others are copied.
func (f *SpriteFrame) Image() image.Image {
	r := f.rect.Add(f.texture.Bounds().Min)
	if s, ok := f.texture.(subImager); ok {
		return s.SubImage(r)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), f.texture, r.Min, draw.Src)
	return dst
}

// Trim rasterizes the texture with ex, finds its content and crops the
// frame to it. A texture without content leaves the frame unchanged and
// returns ggtrim.ErrNoContent along with the result.
func (f *SpriteFrame) Trim(ctx context.Context, ex *ggtrim.Extractor, threshold uint8) (ggtrim.Result, error) {
	img, err := visual.NewImage(f.texture)
	if err != nil {
		return ggtrim.Result{}, err
	}
	res, err := ggtrim.TrimVisual(ctx, ex, img, threshold)
	if err != nil {
		return ggtrim.Result{}, err
	}
	return res, res.Apply(f)
}
