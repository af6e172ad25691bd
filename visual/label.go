// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package visual

import (
	"bytes"
	"errors"
	"fmt"
	"image/draw"
	"math"
	"unicode"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// ErrInvalidFont is returned when font data cannot be parsed.
	ErrInvalidFont = errors.New("visual: invalid font")

	// ErrMissingGlyph is returned when the font has no glyph for a
	// character of the label text.
	ErrMissingGlyph = errors.New("visual: missing glyph")
)

// Label is a single line of text. Its nominal size is the measured text
// box plus padding on every side.
type Label struct {
	text    string
	family  string
	face    text.Face
	color   gg.RGBA
	padding float64
	width   float64
	height  float64
}

// Ensure Label implements Painter.
var _ Painter = (*Label)(nil)

// LabelOption configures a Label.
type LabelOption func(*labelOptions)

type labelOptions struct {
	fontData []byte
	color    gg.RGBA
	padding  float64
}

// WithFont sets the TTF or OTF data used to draw the label.
// The default is Go Regular.
func WithFont(data []byte) LabelOption {
	return func(o *labelOptions) {
		o.fontData = data
	}
}

// WithColor sets the text color. The default is opaque black.
func WithColor(c gg.RGBA) LabelOption {
	return func(o *labelOptions) {
		o.color = c
	}
}

// WithPadding adds transparent padding around the text box.
func WithPadding(p float64) LabelOption {
	return func(o *labelOptions) {
		o.padding = math.Max(0, p)
	}
}

// NewLabel creates a label drawing s at the given size in points.
func NewLabel(s string, size float64, opts ...LabelOption) (*Label, error) {
	o := labelOptions{
		fontData: goregular.TTF,
		color:    gg.Black,
	}
	for _, opt := range opts {
		opt(&o)
	}

	parsed, err := font.ParseTTF(bytes.NewReader(o.fontData))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	// An unmapped rune would render as nothing and trim to empty.
	if r, ok := firstUnmapped(parsed, s); !ok {
		return nil, fmt.Errorf("%w: %q (U+%04X)", ErrMissingGlyph, r, r)
	}
	source, err := text.NewFontSource(o.fontData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}

	l := &Label{
		text:    s,
		family:  parsed.Describe().Family,
		face:    source.Face(size),
		color:   o.color,
		padding: o.padding,
	}
	w, h := text.Measure(s, l.face)
	l.width = math.Ceil(w + 2*l.padding)
	l.height = math.Ceil(h + 2*l.padding)
	return l, nil
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// Family returns the family name stored in the font.
func (l *Label) Family() string {
	return l.family
}

// Size returns the padded text box size.
func (l *Label) Size() (width, height float64) {
	return l.width, l.height
}

// Paint draws the text with its baseline one ascent below the top padding.
// Text is always drawn at its native size; a smaller target clips it.
func (l *Label) Paint(dst draw.Image) error {
	text.Draw(dst, l.text, l.face, l.padding, l.padding+l.face.Metrics().Ascent, l.color.Color())
	return nil
}

// firstUnmapped returns the first printable rune of s that f cannot map
// to a glyph. Spaces and control characters are not checked.
func firstUnmapped(f *font.Face, s string) (rune, bool) {
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			continue
		}
		if _, ok := f.NominalGlyph(r); !ok {
			return r, false
		}
	}
	return 0, true
}
