// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command ggtrim reports the transparent margins of a rendered visual and
// optionally writes the trimmed image.
//
// Usage:
//
//	ggtrim -input sprite.png -output sprite_trimmed.png
//	ggtrim -label "Hello" -size 48 -dataurl
//	ggtrim -backend software -threshold 16 -v
//
// Without -input or -label a built-in demo node is trimmed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	ggtrim "github.com/gogpu/gg-trim"
	"github.com/gogpu/gg-trim/asset"
	"github.com/gogpu/gg-trim/backend"
	_ "github.com/gogpu/gg-trim/backend/gpu" // registers the "gpu" backend
	"github.com/gogpu/gg-trim/visual"
	"github.com/gogpu/gg/scene"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	cfg, err := ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		log.Fatalf("ggtrim: %v", err)
	}
}

func run(ctx context.Context, cfg *Config, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	ggtrim.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer ggtrim.SetLogger(nil)

	var b backend.Backend
	if cfg.Backend != "" {
		if b = backend.Get(cfg.Backend); b == nil {
			return fmt.Errorf("unknown backend %q (registered: %s)",
				cfg.Backend, strings.Join(backend.Names(), ", "))
		}
	}

	ex := ggtrim.NewExtractor(b, ggtrim.WithFlipVertically(!cfg.NoFlip))
	if !ex.Available() {
		return ggtrim.ErrUnavailable
	}

	v, name, err := loadVisual(cfg)
	if err != nil {
		return err
	}

	buf, err := ex.ExtractVisual(ctx, v)
	if err != nil {
		return err
	}
	rect, ok := buf.Trim(uint8(cfg.Threshold))

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "visual:   %s (%dx%d, backend %s)\n", name, buf.Width(), buf.Height(), ex.Backend().Name())
	if !ok {
		p.Fprintf(stdout, "content:  none above alpha %d\n", cfg.Threshold)
		return nil
	}
	m := rect.Margins(buf.Width(), buf.Height())
	p.Fprintf(stdout, "content:  %v, %dx%d (%.1f%% of the area)\n",
		rect, rect.Width(), rect.Height(),
		100*float64(rect.Width()*rect.Height())/float64(buf.Width()*buf.Height()))
	p.Fprintf(stdout, "margins:  %v\n", m)

	if img, isImage := v.(*visual.Image); isImage {
		frame, err := asset.NewSpriteFrame(name, img.NRGBA())
		if err != nil {
			return err
		}
		if err := ggtrim.ApplyTrim(frame, rect, ok); err != nil {
			return err
		}
		ox, oy := frame.Offset()
		p.Fprintf(stdout, "frame:    %+v offset (%.1f, %.1f)\n", frame.Rect(), ox, oy)
	}

	if cfg.Output == "" && !cfg.DataURL {
		return nil
	}
	cropped, err := buf.Crop(rect)
	if err != nil {
		return err
	}
	if cfg.Output != "" {
		if err := writePNG(cfg.Output, cropped); err != nil {
			return err
		}
		p.Fprintf(stdout, "written:  %s\n", cfg.Output)
	}
	if cfg.DataURL {
		url, err := cropped.DataURL()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, url)
	}
	return nil
}

// loadVisual returns the visual selected by cfg and a display name.
func loadVisual(cfg *Config) (visual.Visual, string, error) {
	switch {
	case cfg.Input != "":
		img, err := visual.LoadImage(cfg.Input)
		if err != nil {
			return nil, "", err
		}
		return img, filepath.Base(cfg.Input), nil
	case cfg.Label != "":
		l, err := visual.NewLabel(cfg.Label, cfg.FontSize, visual.WithPadding(cfg.FontSize/4))
		if err != nil {
			return nil, "", err
		}
		return l, fmt.Sprintf("label %q in %s", cfg.Label, l.Family()), nil
	default:
		return demoNode(), "demo", nil
	}
}

// demoNode builds a small scene with uneven transparent margins.
func demoNode() *visual.Node {
	root := visual.NewNode("demo", 96, 64)
	root.Fill(scene.NewRoundedRectShape(12, 10, 50, 30, 6), scene.SolidBrush(gg.Hex("#3366cc")))

	badge := visual.NewNode("badge", 20, 20)
	badge.Fill(scene.NewCircleShape(10, 10, 8), scene.SolidBrush(gg.Hex("#ff9900")))
	badge.SetPosition(50, 30)
	_ = root.AddChild(badge)
	return root
}

func writePNG(path string, buf *ggtrim.PixelBuffer) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := buf.EncodePNG(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
