// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Config holds all runtime configuration.
type Config struct {
	Input     string  // image file to trim; empty renders Label or the demo node
	Label     string  // text to render and trim when Input is empty
	FontSize  float64 // label size in points
	Backend   string  // backend name; empty selects the best available
	Threshold uint    // alpha threshold, 0-255
	NoFlip    bool    // keep the backend's native row order
	Output    string  // cropped PNG output; empty writes nothing
	DataURL   bool    // print the cropped PNG as a data URL
	Verbose   bool    // debug logging to stderr
}

// ParseFlags parses command-line arguments into a Config.
func ParseFlags(name string, args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Input, "input", "", "Image file to trim (PNG, JPEG or WebP)")
	fs.StringVar(&cfg.Label, "label", "", "Text to render and trim when no input is given")
	fs.Float64Var(&cfg.FontSize, "size", 32, "Label font size in points")
	fs.StringVar(&cfg.Backend, "backend", "", "Rasterization backend (gpu, software; empty = best available)")
	fs.UintVar(&cfg.Threshold, "threshold", 0, "Alpha threshold (0-255); pixels with greater alpha are content")
	fs.BoolVar(&cfg.NoFlip, "noflip", false, "Keep the backend's native row order")
	fs.StringVar(&cfg.Output, "output", "", "Write the cropped image to this PNG file")
	fs.BoolVar(&cfg.DataURL, "dataurl", false, "Print the cropped image as a base64 data URL")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.Threshold > 255 {
		return nil, fmt.Errorf("threshold %d out of range 0-255", cfg.Threshold)
	}
	if cfg.Input != "" && cfg.Label != "" {
		return nil, errors.New("-input and -label are mutually exclusive")
	}
	if cfg.FontSize <= 0 {
		return nil, fmt.Errorf("font size %v must be positive", cfg.FontSize)
	}
	return cfg, nil
}
