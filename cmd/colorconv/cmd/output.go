// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/colorspace/base/iox/tomlx"
	"cogentcore.org/colorspace/base/iox/yamlx"
	"cogentcore.org/colorspace/model"
	"cogentcore.org/colorspace/profile"
	"github.com/muesli/termenv"
)

// ColorResult is a converted color as written by the commands.
type ColorResult struct {
	Model  string    `toml:"model" yaml:"model"`
	Values []float64 `toml:"values" yaml:"values"`

	// Hex is the #rrggbb form of the color in the working profile.
	Hex string `toml:"hex,omitempty" yaml:"hex,omitempty"`

	// Degenerate is whether some channel of the color is undetermined.
	Degenerate bool `toml:"degenerate,omitempty" yaml:"degenerate,omitempty"`
}

func newColorResult(c model.Color, p *profile.Profile) ColorResult {
	r := ColorResult{Model: c.Model.String(), Values: c.Values(), Degenerate: model.Degenerate(c)}
	if hex, err := c.Hex(p); err == nil {
		r.Hex = hex
	}
	return r
}

// write writes v in the toml or yaml format of c,
// or calls text for the text format.
func (c *Config) write(v any, text func(w io.Writer) error) error {
	switch c.Format {
	case "toml":
		return tomlx.Write(v, c.Out)
	case "yaml":
		return yamlx.Write(v, c.Out)
	}
	return text(c.Out)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// swatch returns a two cell swatch of the given hex color, which is
// blank when w does not support color.
func swatch(w io.Writer, hex string) string {
	out := termenv.NewOutput(w)
	if hex == "" || out.Profile == termenv.Ascii {
		return "  "
	}
	return out.String("  ").Background(out.Color(hex)).String()
}

// channels returns the channel values of the color with their symbols and units.
func channels(c model.Color) string {
	d, err := model.Describe(c.Model)
	if err != nil {
		return c.String()
	}
	parts := make([]string, d.Arity())
	for i, comp := range d.Components {
		parts[i] = comp.Symbol + " " + formatFloat(c.C[i]) + comp.Unit
	}
	return strings.Join(parts, "  ")
}

func writeColorText(w io.Writer, r ColorResult, c model.Color) error {
	_, err := fmt.Fprintf(w, "%s %s  %s", swatch(w, r.Hex), r.Model, channels(c))
	if err != nil {
		return err
	}
	if r.Hex != "" {
		_, err = fmt.Fprintf(w, "  %s", r.Hex)
	}
	if err == nil && r.Degenerate {
		_, err = fmt.Fprint(w, "  (degenerate)")
	}
	if err == nil {
		_, err = fmt.Fprintln(w)
	}
	return err
}
