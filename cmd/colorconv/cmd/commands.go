// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/cam02"
	"cogentcore.org/colorspace/deltae"
	"cogentcore.org/colorspace/model"
	"cogentcore.org/colorspace/profile"
	"golang.org/x/image/math/f64"
)

// Convert converts the given color to the model with the given name
// in the working profile.
func Convert(c *Config, color, to string) error {
	p, err := c.WorkingProfile()
	if err != nil {
		return err
	}
	src, err := model.Parse(color)
	if err != nil {
		return err
	}
	id, err := model.Lookup(to)
	if err != nil {
		return err
	}
	dst, err := model.Convert(src, id, p)
	if err != nil {
		return err
	}
	slog.Info("converted", "from", src, "to", dst, "profile", p.Name)
	r := newColorResult(dst, p)
	return c.write(r, func(w io.Writer) error {
		return writeColorText(w, r, dst)
	})
}

// DeltaResult is the result of [Delta].
type DeltaResult struct {
	Formula   string      `toml:"formula" yaml:"formula"`
	Reference ColorResult `toml:"reference" yaml:"reference"`
	Sample    ColorResult `toml:"sample" yaml:"sample"`
	Delta     float64     `toml:"delta" yaml:"delta"`
}

// Delta measures the difference between the given reference and
// sample colors with the named formula. The ez formula measures
// Delta Ez in JzCzhz, and euclidean measures the distance between
// the channels of two colors of the same model.
func Delta(c *Config, ref, sample, formula string) error {
	p, err := c.WorkingProfile()
	if err != nil {
		return err
	}
	a, err := model.Parse(ref)
	if err != nil {
		return err
	}
	b, err := model.Parse(sample)
	if err != nil {
		return err
	}
	var d float64
	switch name := strings.ToLower(strings.TrimSpace(formula)); name {
	case "ez":
		d, err = deltae.EzBetween(a, b, p)
	case "euclidean":
		d, err = deltae.Euclidean(a, b)
	default:
		var f deltae.Func
		f, err = deltae.Lookup(name)
		if err == nil {
			d, err = f.Between(a, b, p)
		}
	}
	if err != nil {
		return err
	}
	r := DeltaResult{Formula: formula, Reference: newColorResult(a, p), Sample: newColorResult(b, p), Delta: d}
	return c.write(r, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s %s  ΔE %s = %s\n", swatch(w, r.Reference.Hex), swatch(w, r.Sample.Hex), a, formula, formatFloat(d))
		return err
	})
}

// AdaptResult is the result of [Adapt].
type AdaptResult struct {
	From   string      `toml:"from" yaml:"from"`
	To     string      `toml:"to" yaml:"to"`
	Color  ColorResult `toml:"color" yaml:"color"`
	XYZ    f64.Vec3    `toml:"xyz" yaml:"xyz"`
	Source f64.Vec3    `toml:"source_xyz" yaml:"source_xyz"`

	// Matrix is the row-major XYZ to XYZ adaptation matrix.
	Matrix f64.Mat3 `toml:"matrix" yaml:"matrix"`
}

// Adapt adapts the given color from the working profile to the named
// profile, writing it in the same model relative to the new profile.
func Adapt(c *Config, color, to string) error {
	src, err := c.WorkingProfile()
	if err != nil {
		return err
	}
	dst, err := c.Named(to)
	if err != nil {
		return err
	}
	col, err := model.Parse(color)
	if err != nil {
		return err
	}
	lrgb, err := model.ToHub(col, src)
	if err != nil {
		return err
	}
	xyz := src.XYZ(lrgb)
	m, err := profile.AdaptMatrix(src, dst)
	if err != nil {
		return err
	}
	axyz := m.MulVector3(xyz)
	out, err := model.FromHub(dst.LinearRGB(axyz), col.Model, dst)
	if err != nil {
		return err
	}
	r := AdaptResult{
		From:   src.Name,
		To:     dst.Name,
		Color:  newColorResult(out, dst),
		XYZ:    axyz.Vec3(),
		Source: xyz.Vec3(),
		Matrix: f64.Mat3(m),
	}
	return c.write(r, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "%s -> %s\n", r.From, r.To); err != nil {
			return err
		}
		return writeColorText(w, r.Color, out)
	})
}

// AppearanceOptions are the viewing conditions of [Appearance].
// Zero values keep the conditions of the working profile.
type AppearanceOptions struct {
	Surround            string
	AdaptingLuminance   float64
	BackgroundLuminance float64
}

// conditions returns the viewing conditions of the options
// applied to the given base conditions.
func (o AppearanceOptions) conditions(base cam02.Conditions) (cam02.Conditions, error) {
	cond := base
	if o.Surround != "" {
		s, err := cam02.ParseSurround(o.Surround)
		if err != nil {
			return cond, err
		}
		cond.Surround = s
	}
	if o.AdaptingLuminance != 0 {
		cond.AdaptingLuminance = o.AdaptingLuminance
	}
	if o.BackgroundLuminance != 0 {
		cond.BackgroundLuminance = o.BackgroundLuminance
	}
	return cond, nil
}

// AppearanceResult is the result of [Appearance].
type AppearanceResult struct {
	Conditions     cam02.Conditions `toml:"conditions" yaml:"conditions"`
	Lightness      float64          `toml:"J" yaml:"J"`
	Chroma         float64          `toml:"C" yaml:"C"`
	Hue            float64          `toml:"h" yaml:"h"`
	HueComposition float64          `toml:"H" yaml:"H"`
	Brightness     float64          `toml:"Q" yaml:"Q"`
	Colorfulness   float64          `toml:"M" yaml:"M"`
	Saturation     float64          `toml:"s" yaml:"s"`
}

// Appearance writes all of the CIECAM02 correlates of the given color
// under the viewing conditions of the working profile, as modified
// by the given options.
func Appearance(c *Config, color string, opts AppearanceOptions) error {
	p, err := c.WorkingProfile()
	if err != nil {
		return err
	}
	cond, err := opts.conditions(p.Conditions)
	if err != nil {
		return err
	}
	if cond != p.Conditions {
		if p, err = p.WithConditions(cond); err != nil {
			return err
		}
	}
	col, err := model.Parse(color)
	if err != nil {
		return err
	}
	lrgb, err := model.ToHub(col, p)
	if err != nil {
		return err
	}
	cam := cam02.FromXYZ(p.XYZ(lrgb), p.View)
	r := AppearanceResult{
		Conditions:     cond,
		Lightness:      cam.Lightness,
		Chroma:         cam.Chroma,
		Hue:            cam.Hue,
		HueComposition: cam.HueComposition,
		Brightness:     cam.Brightness,
		Colorfulness:   cam.Colorfulness,
		Saturation:     cam.Saturation,
	}
	return c.write(r, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s  surround %s  LA %s  Yb %s\n", swatch(w, errors.Ignore1(col.Hex(p))), col,
			cond.Surround, formatFloat(cond.AdaptingLuminance), formatFloat(cond.BackgroundLuminance))
		if err != nil {
			return err
		}
		for _, v := range []struct {
			sym, name string
			v         float64
		}{
			{"J", "lightness", cam.Lightness},
			{"C", "chroma", cam.Chroma},
			{"h", "hue angle", cam.Hue},
			{"H", "hue composition", cam.HueComposition},
			{"Q", "brightness", cam.Brightness},
			{"M", "colorfulness", cam.Colorfulness},
			{"s", "saturation", cam.Saturation},
		} {
			if _, err := fmt.Fprintf(w, "  %-2s %-16s %s\n", v.sym, v.name, formatFloat(v.v)); err != nil {
				return err
			}
		}
		return nil
	})
}

// ModelResult describes one model for [Models].
type ModelResult struct {
	Name        string            `toml:"name" yaml:"name"`
	Parent      string            `toml:"parent,omitempty" yaml:"parent,omitempty"`
	Description string            `toml:"description" yaml:"description"`
	Quantized   bool              `toml:"quantized,omitempty" yaml:"quantized,omitempty"`
	Components  []ComponentResult `toml:"components" yaml:"components"`
}

// ComponentResult describes one component of a model.
type ComponentResult struct {
	Symbol string  `toml:"symbol" yaml:"symbol"`
	Name   string  `toml:"name" yaml:"name"`
	Min    float64 `toml:"min" yaml:"min"`
	Max    float64 `toml:"max" yaml:"max"`
	Unit   string  `toml:"unit,omitempty" yaml:"unit,omitempty"`
	Kind   string  `toml:"kind" yaml:"kind"`
}

// Models writes the descriptors of all of the models.
func Models(c *Config) error {
	var ms struct {
		Models []ModelResult `toml:"model" yaml:"models"`
	}
	for _, d := range model.Models() {
		m := ModelResult{Name: d.Name, Description: d.Description, Quantized: d.Quantized}
		if d.Parent != 0 {
			m.Parent = d.Parent.String()
		}
		for _, comp := range d.Components {
			m.Components = append(m.Components, ComponentResult{
				Symbol: comp.Symbol, Name: comp.Name, Min: comp.Min, Max: comp.Max, Unit: comp.Unit, Kind: comp.Kind.String(),
			})
		}
		ms.Models = append(ms.Models, m)
	}
	return c.write(&ms, func(w io.Writer) error {
		for _, m := range ms.Models {
			syms := make([]string, len(m.Components))
			for i, comp := range m.Components {
				syms[i] = comp.Symbol
			}
			parent := m.Parent
			if parent == "" {
				parent = "-"
			}
			if _, err := fmt.Fprintf(w, "%-10s %-8s %-14s %s\n", m.Name, parent, strings.Join(syms, " "), m.Description); err != nil {
				return err
			}
		}
		return nil
	})
}

// Profiles writes the profiles of the catalog, in the catalog file
// format for toml and yaml.
func Profiles(c *Config) error {
	set, err := c.Profiles()
	if err != nil {
		return err
	}
	specs := struct {
		Profiles []profile.Spec `toml:"profile" yaml:"profiles"`
	}{set.Specs()}
	return c.write(&specs, func(w io.Writer) error {
		for _, p := range set.Profiles() {
			if _, err := fmt.Fprintf(w, "%-24s %-12s %-9s %s\n", p.Name, white(p), p.Curve.String(), p.Category); err != nil {
				return err
			}
		}
		return nil
	})
}

// white returns the illuminant name or chromaticity of the profile white.
func white(p *profile.Profile) string {
	if s := p.Spec(); s.Illuminant != "" {
		return s.Illuminant
	}
	return fmt.Sprintf("%.4f,%.4f", p.White.X, p.White.Y)
}
