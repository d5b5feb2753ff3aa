// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"
	"testing"

	"cogentcore.org/colorspace/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

// byteGrid calls f for a grid of RGB byte colors.
func byteGrid(f func(rgb Color, cf colorful.Color)) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				cf := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
				f(Triple(RGB, float64(r), float64(g), float64(b)), cf)
			}
		}
	}
}

func assertHue(t *testing.T, want, got, tol float64, msg ...any) {
	t.Helper()
	d := math.Mod(math.Abs(want-got), 360)
	assert.LessOrEqual(t, min(d, 360-d), tol, msg...)
}

func TestColorfulHSL(t *testing.T) {
	byteGrid(func(rgb Color, cf colorful.Color) {
		h, s, l := cf.Hsl()
		c := convert(t, rgb, HSL, srgb)
		assertHue(t, h, c.C[0], 1e-9, rgb)
		tolassert.EqualTol(t, 100*s, c.C[1], 1e-9, rgb)
		tolassert.EqualTol(t, 100*l, c.C[2], 1e-9, rgb)
	})
}

func TestColorfulHSV(t *testing.T) {
	byteGrid(func(rgb Color, cf colorful.Color) {
		h, s, v := cf.Hsv()
		c := convert(t, rgb, HSB, srgb)
		assertHue(t, h, c.C[0], 1e-9, rgb)
		tolassert.EqualTol(t, 100*s, c.C[1], 1e-9, rgb)
		tolassert.EqualTol(t, 100*v, c.C[2], 1e-9, rgb)
	})
}

// go-colorful uses a four digit D65 white and its own sRGB matrix,
// so XYZ agrees to about 2e-4 and Lab and Luv to about 2e-2.
func TestColorfulLab(t *testing.T) {
	byteGrid(func(rgb Color, cf colorful.Color) {
		l, a, b := cf.Lab()
		c := convert(t, rgb, Lab, srgb)
		tolassert.EqualTol(t, 100*l, c.C[0], 0.01, rgb)
		tolassert.EqualTol(t, 100*a, c.C[1], 0.02, rgb)
		tolassert.EqualTol(t, 100*b, c.C[2], 0.02, rgb)
	})
}

func TestColorfulLuv(t *testing.T) {
	byteGrid(func(rgb Color, cf colorful.Color) {
		l, u, v := cf.Luv()
		c := convert(t, rgb, Luv, srgb)
		tolassert.EqualTol(t, 100*l, c.C[0], 0.01, rgb)
		tolassert.EqualTol(t, 100*u, c.C[1], 0.05, rgb)
		tolassert.EqualTol(t, 100*v, c.C[2], 0.05, rgb)
	})
}

func TestColorfulXYZ(t *testing.T) {
	byteGrid(func(rgb Color, cf colorful.Color) {
		x, y, z := cf.Xyz()
		c := convert(t, rgb, XYZ, srgb)
		tolassert.EqualTol(t, x, c.C[0], 5e-4, rgb)
		tolassert.EqualTol(t, y, c.C[1], 5e-4, rgb)
		tolassert.EqualTol(t, z, c.C[2], 5e-4, rgb)
	})
}
