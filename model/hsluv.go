// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"

	"cogentcore.org/colorspace/cie"
	"cogentcore.org/colorspace/math64"
	"cogentcore.org/colorspace/profile"
)

// HSLuv and HPLuv scale the LCHuv chroma by the largest chroma inside the
// profile gamut, given by the six lines where a linear RGB channel is 0 or 1.

const (
	hsluvWhite = 99.9999999
	hsluvBlack = 1e-8
)

type line struct {
	slope, intercept float64
}

// gamutBounds returns the lines bounding the profile gamut in the
// u v plane at the given lightness, relative to the profile white.
func gamutBounds(l float64, p *profile.Profile) [6]line {
	var ls [6]line
	y := cie.LToY(l) / 100
	un, vn := uvPrime(p.WhiteXYZ)
	for c := 0; c < 3; c++ {
		row := p.XYZToRGB.Row(c)
		m1, m2, m3 := row.X, row.Y, row.Z
		a := y * (9*m1 - 3*m3)
		for t := 0; t < 2; t++ {
			b := 4*y*(m2-5*m3) - 4*float64(t)
			ls[2*c+t] = line{-a / b, -13 * l * (a*un + b*vn + 12*m3*y) / b}
		}
	}
	return ls
}

// maxChroma returns the largest chroma within the gamut at the given
// lightness and hue in degrees.
func maxChroma(l, h float64, p *profile.Profile) float64 {
	sin, cos := math.Sincos(math64.DegToRad(h))
	m := math.Inf(1)
	for _, b := range gamutBounds(l, p) {
		length := b.intercept / (sin - b.slope*cos)
		if length >= 0 {
			m = min(m, length)
		}
	}
	return m
}

// maxSafeChroma returns the largest chroma within the gamut at the
// given lightness for all hues.
func maxSafeChroma(l float64, p *profile.Profile) float64 {
	m := math.Inf(1)
	for _, b := range gamutBounds(l, p) {
		m = min(m, math.Abs(b.intercept)/math.Sqrt(b.slope*b.slope+1))
	}
	return m
}

// luvScaled is a hue, scaled chroma, lightness model on LCHuv,
// with the given chroma bound.
type luvScaled struct {
	bound func(l, h float64, p *profile.Profile) float64
}

func (luvScaled) Parent() ID { return LCHuv }

func (m luvScaled) FromParent(c Channels, p *profile.Profile) Channels {
	l, ch, h := c[0], c[1], c[2]
	if l > hsluvWhite {
		return Channels{h, 0, 100}
	}
	if l < hsluvBlack {
		return Channels{h, 0, 0}
	}
	return Channels{h, 100 * math64.SafeDiv(ch, m.bound(l, h, p)), l}
}

func (m luvScaled) ToParent(c Channels, p *profile.Profile) Channels {
	h, s, l := c[0], c[1], c[2]
	if l > hsluvWhite {
		return Channels{100, 0, h}
	}
	if l < hsluvBlack {
		return Channels{0, 0, h}
	}
	return Channels{l, m.bound(l, h, p) * s / 100, h}
}

// Degenerate is the grays, the black, and the white.
func (luvScaled) Degenerate(c Channels) bool {
	return c[1] == 0 || c[2] < hsluvBlack || c[2] > hsluvWhite
}

var (
	hsluvModel = luvScaled{bound: maxChroma}
	hpluvModel = luvScaled{bound: func(l, h float64, p *profile.Profile) float64 {
		return maxSafeChroma(l, p)
	}}
)
