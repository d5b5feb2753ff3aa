// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"math"

	"cogentcore.org/colorspace/math64"
)

// pow25to7 is 25^7.
const pow25to7 = 6103515625.0

// CIEDE2000Default returns [CIEDE2000] with unit weights.
func CIEDE2000Default(ref, sample Lab) float64 {
	return CIEDE2000(ref, sample, 1, 1, 1)
}

// CIEDE2000 returns the CIE 2000 difference with the given lightness,
// chroma, and hue weights, following Sharma, Wu, and Dalal (2005).
// It is symmetric.
func CIEDE2000(ref, sample Lab, kL, kC, kH float64) float64 {
	// a' scaling by the mean chroma
	cbar := (ref.chroma() + sample.chroma()) / 2
	c7 := math.Pow(cbar, 7)
	g := 0.5 * (1 - math.Sqrt(c7/(c7+pow25to7)))
	a1 := (1 + g) * ref.A
	a2 := (1 + g) * sample.A
	c1 := math.Hypot(a1, ref.B)
	c2 := math.Hypot(a2, sample.B)
	h1 := hueAngle(ref.B, a1)
	h2 := hueAngle(sample.B, a2)

	dL := sample.L - ref.L
	dC := c2 - c1
	cc := c1 * c2
	var dh float64
	if cc != 0 {
		dh = h2 - h1
		if dh > 180 {
			dh -= 360
		} else if dh < -180 {
			dh += 360
		}
	}
	dH := 2 * math.Sqrt(cc) * math.Sin(math64.DegToRad(dh/2))

	lbar := (ref.L + sample.L) / 2
	cbarp := (c1 + c2) / 2
	hsum := h1 + h2
	var hbar float64
	switch {
	case cc == 0:
		hbar = hsum
	case math.Abs(h1-h2) <= 180:
		hbar = hsum / 2
	case hsum < 360:
		hbar = (hsum + 360) / 2
	default:
		hbar = (hsum - 360) / 2
	}

	t := 1 - 0.17*cosDeg(hbar-30) + 0.24*cosDeg(2*hbar) + 0.32*cosDeg(3*hbar+6) - 0.20*cosDeg(4*hbar-63)
	dtheta := 30 * math.Exp(-math64.Pow2((hbar-275)/25))
	cp7 := math.Pow(cbarp, 7)
	rc := 2 * math.Sqrt(cp7/(cp7+pow25to7))
	l50 := math64.Pow2(lbar - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cbarp
	sh := 1 + 0.015*cbarp*t
	rt := -math.Sin(math64.DegToRad(2*dtheta)) * rc

	l := dL / (kL * sl)
	c := dC / (kC * sc)
	h := dH / (kH * sh)
	return math.Sqrt(l*l + c*c + h*h + rt*c*h)
}

// hueAngle returns the hue in degrees in [0, 360), which is 0 for a neutral.
func hueAngle(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	return math64.Atan2Deg(b, a)
}

func cosDeg(d float64) float64 {
	return math.Cos(math64.DegToRad(d))
}
