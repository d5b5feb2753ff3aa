// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"math"

	"cogentcore.org/colorspace/math64"
)

// Application is the set of weighting factors of [CIE94]
// for an application area.
type Application struct {
	KL, K1, K2 float64
}

var (
	// GraphicArts are the CIE94 weights for graphic arts.
	GraphicArts = Application{KL: 1, K1: 0.045, K2: 0.015}

	// Textiles are the CIE94 weights for textiles.
	Textiles = Application{KL: 2, K1: 0.048, K2: 0.014}
)

// Func returns [CIE94] with these weights as a [Func].
func (app Application) Func() Func {
	return func(ref, sample Lab) float64 { return CIE94(ref, sample, app) }
}

// CIE94 returns the CIE 1994 difference with the given application
// weights. The chroma weights come from the reference color,
// so it is not symmetric.
func CIE94(ref, sample Lab, app Application) float64 {
	c1 := ref.chroma()
	dc := c1 - sample.chroma()
	dh2 := deltaH2(ref.A-sample.A, ref.B-sample.B, dc)
	sc := 1 + app.K1*c1
	sh := 1 + app.K2*c1
	return math.Sqrt(math64.Pow2((ref.L-sample.L)/app.KL) + math64.Pow2(dc/sc) + dh2/(sh*sh))
}

// Threshold is the lightness to chroma ratio l:c of [CMC].
type Threshold struct {
	L, C float64
}

var (
	// Acceptability is the 2:1 CMC ratio.
	Acceptability = Threshold{L: 2, C: 1}

	// Perceptibility is the 1:1 CMC ratio.
	Perceptibility = Threshold{L: 1, C: 1}
)

// Func returns [CMC] with this ratio as a [Func].
func (th Threshold) Func() Func {
	return func(ref, sample Lab) float64 { return CMC(ref, sample, th) }
}

// CMC returns the CMC l:c (1984) difference with the given ratio.
// The weights come from the reference color, so it is not symmetric.
func CMC(ref, sample Lab, th Threshold) float64 {
	c1 := ref.chroma()
	dc := c1 - sample.chroma()
	dh2 := deltaH2(ref.A-sample.A, ref.B-sample.B, dc)

	h1 := math64.Atan2Deg(ref.B, ref.A)
	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos(math64.DegToRad(h1+168)))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos(math64.DegToRad(h1+35)))
	}
	c4 := math64.Pow2(c1 * c1)
	f := math.Sqrt(c4 / (c4 + 1900))

	sl := 0.511
	if ref.L >= 16 {
		sl = 0.040975 * ref.L / (1 + 0.01765*ref.L)
	}
	sc := 0.0638*c1/(1+0.0131*c1) + 0.638
	sh := sc * (f*t + 1 - f)
	return math.Sqrt(math64.Pow2((ref.L-sample.L)/(th.L*sl)) + math64.Pow2(dc/(th.C*sc)) + dh2/(sh*sh))
}
