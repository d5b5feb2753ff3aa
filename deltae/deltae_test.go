// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"math"
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/tolassert"
	"cogentcore.org/colorspace/math64"
	"cogentcore.org/colorspace/model"
	"cogentcore.org/colorspace/profile"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sharma are the CIEDE2000 test pairs of Sharma, Wu, and Dalal (2005).
var sharma = []struct {
	a, b Lab
	de   float64
}{
	{Lab{50, 2.6772, -79.7751}, Lab{50, 0, -82.7485}, 2.0425},
	{Lab{50, 3.1571, -77.2803}, Lab{50, 0, -82.7485}, 2.8615},
	{Lab{50, 2.8361, -74.0200}, Lab{50, 0, -82.7485}, 3.4412},
	{Lab{50, -1.3802, -84.2814}, Lab{50, 0, -82.7485}, 1.0000},
	{Lab{50, -1.1848, -84.8006}, Lab{50, 0, -82.7485}, 1.0000},
	{Lab{50, -0.9009, -85.5211}, Lab{50, 0, -82.7485}, 1.0000},
	{Lab{50, 0, 0}, Lab{50, -1, 2}, 2.3669},
	{Lab{50, -1, 2}, Lab{50, 0, 0}, 2.3669},
	{Lab{50, 2.4900, -0.0010}, Lab{50, -2.4900, 0.0009}, 7.1792},
	{Lab{50, 2.4900, -0.0010}, Lab{50, -2.4900, 0.0010}, 7.1792},
	{Lab{50, 2.4900, -0.0010}, Lab{50, -2.4900, 0.0011}, 7.2195},
	{Lab{50, 2.4900, -0.0010}, Lab{50, -2.4900, 0.0012}, 7.2195},
	{Lab{50, -0.0010, 2.4900}, Lab{50, 0.0009, -2.4900}, 4.8045},
	{Lab{50, -0.0010, 2.4900}, Lab{50, 0.0010, -2.4900}, 4.8045},
	{Lab{50, -0.0010, 2.4900}, Lab{50, 0.0011, -2.4900}, 4.7461},
	{Lab{50, 2.5, 0}, Lab{50, 0, -2.5}, 4.3065},
	{Lab{50, 2.5, 0}, Lab{73, 25, -18}, 27.1492},
	{Lab{50, 2.5, 0}, Lab{61, -5, 29}, 22.8977},
	{Lab{50, 2.5, 0}, Lab{56, -27, -3}, 31.9030},
	{Lab{50, 2.5, 0}, Lab{58, 24, 15}, 19.4535},
	{Lab{50, 2.5, 0}, Lab{50, 3.1736, 0.5854}, 1.0000},
	{Lab{50, 2.5, 0}, Lab{50, 3.2972, 0}, 1.0000},
	{Lab{50, 2.5, 0}, Lab{50, 1.8634, 0.5757}, 1.0000},
	{Lab{50, 2.5, 0}, Lab{50, 3.2592, 0.3350}, 1.0000},
	{Lab{60.2574, -34.0099, 36.2677}, Lab{60.4626, -34.1751, 39.4387}, 1.2644},
	{Lab{63.0109, -31.0961, -5.8663}, Lab{62.8187, -29.7946, -4.0864}, 1.2630},
	{Lab{61.2901, 3.7196, -5.3901}, Lab{61.4292, 2.2480, -4.9620}, 1.8731},
	{Lab{35.0831, -44.1164, 3.7933}, Lab{35.0232, -40.0716, 1.5901}, 1.8645},
	{Lab{22.7233, 20.0904, -46.6940}, Lab{23.0331, 14.9730, -42.5619}, 2.0373},
	{Lab{36.4612, 47.8580, 18.3852}, Lab{36.2715, 50.5065, 21.2231}, 1.4146},
	{Lab{90.8027, -2.0831, 1.4410}, Lab{91.1528, -1.6435, 0.0447}, 1.4441},
	{Lab{90.9257, -0.5406, -0.9208}, Lab{88.6381, -0.8985, -0.7239}, 1.5381},
	{Lab{6.7747, -0.2908, -2.4247}, Lab{5.8714, -0.0985, -2.2286}, 0.6377},
	{Lab{2.0776, 0.0795, -1.1350}, Lab{0.9033, -0.0636, -0.5514}, 0.9082},
}

func TestCIEDE2000(t *testing.T) {
	for i, s := range sharma {
		tolassert.EqualTol(t, s.de, CIEDE2000Default(s.a, s.b), 1e-4, "pair %d", i+1)
		tolassert.EqualTol(t, s.de, CIEDE2000Default(s.b, s.a), 1e-4, "pair %d swapped", i+1)
	}
	assert.Equal(t, 0.0, CIEDE2000Default(Lab{50, 10, 10}, Lab{50, 10, 10}))
	// lightness weight only scales the lightness term
	a, b := Lab{40, 0, 0}, Lab{60, 0, 0}
	tolassert.EqualTol(t, CIEDE2000Default(a, b)/2, CIEDE2000(a, b, 2, 1, 1), 1e-12)
}

// a wide pair with published reference values for every formula
var (
	wideRef    = Lab{100, 21.57210357, 272.2281935}
	wideSample = Lab{100, 426.67945353, 72.39590835}
)

func TestWidePair(t *testing.T) {
	tolassert.EqualTol(t, 94.0356490267, CIEDE2000Default(wideRef, wideSample), 1e-8)
	tolassert.EqualTol(t, 83.7792255009, CIE94(wideRef, wideSample, GraphicArts), 1e-8)
	tolassert.EqualTol(t, 88.3355530575, CIE94(wideRef, wideSample, Textiles), 1e-8)
	tolassert.EqualTol(t, 172.7047712866, CMC(wideRef, wideSample, Acceptability), 1e-8)
}

func TestCIE76(t *testing.T) {
	a, b := Lab{53.24, 80.09, 67.2}, Lab{97.14, -21.55, 94.48}
	tolassert.EqualTol(t, 114.026742477368, CIE76(a, b), 1e-10)
	assert.Equal(t, CIE76(a, b), CIE76(b, a))
	assert.Equal(t, 5.0, CIE76(Lab{0, 0, 0}, Lab{0, 3, 4}))
}

func TestAsymmetric(t *testing.T) {
	a, b := sharma[0].a, sharma[0].b
	tolassert.EqualTol(t, 1.3950388678587375, CIE94(a, b, GraphicArts), 1e-10)
	tolassert.EqualTol(t, 1.3652852213587945, CIE94(b, a, GraphicArts), 1e-10)
	tolassert.EqualTol(t, 1.4230462054212831, CIE94(a, b, Textiles), 1e-10)
	tolassert.EqualTol(t, 1.3936302760774155, CIE94(b, a, Textiles), 1e-10)

	red, yellow := Lab{53.24, 80.09, 67.2}, Lab{97.14, -21.55, 94.48}
	tolassert.EqualTol(t, 59.99373763021458, CIE94(red, yellow, GraphicArts), 1e-10)
	tolassert.EqualTol(t, 61.31216658230427, CIE94(yellow, red, GraphicArts), 1e-10)
	tolassert.EqualTol(t, 68.45482052218591, CMC(red, yellow, Acceptability), 1e-10)
	tolassert.EqualTol(t, 49.899300900002885, CMC(yellow, red, Acceptability), 1e-10)
	tolassert.EqualTol(t, 76.34645153987022, CMC(red, yellow, Perceptibility), 1e-10)
	tolassert.EqualTol(t, 56.233517298236976, CMC(yellow, red, Perceptibility), 1e-10)

	// dark reference uses the constant lightness weight
	tolassert.EqualTol(t, 125.94273331948413, CMC(Lab{10, 1, -5}, red, Acceptability), 1e-10)
	tolassert.EqualTol(t, 98.86543520575214, CIE94(Lab{10, 1, -5}, red, GraphicArts), 1e-10)
}

func TestColorful(t *testing.T) {
	var cs []colorful.Color
	for r := 0; r <= 255; r += 85 {
		for g := 0; g <= 255; g += 85 {
			for b := 0; b <= 255; b += 85 {
				cs = append(cs, colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255})
			}
		}
	}
	lab := func(c colorful.Color) Lab {
		l, a, b := c.Lab()
		return Lab{100 * l, 100 * a, 100 * b}
	}
	for _, c1 := range cs {
		for _, c2 := range cs {
			l1, l2 := lab(c1), lab(c2)
			tolassert.EqualTol(t, 100*c1.DistanceCIE76(c2), CIE76(l1, l2), 1e-9, c1.Hex(), c2.Hex())
			tolassert.EqualTol(t, 100*c1.DistanceCIEDE2000(c2), CIEDE2000Default(l1, l2), 1e-6, c1.Hex(), c2.Hex())
			if c1 != c2 {
				tolassert.EqualTol(t, 100*c1.DistanceCIE94(c2), CIE94(l1, l2, GraphicArts), 1e-6, c1.Hex(), c2.Hex())
			}
		}
	}
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"cie76", "cie94", "cie94t", "ciede2000", "cmc", "cmcp"}, Names())
	a, b := sharma[16].a, sharma[16].b
	want := map[string]float64{
		"cie76":     CIE76(a, b),
		"CIE94":     CIE94(a, b, GraphicArts),
		"cie94t":    CIE94(a, b, Textiles),
		"ciede2000": CIEDE2000Default(a, b),
		" cmc":      CMC(a, b, Acceptability),
		"cmcp":      CMC(a, b, Perceptibility),
	}
	for name, w := range want {
		f, err := Lookup(name)
		if assert.NoError(t, err, name) {
			assert.Equal(t, w, f(a, b), name)
		}
	}
	_, err := Lookup("cie2020")
	assert.ErrorIs(t, err, errors.ErrUnsupported)
}

func TestBetween(t *testing.T) {
	red := model.Triple(model.RGB, 255, 0, 0)
	d, err := Func(CIE76).Between(red, red, profile.SRGB)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	f, err := Lookup("ciede2000")
	require.NoError(t, err)
	d, err = f.Between(red, model.Triple(model.HSL, 0, 100, 50), profile.SRGB)
	require.NoError(t, err)
	tolassert.EqualTol(t, 0, d, 1e-9)

	d, err = f.Between(red, model.Triple(model.RGB, 0, 0, 255), profile.SRGB)
	require.NoError(t, err)
	assert.Greater(t, d, 50.0)

	_, err = f.Between(red, model.Triple(model.Lab, math.NaN(), 0, 0), profile.SRGB)
	assert.ErrorIs(t, err, errors.ErrDomain)
}

func TestEuclidean(t *testing.T) {
	d, err := Euclidean(model.Quad(model.CMYK, 0, 0, 0, 0), model.Quad(model.CMYK, 1, 2, 2, 4))
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	d, err = Euclidean(model.Pair(model.Xy, 0.3, 0.3), model.Pair(model.Xy, 0.6, 0.7))
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.5, d, 1e-12)

	_, err = Euclidean(model.Triple(model.Lab, 0, 0, 0), model.Triple(model.Luv, 0, 0, 0))
	assert.ErrorIs(t, err, errors.ErrDomain)
}

func TestEz(t *testing.T) {
	a := math64.Vec3(0.01, 0.02, 10)
	assert.Equal(t, 0.0, Ez(a, a))
	// a pure hue difference of 180 degrees is the chord through the axis
	tolassert.EqualTol(t, 0.04, Ez(a, math64.Vec3(0.01, 0.02, 190)), 1e-12)
	tolassert.EqualTol(t, Ez(a, math64.Vec3(0.02, 0.01, 300)), Ez(math64.Vec3(0.02, 0.01, 300), a), 1e-15)

	red := model.Triple(model.RGB, 255, 0, 0)
	d, err := EzBetween(red, red, profile.SRGB)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
	d, err = EzBetween(red, model.Triple(model.RGB, 0, 255, 0), profile.SRGB)
	require.NoError(t, err)
	assert.Greater(t, d, 0.0)
}
