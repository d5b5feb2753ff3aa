// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModels(t *testing.T) {
	ds := Models()
	require.Len(t, ds, int(numIDs)-1)
	names := map[string]bool{}
	for i, d := range ds {
		assert.Equal(t, ID(i+1), d.ID)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Description, d.Name)
		assert.False(t, names[d.Name], "duplicate name %s", d.Name)
		names[d.Name] = true
		assert.GreaterOrEqual(t, d.Arity(), 2, d.Name)
		assert.LessOrEqual(t, d.Arity(), 4, d.Name)
		for _, c := range d.Components {
			assert.Less(t, c.Min, c.Max, d.Name+" "+c.Name)
			if c.Kind == Bounded {
				assert.True(t, d.Quantized, d.Name)
			}
		}
		chain := Chain(d.ID)
		require.NotEmpty(t, chain)
		assert.Equal(t, d.ID, chain[0])
		assert.Contains(t, []ID{Lrgb, RGBNorm, XYZ}, chain[len(chain)-1], d.Name)
	}
}

func TestChain(t *testing.T) {
	assert.Equal(t, []ID{Lrgb}, Chain(Lrgb))
	assert.Equal(t, []ID{HWB, HSB, RGBNorm}, Chain(HWB))
	assert.Equal(t, []ID{Okhwb, Okhsv, Oklab, XYZ}, Chain(Okhwb))
	assert.Equal(t, []ID{Xy, XyY, XYZ}, Chain(Xy))
	assert.Equal(t, []ID{Rg, RgG, Lrgb}, Chain(Rg))
	assert.Equal(t, []ID{HSLuv, LCHuv, Luv, XYZ}, Chain(HSLuv))
	assert.Equal(t, []ID{XvYCC, YPbPr, RGBNorm}, Chain(XvYCC))
	assert.Equal(t, []ID{Qsh, XYZ}, Chain(Qsh))
	assert.Equal(t, []ID{HWBsl, HSL, RGBNorm}, Chain(HWBsl))
	assert.Equal(t, []ID{LCHxy, XyY, XYZ}, Chain(LCHxy))
	assert.Equal(t, []ID{LCHrg, RgG, Lrgb}, Chain(LCHrg))
	assert.Equal(t, []ID{TSL, RGBNorm}, Chain(TSL))
	assert.Nil(t, Chain(numIDs))
}

func TestDescribe(t *testing.T) {
	d, err := Describe(Lrgb)
	require.NoError(t, err)
	assert.Equal(t, ID(0), d.Parent)

	d, err = Describe(RGBNorm)
	require.NoError(t, err)
	assert.Equal(t, Lrgb, d.Parent)

	d, err = Describe(HSLuv)
	require.NoError(t, err)
	assert.Equal(t, LCHuv, d.Parent)
	assert.Equal(t, Periodic, d.Components[0].Kind)
	d.Components[0].Name = "changed"
	d2, _ := Describe(HSLuv)
	assert.Equal(t, "Hue", d2.Components[0].Name)

	d, err = Describe(RGB)
	require.NoError(t, err)
	assert.True(t, d.Quantized)
	assert.Equal(t, Bounded, d.Components[1].Kind)

	_, err = Describe(ID(1000))
	assert.ErrorIs(t, err, errors.ErrUnsupported)
	_, err = Describe(0)
	assert.ErrorIs(t, err, errors.ErrUnsupported)
}

func TestLookup(t *testing.T) {
	tests := map[string]ID{
		"RGB":     RGB,
		"hsv":     HSB,
		" HSB ":   HSB,
		"hsi":     HCY,
		"xyY":     XyY,
		"xyy":     XyY,
		"xvycc":   XvYCC,
		"cielab":  Lab,
		"lch":     LCHab,
		"labh":    HunterLab,
		"linear":  Lrgb,
		"srgb":    RGBNorm,
		"okhwb":   Okhwb,
		"JzCzhz":  JzCzhz,
		"qsh":     Qsh,
		"RGBNorm": RGBNorm,
		"hwbsl":   HWBsl,
		"LCHrg":   LCHrg,
		"tsl":     TSL,
		"ryb":     RYB,
	}
	for name, want := range tests {
		id, err := Lookup(name)
		if assert.NoError(t, err, name) {
			assert.Equal(t, want, id, name)
		}
	}
	_, err := Lookup("hsq")
	assert.ErrorIs(t, err, errors.ErrUnsupported)
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "RGB", RGB.String())
	assert.Equal(t, "xvYCC", XvYCC.String())
	assert.Equal(t, "ID(99)", ID(99).String())
	assert.Equal(t, "periodic", Periodic.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestNew(t *testing.T) {
	c, err := New(Lab, 50, 10, -10)
	require.NoError(t, err)
	assert.Equal(t, Triple(Lab, 50, 10, -10), c)
	assert.Equal(t, 3, c.Arity())
	assert.Equal(t, []float64{50, 10, -10}, c.Values())

	c, err = New(CMYK, 1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, Quad(CMYK, 1, 2, 3, 4), c)

	c, err = New(Xy, 0.3, 0.3)
	require.NoError(t, err)
	assert.Equal(t, Pair(Xy, 0.3, 0.3), c)

	_, err = New(Lab, 50, 10)
	assert.ErrorIs(t, err, errors.ErrDomain)
	_, err = New(ID(1000), 1, 2, 3)
	assert.ErrorIs(t, err, errors.ErrUnsupported)
}
