// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deltae provides perceptual color difference formulas
// (Delta E) over CIE Lab: CIE76, CIE94, CIEDE2000, and CMC l:c,
// plus Euclidean distance over any model and Delta Ez over JzCzhz.
//
// The asymmetric formulas weight by the first argument, which is the
// reference color, and the second argument is the sample.
package deltae

import (
	"math"
	"slices"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/math64"
	"cogentcore.org/colorspace/model"
	"cogentcore.org/colorspace/profile"
)

// Lab is a CIE L*a*b* color, with L in [0, 100].
type Lab struct {
	L, A, B float64
}

// LabOf converts the given color to [Lab] relative to the given profile.
func LabOf(c model.Color, p *profile.Profile) (Lab, error) {
	lab, err := model.Convert(c, model.Lab, p)
	if err != nil {
		return Lab{}, err
	}
	return Lab{lab.C[0], lab.C[1], lab.C[2]}, nil
}

// chroma returns the C*ab chroma of the color.
func (l Lab) chroma() float64 {
	return math.Hypot(l.A, l.B)
}

// Func is a color difference formula over a reference and a sample color.
type Func func(ref, sample Lab) float64

// Between returns the difference between the given colors under f,
// after converting both to [Lab] relative to the given profile.
func (f Func) Between(ref, sample model.Color, p *profile.Profile) (float64, error) {
	r, err := LabOf(ref, p)
	if err != nil {
		return 0, err
	}
	s, err := LabOf(sample, p)
	if err != nil {
		return 0, err
	}
	return f(r, s), nil
}

// CIE76 returns the CIE 1976 difference, the Euclidean distance in Lab.
// It is symmetric.
func CIE76(ref, sample Lab) float64 {
	return math.Sqrt(math64.Pow2(ref.L-sample.L) + math64.Pow2(ref.A-sample.A) + math64.Pow2(ref.B-sample.B))
}

// deltaH2 returns the squared hue difference from the channel differences
// and the chroma difference, which is never negative.
func deltaH2(da, db, dc float64) float64 {
	return max(0, da*da+db*db-dc*dc)
}

// funcs are the named formulas of [Lookup].
var funcs = map[string]Func{
	"cie76":     CIE76,
	"cie94":     GraphicArts.Func(),
	"cie94t":    Textiles.Func(),
	"ciede2000": CIEDE2000Default,
	"cmc":       Acceptability.Func(),
	"cmcp":      Perceptibility.Func(),
}

// Lookup returns the formula with the given name, which is one of [Names].
// The cie94 and cmc names use the graphic arts and acceptability weights,
// and cie94t and cmcp use the textiles and perceptibility weights.
func Lookup(name string) (Func, error) {
	f, ok := funcs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.NewKind(errors.Unsupported, "deltae.Lookup", name, "unknown formula")
	}
	return f, nil
}

// Names returns the sorted names of the formulas available from [Lookup].
func Names() []string {
	ns := make([]string, 0, len(funcs))
	for n := range funcs {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}

// Euclidean returns the Euclidean distance between the channels of
// two colors of the same model.
func Euclidean(a, b model.Color) (float64, error) {
	if a.Model != b.Model {
		return 0, errors.NewKind(errors.Domain, "deltae.Euclidean", a.Model.String(), "colors are in different models, "+b.Model.String())
	}
	var sum float64
	for i, n := 0, a.Arity(); i < n; i++ {
		sum += math64.Pow2(a.C[i] - b.C[i])
	}
	return math.Sqrt(sum), nil
}

// Ez returns the Delta Ez difference between two JzCzhz colors,
// with the hue in degrees.
func Ez(ref, sample math64.Vector3) float64 {
	dj := sample.X - ref.X
	dc := sample.Y - ref.Y
	dh := math64.DegToRad(sample.Z - ref.Z)
	return math.Sqrt(dj*dj + dc*dc + 2*ref.Y*sample.Y*(1-math.Cos(dh)))
}

// EzBetween returns [Ez] between the given colors converted to
// JzCzhz relative to the given profile.
func EzBetween(ref, sample model.Color, p *profile.Profile) (float64, error) {
	var jz [2]math64.Vector3
	for i, c := range []model.Color{ref, sample} {
		j, err := model.Convert(c, model.JzCzhz, p)
		if err != nil {
			return 0, err
		}
		jz[i] = math64.Vec3(j.C[0], j.C[1], j.C[2])
	}
	return Ez(jz[0], jz[1]), nil
}
