// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cat provides chromatic adaptation transforms, which map
// tristimulus values observed under one white point to the values
// that produce the same appearance under another white point,
// by scaling cone (LMS) responses.
package cat

import (
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/math64"
)

// Transform is a named XYZ to LMS cone response matrix.
type Transform struct {
	// Name is the short name of the transform, as used in catalogs.
	Name string

	// Description is a one-line description of the transform.
	Description string

	// LMS is the XYZ to LMS matrix.
	LMS math64.Matrix3

	// XYZ is the inverse of LMS.
	XYZ math64.Matrix3
}

func newTransform(name, desc string, m math64.Matrix3) Transform {
	return Transform{Name: name, Description: desc, LMS: m, XYZ: m.MustInverse()}
}

// The standard transforms.
var (
	Bradford = newTransform("bradford", "Bradford (Lam 1985), used by ICC profiles", math64.Mat3(
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	))

	BradfordSharp = newTransform("bradford-sharp", "spectrally sharpened Bradford", math64.Mat3(
		1.2694, -0.0988, -0.1706,
		-0.8364, 1.8006, 0.0357,
		0.0297, -0.0315, 1.0018,
	))

	VonKries = newTransform("vonkries", "Von Kries with Hunt-Pointer-Estevez cones for equal energy", math64.Mat3(
		0.38971, 0.68898, -0.07868,
		-0.22981, 1.18340, 0.04641,
		0, 0, 1,
	))

	VonKriesAdjusted = newTransform("vonkries-d65", "Von Kries with Hunt-Pointer-Estevez cones for D65", math64.Mat3(
		0.40024, 0.70760, -0.08081,
		-0.22630, 1.16532, 0.04570,
		0, 0, 0.91822,
	))

	CAT97 = newTransform("cat97", "CMC CAT97", math64.Mat3(
		0.8562, 0.3372, -0.1934,
		-0.8360, 1.8327, 0.0033,
		0.0357, -0.00469, 1.0112,
	))

	CAT00 = newTransform("cat00", "CMCCAT2000 fitted to all available data sets", math64.Mat3(
		0.7982, 0.3389, -0.1371,
		-0.5918, 1.5512, 0.0406,
		0.0008, 0.0239, 0.9753,
	))

	CAT02 = newTransform("cat02", "CIECAM02 CAT02", math64.Mat3(
		0.7328, 0.4296, -0.1624,
		-0.7036, 1.6975, 0.0061,
		0.0030, 0.0136, 0.9834,
	))

	XYZScaling = newTransform("xyz", "XYZ scaling (wrong von Kries)", math64.Identity3())
)

// Default is the transform used when none is specified.
var Default = Bradford

// Transforms returns all standard transforms.
func Transforms() []Transform {
	return []Transform{Bradford, BradfordSharp, VonKries, VonKriesAdjusted, CAT97, CAT00, CAT02, XYZScaling}
}

// Lookup returns the standard transform with the given name,
// which is case insensitive. The empty name is [Default].
func Lookup(name string) (Transform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default, nil
	}
	for _, t := range Transforms() {
		if t.Name == name {
			return t, nil
		}
	}
	return Transform{}, errors.NewKind(errors.Unsupported, "cat.Lookup", name, "unknown adaptation transform")
}

// Matrix returns the XYZ to XYZ matrix adapting colors seen under
// the source white to the destination white: LMS⁻¹·diag(dst/src)·LMS.
// Both whites are XYZ tristimulus values.
func (t Transform) Matrix(src, dst math64.Vector3) (math64.Matrix3, error) {
	sl := t.LMS.MulVector3(src)
	dl := t.LMS.MulVector3(dst)
	if sl.X == 0 || sl.Y == 0 || sl.Z == 0 || !sl.IsFinite() || !dl.IsFinite() {
		return math64.Matrix3{}, errors.NewKind(errors.Degenerate, "cat.Matrix", t.Name, "source white has a zero cone response")
	}
	scale := math64.Vec3(dl.X/sl.X, dl.Y/sl.Y, dl.Z/sl.Z)
	return t.XYZ.Mul(math64.Diagonal(scale)).Mul(t.LMS), nil
}

// Adapt adapts the given XYZ value from the source white to the
// destination white.
func (t Transform) Adapt(xyz, src, dst math64.Vector3) (math64.Vector3, error) {
	m, err := t.Matrix(src, dst)
	if err != nil {
		return math64.Vector3{}, err
	}
	return m.MulVector3(xyz), nil
}

func (t Transform) String() string { return t.Name }
