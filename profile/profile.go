// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile defines the RGB working space that every color
// conversion is made relative to: the white point, the RGB primaries,
// the tone response curve, the chromatic adaptation transform, and the
// CIECAM02 viewing conditions. It also provides the standard catalog
// of named profiles.
package profile

import (
	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/cam02"
	"cogentcore.org/colorspace/cat"
	"cogentcore.org/colorspace/cie"
	"cogentcore.org/colorspace/math64"
	"cogentcore.org/colorspace/tone"
)

// Primaries are the chromaticities of the red, green, and blue
// primaries of an RGB space.
type Primaries struct {
	R, G, B cie.XY
}

// Profile is an RGB working space. A Profile is created by [New] and
// must not be modified afterwards; the With methods return modified copies.
type Profile struct {

	// Name is the display name of the profile.
	Name string

	// Category groups related profiles, such as the organization
	// that defined them.
	Category string

	// Description is an optional one-line description.
	Description string

	// White is the chromaticity of the reference white.
	White cie.XY

	// Primaries are the chromaticities of the RGB primaries.
	Primaries Primaries

	// Curve is the tone response curve that encodes linear RGB.
	Curve tone.Curve

	// Adaptation is the chromatic adaptation transform used when
	// adapting colors from this profile to another white.
	Adaptation cat.Transform

	// Conditions are the CIECAM02 viewing conditions.
	Conditions cam02.Conditions

	// WhiteXYZ is the reference white in XYZ, with Y = 1.
	WhiteXYZ math64.Vector3

	// RGBToXYZ is the linear RGB to XYZ matrix.
	RGBToXYZ math64.Matrix3

	// XYZToRGB is the inverse of RGBToXYZ.
	XYZToRGB math64.Matrix3

	// View is the CIECAM02 view for White under Conditions.
	View *cam02.View
}

// New returns a new profile with the defining fields of the given one,
// validated, and with all the derived fields computed. A zero Adaptation
// is [cat.Default], and zero Conditions are [cam02.DefaultConditions].
func New(def Profile) (*Profile, error) {
	p := def
	if p.Adaptation.Name == "" {
		p.Adaptation = cat.Default
	}
	if p.Conditions == (cam02.Conditions{}) {
		p.Conditions = cam02.DefaultConditions()
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := p.update(); err != nil {
		return nil, err
	}
	return &p, nil
}

// validate checks the defining fields.
func (p *Profile) validate() error {
	op := "profile.New"
	w := p.White
	if err := w.Validate(); err != nil {
		return errors.Errorf(errors.Domain, op, p.Name, err)
	}
	if w.X < 0 || w.X > 1 || w.Y > 1 || w.X+w.Y > 1 {
		return errors.NewKind(errors.Domain, op, p.Name, "white chromaticity must be inside the unit triangle")
	}
	for _, c := range []cie.XY{p.Primaries.R, p.Primaries.G, p.Primaries.B} {
		// imaginary primaries may have y < 0 or y > 1
		if !math64.Finite(c.X) || !math64.Finite(c.Y) || c.Y == 0 {
			return errors.NewKind(errors.Domain, op, p.Name, "primary chromaticity must be finite with non-zero y")
		}
	}
	if err := tone.Validate(p.Curve); err != nil {
		return errors.Errorf(errors.Domain, op, p.Name, err)
	}
	if err := p.Conditions.Validate(); err != nil {
		return errors.Errorf(errors.Domain, op, p.Name, err)
	}
	return nil
}

// update computes the derived fields.
func (p *Profile) update() error {
	p.WhiteXYZ = p.White.XYZ()
	m, err := PrimaryMatrix(p.Primaries, p.WhiteXYZ)
	if err != nil {
		return errors.Errorf(errors.Degenerate, "profile.New", p.Name, err)
	}
	p.RGBToXYZ = m
	p.XYZToRGB, err = m.Inverse()
	if err != nil {
		return errors.Errorf(errors.Degenerate, "profile.New", p.Name, err)
	}
	p.View, err = cam02.NewView(p.WhiteXYZ, p.Conditions)
	return err
}

// PrimaryMatrix returns the linear RGB to XYZ matrix of the given
// primaries, scaled so that RGB (1, 1, 1) maps to the given white.
func PrimaryMatrix(pr Primaries, white math64.Vector3) (math64.Matrix3, error) {
	col := func(c cie.XY) math64.Vector3 {
		return math64.Vec3(c.X/c.Y, 1, (1-c.X-c.Y)/c.Y)
	}
	s := math64.Matrix3FromColumns(col(pr.R), col(pr.G), col(pr.B))
	scale, err := s.Solve(white)
	if err != nil {
		return math64.Matrix3{}, err
	}
	return s.ScaleColumns(scale), nil
}

// WithConditions returns a copy of the profile with the given viewing
// conditions and a recomputed [cam02.View].
func (p *Profile) WithConditions(cond cam02.Conditions) (*Profile, error) {
	np := *p
	if err := cond.Validate(); err != nil {
		return nil, errors.Errorf(errors.Domain, "profile.WithConditions", p.Name, err)
	}
	np.Conditions = cond
	vw, err := cam02.NewView(np.WhiteXYZ, cond)
	if err != nil {
		return nil, err
	}
	np.View = vw
	return &np, nil
}

// WithAdaptation returns a copy of the profile that adapts colors
// with the given transform.
func (p *Profile) WithAdaptation(t cat.Transform) *Profile {
	np := *p
	np.Adaptation = t
	return &np
}

// XYZ converts linear RGB to XYZ.
func (p *Profile) XYZ(lrgb math64.Vector3) math64.Vector3 {
	return p.RGBToXYZ.MulVector3(lrgb)
}

// LinearRGB converts XYZ to linear RGB.
func (p *Profile) LinearRGB(xyz math64.Vector3) math64.Vector3 {
	return p.XYZToRGB.MulVector3(xyz)
}

// Encode applies the tone curve to each linear RGB channel.
func (p *Profile) Encode(lrgb math64.Vector3) math64.Vector3 {
	return lrgb.Apply(p.Curve.Encode)
}

// Decode removes the tone curve from each encoded RGB channel.
func (p *Profile) Decode(rgb math64.Vector3) math64.Vector3 {
	return rgb.Apply(p.Curve.Decode)
}

func (p *Profile) String() string { return p.Name }

// AdaptMatrix returns the XYZ to XYZ matrix adapting colors seen under
// the white of src to the white of dst, using the adaptation transform
// of src. It is the identity for profiles with the same white.
func AdaptMatrix(src, dst *Profile) (math64.Matrix3, error) {
	if src.WhiteXYZ == dst.WhiteXYZ {
		return math64.Identity3(), nil
	}
	return src.Adaptation.Matrix(src.WhiteXYZ, dst.WhiteXYZ)
}

// Adapt adapts the given XYZ value seen under the white of src to
// the value with the same appearance under the white of dst,
// using the adaptation transform of src.
func Adapt(xyz math64.Vector3, src, dst *Profile) (math64.Vector3, error) {
	if src.WhiteXYZ == dst.WhiteXYZ {
		return xyz, nil
	}
	m, err := AdaptMatrix(src, dst)
	if err != nil {
		return math64.Vector3{}, err
	}
	return m.MulVector3(xyz), nil
}
