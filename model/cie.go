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

// chromaEpsilon is the chroma below which a hue is undetermined.
const chromaEpsilon = 1e-9

type xyzModel struct{}

func (xyzModel) ToHub(c Channels, p *profile.Profile) math64.Vector3 {
	return p.LinearRGB(vec(c))
}

func (xyzModel) FromHub(v math64.Vector3, p *profile.Profile) Channels {
	return chans(p.XYZ(v))
}

// xyzParent is embedded by the models derived from [XYZ].
type xyzParent struct{}

func (xyzParent) Parent() ID { return XYZ }

type xyYModel struct{ xyzParent }

func (xyYModel) FromParent(c Channels, p *profile.Profile) Channels {
	x, y, Y := cie.XYYFromXYZ(vec(c))
	return Channels{x, y, Y}
}

func (xyYModel) ToParent(c Channels, p *profile.Profile) Channels {
	return chans(cie.XYZFromXYY(c[0], c[1], c[2]))
}

// Degenerate is the black, whose chromaticity is arbitrary.
func (xyYModel) Degenerate(c Channels) bool {
	return c[2] == 0 || c[1] == 0
}

type xyModel struct{}

func (xyModel) Parent() ID { return XyY }

func (xyModel) FromParent(c Channels, p *profile.Profile) Channels {
	return Channels{c[0], c[1]}
}

func (xyModel) ToParent(c Channels, p *profile.Profile) Channels {
	return Channels{c[0], c[1], 1}
}

// rgGModel is the chromaticity of linear RGB, with the green channel.
type rgGModel struct{}

func (rgGModel) Parent() ID { return Lrgb }

func (rgGModel) FromParent(c Channels, p *profile.Profile) Channels {
	sum := c[0] + c[1] + c[2]
	if sum == 0 {
		return Channels{0, 0, c[1]}
	}
	return Channels{c[0] / sum, c[1] / sum, c[1]}
}

func (rgGModel) ToParent(c Channels, p *profile.Profile) Channels {
	r, g, G := c[0], c[1], c[2]
	if g == 0 {
		return Channels{}
	}
	return Channels{r * G / g, G, (1 - r - g) * G / g}
}

// Degenerate is the colors without green, whose chromaticity is
// not recoverable.
func (rgGModel) Degenerate(c Channels) bool {
	return c[1] == 0 || c[2] == 0
}

type rgModel struct{}

func (rgModel) Parent() ID { return RgG }

func (rgModel) FromParent(c Channels, p *profile.Profile) Channels {
	return Channels{c[0], c[1]}
}

func (rgModel) ToParent(c Channels, p *profile.Profile) Channels {
	return Channels{c[0], c[1], 1}
}

type labModel struct{ xyzParent }

func (labModel) FromParent(c Channels, p *profile.Profile) Channels {
	f := vec(c).Div(p.WhiteXYZ).Apply(cie.LabCompress)
	return Channels{116*f.Y - 16, 500 * (f.X - f.Y), 200 * (f.Y - f.Z)}
}

func (labModel) ToParent(c Channels, p *profile.Profile) Channels {
	fy := (c[0] + 16) / 116
	f := math64.Vec3(fy+c[1]/500, fy, fy-c[2]/200)
	return chans(f.Apply(cie.LabUncompress).Mul(p.WhiteXYZ))
}

// polarModel is the cylindrical form of a lightness and opponent axes
// parent, with the channels lightness, chroma, and hue in degrees.
type polarModel struct {
	parent ID
}

func (m polarModel) Parent() ID { return m.parent }

func (polarModel) FromParent(c Channels, p *profile.Profile) Channels {
	ch := math.Hypot(c[1], c[2])
	if ch < chromaEpsilon {
		return Channels{c[0], ch, 0}
	}
	return Channels{c[0], ch, math64.Atan2Deg(c[2], c[1])}
}

func (polarModel) ToParent(c Channels, p *profile.Profile) Channels {
	sin, cos := math.Sincos(math64.DegToRad(c[2]))
	return Channels{c[0], c[1] * cos, c[1] * sin}
}

// Degenerate is the neutrals, whose hue is arbitrary.
func (polarModel) Degenerate(c Channels) bool {
	return math.Abs(c[1]) < chromaEpsilon
}

// uvPrime returns the CIE 1976 u′ v′ chromaticity of the given XYZ,
// which is zero for black.
func uvPrime(xyz math64.Vector3) (u, v float64) {
	d := xyz.X + 15*xyz.Y + 3*xyz.Z
	if d == 0 {
		return 0, 0
	}
	return 4 * xyz.X / d, 9 * xyz.Y / d
}

type luvModel struct{ xyzParent }

func (luvModel) FromParent(c Channels, p *profile.Profile) Channels {
	xyz := vec(c)
	l := cie.YToL(100 * xyz.Y / p.WhiteXYZ.Y)
	if l == 0 {
		return Channels{}
	}
	u, v := uvPrime(xyz)
	un, vn := uvPrime(p.WhiteXYZ)
	return Channels{l, 13 * l * (u - un), 13 * l * (v - vn)}
}

func (luvModel) ToParent(c Channels, p *profile.Profile) Channels {
	l := c[0]
	if l == 0 {
		return Channels{}
	}
	un, vn := uvPrime(p.WhiteXYZ)
	u := c[1]/(13*l) + un
	v := c[2]/(13*l) + vn
	y := cie.LToY(l) / 100 * p.WhiteXYZ.Y
	if v == 0 {
		return Channels{0, y, 0}
	}
	return Channels{y * 9 * u / (4 * v), y, y * (12 - 3*u - 20*v) / (4 * v)}
}

// Degenerate is the black, whose chromaticity is arbitrary.
func (luvModel) Degenerate(c Channels) bool {
	return c[0] == 0
}

// hunterModel is the Hunter 1948 Lab.
type hunterModel struct{ xyzParent }

// hunterK returns the Ka and Kb coefficients of the given profile white.
func hunterK(p *profile.Profile) (ka, kb float64) {
	if p.White == cie.C {
		return 175, 70
	}
	w := p.WhiteXYZ
	return 100 * (175 / 198.04) * (w.X + w.Y), 100 * (70 / 218.11) * (w.Y + w.Z)
}

// signedSqrt is the square root of |v| with the sign of v.
func signedSqrt(v float64) float64 {
	return math.Copysign(math.Sqrt(math.Abs(v)), v)
}

// FromParent takes the signed square root of the relative luminance,
// so that the negative luminances of wide gamut primaries invert.
func (hunterModel) FromParent(c Channels, p *profile.Profile) Channels {
	w := p.WhiteXYZ
	ka, kb := hunterK(p)
	y := c[1] / w.Y
	sy := signedSqrt(y)
	if sy == 0 {
		return Channels{}
	}
	return Channels{100 * sy, ka * (c[0]/w.X - y) / sy, kb * (y - c[2]/w.Z) / sy}
}

func (hunterModel) ToParent(c Channels, p *profile.Profile) Channels {
	w := p.WhiteXYZ
	ka, kb := hunterK(p)
	sy := c[0] / 100
	y := sy * math.Abs(sy)
	x := (c[1]/ka*sy + y) * w.X
	z := (y - c[2]/kb*sy) * w.Z
	return Channels{x, y * w.Y, z}
}

// Degenerate is the black, whose a and b are arbitrary.
func (hunterModel) Degenerate(c Channels) bool {
	return c[0] == 0
}

// ucsModel is the CIE 1960 UCS.
type ucsModel struct{ xyzParent }

func (ucsModel) FromParent(c Channels, p *profile.Profile) Channels {
	x, y, z := c[0], c[1], c[2]
	return Channels{2 * x / 3, y, (-x + 3*y + z) / 2}
}

func (ucsModel) ToParent(c Channels, p *profile.Profile) Channels {
	u, v, w := c[0], c[1], c[2]
	return Channels{1.5 * u, v, 1.5*u - 3*v + 2*w}
}

// uvwModel is the CIE 1964 U*V*W*.
type uvwModel struct{ xyzParent }

// uv1960 returns the CIE 1960 u v chromaticity of the given XYZ,
// which is zero for black.
func uv1960(xyz math64.Vector3) (u, v float64) {
	d := xyz.X + 15*xyz.Y + 3*xyz.Z
	if d == 0 {
		return 0, 0
	}
	return 4 * xyz.X / d, 6 * xyz.Y / d
}

func (uvwModel) FromParent(c Channels, p *profile.Profile) Channels {
	xyz := vec(c)
	u, v := uv1960(xyz)
	un, vn := uv1960(p.WhiteXYZ)
	w := 25*math.Cbrt(100*xyz.Y/p.WhiteXYZ.Y) - 17
	return Channels{13 * w * (u - un), 13 * w * (v - vn), w}
}

func (uvwModel) ToParent(c Channels, p *profile.Profile) Channels {
	w := c[2]
	un, vn := uv1960(p.WhiteXYZ)
	y := math64.Pow3((w+17)/25) / 100 * p.WhiteXYZ.Y
	u, v := un, vn
	if w != 0 {
		u = c[0]/(13*w) + un
		v = c[1]/(13*w) + vn
	}
	if v == 0 {
		return Channels{0, y, 0}
	}
	return Channels{1.5 * y * u / v, y, y * (2/v - 0.5*u/v - 5)}
}

// Degenerate is the black at W* = -17 and the W* = 0 lightness,
// where U* and V* do not determine the chromaticity.
func (uvwModel) Degenerate(c Channels) bool {
	return c[2] == 0 || c[2] <= -17
}

// lmsModel is the cone response of the profile adaptation transform.
type lmsModel struct{ xyzParent }

func (lmsModel) FromParent(c Channels, p *profile.Profile) Channels {
	return chans(p.Adaptation.LMS.MulVector3(vec(c)))
}

func (lmsModel) ToParent(c Channels, p *profile.Profile) Channels {
	return chans(p.Adaptation.XYZ.MulVector3(vec(c)))
}

// chromaPolarModel is a cylindrical chromaticity with luminance
// parent. The lightness is 100 times the luminance, and the chroma
// and hue are of the chromaticity offset by 200 from the neutral.
type chromaPolarModel struct {
	parent  ID
	neutral func(p *profile.Profile) (x, y float64)
}

func (m chromaPolarModel) Parent() ID { return m.parent }

func (m chromaPolarModel) FromParent(c Channels, p *profile.Profile) Channels {
	nx, ny := m.neutral(p)
	return polarModel{}.FromParent(Channels{100 * c[2], 200 * (c[0] - nx), 200 * (c[1] - ny)}, p)
}

func (m chromaPolarModel) ToParent(c Channels, p *profile.Profile) Channels {
	nx, ny := m.neutral(p)
	lab := polarModel{}.ToParent(c, p)
	return Channels{nx + lab[1]/200, ny + lab[2]/200, c[0] / 100}
}

// Degenerate is the neutrals and the black, whose chromaticity
// is arbitrary.
func (chromaPolarModel) Degenerate(c Channels) bool {
	return c[0] == 0 || math.Abs(c[1]) < chromaEpsilon
}

var (
	lchxyModel = chromaPolarModel{parent: XyY, neutral: func(p *profile.Profile) (x, y float64) {
		x, y, _ = cie.XYYFromXYZ(p.WhiteXYZ)
		return x, y
	}}

	lchrgModel = chromaPolarModel{parent: RgG, neutral: func(*profile.Profile) (x, y float64) {
		return 1.0 / 3, 1.0 / 3
	}}
)
