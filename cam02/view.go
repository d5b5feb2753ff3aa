// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam02

import (
	"fmt"
	"math"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/cie"
	"cogentcore.org/colorspace/math64"
)

// Surround is the relative luminance of the surround of the viewing field.
type Surround int32

const (
	// Average is the surround of a reflection print viewed in a lit room.
	Average Surround = iota

	// Dim is the surround of a television viewed in a dim room.
	Dim

	// Dark is the surround of a projection in a darkened room.
	Dark
)

// Factors returns the surround factors: the degree of adaptation factor F,
// the impact of surround c, and the chromatic induction factor Nc.
func (s Surround) Factors() (f, c, nc float64) {
	switch s {
	case Dim:
		return 0.9, 0.59, 0.9
	case Dark:
		return 0.8, 0.525, 0.8
	default:
		return 1, 0.69, 1
	}
}

func (s Surround) String() string {
	switch s {
	case Average:
		return "average"
	case Dim:
		return "dim"
	case Dark:
		return "dark"
	}
	return fmt.Sprintf("Surround(%d)", int32(s))
}

// MarshalText implements [encoding.TextMarshaler].
func (s Surround) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Surround) UnmarshalText(text []byte) error {
	v, err := ParseSurround(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSurround returns the surround with the given case insensitive name.
func ParseSurround(name string) (Surround, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "average", "":
		return Average, nil
	case "dim":
		return Dim, nil
	case "dark":
		return Dark, nil
	}
	return Average, errors.NewKind(errors.Unsupported, "cam02.ParseSurround", name, "unknown surround")
}

// Conditions are the major parameters of the viewing conditions,
// from which a [View] is derived.
type Conditions struct {

	// Surround is the relative luminance of the surround.
	Surround Surround `toml:"surround" yaml:"surround"`

	// AdaptingLuminance is the luminance of the adapting field
	// LA in cd/m², typically 20% of the white luminance.
	AdaptingLuminance float64 `toml:"la" yaml:"la"`

	// BackgroundLuminance is the relative luminance Yb of the
	// background, in percent of the white.
	BackgroundLuminance float64 `toml:"yb" yaml:"yb"`

	// Discounting is whether the illuminant is fully discounted,
	// forcing the degree of adaptation D to 1.
	Discounting bool `toml:"discounting,omitempty" yaml:"discounting,omitempty"`
}

// DefaultConditions returns the default viewing conditions: an average
// surround, LA of 4 cd/m², and a background of 20%.
func DefaultConditions() Conditions {
	return Conditions{Surround: Average, AdaptingLuminance: 4, BackgroundLuminance: 20}
}

// Validate returns a [errors.Domain] error if the conditions are unusable.
func (c Conditions) Validate() error {
	if c.Surround < Average || c.Surround > Dark {
		return errors.NewKind(errors.Domain, "cam02.Conditions", c.Surround.String(), "surround must be average, dim, or dark")
	}
	if !(c.AdaptingLuminance > 0) || math.IsInf(c.AdaptingLuminance, 0) {
		return errors.NewKind(errors.Domain, "cam02.Conditions", "la", "adapting luminance must be positive")
	}
	if !(c.BackgroundLuminance > 0) || math.IsInf(c.BackgroundLuminance, 0) {
		return errors.NewKind(errors.Domain, "cam02.Conditions", "yb", "background luminance must be positive")
	}
	return nil
}

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. It holds the values
// derived from [Conditions] and a white point, and is created once and
// shared by all the conversions made under those conditions.
type View struct {
	Conditions

	// WhitePoint is the white point in XYZ, scaled so that Y = 100.
	WhitePoint math64.Vector3

	// F is the degree of adaptation factor of the surround.
	F float64

	// C is the impact of surround, the exponential nonlinearity.
	C float64

	// Nc is the chromatic induction factor.
	Nc float64

	// D is the degree of adaptation to the white point.
	D float64

	// FL is the luminance-level adaptation factor.
	FL float64

	// FLRoot is FL to the 1/4 power.
	FLRoot float64

	// N is the ratio of background to white luminance.
	N float64

	// Nbb is the brightness background induction factor.
	Nbb float64

	// Ncb is the chromatic background induction factor.
	Ncb float64

	// Z is the base exponential nonlinearity.
	Z float64

	// Aw is the achromatic response to the white point.
	Aw float64

	// RGBW is the CAT02 cone response to the white point.
	RGBW math64.Vector3

	// DRGB are the per channel adaptation factors D·Yw/RGBW + 1 - D.
	DRGB math64.Vector3

	// chromaFactor is (1.64 - 0.29^n)^0.73.
	chromaFactor float64
}

// NewView returns a new view for the given white point XYZ (at any
// luminance scale) and viewing conditions.
func NewView(white math64.Vector3, cond Conditions) (*View, error) {
	if err := cond.Validate(); err != nil {
		return nil, err
	}
	if !white.IsFinite() || white.Y <= 0 || white.X <= 0 || white.Z <= 0 {
		return nil, errors.NewKind(errors.Domain, "cam02.NewView", white.String(), "white point must be positive")
	}
	vw := &View{Conditions: cond, WhitePoint: white.MulScalar(100 / white.Y)}
	vw.Update()
	return vw, nil
}

// StdView is the view for a D65 white under [DefaultConditions].
var StdView = errors.Must1(NewView(cie.D65.XYZ(), DefaultConditions()))

// Update updates all the computed values based on main parameters
func (vw *View) Update() {
	vw.F, vw.C, vw.Nc = vw.Surround.Factors()
	la := vw.AdaptingLuminance

	d := 1.0
	if !vw.Discounting {
		d = vw.F * (1 - (1/3.6)*math.Exp((-la-42)/92))
	}
	vw.D = math64.Clamp(d, 0, 1)

	vw.FL = LuminanceAdaptation(la)
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	vw.N = vw.BackgroundLuminance / vw.WhitePoint.Y
	vw.Z = 1.48 + math.Sqrt(vw.N)
	vw.Nbb = 0.725 * math.Pow(1/vw.N, 0.2)
	vw.Ncb = vw.Nbb
	vw.chromaFactor = math.Pow(1.64-math.Pow(0.29, vw.N), 0.73)

	vw.RGBW = XYZToLMS(vw.WhitePoint)
	yw := vw.WhitePoint.Y
	vw.DRGB = math64.Vec3(
		vw.D*yw/vw.RGBW.X+1-vw.D,
		vw.D*yw/vw.RGBW.Y+1-vw.D,
		vw.D*yw/vw.RGBW.Z+1-vw.D,
	)

	aw := vw.compress(vw.RGBW)
	vw.Aw = (2*aw.X + aw.Y + aw.Z/20 - 0.305) * vw.Nbb
}

// compress applies the adaptation, the HPE transform, and the
// response compression to the given CAT02 cone responses.
func (vw *View) compress(rgb math64.Vector3) math64.Vector3 {
	hpe := cat02ToHPE.MulVector3(rgb.Mul(vw.DRGB))
	return hpe.Apply(func(v float64) float64 { return ResponseCompression(v, vw.FL) })
}

// decompress is the inverse of compress.
func (vw *View) decompress(rgba math64.Vector3) math64.Vector3 {
	hpe := rgba.Apply(func(v float64) float64 { return ResponseDecompression(v, vw.FL) })
	return hpeToCAT02.MulVector3(hpe).Div(vw.DRGB)
}
