// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cam02 implements the CIECAM02 color appearance model,
// which predicts the perceived lightness, chroma, hue, brightness,
// colorfulness, and saturation of a color under given viewing conditions.
package cam02

import (
	"fmt"
	"math"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/math64"
)

// CAM represents a point in the CIECAM02 color appearance model.
// The forward transform [FromXYZ] fills in every correlate, and the
// inverse [CAM.XYZ] only depends on Lightness, Chroma, and Hue.
// The From* solvers fill in every correlate from one of the
// standard projections.
type CAM struct {

	// Lightness J is the brightness relative to the white, in [0, 100].
	Lightness float64

	// Chroma C is the colorfulness relative to the brightness of the white.
	Chroma float64

	// Hue h is the hue angle in degrees, in [0, 360).
	Hue float64

	// HueComposition H is the hue on the unique hue scale, in [0, 400):
	// 0 red, 100 yellow, 200 green, 300 blue.
	HueComposition float64

	// Brightness Q is the absolute brightness.
	Brightness float64

	// Colorfulness M is the absolute chromatic intensity.
	Colorfulness float64

	// Saturation s is the colorfulness relative to the brightness.
	Saturation float64
}

func (c CAM) String() string {
	return fmt.Sprintf("cam02(J=%.4g, C=%.4g, h=%.4g, Q=%.4g, M=%.4g, s=%.4g)",
		c.Lightness, c.Chroma, c.Hue, c.Brightness, c.Colorfulness, c.Saturation)
}

// FromXYZ returns the appearance correlates of the given XYZ value,
// where Y = 1 is the luminance of the view white point.
func FromXYZ(xyz math64.Vector3, vw *View) CAM {
	rgbA := vw.compress(XYZToLMS(xyz.MulScalar(100)))
	ab := opponent.MulVector3(rgbA)
	p2, a, b := ab.X, ab.Y, ab.Z

	cam := CAM{}
	cam.Hue = math64.Atan2Deg(b, a)
	cam.HueComposition = HueComposition(cam.Hue)

	ac := (p2 - 0.305) * vw.Nbb
	if ac > 0 {
		cam.Lightness = 100 * math.Pow(ac/vw.Aw, vw.C*vw.Z)
	}

	et := eccentricity(cam.Hue)
	den := rgbA.X + rgbA.Y + 21*rgbA.Z/20
	t := math64.SafeDiv(50000.0/13*vw.Nc*vw.Ncb*et*math.Hypot(a, b), den)
	cam.Chroma = math64.Sanitize(math.Pow(t, 0.9) * math.Sqrt(cam.Lightness/100) * vw.chromaFactor)
	vw.fill(&cam)
	return cam
}

// fill computes Brightness, Colorfulness, and Saturation from
// Lightness and Chroma.
func (vw *View) fill(c *CAM) {
	c.Brightness = (4 / vw.C) * math.Sqrt(c.Lightness/100) * (vw.Aw + 4) * vw.FLRoot
	c.Colorfulness = c.Chroma * vw.FLRoot
	c.Saturation = 100 * math.Sqrt(math64.SafeDiv(c.Colorfulness, c.Brightness))
}

// eccentricity is the eccentricity factor et for the given hue in degrees.
func eccentricity(h float64) float64 {
	return 0.25 * (math.Cos(math64.DegToRad(h)+2) + 3.8)
}

// XYZ returns the XYZ value, where Y = 1 is the luminance of the view
// white point, that has the Lightness, Chroma, and Hue of the CAM under
// the given view. Zero lightness is black. It returns an [errors.Domain]
// error if no color has that chroma at that lightness and hue.
func (c CAM) XYZ(vw *View) (math64.Vector3, error) {
	if c.Lightness <= 0 {
		return math64.Vector3{}, nil
	}
	if c.Chroma < 0 {
		return math64.Vector3{}, errors.NewKind(errors.Domain, "cam02.CAM.XYZ", c.String(), "chroma must not be negative")
	}
	jr := math.Sqrt(c.Lightness / 100)
	t := math.Pow(c.Chroma/(jr*vw.chromaFactor), 1/0.9)
	ac := vw.Aw * math.Pow(c.Lightness/100, 1/(vw.C*vw.Z))
	p2 := ac/vw.Nbb + 0.305

	var a, b float64
	if t > 0 {
		// Solve t·(u·(p2, a, b)) = K·et·r for the radius r along the hue,
		// where u·rgbA is the chroma denominator r + g + 21b/20.
		u := opponentInverse.Row(0).Add(opponentInverse.Row(1)).Add(opponentInverse.Row(2).MulScalar(21.0 / 20))
		p1 := 50000.0 / 13 * vw.Nc * vw.Ncb * eccentricity(c.Hue) / t
		sin, cos := math.Sincos(math64.DegToRad(c.Hue))
		den := p1 - u.Y*cos - u.Z*sin
		r := u.X * p2 / den
		if !(den > 0) || !math64.Finite(r) {
			return math64.Vector3{}, errors.NewKind(errors.Domain, "cam02.CAM.XYZ", c.String(), "chroma is out of reach at this lightness and hue")
		}
		a, b = r*cos, r*sin
	}
	rgbA := opponentInverse.MulVector3(math64.Vec3(p2, a, b))
	if !(rgbA.Apply(func(v float64) float64 { return math.Abs(v - 0.1) }).Max() < 400) {
		return math64.Vector3{}, errors.NewKind(errors.Domain, "cam02.CAM.XYZ", c.String(), "response exceeds the compression limit")
	}
	rgb := vw.decompress(rgbA)
	return LMSToXYZ(rgb).DivScalar(100).Sanitize(), nil
}

// hue composition table of the unique hues: red, yellow, green, blue, red.
var (
	uniqueHue       = [5]float64{20.14, 90, 164.25, 237.53, 380.14}
	uniqueEcc       = [5]float64{0.8, 0.7, 1.0, 1.2, 0.8}
	uniqueHueQuadra = [5]float64{0, 100, 200, 300, 400}
)

// HueComposition returns the hue composition H in [0, 400) of the
// given hue angle in degrees, by linear blending of the eccentricity
// weighted distances to the two bracketing unique hues.
func HueComposition(h float64) float64 {
	hp := math64.NormalizeHue(h)
	if hp < uniqueHue[0] {
		hp += 360
	}
	i := 0
	for i < 3 && hp >= uniqueHue[i+1] {
		i++
	}
	lo := (hp - uniqueHue[i]) / uniqueEcc[i]
	hi := (uniqueHue[i+1] - hp) / uniqueEcc[i+1]
	H := uniqueHueQuadra[i] + 100*lo/(lo+hi)
	if H >= 400 {
		H -= 400
	}
	return H
}

// HueAngle is the inverse of [HueComposition], returning the hue angle
// in degrees in [0, 360) for the given hue composition.
func HueAngle(H float64) float64 {
	H = math.Mod(H, 400)
	if H < 0 {
		H += 400
	}
	i := int(H / 100)
	if i > 3 {
		i = 3
	}
	dh := H - uniqueHueQuadra[i]
	e0, e1 := uniqueEcc[i], uniqueEcc[i+1]
	h0, h1 := uniqueHue[i], uniqueHue[i+1]
	h := (dh*(e1*h0-e0*h1) - 100*h0*e1) / (dh*(e1-e0) - 100*e1)
	return math64.NormalizeHue(h)
}
