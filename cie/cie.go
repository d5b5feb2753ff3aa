// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides CIE constants, standard illuminant chromaticities,
// and the chromaticity and lightness helper functions shared by the
// Lab-family color models.
package cie

import (
	"math"
	"sort"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/math64"
)

const (
	// Epsilon is the CIE ε = 216/24389, the Y/Yn below which
	// lightness is linear.
	Epsilon = 216.0 / 24389

	// Kappa is the CIE κ = 24389/27.
	Kappa = 24389.0 / 27
)

// XY is a chromaticity coordinate.
type XY struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
}

// Standard illuminant white points for the CIE 1931 2° observer.
var (
	A   = XY{0.44757, 0.40745}
	B   = XY{0.34842, 0.35161}
	C   = XY{0.31006, 0.31616}
	D50 = XY{0.34567, 0.35850}
	D55 = XY{0.33242, 0.34743}
	D60 = XY{0.32168, 0.33767}
	D63 = XY{0.314, 0.351}
	D65 = XY{0.31271, 0.32902}
	D75 = XY{0.29902, 0.31485}
	D93 = XY{0.28315, 0.29711}
	E   = XY{1.0 / 3, 1.0 / 3}
	F2  = XY{0.37208, 0.37529}
	F7  = XY{0.31292, 0.32933}
	F11 = XY{0.38052, 0.37713}
)

var illuminants = map[string]XY{
	"A": A, "B": B, "C": C, "D50": D50, "D55": D55, "D60": D60, "D63": D63,
	"D65": D65, "D75": D75, "D93": D93, "E": E, "F2": F2, "F7": F7, "F11": F11,
}

// Illuminant returns the chromaticity of the named standard illuminant.
// The name is case insensitive.
func Illuminant(name string) (XY, error) {
	xy, ok := illuminants[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return XY{}, errors.NewKind(errors.Unsupported, "cie.Illuminant", name, "unknown illuminant")
	}
	return xy, nil
}

// Illuminants returns the names of all standard illuminants, sorted.
func Illuminants() []string {
	names := make([]string, 0, len(illuminants))
	for n := range illuminants {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IlluminantName returns the name of the standard illuminant with
// the given chromaticity, if any.
func IlluminantName(xy XY) (string, bool) {
	for n, v := range illuminants {
		if v == xy {
			return n, true
		}
	}
	return "", false
}

// XYZ returns the tristimulus values of the chromaticity at Y = 1.
func (xy XY) XYZ() math64.Vector3 {
	return XYZFromXYY(xy.X, xy.Y, 1)
}

// Validate returns a [errors.Domain] error if xy is not a usable chromaticity.
func (xy XY) Validate() error {
	if !math64.Finite(xy.X) || !math64.Finite(xy.Y) {
		return errors.NewKind(errors.Domain, "cie.XY", "", "chromaticity must be finite")
	}
	if xy.Y <= 0 {
		return errors.NewKind(errors.Domain, "cie.XY", "", "chromaticity y must be positive")
	}
	return nil
}

// XYZFromXYY converts the chromaticity x, y and luminance Y to XYZ.
// A zero y yields black.
func XYZFromXYY(x, y, Y float64) math64.Vector3 {
	if y == 0 {
		return math64.Vector3{}
	}
	return math64.Vec3(x*Y/y, Y, (1-x-y)*Y/y)
}

// XYYFromXYZ converts XYZ to the chromaticity x, y and luminance Y.
// When X+Y+Z is zero the chromaticity is (0, 0) and Y is preserved.
func XYYFromXYZ(xyz math64.Vector3) (x, y, Y float64) {
	sum := xyz.Sum()
	if sum == 0 || !math64.Finite(sum) {
		return 0, 0, math64.Sanitize(xyz.Y)
	}
	return xyz.X / sum, xyz.Y / sum, xyz.Y
}

// LabCompress does cube-root compression of the X, Y, Z components
// prior to performing the Lab conversion.
func LabCompress(t float64) float64 {
	if t > Epsilon {
		return math.Cbrt(t)
	}
	return (Kappa*t + 16) / 116
}

// LabUncompress does cube-root uncompression of the X, Y, Z components
// after performing the Lab conversion.
func LabUncompress(f float64) float64 {
	if f3 := f * f * f; f3 > Epsilon {
		return f3
	}
	return (116*f - 16) / Kappa
}

// LToY converts L* lightness in [0, 100] to relative luminance Y in [0, 100].
func LToY(l float64) float64 {
	return 100 * LabUncompress((l+16)/116)
}

// YToL converts relative luminance Y in [0, 100] to L* lightness in [0, 100].
func YToL(y float64) float64 {
	return 116*LabCompress(y/100) - 16
}
