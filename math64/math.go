// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math64 is a float64 based vector, matrix, and scalar math
// package for color computations. Matrix storage is shared with
// [golang.org/x/image/math/f64].
package math64

import "math"

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = math.Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / math.Pi
)

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float64) float64 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float64) float64 {
	return radians * RadToDegFactor
}

// Clamp clamps x to the provided closed interval [a, b]
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// NormalizeHue wraps the given angle in degrees into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// Atan2Deg returns atan2(y, x) in degrees, normalized into [0, 360).
func Atan2Deg(y, x float64) float64 {
	return NormalizeHue(RadToDeg(math.Atan2(y, x)))
}

// SignPow returns |x|^p with the sign of x.
func SignPow(x, p float64) float64 {
	if x < 0 {
		return -math.Pow(-x, p)
	}
	return math.Pow(x, p)
}

// Sanitize maps NaN and infinite values to 0.
func Sanitize(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// SafeDiv returns a / b, or 0 when the quotient is not finite.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return Sanitize(a / b)
}

// Finite reports whether x is neither NaN nor infinite.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Round rounds x to the nearest integer, with halves rounded away from zero.
func Round(x float64) float64 {
	return math.Round(x)
}

// Pow2 returns x squared.
func Pow2(x float64) float64 { return x * x }

// Pow3 returns x cubed.
func Pow3(x float64) float64 { return x * x * x }

// Max3 returns the largest of the three values.
func Max3(a, b, c float64) float64 {
	return max(a, b, c)
}

// Min3 returns the smallest of the three values.
func Min3(a, b, c float64) float64 {
	return min(a, b, c)
}
