// Copyright (c) 2021, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam02

import (
	"math"

	"cogentcore.org/colorspace/math64"
)

// CAT02 is the CIECAM02 XYZ to sharpened cone response matrix
// (MoroneyFairchildHuntEtAl02).
var CAT02 = math64.Mat3(
	0.7328, 0.4296, -0.1624,
	-0.7036, 1.6975, 0.0061,
	0.0030, 0.0136, 0.9834,
)

// HPE is the Hunt-Pointer-Estevez XYZ to cone response matrix,
// normalized for equal energy.
var HPE = math64.Mat3(
	0.38971, 0.68898, -0.07868,
	-0.22981, 1.18340, 0.04641,
	0, 0, 1,
)

// derived matrices; inverses are computed rather than tabulated
// so that the forward and inverse pipelines agree to rounding error.
var (
	cat02Inverse = CAT02.MustInverse()

	// cat02ToHPE maps CAT02 responses to HPE responses.
	cat02ToHPE = HPE.Mul(cat02Inverse)

	hpeToCAT02 = cat02ToHPE.MustInverse()

	// opponent maps compressed HPE responses to (p2, a, b), where
	// p2 = A/Nbb + 0.305 is the unscaled achromatic signal.
	opponent = math64.Mat3(
		2, 1, 1.0/20,
		1, -12.0/11, 1.0/11,
		1.0/9, 1.0/9, -2.0/9,
	)

	opponentInverse = opponent.MustInverse()
)

// XYZToLMS converts XYZ to Long, Medium, Short cone-based responses,
// using the CAT02 transform from CIECAM02 color appearance model
// (MoroneyFairchildHuntEtAl02)
func XYZToLMS(xyz math64.Vector3) math64.Vector3 {
	return CAT02.MulVector3(xyz)
}

// LMSToXYZ is the inverse of [XYZToLMS].
func LMSToXYZ(lms math64.Vector3) math64.Vector3 {
	return cat02Inverse.MulVector3(lms)
}

// LuminanceAdaptation implements the luminance-level adaptation
// factor FL for the given adapting field luminance in cd/m².
func LuminanceAdaptation(la float64) float64 {
	lum5 := 5.0 * la
	k := 1.0 / (lum5 + 1)
	k4 := k * k * k * k
	k4m1 := 1 - k4
	return 0.2*k4*lum5 + 0.1*k4m1*k4m1*math.Cbrt(lum5)
}

// ResponseCompression performs the post-adaptation hyperbolic
// response compression of one HPE channel, given the luminance
// adaptation factor fl. The sign of negative values is preserved.
func ResponseCompression(val, fl float64) float64 {
	pval := math.Pow(fl*math.Abs(val)/100, 0.42)
	rc := 400 * pval / (27.13 + pval)
	if val < 0 {
		rc = -rc
	}
	return rc + 0.1
}

// ResponseDecompression is the inverse of [ResponseCompression].
func ResponseDecompression(rc, fl float64) float64 {
	d := rc - 0.1
	ad := math.Abs(d)
	v := (100 / fl) * math.Pow(27.13*ad/(400-ad), 1/0.42)
	if d < 0 {
		v = -v
	}
	return v
}
