// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"

	"cogentcore.org/colorspace/math64"
	"cogentcore.org/colorspace/profile"
)

// Jzazbz constants of Safdar et al. 2017.
const (
	jzB  = 1.15
	jzG  = 0.66
	jzC1 = 3424.0 / 4096
	jzC2 = 2413.0 / 128
	jzC3 = 2392.0 / 128
	jzN  = 2610.0 / 16384
	jzP  = 1.7 * 2523 / 32
	jzD  = -0.56
	jzD0 = 1.6295499532821566e-11

	// jzWhite is the absolute luminance of the profile white in cd/m².
	jzWhite = 100
)

var (
	jzLMS = math64.Mat3(
		0.41478972, 0.579999, 0.0146480,
		-0.2015100, 1.120649, 0.0531008,
		-0.0166008, 0.264800, 0.6684799,
	)
	jzLMSInv = jzLMS.MustInverse()
	jzIab    = math64.Mat3(
		0.5, 0.5, 0,
		3.524000, -4.066708, 0.542708,
		0.199076, 1.096799, -1.295875,
	)
	jzIabInv = jzIab.MustInverse()
)

// pq is the perceptual quantizer with the Jzazbz exponent, extended
// to negative values as an odd function.
func pq(x float64) float64 {
	if x < 0 {
		return -pq(-x)
	}
	xn := math.Pow(x/10000, jzN)
	return math.Pow((jzC1+jzC2*xn)/(1+jzC3*xn), jzP)
}

func pqInv(v float64) float64 {
	if v < 0 {
		return -pqInv(-v)
	}
	vp := math.Pow(v, 1/jzP)
	return 10000 * math.Pow(max((jzC1-vp)/(jzC3*vp-jzC2), 0), 1/jzN)
}

type jzazbzModel struct{ xyzParent }

func (jzazbzModel) FromParent(c Channels, p *profile.Profile) Channels {
	xyz := toD65(vec(c), p).MulScalar(jzWhite)
	x := jzB*xyz.X - (jzB-1)*xyz.Z
	y := jzG*xyz.Y - (jzG-1)*xyz.X
	lms := jzLMS.MulVector3(math64.Vec3(x, y, xyz.Z)).Apply(pq)
	iab := jzIab.MulVector3(lms)
	jz := (1+jzD)*iab.X/(1+jzD*iab.X) - jzD0
	return Channels{jz, iab.Y, iab.Z}
}

func (jzazbzModel) ToParent(c Channels, p *profile.Profile) Channels {
	jz := c[0] + jzD0
	iz := jz / (1 + jzD - jzD*jz)
	lms := jzIabInv.MulVector3(math64.Vec3(iz, c[1], c[2])).Apply(pqInv)
	xyz := jzLMSInv.MulVector3(lms)
	x := (xyz.X + (jzB-1)*xyz.Z) / jzB
	y := (xyz.Y + (jzG-1)*x) / jzG
	return chans(fromD65(math64.Vec3(x, y, xyz.Z).DivScalar(jzWhite), p))
}
