// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"cogentcore.org/colorspace/math64"
	"cogentcore.org/colorspace/profile"
)

// vec returns the first three channels as a vector.
func vec(c Channels) math64.Vector3 {
	return math64.Vec3(c[0], c[1], c[2])
}

// chans returns the vector as the first three channels.
func chans(v math64.Vector3) Channels {
	return Channels{v.X, v.Y, v.Z}
}

type lrgbModel struct{}

func (lrgbModel) ToHub(c Channels, p *profile.Profile) math64.Vector3   { return vec(c) }
func (lrgbModel) FromHub(v math64.Vector3, p *profile.Profile) Channels { return chans(v) }

type rgbNormModel struct{}

func (rgbNormModel) ToHub(c Channels, p *profile.Profile) math64.Vector3 {
	return p.Decode(vec(c))
}

func (rgbNormModel) FromHub(v math64.Vector3, p *profile.Profile) Channels {
	return chans(p.Encode(v))
}

// rgbParent is embedded by the models derived from [RGBNorm].
type rgbParent struct{}

func (rgbParent) Parent() ID { return RGBNorm }

type rgbModel struct{ rgbParent }

func (rgbModel) ToParent(c Channels, p *profile.Profile) Channels {
	return chans(vec(c).DivScalar(255))
}

func (rgbModel) FromParent(c Channels, p *profile.Profile) Channels {
	return chans(vec(c).MulScalar(255))
}

// rgbkModel normalizes RGB by the brightest channel and keeps the
// remaining darkness in K, all as bytes.
type rgbkModel struct{ rgbParent }

func (rgbkModel) ToParent(c Channels, p *profile.Profile) Channels {
	k := 1 - c[3]/255
	return chans(vec(c).MulScalar(k / 255))
}

func (rgbkModel) FromParent(c Channels, p *profile.Profile) Channels {
	m := vec(c).Max()
	if m <= 0 {
		return Channels{0, 0, 0, 255}
	}
	rgb := vec(c).MulScalar(255 / m)
	return Channels{rgb.X, rgb.Y, rgb.Z, 255 * (1 - m)}
}

// Degenerate is the black, whose hue is arbitrary, and the
// non canonical forms whose brightest channel is not full.
func (rgbkModel) Degenerate(c Channels) bool {
	return c[3] == 255 || vec(c).Max() != 255
}

// rgbwModel separates out the common white of the RGB channels, as bytes.
type rgbwModel struct{ rgbParent }

func (rgbwModel) ToParent(c Channels, p *profile.Profile) Channels {
	w := c[3] / 255
	return chans(vec(c).MulScalar((1 - w) / 255).Add(math64.Vector3Scalar(w)))
}

func (rgbwModel) FromParent(c Channels, p *profile.Profile) Channels {
	w := vec(c).Min()
	if w >= 1 {
		return Channels{0, 0, 0, 255}
	}
	rgb := vec(c).Sub(math64.Vector3Scalar(w)).MulScalar(255 / (1 - w))
	return Channels{rgb.X, rgb.Y, rgb.Z, 255 * w}
}

// Degenerate is the white, and the non canonical forms whose
// darkest channel is not zero.
func (rgbwModel) Degenerate(c Channels) bool {
	return c[3] == 255 || vec(c).Min() != 0
}

type cmyModel struct{ rgbParent }

func (cmyModel) ToParent(c Channels, p *profile.Profile) Channels {
	return chans(math64.Vector3Scalar(1).Sub(vec(c).DivScalar(100)))
}

func (cmyModel) FromParent(c Channels, p *profile.Profile) Channels {
	return chans(math64.Vector3Scalar(1).Sub(vec(c)).MulScalar(100))
}

// cmykModel is the naive CMYK with full gray component replacement.
type cmykModel struct{ rgbParent }

func (cmykModel) ToParent(c Channels, p *profile.Profile) Channels {
	k := 1 - c[3]/100
	return chans(math64.Vector3Scalar(1).Sub(vec(c).DivScalar(100)).MulScalar(k))
}

func (cmykModel) FromParent(c Channels, p *profile.Profile) Channels {
	k := 1 - vec(c).Max()
	if k >= 1 {
		return Channels{0, 0, 0, 100}
	}
	cmy := math64.Vector3Scalar(1 - k).Sub(vec(c)).MulScalar(100 / (1 - k))
	return Channels{cmy.X, cmy.Y, cmy.Z, 100 * k}
}

// Degenerate is the black, and the non canonical forms with
// no zero ink.
func (cmykModel) Degenerate(c Channels) bool {
	return c[3] == 100 || vec(c).Min() != 0
}

// cmywModel separates out the common white, with the remaining
// color as subtractive inks.
type cmywModel struct{ rgbParent }

func (cmywModel) ToParent(c Channels, p *profile.Profile) Channels {
	w := c[3] / 100
	n := math64.Vector3Scalar(1).Sub(vec(c).DivScalar(100))
	return chans(n.MulScalar(1 - w).Add(math64.Vector3Scalar(w)))
}

func (cmywModel) FromParent(c Channels, p *profile.Profile) Channels {
	w := vec(c).Min()
	if w >= 1 {
		return Channels{0, 0, 0, 100}
	}
	n := vec(c).Sub(math64.Vector3Scalar(w)).DivScalar(1 - w)
	cmy := math64.Vector3Scalar(1).Sub(n).MulScalar(100)
	return Channels{cmy.X, cmy.Y, cmy.Z, 100 * w}
}

// Degenerate is the white, and the non canonical forms with
// no full ink.
func (cmywModel) Degenerate(c Channels) bool {
	return c[3] == 100 || vec(c).Max() != 100
}

// rybModel is Gossett and Chen's red, yellow, blue painter's wheel,
// mixed from the encoded RGB signal by removing the white, moving
// the yellow out of the red and green, and restoring the brightest
// channel.
type rybModel struct{ rgbParent }

func (rybModel) FromParent(c Channels, p *profile.Profile) Channels {
	w := math64.Min3(c[0], c[1], c[2])
	r, g, b := c[0]-w, c[1]-w, c[2]-w
	mg := math64.Max3(r, g, b)
	y := min(r, g)
	r -= y
	g -= y
	if b > 0 && g > 0 {
		b /= 2
		g /= 2
	}
	y += g
	b += g
	if my := math64.Max3(r, y, b); my > 0 {
		n := mg / my
		r, y, b = r*n, y*n, b*n
	}
	return Channels{r + w, y + w, b + w}
}

func (rybModel) ToParent(c Channels, p *profile.Profile) Channels {
	w := math64.Min3(c[0], c[1], c[2])
	r, y, b := c[0]-w, c[1]-w, c[2]-w
	my := math64.Max3(r, y, b)
	g := min(y, b)
	y -= g
	b -= g
	if b > 0 && g > 0 {
		b *= 2
		g *= 2
	}
	r += y
	g += y
	if mg := math64.Max3(r, g, b); mg > 0 {
		n := my / mg
		r, g, b = r*n, g*n, b*n
	}
	return Channels{r + w, g + w, b + w}
}
