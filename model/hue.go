// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"

	"cogentcore.org/colorspace/math64"
	"cogentcore.org/colorspace/profile"
)

// hexHue returns the hexcone hue angle in degrees of the given
// RGB values, which have the given max and chroma d > 0.
func hexHue(r, g, b, max, d float64) float64 {
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}
	return math64.NormalizeHue(h * 60)
}

// hexcone returns the RGB values of the given hue angle in degrees
// at the given chroma, with a minimum of zero.
func hexcone(h, c float64) math64.Vector3 {
	hp := math64.NormalizeHue(h) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	switch int(hp) {
	case 0:
		return math64.Vec3(c, x, 0)
	case 1:
		return math64.Vec3(x, c, 0)
	case 2:
		return math64.Vec3(0, c, x)
	case 3:
		return math64.Vec3(0, x, c)
	case 4:
		return math64.Vec3(x, 0, c)
	default:
		return math64.Vec3(c, 0, x)
	}
}

// hslModel is HSL as in CSS, on the encoded RGB signal.
type hslModel struct{ rgbParent }

func (hslModel) FromParent(c Channels, p *profile.Profile) Channels {
	r, g, b := c[0], c[1], c[2]
	min := math64.Min3(r, g, b)
	max := math64.Max3(r, g, b)
	l := (max + min) / 2
	if min == max {
		return Channels{0, 0, 100 * l}
	}
	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	return Channels{hexHue(r, g, b, max, d), 100 * s, 100 * l}
}

func (hslModel) ToParent(c Channels, p *profile.Profile) Channels {
	h, s, l := c[0]/360, c[1]/100, c[2]/100
	if s == 0 {
		return Channels{l, l, l}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	pp := 2*l - q
	return Channels{hueToRGB(pp, q, h+1.0/3), hueToRGB(pp, q, h), hueToRGB(pp, q, h-1.0/3)}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6 {
		return p + (q-p)*6*t
	}
	if t < .5 {
		return q
	}
	if t < 2.0/3 {
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// Degenerate is the grays, whose hue is arbitrary, and the black
// and white, whose saturation is also arbitrary.
func (hslModel) Degenerate(c Channels) bool {
	return c[1] == 0 || c[2] <= 0 || c[2] >= 100
}

// hsbModel is HSB (HSV), on the encoded RGB signal.
type hsbModel struct{ rgbParent }

func (hsbModel) FromParent(c Channels, p *profile.Profile) Channels {
	r, g, b := c[0], c[1], c[2]
	max := math64.Max3(r, g, b)
	d := max - math64.Min3(r, g, b)
	if d == 0 || max == 0 {
		return Channels{0, 0, 100 * max}
	}
	return Channels{hexHue(r, g, b, max, d), 100 * d / max, 100 * max}
}

func (hsbModel) ToParent(c Channels, p *profile.Profile) Channels {
	v := c[2] / 100
	ch := v * c[1] / 100
	rgb := hexcone(c[0], ch).Add(math64.Vector3Scalar(v - ch))
	return chans(rgb)
}

// Degenerate is the grays and the black.
func (hsbModel) Degenerate(c Channels) bool {
	return c[1] == 0 || c[2] <= 0
}

// hwbModel is whiteness and blackness on a hue, saturation,
// value parent, which is [HSB] by default.
type hwbModel struct {
	parent ID
}

func (m hwbModel) Parent() ID {
	if m.parent == 0 {
		return HSB
	}
	return m.parent
}

func (hwbModel) FromParent(c Channels, p *profile.Profile) Channels {
	s, v := c[1]/100, c[2]/100
	return Channels{c[0], 100 * (1 - s) * v, 100 * (1 - v)}
}

// ToParent maps w + b >= 1 to the gray w / (w + b).
func (hwbModel) ToParent(c Channels, p *profile.Profile) Channels {
	w, b := c[1]/100, c[2]/100
	if w+b >= 1 {
		return Channels{c[0], 0, 100 * w / (w + b)}
	}
	v := 1 - b
	return Channels{c[0], 100 * (1 - w/v), 100 * v}
}

// Degenerate is the grays, including all w + b >= 1.
func (hwbModel) Degenerate(c Channels) bool {
	return c[1]+c[2] >= 100
}

// hcvModel is a hue and chroma mixed with a gray.
type hcvModel struct{ rgbParent }

func (hcvModel) FromParent(c Channels, p *profile.Profile) Channels {
	r, g, b := c[0], c[1], c[2]
	max := math64.Max3(r, g, b)
	min := math64.Min3(r, g, b)
	d := max - min
	var gray, h float64
	if d < 1 {
		gray = min / (1 - d)
	}
	if d > 0 {
		h = hexHue(r, g, b, max, d)
	}
	return Channels{h, 100 * d, 100 * gray}
}

func (hcvModel) ToParent(c Channels, p *profile.Profile) Channels {
	d, gray := c[1]/100, c[2]/100
	if d == 0 {
		return Channels{gray, gray, gray}
	}
	rgb := hexcone(c[0], d).Add(math64.Vector3Scalar((1 - d) * gray))
	return chans(rgb)
}

// Degenerate is the grays, whose hue is arbitrary, and the
// full chroma colors, whose gray is arbitrary.
func (hcvModel) Degenerate(c Channels) bool {
	return c[1] == 0 || c[1] == 100
}

// hcyModel is the HSI hue, saturation (as chroma), and intensity,
// with the intensity in [0, 255].
type hcyModel struct{ rgbParent }

func (hcyModel) FromParent(c Channels, p *profile.Profile) Channels {
	sum := c[0] + c[1] + c[2]
	if sum <= 0 {
		return Channels{}
	}
	r, g, b := c[0]/sum, c[1]/sum, c[2]/sum
	num := 0.5 * ((r - g) + (r - b))
	den := math.Sqrt((r-g)*(r-g) + (r-b)*(g-b))
	var h float64
	if den > 0 {
		h = math.Acos(math64.Clamp(num/den, -1, 1))
		if b > g {
			h = 2*math.Pi - h
		}
	}
	return Channels{math64.RadToDeg(h), 100 * (1 - 3*math64.Min3(r, g, b)), 255 * sum / 3}
}

func (hcyModel) ToParent(c Channels, p *profile.Profile) Channels {
	h := math64.DegToRad(math64.NormalizeHue(c[0]))
	s, y := c[1]/100, c[2]/255
	third := 2 * math.Pi / 3
	sector := math.Floor(h / third)
	h -= sector * third
	lo := y * (1 - s)
	hi := y * (1 + s*math.Cos(h)/math.Cos(math.Pi/3-h))
	mid := 3*y - lo - hi
	switch sector {
	case 0:
		return Channels{hi, mid, lo}
	case 1:
		return Channels{lo, hi, mid}
	default:
		return Channels{mid, lo, hi}
	}
}

// Degenerate is the grays and the black.
func (hcyModel) Degenerate(c Channels) bool {
	return c[1] == 0 || c[2] <= 0
}

// hwbslModel is [HWB] through an [HSL] parent.
type hwbslModel struct{}

func (hwbslModel) Parent() ID { return HSL }

func (hwbslModel) FromParent(c Channels, p *profile.Profile) Channels {
	s, l := c[1]/100, c[2]/100
	ch := (1 - math.Abs(2*l-1)) * s
	return Channels{c[0], 100 * (l - ch/2), 100 * (1 - l - ch/2)}
}

// ToParent maps w + b >= 1 to the gray w / (w + b).
func (hwbslModel) ToParent(c Channels, p *profile.Profile) Channels {
	w, b := c[1]/100, c[2]/100
	if w+b >= 1 {
		return Channels{c[0], 0, 100 * w / (w + b)}
	}
	l := (1 - b + w) / 2
	return Channels{c[0], 100 * math64.SafeDiv(1-b-w, 1-math.Abs(2*l-1)), 100 * l}
}

func (hwbslModel) Degenerate(c Channels) bool {
	return c[1]+c[2] >= 100
}

// Finley's perceived brightness weights.
const (
	hspR = 0.299
	hspG = 0.587
	hspB = 0.114
)

func perceivedBrightness(v math64.Vector3) float64 {
	return math.Sqrt(hspR*v.X*v.X + hspG*v.Y*v.Y + hspB*v.Z*v.Z)
}

// hspModel is Finley's hue, saturation, and perceived brightness,
// with the brightness in [0, 255].
type hspModel struct{ rgbParent }

func (hspModel) FromParent(c Channels, p *profile.Profile) Channels {
	r, g, b := c[0], c[1], c[2]
	max := math64.Max3(r, g, b)
	d := max - math64.Min3(r, g, b)
	pb := 255 * perceivedBrightness(vec(c))
	if d == 0 || max <= 0 {
		return Channels{0, 0, pb}
	}
	return Channels{hexHue(r, g, b, max, d), 100 * d / max, pb}
}

// ToParent scales the hexcone color of the hue and saturation
// to the perceived brightness.
func (hspModel) ToParent(c Channels, p *profile.Profile) Channels {
	s := c[1] / 100
	shape := hexcone(c[0], s).Add(math64.Vector3Scalar(1 - s))
	return chans(shape.MulScalar(c[2] / 255 / perceivedBrightness(shape)))
}

func (hspModel) Degenerate(c Channels) bool {
	return c[1] == 0 || c[2] <= 0
}

// The HSM mixture weights, and the unit opponent axes
// orthogonal to them and to each other.
var (
	hsmWeights = math64.Vec3(4, 2, 1).DivScalar(7)
	hsmAxis1   = math64.Vec3(3, -4, -4).DivScalar(math.Sqrt(41))
	hsmAxis2   = math64.Vec3(-4, 19, -22).DivScalar(math.Sqrt(861))
)

// hsmReach returns the largest distance from the gray (m, m, m) to the
// RGB cube within the plane of the colors with mixture m.
func hsmReach(m float64) float64 {
	w := [3]float64{hsmWeights.X, hsmWeights.Y, hsmWeights.Z}
	var reach float64
	for axis := 0; axis < 3; axis++ {
		for corner := 0; corner < 4; corner++ {
			var v [3]float64
			v[(axis+1)%3] = float64(corner & 1)
			v[(axis+2)%3] = float64(corner >> 1)
			t := (m - w[0]*v[0] - w[1]*v[1] - w[2]*v[2]) / w[axis]
			if t < 0 || t > 1 {
				continue
			}
			v[axis] = t
			reach = max(reach, math64.Vec3(v[0]-m, v[1]-m, v[2]-m).Length())
		}
	}
	return reach
}

// hsmModel is the hue, saturation, and mixture of Bezryadin et al.,
// with the mixture in [0, 255]. The saturation is relative to the
// farthest color of the cube with the same mixture.
type hsmModel struct{ rgbParent }

func (hsmModel) FromParent(c Channels, p *profile.Profile) Channels {
	v := vec(c)
	m := hsmWeights.Dot(v)
	d := v.Sub(math64.Vector3Scalar(m))
	r := d.Length()
	if r < chromaEpsilon {
		return Channels{0, 0, 255 * m}
	}
	h := math64.Atan2Deg(d.Dot(hsmAxis2), d.Dot(hsmAxis1))
	return Channels{h, 100 * math64.SafeDiv(r, hsmReach(math64.Clamp(m, 0, 1))), 255 * m}
}

func (hsmModel) ToParent(c Channels, p *profile.Profile) Channels {
	m := c[2] / 255
	r := c[1] / 100 * hsmReach(math64.Clamp(m, 0, 1))
	sin, cos := math.Sincos(math64.DegToRad(c[0]))
	d := hsmAxis1.MulScalar(r * cos).Add(hsmAxis2.MulScalar(r * sin))
	return chans(d.Add(math64.Vector3Scalar(m)))
}

// Degenerate is the grays, and the black and white, whose
// saturation is also arbitrary.
func (hsmModel) Degenerate(c Channels) bool {
	return c[1] == 0 || c[2] <= 0 || c[2] >= 255
}

// tslModel is the tint, saturation, and lightness of Terrillon et al.,
// with the tint as a fraction of a turn around the neutral chromaticity.
type tslModel struct{ rgbParent }

func (tslModel) FromParent(c Channels, p *profile.Profile) Channels {
	r, g, b := c[0], c[1], c[2]
	l := hspR*r + hspG*g + hspB*b
	sum := r + g + b
	if sum == 0 {
		return Channels{0, 0, l}
	}
	rp, gp := r/sum-1.0/3, g/sum-1.0/3
	s := math.Sqrt(9.0 / 5 * (rp*rp + gp*gp))
	if s < chromaEpsilon {
		return Channels{0, s, l}
	}
	t := math.Atan2(rp, gp)/(2*math.Pi) + 0.25
	return Channels{t - math.Floor(t), s, l}
}

func (tslModel) ToParent(c Channels, p *profile.Profile) Channels {
	t, s, l := c[0], c[1], c[2]
	rho := s * math.Sqrt(5) / 3
	sin, cos := math.Sincos(2 * math.Pi * (t - 0.25))
	r, g := 1.0/3+rho*sin, 1.0/3+rho*cos
	k := math64.SafeDiv(l, (hspR-hspB)*r+(hspG-hspB)*g+hspB)
	return Channels{k * r, k * g, k * (1 - r - g)}
}

// Degenerate is the neutrals, whose tint is arbitrary, and the black.
func (tslModel) Degenerate(c Channels) bool {
	return math.Abs(c[1]) < chromaEpsilon || c[2] <= 0
}
