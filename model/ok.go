// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/cie"
	"cogentcore.org/colorspace/math64"
	"cogentcore.org/colorspace/profile"
)

// d65 is the white that IPT, Oklab, and Jzazbz are defined for.
var d65 = cie.D65.XYZ()

// toD65 adapts the given XYZ from the profile white to D65. A white
// without a cone response in the adaptation transform maps to black.
func toD65(xyz math64.Vector3, p *profile.Profile) math64.Vector3 {
	if p.WhiteXYZ == d65 {
		return xyz
	}
	return errors.Ignore1(p.Adaptation.Matrix(p.WhiteXYZ, d65)).MulVector3(xyz)
}

// fromD65 adapts the given XYZ from D65 to the profile white.
func fromD65(xyz math64.Vector3, p *profile.Profile) math64.Vector3 {
	if p.WhiteXYZ == d65 {
		return xyz
	}
	return errors.Ignore1(p.Adaptation.Matrix(d65, p.WhiteXYZ)).MulVector3(xyz)
}

var (
	iptLMS    = math64.Mat3(0.4002, 0.7075, -0.0807, -0.2280, 1.1500, 0.0612, 0, 0, 0.9184)
	iptLMSInv = iptLMS.MustInverse()
	iptM      = math64.Mat3(0.4, 0.4, 0.2, 4.455, -4.851, 0.396, 0.8056, 0.3572, -1.1628)
	iptMInv   = iptM.MustInverse()
)

type iptModel struct{ xyzParent }

func (iptModel) FromParent(c Channels, p *profile.Profile) Channels {
	lms := iptLMS.MulVector3(toD65(vec(c), p))
	lms = lms.Apply(func(v float64) float64 { return math64.SignPow(v, 0.43) })
	return chans(iptM.MulVector3(lms))
}

func (iptModel) ToParent(c Channels, p *profile.Profile) Channels {
	lms := iptMInv.MulVector3(vec(c))
	lms = lms.Apply(func(v float64) float64 { return math64.SignPow(v, 1/0.43) })
	return chans(fromD65(iptLMSInv.MulVector3(lms), p))
}

var (
	okM1 = math64.Mat3(
		0.8189330101, 0.3618667424, -0.1288597137,
		0.0329845436, 0.9293118715, 0.0361456387,
		0.0482003018, 0.2643662691, 0.6338517070,
	)
	okM1Inv = okM1.MustInverse()
	okM2    = math64.Mat3(
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	)
	okM2Inv = okM2.MustInverse()
)

type oklabModel struct{ xyzParent }

func (oklabModel) FromParent(c Channels, p *profile.Profile) Channels {
	lms := okM1.MulVector3(toD65(vec(c), p)).Apply(math.Cbrt)
	return chans(okM2.MulVector3(lms))
}

func (oklabModel) ToParent(c Channels, p *profile.Profile) Channels {
	lms := okM2Inv.MulVector3(vec(c)).Apply(math64.Pow3)
	return chans(fromD65(okM1Inv.MulVector3(lms), p))
}

// The Okhsv and Okhsl gamut approximations of Ottosson, for the
// sRGB gamut in Oklab.

// okToLinearSRGB returns the linear sRGB of the given Oklab.
func okToLinearSRGB(l, a, b float64) math64.Vector3 {
	l_ := math64.Pow3(l + 0.3963377774*a + 0.2158037573*b)
	m_ := math64.Pow3(l - 0.1055613458*a - 0.0638541728*b)
	s_ := math64.Pow3(l - 0.0894841775*a - 1.2914855480*b)
	return math64.Vec3(
		4.0767416621*l_-3.3077115913*m_+0.2309699292*s_,
		-1.2684380046*l_+2.6097574011*m_-0.3413193965*s_,
		-0.0041960863*l_-0.7034186147*m_+1.7076147010*s_,
	)
}

// okCone returns the derivatives of the LMS cube roots along the
// hue direction a, b.
func okCone(a, b float64) (kl, km, ks float64) {
	return 0.3963377774*a + 0.2158037573*b,
		-0.1055613458*a - 0.0638541728*b,
		-0.0894841775*a - 1.2914855480*b
}

// maxSaturation returns the saturation S = C/L of the most saturated
// sRGB color with the given normalized hue direction.
func maxSaturation(a, b float64) float64 {
	var k0, k1, k2, k3, k4, wl, wm, ws float64
	switch {
	case -1.88170328*a-0.80936493*b > 1: // red
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	case 1.81444104*a-1.19445276*b > 1: // green
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	default: // blue
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, 1.7076147010
	}
	s := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	// one Halley step
	kl, km, ks := okCone(a, b)
	l_ := 1 + s*kl
	m_ := 1 + s*km
	s_ := 1 + s*ks
	f := wl*l_*l_*l_ + wm*m_*m_*m_ + ws*s_*s_*s_
	f1 := 3 * (wl*kl*l_*l_ + wm*km*m_*m_ + ws*ks*s_*s_)
	f2 := 6 * (wl*kl*kl*l_ + wm*km*km*m_ + ws*ks*ks*s_)
	return s - f*f1/(f1*f1-0.5*f*f2)
}

// cusp is the lightness and chroma of the most saturated color of a hue.
type cusp struct {
	L, C float64
}

func findCusp(a, b float64) cusp {
	s := maxSaturation(a, b)
	rgb := okToLinearSRGB(1, s*a, s*b)
	l := math.Cbrt(1 / rgb.Max())
	return cusp{l, l * s}
}

// gamutIntersection returns t such that the line from (L0, 0) to
// (L1, C1) crosses the sRGB gamut boundary at L0·(1-t) + t·L1, t·C1.
func gamutIntersection(a, b, l1, c1, l0 float64, cu cusp) float64 {
	if (l1-l0)*cu.C-(cu.L-l0)*c1 <= 0 {
		// lower half
		return cu.C * l0 / (c1*cu.L + cu.C*(l0-l1))
	}
	// upper half, with one Halley step on each channel
	t := cu.C * (l0 - 1) / (c1*(cu.L-1) + cu.C*(l0-l1))
	dl := l1 - l0
	kl, km, ks := okCone(a, b)
	ldt := dl + c1*kl
	mdt := dl + c1*km
	sdt := dl + c1*ks

	l := l0*(1-t) + t*l1
	c := t * c1
	l_ := l + c*kl
	m_ := l + c*km
	s_ := l + c*ks
	lms := math64.Vec3(l_*l_*l_, m_*m_*m_, s_*s_*s_)
	d1 := math64.Vec3(3*ldt*l_*l_, 3*mdt*m_*m_, 3*sdt*s_*s_)
	d2 := math64.Vec3(6*ldt*ldt*l_, 6*mdt*mdt*m_, 6*sdt*sdt*s_)

	step := math.Inf(1)
	for _, w := range [3]math64.Vector3{
		math64.Vec3(4.0767416621, -3.3077115913, 0.2309699292),
		math64.Vec3(-1.2684380046, 2.6097574011, -0.3413193965),
		math64.Vec3(-0.0041960863, -0.7034186147, 1.7076147010),
	} {
		f := w.Dot(lms) - 1
		f1 := w.Dot(d1)
		f2 := w.Dot(d2)
		u := f1 / (f1*f1 - 0.5*f*f2)
		if u >= 0 {
			step = min(step, -f*u)
		}
	}
	if math.IsInf(step, 1) {
		return t
	}
	return t + step
}

const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1 + toeK1) / (1 + toeK2)
)

// toe maps Oklab lightness to a lightness estimate closer to L*.
func toe(x float64) float64 {
	y := toeK3*x - toeK1
	return 0.5 * (y + math.Sqrt(y*y+4*toeK2*toeK3*x))
}

func toeInv(x float64) float64 {
	return (x*x + toeK1*x) / (toeK3 * (x + toeK2))
}

// st returns the cusp slopes S = C/L and T = C/(1-L).
func (cu cusp) st() (s, t float64) {
	return cu.C / cu.L, cu.C / (1 - cu.L)
}

// stMid returns a smooth approximation of the cusp slopes.
func stMid(a, b float64) (s, t float64) {
	s = 0.11516993 + 1/(7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))
	t = 0.11239642 + 1/(1.61320320-0.68124379*b+
		a*(0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(0.00299215-0.45399568*b-0.14661872*a))))
	return s, t
}

// chromas returns the Okhsl reference chromas at the given lightness
// and hue direction.
func chromas(l, a, b float64) (c0, cmid, cmax float64) {
	cu := findCusp(a, b)
	cmax = gamutIntersection(a, b, l, 1, l, cu)
	smax, tmax := cu.st()
	k := cmax / min(l*smax, (1-l)*tmax)

	sm, tm := stMid(a, b)
	ca := l * sm
	cb := (1 - l) * tm
	cmid = 0.9 * k * math.Sqrt(math.Sqrt(1/(1/math64.Pow2(ca*ca)+1/math64.Pow2(cb*cb))))

	ca = l * 0.4
	cb = (1 - l) * 0.8
	c0 = math.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))
	return
}

// okPolar returns the chroma and the normalized hue direction
// of the given Oklab, with a red direction for the neutrals.
func okPolar(c Channels) (ch, a, b, h float64) {
	ch = math.Hypot(c[1], c[2])
	if ch < chromaEpsilon {
		return 0, 1, 0, 0
	}
	return ch, c[1] / ch, c[2] / ch, math64.Atan2Deg(c[2], c[1])
}

func hueDir(h float64) (a, b float64) {
	b, a = math.Sincos(math64.DegToRad(h))
	return
}

const okhslMid = 0.8

type okhslModel struct{}

func (okhslModel) Parent() ID { return Oklab }

func (okhslModel) FromParent(c Channels, p *profile.Profile) Channels {
	l := c[0]
	ch, a, b, h := okPolar(c)
	if l <= 0 {
		return Channels{h, 0, 0}
	}
	if l >= 1 {
		return Channels{h, 0, 100}
	}
	c0, cmid, cmax := chromas(l, a, b)
	var s float64
	if ch < cmid {
		k1 := okhslMid * c0
		k2 := 1 - k1/cmid
		s = okhslMid * ch / (k1 + k2*ch)
	} else {
		k1 := (1 - okhslMid) * cmid * cmid / (okhslMid * okhslMid * c0)
		k2 := 1 - k1/(cmax-cmid)
		t := (ch - cmid) / (k1 + k2*(ch-cmid))
		s = okhslMid + (1-okhslMid)*t
	}
	return Channels{h, 100 * s, 100 * toe(l)}
}

func (okhslModel) ToParent(c Channels, p *profile.Profile) Channels {
	h, s, l := c[0], c[1]/100, c[2]/100
	if l >= 1 {
		return Channels{1, 0, 0}
	}
	if l <= 0 {
		return Channels{}
	}
	a, b := hueDir(h)
	ll := toeInv(l)
	c0, cmid, cmax := chromas(ll, a, b)
	var ch float64
	if s < okhslMid {
		t := s / okhslMid
		k1 := okhslMid * c0
		k2 := 1 - k1/cmid
		ch = t * k1 / (1 - k2*t)
	} else {
		t := (s - okhslMid) / (1 - okhslMid)
		k1 := (1 - okhslMid) * cmid * cmid / (okhslMid * okhslMid * c0)
		k2 := 1 - k1/(cmax-cmid)
		ch = cmid + t*k1/(1-k2*t)
	}
	return Channels{ll, ch * a, ch * b}
}

// Degenerate is the grays, the black, and the white.
func (okhslModel) Degenerate(c Channels) bool {
	return c[1] == 0 || c[2] <= 0 || c[2] >= 100
}

const okhsvS0 = 0.5

type okhsvModel struct{}

func (okhsvModel) Parent() ID { return Oklab }

// scaleL returns the lightness scale that compensates for the curved
// top of the gamut at the given v = 1 lightness and chroma.
func scaleL(lv, cv, a, b float64) float64 {
	lvt := toeInv(lv)
	cvt := cv * lvt / lv
	rgb := okToLinearSRGB(lvt, a*cvt, b*cvt)
	return math.Cbrt(1 / max(rgb.Max(), 0))
}

func (okhsvModel) FromParent(c Channels, p *profile.Profile) Channels {
	l := c[0]
	ch, a, b, h := okPolar(c)
	if l <= 0 {
		return Channels{h, 0, 0}
	}
	cu := findCusp(a, b)
	smax, tmax := cu.st()
	k := 1 - okhsvS0/smax

	t := tmax / (ch + l*tmax)
	lv := t * l
	cv := t * ch
	sl := scaleL(lv, cv, a, b)
	l /= sl
	ch /= sl
	tl := toe(l)
	ch = ch * tl / l
	l = tl

	v := l / lv
	s := (okhsvS0 + tmax) * cv / (tmax*okhsvS0 + tmax*k*cv)
	return Channels{h, 100 * s, 100 * v}
}

func (okhsvModel) ToParent(c Channels, p *profile.Profile) Channels {
	h, s, v := c[0], c[1]/100, c[2]/100
	if v <= 0 {
		return Channels{}
	}
	a, b := hueDir(h)
	cu := findCusp(a, b)
	smax, tmax := cu.st()
	k := 1 - okhsvS0/smax

	den := okhsvS0 + tmax - tmax*k*s
	lv := 1 - s*okhsvS0/den
	cv := s * tmax * okhsvS0 / den
	l := v * lv
	ch := v * cv

	ln := toeInv(l)
	ch = ch * ln / l
	l = ln

	sl := scaleL(lv, cv, a, b)
	l *= sl
	ch *= sl
	return Channels{l, ch * a, ch * b}
}

// Degenerate is the grays and the black.
func (okhsvModel) Degenerate(c Channels) bool {
	return c[1] == 0 || c[2] <= 0
}
