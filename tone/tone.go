// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tone provides tone response curves (transfer functions),
// the reversible mappings between linear light and a device signal.
package tone

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/colorspace/base/errors"
)

// Curve is a reversible tone response curve.
// Decode(Encode(x)) equals x to within floating point error over
// the domain of the curve. Values below zero are handled by odd
// symmetry, so that out-of-gamut linear values survive encoding.
type Curve interface {
	fmt.Stringer

	// Encode maps linear light to the device signal.
	Encode(linear float64) float64

	// Decode maps the device signal to linear light.
	Decode(signal float64) float64
}

// odd applies f to |x| and restores the sign of x.
func odd(x float64, f func(float64) float64) float64 {
	if x < 0 {
		return -f(-x)
	}
	return f(x)
}

// Linear is the identity curve.
type Linear struct{}

func (Linear) Encode(v float64) float64 { return v }
func (Linear) Decode(v float64) float64 { return v }
func (Linear) String() string           { return "linear" }

// Gamma is a pure power law curve: signal = linear^(1/G).
type Gamma struct {
	G float64
}

func (g Gamma) Encode(v float64) float64 {
	return odd(v, func(x float64) float64 { return math.Pow(x, 1/g.G) })
}

func (g Gamma) Decode(v float64) float64 {
	return odd(v, func(x float64) float64 { return math.Pow(x, g.G) })
}

func (g Gamma) String() string {
	return "gamma " + strconv.FormatFloat(g.G, 'g', -1, 64)
}

// Piecewise is the sRGB style curve with a linear segment of the given
// Slope below Threshold (in linear light), and the power law
// (1+Offset)·linear^(1/Gamma) - Offset above it.
type Piecewise struct {
	Gamma     float64
	Offset    float64
	Threshold float64
	Slope     float64
}

// Standard piecewise curves.
var (
	// SRGB is the IEC 61966-2-1 curve.
	SRGB = Piecewise{Gamma: 2.4, Offset: 0.055, Threshold: 0.0031308, Slope: 12.92}

	// Rec709 is the ITU-R BT.709 and BT.601 camera curve.
	Rec709 = Piecewise{Gamma: 1 / 0.45, Offset: 0.099, Threshold: 0.018, Slope: 4.5}

	// Rec2020 is the ITU-R BT.2020 curve at 12 bit precision.
	Rec2020 = Piecewise{Gamma: 1 / 0.45, Offset: 0.09929682680944, Threshold: 0.018053968510807, Slope: 4.5}

	// SMPTE240M is the SMPTE 240M curve.
	SMPTE240M = Piecewise{Gamma: 1 / 0.45, Offset: 0.1115, Threshold: 0.0228, Slope: 4}

	// ROMM is the ROMM RGB (ProPhoto) curve.
	ROMM = Piecewise{Gamma: 1.8, Offset: 0, Threshold: 1.0 / 512, Slope: 16}

	// LStar is the CIE L* curve used by eciRGB v2.
	LStar = Piecewise{Gamma: 3, Offset: 0.16, Threshold: 216.0 / 24389, Slope: 24389.0 / 2700}
)

// DecodeThreshold is the signal value where the linear segment ends.
func (c Piecewise) DecodeThreshold() float64 {
	return c.Threshold * c.Slope
}

func (c Piecewise) Encode(v float64) float64 {
	return odd(v, func(x float64) float64 {
		if x <= c.Threshold {
			return x * c.Slope
		}
		return (1+c.Offset)*math.Pow(x, 1/c.Gamma) - c.Offset
	})
}

func (c Piecewise) Decode(v float64) float64 {
	return odd(v, func(x float64) float64 {
		if x <= c.DecodeThreshold() {
			return x / c.Slope
		}
		return math.Pow((x+c.Offset)/(1+c.Offset), c.Gamma)
	})
}

func (c Piecewise) String() string {
	switch c {
	case SRGB:
		return "srgb"
	case Rec709:
		return "rec709"
	case Rec2020:
		return "rec2020"
	case SMPTE240M:
		return "smpte240m"
	case ROMM:
		return "romm"
	case LStar:
		return "lstar"
	}
	return fmt.Sprintf("piecewise %g %g %g %g", c.Gamma, c.Offset, c.Threshold, c.Slope)
}

// HLG is the ITU-R BT.2100 hybrid log-gamma curve, mapping normalized
// scene linear light in [0, 1] to a signal in [0, 1].
type HLG struct{}

const (
	hlgA = 0.17883277
	hlgB = 1 - 4*hlgA
)

// hlgC is 0.5 - a·ln(4a).
var hlgC = 0.5 - hlgA*math.Log(4*hlgA)

func (HLG) Encode(v float64) float64 {
	return odd(v, func(x float64) float64 {
		if x <= 1.0/12 {
			return math.Sqrt(3 * x)
		}
		return hlgA*math.Log(12*x-hlgB) + hlgC
	})
}

func (HLG) Decode(v float64) float64 {
	return odd(v, func(x float64) float64 {
		if x <= 0.5 {
			return x * x / 3
		}
		return (math.Exp((x-hlgC)/hlgA) + hlgB) / 12
	})
}

func (HLG) String() string { return "hlg" }

// PQ is the SMPTE ST 2084 perceptual quantizer, mapping linear light
// normalized to 10000 cd/m² onto a signal in [0, 1]. Both directions
// clamp their magnitude to 1, the peak of the quantizer.
type PQ struct{}

const (
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32
)

func (PQ) Encode(v float64) float64 {
	return odd(v, func(x float64) float64 {
		p := math.Pow(min(x, 1), pqM1)
		return math.Pow((pqC1+pqC2*p)/(1+pqC3*p), pqM2)
	})
}

func (PQ) Decode(v float64) float64 {
	return odd(v, func(x float64) float64 {
		p := math.Pow(min(x, 1), 1/pqM2)
		return math.Pow(max(p-pqC1, 0)/(pqC2-pqC3*p), 1/pqM1)
	})
}

func (PQ) String() string { return "pq" }

// Parse returns the curve described by the given string form, as
// produced by the String method of each curve:
//
//	linear | srgb | rec709 | rec2020 | smpte240m | romm | lstar | hlg | pq
//	gamma <g>
//	piecewise <gamma> <offset> <threshold> <slope>
func Parse(s string) (Curve, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) == 0 {
		return nil, errors.NewKind(errors.Domain, "tone.Parse", s, "empty curve")
	}
	nums := make([]float64, len(fields)-1)
	for i, f := range fields[1:] {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Errorf(errors.Domain, "tone.Parse", s, err)
		}
		nums[i] = n
	}
	want := func(n int) error {
		if len(nums) != n {
			return errors.NewKind(errors.Domain, "tone.Parse", s, fmt.Sprintf("%s takes %d parameters", fields[0], n))
		}
		return nil
	}
	if fields[0] != "gamma" && fields[0] != "piecewise" {
		if err := want(0); err != nil {
			return nil, err
		}
	}
	var c Curve
	switch fields[0] {
	case "linear":
		c = Linear{}
	case "srgb":
		c = SRGB
	case "rec709":
		c = Rec709
	case "rec2020":
		c = Rec2020
	case "smpte240m":
		c = SMPTE240M
	case "romm":
		c = ROMM
	case "lstar":
		c = LStar
	case "hlg":
		c = HLG{}
	case "pq":
		c = PQ{}
	case "gamma":
		if err := want(1); err != nil {
			return nil, err
		}
		c = Gamma{G: nums[0]}
	case "piecewise":
		if err := want(4); err != nil {
			return nil, err
		}
		c = Piecewise{Gamma: nums[0], Offset: nums[1], Threshold: nums[2], Slope: nums[3]}
	default:
		return nil, errors.NewKind(errors.Unsupported, "tone.Parse", s, "unknown curve")
	}
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate returns a [errors.Domain] error if the parameters of
// the given curve cannot produce a reversible mapping.
func Validate(c Curve) error {
	bad := func(msg string) error {
		return errors.NewKind(errors.Domain, "tone.Validate", c.String(), msg)
	}
	switch c := c.(type) {
	case nil:
		return errors.NewKind(errors.Domain, "tone.Validate", "", "nil curve")
	case Gamma:
		if !(c.G > 0) || math.IsInf(c.G, 0) {
			return bad("gamma must be positive")
		}
	case Piecewise:
		if !(c.Gamma > 0) || math.IsInf(c.Gamma, 0) {
			return bad("gamma must be positive")
		}
		if !(c.Slope > 0) || c.Threshold < 0 || c.Offset <= -1 {
			return bad("slope must be positive, threshold non-negative, and offset above -1")
		}
	}
	return nil
}
