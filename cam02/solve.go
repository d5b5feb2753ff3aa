// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam02

import (
	"math"

	"cogentcore.org/colorspace/math64"
)

// The solvers below reconstruct a complete [CAM] from each of the
// standard projections, so that [CAM.XYZ] applies to all of them.

// FromJCh returns the CAM with the given lightness, chroma, and hue.
func FromJCh(j, c, h float64, vw *View) CAM {
	cam := CAM{Lightness: max(j, 0), Chroma: c, Hue: math64.NormalizeHue(h)}
	cam.HueComposition = HueComposition(cam.Hue)
	vw.fill(&cam)
	return cam
}

// FromJMh returns the CAM with the given lightness, colorfulness, and hue.
func FromJMh(j, m, h float64, vw *View) CAM {
	return FromJCh(j, m/vw.FLRoot, h, vw)
}

// FromJsh returns the CAM with the given lightness, saturation, and hue.
func FromJsh(j, s, h float64, vw *View) CAM {
	q := vw.BrightnessFromLightness(j)
	return FromJMh(j, colorfulness(s, q), h, vw)
}

// FromQCh returns the CAM with the given brightness, chroma, and hue.
func FromQCh(q, c, h float64, vw *View) CAM {
	return FromJCh(vw.LightnessFromBrightness(q), c, h, vw)
}

// FromQMh returns the CAM with the given brightness, colorfulness, and hue.
func FromQMh(q, m, h float64, vw *View) CAM {
	return FromJMh(vw.LightnessFromBrightness(q), m, h, vw)
}

// FromQsh returns the CAM with the given brightness, saturation, and hue.
func FromQsh(q, s, h float64, vw *View) CAM {
	return FromQMh(q, colorfulness(s, q), h, vw)
}

// colorfulness inverts s = 100·√(M/Q).
func colorfulness(s, q float64) float64 {
	return (s / 100) * (s / 100) * q
}

// BrightnessFromLightness returns the brightness Q of the given lightness J.
func (vw *View) BrightnessFromLightness(j float64) float64 {
	return (4 / vw.C) * math.Sqrt(max(j, 0)/100) * (vw.Aw + 4) * vw.FLRoot
}

// LightnessFromBrightness returns the lightness J of the given brightness Q.
func (vw *View) LightnessFromBrightness(q float64) float64 {
	r := q * vw.C / (4 * (vw.Aw + 4) * vw.FLRoot)
	return 100 * r * r
}
