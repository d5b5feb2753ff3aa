// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"

	"cogentcore.org/colorspace/cam02"
	"cogentcore.org/colorspace/profile"
)

// camModel is a projection of CIECAM02 onto one of J or Q, one of
// C, M, or s, and the hue angle, under the profile view.
type camModel struct {
	xyzParent
	first, second rune
}

var camComps = map[rune]Component{
	'J': nominal("J", "Lightness", 0, 100, ""),
	'Q': nominal("Q", "Brightness", 0, 250, ""),
	'C': nominal("C", "Chroma", 0, 100, ""),
	'M': nominal("M", "Colorfulness", 0, 100, ""),
	's': nominal("s", "Saturation", 0, 100, ""),
}

func camEntry(id ID, name, desc string, first, second rune) entry {
	return entry{
		desc: Descriptor{ID: id, Name: name, Description: "CIECAM02 " + desc + " under the profile view.",
			Components: []Component{camComps[first], camComps[second], hueComp()}},
		impl: camModel{first: first, second: second},
	}
}

func (m camModel) FromParent(c Channels, p *profile.Profile) Channels {
	cam := cam02.FromXYZ(vec(c), p.View)
	out := Channels{cam.Lightness, cam.Chroma, cam.Hue}
	if m.first == 'Q' {
		out[0] = cam.Brightness
	}
	switch m.second {
	case 'M':
		out[1] = cam.Colorfulness
	case 's':
		out[1] = cam.Saturation
	}
	return out
}

// ToParent returns black for channels that no color reaches.
func (m camModel) ToParent(c Channels, p *profile.Profile) Channels {
	xyz, _ := m.TryToParent(c, p)
	return xyz
}

// TryToParent returns an [errors.Domain] error for channels that no
// color reaches under the profile view.
func (m camModel) TryToParent(c Channels, p *profile.Profile) (Channels, error) {
	vw := p.View
	var cam cam02.CAM
	switch string([]rune{m.first, m.second}) {
	case "JC":
		cam = cam02.FromJCh(c[0], c[1], c[2], vw)
	case "JM":
		cam = cam02.FromJMh(c[0], c[1], c[2], vw)
	case "Js":
		cam = cam02.FromJsh(c[0], c[1], c[2], vw)
	case "QC":
		cam = cam02.FromQCh(c[0], c[1], c[2], vw)
	case "QM":
		cam = cam02.FromQMh(c[0], c[1], c[2], vw)
	case "Qs":
		cam = cam02.FromQsh(c[0], c[1], c[2], vw)
	}
	xyz, err := cam.XYZ(vw)
	if err != nil {
		return Channels{}, err
	}
	return chans(xyz), nil
}

// Degenerate is the black, and the neutrals whose hue is arbitrary.
func (camModel) Degenerate(c Channels) bool {
	return c[0] <= 0 || math.Abs(c[1]) < chromaEpsilon
}
