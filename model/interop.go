// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"image/color"

	"cogentcore.org/colorspace/profile"
)

// FromColor returns the [RGB] color of the given [color.Color],
// with its alpha premultiplication removed and its alpha dropped.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Triple(RGB, float64(n.R), float64(n.G), float64(n.B))
}

// RGBA returns the color as an opaque [color.RGBA] encoded
// with the given profile.
func (c Color) RGBA(p *profile.Profile) (color.RGBA, error) {
	rgb, err := Convert(c, RGB, p)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{uint8(rgb.C[0]), uint8(rgb.C[1]), uint8(rgb.C[2]), 255}, nil
}

// Hex returns the color as a #rrggbb string encoded with the given profile.
func (c Color) Hex(p *profile.Profile) (string, error) {
	r, err := c.RGBA(p)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B), nil
}
