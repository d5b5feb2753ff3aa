// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"golang.org/x/image/colornames"
)

// Parse parses a color from one of the following forms:
//   - the functional notation of [Color.String], such as lab(53.2, 80.1, 67.2),
//     with the model given by name or alias and the values separated by
//     commas or spaces
//   - a #rgb, #rrggbb, or #rrggbbaa hex string, as an [RGB] color
//     with any alpha dropped
//   - an SVG 1.1 color name, such as aliceblue, as an [RGB] color
func Parse(s string) (Color, error) {
	str := strings.TrimSpace(s)
	lstr := strings.ToLower(str)
	switch {
	case lstr == "":
		return Color{}, errors.NewKind(errors.Domain, "model.Parse", s, "empty color")
	case lstr[0] == '#':
		return parseHex(lstr[1:], s)
	case strings.Contains(lstr, "("):
		return parseFunc(lstr, s)
	}
	c, ok := colornames.Map[lstr]
	if !ok {
		return Color{}, errors.NewKind(errors.Unsupported, "model.Parse", s, "unknown color name")
	}
	return FromColor(c), nil
}

// MustParse is [Parse] that panics on an error, for static colors.
func MustParse(s string) Color {
	return errors.Must1(Parse(s))
}

func parseHex(hex, s string) (Color, error) {
	var digits int
	switch len(hex) {
	case 3:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return Color{}, errors.NewKind(errors.Domain, "model.Parse", s, "hex color must have 3, 6, or 8 digits")
	}
	var c Color
	c.Model = RGB
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return Color{}, errors.Errorf(errors.Domain, "model.Parse", s, err)
		}
		if digits == 1 {
			v |= v << 4
		}
		c.C[i] = float64(v)
	}
	return c, nil
}

func parseFunc(lstr, s string) (Color, error) {
	open := strings.Index(lstr, "(")
	if !strings.HasSuffix(lstr, ")") {
		return Color{}, errors.NewKind(errors.Domain, "model.Parse", s, "missing closing parenthesis")
	}
	id, err := Lookup(lstr[:open])
	if err != nil {
		return Color{}, err
	}
	fields := strings.FieldsFunc(lstr[open+1:len(lstr)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSuffix(f, "%"), "°"), 64)
		if err != nil {
			return Color{}, errors.NewKind(errors.Domain, "model.Parse", s, fmt.Sprintf("invalid value %q", f))
		}
		vals[i] = v
	}
	return New(id, vals...)
}
