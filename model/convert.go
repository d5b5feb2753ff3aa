// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"math"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/math64"
	"cogentcore.org/colorspace/profile"
)

// normalize validates the channels of the given color against its model
// and returns them with periodic components wrapped into range and the
// channels beyond the arity of the model zeroed.
func normalize(op string, c Color) (*entry, Channels, error) {
	d, ok := lookupID(c.Model)
	if !ok {
		return nil, Channels{}, errors.NewKind(errors.Unsupported, op, c.Model.String(), "unknown model")
	}
	var ch Channels
	for i, comp := range d.Components {
		v := c.C[i]
		if !math64.Finite(v) {
			return nil, Channels{}, errors.NewKind(errors.Domain, op, d.Name, fmt.Sprintf("%s is not finite", comp.Name))
		}
		switch comp.Kind {
		case Bounded:
			if v < comp.Min || v > comp.Max {
				return nil, Channels{}, errors.NewKind(errors.Domain, op, d.Name, fmt.Sprintf("%s %g is outside [%g, %g]", comp.Name, v, comp.Min, comp.Max))
			}
		case Periodic:
			v = wrap(v, comp.Min, comp.Max)
		}
		ch[i] = v
	}
	return registry[c.Model], ch, nil
}

// wrap wraps v into [min, max).
func wrap(v, min, max float64) float64 {
	span := max - min
	v = math.Mod(v-min, span)
	if v < 0 {
		v += span
	}
	if v >= span {
		v = 0
	}
	return v + min
}

// finish sanitizes the channels output for the given model, wraps
// periodic components, and quantizes the channels of quantized models.
func finish(d *Descriptor, ch Channels) Channels {
	var out Channels
	for i, comp := range d.Components {
		v := math64.Sanitize(ch[i])
		switch {
		case d.Quantized:
			v = math64.Clamp(math64.Round(v), comp.Min, comp.Max)
		case comp.Kind == Periodic:
			v = wrap(v, comp.Min, comp.Max)
		}
		out[i] = v
	}
	return out
}

func sanitize(ch Channels) Channels {
	for i, v := range ch {
		ch[i] = math64.Sanitize(v)
	}
	return ch
}

// orSRGB returns p, or [profile.SRGB] if p is nil.
func orSRGB(p *profile.Profile) *profile.Profile {
	if p == nil {
		return profile.SRGB
	}
	return p
}

// ToHub converts the given color to linear RGB relative to the given profile,
// which is [profile.SRGB] if nil.
func ToHub(c Color, p *profile.Profile) (math64.Vector3, error) {
	p = orSRGB(p)
	e, ch, err := normalize("model.ToHub", c)
	if err != nil {
		return math64.Vector3{}, err
	}
	for _, id := range e.chain {
		switch m := registry[id].impl.(type) {
		case Hubbed:
			return m.ToHub(ch, p).Sanitize(), nil
		case partial:
			pc, err := m.TryToParent(ch, p)
			if err != nil {
				return math64.Vector3{}, errors.Errorf(errors.KindOf(err), "model.ToHub", e.desc.Name, err)
			}
			ch = sanitize(pc)
		case Derived:
			ch = sanitize(m.ToParent(ch, p))
		}
	}
	return math64.Vector3{}, errors.NewKind(errors.Unsupported, "model.ToHub", e.desc.Name, "model does not reach the hub")
}

// FromHub converts the given linear RGB, relative to the given profile,
// to a color of the given model.
func FromHub(rgb math64.Vector3, id ID, p *profile.Profile) (Color, error) {
	if _, ok := lookupID(id); !ok {
		return Color{}, errors.NewKind(errors.Unsupported, "model.FromHub", id.String(), "unknown model")
	}
	if !rgb.IsFinite() {
		return Color{}, errors.NewKind(errors.Domain, "model.FromHub", id.String(), "linear RGB is not finite")
	}
	p = orSRGB(p)
	e := registry[id]
	n := len(e.chain)
	ch := registry[e.chain[n-1]].impl.(Hubbed).FromHub(rgb, p)
	for i := n - 2; i >= 0; i-- {
		ch = finish(&registry[e.chain[i+1]].desc, ch)
		ch = registry[e.chain[i]].impl.(Derived).FromParent(ch, p)
	}
	return Color{Model: id, C: finish(&e.desc, ch)}, nil
}

// Convert converts the given color to the given model, relative to the given profile.
func Convert(c Color, to ID, p *profile.Profile) (Color, error) {
	if c.Model == to {
		e, ch, err := normalize("model.Convert", c)
		if err != nil {
			return Color{}, err
		}
		return Color{Model: to, C: finish(&e.desc, ch)}, nil
	}
	rgb, err := ToHub(c, p)
	if err != nil {
		return Color{}, err
	}
	return FromHub(rgb, to, p)
}

// Degenerate reports whether the given color lies on a degenerate locus
// of its model, where some channel is undetermined or where other channel
// values denote the same color, such as the hue of a gray or the non
// canonical forms of CMYK. Invalid colors are not degenerate.
func Degenerate(c Color) bool {
	e, ch, err := normalize("model.Degenerate", c)
	if err != nil {
		return false
	}
	if d, ok := e.impl.(degenerator); ok {
		return d.Degenerate(ch)
	}
	return false
}

// Adapt converts the given color seen under the white of src to the
// color of the same model with the same appearance under the white of
// dst, through XYZ and the adaptation transform of src.
func Adapt(c Color, src, dst *profile.Profile) (Color, error) {
	x, err := Convert(c, XYZ, src)
	if err != nil {
		return Color{}, err
	}
	v, err := profile.Adapt(math64.Vec3(x.C[0], x.C[1], x.C[2]), src, dst)
	if err != nil {
		return Color{}, err
	}
	return Convert(Triple(XYZ, v.X, v.Y, v.Z), c.Model, dst)
}
