// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model provides the color models and the conversions between
// them. Every model converts to and from linear RGB ([Lrgb]) relative
// to a [profile.Profile], either directly ([Hubbed]) or through a chain
// of parent models ([Derived]), so that any two models can be converted
// through the linear RGB hub.
package model

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/math64"
	"cogentcore.org/colorspace/profile"
)

// ID identifies a color model.
type ID int32

func (id ID) String() string {
	if d, ok := lookupID(id); ok {
		return d.Name
	}
	return "ID(" + strconv.Itoa(int(id)) + ")"
}

// Channels are the channel values of a color. Only the first
// [Descriptor.Arity] channels of its model are meaningful.
type Channels [4]float64

// Color is a color value in a given model. Colors are values:
// conversions always return a new Color.
type Color struct {
	Model ID
	C     Channels
}

// New returns a new color of the given model with the given channel
// values, which must match the arity of the model.
func New(id ID, c ...float64) (Color, error) {
	d, ok := lookupID(id)
	if !ok {
		return Color{}, errors.NewKind(errors.Unsupported, "model.New", id.String(), "unknown model")
	}
	if len(c) != d.Arity() {
		return Color{}, errors.NewKind(errors.Domain, "model.New", d.Name, fmt.Sprintf("takes %d channels, not %d", d.Arity(), len(c)))
	}
	col := Color{Model: id}
	copy(col.C[:], c)
	return col, nil
}

// Pair returns a color of a two channel model.
func Pair(id ID, a, b float64) Color {
	return Color{Model: id, C: Channels{a, b}}
}

// Triple returns a color of a three channel model.
func Triple(id ID, a, b, c float64) Color {
	return Color{Model: id, C: Channels{a, b, c}}
}

// Quad returns a color of a four channel model.
func Quad(id ID, a, b, c, d float64) Color {
	return Color{Model: id, C: Channels{a, b, c, d}}
}

// Arity returns the number of meaningful channels of the color.
func (c Color) Arity() int {
	if d, ok := lookupID(c.Model); ok {
		return d.Arity()
	}
	return 0
}

// Values returns the meaningful channel values of the color.
func (c Color) Values() []float64 {
	return append([]float64(nil), c.C[:c.Arity()]...)
}

// String returns the color in the functional notation accepted by [Parse],
// such as hsl(120, 100, 50).
func (c Color) String() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(c.Model.String()))
	b.WriteByte('(')
	for i, v := range c.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', 6, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// Kind is the kind of range of a component.
type Kind int32

const (
	// Nominal components have an informative range; values
	// outside of it are allowed.
	Nominal Kind = iota

	// Bounded components must be within their range.
	Bounded

	// Periodic components are angles that wrap into their range.
	Periodic
)

func (k Kind) String() string {
	switch k {
	case Nominal:
		return "nominal"
	case Bounded:
		return "bounded"
	case Periodic:
		return "periodic"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Component describes one channel of a model.
type Component struct {
	Name   string
	Symbol string
	Min    float64
	Max    float64

	// Unit is the unit of the values, such as ° or %, if any.
	Unit string
	Kind Kind
}

// Descriptor describes a model, independent of any color.
type Descriptor struct {
	ID          ID
	Name        string
	Description string
	Components  []Component

	// Parent is the model that this model is converted through,
	// which is [Lrgb] for a [Hubbed] model, and zero for [Lrgb] itself.
	Parent ID

	// Quantized models have integer channel values, which are rounded
	// to the nearest integer and clamped to the component range.
	Quantized bool
}

// Arity returns the number of channels of the model.
func (d *Descriptor) Arity() int { return len(d.Components) }

// Hubbed is a model that converts directly to and from linear RGB.
type Hubbed interface {
	ToHub(c Channels, p *profile.Profile) math64.Vector3
	FromHub(rgb math64.Vector3, p *profile.Profile) Channels
}

// Derived is a model that converts to and from a parent model.
type Derived interface {
	Parent() ID
	ToParent(c Channels, p *profile.Profile) Channels
	FromParent(c Channels, p *profile.Profile) Channels
}

// partial is implemented by derived models that are not defined for
// every channel value within range, such as appearance models with
// chromas that no color reaches. ToHub uses TryToParent in place of
// ToParent for them.
type partial interface {
	TryToParent(c Channels, p *profile.Profile) (Channels, error)
}

// degenerator is implemented by models that have degenerate loci,
// where different channel values denote the same color.
type degenerator interface {
	Degenerate(c Channels) bool
}
