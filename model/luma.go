// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"cogentcore.org/colorspace/math64"
	"cogentcore.org/colorspace/profile"
)

// matrixModel is a linear transform of the encoded RGB signal, followed
// by a scale and an offset.
type matrixModel struct {
	rgbParent
	m, inv math64.Matrix3
	scale  float64
	offset math64.Vector3
}

// newMatrixModel returns a matrix model with the given forward
// matrix, and the inverse computed from it.
func newMatrixModel(m math64.Matrix3, scale float64, offset math64.Vector3) matrixModel {
	return matrixModel{m: m, inv: m.MustInverse(), scale: scale, offset: offset}
}

func (mm matrixModel) FromParent(c Channels, p *profile.Profile) Channels {
	return chans(mm.m.MulVector3(vec(c)).MulScalar(mm.scale).Add(mm.offset))
}

func (mm matrixModel) ToParent(c Channels, p *profile.Profile) Channels {
	return chans(mm.inv.MulVector3(vec(c).Sub(mm.offset).DivScalar(mm.scale)))
}

var (
	yuvModel = newMatrixModel(math64.Mat3(
		0.299, 0.587, 0.114,
		-0.14713, -0.28886, 0.436,
		0.615, -0.51499, -0.10001,
	), 1, math64.Vector3{})

	yiqModel = newMatrixModel(math64.Mat3(
		0.299, 0.587, 0.114,
		0.596, -0.275, -0.321,
		0.212, -0.528, 0.311,
	), 1, math64.Vector3{})

	ydbdrModel = newMatrixModel(math64.Mat3(
		0.299, 0.587, 0.114,
		-0.450, -0.883, 1.333,
		-1.333, 1.116, 0.217,
	), 1, math64.Vector3{})

	yesModel = newMatrixModel(math64.Mat3(
		0.253, 0.684, 0.063,
		0.5, -0.5, 0,
		0.25, 0.25, -0.5,
	), 1, math64.Vector3{})

	ycocgModel = newMatrixModel(math64.Mat3(
		0.25, 0.5, 0.25,
		0.5, 0, -0.5,
		-0.25, 0.5, -0.25,
	), 1, math64.Vector3{})

	// rcaModel and rgvModel rotate the primaries a quarter of the way
	// to the tertiary hues between them, as bytes.
	rcaModel = newMatrixModel(math64.Mat3(
		0.75, 0, 0.25,
		0.25, 0.75, 0,
		0, 0.25, 0.75,
	), 255, math64.Vector3{})

	rgvModel = newMatrixModel(math64.Mat3(
		0.75, 0.25, 0,
		0, 0.75, 0.25,
		0.25, 0, 0.75,
	), 255, math64.Vector3{})

	// jpegModel is the full range BT.601 transform of JFIF.
	jpegModel = newMatrixModel(math64.Mat3(
		0.299, 0.587, 0.114,
		-0.168736, -0.331264, 0.5,
		0.5, -0.418688, -0.081312,
	), 255, math64.Vec3(0, 128, 128))
)

// BT.709 luma coefficients.
const (
	kr709 = 0.2126
	kb709 = 0.0722
)

// ypbprModel is the analog component form of BT.709.
type ypbprModel struct{ rgbParent }

func (ypbprModel) FromParent(c Channels, p *profile.Profile) Channels {
	r, g, b := c[0], c[1], c[2]
	y := kr709*r + (1-kr709-kb709)*g + kb709*b
	return Channels{y, 0.5 * (b - y) / (1 - kb709), 0.5 * (r - y) / (1 - kr709)}
}

func (ypbprModel) ToParent(c Channels, p *profile.Profile) Channels {
	y, pb, pr := c[0], c[1], c[2]
	r := y + 2*pr*(1-kr709)
	b := y + 2*pb*(1-kb709)
	g := (y - kr709*r - kb709*b) / (1 - kr709 - kb709)
	return Channels{r, g, b}
}

// studioModel is YPbPr scaled to the 8 bit studio range, which is
// shared by YCbCr and xvYCC; xvYCC allows the full byte range.
type studioModel struct{}

func (studioModel) Parent() ID { return YPbPr }

func (studioModel) FromParent(c Channels, p *profile.Profile) Channels {
	return Channels{16 + 219*c[0], 128 + 224*c[1], 128 + 224*c[2]}
}

func (studioModel) ToParent(c Channels, p *profile.Profile) Channels {
	return Channels{(c[0] - 16) / 219, (c[1] - 128) / 224, (c[2] - 128) / 224}
}
