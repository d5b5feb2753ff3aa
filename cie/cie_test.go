// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/tolassert"
	"cogentcore.org/colorspace/math64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLab(t *testing.T) {
	tolassert.Equal(t, 0.887904, LabCompress(0.7))
	tolassert.Equal(t, 0.1379544, LabCompress(0.000003))
	tolassert.Equal(t, 0.216, LabUncompress(0.6))
	for _, v := range []float64{-0.1, 0, 0.001, Epsilon, 0.2, 1, 1.5} {
		tolassert.EqualTol(t, v, LabUncompress(LabCompress(v)), 1e-12)
	}

	tolassert.EqualTol(t, 2.302331, LToY(17), 1e-5)
	tolassert.EqualTol(t, 21.579498, YToL(3.4), 1e-5)
	tolassert.EqualTol(t, 50, YToL(LToY(50)), 1e-12)
	tolassert.EqualTol(t, 100, YToL(100), 1e-12)
}

func TestIlluminants(t *testing.T) {
	d65, err := Illuminant("d65")
	require.NoError(t, err)
	assert.Equal(t, D65, d65)

	w := D65.XYZ()
	tolassert.EqualTol(t, 0.95043, w.X, 1e-4)
	tolassert.EqualTol(t, 1, w.Y, 1e-15)
	tolassert.EqualTol(t, 1.08890, w.Z, 1e-4)

	_, err = Illuminant("D99")
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
	assert.Contains(t, Illuminants(), "F11")
	assert.Len(t, Illuminants(), 14)

	name, ok := IlluminantName(D50)
	assert.True(t, ok)
	assert.Equal(t, "D50", name)

	assert.NoError(t, D50.Validate())
	assert.True(t, errors.Is(XY{0.3, 0}.Validate(), errors.ErrDomain))
}

func TestXYY(t *testing.T) {
	x, y, Y := XYYFromXYZ(math64.Vec3(0.25, 0.5, 0.25))
	assert.Equal(t, 0.25, x)
	assert.Equal(t, 0.5, y)
	assert.Equal(t, 0.5, Y)
	xyz := XYZFromXYY(x, y, Y)
	tolassert.EqualTol(t, 0.25, xyz.X, 1e-15)
	tolassert.EqualTol(t, 0.25, xyz.Z, 1e-15)

	// zero sum keeps luminance with zero chromaticity
	x, y, Y = XYYFromXYZ(math64.Vec3(0.1, 0, -0.1))
	assert.Equal(t, [3]float64{0, 0, 0}, [3]float64{x, y, Y})
	assert.Equal(t, math64.Vector3{}, XYZFromXYY(0.3, 0, 0.5))
}
