// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tone

import (
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var curves = []Curve{
	Linear{}, Gamma{G: 2.2}, Gamma{G: 1.8}, SRGB, Rec709, Rec2020,
	SMPTE240M, ROMM, LStar, HLG{}, PQ{},
}

func TestRoundTrip(t *testing.T) {
	for _, c := range curves {
		for i := 0; i <= 1000; i++ {
			x := float64(i) / 1000
			tolassert.EqualTol(t, x, c.Decode(c.Encode(x)), 1e-8, "%s at %g", c, x)
			tolassert.EqualTol(t, -x, c.Decode(c.Encode(-x)), 1e-8, "%s at %g", c, -x)
			if _, ok := c.(Piecewise); !ok {
				tolassert.EqualTol(t, x, c.Encode(c.Decode(x)), 1e-8, "%s signal %g", c, x)
			}
		}
	}
}

func TestKnownValues(t *testing.T) {
	tolassert.EqualTol(t, 0.21404114, SRGB.Decode(0.5), 1e-8)
	tolassert.EqualTol(t, 0.73535698, SRGB.Encode(0.5), 1e-8)
	tolassert.EqualTol(t, 0.04/12.92, SRGB.Decode(0.04), 1e-12)
	tolassert.EqualTol(t, 0.081, Rec709.Encode(0.018), 1e-12)
	tolassert.EqualTol(t, 0.5, HLG{}.Encode(1.0/12), 1e-12)
	tolassert.EqualTol(t, 1, HLG{}.Encode(1), 1e-6)
	tolassert.EqualTol(t, 1, PQ{}.Encode(1), 1e-12)
	// 100 cd/m² is about 50.8% of the PQ signal
	tolassert.EqualTol(t, 0.508078, PQ{}.Encode(0.01), 1e-5)
	tolassert.EqualTol(t, 0.08, LStar.Encode(216.0/24389), 1e-12)
	tolassert.EqualTol(t, 0.5, Gamma{G: 2}.Decode(Gamma{G: 2}.Encode(0.5)), 1e-15)
	assert.Equal(t, 0.0, SRGB.Encode(0))
}

func TestPQPeak(t *testing.T) {
	// signals beyond the peak clamp rather than leaving the quantizer domain
	for _, v := range []float64{1, 1.5, 2, 2.5, 100} {
		tolassert.EqualTol(t, 1, PQ{}.Decode(v), 1e-12, v)
		tolassert.EqualTol(t, -1, PQ{}.Decode(-v), 1e-12, -v)
		tolassert.EqualTol(t, 1, PQ{}.Encode(v), 1e-12, v)
	}
	tolassert.EqualTol(t, 1, PQ{}.Decode(PQ{}.Encode(3)), 1e-12)
}

func TestMonotonic(t *testing.T) {
	for _, c := range curves {
		prev := c.Encode(0)
		for i := 1; i <= 500; i++ {
			v := c.Encode(float64(i) / 500)
			assert.GreaterOrEqual(t, v, prev-3e-8, "%s", c)
			prev = v
		}
	}
}

func TestParse(t *testing.T) {
	for _, c := range curves {
		p, err := Parse(c.String())
		require.NoError(t, err, c.String())
		assert.Equal(t, c, p)
	}
	p, err := Parse("Piecewise 2.4 0.055 0.0031308 12.92")
	require.NoError(t, err)
	assert.Equal(t, SRGB, p)
	assert.Equal(t, "gamma 2.6", Gamma{G: 2.6}.String())
	assert.Equal(t, "piecewise 2 0.1 0.01 5", Piecewise{2, 0.1, 0.01, 5}.String())

	_, err = Parse("gamma")
	assert.True(t, errors.Is(err, errors.ErrDomain))
	_, err = Parse("gamma -1")
	assert.True(t, errors.Is(err, errors.ErrDomain))
	_, err = Parse("srgb 2")
	assert.True(t, errors.Is(err, errors.ErrDomain))
	_, err = Parse("gamma x")
	assert.True(t, errors.Is(err, errors.ErrDomain))
	_, err = Parse("cubic")
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
	_, err = Parse("")
	assert.True(t, errors.Is(err, errors.ErrDomain))
	assert.Error(t, Validate(nil))
}
