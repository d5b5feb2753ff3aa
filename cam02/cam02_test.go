// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam02

import (
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/tolassert"
	"cogentcore.org/colorspace/cie"
	"cogentcore.org/colorspace/math64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference(t *testing.T) {
	// CIE 159:2004 worked examples
	white := math64.Vec3(95.05, 100, 108.88)
	vw, err := NewView(white, Conditions{Surround: Average, AdaptingLuminance: 318.31, BackgroundLuminance: 20})
	require.NoError(t, err)
	cam := FromXYZ(math64.Vec3(0.1901, 0.20, 0.2178), vw)
	tolassert.EqualTol(t, 41.731091, cam.Lightness, 1e-5)
	tolassert.EqualTol(t, 0.104708, cam.Chroma, 1e-5)
	tolassert.EqualTol(t, 219.048433, cam.Hue, 1e-4)
	tolassert.EqualTol(t, 278.060736, cam.HueComposition, 1e-4)
	tolassert.EqualTol(t, 195.371326, cam.Brightness, 1e-4)
	tolassert.EqualTol(t, 0.108842, cam.Colorfulness, 1e-5)
	tolassert.EqualTol(t, 2.360305, cam.Saturation, 1e-5)

	vw, err = NewView(white, Conditions{Surround: Average, AdaptingLuminance: 31.83, BackgroundLuminance: 20})
	require.NoError(t, err)
	cam = FromXYZ(math64.Vec3(0.5706, 0.4306, 0.3196), vw)
	tolassert.EqualTol(t, 65.955231, cam.Lightness, 1e-5)
	tolassert.EqualTol(t, 48.570469, cam.Chroma, 1e-5)
	tolassert.EqualTol(t, 19.557378, cam.Hue, 1e-5)
	tolassert.EqualTol(t, 399.388436, cam.HueComposition, 1e-4)
	tolassert.EqualTol(t, 152.671222, cam.Brightness, 1e-4)
	tolassert.EqualTol(t, 41.673137, cam.Colorfulness, 1e-5)
	tolassert.EqualTol(t, 52.245574, cam.Saturation, 1e-5)
}

func TestWhite(t *testing.T) {
	cam := FromXYZ(cie.D65.XYZ(), StdView)
	tolassert.EqualTol(t, 100, cam.Lightness, 1e-9)
	assert.Less(t, cam.Chroma, 4.0)
	assert.Greater(t, cam.Chroma, 0.0)

	black := FromXYZ(math64.Vector3{}, StdView)
	tolassert.EqualTol(t, 0, black.Lightness, 1e-9)
	assertVec(t, math64.Vector3{}, xyzOf(t, black, StdView), 1e-12)
}

func assertVec(t *testing.T, want, got math64.Vector3, tol float64, msg ...any) {
	t.Helper()
	tolassert.EqualTol(t, want.X, got.X, tol, msg...)
	tolassert.EqualTol(t, want.Y, got.Y, tol, msg...)
	tolassert.EqualTol(t, want.Z, got.Z, tol, msg...)
}

func xyzOf(t *testing.T, cam CAM, vw *View) math64.Vector3 {
	t.Helper()
	xyz, err := cam.XYZ(vw)
	require.NoError(t, err, cam)
	return xyz
}

func grid() []math64.Vector3 {
	var vs []math64.Vector3
	steps := []float64{0.02, 0.2, 0.45, 0.75, 1}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				// mix sRGB-like primaries so every sample is a plausible surface
				vs = append(vs, math64.Vec3(
					0.4124*r+0.3576*g+0.1805*b,
					0.2126*r+0.7152*g+0.0722*b,
					0.0193*r+0.1192*g+0.9505*b,
				))
			}
		}
	}
	return vs
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []Surround{Average, Dim, Dark} {
		cond := DefaultConditions()
		cond.Surround = s
		vw, err := NewView(cie.D65.XYZ(), cond)
		require.NoError(t, err)
		for _, xyz := range grid() {
			cam := FromXYZ(xyz, vw)
			assertVec(t, xyz, xyzOf(t, cam, vw), 1e-9, s, xyz)
		}
	}
}

func TestSolvers(t *testing.T) {
	for _, xyz := range grid() {
		want := FromXYZ(xyz, StdView)
		solved := map[string]CAM{
			"JCh": FromJCh(want.Lightness, want.Chroma, want.Hue, StdView),
			"JMh": FromJMh(want.Lightness, want.Colorfulness, want.Hue, StdView),
			"Jsh": FromJsh(want.Lightness, want.Saturation, want.Hue, StdView),
			"QCh": FromQCh(want.Brightness, want.Chroma, want.Hue, StdView),
			"QMh": FromQMh(want.Brightness, want.Colorfulness, want.Hue, StdView),
			"Qsh": FromQsh(want.Brightness, want.Saturation, want.Hue, StdView),
		}
		for name, got := range solved {
			tolassert.EqualTol(t, want.Lightness, got.Lightness, 1e-9, name)
			tolassert.EqualTol(t, want.Chroma, got.Chroma, 1e-9, name)
			tolassert.EqualTol(t, want.Brightness, got.Brightness, 1e-9, name)
			tolassert.EqualTol(t, want.Colorfulness, got.Colorfulness, 1e-9, name)
			tolassert.EqualTol(t, want.Saturation, got.Saturation, 1e-9, name)
			tolassert.EqualTol(t, want.HueComposition, got.HueComposition, 1e-9, name)
			assertVec(t, xyz, xyzOf(t, got, StdView), 1e-9, name)
		}
	}
}

func TestUnreachable(t *testing.T) {
	// the chroma denominator vanishes along hues near 264° at high chroma
	for _, h := range []float64{252, 264, 276} {
		_, err := FromJCh(50, 1e4, h, StdView).XYZ(StdView)
		assert.True(t, errors.Is(err, errors.ErrDomain), h)
	}
	for _, cam := range []CAM{FromJCh(50, -1, 120, StdView), FromJMh(50, 1e6, 264, StdView)} {
		_, err := cam.XYZ(StdView)
		assert.True(t, errors.Is(err, errors.ErrDomain), cam)
	}

	// a moderate chroma at the same hue is reachable and round trips
	want := FromJCh(50, 20, 264, StdView)
	got := FromXYZ(xyzOf(t, want, StdView), StdView)
	tolassert.EqualTol(t, want.Lightness, got.Lightness, 1e-9)
	tolassert.EqualTol(t, want.Chroma, got.Chroma, 1e-9)
	tolassert.EqualTol(t, want.Hue, got.Hue, 1e-9)
}

func TestHueComposition(t *testing.T) {
	tolassert.Equal(t, 0, HueComposition(20.14))
	tolassert.Equal(t, 100, HueComposition(90))
	tolassert.Equal(t, 200, HueComposition(164.25))
	tolassert.Equal(t, 300, HueComposition(237.53))
	for h := 0.0; h < 360; h += 7.5 {
		H := HueComposition(h)
		assert.GreaterOrEqual(t, H, 0.0)
		assert.Less(t, H, 400.0)
		tolassert.EqualTol(t, h, HueAngle(H), 1e-9, h)
	}
}

func TestResponseCompression(t *testing.T) {
	fl := LuminanceAdaptation(64)
	for _, v := range []float64{-50, -1, 0, 0.5, 10, 100, 1000} {
		tolassert.EqualTol(t, v, ResponseDecompression(ResponseCompression(v, fl), fl), 1e-9, v)
	}
	tolassert.EqualTol(t, 0.1, ResponseCompression(0, fl), 1e-15)
}

func TestView(t *testing.T) {
	tolassert.EqualTol(t, 100, StdView.WhitePoint.Y, 1e-12)
	tolassert.EqualTol(t, 0.2, StdView.N, 1e-12)
	tolassert.EqualTol(t, 1.0003, StdView.Nbb, 1e-4)

	_, err := NewView(cie.D65.XYZ(), Conditions{AdaptingLuminance: 0, BackgroundLuminance: 20})
	assert.True(t, errors.Is(err, errors.ErrDomain))
	_, err = NewView(cie.D65.XYZ(), Conditions{AdaptingLuminance: 4, BackgroundLuminance: -1})
	assert.True(t, errors.Is(err, errors.ErrDomain))
	_, err = NewView(math64.Vec3(0.9, 0, 1), DefaultConditions())
	assert.True(t, errors.Is(err, errors.ErrDomain))
	_, err = NewView(cie.D65.XYZ(), Conditions{Surround: 7, AdaptingLuminance: 4, BackgroundLuminance: 20})
	assert.True(t, errors.Is(err, errors.ErrDomain))

	vw, err := NewView(cie.D65.XYZ(), Conditions{AdaptingLuminance: 4, BackgroundLuminance: 20, Discounting: true})
	require.NoError(t, err)
	assert.Equal(t, 1.0, vw.D)
}

func TestSurround(t *testing.T) {
	s, err := ParseSurround("Dim")
	require.NoError(t, err)
	assert.Equal(t, Dim, s)
	b, err := Dark.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "dark", string(b))
	require.NoError(t, s.UnmarshalText([]byte("average")))
	assert.Equal(t, Average, s)
	_, err = ParseSurround("bright")
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
}
