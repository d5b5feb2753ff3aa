// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/iox/tomlx"
	"cogentcore.org/colorspace/base/iox/yamlx"
	"cogentcore.org/colorspace/base/tolassert"
	"cogentcore.org/colorspace/cam02"
	"cogentcore.org/colorspace/cie"
	"cogentcore.org/colorspace/math64"
	"cogentcore.org/colorspace/model"
	"cogentcore.org/colorspace/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRoot(&buf)
	root.SetArgs(append(args, "-q"))
	err := root.Execute()
	return buf.String(), err
}

func TestConvertText(t *testing.T) {
	out, err := run(t, "convert", "red", "--to", "hsl")
	require.NoError(t, err)
	assert.Equal(t, "   HSL  H 0°  S 100%  L 50%  #ff0000\n", out)

	out, err = run(t, "convert", "#808080", "-t", "hsb")
	require.NoError(t, err)
	assert.Contains(t, out, "HSB  H 0°  S 0%")
	assert.Contains(t, out, "(degenerate)")
}

func TestConvertYAML(t *testing.T) {
	out, err := run(t, "convert", "rgb(255, 0, 0)", "--to", "lab", "--format", "yaml")
	require.NoError(t, err)
	var r ColorResult
	require.NoError(t, yamlx.ReadBytes(&r, []byte(out)))
	assert.Equal(t, "Lab", r.Model)
	assert.Equal(t, "#ff0000", r.Hex)
	require.Len(t, r.Values, 3)
	tolassert.EqualTol(t, 53.2369, r.Values[0], 1e-3)
	tolassert.EqualTol(t, 80.0935, r.Values[1], 1e-3)
	tolassert.EqualTol(t, 67.2005, r.Values[2], 1e-3)
}

func TestConvertErrors(t *testing.T) {
	_, err := run(t, "convert", "nosuch")
	assert.ErrorIs(t, err, errors.ErrUnsupported)
	_, err = run(t, "convert", "red", "--to", "hsp")
	assert.ErrorIs(t, err, errors.ErrUnsupported)
	_, err = run(t, "convert", "red", "--profile", "nosuch")
	assert.ErrorIs(t, err, errors.ErrUnsupported)
	_, err = run(t, "convert", "red", "--format", "json")
	assert.ErrorIs(t, err, errors.ErrUnsupported)
	_, err = run(t, "convert")
	assert.Error(t, err)
}

func TestDelta(t *testing.T) {
	a, b := "lab(50, 2.6772, -79.7751)", "lab(50, 0, -82.7485)"
	out, err := run(t, "delta", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "ΔE ciede2000 = 2.04246")

	out, err = run(t, "delta", a, b, "--formula", "cie76", "--format", "toml")
	require.NoError(t, err)
	var r DeltaResult
	require.NoError(t, tomlx.ReadBytes(&r, []byte(out)))
	assert.Equal(t, "cie76", r.Formula)
	assert.Equal(t, "Lab", r.Reference.Model)
	tolassert.EqualTol(t, 4.00106, r.Delta, 1e-4)

	out, err = run(t, "delta", "cmyk(0, 0, 0, 0)", "cmyk(1, 2, 2, 4)", "--formula", "euclidean")
	require.NoError(t, err)
	assert.Contains(t, out, "= 5\n")

	out, err = run(t, "delta", "red", "red", "--formula", "ez")
	require.NoError(t, err)
	assert.Contains(t, out, "= 0\n")

	_, err = run(t, "delta", a, b, "--formula", "nosuch")
	assert.ErrorIs(t, err, errors.ErrUnsupported)
	_, err = run(t, "delta", "lab(0, 0, 0)", "luv(0, 0, 0)", "--formula", "euclidean")
	assert.ErrorIs(t, err, errors.ErrDomain)
}

func TestAdapt(t *testing.T) {
	out, err := run(t, "adapt", "rgb(255, 255, 255)", "--to-profile", "eciRGB", "--format", "yaml")
	require.NoError(t, err)
	var r AdaptResult
	require.NoError(t, yamlx.ReadBytes(&r, []byte(out)))
	assert.Equal(t, "sRGB", r.From)
	assert.Equal(t, "eciRGB", r.To)
	assert.Equal(t, []float64{255, 255, 255}, r.Color.Values)
	d50 := cie.D50.XYZ()
	tolassert.EqualTol(t, d50.X, r.XYZ[0], 1e-9)
	tolassert.EqualTol(t, d50.Y, r.XYZ[1], 1e-9)
	tolassert.EqualTol(t, d50.Z, r.XYZ[2], 1e-9)
	adapted := math64.Matrix3(r.Matrix).MulVector3(math64.Vector3FromVec3(r.Source))
	tolassert.EqualTol(t, d50.X, adapted.X, 1e-9)
	tolassert.EqualTol(t, d50.Z, adapted.Z, 1e-9)

	out, err = run(t, "adapt", "lab(50, 0, 0)", "--to-profile", "eciRGB")
	require.NoError(t, err)
	assert.Contains(t, out, "sRGB -> eciRGB\n")
	assert.Contains(t, out, "Lab  L 50%  a ")

	_, err = run(t, "adapt", "red")
	assert.Error(t, err)
}

func TestAppearance(t *testing.T) {
	out, err := run(t, "appearance", "white", "--format", "yaml")
	require.NoError(t, err)
	var r AppearanceResult
	require.NoError(t, yamlx.ReadBytes(&r, []byte(out)))
	assert.Equal(t, profile.SRGB.Conditions, r.Conditions)
	tolassert.EqualTol(t, 100, r.Lightness, 1e-9)

	out, err = run(t, "appearance", "red", "--surround", "dark", "--la", "64", "--format", "yaml")
	require.NoError(t, err)
	require.NoError(t, yamlx.ReadBytes(&r, []byte(out)))
	assert.Equal(t, cam02.Dark, r.Conditions.Surround)
	assert.Equal(t, 64.0, r.Conditions.AdaptingLuminance)
	assert.Equal(t, 20.0, r.Conditions.BackgroundLuminance)
	assert.Greater(t, r.Chroma, 50.0)

	out, err = run(t, "appearance", "red")
	require.NoError(t, err)
	assert.Contains(t, out, "surround average  LA 4  Yb 20")
	assert.Contains(t, out, "  J  lightness")
	assert.Contains(t, out, "  s  saturation")

	_, err = run(t, "appearance", "red", "--surround", "bright")
	assert.ErrorIs(t, err, errors.ErrUnsupported)
}

func TestModels(t *testing.T) {
	out, err := run(t, "models", "--format", "toml")
	require.NoError(t, err)
	var ms struct {
		Models []ModelResult `toml:"model"`
	}
	require.NoError(t, tomlx.ReadBytes(&ms, []byte(out)))
	require.Len(t, ms.Models, len(model.Models()))
	assert.Equal(t, "Lrgb", ms.Models[0].Name)
	assert.Empty(t, ms.Models[0].Parent)
	assert.Equal(t, "Lrgb", ms.Models[1].Parent)

	out, err = run(t, "models")
	require.NoError(t, err)
	assert.Contains(t, out, "HSLuv      LCHuv    H S L")
}

func TestProfiles(t *testing.T) {
	out, err := run(t, "profiles")
	require.NoError(t, err)
	assert.Contains(t, out, "sRGB ")
	assert.Contains(t, out, " D65 ")

	out, err = run(t, "profiles", "--format", "yaml")
	require.NoError(t, err)
	var specs struct {
		Profiles []profile.Spec `yaml:"profiles"`
	}
	require.NoError(t, yamlx.ReadBytes(&specs, []byte(out)))
	assert.Len(t, specs.Profiles, len(profile.Catalog()))
}

func TestCatalog(t *testing.T) {
	file := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, profile.Save(file, []profile.Spec{{
		Name:       "Test Gamma",
		Illuminant: "D65",
		Primaries:  [][]float64{{0.64, 0.33}, {0.3, 0.6}, {0.15, 0.06}},
		Curve:      "gamma 2.2",
	}}))

	out, err := run(t, "profiles", "--catalog", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Test Gamma")
	assert.Contains(t, out, "sRGB ")

	out, err = run(t, "convert", "rgb(0, 0, 0)", "--to", "xyz", "--catalog", file, "--profile", "test gamma")
	require.NoError(t, err)
	assert.Contains(t, out, "XYZ  X 0  Y 0  Z 0")

	_, err = run(t, "profiles", "--catalog", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
