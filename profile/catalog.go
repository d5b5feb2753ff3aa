// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	_ "embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/iox/tomlx"
	"cogentcore.org/colorspace/base/iox/yamlx"
	"cogentcore.org/colorspace/cam02"
	"cogentcore.org/colorspace/cat"
	"cogentcore.org/colorspace/cie"
	"cogentcore.org/colorspace/tone"
)

//go:embed profiles.toml
var builtinTOML []byte

// Spec is the serializable definition of a [Profile], as stored in
// a catalog file. The white is given either by the name of a standard
// illuminant or by its chromaticity.
type Spec struct {
	Name        string `toml:"name" yaml:"name"`
	Category    string `toml:"category,omitempty" yaml:"category,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`

	// Illuminant is the name of a standard illuminant, as in [cie.Illuminant].
	Illuminant string `toml:"illuminant,omitempty" yaml:"illuminant,omitempty"`

	// White is the [x, y] chromaticity of the white when Illuminant is empty.
	White []float64 `toml:"white,omitempty" yaml:"white,omitempty"`

	// Primaries are the [x, y] chromaticities of red, green, and blue.
	Primaries [][]float64 `toml:"primaries" yaml:"primaries"`

	// Curve is the string form of the tone curve, as in [tone.Parse].
	Curve string `toml:"curve" yaml:"curve"`

	// Adaptation is the name of the adaptation transform, as in [cat.Lookup].
	Adaptation string `toml:"adaptation,omitempty" yaml:"adaptation,omitempty"`

	Surround            cam02.Surround `toml:"surround,omitempty" yaml:"surround,omitempty"`
	AdaptingLuminance   float64        `toml:"la,omitempty" yaml:"la,omitempty"`
	BackgroundLuminance float64        `toml:"yb,omitempty" yaml:"yb,omitempty"`
}

// file is the top level of a catalog file.
type file struct {
	Profiles []Spec `toml:"profile" yaml:"profiles"`
}

// Profile validates the spec and builds the profile it defines.
func (s Spec) Profile() (*Profile, error) {
	op := "profile.Spec"
	def := Profile{Name: s.Name, Category: s.Category, Description: s.Description}
	if s.Name == "" {
		return nil, errors.NewKind(errors.Domain, op, "", "profile has no name")
	}
	var err error
	switch {
	case s.Illuminant != "":
		def.White, err = cie.Illuminant(s.Illuminant)
		if err != nil {
			return nil, err
		}
	case len(s.White) == 2:
		def.White = cie.XY{X: s.White[0], Y: s.White[1]}
	default:
		return nil, errors.NewKind(errors.Domain, op, s.Name, "white must be an illuminant name or an [x, y] pair")
	}
	if len(s.Primaries) != 3 {
		return nil, errors.NewKind(errors.Domain, op, s.Name, "primaries must be three [x, y] pairs")
	}
	xy := make([]cie.XY, 3)
	for i, p := range s.Primaries {
		if len(p) != 2 {
			return nil, errors.NewKind(errors.Domain, op, s.Name, "primaries must be three [x, y] pairs")
		}
		xy[i] = cie.XY{X: p[0], Y: p[1]}
	}
	def.Primaries = Primaries{R: xy[0], G: xy[1], B: xy[2]}
	if def.Curve, err = tone.Parse(s.Curve); err != nil {
		return nil, err
	}
	if def.Adaptation, err = cat.Lookup(s.Adaptation); err != nil {
		return nil, err
	}
	def.Conditions = cam02.DefaultConditions()
	def.Conditions.Surround = s.Surround
	if s.AdaptingLuminance != 0 {
		def.Conditions.AdaptingLuminance = s.AdaptingLuminance
	}
	if s.BackgroundLuminance != 0 {
		def.Conditions.BackgroundLuminance = s.BackgroundLuminance
	}
	return New(def)
}

// Spec returns the serializable definition of the profile.
func (p *Profile) Spec() Spec {
	s := Spec{
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Curve:       p.Curve.String(),
		Primaries: [][]float64{
			{p.Primaries.R.X, p.Primaries.R.Y},
			{p.Primaries.G.X, p.Primaries.G.Y},
			{p.Primaries.B.X, p.Primaries.B.Y},
		},
		Surround: p.Conditions.Surround,
	}
	if name, ok := cie.IlluminantName(p.White); ok {
		s.Illuminant = name
	} else {
		s.White = []float64{p.White.X, p.White.Y}
	}
	if p.Adaptation.Name != cat.Default.Name {
		s.Adaptation = p.Adaptation.Name
	}
	def := cam02.DefaultConditions()
	if p.Conditions.AdaptingLuminance != def.AdaptingLuminance {
		s.AdaptingLuminance = p.Conditions.AdaptingLuminance
	}
	if p.Conditions.BackgroundLuminance != def.BackgroundLuminance {
		s.BackgroundLuminance = p.Conditions.BackgroundLuminance
	}
	return s
}

// Set is a collection of profiles indexed by case insensitive name.
type Set struct {
	byName map[string]*Profile
	list   []*Profile
}

// NewSet builds a set from the given specs. A later spec replaces
// an earlier one of the same name.
func NewSet(specs ...Spec) (*Set, error) {
	s := &Set{byName: map[string]*Profile{}}
	var errs []error
	for _, sp := range specs {
		p, err := sp.Profile()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.byName[strings.ToLower(p.Name)] = p
	}
	for _, p := range s.byName {
		s.list = append(s.list, p)
	}
	slices.SortFunc(s.list, func(a, b *Profile) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return s, errors.Join(errs...)
}

// Named returns the profile with the given case insensitive name.
func (s *Set) Named(name string) (*Profile, error) {
	p, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.NewKind(errors.Unsupported, "profile.Named", name, "unknown profile")
	}
	return p, nil
}

// Profiles returns all of the profiles, sorted by name.
func (s *Set) Profiles() []*Profile {
	return slices.Clone(s.list)
}

// Specs returns the specs of all of the profiles, sorted by name.
func (s *Set) Specs() []Spec {
	specs := make([]Spec, len(s.list))
	for i, p := range s.list {
		specs[i] = p.Spec()
	}
	return specs
}

// Len returns the number of profiles.
func (s *Set) Len() int { return len(s.list) }

var (
	builtinSpecs = errors.Must1(readSpecs(builtinTOML, ".toml"))

	// Builtin is the standard catalog of named profiles.
	Builtin = errors.Must1(NewSet(builtinSpecs...))

	// SRGB is the default sRGB profile.
	SRGB = errors.Must1(Builtin.Named("sRGB"))
)

// Named returns the standard profile with the given case insensitive name.
func Named(name string) (*Profile, error) {
	return Builtin.Named(name)
}

// Catalog returns all of the standard profiles, sorted by name.
func Catalog() []*Profile {
	return Builtin.Profiles()
}

// BuiltinSpecs returns the specs of the standard profiles, in catalog file order.
func BuiltinSpecs() []Spec {
	return slices.Clone(builtinSpecs)
}

func readSpecs(data []byte, ext string) ([]Spec, error) {
	var f file
	var err error
	switch ext {
	case ".toml":
		err = tomlx.ReadBytes(&f, data)
	case ".yaml", ".yml":
		err = yamlx.ReadBytes(&f, data)
	default:
		return nil, errors.NewKind(errors.Unsupported, "profile.Open", ext, "catalog files must be .toml, .yaml, or .yml")
	}
	if err != nil {
		return nil, errors.Errorf(errors.Domain, "profile.Open", ext, err)
	}
	return f.Profiles, nil
}

// Open reads the profile specs in the given TOML or YAML catalog
// file, as determined by its extension.
func Open(filename string) ([]Spec, error) {
	var f file
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(&f, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(&f, filename)
	default:
		return nil, errors.NewKind(errors.Unsupported, "profile.Open", filename, "catalog files must be .toml, .yaml, or .yml")
	}
	if err != nil {
		return nil, fmt.Errorf("profile.Open: %s: %w", filename, err)
	}
	slog.Debug("opened profile catalog", "file", filename, "profiles", len(f.Profiles))
	return f.Profiles, nil
}

// OpenSet reads the given catalog file and returns a set of the
// standard profiles extended and overridden by the ones in the file.
func OpenSet(filename string) (*Set, error) {
	specs, err := Open(filename)
	if err != nil {
		return nil, err
	}
	return NewSet(append(BuiltinSpecs(), specs...)...)
}

// Save writes the given profile specs to the given TOML or YAML
// catalog file, as determined by its extension.
func Save(filename string, specs []Spec) error {
	f := file{Profiles: specs}
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Save(&f, filename)
	case ".yaml", ".yml":
		err = yamlx.Save(&f, filename)
	default:
		return errors.NewKind(errors.Unsupported, "profile.Save", filename, "catalog files must be .toml, .yaml, or .yml")
	}
	if err != nil {
		return err
	}
	slog.Debug("saved profile catalog", "file", filename, "profiles", len(specs))
	return nil
}
