// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions of colorconv.
package cmd

import (
	"io"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/profile"
)

// Config is the configuration shared by all of the commands,
// as set by command line flags.
type Config struct {
	// Profile is the name of the working profile.
	Profile string

	// Catalog is an optional TOML or YAML catalog file that extends
	// and overrides the standard profiles.
	Catalog string

	// Format is the output format: text, toml, or yaml.
	Format string

	// VeryVerbose, Verbose, and Quiet select the log level.
	VeryVerbose bool
	Verbose     bool
	Quiet       bool

	// Out is where the results are written.
	Out io.Writer

	set *profile.Set
}

// Profiles returns the profile set, which is the standard catalog
// extended by [Config.Catalog] if it is set.
func (c *Config) Profiles() (*profile.Set, error) {
	if c.set != nil {
		return c.set, nil
	}
	if c.Catalog == "" {
		c.set = profile.Builtin
		return c.set, nil
	}
	set, err := profile.OpenSet(c.Catalog)
	if err != nil {
		return nil, err
	}
	c.set = set
	return set, nil
}

// Named returns the profile with the given name from [Config.Profiles].
func (c *Config) Named(name string) (*profile.Profile, error) {
	set, err := c.Profiles()
	if err != nil {
		return nil, err
	}
	return set.Named(name)
}

// WorkingProfile returns the profile named by [Config.Profile].
func (c *Config) WorkingProfile() (*profile.Profile, error) {
	return c.Named(c.Profile)
}

func (c *Config) validate() error {
	switch c.Format {
	case "text", "toml", "yaml":
		return nil
	}
	return errors.NewKind(errors.Unsupported, "colorconv", c.Format, "format must be text, toml, or yaml")
}
