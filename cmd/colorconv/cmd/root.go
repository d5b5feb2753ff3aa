// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"os"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/logx"
	"github.com/spf13/cobra"
)

// Execute runs the colorconv root command on the process arguments,
// logging any error.
func Execute() error {
	return errors.Log(NewRoot(os.Stdout).Execute())
}

// NewRoot returns the colorconv root command with all of its
// subcommands, writing results to out.
func NewRoot(out io.Writer) *cobra.Command {
	c := &Config{Out: out}
	root := &cobra.Command{
		Use:           "colorconv",
		Short:         "Convert colors between models and profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
			logx.SetDefaultLogger()
			return c.validate()
		},
	}
	root.SetOut(out)
	pf := root.PersistentFlags()
	pf.StringVarP(&c.Profile, "profile", "p", "sRGB", "working profile name")
	pf.StringVar(&c.Catalog, "catalog", "", "TOML or YAML profile catalog that extends the standard profiles")
	pf.StringVarP(&c.Format, "format", "f", "text", "output format: text, toml, or yaml")
	pf.BoolVar(&c.VeryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&c.Verbose, "verbose", "v", false, "log info messages")
	pf.BoolVarP(&c.Quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(
		convertCommand(c),
		deltaCommand(c),
		adaptCommand(c),
		appearanceCommand(c),
		modelsCommand(c),
		profilesCommand(c),
	)
	return root
}

func convertCommand(c *Config) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Convert a color to another model",
		Long: "Convert a color, given as model(c1, c2, ...), #rrggbb, or a color name, " +
			"to another model in the working profile.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Convert(c, args[0], to)
		},
	}
	cmd.Flags().StringVarP(&to, "to", "t", "Lab", "target model")
	return cmd
}

func deltaCommand(c *Config) *cobra.Command {
	var formula string
	cmd := &cobra.Command{
		Use:   "delta <reference> <sample>",
		Short: "Measure the perceptual difference between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Delta(c, args[0], args[1], formula)
		},
	}
	cmd.Flags().StringVar(&formula, "formula", "ciede2000", "difference formula: cie76, cie94, cie94t, ciede2000, cmc, cmcp, ez, or euclidean")
	return cmd
}

func adaptCommand(c *Config) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "adapt <color>",
		Short: "Adapt a color from the working profile to another profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Adapt(c, args[0], to)
		},
	}
	cmd.Flags().StringVar(&to, "to-profile", "", "target profile name")
	errors.Log(cmd.MarkFlagRequired("to-profile"))
	return cmd
}

func appearanceCommand(c *Config) *cobra.Command {
	var opts AppearanceOptions
	cmd := &cobra.Command{
		Use:   "appearance <color>",
		Short: "Print the CIECAM02 appearance correlates of a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Appearance(c, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.Surround, "surround", "", "surround: average, dim, or dark (default from the profile)")
	f.Float64Var(&opts.AdaptingLuminance, "la", 0, "adapting luminance in cd/m² (default from the profile)")
	f.Float64Var(&opts.BackgroundLuminance, "yb", 0, "background luminance in percent of the white (default from the profile)")
	return cmd
}

func modelsCommand(c *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the color models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Models(c)
		},
	}
}

func profilesCommand(c *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the profiles of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Profiles(c)
		},
	}
}
