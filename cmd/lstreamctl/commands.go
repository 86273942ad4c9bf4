/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/lstream"
	"dirpx.dev/lstream/config"
	"dirpx.dev/lstream/declaration"
	"dirpx.dev/lstream/internal/logging"
)

// NewRootCmd builds the lstreamctl command tree.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		cfgFile   string
		color     string
	)

	rootCmd := &cobra.Command{
		Use:   "lstreamctl",
		Short: "Inspect and check stream declaration files",
		Long: `lstreamctl loads stream declaration files (YAML) and reports
class references that cannot be resolved, or prints the declared surface.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch color {
			case colorAuto, colorAlways, colorNever:
			default:
				return fmt.Errorf("invalid --color %q: want auto, always or never", color)
			}

			log := logging.Setup(cmd.ErrOrStderr(), verbosity)

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			lstream.Reset()
			lstream.SetConfig(cfg)

			log.Debug().Str("command", cmd.Name()).Str("suffix", cfg.Suffix).
				Bool("singularize_explicit", cfg.SingularizeExplicit).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "lstream config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&color, "color", colorAuto, "Colorize output: auto, always or never")

	rootCmd.AddCommand(newCheckCmd(&color), newDescribeCmd(&color))
	return rootCmd
}

func newCheckCmd(color *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Report unresolvable class references",
		Long: `check defines every type and collection of the given files, then
reports each explicit "as" and "of" reference that names an undefined class.
Classes defined in any of the files satisfy references in all of them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := newStyles(cmd.OutOrStdout(), *color)

			files, err := loadAll(args)
			if err != nil {
				return err
			}

			var failures []error
			for i, f := range files {
				if err := lstream.Check(f); err != nil {
					for _, e := range unwrapJoined(err) {
						fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", st.fail.Render("✗"), args[i], e)
						failures = append(failures, e)
					}
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", st.ok.Render("✓"), args[i])
			}

			if len(failures) > 0 {
				return fmt.Errorf("%d unresolved class reference(s): %w", len(failures), errors.Join(failures...))
			}
			return nil
		},
	}
}

func newDescribeCmd(color *string) *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE...",
		Short: "Print the declared types and collections",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := loadAll(args)
			if err != nil {
				return err
			}
			st := newStyles(cmd.OutOrStdout(), *color)
			for _, f := range files {
				describe(cmd.OutOrStdout(), st, f)
			}
			return nil
		},
	}
}

// loadAll parses every file and defines its classes.
func loadAll(paths []string) ([]*declaration.File, error) {
	log := logging.Component("lstreamctl")
	files := make([]*declaration.File, 0, len(paths))
	for _, path := range paths {
		f, err := declaration.ParseFile(path)
		if err != nil {
			return nil, err
		}
		if err := lstream.DefineFile(f); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		log.Info().Str("file", path).Int("types", len(f.Types)).
			Int("collections", len(f.Collections)).Msg("Loaded declarations")
		files = append(files, f)
	}
	return files, nil
}

func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
