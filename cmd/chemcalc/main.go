/*
 * main.go, part of chemcalc.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"errors"
	"log/slog"
	"os"

	chem "github.com/rmera/chemcalc"
	"github.com/spf13/cobra"
)

// app carries the state shared by all the subcommands.
type app struct {
	configPath string
	verbose    bool
	cfg        *Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var cerr chem.Error
		if errors.As(err, &cerr) {
			slog.Debug("error trace", "functions", cerr.Decorate(""))
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}
	rootCmd := &cobra.Command{
		Use:          "chemcalc",
		Short:        "Calculations for the preparation of laboratory solutions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (default $XDG_CONFIG_HOME/chemcalc/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "print debug information")

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(massCmd())
	rootCmd.AddCommand(compositionCmd())
	rootCmd.AddCommand(purityCmd())
	rootCmd.AddCommand(concCmd(a))
	rootCmd.AddCommand(soluteCmd(a))
	rootCmd.AddCommand(diluteCmd())
	rootCmd.AddCommand(densityCmd())
	rootCmd.AddCommand(serialCmd(a))
	rootCmd.AddCommand(idealDensityCmd())
	rootCmd.AddCommand(equivalentsCmd(a))
	rootCmd.AddCommand(eqWeightCmd(a))
	rootCmd.AddCommand(jsonCmd())
	return rootCmd
}

// setup installs the logger and loads the configuration.
// The library's warnings, written with the log package, go through the same handler.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	slog.Debug("configuration loaded", "volume_unit", cfg.VolumeUnit, "reaction_type", cfg.ReactionType,
		"plot_width_cm", cfg.Plot.WidthCM, "plot_height_cm", cfg.Plot.HeightCM, "compress", cfg.Export.Compress)
	return nil
}
