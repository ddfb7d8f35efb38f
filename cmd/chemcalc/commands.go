/*
 * commands.go, part of chemcalc.
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
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	chem "github.com/rmera/chemcalc"
	"github.com/rmera/chemcalc/chemjson"
	"github.com/rmera/chemcalc/chemplot"
	"github.com/spf13/cobra"
)

func parseNumber(s, name string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return f, nil
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [formula]",
		Short: "Show the number of atoms of each element in a formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := chem.ParseFormula(args[0])
			if err != nil {
				return err
			}
			printElements(cmd.OutOrStdout(), el)
			return nil
		},
	}
}

func massCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mass [formula...]",
		Short: "Calculate the molar mass of one or more formulas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				m, err := chem.MolarMass(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%g g/mol\n", m)
				return nil
			}
			masses, err := chem.MolarMasses(args)
			if err != nil {
				return err
			}
			for i, f := range args {
				fmt.Fprintf(out, "%-20s %12g g/mol\n", f, masses[i])
			}
			return nil
		},
	}
}

func compositionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "composition [formula]",
		Short: "Show the mass percent of each element in a formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := chem.PercentComposition(args[0])
			if err != nil {
				return err
			}
			printComposition(cmd.OutOrStdout(), shares)
			return nil
		},
	}
}

func purityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purity [desired amount] [purity %]",
		Short: "Amount of an impure reagent needed to get the desired amount of the pure substance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			desired, err := parseNumber(args[0], "amount")
			if err != nil {
				return err
			}
			purity, err := parseNumber(args[1], "purity")
			if err != nil {
				return err
			}
			a, err := chem.AmountWithPurity(desired, purity)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", a)
			return nil
		},
	}
}

// concFlags are the flags shared by the conc and solute commands.
type concFlags struct {
	volume    float64
	unit      string
	ctype     string
	molarMass float64
	density   float64
	eqWeight  float64
	eqFactor  float64
	formula   string
	reaction  string
	valence   float64
}

func (f *concFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Float64VarP(&f.volume, "volume", "V", 0, "volume of the solution")
	fl.StringVarP(&f.unit, "unit", "u", "", "volume unit: L, mL or uL (default from the configuration)")
	fl.StringVarP(&f.ctype, "type", "t", string(chem.Molarity), "concentration type: M, m, N, F, %(m/v), %(m/m), %(v/v), ppm, ppb or ppt")
	fl.Float64Var(&f.molarMass, "molar-mass", 0, "molar mass of the solute, g/mol (calculated from --formula if not given)")
	fl.Float64VarP(&f.density, "density", "d", 0, "density in g/mL, of the solution for m and %(m/m), of the solute for %(v/v)")
	fl.Float64Var(&f.eqWeight, "eq-weight", 0, "equivalent weight, g/eq (N only)")
	fl.Float64Var(&f.eqFactor, "eq-factor", 0, "equivalence factor (N only)")
	fl.StringVarP(&f.formula, "formula", "f", "", "formula of the solute")
	fl.StringVarP(&f.reaction, "reaction", "r", "", "reaction type for N: acid, base or redox (default from the configuration)")
	fl.Float64Var(&f.valence, "valence", 0, "electrons exchanged per formula unit, for redox reactions")
	cmd.MarkFlagRequired("volume")
}

// resolve turns the flags into the arguments for chem.Concentration and chem.SoluteMass,
// filling what was not given from the configuration and the formula.
func (f *concFlags) resolve(cfg *Config) (chem.ConcentrationType, string, chem.Params, error) {
	ct, err := chem.ParseConcentrationType(f.ctype)
	if err != nil {
		return "", "", chem.Params{}, err
	}
	unit := f.unit
	if unit == "" {
		unit = cfg.VolumeUnit
	}
	p := chem.Params{
		MolarMass:         f.molarMass,
		Density:           f.density,
		EquivalentWeight:  f.eqWeight,
		EquivalenceFactor: f.eqFactor,
		Formula:           f.formula,
		Valence:           f.valence,
	}
	if f.formula != "" {
		rt := f.reaction
		if rt == "" {
			rt = cfg.ReactionType
		}
		p.ReactionType, err = chem.ParseReactionType(rt)
		if err != nil {
			return "", "", chem.Params{}, err
		}
		if p.MolarMass <= 0 {
			p.MolarMass, err = chem.MolarMass(f.formula)
			if err != nil {
				return "", "", chem.Params{}, err
			}
			slog.Debug("molar mass calculated from the formula", "formula", f.formula, "molar_mass", p.MolarMass)
		}
	}
	return ct, unit, p, nil
}

func concCmd(a *app) *cobra.Command {
	var f concFlags
	var mass float64
	cmd := &cobra.Command{
		Use:   "conc",
		Short: "Concentration of a solution from the mass of solute",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ct, unit, p, err := f.resolve(a.cfg)
			if err != nil {
				return err
			}
			c, err := chem.Concentration(mass, f.volume, unit, ct, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g %s\n", c, ct)
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().Float64VarP(&mass, "mass", "m", 0, "mass of solute, g")
	cmd.MarkFlagRequired("mass")
	return cmd
}

func soluteCmd(a *app) *cobra.Command {
	var f concFlags
	var conc float64
	cmd := &cobra.Command{
		Use:   "solute",
		Short: "Mass of solute needed to prepare a solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ct, unit, p, err := f.resolve(a.cfg)
			if err != nil {
				return err
			}
			m, err := chem.SoluteMass(conc, f.volume, unit, ct, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g g\n", m)
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().Float64VarP(&conc, "conc", "C", 0, "concentration of the solution")
	cmd.MarkFlagRequired("conc")
	return cmd
}

func diluteCmd() *cobra.Command {
	var vals [4]float64
	names := [4]string{"c1", "v1", "c2", "v2"}
	cmd := &cobra.Command{
		Use:   "dilute",
		Short: "Solve C1*V1 = C2*V2 for the one quantity not given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var ptrs [4]*float64
			for i, n := range names {
				if cmd.Flags().Changed(n) {
					ptrs[i] = &vals[i]
				}
			}
			r, err := chem.Dilution(chem.DilutionParams{C1: ptrs[0], V1: ptrs[1], C2: ptrs[2], V2: ptrs[3]})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "C1 = %g\nV1 = %g\nC2 = %g\nV2 = %g\n", r.C1, r.V1, r.C2, r.V2)
			return nil
		},
	}
	for i, n := range names {
		cmd.Flags().Float64Var(&vals[i], n, 0, strings.ToUpper(n))
	}
	return cmd
}

func densityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "density [mass g] [volume mL]",
		Short: "Density of a solution from its mass and volume",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mass, err := parseNumber(args[0], "mass")
			if err != nil {
				return err
			}
			volume, err := parseNumber(args[1], "volume")
			if err != nil {
				return err
			}
			d, err := chem.SolutionDensity(mass, volume)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g g/mL\n", d)
			return nil
		},
	}
}

func serialCmd(a *app) *cobra.Command {
	var (
		initial, factor, volume float64
		n                       int
		unit, plotFile, outFile string
		title                   string
	)
	cmd := &cobra.Command{
		Use:   "serial",
		Short: "Plan a serial dilution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tubes, err := chem.SerialDilutions(initial, factor, n, volume)
			if err != nil {
				return err
			}
			if unit == "" {
				unit = a.cfg.VolumeUnit
			}
			printTubes(cmd.OutOrStdout(), tubes, unit)
			if plotFile != "" {
				pl := chemplot.NewPlotter(a.cfg.Plot.WidthCM, a.cfg.Plot.HeightCM)
				if err := pl.Plot(tubes, title, plotFile); err != nil {
					return err
				}
				slog.Info("plot saved", "file", plotFile)
			}
			if outFile != "" {
				compressed := a.cfg.Export.Compress || strings.HasSuffix(outFile, ".zst")
				if err := exportTubes(tubes, outFile, compressed); err != nil {
					return err
				}
				slog.Info("dilution table saved", "file", outFile, "compressed", compressed)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.Float64VarP(&initial, "initial", "i", 0, "concentration of the stock solution")
	fl.Float64VarP(&factor, "factor", "f", 10, "dilution factor of each step")
	fl.IntVarP(&n, "dilutions", "n", 0, "number of dilutions")
	fl.Float64VarP(&volume, "volume", "V", 0, "final volume in each tube")
	fl.StringVarP(&unit, "unit", "u", "", "volume unit, for display (default from the configuration)")
	fl.StringVar(&plotFile, "plot", "", "save a plot of the dilution to this file (png, svg, pdf...)")
	fl.StringVar(&title, "title", "Serial dilution", "title of the plot")
	fl.StringVarP(&outFile, "out", "o", "", "export the dilution table as JSON to this file, zstd-compressed if it ends in .zst")
	cmd.MarkFlagRequired("initial")
	cmd.MarkFlagRequired("dilutions")
	cmd.MarkFlagRequired("volume")
	return cmd
}

func exportTubes(tubes []chem.Tube, name string, compressed bool) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	w, err := chemjson.NewWriter(f, compressed)
	if err != nil {
		return err
	}
	if jerr := chemjson.EncodeTubes(tubes, w); jerr != nil {
		w.Close()
		return jerr
	}
	return w.Close()
}

func idealDensityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ideal-density [formula]",
		Short: "Estimate the density of a compound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := chem.IdealDensity(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g g/mL at %g C (%s)\n", d.Density, d.Temperature, d.Source)
			return nil
		},
	}
}

func equivalentsCmd(a *app) *cobra.Command {
	var reaction string
	cmd := &cobra.Command{
		Use:   "equivalents [formula]",
		Short: "Estimate the equivalents per mole of a compound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if reaction == "" {
				reaction = a.cfg.ReactionType
			}
			rt, err := chem.ParseReactionType(reaction)
			if err != nil {
				return err
			}
			eq := chem.DetermineEquivalents(args[0], rt)
			fmt.Fprintf(cmd.OutOrStdout(), "%g eq/mol (%s): %s\n", eq.Equivalents, eq.Source, eq.Explanation)
			return nil
		},
	}
	cmd.Flags().StringVarP(&reaction, "reaction", "r", "", "reaction type: acid, base or redox (default from the configuration)")
	return cmd
}

func eqWeightCmd(a *app) *cobra.Command {
	var reaction string
	var valence float64
	cmd := &cobra.Command{
		Use:   "eqweight [formula]",
		Short: "Equivalent weight of a compound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if reaction == "" {
				reaction = a.cfg.ReactionType
			}
			rt, err := chem.ParseReactionType(reaction)
			if err != nil {
				return err
			}
			w, err := chem.EquivalentWeight(args[0], rt, valence)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g g/eq\n", w)
			return nil
		},
	}
	cmd.Flags().StringVarP(&reaction, "reaction", "r", "", "reaction type: acid, base or redox (default from the configuration)")
	cmd.Flags().Float64Var(&valence, "valence", 1, "electrons exchanged per formula unit, for redox reactions")
	return cmd
}

func jsonCmd() *cobra.Command {
	var compressed bool
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Answer JSON requests, one per line, read from the standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := chemjson.NewReader(cmd.InOrStdin(), compressed)
			if err != nil {
				return err
			}
			defer in.Close()
			out, err := chemjson.NewWriter(cmd.OutOrStdout(), compressed)
			if err != nil {
				return err
			}
			if err := chemjson.Serve(in, out); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}
	cmd.Flags().BoolVarP(&compressed, "zstd", "z", false, "the input and the output are zstd-compressed")
	return cmd
}
