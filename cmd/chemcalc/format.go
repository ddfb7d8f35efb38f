/*
 * format.go, part of chemcalc.
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
	"io"
	"sort"

	chem "github.com/rmera/chemcalc"
)

func printElements(out io.Writer, el map[string]float64) {
	symbols := make([]string, 0, len(el))
	for s := range el {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	for _, s := range symbols {
		fmt.Fprintf(out, "%-3s %g\n", s, el[s])
	}
}

func printComposition(out io.Writer, shares []chem.ElementShare) {
	fmt.Fprintf(out, "%-3s %8s %10s %12s %8s\n", "El", "Count", "Mass", "g/mol", "%")
	for _, s := range shares {
		fmt.Fprintf(out, "%-3s %8g %10.3f %12.4f %8.2f\n", s.Symbol, s.Count, s.AtomicMass, s.Contribution, s.Percent)
	}
}

func printTubes(out io.Writer, tubes []chem.Tube, unit string) {
	fmt.Fprintf(out, "%4s %14s %8s %12s %12s %12s\n", "Tube", "Concentration", "Factor",
		"Solvent/"+unit, "Transfer/"+unit, "Final/"+unit)
	for _, t := range tubes {
		fmt.Fprintf(out, "%4d %14g %8g %12g %12g %12g\n", t.TubeNumber, t.Concentration, t.DilutionFactor,
			t.SolventVolume, t.TransferVolume, t.FinalVolume)
	}
}
