/*
 * density.go, part of chemcalc.
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

package chem

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Densities in g/mL at 25 C of some common compounds.
//Gases are given at 1 atm.
var compoundDensity = map[string]float64{
	"H2O":       1.0,
	"C6H12O6":   1.54, //glucose
	"NaCl":      2.16,
	"CH3OH":     0.792,
	"C2H5OH":    0.789,
	"C3H8O3":    1.26, //glycerol
	"C6H6":      0.879,
	"C7H8":      0.867, //toluene
	"C8H10":     0.865, //xylene
	"CH3COOH":   1.049,
	"C3H6O":     0.784, //acetone
	"C12H22O11": 1.59,  //sucrose
	"C2H3NaO2":  1.528,
	"KCl":       1.98,
	"CaCl2":     2.15,
	"MgCl2":     2.32,
	"K2SO4":     2.66,
	"Na2SO4":    2.68,
	"CaCO3":     2.71,
	"NaHCO3":    2.20,
	"KMnO4":     2.70,
	"AgNO3":     4.35,
	"FeCl3":     2.90,
	"ZnSO4":     3.54,
	"CuSO4":     3.60,
	//concentrated acids
	"HCl":   1.49,
	"H2SO4": 1.84,
	"HNO3":  1.51,
	//gases
	"CO2":   0.001977,
	"NH3":   0.000769,
	"CH4":   0.000656,
	"C4H10": 0.00249,
	"C3H8":  0.00201,
	"O2":    0.001331,
	"N2":    0.001165,
	"He":    0.000166,
	"Ar":    0.001662,
	//Average biomass formulas
	"CH1.8O0.5N0.2":    1.05, //bacteria
	"CH1.83O0.55N0.25": 1.06, //Aerobacter aerogenes
	"CH1.77O0.49N0.24": 1.05, //Escherichia coli
	"CH1.75O0.43N0.22": 1.04, //Klebsiella aerogenes
}

//Organic compounds are clamped to this density range, in g/mL.
const (
	organicMinDensity = 0.7
	organicMaxDensity = 1.5
	organicCFraction  = 0.2
	organicHFraction  = 0.3
)

// DensitySource tells where a DensityEstimate comes from.
type DensitySource int

const (
	DensityFromTable     DensitySource = iota //measured value for a known compound
	DensityEstimated                          //weighted average of the elemental densities
	DensityDefault                            //nothing could be estimated, the density of water is used
)

func (s DensitySource) String() string {
	switch s {
	case DensityFromTable:
		return "table"
	case DensityEstimated:
		return "estimated"
	}
	return "default"
}

func (s DensitySource) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *DensitySource) UnmarshalText(text []byte) error {
	switch string(text) {
	case "table":
		*s = DensityFromTable
	case "estimated":
		*s = DensityEstimated
	case "default":
		*s = DensityDefault
	default:
		return newError(ErrInvalidArgument, "DensitySource.UnmarshalText", "unknown source %q", string(text))
	}
	return nil
}

// DensityEstimate is a density, in g/mL, with the temperature, in C, it corresponds to.
type DensityEstimate struct {
	Density     float64       `json:"density"`
	Temperature float64       `json:"temperature"`
	Source      DensitySource `json:"source"`
}

// IdealDensity returns the density of the compound with the given formula. Common compounds
// are looked up in a table. For other compounds the density is estimated as the average of the densities
// of the elements, weighted by their mass in the compound, considering only the elements for which a density is
// known. If the compound looks organic (carbon and hydrogen above 20% and 30% of the counted atoms)
// the estimate is clamped to [0.7,1.5] g/mL. If no element has a known density, 1.0 (water) is returned.
// The estimation is crude, and the Source field of the result should be checked.
// Densities are rounded to 4 decimals, and the temperature is always 25 C.
// It fails if the formula can't be parsed.
func IdealDensity(formula string) (DensityEstimate, error) {
	f := normalizeFormula(formula)
	if d, ok := compoundDensity[f]; ok {
		return DensityEstimate{d, roomTempC, DensityFromTable}, nil
	}
	elements, err := ParseFormula(f)
	if err != nil {
		return DensityEstimate{}, errDecorate(err, "IdealDensity")
	}
	densities := make([]float64, 0, len(elements))
	masses := make([]float64, 0, len(elements))
	var atoms, carbons, hydrogens float64
	for k, v := range elements {
		d, ok := symbolDensity[k]
		if !ok {
			continue
		}
		densities = append(densities, d)
		masses = append(masses, v*symbolMass[k])
		atoms += v
		switch k {
		case "C":
			carbons = v
		case "H":
			hydrogens = v
		}
	}
	if len(masses) == 0 || floats.Sum(masses) == 0 || atoms == 0 {
		return DensityEstimate{waterDensity, roomTempC, DensityDefault}, nil
	}
	d := stat.Mean(densities, masses)
	if carbons > 0 && hydrogens > 0 && carbons/atoms > organicCFraction && hydrogens/atoms > organicHFraction {
		d = clamp(d, organicMinDensity, organicMaxDensity)
	}
	return DensityEstimate{round(d, resultPrec), roomTempC, DensityEstimated}, nil
}
