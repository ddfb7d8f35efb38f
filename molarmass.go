/*
 * molarmass.go, part of chemcalc.
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
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MolarMass returns the molar mass, in g/mol, of the compound with the given formula,
// rounded to 4 decimals. It fails with the same errors as ParseFormula.
func MolarMass(formula string) (float64, error) {
	elements, err := ParseFormula(formula)
	if err != nil {
		return 0, errDecorate(err, "MolarMass")
	}
	return round(elementsMass(elements), resultPrec), nil
}

//elementsMass returns the unrounded mass of the parsed formula.
func elementsMass(elements map[string]float64) float64 {
	masses := make([]float64, 0, len(elements))
	quantities := make([]float64, 0, len(elements))
	for k, v := range elements {
		masses = append(masses, symbolMass[k])
		quantities = append(quantities, v)
	}
	return floats.Dot(masses, quantities)
}

// ElementShare is the contribution of one element to the molar mass of a compound.
type ElementShare struct {
	Symbol       string  `json:"symbol"`
	Count        float64 `json:"count"` //number of atoms in the formula
	AtomicMass   float64 `json:"atomicMass"`
	Contribution float64 `json:"contribution"` //Count*AtomicMass, g/mol
	Percent      float64 `json:"percent"`      //mass percent of the element in the compound
}

// PercentComposition returns, for each element in formula, its contribution to the molar mass
// and its mass percent, sorted by element symbol. Contributions are rounded to 4 decimals
// and percents to 2.
func PercentComposition(formula string) ([]ElementShare, error) {
	elements, err := ParseFormula(formula)
	if err != nil {
		return nil, errDecorate(err, "PercentComposition")
	}
	total := elementsMass(elements)
	ret := make([]ElementShare, 0, len(elements))
	for k, v := range elements {
		s := ElementShare{Symbol: k, Count: v, AtomicMass: symbolMass[k]}
		s.Contribution = v * s.AtomicMass
		if total > 0 {
			s.Percent = round(s.Contribution/total*100, percentPrec)
		}
		s.Contribution = round(s.Contribution, resultPrec)
		ret = append(ret, s)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Symbol < ret[j].Symbol })
	return ret, nil
}

// MolarMasses returns the molar masses of all the given formulas, rounded to 4 decimals.
// The formulas are put in a composition matrix, with one row per formula and one column
// per element present in any of them, which is then multiplied by the vector of atomic masses.
// The results match those of MolarMass for each formula, up to the last decimal.
func MolarMasses(formulas []string) ([]float64, error) {
	if len(formulas) == 0 {
		return nil, newError(ErrInvalidArgument, "MolarMasses", "no formulas given")
	}
	parsed := make([]map[string]float64, len(formulas))
	column := make(map[string]int)
	symbols := make([]string, 0)
	for i, f := range formulas {
		elements, err := ParseFormula(f)
		if err != nil {
			return nil, errDecorate(err, "MolarMasses")
		}
		parsed[i] = elements
		for k := range elements {
			if _, ok := column[k]; !ok {
				column[k] = len(symbols)
				symbols = append(symbols, k)
			}
		}
	}
	ret := make([]float64, len(formulas))
	if len(symbols) == 0 {
		//nothing but ignored characters in every formula.
		return ret, nil
	}
	comp := mat.NewDense(len(formulas), len(symbols), nil)
	for i, elements := range parsed {
		for k, v := range elements {
			comp.Set(i, column[k], v)
		}
	}
	m := make([]float64, len(symbols))
	for i, s := range symbols {
		m[i] = symbolMass[s]
	}
	res := mat.NewVecDense(len(formulas), nil)
	res.MulVec(comp, mat.NewVecDense(len(symbols), m))
	for i := range ret {
		ret[i] = round(res.AtVec(i), resultPrec)
	}
	return ret, nil
}
