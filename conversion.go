/*
 * conversion.go, part of chemcalc.
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
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/unit"
)

//This provides conversion factors and other constants

//Volume units accepted by the concentration functions.
const (
	Liter      = "L"
	Milliliter = "mL"
	Microliter = "uL"
)

//How many of each unit make up one liter. Kept as divisors
//so that, i.e. 250 mL becomes exactly 250/1000 L.
var perLiter = map[string]float64{
	Liter:      1,
	Milliliter: float64(unit.Litre / (unit.Milli * unit.Litre)),
	Microliter: float64(unit.Litre / (unit.Micro * unit.Litre)),
	"µL":       float64(unit.Litre / (unit.Micro * unit.Litre)), //micro sign
	"μL":       float64(unit.Litre / (unit.Micro * unit.Litre)), //greek mu
}

//Scale factors for the trace concentration units, from g/L.
const (
	ppmFactor = 1e3 //mg/L
	ppbFactor = 1e6 //ug/L
	pptFactor = 1e9 //ng/L
)

//Decimal places kept in results.
const (
	resultPrec   = 4
	serialPrec   = 6
	percentPrec  = 2
	roomTempC    = 25.0 //temperature reported with the densities, in C
	waterDensity = 1.0
)

// ToLiters converts volume, given in volumeUnit (L, mL or uL) to liters.
func ToLiters(volume float64, volumeUnit string) (float64, error) {
	div, ok := perLiter[volumeUnit]
	if !ok {
		return 0, newError(ErrInvalidUnit, "ToLiters", "invalid volume unit %q", volumeUnit)
	}
	return volume / div, nil
}

//round rounds half away from zero to prec decimals, the same
//as printing with a fixed number of decimals and reading the result back.
func round(f float64, prec int) float64 {
	return scalar.Round(f, prec)
}
