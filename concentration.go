/*
 * concentration.go, part of chemcalc.
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
	"log"
	"strings"
)

// ConcentrationType identifies the way a concentration is expressed.
type ConcentrationType string

const (
	Molarity            ConcentrationType = "M"      //mol/L of solution
	Molality            ConcentrationType = "m"      //mol/kg of solvent
	Normality           ConcentrationType = "N"      //eq/L of solution
	Formality           ConcentrationType = "F"      //formula weights/L of solution
	MassVolumePercent   ConcentrationType = "%(m/v)" //g/100 mL
	MassMassPercent     ConcentrationType = "%(m/m)"
	VolumeVolumePercent ConcentrationType = "%(v/v)"
	PPM                 ConcentrationType = "ppm" //mg/L
	PPB                 ConcentrationType = "ppb" //ug/L
	PPT                 ConcentrationType = "ppt" //ng/L
)

var concNames = map[ConcentrationType]string{
	Molarity:            "Molarity",
	Molality:            "Molality",
	Normality:           "Normality",
	Formality:           "Formality",
	MassVolumePercent:   "mass/volume percentage",
	MassMassPercent:     "mass/mass percentage",
	VolumeVolumePercent: "volume/volume percentage",
	PPM:                 "ppm",
	PPB:                 "ppb",
	PPT:                 "ppt",
}

// Name returns a human-readable name for the concentration type.
func (ct ConcentrationType) Name() string {
	if n, ok := concNames[ct]; ok {
		return n
	}
	return string(ct)
}

// ParseConcentrationType returns the ConcentrationType for s, which can be the
// symbol of the type ("M", "m", "N", "F", "%(m/v)", "%(m/m)", "%(v/v)", "ppm", "ppb", "ppt"),
// or, for the first four, their full name, in any case ("molarity", "Molality"...).
func ParseConcentrationType(s string) (ConcentrationType, error) {
	ct := ConcentrationType(s)
	if _, ok := concNames[ct]; ok {
		return ct, nil
	}
	switch strings.ToLower(s) {
	case "molarity":
		return Molarity, nil
	case "molality":
		return Molality, nil
	case "normality":
		return Normality, nil
	case "formality":
		return Formality, nil
	}
	return "", newError(ErrInvalidConcentrationType, "ParseConcentrationType", "invalid concentration type %q", s)
}

// Params contains the auxiliary values some concentration types need.
// A zero (or negative) value means that the value was not given.
type Params struct {
	MolarMass float64 //g/mol. Needed for M, m and F, and for N unless other equivalence data is given.
	Density   float64 //g/mL. Of the solution for m and %(m/m), of the solute for %(v/v).

	//Normality only. The equivalent weight is taken from the first of these that is given:
	//EquivalentWeight; MolarMass/EquivalenceFactor; EquivalentWeight(Formula, ReactionType, Valence).
	//If none is, the molar mass is used, i.e. an equivalence factor of 1.
	EquivalentWeight  float64
	EquivalenceFactor float64
	Formula           string
	ReactionType      ReactionType
	Valence           float64 //for redox reactions, defaults to 1
}

//equivalentWeight resolves the equivalent weight for Normality calculations.
func (p Params) equivalentWeight(function string) (float64, error) {
	switch {
	case p.EquivalentWeight > 0:
		return p.EquivalentWeight, nil
	case p.MolarMass > 0 && p.EquivalenceFactor > 0:
		return p.MolarMass / p.EquivalenceFactor, nil
	case p.Formula != "" && p.ReactionType != "":
		valence := p.Valence
		if valence <= 0 {
			valence = 1
		}
		ew, err := EquivalentWeight(p.Formula, p.ReactionType, valence)
		if err != nil {
			return 0, errDecorate(err, function+": calculating equivalent weight")
		}
		return ew, nil
	case p.MolarMass > 0:
		log.Printf("chemcalc/%s: No equivalence data for Normality, an equivalence factor of 1 will be used", function)
		return p.MolarMass, nil
	}
	return 0, missingParam(function, "molarMass", "Normality")
}

//solutionLiters checks the volume and returns it in liters.
func solutionLiters(volume float64, volumeUnit, function string) (float64, error) {
	vl, err := ToLiters(volume, volumeUnit)
	if err != nil {
		return 0, errDecorate(err, function)
	}
	if !finite(vl) || vl <= 0 {
		return 0, newError(ErrInvalidArgument, function, "volume must be greater than zero")
	}
	return vl, nil
}

// Concentration returns the concentration, of type ct, of a solution with mass grams of solute
// in volume (given in volumeUnit) of solution. The result is rounded to 4 decimals.
// It returns an error if the unit or the type are not valid, if a value needed by the type is missing
// from p, or, for molality, if the solvent mass, calculated as the mass of the solution minus that of the
// solute, is not positive.
func Concentration(mass, volume float64, volumeUnit string, ct ConcentrationType, p Params) (float64, error) {
	const fn = "Concentration"
	vl, err := solutionLiters(volume, volumeUnit, fn)
	if err != nil {
		return 0, err
	}
	if !finite(mass) {
		return 0, newError(ErrInvalidArgument, fn, "mass must be a finite number")
	}
	var c float64
	switch ct {
	case Molarity, Formality:
		if p.MolarMass <= 0 {
			return 0, missingParam(fn, "molarMass", ct.Name())
		}
		c = mass / p.MolarMass / vl
	case Molality:
		if p.MolarMass <= 0 {
			return 0, missingParam(fn, "molarMass", ct.Name())
		}
		if p.Density <= 0 {
			return 0, missingParam(fn, "density", ct.Name())
		}
		solvent := vl*1000*p.Density - mass //g
		if solvent <= 0 {
			return 0, newError(ErrDerivedValue, fn, "invalid solvent mass calculated: %g g", solvent)
		}
		c = mass / p.MolarMass / (solvent / 1000)
	case Normality:
		ew, err := p.equivalentWeight(fn)
		if err != nil {
			return 0, err
		}
		c = mass / ew / vl
	case MassVolumePercent:
		c = mass / (vl * 10)
	case MassMassPercent:
		if p.Density <= 0 {
			return 0, missingParam(fn, "density", ct.Name())
		}
		total := vl * 1000 * p.Density
		c = mass / total * 100
	case VolumeVolumePercent:
		if p.Density <= 0 {
			return 0, missingParam(fn, "density", ct.Name())
		}
		soluteVolume := mass / p.Density //mL
		c = soluteVolume / (vl * 1000) * 100
	case PPM:
		c = mass / vl * ppmFactor
	case PPB:
		c = mass / vl * ppbFactor
	case PPT:
		c = mass / vl * pptFactor
	default:
		return 0, newError(ErrInvalidConcentrationType, fn, "invalid concentration type %q", string(ct))
	}
	if !finite(c) {
		return 0, newError(ErrDerivedValue, fn, "the calculated concentration is not a finite number")
	}
	return round(c, resultPrec), nil
}

// SoluteMass returns the mass of solute, in grams, needed to prepare volume (in volumeUnit) of a solution
// with the given concentration, of type ct. It is the inverse of Concentration and fails in the same cases.
// For %(m/m) the percentage is relative to the mass of the whole solution, calculated from the volume and the
// density in p. The result is rounded to 4 decimals.
func SoluteMass(concentration, volume float64, volumeUnit string, ct ConcentrationType, p Params) (float64, error) {
	const fn = "SoluteMass"
	vl, err := solutionLiters(volume, volumeUnit, fn)
	if err != nil {
		return 0, err
	}
	if !finite(concentration) {
		return 0, newError(ErrInvalidArgument, fn, "concentration must be a finite number")
	}
	var m float64
	switch ct {
	case Molarity, Formality:
		if p.MolarMass <= 0 {
			return 0, missingParam(fn, "molarMass", ct.Name())
		}
		m = concentration * vl * p.MolarMass
	case Molality:
		if p.MolarMass <= 0 {
			return 0, missingParam(fn, "molarMass", ct.Name())
		}
		if p.Density <= 0 {
			return 0, missingParam(fn, "density", ct.Name())
		}
		//solute = molality*(total-solute)/1000*molarMass, solved for solute.
		total := vl * 1000 * p.Density
		m = concentration * p.MolarMass * total / (1000 + concentration*p.MolarMass)
	case Normality:
		ew, err := p.equivalentWeight(fn)
		if err != nil {
			return 0, err
		}
		m = concentration * vl * ew
	case MassVolumePercent:
		m = concentration * vl * 10
	case MassMassPercent:
		if p.Density <= 0 {
			return 0, missingParam(fn, "density", ct.Name())
		}
		m = concentration * vl * 1000 * p.Density / 100
	case VolumeVolumePercent:
		if p.Density <= 0 {
			return 0, missingParam(fn, "density", ct.Name())
		}
		soluteVolume := concentration * vl * 1000 / 100 //mL
		m = soluteVolume * p.Density
	case PPM:
		m = concentration * vl / ppmFactor
	case PPB:
		m = concentration * vl / ppbFactor
	case PPT:
		m = concentration * vl / pptFactor
	default:
		return 0, newError(ErrInvalidConcentrationType, fn, "invalid concentration type %q", string(ct))
	}
	if !finite(m) {
		return 0, newError(ErrDerivedValue, fn, "the calculated mass is not a finite number")
	}
	return round(m, resultPrec), nil
}
