/*
 * concentration_test.go, part of chemcalc.
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
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestToLiters(Te *testing.T) {
	cases := []struct {
		v    float64
		unit string
		want float64
	}{
		{2, "L", 2},
		{250, "mL", 0.25},
		{500, "uL", 0.0005},
		{500, "µL", 0.0005},
	}
	for _, c := range cases {
		got, err := ToLiters(c.v, c.unit)
		if err != nil {
			Te.Errorf("ToLiters(%v, %q): %v", c.v, c.unit, err)
			continue
		}
		if !scalar.EqualWithinAbs(got, c.want, 1e-15) {
			Te.Errorf("ToLiters(%v, %q) = %v, want %v", c.v, c.unit, got, c.want)
		}
	}
	if _, err := ToLiters(1, "gal"); !errors.Is(err, ErrInvalidUnit) {
		Te.Errorf("ToLiters with an unknown unit returned %v", err)
	}
}

func TestConcentration(Te *testing.T) {
	cases := []struct {
		name   string
		mass   float64
		volume float64
		unit   string
		ct     ConcentrationType
		p      Params
		want   float64
	}{
		{"molarity", 5.844, 250, "mL", Molarity, Params{MolarMass: 58.44}, 0.4},
		{"formality", 5.844, 250, "mL", Formality, Params{MolarMass: 58.44}, 0.4},
		{"molality", 5.844, 100, "mL", Molality, Params{MolarMass: 58.44, Density: 1.04}, 1.0188},
		{"normality, factor", 49.036, 1, "L", Normality, Params{MolarMass: 98.072, EquivalenceFactor: 2}, 1},
		{"normality, formula", 49.036, 1, "L", Normality, Params{Formula: "H2SO4", ReactionType: Acid}, 1},
		{"normality, eq weight", 10, 500, "mL", Normality, Params{EquivalentWeight: 40}, 0.5},
		{"normality, fallback", 4, 1, "L", Normality, Params{MolarMass: 40}, 0.1},
		{"m/v", 5, 100, "mL", MassVolumePercent, Params{}, 5},
		{"m/m", 5, 100, "mL", MassMassPercent, Params{Density: 1.05}, 4.7619},
		{"v/v", 7.89, 100, "mL", VolumeVolumePercent, Params{Density: 0.789}, 10},
		{"ppm", 0.001, 1, "L", PPM, Params{}, 1},
		{"ppb", 0.001, 1, "L", PPB, Params{}, 1000},
		{"ppt", 1e-6, 1, "L", PPT, Params{}, 1000},
		{"microliters", 1e-6, 1000, "uL", PPM, Params{}, 1},
	}
	for _, c := range cases {
		got, err := Concentration(c.mass, c.volume, c.unit, c.ct, c.p)
		if err != nil {
			Te.Errorf("%s: %v", c.name, err)
			continue
		}
		if !scalar.EqualWithinAbs(got, c.want, 1e-9) {
			Te.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSoluteMass(Te *testing.T) {
	cases := []struct {
		name   string
		conc   float64
		volume float64
		unit   string
		ct     ConcentrationType
		p      Params
		want   float64
	}{
		{"molarity", 0.4, 250, "mL", Molarity, Params{MolarMass: 58.44}, 5.844},
		{"normality, formula", 1, 1, "L", Normality, Params{Formula: "H2SO4", ReactionType: Acid}, 49.036},
		{"normality, redox", 0.1, 1, "L", Normality, Params{Formula: "KMnO4", ReactionType: Redox, Valence: 5}, 3.1606},
		{"m/v", 5, 100, "mL", MassVolumePercent, Params{}, 5},
		{"m/m", 10, 100, "mL", MassMassPercent, Params{Density: 1.2}, 12},
		{"v/v", 10, 100, "mL", VolumeVolumePercent, Params{Density: 0.789}, 7.89},
		{"ppm", 1, 1, "L", PPM, Params{}, 0.001},
		{"ppb", 1000, 1, "L", PPB, Params{}, 0.001},
	}
	for _, c := range cases {
		got, err := SoluteMass(c.conc, c.volume, c.unit, c.ct, c.p)
		if err != nil {
			Te.Errorf("%s: %v", c.name, err)
			continue
		}
		if !scalar.EqualWithinAbs(got, c.want, 1e-9) {
			Te.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

//Going from mass to concentration and back should give the same mass.
func TestConcentrationRoundTrip(Te *testing.T) {
	types := []struct {
		ct ConcentrationType
		p  Params
	}{
		{Molarity, Params{MolarMass: 58.44}},
		{Formality, Params{MolarMass: 58.44}},
		{Molality, Params{MolarMass: 58.44, Density: 1.04}},
		{Normality, Params{MolarMass: 98.072, EquivalenceFactor: 2}},
		{MassVolumePercent, Params{}},
		{MassMassPercent, Params{Density: 1.05}},
		{VolumeVolumePercent, Params{Density: 0.789}},
		{PPM, Params{}},
		{PPB, Params{}},
		{PPT, Params{}},
	}
	const mass = 5.844
	for _, t := range types {
		c, err := Concentration(mass, 100, "mL", t.ct, t.p)
		if err != nil {
			Te.Errorf("%s: %v", t.ct.Name(), err)
			continue
		}
		back, err := SoluteMass(c, 100, "mL", t.ct, t.p)
		if err != nil {
			Te.Errorf("%s: %v", t.ct.Name(), err)
			continue
		}
		if !scalar.EqualWithinRel(back, mass, 1e-3) {
			Te.Errorf("%s: %v g gave %v, which gives back %v g", t.ct.Name(), mass, c, back)
		}
	}
}

func TestConcentrationErrors(Te *testing.T) {
	_, err := Concentration(1, 100, "mL", Molarity, Params{})
	if !errors.Is(err, ErrMissingParameter) {
		Te.Fatalf("molarity without a molar mass returned %v", err)
	}
	var cerr *CError
	if !errors.As(err, &cerr) || cerr.Param() != "molarMass" {
		Te.Errorf("the missing parameter should be molarMass, error: %v", err)
	}

	_, err = SoluteMass(1, 100, "mL", Molality, Params{MolarMass: 58.44})
	if !errors.As(err, &cerr) || cerr.Param() != "density" {
		Te.Errorf("the missing parameter should be density, error: %v", err)
	}

	checks := []struct {
		name string
		err  error
		kind error
	}{}
	add := func(name string, kind error, f func() error) {
		checks = append(checks, struct {
			name string
			err  error
			kind error
		}{name, f(), kind})
	}
	add("m/m without density", ErrMissingParameter, func() error {
		_, err := Concentration(1, 100, "mL", MassMassPercent, Params{})
		return err
	})
	add("v/v without density", ErrMissingParameter, func() error {
		_, err := SoluteMass(1, 100, "mL", VolumeVolumePercent, Params{})
		return err
	})
	add("normality without data", ErrMissingParameter, func() error {
		_, err := SoluteMass(1, 100, "mL", Normality, Params{})
		return err
	})
	add("normality with a bad formula", ErrParse, func() error {
		_, err := SoluteMass(1, 100, "mL", Normality, Params{Formula: "Xx", ReactionType: Acid})
		return err
	})
	add("bad unit", ErrInvalidUnit, func() error {
		_, err := Concentration(1, 100, "gal", Molarity, Params{MolarMass: 1})
		return err
	})
	add("bad type", ErrInvalidConcentrationType, func() error {
		_, err := Concentration(1, 100, "mL", ConcentrationType("X"), Params{})
		return err
	})
	add("bad type, inverse", ErrInvalidConcentrationType, func() error {
		_, err := SoluteMass(1, 100, "mL", ConcentrationType("mol/L"), Params{})
		return err
	})
	add("zero volume", ErrInvalidArgument, func() error {
		_, err := Concentration(1, 0, "mL", PPM, Params{})
		return err
	})
	add("negative solvent", ErrDerivedValue, func() error {
		_, err := Concentration(200, 100, "mL", Molality, Params{MolarMass: 58.44, Density: 1})
		return err
	})
	for _, c := range checks {
		if !errors.Is(c.err, c.kind) {
			Te.Errorf("%s: expected %v, got %v", c.name, c.kind, c.err)
		}
	}
}

func TestParseConcentrationType(Te *testing.T) {
	ok := map[string]ConcentrationType{
		"M":         Molarity,
		"m":         Molality,
		"molality":  Molality,
		"Normality": Normality,
		"%(m/m)":    MassMassPercent,
		"ppt":       PPT,
	}
	for s, want := range ok {
		got, err := ParseConcentrationType(s)
		if err != nil || got != want {
			Te.Errorf("ParseConcentrationType(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := ParseConcentrationType("mM"); !errors.Is(err, ErrInvalidConcentrationType) {
		Te.Errorf("ParseConcentrationType(mM) returned %v", err)
	}
}
