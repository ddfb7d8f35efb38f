/*
 * dilution.go, part of chemcalc.
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

// DilutionParams are the four quantities in C1*V1 = C2*V2.
// Exactly one of them must be nil, that one will be calculated.
// Any concentration and volume units can be used, as long as both
// concentrations and both volumes are in the same units.
type DilutionParams struct {
	C1, V1, C2, V2 *float64
}

// DilutionResult contains the four quantities in C1*V1 = C2*V2.
type DilutionResult struct {
	C1 float64 `json:"c1"`
	V1 float64 `json:"v1"`
	C2 float64 `json:"c2"`
	V2 float64 `json:"v2"`
}

// Dilution solves C1*V1 = C2*V2 for the one quantity in p which is nil. The calculated
// value is rounded to 4 decimals, the others are returned as given.
// It returns an error if zero or more than one quantities are nil, or if the quantity that
// would divide in the calculation is zero.
func Dilution(p DilutionParams) (DilutionResult, error) {
	const fn = "Dilution"
	fields := []*float64{p.C1, p.V1, p.C2, p.V2}
	missing := 0
	for _, v := range fields {
		if v == nil {
			missing++
		} else if !finite(*v) {
			return DilutionResult{}, newError(ErrInvalidArgument, fn, "all the given values must be finite numbers")
		}
	}
	if missing != 1 {
		return DilutionResult{}, newError(ErrInvalidArgument, fn, "exactly one parameter must be missing, got %d", missing)
	}
	//solve returns num1*num2/div, rounded.
	solve := func(num1, num2, div float64, name string) (float64, error) {
		if div == 0 {
			return 0, newError(ErrInvalidArgument, fn, "can't calculate %s: division by zero", name)
		}
		return round(num1*num2/div, resultPrec), nil
	}
	var r DilutionResult
	var err error
	switch {
	case p.C1 == nil:
		r.V1, r.C2, r.V2 = *p.V1, *p.C2, *p.V2
		r.C1, err = solve(r.C2, r.V2, r.V1, "C1")
	case p.V1 == nil:
		r.C1, r.C2, r.V2 = *p.C1, *p.C2, *p.V2
		r.V1, err = solve(r.C2, r.V2, r.C1, "V1")
	case p.C2 == nil:
		r.C1, r.V1, r.V2 = *p.C1, *p.V1, *p.V2
		r.C2, err = solve(r.C1, r.V1, r.V2, "C2")
	default:
		r.C1, r.V1, r.C2 = *p.C1, *p.V1, *p.C2
		r.V2, err = solve(r.C1, r.V1, r.C2, "V2")
	}
	if err != nil {
		return DilutionResult{}, err
	}
	return r, nil
}

// Tube is one tube in a serial dilution. Volumes are in the units
// of the volume per tube given to SerialDilutions.
type Tube struct {
	TubeNumber     int     `json:"tubeNumber"`     //0 is the stock solution
	Concentration  float64 `json:"concentration"`  //in the units of the initial concentration
	DilutionFactor float64 `json:"dilutionFactor"` //relative to the previous tube
	SolventVolume  float64 `json:"solventVolume"`  //solvent to put in the tube
	TransferVolume float64 `json:"transferVolume"` //volume to transfer from this tube to the next one
	FinalVolume    float64 `json:"finalVolume"`
}

// SerialDilutions returns the tubes of a serial dilution of a stock with concentration initial,
// where each of the n dilutions reduces the concentration by factor, and each tube ends up with volumePerTube.
// The first element is the stock (tube 0), so the result has n+1 tubes. Concentrations of the diluted
// tubes are rounded to 6 decimals. The last tube has a transfer volume of 0.
// factor must be greater than 1, and n and volumePerTube, greater than zero.
func SerialDilutions(initial, factor float64, n int, volumePerTube float64) ([]Tube, error) {
	const fn = "SerialDilutions"
	if !finite(initial, factor, volumePerTube) {
		return nil, newError(ErrInvalidArgument, fn, "all the values must be finite numbers")
	}
	if factor <= 1 {
		return nil, newError(ErrInvalidArgument, fn, "the dilution factor must be greater than 1, got %g", factor)
	}
	if n <= 0 {
		return nil, newError(ErrInvalidArgument, fn, "the number of dilutions must be greater than 0, got %d", n)
	}
	if volumePerTube <= 0 {
		return nil, newError(ErrInvalidArgument, fn, "the volume per tube must be greater than 0, got %g", volumePerTube)
	}
	transfer := volumePerTube / factor
	tubes := make([]Tube, 0, n+1)
	tubes = append(tubes, Tube{
		TubeNumber:     0,
		Concentration:  initial,
		DilutionFactor: 1,
		SolventVolume:  0,
		TransferVolume: transfer,
		FinalVolume:    volumePerTube,
	})
	c := initial
	for i := 1; i <= n; i++ {
		c /= factor //the running value is not rounded
		t := Tube{
			TubeNumber:     i,
			Concentration:  round(c, serialPrec),
			DilutionFactor: factor,
			SolventVolume:  volumePerTube - transfer,
			TransferVolume: transfer,
			FinalVolume:    volumePerTube,
		}
		if i == n {
			t.TransferVolume = 0
		}
		tubes = append(tubes, t)
	}
	return tubes, nil
}

// AmountWithPurity returns the amount of a reagent with the given purity (in percent) needed to
// get desired of the pure substance, rounded to 4 decimals. purity must be in (0,100].
func AmountWithPurity(desired, purity float64) (float64, error) {
	if !finite(desired, purity) || purity <= 0 || purity > 100 {
		return 0, newError(ErrInvalidArgument, "AmountWithPurity", "purity must be greater than 0 and at most 100, got %g", purity)
	}
	return round(desired*100/purity, resultPrec), nil
}

// SolutionDensity returns mass/volume, rounded to 4 decimals. With the mass in g and the volume in mL,
// that is the density in g/mL. volume must be greater than zero.
func SolutionDensity(mass, volume float64) (float64, error) {
	if !finite(mass, volume) || volume <= 0 {
		return 0, newError(ErrInvalidArgument, "SolutionDensity", "volume must be greater than zero, got %g", volume)
	}
	return round(mass/volume, resultPrec), nil
}
