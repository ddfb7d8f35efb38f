/*
 * request.go, part of chemcalc.
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

package chemjson

import (
	"fmt"
	"strings"

	chem "github.com/rmera/chemcalc"
)

//Operations understood by Handle.
const (
	OpParse         = "parse"
	OpMolarMass     = "molarmass"
	OpComposition   = "composition"
	OpMolarMasses   = "molarmasses"
	OpPurity        = "purity"
	OpConcentration = "concentration"
	OpSoluteMass    = "solutemass"
	OpDilution      = "dilution"
	OpDensity       = "density"
	OpSerial        = "serial"
	OpIdealDensity  = "idealdensity"
	OpEquivalents   = "equivalents"
	OpEqWeight      = "eqweight"
)

//Request is a job passed from the calling external program.
//Only the fields needed by the operation have to be given.
//As in chem.Params, zero values for the auxiliary quantities mean
//that they were not given.
type Request struct {
	Operation string `json:"operation"`

	Formula  string   `json:"formula,omitempty"`
	Formulas []string `json:"formulas,omitempty"`

	Mass              float64 `json:"mass,omitempty"` //g
	Volume            float64 `json:"volume,omitempty"`
	VolumeUnit        string  `json:"volumeUnit,omitempty"` //L, mL or uL. mL if not given
	Concentration     float64 `json:"concentration,omitempty"`
	ConcentrationType string  `json:"concentrationType,omitempty"`
	MolarMass         float64 `json:"molarMass,omitempty"`
	Density           float64 `json:"density,omitempty"`
	EquivalentWeight  float64 `json:"equivalentWeight,omitempty"`
	EquivalenceFactor float64 `json:"equivalenceFactor,omitempty"`
	ReactionType      string  `json:"reactionType,omitempty"`
	Valence           float64 `json:"valence,omitempty"`

	Desired float64 `json:"desired,omitempty"`
	Purity  float64 `json:"purity,omitempty"`

	//exactly one of these must be absent
	C1 *float64 `json:"c1,omitempty"`
	V1 *float64 `json:"v1,omitempty"`
	C2 *float64 `json:"c2,omitempty"`
	V2 *float64 `json:"v2,omitempty"`

	DilutionFactor float64 `json:"dilutionFactor,omitempty"`
	Dilutions      int     `json:"dilutions,omitempty"`
	VolumePerTube  float64 `json:"volumePerTube,omitempty"`
}

func (r *Request) volumeUnit() string {
	if r.VolumeUnit == "" {
		return chem.Milliliter
	}
	return r.VolumeUnit
}

func (r *Request) reactionType() (chem.ReactionType, error) {
	if r.ReactionType == "" {
		return "", nil
	}
	return chem.ParseReactionType(r.ReactionType)
}

//params collects the auxiliary values for the concentration calculations.
func (r *Request) params() (chem.Params, error) {
	rt, err := r.reactionType()
	if err != nil {
		return chem.Params{}, err
	}
	return chem.Params{
		MolarMass:         r.MolarMass,
		Density:           r.Density,
		EquivalentWeight:  r.EquivalentWeight,
		EquivalenceFactor: r.EquivalenceFactor,
		Formula:           r.Formula,
		ReactionType:      rt,
		Valence:           r.Valence,
	}, nil
}

//Response is sent back to the calling program for each Request.
//If Error is not nil, Result is.
type Response struct {
	Operation string      `json:"operation"`
	Result    interface{} `json:"result"`
	Error     *Error      `json:"error,omitempty"`
}

//Handle performs the operation requested in r, and returns the response.
//It never returns nil. Errors are reported in the Error field of the response.
func Handle(r *Request) *Response {
	if r == nil {
		return &Response{Error: requestError("Handle", "nil request")}
	}
	op := strings.ToLower(strings.TrimSpace(r.Operation))
	resp := &Response{Operation: op}
	res, fn, err := dispatch(op, r)
	if err != nil {
		resp.Error = NewError(fn, err)
		return resp
	}
	resp.Result = res
	return resp
}

//dispatch runs the operation op, and returns its result, the name of the chemcalc
//function called, and the error, if any.
func dispatch(op string, r *Request) (interface{}, string, error) {
	switch op {
	case OpParse:
		res, err := chem.ParseFormula(r.Formula)
		return res, "ParseFormula", err
	case OpMolarMass:
		res, err := chem.MolarMass(r.Formula)
		return res, "MolarMass", err
	case OpComposition:
		res, err := chem.PercentComposition(r.Formula)
		return res, "PercentComposition", err
	case OpMolarMasses:
		res, err := chem.MolarMasses(r.Formulas)
		return res, "MolarMasses", err
	case OpPurity:
		res, err := chem.AmountWithPurity(r.Desired, r.Purity)
		return res, "AmountWithPurity", err
	case OpConcentration, OpSoluteMass:
		ct, err := chem.ParseConcentrationType(r.ConcentrationType)
		if err != nil {
			return nil, "ParseConcentrationType", err
		}
		p, err := r.params()
		if err != nil {
			return nil, "ParseReactionType", err
		}
		if op == OpConcentration {
			res, err := chem.Concentration(r.Mass, r.Volume, r.volumeUnit(), ct, p)
			return res, "Concentration", err
		}
		res, err := chem.SoluteMass(r.Concentration, r.Volume, r.volumeUnit(), ct, p)
		return res, "SoluteMass", err
	case OpDilution:
		res, err := chem.Dilution(chem.DilutionParams{C1: r.C1, V1: r.V1, C2: r.C2, V2: r.V2})
		return res, "Dilution", err
	case OpDensity:
		res, err := chem.SolutionDensity(r.Mass, r.Volume)
		return res, "SolutionDensity", err
	case OpSerial:
		res, err := chem.SerialDilutions(r.Concentration, r.DilutionFactor, r.Dilutions, r.VolumePerTube)
		return res, "SerialDilutions", err
	case OpIdealDensity:
		res, err := chem.IdealDensity(r.Formula)
		return res, "IdealDensity", err
	case OpEquivalents:
		rt, err := chem.ParseReactionType(r.ReactionType)
		if err != nil {
			return nil, "ParseReactionType", err
		}
		return chem.DetermineEquivalents(r.Formula, rt), "DetermineEquivalents", nil
	case OpEqWeight:
		rt, err := chem.ParseReactionType(r.ReactionType)
		if err != nil {
			return nil, "ParseReactionType", err
		}
		res, err := chem.EquivalentWeight(r.Formula, rt, r.Valence)
		return res, "EquivalentWeight", err
	}
	return nil, "Handle", requestError("Handle", fmt.Sprintf("unknown operation %q", op))
}
