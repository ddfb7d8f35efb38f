/*
 * equivalents.go, part of chemcalc.
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
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ReactionType is the kind of reaction for which equivalents are counted.
type ReactionType string

const (
	Acid  ReactionType = "acid"  //equivalents are H+ donated
	Base  ReactionType = "base"  //equivalents are OH- given
	Redox ReactionType = "redox" //equivalents are electrons exchanged
)

// ParseReactionType returns the ReactionType for s ("acid", "base" or "redox", in any case).
func ParseReactionType(s string) (ReactionType, error) {
	rt := ReactionType(strings.ToLower(strings.TrimSpace(s)))
	switch rt {
	case Acid, Base, Redox:
		return rt, nil
	}
	return "", newError(ErrInvalidArgument, "ParseReactionType", "invalid reaction type %q, must be acid, base or redox", s)
}

// EquivalentsSource tells how an Equivalents value was obtained, and so, how much it can be trusted.
type EquivalentsSource int

const (
	FromTable     EquivalentsSource = iota //known compound
	FromHeuristic                          //estimated from the formula
	FromDefault                            //nothing could be determined, 1 was used
)

func (s EquivalentsSource) String() string {
	switch s {
	case FromTable:
		return "table"
	case FromHeuristic:
		return "heuristic"
	}
	return "default"
}

// MarshalText implements encoding.TextMarshaler, so sources are serialized by name.
func (s EquivalentsSource) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *EquivalentsSource) UnmarshalText(text []byte) error {
	switch string(text) {
	case "table":
		*s = FromTable
	case "heuristic":
		*s = FromHeuristic
	case "default":
		*s = FromDefault
	default:
		return newError(ErrInvalidArgument, "EquivalentsSource.UnmarshalText", "unknown source %q", string(text))
	}
	return nil
}

// Equivalents is the number of equivalents per mole of a compound in a reaction.
type Equivalents struct {
	Equivalents float64           `json:"equivalents"`
	Explanation string            `json:"explanation"`
	Source      EquivalentsSource `json:"source"`
}

//A compound with known equivalents. Only the reaction types
//in the map apply to it.
type knownCompound struct {
	eq          map[ReactionType]float64
	explanation string
}

var commonEquivalents = map[string]knownCompound{
	//acids
	"H2SO4":   {map[ReactionType]float64{Acid: 2}, "H2SO4 can donate 2 H+"},
	"H3PO4":   {map[ReactionType]float64{Acid: 3}, "H3PO4 can donate 3 H+"},
	"H2CO3":   {map[ReactionType]float64{Acid: 2}, "H2CO3 can donate 2 H+"},
	"HCl":     {map[ReactionType]float64{Acid: 1}, "HCl can donate 1 H+"},
	"HNO3":    {map[ReactionType]float64{Acid: 1}, "HNO3 can donate 1 H+"},
	"CH3COOH": {map[ReactionType]float64{Acid: 1}, "CH3COOH can donate 1 H+"},
	"HC2H3O2": {map[ReactionType]float64{Acid: 1}, "HC2H3O2 can donate 1 H+"},
	"H3BO3":   {map[ReactionType]float64{Acid: 1}, "H3BO3 can donate 1 H+"},
	"H2C2O4":  {map[ReactionType]float64{Acid: 2}, "H2C2O4 can donate 2 H+"},
	"H2SO3":   {map[ReactionType]float64{Acid: 2}, "H2SO3 can donate 2 H+"},
	//bases
	"NaOH":    {map[ReactionType]float64{Base: 1}, "NaOH contains 1 OH-"},
	"KOH":     {map[ReactionType]float64{Base: 1}, "KOH contains 1 OH-"},
	"Ca(OH)2": {map[ReactionType]float64{Base: 2}, "Ca(OH)2 contains 2 OH-"},
	"Mg(OH)2": {map[ReactionType]float64{Base: 2}, "Mg(OH)2 contains 2 OH-"},
	"Ba(OH)2": {map[ReactionType]float64{Base: 2}, "Ba(OH)2 contains 2 OH-"},
	"Al(OH)3": {map[ReactionType]float64{Base: 3}, "Al(OH)3 contains 3 OH-"},
	"Fe(OH)3": {map[ReactionType]float64{Base: 3}, "Fe(OH)3 contains 3 OH-"},
	//redox, electrons exchanged per formula unit
	"KMnO4":     {map[ReactionType]float64{Redox: 5}, "KMnO4: Mn goes from +7 to +2 (5e-)"},
	"K2Cr2O7":   {map[ReactionType]float64{Redox: 6}, "K2Cr2O7: 2 Cr go from +6 to +3 (6e-)"},
	"H2O2":      {map[ReactionType]float64{Redox: 2}, "H2O2: O goes from -1 to -2 (2e-)"},
	"FeSO4":     {map[ReactionType]float64{Redox: 1}, "FeSO4: Fe goes from +2 to +3 (1e-)"},
	"Fe2(SO4)3": {map[ReactionType]float64{Redox: 2}, "Fe2(SO4)3: 2 Fe go from +3 to +2 (2e-)"},
}

//Leading H's of an acid. Symbols that start with H (He, Hg...) don't count.
var acidRegex = regexp.MustCompile(`^H(\d+)?(?:[^a-z]|$)`)

//Hydroxide groups of a base.
var baseRegex = regexp.MustCompile(`\(OH\)(\d+)?`)

// DetermineEquivalents estimates the number of equivalents per mole of the compound
// with the given formula, for the reaction type rt. Known compounds are looked up in a table.
// Otherwise, for acids, the leading H's of the formula are counted, and for bases, the OH groups
// in parentheses. The Source field of the result tells which of these was used. If nothing works, 1 is returned,
// with Source FromDefault. The result is an approximation: exact values require knowing the
// actual reaction.
func DetermineEquivalents(formula string, rt ReactionType) Equivalents {
	if formula == "" {
		return Equivalents{1, "default value", FromDefault}
	}
	f := normalizeFormula(formula)
	if c, ok := commonEquivalents[f]; ok {
		if eq, ok := c.eq[rt]; ok {
			return Equivalents{eq, c.explanation, FromTable}
		}
	}
	switch rt {
	case Acid:
		if m := acidRegex.FindStringSubmatch(f); m != nil {
			n := leadingCount(m[1])
			return Equivalents{n, fmt.Sprintf("estimated %g H+ based on the formula", n), FromHeuristic}
		}
	case Base:
		if m := baseRegex.FindStringSubmatch(f); m != nil {
			n := leadingCount(m[1])
			return Equivalents{n, fmt.Sprintf("estimated %g OH- based on the formula", n), FromHeuristic}
		}
	case Redox:
		return Equivalents{1, "default value for redox reactions, the oxidation states must be analyzed to get the actual value", FromDefault}
	}
	return Equivalents{1, "could not be determined automatically", FromDefault}
}

//leadingCount returns the integer in digits, or 1 if digits is empty.
func leadingCount(digits string) float64 {
	if digits == "" {
		return 1
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		//can only happen with absurdly long digit runs.
		return 1
	}
	return float64(n)
}

//Equivalence factors for acids and bases, by exact formula.
var acidFactors = map[string]float64{
	"H2SO4":   2,
	"H3PO4":   3,
	"H2CO3":   2,
	"HCl":     1,
	"HNO3":    1,
	"CH3COOH": 1,
	"HC2H3O2": 1,
	"H3BO3":   1,
	"H2C2O4":  2,
	"H2SO3":   2,
}

var baseFactors = map[string]float64{
	"NaOH":    1,
	"KOH":     1,
	"Ca(OH)2": 2,
	"Mg(OH)2": 2,
	"Ba(OH)2": 2,
	"Al(OH)3": 3,
	"Fe(OH)3": 3,
}

// EquivalentWeight returns the equivalent weight, in g/eq, of the compound with the given formula,
// i.e. its molar mass divided by its equivalence factor, rounded to 4 decimals.
// For acids and bases the factor is looked up by exact formula, and is 1 for compounds not known.
// For redox reactions the factor is valence, the number of electrons exchanged (use 1 if unknown), which must be positive.
// For other reaction types the factor is 1.
func EquivalentWeight(formula string, rt ReactionType, valence float64) (float64, error) {
	mm, err := MolarMass(formula)
	if err != nil {
		return 0, errDecorate(err, "EquivalentWeight")
	}
	factor := 1.0
	switch ReactionType(strings.ToLower(string(rt))) {
	case Acid:
		if f, ok := acidFactors[formula]; ok {
			factor = f
		}
	case Base:
		if f, ok := baseFactors[formula]; ok {
			factor = f
		}
	case Redox:
		if !finite(valence) || valence <= 0 {
			return 0, newError(ErrInvalidArgument, "EquivalentWeight", "valence must be greater than zero, got %g", valence)
		}
		factor = valence
	}
	return round(mm/factor, resultPrec), nil
}
