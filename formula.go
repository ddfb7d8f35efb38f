/*
 * formula.go, part of chemcalc.
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
	"strconv"
	"strings"
)

// ParseFormula parses a chemical formula such as "H2O", "Ca(OH)2" or "CH1.8O0.5N0.2"
// and returns a map from element symbol to the number of atoms of that element.
// Quantities can be decimal, and default to 1. Parenthesized groups can be nested
// and can be followed by a multiplier, which also defaults to 1.
// Repeated elements are added up. Characters that are neither part of an element,
// a number or a group (spaces, charges) are skipped.
// It returns an error if the formula is empty, contains an element that is not in
// the periodic table, or has unbalanced parentheses.
func ParseFormula(formula string) (map[string]float64, error) {
	if strings.TrimSpace(formula) == "" {
		return nil, newError(ErrParse, "ParseFormula", "formula cannot be empty")
	}
	p := &formulaParser{s: formula}
	elements, err := p.group(0)
	if err != nil {
		return nil, errDecorate(err, "ParseFormula: "+formula)
	}
	return elements, nil
}

//formulaParser is a recursive descent parser over the formula string.
//pos is the index of the next byte to be read.
type formulaParser struct {
	s   string
	pos int
}

//group parses elements and subgroups until the end of the string, if depth is 0,
//or until the ')' closing the current group otherwise. The closing parenthesis is consumed.
func (p *formulaParser) group(depth int) (map[string]float64, error) {
	elements := make(map[string]float64)
	empty := true
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch {
		case isUpper(c):
			sym := p.symbol()
			if _, ok := symbolMass[sym]; !ok {
				return nil, newError(ErrParse, "formulaParser.group", "unknown element: %s", sym)
			}
			q, err := p.number()
			if err != nil {
				return nil, err
			}
			elements[sym] += q
			empty = false
		case c == '(':
			p.pos++
			sub, err := p.group(depth + 1)
			if err != nil {
				return nil, err
			}
			mult, err := p.number()
			if err != nil {
				return nil, err
			}
			for k, v := range sub {
				elements[k] += v * mult
			}
			empty = false
		case c == ')':
			if depth == 0 {
				return nil, newError(ErrParse, "formulaParser.group", "unmatched ')' at position %d", p.pos)
			}
			p.pos++
			if empty {
				return nil, newError(ErrParse, "formulaParser.group", "empty group before position %d", p.pos)
			}
			return elements, nil
		default:
			p.pos++
		}
	}
	if depth > 0 {
		return nil, newError(ErrParse, "formulaParser.group", "unmatched '(' in formula")
	}
	return elements, nil
}

//symbol reads an uppercase letter followed by any lowercase letters.
func (p *formulaParser) symbol() string {
	start := p.pos
	p.pos++
	for p.pos < len(p.s) && isLower(p.s[p.pos]) {
		p.pos++
	}
	return p.s[start:p.pos]
}

//number reads a run of digits with at most one decimal point.
//It returns 1 if there is no number at the current position.
func (p *formulaParser) number() (float64, error) {
	start := p.pos
	dot := false
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c == '.' && !dot {
			dot = true
		} else if !isDigit(c) {
			break
		}
		p.pos++
	}
	if start == p.pos {
		return 1, nil
	}
	q, err := strconv.ParseFloat(p.s[start:p.pos], 64)
	if err != nil {
		return 0, newError(ErrParse, "formulaParser.number", "invalid quantity %q at position %d", p.s[start:p.pos], start)
	}
	return q, nil
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
