/*
 * interfaces.go, part of chemcalc.
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
	"fmt"
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the decoration slice resulting from the current call. If passed an empty string, it just returns the current value.
	//The decorate slice contains a list of functions in the calling stack, plus, for each function any relevant information, or nothing, in the format "FunctionName: Extra info"
}

//The kinds of error. Every *CError returned by this package wraps exactly one of them,
//so they can be matched with errors.Is.
var (
	//The formula is empty, contains an unknown element or is malformed.
	ErrParse = errors.New("parse error")
	//A value required by the concentration type (molar mass or density) was not given.
	ErrMissingParameter = errors.New("missing parameter")
	//Unknown volume unit.
	ErrInvalidUnit = errors.New("invalid volume unit")
	//Unknown concentration type.
	ErrInvalidConcentrationType = errors.New("invalid concentration type")
	//A numeric argument out of its domain.
	ErrInvalidArgument = errors.New("invalid argument")
	//An intermediate quantity came out invalid, e.g. a non-positive solvent mass.
	ErrDerivedValue = errors.New("invalid derived value")
)

// CError is the error type returned by the functions in this package.
type CError struct {
	msg   string
	kind  error
	param string //the missing parameter, for ErrMissingParameter
	deco  []string
}

func (err *CError) Error() string { return err.msg }

// Unwrap returns the kind of the error, i.e. one of the Err* variables.
func (err *CError) Unwrap() error { return err.kind }

// Param returns the name of the missing parameter for ErrMissingParameter errors,
// or an empty string.
func (err *CError) Param() string { return err.param }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func newError(kind error, function, format string, args ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf(format, args...), kind: kind, deco: []string{function}}
}

func missingParam(function, param, reason string) *CError {
	err := newError(ErrMissingParameter, function, "%s is required for %s calculations", param, reason)
	err.param = param
	return err
}

// errDecorate decorates err with caller if it is one of our errors,
// and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
