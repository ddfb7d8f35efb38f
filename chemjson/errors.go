/*
 * errors.go, part of chemcalc.
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
	"encoding/json"
	"errors"
	"strings"

	chem "github.com/rmera/chemcalc"
)

//Kinds of errors, as they appear in the Kind field of an Error.
const (
	KindParse                    = "parse"
	KindMissingParameter         = "missing_parameter"
	KindInvalidUnit              = "invalid_unit"
	KindInvalidConcentrationType = "invalid_concentration_type"
	KindInvalidArgument          = "invalid_argument"
	KindDerivedValue             = "derived_value"
	KindInvalidRequest           = "invalid_request" //the request itself could not be read, or the operation is unknown
	KindInternal                 = "internal"
)

var kinds = []struct {
	err  error
	kind string
}{
	{chem.ErrParse, KindParse},
	{chem.ErrMissingParameter, KindMissingParameter},
	{chem.ErrInvalidUnit, KindInvalidUnit},
	{chem.ErrInvalidConcentrationType, KindInvalidConcentrationType},
	{chem.ErrInvalidArgument, KindInvalidArgument},
	{chem.ErrDerivedValue, KindDerivedValue},
}

//An easily JSON-serializable error type,
type Error struct {
	deco     []string
	Kind     string `json:"kind"`
	Param    string `json:"param,omitempty"`    //the missing parameter, for missing_parameter errors
	Function string `json:"function,omitempty"` //which go function gave the error
	Message  string `json:"message"`            //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) //shouldn't happen, all the fields are strings.
	}
	return ret
}

//NewError takes an error returned by chemcalc, and the function where it was obtained,
//and creates a JSON error of the same kind.
func NewError(function string, err error) *Error {
	jerr := &Error{Kind: KindInternal, Function: function, Message: err.Error()}
	var jin *Error
	if errors.As(err, &jin) {
		jerr.Kind = jin.Kind
		jerr.Param = jin.Param
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			jerr.Kind = k.kind
			break
		}
	}
	var cerr *chem.CError
	if errors.As(err, &cerr) {
		jerr.Param = cerr.Param()
		jerr.deco = append(jerr.deco, cerr.Decorate("")...)
	}
	jerr.Decorate(function)
	return jerr
}

//requestError creates an error for requests that can't be processed at all.
func requestError(function, msg string) *Error {
	return &Error{Kind: KindInvalidRequest, Function: function, Message: msg, deco: []string{function}}
}
