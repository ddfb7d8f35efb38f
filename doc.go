/*
 * doc.go, part of chemcalc.
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

/*Package chem is the main package of the chemcalc library. It provides the calculations
needed in the everyday preparation of solutions in a laboratory.



	**chemcalc Capabilities**


    Parses chemical formulas, including decimal subscripts (CH1.8O0.5N0.2) and
	nested groups with multipliers (Fe2(SO4)3), into element counts.

    Calculates molar masses and percent compositions, for one formula or many
	at once.

    Converts between the mass of solute and the concentration of a solution,
	for molarity, molality, normality, formality, mass/volume, mass/mass and
	volume/volume percentages, and ppm, ppb and ppt.

    Solves C1*V1 = C2*V2 and plans serial dilutions.

    Corrects amounts for reagent purity.

    Estimates equivalents and equivalent weights for acid-base and redox
	reactions, and densities of compounds. These are approximations, and the
	returned values say where they come from.

All the functions are pure, and can be used concurrently. Errors returned by the
package are *CError values. Their kind can be checked with errors.Is against
ErrParse, ErrMissingParameter, ErrInvalidUnit, ErrInvalidConcentrationType,
ErrInvalidArgument and ErrDerivedValue.

The subpackage chemplot draws serial dilutions, and chemjson allows other programs
to use the library by exchanging JSON messages.*/
package chem
