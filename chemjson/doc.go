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

//Package chemjson allows programs written in other languages to use chemcalc.
//The calling program writes requests, serialized as JSON, one per line,
//and gets back a JSON response for each, for instance, via UNIX pipes.
//Each request names an operation and carries the values that operation needs.
//chemjson also implements the exchange of serial dilution tables, optionally
//compressed with zstd.
package chemjson
