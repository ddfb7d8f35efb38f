/*
 * plot_test.go, part of chemcalc.
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

/*This provides some tests for the plotting functions, in the form of little functions
 * that have practical applications*/

package chemplot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/chemcalc"
)

func TestDilutionPlot(Te *testing.T) {
	tubes, err := chem.SerialDilutions(1000, 10, 5, 10)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "serial.png")
	if err := DilutionPlot(tubes, "Test serial dilution", name); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Errorf("empty plot file")
	}
}

func TestDilutionPlotTo(Te *testing.T) {
	tubes, err := chem.SerialDilutions(1000, 2, 12, 1)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := NewPlotter(8, 6).PlotTo(tubes, "Twofold", "svg", &buf); err != nil {
		Te.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("<svg")) {
		Te.Errorf("the output doesn't look like an svg file")
	}
}

func TestDilutionPlotErrors(Te *testing.T) {
	var buf bytes.Buffer
	if err := DilutionPlotTo(nil, "nothing", "png", &buf); !errors.Is(err, chem.ErrInvalidArgument) {
		Te.Errorf("plotting no tubes returned %v", err)
	}
	tubes := []chem.Tube{{TubeNumber: 0, Concentration: 1}, {TubeNumber: 1, Concentration: 0}}
	if err := DilutionPlotTo(tubes, "zero", "png", &buf); !errors.Is(err, chem.ErrInvalidArgument) {
		Te.Errorf("plotting a zero concentration returned %v", err)
	}
}
