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

package chemplot

import (
	"fmt"
	"io"

	chem "github.com/rmera/chemcalc"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Default size of the plots.
const (
	DefaultWidth  = 12 * vg.Centimeter
	DefaultHeight = 9 * vg.Centimeter
)

// Plotter draws serial dilutions with a given size.
type Plotter struct {
	Width  vg.Length
	Height vg.Length
}

// NewPlotter returns a Plotter for plots of width x height cm.
// Non-positive values are replaced by the default size.
func NewPlotter(width, height float64) *Plotter {
	p := &Plotter{Width: DefaultWidth, Height: DefaultHeight}
	if width > 0 {
		p.Width = vg.Length(width) * vg.Centimeter
	}
	if height > 0 {
		p.Height = vg.Length(height) * vg.Centimeter
	}
	return p
}

//dilutionPlot builds the plot of the concentration of each tube against its number.
//The concentration axis is logarithmic.
func dilutionPlot(tubes []chem.Tube, title string) (*plot.Plot, error) {
	if len(tubes) == 0 {
		return nil, fmt.Errorf("chemplot: no tubes to plot: %w", chem.ErrInvalidArgument)
	}
	pts := make(plotter.XYs, len(tubes))
	for i, t := range tubes {
		if t.Concentration <= 0 {
			return nil, fmt.Errorf("chemplot: tube %d has a concentration of %g, which can't be drawn in a log scale: %w", t.TubeNumber, t.Concentration, chem.ErrInvalidArgument)
		}
		pts[i].X = float64(t.TubeNumber)
		pts[i].Y = t.Concentration
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Tube"
	p.Y.Label.Text = "Concentration"
	p.X.Tick.Marker = tubeTicks{n: tubes[len(tubes)-1].TubeNumber}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("chemplot: %w", err)
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(l)
	//one scatter per tube, so each gets its color.
	for i := range pts {
		s, err := plotter.NewScatter(pts[i : i+1])
		if err != nil {
			return nil, fmt.Errorf("chemplot: %w", err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(3)
		s.GlyphStyle.Color = tubeColor(i, len(pts))
		p.Add(s)
	}
	return p, nil
}

// Plot saves the plot of the serial dilution in tubes to filename. The format is
// given by the extension of filename (png, svg, pdf, eps, jpg or tif).
func (pl *Plotter) Plot(tubes []chem.Tube, title, filename string) error {
	p, err := dilutionPlot(tubes, title)
	if err != nil {
		return err
	}
	//here I intentionally shadow err.
	if err := p.Save(pl.Width, pl.Height, filename); err != nil {
		return fmt.Errorf("chemplot: saving %s: %w", filename, err)
	}
	return nil
}

// PlotTo writes the plot of the serial dilution in tubes to w, in the given format
// (png, svg, pdf, eps, jpg or tif).
func (pl *Plotter) PlotTo(tubes []chem.Tube, title, format string, w io.Writer) error {
	p, err := dilutionPlot(tubes, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(pl.Width, pl.Height, format)
	if err != nil {
		return fmt.Errorf("chemplot: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// DilutionPlot saves a plot, with the default size, of the concentrations of the tubes
// in a serial dilution to filename. Zero or negative concentrations can't be plotted,
// and cause an error.
func DilutionPlot(tubes []chem.Tube, title, filename string) error {
	return NewPlotter(0, 0).Plot(tubes, title, filename)
}

// DilutionPlotTo is like DilutionPlot, but writes the plot to w in the given format.
func DilutionPlotTo(tubes []chem.Tube, title, format string, w io.Writer) error {
	return NewPlotter(0, 0).PlotTo(tubes, title, format, w)
}
