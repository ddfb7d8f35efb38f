/*
 * plotutils.go, part of chemcalc.
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
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

//Some internal convenience functions.

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

//tubeColor returns a color for the tube key out of steps, going from
//red (the stock) to blue (the most diluted tube).
func tubeColor(key, steps int) color.RGBA {
	if steps < 2 {
		steps = 2
	}
	h := 240.0 * float64(key) / float64(steps-1)
	r, g, b := iHVS2RGB(h, 1, 1)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

//tubeTicks marks every tube on the X axis. If there are too many tubes, only
//some of them get a label.
type tubeTicks struct {
	n int
}

func (t tubeTicks) Ticks(min, max float64) []plot.Tick {
	every := 1
	if t.n > 20 {
		every = t.n / 10
	}
	ticks := make([]plot.Tick, 0, t.n+1)
	for i := 0; i <= t.n; i++ {
		tk := plot.Tick{Value: float64(i)}
		if i%every == 0 {
			tk.Label = strconv.Itoa(i)
		}
		ticks = append(ticks, tk)
	}
	return ticks
}
