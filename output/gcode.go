// seehuhn.de/go/svgplot - convert SVG drawings for pen plotters
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package output writes plotted polylines as G-code, JSON and as PDF or
// PNG previews.
package output

import (
	"bufio"
	"fmt"
	"io"

	"seehuhn.de/go/geom/vec"
)

// GCodeOptions controls the G-code output.
type GCodeOptions struct {
	// Scale converts root units to machine units.  Zero means 1.
	Scale float64

	// Feed is the feed rate for drawing moves.  If this is zero, no feed
	// rate is set.
	Feed float64

	// PenUp and PenDown are the commands to lift and lower the pen.
	// Empty strings select "G0 Z5" and "G1 Z0".
	PenUp, PenDown string

	// Height is the height of the drawing in root units.  If this is
	// positive, the y-axis is flipped so that the machine y-axis points
	// up.
	Height float64
}

// WriteGCode writes the polylines as a G-code program.  The pen is raised
// for moves between polylines and lowered while a polyline is drawn.
func WriteGCode(w io.Writer, paths [][]vec.Vec2, opt GCodeOptions) error {
	scale := opt.Scale
	if scale == 0 {
		scale = 1
	}
	penUp := opt.PenUp
	if penUp == "" {
		penUp = "G0 Z5"
	}
	penDown := opt.PenDown
	if penDown == "" {
		penDown = "G1 Z0"
	}
	xy := func(p vec.Vec2) (float64, float64) {
		y := p.Y
		if opt.Height > 0 {
			y = opt.Height - y
		}
		return p.X * scale, y * scale
	}

	out := bufio.NewWriter(w)
	fmt.Fprintln(out, "(generated by svgplot)")
	fmt.Fprintln(out, "G21 (units in mm)")
	fmt.Fprintln(out, "G90 (absolute coordinates)")
	fmt.Fprintln(out, penUp)
	if opt.Feed > 0 {
		fmt.Fprintf(out, "G1 F%.1f\n", opt.Feed)
	}

	for _, p := range paths {
		if len(p) < 2 {
			continue
		}
		x, y := xy(p[0])
		fmt.Fprintf(out, "G0 X%.3f Y%.3f\n", x, y)
		fmt.Fprintln(out, penDown)
		for _, q := range p[1:] {
			x, y := xy(q)
			fmt.Fprintf(out, "G1 X%.3f Y%.3f\n", x, y)
		}
		fmt.Fprintln(out, penUp)
	}
	fmt.Fprintln(out, "G0 X0 Y0")
	fmt.Fprintln(out, "M2")
	return out.Flush()
}
