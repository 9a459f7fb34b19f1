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

// Package plot collects the polylines a pen plotter draws.
package plot

import (
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgplot/coord"
	"seehuhn.de/go/svgplot/dash"
)

// Plotter receives the geometry produced by shape handlers.
//
// Polylines are given in root coordinates.  A non-empty dash array asks
// for the polyline to be drawn dashed.
type Plotter interface {
	Plot(polyline []vec.Vec2, dashes []float64)
}

// Drawing is a Plotter which stores the final output.
// Dashed polylines are stored as one two-point polyline per dash.
//
// A Drawing is not safe for concurrent use.
type Drawing struct {
	Paths [][]vec.Vec2
}

// Plot implements the [Plotter] interface.
func (d *Drawing) Plot(polyline []vec.Vec2, dashes []float64) {
	if len(polyline) == 0 {
		return
	}
	if len(dashes) == 0 {
		d.Paths = append(d.Paths, slices.Clone(polyline))
		return
	}
	for start, end := range dash.Segments(polyline, dashes) {
		d.Paths = append(d.Paths, []vec.Vec2{start, end})
	}
}

// Bounds returns the bounding box of all stored polylines.
// The result is the zero rectangle if the drawing is empty.
func (d *Drawing) Bounds() rect.Rect {
	var b coord.BBox
	for _, p := range d.Paths {
		for _, pt := range p {
			b.Extend(pt)
		}
	}
	return b.Rect()
}

// Length returns the total pen-down distance of the drawing.
func (d *Drawing) Length() float64 {
	total := 0.0
	for _, p := range d.Paths {
		total += dash.Length(p)
	}
	return total
}
