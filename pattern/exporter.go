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

package pattern

import (
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgplot/dash"
)

// Exporter collects the polylines drawn while the content of a pattern
// tile is traversed.
//
// An Exporter is not safe for concurrent use.
type Exporter struct {
	paths *[][]vec.Vec2
}

// NewExporter returns an Exporter which appends to *paths.
func NewExporter(paths *[][]vec.Vec2) *Exporter {
	return &Exporter{paths: paths}
}

// Plot implements the [plot.Plotter] interface.
//
// Undashed polylines are stored unchanged.  Dashed polylines are replaced
// by one two-point polyline per dash.
func (e *Exporter) Plot(polyline []vec.Vec2, dashes []float64) {
	// Splitting undashed lines would produce one line per segment.
	if len(dashes) == 0 {
		*e.paths = append(*e.paths, slices.Clone(polyline))
		return
	}

	for start, end := range dash.Segments(polyline, dashes) {
		*e.paths = append(*e.paths, []vec.Vec2{start, end})
	}
}
