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

package output

import (
	"encoding/json"
	"io"

	"seehuhn.de/go/geom/vec"
)

// Polylines is the JSON representation of a drawing.
type Polylines struct {
	Paths [][][2]float64 `json:"paths"`
}

// WriteJSON writes the polylines as a JSON object of the form
// {"paths": [[[x, y], ...], ...]}.
func WriteJSON(w io.Writer, paths [][]vec.Vec2) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToPolylines(paths))
}

// ToPolylines converts polylines to their JSON representation.
func ToPolylines(paths [][]vec.Vec2) Polylines {
	out := Polylines{Paths: make([][][2]float64, 0, len(paths))}
	for _, p := range paths {
		pts := make([][2]float64, len(p))
		for i, q := range p {
			pts[i] = [2]float64{q.X, q.Y}
		}
		out.Paths = append(out.Paths, pts)
	}
	return out
}
