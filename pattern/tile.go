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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgplot/coord"
	"seehuhn.de/go/svgplot/plot"
)

// Tile holds the content of a pattern tile, in pattern content
// coordinates.  The content is captured once per pattern definition and
// then replayed for every element filled with the pattern.
type Tile struct {
	Paths [][]vec.Vec2
}

// Exporter returns a plotter which captures polylines into the tile.
func (t *Tile) Exporter() *Exporter {
	return NewExporter(&t.Paths)
}

// Replay plots one copy of the tile content for every offset.
//
// Tile content is mapped to root coordinates using toRoot, shifted by the
// offset, and clipped against clip using the even-odd rule.  The resulting
// pieces are plotted undashed, since dashes were already applied during
// capture.
func (t *Tile) Replay(toRoot matrix.Matrix, offsets []vec.Vec2, clip [][]vec.Vec2, sink plot.Plotter) {
	if len(offsets) == 0 || len(t.Paths) == 0 {
		return
	}

	origin := make([][]vec.Vec2, len(t.Paths))
	for i, p := range t.Paths {
		origin[i] = coord.ApplyAll(toRoot, p)
	}

	buf := make([]vec.Vec2, 0, 16)
	for _, offset := range offsets {
		for _, p := range origin {
			buf = buf[:0]
			for _, q := range p {
				buf = append(buf, q.Add(offset))
			}
			for _, piece := range plot.ClipPolyline(buf, clip) {
				sink.Plot(piece, nil)
			}
		}
	}
}
