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

// Package pattern implements pattern fills: capturing the content of a
// pattern tile, finding the tile placements needed to cover a region, and
// replaying the tile content at these placements.
package pattern

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgplot/coord"
)

// MaxTiles is the largest number of tile placements ComputeTilingOffsets
// will return.  Larger lattices give no offsets at all.
const MaxTiles = 1 << 20

// ComputeTilingOffsets returns the displacements, in root coordinates,
// needed to cover the clipping path with copies of a pattern tile.
//
// The tile has the given size in its own coordinate system, and occupies
// the rectangle from (0, 0) to size there.  The transformation of cs maps
// tile coordinates to root coordinates; clip is given in root coordinates.
//
// The bounding box of the clipping path is computed in a coordinate system
// where every tile is a unit square, and rounded outwards to integers.
// Every integer grid point inside the rounded box gives one tile.  For
// non-rectangular clipping paths this can produce tiles which do not
// intersect the path; these are removed by clipping later.
//
// Offsets are enumerated with x in the outer loop and y in the inner loop.
// An empty clipping path gives no offsets, and so does a lattice with more
// than [MaxTiles] points (see [TileCount]).  The caller must ensure that
// the tile has non-zero size and that cs.Transform is invertible.
func ComputeTilingOffsets(size vec.Vec2, cs coord.System, clip [][]vec.Vec2) []vec.Vec2 {
	l, ok := newLattice(size, cs, clip)
	if !ok || l.count() > MaxTiles {
		return nil
	}

	// the count check above keeps these bounds well inside int64
	xMin := int64(l.lo.X)
	yMin := int64(l.lo.Y)
	xMax := int64(l.hi.X)
	yMax := int64(l.hi.Y)

	base := coord.Apply(l.toRoot, vec.Vec2{})
	res := make([]vec.Vec2, 0, (xMax-xMin+1)*(yMax-yMin+1))
	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {
			p := coord.Apply(l.toRoot, vec.Vec2{X: float64(x), Y: float64(y)})
			res = append(res, p.Sub(base))
		}
	}
	return res
}

// TileCount returns the number of offsets ComputeTilingOffsets would
// enumerate, before the [MaxTiles] limit is applied.  The result is +Inf if
// the bounds are not finite.
func TileCount(size vec.Vec2, cs coord.System, clip [][]vec.Vec2) float64 {
	l, ok := newLattice(size, cs, clip)
	if !ok {
		return 0
	}
	return l.count()
}

// lattice is the rounded bounding box of a clipping path in tile units.
type lattice struct {
	toRoot matrix.Matrix
	lo, hi vec.Vec2
}

func newLattice(size vec.Vec2, cs coord.System, clip [][]vec.Vec2) (*lattice, bool) {
	toRoot := coord.Then(matrix.Scale(size.X, size.Y), cs.Transform)
	fromRoot := coord.Invert(toRoot)

	var bbox coord.BBox
	for _, polyline := range clip {
		for _, p := range polyline {
			bbox.Extend(coord.Apply(fromRoot, p))
		}
	}
	if bbox.IsEmpty() {
		return nil, false
	}

	lo, hi := bbox.Min(), bbox.Max()
	return &lattice{
		toRoot: toRoot,
		lo:     vec.Vec2{X: math.Floor(lo.X), Y: math.Floor(lo.Y)},
		hi:     vec.Vec2{X: math.Ceil(hi.X), Y: math.Ceil(hi.Y)},
	}, true
}

func (l *lattice) count() float64 {
	n := (l.hi.X - l.lo.X + 1) * (l.hi.Y - l.lo.Y + 1)
	if math.IsNaN(n) {
		return math.Inf(1)
	}
	return n
}
