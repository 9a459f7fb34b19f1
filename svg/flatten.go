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

package svg

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgplot/coord"
)

// flattener converts paths into polylines in root coordinates.
type flattener struct {
	// CTM maps user space to root coordinates.
	CTM matrix.Matrix

	// Tolerance is the maximal distance, in root units, between a curve
	// and its approximating polyline.  Must be positive.
	Tolerance float64

	polylines [][]vec.Vec2
	current   []vec.Vec2
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (f *flattener) transformLinear(v vec.Vec2) vec.Vec2 {
	return coord.ApplyVector(f.CTM, v)
}

// flattenQuadratic flattens a quadratic Bézier curve from p0 via the
// control point p1 to p2.  The start point is not emitted.
func (f *flattener) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(vec.Vec2)) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := f.transformLinear(e).Length()

	n := 1
	if errDev > f.Tolerance {
		n = int(math.Ceil(math.Sqrt(errDev / f.Tolerance)))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic flattens a cubic Bézier curve, using Wang's formula to
// choose the number of segments.  The start point is not emitted.
func (f *flattener) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(vec.Vec2)) {
	d1 := f.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * f.Tolerance))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(pt)
	}
}

// add appends a user space point to the current polyline.
func (f *flattener) add(p vec.Vec2) {
	f.current = append(f.current, coord.Apply(f.CTM, p))
}

// endSubpath finishes the current polyline.  Subpaths consisting of a
// single point are dropped.
func (f *flattener) endSubpath() {
	if len(f.current) >= 2 {
		f.polylines = append(f.polylines, f.current)
	}
	f.current = nil
}

// Flatten converts a path into polylines in root coordinates.  Closed
// subpaths end with a copy of their first point.
func (f *flattener) Flatten(p path.Path) [][]vec.Vec2 {
	f.polylines = nil
	f.current = nil

	var currentPt, subpathStartPt vec.Vec2
	inSubpath := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			f.endSubpath()
			currentPt = pts[0]
			subpathStartPt = currentPt
			inSubpath = true
			f.add(currentPt)

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			f.add(pts[0])
			currentPt = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			f.flattenQuadratic(currentPt, pts[0], pts[1], f.add)
			currentPt = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			f.flattenCubic(currentPt, pts[0], pts[1], pts[2], f.add)
			currentPt = pts[2]

		case path.CmdClose:
			if inSubpath {
				if len(f.current) >= 2 && currentPt != subpathStartPt {
					f.add(subpathStartPt)
				}
				f.endSubpath()
				currentPt = subpathStartPt
				inSubpath = false
			}
		}
	}
	f.endSubpath()
	return f.polylines
}
