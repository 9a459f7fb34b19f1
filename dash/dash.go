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

// Package dash splits polylines into the dashes of a stroke dash pattern.
package dash

import (
	"iter"

	"seehuhn.de/go/geom/vec"
)

// IsSolid reports whether the dash array describes a solid stroke.
// This is the case if the array is empty, contains a negative length, or
// if all lengths are zero.
func IsSolid(dashes []float64) bool {
	total := 0.0
	for _, d := range dashes {
		if d < 0 {
			return true
		}
		total += d
	}
	return total <= 0
}

// Length returns the total length of a polyline.
func Length(polyline []vec.Vec2) float64 {
	total := 0.0
	for i := 1; i < len(polyline); i++ {
		total += polyline[i].Sub(polyline[i-1]).Length()
	}
	return total
}

// Segments returns the pieces of the polyline which are "on" under the
// given dash array, as (start, end) pairs.  Each pair lies on a single edge
// of the polyline; a dash which continues around a corner is reported as
// one pair per edge.  Zero-length dashes are reported as pairs with
// start == end.
//
// Arrays of odd length are repeated once to obtain an even number of
// entries.  The pattern starts at the first point of the polyline, with the
// first entry being "on".  If the array describes a solid stroke (see
// [IsSolid]), every edge of the polyline is reported in full.
//
// The sequence is evaluated lazily and can be iterated multiple times.
func Segments(polyline []vec.Vec2, dashes []float64) iter.Seq2[vec.Vec2, vec.Vec2] {
	return func(yield func(vec.Vec2, vec.Vec2) bool) {
		if len(polyline) < 2 {
			return
		}

		if IsSolid(dashes) {
			for i := 1; i < len(polyline); i++ {
				if !yield(polyline[i-1], polyline[i]) {
					return
				}
			}
			return
		}

		n := len(dashes)
		if n%2 == 1 {
			n *= 2
		}
		dashAt := func(i int) float64 {
			return dashes[i%len(dashes)]
		}

		dashIdx := 0
		remaining := dashAt(0)
		isOn := true

		for i := 1; i < len(polyline); i++ {
			a, b := polyline[i-1], polyline[i]
			d := b.Sub(a)
			segLen := d.Length()
			segDist := 0.0

			for {
				if remaining == 0 {
					// zero-length dashes become dots
					if isOn {
						p := a
						if segLen > 0 {
							p = a.Add(d.Mul(segDist / segLen))
						}
						if !yield(p, p) {
							return
						}
					}
					dashIdx = (dashIdx + 1) % n
					remaining = dashAt(dashIdx)
					isOn = dashIdx%2 == 0
					continue
				}

				segRemaining := segLen - segDist
				if remaining >= segRemaining {
					// the current dash element continues past this edge
					if isOn && segRemaining > 0 {
						start := a
						if segDist > 0 {
							start = a.Add(d.Mul(segDist / segLen))
						}
						if !yield(start, b) {
							return
						}
					}
					remaining -= segRemaining
					if remaining == 0 && segRemaining > 0 {
						// the element ends exactly at the corner
						dashIdx = (dashIdx + 1) % n
						remaining = dashAt(dashIdx)
						isOn = dashIdx%2 == 0
					}
					break
				}

				// the current dash element ends within this edge
				endDist := segDist + remaining
				if isOn {
					start := a.Add(d.Mul(segDist / segLen))
					end := a.Add(d.Mul(endDist / segLen))
					if !yield(start, end) {
						return
					}
				}
				segDist = endDist
				dashIdx = (dashIdx + 1) % n
				remaining = dashAt(dashIdx)
				isOn = dashIdx%2 == 0
			}
		}
	}
}
