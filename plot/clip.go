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

package plot

import (
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Inside reports whether p lies inside the region bounded by clip, using
// the even-odd rule.  Every polyline of clip is treated as closed.
func Inside(p vec.Vec2, clip [][]vec.Vec2) bool {
	inside := false
	for _, ring := range clip {
		n := len(ring)
		for i := range n {
			a := ring[i]
			b := ring[(i+1)%n]
			if (a.Y > p.Y) == (b.Y > p.Y) {
				continue
			}
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// ClipPolyline returns the parts of polyline which lie inside clip, using
// the even-odd rule.  Every polyline of clip is treated as closed.
func ClipPolyline(polyline []vec.Vec2, clip [][]vec.Vec2) [][]vec.Vec2 {
	var res [][]vec.Vec2
	var cur []vec.Vec2
	flush := func() {
		if len(cur) >= 2 {
			res = append(res, cur)
		}
		cur = nil
	}

	var ts []float64
	for i := 1; i < len(polyline); i++ {
		a, b := polyline[i-1], polyline[i]
		d := b.Sub(a)

		ts = append(ts[:0], 0, 1)
		for _, ring := range clip {
			n := len(ring)
			for j := range n {
				if t, ok := intersect(a, b, ring[j], ring[(j+1)%n]); ok {
					ts = append(ts, t)
				}
			}
		}
		slices.Sort(ts)
		ts = slices.Compact(ts)

		for k := 1; k < len(ts); k++ {
			t0, t1 := ts[k-1], ts[k]
			mid := a.Add(d.Mul((t0 + t1) / 2))
			if !Inside(mid, clip) {
				flush()
				continue
			}
			p0 := a.Add(d.Mul(t0))
			p1 := a.Add(d.Mul(t1))
			if len(cur) == 0 {
				cur = append(cur, p0)
			}
			cur = append(cur, p1)
		}
	}
	flush()
	return res
}

// intersect returns the parameter t in (0, 1) at which the segment a-b
// crosses the segment c-d.  Parallel segments never intersect.
func intersect(a, b, c, d vec.Vec2) (float64, bool) {
	r := b.Sub(a)
	s := d.Sub(c)
	denom := r.X*s.Y - r.Y*s.X
	if denom == 0 {
		return 0, false
	}
	q := c.Sub(a)
	t := (q.X*s.Y - q.Y*s.X) / denom
	u := (q.X*r.Y - q.Y*r.X) / denom
	if t <= 0 || t >= 1 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}
