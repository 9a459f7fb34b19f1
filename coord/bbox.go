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

package coord

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BBox accumulates the axis-aligned bounding box of a set of points.
// The zero value is an empty box.
type BBox struct {
	r     rect.Rect
	valid bool
}

// Extend grows the box to include p.
func (b *BBox) Extend(p vec.Vec2) {
	if !b.valid {
		b.r = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
		b.valid = true
		return
	}
	b.r.Add(p.X, p.Y)
}

// IsEmpty reports whether no points have been added.
func (b *BBox) IsEmpty() bool {
	return !b.valid
}

// Rect returns the bounding box.  The result is the zero rectangle if the
// box is empty.
func (b *BBox) Rect() rect.Rect {
	return b.r
}

// Min returns the lower left corner of the box.
func (b *BBox) Min() vec.Vec2 {
	return vec.Vec2{X: b.r.LLx, Y: b.r.LLy}
}

// Max returns the upper right corner of the box.
func (b *BBox) Max() vec.Vec2 {
	return vec.Vec2{X: b.r.URx, Y: b.r.URy}
}
