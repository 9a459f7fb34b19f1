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

// Package coord implements the coordinate systems established by the
// elements of an SVG document.
//
// Transformation matrices use the PDF convention of [matrix.Matrix]: the
// matrix [a b c d e f] maps a point (x, y) to (a*x + c*y + e, b*x + d*y + f).
package coord

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Then returns the transformation which first applies a and then b.
func Then(a, b matrix.Matrix) matrix.Matrix {
	return a.Mul(b)
}

// Apply maps the point p through m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// ApplyVector maps the displacement v through the linear part of m.
func ApplyVector(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// ApplyAll maps every point of a polyline through m.
// The result is a newly allocated slice.
func ApplyAll(m matrix.Matrix, polyline []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(polyline))
	for i, p := range polyline {
		res[i] = Apply(m, p)
	}
	return res
}

// Det returns the determinant of the linear part of m.
func Det(m matrix.Matrix) float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Invertible reports whether m can be inverted.
func Invertible(m matrix.Matrix) bool {
	det := Det(m)
	return det != 0 && !math.IsNaN(det) && !math.IsInf(det, 0)
}

// Invert returns the inverse of m.
//
// Invert panics if m is singular.  Callers must not invert transformations
// derived from zero-size viewports.
func Invert(m matrix.Matrix) matrix.Matrix {
	if !Invertible(m) {
		panic("coord: inverting a singular transformation")
	}
	return m.Inv()
}

// Translate returns the transformation which shifts by (dx, dy).
func Translate(dx, dy float64) matrix.Matrix {
	return matrix.Identity.Translate(dx, dy)
}

// SkewX returns a skew along the x-axis by the given angle in degrees.
func SkewX(deg float64) matrix.Matrix {
	return matrix.Matrix{1, 0, math.Tan(deg * math.Pi / 180), 1, 0, 0}
}

// SkewY returns a skew along the y-axis by the given angle in degrees.
func SkewY(deg float64) matrix.Matrix {
	return matrix.Matrix{1, math.Tan(deg * math.Pi / 180), 0, 1, 0, 0}
}

// NearlyEqual reports whether all coefficients of a and b differ by at most
// eps.
func NearlyEqual(a, b matrix.Matrix, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// Rotate returns a rotation by the given angle in degrees.  In SVG
// coordinates, where the y-axis points down, positive angles rotate
// clockwise.
func Rotate(deg float64) matrix.Matrix {
	return matrix.RotateDeg(deg)
}
