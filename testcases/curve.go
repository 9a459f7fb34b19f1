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

package testcases

import "math"

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		SVG:    doc(`<path d="M0 0 Q50 50 100 0"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
	},
	{
		Name:   "cubic_smooth",
		SVG:    doc(`<path d="M0 50 C10 40 20 40 30 50 S50 60 60 50 s20 -10 30 0"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
	},
	{
		Name:   "quadratic_smooth",
		SVG:    doc(`<path d="M0 50 Q10 40 20 50 T40 50 t20 0"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
	},
	{
		Name:   "arc_half",
		SVG:    doc(`<path d="M0 50 A50 50 0 0 1 100 50"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: math.Pi * 50,
	},
	{
		Name:   "arc_full_circle",
		SVG:    doc(`<path d="M0 50 A50 50 0 1 1 100 50 A50 50 0 1 1 0 50 Z"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: math.Pi * 100,
	},
	{
		Name:   "arc_relative_scaled_radius",
		SVG:    doc(`<path d="M10 50 a1 1 0 0 0 80 0"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: math.Pi * 40,
	},
	{
		Name:   "arc_zero_radius",
		SVG:    doc(`<path d="M0 0 A0 10 0 0 1 30 40"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 50,
	},
}
