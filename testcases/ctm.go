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

var transformCases = []TestCase{
	{
		Name:   "translate",
		SVG:    doc(`<g transform="translate(10,10)"><line x2="10"/></g>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 10,
	},
	{
		Name:   "scale",
		SVG:    doc(`<line x2="10" transform="scale(3)"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 30,
	},
	{
		Name:   "rotate_center",
		SVG:    doc(`<rect width="10" height="10" transform="rotate(45 5 5)"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 40,
	},
	{
		Name:   "nested_groups",
		SVG:    doc(`<g transform="scale(2)"><g transform="scale(0.5)"><g transform="translate(20 20)"><rect width="10" height="10"/></g></g></g>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 40,
	},
	{
		Name:   "skew",
		SVG:    doc(`<line y2="10" transform="skewX(45)"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 10 * math.Sqrt2,
	},
	{
		Name:   "matrix",
		SVG:    doc(`<line x2="10" transform="matrix(0 1 -1 0 50 0)"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 10,
	},
	{
		// a circle scaled into an ellipse with semi-axes 20 and 10
		Name:   "nonuniform_scale",
		SVG:    doc(`<circle cx="10" cy="20" r="10" transform="scale(2,1)"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: math.Pi * (90 - math.Sqrt(70*50)),
	},
}
