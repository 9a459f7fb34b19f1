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

var precisionCases = []TestCase{
	{
		Name:   "tiny_circle",
		SVG:    doc(`<circle cx="50" cy="50" r="0.01"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
	},
	{
		Name:   "large_circle",
		SVG:    doc(`<circle r="10000"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 2 * math.Pi * 10000,
	},
	{
		// flattening uses the tolerance after the transformation,
		// so that this circle is drawn as a polygon with few corners
		Name:   "scaled_down_circle",
		SVG:    doc(`<circle cx="50000" cy="50000" r="1000" transform="scale(0.001)"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
	},
	{
		Name:   "large_offset",
		SVG:    doc(`<g transform="translate(-1000000,-1000000)"><rect x="1000010" y="1000010" width="20" height="10"/></g>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 60,
	},
}
