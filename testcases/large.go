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

var viewportCases = []TestCase{
	{
		Name:   "viewbox_scale",
		SVG:    `<svg xmlns="http://www.w3.org/2000/svg" width="1000" height="500" viewBox="0 0 100 50"><line x2="100"/></svg>`,
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 1000,
	},
	{
		Name:   "viewbox_meet",
		SVG:    `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 10 10"><line x2="10"/></svg>`,
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 100,
	},
	{
		Name:   "viewbox_slice",
		SVG:    `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 10 10" preserveAspectRatio="xMidYMid slice"><line x2="10"/></svg>`,
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 200,
	},
	{
		Name:   "viewbox_none",
		SVG:    `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 10 10" preserveAspectRatio="none"><line x2="10" y2="10"/></svg>`,
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: math.Hypot(200, 100),
	},
	{
		Name:   "default_size",
		SVG:    `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1"><line x2="1"/></svg>`,
		Width:  300,
		Height: 300,
		Paths:  1,
		Length: 300,
	},
	{
		Name: "nested_svg",
		SVG: doc(`<svg x="10" y="10" width="50" height="50" viewBox="0 0 5 5">
			<rect width="5" height="5"/>
		</svg>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 200,
	},
	{
		Name: "nested_disabled",
		SVG: doc(`<svg width="0" height="50"><rect width="5" height="5"/></svg>
			<svg width="50" height="50" viewBox="0 0 0 5"><rect width="5" height="5"/></svg>
			<line x2="10"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 10,
	},
	{
		Name:   "disabled_document",
		SVG:    `<svg xmlns="http://www.w3.org/2000/svg" width="0" height="0"><line x2="10"/></svg>`,
		Width:  100,
		Height: 100,
		Paths:  0,
	},
}
