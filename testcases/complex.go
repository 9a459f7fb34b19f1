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

var documentCases = []TestCase{
	{
		Name: "mixed",
		SVG: doc(stripes + `<g transform="translate(10,10)">
			<title>mixed content</title>
			<rect width="20" height="20" fill="url(#stripes)"/>
			<line y1="30" x2="20" y2="30" stroke-dasharray="5"/>
		</g>`),
		Width:  100,
		Height: 100,
		Paths:  7,
		Length: 32 + 80 + 10,
	},
	{
		Name: "hidden_parts",
		SVG: doc(`<g display="none"><rect width="10" height="10"/></g>
			<defs><rect id="r" width="10" height="10"/></defs>
			<g style="display: inline"><circle cx="50" cy="50" r="10" stroke="none"/></g>
			<unknown><line x2="10"/></unknown>
			<line x2="10"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 10,
	},
}
