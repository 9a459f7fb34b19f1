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

var subpathCases = []TestCase{
	{
		Name:   "two_open_subpaths",
		SVG:    doc(`<path d="M0 0 L10 0 M20 0 L30 0"/>`),
		Width:  100,
		Height: 100,
		Paths:  2,
		Length: 20,
	},
	{
		Name:   "two_closed_subpaths",
		SVG:    doc(`<path d="M0 0 h10 v10 h-10 z m20 0 h10 v10 h-10 z"/>`),
		Width:  100,
		Height: 100,
		Paths:  2,
		Length: 80,
	},
	{
		Name:   "relative",
		SVG:    doc(`<path d="m10 10 l10 0 l0 10"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 20,
	},
	{
		Name:   "implicit_lineto",
		SVG:    doc(`<path d="M0 0 10 0 10 10"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 20,
	},
	{
		Name:   "compact_numbers",
		SVG:    doc(`<path d="M0,0L3-4"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 5,
	},
	{
		Name:   "draw_after_close",
		SVG:    doc(`<path d="M0 0 h10 v10 z l0 10"/>`),
		Width:  100,
		Height: 100,
		Paths:  2,
	},
	{
		Name:   "degenerate",
		SVG:    doc(`<path d="M5 5 M6 6 Z"/>`),
		Width:  100,
		Height: 100,
		Paths:  0,
	},
}
