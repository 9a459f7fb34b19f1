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

// Package testcases holds small SVG documents with known conversion
// results.
package testcases

import "fmt"

// TestCase defines a single conversion test.
type TestCase struct {
	Name   string  // lowercase a-z and _ only
	SVG    string  // the document
	Width  float64 // width of the global viewport
	Height float64 // height of the global viewport
	Paths  int     // number of polylines sent to the plotter
	Length float64 // total pen-down length (zero means not checked)
}

// doc wraps the body into a 100x100 document.
func doc(body string) string {
	return sized(100, 100, body)
}

// sized wraps the body into a document of the given size.
func sized(width, height float64, body string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%g" height="%g">%s</svg>`,
		width, height, body)
}
