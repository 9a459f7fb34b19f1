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

// Command genpdf writes a PDF preview for every test case.
// Run from the svgplot module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/svgplot"
	"seehuhn.de/go/svgplot/coord"
	"seehuhn.de/go/svgplot/output"
	"seehuhn.de/go/svgplot/testcases"
)

const previewDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(previewDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	opt := &svgplot.Options{Width: tc.Width, Height: tc.Height}
	d, err := svgplot.Convert(strings.NewReader(tc.SVG), opt)
	if err != nil {
		return err
	}

	// The page covers the global viewport and everything drawn outside.
	b := d.Bounds()
	size := coord.Viewport{
		Width:  max(tc.Width, b.URx),
		Height: max(tc.Height, b.URy),
	}
	return output.WritePDF(pdfPath, d.Paths, size, 0.5)
}
