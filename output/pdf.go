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

package output

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/svgplot/coord"
)

// WritePDF writes a one-page PDF preview of the polylines to the file
// fname.  One root unit is drawn as one PDF point, and the page has the
// given size.  The pen is drawn as a round line of width penWidth.
func WritePDF(fname string, paths [][]vec.Vec2, size coord.Viewport, penWidth float64) error {
	paper := &pdf.Rectangle{
		URx: size.Width,
		URy: size.Height,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; root coordinates have the origin top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, size.Height})

	if penWidth <= 0 {
		penWidth = 0.5
	}
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(penWidth)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for _, p := range paths {
		if len(p) < 2 {
			continue
		}
		page.MoveTo(p[0].X, p[0].Y)
		for _, q := range p[1:] {
			page.LineTo(q.X, q.Y)
		}
	}
	if len(paths) > 0 {
		page.Stroke()
	}

	return page.Close()
}
