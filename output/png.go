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
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

// PNGOptions controls the PNG preview.
type PNGOptions struct {
	// Width and Height give the size of the drawing in root units.
	Width, Height float64

	// Resolution is the number of pixels per root unit.  Zero means 1.
	Resolution float64

	// PenWidth is the width of the drawn lines, in root units.
	// Zero means one pixel.
	PenWidth float64
}

// errImageSize is returned if the preview image would be empty.
var errImageSize = errors.New("output: empty preview image")

// RenderPNG draws the polylines in black onto a white image.
func RenderPNG(paths [][]vec.Vec2, opt PNGOptions) (*image.Gray, error) {
	res := opt.Resolution
	if res <= 0 {
		res = 1
	}
	w := int(math.Ceil(opt.Width * res))
	h := int(math.Ceil(opt.Height * res))
	if w <= 0 || h <= 0 {
		return nil, errImageSize
	}
	halfWidth := opt.PenWidth * res / 2
	if halfWidth <= 0 {
		halfWidth = 0.5
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	ink := image.NewUniform(color.Black)

	z := vector.NewRasterizer(0, 0)
	for _, p := range paths {
		for i := 1; i < len(p); i++ {
			a := p[i-1].Mul(res)
			b := p[i].Mul(res)
			drawSegment(z, img, ink, a, b, halfWidth)
		}
	}
	return img, nil
}

// drawSegment draws one line segment as a rectangle with square ends.
// Every segment is rasterized separately, so that overlapping segments
// do not cancel out.
func drawSegment(z *vector.Rasterizer, img *image.Gray, ink image.Image, a, b vec.Vec2, hw float64) {
	d := b.Sub(a)
	l := d.Length()
	var along, across vec.Vec2
	if l > 0 {
		along = d.Mul(hw / l)
		across = vec.Vec2{X: -along.Y, Y: along.X}
	} else {
		along = vec.Vec2{X: hw}
		across = vec.Vec2{Y: hw}
	}
	corners := [4]vec.Vec2{
		a.Sub(along).Add(across),
		b.Add(along).Add(across),
		b.Add(along).Sub(across),
		a.Sub(along).Sub(across),
	}

	bounds := image.Rectangle{
		Min: image.Point{X: math.MaxInt, Y: math.MaxInt},
		Max: image.Point{X: math.MinInt, Y: math.MinInt},
	}
	for _, c := range corners {
		bounds.Min.X = min(bounds.Min.X, int(math.Floor(c.X)))
		bounds.Min.Y = min(bounds.Min.Y, int(math.Floor(c.Y)))
		bounds.Max.X = max(bounds.Max.X, int(math.Ceil(c.X)))
		bounds.Max.Y = max(bounds.Max.Y, int(math.Ceil(c.Y)))
	}
	clipped := bounds.Intersect(img.Bounds())
	if clipped.Empty() {
		return
	}

	// rasterizer coordinates are relative to clipped.Min
	ox, oy := float64(clipped.Min.X), float64(clipped.Min.Y)
	z.Reset(clipped.Dx(), clipped.Dy())
	z.MoveTo(float32(corners[0].X-ox), float32(corners[0].Y-oy))
	for _, c := range corners[1:] {
		z.LineTo(float32(c.X-ox), float32(c.Y-oy))
	}
	z.ClosePath()
	z.Draw(img, clipped, ink, image.Point{})
}

// WritePNG writes a PNG preview of the polylines.
func WritePNG(w io.Writer, paths [][]vec.Vec2, opt PNGOptions) error {
	img, err := RenderPNG(paths, opt)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
