// Package svgplot converts SVG drawings into polylines for pen plotters.
//
// Shapes are reduced to their outlines, curves are flattened, dashes are
// split into separate strokes and pattern fills are expanded into copies
// of the pattern content, clipped to the filled shape.
package svgplot

//go:generate go run ./testcases/export

import (
	"io"

	"seehuhn.de/go/svgplot/coord"
	"seehuhn.de/go/svgplot/plot"
	"seehuhn.de/go/svgplot/svg"
)

// Options controls the conversion.
type Options struct {
	// Width and Height give the viewport the document is shown in.
	// Percentages in the size of the outermost <svg> element refer to
	// this.  Zero values are replaced by 100.
	Width, Height float64

	// Tolerance is the maximal distance between a curve and its
	// approximating polyline.  Zero means [svg.DefaultTolerance].
	Tolerance float64
}

// Convert reads an SVG document and returns the polylines to draw.
// Coordinates are in the user units of the outermost <svg> element
// (CSS pixels unless a viewBox is given), with the y-axis pointing down.
//
// If opt is nil, default options are used.
func Convert(r io.Reader, opt *Options) (*plot.Drawing, error) {
	if opt == nil {
		opt = &Options{}
	}
	global := coord.Viewport{Width: opt.Width, Height: opt.Height}
	if global.Width <= 0 {
		global.Width = 100
	}
	if global.Height <= 0 {
		global.Height = 100
	}

	doc, err := svg.Parse(r)
	if err != nil {
		return nil, err
	}

	c := &svg.Converter{
		Global:    global,
		Tolerance: opt.Tolerance,
	}
	d := &plot.Drawing{}
	if err := c.Convert(doc, d); err != nil {
		return nil, err
	}
	return d, nil
}
