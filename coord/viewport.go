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

package coord

import (
	"fmt"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// Viewport is the extent of the coordinate space an element establishes
// for its children.
type Viewport struct {
	Width, Height float64
}

// IsZero reports whether the viewport has zero width or zero height.
// SVG elements with such a viewport must not be rendered.
func (v Viewport) IsZero() bool {
	return v.Width == 0 || v.Height == 0
}

func (v Viewport) String() string {
	return fmt.Sprintf("%gx%g", v.Width, v.Height)
}

// System is the coordinate system of an element: Transform maps the
// element's local coordinates to root coordinates, and Viewport gives the
// extent of the local space.
type System struct {
	Transform matrix.Matrix
	Viewport  Viewport
}

// Root returns the coordinate system of a document shown in the given
// viewport.  The document's own space coincides with root space.
func Root(v Viewport) System {
	return System{Transform: matrix.Identity, Viewport: v}
}

// ViewBox is the rectangle given by the viewBox attribute of an element.
type ViewBox struct {
	X, Y, Width, Height float64
}

// Size returns the extent of the viewBox as a viewport.
func (vb ViewBox) Size() Viewport {
	return Viewport{Width: vb.Width, Height: vb.Height}
}

// Align specifies how a viewBox is aligned inside a viewport when the
// aspect ratio is preserved.
type Align int

// These are the values of the align part of preserveAspectRatio.
const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

var alignNames = map[string]Align{
	"none":     AlignNone,
	"xminymin": AlignXMinYMin,
	"xmidymin": AlignXMidYMin,
	"xmaxymin": AlignXMaxYMin,
	"xminymid": AlignXMinYMid,
	"xmidymid": AlignXMidYMid,
	"xmaxymid": AlignXMaxYMid,
	"xminymax": AlignXMinYMax,
	"xmidymax": AlignXMidYMax,
	"xmaxymax": AlignXMaxYMax,
}

// PreserveAspectRatio holds the value of the preserveAspectRatio attribute.
// The zero value is "none"; use [DefaultAspectRatio] for the SVG default.
type PreserveAspectRatio struct {
	Align Align
	Slice bool // "slice" instead of "meet"
}

// DefaultAspectRatio is the initial value "xMidYMid meet".
var DefaultAspectRatio = PreserveAspectRatio{Align: AlignXMidYMid}

// ParsePreserveAspectRatio parses a preserveAspectRatio attribute value.
// An empty string gives [DefaultAspectRatio].
func ParsePreserveAspectRatio(s string) (PreserveAspectRatio, error) {
	fields := strings.Fields(s)
	if len(fields) > 0 && fields[0] == "defer" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return DefaultAspectRatio, nil
	}
	if len(fields) > 2 {
		return DefaultAspectRatio, fmt.Errorf("invalid preserveAspectRatio %q", s)
	}

	align, ok := alignNames[strings.ToLower(fields[0])]
	if !ok {
		return DefaultAspectRatio, fmt.Errorf("invalid preserveAspectRatio %q", s)
	}
	par := PreserveAspectRatio{Align: align}
	if len(fields) == 2 {
		switch fields[1] {
		case "meet":
		case "slice":
			par.Slice = true
		default:
			return DefaultAspectRatio, fmt.Errorf("invalid preserveAspectRatio %q", s)
		}
	}
	return par, nil
}

// ViewBoxTransform returns the transformation which maps the viewBox vb
// into a viewport of size v located at the origin.
//
// The viewBox must have positive width and height.
func ViewBoxTransform(vb ViewBox, v Viewport, par PreserveAspectRatio) matrix.Matrix {
	sx := v.Width / vb.Width
	sy := v.Height / vb.Height

	var dx, dy float64
	if par.Align != AlignNone {
		s := min(sx, sy)
		if par.Slice {
			s = max(sx, sy)
		}
		sx, sy = s, s

		freeX := v.Width - vb.Width*s
		freeY := v.Height - vb.Height*s
		switch par.Align {
		case AlignXMidYMin, AlignXMidYMid, AlignXMidYMax:
			dx = freeX / 2
		case AlignXMaxYMin, AlignXMaxYMid, AlignXMaxYMax:
			dx = freeX
		}
		switch par.Align {
		case AlignXMinYMid, AlignXMidYMid, AlignXMaxYMid:
			dy = freeY / 2
		case AlignXMinYMax, AlignXMidYMax, AlignXMaxYMax:
			dy = freeY
		}
	}

	m := Translate(-vb.X, -vb.Y)
	m = Then(m, matrix.Scale(sx, sy))
	return Then(m, Translate(dx, dy))
}
