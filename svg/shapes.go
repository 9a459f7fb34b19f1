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

package svg

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgplot/coord"
)

// kappa is the distance of the control points from the end points, for a
// cubic Bézier approximation of a quarter circle of radius 1.
const kappa = 0.5522847498307936

// outline returns the outline of a basic shape, in the user space of the
// shape.  Percentages refer to v.  A nil path means that the shape is not
// rendered.  For <path> elements with an error in the path data, the path
// up to the error is returned together with the error.
func outline(n *Node, v coord.Viewport) (*path.Data, error) {
	switch n.Name {
	case "rect":
		return rectOutline(n, v)
	case "circle", "ellipse":
		return ellipseOutline(n, v)
	case "line":
		return lineOutline(n, v)
	case "polyline", "polygon":
		pts, err := parsePoints(n.Attr["points"])
		if err != nil {
			return nil, fmt.Errorf("<%s points>: %w", n.Name, err)
		}
		if len(pts) < 2 {
			return nil, nil
		}
		res := (&path.Data{}).MoveTo(pts[0])
		for _, p := range pts[1:] {
			res.LineTo(p)
		}
		if n.Name == "polygon" {
			res.Close()
		}
		return res, nil
	case "path":
		return parsePathData(n.Attr["d"])
	}
	return nil, nil
}

// isShape reports whether the element is one of the basic shapes or a
// path.
func isShape(name string) bool {
	switch name {
	case "rect", "circle", "ellipse", "line", "polyline", "polygon", "path":
		return true
	}
	return false
}

// lengths reads a list of length attributes.  Percentages for the
// attributes at even positions refer to the viewport width, the others to
// the viewport height.
func lengths(n *Node, v coord.Viewport, names ...string) ([]float64, error) {
	res := make([]float64, len(names))
	for i, name := range names {
		a := axisX
		if i%2 == 1 {
			a = axisY
		}
		x, err := lengthAttr(n, name, v, a, 0)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

func rectOutline(n *Node, v coord.Viewport) (*path.Data, error) {
	l, err := lengths(n, v, "x", "y", "width", "height")
	if err != nil {
		return nil, err
	}
	x, y, w, h := l[0], l[1], l[2], l[3]
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	rx, err := lengthAttr(n, "rx", v, axisX, -1)
	if err != nil {
		return nil, err
	}
	ry, err := lengthAttr(n, "ry", v, axisY, -1)
	if err != nil {
		return nil, err
	}
	// a missing or negative radius takes the value of the other one
	if rx < 0 {
		rx = ry
	} else if ry < 0 {
		ry = rx
	}
	rx = min(max(rx, 0), w/2)
	ry = min(max(ry, 0), h/2)

	res := &path.Data{}
	if rx == 0 || ry == 0 {
		return res.MoveTo(pt(x, y)).
			LineTo(pt(x+w, y)).
			LineTo(pt(x+w, y+h)).
			LineTo(pt(x, y+h)).
			Close(), nil
	}

	kx, ky := kappa*rx, kappa*ry
	res.MoveTo(pt(x+rx, y))
	res.LineTo(pt(x+w-rx, y))
	res.CubeTo(pt(x+w-rx+kx, y), pt(x+w, y+ry-ky), pt(x+w, y+ry))
	res.LineTo(pt(x+w, y+h-ry))
	res.CubeTo(pt(x+w, y+h-ry+ky), pt(x+w-rx+kx, y+h), pt(x+w-rx, y+h))
	res.LineTo(pt(x+rx, y+h))
	res.CubeTo(pt(x+rx-kx, y+h), pt(x, y+h-ry+ky), pt(x, y+h-ry))
	res.LineTo(pt(x, y+ry))
	res.CubeTo(pt(x, y+ry-ky), pt(x+rx-kx, y), pt(x+rx, y))
	return res.Close(), nil
}

func ellipseOutline(n *Node, v coord.Viewport) (*path.Data, error) {
	l, err := lengths(n, v, "cx", "cy")
	if err != nil {
		return nil, err
	}
	cx, cy := l[0], l[1]

	var rx, ry float64
	if n.Name == "circle" {
		rx, err = lengthAttr(n, "r", v, axisOther, 0)
		ry = rx
	} else {
		l, err = lengths(n, v, "rx", "ry")
		if err == nil {
			rx, ry = l[0], l[1]
		}
	}
	if err != nil {
		return nil, err
	}
	if rx <= 0 || ry <= 0 {
		return nil, nil
	}

	kx, ky := kappa*rx, kappa*ry
	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close(), nil
}

func lineOutline(n *Node, v coord.Viewport) (*path.Data, error) {
	l, err := lengths(n, v, "x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}
	return (&path.Data{}).
		MoveTo(pt(l[0], l[1])).
		LineTo(pt(l[2], l[3])), nil
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
