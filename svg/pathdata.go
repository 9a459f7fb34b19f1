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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// parsePathData converts the d attribute of a <path> element into a path.
// On error, the path parsed so far is returned together with the error,
// which matches the SVG rule to render a path up to the first error.
func parsePathData(d string) (*path.Data, error) {
	sc := &scanner{s: d}
	res := &path.Data{}

	var current, start, lastCtrl vec.Vec2
	var prevCmd byte
	var cmd byte
	haveCurrent := false
	closed := false
	for {
		sc.skipSpace()
		if sc.pos >= len(sc.s) {
			break
		}
		c := sc.s[sc.pos]
		if isCommand(c) {
			cmd = c
			sc.pos++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' || !sc.peekNumber() {
			return res, fmt.Errorf("path %q: %w", truncate(d, 32), ErrUnknownCommand)
		} else if cmd == 'M' {
			// further coordinate pairs after a moveto are implicit lineto
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
		if !haveCurrent && cmd != 'M' && cmd != 'm' {
			return res, fmt.Errorf("path %q: must start with a moveto", truncate(d, 32))
		}

		if closed && cmd != 'M' && cmd != 'm' {
			// drawing after closepath starts a new subpath at the old start
			res.MoveTo(start)
		}
		closed = false

		rel := cmd >= 'a'
		offset := func(p vec.Vec2) vec.Vec2 {
			if rel {
				return current.Add(p)
			}
			return p
		}
		var err error
		switch cmd {
		case 'M', 'm':
			var p vec.Vec2
			if p, err = sc.point(); err == nil {
				current = offset(p)
				start = current
				res.MoveTo(current)
				haveCurrent = true
			}
		case 'L', 'l':
			var p vec.Vec2
			if p, err = sc.point(); err == nil {
				current = offset(p)
				res.LineTo(current)
			}
		case 'H', 'h':
			var x float64
			if x, err = sc.number(); err == nil {
				if rel {
					x += current.X
				}
				current = vec.Vec2{X: x, Y: current.Y}
				res.LineTo(current)
			}
		case 'V', 'v':
			var y float64
			if y, err = sc.number(); err == nil {
				if rel {
					y += current.Y
				}
				current = vec.Vec2{X: current.X, Y: y}
				res.LineTo(current)
			}
		case 'C', 'c':
			var pts []vec.Vec2
			if pts, err = sc.points(3); err == nil {
				c1, c2, p := offset(pts[0]), offset(pts[1]), offset(pts[2])
				res.CubeTo(c1, c2, p)
				lastCtrl, current = c2, p
			}
		case 'S', 's':
			var pts []vec.Vec2
			if pts, err = sc.points(2); err == nil {
				c1 := current
				if isOneOf(prevCmd, "CcSs") {
					c1 = current.Mul(2).Sub(lastCtrl)
				}
				c2, p := offset(pts[0]), offset(pts[1])
				res.CubeTo(c1, c2, p)
				lastCtrl, current = c2, p
			}
		case 'Q', 'q':
			var pts []vec.Vec2
			if pts, err = sc.points(2); err == nil {
				c1, p := offset(pts[0]), offset(pts[1])
				res.QuadTo(c1, p)
				lastCtrl, current = c1, p
			}
		case 'T', 't':
			var p vec.Vec2
			if p, err = sc.point(); err == nil {
				c1 := current
				if isOneOf(prevCmd, "QqTt") {
					c1 = current.Mul(2).Sub(lastCtrl)
				}
				p = offset(p)
				res.QuadTo(c1, p)
				lastCtrl, current = c1, p
			}
		case 'A', 'a':
			var rx, ry, phi float64
			var large, sweep bool
			var p vec.Vec2
			rx, err = sc.number()
			if err == nil {
				ry, err = sc.number()
			}
			if err == nil {
				phi, err = sc.number()
			}
			if err == nil {
				large, err = sc.flag()
			}
			if err == nil {
				sweep, err = sc.flag()
			}
			if err == nil {
				p, err = sc.point()
			}
			if err == nil {
				p = offset(p)
				arcTo(res, current, p, rx, ry, phi, large, sweep)
				current = p
			}
		case 'Z', 'z':
			res.Close()
			current = start
			closed = true
		}
		if err != nil {
			return res, fmt.Errorf("path %q: %w", truncate(d, 32), err)
		}
		prevCmd = cmd
	}
	return res, nil
}

func isCommand(c byte) bool {
	return isOneOf(c, "MmLlHhVvCcSsQqTtAaZz")
}

func isOneOf(c byte, set string) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}

func (sc *scanner) point() (vec.Vec2, error) {
	x, err := sc.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := sc.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x, Y: y}, nil
}

func (sc *scanner) points(n int) ([]vec.Vec2, error) {
	res := make([]vec.Vec2, n)
	for i := range res {
		p, err := sc.point()
		if err != nil {
			return nil, err
		}
		res[i] = p
	}
	return res, nil
}

// arcTo appends an elliptical arc from p0 to p1 to the path, approximated
// by cubic Bézier curves.  The parameters are those of the SVG "A" command.
func arcTo(res *path.Data, p0, p1 vec.Vec2, rx, ry, phiDeg float64, large, sweep bool) {
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		res.LineTo(p1)
		return
	}

	sinPhi, cosPhi := math.Sincos(phiDeg * math.Pi / 180)

	// endpoint to center parameterization
	dx := (p0.X - p1.X) / 2
	dy := (p0.Y - p1.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx := cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2

	theta1 := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	theta2 := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	dTheta := theta2 - theta1
	if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	} else if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	}

	// point on the ellipse, and derivative, at angle t
	at := func(t float64) (vec.Vec2, vec.Vec2) {
		sinT, cosT := math.Sincos(t)
		p := vec.Vec2{
			X: cx + rx*cosT*cosPhi - ry*sinT*sinPhi,
			Y: cy + rx*cosT*sinPhi + ry*sinT*cosPhi,
		}
		d := vec.Vec2{
			X: -rx*sinT*cosPhi - ry*cosT*sinPhi,
			Y: -rx*sinT*sinPhi + ry*cosT*cosPhi,
		}
		return p, d
	}

	n := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	step := dTheta / float64(n)
	k := 4.0 / 3 * math.Tan(step/4)
	t := theta1
	a := p0
	_, da := at(t)
	for i := 1; i <= n; i++ {
		b, db := at(t + step)
		if i == n {
			b = p1
		}
		res.CubeTo(a.Add(da.Mul(k)), b.Sub(db.Mul(k)), b)
		a, da = b, db
		t += step
	}
}
