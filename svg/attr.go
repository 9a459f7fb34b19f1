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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgplot/coord"
)

// scanner reads numbers from attribute values like path data, points
// lists and viewBox specifications.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f':
			sc.pos++
		default:
			return
		}
	}
}

// skipSep skips white space and at most one comma.
func (sc *scanner) skipSep() {
	sc.skipSpace()
	if sc.pos < len(sc.s) && sc.s[sc.pos] == ',' {
		sc.pos++
		sc.skipSpace()
	}
}

func (sc *scanner) done() bool {
	sc.skipSpace()
	return sc.pos >= len(sc.s)
}

// peekNumber reports whether a number starts at the current position.
func (sc *scanner) peekNumber() bool {
	sc.skipSep()
	if sc.pos >= len(sc.s) {
		return false
	}
	c := sc.s[sc.pos]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

// number reads a number.  Numbers may follow each other without a
// separator where this is unambiguous, as in "1.5.5" or "3-4".
func (sc *scanner) number() (float64, error) {
	sc.skipSep()
	start := sc.pos
	i := sc.pos
	if i < len(sc.s) && (sc.s[i] == '-' || sc.s[i] == '+') {
		i++
	}
	digits := false
	for i < len(sc.s) && sc.s[i] >= '0' && sc.s[i] <= '9' {
		i++
		digits = true
	}
	if i < len(sc.s) && sc.s[i] == '.' {
		i++
		for i < len(sc.s) && sc.s[i] >= '0' && sc.s[i] <= '9' {
			i++
			digits = true
		}
	}
	if !digits {
		return 0, fmt.Errorf("svg: expected number at %q", truncate(sc.s[start:], 16))
	}
	if i < len(sc.s) && (sc.s[i] == 'e' || sc.s[i] == 'E') {
		j := i + 1
		if j < len(sc.s) && (sc.s[j] == '-' || sc.s[j] == '+') {
			j++
		}
		if j < len(sc.s) && sc.s[j] >= '0' && sc.s[j] <= '9' {
			for j < len(sc.s) && sc.s[j] >= '0' && sc.s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	x, err := strconv.ParseFloat(sc.s[start:i], 64)
	if err != nil {
		return 0, fmt.Errorf("svg: %w", err)
	}
	sc.pos = i
	return x, nil
}

// flag reads an arc flag, which is a single character "0" or "1".
func (sc *scanner) flag() (bool, error) {
	sc.skipSep()
	if sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case '0':
			sc.pos++
			return false, nil
		case '1':
			sc.pos++
			return true, nil
		}
	}
	return false, fmt.Errorf("svg: expected flag at %q", truncate(sc.s[sc.pos:], 16))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// parseNumbers parses a list of numbers separated by white space and/or
// commas.
func parseNumbers(s string) ([]float64, error) {
	sc := &scanner{s: s}
	var res []float64
	for !sc.done() {
		x, err := sc.number()
		if err != nil {
			return nil, err
		}
		res = append(res, x)
	}
	return res, nil
}

// parsePoints parses the points attribute of <polyline> and <polygon>.
func parsePoints(s string) ([]vec.Vec2, error) {
	nums, err := parseNumbers(s)
	if err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		// SVG renders up to the last complete pair
		nums = nums[:len(nums)-1]
	}
	pts := make([]vec.Vec2, 0, len(nums)/2)
	for i := 0; i < len(nums); i += 2 {
		pts = append(pts, vec.Vec2{X: nums[i], Y: nums[i+1]})
	}
	return pts, nil
}

// parseViewBox parses a viewBox attribute.
func parseViewBox(s string) (coord.ViewBox, error) {
	nums, err := parseNumbers(s)
	if err != nil {
		return coord.ViewBox{}, err
	}
	if len(nums) != 4 {
		return coord.ViewBox{}, fmt.Errorf("viewBox %q: %w", s, ErrParamMismatch)
	}
	return coord.ViewBox{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}, nil
}

// Length units, in user units (CSS pixels at 96 dpi).
var unitScale = map[string]float64{
	"":   1,
	"px": 1,
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
	"pt": 96.0 / 72,
	"pc": 96.0 / 6,
	"em": 16,
	"ex": 8,
}

// axis selects the reference length for percentages.
type axis int

const (
	axisX axis = iota
	axisY
	axisOther
)

// reference returns the length a percentage refers to.
func (a axis) reference(v coord.Viewport) float64 {
	switch a {
	case axisX:
		return v.Width
	case axisY:
		return v.Height
	default:
		return math.Sqrt((v.Width*v.Width + v.Height*v.Height) / 2)
	}
}

// parseLength converts a length to user units.  Percentages refer to the
// viewport v along the given axis.
func parseLength(s string, v coord.Viewport, a axis) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		x, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64)
		if err != nil {
			return 0, fmt.Errorf("svg: invalid length %q", s)
		}
		return x / 100 * a.reference(v), nil
	}

	end := len(s)
	for end > 0 && (s[end-1] >= 'a' && s[end-1] <= 'z' || s[end-1] >= 'A' && s[end-1] <= 'Z') {
		end--
	}
	scale, ok := unitScale[strings.ToLower(s[end:])]
	if !ok {
		return 0, fmt.Errorf("svg: invalid unit in length %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(s[:end]), 64)
	if err != nil {
		return 0, fmt.Errorf("svg: invalid length %q", s)
	}
	return x * scale, nil
}

// lengthAttr returns the value of a length attribute, or def if the
// attribute is not set.
func lengthAttr(n *Node, name string, v coord.Viewport, a axis, def float64) (float64, error) {
	s, ok := n.Attr[name]
	if !ok || strings.TrimSpace(s) == "" {
		return def, nil
	}
	x, err := parseLength(s, v, a)
	if err != nil {
		return 0, fmt.Errorf("<%s %s>: %w", n.Name, name, err)
	}
	return x, nil
}

// parseDashArray parses the stroke-dasharray property.  Percentages refer
// to the viewport diagonal.  The value "none" gives a nil slice.
func parseDashArray(s string, v coord.Viewport) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return nil, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	res := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := parseLength(f, v, axisOther)
		if err != nil {
			return nil, fmt.Errorf("stroke-dasharray: %w", err)
		}
		res = append(res, x)
	}
	return res, nil
}

// parseURLRef extracts the id from a value like "url(#id)".
func parseURLRef(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "url(") {
		return "", false
	}
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return "", false
	}
	ref := strings.Trim(strings.TrimSpace(s[4:end]), `"'`)
	if !strings.HasPrefix(ref, "#") || len(ref) < 2 {
		return "", false
	}
	return ref[1:], true
}

// parseTransform parses a transform attribute.  The transformations in
// the list are applied from right to left.
func parseTransform(s string) (matrix.Matrix, error) {
	m := matrix.Identity
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			return matrix.Identity, fmt.Errorf("transform %q: %w", s, ErrUnknownCommand)
		}
		closing := strings.IndexByte(rest, ')')
		if closing < open {
			return matrix.Identity, fmt.Errorf("transform %q: %w", s, ErrParamMismatch)
		}
		name := strings.ToLower(strings.TrimSpace(rest[:open]))
		args, err := parseNumbers(rest[open+1 : closing])
		if err != nil {
			return matrix.Identity, fmt.Errorf("transform %q: %w", s, err)
		}
		item, err := transformItem(name, args)
		if err != nil {
			return matrix.Identity, fmt.Errorf("transform %q: %w", s, err)
		}
		m = coord.Then(item, m)

		rest = strings.TrimSpace(rest[closing+1:])
		rest = strings.TrimSpace(strings.TrimPrefix(rest, ","))
	}
	return m, nil
}

func transformItem(name string, args []float64) (matrix.Matrix, error) {
	n := len(args)
	switch name {
	case "matrix":
		if n == 6 {
			return matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, nil
		}
	case "translate":
		if n == 1 {
			return coord.Translate(args[0], 0), nil
		} else if n == 2 {
			return coord.Translate(args[0], args[1]), nil
		}
	case "scale":
		if n == 1 {
			return matrix.Scale(args[0], args[0]), nil
		} else if n == 2 {
			return matrix.Scale(args[0], args[1]), nil
		}
	case "rotate":
		if n == 1 {
			return coord.Rotate(args[0]), nil
		} else if n == 3 {
			m := coord.Translate(-args[1], -args[2])
			m = coord.Then(m, coord.Rotate(args[0]))
			return coord.Then(m, coord.Translate(args[1], args[2])), nil
		}
	case "skewx":
		if n == 1 {
			return coord.SkewX(args[0]), nil
		}
	case "skewy":
		if n == 1 {
			return coord.SkewY(args[0]), nil
		}
	default:
		return matrix.Identity, ErrUnknownCommand
	}
	return matrix.Identity, ErrParamMismatch
}
