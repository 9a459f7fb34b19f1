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
	"errors"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgplot/coord"
)

func closeTo(a, b vec.Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestParse(t *testing.T) {
	src := `<?xml version="1.0" encoding="ISO-8859-1"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
  <g id="a" style="stroke: none; stroke-dasharray: 1 2 !important">
    <rect id="r" x="1" stroke="red"/>
  </g>
  <pattern id="p2" xlink:href="#p1"/>
</svg>`
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Root.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(doc.Root.Children))
	}
	g := doc.Lookup("a")
	if g == nil || g.Name != "g" {
		t.Fatalf("lookup a: %v", g)
	}
	if got := g.Prop("stroke"); got != "none" {
		t.Errorf("stroke = %q, want none", got)
	}
	if got := g.Prop("stroke-dasharray"); got != "1 2" {
		t.Errorf("stroke-dasharray = %q", got)
	}
	if r := doc.Lookup("r"); r == nil || r.Prop("stroke") != "red" || r.Attr["x"] != "1" {
		t.Errorf("lookup r: %v", r)
	}
	if got := doc.Lookup("p2").Attr["href"]; got != "#p1" {
		t.Errorf("href = %q", got)
	}
	if doc.Lookup("missing") != nil {
		t.Error("found missing id")
	}
}

func TestParseNoSVG(t *testing.T) {
	for _, src := range []string{"", "<html><body/></html>", "plain text"} {
		_, err := Parse(strings.NewReader(src))
		if !errors.Is(err, ErrNoSVG) {
			t.Errorf("%q: got %v, want ErrNoSVG", src, err)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	cases := []struct {
		in   string
		want []float64
	}{
		{"1 2 3", []float64{1, 2, 3}},
		{"1,2,3", []float64{1, 2, 3}},
		{" 1 , -2,+3 ", []float64{1, -2, 3}},
		{"1.5.5", []float64{1.5, 0.5}},
		{"3-4", []float64{3, -4}},
		{"1e2 1E-1", []float64{100, 0.1}},
		{"", nil},
	}
	for _, c := range cases {
		got, err := parseNumbers(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if len(got) != len(c.want) {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if math.Abs(got[i]-c.want[i]) > 1e-12 {
				t.Errorf("%q: got %v, want %v", c.in, got, c.want)
				break
			}
		}
	}

	if _, err := parseNumbers("1 x"); err == nil {
		t.Error("missing error for invalid number")
	}
}

func TestParseLength(t *testing.T) {
	v := coord.Viewport{Width: 200, Height: 50}
	cases := []struct {
		in   string
		a    axis
		want float64
	}{
		{"10", axisX, 10},
		{"10px", axisX, 10},
		{"1in", axisX, 96},
		{"25.4mm", axisY, 96},
		{"72pt", axisX, 96},
		{"50%", axisX, 100},
		{"50%", axisY, 25},
		{" 2cm ", axisX, 2 * 96 / 2.54},
	}
	for _, c := range cases {
		got, err := parseLength(c.in, v, c.a)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%q: got %g, want %g", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "abc", "10furlong", "%"} {
		if _, err := parseLength(bad, v, axisX); err == nil {
			t.Errorf("%q: missing error", bad)
		}
	}
}

func TestParseTransform(t *testing.T) {
	cases := []struct {
		in       string
		from, to vec.Vec2
	}{
		{"translate(10,20) scale(2)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 12, Y: 22}},
		{"scale(2) translate(10,20)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 22, Y: 42}},
		{"translate(5)", vec.Vec2{}, vec.Vec2{X: 5}},
		{"rotate(90)", vec.Vec2{X: 1}, vec.Vec2{Y: 1}},
		{"rotate(90, 10, 10)", vec.Vec2{X: 20, Y: 10}, vec.Vec2{X: 10, Y: 20}},
		{"skewX(45)", vec.Vec2{Y: 1}, vec.Vec2{X: 1, Y: 1}},
		{"matrix(1 0 0 1 3 4)", vec.Vec2{}, vec.Vec2{X: 3, Y: 4}},
		{"", vec.Vec2{X: 7, Y: 8}, vec.Vec2{X: 7, Y: 8}},
	}
	for _, c := range cases {
		m, err := parseTransform(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got := coord.Apply(m, c.from); !closeTo(got, c.to, 1e-9) {
			t.Errorf("%q: %v -> %v, want %v", c.in, c.from, got, c.to)
		}
	}

	if _, err := parseTransform("translate(1,2,3)"); !errors.Is(err, ErrParamMismatch) {
		t.Errorf("got %v, want ErrParamMismatch", err)
	}
	if _, err := parseTransform("wobble(1)"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("got %v, want ErrUnknownCommand", err)
	}
}

func TestParseDashArray(t *testing.T) {
	v := coord.Viewport{Width: 100, Height: 100}
	got, err := parseDashArray("5, 10 1%", v)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{5, 10, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	if got, err := parseDashArray("none", v); got != nil || err != nil {
		t.Errorf("none: got %v, %v", got, err)
	}
}

func TestParseURLRef(t *testing.T) {
	cases := []struct {
		in   string
		id   string
		isOK bool
	}{
		{"url(#p)", "p", true},
		{" url( '#stripes' ) none", "stripes", true},
		{"red", "", false},
		{"url(p)", "", false},
		{"url(#)", "", false},
	}
	for _, c := range cases {
		id, ok := parseURLRef(c.in)
		if id != c.id || ok != c.isOK {
			t.Errorf("%q: got %q, %t", c.in, id, ok)
		}
	}
}

// flatten converts path data to polylines without any transformation.
func flatten(t *testing.T, d string) [][]vec.Vec2 {
	t.Helper()
	p, err := parsePathData(d)
	if err != nil {
		t.Fatalf("%q: %v", d, err)
	}
	f := &flattener{CTM: matrix.Identity, Tolerance: 0.01}
	return f.Flatten(p.Iter())
}

func TestPathData(t *testing.T) {
	cases := []struct {
		d    string
		want [][]vec.Vec2
	}{
		{
			"M10 10 h10 v10 H10 z",
			[][]vec.Vec2{{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}, {X: 10, Y: 20}, {X: 10, Y: 10}}},
		},
		{
			"M0 0 1 1 2 0",
			[][]vec.Vec2{{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}},
		},
		{
			"m1 1 2 2",
			[][]vec.Vec2{{{X: 1, Y: 1}, {X: 3, Y: 3}}},
		},
		{
			"M0,0L1.5.5",
			[][]vec.Vec2{{{X: 0, Y: 0}, {X: 1.5, Y: 0.5}}},
		},
		{
			"M0 0 L1 0 Z l0 1",
			[][]vec.Vec2{
				{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}},
				{{X: 0, Y: 0}, {X: 0, Y: 1}},
			},
		},
		{
			"M0 0 M5 5 L6 5",
			[][]vec.Vec2{{{X: 5, Y: 5}, {X: 6, Y: 5}}},
		},
	}
	for _, c := range cases {
		got := flatten(t, c.d)
		if len(got) != len(c.want) {
			t.Errorf("%q: got %v, want %v", c.d, got, c.want)
			continue
		}
		for i := range got {
			if len(got[i]) != len(c.want[i]) {
				t.Errorf("%q: got %v, want %v", c.d, got, c.want)
				break
			}
			for j := range got[i] {
				if !closeTo(got[i][j], c.want[i][j], 1e-12) {
					t.Errorf("%q: got %v, want %v", c.d, got, c.want)
					break
				}
			}
		}
	}
}

func TestPathDataError(t *testing.T) {
	p, err := parsePathData("M0 0 L10 0 X 5 5")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("got %v, want ErrUnknownCommand", err)
	}
	f := &flattener{CTM: matrix.Identity, Tolerance: 0.1}
	got := f.Flatten(p.Iter())
	if len(got) != 1 || len(got[0]) != 2 {
		t.Errorf("partial path: %v", got)
	}

	if _, err := parsePathData("L1 1"); err == nil {
		t.Error("missing error for path without moveto")
	}
	if _, err := parsePathData("M0 0 L1"); err == nil {
		t.Error("missing error for incomplete coordinate pair")
	}
}

func TestArc(t *testing.T) {
	center := vec.Vec2{X: 10, Y: 0}
	for _, d := range []string{
		"M0 0 A10 10 0 0 1 20 0",
		"M0 0 A10 10 0 1 0 20 0",
		"M0 0 a5 5 0 0 0 20 0", // radius is scaled up
	} {
		got := flatten(t, d)
		if len(got) != 1 {
			t.Fatalf("%q: got %d polylines", d, len(got))
		}
		pl := got[0]
		if last := pl[len(pl)-1]; !closeTo(last, vec.Vec2{X: 20, Y: 0}, 1e-9) {
			t.Errorf("%q: arc ends at %v", d, last)
		}
		for _, p := range pl {
			if r := p.Sub(center).Length(); math.Abs(r-10) > 0.02 {
				t.Errorf("%q: point %v has distance %g from the center", d, p, r)
				break
			}
		}
	}

	// sweep-flag 1 runs through negative y for this arc
	top := flatten(t, "M0 0 A10 10 0 0 1 20 0")[0]
	if mid := top[len(top)/2]; mid.Y > -9 {
		t.Errorf("sweep 1 arc passes through %v", mid)
	}
	bottom := flatten(t, "M0 0 A10 10 0 0 0 20 0")[0]
	if mid := bottom[len(bottom)/2]; mid.Y < 9 {
		t.Errorf("sweep 0 arc passes through %v", mid)
	}

	// zero radius gives a straight line
	line := flatten(t, "M0 0 A0 5 0 0 1 20 0")[0]
	if len(line) != 2 {
		t.Errorf("zero radius arc: %v", line)
	}
}

func TestFlattenTolerance(t *testing.T) {
	p, err := parsePathData("M10 0 C10 5.5 5.5 10 0 10")
	if err != nil {
		t.Fatal(err)
	}

	small := &flattener{CTM: matrix.Identity, Tolerance: 0.1}
	large := &flattener{CTM: matrix.Scale(10, 10), Tolerance: 0.1}
	n1 := len(small.Flatten(p.Iter())[0])
	n2 := len(large.Flatten(p.Iter())[0])
	if n2 <= n1 {
		t.Errorf("scaled curve uses %d points, unscaled %d", n2, n1)
	}

	// points are in root coordinates
	pl := large.Flatten(p.Iter())[0]
	if !closeTo(pl[0], vec.Vec2{X: 100}, 1e-9) || !closeTo(pl[len(pl)-1], vec.Vec2{Y: 100}, 1e-9) {
		t.Errorf("end points %v, %v", pl[0], pl[len(pl)-1])
	}
}
