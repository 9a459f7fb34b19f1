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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestViewBoxTransform(t *testing.T) {
	type testCase struct {
		name   string
		vb     ViewBox
		v      Viewport
		par    PreserveAspectRatio
		in     vec.Vec2
		expect vec.Vec2
	}
	cases := []testCase{
		{"identity", ViewBox{0, 0, 10, 10}, Viewport{10, 10}, DefaultAspectRatio,
			vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 3, Y: 4}},
		{"offset", ViewBox{5, 5, 10, 10}, Viewport{10, 10}, DefaultAspectRatio,
			vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 0, Y: 0}},
		{"stretch", ViewBox{0, 0, 10, 10}, Viewport{20, 40}, PreserveAspectRatio{},
			vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 20, Y: 40}},
		{"meet_mid", ViewBox{0, 0, 10, 10}, Viewport{20, 40}, DefaultAspectRatio,
			vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 10}},
		{"meet_max", ViewBox{0, 0, 10, 10}, Viewport{20, 40},
			PreserveAspectRatio{Align: AlignXMaxYMax},
			vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 20, Y: 40}},
		{"slice_min", ViewBox{0, 0, 10, 10}, Viewport{20, 40},
			PreserveAspectRatio{Align: AlignXMinYMin, Slice: true},
			vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 40, Y: 40}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := ViewBoxTransform(tc.vb, tc.v, tc.par)
			got := Apply(m, tc.in)
			if got.Sub(tc.expect).Length() > 1e-9 {
				t.Errorf("got %v, want %v", got, tc.expect)
			}
		})
	}
}

func TestParsePreserveAspectRatio(t *testing.T) {
	cases := []struct {
		in   string
		want PreserveAspectRatio
		ok   bool
	}{
		{"", DefaultAspectRatio, true},
		{"none", PreserveAspectRatio{Align: AlignNone}, true},
		{"xMinYMax", PreserveAspectRatio{Align: AlignXMinYMax}, true},
		{"xMidYMid slice", PreserveAspectRatio{Align: AlignXMidYMid, Slice: true}, true},
		{"defer xMaxYMin meet", PreserveAspectRatio{Align: AlignXMaxYMin}, true},
		{"xMidYMid cover", DefaultAspectRatio, false},
		{"middle", DefaultAspectRatio, false},
	}
	for _, tc := range cases {
		got, err := ParsePreserveAspectRatio(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("%q: unexpected error state %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestBBox(t *testing.T) {
	var b BBox
	if !b.IsEmpty() {
		t.Fatal("zero BBox is not empty")
	}
	b.Extend(vec.Vec2{X: 1, Y: 5})
	b.Extend(vec.Vec2{X: -2, Y: 3})
	b.Extend(vec.Vec2{X: 0, Y: 7})
	if b.IsEmpty() {
		t.Fatal("BBox is empty after Extend")
	}
	if got, want := b.Min(), (vec.Vec2{X: -2, Y: 3}); got != want {
		t.Errorf("min: got %v, want %v", got, want)
	}
	if got, want := b.Max(), (vec.Vec2{X: 1, Y: 7}); got != want {
		t.Errorf("max: got %v, want %v", got, want)
	}

	// the first point must not be merged with the zero rectangle
	var c BBox
	c.Extend(vec.Vec2{X: 4, Y: 5})
	if got, want := c.Rect(), (rect.Rect{LLx: 4, LLy: 5, URx: 4, URy: 5}); got != want {
		t.Errorf("single point: got %v, want %v", got, want)
	}
}
