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

package plot

import (
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestDrawingPlot(t *testing.T) {
	d := &Drawing{}
	in := []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1)}
	d.Plot(in, nil)
	if len(d.Paths) != 1 || !slices.Equal(d.Paths[0], in) {
		t.Fatalf("solid polyline changed: %v", d.Paths)
	}
	in[0] = pt(5, 5)
	if d.Paths[0][0] != pt(0, 0) {
		t.Error("Drawing aliases the caller's slice")
	}

	d.Plot([]vec.Vec2{pt(0, 0), pt(10, 0)}, []float64{1, 1})
	if got := len(d.Paths); got != 1+5 {
		t.Errorf("got %d paths, want 6", got)
	}

	b := d.Bounds()
	if b.LLx != 0 || b.LLy != 0 || b.URx != 9 || b.URy != 1 {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestClipPolyline(t *testing.T) {
	square := [][]vec.Vec2{{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)}}

	type testCase struct {
		name string
		in   []vec.Vec2
		want [][]vec.Vec2
	}
	cases := []testCase{
		{"inside", []vec.Vec2{pt(1, 1), pt(5, 5), pt(9, 1)},
			[][]vec.Vec2{{pt(1, 1), pt(5, 5), pt(9, 1)}}},
		{"outside", []vec.Vec2{pt(-5, -5), pt(-1, 20)}, nil},
		{"crossing", []vec.Vec2{pt(-5, 5), pt(15, 5)},
			[][]vec.Vec2{{pt(0, 5), pt(10, 5)}}},
		{"in_out_in", []vec.Vec2{pt(5, 5), pt(15, 5), pt(15, 7), pt(5, 7)},
			[][]vec.Vec2{{pt(5, 5), pt(10, 5)}, {pt(10, 7), pt(5, 7)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClipPolyline(tc.in, square)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if len(got[i]) != len(tc.want[i]) {
					t.Fatalf("piece %d: got %v, want %v", i, got[i], tc.want[i])
				}
				for j := range got[i] {
					if got[i][j].Sub(tc.want[i][j]).Length() > 1e-9 {
						t.Errorf("piece %d: got %v, want %v", i, got[i], tc.want[i])
						break
					}
				}
			}
		})
	}
}

func TestInsideHole(t *testing.T) {
	clip := [][]vec.Vec2{
		{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)},
		{pt(3, 3), pt(7, 3), pt(7, 7), pt(3, 7)},
	}
	if !Inside(pt(1, 1), clip) {
		t.Error("point in ring reported outside")
	}
	if Inside(pt(5, 5), clip) {
		t.Error("point in hole reported inside")
	}
	if Inside(pt(-1, 5), clip) {
		t.Error("point outside reported inside")
	}
}
