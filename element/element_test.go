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

package element

import (
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgplot/coord"
	"seehuhn.de/go/svgplot/pattern"
	"seehuhn.de/go/svgplot/plot"
)

var global = coord.Viewport{Width: 100, Height: 50}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

func TestDocumentDefault(t *testing.T) {
	doc := NewDocument(global, &plot.Drawing{}, nil)
	if doc.State() != ViewportDefault {
		t.Errorf("state = %v, want default", doc.State())
	}
	if !doc.ProcessChildren() {
		t.Error("default document does not process children")
	}
	inner := doc.Inner()
	if inner.Viewport != global {
		t.Errorf("inner viewport %v, want %v", inner.Viewport, global)
	}
	if inner.Transform != matrix.Identity {
		t.Errorf("inner transform %v, want identity", inner.Transform)
	}
}

func TestDocumentDisable(t *testing.T) {
	doc := NewDocument(global, &plot.Drawing{}, nil)
	doc.SetViewport(0, 0, 10, 20)
	doc.DisableRendering()
	if doc.ProcessChildren() {
		t.Error("disabled document processes children")
	}
	if doc.State() != ViewportDisabled {
		t.Errorf("state = %v, want disabled", doc.State())
	}
	expectPanic(t, "Inner of disabled svg", func() { doc.Inner() })

	// a later size event replaces the disabled state
	doc = NewDocument(global, &plot.Drawing{}, nil)
	doc.DisableRendering()
	doc.SetViewport(0, 0, 10, 20)
	if !doc.ProcessChildren() {
		t.Error("document still disabled after SetViewport")
	}
	if doc.State() != ViewportExplicit {
		t.Errorf("state = %v, want explicit", doc.State())
	}
	if got, want := doc.InnerViewport(), (coord.Viewport{Width: 10, Height: 20}); got != want {
		t.Errorf("inner viewport %v, want %v", got, want)
	}

	doc = NewDocument(global, &plot.Drawing{}, nil)
	doc.SetViewboxSize(5, 5)
	doc.DisableRendering()
	if doc.ProcessChildren() {
		t.Error("disabled document processes children")
	}
}

func TestDocumentViewBox(t *testing.T) {
	doc := NewDocument(global, &plot.Drawing{}, nil)
	doc.SetViewport(0, 0, 10, 20)
	doc.SetViewboxSize(5, 5)
	if got, want := doc.InnerViewport(), (coord.Viewport{Width: 5, Height: 5}); got != want {
		t.Errorf("inner viewport %v, want %v", got, want)
	}

	doc = NewDocument(global, &plot.Drawing{}, nil)
	doc.SetViewboxSize(5, 5)
	doc.SetViewport(0, 0, 10, 20)
	if got, want := doc.InnerViewport(), (coord.Viewport{Width: 10, Height: 20}); got != want {
		t.Errorf("viewBox then viewport: inner viewport %v, want %v", got, want)
	}
	if doc.State() != ViewportExplicit {
		t.Errorf("state = %v, want explicit", doc.State())
	}
}

func TestDocumentStateString(t *testing.T) {
	var s ViewportState
	if s.String() != "unset" {
		t.Errorf("zero value = %q, want unset", s.String())
	}
	doc := NewSVG(NewDocument(global, &plot.Drawing{}, nil))
	if doc.State() != ViewportDefault {
		t.Errorf("state = %v, want default", doc.State())
	}
}

func TestDocumentExplicit(t *testing.T) {
	doc := NewDocument(global, &plot.Drawing{}, nil)
	doc.SetViewport(3, 4, 10, 20)
	if doc.State() != ViewportExplicit {
		t.Errorf("state = %v, want explicit", doc.State())
	}
	if got, want := doc.InnerViewport(), (coord.Viewport{Width: 10, Height: 20}); got != want {
		t.Errorf("inner viewport %v, want %v", got, want)
	}
}

func TestFrozen(t *testing.T) {
	doc := NewDocument(global, &plot.Drawing{}, nil)
	g := NewGroup(doc)
	expectPanic(t, "SetViewport after Inner", func() { doc.SetViewport(0, 0, 1, 1) })
	expectPanic(t, "Transform after Inner", func() { doc.Transform(matrix.Identity) })

	g.Transform(matrix.Scale(2, 2))
	NewGroup(g)
	expectPanic(t, "group Transform after Inner", func() { g.Transform(matrix.Identity) })
}

func TestNestedTransforms(t *testing.T) {
	doc := NewDocument(global, &plot.Drawing{}, nil)

	outer := NewGroup(doc)
	outer.Transform(coord.Translate(10, 0))

	inner := NewGroup(outer)
	inner.Transform(matrix.Scale(2, 2))

	// inner local (1, 1) -> scaled (2, 2) -> translated (12, 2)
	got := coord.Apply(inner.System().Transform, vec.Vec2{X: 1, Y: 1})
	if want := (vec.Vec2{X: 12, Y: 2}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if inner.InnerViewport() != global {
		t.Errorf("group changed the viewport: %v", inner.InnerViewport())
	}
}

func TestNestedSVG(t *testing.T) {
	doc := NewDocument(global, &plot.Drawing{}, nil)
	doc.SetViewport(0, 0, 200, 100)

	svg := NewSVG(doc)
	if got, want := svg.System().Viewport, (coord.Viewport{Width: 200, Height: 100}); got != want {
		t.Errorf("nested svg sits in %v, want %v", got, want)
	}
	if svg.State() != ViewportDefault || svg.InnerViewport() != svg.System().Viewport {
		t.Errorf("nested svg default viewport %v", svg.InnerViewport())
	}

	svg2 := NewSVG(doc)
	svg2.Transform(coord.Translate(5, 5))
	svg2.SetViewport(5, 5, 0, 10)
	svg2.DisableRendering()
	if svg2.ProcessChildren() {
		t.Error("nested svg with zero width processes children")
	}
}

func TestPatternContext(t *testing.T) {
	doc := NewDocument(global, &plot.Drawing{}, nil)
	shape := NewGroup(doc)
	shape.Transform(matrix.Scale(2, 2))

	p := NewPattern(shape, PatternGeometry{X: 1, Y: 2, Width: 4, Height: 5})
	p.Transform(coord.Translate(10, 0)) // patternTransform

	// tile origin: (1, 2) -> (11, 2) -> (22, 4)
	origin := coord.Apply(p.Tile().Transform, vec.Vec2{})
	if want := (vec.Vec2{X: 22, Y: 4}); origin != want {
		t.Errorf("tile origin %v, want %v", origin, want)
	}
	if got := p.Tile().Viewport; got != (coord.Viewport{Width: 4, Height: 5}) {
		t.Errorf("tile size %v", got)
	}

	if !p.ProcessChildren() {
		t.Fatal("pattern does not process children")
	}
	tile := &pattern.Tile{}
	p.Capture(tile)
	if p.Inner().Transform != matrix.Identity {
		t.Errorf("pattern content is not in its own root space: %v", p.Inner().Transform)
	}

	child := NewGroup(p)
	child.Plotter().Plot([]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}, nil)
	if len(tile.Paths) != 1 {
		t.Errorf("child geometry not captured: %v", tile.Paths)
	}
}

func TestPatternDisabled(t *testing.T) {
	doc := NewDocument(global, &plot.Drawing{}, nil)
	for _, geom := range []PatternGeometry{
		{Width: 0, Height: 5},
		{Width: 5, Height: 0},
		{Width: -1, Height: 5},
	} {
		p := NewPattern(doc, geom)
		if p.ProcessChildren() {
			t.Errorf("%+v: pattern processes children", geom)
		}
		expectPanic(t, "Inner of disabled pattern", func() { p.Inner() })
	}

	p := NewPattern(doc, PatternGeometry{Width: 5, Height: 5})
	p.Transform(matrix.Scale(0, 1))
	if p.ProcessChildren() {
		t.Error("pattern with singular transform processes children")
	}
}
