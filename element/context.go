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

// Package element implements the per-element contexts used while an SVG
// document is traversed.
//
// The traversal visits elements depth first.  For every element a context
// is constructed from the context of the parent element.  Property events
// (like [Context.Transform]) are then reported to the new context, and
// finally [Context.ProcessChildren] decides whether the children are
// visited.  Children are constructed from [Context.Inner] of their parent.
// Once Inner has been called, the context is frozen and further property
// events cause a panic.
//
// A context copies the coordinate system of its parent during construction
// and never refers to the parent afterwards.
package element

import (
	"log/slog"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgplot/coord"
	"seehuhn.de/go/svgplot/plot"
)

// Context is the state associated with one element of the document tree.
// The implementations are [*SVG], [*Group] and [*Pattern].
type Context interface {
	// System returns the coordinate system of the element itself.
	System() coord.System

	// Inner returns the coordinate system for the children of the element.
	// Inner panics if ProcessChildren returns false.
	Inner() coord.System

	// InnerViewport is a shortcut for Inner().Viewport.
	InnerViewport() coord.Viewport

	// ProcessChildren reports whether the children of the element should
	// be traversed.
	ProcessChildren() bool

	// Transform reports an element-local transformation, mapping the
	// element's coordinates to the coordinates of the parent.
	Transform(m matrix.Matrix)

	// Plotter returns the sink for geometry produced inside the element.
	Plotter() plot.Plotter

	// Logger returns the logger for diagnostics.
	Logger() *slog.Logger
}

// graphics holds the state shared by all element contexts.
type graphics struct {
	system  coord.System
	plotter plot.Plotter
	logger  *slog.Logger
	frozen  bool
}

func inherit(parent Context) graphics {
	return graphics{
		system:  parent.Inner(),
		plotter: parent.Plotter(),
		logger:  parent.Logger(),
	}
}

func (g *graphics) System() coord.System {
	return g.system
}

func (g *graphics) Transform(m matrix.Matrix) {
	g.checkEvent("Transform")
	g.system.Transform = coord.Then(m, g.system.Transform)
}

func (g *graphics) Plotter() plot.Plotter {
	return g.plotter
}

func (g *graphics) Logger() *slog.Logger {
	return g.logger
}

func (g *graphics) checkEvent(name string) {
	if g.frozen {
		panic("element: " + name + " called after the children were visited")
	}
}
