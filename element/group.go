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

import "seehuhn.de/go/svgplot/coord"

// Group is the context for elements which do not establish a new viewport,
// like <g> and the basic shapes.
type Group struct {
	graphics
}

// NewGroup returns the context for a child of parent.
func NewGroup(parent Context) *Group {
	return &Group{graphics: inherit(parent)}
}

// Inner implements the [Context] interface.
// Children of a group share the group's coordinate system.
func (g *Group) Inner() coord.System {
	g.frozen = true
	return g.system
}

// InnerViewport implements the [Context] interface.
func (g *Group) InnerViewport() coord.Viewport {
	return g.Inner().Viewport
}

// ProcessChildren implements the [Context] interface.
func (g *Group) ProcessChildren() bool {
	return true
}
