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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgplot/coord"
	"seehuhn.de/go/svgplot/pattern"
)

// PatternGeometry describes the tile of a <pattern> element, after
// patternUnits and patternContentUnits have been resolved for one use of
// the pattern.
type PatternGeometry struct {
	// X, Y, Width and Height give the first tile, in the coordinates of the
	// element being filled (before the patternTransform is applied).
	X, Y, Width, Height float64

	// Content maps pattern content coordinates to tile coordinates,
	// where the tile occupies the rectangle from (0, 0) to (Width, Height).
	// The zero value means no transformation.
	Content matrix.Matrix

	// ContentViewport is the extent of the content coordinates.
	// If this is zero, the tile size is used.
	ContentViewport coord.Viewport
}

// Pattern is the context for a <pattern> element, used to fill one element.
//
// The context is constructed from the context of the element being filled;
// the patternTransform is reported via [Pattern.Transform].  The children
// of the pattern see the pattern content coordinates as their root
// coordinates, so that captured content does not depend on where the
// pattern is used.
type Pattern struct {
	graphics

	geom PatternGeometry
}

// NewPattern returns the context for a pattern filling an element with
// context parent.
func NewPattern(parent Context, geom PatternGeometry) *Pattern {
	if geom.Content == (matrix.Matrix{}) {
		geom.Content = matrix.Identity
	}
	if geom.ContentViewport == (coord.Viewport{}) {
		geom.ContentViewport = coord.Viewport{Width: geom.Width, Height: geom.Height}
	}
	return &Pattern{graphics: inherit(parent), geom: geom}
}

// Size returns the width and height of the tile.
func (p *Pattern) Size() coord.Viewport {
	return coord.Viewport{Width: p.geom.Width, Height: p.geom.Height}
}

// Tile returns the coordinate system of the first tile.  The tile occupies
// the rectangle from (0, 0) to [Pattern.Size] in these coordinates.
func (p *Pattern) Tile() coord.System {
	m := coord.Then(coord.Translate(p.geom.X, p.geom.Y), p.system.Transform)
	return coord.System{Transform: m, Viewport: p.Size()}
}

// ContentToRoot returns the transformation from pattern content
// coordinates to root coordinates, for the first tile.
func (p *Pattern) ContentToRoot() matrix.Matrix {
	return coord.Then(p.geom.Content, p.Tile().Transform)
}

// System implements the [Context] interface.
// For patterns, this is the same as [Pattern.Tile].
func (p *Pattern) System() coord.System {
	return p.Tile()
}

// Capture directs all geometry plotted inside the pattern into tile.
func (p *Pattern) Capture(tile *pattern.Tile) {
	p.plotter = tile.Exporter()
}

// ProcessChildren implements the [Context] interface.
// Patterns with a zero-size tile or a degenerate patternTransform are not
// rendered.
func (p *Pattern) ProcessChildren() bool {
	if p.geom.Width <= 0 || p.geom.Height <= 0 || p.geom.ContentViewport.IsZero() {
		return false
	}
	return coord.Invertible(p.Tile().Transform)
}

// Inner implements the [Context] interface.
func (p *Pattern) Inner() coord.System {
	if !p.ProcessChildren() {
		panic("element: content of a disabled pattern accessed")
	}
	p.frozen = true
	return coord.System{Transform: matrix.Identity, Viewport: p.geom.ContentViewport}
}

// InnerViewport implements the [Context] interface.
func (p *Pattern) InnerViewport() coord.Viewport {
	return p.Inner().Viewport
}
