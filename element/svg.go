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
	"log/slog"

	"seehuhn.de/go/svgplot/coord"
	"seehuhn.de/go/svgplot/plot"
)

// ViewportState describes how the viewport of an <svg> element was
// determined.
type ViewportState int

// These are the possible values of ViewportState.  ViewportUnset is the
// zero value; NewDocument and NewSVG start in ViewportDefault, so an
// initialised context never reports it.
const (
	ViewportUnset    ViewportState = iota
	ViewportDefault                // 100% of the surrounding viewport
	ViewportExplicit               // from the width and height attributes
	ViewportViewBox                // from the viewBox attribute
	ViewportDisabled               // zero width or height, nothing is rendered
)

func (s ViewportState) String() string {
	switch s {
	case ViewportUnset:
		return "unset"
	case ViewportDefault:
		return "default"
	case ViewportExplicit:
		return "explicit"
	case ViewportViewBox:
		return "viewBox"
	case ViewportDisabled:
		return "disabled"
	default:
		return "invalid"
	}
}

// SVG is the context for <svg> elements.
//
// The viewport for the children is resolved by the events SetViewport,
// SetViewboxSize and DisableRendering, which may arrive any number of
// times and in any order before the children are visited.  The last
// event determines the state.  The position of the viewport as well
// as the scaling and alignment of the viewBox are reported separately, via
// [SVG.Transform].
type SVG struct {
	graphics

	state ViewportState
	inner coord.Viewport
}

// NewDocument returns the context for the outermost <svg> element of a
// document which is shown in the given global viewport.
// The document coordinates coincide with root coordinates.
func NewDocument(global coord.Viewport, p plot.Plotter, logger *slog.Logger) *SVG {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SVG{
		graphics: graphics{
			system:  coord.Root(global),
			plotter: p,
			logger:  logger,
		},
		// The default width and height are 100%.
		state: ViewportDefault,
		inner: global,
	}
}

// NewSVG returns the context for an <svg> element nested inside parent.
func NewSVG(parent Context) *SVG {
	g := inherit(parent)
	return &SVG{
		graphics: g,
		state:    ViewportDefault,
		inner:    g.system.Viewport,
	}
}

// SetViewport reports the x, y, width and height of the element.
// Only the width and height are used here.
func (s *SVG) SetViewport(x, y, width, height float64) {
	s.checkEvent("SetViewport")
	s.state = ViewportExplicit
	s.inner = coord.Viewport{Width: width, Height: height}
}

// SetViewboxSize reports the size of the viewBox.
func (s *SVG) SetViewboxSize(width, height float64) {
	s.checkEvent("SetViewboxSize")
	s.state = ViewportViewBox
	s.inner = coord.Viewport{Width: width, Height: height}
}

// DisableRendering reports that the element has zero width or height.
// Neither the element nor its children are rendered, unless a later
// SetViewport or SetViewboxSize event supplies a new viewport.
func (s *SVG) DisableRendering() {
	s.checkEvent("DisableRendering")
	if s.state != ViewportDisabled {
		s.logger.Debug("svg rendering disabled", "viewport", s.inner)
	}
	s.state = ViewportDisabled
	s.inner = coord.Viewport{}
}

// State returns how the viewport for the children was determined.
func (s *SVG) State() ViewportState {
	return s.state
}

// ProcessChildren implements the [Context] interface.
func (s *SVG) ProcessChildren() bool {
	return s.state != ViewportDisabled
}

// Inner implements the [Context] interface.
func (s *SVG) Inner() coord.System {
	if s.state == ViewportDisabled {
		panic("element: viewport of a disabled <svg> element accessed")
	}
	s.frozen = true
	return coord.System{Transform: s.system.Transform, Viewport: s.inner}
}

// InnerViewport implements the [Context] interface.
func (s *SVG) InnerViewport() coord.Viewport {
	return s.Inner().Viewport
}
