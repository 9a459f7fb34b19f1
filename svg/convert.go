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
	"log/slog"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgplot/coord"
	"seehuhn.de/go/svgplot/dash"
	"seehuhn.de/go/svgplot/element"
	"seehuhn.de/go/svgplot/pattern"
	"seehuhn.de/go/svgplot/plot"
)

// DefaultTolerance is the flattening tolerance used if
// [Converter.Tolerance] is zero.
const DefaultTolerance = 0.1

// Converter turns SVG documents into polylines.
type Converter struct {
	// Global is the viewport the document is shown in.  Percentages in the
	// width and height of the outermost <svg> element refer to this.
	Global coord.Viewport

	// Tolerance is the maximal distance between a curve and the polyline
	// which replaces it, in root units.  Zero means [DefaultTolerance].
	Tolerance float64

	// Logger receives diagnostics.  If this is nil, the package logger
	// is used, see [SetLogger].
	Logger *slog.Logger
}

// Convert traverses the document and sends the outlines of all shapes,
// including the content of pattern fills, to sink.  Coordinates passed to
// sink are root coordinates.
//
// Conversion stops at the first malformed attribute value, and the error
// is returned.  Geometry sent to sink before this point remains there.
func (c *Converter) Convert(doc *Document, sink plot.Plotter) error {
	logger := c.Logger
	if logger == nil {
		logger = Logger()
	}
	w := &walker{
		doc:       doc,
		tolerance: c.Tolerance,
		tiles:     make(map[*Node]*pattern.Tile),
		active:    make(map[*Node]bool),
	}
	if w.tolerance <= 0 {
		w.tolerance = DefaultTolerance
	}

	root := element.NewDocument(c.Global, sink, logger)
	if err := w.setupSVG(root, doc.Root, c.Global, false); err != nil {
		return err
	}
	return w.children(root, doc.Root)
}

// walker holds the state of one traversal.
type walker struct {
	doc       *Document
	tolerance float64

	// tiles caches the captured content of pattern definitions
	tiles map[*Node]*pattern.Tile

	// active holds the patterns whose content is being captured
	active map[*Node]bool
}

func (w *walker) children(ctx element.Context, n *Node) error {
	if !ctx.ProcessChildren() {
		return nil
	}
	for _, child := range n.Children {
		if err := w.node(ctx, child); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) node(parent element.Context, n *Node) error {
	if strings.TrimSpace(n.Prop("display")) == "none" {
		return nil
	}

	switch {
	case n.Name == "svg":
		s := element.NewSVG(parent)
		if err := w.setupSVG(s, n, parent.InnerViewport(), true); err != nil {
			return err
		}
		return w.children(s, n)

	case n.Name == "g" || n.Name == "a" || n.Name == "switch":
		g := element.NewGroup(parent)
		if err := transformAttr(g, n, "transform"); err != nil {
			return err
		}
		return w.children(g, n)

	case isShape(n.Name):
		return w.shape(parent, n)
	}

	switch n.Name {
	case "defs", "pattern", "title", "desc", "metadata", "style",
		"clipPath", "mask", "symbol", "marker", "linearGradient",
		"radialGradient", "filter", "script":
		// not rendered directly
	default:
		parent.Logger().Warn("unsupported element ignored", "element", n.Name)
	}
	return nil
}

// setupSVG reports the viewport related attributes of an <svg> element.
// The position x, y is only used for nested elements.
func (w *walker) setupSVG(s *element.SVG, n *Node, parentViewport coord.Viewport, nested bool) error {
	x, err := lengthAttr(n, "x", parentViewport, axisX, 0)
	if err != nil {
		return err
	}
	y, err := lengthAttr(n, "y", parentViewport, axisY, 0)
	if err != nil {
		return err
	}
	width, err := lengthAttr(n, "width", parentViewport, axisX, parentViewport.Width)
	if err != nil {
		return err
	}
	height, err := lengthAttr(n, "height", parentViewport, axisY, parentViewport.Height)
	if err != nil {
		return err
	}

	if nested && (x != 0 || y != 0) {
		s.Transform(coord.Translate(x, y))
	}
	if width <= 0 || height <= 0 {
		s.DisableRendering()
		return nil
	}
	s.SetViewport(x, y, width, height)

	vbAttr, ok := n.Attr["viewBox"]
	if !ok {
		return nil
	}
	vb, err := parseViewBox(vbAttr)
	if err != nil {
		return err
	}
	if vb.Width <= 0 || vb.Height <= 0 {
		s.DisableRendering()
		return nil
	}
	par, err := coord.ParsePreserveAspectRatio(n.Attr["preserveAspectRatio"])
	if err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	s.Transform(coord.ViewBoxTransform(vb, coord.Viewport{Width: width, Height: height}, par))
	s.SetViewboxSize(vb.Width, vb.Height)
	return nil
}

// transformAttr reports the value of a transform attribute as a Transform
// event.
func transformAttr(ctx element.Context, n *Node, name string) error {
	s, ok := n.Attr[name]
	if !ok {
		return nil
	}
	m, err := parseTransform(s)
	if err != nil {
		return fmt.Errorf("<%s %s>: %w", n.Name, name, err)
	}
	ctx.Transform(m)
	return nil
}

// shape converts a basic shape or a path.
func (w *walker) shape(parent element.Context, n *Node) error {
	ctx := element.NewGroup(parent)
	if err := transformAttr(ctx, n, "transform"); err != nil {
		return err
	}
	user := ctx.Inner()

	data, outlineErr := outline(n, user.Viewport)
	if data == nil {
		return outlineErr
	}

	f := &flattener{CTM: user.Transform, Tolerance: w.tolerance}
	polylines := f.Flatten(data.Iter())
	if len(polylines) == 0 {
		return outlineErr
	}

	if id, ok := parseURLRef(n.Prop("fill")); ok {
		local := &flattener{CTM: matrix.Identity, Tolerance: w.tolerance}
		var bbox coord.BBox
		for _, pl := range local.Flatten(data.Iter()) {
			for _, p := range pl {
				bbox.Extend(p)
			}
		}
		if err := w.fillPattern(ctx, id, polylines, bbox); err != nil {
			return err
		}
	}

	if strings.TrimSpace(n.Prop("stroke")) != "none" {
		dashes, err := strokeDashes(n, user)
		if err != nil {
			return err
		}
		p := ctx.Plotter()
		for _, pl := range polylines {
			p.Plot(pl, dashes)
		}
	}

	return outlineErr
}

// strokeDashes returns the dash array of a shape, converted to root units.
// Solid lines give nil.
func strokeDashes(n *Node, user coord.System) ([]float64, error) {
	dashes, err := parseDashArray(n.Prop("stroke-dasharray"), user.Viewport)
	if err != nil {
		return nil, fmt.Errorf("<%s>: %w", n.Name, err)
	}
	if dash.IsSolid(dashes) {
		return nil, nil
	}

	scale := math.Sqrt(math.Abs(coord.Det(user.Transform)))
	if scale == 0 {
		return nil, nil
	}
	for i := range dashes {
		dashes[i] *= scale
	}
	return dashes, nil
}

// patternAttrs lists the attributes which a <pattern> element inherits
// from the pattern it references.
var patternAttrs = []string{
	"x", "y", "width", "height", "patternUnits", "patternContentUnits",
	"patternTransform", "viewBox", "preserveAspectRatio",
}

// patternDef is a pattern definition with inherited attributes resolved.
type patternDef struct {
	attr    map[string]string
	content *Node // the element whose children form the tile content
}

// resolvePattern follows the chain of href references of a <pattern>
// element.
func (w *walker) resolvePattern(n *Node) (*patternDef, error) {
	def := &patternDef{attr: make(map[string]string)}
	seen := make(map[*Node]bool)
	for n != nil && !seen[n] {
		seen[n] = true
		for _, name := range patternAttrs {
			if _, done := def.attr[name]; done {
				continue
			}
			if v, ok := n.Attr[name]; ok {
				def.attr[name] = v
			}
		}
		if def.content == nil && len(n.Children) > 0 {
			def.content = n
		}

		ref, ok := n.Attr["href"]
		if !ok {
			break
		}
		id := strings.TrimPrefix(strings.TrimSpace(ref), "#")
		next := w.doc.Lookup(id)
		if next == nil {
			return nil, fmt.Errorf("pattern href %q: %w", ref, ErrMissingID)
		}
		if next.Name != "pattern" {
			break
		}
		n = next
	}
	return def, nil
}

// fillPattern fills the outline clip of a shape with the pattern id.
// The bounding box bbox is given in user space of the shape.
func (w *walker) fillPattern(shape element.Context, id string, clip [][]vec.Vec2, bbox coord.BBox) error {
	logger := shape.Logger()

	n := w.doc.Lookup(id)
	if n == nil {
		return fmt.Errorf("fill url(#%s): %w", id, ErrMissingID)
	}
	if n.Name != "pattern" {
		logger.Debug("unsupported paint server ignored", "id", id, "element", n.Name)
		return nil
	}
	if w.active[n] {
		logger.Warn("recursive pattern reference ignored", "id", id)
		return nil
	}

	def, err := w.resolvePattern(n)
	if err != nil {
		return err
	}
	geom, err := def.geometry(bbox, shape.InnerViewport())
	if err != nil {
		return fmt.Errorf("pattern %q: %w", id, err)
	}

	p := element.NewPattern(shape, geom)
	if s, ok := def.attr["patternTransform"]; ok {
		m, err := parseTransform(s)
		if err != nil {
			return fmt.Errorf("pattern %q: %w", id, err)
		}
		p.Transform(m)
	}
	if !p.ProcessChildren() {
		logger.Debug("empty pattern tile", "id", id)
		return nil
	}

	tile, ok := w.tiles[n]
	if !ok {
		tile = &pattern.Tile{}
		p.Capture(tile)
		if def.content != nil {
			w.active[n] = true
			for _, child := range def.content.Children {
				if err := w.node(p, child); err != nil {
					delete(w.active, n)
					return err
				}
			}
			delete(w.active, n)
		}
		w.tiles[n] = tile
	}

	size := p.Size()
	tileSize := vec.Vec2{X: size.Width, Y: size.Height}
	if count := pattern.TileCount(tileSize, p.Tile(), clip); count > pattern.MaxTiles {
		logger.Warn("pattern fill skipped, too many tiles", "id", id, "tiles", count)
		return nil
	}
	offsets := pattern.ComputeTilingOffsets(tileSize, p.Tile(), clip)
	logger.Debug("pattern fill", "id", id, "tiles", len(offsets), "paths", len(tile.Paths))
	tile.Replay(p.ContentToRoot(), offsets, clip, shape.Plotter())
	return nil
}

// geometry resolves the pattern tile for an element with bounding box bbox
// and viewport v.
func (def *patternDef) geometry(bbox coord.BBox, v coord.Viewport) (element.PatternGeometry, error) {
	var geom element.PatternGeometry

	var box rect.Rect
	if !bbox.IsEmpty() {
		box = bbox.Rect()
	}
	bw, bh := box.URx-box.LLx, box.URy-box.LLy

	names := []string{"x", "y", "width", "height"}
	vals := make([]float64, len(names))
	if def.attr["patternUnits"] == "userSpaceOnUse" {
		for i, name := range names {
			a := axisX
			if i%2 == 1 {
				a = axisY
			}
			s, ok := def.attr[name]
			if !ok {
				continue
			}
			x, err := parseLength(s, v, a)
			if err != nil {
				return geom, err
			}
			vals[i] = x
		}
	} else {
		for i, name := range names {
			s, ok := def.attr[name]
			if !ok {
				continue
			}
			x, err := parseFraction(s)
			if err != nil {
				return geom, err
			}
			vals[i] = x
		}
		vals[0] = box.LLx + vals[0]*bw
		vals[1] = box.LLy + vals[1]*bh
		vals[2] *= bw
		vals[3] *= bh
	}
	geom.X, geom.Y, geom.Width, geom.Height = vals[0], vals[1], vals[2], vals[3]
	if geom.Width <= 0 || geom.Height <= 0 {
		return geom, nil
	}

	if s, ok := def.attr["viewBox"]; ok {
		vb, err := parseViewBox(s)
		if err != nil {
			return geom, err
		}
		if vb.Width <= 0 || vb.Height <= 0 {
			// a degenerate viewBox disables the pattern
			geom.Width, geom.Height = 0, 0
			return geom, nil
		}
		par, err := coord.ParsePreserveAspectRatio(def.attr["preserveAspectRatio"])
		if err != nil {
			return geom, err
		}
		geom.Content = coord.ViewBoxTransform(vb, coord.Viewport{Width: geom.Width, Height: geom.Height}, par)
		geom.ContentViewport = vb.Size()
	} else if def.attr["patternContentUnits"] == "objectBoundingBox" && bw > 0 && bh > 0 {
		geom.Content = matrix.Scale(bw, bh)
		geom.ContentViewport = coord.Viewport{Width: geom.Width / bw, Height: geom.Height / bh}
	}
	return geom, nil
}

// parseFraction parses a number or a percentage, as used for attributes in
// objectBoundingBox units.
func parseFraction(s string) (float64, error) {
	s = strings.TrimSpace(s)
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSpace(s[:len(s)-1])
		scale = 0.01
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid fraction %q", s)
	}
	return x * scale, nil
}
