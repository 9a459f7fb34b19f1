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

// Package svg reads SVG documents and converts them into polylines for a
// pen plotter.
package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	// ErrNoSVG is returned if the input does not contain an <svg> element.
	ErrNoSVG = errors.New("svg: no <svg> element found")

	// ErrParamMismatch indicates a wrong number of parameters, for example
	// in a transform attribute.
	ErrParamMismatch = errors.New("svg: parameter mismatch")

	// ErrUnknownCommand indicates an invalid command in path data or in
	// a transform attribute.
	ErrUnknownCommand = errors.New("svg: unknown command")

	// ErrMissingID indicates a reference to an element which does not
	// exist.
	ErrMissingID = errors.New("svg: cannot find id")
)

// Node is an element of an SVG document.
type Node struct {
	Name     string            // local name of the element
	Attr     map[string]string // attributes, by local name
	Style    map[string]string // declarations from the style attribute
	Children []*Node
}

// Prop returns the value of a presentation property.  Declarations in the
// style attribute take precedence over attributes.
func (n *Node) Prop(name string) string {
	if v, ok := n.Style[name]; ok {
		return v
	}
	return n.Attr[name]
}

// Document is a parsed SVG document.
type Document struct {
	Root *Node
	ids  map[string]*Node
}

// Lookup returns the element with the given id, or nil if there is no
// such element.
func (d *Document) Lookup(id string) *Node {
	return d.ids[id]
}

// Parse reads an SVG document.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	doc := &Document{ids: make(map[string]*Node)}
	var stack []*Node
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("svg: %w", err)
		}

		switch se := t.(type) {
		case xml.StartElement:
			n := newNode(se)
			if id := n.Attr["id"]; id != "" {
				if _, seen := doc.ids[id]; !seen {
					doc.ids[id] = n
				}
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if doc.Root == nil {
				doc.Root = n
			} else {
				// ignore content after the root element
				return doc.check()
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return doc.check()
}

func (d *Document) check() (*Document, error) {
	if d.Root == nil || d.Root.Name != "svg" {
		return nil, ErrNoSVG
	}
	return d, nil
}

func newNode(se xml.StartElement) *Node {
	n := &Node{
		Name: se.Name.Local,
		Attr: make(map[string]string, len(se.Attr)),
	}
	for _, a := range se.Attr {
		n.Attr[a.Name.Local] = a.Value
	}
	if style, ok := n.Attr["style"]; ok {
		n.Style = parseStyle(style)
	}
	return n
}

// parseStyle splits the declarations of a style attribute.
func parseStyle(s string) map[string]string {
	res := make(map[string]string)
	for _, decl := range strings.Split(s, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)
		val = strings.TrimSuffix(val, "!important")
		res[key] = strings.TrimSpace(val)
	}
	return res
}
