package testcases

import "math"

var shapeCases = []TestCase{
	{
		Name:   "rect_basic",
		SVG:    doc(`<rect x="10" y="10" width="40" height="20"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 120,
	},
	{
		Name:   "line_diagonal",
		SVG:    doc(`<line x1="0" y1="0" x2="30" y2="40"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 50,
	},
	{
		Name:   "polyline_open",
		SVG:    doc(`<polyline points="0,0 10,0 10,10 20,10"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 30,
	},
	{
		Name:   "polygon_triangle",
		SVG:    doc(`<polygon points="0,0 30,0 0,40"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 120,
	},
	{
		Name:   "circle",
		SVG:    doc(`<circle cx="50" cy="50" r="20"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 2 * math.Pi * 20,
	},
	{
		// perimeter from Ramanujan's approximation
		Name:   "ellipse",
		SVG:    doc(`<ellipse cx="50" cy="50" rx="30" ry="10"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: math.Pi * (120 - math.Sqrt(100*60)),
	},
	{
		Name:   "rect_rounded",
		SVG:    doc(`<rect x="10" y="10" width="40" height="20" rx="5"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 60 + 20 + 2*math.Pi*5,
	},
	{
		Name:   "stroke_none",
		SVG:    doc(`<rect width="10" height="10" stroke="none"/>`),
		Width:  100,
		Height: 100,
		Paths:  0,
	},
	{
		Name:   "zero_size",
		SVG:    doc(`<circle r="0"/><rect width="10" height="0"/><polyline points="5,5"/>`),
		Width:  100,
		Height: 100,
		Paths:  0,
	},
}
