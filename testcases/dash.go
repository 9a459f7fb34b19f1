package testcases

var dashCases = []TestCase{
	{
		Name:   "dash_single_element",
		SVG:    doc(`<line x2="100" stroke-dasharray="10"/>`),
		Width:  100,
		Height: 100,
		Paths:  5,
		Length: 50,
	},
	{
		// [5, 3, 8] becomes [5, 3, 8, 5, 3, 8]
		Name:   "dash_three_element",
		SVG:    doc(`<line x2="64" stroke-dasharray="5,3,8"/>`),
		Width:  100,
		Height: 100,
		Paths:  6,
		Length: 32,
	},
	{
		Name:   "dash_style",
		SVG:    doc(`<line x2="100" style="stroke-dasharray: 20 5"/>`),
		Width:  100,
		Height: 100,
		Paths:  4,
		Length: 80,
	},
	{
		// dash lengths are given in user units
		Name:   "dash_scaled",
		SVG:    doc(`<line x2="10" stroke-dasharray="1" transform="scale(10)"/>`),
		Width:  100,
		Height: 100,
		Paths:  5,
		Length: 50,
	},
	{
		Name:   "dash_around_corner",
		SVG:    doc(`<polyline points="0,0 10,0 10,10" stroke-dasharray="15 5"/>`),
		Width:  100,
		Height: 100,
		Paths:  2,
		Length: 15,
	},
	{
		Name:   "dash_all_zero",
		SVG:    doc(`<line x2="10" stroke-dasharray="0 0"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 10,
	},
}
