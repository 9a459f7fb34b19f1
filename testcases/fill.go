package testcases

// stripes is a 10x10 pattern tile with one horizontal line of length 8.
const stripes = `<defs>
	<pattern id="stripes" patternUnits="userSpaceOnUse" width="10" height="10">
		<line x1="1" y1="5" x2="9" y2="5"/>
	</pattern>
</defs>`

var patternCases = []TestCase{
	{
		Name:   "pattern_stripes",
		SVG:    doc(stripes + `<rect width="30" height="20" fill="url(#stripes)" stroke="none"/>`),
		Width:  100,
		Height: 100,
		Paths:  6,
		Length: 48,
	},
	{
		Name:   "pattern_with_outline",
		SVG:    doc(stripes + `<rect width="20" height="20" fill="url(#stripes)"/>`),
		Width:  100,
		Height: 100,
		Paths:  5,
		Length: 32 + 80,
	},
	{
		Name: "pattern_bbox_units",
		SVG: doc(`<defs><pattern id="p" width="0.5" height="50%">
			<line x1="1" y1="5" x2="9" y2="5"/>
		</pattern></defs>
		<rect x="40" y="40" width="20" height="20" fill="url(#p)" stroke="none"/>`),
		Width:  100,
		Height: 100,
		Paths:  4,
		Length: 32,
	},
	{
		Name: "pattern_transformed_shape",
		SVG: doc(stripes + `<g transform="translate(50,50)">
			<rect width="20" height="20" fill="url(#stripes)" stroke="none"/>
		</g>`),
		Width:  100,
		Height: 100,
		Paths:  4,
		Length: 32,
	},
	{
		Name: "pattern_viewbox",
		SVG: doc(`<defs><pattern id="v" patternUnits="userSpaceOnUse" width="10" height="10" viewBox="0 0 1 1">
			<line x1="0.1" y1="0.5" x2="0.9" y2="0.5"/>
		</pattern></defs>
		<rect width="20" height="20" fill="url(#v)" stroke="none"/>`),
		Width:  100,
		Height: 100,
		Paths:  4,
		Length: 32,
	},
	{
		// two dashes per tile
		Name: "pattern_dashed_content",
		SVG: doc(`<defs><pattern id="d" patternUnits="userSpaceOnUse" width="10" height="10">
			<line x1="1" y1="5" x2="9" y2="5" stroke-dasharray="2"/>
		</pattern></defs>
		<rect width="20" height="20" fill="url(#d)" stroke="none"/>`),
		Width:  100,
		Height: 100,
		Paths:  8,
		Length: 16,
	},
	{
		Name: "pattern_href",
		SVG: doc(stripes + `<defs><pattern id="derived" xlink:href="#stripes"/></defs>
		<rect width="20" height="20" fill="url(#derived)" stroke="none"/>
		<rect x="50" width="20" height="20" fill="url(#stripes)" stroke="none"/>`),
		Width:  100,
		Height: 100,
		Paths:  8,
		Length: 64,
	},
	{
		Name: "pattern_empty_tile",
		SVG: doc(`<defs><pattern id="e" patternUnits="userSpaceOnUse" width="0" height="10">
			<line x1="1" y1="5" x2="9" y2="5"/>
		</pattern></defs>
		<rect width="20" height="20" fill="url(#e)"/>`),
		Width:  100,
		Height: 100,
		Paths:  1,
		Length: 80,
	},
}
