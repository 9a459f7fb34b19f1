package testcases

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"curve":     curveCases,
	"dash":      dashCases,
	"document":  documentCases,
	"pattern":   patternCases,
	"precision": precisionCases,
	"shape":     shapeCases,
	"subpath":   subpathCases,
	"transform": transformCases,
	"viewport":  viewportCases,
}
