// Command export writes the converted polylines of all test cases to JSON,
// for inspection with external tools.
// Run from the svgplot module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/svgplot"
	"seehuhn.de/go/svgplot/output"
	"seehuhn.de/go/svgplot/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string         `json:"name"`
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	SVG    string         `json:"svg"`
	Paths  [][][2]float64 `json:"paths"`
	Length float64        `json:"length"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	opt := &svgplot.Options{Width: tc.Width, Height: tc.Height}
	d, err := svgplot.Convert(strings.NewReader(tc.SVG), opt)
	if err != nil {
		return jsonTestCase{}, err
	}
	return jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		SVG:    tc.SVG,
		Paths:  output.ToPolylines(d.Paths).Paths,
		Length: d.Length(),
	}, nil
}
