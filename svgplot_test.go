package svgplot

import (
	"errors"
	"maps"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/svgplot/svg"
	"seehuhn.de/go/svgplot/testcases"
)

func TestExamples(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				opt := &Options{Width: tc.Width, Height: tc.Height}
				d, err := Convert(strings.NewReader(tc.SVG), opt)
				if err != nil {
					t.Fatal(err)
				}
				if len(d.Paths) != tc.Paths {
					t.Errorf("got %d polylines, want %d", len(d.Paths), tc.Paths)
				}
				if tc.Length > 0 {
					got := d.Length()
					if math.Abs(got-tc.Length) > 0.01*tc.Length {
						t.Errorf("pen-down length %g, want %g", got, tc.Length)
					}
				}
				for _, p := range d.Paths {
					if len(p) < 2 {
						t.Errorf("polyline with %d points", len(p))
					}
				}
			})
		}
	}
}

func TestConvertDefaults(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg" width="50%" height="25%"><line x2="100%" y2="100%"/></svg>`
	d, err := Convert(strings.NewReader(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	b := d.Bounds()
	if b.URx != 50 || b.URy != 25 {
		t.Errorf("bounds %v, want 50x25", b)
	}
}

func TestConvertError(t *testing.T) {
	_, err := Convert(strings.NewReader("<html/>"), nil)
	if !errors.Is(err, svg.ErrNoSVG) {
		t.Errorf("got %v, want ErrNoSVG", err)
	}
}
