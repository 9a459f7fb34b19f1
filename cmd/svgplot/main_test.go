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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="50" height="50">
	<rect x="10" y="10" width="20" height="20"/>
</svg>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	if err := os.WriteFile(fname, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestRunGCode(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.svg", testSVG)
	out := filepath.Join(dir, "out.gcode")

	if err := run([]string{"-in", in, "-out", out}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "\nG1 X"); n != 4 {
		t.Errorf("got %d drawing moves, want 4:\n%s", n, data)
	}
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.svg", testSVG)
	cfgFile := writeFile(t, dir, "svgplot.toml", `
format = "gcode"
tolerance = 0.05

[gcode]
scale = 1.0
pen_up = "M5"
pen_down = "M3"
`)
	out := filepath.Join(dir, "out.txt")

	if err := run([]string{"-config", cfgFile, "-in", in, "-out", out}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("\nM3\n")) || bytes.Contains(data, []byte("Z0")) {
		t.Errorf("pen commands from the configuration not used:\n%s", data)
	}
	// scale 1 and y flipped against the viewport height 100
	if !bytes.Contains(data, []byte("G0 X10.000 Y90.000\n")) {
		t.Errorf("unexpected coordinates:\n%s", data)
	}

	// command line flags override the configuration file
	out = filepath.Join(dir, "out.json")
	if err := run([]string{"-config", cfgFile, "-format", "json", "-in", in, "-out", out}); err != nil {
		t.Fatal(err)
	}
	data, err = os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var res struct {
		Paths [][][2]float64 `json:"paths"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(res.Paths) != 1 || len(res.Paths[0]) != 5 {
		t.Errorf("got %v", res.Paths)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()

	bad := writeFile(t, dir, "bad.toml", "colour = \"red\"\n")
	if err := loadConfig(cfg, bad); err == nil {
		t.Error("unknown key accepted")
	}

	syntax := writeFile(t, dir, "syntax.toml", "width = \n")
	if err := loadConfig(cfg, syntax); err == nil {
		t.Error("syntax error accepted")
	}

	if err := loadConfig(cfg, filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestOutputFormat(t *testing.T) {
	cases := []struct {
		format, out string
		want        string
		isErr       bool
	}{
		{"", "x.gcode", "gcode", false},
		{"", "x.PNG", "png", false},
		{"", "", "gcode", false},
		{"JSON", "x.gcode", "json", false},
		{"", "x.svg", "", true},
		{"dxf", "x.gcode", "", true},
	}
	for _, c := range cases {
		cfg := &config{Format: c.format}
		got, err := cfg.outputFormat(c.out)
		if (err != nil) != c.isErr || got != c.want {
			t.Errorf("%q, %q: got %q, %v", c.format, c.out, got, err)
		}
	}
}
