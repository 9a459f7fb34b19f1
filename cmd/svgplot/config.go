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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// config holds the settings from the configuration file and the command
// line.
type config struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Tolerance float64 `toml:"tolerance"`
	Format    string  `toml:"format"`

	GCode struct {
		Scale   float64 `toml:"scale"`
		Feed    float64 `toml:"feed"`
		PenUp   string  `toml:"pen_up"`
		PenDown string  `toml:"pen_down"`
	} `toml:"gcode"`

	Preview struct {
		PenWidth float64 `toml:"pen_width"`
		DPI      float64 `toml:"dpi"`
	} `toml:"preview"`
}

func defaultConfig() *config {
	cfg := &config{
		Width:     100,
		Height:    100,
		Tolerance: 0.1,
	}
	cfg.GCode.Scale = 25.4 / 96 // CSS pixels to mm
	cfg.GCode.Feed = 1500
	cfg.Preview.PenWidth = 0.5
	cfg.Preview.DPI = 96
	return cfg
}

// loadConfig reads a TOML configuration file into cfg.  Keys which are
// missing from the file keep their previous values.
func loadConfig(cfg *config, fname string) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("%s:%d:%d: %w", fname, row, col, err)
		}
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

var formats = []string{"gcode", "json", "pdf", "png"}

// outputFormat returns the output format, from the configuration or from
// the extension of the output file name.
func (cfg *config) outputFormat(out string) (string, error) {
	format := strings.ToLower(cfg.Format)
	if format == "" {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".gcode", ".nc", ".ngc", "":
			format = "gcode"
		default:
			format = strings.ToLower(filepath.Ext(out)[1:])
		}
	}
	for _, f := range formats {
		if f == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q", format)
}
