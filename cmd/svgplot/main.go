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

// Command svgplot converts an SVG drawing into a pen plotter program.
//
// Usage:
//
//	svgplot -in drawing.svg -out drawing.gcode [-format gcode|json|pdf|png]
//	        [-config svgplot.toml] [-width W -height H] [-tolerance T] [-debug]
//
// Settings are taken from the configuration file first, and can then be
// overridden on the command line.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"seehuhn.de/go/svgplot"
	"seehuhn.de/go/svgplot/coord"
	"seehuhn.de/go/svgplot/output"
	"seehuhn.de/go/svgplot/plot"
	"seehuhn.de/go/svgplot/svg"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("svgplot", flag.ContinueOnError)
	in := fs.String("in", "", "input SVG file (default stdin)")
	out := fs.String("out", "", "output file (default stdout)")
	configFile := fs.String("config", "", "TOML configuration file")
	debug := fs.Bool("debug", false, "log details about the conversion")
	format := fs.String("format", "", "output format: gcode, json, pdf or png")
	width := fs.Float64("width", cfg.Width, "width of the viewport")
	height := fs.Float64("height", cfg.Height, "height of the viewport")
	tolerance := fs.Float64("tolerance", cfg.Tolerance, "curve flattening tolerance")
	if err := fs.Parse(args); err == flag.ErrHelp {
		return nil
	} else if err != nil {
		return err
	}

	if *configFile != "" {
		if err := loadConfig(cfg, *configFile); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "tolerance":
			cfg.Tolerance = *tolerance
		}
	})

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	svg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	outFormat, err := cfg.outputFormat(*out)
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	d, err := svgplot.Convert(r, &svgplot.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Tolerance: cfg.Tolerance,
	})
	if err != nil {
		return err
	}
	svg.Logger().Debug("converted",
		"paths", len(d.Paths), "length", d.Length(), "bounds", d.Bounds())

	return write(d, cfg, outFormat, *out)
}

// write stores the drawing in the requested format.
func write(d *plot.Drawing, cfg *config, format, fname string) error {
	b := d.Bounds()
	size := coord.Viewport{
		Width:  max(cfg.Width, b.URx),
		Height: max(cfg.Height, b.URy),
	}

	if format == "pdf" {
		if fname == "" {
			return fmt.Errorf("PDF output needs an output file")
		}
		return output.WritePDF(fname, d.Paths, size, cfg.Preview.PenWidth)
	}

	var w io.Writer = os.Stdout
	if fname != "" {
		f, err := os.Create(fname)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	var err error
	switch format {
	case "gcode":
		err = output.WriteGCode(w, d.Paths, output.GCodeOptions{
			Scale:   cfg.GCode.Scale,
			Feed:    cfg.GCode.Feed,
			PenUp:   cfg.GCode.PenUp,
			PenDown: cfg.GCode.PenDown,
			Height:  size.Height,
		})
	case "json":
		err = output.WriteJSON(w, d.Paths)
	case "png":
		err = output.WritePNG(w, d.Paths, output.PNGOptions{
			Width:      size.Width,
			Height:     size.Height,
			Resolution: cfg.Preview.DPI / 96,
			PenWidth:   cfg.Preview.PenWidth,
		})
	}
	if err != nil {
		return err
	}
	if f, ok := w.(*os.File); ok && f != os.Stdout {
		return f.Close()
	}
	return nil
}
