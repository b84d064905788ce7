// seehuhn.de/go/dda - incremental line rasterisation
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

// Command dda prints the samples of a line segment as a table.
//
// The endpoints are read from the command line, or from standard input if
// no arguments are given:
//
//	dda [flags] [x1 y1 x2 y2]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"golang.org/x/term"

	"seehuhn.de/go/dda"
)

func main() {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, interactive)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dda:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, interactive bool) error {
	flags := flag.NewFlagSet("dda", flag.ContinueOnError)
	flags.SetOutput(stderr)
	maxCoord := flags.Int("max-coord", dda.DefaultMaxCoord, "largest accepted coordinate magnitude")
	maxPoints := flags.Int("max-points", dda.DefaultMaxPoints, "largest number of points per line")
	pngPath := flags.String("png", "", "also plot the samples into this PNG file")
	verbose := flags.Bool("v", false, "log diagnostics to stderr")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *verbose {
		dda.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer dda.SetLogger(nil)
	}

	var x1, y1, x2, y2 int
	switch flags.NArg() {
	case 4:
		c := make([]int, 4)
		for i := range c {
			v, err := strconv.Atoi(flags.Arg(i))
			if err != nil {
				return err
			}
			c[i] = v
		}
		x1, y1, x2, y2 = c[0], c[1], c[2], c[3]
	case 0:
		if interactive {
			fmt.Fprintln(stdout, "DDA Line Drawing Algorithm")
			fmt.Fprintln(stdout, "==========================")
			fmt.Fprint(stdout, "Enter starting point (x1, y1): ")
		}
		if _, err := fmt.Fscan(stdin, &x1, &y1); err != nil {
			return fmt.Errorf("reading starting point: %w", err)
		}
		if interactive {
			fmt.Fprint(stdout, "Enter ending point (x2, y2): ")
		}
		if _, err := fmt.Fscan(stdin, &x2, &y2); err != nil {
			return fmt.Errorf("reading ending point: %w", err)
		}
	default:
		return errors.New("syntax: dda [flags] [x1 y1 x2 y2]")
	}

	slope := dda.Slope(x1, y1, x2, y2)
	fmt.Fprintf(stdout, "\nSlope: %.6f\n", slope)
	if dda.IsVertical(slope) {
		fmt.Fprintln(stdout, "(Vertical line - infinite slope)")
	}

	r := dda.NewRasteriser()
	r.MaxCoord = *maxCoord
	r.MaxPoints = *maxPoints
	pts, lineErr := r.Line(x1, y1, x2, y2)

	printTable(stdout, x1, y1, x2, y2, pts)

	if lineErr != nil {
		// The table is empty in this case; the line is not fatal.
		fmt.Fprintln(stderr, "dda:", lineErr)
		return nil
	}

	if *pngPath != "" {
		return writePNG(*pngPath, pts)
	}
	return nil
}

func printTable(w io.Writer, x1, y1, x2, y2 int, pts []dda.Point) {
	fmt.Fprintf(w, "\nLine from (%d, %d) to (%d, %d)\n", x1, y1, x2, y2)
	fmt.Fprintln(w, "================================")
	fmt.Fprintln(w, "| Step |    Xi    |    Yi    |")
	fmt.Fprintln(w, "|------|----------|----------|")
	for i, p := range pts {
		fmt.Fprintf(w, "| %4d | %8.2f | %8.2f |\n", i, p.X, p.Y)
	}
	fmt.Fprintln(w, "================================")
}

func writePNG(fname string, pts []dda.Point) (err error) {
	bbox := dda.Bounds(pts)
	rect := image.Rect(
		int(math.Floor(bbox.LLx)), int(math.Floor(bbox.LLy)),
		int(math.Ceil(bbox.URx))+1, int(math.Ceil(bbox.URy))+1)
	img := image.NewAlpha(rect)
	dda.Plot(img, pts)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
