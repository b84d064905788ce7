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

// Command genpdf draws every test case into a PDF file, for visual
// inspection of the sample positions.
// Run from the dda module root directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/dda"
	"seehuhn.de/go/dda/testcases"
)

const (
	margin   = 1.0   // in pixels
	pageSize = 400.0 // maximal page extent in PDF points
	maxScale = 32.0  // maximal size of a pixel in PDF points
)

func main() {
	outDir := flag.String("o", "testdata/plots", "output directory")
	maxPoints := flag.Int("max-points", 1000, "skip lines with more points than this")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	r := dda.NewRasteriser()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if !tc.Valid() || tc.Points > *maxPoints {
				continue
			}
			name := category + "_" + tc.Name

			pts, err := r.Line(tc.X1, tc.Y1, tc.X2, tc.Y2)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pdfPath := filepath.Join(*outDir, name+".pdf")
			if err := generatePDF(tc, pts, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pts []dda.Point, pdfPath string) error {
	bbox := dda.Bounds(pts)
	bbox.LLx -= margin
	bbox.LLy -= margin
	bbox.URx += margin
	bbox.URy += margin

	scale := min(maxScale, pageSize/max(bbox.URx-bbox.LLx, bbox.URy-bbox.LLy))

	paper := &pdf.Rectangle{
		URx: scale * (bbox.URx - bbox.LLx),
		URy: scale * (bbox.URy - bbox.LLy),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// Samples use a top-left origin, PDF uses bottom-left.
	// Flip the y-axis and map one pixel to scale points.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, -scale * bbox.LLx, scale * bbox.URy})

	// the pixels selected by the samples
	page.SetFillColor(color.DeviceGray(0.8))
	for _, p := range pts {
		q := p.Pixel()
		page.Rectangle(float64(q.X)-0.5, float64(q.Y)-0.5, 1, 1)
	}
	page.Fill()

	// the exact segment
	page.SetLineWidth(1 / scale)
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.MoveTo(float64(tc.X1), float64(tc.Y1))
	page.LineTo(float64(tc.X2), float64(tc.Y2))
	page.Stroke()

	// the samples, joined in order
	page.SetStrokeColor(color.DeviceGray(0))
	for cmd, v := range dda.Polyline(pts) {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(v[0].X, v[0].Y)
		case path.CmdLineTo:
			page.LineTo(v[0].X, v[0].Y)
		}
	}
	page.Stroke()

	page.SetFillColor(color.DeviceGray(0))
	for _, p := range pts {
		v := p.Vec2()
		page.Circle(v.X, v.Y, 0.1)
	}
	page.Fill()

	return page.Close()
}
