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

package dda

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Pixel returns the pixel containing the sample p, rounding each
// coordinate to the nearest integer.
func (p Point) Pixel() image.Point {
	return image.Point{
		X: int(math.Floor(float64(p.X) + 0.5)),
		Y: int(math.Floor(float64(p.Y) + 0.5)),
	}
}

// Plot marks the pixel of every sample in dst as fully opaque.
// Samples outside the bounds of dst are ignored.
func Plot(dst *image.Alpha, pts []Point) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}

	r := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, p := range pts {
		q := p.Pixel()
		if !q.In(b) {
			continue
		}
		x := float32(q.X - b.Min.X)
		y := float32(q.Y - b.Min.Y)
		r.MoveTo(x, y)
		r.LineTo(x+1, y)
		r.LineTo(x+1, y+1)
		r.LineTo(x, y+1)
		r.ClosePath()
	}
	r.Draw(dst, b, image.NewUniform(color.Alpha{A: 255}), image.Point{})
}
