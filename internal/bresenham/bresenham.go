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

// Package bresenham implements the integer-only line algorithm.
// It serves as a reference for the samples computed by package dda.
package bresenham

import "image"

// Line returns the pixels on the line from (x0, y0) to (x1, y1).
// The result always includes both endpoints and has
// max(|x1-x0|, |y1-y0|) + 1 elements.
func Line(x0, y0, x1, y1 int) []image.Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0

	// the loop count is capped to rule out endless loops
	pts := make([]image.Point, 0, max(dx, dy)+1)
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
