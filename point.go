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
	"unsafe"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a single sample along a line.
type Point struct {
	X, Y float32
}

// PointSize returns the size of a Point in bytes.
// Hosts use this to size flat buffers for [LineInto].
func PointSize() int {
	return int(unsafe.Sizeof(Point{}))
}

// Vec2 converts p to a geom vector.
func (p Point) Vec2() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Bounds returns the smallest rectangle containing all points.
// The zero rectangle is returned for an empty slice.
func Bounds(pts []Point) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: float64(pts[0].X), LLy: float64(pts[0].Y),
		URx: float64(pts[0].X), URy: float64(pts[0].Y),
	}
	for _, p := range pts[1:] {
		x, y := float64(p.X), float64(p.Y)
		b.LLx = min(b.LLx, x)
		b.LLy = min(b.LLy, y)
		b.URx = max(b.URx, x)
		b.URy = max(b.URy, y)
	}
	return b
}

// Polyline returns a path which visits the points in order.
// The path is empty if pts is empty.
func Polyline(pts []Point) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2 // reused for each yield
		for i, p := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			buf[0] = p.Vec2()
			if !yield(cmd, buf[:]) {
				return
			}
		}
	}
}
