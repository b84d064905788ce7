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

// VerticalSlope is returned by [Slope] in place of an infinite slope.
const VerticalSlope float32 = 999999

// verticalThreshold separates the sentinel from ordinary slopes.
const verticalThreshold float32 = 999998

// Slope returns dy/dx for the line from (x1, y1) to (x2, y2).
//
// For vertical lines the result is VerticalSlope, with the sign of dy.
// A zero-length line counts as vertical with positive sign.
func Slope(x1, y1, x2, y2 int) float32 {
	dx := float32(x2 - x1)
	dy := float32(y2 - y1)

	if dx == 0 {
		if dy >= 0 {
			return VerticalSlope
		}
		return -VerticalSlope
	}
	return dy / dx
}

// IsVertical reports whether s is the vertical sentinel returned by [Slope].
func IsVertical(s float32) bool {
	return s > verticalThreshold || s < -verticalThreshold
}
