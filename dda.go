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

// Package dda samples straight line segments on the integer lattice using
// the Digital Differential Analyzer.
//
// A line from (x1, y1) to (x2, y2) is stepped along its dominant axis, one
// unit per step, while the other coordinate advances by a constant
// fractional increment. The result contains max(|x2-x1|, |y2-y1|) + 1
// points, starting exactly at (x1, y1) and ending at (x2, y2) up to float32
// rounding.
//
// Inputs are checked against a capacity policy before any memory is
// allocated: coordinates must not exceed [Rasteriser.MaxCoord] in magnitude
// and the number of points must not exceed [Rasteriser.MaxPoints].
package dda

//go:generate go run ./testcases/export
