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

package testcases

var degenerateCases = []TestCase{
	line("origin", 0, 0, 0, 0),
	line("positive", 7, 3, 7, 3),
	line("negative", -12, -40, -12, -40),
}

var axisCases = []TestCase{
	line("right", 0, 0, 4, 0),
	line("left", 4, 0, 0, 0),
	line("up", 0, 0, 0, 5),
	line("down", 3, 5, 3, -5),
	line("long_horizontal", -200, 17, 200, 17),
}

var diagonalCases = []TestCase{
	line("first_quadrant", 0, 0, 5, 5),
	line("second_quadrant", 0, 0, -5, 5),
	line("third_quadrant", 2, 2, -6, -6),
	line("fourth_quadrant", -1, 1, 9, -9),
}

// shallowCases have |dx| > |dy|, so x is the dominant axis.
var shallowCases = []TestCase{
	line("half", 0, 0, 4, 2),
	line("third", 0, 0, 9, 3),
	line("sevenths", 0, 0, 7, 3),
	line("backwards", 10, 8, -3, 2),
	line("wide", -60, -5, 61, 12),
}

// steepCases have |dy| > |dx|, so y is the dominant axis.
var steepCases = []TestCase{
	line("double", 0, 0, 2, 4),
	line("thirds", 1, 1, 4, 10),
	line("downwards", 5, 20, 2, -11),
	line("tall", 0, -90, 17, 90),
}

// limitCases exercise the capacity policy.
var limitCases = []TestCase{
	line("max_coord", 50000, 50000, 50000, 49990),
	line("min_coord", -50000, -50000, -49990, -50000),
	line("max_points", 0, 0, 49999, 0),
	line("max_points_steep", -25000, -25000, -24000, 24999),
	rejected("too_many_points", -25000, 0, 25000, 0),
	rejected("too_many_points_diagonal", -30000, -30000, 30000, 30000),
	rejected("x1_out_of_range", 100000, 0, 0, 0),
	rejected("y1_out_of_range", 0, -50001, 0, 0),
	rejected("x2_out_of_range", 0, 0, -100000, 0),
	rejected("y2_out_of_range", 0, 0, 0, 50001),
}
