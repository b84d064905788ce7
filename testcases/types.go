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

// Package testcases contains line segments shared by the tests and the
// tools of the dda module.
package testcases

// TestCase describes a single line.
type TestCase struct {
	Name           string // lowercase a-z, 0-9 and _ only
	X1, Y1, X2, Y2 int    // the endpoints

	// Points is the expected number of samples for the default capacity
	// policy. Zero means the line must be rejected.
	Points int
}

// Valid reports whether the line is accepted by the default capacity
// policy.
func (tc TestCase) Valid() bool {
	return tc.Points > 0
}

// line is a helper to build a test case which is accepted by the default
// capacity policy.
func line(name string, x1, y1, x2, y2 int) TestCase {
	return TestCase{
		Name: name,
		X1:   x1, Y1: y1, X2: x2, Y2: y2,
		Points: max(abs(x2-x1), abs(y2-y1)) + 1,
	}
}

// rejected is a helper to build a test case which must be rejected.
func rejected(name string, x1, y1, x2, y2 int) TestCase {
	return TestCase{Name: name, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
