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
	"errors"
	"math"
	"strings"
	"testing"
)

func failingAllocator(msg string) Allocator {
	return func(n int) ([]Point, error) {
		return nil, errors.New(msg)
	}
}

func TestMakePoints(t *testing.T) {
	pts, err := MakePoints(7)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 7 {
		t.Errorf("got %d points, want 7", len(pts))
	}

	if _, err := MakePoints(-1); err == nil {
		t.Error("negative length accepted")
	}

	// the runtime refuses this length with a panic
	if _, err := MakePoints(math.MaxInt); err == nil {
		t.Error("impossible length accepted")
	}
}

func TestAllocationFallback(t *testing.T) {
	var used []string
	r := NewRasteriser()
	r.Allocators = []Allocator{
		func(n int) ([]Point, error) {
			used = append(used, "primary")
			return nil, errors.New("primary failed")
		},
		func(n int) ([]Point, error) {
			used = append(used, "fallback")
			return make([]Point, n), nil
		},
	}

	pts, err := r.Line(0, 0, 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 5 || pts[4] != (Point{X: 4, Y: 2}) {
		t.Errorf("unexpected result %v", pts)
	}
	if strings.Join(used, ",") != "primary,fallback" {
		t.Errorf("strategies used: %v", used)
	}
}

func TestAllocationFailure(t *testing.T) {
	r := NewRasteriser()
	r.Allocators = []Allocator{
		failingAllocator("malloc failed"),
		failingAllocator("calloc failed"),
	}

	pts, err := r.Line(0, 0, 10, 10)
	if pts != nil {
		t.Errorf("got %d points after allocation failure", len(pts))
	}
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("wrong error %v", err)
	}
	var allocErr *AllocationError
	if !errors.As(err, &allocErr) || allocErr.Points != 11 {
		t.Errorf("wrong error details %v", err)
	}
	for _, msg := range []string{"malloc failed", "calloc failed"} {
		if !strings.Contains(err.Error(), msg) {
			t.Errorf("error %q does not mention %q", err, msg)
		}
	}

	buf := make([]float32, 100)
	n, err := r.LineInto(0, 0, 10, 10, buf, 50)
	if n != 0 || !errors.Is(err, ErrAllocation) {
		t.Errorf("LineInto: %d, %v", n, err)
	}
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %g after allocation failure", i, v)
		}
	}
}

func TestEmptyLadder(t *testing.T) {
	r := NewRasteriser()
	r.Allocators = []Allocator{}
	if _, err := r.Line(1, 2, 3, 4); !errors.Is(err, ErrAllocation) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestShortAllocation(t *testing.T) {
	r := NewRasteriser()
	r.Allocators = []Allocator{
		func(n int) ([]Point, error) {
			return make([]Point, n-1), nil
		},
	}
	pts, err := r.Line(0, 0, 5, 0)
	if pts != nil || !errors.Is(err, ErrAllocation) {
		t.Errorf("short allocation: %d points, %v", len(pts), err)
	}
}

func TestDirtyAllocation(t *testing.T) {
	nan := float32(math.NaN())

	var backing []Point
	r := NewRasteriser()
	r.Allocators = []Allocator{
		func(n int) ([]Point, error) {
			backing = make([]Point, n+3)
			for i := range backing {
				backing[i] = Point{X: nan, Y: nan}
			}
			return backing, nil
		},
	}

	pts, err := r.Line(0, 0, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 4 || cap(pts) != 4 {
		t.Fatalf("len %d, cap %d, want 4 and 4", len(pts), cap(pts))
	}
	for i, p := range pts {
		if p != (Point{X: 0, Y: float32(i)}) {
			t.Errorf("point %d is %v", i, p)
		}
	}
}
