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
	"context"
	"log/slog"
)

// Default values for the capacity policy.
const (
	// DefaultMaxCoord is the largest accepted coordinate magnitude.
	DefaultMaxCoord = 50000

	// DefaultMaxPoints is the largest number of points in one line.
	DefaultMaxPoints = 50000

	// MaxCoordLimit is the largest coordinate bound a Rasteriser accepts.
	// Up to this magnitude every integer is exactly representable as a
	// float32, and differences of coordinates cannot overflow an int.
	MaxCoordLimit = 1 << 24
)

// Rasteriser converts line segments into sequences of sample points.
//
// The zero value is usable and applies the default capacity policy.
// A Rasteriser keeps an intermediate buffer for [Rasteriser.LineInto] which
// grows as needed but never shrinks, so that repeated calls perform no
// allocations in steady state.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// MaxCoord bounds the magnitude of every input coordinate.
	// Values <= 0 select DefaultMaxCoord. Values above MaxCoordLimit are
	// reduced to MaxCoordLimit.
	MaxCoord int

	// MaxPoints bounds the number of points of a single line.
	// Values <= 0 select DefaultMaxPoints.
	MaxPoints int

	// Allocators is the allocation ladder. The strategies are tried in
	// order until one succeeds. Nil selects DefaultAllocators.
	Allocators []Allocator

	// Logger receives diagnostic records. Nil selects the package logger,
	// see [SetLogger].
	Logger *slog.Logger

	// Observer, if non-nil, is notified about every line.
	Observer Observer

	points []Point // intermediate buffer for LineInto
}

// NewRasteriser returns a Rasteriser with the default capacity policy.
func NewRasteriser() *Rasteriser {
	return &Rasteriser{
		MaxCoord:  DefaultMaxCoord,
		MaxPoints: DefaultMaxPoints,
	}
}

// Line returns the samples of the line from (x1, y1) to (x2, y2), using the
// default capacity policy. See [Rasteriser.Line].
func Line(x1, y1, x2, y2 int) ([]Point, error) {
	return NewRasteriser().Line(x1, y1, x2, y2)
}

// LineInto writes the samples of the line from (x1, y1) to (x2, y2) into
// buf, using the default capacity policy. See [Rasteriser.LineInto].
func LineInto(x1, y1, x2, y2 int, buf []float32, capacity int) (int, error) {
	return NewRasteriser().LineInto(x1, y1, x2, y2, buf, capacity)
}

// Line returns the samples of the line from (x1, y1) to (x2, y2).
//
// The result has max(|x2-x1|, |y2-y1|) + 1 elements. The first element is
// (x1, y1) and the last is (x2, y2) up to rounding. The caller owns the
// returned slice.
//
// On error the result is nil. The error matches one of ErrInvalidInput,
// ErrCapacityExceeded or ErrAllocation.
func (r *Rasteriser) Line(x1, y1, x2, y2 int) ([]Point, error) {
	pts, err := r.line(x1, y1, x2, y2)
	r.observe(len(pts), err)
	return pts, err
}

func (r *Rasteriser) line(x1, y1, x2, y2 int) ([]Point, error) {
	n, err := r.count(x1, y1, x2, y2)
	if err != nil {
		return nil, err
	}

	pts, err := r.allocate(n)
	if err != nil {
		return nil, err
	}
	pts = r.step(pts, x1, y1, x2, y2)
	return pts, nil
}

// LineInto writes the samples of the line from (x1, y1) to (x2, y2) into
// buf as interleaved x, y values, and returns the number of points written.
//
// At most capacity points are written, and never more than len(buf)/2.
// If the line has more points than fit, nothing is written and the error
// matches ErrBufferTooSmall. Other errors are the same as for
// [Rasteriser.Line]. The returned count is zero whenever the error is
// non-nil.
func (r *Rasteriser) LineInto(x1, y1, x2, y2 int, buf []float32, capacity int) (int, error) {
	n, err := r.lineInto(x1, y1, x2, y2, buf, capacity)
	r.observe(n, err)
	return n, err
}

func (r *Rasteriser) lineInto(x1, y1, x2, y2 int, buf []float32, capacity int) (int, error) {
	n, err := r.count(x1, y1, x2, y2)
	if err != nil {
		return 0, err
	}

	avail := max(min(capacity, len(buf)/2), 0)
	if n > avail {
		return 0, &BufferError{Points: n, Capacity: avail}
	}

	if cap(r.points) < n {
		pts, err := r.allocate(n)
		if err != nil {
			return 0, err
		}
		r.points = pts
	}
	pts := r.step(r.points[:n], x1, y1, x2, y2)

	out := buf[:2*len(pts)]
	for i, p := range pts {
		out[2*i] = p.X
		out[2*i+1] = p.Y
	}
	return len(pts), nil
}

// count validates the input against the capacity policy and returns the
// number of points of the line.
func (r *Rasteriser) count(x1, y1, x2, y2 int) (int, error) {
	maxCoord := r.MaxCoord
	if maxCoord <= 0 {
		maxCoord = DefaultMaxCoord
	}
	maxCoord = min(maxCoord, MaxCoordLimit)
	maxPoints := r.MaxPoints
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}

	log := r.logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)
	if debug {
		log.Debug("line requested",
			slog.Int("x1", x1), slog.Int("y1", y1), slog.Int("x2", x2), slog.Int("y2", y2))
	}

	coords := [4]struct {
		name  string
		value int
	}{{"x1", x1}, {"y1", y1}, {"x2", x2}, {"y2", y2}}
	for _, c := range coords {
		if c.value > maxCoord || c.value < -maxCoord {
			return 0, &RangeError{Coord: c.name, Value: c.value, Limit: maxCoord}
		}
	}

	iterations := max(abs(x2-x1), abs(y2-y1))
	n := iterations + 1
	if debug {
		log.Debug("point count", slog.Int("iterations", iterations), slog.Int("points", n))
	}

	if n > maxPoints || n < 1 || iterations < 0 {
		return 0, &CapacityError{Points: n, Limit: maxPoints}
	}
	return n, nil
}

// step fills pts with the samples of the line. The length of pts must be
// the point count returned by count. The return value holds exactly the
// elements written.
func (r *Rasteriser) step(pts []Point, x1, y1, x2, y2 int) []Point {
	if len(pts) == 0 {
		return pts[:0]
	}

	xi, yi := float32(x1), float32(y1)
	pts[0] = Point{X: xi, Y: yi}
	count := 1

	// iterations is zero for a zero-length line
	if iterations := len(pts) - 1; iterations > 0 {
		xInc := float32(x2-x1) / float32(iterations)
		yInc := float32(y2-y1) / float32(iterations)
		for count < len(pts) {
			xi += xInc
			yi += yInc
			pts[count] = Point{X: xi, Y: yi}
			count++
		}
	}

	if log := r.logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("line done",
			slog.Int("points", count),
			slog.Any("first", pts[0]),
			slog.Any("last", pts[count-1]))
	}
	return pts[:count]
}

func (r *Rasteriser) observe(n int, err error) {
	if r.Observer != nil {
		r.Observer.ObserveLine(n, err)
	}
}

func (r *Rasteriser) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return Logger()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
