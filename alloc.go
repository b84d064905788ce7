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
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// An Allocator obtains storage for n points.
//
// The returned slice must have at least n elements. Its contents need not
// be zero; the rasteriser clears it before use.
type Allocator func(n int) ([]Point, error)

// DefaultAllocators is the allocation ladder used by rasterisers whose
// Allocators field is nil.
var DefaultAllocators = []Allocator{MakePoints}

// MakePoints allocates a new zeroed slice of n points.
// A length which the runtime refuses to allocate is reported as an error.
func MakePoints(n int) (pts []Point, err error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid length %d", n)
	}
	defer func() {
		if r := recover(); r != nil {
			rErr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			pts, err = nil, rErr
		}
	}()
	return make([]Point, n), nil
}

// allocate tries each allocator of the ladder in turn and returns cleared
// storage of exactly n points.
func (r *Rasteriser) allocate(n int) ([]Point, error) {
	ladder := r.Allocators
	if ladder == nil {
		ladder = DefaultAllocators
	}

	log := r.logger()
	var errs []error
	for i, alloc := range ladder {
		pts, err := alloc(n)
		if err == nil && len(pts) < n {
			err = fmt.Errorf("short allocation: got %d of %d points", len(pts), n)
		}
		if err != nil {
			log.Warn("point allocation failed",
				slog.Int("strategy", i), slog.Int("points", n), slog.Any("error", err))
			errs = append(errs, err)
			continue
		}

		pts = pts[:n:n]
		clear(pts)
		if log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("points allocated",
				slog.Int("strategy", i), slog.Int("points", n), slog.Int("bytes", n*PointSize()))
		}
		return pts, nil
	}

	return nil, &AllocationError{Points: n, Err: errors.Join(errs...)}
}
