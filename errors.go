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
	"strconv"
)

var (
	// ErrInvalidInput is matched by errors for out-of-range coordinates.
	ErrInvalidInput = errors.New("coordinate out of range")

	// ErrCapacityExceeded is matched by errors for lines with too many points.
	ErrCapacityExceeded = errors.New("too many points")

	// ErrAllocation is matched by errors for failed point allocations.
	ErrAllocation = errors.New("cannot allocate points")

	// ErrBufferTooSmall is matched by errors for undersized output buffers.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// RangeError indicates that a coordinate exceeds the configured bound.
type RangeError struct {
	Coord string // "x1", "y1", "x2" or "y2"
	Value int
	Limit int
}

func (err *RangeError) Error() string {
	return err.Coord + "=" + strconv.Itoa(err.Value) +
		": coordinate out of range (limit " + strconv.Itoa(err.Limit) + ")"
}

func (err *RangeError) Unwrap() error {
	return ErrInvalidInput
}

// CapacityError indicates that a line would have an invalid number of
// points.
type CapacityError struct {
	Points int
	Limit  int
}

func (err *CapacityError) Error() string {
	return "line needs " + strconv.Itoa(err.Points) +
		" points: too many points (limit " + strconv.Itoa(err.Limit) + ")"
}

func (err *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// AllocationError indicates that no allocation strategy could provide
// storage for the points of a line.
type AllocationError struct {
	Points int
	Err    error // the failures of the individual strategies
}

func (err *AllocationError) Error() string {
	msg := "cannot allocate " + strconv.Itoa(err.Points) + " points"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}

func (err *AllocationError) Unwrap() error {
	return err.Err
}

// BufferError indicates that an output buffer cannot hold all points of a
// line.
type BufferError struct {
	Points   int
	Capacity int
}

func (err *BufferError) Error() string {
	return "line needs " + strconv.Itoa(err.Points) +
		" points: buffer too small (capacity " + strconv.Itoa(err.Capacity) + ")"
}

func (err *BufferError) Unwrap() error {
	return ErrBufferTooSmall
}
