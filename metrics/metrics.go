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

// Package metrics exports line rasterisation statistics to Prometheus.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"seehuhn.de/go/dda"
)

// Outcome labels of the dda_lines_total counter.
const (
	OutcomeOK               = "ok"
	OutcomeInvalidInput     = "invalid_input"
	OutcomeCapacityExceeded = "capacity_exceeded"
	OutcomeAllocation       = "allocation_failure"
	OutcomeBufferTooSmall   = "buffer_too_small"
	OutcomeOther            = "other"
)

// Collector counts rasterised lines by outcome and records the number of
// points of successful lines. It implements [dda.Observer].
type Collector struct {
	lines  *prometheus.CounterVec
	points prometheus.Histogram
}

var _ dda.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg.
// If reg is nil, the metrics are not registered.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dda_lines_total",
			Help: "Number of lines rasterised, by outcome.",
		}, []string{"outcome"}),
		points: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dda_line_points",
			Help:    "Number of points of successfully rasterised lines.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9),
		}),
	}
	if reg != nil {
		reg.MustRegister(c.lines, c.points)
	}
	return c
}

// ObserveLine implements [dda.Observer].
func (c *Collector) ObserveLine(points int, err error) {
	outcome := Outcome(err)
	c.lines.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		c.points.Observe(float64(points))
	}
}

// Outcome returns the counter label for an error returned by the
// rasteriser.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, dda.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, dda.ErrCapacityExceeded):
		return OutcomeCapacityExceeded
	case errors.Is(err, dda.ErrAllocation):
		return OutcomeAllocation
	case errors.Is(err, dda.ErrBufferTooSmall):
		return OutcomeBufferTooSmall
	default:
		return OutcomeOther
	}
}
