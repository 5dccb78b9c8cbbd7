/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recurlib_resolve_duration_seconds",
			Help:    "Time taken to resolve one full progeny graph",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	nuclidesResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recurlib_nuclides_resolved_total",
			Help: "Total nuclide records produced by resolution runs",
		},
	)

	unresolvedLeaves = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recurlib_unresolved_leaves_total",
			Help: "Nuclides recorded without an obtainable dataset",
		},
	)
)
