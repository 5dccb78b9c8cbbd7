/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package livechart

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusOK     = "ok"
	statusNoData = "no_data"
	statusError  = "error"
)

var (
	requestResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recurlib_livechart_requests_total",
			Help: "Live chart service queries by outcome",
		},
		[]string{"status"},
	)

	requestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recurlib_livechart_request_duration_seconds",
			Help:    "Live chart service round-trip time",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
)
