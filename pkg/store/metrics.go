/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultMemory = "memory"
	resultDisk   = "disk"
	resultRemote = "remote"
)

var (
	cacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recurlib_dataset_cache_total",
			Help: "Dataset lookups by the cache layer that answered them",
		},
		[]string{"layer"},
	)

	fetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recurlib_dataset_fetch_duration_seconds",
			Help:    "Time taken to fetch one nuclide dataset from the remote source",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)
)
