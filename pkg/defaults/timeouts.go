/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package defaults

import "time"

// Remote fetch settings for the Live Chart dataset client.
const (
	// FetchTimeout bounds a single remote dataset fetch. The resolver issues
	// one fetch at a time, so this also bounds per-node blocking.
	FetchTimeout = 30 * time.Second

	// FetchRateLimit is the sustained request rate against the remote
	// nuclear-data service, requests per second.
	FetchRateLimit = 4.0

	// FetchRateBurst is the token-bucket burst for remote fetches.
	FetchRateBurst = 2
)

// Resolution settings.
const (
	// ResolveTimeout bounds a full decay-chain resolution run, including all
	// remote fetches for nuclides missing from the cache.
	ResolveTimeout = 10 * time.Minute

	// MaxChainDepth guards the traversal against malformed cyclic data. No
	// physical decay chain approaches this.
	MaxChainDepth = 256
)

// Cache settings.
const (
	// CacheBusyTimeout is the SQLite busy timeout for the dataset cache.
	CacheBusyTimeout = 5 * time.Second
)

// Reconciliation defaults.
const (
	// LevelTolerance is the default energy-level deduplication tolerance in
	// keV. Two pooled level observations closer than this collapse into one
	// representative value unless both are independently corroborated.
	LevelTolerance = 0.01
)
