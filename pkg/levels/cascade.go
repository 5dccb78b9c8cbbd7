/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package levels

import (
	"log/slog"
	"sort"

	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/defaults"
)

// CascadeLevels derives the levels evidenced by a nuclide's gamma
// transitions: every transition's start level, plus every level reachable by
// following transitions downward from it. A level that emits or receives a
// gamma is a measured level regardless of what any parent reported.
//
// Traversal is guarded against cycles in malformed transition data; a
// repeated level ends the descent.
func CascadeLevels(gammas []dataset.GammaRow) []float64 {
	if len(gammas) == 0 {
		return nil
	}

	// start level -> end levels, exact literals from one payload.
	next := make(map[float64][]float64)
	for _, g := range gammas {
		next[g.StartLevel] = append(next[g.StartLevel], g.EndLevel)
	}

	seen := make(map[float64]bool)
	var walk func(lev float64, depth int)
	walk = func(lev float64, depth int) {
		if seen[lev] {
			return
		}
		if depth > defaults.MaxChainDepth {
			slog.Warn("gamma cascade exceeds depth bound, stopping descent",
				"level", lev, "depth", depth)
			return
		}
		seen[lev] = true
		for _, end := range next[lev] {
			walk(end, depth+1)
		}
	}
	for _, g := range gammas {
		walk(g.StartLevel, 0)
	}

	out := make([]float64, 0, len(seen))
	for lev := range seen {
		out = append(out, lev)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}
