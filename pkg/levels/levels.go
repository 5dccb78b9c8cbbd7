/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package levels

import (
	"math"
	"sort"

	"github.com/recurlib/recurlib/pkg/defaults"
	"github.com/recurlib/recurlib/pkg/graph"
)

// Config carries the reconciliation settings. Passed explicitly so runs
// with different tolerances are independently testable.
type Config struct {
	// Tolerance is the maximum absolute difference, in keV, between two
	// pooled energies still considered the same level.
	Tolerance float64
}

func (c Config) tolerance() float64 {
	if c.Tolerance > 0 {
		return c.Tolerance
	}
	return defaults.LevelTolerance
}

// pooled is one numeric energy observation with the source that reported it.
type pooled struct {
	value  float64
	source graph.Source
}

// Reconcile merges every source observation of a record into one canonical
// level list: pooled, sorted descending, near-duplicates within tolerance
// collapsed to a single representative. The result is stored on the record
// and returned.
//
// Representative choice inside a merge cluster: the value corroborated by
// the most distinct sources wins; with no winner the cluster midpoint is
// used. Two distinct values each corroborated by at least two sources are
// both kept (measured levels can legitimately sit closer than tolerance).
// Zero is the ground state and is always retained when any source reports
// it.
func Reconcile(rec *graph.Record, cfg Config) []float64 {
	tol := cfg.tolerance()

	var pool []pooled
	for _, src := range rec.SourceOrder() {
		obs := rec.Sources[src]
		for _, e := range obs.Energies {
			if !e.Valid {
				continue
			}
			pool = append(pool, pooled{value: e.Value, source: src})
		}
	}
	if len(pool) == 0 {
		rec.FlattenedLevels = nil
		return nil
	}

	sort.Slice(pool, func(i, j int) bool { return pool[i].value > pool[j].value })

	var out []float64
	for start := 0; start < len(pool); {
		end := start + 1
		for end < len(pool) && pool[end-1].value-pool[end].value < tol {
			end++
		}
		out = append(out, mergeCluster(pool[start:end])...)
		start = end
	}

	rec.FlattenedLevels = out
	return out
}

// mergeCluster collapses one run of within-tolerance observations into its
// representative value(s), descending.
func mergeCluster(cluster []pooled) []float64 {
	// Distinct literals with the set of sources corroborating each,
	// preserving descending order.
	var values []float64
	sources := make(map[float64]map[graph.Source]bool)
	zero := false
	for _, p := range cluster {
		if p.value == 0 {
			zero = true
		}
		if _, ok := sources[p.value]; !ok {
			values = append(values, p.value)
			sources[p.value] = make(map[graph.Source]bool)
		}
		sources[p.value][p.source] = true
	}

	if zero {
		// Ground state. Anything merged this close to zero is zero.
		return []float64{0}
	}
	if len(values) == 1 {
		return values
	}

	// A close doublet: two distinct values, each independently corroborated
	// at least twice, are both genuine.
	if len(values) == 2 && len(sources[values[0]]) >= 2 && len(sources[values[1]]) >= 2 {
		return values
	}

	best := 0
	for _, v := range values {
		if n := len(sources[v]); n > best {
			best = n
		}
	}
	var winners []float64
	for _, v := range values {
		if len(sources[v]) == best {
			winners = append(winners, v)
		}
	}
	if len(winners) == 1 {
		return winners
	}
	// No corroboration winner: represent the cluster by its midpoint.
	return []float64{(winners[0] + winners[len(winners)-1]) / 2}
}

// IsomerLevels returns the subset of a record's flattened levels that were
// matched as a feasible energy under a decay mode flagged isomeric. Runs
// after feasibility evaluation.
func IsomerLevels(rec *graph.Record, cfg Config) []float64 {
	tol := cfg.tolerance()

	var out []float64
	for _, lev := range rec.FlattenedLevels {
		if lev == 0 {
			continue
		}
		for _, m := range rec.ModeOrder() {
			entry := rec.Modes[m]
			if !entry.Isomer {
				continue
			}
			if containsWithin(entry.FeasibleEnergies, lev, tol) {
				out = append(out, lev)
				break
			}
		}
	}
	rec.IsomerLevels = out
	return out
}

func containsWithin(vals []float64, v, tol float64) bool {
	for _, x := range vals {
		if math.Abs(x-v) <= tol {
			return true
		}
	}
	return false
}
