/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package feasibility

import (
	"math"

	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/defaults"
	"github.com/recurlib/recurlib/pkg/graph"
)

// Options carries the evaluation settings.
type Options struct {
	// Tolerance matches levels against pre-declared isomer levels.
	Tolerance float64
}

func (o Options) tolerance() float64 {
	if o.Tolerance > 0 {
		return o.Tolerance
	}
	return defaults.LevelTolerance
}

// Evaluate decides, per decay mode of a record, whether any reconciled
// level is consistent with a declared energy window, and fills in the
// mode's verdict fields.
//
// A window matches when at least one flattened level lies inside it
// inclusively; with several candidates the one closest to the window
// midpoint wins, ties going to the smaller value. A mode is feasible when
// at least one of its windows matched, and its feasible energies collect
// the representatives in window order. A mode with no declared windows is
// infeasible by construction.
//
// A mode is flagged isomeric when a matched window excludes the ground
// state (low bound strictly positive), when an isomeric transition matched
// an excited level, or when the representative coincides with a level
// pre-declared as belonging to this nuclide's isomer.
func Evaluate(rec *graph.Record, opts Options) {
	tol := opts.tolerance()

	for _, m := range rec.ModeOrder() {
		entry := rec.Modes[m]
		entry.Feasible = false
		entry.FeasibleEnergies = nil
		entry.Isomer = false

		if !entry.EnergyLevelSet {
			continue
		}
		for _, w := range entry.Windows {
			lev, ok := match(rec.FlattenedLevels, w)
			if !ok {
				continue
			}
			entry.Feasible = true
			entry.FeasibleEnergies = append(entry.FeasibleEnergies, lev)

			switch {
			case w.Low.Valid && w.Low.Value > 0:
				entry.Isomer = true
			case m == dataset.ModeIT && lev > 0:
				entry.Isomer = true
			case knownIsomerLevel(rec.KnownIsomerLevels, lev, tol):
				entry.Isomer = true
			}
		}
	}
}

// match returns the representative level for one window: the in-window
// level closest to the window midpoint, ties broken by smaller value.
func match(levels []float64, w dataset.Window) (float64, bool) {
	mid, ok := w.Midpoint()
	if !ok {
		return 0, false
	}
	var (
		best  float64
		found bool
	)
	for _, lev := range levels {
		if !w.Contains(lev) {
			continue
		}
		if !found {
			best, found = lev, true
			continue
		}
		d, bd := math.Abs(lev-mid), math.Abs(best-mid)
		if d < bd || (d == bd && lev < best) {
			best = lev
		}
	}
	return best, found
}

func knownIsomerLevel(known []float64, lev, tol float64) bool {
	if lev == 0 {
		return false
	}
	for _, k := range known {
		if math.Abs(k-lev) <= tol {
			return true
		}
	}
	return false
}
