/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package graph

import (
	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/errors"
	"github.com/recurlib/recurlib/pkg/nuclide"
)

// Source identifies where a level observation came from: a parent nuclide's
// decay spectrum, direct gamma-cascade measurement, or a caller override.
type Source string

const (
	// SourceGammaCascade marks levels derived from gamma transition data.
	SourceGammaCascade Source = "gamma_cascade"
	// SourceUserInput marks levels declared by the caller.
	SourceUserInput Source = "user_input"
)

// ParentSource is the observation source for a parent nuclide, written as
// "from_<parent>" so report output distinguishes inherited observations
// from direct ones.
func ParentSource(id nuclide.ID) Source {
	return Source("from_" + id.String())
}

// Observation holds one source's view of a nuclide: parallel sequences of
// decay-mode tags and the daughter level energies they populate. The two
// slices are always the same length; a transition without a reported level
// carries a missing energy.
type Observation struct {
	Modes    []dataset.DecayMode `json:"decay_modes"`
	Energies []dataset.Energy    `json:"energies"`
}

// NewObservation validates the parallel-sequence invariant.
func NewObservation(modes []dataset.DecayMode, energies []dataset.Energy) (*Observation, error) {
	if len(modes) != len(energies) {
		return nil, errors.NewWithContext(errors.ErrCodeMalformedData,
			"observation mode and energy sequences differ in length",
			map[string]any{"modes": len(modes), "energies": len(energies)})
	}
	return &Observation{Modes: modes, Energies: energies}, nil
}

// Append records one transition.
func (o *Observation) Append(mode dataset.DecayMode, energy dataset.Energy) {
	o.Modes = append(o.Modes, mode)
	o.Energies = append(o.Energies, energy)
}

// Len returns the number of observed transitions.
func (o *Observation) Len() int {
	return len(o.Modes)
}

// ModeEntry holds everything known about one decay mode of a nuclide: the
// declared spin-parity candidates with their plausible-energy windows, and
// the feasibility verdict filled in after reconciliation.
type ModeEntry struct {
	SpinParities     []string         `json:"spin_parity_candidates,omitempty"`
	Windows          []dataset.Window `json:"energy_windows,omitempty"`
	EnergyLevelSet   bool             `json:"is_energy_level_set"`
	Feasible         bool             `json:"is_feasible"`
	FeasibleEnergies []float64        `json:"feasible_energies,omitempty"`
	Isomer           bool             `json:"is_isomer"`
}

// AddWindow declares one spin-parity candidate with its energy window. The
// label may be empty when the assignment is unknown.
func (e *ModeEntry) AddWindow(spinParity string, w dataset.Window) {
	e.SpinParities = append(e.SpinParities, spinParity)
	e.Windows = append(e.Windows, w)
	e.EnergyLevelSet = true
}

// Record is the per-nuclide node of the decay graph. It accumulates
// parent/daughter adjacency and per-source observations during traversal,
// then carries the reconciled levels and per-mode verdicts once finalized.
// Iteration order over sources and modes is insertion order.
type Record struct {
	ID nuclide.ID `json:"id"`

	Parents   []nuclide.ID `json:"parents,omitempty"`
	Daughters []nuclide.ID `json:"daughters,omitempty"`

	Sources map[Source]*Observation `json:"decay_sources,omitempty"`
	// sourceOrder preserves first-insertion order of Sources keys.
	sourceOrder []Source

	Modes map[dataset.DecayMode]*ModeEntry `json:"decay_modes,omitempty"`
	// modeOrder preserves first-insertion order of Modes keys.
	modeOrder []dataset.DecayMode

	FlattenedLevels []float64 `json:"flattened_levels,omitempty"`
	IsomerLevels    []float64 `json:"isomer_levels,omitempty"`

	// KnownIsomerLevels carries levels of a pre-declared isomer of this
	// nuclide, set before the ground state resolves so its evaluation can
	// recognize them as metastable.
	KnownIsomerLevels []float64 `json:"-"`

	// DataUnavailable marks an unresolved leaf: no dataset could be
	// obtained from cache or remote, so the subtree below is unknown.
	DataUnavailable bool `json:"data_unavailable,omitempty"`
}

func newRecord(id nuclide.ID) *Record {
	return &Record{
		ID:      id,
		Sources: make(map[Source]*Observation),
		Modes:   make(map[dataset.DecayMode]*ModeEntry),
	}
}

// AddParent records a parent edge, idempotently.
func (r *Record) AddParent(id nuclide.ID) {
	for _, p := range r.Parents {
		if p.Equal(id) {
			return
		}
	}
	r.Parents = append(r.Parents, id)
}

// AddDaughter records a daughter edge, idempotently.
func (r *Record) AddDaughter(id nuclide.ID) {
	for _, d := range r.Daughters {
		if d.Equal(id) {
			return
		}
	}
	r.Daughters = append(r.Daughters, id)
}

// Observation returns the observation for src, creating it on first use.
func (r *Record) Observation(src Source) *Observation {
	if o, ok := r.Sources[src]; ok {
		return o
	}
	o := &Observation{}
	r.Sources[src] = o
	r.sourceOrder = append(r.sourceOrder, src)
	return o
}

// SetObservation installs a whole observation for src, replacing any
// partial one.
func (r *Record) SetObservation(src Source, o *Observation) {
	if _, ok := r.Sources[src]; !ok {
		r.sourceOrder = append(r.sourceOrder, src)
	}
	r.Sources[src] = o
}

// SourceOrder returns the observation sources in first-insertion order.
func (r *Record) SourceOrder() []Source {
	return r.sourceOrder
}

// Mode returns the entry for a decay mode, creating it on first use.
func (r *Record) Mode(m dataset.DecayMode) *ModeEntry {
	if e, ok := r.Modes[m]; ok {
		return e
	}
	e := &ModeEntry{}
	r.Modes[m] = e
	r.modeOrder = append(r.modeOrder, m)
	return e
}

// ModeOrder returns the decay modes in first-insertion order.
func (r *Record) ModeOrder() []dataset.DecayMode {
	return r.modeOrder
}
