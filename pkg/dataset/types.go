/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package dataset

import (
	"github.com/recurlib/recurlib/pkg/nuclide"
)

// DecayRow is one decay-mode record for a parent nuclide: the mode, the
// daughter it produces, the parent level the decay proceeds from, and the
// daughter level it populates.
type DecayRow struct {
	Mode          DecayMode  `json:"mode"`
	Daughter      nuclide.ID `json:"daughter,omitempty"`
	ParentLevel   Energy     `json:"parent_level"`
	DaughterLevel Energy     `json:"daughter_level"`
}

// GammaRow is one gamma transition between two levels of a nuclide.
type GammaRow struct {
	StartLevel    float64 `json:"start_level"`
	StartLevelUnc float64 `json:"start_level_unc"`
	EndLevel      float64 `json:"end_level"`
}

// LevelRow is one declared energy level of a nuclide with the decay modes
// reported to proceed from it.
type LevelRow struct {
	Energy     float64     `json:"energy"`
	EnergyUnc  float64     `json:"energy_unc"`
	SpinParity string      `json:"spin_parity,omitempty"`
	Modes      []DecayMode `json:"modes,omitempty"`
}

// HalfLife is a half-life figure as reported, with its normalized value in
// seconds.
type HalfLife struct {
	Value   float64 `json:"value"`
	Unc     float64 `json:"unc"`
	Unit    string  `json:"unit,omitempty"`
	Seconds float64 `json:"seconds"`
}

// RadiationRow is one emitted-radiation record: a line of the queried
// spectrum radiation with its emission probability, the parent level it is
// emitted from, and the parent half-life and decay branching it belongs to.
type RadiationRow struct {
	Type         string    `json:"type"`
	Energy       Energy    `json:"energy"`
	EnergyUnc    Energy    `json:"energy_unc"`
	EmissionProb float64   `json:"emission_prob"`
	EmissionUnc  float64   `json:"emission_unc"`
	ParentLevel  Energy    `json:"parent_level"`
	SpinParity   string    `json:"spin_parity,omitempty"`
	HalfLife     HalfLife  `json:"half_life"`
	Mode         DecayMode `json:"mode,omitempty"`
	Branching    float64   `json:"branching"`
	BranchingUnc float64   `json:"branching_unc"`
}

// RawDataset is everything collected for one nuclide from the upstream
// source, decoded but not yet interpreted. It round-trips through JSON for
// the persisted cache.
type RawDataset struct {
	Nuclide    nuclide.ID     `json:"nuclide"`
	Decays     []DecayRow     `json:"decays,omitempty"`
	Gammas     []GammaRow     `json:"gammas,omitempty"`
	Levels     []LevelRow     `json:"levels,omitempty"`
	Radiations []RadiationRow `json:"radiations,omitempty"`
}

// Empty reports whether nothing usable was collected for the nuclide.
func (d *RawDataset) Empty() bool {
	return len(d.Decays) == 0 && len(d.Gammas) == 0 &&
		len(d.Levels) == 0 && len(d.Radiations) == 0
}
