/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package library

import (
	"context"
	"log/slog"
	"math"

	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/defaults"
	"github.com/recurlib/recurlib/pkg/errors"
	"github.com/recurlib/recurlib/pkg/graph"
	"github.com/recurlib/recurlib/pkg/header"
	"github.com/recurlib/recurlib/pkg/store"
)

// DefaultDatabase names the nuclear database rows are drawn from.
const DefaultDatabase = "IAEA-NDS Live Chart of Nuclides"

// Cutoffs bound which radiation rows enter the library. Zero-valued maxima
// mean unbounded.
type Cutoffs struct {
	EnergyMin      float64 `json:"energy_min" yaml:"energy_min"`
	EnergyMax      float64 `json:"energy_max" yaml:"energy_max"`
	EmissionMin    float64 `json:"emission_min" yaml:"emission_min"`
	EmissionMax    float64 `json:"emission_max" yaml:"emission_max"`
	HalfLifeSecMin float64 `json:"half_life_sec_min" yaml:"half_life_sec_min"`
	HalfLifeSecMax float64 `json:"half_life_sec_max" yaml:"half_life_sec_max"`
}

func (c Cutoffs) keep(r dataset.RadiationRow) bool {
	if !r.Energy.Valid {
		return false
	}
	if r.Energy.Value < c.EnergyMin || r.EmissionProb < c.EmissionMin ||
		r.HalfLife.Seconds < c.HalfLifeSecMin {
		return false
	}
	if c.EnergyMax > 0 && r.Energy.Value > c.EnergyMax {
		return false
	}
	if c.EmissionMax > 0 && r.EmissionProb > c.EmissionMax {
		return false
	}
	if c.HalfLifeSecMax > 0 && r.HalfLife.Seconds > c.HalfLifeSecMax {
		return false
	}
	return true
}

// Options configures library assembly.
type Options struct {
	// Radiation selects which radiation rows enter the library.
	Radiation dataset.Radiation
	Cutoffs   Cutoffs
	// Tolerance matches row levels against reconciled levels, keV.
	Tolerance float64
	// Database overrides the database annotation. Default DefaultDatabase.
	Database string
	// Generator names the producing tool in the document header.
	Generator string
}

func (o Options) tolerance() float64 {
	if o.Tolerance > 0 {
		return o.Tolerance
	}
	return defaults.LevelTolerance
}

// Row is one radiation line of the assembled library.
type Row struct {
	Nuclide      string            `json:"radionuclide" yaml:"radionuclide"`
	Number       int               `json:"radiation_number" yaml:"radiation_number"`
	KeyRadiation bool              `json:"key_radiation" yaml:"key_radiation"`
	Energy       float64           `json:"energy" yaml:"energy"`
	EnergyUnc    float64           `json:"energy_unc" yaml:"energy_unc"`
	EmissionProb float64           `json:"emission_probability" yaml:"emission_probability"`
	EmissionUnc  float64           `json:"emission_probability_unc" yaml:"emission_probability_unc"`
	Level        float64           `json:"energy_level" yaml:"energy_level"`
	SpinParity   string            `json:"jp,omitempty" yaml:"jp,omitempty"`
	HalfLife     dataset.HalfLife  `json:"half_life" yaml:"half_life"`
	Mode         dataset.DecayMode `json:"decay_mode,omitempty" yaml:"decay_mode,omitempty"`
	Branching    float64           `json:"decay_branching,omitempty" yaml:"decay_branching,omitempty"`
	BranchingUnc float64           `json:"decay_branching_unc,omitempty" yaml:"decay_branching_unc,omitempty"`
	Database     string            `json:"database" yaml:"database"`
}

// Library is the assembled radionuclide library document.
type Library struct {
	Header    header.Header     `json:"header" yaml:"header"`
	Radiation dataset.Radiation `json:"radiation" yaml:"radiation"`
	Rows      []Row             `json:"rows" yaml:"rows"`
}

// Builder assembles a library from a resolved graph, pulling radiation data
// through the (cached) dataset provider.
type Builder struct {
	provider store.Provider
}

// NewBuilder returns a Builder reading datasets through provider.
func NewBuilder(provider store.Provider) *Builder {
	return &Builder{provider: provider}
}

// Build walks the graph in resolution order and assembles the library:
// radiation rows of the requested type, bounded by the cutoffs, pruned to
// physically viable levels and feasible decay modes, with metastable rows
// relabeled as the isomer and listed first per nuclide.
func (b *Builder) Build(ctx context.Context, g *graph.Graph, opts Options) (*Library, error) {
	radiation, ok := dataset.ParseRadiation(string(opts.Radiation))
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unrecognized spectrum radiation",
			map[string]any{"radiation": string(opts.Radiation)})
	}
	db := opts.Database
	if db == "" {
		db = DefaultDatabase
	}
	tol := opts.tolerance()

	lib := &Library{Radiation: radiation}
	var walkErr error
	g.Walk(func(rec *graph.Record) bool {
		if rec.ID.Isomer {
			// The ground-state pass emits isomer rows via level matching;
			// a separate isomer record would duplicate them.
			return true
		}
		rows, err := b.nuclideRows(ctx, rec, radiation, opts.Cutoffs, db, tol)
		if err != nil {
			walkErr = err
			return false
		}
		lib.Rows = append(lib.Rows, rows...)
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	lib.Header.Init(header.KindLibrary, header.APIVersion, opts.Generator)
	return lib, nil
}

// nuclideRows produces the final, numbered rows for one nuclide record.
func (b *Builder) nuclideRows(ctx context.Context, rec *graph.Record,
	radiation dataset.Radiation, cut Cutoffs, db string, tol float64) ([]Row, error) {

	ds, err := b.provider.FetchRaw(ctx, rec.ID)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeNotFound) {
			// Stable daughters have no dataset but still sit in the graph
			// as recursion base cases.
			return nil, nil
		}
		return nil, err
	}

	short := radiation.Short()
	var kept []Row
	for _, r := range ds.Radiations {
		if r.Type != short || !cut.keep(r) {
			continue
		}
		level := r.ParentLevel.Or(0)
		if len(rec.FlattenedLevels) > 0 && !matches(rec.FlattenedLevels, level, tol) {
			continue
		}
		if entry, ok := rec.Modes[r.Mode]; ok && !entry.Feasible {
			slog.Debug("dropping row of infeasible decay mode",
				"nuclide", rec.ID.String(), "mode", r.Mode.String())
			continue
		}

		name := rec.ID.String()
		if matches(rec.IsomerLevels, level, tol) {
			name = rec.ID.WithIsomer().String()
		}
		kept = append(kept, Row{
			Nuclide:      name,
			Energy:       r.Energy.Value,
			EnergyUnc:    r.EnergyUnc.Or(0),
			EmissionProb: r.EmissionProb,
			EmissionUnc:  r.EmissionUnc,
			Level:        level,
			SpinParity:   r.SpinParity,
			HalfLife:     r.HalfLife,
			Mode:         r.Mode,
			Branching:    r.Branching,
			BranchingUnc: r.BranchingUnc,
			Database:     db,
		})
	}
	if len(kept) == 0 {
		return nil, nil
	}

	// The isomer block precedes the ground state, each independently
	// numbered with its own key radiation.
	isomerName := rec.ID.WithIsomer().String()
	var ordered []Row
	for _, r := range kept {
		if r.Nuclide == isomerName {
			ordered = append(ordered, r)
		}
	}
	for _, r := range kept {
		if r.Nuclide != isomerName {
			ordered = append(ordered, r)
		}
	}
	number(ordered)
	return ordered, nil
}

// number assigns per-nuclide radiation numbers and flags each nuclide's
// highest-emission row as its key radiation.
func number(rows []Row) {
	counts := make(map[string]int)
	maxEmission := make(map[string]float64)
	for _, r := range rows {
		if r.EmissionProb > maxEmission[r.Nuclide] {
			maxEmission[r.Nuclide] = r.EmissionProb
		}
	}
	for i := range rows {
		counts[rows[i].Nuclide]++
		rows[i].Number = counts[rows[i].Nuclide]
		rows[i].KeyRadiation = rows[i].EmissionProb == maxEmission[rows[i].Nuclide]
	}
}

func matches(levels []float64, v, tol float64) bool {
	for _, lev := range levels {
		if math.Abs(lev-v) <= tol {
			return true
		}
	}
	return false
}
