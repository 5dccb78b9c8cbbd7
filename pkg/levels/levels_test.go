/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/graph"
	"github.com/recurlib/recurlib/pkg/nuclide"
)

func record(t *testing.T, name string) *graph.Record {
	t.Helper()
	g := graph.New()
	r, _ := g.GetOrCreate(nuclide.MustParse(name))
	return r
}

func observe(r *graph.Record, src graph.Source, energies ...float64) {
	for _, e := range energies {
		r.Observation(src).Append(dataset.ModeAlpha, dataset.NewEnergy(e))
	}
}

func TestReconcileToleranceDedup(t *testing.T) {
	r := record(t, "Pb-209")
	observe(r, graph.ParentSource(nuclide.MustParse("Po-213")), 100.0, 50.0)
	observe(r, graph.SourceGammaCascade, 100.002, 50.1)

	got := Reconcile(r, Config{Tolerance: 0.01})
	// 100.0/100.002 collapse (100.0 wins nothing; both once -> midpoint),
	// 50.0 and 50.1 stay distinct.
	require.Len(t, got, 3)
	assert.InDelta(t, 100.001, got[0], 1e-9)
	assert.InDelta(t, 50.1, got[1], 1e-9)
	assert.InDelta(t, 50.0, got[2], 1e-9)
	assert.Equal(t, got, r.FlattenedLevels)
}

func TestReconcileCorroborationWins(t *testing.T) {
	r := record(t, "Bi-213")
	observe(r, graph.ParentSource(nuclide.MustParse("Ra-225")), 10.0)
	observe(r, graph.SourceGammaCascade, 10.0)
	observe(r, graph.SourceUserInput, 10.004)

	got := Reconcile(r, Config{Tolerance: 0.01})
	require.Len(t, got, 1)
	assert.InDelta(t, 10.0, got[0], 1e-9)
}

func TestReconcileMidpointOnTie(t *testing.T) {
	// Both literals seen once by the same source: no winner, midpoint.
	r := record(t, "Fr-221")
	observe(r, graph.ParentSource(nuclide.MustParse("Ac-225")), 10.0, 10.001, 20.0)

	got := Reconcile(r, Config{Tolerance: 0.01})
	require.Len(t, got, 2)
	assert.InDelta(t, 20.0, got[0], 1e-9)
	assert.InDelta(t, 10.0005, got[1], 1e-9)
}

func TestReconcileCloseDoubletRetained(t *testing.T) {
	r := record(t, "At-217")
	observe(r, graph.ParentSource(nuclide.MustParse("Fr-221")), 30.0, 30.005)
	observe(r, graph.SourceGammaCascade, 30.0, 30.005)

	got := Reconcile(r, Config{Tolerance: 0.01})
	require.Len(t, got, 2)
	assert.InDelta(t, 30.005, got[0], 1e-9)
	assert.InDelta(t, 30.0, got[1], 1e-9)
}

func TestReconcileZeroRetained(t *testing.T) {
	r := record(t, "Po-213")
	observe(r, graph.ParentSource(nuclide.MustParse("Bi-213")), 0.005, 0.0)

	got := Reconcile(r, Config{Tolerance: 0.01})
	require.Len(t, got, 1)
	assert.Zero(t, got[0])
}

func TestReconcileSkipsMissing(t *testing.T) {
	r := record(t, "Tl-209")
	src := graph.ParentSource(nuclide.MustParse("Bi-213"))
	r.Observation(src).Append(dataset.ModeAlpha, dataset.Energy{})
	r.Observation(src).Append(dataset.ModeAlpha, dataset.NewEnergy(323.8))

	got := Reconcile(r, Config{})
	require.Len(t, got, 1)
	assert.InDelta(t, 323.8, got[0], 1e-9)
}

func TestReconcileEmpty(t *testing.T) {
	r := record(t, "Pb-207")
	assert.Nil(t, Reconcile(r, Config{}))
}

func TestReconcileDeterministic(t *testing.T) {
	build := func() []float64 {
		r := record(t, "Ra-221")
		observe(r, graph.ParentSource(nuclide.MustParse("Th-225")), 103.6, 0, 53.2)
		observe(r, graph.SourceGammaCascade, 53.2, 103.61)
		return Reconcile(r, Config{Tolerance: 0.05})
	}
	assert.Equal(t, build(), build())
}

func TestIsomerLevels(t *testing.T) {
	r := record(t, "Tc-99")
	r.FlattenedLevels = []float64{142.6836, 0}

	e := r.Mode(dataset.ModeIT)
	e.Feasible = true
	e.Isomer = true
	e.FeasibleEnergies = []float64{142.6836}

	got := IsomerLevels(r, Config{})
	require.Len(t, got, 1)
	assert.InDelta(t, 142.6836, got[0], 1e-9)
	assert.Equal(t, got, r.IsomerLevels)
}

func TestIsomerLevelsGroundNeverIncluded(t *testing.T) {
	r := record(t, "Pa-234")
	r.FlattenedLevels = []float64{73.92, 0}

	e := r.Mode(dataset.ModeBetaMinus)
	e.Isomer = true
	e.FeasibleEnergies = []float64{73.92, 0}

	got := IsomerLevels(r, Config{})
	require.Len(t, got, 1)
	assert.InDelta(t, 73.92, got[0], 1e-9)
}

func TestCascadeLevels(t *testing.T) {
	gammas := []dataset.GammaRow{
		{StartLevel: 440.45, EndLevel: 218.0},
		{StartLevel: 218.0, EndLevel: 0},
	}
	got := CascadeLevels(gammas)
	require.Len(t, got, 3)
	assert.Equal(t, []float64{440.45, 218.0, 0}, got)
}

func TestCascadeLevelsCycleGuard(t *testing.T) {
	gammas := []dataset.GammaRow{
		{StartLevel: 100, EndLevel: 50},
		{StartLevel: 50, EndLevel: 100},
	}
	got := CascadeLevels(gammas)
	assert.Equal(t, []float64{100, 50}, got)
}

func TestCascadeLevelsEmpty(t *testing.T) {
	assert.Nil(t, CascadeLevels(nil))
}
