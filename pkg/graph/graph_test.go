/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/errors"
	"github.com/recurlib/recurlib/pkg/nuclide"
)

func TestGetOrCreate(t *testing.T) {
	g := New()
	ac := nuclide.MustParse("Ac-225")

	r, existed := g.GetOrCreate(ac)
	require.NotNil(t, r)
	assert.False(t, existed)

	r2, existed := g.GetOrCreate(ac)
	assert.True(t, existed)
	assert.Same(t, r, r2)
	assert.Equal(t, 1, g.Len())
}

func TestAddEdgeConverging(t *testing.T) {
	g := New()
	bi := nuclide.MustParse("Bi-213")
	po := nuclide.MustParse("Po-213")
	tl := nuclide.MustParse("Tl-209")
	pb := nuclide.MustParse("Pb-209")

	// Bi-213 -> Po-213 -> Pb-209 and Bi-213 -> Tl-209 -> Pb-209.
	g.AddEdge(bi, po)
	g.AddEdge(bi, tl)
	g.AddEdge(po, pb)
	g.AddEdge(tl, pb)
	g.AddEdge(tl, pb)

	rec := g.Get(pb)
	require.NotNil(t, rec)
	assert.Equal(t, []nuclide.ID{po, tl}, rec.Parents)
	assert.Equal(t, []nuclide.ID{po, tl}, g.Get(bi).Daughters)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []nuclide.ID{bi, po, tl, pb}, g.IDs())
}

func TestIsomerDistinctFromGround(t *testing.T) {
	g := New()
	g.GetOrCreate(nuclide.MustParse("Tc-99m"))
	g.GetOrCreate(nuclide.MustParse("Tc-99"))
	assert.Equal(t, 2, g.Len())
	assert.True(t, g.Has(nuclide.MustParse("Tc-99m")))
}

func TestObservationInvariant(t *testing.T) {
	_, err := NewObservation(
		[]dataset.DecayMode{dataset.ModeAlpha},
		[]dataset.Energy{},
	)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedData))

	o, err := NewObservation(
		[]dataset.DecayMode{dataset.ModeAlpha, dataset.ModeBetaMinus},
		[]dataset.Energy{dataset.NewEnergy(100), {}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, o.Len())
}

func TestRecordSourceOrder(t *testing.T) {
	g := New()
	r, _ := g.GetOrCreate(nuclide.MustParse("Fr-221"))

	parent := ParentSource(nuclide.MustParse("Ac-225"))
	r.Observation(parent).Append(dataset.ModeAlpha, dataset.NewEnergy(100.1))
	r.Observation(SourceGammaCascade).Append(dataset.ModeAlpha, dataset.NewEnergy(218.0))
	r.Observation(parent).Append(dataset.ModeAlpha, dataset.NewEnergy(0))

	assert.Equal(t, []Source{parent, SourceGammaCascade}, r.SourceOrder())
	assert.Equal(t, 2, r.Sources[parent].Len())
	assert.Equal(t, Source("from_Ac-225"), parent)
}

func TestRecordModeOrder(t *testing.T) {
	g := New()
	r, _ := g.GetOrCreate(nuclide.MustParse("Bi-213"))

	r.Mode(dataset.ModeBetaMinus).AddWindow("9/2-", dataset.NewWindow(0, 0.5))
	r.Mode(dataset.ModeAlpha).AddWindow("", dataset.NewWindow(0, 0.5))
	r.Mode(dataset.ModeBetaMinus)

	assert.Equal(t,
		[]dataset.DecayMode{dataset.ModeBetaMinus, dataset.ModeAlpha},
		r.ModeOrder())
	assert.True(t, r.Modes[dataset.ModeAlpha].EnergyLevelSet)
}

func TestWalkStops(t *testing.T) {
	g := New()
	g.GetOrCreate(nuclide.MustParse("U-238"))
	g.GetOrCreate(nuclide.MustParse("Th-234"))

	var seen int
	g.Walk(func(*Record) bool {
		seen++
		return false
	})
	assert.Equal(t, 1, seen)
}
