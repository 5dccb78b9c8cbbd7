/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package graph

import (
	"github.com/recurlib/recurlib/pkg/nuclide"
)

// Graph is the append-only DAG of nuclide records built during one
// resolution run. Records are created lazily the first time a nuclide is
// referenced and never removed; multiple parents converging on one daughter
// share a single record. Not safe for concurrent mutation.
type Graph struct {
	records map[string]*Record
	order   []nuclide.ID
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{records: make(map[string]*Record)}
}

// GetOrCreate returns the record for id, creating it on first reference.
// The second return reports whether the record already existed.
func (g *Graph) GetOrCreate(id nuclide.ID) (*Record, bool) {
	key := id.Code()
	if r, ok := g.records[key]; ok {
		return r, true
	}
	r := newRecord(id)
	g.records[key] = r
	g.order = append(g.order, id)
	return r, false
}

// Get returns the record for id, nil when absent.
func (g *Graph) Get(id nuclide.ID) *Record {
	return g.records[id.Code()]
}

// Has reports whether id is present.
func (g *Graph) Has(id nuclide.ID) bool {
	_, ok := g.records[id.Code()]
	return ok
}

// Len returns the number of records.
func (g *Graph) Len() int {
	return len(g.order)
}

// IDs returns the nuclide identifiers in first-insertion order.
func (g *Graph) IDs() []nuclide.ID {
	out := make([]nuclide.ID, len(g.order))
	copy(out, g.order)
	return out
}

// AddEdge records a parent→daughter decay edge, creating both records as
// needed. Idempotent: repeated edges collapse to one.
func (g *Graph) AddEdge(parent, daughter nuclide.ID) (*Record, *Record) {
	p, _ := g.GetOrCreate(parent)
	d, _ := g.GetOrCreate(daughter)
	p.AddDaughter(daughter)
	d.AddParent(parent)
	return p, d
}

// Walk visits every record in first-insertion order. Visiting stops when fn
// returns false.
func (g *Graph) Walk(fn func(*Record) bool) {
	for _, id := range g.order {
		if !fn(g.records[id.Code()]) {
			return
		}
	}
}
