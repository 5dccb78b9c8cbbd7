/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package resolver

import (
	"github.com/recurlib/recurlib/pkg/graph"
	"github.com/recurlib/recurlib/pkg/nuclide"
)

// Lineage is the progeny tree view of a resolved graph, rooted at the
// progenitors. A daughter reached through several parents appears under
// each of them; the graph remains the single source of truth per nuclide.
type Lineage struct {
	Roots []*LineageNode `json:"roots" yaml:"roots"`
}

// LineageNode is one nuclide in the tree with the daughters below it.
type LineageNode struct {
	Nuclide         nuclide.ID     `json:"nuclide" yaml:"nuclide"`
	DataUnavailable bool           `json:"data_unavailable,omitempty" yaml:"data_unavailable,omitempty"`
	Daughters       []*LineageNode `json:"daughters,omitempty" yaml:"daughters,omitempty"`
}

// NewLineage builds the tree view from a finished graph. Descent along a
// path stops at a nuclide already on that path, so malformed cyclic data
// yields a finite tree.
func NewLineage(g *graph.Graph, roots []nuclide.ID) *Lineage {
	l := &Lineage{}
	for _, id := range roots {
		if rec := g.Get(id); rec != nil {
			l.Roots = append(l.Roots, buildNode(g, rec, map[string]bool{}))
		}
	}
	return l
}

func buildNode(g *graph.Graph, rec *graph.Record, path map[string]bool) *LineageNode {
	n := &LineageNode{
		Nuclide:         rec.ID,
		DataUnavailable: rec.DataUnavailable,
	}
	path[rec.ID.Code()] = true
	defer delete(path, rec.ID.Code())

	for _, d := range rec.Daughters {
		if path[d.Code()] {
			continue
		}
		if drec := g.Get(d); drec != nil {
			n.Daughters = append(n.Daughters, buildNode(g, drec, path))
		}
	}
	return n
}

// Count returns the number of distinct nuclides reachable from the roots.
func (l *Lineage) Count() int {
	seen := make(map[string]bool)
	var walk func(n *LineageNode)
	walk = func(n *LineageNode) {
		seen[n.Nuclide.Code()] = true
		for _, d := range n.Daughters {
			walk(d)
		}
	}
	for _, r := range l.Roots {
		walk(r)
	}
	return len(seen)
}
