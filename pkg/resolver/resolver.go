/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package resolver

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/defaults"
	"github.com/recurlib/recurlib/pkg/errors"
	"github.com/recurlib/recurlib/pkg/feasibility"
	"github.com/recurlib/recurlib/pkg/graph"
	"github.com/recurlib/recurlib/pkg/levels"
	"github.com/recurlib/recurlib/pkg/nuclide"
	"github.com/recurlib/recurlib/pkg/store"
)

// Request describes one resolution run.
type Request struct {
	// Progenitors are the starting radionuclides, each optionally with
	// caller-declared energy levels. Their whole progeny is explored.
	Progenitors []nuclide.Entry
	// Static entries are resolved as declared: their own dataset is
	// fetched and reconciled, but their decay rows are not followed.
	Static []nuclide.Entry
	// Exclusions are never added to the graph; their subtrees are not
	// explored.
	Exclusions []nuclide.ID
	// Radiation selects which decay modes are followed: gamma accompanies
	// every decay and follows all, alpha and beta minus follow their own.
	Radiation dataset.Radiation
	// Tolerance for level reconciliation, keV. Zero means the default.
	Tolerance float64
}

// Resolver discovers the full progeny graph of a set of progenitors by
// following decay-mode edges, then reconciles levels and evaluates
// decay-mode feasibility for every discovered nuclide.
type Resolver struct {
	provider store.Provider
}

// New returns a Resolver fetching datasets through provider.
func New(provider store.Provider) *Resolver {
	return &Resolver{provider: provider}
}

// workItem is one worklist entry with its distance from a progenitor.
type workItem struct {
	id     nuclide.ID
	depth  int
	static bool
}

// Resolve runs the traversal and returns the finished graph with its
// lineage tree. Failures local to one nuclide never abort the run; only a
// structurally invalid request is fatal.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*graph.Graph, *Lineage, error) {
	if len(req.Progenitors)+len(req.Static) == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidRequest,
			"at least one progenitor is required")
	}
	radiation := dataset.RadiationGamma
	if req.Radiation != "" {
		rad, ok := dataset.ParseRadiation(string(req.Radiation))
		if !ok {
			return nil, nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"unrecognized spectrum radiation",
				map[string]any{"radiation": string(req.Radiation)})
		}
		radiation = rad
	}

	excluded := make(map[string]bool, len(req.Exclusions))
	for _, id := range req.Exclusions {
		excluded[id.Code()] = true
	}

	recursive := make(map[string]bool, len(req.Progenitors))
	for _, e := range req.Progenitors {
		recursive[e.ID.Code()] = true
	}

	all := append(append([]nuclide.Entry{}, req.Progenitors...), req.Static...)
	seeds := orderProgenitors(all)
	var live []nuclide.Entry
	for _, e := range seeds {
		if excluded[e.ID.Code()] {
			slog.Info("progenitor excluded, skipping", "nuclide", e.ID.String())
			continue
		}
		live = append(live, e)
	}
	if len(live) == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidRequest,
			"every progenitor is excluded")
	}

	start := time.Now()
	g := graph.New()
	cfg := levels.Config{Tolerance: req.Tolerance}

	// Levels declared for an isomer progenitor, keyed by the ground state,
	// so ground-state evaluation recognizes the metastable level.
	isomerLevels := make(map[string][]float64)

	var roots []nuclide.ID
	worklist := make([]workItem, 0, len(live))
	for _, e := range live {
		rec, _ := g.GetOrCreate(e.ID)
		if len(e.Levels) > 0 {
			// Declared levels carry no decay-mode tags.
			modes := make([]dataset.DecayMode, len(e.Levels))
			energies := make([]dataset.Energy, len(e.Levels))
			for i, lev := range e.Levels {
				energies[i] = dataset.NewEnergy(lev)
			}
			obs, err := graph.NewObservation(modes, energies)
			if err != nil {
				return nil, nil, err
			}
			rec.SetObservation(graph.SourceUserInput, obs)
		}
		if e.ID.Isomer {
			key := e.ID.Ground().Code()
			isomerLevels[key] = append(isomerLevels[key], e.Levels...)
		}
		roots = append(roots, e.ID)
		worklist = append(worklist, workItem{id: e.ID, static: !recursive[e.ID.Code()]})
	}

	visited := make(map[string]bool)
	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		if visited[item.id.Code()] {
			// Re-expansion guard: converging paths and malformed cycles
			// both land here.
			continue
		}
		visited[item.id.Code()] = true

		if item.depth > defaults.MaxChainDepth {
			slog.Warn("chain depth bound exceeded, not expanding",
				"nuclide", item.id.String(), "depth", item.depth)
			continue
		}

		daughters := r.expand(ctx, g, item.id, radiation, excluded, cfg, !item.static)
		for _, d := range daughters {
			if !visited[d.Code()] {
				worklist = append(worklist, workItem{id: d, depth: item.depth + 1})
			}
		}
	}

	// Finalize once every parent has contributed: reconcile, evaluate,
	// flag metastable levels. Pooling sorts, so arrival order is moot.
	g.Walk(func(rec *graph.Record) bool {
		if lev, ok := isomerLevels[rec.ID.Code()]; ok {
			rec.KnownIsomerLevels = lev
		}
		levels.Reconcile(rec, cfg)
		feasibility.Evaluate(rec, feasibility.Options{Tolerance: cfg.Tolerance})
		levels.IsomerLevels(rec, cfg)
		return true
	})

	resolveDuration.Observe(time.Since(start).Seconds())
	nuclidesResolved.Add(float64(g.Len()))

	return g, NewLineage(g, roots), nil
}

// expand processes one nuclide: attaches its direct observations and mode
// windows, and, when followDecays is set, returns the daughters to visit
// next. A nuclide whose dataset cannot be obtained becomes an unresolved
// leaf. Static entries pass followDecays=false: they are resolved as
// declared without exploring their progeny.
func (r *Resolver) expand(ctx context.Context, g *graph.Graph, id nuclide.ID,
	radiation dataset.Radiation, excluded map[string]bool, cfg levels.Config,
	followDecays bool) []nuclide.ID {

	rec, _ := g.GetOrCreate(id)

	ds, err := r.provider.FetchRaw(ctx, id)
	if err != nil {
		if !errors.IsCode(err, errors.ErrCodeNotFound) {
			slog.Warn("dataset fetch failed, recording unresolved leaf",
				"nuclide", id.String(), "error", err)
		} else {
			slog.Debug("no dataset for nuclide", "nuclide", id.String())
		}
		rec.DataUnavailable = true
		unresolvedLeaves.Inc()
		return nil
	}

	// Levels evidenced by the nuclide's own gamma cascade.
	if casc := levels.CascadeLevels(ds.Gammas); len(casc) > 0 {
		obs := rec.Observation(graph.SourceGammaCascade)
		for _, lev := range casc {
			obs.Append("", dataset.NewEnergy(lev))
		}
	}

	// Declared level scheme: each level row carrying decay modes declares
	// a plausible-energy window for those modes.
	for _, row := range ds.Levels {
		for _, m := range row.Modes {
			rec.Mode(m).AddWindow(row.SpinParity, dataset.NewWindow(row.Energy, row.EnergyUnc))
		}
	}

	if !followDecays {
		return nil
	}

	declared := userLevels(rec)

	var out []nuclide.ID
	for _, d := range ds.Decays {
		if !radiation.FollowsMode(d.Mode) {
			continue
		}
		if d.Daughter.IsZero() || d.Daughter.Equal(id) {
			continue
		}
		// A progenitor pinned to declared levels only decays from them:
		// an isomer entry follows transitions from its metastable level,
		// its ground state follows those from zero.
		if len(declared) > 0 && !levelMatches(declared, d.ParentLevel.Or(0), cfg) {
			continue
		}
		if excluded[d.Daughter.Code()] {
			slog.Debug("daughter excluded, subtree skipped",
				"parent", id.String(), "daughter", d.Daughter.String())
			continue
		}

		_, drec := g.AddEdge(id, d.Daughter)
		drec.Observation(graph.ParentSource(id)).Append(d.Mode, d.DaughterLevel)
		out = append(out, d.Daughter)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return dedupe(out)
}

// orderProgenitors applies the static ordering rule: when a nuclide and its
// isomer are both declared, the isomer resolves first so ground-state
// resolution can recognize the already-known metastable level. Otherwise
// the caller's order is preserved.
func orderProgenitors(entries []nuclide.Entry) []nuclide.Entry {
	out := make([]nuclide.Entry, 0, len(entries))
	used := make([]bool, len(entries))
	for i, e := range entries {
		if used[i] {
			continue
		}
		if !e.ID.Isomer {
			for j := i + 1; j < len(entries); j++ {
				if used[j] || !entries[j].ID.Isomer {
					continue
				}
				if entries[j].ID.Ground().Equal(e.ID) {
					out = append(out, entries[j])
					used[j] = true
				}
			}
		}
		out = append(out, e)
		used[i] = true
	}
	return out
}

func userLevels(rec *graph.Record) []float64 {
	obs, ok := rec.Sources[graph.SourceUserInput]
	if !ok {
		return nil
	}
	var out []float64
	for _, e := range obs.Energies {
		if e.Valid {
			out = append(out, e.Value)
		}
	}
	return out
}

func levelMatches(levels []float64, v float64, cfg levels.Config) bool {
	tol := cfg.Tolerance
	if tol <= 0 {
		tol = defaults.LevelTolerance
	}
	for _, lev := range levels {
		if math.Abs(lev-v) <= tol {
			return true
		}
	}
	return false
}

func dedupe(ids []nuclide.ID) []nuclide.ID {
	var out []nuclide.ID
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id.Code()] {
			continue
		}
		seen[id.Code()] = true
		out = append(out, id)
	}
	return out
}
