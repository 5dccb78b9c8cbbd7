/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	stderrors "errors"
	"io/fs"

	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/defaults"
	"github.com/recurlib/recurlib/pkg/errors"
	"github.com/recurlib/recurlib/pkg/library"
	"github.com/recurlib/recurlib/pkg/nuclide"
	"github.com/recurlib/recurlib/pkg/serializer"
)

// Config is a run-configuration file: a template block plus named dataset
// runs, each inheriting the template and overriding what it declares.
type Config struct {
	Template Run            `yaml:"template"`
	Datasets map[string]Run `yaml:"datasets"`
}

// Run configures one library-construction run.
type Run struct {
	// SpectrumRadiation is the radiation the library is built for:
	// alpha, gamma, or beta minus.
	SpectrumRadiation string `yaml:"spectrum_radiation"`
	// Tolerance is the level-reconciliation tolerance in keV.
	Tolerance float64 `yaml:"tolerance"`
	Cache     Cache   `yaml:"cache"`
	Scout     Scout   `yaml:"scout"`
	Cutoffs   Cutoffs `yaml:"cutoffs"`
}

// Cache configures the persisted dataset cache.
type Cache struct {
	// Path of the cache database file. Empty disables persistence.
	Path string `yaml:"path"`
}

// Scout declares the nuclides a run starts from. Entries use the
// "Sym-Mass[m][;level[;level...]]" notation.
type Scout struct {
	// Recursive progenitors are expanded through their whole progeny.
	Recursive []string `yaml:"recursive"`
	// Static entries are included as declared, without expansion.
	Static []string `yaml:"static"`
	// Exclusion names nuclides never added to the graph.
	Exclusion []string `yaml:"exclusion"`
}

// Cutoffs bound library rows as [min, max] pairs; a missing max means
// unbounded.
type Cutoffs struct {
	Energy              []float64 `yaml:"energy"`
	EmissionProbability []float64 `yaml:"emission_probability"`
	HalfLifeSec         []float64 `yaml:"half_life_sec"`
}

// Load reads and parses a run-configuration file from a local path or an
// HTTP(S) URL. A `.json` extension selects JSON; anything else parses as
// YAML.
func Load(path string) (*Config, error) {
	c, err := serializer.FromFile[Config](path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
				"reading config file", err, map[string]any{"path": path})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeMalformedData,
			"parsing config file", err, map[string]any{"path": path})
	}
	return c, nil
}

// Dataset resolves one named run with template inheritance applied.
func (c *Config) Dataset(name string) (*Run, error) {
	run, ok := c.Datasets[name]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			"dataset not declared in config",
			map[string]any{"dataset": name})
	}
	merged := merge(c.Template, run)
	return &merged, nil
}

// merge overlays run on top of the template: declared fields win, absent
// ones inherit.
func merge(tpl, run Run) Run {
	out := run
	if out.SpectrumRadiation == "" {
		out.SpectrumRadiation = tpl.SpectrumRadiation
	}
	if out.Tolerance == 0 {
		out.Tolerance = tpl.Tolerance
	}
	if out.Cache.Path == "" {
		out.Cache.Path = tpl.Cache.Path
	}
	if len(out.Scout.Recursive) == 0 {
		out.Scout.Recursive = tpl.Scout.Recursive
	}
	if len(out.Scout.Static) == 0 {
		out.Scout.Static = tpl.Scout.Static
	}
	if len(out.Scout.Exclusion) == 0 {
		out.Scout.Exclusion = tpl.Scout.Exclusion
	}
	if len(out.Cutoffs.Energy) == 0 {
		out.Cutoffs.Energy = tpl.Cutoffs.Energy
	}
	if len(out.Cutoffs.EmissionProbability) == 0 {
		out.Cutoffs.EmissionProbability = tpl.Cutoffs.EmissionProbability
	}
	if len(out.Cutoffs.HalfLifeSec) == 0 {
		out.Cutoffs.HalfLifeSec = tpl.Cutoffs.HalfLifeSec
	}
	return out
}

// Radiation returns the run's validated spectrum radiation, defaulting to
// gamma.
func (r *Run) Radiation() (dataset.Radiation, error) {
	if r.SpectrumRadiation == "" {
		return dataset.RadiationGamma, nil
	}
	rad, ok := dataset.ParseRadiation(r.SpectrumRadiation)
	if !ok {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unrecognized spectrum radiation",
			map[string]any{"radiation": r.SpectrumRadiation})
	}
	return rad, nil
}

// LevelTolerance returns the run tolerance, defaulting when unset.
func (r *Run) LevelTolerance() float64 {
	if r.Tolerance > 0 {
		return r.Tolerance
	}
	return defaults.LevelTolerance
}

// Progenitors parses the recursive scout entries in declared order.
func (r *Run) Progenitors() ([]nuclide.Entry, error) {
	return parseEntries(r.Scout.Recursive)
}

// StaticProgenitors parses the static scout entries: nuclides resolved as
// declared, without exploring their progeny.
func (r *Run) StaticProgenitors() ([]nuclide.Entry, error) {
	return parseEntries(r.Scout.Static)
}

func parseEntries(raw []string) ([]nuclide.Entry, error) {
	var out []nuclide.Entry
	for _, s := range raw {
		if s == "" {
			continue
		}
		e, err := nuclide.ParseEntry(s)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Exclusions parses the scout exclusion list.
func (r *Run) Exclusions() ([]nuclide.ID, error) {
	var out []nuclide.ID
	for _, raw := range r.Scout.Exclusion {
		if raw == "" {
			continue
		}
		id, err := nuclide.Parse(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// LibraryCutoffs converts the [min, max] pairs to builder cutoffs.
func (r *Run) LibraryCutoffs() library.Cutoffs {
	var c library.Cutoffs
	c.EnergyMin, c.EnergyMax = bounds(r.Cutoffs.Energy)
	c.EmissionMin, c.EmissionMax = bounds(r.Cutoffs.EmissionProbability)
	c.HalfLifeSecMin, c.HalfLifeSecMax = bounds(r.Cutoffs.HalfLifeSec)
	return c
}

func bounds(pair []float64) (min, max float64) {
	if len(pair) > 0 {
		min = pair[0]
	}
	if len(pair) > 1 {
		max = pair[1]
	}
	return min, max
}
