/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/recurlib/recurlib/pkg/config"
	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/header"
	"github.com/recurlib/recurlib/pkg/nuclide"
	"github.com/recurlib/recurlib/pkg/resolver"
	"github.com/recurlib/recurlib/pkg/serializer"
)

func radiationFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "radiation",
		Aliases: []string{"r"},
		Usage:   "spectrum radiation type (alpha, gamma, beta minus)",
	}
}

func staticFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:  "static",
		Usage: "nuclide resolved as declared, progeny not explored (repeatable)",
	}
}

func excludeFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:    "exclude",
		Aliases: []string{"x"},
		Usage:   "nuclide whose progeny is not explored (repeatable)",
	}
}

func toleranceFlag() *cli.FloatFlag {
	return &cli.FloatFlag{
		Name:  "tolerance",
		Usage: "energy level reconciliation tolerance in keV (0 uses the default)",
	}
}

// lineageReport is the resolve command output document.
type lineageReport struct {
	Header      header.Header     `json:"header" yaml:"header"`
	Radiation   dataset.Radiation `json:"radiation" yaml:"radiation"`
	Progenitors []string          `json:"progenitors" yaml:"progenitors"`
	Nuclides    int               `json:"nuclides" yaml:"nuclides"`
	Lineage     *resolver.Lineage `json:"lineage" yaml:"lineage"`
	Levels      []levelEntry      `json:"levels" yaml:"levels"`
}

// levelEntry summarizes the reconciled levels of one resolved nuclide.
type levelEntry struct {
	Nuclide         nuclide.ID `json:"nuclide" yaml:"nuclide"`
	Levels          []float64  `json:"levels" yaml:"levels"`
	IsomerLevels    []float64  `json:"isomer_levels,omitempty" yaml:"isomer_levels,omitempty"`
	DataUnavailable bool       `json:"data_unavailable,omitempty" yaml:"data_unavailable,omitempty"`
}

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve the decay chains of the given progenitors",
		ArgsUsage: "[nuclide[;level,...] ...]",
		Description: "Walks the decay chains of the given progenitors and " +
			"reports the lineage tree with the reconciled energy levels " +
			"of every discovered nuclide. Progenitors come either from " +
			"command arguments (e.g. 'Ac-225' or 'Nb-92m;135.5') or from " +
			"a named dataset in the run configuration.",
		Flags: []cli.Flag{
			configFlag(), datasetFlag(), cacheFlag(),
			radiationFlag(), staticFlag(), excludeFlag(), toleranceFlag(),
			outputFlag(), formatFlag(), logLevelFlag(),
		},
		Action: runResolve,
	}
}

func runResolve(ctx context.Context, cmd *cli.Command) error {
	initLogging(cmd)

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	run, err := loadRun(cmd)
	if err != nil {
		return err
	}

	req, err := buildRequest(cmd, run)
	if err != nil {
		return err
	}

	provider, closeCache, err := newProvider(cmd, run)
	if err != nil {
		return err
	}
	defer closeCache() //nolint:errcheck

	g, lineage, err := resolver.New(provider).Resolve(ctx, req)
	if err != nil {
		return err
	}

	report := &lineageReport{
		Radiation: req.Radiation,
		Nuclides:  g.Len(),
		Lineage:   lineage,
	}
	report.Header.Init(header.KindLineage, header.APIVersion, name+"/"+version)
	for _, e := range append(req.Progenitors, req.Static...) {
		report.Progenitors = append(report.Progenitors, e.ID.String())
	}
	for _, id := range g.IDs() {
		rec := g.Get(id)
		report.Levels = append(report.Levels, levelEntry{
			Nuclide:         id,
			Levels:          rec.FlattenedLevels,
			IsomerLevels:    rec.IsomerLevels,
			DataUnavailable: rec.DataUnavailable,
		})
	}

	slog.Info("chains resolved",
		"progenitors", len(req.Progenitors),
		"nuclides", g.Len())

	out := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer closeSerializer(out)
	return out.Serialize(ctx, report)
}

// buildRequest assembles the resolution request from flags and the run
// configuration. Explicit flags win over the configuration.
func buildRequest(cmd *cli.Command, run *config.Run) (resolver.Request, error) {
	var req resolver.Request

	progenitors, err := parseEntries(cmd.Args().Slice())
	if err != nil {
		return req, err
	}
	if len(progenitors) == 0 {
		if progenitors, err = run.Progenitors(); err != nil {
			return req, err
		}
	}
	req.Progenitors = progenitors

	static, err := parseEntries(cmd.StringSlice("static"))
	if err != nil {
		return req, err
	}
	if len(static) == 0 {
		if static, err = run.StaticProgenitors(); err != nil {
			return req, err
		}
	}
	req.Static = static

	if len(req.Progenitors)+len(req.Static) == 0 {
		return req, fmt.Errorf("no progenitors: give nuclide arguments or a config dataset")
	}

	exclusions, err := parseIDs(cmd.StringSlice("exclude"))
	if err != nil {
		return req, err
	}
	if len(exclusions) == 0 {
		if exclusions, err = run.Exclusions(); err != nil {
			return req, err
		}
	}
	req.Exclusions = exclusions

	if cmd.IsSet("radiation") {
		rad, ok := dataset.ParseRadiation(cmd.String("radiation"))
		if !ok {
			return req, fmt.Errorf("unknown radiation type: %q", cmd.String("radiation"))
		}
		req.Radiation = rad
	} else {
		rad, err := run.Radiation()
		if err != nil {
			return req, err
		}
		req.Radiation = rad
	}

	req.Tolerance = cmd.Float("tolerance")
	if req.Tolerance == 0 {
		req.Tolerance = run.LevelTolerance()
	}
	return req, nil
}
