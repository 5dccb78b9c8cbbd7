/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/recurlib/recurlib/pkg/config"
	"github.com/recurlib/recurlib/pkg/library"
	"github.com/recurlib/recurlib/pkg/resolver"
	"github.com/recurlib/recurlib/pkg/serializer"
)

func cutoffFlags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{
			Name:  "energy-min",
			Usage: "minimum radiation energy in keV",
		},
		&cli.FloatFlag{
			Name:  "energy-max",
			Usage: "maximum radiation energy in keV (0 means unbounded)",
		},
		&cli.FloatFlag{
			Name:  "emission-min",
			Usage: "minimum emission probability in percent",
		},
		&cli.FloatFlag{
			Name:  "emission-max",
			Usage: "maximum emission probability in percent (0 means unbounded)",
		},
		&cli.FloatFlag{
			Name:  "half-life-min",
			Usage: "minimum half-life in seconds",
		},
		&cli.FloatFlag{
			Name:  "half-life-max",
			Usage: "maximum half-life in seconds (0 means unbounded)",
		},
	}
}

func csvFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "csv",
		Usage: "also export the library rows as CSV to this path",
	}
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Build a radionuclide library from resolved decay chains",
		ArgsUsage: "[nuclide[;level,...] ...]",
		Description: "Resolves the decay chains of the given progenitors " +
			"and assembles the radionuclide library: radiation lines of " +
			"the requested type, bounded by the cutoffs, pruned to " +
			"reconciled energy levels and feasible decay modes, with " +
			"metastable rows attributed to the isomer.",
		Flags: append(cutoffFlags(),
			configFlag(), datasetFlag(), cacheFlag(),
			radiationFlag(), staticFlag(), excludeFlag(), toleranceFlag(),
			csvFlag(), outputFlag(), formatFlag(), logLevelFlag(),
		),
		Action: runBuild,
	}
}

func runBuild(ctx context.Context, cmd *cli.Command) error {
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

	g, _, err := resolver.New(provider).Resolve(ctx, req)
	if err != nil {
		return err
	}

	lib, err := library.NewBuilder(provider).Build(ctx, g, library.Options{
		Radiation: req.Radiation,
		Cutoffs:   buildCutoffs(cmd, run),
		Tolerance: req.Tolerance,
		Generator: name + "/" + version,
	})
	if err != nil {
		return err
	}

	slog.Info("library built",
		"radiation", lib.Radiation,
		"nuclides", g.Len(),
		"rows", len(lib.Rows))

	if path := cmd.String("csv"); path != "" {
		if err := exportCSV(lib, path); err != nil {
			return err
		}
	}

	out := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer closeSerializer(out)
	return out.Serialize(ctx, lib)
}

// buildCutoffs layers explicit cutoff flags over the run configuration.
func buildCutoffs(cmd *cli.Command, run *config.Run) library.Cutoffs {
	c := run.LibraryCutoffs()
	if cmd.IsSet("energy-min") {
		c.EnergyMin = cmd.Float("energy-min")
	}
	if cmd.IsSet("energy-max") {
		c.EnergyMax = cmd.Float("energy-max")
	}
	if cmd.IsSet("emission-min") {
		c.EmissionMin = cmd.Float("emission-min")
	}
	if cmd.IsSet("emission-max") {
		c.EmissionMax = cmd.Float("emission-max")
	}
	if cmd.IsSet("half-life-min") {
		c.HalfLifeSecMin = cmd.Float("half-life-min")
	}
	if cmd.IsSet("half-life-max") {
		c.HalfLifeSecMax = cmd.Float("half-life-max")
	}
	return c
}

func exportCSV(lib *library.Library, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	if err := lib.WriteCSV(f); err != nil {
		return err
	}
	return f.Close()
}
