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

	"github.com/recurlib/recurlib/pkg/errors"
	"github.com/recurlib/recurlib/pkg/nuclide"
	"github.com/recurlib/recurlib/pkg/serializer"
)

// fetchReport summarizes a prefetch run.
type fetchReport struct {
	Fetched []string `json:"fetched" yaml:"fetched"`
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

func fetchCmd() *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Prefetch nuclide datasets into the local cache",
		ArgsUsage: "nuclide [nuclide ...]",
		Description: "Fetches the decay datasets of the given nuclides " +
			"from the IAEA-NDS Live Chart of Nuclides and stores them in " +
			"the local cache, so later resolution runs work offline. " +
			"Nuclides without a published dataset are reported, not " +
			"treated as failures.",
		Flags: []cli.Flag{
			cacheFlag(), outputFlag(), formatFlag(), logLevelFlag(),
		},
		Action: runFetch,
	}
}

func runFetch(ctx context.Context, cmd *cli.Command) error {
	initLogging(cmd)

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	ids, err := parseIDs(cmd.Args().Slice())
	if err != nil {
		return err
	}
	ids = dedupe(ids)
	if len(ids) == 0 {
		return fmt.Errorf("no nuclides given")
	}
	if cmd.String("cache") == "" {
		slog.Warn("no cache path set, fetched datasets are not persisted")
	}

	provider, closeCache, err := newProvider(cmd, nil)
	if err != nil {
		return err
	}
	defer closeCache() //nolint:errcheck

	report := &fetchReport{}
	for _, id := range ids {
		ds, err := provider.FetchRaw(ctx, id)
		switch {
		case err == nil:
			slog.Info("dataset fetched",
				"nuclide", id.String(),
				"decays", len(ds.Decays),
				"levels", len(ds.Levels),
				"radiations", len(ds.Radiations))
			report.Fetched = append(report.Fetched, id.String())
		case errors.IsCode(err, errors.ErrCodeNotFound):
			slog.Warn("no dataset published", "nuclide", id.String())
			report.Missing = append(report.Missing, id.String())
		default:
			return fmt.Errorf("fetch %s: %w", id, err)
		}
	}

	out := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer closeSerializer(out)
	return out.Serialize(ctx, report)
}

// dedupe drops repeated nuclide arguments, keeping the first occurrence.
func dedupe(ids []nuclide.ID) []nuclide.ID {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id.Code()] {
			continue
		}
		seen[id.Code()] = true
		out = append(out, id)
	}
	return out
}
