/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/recurlib/recurlib/pkg/config"
	"github.com/recurlib/recurlib/pkg/livechart"
	"github.com/recurlib/recurlib/pkg/nuclide"
	"github.com/recurlib/recurlib/pkg/serializer"
	"github.com/recurlib/recurlib/pkg/store"
)

// Flags are built fresh per command: cli/v3 flag instances carry parse
// state and must not be shared between commands.

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage: fmt.Sprintf("output format (%s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: cli.EnvVars("RECURLIB_FORMAT"),
		Value:   string(serializer.FormatYAML),
	}
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "run-configuration file path",
		Sources: cli.EnvVars("RECURLIB_CONFIG"),
	}
}

func datasetFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "dataset",
		Aliases: []string{"d"},
		Usage:   "named dataset run declared in the config file",
	}
}

func cacheFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "cache",
		Usage:   "dataset cache database path (empty disables persistence)",
		Sources: cli.EnvVars("RECURLIB_CACHE"),
	}
}

// outputFormat validates the format flag.
func outputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// loadRun resolves the effective run configuration: the named dataset from
// the config file when given, otherwise an empty run for flag-only use.
func loadRun(cmd *cli.Command) (*config.Run, error) {
	path := cmd.String("config")
	if path == "" {
		return &config.Run{}, nil
	}
	ds := cmd.String("dataset")
	if ds == "" {
		return nil, fmt.Errorf("--dataset is required with --config")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg.Dataset(ds)
}

// newProvider wires the dataset provider: live chart client behind memory
// and, when a cache path is set, persisted caching. The returned closer is
// non-nil when a cache was opened.
func newProvider(cmd *cli.Command, run *config.Run) (store.Provider, func() error, error) {
	cachePath := cmd.String("cache")
	if cachePath == "" && run != nil {
		cachePath = run.Cache.Path
	}

	remote := livechart.NewClient(livechart.WithUserAgent(name + "/" + version))
	if cachePath == "" {
		return store.NewCachedProvider(remote, nil), func() error { return nil }, nil
	}

	cache, err := store.OpenCache(cachePath)
	if err != nil {
		return nil, nil, err
	}
	return store.NewCachedProvider(remote, cache), cache.Close, nil
}

// closeSerializer releases the writer when it holds a file handle.
func closeSerializer(s serializer.Serializer) {
	if c, ok := s.(serializer.Closer); ok {
		_ = c.Close()
	}
}

// parseEntries parses progenitor declarations given as command arguments.
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

// parseIDs parses bare nuclide names.
func parseIDs(raw []string) ([]nuclide.ID, error) {
	var out []nuclide.ID
	for _, s := range raw {
		if s == "" {
			continue
		}
		id, err := nuclide.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
