/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/recurlib/recurlib/pkg/config"
	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/nuclide"
)

// parse runs a throwaway command so flag values get populated the same way
// they are in production, then hands the parsed command to fn.
func parse(t *testing.T, flags []cli.Flag, args []string, fn func(cmd *cli.Command)) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(_ context.Context, c *cli.Command) error {
			fn(c)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestInitLoggingAppliesFlagLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	parse(t, []cli.Flag{logLevelFlag()}, []string{"--log-level", "debug"},
		func(cmd *cli.Command) {
			initLogging(cmd)
			assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
		})

	parse(t, []cli.Flag{logLevelFlag()}, []string{"--log-level", "error"},
		func(cmd *cli.Command) {
			initLogging(cmd)
			assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
		})
}

func TestRootCommandWiring(t *testing.T) {
	root := rootCmd()
	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"resolve", "build", "fetch"}, names)
}

func TestParseEntries(t *testing.T) {
	entries, err := parseEntries([]string{"Ac-225", "Nb-92m;135.5", ""})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ac-225", entries[0].ID.String())
	assert.Equal(t, "Nb-92m", entries[1].ID.String())
	assert.Equal(t, []float64{135.5}, entries[1].Levels)

	_, err = parseEntries([]string{"not a nuclide"})
	assert.Error(t, err)
}

func TestDedupe(t *testing.T) {
	ids := []nuclide.ID{
		nuclide.MustParse("Ac-225"),
		nuclide.MustParse("Tc-99m"),
		nuclide.MustParse("Ac-225"),
	}
	out := dedupe(ids)
	require.Len(t, out, 2)
	assert.Equal(t, "Ac-225", out[0].String())
	assert.Equal(t, "Tc-99m", out[1].String())
}

func TestOutputFormat(t *testing.T) {
	parse(t, []cli.Flag{formatFlag()}, []string{"--format", "json"}, func(cmd *cli.Command) {
		f, err := outputFormat(cmd)
		require.NoError(t, err)
		assert.Equal(t, "json", string(f))
	})

	parse(t, []cli.Flag{formatFlag()}, []string{"--format", "xml"}, func(cmd *cli.Command) {
		_, err := outputFormat(cmd)
		assert.Error(t, err)
	})
}

func TestBuildRequestFromArgs(t *testing.T) {
	flags := []cli.Flag{radiationFlag(), staticFlag(), excludeFlag(), toleranceFlag()}
	args := []string{
		"--radiation", "alpha",
		"--exclude", "Fr-221",
		"--tolerance", "0.05",
		"Ac-225",
	}
	parse(t, flags, args, func(cmd *cli.Command) {
		req, err := buildRequest(cmd, &config.Run{})
		require.NoError(t, err)
		assert.Equal(t, dataset.RadiationAlpha, req.Radiation)
		assert.Equal(t, 0.05, req.Tolerance)
		require.Len(t, req.Progenitors, 1)
		assert.Equal(t, "Ac-225", req.Progenitors[0].ID.String())
		require.Len(t, req.Exclusions, 1)
		assert.Equal(t, "Fr-221", req.Exclusions[0].String())
	})
}

func TestBuildRequestFromRun(t *testing.T) {
	run := &config.Run{
		SpectrumRadiation: "gamma",
		Tolerance:         0.02,
		Scout: config.Scout{
			Recursive: []string{"Ac-225"},
			Static:    []string{"Nb-92m;135.5"},
			Exclusion: []string{"At-217"},
		},
	}
	parse(t, []cli.Flag{radiationFlag(), staticFlag(), excludeFlag(), toleranceFlag()}, nil,
		func(cmd *cli.Command) {
			req, err := buildRequest(cmd, run)
			require.NoError(t, err)
			assert.Equal(t, dataset.RadiationGamma, req.Radiation)
			assert.Equal(t, 0.02, req.Tolerance)
			require.Len(t, req.Progenitors, 1)
			require.Len(t, req.Static, 1)
			assert.Equal(t, "Nb-92m", req.Static[0].ID.String())
			assert.Equal(t, []float64{135.5}, req.Static[0].Levels)
			require.Len(t, req.Exclusions, 1)
			assert.Equal(t, "At-217", req.Exclusions[0].String())
		})
}

func TestBuildRequestRequiresProgenitors(t *testing.T) {
	parse(t, []cli.Flag{radiationFlag(), staticFlag(), excludeFlag(), toleranceFlag()}, nil,
		func(cmd *cli.Command) {
			_, err := buildRequest(cmd, &config.Run{})
			assert.ErrorContains(t, err, "no progenitors")
		})
}

func TestBuildRequestRejectsUnknownRadiation(t *testing.T) {
	parse(t, []cli.Flag{radiationFlag(), staticFlag(), excludeFlag(), toleranceFlag()},
		[]string{"--radiation", "neutrino", "Ac-225"},
		func(cmd *cli.Command) {
			_, err := buildRequest(cmd, &config.Run{})
			assert.ErrorContains(t, err, "unknown radiation")
		})
}

func TestBuildCutoffsFlagsOverrideRun(t *testing.T) {
	run := &config.Run{
		Cutoffs: config.Cutoffs{
			Energy:              []float64{10, 3000},
			EmissionProbability: []float64{0.5},
		},
	}
	parse(t, cutoffFlags(), []string{"--energy-min", "25", "--half-life-min", "60"},
		func(cmd *cli.Command) {
			c := buildCutoffs(cmd, run)
			assert.Equal(t, 25.0, c.EnergyMin)
			assert.Equal(t, 3000.0, c.EnergyMax)
			assert.Equal(t, 0.5, c.EmissionMin)
			assert.Equal(t, 60.0, c.HalfLifeSecMin)
		})
}

func TestLoadRunRequiresDatasetName(t *testing.T) {
	parse(t, []cli.Flag{configFlag(), datasetFlag()},
		[]string{"--config", "recurlib.yaml"},
		func(cmd *cli.Command) {
			_, err := loadRun(cmd)
			assert.ErrorContains(t, err, "--dataset is required")
		})
}
