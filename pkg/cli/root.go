/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/recurlib/recurlib/pkg/logging"
)

const (
	name           = "recurlib"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func logLevelFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug, info, warn, error)",
		Sources: cli.EnvVars("RECURLIB_LOG_LEVEL"),
		Value:   "info",
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Radionuclide library constructor",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `Recursively discovers the progeny of user-designated radionuclides by
following decay-mode edges through IAEA-NDS Live Chart datasets,
reconciles energy-level observations across sources, evaluates per-mode
feasibility, and assembles spectrum radiation libraries.`,
		Flags: []cli.Flag{logLevelFlag()},
		Commands: []*cli.Command{
			resolveCmd(),
			buildCmd(),
			fetchCmd(),
		},
	}
}

// initLogging configures the process-wide structured logger from the
// command's log-level flag.
func initLogging(cmd *cli.Command) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
}

// Execute runs the CLI. SIGINT and SIGTERM cancel the run context so
// in-flight fetches stop cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
