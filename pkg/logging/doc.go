/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging utilities for RecurLib.
//
// It wraps the standard library slog package with project defaults: JSON
// output to stderr, module/version context on every record, LOG_LEVEL
// environment configuration, and source location tracking at debug level.
//
// Set the default logger early in main:
//
//	logging.SetDefaultStructuredLoggerWithLevel("recurlib", version, logLevel)
//	slog.Info("resolving", "progenitor", "Ac-225")
package logging
