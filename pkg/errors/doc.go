/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types with classification codes.
//
// Errors carry an ErrorCode for programmatic handling (for example the
// resolver treats NOT_FOUND from the dataset provider as an unresolved leaf
// rather than a failure), a human-readable message, an optional cause for
// errors.Is / errors.As chains, and optional context for diagnostics.
package errors
