/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package library assembles the final radionuclide library from a resolved
// decay graph: per-nuclide radiation rows of the requested spectrum type,
// bounded by energy, emission-probability, and half-life cutoffs, pruned to
// reconciled levels and feasible decay modes, with isomer rows relabeled
// and numbered separately.
package library
