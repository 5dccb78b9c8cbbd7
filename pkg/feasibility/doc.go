/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package feasibility matches declared characteristic-energy windows
// against a nuclide's reconciled level list and derives per-decay-mode
// feasibility verdicts, including metastable-state detection.
package feasibility
