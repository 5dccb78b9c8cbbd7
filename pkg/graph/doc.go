/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package graph holds the radionuclide decay graph: per-nuclide records with
// parent/daughter adjacency, per-source level observations, and per-mode
// feasibility entries. The graph is the stable contract consumed by library
// assembly and reporting.
package graph
