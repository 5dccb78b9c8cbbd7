/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package resolver discovers radionuclide decay chains. Starting from a set
// of progenitors it follows decay-mode edges through datasets obtained from
// the store, building a converging DAG of nuclide records, then reconciles
// each record's energy levels and evaluates per-mode feasibility.
package resolver
