/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package dataset defines the raw nuclear-data model: decay modes, optional
// energy values, level windows, and the decoded row types collected for a
// nuclide, together with the CSV decoding that produces them. Decoding is
// tolerant at the row level and strict at the payload level: a payload with
// a missing required column fails, a row with an unparseable field is
// dropped with a diagnostic.
package dataset
