/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package nuclide defines the nuclide identifier type and its notations.
//
// Three notations are supported:
//   - plain: "Ac-225", "Tc-99m" (user input and reports)
//   - Live Chart API: "225ac" (the isomer marker is dropped)
//   - code: "AC225M" (compact identifiers in export files)
package nuclide
