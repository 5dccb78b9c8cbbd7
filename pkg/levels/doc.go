/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package levels reconciles energy-level observations from multiple noisy
// sources into one canonical list per nuclide, and derives levels from
// gamma-cascade transition data.
package levels
