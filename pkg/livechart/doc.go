/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package livechart implements the remote dataset provider backed by the
// IAEA-NDS Live Chart of Nuclides data service. One nuclide fetch issues a
// decay-radiation query per radiation type plus gamma-transition and
// level-scheme queries, and assembles the decoded payloads into a raw
// dataset.
package livechart
