/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the recurlib command line interface: decay chain
// resolution, radionuclide library assembly, and dataset prefetching.
package cli
