/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package store layers dataset retrieval: a run-local memory cache and a
// persisted SQLite cache in front of the remote data source. A nuclide with
// no upstream dataset is remembered with a not-found sentinel so repeat
// runs never re-fetch it.
package store
