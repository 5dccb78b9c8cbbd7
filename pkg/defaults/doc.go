/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package defaults centralizes shared timeout, rate, and tolerance constants
// so components agree on bounds without importing each other.
package defaults
