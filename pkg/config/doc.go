/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package config loads YAML run-configuration files: a template block plus
// named dataset runs inheriting from it, declaring progenitors, exclusions,
// spectrum radiation, cutoffs, and cache location.
package config
