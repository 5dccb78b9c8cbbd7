/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package nuclide

import (
	"strconv"
	"strings"

	"github.com/recurlib/recurlib/pkg/errors"
)

// Entry is a user-declared progenitor: a nuclide identifier with optional
// explicitly declared energy levels, written "Nb-92m;135.5" or "Mo-99".
// An entry without declared levels implies the ground state (0 keV).
type Entry struct {
	ID     ID
	Levels []float64
}

// ParseEntry parses a progenitor entry. Declared levels follow the nuclide
// name, separated by semicolons.
func ParseEntry(s string) (Entry, error) {
	parts := strings.Split(s, ";")
	id, err := Parse(parts[0])
	if err != nil {
		return Entry{}, err
	}

	levels := make([]float64, 0, len(parts)-1)
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Entry{}, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"invalid declared energy level", err,
				map[string]any{"nuclide": parts[0], "level": p})
		}
		levels = append(levels, v)
	}
	if len(levels) == 0 {
		// 0 keV: the ground state.
		levels = []float64{0}
	}
	return Entry{ID: id, Levels: levels}, nil
}
