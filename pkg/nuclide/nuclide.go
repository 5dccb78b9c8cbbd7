/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package nuclide

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/recurlib/recurlib/pkg/errors"
)

// ID identifies a nuclide by element symbol and mass number, with an optional
// isomer (metastable state) marker. The zero value is not a valid ID.
type ID struct {
	// Symbol is the element symbol in canonical case, e.g. "Ac", "Tc".
	Symbol string `json:"symbol" yaml:"symbol"`

	// Mass is the mass number, e.g. 225.
	Mass int `json:"mass" yaml:"mass"`

	// Isomer marks a metastable excited state, e.g. the "m" in Tc-99m.
	Isomer bool `json:"isomer,omitempty" yaml:"isomer,omitempty"`
}

// reID matches plain nuclide notation: element symbol, dash, mass number,
// optional isomer suffix. e.g. "Ac-225", "Tc-99m".
var reID = regexp.MustCompile(`^([A-Za-z]{1,3})-([0-9]{1,3})([mM]?)$`)

var titleCaser = cases.Title(language.Und)

// Parse parses plain nuclide notation such as "Ac-225" or "tc-99m". The
// element symbol is case-normalized.
func Parse(s string) (ID, error) {
	m := reID.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ID{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"invalid nuclide notation", map[string]any{"nuclide": s})
	}
	mass, err := strconv.Atoi(m[2])
	if err != nil || mass == 0 {
		return ID{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"invalid mass number", map[string]any{"nuclide": s})
	}
	return ID{
		Symbol: titleCaser.String(strings.ToLower(m[1])),
		Mass:   mass,
		Isomer: m[3] != "",
	}, nil
}

// MustParse parses plain nuclide notation and panics on error. Intended for
// tests and static tables.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns plain notation, e.g. "Ac-225" or "Tc-99m".
func (id ID) String() string {
	suffix := ""
	if id.Isomer {
		suffix = "m"
	}
	return fmt.Sprintf("%s-%d%s", id.Symbol, id.Mass, suffix)
}

// LiveChart returns the Live Chart of Nuclides API notation. The isomer
// marker is dropped, as the API addresses decay data by ground-state nuclide:
// "Ac-225" -> "225ac", "Tc-99m" -> "99tc".
func (id ID) LiveChart() string {
	return fmt.Sprintf("%d%s", id.Mass, strings.ToLower(id.Symbol))
}

// Code returns the compact uppercase code notation used in export files:
// "Ac-225" -> "AC225", "Lu-177m" -> "LU177M".
func (id ID) Code() string {
	suffix := ""
	if id.Isomer {
		suffix = "M"
	}
	return fmt.Sprintf("%s%d%s", strings.ToUpper(id.Symbol), id.Mass, suffix)
}

// Ground returns the ground-state identifier for this nuclide.
func (id ID) Ground() ID {
	id.Isomer = false
	return id
}

// WithIsomer returns the isomer identifier for this nuclide.
func (id ID) WithIsomer() ID {
	id.Isomer = true
	return id
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id.Symbol == "" && id.Mass == 0
}

// Equal reports whether two IDs identify the same nuclide state.
func (id ID) Equal(other ID) bool {
	return id == other
}

// MarshalYAML renders the ID as its plain notation.
func (id ID) MarshalYAML() (any, error) {
	return id.String(), nil
}

// MarshalText renders the ID as its plain notation, which also drives JSON
// encoding of IDs used as values and map keys.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses plain notation.
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
