/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package dataset

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Energy is an optional energy value in keV. Nuclear data files leave
// energies blank or mark them "X" when unmeasured, and suffix "+X" when a
// level sits an unknown offset above a measured base. A zero Energy is the
// missing state.
type Energy struct {
	Value float64
	Valid bool
}

// NewEnergy returns a present energy value.
func NewEnergy(v float64) Energy {
	return Energy{Value: v, Valid: true}
}

// ParseEnergy interprets a data-file energy literal. Blank and "X" yield a
// missing value. A trailing "+X" marker is stripped and the numeric base
// kept ("1687.0+X" -> 1687.0). Any other non-numeric literal is missing.
func ParseEnergy(s string) Energy {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "X") {
		return Energy{}
	}
	if i := strings.IndexAny(s, "+"); i > 0 && strings.EqualFold(s[i+1:], "X") {
		s = s[:i]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Energy{}
	}
	return Energy{Value: v, Valid: true}
}

// Or returns the value when present, otherwise def.
func (e Energy) Or(def float64) float64 {
	if e.Valid {
		return e.Value
	}
	return def
}

// MarshalJSON encodes a missing energy as null.
func (e Energy) MarshalJSON() ([]byte, error) {
	if !e.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(e.Value)
}

// UnmarshalJSON decodes null as missing.
func (e *Energy) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*e = Energy{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*e = Energy{Value: v, Valid: true}
	return nil
}

// Window is an inclusive energy interval [Low, High] around a reported
// daughter level, widened by the reported uncertainty. A window with a
// missing bound matches nothing.
type Window struct {
	Low  Energy `json:"low"`
	High Energy `json:"high"`
}

// NewWindow builds the interval [center-unc, center+unc].
func NewWindow(center, unc float64) Window {
	return Window{Low: NewEnergy(center - unc), High: NewEnergy(center + unc)}
}

// Contains reports whether v falls inside the interval. Both bounds must be
// present.
func (w Window) Contains(v float64) bool {
	return w.Low.Valid && w.High.Valid && w.Low.Value <= v && v <= w.High.Value
}

// Midpoint returns the interval center, false when a bound is missing.
func (w Window) Midpoint() (float64, bool) {
	if !w.Low.Valid || !w.High.Valid {
		return 0, false
	}
	return (w.Low.Value + w.High.Value) / 2, true
}
