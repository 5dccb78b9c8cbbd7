/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package library

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/recurlib/recurlib/pkg/errors"
)

var csvHeader = []string{
	"radionuclide",
	"radiation_number",
	"key_radiation",
	"energy",
	"energy_unc",
	"emission_probability",
	"emission_probability_unc",
	"energy_level",
	"jp",
	"half_life",
	"half_life_unc",
	"half_life_unit",
	"half_life_sec",
	"decay_mode",
	"decay_branching",
	"decay_branching_unc",
	"database",
}

// WriteCSV writes the library rows in CSV form, one line per radiation.
func (l *Library) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "writing csv header", err)
	}
	for _, r := range l.Rows {
		rec := []string{
			r.Nuclide,
			strconv.Itoa(r.Number),
			boolDigit(r.KeyRadiation),
			ftoa(r.Energy),
			ftoa(r.EnergyUnc),
			ftoa(r.EmissionProb),
			ftoa(r.EmissionUnc),
			ftoa(r.Level),
			r.SpinParity,
			ftoa(r.HalfLife.Value),
			ftoa(r.HalfLife.Unc),
			r.HalfLife.Unit,
			ftoa(r.HalfLife.Seconds),
			r.Mode.String(),
			ftoa(r.Branching),
			ftoa(r.BranchingUnc),
			r.Database,
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, "writing csv row", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "flushing csv output", err)
	}
	return nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
