/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/recurlib/recurlib/pkg/errors"
	"github.com/recurlib/recurlib/pkg/nuclide"
)

// Column names as served by the upstream CSV payloads. Lookup is by header
// name, never by position, so upstream column reordering is harmless.
const (
	colDecay         = "decay"
	colParentEnergy  = "p_energy"
	colDaughterLevel = "daughter_level_energy"
	colDaughterSym   = "d_symbol"
	colDaughterZ     = "d_z"
	colDaughterN     = "d_n"
	colStartLevel    = "start_level_energy"
	colStartLevelUnc = "unc_sle"
	colEndLevel      = "end_level_energy"
	colEnergy        = "energy"
	colEnergyUncE    = "unc_e"
	colEnergyUncEn   = "unc_en"
	colSpinParity    = "jp"
	colIntensity     = "intensity"
	colIntensityUnc  = "unc_i"
	colHalfLife      = "half_life"
	colHalfLifeUnc   = "unc_hl"
	colHalfLifeUnit  = "unit_hl"
	colHalfLifeSec   = "half_life_sec"
	colBranching     = "decay_%"
	colBranchingUnc  = "unc_d"
)

// row is one CSV record addressed by header name.
type row struct {
	header map[string]int
	fields []string
}

func (r row) get(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r row) float(col string) (float64, bool) {
	v, err := strconv.ParseFloat(r.get(col), 64)
	return v, err == nil
}

// floatOr returns the column value or def when absent or non-numeric.
func (r row) floatOr(col string, def float64) float64 {
	if v, ok := r.float(col); ok {
		return v
	}
	return def
}

// firstFloat returns the first present numeric column of the given names.
func (r row) firstFloat(cols ...string) (float64, bool) {
	for _, c := range cols {
		if v, ok := r.float(c); ok {
			return v, true
		}
	}
	return 0, false
}

// decode streams CSV records through fn after validating that every column
// in required appears in the header.
func decode(r io.Reader, required []string, fn func(row)) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err == io.EOF {
		return errors.New(errors.ErrCodeMalformedData, "empty csv payload")
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeMalformedData, "reading csv header", err)
	}
	header := make(map[string]int, len(head))
	for i, name := range head {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range required {
		if _, ok := header[col]; !ok {
			return errors.NewWithContext(errors.ErrCodeMalformedData,
				"csv payload missing required column",
				map[string]any{"column": col})
		}
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			slog.Debug("skipping malformed csv record", "line", line, "error", err)
			continue
		}
		fn(row{header: header, fields: rec})
	}
}

// DecodeDecays parses decay-mode records. Rows whose mode tag is outside the
// recognized enumeration are dropped with a diagnostic, never failed on.
func DecodeDecays(r io.Reader) ([]DecayRow, error) {
	var rows []DecayRow
	err := decode(r, []string{colDecay}, func(rec row) {
		tag := rec.get(colDecay)
		mode, ok := ParseDecayMode(tag)
		if !ok {
			if tag != "" {
				slog.Debug("dropping unrecognized decay mode", "mode", tag)
			}
			return
		}
		rows = append(rows, DecayRow{
			Mode:          mode,
			Daughter:      daughterID(rec),
			ParentLevel:   ParseEnergy(rec.get(colParentEnergy)),
			DaughterLevel: ParseEnergy(rec.get(colDaughterLevel)),
		})
	})
	return rows, err
}

// daughterID reconstructs the daughter nuclide from symbol, proton count and
// neutron count. Zero when the columns are absent or unparseable.
func daughterID(rec row) nuclide.ID {
	sym := rec.get(colDaughterSym)
	z, zok := rec.float(colDaughterZ)
	n, nok := rec.float(colDaughterN)
	if sym == "" || !zok || !nok {
		return nuclide.ID{}
	}
	id, err := nuclide.Parse(fmt.Sprintf("%s-%d", sym, int(z)+int(n)))
	if err != nil {
		return nuclide.ID{}
	}
	return id
}

// DecodeGammas parses gamma transition records. Rows without numeric start
// and end levels are dropped.
func DecodeGammas(r io.Reader) ([]GammaRow, error) {
	var rows []GammaRow
	err := decode(r, []string{colStartLevel, colEndLevel}, func(rec row) {
		start, sok := rec.float(colStartLevel)
		end, eok := rec.float(colEndLevel)
		if !sok || !eok {
			return
		}
		rows = append(rows, GammaRow{
			StartLevel:    start,
			StartLevelUnc: rec.floatOr(colStartLevelUnc, 0),
			EndLevel:      end,
		})
	})
	return rows, err
}

// DecodeLevels parses declared energy levels with the decay modes reported
// from each. Unrecognized mode tags are dropped per row, not per file.
func DecodeLevels(r io.Reader) ([]LevelRow, error) {
	var rows []LevelRow
	err := decode(r, []string{colEnergy}, func(rec row) {
		e, ok := rec.float(colEnergy)
		if !ok {
			return
		}
		var modes []DecayMode
		for _, col := range []string{"decay_1", "decay_2", "decay_3"} {
			if m, ok := ParseDecayMode(rec.get(col)); ok {
				modes = append(modes, m)
			}
		}
		rows = append(rows, LevelRow{
			Energy:     e,
			EnergyUnc:  rec.floatOr(colEnergyUncE, 0),
			SpinParity: rec.get(colSpinParity),
			Modes:      modes,
		})
	})
	return rows, err
}

// DecodeRadiations parses emitted-radiation records of one radiation type.
// The energy literal may carry an unknown-offset marker and is kept as an
// optional value rather than dropped.
func DecodeRadiations(r io.Reader, radType string) ([]RadiationRow, error) {
	var rows []RadiationRow
	err := decode(r, []string{colEnergy}, func(rec row) {
		mode, _ := ParseDecayMode(rec.get(colDecay))
		hlVal, _ := rec.float(colHalfLife)
		hlSec, _ := rec.firstFloat(colHalfLifeSec)
		rows = append(rows, RadiationRow{
			Type:         radType,
			Energy:       ParseEnergy(rec.get(colEnergy)),
			EnergyUnc:    ParseEnergy(firstNonEmpty(rec.get(colEnergyUncEn), rec.get(colEnergyUncE))),
			EmissionProb: rec.floatOr(colIntensity, 0),
			EmissionUnc:  rec.floatOr(colIntensityUnc, 0),
			ParentLevel:  ParseEnergy(rec.get(colParentEnergy)),
			SpinParity:   rec.get(colSpinParity),
			HalfLife: HalfLife{
				Value:   hlVal,
				Unc:     rec.floatOr(colHalfLifeUnc, 0),
				Unit:    rec.get(colHalfLifeUnit),
				Seconds: hlSec,
			},
			Mode:         mode,
			Branching:    rec.floatOr(colBranching, 0),
			BranchingUnc: rec.floatOr(colBranchingUnc, 0),
		})
	})
	return rows, err
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
