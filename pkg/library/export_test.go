/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package library

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recurlib/recurlib/pkg/dataset"
)

func TestWriteCSV(t *testing.T) {
	lib := &Library{
		Radiation: dataset.RadiationGamma,
		Rows: []Row{
			{
				Nuclide:      "Tc-99m",
				Number:       1,
				KeyRadiation: true,
				Energy:       140.511,
				EmissionProb: 89.0,
				Level:        142.6836,
				SpinParity:   "1/2-",
				HalfLife:     dataset.HalfLife{Value: 6.0067, Unit: "h", Seconds: 21624},
				Mode:         dataset.ModeIT,
				Branching:    100,
				Database:     DefaultDatabase,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, lib.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "Tc-99m", records[1][0])
	assert.Equal(t, "1", records[1][1])
	assert.Equal(t, "1", records[1][2])
	assert.Equal(t, "140.511", records[1][3])
	assert.Equal(t, "IT", records[1][13])
	assert.Equal(t, DefaultDatabase, records[1][16])
}
