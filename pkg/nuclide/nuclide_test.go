/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package nuclide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{in: "Ac-225", want: ID{Symbol: "Ac", Mass: 225}},
		{in: "Tc-99m", want: ID{Symbol: "Tc", Mass: 99, Isomer: true}},
		{in: "tc-99M", want: ID{Symbol: "Tc", Mass: 99, Isomer: true}},
		{in: "  Pb-209 ", want: ID{Symbol: "Pb", Mass: 209}},
		{in: "U-235", want: ID{Symbol: "U", Mass: 235}},
		{in: "225ac", wantErr: true},
		{in: "Ac225", wantErr: true},
		{in: "Ac-", wantErr: true},
		{in: "", wantErr: true},
		{in: "Quux-12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotations(t *testing.T) {
	id := MustParse("Tc-99m")
	assert.Equal(t, "Tc-99m", id.String())
	assert.Equal(t, "99tc", id.LiveChart())
	assert.Equal(t, "TC99M", id.Code())

	g := id.Ground()
	assert.Equal(t, "Tc-99", g.String())
	assert.Equal(t, "99tc", g.LiveChart())
	assert.Equal(t, "TC99", g.Code())
	assert.Equal(t, id, g.WithIsomer())
}

func TestTextRoundTrip(t *testing.T) {
	id := MustParse("Lu-177m")
	b, err := id.MarshalText()
	require.NoError(t, err)

	var back ID
	require.NoError(t, back.UnmarshalText(b))
	assert.True(t, id.Equal(back))
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantID     string
		wantLevels []float64
		wantErr    bool
	}{
		{
			name:       "ground state implied",
			in:         "Mo-99",
			wantID:     "Mo-99",
			wantLevels: []float64{0},
		},
		{
			name:       "isomer with declared level",
			in:         "Nb-92m;135.5",
			wantID:     "Nb-92m",
			wantLevels: []float64{135.5},
		},
		{
			name:       "multiple declared levels",
			in:         "Tc-99m; 142.6836 ;181.09423",
			wantID:     "Tc-99m",
			wantLevels: []float64{142.6836, 181.09423},
		},
		{
			name:    "bad level literal",
			in:      "Mo-99;abc",
			wantErr: true,
		},
		{
			name:    "bad nuclide",
			in:      "99mo;0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntry(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID.String())
			assert.Equal(t, tt.wantLevels, got.Levels)
		})
	}
}
