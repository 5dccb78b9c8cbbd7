/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindLibrary),
		WithAPIVersion("recurlib/v1"),
		WithMetadata("dataset", "ac225_alpha"),
	)

	require.NotNil(t, h)
	assert.Equal(t, KindLibrary, h.Kind)
	assert.Equal(t, "recurlib/v1", h.APIVersion)
	assert.Equal(t, "ac225_alpha", h.Metadata["dataset"])
	assert.NotEmpty(t, h.ID)
	assert.False(t, h.Generated.IsZero())
}

func TestNew_UniqueIDs(t *testing.T) {
	assert.NotEqual(t, New().ID, New().ID)
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindLevels, "recurlib/v1", "recurlib")

	assert.Equal(t, KindLevels, h.Kind)
	assert.Equal(t, "recurlib", h.Metadata["generator"])
	assert.NotEmpty(t, h.ID)
}

func TestInitKeepsExistingMetadata(t *testing.T) {
	h := Header{Metadata: map[string]string{"dataset": "ac225_alpha"}}
	h.Init(KindLibrary, "recurlib/v1", "recurlib")

	assert.Equal(t, "ac225_alpha", h.Metadata["dataset"])
	assert.Equal(t, "recurlib", h.Metadata["generator"])
}

func TestKindIsValid(t *testing.T) {
	assert.True(t, KindLibrary.IsValid())
	assert.True(t, KindLineage.IsValid())
	assert.True(t, KindLevels.IsValid())
	assert.False(t, Kind("Snapshot").IsValid())
}
