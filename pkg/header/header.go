/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package header

import (
	"time"

	"github.com/google/uuid"
)

// Kind represents the type of a RecurLib document.
type Kind string

// Valid Kind constants for all RecurLib document types.
const (
	KindLibrary Kind = "RadionuclideLibrary"
	KindLineage Kind = "Lineage"
	KindLevels  Kind = "LevelReport"
)

// APIVersion is the current document schema version.
const APIVersion = "recurlib/v1"

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindLibrary, KindLineage, KindLevels:
		return true
	default:
		return false
	}
}

// Header contains metadata and versioning information for RecurLib documents.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion identifies the schema version for the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// ID is a unique identifier for the generating run.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Generated is the document creation time in UTC.
	Generated time.Time `json:"generated,omitempty" yaml:"generated,omitempty"`

	// Metadata contains key-value pairs with metadata about the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// WithMetadata returns an Option that adds a metadata key-value pair.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// New creates a Header with a fresh run ID and generation timestamp, then
// applies the provided options.
func New(opts ...Option) *Header {
	h := &Header{
		ID:        uuid.NewString(),
		Generated: time.Now().UTC(),
		Metadata:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init populates an embedded Header in place, preserving existing metadata.
func (h *Header) Init(kind Kind, apiVersion, generator string) {
	n := New(
		WithKind(kind),
		WithAPIVersion(apiVersion),
		WithMetadata("generator", generator),
	)
	for k, v := range h.Metadata {
		if _, ok := n.Metadata[k]; !ok {
			n.Metadata[k] = v
		}
	}
	*h = *n
}
