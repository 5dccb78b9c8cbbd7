/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package dataset

import (
	"regexp"
	"strings"
)

// DecayMode is a decay-mode tag as carried in nuclear data files. The
// enumeration is closed: the canonical tags below plus cluster-emission
// variants written as an emitted nucleus (e.g. "14C", "24NE"). The literal
// tag is carried as data and dispatched by lookup.
type DecayMode string

const (
	// ModeAlpha is alpha emission.
	ModeAlpha DecayMode = "A"
	// ModeBetaMinus is beta-minus emission.
	ModeBetaMinus DecayMode = "B-"
	// ModeIT is isomeric transition.
	ModeIT DecayMode = "IT"
	// ModeSF is spontaneous fission.
	ModeSF DecayMode = "SF"
)

// reCluster matches cluster-emission tags: an emitted nucleus written as
// mass number followed by element symbol, e.g. "14C", "24NE", "34SI".
var reCluster = regexp.MustCompile(`^[0-9]{1,3}[A-Z]{1,2}$`)

// String returns the literal data-file tag.
func (m DecayMode) String() string {
	return string(m)
}

// IsCluster reports whether the mode is a cluster-emission variant.
func (m DecayMode) IsCluster() bool {
	return reCluster.MatchString(string(m))
}

// Known reports whether the tag belongs to the closed enumeration.
func (m DecayMode) Known() bool {
	switch m {
	case ModeAlpha, ModeBetaMinus, ModeIT, ModeSF:
		return true
	}
	return m.IsCluster()
}

// ParseDecayMode normalizes a data-file tag into a DecayMode. Returns false
// for tags outside the closed enumeration (e.g. "EC+B+", which produces no
// spectrum radiation followed here).
func ParseDecayMode(tag string) (DecayMode, bool) {
	m := DecayMode(strings.ToUpper(strings.TrimSpace(tag)))
	if !m.Known() {
		return "", false
	}
	return m, true
}

// Radiation is the spectrum radiation a library is built for.
type Radiation string

const (
	RadiationAlpha     Radiation = "alpha"
	RadiationGamma     Radiation = "gamma"
	RadiationBetaMinus Radiation = "beta minus"
)

// ParseRadiation validates and normalizes a spectrum-radiation name.
func ParseRadiation(s string) (Radiation, bool) {
	switch Radiation(strings.ToLower(strings.TrimSpace(s))) {
	case RadiationAlpha:
		return RadiationAlpha, true
	case RadiationGamma:
		return RadiationGamma, true
	case RadiationBetaMinus:
		return RadiationBetaMinus, true
	default:
		return "", false
	}
}

// Short returns the Live Chart rad_types parameter value: the first letter
// of each word ("beta minus" -> "bm", "gamma" -> "g", "alpha" -> "a").
func (r Radiation) Short() string {
	var b strings.Builder
	for _, w := range strings.Fields(string(r)) {
		b.WriteByte(w[0])
	}
	return b.String()
}

// FollowsMode reports whether a decay-mode edge should be expanded when
// resolving a chain for this spectrum radiation. Gamma accompanies every
// decay, so it follows all modes; alpha and beta minus follow only their own.
func (r Radiation) FollowsMode(m DecayMode) bool {
	switch r {
	case RadiationGamma:
		return true
	case RadiationAlpha:
		return m == ModeAlpha || m.IsCluster()
	case RadiationBetaMinus:
		return m == ModeBetaMinus
	default:
		return false
	}
}

// RadiationTypes are the Live Chart rad_types values queried when collecting
// decay datasets for a nuclide: alpha, beta plus, beta minus, Auger or
// conversion electron, gamma ray, X-ray.
var RadiationTypes = []string{"a", "bp", "bm", "e", "g", "x"}
