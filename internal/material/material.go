// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material composes isotopes into the mean-free-path and
// isotope-sampling API the transport loop needs at collision time: a
// named composition of sorted constituents, built once at setup and read
// concurrently afterward.
package material

import (
	"sort"

	"github.com/pellegre/helios/internal/isotope"
	"github.com/pellegre/helios/internal/rand"
)

// Constituent is one isotope's pre-multiplied atom-fraction × atomic
// density contribution to a material.
type Constituent struct {
	Isotope  *isotope.Isotope
	Fraction float64 // atom fraction
	Weight   float64 // fraction * atomic density, precomputed at New
}

// Material is immutable after New returns: a fixed,
// deterministically ordered list of isotope weights.
type Material struct {
	Name     string
	Density  float64 // atomic density, atoms/barn-cm
	Isotopes []Constituent
}

// New builds a Material from a name, atomic density and a set of
// (isotope, atom-fraction) pairs, storing the constituents sorted by
// isotope name for reproducible iteration order.
func New(name string, density float64, fractions map[*isotope.Isotope]float64) *Material {
	m := &Material{Name: name, Density: density}
	for iso, frac := range fractions {
		m.Isotopes = append(m.Isotopes, Constituent{Isotope: iso, Fraction: frac, Weight: frac * density})
	}
	sort.Slice(m.Isotopes, func(i, j int) bool {
		return m.Isotopes[i].Isotope.Name < m.Isotopes[j].Isotope.Name
	})
	return m
}

// MeanFreePath returns 1/Σᵢ nᵢ·σ_total,ᵢ(E), and the updated
// per-isotope master-grid hints the caller should carry forward (one per
// constituent, in the same order as m.Isotopes).
func (m *Material) MeanFreePath(masterHints []int, energy float64) (mfp float64, nextHints []int) {
	total := 0.0
	nextHints = make([]int, len(m.Isotopes))
	for i, c := range m.Isotopes {
		hint := 0
		if i < len(masterHints) {
			hint = masterHints[i]
		}
		xs, next := c.Isotope.TotalXS(hint, energy)
		total += c.Weight * xs
		nextHints[i] = next
	}
	if total <= 0 {
		return 0, nextHints
	}
	return 1.0 / total, nextHints
}

// SampleIsotope picks a constituent isotope proportional to nᵢ·σ_total,ᵢ(E)
//, returning the chosen isotope and the updated master-grid
// hints.
func (m *Material) SampleIsotope(masterHints []int, energy float64, r *rand.Random) (chosen *isotope.Isotope, nextHints []int) {
	weights := make([]float64, len(m.Isotopes))
	nextHints = make([]int, len(m.Isotopes))
	total := 0.0
	for i, c := range m.Isotopes {
		hint := 0
		if i < len(masterHints) {
			hint = masterHints[i]
		}
		xs, next := c.Isotope.TotalXS(hint, energy)
		weights[i] = c.Weight * xs
		nextHints[i] = next
		total += weights[i]
	}
	if total <= 0 {
		return nil, nextHints
	}
	target := r.Uniform() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if target <= cum {
			return m.Isotopes[i].Isotope, nextHints
		}
	}
	return m.Isotopes[len(m.Isotopes)-1].Isotope, nextHints
}
