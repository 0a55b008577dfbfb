// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"github.com/pellegre/helios/internal/ace"
	"github.com/pellegre/helios/internal/rand"
)

// NuSampler samples the (integer) number of neutrons emitted by a fission
// event at a given incident energy.
type NuSampler interface {
	Sample(energy float64, r *rand.Random) int
}

// integerPart converts a continuous nu-bar into an integer neutron count
// by probabilistic rounding: floor(nu) neutrons always, plus one more with
// probability equal to the fractional remainder.
func integerPart(nubar float64, r *rand.Random) int {
	n := int(nubar)
	if r.Uniform() < nubar-float64(n) {
		n++
	}
	return n
}

// OneNu always returns exactly one neutron, used for non-fission reactions
// that still flow through the nu-sampling interface.
type OneNu struct{}

func (OneNu) Sample(energy float64, r *rand.Random) int { return 1 }

// FixedNu returns a constant multiplicity independent of energy, decoded
// from a reaction's |TYR| value in 1..4.
type FixedNu struct {
	N int
}

func (f FixedNu) Sample(energy float64, r *rand.Random) int { return f.N }

// PolynomialNu evaluates a polynomial in incident energy via Horner's
// method and rounds probabilistically.
type PolynomialNu struct {
	Coefficients []float64 // c[0] + c[1]*E + c[2]*E^2 + ...
}

func (p PolynomialNu) Sample(energy float64, r *rand.Random) int {
	nubar := 0.0
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		nubar = nubar*energy + p.Coefficients[i]
	}
	return integerPart(nubar, r)
}

// TabularNu linearly interpolates nu-bar on a tabulated incident-energy
// grid and rounds probabilistically.
type TabularNu struct {
	Energies []float64
	Nu       []float64
}

func (tn TabularNu) Sample(energy float64, r *rand.Random) int {
	idx, factor := linearInterpolate(tn.Energies, energy)
	nubar := tn.Nu[idx] + factor*(tn.Nu[idx+1]-tn.Nu[idx])
	return integerPart(nubar, r)
}

// PromptTotalNu wraps a total-nu sampler and a prompt-nu sampler: the
// total count is sampled, and the caller may separately query the prompt
// fraction for delayed-neutron bookkeeping.
type PromptTotalNu struct {
	Prompt NuSampler
	Total  NuSampler
}

func (p PromptTotalNu) Sample(energy float64, r *rand.Random) int {
	return p.Total.Sample(energy, r)
}

// NewNuSampler builds a NuSampler from a reaction's TYR code: the table's
// NU block for fission, the reaction's own inlined nu-bar table when
// |TYR| > 100, or the fixed multiplicity encoded directly.
func NewNuSampler(tyr ace.TyrDistribution, nu, inline *ace.NuData) NuSampler {
	if tyr.IsFission() {
		return buildNuFromData(nu)
	}
	if _, ok := tyr.InlineNuOffset(); ok && inline != nil {
		return nuDataSampler(inline)
	}
	if n, ok := tyr.FixedN(); ok {
		return FixedNu{N: n}
	}
	return OneNu{}
}

func buildNuFromData(nu *ace.NuData) NuSampler {
	if nu == nil {
		return OneNu{}
	}
	if nu.Prompt != nil {
		return PromptTotalNu{Prompt: nuDataSampler(nu.Prompt), Total: nuDataSampler(nu)}
	}
	return nuDataSampler(nu)
}

func nuDataSampler(nu *ace.NuData) NuSampler {
	if nu.Polynomial != nil {
		return PolynomialNu{Coefficients: nu.Polynomial}
	}
	return TabularNu{Energies: nu.TabularEnergies, Nu: nu.TabularNu}
}
