// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reaction implements the polymorphic per-MT reaction variants a
// neutron can undergo: scattering cosine sampling, outgoing-energy laws,
// nu-bar sampling, elastic free-gas scattering, and fission neutron
// emission.
package reaction

import (
	"math"
	"sort"

	"github.com/pellegre/helios/internal/ace"
	"github.com/pellegre/helios/internal/rand"
)

// CosineTable samples a single scattering cosine, independent of incident
// energy — one per tabulated incident energy in a MuTable.
type CosineTable interface {
	Sample(r *rand.Random) float64
}

// IsotropicTable samples mu uniformly in [-1,1].
type IsotropicTable struct{}

func (IsotropicTable) Sample(r *rand.Random) float64 { return 1.0 - 2.0*r.Uniform() }

// EquiBinsTable samples mu from 32 equiprobable cosine bins.
type EquiBinsTable struct {
	Bins []float64 // 33 boundaries
}

func (t EquiBinsTable) Sample(r *rand.Random) float64 {
	chi := r.Uniform()
	pos := int(chi * 32)
	if pos > 31 {
		pos = 31
	}
	return t.Bins[pos] + (chi*32.0-float64(pos))*(t.Bins[pos+1]-t.Bins[pos])
}

// TabularTable samples mu from a tabulated PDF/CDF, histogram or
// linear-linear interpolated.
type TabularTable struct {
	Histogram bool
	Cosines   []float64
	PDF       []float64
	CDF       []float64
}

func (t TabularTable) Sample(r *rand.Random) float64 {
	chi := r.Uniform()
	idx := upperBound(t.CDF, chi) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(t.CDF)-2 {
		idx = len(t.CDF) - 2
	}
	if t.Histogram {
		return t.Cosines[idx] + (chi-t.CDF[idx])/t.PDF[idx]
	}
	g := (t.PDF[idx+1] - t.PDF[idx]) / (t.Cosines[idx+1] - t.Cosines[idx])
	if g == 0 {
		return t.Cosines[idx] + (chi-t.CDF[idx])/t.PDF[idx]
	}
	h := math.Sqrt(t.PDF[idx]*t.PDF[idx] + 2*g*(chi-t.CDF[idx]))
	return t.Cosines[idx] + (1/g)*(h-t.PDF[idx])
}

// buildCosineTable converts one ace.AngularTable into its CosineTable.
func buildCosineTable(at ace.AngularTable) CosineTable {
	switch at.Kind {
	case ace.AngularEquiBins:
		return EquiBinsTable{Bins: at.Bins}
	case ace.AngularTabularHistogram:
		return TabularTable{Histogram: true, Cosines: at.Bins, PDF: at.PDF, CDF: at.CDF}
	case ace.AngularTabularLinLin:
		return TabularTable{Histogram: false, Cosines: at.Bins, PDF: at.PDF, CDF: at.CDF}
	default:
		return IsotropicTable{}
	}
}

// MuSampler samples a scattering cosine given the particle's incident
// energy: a single interface with one implementation per angular data
// shape.
type MuSampler interface {
	SetCosine(energy float64, r *rand.Random) float64
}

// MuTable interpolates between two tabulated incident-energy cosine
// tables.
type MuTable struct {
	Energies []float64
	Tables   []CosineTable
}

func (m MuTable) SetCosine(energy float64, r *rand.Random) float64 {
	idx, factor := linearInterpolate(m.Energies, energy)
	chi := r.Uniform()
	if chi < factor && idx+1 < len(m.Tables) {
		return m.Tables[idx+1].Sample(r)
	}
	return m.Tables[idx].Sample(r)
}

// MuIsotropic always samples isotropically, used when the AND block
// carries no table for this reaction.
type MuIsotropic struct{}

func (MuIsotropic) SetCosine(energy float64, r *rand.Random) float64 {
	return 1.0 - 2.0*r.Uniform()
}

// MuNull never sets a cosine: the angle comes from inside a Law 44/61
// energy distribution instead.
type MuNull struct{}

func (MuNull) SetCosine(energy float64, r *rand.Random) float64 { return 0.0 }

// NewMuSampler builds the right MuSampler for a reaction's angular data:
// MuNull when the angle is sampled inside Law 44/61, MuIsotropic when no
// table at all is present, MuTable otherwise.
func NewMuSampler(ang *ace.AngularDistribution, angleInLaw bool) MuSampler {
	if angleInLaw {
		return MuNull{}
	}
	if ang == nil {
		return MuIsotropic{}
	}
	tables := make([]CosineTable, len(ang.Tables))
	for i, t := range ang.Tables {
		tables[i] = buildCosineTable(t)
	}
	return MuTable{Energies: ang.Energies, Tables: tables}
}

// linearInterpolate returns, for a sorted energy grid and a value, the
// bracketing index and the linear interpolation factor, clamped at the
// grid's edges.
func linearInterpolate(grid []float64, value float64) (idx int, factor float64) {
	if value <= grid[0] {
		return 0, 0.0
	}
	if value >= grid[len(grid)-1] {
		return len(grid) - 2, 1.0
	}
	i := upperBound(grid, value) - 1
	if i < 0 {
		i = 0
	}
	if i > len(grid)-2 {
		i = len(grid) - 2
	}
	return i, (value - grid[i]) / (grid[i+1] - grid[i])
}

func upperBound(sorted []float64, value float64) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] > value })
}
