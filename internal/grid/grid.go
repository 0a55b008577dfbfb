// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the unionized energy grid that backs every
// isotope's cross-section lookup: a MasterGrid holding the
// union of every loaded isotope's tabulated energies, and a ChildGrid per
// isotope mapping master indices down to that isotope's own grid without
// a fresh binary search on every lookup.
package grid

import (
	"math"
	"sort"
)

// ReserveGrid is the initial capacity reserved for a new MasterGrid.
const ReserveGrid = 10000

// MasterGrid is the unionized unique sorted energy grid plus a coarse
// logarithmic index for O(1)-amortized lookup.
type MasterGrid struct {
	grid []float64

	sizeCoarse  int
	deltaCoarse float64
	coarseGrid  []int

	children []*ChildGrid
}

// NewMasterGrid returns an empty MasterGrid, ready to receive pushed
// grids before Setup is called.
func NewMasterGrid() *MasterGrid {
	return &MasterGrid{grid: make([]float64, 0, ReserveGrid)}
}

// PushGrid appends values into the master grid's working set; Setup later
// sorts and deduplicates everything pushed.
func (m *MasterGrid) PushGrid(values []float64) {
	m.grid = append(m.grid, values...)
}

// Size returns the number of points in the unionized grid.
func (m *MasterGrid) Size() int { return len(m.grid) }

// At returns the energy at a master grid index.
func (m *MasterGrid) At(i int) float64 { return m.grid[i] }

// NewChildGrid registers an isotope's own energy grid as a child of this
// master grid. The returned ChildGrid is only usable after Setup.
func (m *MasterGrid) NewChildGrid(values []float64) *ChildGrid {
	c := &ChildGrid{master: m, grid: append([]float64(nil), values...)}
	m.children = append(m.children, c)
	return c
}

// Setup sorts and deduplicates the pushed grid values, builds each
// registered child's master-pointer table, and computes the coarse
// logarithmic index used to bound the binary search on every lookup.
func (m *MasterGrid) Setup() {
	sort.Float64s(m.grid)
	m.grid = uniqueSorted(m.grid)

	for _, c := range m.children {
		c.setupPointers()
	}

	m.sizeCoarse = 20 * len(m.grid)
	m.coarseGrid = make([]int, m.sizeCoarse)

	emin := m.grid[0]
	emax := m.grid[len(m.grid)-1]
	m.deltaCoarse = math.Log(emax/emin) / float64(m.sizeCoarse-1)

	i := 0
	for erg := emin; erg < emax && i < m.sizeCoarse; erg *= math.Exp(m.deltaCoarse) {
		m.coarseGrid[i] = upperBound(m.grid, erg) - 1
		i++
	}
	for ; i < m.sizeCoarse; i++ {
		m.coarseGrid[i] = len(m.grid) - 1
	}
}

// setIndex relocates idx so that grid[idx] <= value <= grid[idx+1],
// using the coarse index to bound the search instead of a full binary
// search over the whole grid.
func (m *MasterGrid) setIndex(idx int, value float64) int {
	minEnergy, maxEnergy := m.grid[0], m.grid[len(m.grid)-1]
	if value <= minEnergy {
		return 0
	}
	if value >= maxEnergy {
		return len(m.grid) - 2
	}

	low, high := m.grid[idx], m.grid[idx+1]
	if value >= low && value <= high {
		return idx
	}

	coarseIndex := int(math.Log(value/minEnergy) / m.deltaCoarse)
	begin := m.coarseGrid[coarseIndex]
	end := m.coarseGrid[coarseIndex+1] + 1
	if end > len(m.grid)-1 {
		end = len(m.grid) - 1
	}
	return upperBound(m.grid[begin:end+1], value) + begin - 1
}

// Interpolate relocates idx to bracket value and returns the new index
// and the linear interpolation factor within [grid[idx], grid[idx+1]].
func (m *MasterGrid) Interpolate(idx int, value float64) (newIndex int, factor float64) {
	minEnergy, maxEnergy := m.grid[0], m.grid[len(m.grid)-1]
	if value <= minEnergy {
		return 0, 0.0
	}
	if value >= maxEnergy {
		return len(m.grid) - 2, 1.0
	}
	newIndex = m.setIndex(idx, value)
	low, high := m.grid[newIndex], m.grid[newIndex+1]
	return newIndex, (value - low) / (high - low)
}

// Index is Interpolate starting from index 0, the entry point used when
// no prior index is cached.
func (m *MasterGrid) Index(value float64) (index int, factor float64) {
	return m.Interpolate(0, value)
}

// InterpolateValues re-tabulates (grid, values) onto this master grid's
// own energy points by building a temporary MasterGrid over grid and
// linearly interpolating values at every point of m.
func (m *MasterGrid) InterpolateValues(srcGrid, values []float64) []float64 {
	temp := NewMasterGrid()
	temp.PushGrid(srcGrid)
	temp.Setup()

	out := make([]float64, len(m.grid))
	idx := 0
	for i, e := range m.grid {
		var factor float64
		idx, factor = temp.Interpolate(idx, e)
		out[i] = factor*(values[idx+1]-values[idx]) + values[idx]
	}
	return out
}

// ChildGrid is one isotope's own energy grid, addressed through the
// shared MasterGrid index so repeated lookups amortize to O(1).
type ChildGrid struct {
	master         *MasterGrid
	grid           []float64
	masterPointers []int
}

// setupPointers computes, for every master grid point, the child grid
// index immediately below it.
func (c *ChildGrid) setupPointers() {
	c.masterPointers = make([]int, c.master.Size())
	minEnergy := c.grid[0]
	maxEnergy := c.grid[len(c.grid)-1]
	for i := 0; i < c.master.Size(); i++ {
		e := c.master.At(i)
		switch {
		case e <= minEnergy:
			c.masterPointers[i] = 0
		case e >= maxEnergy:
			c.masterPointers[i] = len(c.grid) - 2
		default:
			c.masterPointers[i] = upperBound(c.grid, e) - 1
		}
	}
}

// Size returns the number of points in this child's own energy grid.
func (c *ChildGrid) Size() int { return len(c.grid) }

// At returns the energy at a child grid index.
func (c *ChildGrid) At(i int) float64 { return c.grid[i] }

// Index maps a master-grid-relative lookup down to this child's own grid:
// masterIdx is relocated on the master grid first, then the
// precomputed master-to-child pointer gives the child bracket directly,
// without a second binary search.
func (c *ChildGrid) Index(masterIdx int, value float64) (childIndex int, factor float64) {
	minEnergy, maxEnergy := c.grid[0], c.grid[len(c.grid)-1]
	if value <= minEnergy {
		return 0, 0.0
	}
	if value >= maxEnergy {
		return len(c.grid) - 2, 1.0
	}

	masterIdx = c.master.setIndex(masterIdx, value)
	childIndex = c.masterPointers[masterIdx]
	low, high := c.grid[childIndex], c.grid[childIndex+1]
	return childIndex, (value - low) / (high - low)
}

// upperBound returns the index of the first element in sorted that
// compares greater than value, mirroring C++'s std::upper_bound.
func upperBound(sorted []float64, value float64) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] > value })
}

// uniqueSorted removes adjacent duplicates from an already-sorted slice.
func uniqueSorted(sorted []float64) []float64 {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
