// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

// CrossSection is a reaction's tabulated cross section with a FORTRAN-style
// 1-based start index into the isotope's energy grid. xs(i) is
// zero below the reaction's threshold.
type CrossSection struct {
	IE   int       // 1-based index into the energy grid where xs_data begins
	Data []float64 // non-zero cross section values, starting at grid index IE-1
}

// NewCrossSection builds a CrossSection. The zero shape (ie=1, no data)
// is the "null" cross section Add treats as the additive identity.
func NewCrossSection(ie int, data []float64) CrossSection {
	return CrossSection{IE: ie, Data: data}
}

// Size is the number of grid points this cross section spans, from its
// first non-zero entry to the end of the grid.
func (c CrossSection) Size() int {
	if len(c.Data) == 0 {
		return c.IE - 1
	}
	return len(c.Data) + c.IE - 1
}

// At returns xs[i] (0-based grid index): zero below the threshold,
// otherwise the tabulated value.
func (c CrossSection) At(i int) float64 {
	if i < c.IE-1 {
		return 0.0
	}
	j := i - (c.IE - 1)
	if j < 0 || j >= len(c.Data) {
		return 0.0
	}
	return c.Data[j]
}

// isNull reports the additive identity: an empty cross section whose
// (ie + len(data)) collapses to 1.
func (c CrossSection) isNull() bool {
	return c.IE+len(c.Data) == 1
}

// Add sums two cross sections defined over the union of their active
// ranges.
func Add(left, right CrossSection) CrossSection {
	if left.isNull() {
		return right
	}
	if right.isNull() {
		return left
	}
	leftEnd := left.IE + len(left.Data)
	rightEnd := right.IE + len(right.Data)
	ie := left.IE
	if right.IE < ie {
		ie = right.IE
	}
	size := leftEnd - ie
	if rightSize := rightEnd - ie; rightSize > size {
		size = rightSize
	}
	data := make([]float64, size)
	cl, cr := 0, 0
	e := ie
	for i := 0; i < size; i++ {
		if e >= left.IE && cl < len(left.Data) {
			data[i] += left.Data[cl]
			cl++
		}
		if e >= right.IE && cr < len(right.Data) {
			data[i] += right.Data[cr]
			cr++
		}
		e++
	}
	return CrossSection{IE: ie, Data: data}
}
