// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestMasterGridUnion(t *testing.T) {
	m := NewMasterGrid()
	m.PushGrid([]float64{1, 3, 5})
	m.PushGrid([]float64{2, 3, 4})
	m.Setup()

	if m.Size() != 5 {
		t.Fatalf("Size: got %d want 5", m.Size())
	}
	want := []float64{1, 2, 3, 4, 5}
	for i, w := range want {
		chk.Float64(t, "grid point", 1e-15, m.At(i), w)
	}
}

func TestMasterGridInterpolate(t *testing.T) {
	m := NewMasterGrid()
	m.PushGrid([]float64{1.0, 2.0, 4.0, 8.0})
	m.Setup()

	idx, factor := m.Index(3.0)
	if idx != 1 {
		t.Fatalf("index: got %d want 1", idx)
	}
	chk.Float64(t, "factor", 1e-12, factor, 0.5)

	idx, factor = m.Index(0.5)
	if idx != 0 || factor != 0.0 {
		t.Fatalf("below range: got idx=%d factor=%g", idx, factor)
	}

	idx, factor = m.Index(10.0)
	if idx != m.Size()-2 || factor != 1.0 {
		t.Fatalf("above range: got idx=%d factor=%g", idx, factor)
	}
}

func TestChildGridMapping(t *testing.T) {
	m := NewMasterGrid()
	m.PushGrid([]float64{1.0, 2.0, 3.0, 4.0, 5.0})
	m.PushGrid([]float64{1.0, 2.5, 4.0})
	child := m.NewChildGrid([]float64{1.0, 2.5, 4.0})
	m.Setup()

	midx, mfactor := m.Index(2.0)
	cidx, cfactor := child.Index(midx, 2.0)
	if cidx != 0 {
		t.Fatalf("child index: got %d want 0", cidx)
	}
	_ = mfactor
	want := (2.0 - 1.0) / (2.5 - 1.0)
	chk.Float64(t, "child factor", 1e-12, cfactor, want)
}

func TestMasterGridInterpolateValuesReproducesOwnPoints(t *testing.T) {
	m := NewMasterGrid()
	m.PushGrid([]float64{1.0, 2.0, 3.0})
	m.Setup()

	out := m.InterpolateValues([]float64{1.0, 2.0, 3.0}, []float64{10.0, 20.0, 30.0})
	want := []float64{10.0, 20.0, 30.0}
	for i := range want {
		chk.Float64(t, "reinterpolated", 1e-12, out[i], want[i])
	}
}

func TestUniqueSorted(t *testing.T) {
	out := uniqueSorted([]float64{1, 1, 2, 2, 2, 3})
	want := []float64{1, 2, 3}
	if len(out) != len(want) {
		t.Fatalf("len: got %d want %d", len(out), len(want))
	}
	for i := range want {
		chk.Float64(t, "unique", 1e-15, out[i], want[i])
	}
}
