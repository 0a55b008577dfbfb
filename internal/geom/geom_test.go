// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/pellegre/helios/internal/material"
	"github.com/pellegre/helios/internal/vec3"
)

func TestPlaneNormalSenseAndIntersect(t *testing.T) {
	p := NewPlaneNormal(1, FlagNone, AxisX, 5.0)
	if !p.Sense(vec3.Vec3{6, 0, 0}) {
		t.Fatalf("expected positive sense past the plane")
	}
	if p.Sense(vec3.Vec3{4, 0, 0}) {
		t.Fatalf("expected negative sense before the plane")
	}

	d, hit := p.Intersect(vec3.Vec3{0, 0, 0}, vec3.Vec3{1, 0, 0}, false)
	if !hit {
		t.Fatalf("expected a hit heading toward the plane")
	}
	chk.Float64(t, "distance", 1e-12, d, 5.0)

	_, hit = p.Intersect(vec3.Vec3{0, 0, 0}, vec3.Vec3{-1, 0, 0}, false)
	if hit {
		t.Fatalf("expected a miss heading away from the plane")
	}
}

func TestPlaneNormalTransformate(t *testing.T) {
	p := NewPlaneNormal(1, FlagNone, AxisZ, 2.0)
	moved := p.Transformate(Transformation{Translation: vec3.Vec3{0, 0, 3}})
	mp := moved.(*PlaneNormal)
	chk.Float64(t, "coordinate", 1e-12, mp.Coordinate, 5.0)
}

func TestCylinderOnAxisOriginIntersect(t *testing.T) {
	c := NewCylinderOnAxis(2, FlagNone, AxisZ, 1.0, vec3.Vec3{})
	if !c.Sense(vec3.Vec3{2, 0, 0}) {
		t.Fatalf("point outside radius should have positive sense")
	}
	if c.Sense(vec3.Vec3{0.5, 0, 0}) {
		t.Fatalf("point inside radius should have negative sense")
	}

	d, hit := c.Intersect(vec3.Vec3{0, 0, 0}, vec3.Vec3{1, 0, 0}, false)
	if !hit {
		t.Fatalf("expected intersection with the cylinder wall")
	}
	chk.Float64(t, "distance", 1e-12, d, 1.0)
}

func TestSphereOnOriginIntersect(t *testing.T) {
	s := NewSphereOnOrigin(3, FlagNone, vec3.Vec3{0, 0, 0}, 2.0)
	d, hit := s.Intersect(vec3.Vec3{0, 0, 0}, vec3.Vec3{0, 1, 0}, false)
	if !hit {
		t.Fatalf("expected intersection with the sphere")
	}
	chk.Float64(t, "distance", 1e-12, d, 2.0)

	n := s.Normal(vec3.Vec3{2, 0, 0})
	chk.Float64(t, "normal x", 1e-12, n[0], 1.0)
}

// box builds a simple axis-aligned rectangular cell: -1 < x < 1, -1 < y <
// 1, -1 < z < 1 as the conjunction of six half-space planes.
func box() *Cell {
	xm := NewPlaneNormal(1, FlagNone, AxisX, -1)
	xp := NewPlaneNormal(2, FlagNone, AxisX, 1)
	ym := NewPlaneNormal(3, FlagNone, AxisY, -1)
	yp := NewPlaneNormal(4, FlagNone, AxisY, 1)
	zm := NewPlaneNormal(5, FlagNone, AxisZ, -1)
	zp := NewPlaneNormal(6, FlagNone, AxisZ, 1)
	return NewCell(1, []Operand{
		{Surface: xm, Sense: true},
		{Surface: xp, Sense: false},
		{Surface: ym, Sense: true},
		{Surface: yp, Sense: false},
		{Surface: zm, Sense: true},
		{Surface: zp, Sense: false},
	}, false, false)
}

func TestCellFindCellRegular(t *testing.T) {
	c := box()
	if got := c.FindCell(vec3.Vec3{0, 0, 0}, nil); got != c {
		t.Fatalf("expected the center point to be inside the box")
	}
	if got := c.FindCell(vec3.Vec3{5, 0, 0}, nil); got != nil {
		t.Fatalf("expected a point outside the box to find nothing, got %v", got)
	}
}

func TestCellFindCellNegated(t *testing.T) {
	c := box()
	c.Negated = true
	// Outside the original box, the negated cell (its complement) claims the point.
	if got := c.FindCell(vec3.Vec3{5, 0, 0}, nil); got != c {
		t.Fatalf("expected the negated cell to claim a point outside the original box")
	}
	// Inside the original box, the complement does not claim it.
	if got := c.FindCell(vec3.Vec3{0, 0, 0}, nil); got != nil {
		t.Fatalf("expected the negated cell to yield nothing inside the original box")
	}
}

func TestUniverseFindCellFirstMatchWins(t *testing.T) {
	u := &Universe{UserID: 0}
	u.AddCell(box())
	got := u.FindCell(vec3.Vec3{0, 0, 0}, nil)
	if got == nil {
		t.Fatalf("expected the universe to find the box cell")
	}
}

func TestGeometryBuildAndFindCell(t *testing.T) {
	surfaceDefs := []SurfaceDef{
		{UserID: 1, Template: NewPlaneNormal(1, FlagNone, AxisX, -1)},
		{UserID: 2, Template: NewPlaneNormal(2, FlagNone, AxisX, 1)},
		{UserID: 3, Template: NewSphereOnOrigin(3, FlagNone, vec3.Vec3{}, 10)},
	}
	cellDefs := []CellDef{
		{
			UserID:     1,
			UniverseID: 0,
			Operands: []OperandDef{
				{SurfaceUserID: 1, Negative: false},
				{SurfaceUserID: 2, Negative: true},
			},
			MaterialID: 7,
		},
		{
			UserID:     2,
			UniverseID: 0,
			Operands: []OperandDef{
				{SurfaceUserID: 2, Negative: false},
				{SurfaceUserID: 3, Negative: true},
			},
			MaterialID: 8,
		},
	}
	g := New()
	if err := g.Build(surfaceDefs, cellDefs, nil, 0); err != nil {
		t.Fatalf("Build: %v", err)
	}
	c, err := g.FindCell(vec3.Vec3{0, 0, 0})
	if err != nil {
		t.Fatalf("FindCell: %v", err)
	}
	if c.UserID != 1 {
		t.Fatalf("expected cell 1, got %d", c.UserID)
	}
	c2, err := g.FindCell(vec3.Vec3{5, 0, 0})
	if err != nil {
		t.Fatalf("FindCell: %v", err)
	}
	if c2.UserID != 2 {
		t.Fatalf("expected cell 2, got %d", c2.UserID)
	}
	if _, err := g.FindCell(vec3.Vec3{100, 0, 0}); err == nil {
		t.Fatalf("expected an error outside the modeled space")
	}
}

// TestLatticeFindCellPinSelection drives a 3x3
// x-y lattice, pitch 1.26 cm, pin universes {1,1,1,1,2,1,1,1,1} in
// row-major order with universe 2 at the center. Origin is offset by one
// pitch in both axes so lattice index (1,1) — the center pin — sits at
// the coordinate origin.
func TestLatticeFindCellPinSelection(t *testing.T) {
	pin := func(userID int) *Universe {
		u := &Universe{UserID: userID}
		u.AddCell(NewCell(userID, nil, false, false))
		return u
	}
	u1, u2 := pin(1), pin(2)

	lat := &Lattice{
		UserID: 10,
		AxisA:  AxisX,
		AxisB:  AxisY,
		NX:     3,
		NY:     3,
		PitchA: 1.26,
		PitchB: 1.26,
		Origin: vec3.Vec3{-1.26, -1.26, 0},
		Fills:  []*Universe{u1, u1, u1, u1, u2, u1, u1, u1, u1},
	}

	cellDefs := []CellDef{
		{UserID: 100, UniverseID: 0, FillUniverseID: 10},
	}

	g := New()
	if err := g.Build(nil, cellDefs, []*Lattice{lat}, 0); err != nil {
		t.Fatalf("Build: %v", err)
	}

	c, err := g.FindCell(vec3.Vec3{0, 0, 0})
	if err != nil {
		t.Fatalf("FindCell: %v", err)
	}
	if c.UserID != 2 {
		t.Fatalf("expected (0,0,0) to resolve into universe 2's pin cell, got %d", c.UserID)
	}

	c2, err := g.FindCell(vec3.Vec3{1.26, 0, 0})
	if err != nil {
		t.Fatalf("FindCell: %v", err)
	}
	if c2.UserID != 1 {
		t.Fatalf("expected (1.26,0,0) to resolve into universe 1's pin cell, got %d", c2.UserID)
	}
}

func TestGeometrySetupMaterialsRejectsUnresolved(t *testing.T) {
	g := New()
	g.cells = []*Cell{{UserID: 1, MaterialID: 99}}
	if err := g.SetupMaterials(map[int]*material.Material{}); err == nil {
		t.Fatalf("expected an error for an unresolved material id")
	}
}

// TestLatticeClonesPositionSensitivePins fills a 2x1 lattice with a pin
// universe whose cell carries its own bounding cylinder at the pin
// center: the expansion must translate a fresh clone of that cylinder to
// each lattice position rather than sharing the template's coordinates.
func TestLatticeClonesPositionSensitivePins(t *testing.T) {
	pin := &Universe{UserID: 5}
	fuel := NewCell(50, []Operand{
		{Surface: NewCylinderOnAxis(500, FlagNone, AxisZ, 0.4, vec3.Vec3{}), Sense: false},
	}, false, false)
	pin.AddCell(fuel)
	gap := NewCell(51, []Operand{
		{Surface: fuel.Operands[0].Surface, Sense: true},
	}, false, false)
	pin.AddCell(gap)

	lat := &Lattice{
		UserID: 10,
		AxisA:  AxisX,
		AxisB:  AxisY,
		NX:     2,
		NY:     1,
		PitchA: 2.0,
		PitchB: 2.0,
		Fills:  []*Universe{pin, pin},
	}

	cellDefs := []CellDef{{UserID: 100, UniverseID: 0, FillUniverseID: 10}}
	g := New()
	if err := g.Build(nil, cellDefs, []*Lattice{lat}, 0); err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Position (0,0,0) sits at lattice index 0's center, inside that
	// clone's fuel cylinder; (2,0,0) is index 1's center, which must
	// resolve against a cylinder translated to x=2, not the template.
	for _, x := range []float64{0.0, 2.0} {
		c, err := g.FindCell(vec3.Vec3{x, 0, 0})
		if err != nil {
			t.Fatalf("FindCell at x=%g: %v", x, err)
		}
		if c.UserID != 50 {
			t.Fatalf("x=%g: expected the fuel cell 50, got %d", x, c.UserID)
		}
	}
	// Between the two pin centers the point falls outside both cylinders.
	c, err := g.FindCell(vec3.Vec3{1.0, 0, 0})
	if err != nil {
		t.Fatalf("FindCell between pins: %v", err)
	}
	if c.UserID != 51 {
		t.Fatalf("between pins: expected the gap cell 51, got %d", c.UserID)
	}
}

// TestBuildAppliesCellTransformation places the same sphere template in
// two universes, the inner one reached through a translated fill cell:
// the clone registered for the inner universe must carry the accumulated
// translation.
func TestBuildAppliesCellTransformation(t *testing.T) {
	surfaceDefs := []SurfaceDef{
		{UserID: 1, Template: NewSphereOnOrigin(1, FlagNone, vec3.Vec3{}, 10)},
		{UserID: 2, Template: NewSphereOnOrigin(2, FlagNone, vec3.Vec3{}, 1)},
	}
	cellDefs := []CellDef{
		{
			UserID:     1,
			UniverseID: 0,
			Operands:   []OperandDef{{SurfaceUserID: 1, Negative: true}},
			Transform:  Transformation{Translation: vec3.Vec3{3, 0, 0}},
			FillUniverseID: 7,
		},
		{
			UserID:     2,
			UniverseID: 7,
			Operands:   []OperandDef{{SurfaceUserID: 2, Negative: true}},
			MaterialID: 9,
		},
		{
			UserID:     3,
			UniverseID: 7,
			Operands:   []OperandDef{{SurfaceUserID: 2, Negative: false}},
			MaterialID: 9,
		},
	}
	g := New()
	if err := g.Build(surfaceDefs, cellDefs, nil, 0); err != nil {
		t.Fatalf("Build: %v", err)
	}

	// (3,0,0) is the translated center of the unit sphere: inside cell 2.
	c, err := g.FindCell(vec3.Vec3{3, 0, 0})
	if err != nil {
		t.Fatalf("FindCell: %v", err)
	}
	if c.UserID != 2 {
		t.Fatalf("expected the inner translated cell 2, got %d", c.UserID)
	}
	// The untranslated origin is outside the unit sphere's clone.
	c, err = g.FindCell(vec3.Vec3{0, 0, 0})
	if err != nil {
		t.Fatalf("FindCell: %v", err)
	}
	if c.UserID != 3 {
		t.Fatalf("expected the complement cell 3 at the origin, got %d", c.UserID)
	}
}

func TestBuildRejectsCellFillingItsOwnUniverse(t *testing.T) {
	cellDefs := []CellDef{
		{UserID: 1, UniverseID: 0, FillUniverseID: 5},
		{UserID: 2, UniverseID: 5, FillUniverseID: 5},
	}
	g := New()
	err := g.Build(nil, cellDefs, nil, 0)
	if err == nil {
		t.Fatalf("expected an error for a cell filling its own universe")
	}
}
