// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/pellegre/helios/internal/vec3"

// Lattice is a rectilinear array generator: a (nx, ny) grid of universes
// tiling the plane spanned by AxisA and AxisB, with
// pitch (PitchA, PitchB) and a row-major list of fill universes.
type Lattice struct {
	UserID int
	AxisA  Axis
	AxisB  Axis

	NX, NY         int
	PitchA, PitchB float64
	// Origin is the center of lattice cell (0,0) in the AxisA/AxisB plane.
	Origin vec3.Vec3

	// Fills is the row-major (j*NX+i) list of universes occupying each
	// lattice cell; len(Fills) must equal NX*NY.
	Fills []*Universe
}

// Expand builds the lattice's tiling:
// (nx+1) shared planes along AxisA and (ny+1) shared planes along AxisB,
// and one cell per lattice position, each bounded by its four surrounding
// planes and filled with the corresponding universe. Planes are shared
// across adjacent cells rather than duplicated per-cell, since Geometry's
// resolveSurface dedup step would otherwise collapse them to the same set
// anyway.
func (l *Lattice) Expand(nextSurfaceID func() int, nextCellID func() int) (*Universe, []Surface, []*Cell) {
	planesA := make([]*PlaneNormal, l.NX+1)
	for i := 0; i <= l.NX; i++ {
		coord := l.Origin[l.AxisA] + (float64(i)-0.5)*l.PitchA
		planesA[i] = NewPlaneNormal(nextSurfaceID(), FlagNone, l.AxisA, coord)
	}
	planesB := make([]*PlaneNormal, l.NY+1)
	for j := 0; j <= l.NY; j++ {
		coord := l.Origin[l.AxisB] + (float64(j)-0.5)*l.PitchB
		planesB[j] = NewPlaneNormal(nextSurfaceID(), FlagNone, l.AxisB, coord)
	}

	var surfaces []Surface
	for _, p := range planesA {
		surfaces = append(surfaces, p)
	}
	for _, p := range planesB {
		surfaces = append(surfaces, p)
	}

	uni := &Universe{UserID: l.UserID}
	cells := make([]*Cell, 0, l.NX*l.NY)
	shared := make(map[*Universe]bool)
	for j := 0; j < l.NY; j++ {
		for i := 0; i < l.NX; i++ {
			operands := []Operand{
				{Surface: planesA[i], Sense: true},
				{Surface: planesA[i+1], Sense: false},
				{Surface: planesB[j], Sense: true},
				{Surface: planesB[j+1], Sense: false},
			}
			c := NewCell(nextCellID(), operands, false, false)
			if fill := l.Fills[j*l.NX+i]; fill != nil {
				center := l.Origin
				center[l.AxisA] = l.Origin[l.AxisA] + float64(i)*l.PitchA
				center[l.AxisB] = l.Origin[l.AxisB] + float64(j)*l.PitchB
				translation := Transformation{Translation: center}
				placed := cloneFill(fill, translation, &surfaces, &cells)
				if placed == fill && !shared[fill] {
					// The fill was shared unchanged (no translation); its
					// own cell/surface tree still has to enter the arena
					// once, so material resolution and user-id lookups see
					// it like every cloned copy.
					shared[fill] = true
					appendUniverseTree(fill, &surfaces, &cells, make(map[Surface]bool))
				}
				c.SetFill(placed)
			}
			uni.AddCell(c)
			cells = append(cells, c)
		}
	}
	return uni, surfaces, cells
}

// appendUniverseTree collects a standalone universe's cells and their
// operand surfaces (recursively through nested fills) into the lattice's
// registration slices.
func appendUniverseTree(u *Universe, surfaces *[]Surface, cells *[]*Cell, seen map[Surface]bool) {
	for _, c := range u.Cells {
		*cells = append(*cells, c)
		for _, op := range c.Operands {
			if !seen[op.Surface] {
				seen[op.Surface] = true
				*surfaces = append(*surfaces, op.Surface)
			}
		}
		if c.Fill != nil {
			appendUniverseTree(c.Fill, surfaces, cells, seen)
		}
	}
}

// cloneFill returns the universe a lattice cell at this position should be
// filled with: the shared fill pointer unchanged when the translation (the
// lattice cell's center) is zero, i.e. the cell is centered on the
// coordinate origin, or a deep clone of fill's
// whole cell/surface tree translated to this position, so that a pin
// universe whose cells carry their own bounding surfaces (an off-center
// fuel rod, say) resolves against surfaces placed at THIS lattice cell's
// coordinates rather than the template's.
//
// Clones keep their source's user id rather than minting a fresh one
// the same path-qualified-clone convention Geometry.resolveSurface already
// uses for nested universe fills, so
// GetCellsByUserID still finds every copy under its original id. Cloned
// surfaces and cells are appended to *surfaces/*cells so Geometry.
// registerLatticeExpansion folds them into the arena exactly like the
// lattice's own generated planes.
func cloneFill(fill *Universe, t Transformation, surfaces *[]Surface, cells *[]*Cell) *Universe {
	if t.IsZero() {
		return fill
	}
	clone := &Universe{UserID: fill.UserID}
	placedSurfaces := make(map[Surface]Surface, len(fill.Cells))
	for _, src := range fill.Cells {
		operands := make([]Operand, len(src.Operands))
		for k, op := range src.Operands {
			cs, ok := placedSurfaces[op.Surface]
			if !ok {
				cs = op.Surface.Transformate(t)
				placedSurfaces[op.Surface] = cs
				*surfaces = append(*surfaces, cs)
			}
			operands[k] = Operand{Surface: cs, Sense: op.Sense}
		}
		nc := NewCell(src.UserID, operands, src.Negated, src.Dead)
		nc.MaterialID = src.MaterialID
		nc.Material = src.Material
		if src.Fill != nil {
			nc.SetFill(cloneFill(src.Fill, t, surfaces, cells))
		}
		clone.AddCell(nc)
		*cells = append(*cells, nc)
	}
	return clone
}
