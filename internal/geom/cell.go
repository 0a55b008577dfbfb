// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/pellegre/helios/internal/material"
	"github.com/pellegre/helios/internal/vec3"
)

// Operand is one (surface, expected sense) conjunct of a cell's boundary
// list.
type Operand struct {
	Surface Surface
	Sense   bool
}

// Cell is a conjunction of surface operands, optionally negated
// (complement of the conjunction) or marked dead (particle termination on
// entry). A Cell owns nothing: it references surfaces, a single filling
// universe and a single parent universe.
type Cell struct {
	UserID     int
	InternalID int
	Path       string // path-qualified id, e.g. "100<3<1" 

	Operands []Operand
	Negated  bool
	Dead     bool

	// MaterialID is the unresolved material user id from the cell
	// definition; Material is filled in later by Geometry.SetupMaterials.
	MaterialID int
	Material   *material.Material // set for a leaf (material) cell
	Fill       *Universe          // set for a cell filled by a sub-universe
	Parent     *Universe          // the universe this cell lives in
}

// NewCell registers this cell as a neighbor of each of its bounding
// surfaces.
func NewCell(userID int, operands []Operand, negated, dead bool) *Cell {
	c := &Cell{UserID: userID, Operands: operands, Negated: negated, Dead: dead}
	for _, op := range operands {
		op.Surface.addNeighbor(op.Sense, c)
	}
	return c
}

// SetFill binds a sub-universe to this cell and points the universe's
// parent back at it.
func (c *Cell) SetFill(u *Universe) {
	c.Fill = u
	u.Parent = c
}

// FindCell resolves whether pos lies in this cell: a negated cell claims
// the point the instant any operand other than skip disagrees with its
// stored sense, or the moment it reaches the skip operand itself (the
// surface just crossed), while a regular cell requires every operand
// (other than skip) to agree.
func (c *Cell) FindCell(pos vec3.Vec3, skip Surface) *Cell {
	if c.Negated {
		for _, op := range c.Operands {
			if op.Surface != skip {
				if op.Surface.Sense(pos) != op.Sense {
					if c.Fill != nil {
						return c.Fill.FindCell(pos, skip)
					}
					return c
				}
			} else {
				// Just crossed out of this surface: we are outside for sure.
				if c.Fill != nil {
					return c.Fill.FindCell(pos, skip)
				}
				return c
			}
		}
		// Inside every bounding surface: still inside the complement.
		return nil
	}
	for _, op := range c.Operands {
		if op.Surface != skip && op.Surface.Sense(pos) != op.Sense {
			return nil
		}
	}
	if c.Fill != nil {
		return c.Fill.FindCell(pos, skip)
	}
	return c
}

// Intersect returns the nearest bounding surface crossing from pos along
// dir, starting from the parent cell's own intersect result so that an
// inner cell never hides an outer universe's boundary.
func (c *Cell) Intersect(pos, dir vec3.Vec3) (surface Surface, sense bool, distance float64) {
	distance = math.Inf(1)
	if c.Parent != nil && c.Parent.Parent != nil {
		surface, sense, distance = c.Parent.Parent.Intersect(pos, dir)
	}
	for _, op := range c.Operands {
		d, hit := op.Surface.Intersect(pos, dir, op.Sense)
		if hit && d < distance {
			distance = d
			surface = op.Surface
			sense = op.Sense
		}
	}
	return surface, sense, distance
}
