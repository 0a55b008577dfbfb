// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/pellegre/helios/internal/vec3"

// Universe is an ordered set of cells tiling a region of space. Multiple
// cells may fill the same UserId universe, in which case the universe is
// cloned per filling cell; this package represents that as
// distinct *Universe values sharing no mutable state, built by Geometry's
// construction algorithm.
type Universe struct {
	UserID     int
	InternalID int

	Cells  []*Cell
	Parent *Cell // the cell this universe fills; nil for the base universe
}

// AddCell appends a cell to this universe and points its Parent back at
// it.
func (u *Universe) AddCell(c *Cell) {
	c.Parent = u
	u.Cells = append(u.Cells, c)
}

// FindCell linearly scans this universe's cells; first match wins.
func (u *Universe) FindCell(pos vec3.Vec3, skip Surface) *Cell {
	for _, c := range u.Cells {
		if found := c.FindCell(pos, skip); found != nil {
			return found
		}
	}
	return nil
}
