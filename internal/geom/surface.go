// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom builds the CSG geometry arena: surfaces, cells, universes
// and lattices, and answers the two queries the transport loop needs at
// every step — which cell contains a point, and where the next surface
// crossing is.
package geom

import (
	"math"

	"github.com/pellegre/helios/internal/vec3"
)

// Axis names a Cartesian axis, used by the on-axis surface variants.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Flags carries the per-surface options: none, reflecting, or vacuum.
type Flags int

const FlagNone Flags = 0

const (
	FlagReflecting Flags = 1 << iota
	FlagVacuum
)

// Surface is the common contract every quadric variant implements. Every
// concrete type embeds surfaceBase for the identity/flags/neighbor-list
// bookkeeping common to all of them.
type Surface interface {
	UserID() int
	InternalID() int
	setInternalID(id int)
	Flags() Flags
	Function(p vec3.Vec3) float64
	Sense(p vec3.Vec3) bool
	Intersect(p, d vec3.Vec3, expectedSense bool) (distance float64, hit bool)
	Normal(p vec3.Vec3) vec3.Vec3
	Transformate(t Transformation) Surface
	Equals(other Surface) bool
	addNeighbor(sense bool, cell *Cell)
	neighbors(sense bool) []*Cell
}

// surfaceBase implements the identity, flag and neighbor-list bookkeeping
// shared by every Surface variant.
type surfaceBase struct {
	userID     int
	internalID int
	flags      Flags

	neighborPos []*Cell
	neighborNeg []*Cell
}

func (s *surfaceBase) UserID() int          { return s.userID }
func (s *surfaceBase) InternalID() int      { return s.internalID }
func (s *surfaceBase) setInternalID(id int) { s.internalID = id }
func (s *surfaceBase) Flags() Flags         { return s.flags }

func (s *surfaceBase) addNeighbor(sense bool, cell *Cell) {
	if sense {
		s.neighborPos = append(s.neighborPos, cell)
	} else {
		s.neighborNeg = append(s.neighborNeg, cell)
	}
}

func (s *surfaceBase) neighbors(sense bool) []*Cell {
	if sense {
		return s.neighborPos
	}
	return s.neighborNeg
}

// almostEqual is the tolerance comparison Equals uses when deduplicating
// cloned surfaces.
func almostEqual(a, b float64) bool {
	scale := math.Max(1.0, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= 1e-9*scale
}

// quadraticIntersect solves the standard quadric-hit bookkeeping shared
// by every curved surface: a·t² + 2k·t + c = 0, dispatched by (sense,
// sign of k, sign of a).
func quadraticIntersect(a, k, c float64, sense bool) (distance float64, hit bool) {
	disc := k*k - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	if !sense {
		// Particle is inside the surface (negative orientation).
		if k <= 0 {
			if a > 0 {
				return (sq - k) / a, true
			}
			return 0, false
		}
		return math.Max(0, -c/(sq+k)), true
	}
	// Particle is outside the surface.
	if k >= 0 {
		if a >= 0 {
			return 0, false
		}
		return -(sq + k) / a, true
	}
	return math.Max(0, c/(sq-k)), true
}

func axisName(axis Axis) string {
	switch axis {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// PlaneNormal is a plane perpendicular to one Cartesian axis.
type PlaneNormal struct {
	surfaceBase
	Axis       Axis
	Coordinate float64
}

func NewPlaneNormal(userID int, flags Flags, axis Axis, coordinate float64) *PlaneNormal {
	return &PlaneNormal{surfaceBase: surfaceBase{userID: userID, flags: flags}, Axis: axis, Coordinate: coordinate}
}

func (p *PlaneNormal) Function(pos vec3.Vec3) float64 { return pos[p.Axis] - p.Coordinate }
func (p *PlaneNormal) Sense(pos vec3.Vec3) bool        { return p.Function(pos) >= 0 }

func (p *PlaneNormal) Normal(vec3.Vec3) vec3.Vec3 {
	var n vec3.Vec3
	n[p.Axis] = 1.0
	return n
}

func (p *PlaneNormal) Intersect(pos, dir vec3.Vec3, sense bool) (float64, bool) {
	if (!sense && dir[p.Axis] > 0) || (sense && dir[p.Axis] < 0) {
		d := (p.Coordinate - pos[p.Axis]) / dir[p.Axis]
		return math.Max(0, d), true
	}
	return 0, false
}

func (p *PlaneNormal) Transformate(t Transformation) Surface {
	return NewPlaneNormal(p.userID, p.flags, p.Axis, p.Coordinate+t.Translation[p.Axis])
}

func (p *PlaneNormal) Equals(other Surface) bool {
	o, ok := other.(*PlaneNormal)
	return ok && o.Axis == p.Axis && almostEqual(o.Coordinate, p.Coordinate)
}

// dotTransverse is an inner product that skips the component along the
// cylinder's axis.
func dotTransverse(axis Axis, a, b vec3.Vec3) float64 {
	sum := 0.0
	for i := 0; i < 3; i++ {
		if Axis(i) != axis {
			sum += a[i] * b[i]
		}
	}
	return sum
}

// CylinderOnAxis is a cylinder parallel to one Cartesian axis, through an
// arbitrary point in the transverse plane — the on-origin variant is just
// Center == zero.
type CylinderOnAxis struct {
	surfaceBase
	Axis   Axis
	Radius float64
	Center vec3.Vec3 // component along Axis is ignored
}

func NewCylinderOnAxis(userID int, flags Flags, axis Axis, radius float64, center vec3.Vec3) *CylinderOnAxis {
	center[axis] = 0
	return &CylinderOnAxis{surfaceBase: surfaceBase{userID: userID, flags: flags}, Axis: axis, Radius: radius, Center: center}
}

func (c *CylinderOnAxis) transverse(pos vec3.Vec3) vec3.Vec3 { return vec3.Sub(pos, c.Center) }

func (c *CylinderOnAxis) Function(pos vec3.Vec3) float64 {
	tp := c.transverse(pos)
	return dotTransverse(c.Axis, tp, tp) - c.Radius*c.Radius
}

func (c *CylinderOnAxis) Sense(pos vec3.Vec3) bool { return c.Function(pos) >= 0 }

func (c *CylinderOnAxis) Normal(pos vec3.Vec3) vec3.Vec3 {
	tp := c.transverse(pos)
	tp[c.Axis] = 0
	return vec3.Scale(1.0/c.Radius, tp)
}

func (c *CylinderOnAxis) Intersect(pos, dir vec3.Vec3, sense bool) (float64, bool) {
	tp := c.transverse(pos)
	a := 1 - dir[c.Axis]*dir[c.Axis]
	k := dotTransverse(c.Axis, dir, tp)
	cc := dotTransverse(c.Axis, tp, tp) - c.Radius*c.Radius
	return quadraticIntersect(a, k, cc, sense)
}

func (c *CylinderOnAxis) Transformate(t Transformation) Surface {
	return NewCylinderOnAxis(c.userID, c.flags, c.Axis, c.Radius, vec3.Add(c.Center, t.Translation))
}

func (c *CylinderOnAxis) Equals(other Surface) bool {
	o, ok := other.(*CylinderOnAxis)
	return ok && o.Axis == c.Axis && almostEqual(o.Radius, c.Radius) &&
		almostEqual(o.Center[0], c.Center[0]) && almostEqual(o.Center[1], c.Center[1]) && almostEqual(o.Center[2], c.Center[2])
}

// SphereOnOrigin is a sphere defined by its radius alone; despite the
// name, a transformate can leave its center anywhere, not just at the
// coordinate origin.
type SphereOnOrigin struct {
	surfaceBase
	Center vec3.Vec3
	Radius float64
}

func NewSphereOnOrigin(userID int, flags Flags, center vec3.Vec3, radius float64) *SphereOnOrigin {
	return &SphereOnOrigin{surfaceBase: surfaceBase{userID: userID, flags: flags}, Center: center, Radius: radius}
}

func (s *SphereOnOrigin) Function(pos vec3.Vec3) float64 {
	d := vec3.Sub(pos, s.Center)
	return vec3.Dot(d, d) - s.Radius*s.Radius
}

func (s *SphereOnOrigin) Sense(pos vec3.Vec3) bool { return s.Function(pos) >= 0 }

func (s *SphereOnOrigin) Normal(pos vec3.Vec3) vec3.Vec3 {
	d := vec3.Sub(pos, s.Center)
	return vec3.Scale(1.0/s.Radius, d)
}

func (s *SphereOnOrigin) Intersect(pos, dir vec3.Vec3, sense bool) (float64, bool) {
	d := vec3.Sub(pos, s.Center)
	a := 1.0
	k := vec3.Dot(d, dir)
	c := vec3.Dot(d, d) - s.Radius*s.Radius
	return quadraticIntersect(a, k, c, sense)
}

func (s *SphereOnOrigin) Transformate(t Transformation) Surface {
	return NewSphereOnOrigin(s.userID, s.flags, vec3.Add(s.Center, t.Translation), s.Radius)
}

func (s *SphereOnOrigin) Equals(other Surface) bool {
	o, ok := other.(*SphereOnOrigin)
	return ok && almostEqual(o.Radius, s.Radius) &&
		almostEqual(o.Center[0], s.Center[0]) && almostEqual(o.Center[1], s.Center[1]) && almostEqual(o.Center[2], s.Center[2])
}
