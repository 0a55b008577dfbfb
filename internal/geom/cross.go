// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/pellegre/helios/internal/particle"
	"github.com/pellegre/helios/internal/vec3"
)

// Cross moves a particle through a surface, the one place a surface's
// flags actually change a particle's fate: REFLECTING flips the
// particle's direction about the outward normal (negating the normal
// first if the crossing sense is negative, since Normal always points
// toward positive sense) and leaves the particle in its current cell;
// VACUUM kills the particle outright; anything else looks up the
// neighbor cells on the opposite side via findCell, killing the particle
// if none claims the point or the one that does is a DEADCELL.
func (g *Geometry) Cross(p *particle.Particle, surface Surface, sense bool) (next *Cell) {
	flags := surface.Flags()
	switch {
	case flags&FlagReflecting != 0:
		n := surface.Normal(p.Position)
		if !sense {
			n = vec3.Scale(-1, n)
		}
		p.Direction = vec3.Sub(p.Direction, vec3.Scale(2*vec3.Dot(p.Direction, n), n))
		return nil
	case flags&FlagVacuum != 0:
		p.State = particle.Dead
		return nil
	}

	next = g.crossNeighbor(surface, p.Position, sense)
	if next == nil || next.Dead {
		p.State = particle.Dead
		return nil
	}
	return next
}
