// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package particle holds the Particle value transported by the simulation
// driver. It is kept as a leaf package with no dependency on
// internal/sim, internal/geom or internal/reaction so every layer that
// mutates a particle — scattering reactions, surface crossings, the
// history loop itself — can import it without a cycle.
package particle

import (
	"math"

	"github.com/pellegre/helios/internal/vec3"
)

// State is the particle's transport status.
type State int

const (
	Alive State = iota
	Dead
	Bank
)

// Particle is the mutable per-history state: position, direction, energy
// (a master-grid index hint plus the value in MeV, the unit of the ACE
// energy grids),
// weight, and transport state.
type Particle struct {
	Position  vec3.Vec3
	Direction vec3.Vec3

	EnergyIndex int
	Energy      float64

	Weight float64
	State  State
}

// New builds a particle in the Alive state.
func New(position, direction vec3.Vec3, energy float64, weight float64) Particle {
	return Particle{
		Position:  position,
		Direction: direction,
		Energy:    energy,
		Weight:    weight,
		State:     Alive,
	}
}

// Advance moves the particle a distance d along its current direction.
func (p *Particle) Advance(d float64) {
	p.Position = vec3.Add(p.Position, vec3.Scale(d, p.Direction))
}

// IsotropicDirection samples a uniformly distributed direction via the
// rejection method of Lux & Koblinger.
func IsotropicDirection(uniform func() float64) vec3.Vec3 {
	var r1, r2, c1 float64
	for {
		r1 = 2.0*uniform() - 1.0
		r2 = 2.0*uniform() - 1.0
		c1 = r1*r1 + r2*r2
		if c1 <= 1.0 {
			break
		}
	}
	r3 := 2.0*uniform() - 1.0
	c2 := math.Sqrt(1 - r3*r3)
	return vec3.Vec3{
		c2 * (r1*r1 - r2*r2) / c1,
		c2 * 2.0 * r1 * r2 / c1,
		r3,
	}
}
