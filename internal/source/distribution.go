// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source builds the phase-space sampling pipeline that produces
// the starting Particle for each history: distributions over a single
// phase-space dimension, composed into ParticleSamplers, composed into
// weighted ParticleSources, composed into one top-level Source. The
// sampled axis is an explicit field on each distribution rather than a
// distinct type per axis.
package source

import (
	"github.com/pellegre/helios/internal/particle"
	"github.com/pellegre/helios/internal/rand"
)

// Axis names the Cartesian position axis a UniformAxis distribution
// samples along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Distribution is a sampler over one phase-space dimension: it mutates at
// most the particle slots it owns, applied left to right by a
// ParticleSampler so a later distribution overriding an earlier one's
// slot is well-defined.
type Distribution interface {
	Apply(p *particle.Particle, r *rand.Random)
}

// UniformAxis samples one Cartesian coordinate uniformly in [Min, Max],
// added to whatever the sampler's reference position already placed
// there.
type UniformAxis struct {
	Axis     Axis
	Min, Max float64
}

func (u UniformAxis) Apply(p *particle.Particle, r *rand.Random) {
	p.Position[u.Axis] += (u.Max-u.Min)*r.Uniform() + u.Min
}

// Box1D/Box2D/Box3D compose UniformAxis distributions over one, two, or
// three axes respectively. They are plain
// helpers returning a []Distribution slice a caller appends into a
// ParticleSampler's distribution list, rather than distinct types, since
// Distribution composition is already a list in this design.
func Box1D(axis Axis, min, max float64) []Distribution {
	return []Distribution{UniformAxis{Axis: axis, Min: min, Max: max}}
}

func Box2D(axis1 Axis, min1, max1 float64, axis2 Axis, min2, max2 float64) []Distribution {
	return []Distribution{
		UniformAxis{Axis: axis1, Min: min1, Max: max1},
		UniformAxis{Axis: axis2, Min: min2, Max: max2},
	}
}

func Box3D(axis1 Axis, min1, max1 float64, axis2 Axis, min2, max2 float64, axis3 Axis, min3, max3 float64) []Distribution {
	return []Distribution{
		UniformAxis{Axis: axis1, Min: min1, Max: max1},
		UniformAxis{Axis: axis2, Min: min2, Max: max2},
		UniformAxis{Axis: axis3, Min: min3, Max: max3},
	}
}

// IsotropicDirection replaces the particle's direction with a uniformly
// distributed one via particle.IsotropicDirection.
type IsotropicDirection struct{}

func (IsotropicDirection) Apply(p *particle.Particle, r *rand.Random) {
	p.Direction = particle.IsotropicDirection(r.Uniform)
}

// MonoEnergy sets the particle's starting energy to a fixed value,
// overriding the ParticleSampler's ReferenceEnergy.
type MonoEnergy struct {
	Energy float64
}

func (m MonoEnergy) Apply(p *particle.Particle, r *rand.Random) {
	p.Energy = m.Energy
}

// CustomDistribution composes child distributions with per-child
// weights, applying exactly one of them per sample via alias sampling.
type CustomDistribution struct {
	sampler *AliasSampler[Distribution]
}

// NewCustomDistribution builds the alias table over children weighted by
// strengths.
func NewCustomDistribution(children []Distribution, strengths []float64) *CustomDistribution {
	return &CustomDistribution{sampler: NewAliasSampler(children, strengths)}
}

func (c *CustomDistribution) Apply(p *particle.Particle, r *rand.Random) {
	c.sampler.Sample(r).Apply(p, r)
}
