// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"github.com/pellegre/helios/internal/particle"
	"github.com/pellegre/helios/internal/rand"
	"github.com/pellegre/helios/internal/vec3"
)

// ParticleSampler is a reference (position, direction) pose plus an
// ordered list of Distributions applied on top of it.
type ParticleSampler struct {
	UserID int

	ReferencePosition  vec3.Vec3
	ReferenceDirection vec3.Vec3
	ReferenceEnergy    float64

	Distributions []Distribution
}

// Sample writes the reference pose into p, then applies every
// distribution left to right, each mutating at most the slots it owns.
func (s *ParticleSampler) Sample(p *particle.Particle, r *rand.Random) {
	p.Position = s.ReferencePosition
	p.Direction = s.ReferenceDirection
	p.Energy = s.ReferenceEnergy
	p.Weight = 1.0
	p.State = particle.Alive
	for _, d := range s.Distributions {
		d.Apply(p, r)
	}
}

// ParticleSource is a weighted mixture of ParticleSamplers.
type ParticleSource struct {
	UserID   int
	sampler  *AliasSampler[*ParticleSampler]
	samplers []*ParticleSampler
}

// NewParticleSource builds a ParticleSource from samplers weighted by
// strengths. Equal weights are used when strengths is empty.
func NewParticleSource(userID int, samplers []*ParticleSampler, strengths []float64) *ParticleSource {
	if len(strengths) == 0 {
		strengths = make([]float64, len(samplers))
		for i := range strengths {
			strengths[i] = 1.0
		}
	}
	return &ParticleSource{
		UserID:   userID,
		sampler:  NewAliasSampler(samplers, strengths),
		samplers: samplers,
	}
}

// Sample picks one ParticleSampler weighted by strength and samples a
// particle from it.
func (ps *ParticleSource) Sample(p *particle.Particle, r *rand.Random) {
	ps.sampler.Sample(r).Sample(p, r)
}

// Source is the top-level weighted mixture of ParticleSources.
type Source struct {
	sampler *AliasSampler[*ParticleSource]
}

// NewSource builds the top-level Source from its constituent
// ParticleSources weighted by strengths (equal weights if omitted).
func NewSource(sources []*ParticleSource, strengths []float64) *Source {
	if len(strengths) == 0 {
		strengths = make([]float64, len(sources))
		for i := range strengths {
			strengths[i] = 1.0
		}
	}
	return &Source{sampler: NewAliasSampler(sources, strengths)}
}

// Sample draws a fresh starting Particle: pick a ParticleSource, then a
// ParticleSampler within it, then apply its distributions.
func (s *Source) Sample(r *rand.Random) particle.Particle {
	var p particle.Particle
	s.sampler.Sample(r).Sample(&p, r)
	return p
}
