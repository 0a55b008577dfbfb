// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"math"
	"testing"

	"github.com/pellegre/helios/internal/particle"
	"github.com/pellegre/helios/internal/rand"
	"github.com/pellegre/helios/internal/vec3"
)

func TestAliasSamplerMatchesWeightsOverManyDraws(t *testing.T) {
	values := []string{"a", "b", "c"}
	strengths := []float64{1, 2, 7}
	s := NewAliasSampler(values, strengths)

	counts := map[string]int{}
	r := rand.New(5)
	const n = 100000
	for i := 0; i < n; i++ {
		counts[s.Sample(r)]++
	}

	want := map[string]float64{"a": 0.1, "b": 0.2, "c": 0.7}
	for k, frac := range want {
		got := float64(counts[k]) / n
		if math.Abs(got-frac) > 0.01 {
			t.Fatalf("%s: expected fraction ~%g, got %g", k, frac, got)
		}
	}
}

func TestUniformAxisStaysInBounds(t *testing.T) {
	u := UniformAxis{Axis: AxisX, Min: -2, Max: 3}
	r := rand.New(9)
	for i := 0; i < 1000; i++ {
		p := particle.New(vec3.Vec3{}, vec3.Vec3{1, 0, 0}, 1, 1)
		u.Apply(&p, r)
		if p.Position[0] < -2 || p.Position[0] > 3 {
			t.Fatalf("draw %d out of bounds: %g", i, p.Position[0])
		}
	}
}

func TestParticleSamplerAppliesDistributionsLeftToRight(t *testing.T) {
	sampler := &ParticleSampler{
		ReferencePosition:  vec3.Vec3{10, 20, 30},
		ReferenceDirection: vec3.Vec3{1, 0, 0},
		ReferenceEnergy:    2.0,
		Distributions: []Distribution{
			MonoEnergy{Energy: 5.0},
			UniformAxis{Axis: AxisZ, Min: 0, Max: 0},
		},
	}
	var p particle.Particle
	r := rand.New(1)
	sampler.Sample(&p, r)

	if p.Energy != 5.0 {
		t.Fatalf("expected the later MonoEnergy to win, got %g", p.Energy)
	}
	if p.Position != (vec3.Vec3{10, 20, 30}) {
		t.Fatalf("expected the reference position plus a zero-width offset, got %v", p.Position)
	}
	if p.State != particle.Alive {
		t.Fatalf("expected Sample to leave the particle Alive")
	}
}

func TestSourceSampleProducesAFreshParticleEachTime(t *testing.T) {
	sampler := &ParticleSampler{
		ReferencePosition:  vec3.Vec3{0, 0, 0},
		ReferenceDirection: vec3.Vec3{1, 0, 0},
		ReferenceEnergy:    14.1,
	}
	ps := NewParticleSource(1, []*ParticleSampler{sampler}, nil)
	src := NewSource([]*ParticleSource{ps}, nil)

	r := rand.New(2)
	p1 := src.Sample(r)
	if p1.Energy != 14.1 {
		t.Fatalf("expected energy 14.1, got %g", p1.Energy)
	}
	if p1.State != particle.Alive {
		t.Fatalf("expected a freshly sampled particle to be Alive")
	}
}

func TestCustomDistributionPicksExactlyOneChild(t *testing.T) {
	hits := map[string]bool{}
	cd := NewCustomDistribution([]Distribution{
		MonoEnergy{Energy: 1},
		MonoEnergy{Energy: 2},
	}, []float64{1, 1})

	r := rand.New(3)
	for i := 0; i < 100; i++ {
		p := particle.New(vec3.Vec3{}, vec3.Vec3{1, 0, 0}, 0, 1)
		cd.Apply(&p, r)
		if p.Energy == 1 {
			hits["one"] = true
		} else if p.Energy == 2 {
			hits["two"] = true
		} else {
			t.Fatalf("unexpected energy %g", p.Energy)
		}
	}
	if !hits["one"] || !hits["two"] {
		t.Fatalf("expected both children to be selected at least once across 100 draws")
	}
}
