// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pellegre/helios/internal/vec3"
)

func TestNewBuildsAliveUnitWeightParticle(t *testing.T) {
	p := New(vec3.Vec3{1, 2, 3}, vec3.Vec3{0, 0, 1}, 14.1, 1.0)
	if p.State != Alive {
		t.Fatalf("expected a new particle to be Alive")
	}
	if p.Position != (vec3.Vec3{1, 2, 3}) {
		t.Fatalf("unexpected position: %v", p.Position)
	}
	if p.Energy != 14.1 || p.Weight != 1.0 {
		t.Fatalf("unexpected energy/weight: %v %v", p.Energy, p.Weight)
	}
}

func TestAdvanceMovesAlongDirection(t *testing.T) {
	p := New(vec3.Vec3{0, 0, 0}, vec3.Vec3{1, 0, 0}, 1.0, 1.0)
	p.Advance(3.5)
	if p.Position != (vec3.Vec3{3.5, 0, 0}) {
		t.Fatalf("expected position (3.5,0,0), got %v", p.Position)
	}
}

func TestIsotropicDirectionIsUnitLength(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		d := IsotropicDirection(src.Float64)
		n := vec3.Norm(d)
		if math.Abs(n-1) > 1e-9 {
			t.Fatalf("draw %d: expected unit length, got %g", i, n)
		}
	}
}

func TestIsotropicDirectionIsUnbiasedInZ(t *testing.T) {
	// The z-component (r3) is drawn uniformly on [-1,1] directly, so its
	// mean over many draws should be close to zero.
	src := rand.New(rand.NewSource(2))
	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		sum += IsotropicDirection(src.Float64)[2]
	}
	mean := sum / n
	if math.Abs(mean) > 0.05 {
		t.Fatalf("expected z-component mean near 0, got %g", mean)
	}
}
