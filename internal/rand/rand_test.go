// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "testing"

func TestUniformStaysInUnitInterval(t *testing.T) {
	r := New(12345)
	for i := 0; i < 10000; i++ {
		u := r.Uniform()
		if u < 0 || u >= 1 {
			t.Fatalf("draw %d out of [0,1): %g", i, u)
		}
	}
}

func TestSameSeedReproducesSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Uniform(), b.Uniform(); x != y {
			t.Fatalf("draw %d diverged: %g != %g", i, x, y)
		}
	}
}

func TestJumpMatchesSteppingOneByOne(t *testing.T) {
	const n = 1000
	stepped := New(7)
	for i := 0; i < n; i++ {
		stepped.Uniform()
	}

	jumped := New(7)
	jumped.Jump(n)

	if stepped.state != jumped.state {
		t.Fatalf("jump(%d) state %d != stepped state %d", n, jumped.state, stepped.state)
	}
}

func TestStreamForIsIndependentOfCallOrder(t *testing.T) {
	master := New(99)
	// StreamFor must be a pure function of (seed, batch, history): calling
	// it for history 2 between two calls for history 5 must not perturb
	// history 5's result.
	s5First := master.StreamFor(3, 5).Uniform()
	s2 := master.StreamFor(3, 2).Uniform()
	s5Second := master.StreamFor(3, 5).Uniform()
	if s5First != s5Second {
		t.Fatalf("StreamFor(3,5) depended on call order: %g != %g", s5First, s5Second)
	}
	_ = s2
}

func TestSplitStreamsDoNotCollide(t *testing.T) {
	master := New(1)
	a := master.Split(4, 0)
	b := master.Split(4, 1)
	if a.state == b.state {
		t.Fatalf("expected distinct streams for different stream ids")
	}
}
