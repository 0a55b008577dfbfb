// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rand implements a splittable linear congruential generator used
// to give every particle history its own reproducible random stream,
// independent of how many worker goroutines are running.
package rand

const (
	// multiplier and increment of a 64-bit LCG (modulus 2^64) with full period (Knuth's MMIX
	// constants), used throughout Monte Carlo transport codes for their
	// cheap jump-ahead property: state_{n+k} can be computed directly from
	// state_n without stepping k times.
	multiplier uint64 = 6364136223846793005
	increment  uint64 = 1442695040888963407
)

// Random is a splittable linear congruential generator.
//
//	uniform() -> [0,1)
//	jump(n)   -> advance the stream by n steps without stepping one by one
//	split(streams, id) -> derive an independent, non-overlapping sub-stream
type Random struct {
	state uint64
	seed  uint64
}

// New creates a Random seeded with s.
func New(s uint64) *Random {
	r := &Random{seed: s}
	r.state = s*multiplier + increment
	return r
}

// Seed reseeds the generator.
func (r *Random) Seed(s uint64) {
	r.seed = s
	r.state = s*multiplier + increment
}

// Uniform returns the next pseudo-random number in [0,1).
func (r *Random) Uniform() float64 {
	r.state = r.state*multiplier + increment
	// Use the high 53 bits, the well-mixed part of an LCG, as the mantissa
	// of a double in [0,1).
	return float64(r.state>>11) / float64(1<<53)
}

// jumpConstants computes the multiplier and increment for advancing an LCG
// by n steps in O(log n) via the standard doubling identity:
//
//	state_{n} = a_n * state_0 + c_n  (mod 2^64)
func jumpConstants(n uint64) (a, c uint64) {
	a, c = 1, 0
	curMult, curInc := multiplier, increment
	for n > 0 {
		if n&1 == 1 {
			a = a * curMult
			c = c*curMult + curInc
		}
		curInc = (curMult + 1) * curInc
		curMult = curMult * curMult
		n >>= 1
	}
	return
}

// Jump advances the stream by n steps directly, without computing the n
// intermediate states.
func (r *Random) Jump(n uint64) {
	a, c := jumpConstants(n)
	r.state = a*r.state + c
}

// Split derives the independent sub-stream for streamID out of nStreams
// total streams, by seeding from the master seed perturbed by streamID and
// then jumping ahead by a stream-sized stride. This guarantees two
// sub-streams never reuse the same LCG state within any realistic run
// length, and the result depends only on (seed, nStreams, streamID) — never
// on scheduling order.
func (r *Random) Split(nStreams int, streamID int) *Random {
	child := New(r.seed ^ (uint64(streamID+1) * 0x9E3779B97F4A7C15))
	// Stride far enough apart that two streams derived from the same
	// master seed cannot overlap for any batch size used in practice.
	const strideLog2 = 1 << 40
	child.Jump(uint64(streamID) * strideLog2)
	return child
}

// StreamFor returns a reproducible sub-stream for (batchIndex, historyIndex)
// derived from this master generator, independent of thread count, so a
// batch's result never depends on how workers were scheduled.
func (r *Random) StreamFor(batchIndex, historyIndex int) *Random {
	key := uint64(batchIndex)*2654435761 + uint64(historyIndex)
	child := New(r.seed ^ key)
	return child
}
