// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "github.com/pellegre/helios/internal/rand"

// AliasSampler is Vose's alias method: O(1) sampling from a fixed
// discrete distribution after an O(n) setup, backing every weighted
// mixture in this package (a ParticleSource over its ParticleSamplers,
// the Source over its ParticleSources, CustomDistribution over its
// children).
type AliasSampler[T any] struct {
	values []T
	prob   []float64
	alias  []int
}

// NewAliasSampler builds the alias table for values weighted by
// strengths. Weights need not sum to 1; they are normalized internally.
func NewAliasSampler[T any](values []T, strengths []float64) *AliasSampler[T] {
	n := len(values)
	s := &AliasSampler[T]{
		values: append([]T(nil), values...),
		prob:   make([]float64, n),
		alias:  make([]int, n),
	}
	if n == 0 {
		return s
	}

	total := 0.0
	for _, w := range strengths {
		total += w
	}
	scaled := make([]float64, n)
	if total <= 0 {
		for i := range scaled {
			scaled[i] = 1.0
		}
	} else {
		for i, w := range strengths {
			scaled[i] = w * float64(n) / total
		}
	}

	var small, large []int
	for i, p := range scaled {
		if p < 1.0 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]

		s.prob[l] = scaled[l]
		s.alias[l] = g

		scaled[g] = scaled[g] + scaled[l] - 1.0
		if scaled[g] < 1.0 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}
	for _, g := range large {
		s.prob[g] = 1.0
	}
	for _, l := range small {
		s.prob[l] = 1.0
	}
	return s
}

// Sample draws one value in O(1): pick a uniform column, then a uniform
// coin flip to decide whether it keeps its own outcome or defers to its
// alias (the standard Vose-method draw).
func (s *AliasSampler[T]) Sample(r *rand.Random) T {
	n := len(s.values)
	i := int(r.Uniform() * float64(n))
	if i >= n {
		i = n - 1
	}
	if r.Uniform() < s.prob[i] {
		return s.values[i]
	}
	return s.values[s.alias[i]]
}
