// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "math"

// RunDeterminismCheck is an executable form of the scheduling-
// reproducibility guarantee: for the same master seed, the final k per
// batch is identical regardless of thread count. It runs the same
// Inactive+Batches schedule twice from the same seed, once with a single
// thread and once with the requested thread count, and reports whether
// every batch's k matched within floating-point tolerance.

func RunDeterminismCheck(env *Environment, particles, inactive, batches int, seed uint64, threads int) (ok bool, maxDiff float64) {
	single := NewKeffSimulation(env, particles, inactive, batches, seed)
	single.Threads = 1
	singleResult := single.Run()

	multi := NewKeffSimulation(env, particles, inactive, batches, seed)
	multi.Threads = threads
	multiResult := multi.Run()

	if len(singleResult.Batches) != len(multiResult.Batches) {
		return false, math.Inf(1)
	}
	ok = true
	for i := range singleResult.Batches {
		diff := math.Abs(singleResult.Batches[i].K - multiResult.Batches[i].K)
		if diff > maxDiff {
			maxDiff = diff
		}
		if diff > 1e-12 {
			ok = false
		}
	}
	return ok, maxDiff
}
