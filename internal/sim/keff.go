// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"
	"runtime"
	"sync"

	"github.com/pellegre/helios/internal/particle"
	"github.com/pellegre/helios/internal/rand"
)

// KeffSimulation is the criticality driver: it holds the environment, the
// current fission bank, and the per-batch bookkeeping needed to turn
// successive generations of independent neutron histories into a k-eff
// estimate.
type KeffSimulation struct {
	Env *Environment

	Particles int // particles per batch (N)
	Inactive  int // warm-up batches, not scored
	Batches   int // active (scored) batches
	Threads   int // 0 means runtime.NumCPU()

	// AnalogCapture selects the absorption policy: true
	// kills the particle outright on capture (analog), false reduces its
	// weight by (1-σ_c/σ_t), σ_c being absorption minus fission, and
	// continues it with roulette (implicit
	// capture, the default — it halves variance on deep-penetration
	// problems at the cost of a slightly longer average history, the usual
	// production-code default).
	AnalogCapture bool

	Diagnostics *Diagnostics

	master *rand.Random
}

// NewKeffSimulation builds a driver over env with a master seed. The seed
// is the single source of all reproducibility: every history derives its
// stream from it via StreamFor(batch, history), never from wall-clock or
// goroutine scheduling order.
func NewKeffSimulation(env *Environment, particles, inactive, batches int, seed uint64) *KeffSimulation {
	return &KeffSimulation{
		Env:         env,
		Particles:   particles,
		Inactive:    inactive,
		Batches:     batches,
		Diagnostics: NewDiagnostics(),
		master:      rand.New(seed),
	}
}

// BatchResult is one batch's k-eff contribution and whether it was scored.
type BatchResult struct {
	Index  int
	K      float64
	Active bool
}

// Result is the accumulated outcome of a full criticality run: the mean
// and sample standard deviation of k over the active batches, plus every
// individual batch's contribution and the diagnostic tally.
type Result struct {
	KMean       float64
	KStdDev     float64
	Batches     []BatchResult
	Diagnostics *Diagnostics
}

// Run executes Inactive+Batches generations sequentially, fanning each
// batch's histories out across a worker pool sized to hardware parallelism
//. Each
// batch is indivisible: workers join at the batch boundary before the
// fission bank is reduced and resampled for the next one.
func (sim *KeffSimulation) Run() Result {
	threads := sim.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	var bank []particle.Particle
	var stats welford
	var result Result

	totalBatches := sim.Inactive + sim.Batches
	for b := 0; b < totalBatches; b++ {
		newBank, totalWeight := sim.runBatch(b, bank, threads)

		k := totalWeight / float64(sim.Particles)
		active := b >= sim.Inactive
		result.Batches = append(result.Batches, BatchResult{Index: b, K: k, Active: active})
		if active {
			stats.add(k)
		}

		resampleRand := sim.master.StreamFor(b, sim.Particles)
		bank = systematicResample(newBank, sim.Particles, resampleRand)
	}

	result.KMean = stats.mean
	result.KStdDev = stats.stddev()
	result.Diagnostics = sim.Diagnostics
	return result
}

// runBatch runs exactly sim.Particles independent histories, partitioned
// into contiguous per-thread index ranges, and returns the concatenated
// fission bank (in deterministic chunk order) plus its total weight.
func (sim *KeffSimulation) runBatch(batchIndex int, prevBank []particle.Particle, threads int) ([]particle.Particle, float64) {
	n := sim.Particles
	if threads > n {
		threads = n
	}
	if threads < 1 {
		threads = 1
	}

	chunks := partitionRanges(n, threads)
	localBanks := make([][]particle.Particle, len(chunks))

	var wg sync.WaitGroup
	for ci, rng := range chunks {
		ci, rng := ci, rng
		wg.Add(1)
		go func() {
			defer wg.Done()
			localBanks[ci] = sim.runRange(batchIndex, rng.lo, rng.hi, prevBank)
		}()
	}
	wg.Wait()

	var newBank []particle.Particle
	var totalWeight float64
	for _, lb := range localBanks {
		for _, p := range lb {
			totalWeight += p.Weight
		}
		newBank = append(newBank, lb...)
	}
	return newBank, totalWeight
}

// runRange runs histories [lo,hi) of one batch sequentially on the calling
// goroutine, each seeded from a deterministic (batchIndex, historyIndex)
// sub-stream so the result never depends on how threads were scheduled.
func (sim *KeffSimulation) runRange(batchIndex, lo, hi int, prevBank []particle.Particle) []particle.Particle {
	var local []particle.Particle
	for h := lo; h < hi; h++ {
		r := sim.master.StreamFor(batchIndex, h)

		var p particle.Particle
		if len(prevBank) > 0 {
			p = prevBank[h%len(prevBank)]
		} else {
			p = sim.Env.Source.Sample(r)
		}
		p.State = particle.Alive

		res := runHistory(sim.Env, &p, r, sim.Diagnostics, sim.AnalogCapture)
		local = append(local, res.banked...)
	}
	return local
}

type indexRange struct{ lo, hi int }

// partitionRanges splits [0,n) into up to `threads` contiguous ranges,
// as equal in size as integer division allows.
func partitionRanges(n, threads int) []indexRange {
	if threads < 1 {
		threads = 1
	}
	base := n / threads
	rem := n % threads
	out := make([]indexRange, 0, threads)
	lo := 0
	for t := 0; t < threads; t++ {
		size := base
		if t < rem {
			size++
		}
		if size == 0 {
			continue
		}
		out = append(out, indexRange{lo: lo, hi: lo + size})
		lo += size
	}
	return out
}

// systematicResample draws exactly `target` equal-weight particles from
// bank via a single-offset systematic comb over cumulative weight,
// preserving total weight in expectation while collapsing every output
// particle to the same weight. The walk over bank is in its incoming
// (deterministic) order, so the resampled source never depends on worker
// scheduling.
func systematicResample(bank []particle.Particle, target int, r *rand.Random) []particle.Particle {
	if len(bank) == 0 || target <= 0 {
		return nil
	}
	totalWeight := 0.0
	for _, p := range bank {
		totalWeight += p.Weight
	}
	if totalWeight <= 0 {
		return nil
	}

	stride := totalWeight / float64(target)
	offset := r.Uniform() * stride
	outWeight := totalWeight / float64(target)

	out := make([]particle.Particle, 0, target)
	cum := 0.0
	bi := 0
	for i := 0; i < target; i++ {
		threshold := offset + float64(i)*stride
		for bi < len(bank)-1 && cum+bank[bi].Weight < threshold {
			cum += bank[bi].Weight
			bi++
		}
		np := bank[bi]
		np.Weight = outWeight
		np.State = particle.Alive
		out = append(out, np)
	}
	return out
}

// welford accumulates a streaming mean/variance without retaining every
// sample (Welford's online algorithm), used for the active-batch k-eff
// statistics.
type welford struct {
	count int
	mean  float64
	m2    float64
}

func (w *welford) add(x float64) {
	w.count++
	delta := x - w.mean
	w.mean += delta / float64(w.count)
	delta2 := x - w.mean
	w.m2 += delta * delta2
}

func (w *welford) stddev() float64 {
	if w.count < 2 {
		return 0
	}
	return math.Sqrt(w.m2 / float64(w.count-1))
}
