// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/pellegre/helios/internal/geom"
	"github.com/pellegre/helios/internal/particle"
	"github.com/pellegre/helios/internal/rand"
)

// rouletteThreshold/rouletteSurvival implement the standard weight-window
// roulette that keeps implicit-capture weight reduction from drifting
// particle weights to zero forever: once a particle's weight falls below
// rouletteThreshold, it survives with probability rouletteSurvival, its
// weight rescaled by 1/rouletteSurvival to stay unbiased in expectation,
// or is killed outright.
const (
	rouletteThreshold = 0.25
	rouletteSurvival  = 0.5
)

// historyResult is what one particle history hands back to its caller: the
// secondaries it deposited into the next batch's fission source. A history
// killed by a history-time domain error is counted in Diagnostics, not
// here.
type historyResult struct {
	banked []particle.Particle
}

// runHistory executes the per-particle history loop for a single
// particle until it is no longer Alive, depositing fission/inelastic-
// multiplicity secondaries into the returned bank slice. analogCapture
// selects the absorption policy: analog kill, or implicit-capture weight
// reduction with roulette.
func runHistory(env *Environment, p *particle.Particle, r *rand.Random, diag *Diagnostics, analogCapture bool) historyResult {
	var result historyResult
	var currentCell *geom.Cell

	masterHint := p.EnergyIndex

	for p.State == particle.Alive {
		cell, err := env.Geometry.FindCellNear(currentCell, p.Position)
		if err != nil || cell.Dead {
			p.State = particle.Dead
			break
		}
		currentCell = cell

		if cell.Material == nil {
			// Void / fill-only cell: stream to the next surface with no
			// collision sampling.
			surface, sense, ds := cell.Intersect(p.Position, p.Direction)
			if math.IsInf(ds, 1) {
				p.State = particle.Dead
				break
			}
			p.Advance(ds)
			next := env.Geometry.Cross(p, surface, sense)
			if next != nil {
				currentCell = next
			}
			continue
		}

		hints := make([]int, len(cell.Material.Isotopes))
		for i := range hints {
			hints[i] = masterHint
		}
		mfp, nextHints := cell.Material.MeanFreePath(hints, p.Energy)
		masterHint = maxHint(nextHints, masterHint)
		if mfp <= 0 || math.IsNaN(mfp) || math.IsInf(mfp, 0) {
			diag.Record(NegativeMeanFreePath)
			p.State = particle.Dead
			break
		}

		dc := -math.Log(r.Uniform()) * mfp
		surface, sense, ds := cell.Intersect(p.Position, p.Direction)

		if ds < dc {
			p.Advance(ds)
			next := env.Geometry.Cross(p, surface, sense)
			if next != nil {
				currentCell = next
			}
			continue
		}

		p.Advance(dc)
		p.EnergyIndex = masterHint

		iso, hintsAfterSample := cell.Material.SampleIsotope(hints, p.Energy, r)
		masterHint = maxHint(hintsAfterSample, masterHint)
		if iso == nil {
			diag.Record(BadBranch)
			p.State = particle.Dead
			break
		}

		absorbProb, h1 := iso.AbsorptionProb(masterHint, p.Energy)
		fissionProb, h2 := iso.FissionProb(masterHint, p.Energy)
		elasticProb, h3 := iso.ElasticProb(masterHint, p.Energy)
		masterHint = maxHint([]int{h1, h2, h3}, masterHint)

		if !isFinite(absorbProb) || !isFinite(fissionProb) || !isFinite(elasticProb) {
			diag.Record(NonFiniteEnergy)
			p.State = particle.Dead
			break
		}

		u2 := r.Uniform()
		switch {
		case u2 < fissionProb:
			secondaries, ok := iso.Fission(masterHint, p.Energy, p, r)
			if ok {
				for _, s := range secondaries {
					bp := particle.New(p.Position, s.Direction, s.Energy, p.Weight)
					result.banked = append(result.banked, bp)
				}
			}
			p.State = particle.Dead

		case u2 < absorbProb:
			if analogCapture {
				p.State = particle.Dead
				break
			}
			survive := 1.0 - (absorbProb - fissionProb)
			if survive <= 0 {
				p.State = particle.Dead
				break
			}
			p.Weight *= survive
			russianRoulette(p, r)

		case u2 < absorbProb+elasticProb:
			iso.Elastic(p, r)

		default:
			secondaries, ok := iso.Inelastic(masterHint, p.Energy, p, r)
			if ok {
				for _, s := range secondaries {
					bp := particle.New(p.Position, s.Direction, s.Energy, p.Weight)
					result.banked = append(result.banked, bp)
				}
			} else {
				p.State = particle.Dead
			}
		}

		if p.Weight <= 0 {
			p.State = particle.Dead
		}
		if !isFinite(p.Energy) {
			diag.Record(NonFiniteEnergy)
			p.State = particle.Dead
		}
	}

	return result
}

// russianRoulette applies weight-window roulette to a surviving particle
// whose implicit-capture weight has fallen under rouletteThreshold.
func russianRoulette(p *particle.Particle, r *rand.Random) {
	if p.Weight >= rouletteThreshold {
		return
	}
	if r.Uniform() < rouletteSurvival {
		p.Weight /= rouletteSurvival
	} else {
		p.State = particle.Dead
	}
}

func maxHint(hints []int, fallback int) int {
	best := fallback
	for _, h := range hints {
		if h > best {
			best = h
		}
	}
	return best
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
