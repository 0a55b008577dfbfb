// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package isotope assembles one ACE NeutronTable into the cross-section
// and reaction-sampling API the transport loop actually drives: total,
// elastic, absorption, inelastic and (if fissile) fission cross sections,
// plus the elastic/fission/inelastic Reaction samplers.
package isotope

import (
	"github.com/pellegre/helios/internal/ace"
	"github.com/pellegre/helios/internal/grid"
	"github.com/pellegre/helios/internal/particle"
	"github.com/pellegre/helios/internal/rand"
	"github.com/pellegre/helios/internal/reaction"
)

// Isotope is immutable after New returns, and safe to read concurrently
// from every transport worker.
// All energy-dependent lookups are stateless: the caller supplies the
// master-grid index hint it is carrying for this particle (typically
// particle.EnergyIndex) and gets back the resolved value plus an updated
// hint, rather than this type caching any per-call state itself.
type Isotope struct {
	Name        string
	AWR         float64
	Temperature float64

	child  *grid.ChildGrid
	master *grid.MasterGrid

	total      ace.CrossSection
	elastic    ace.CrossSection
	absorption ace.CrossSection
	fission    ace.CrossSection
	fissile    bool

	elasticReaction reaction.Reaction
	fissionReaction *reaction.Reaction
	chanceFission   *reaction.ChanceFission

	secondary *reaction.XsSampler[reaction.Reaction]
}

// New builds an Isotope from a parsed ACE table, registering its energy
// grid as a child of master. master.Setup must be called
// once every isotope in the problem has registered.
func New(t *ace.NeutronTable, master *grid.MasterGrid) (*Isotope, error) {
	if len(t.Energies) == 0 {
		return nil, &ace.FormatError{Table: t.TableName, Block: "ESZ", Why: "empty energy grid"}
	}
	rc := t.Reactions

	iso := &Isotope{
		Name:        t.TableName,
		AWR:         t.AWR,
		Temperature: t.Temperature,
		child:       master.NewChildGrid(t.Energies),
		master:      master,
		total:       rc.GetTotal(),
		elastic:     rc.GetElastic().XS,
	}

	iso.absorption = buildDisappearance(rc)
	iso.fission, iso.fissile = buildFission(rc)
	if iso.fissile {
		iso.absorption = ace.Add(iso.absorption, iso.fission)
	}

	iso.elasticReaction = reaction.NewElastic(rc.GetElastic(), t.AWR, t.Temperature)

	if fr, ok := rc.GetMT(ace.MTTotalFission); ok {
		rx := reaction.NewReaction(fr, rc.Nu, t.AWR)
		iso.fissionReaction = &rx
	} else if iso.fissile {
		var chance []*ace.NeutronReaction
		for _, mt := range rc.Order {
			if ace.IsChanceFissionMT(mt) {
				chance = append(chance, rc.ByMT[mt])
			}
		}
		iso.chanceFission = reaction.NewChanceFission(chance, rc.Nu, t.AWR, len(t.Energies))
	}

	var secondaries []reaction.Reaction
	var secondaryXS []ace.CrossSection
	for _, mt := range rc.Order {
		nr := rc.ByMT[mt]
		if nr.Tyr.Raw == 0 || ace.IsFissionMT(mt) {
			continue
		}
		secondaries = append(secondaries, reaction.NewReaction(nr, rc.Nu, t.AWR))
		secondaryXS = append(secondaryXS, nr.XS)
	}
	iso.secondary = reaction.NewXsSampler(secondaries, secondaryXS, len(t.Energies))

	return iso, nil
}

// buildDisappearance sums every radiative-capture/charged-particle MT
// cross section.
func buildDisappearance(rc *ace.ReactionContainer) ace.CrossSection {
	var out ace.CrossSection
	for _, mt := range rc.Order {
		if ace.IsDisappearanceMT(mt) {
			out = ace.Add(out, rc.ByMT[mt].XS)
		}
	}
	return out
}

// buildFission sums every fission-channel MT (18, or 19/20/21/38 when
// total fission is split into chance-fission partials).
func buildFission(rc *ace.ReactionContainer) (ace.CrossSection, bool) {
	var out ace.CrossSection
	found := false
	for _, mt := range rc.Order {
		if ace.IsFissionMT(mt) {
			found = true
			out = ace.Add(out, rc.ByMT[mt].XS)
		}
	}
	return out, found
}

// index resolves (masterHint, energy) down to this isotope's own child
// grid, returning the child bracket index and interpolation factor plus
// the master index the caller should carry forward as its next hint.
func (iso *Isotope) index(masterHint int, energy float64) (childIdx int, factor float64, nextMasterHint int) {
	masterIdx, _ := iso.master.Interpolate(masterHint, energy)
	childIdx, factor = iso.child.Index(masterIdx, energy)
	return childIdx, factor, masterIdx
}

func interpXS(xs ace.CrossSection, idx int, factor float64) float64 {
	lo := xs.At(idx)
	hi := xs.At(idx + 1)
	return lo + factor*(hi-lo)
}

// TotalXS returns σ_total(E) and the updated master-grid hint.
func (iso *Isotope) TotalXS(masterHint int, energy float64) (xs float64, nextHint int) {
	idx, f, next := iso.index(masterHint, energy)
	return interpXS(iso.total, idx, f), next
}

// ElasticXS returns σ_elastic(E) and the updated master-grid hint.
func (iso *Isotope) ElasticXS(masterHint int, energy float64) (xs float64, nextHint int) {
	idx, f, next := iso.index(masterHint, energy)
	return interpXS(iso.elastic, idx, f), next
}

// AbsorptionXS returns σ_absorption(E) and the updated master-grid hint.
func (iso *Isotope) AbsorptionXS(masterHint int, energy float64) (xs float64, nextHint int) {
	idx, f, next := iso.index(masterHint, energy)
	return interpXS(iso.absorption, idx, f), next
}

// InelasticXS returns σ_inelastic(E) = σ_total − σ_absorption − σ_elastic
//, never negative beyond floating-point noise.
func (iso *Isotope) InelasticXS(masterHint int, energy float64) (xs float64, nextHint int) {
	idx, f, next := iso.index(masterHint, energy)
	total := interpXS(iso.total, idx, f)
	abs := interpXS(iso.absorption, idx, f)
	el := interpXS(iso.elastic, idx, f)
	inel := total - abs - el
	if inel < 0 {
		inel = 0
	}
	return inel, next
}

// AbsorptionProb, FissionProb, ElasticProb return σ_branch(E)/σ_total(E).
func (iso *Isotope) AbsorptionProb(masterHint int, energy float64) (p float64, nextHint int) {
	idx, f, next := iso.index(masterHint, energy)
	total := interpXS(iso.total, idx, f)
	if total <= 0 {
		return 0, next
	}
	return interpXS(iso.absorption, idx, f) / total, next
}

func (iso *Isotope) FissionProb(masterHint int, energy float64) (p float64, nextHint int) {
	idx, f, next := iso.index(masterHint, energy)
	total := interpXS(iso.total, idx, f)
	if total <= 0 || !iso.fissile {
		return 0, next
	}
	return interpXS(iso.fission, idx, f) / total, next
}

func (iso *Isotope) ElasticProb(masterHint int, energy float64) (p float64, nextHint int) {
	idx, f, next := iso.index(masterHint, energy)
	total := interpXS(iso.total, idx, f)
	if total <= 0 {
		return 0, next
	}
	return interpXS(iso.elastic, idx, f) / total, next
}

// IsFissile reports whether this isotope has any fission channel.
func (iso *Isotope) IsFissile() bool { return iso.fissile }

// Elastic applies the elastic-scattering reaction, mutating the particle
// in place.
func (iso *Isotope) Elastic(p *particle.Particle, r *rand.Random) {
	iso.elasticReaction.Apply(p, r)
}

// Fission applies the fission reaction (single MT=18, or chance-fission
// selection among MT 19/20/21/38), returning the emitted secondary
// neutrons for the caller to deposit into the fission bank. Returns nil,
// false if this isotope is not fissile.
func (iso *Isotope) Fission(masterHint int, energy float64, p *particle.Particle, r *rand.Random) (secondaries []reaction.Secondary, ok bool) {
	if !iso.fissile {
		return nil, false
	}
	if iso.fissionReaction != nil {
		return iso.fissionReaction.Apply(p, r), true
	}
	idx, f, _ := iso.index(masterHint, energy)
	return iso.chanceFission.Apply(idx, f, p, r), true
}

// Inelastic samples and applies a secondary-neutron-producing reaction
// other than elastic and fission, weighted by cross section at the
// current energy. Returns ok=false when this isotope has no such channel.
func (iso *Isotope) Inelastic(masterHint int, energy float64, p *particle.Particle, r *rand.Random) (secondaries []reaction.Secondary, ok bool) {
	if iso.secondary.Empty() {
		return nil, false
	}
	idx, f, _ := iso.index(masterHint, energy)
	rx := iso.secondary.Sample(idx, f, r)
	return rx.Apply(p, r), true
}
