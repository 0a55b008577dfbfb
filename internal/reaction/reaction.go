// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"math"

	"github.com/pellegre/helios/internal/ace"
	"github.com/pellegre/helios/internal/particle"
	"github.com/pellegre/helios/internal/rand"
	"github.com/pellegre/helios/internal/vec3"
)

// Kind discriminates the Reaction tagged variant.
type Kind int

const (
	KindElastic Kind = iota
	KindInelastic
	KindFission
	KindCapture
)

// Secondary is one emitted neutron's (energy, direction) pair, produced by
// fission or inelastic multiplicity sampling. The simulation driver
// (internal/sim) is responsible for depositing these into its own
// thread-local fission bank with the parent particle's weight — Reaction
// itself never touches a bank, keeping this package free of any global or
// shared mutable state.
type Secondary struct {
	Energy    float64
	Direction vec3.Vec3
}

// Reaction is a callable over (particle, rand): it mutates the particle's
// direction and energy in place for scattering, and returns any emitted
// secondary neutrons for fission/inelastic multiplicity.
type Reaction struct {
	Kind Kind
	MT   int
	Q    float64

	AWR         float64 // atomic weight ratio, used for CM-to-lab conversion
	Temperature float64 // kT in MeV, elastic free-gas sampling only
	CM          bool    // true: angular/energy data is in the center-of-mass frame

	Elastic Elastic
	Mu      MuSampler
	Energy  EnergySampler
	Nu      NuSampler
}

// Apply samples one collision event for the given reaction, mutating the
// particle's direction/energy and returning any banked secondaries.
func (rx Reaction) Apply(p *particle.Particle, r *rand.Random) []Secondary {
	switch rx.Kind {
	case KindElastic:
		newEnergy, newDir := rx.Elastic.Scatter(p.Energy, p.Direction, r)
		p.Energy = newEnergy
		p.Direction = newDir
		return nil
	case KindFission:
		n := rx.Nu.Sample(p.Energy, r)
		out := make([]Secondary, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, rx.sampleSecondary(p.Energy, p.Direction, r))
		}
		return out
	case KindInelastic:
		n := rx.Nu.Sample(p.Energy, r)
		if n == 0 {
			p.State = particle.Dead
			return nil
		}
		secondaries := make([]Secondary, 0, n)
		for i := 0; i < n; i++ {
			secondaries = append(secondaries, rx.sampleSecondary(p.Energy, p.Direction, r))
		}
		// The first sampled secondary continues as the transported
		// particle; any extras from (n,2n) and beyond are banked like
		// fission multiplicity.
		p.Energy = secondaries[0].Energy
		p.Direction = secondaries[0].Direction
		return secondaries[1:]
	default:
		p.State = particle.Dead
		return nil
	}
}

// sampleSecondary draws one outgoing (energy, direction) pair for a
// fission or inelastic reaction relative to the particle's current
// direction, in the CM or LAB frame per the reaction's TYR sign, then
// rotates azimuthally about the sampled polar cosine.
func (rx Reaction) sampleSecondary(incident float64, direction vec3.Vec3, r *rand.Random) Secondary {
	outEnergy, mu, muFromLaw := rx.Energy.Sample(incident, r)
	if !muFromLaw {
		mu = rx.Mu.SetCosine(incident, r)
	}
	phi := 2.0 * math.Pi * r.Uniform()

	if !rx.CM {
		dir := vec3.Rotate(direction, mu, phi)
		return Secondary{Energy: outEnergy, Direction: dir}
	}
	return cmToLab(incident, outEnergy, mu, phi, rx.AWR, direction)
}

// cmToLab converts a center-of-mass-frame scattering sample back to the
// lab frame, generalizing Elastic.Scatter's stationary-target special case
// to an arbitrary (non-elastic) CM-frame reaction: the compound-nucleus
// velocity is vc = v_incident/(A+1) along the particle's current
// direction, and the outgoing CM velocity is rotated by (mu, phi) about
// that same direction before being added back to vc.
func cmToLab(incidentEnergy, cmEnergy, mu, phi, awr float64, direction vec3.Vec3) Secondary {
	velIncident := math.Sqrt(incidentEnergy)
	vp := vec3.Scale(velIncident, direction)
	vc := vec3.Scale(1.0/(awr+1.0), vp)

	velCM := math.Sqrt(cmEnergy)
	dirCM := vec3.Rotate(direction, mu, phi)
	vCM := vec3.Scale(velCM, dirCM)

	vLab := vec3.Add(vCM, vc)
	energy := vec3.Dot(vLab, vLab)
	return Secondary{Energy: energy, Direction: vec3.Unit(vLab)}
}

// NewReaction builds the Reaction value for one ACE NeutronReaction entry,
// wiring up its angular/energy/nu samplers. awr is the isotope's atomic
// weight ratio, needed for the CM-to-lab conversion of reactions whose
// TYR frame flag is negative. angleInLaw is true only when the angular
// block marks the angle as sampled inside the energy law itself (Laws
// 44/61).
func NewReaction(nr *ace.NeutronReaction, nu *ace.NuData, awr float64) Reaction {
	mt := nr.MT
	angleInLaw := nr.Angular != nil && len(nr.Angular.Tables) > 0 && nr.Angular.Tables[0].Kind == ace.AngularInLaw44
	mu := NewMuSampler(nr.Angular, angleInLaw)

	kind := KindInelastic
	switch {
	case mt == ace.MTElastic:
		kind = KindElastic
	case ace.IsFissionMT(mt):
		kind = KindFission
	case ace.IsDisappearanceMT(mt):
		kind = KindCapture
	}

	rx := Reaction{
		Kind: kind,
		MT:   mt,
		Q:    nr.Q,
		AWR:  awr,
		CM:   nr.Tyr.Frame(),
		Mu:   mu,
		Nu:   NewNuSampler(nr.Tyr, nu, nr.InlineNu),
	}
	if nr.Energy != nil {
		rx.Energy = NewEnergyChain(nr.Energy)
	}
	return rx
}

// NewElastic builds the dedicated elastic-scattering Reaction, distinct from NewReaction because elastic carries no
// energy-law chain — only a free-gas thermal scattering model.
func NewElastic(nr *ace.NeutronReaction, awr, temperature float64) Reaction {
	angleInLaw := nr.Angular != nil && len(nr.Angular.Tables) > 0 && nr.Angular.Tables[0].Kind == ace.AngularInLaw44
	mu := NewMuSampler(nr.Angular, angleInLaw)
	return Reaction{
		Kind:        KindElastic,
		MT:          ace.MTElastic,
		AWR:         awr,
		Temperature: temperature,
		Elastic:     Elastic{AWR: awr, Temperature: temperature, Mu: mu},
	}
}
