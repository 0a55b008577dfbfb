// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isotope

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/pellegre/helios/internal/ace"
	"github.com/pellegre/helios/internal/grid"
	"github.com/pellegre/helios/internal/particle"
	"github.com/pellegre/helios/internal/rand"
	"github.com/pellegre/helios/internal/vec3"
)

// fixtureTable hand-assembles a parsed three-energy NeutronTable with an
// elastic channel (xs 4), radiative capture (xs 1) and, when fissile, a
// single MT=18 fission channel (xs 2, nu-bar 2, level-scatter spectrum in
// the lab frame). Total is the exact sum so the branch probabilities come
// out as simple fractions.
func fixtureTable(name string, fissile bool) *ace.NeutronTable {
	energies := []float64{1e-3, 1.0, 10.0}
	elastic := []float64{4.0, 4.0, 4.0}
	capture := []float64{1.0, 1.0, 1.0}
	fission := []float64{2.0, 2.0, 2.0}

	total := make([]float64, len(energies))
	for i := range total {
		total[i] = elastic[i] + capture[i]
		if fissile {
			total[i] += fission[i]
		}
	}

	rc := &ace.ReactionContainer{
		Total:      ace.NewCrossSection(1, total),
		Absorption: ace.NewCrossSection(1, capture),
		ByMT:       map[int]*ace.NeutronReaction{},
	}
	rc.Elastic = ace.NeutronReaction{
		MT:  ace.MTElastic,
		Tyr: ace.TyrDistribution{Raw: 2},
		XS:  ace.NewCrossSection(1, elastic),
	}

	rc.Order = append(rc.Order, ace.MTCapture)
	rc.ByMT[ace.MTCapture] = &ace.NeutronReaction{
		MT: ace.MTCapture,
		XS: ace.NewCrossSection(1, capture),
	}

	if fissile {
		rc.Order = append(rc.Order, ace.MTTotalFission)
		rc.ByMT[ace.MTTotalFission] = &ace.NeutronReaction{
			MT:  ace.MTTotalFission,
			Tyr: ace.TyrDistribution{Raw: 19}, // lab frame
			XS:  ace.NewCrossSection(1, fission),
			Energy: &ace.EnergyLaw{
				LawNumber: 3,
				Law3:      &ace.LevelScatterLaw{LDAT1: 0.0, LDAT2: 0.5},
			},
		}
		rc.Nu = &ace.NuData{
			TabularEnergies: []float64{1e-3, 10.0},
			TabularNu:       []float64{2.0, 2.0},
		}
	}

	return &ace.NeutronTable{
		TableName:   name,
		AWR:         235.0,
		Temperature: 2.53e-8,
		Energies:    energies,
		Reactions:   rc,
	}
}

func buildFixtureIsotope(t *testing.T, fissile bool) (*Isotope, *grid.MasterGrid) {
	t.Helper()
	master := grid.NewMasterGrid()
	iso, err := New(fixtureTable("92235.70c", fissile), master)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	master.Setup()
	return iso, master
}

func TestIsotopeCrossSectionAssembly(t *testing.T) {
	iso, _ := buildFixtureIsotope(t, true)

	xs, _ := iso.TotalXS(0, 1.0)
	chk.Float64(t, "total", 1e-12, xs, 7.0)
	xs, _ = iso.ElasticXS(0, 1.0)
	chk.Float64(t, "elastic", 1e-12, xs, 4.0)
	// Absorption folds capture and fission together.
	xs, _ = iso.AbsorptionXS(0, 1.0)
	chk.Float64(t, "absorption", 1e-12, xs, 3.0)
	// Inelastic = total - absorption - elastic = 0 for this fixture.
	xs, _ = iso.InelasticXS(0, 1.0)
	chk.Float64(t, "inelastic", 1e-12, xs, 0.0)
}

func TestIsotopeBranchProbabilitiesSumToOne(t *testing.T) {
	iso, _ := buildFixtureIsotope(t, true)

	for _, energy := range []float64{1e-3, 0.02, 1.0, 5.0, 10.0} {
		pa, _ := iso.AbsorptionProb(0, energy)
		pf, _ := iso.FissionProb(0, energy)
		pe, _ := iso.ElasticProb(0, energy)
		if pa < 0 || pa > 1 || pf < 0 || pf > 1 || pe < 0 || pe > 1 {
			t.Fatalf("E=%g: probability out of [0,1]: pa=%g pf=%g pe=%g", energy, pa, pf, pe)
		}
		// Scatter here is elastic only, so absorption + elastic spans
		// the full branch space.
		if math.Abs(pa+pe-1.0) > 1e-9 {
			t.Fatalf("E=%g: pa+pe = %g, want 1", energy, pa+pe)
		}
		chk.Float64(t, "fission prob", 1e-12, pf, 2.0/7.0)
	}
}

func TestIsotopeTotalXsAgreesOnChildGridPoints(t *testing.T) {
	// Spec invariant: sigma_total >= sigma_elastic + sigma_absorption
	// within epsilon at every child grid energy.
	iso, _ := buildFixtureIsotope(t, true)
	for _, energy := range []float64{1e-3, 1.0, 10.0} {
		total, _ := iso.TotalXS(0, energy)
		el, _ := iso.ElasticXS(0, energy)
		abs, _ := iso.AbsorptionXS(0, energy)
		if total < el+abs-1e-9*total {
			t.Fatalf("E=%g: total %g < elastic %g + absorption %g", energy, total, el, abs)
		}
	}
}

func TestIsotopeFissionEmitsNuSecondaries(t *testing.T) {
	iso, _ := buildFixtureIsotope(t, true)
	if !iso.IsFissile() {
		t.Fatalf("fixture must be fissile")
	}

	r := rand.New(7)
	p := particle.New(vec3.Vec3{}, vec3.Vec3{1, 0, 0}, 2.0, 1.0)
	secondaries, ok := iso.Fission(0, 2.0, &p, r)
	if !ok {
		t.Fatalf("Fission must succeed for a fissile isotope")
	}
	if len(secondaries) != 2 {
		t.Fatalf("nu-bar = 2 must emit exactly 2 secondaries, got %d", len(secondaries))
	}
	for _, s := range secondaries {
		chk.Float64(t, "fission secondary energy", 1e-12, s.Energy, 1.0)
		if n := vec3.Norm(s.Direction); math.Abs(n-1.0) > 1e-9 {
			t.Fatalf("secondary direction norm %g", n)
		}
	}
}

func TestIsotopeNonFissile(t *testing.T) {
	iso, _ := buildFixtureIsotope(t, false)
	if iso.IsFissile() {
		t.Fatalf("capture-only fixture must not be fissile")
	}
	pf, _ := iso.FissionProb(0, 1.0)
	if pf != 0 {
		t.Fatalf("non-fissile fission probability = %g", pf)
	}
	r := rand.New(11)
	p := particle.New(vec3.Vec3{}, vec3.Vec3{1, 0, 0}, 1.0, 1.0)
	if _, ok := iso.Fission(0, 1.0, &p, r); ok {
		t.Fatalf("Fission must report ok=false for a non-fissile isotope")
	}
}

func TestIsotopeInelasticAbsentForElasticCaptureFixture(t *testing.T) {
	iso, _ := buildFixtureIsotope(t, true)
	r := rand.New(13)
	p := particle.New(vec3.Vec3{}, vec3.Vec3{1, 0, 0}, 1.0, 1.0)
	if _, ok := iso.Inelastic(0, 1.0, &p, r); ok {
		t.Fatalf("fixture has no secondary-neutron channel besides elastic/fission")
	}
}

func TestIsotopeElasticKeepsParticleAlive(t *testing.T) {
	iso, _ := buildFixtureIsotope(t, false)
	r := rand.New(17)
	p := particle.New(vec3.Vec3{}, vec3.Vec3{0, 0, 1}, 1.0, 1.0)
	iso.Elastic(&p, r)
	if p.State != particle.Alive {
		t.Fatalf("elastic scattering must not kill the particle")
	}
	if p.Energy > 1.0+1e-12 || p.Energy <= 0 {
		t.Fatalf("elastic scatter energy %g outside (0, E0]", p.Energy)
	}
	if n := vec3.Norm(p.Direction); math.Abs(n-1.0) > 1e-9 {
		t.Fatalf("direction norm %g after elastic scatter", n)
	}
}
