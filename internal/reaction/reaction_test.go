// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/pellegre/helios/internal/ace"
	"github.com/pellegre/helios/internal/particle"
	"github.com/pellegre/helios/internal/rand"
	"github.com/pellegre/helios/internal/vec3"
)

func TestLinearInterpolateClampsAtGridEdges(t *testing.T) {
	grid := []float64{1.0, 2.0, 4.0}

	idx, f := linearInterpolate(grid, 0.5)
	if idx != 0 || f != 0.0 {
		t.Fatalf("below grid: got (%d, %g), want (0, 0)", idx, f)
	}
	idx, f = linearInterpolate(grid, 10.0)
	if idx != 1 || f != 1.0 {
		t.Fatalf("above grid: got (%d, %g), want (1, 1)", idx, f)
	}
	idx, f = linearInterpolate(grid, 3.0)
	if idx != 1 {
		t.Fatalf("interior: got index %d, want 1", idx)
	}
	chk.Float64(t, "factor", 1e-12, f, 0.5)
}

func TestNuSamplerVariants(t *testing.T) {
	r := rand.New(3)

	if n := (OneNu{}).Sample(5.0, r); n != 1 {
		t.Fatalf("OneNu: got %d", n)
	}
	if n := (FixedNu{N: 3}).Sample(5.0, r); n != 3 {
		t.Fatalf("FixedNu: got %d", n)
	}

	// Integer-valued nu-bar never rounds, regardless of the random stream.
	tab := TabularNu{Energies: []float64{0.0, 10.0}, Nu: []float64{2.0, 2.0}}
	for i := 0; i < 100; i++ {
		if n := tab.Sample(1.0, r); n != 2 {
			t.Fatalf("TabularNu at integer nu-bar: got %d", n)
		}
	}
}

func TestIntegerPartMatchesExpectation(t *testing.T) {
	// nu-bar = 2.43 must average 2.43 over many probabilistic roundings.
	r := rand.New(11)
	const nubar = 2.43
	const n = 200000
	sum := 0
	for i := 0; i < n; i++ {
		sum += integerPart(nubar, r)
	}
	mean := float64(sum) / float64(n)
	if math.Abs(mean-nubar) > 0.01 {
		t.Fatalf("integerPart mean = %g, want %g +/- 0.01", mean, nubar)
	}
}

func TestPolynomialNuEvaluatesHorner(t *testing.T) {
	// nu-bar(E) = 1 + 2E at E=0.5 -> 2.0 exactly, so rounding never fires.
	p := PolynomialNu{Coefficients: []float64{1.0, 2.0}}
	r := rand.New(5)
	for i := 0; i < 50; i++ {
		if n := p.Sample(0.5, r); n != 2 {
			t.Fatalf("PolynomialNu: got %d, want 2", n)
		}
	}
}

func TestEquiBinsTableStaysInsideBins(t *testing.T) {
	bins := make([]float64, 33)
	for i := range bins {
		bins[i] = -1.0 + float64(i)/16.0
	}
	tab := EquiBinsTable{Bins: bins}
	r := rand.New(17)
	sum := 0.0
	const n = 100000
	for i := 0; i < n; i++ {
		mu := tab.Sample(r)
		if mu < -1.0 || mu > 1.0 {
			t.Fatalf("mu = %g out of [-1,1]", mu)
		}
		sum += mu
	}
	// Equal-width equiprobable bins over [-1,1] are the isotropic density.
	if mean := sum / n; math.Abs(mean) > 0.01 {
		t.Fatalf("mean mu = %g, want ~0 for a symmetric table", mean)
	}
}

func TestTabularTableHistogramAndLinLin(t *testing.T) {
	// Flat pdf over [-1,1]: mean 0, full range, for both schemes.
	for _, histogram := range []bool{true, false} {
		tab := TabularTable{
			Histogram: histogram,
			Cosines:   []float64{-1.0, 0.0, 1.0},
			PDF:       []float64{0.5, 0.5, 0.5},
			CDF:       []float64{0.0, 0.5, 1.0},
		}
		r := rand.New(23)
		sum := 0.0
		const n = 100000
		for i := 0; i < n; i++ {
			mu := tab.Sample(r)
			if mu < -1.0 || mu > 1.0 {
				t.Fatalf("histogram=%v: mu = %g out of [-1,1]", histogram, mu)
			}
			sum += mu
		}
		if mean := sum / n; math.Abs(mean) > 0.01 {
			t.Fatalf("histogram=%v: mean mu = %g, want ~0", histogram, mean)
		}
	}
}

func TestMuSamplerSelection(t *testing.T) {
	if _, ok := NewMuSampler(nil, true).(MuNull); !ok {
		t.Fatalf("angle-in-law flag must select MuNull")
	}
	if _, ok := NewMuSampler(nil, false).(MuIsotropic); !ok {
		t.Fatalf("missing angular data must select MuIsotropic")
	}
	ang := &ace.AngularDistribution{
		Energies: []float64{1.0, 2.0},
		Tables: []ace.AngularTable{
			{Kind: ace.AngularIsotropic},
			{Kind: ace.AngularIsotropic},
		},
	}
	if _, ok := NewMuSampler(ang, false).(MuTable); !ok {
		t.Fatalf("tabulated angular data must select MuTable")
	}
}

func levelScatterLaw(ldat1, ldat2 float64) *ace.EnergyLaw {
	return &ace.EnergyLaw{
		LawNumber: 3,
		Law3:      &ace.LevelScatterLaw{LDAT1: ldat1, LDAT2: ldat2},
	}
}

func TestEnergyChainLevelScatter(t *testing.T) {
	chain := NewEnergyChain(levelScatterLaw(0.5, 0.8))
	r := rand.New(29)
	e, _, muOK := chain.Sample(2.0, r)
	chk.Float64(t, "E'", 1e-12, e, 0.8*(2.0-0.5))
	if muOK {
		t.Fatalf("level scatter carries no correlated angle")
	}
	// Below threshold the outgoing energy clamps at zero.
	e, _, _ = chain.Sample(0.1, r)
	if e != 0 {
		t.Fatalf("below-threshold level scatter: got %g, want 0", e)
	}
}

func TestEnergyChainPicksLawByProbability(t *testing.T) {
	// Two laws: the first active with probability 0 everywhere, the second
	// with probability 1 — every sample must come from the second.
	first := levelScatterLaw(0.0, 0.1)
	first.ProbEnergies = []float64{0.0, 10.0}
	first.ProbValues = []float64{0.0, 0.0}
	second := levelScatterLaw(0.0, 0.9)
	second.ProbEnergies = []float64{0.0, 10.0}
	second.ProbValues = []float64{1.0, 1.0}
	first.Next = second

	chain := NewEnergyChain(first)
	r := rand.New(31)
	for i := 0; i < 100; i++ {
		e, _, _ := chain.Sample(1.0, r)
		chk.Float64(t, "E'", 1e-12, e, 0.9)
	}
}

func TestMaxwellSpectrumMean(t *testing.T) {
	// The unrestricted Maxwell spectrum has mean 3T/2.
	r := rand.New(37)
	const temp = 1.3
	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += sampleMaxwellSpectrum(temp, r)
	}
	mean := sum / n
	if math.Abs(mean-1.5*temp) > 0.02 {
		t.Fatalf("Maxwell mean = %g, want %g", mean, 1.5*temp)
	}
}

func TestKalbachCosineStaysBounded(t *testing.T) {
	law := &ace.ContinuousTabular{
		Energies: []float64{1.0, 10.0},
		Rows: []ace.EnergyRow{
			{Points: []ace.TabularPoint{
				{E: 0.1, PDF: 0.5, CDF: 0.0, R: 0.4, A: 1.2},
				{E: 2.0, PDF: 0.5, CDF: 1.0, R: 0.4, A: 1.2},
			}},
			{Points: []ace.TabularPoint{
				{E: 0.1, PDF: 0.5, CDF: 0.0, R: 0.4, A: 1.2},
				{E: 2.0, PDF: 0.5, CDF: 1.0, R: 0.4, A: 1.2},
			}},
		},
	}
	r := rand.New(41)
	for i := 0; i < 10000; i++ {
		e, mu, muOK := sampleKalbach(law, 5.0, r)
		if !muOK {
			t.Fatalf("Kalbach must produce its own cosine")
		}
		if mu < -1.0 || mu > 1.0 {
			t.Fatalf("Kalbach mu = %g out of [-1,1]", mu)
		}
		if e < 0 {
			t.Fatalf("Kalbach E' = %g negative", e)
		}
	}
}

func TestElasticScatterHeavyTargetConservesEnergyBound(t *testing.T) {
	// Stationary heavy target: outgoing lab energy never exceeds the
	// incident energy and the direction stays unit length.
	el := Elastic{AWR: 235.0, Temperature: 2.53e-8, Mu: MuIsotropic{}}
	r := rand.New(43)
	const e0 = 1.0 // far above 400 kT
	for i := 0; i < 10000; i++ {
		e1, dir := el.Scatter(e0, vec3.Vec3{1, 0, 0}, r)
		if e1 > e0*(1.0+1e-12) {
			t.Fatalf("elastic scatter gained energy: %g > %g", e1, e0)
		}
		emin := e0 * math.Pow((235.0-1.0)/(235.0+1.0), 2)
		if e1 < emin*(1.0-1e-9) {
			t.Fatalf("elastic scatter below kinematic floor: %g < %g", e1, emin)
		}
		if n := vec3.Norm(dir); math.Abs(n-1.0) > 1e-9 {
			t.Fatalf("direction norm %g after scatter", n)
		}
	}
}

func TestElasticScatterFreeGasKeepsUnitDirection(t *testing.T) {
	// Below the free-gas threshold the target velocity is sampled; the
	// outgoing direction must still be unit and the energy finite.
	el := Elastic{AWR: 0.999, Temperature: 2.53e-8, Mu: MuIsotropic{}}
	r := rand.New(47)
	const e0 = 1e-7
	for i := 0; i < 1000; i++ {
		e1, dir := el.Scatter(e0, vec3.Vec3{0, 0, 1}, r)
		if math.IsNaN(e1) || math.IsInf(e1, 0) || e1 < 0 {
			t.Fatalf("free-gas scatter produced energy %g", e1)
		}
		if n := vec3.Norm(dir); math.Abs(n-1.0) > 1e-9 {
			t.Fatalf("direction norm %g after free-gas scatter", n)
		}
	}
}

func TestXsSamplerBranchesByCrossSection(t *testing.T) {
	// Two reactions, both active from index 0, weights 3:1 at every index.
	xsA := ace.NewCrossSection(1, []float64{3.0, 3.0, 3.0})
	xsB := ace.NewCrossSection(1, []float64{1.0, 1.0, 1.0})
	s := NewXsSampler([]string{"a", "b"}, []ace.CrossSection{xsA, xsB}, 3)
	if s.Empty() {
		t.Fatalf("sampler with two reactions must not be empty")
	}

	r := rand.New(53)
	counts := map[string]int{}
	const n = 100000
	for i := 0; i < n; i++ {
		counts[s.Sample(1, 0.0, r)]++
	}
	fracA := float64(counts["a"]) / n
	if math.Abs(fracA-0.75) > 0.01 {
		t.Fatalf("branch fraction for a = %g, want 0.75 +/- 0.01", fracA)
	}
}

func TestXsSamplerThresholdedReactionInactiveBelowItsRange(t *testing.T) {
	// Reaction b only opens at index 2; below that every sample is a.
	xsA := ace.NewCrossSection(1, []float64{1.0, 1.0, 1.0, 1.0})
	xsB := ace.NewCrossSection(3, []float64{5.0, 5.0})
	s := NewXsSampler([]string{"a", "b"}, []ace.CrossSection{xsA, xsB}, 4)

	r := rand.New(59)
	for i := 0; i < 1000; i++ {
		if got := s.Sample(0, 0.0, r); got != "a" {
			t.Fatalf("below b's threshold: sampled %q", got)
		}
	}
}

func TestXsSamplerEmpty(t *testing.T) {
	s := NewXsSampler(nil, nil, 4)
	if !s.Empty() {
		t.Fatalf("sampler with no reactions must report empty")
	}

	one := NewXsSampler([]string{"only"}, []ace.CrossSection{ace.NewCrossSection(1, []float64{1.0})}, 1)
	if one.Empty() {
		t.Fatalf("single-reaction sampler must not report empty")
	}
	r := rand.New(61)
	if got := one.Sample(0, 0.0, r); got != "only" {
		t.Fatalf("single-reaction sampler returned %q", got)
	}
}

func TestReactionApplyFissionBanksNuSecondaries(t *testing.T) {
	nr := &ace.NeutronReaction{
		MT:     ace.MTTotalFission,
		Tyr:    ace.TyrDistribution{Raw: 19}, // lab frame
		Energy: levelScatterLaw(0.0, 0.5),
	}
	nu := &ace.NuData{TabularEnergies: []float64{0.0, 10.0}, TabularNu: []float64{2.0, 2.0}}
	rx := NewReaction(nr, nu, 235.0)
	if rx.Kind != KindFission {
		t.Fatalf("MT 18 must build a fission reaction")
	}

	r := rand.New(67)
	p := particle.New(vec3.Vec3{}, vec3.Vec3{1, 0, 0}, 2.0, 1.0)
	secondaries := rx.Apply(&p, r)
	if len(secondaries) != 2 {
		t.Fatalf("expected exactly 2 fission secondaries at nu-bar=2, got %d", len(secondaries))
	}
	for i, s := range secondaries {
		chk.Float64(t, "secondary energy", 1e-12, s.Energy, 1.0)
		if n := vec3.Norm(s.Direction); math.Abs(n-1.0) > 1e-9 {
			t.Fatalf("secondary %d direction norm %g", i, n)
		}
	}
}

func TestReactionApplyInelasticContinuesFirstSecondary(t *testing.T) {
	nr := &ace.NeutronReaction{
		MT:     51,
		Tyr:    ace.TyrDistribution{Raw: 1}, // one outgoing neutron, lab frame
		Energy: levelScatterLaw(0.2, 0.5),
	}
	rx := NewReaction(nr, nil, 235.0)
	if rx.Kind != KindInelastic {
		t.Fatalf("MT 51 must build an inelastic reaction")
	}

	r := rand.New(71)
	p := particle.New(vec3.Vec3{}, vec3.Vec3{0, 1, 0}, 1.0, 1.0)
	extra := rx.Apply(&p, r)
	if len(extra) != 0 {
		t.Fatalf("single-multiplicity inelastic must bank nothing, got %d", len(extra))
	}
	chk.Float64(t, "continued energy", 1e-12, p.Energy, 0.5*(1.0-0.2))
	if p.State != particle.Alive {
		t.Fatalf("inelastic with one outgoing neutron must keep the particle alive")
	}
}

func TestNewNuSamplerPrefersInlineTable(t *testing.T) {
	inline := &ace.NuData{TabularEnergies: []float64{0.0, 10.0}, TabularNu: []float64{3.0, 3.0}}
	s := NewNuSampler(ace.TyrDistribution{Raw: 150}, nil, inline)
	r := rand.New(73)
	if n := s.Sample(1.0, r); n != 3 {
		t.Fatalf("inline nu table: got %d, want 3", n)
	}
}
