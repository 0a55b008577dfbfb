// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"math"

	"github.com/pellegre/helios/internal/ace"
	"github.com/pellegre/helios/internal/rand"
)

// EnergySampler samples an outgoing energy (and, for Law 44/61, a
// correlated scattering cosine) given the particle's incident energy.
// The returned angle is only meaningful when ok is true; otherwise the
// reaction's own MuSampler supplies the cosine.
type EnergySampler interface {
	Sample(energy float64, r *rand.Random) (outEnergy float64, mu float64, muOK bool)
}

// EnergyChain walks the LNW linked list of energy laws, picking the active
// law by its tabulated probability-as-function-of-incident-energy before
// delegating to that law's own sampler.
type EnergyChain struct {
	head *ace.EnergyLaw
}

// NewEnergyChain wraps the EnergyLaw linked list parsed by internal/ace.
func NewEnergyChain(head *ace.EnergyLaw) *EnergyChain { return &EnergyChain{head: head} }

func (c *EnergyChain) Sample(energy float64, r *rand.Random) (float64, float64, bool) {
	law := c.selectLaw(energy, r)
	return sampleLaw(law, energy, r)
}

// selectLaw walks the chain and picks the law whose cumulative
// interpolated probability first exceeds a uniform draw, matching the
// ACE DLW convention where every law carries its own probability-of-
// validity table over incident energy.
func (c *EnergyChain) selectLaw(energy float64, r *rand.Random) *ace.EnergyLaw {
	if c.head.Next == nil {
		return c.head
	}
	chi := r.Uniform()
	cum := 0.0
	for law := c.head; law != nil; law = law.Next {
		cum += interpolateProb(law, energy)
		if chi <= cum || law.Next == nil {
			return law
		}
	}
	return c.head
}

func interpolateProb(law *ace.EnergyLaw, energy float64) float64 {
	if len(law.ProbEnergies) == 0 {
		return 1.0
	}
	idx, factor := linearInterpolate(law.ProbEnergies, energy)
	return law.ProbValues[idx] + factor*(law.ProbValues[idx+1]-law.ProbValues[idx])
}

// sampleLaw dispatches an outgoing energy sample to the concrete law
// implementation. Every ACE law this engine supports has an
// explicit case; an unrecognized LawNumber is a parse-time
// UnsupportedLawError raised in internal/ace, never reached here.
func sampleLaw(law *ace.EnergyLaw, energy float64, r *rand.Random) (float64, float64, bool) {
	switch law.LawNumber {
	case 1:
		return sampleEquiBins(law.Law1, energy, r), 0, false
	case 2:
		return sampleDiscretePhoton(law.Law2, energy), 0, false
	case 3:
		return sampleLevelScatter(law.Law3, energy), 0, false
	case 4:
		return sampleContinuousTabular(law.Law4, energy, r), 0, false
	case 5:
		return sampleGeneralEvaporation(law.Law5, energy, r), 0, false
	case 7:
		return sampleMaxwell(law.Law7, energy, r), 0, false
	case 9:
		return sampleEvaporation(law.Law9, energy, r), 0, false
	case 11:
		return sampleWatt(law.Law11, energy, r), 0, false
	case 22:
		return sampleContinuousTabular(law.Law22, energy, r), 0, false
	case 24:
		return sampleUKLaw6(law.Law24, energy, r), 0, false
	case 44:
		return sampleKalbach(law.Law44, energy, r)
	case 61:
		return sampleLawAngleCorrelated(law.Law61, energy, r)
	case 66:
		return sampleNBodyPhaseSpace(law.Law66, energy, r), 0, false
	case 67:
		e, mu := sampleLabAngleEnergy(law.Law67, energy, r)
		return e, mu, true
	default:
		// Parse time already rejects unknown laws (ace.UnsupportedLawError);
		// reaching here would be an internal inconsistency.
		panic("reaction: unhandled energy law number")
	}
}

// sampleEquiBins implements Law 1: interpolate the incident energy between
// the two nearest tabulated rows, then sample one of the nbins
// equiprobable outgoing-energy bins and interpolate within it.
func sampleEquiBins(law *ace.EquiBinsLaw, energy float64, r *rand.Random) float64 {
	idx, factor := linearInterpolate(law.Energies, energy)
	chi := r.Uniform()
	low := equiBinSample(law.Bins[idx], chi)
	high := equiBinSample(law.Bins[idx+1], chi)
	return low + factor*(high-low)
}

// equiBinSample picks one of n equiprobable bins by chi and linearly
// interpolates within it.
func equiBinSample(boundaries []float64, chi float64) float64 {
	n := len(boundaries) - 1
	pos := int(chi * float64(n))
	if pos >= n {
		pos = n - 1
	}
	return boundaries[pos] + (chi*float64(n)-float64(pos))*(boundaries[pos+1]-boundaries[pos])
}

// sampleDiscretePhoton is Law 2: a fixed secondary energy, primary or
// scaled by the mass ratio per the LP flag.
func sampleDiscretePhoton(law *ace.DiscretePhotonLaw, energy float64) float64 {
	if law.LP == 2 {
		return law.Energy * (law.AWR + 1.0) / law.AWR
	}
	return law.Energy
}

// sampleLevelScatter is Law 3: E' = LDAT2*(E - LDAT1), a fixed linear
// relation used for discrete inelastic levels.
func sampleLevelScatter(law *ace.LevelScatterLaw, energy float64) float64 {
	out := law.LDAT2 * (energy - law.LDAT1)
	if out < 0 {
		return 0
	}
	return out
}

// sampleContinuousTabular implements Laws 4/22: pick the bracketing
// incident-energy rows, sample each via CDF inversion, then interpolate
// between the two results by the unified energy/coarse scheme (scheme C
// of ENDF-6/ACE: interpolate on the fractional rank, not the energy).
func sampleContinuousTabular(law *ace.ContinuousTabular, energy float64, r *rand.Random) float64 {
	idx, factor := linearInterpolate(law.Energies, energy)
	chi := r.Uniform()
	low := sampleRow(law.Rows[idx], chi)
	high := sampleRow(law.Rows[idx+1], chi)
	return low + factor*(high-low)
}

func sampleRow(row ace.EnergyRow, chi float64) float64 {
	pts := row.Points
	n := len(pts)
	i := upperBoundPoints(pts, chi) - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}
	if row.Histogram {
		return pts[i].E + (chi-pts[i].CDF)/pts[i].PDF
	}
	g := (pts[i+1].PDF - pts[i].PDF) / (pts[i+1].E - pts[i].E)
	if g == 0 {
		return pts[i].E + (chi-pts[i].CDF)/pts[i].PDF
	}
	h := math.Sqrt(pts[i].PDF*pts[i].PDF + 2*g*(chi-pts[i].CDF))
	return pts[i].E + (1/g)*(h-pts[i].PDF)
}

func upperBoundPoints(pts []ace.TabularPoint, chi float64) int {
	lo, hi := 0, len(pts)
	for lo < hi {
		mid := (lo + hi) / 2
		if pts[mid].CDF > chi {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// sampleGeneralEvaporation is Law 5: sample the scaled variable X from
// its equiprobable-bin table, with the outgoing energy recovered as
// E' = X * theta(E).
func sampleGeneralEvaporation(law *ace.GeneralEvaporationLaw, energy float64, r *rand.Random) float64 {
	idx, factor := linearInterpolate(law.Energies, energy)
	theta := law.Theta[idx] + factor*(law.Theta[idx+1]-law.Theta[idx])

	x := equiBinSample(law.X, r.Uniform())
	return x * theta
}

// sampleMaxwell is Law 7: Maxwellian spectrum f(E') ~ sqrt(E') exp(-E'/T),
// sampled via the Watt-style Maxwell rejection sum-of-squares algorithm
// and capped by the restriction energy U.
func sampleMaxwell(law *ace.MaxwellLaw, energy float64, r *rand.Random) float64 {
	idx, factor := linearInterpolate(law.Energies, energy)
	t := law.Temperature[idx] + factor*(law.Temperature[idx+1]-law.Temperature[idx])

	emax := energy - law.U
	if emax <= 0 {
		return 0
	}
	for {
		e := sampleMaxwellSpectrum(t, r)
		if e <= emax {
			return e
		}
	}
}

// sampleMaxwellSpectrum draws from the unrestricted f(x) ~ sqrt(x)e^{-x/T}
// spectrum via the classic sum-of-three-logs method.
func sampleMaxwellSpectrum(t float64, r *rand.Random) float64 {
	r1, r2, r3 := r.Uniform(), r.Uniform(), r.Uniform()
	c := math.Cos(math.Pi / 2.0 * r3)
	return -t * (math.Log(r1) + math.Log(r2)*c*c)
}

// sampleEvaporation is Law 9: evaporation spectrum f(E') ~ E' e^{-E'/T},
// sampled by the standard -T*ln(r1*r2) construction and capped at U.
func sampleEvaporation(law *ace.EvaporationLaw, energy float64, r *rand.Random) float64 {
	idx, factor := linearInterpolate(law.Energies, energy)
	t := law.Temperature[idx] + factor*(law.Temperature[idx+1]-law.Temperature[idx])

	emax := energy - law.U
	if emax <= 0 {
		return 0
	}
	for {
		r1, r2 := r.Uniform(), r.Uniform()
		e := -t * math.Log(r1*r2)
		if e <= emax {
			return e
		}
	}
}

// sampleWatt is Law 11: Watt fission spectrum f(E') ~ e^{-E'/a} sinh(sqrt(bE')),
// sampled via the Maxwell-plus-shift construction from the ENDF-6 manual.
func sampleWatt(law *ace.WattLaw, energy float64, r *rand.Random) float64 {
	aIdx, aFactor := linearInterpolate(law.EnergiesA, energy)
	a := law.A[aIdx] + aFactor*(law.A[aIdx+1]-law.A[aIdx])
	bIdx, bFactor := linearInterpolate(law.EnergiesB, energy)
	b := law.B[bIdx] + bFactor*(law.B[bIdx+1]-law.B[bIdx])

	emax := energy - law.U
	if emax <= 0 {
		return 0
	}
	for {
		e := sampleMaxwellSpectrum(a, r)
		mu := 1.0 - 2.0*r.Uniform()
		e += a*a*b/4.0 + mu*math.Sqrt(a*a*b*e)
		if e >= 0 && e <= emax {
			return e
		}
	}
}

// sampleUKLaw6 is Law 24: like Law 1, but the equiprobable table's bin
// count scales with incident energy.
func sampleUKLaw6(law *ace.UKLaw6, energy float64, r *rand.Random) float64 {
	idx, factor := linearInterpolate(law.Energies, energy)
	chi := r.Uniform()
	low := equiBinSample(law.Points[idx], chi)
	high := equiBinSample(law.Points[idx+1], chi)
	return low + factor*(high-low)
}

// sampleKalbach is Law 44: Kalbach-Mann correlated energy-angle law. The
// outgoing energy is sampled by CDF inversion from one incident-energy row
// only (the upper bracketing row when the interpolation factor exceeds
// 0.5, else the lower one); unlike Law 4 it is not interpolated between
// the two rows. The correlated cosine then follows the Kalbach systematics
// using the precompound fraction R and slope A of the tabulated point at
// or below the sampled CDF value, taken as they are, not interpolated.
func sampleKalbach(law *ace.ContinuousTabular, energy float64, r *rand.Random) (float64, float64, bool) {
	idx, factor := linearInterpolate(law.Energies, energy)
	chi := r.Uniform()
	row := law.Rows[idx]
	if factor > 0.5 {
		row = law.Rows[idx+1]
	}
	outE := sampleRow(row, chi)

	i := upperBoundPoints(row.Points, chi) - 1
	if i < 0 {
		i = 0
	}
	if i > len(row.Points)-1 {
		i = len(row.Points) - 1
	}
	rKalbach := row.Points[i].R
	aKalbach := row.Points[i].A

	xi := r.Uniform()
	var mu float64
	if r.Uniform() < rKalbach {
		mu = math.Log(xi*math.Exp(aKalbach)+(1-xi)*math.Exp(-aKalbach)) / aKalbach
	} else {
		t := (2*xi - 1) * math.Sinh(aKalbach)
		mu = math.Log(t+math.Sqrt(t*t+1)) / aKalbach
	}
	if mu > 1 {
		mu = 1
	}
	if mu < -1 {
		mu = -1
	}
	return outE, mu, true
}

// sampleLawAngleCorrelated is Law 61: tabular correlated energy-angle
// law. The outgoing energy is sampled by CDF inversion from the lower
// bracketing incident-energy row only, with no interpolation toward the
// upper row; the cosine then samples from the nested angular table stored
// at that outgoing-energy point.
func sampleLawAngleCorrelated(law *ace.ContinuousTabular, energy float64, r *rand.Random) (float64, float64, bool) {
	idx, _ := linearInterpolate(law.Energies, energy)
	chi := r.Uniform()
	row := law.Rows[idx]
	outE := sampleRow(row, chi)

	i := upperBoundPoints(row.Points, chi) - 1
	if i < 0 {
		i = 0
	}
	if i > len(row.Points)-1 {
		i = len(row.Points) - 1
	}
	if row.Points[i].Ang == nil {
		return outE, 1.0 - 2.0*r.Uniform(), true
	}
	table := buildCosineTable(*row.Points[i].Ang)
	return outE, table.Sample(r), true
}

// sampleNBodyPhaseSpace is Law 66: closed-form N-body breakup phase-space
// spectrum (ENDF-6 manual formula), parameterized by the number of bodies
// and their total mass ratio.
func sampleNBodyPhaseSpace(law *ace.NBodyPhaseSpaceLaw, energy float64, r *rand.Random) float64 {
	eMax := (law.APSX - 1.0) / law.APSX * energy
	var x float64
	switch law.NBodies {
	case 3:
		x = nBodyRatio(r, 0.5)
	case 4:
		x = nBodyRatio(r, 1.0)
	case 5:
		x = nBodyRatio(r, 1.5)
	default:
		x = nBodyRatio(r, 0.5)
	}
	return x * eMax
}

// nBodyRatio samples x ~ x^(a) sqrt(1-x) via rejection against its
// maximum, a standard beta-like construction for the N-body spectrum.
func nBodyRatio(r *rand.Random, a float64) float64 {
	for {
		x := r.Uniform()
		f := math.Pow(x, a) * math.Sqrt(1-x)
		fmax := math.Pow(a/(a+0.5), a) * math.Sqrt(0.5/(a+0.5))
		if r.Uniform()*fmax <= f {
			return x
		}
	}
}

// sampleLabAngleEnergy is Law 67: correlated lab-frame angle-energy table,
// structured identically to Law 61 but already expressed in the lab
// system, so no CM-to-lab conversion follows.
func sampleLabAngleEnergy(law *ace.LabAngleEnergyLaw, energy float64, r *rand.Random) (float64, float64) {
	idx, _ := linearInterpolate(law.Energies, energy)
	chi := r.Uniform()
	row := law.Rows[idx]
	outE := sampleRow(row, chi)

	i := upperBoundPoints(row.Points, chi) - 1
	if i < 0 {
		i = 0
	}
	if i > len(row.Points)-1 {
		i = len(row.Points) - 1
	}
	return outE, row.Points[i].Mu
}
