// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

// AngularKind discriminates the angular distribution table stored per
// reaction per incident energy.
type AngularKind int

const (
	AngularIsotropic AngularKind = iota
	AngularEquiBins
	AngularTabularHistogram
	AngularTabularLinLin
	AngularInLaw44 // LAND == -1 sentinel: angle sampled inside the Law 44/61 energy law
)

// AngularTable holds one incident-energy row of an angular distribution.
type AngularTable struct {
	Kind AngularKind
	// Bins holds the 33 cosine boundaries of a 32-equiprobable-bin table
	// (AngularEquiBins), or the tabulated cosine grid (AngularTabular*).
	Bins []float64
	PDF  []float64 // tabular only
	CDF  []float64 // tabular only
}

// AngularDistribution is the full LAND/AND record for one reaction: a
// table per tabulated incident energy.
type AngularDistribution struct {
	Energies []float64
	Tables   []AngularTable
}

// TabularPoint is one (outgoing-energy, pdf, cdf) row of a Law 4/44/61
// continuous tabular distribution, optionally carrying the Kalbach-87
// precompound fraction R and slope parameter A (Law 44) or a nested
// angular table (Law 61).
type TabularPoint struct {
	E   float64
	PDF float64
	CDF float64
	R   float64       // Law 44 only
	A   float64       // Law 44 only
	Ang *AngularTable // Law 61 only: angular distribution at this outgoing energy
	Mu  float64       // Law 67 only: lab-frame cosine tabulated directly at this outgoing energy
}

// Histogram marks whether a tabular law's interpolation scheme is
// histogram (INTT=1) rather than linear-linear (INTT=2).
type EnergyRow struct {
	Points    []TabularPoint
	Histogram bool
}

// ContinuousTabular is the shared shape of Laws 4, 22, 44 and 61: a set of
// incident energies, each mapping to an EnergyRow.
type ContinuousTabular struct {
	Energies []float64
	Rows     []EnergyRow
}

// EquiBinsLaw is Law 1: nbins equiprobable outgoing-energy bins tabulated
// at each incident energy.
type EquiBinsLaw struct {
	Energies []float64
	Bins     [][]float64 // [energy index][nbins+1 boundaries]
}

// LevelScatterLaw is Law 3: E' = LDAT2 * (E - LDAT1) in the CM frame.
type LevelScatterLaw struct {
	LDAT1, LDAT2 float64
}

// GeneralEvaporationLaw is Law 5: E' = X·theta(E), theta tabulated in
// incident energy, X an equiprobable-bin table of the scaled variable.
type GeneralEvaporationLaw struct {
	Energies []float64
	Theta    []float64
	X        []float64
}

// MaxwellLaw is Law 7: Maxwellian spectrum with tabulated temperature and
// a restriction energy U.
type MaxwellLaw struct {
	Energies    []float64
	Temperature []float64
	U           float64
}

// EvaporationLaw is Law 9: evaporation spectrum, tabulated temperature and
// restriction energy U.
type EvaporationLaw struct {
	Energies    []float64
	Temperature []float64
	U           float64
}

// WattLaw is Law 11: energy-dependent Watt fission spectrum with
// independently tabulated a(E), b(E) and restriction energy U.
type WattLaw struct {
	EnergiesA []float64
	A         []float64
	EnergiesB []float64
	B         []float64
	U         float64
}

// UKLaw6 is Law 24: like Law 1 but the number of equiprobable points
// scales with incident energy (UK Law 6 convention).
type UKLaw6 struct {
	Energies []float64
	Points   [][]float64
}

// NBodyPhaseSpaceLaw is Law 66: closed-form N-body phase-space spectrum.
type NBodyPhaseSpaceLaw struct {
	NBodies int
	APSX    float64 // total mass ratio of the N bodies
}

// LabAngleEnergyLaw is Law 67: correlated lab-frame angle-energy table,
// structurally the same shape as Law 61 with the outer index over mu.
type LabAngleEnergyLaw struct {
	Energies []float64
	Rows     []EnergyRow
}

// DiscretePhotonLaw is Law 2, retained for completeness though this
// engine only transports neutrons: the emitted secondary always has a
// fixed energy, primary or fixed-in-lab per the LP flag.
type DiscretePhotonLaw struct {
	LP     int // 0,1: primary photon flag; 2: fixed energy in CM
	Energy float64
	AWR    float64
}

// EnergyLaw is one link of the LNW-chained law list. Exactly one of the
// law-specific fields is populated, matching its LawNumber — a tagged
// variant rather than a deep interface hierarchy.
type EnergyLaw struct {
	LawNumber int
	Next      *EnergyLaw

	// ProbEnergies/ProbValues: piecewise-linear probability that this law
	// is the active one, as a function of incident energy.
	ProbEnergies []float64
	ProbValues   []float64

	Law1  *EquiBinsLaw
	Law2  *DiscretePhotonLaw
	Law3  *LevelScatterLaw
	Law4  *ContinuousTabular
	Law5  *GeneralEvaporationLaw
	Law7  *MaxwellLaw
	Law9  *EvaporationLaw
	Law11 *WattLaw
	Law22 *ContinuousTabular
	Law24 *UKLaw6
	Law44 *ContinuousTabular
	Law61 *ContinuousTabular
	Law66 *NBodyPhaseSpaceLaw
	Law67 *LabAngleEnergyLaw
}

// TyrDistribution decodes the TYR flag for one reaction.
type TyrDistribution struct {
	Raw int
}

const (
	tyrFissionSentinel = 19
	tyrInlineNuOffset  = 100
)

// Frame reports whether the reaction's angular/energy data is tabulated in
// the center-of-mass frame (negative TYR) or the lab frame (positive TYR).
func (t TyrDistribution) Frame() (centerOfMass bool) {
	return t.Raw < 0
}

func (t TyrDistribution) abs() int {
	if t.Raw < 0 {
		return -t.Raw
	}
	return t.Raw
}

// IsFission reports the |TYR|==19 sentinel: nu-bar comes from the NU block.
func (t TyrDistribution) IsFission() bool { return t.abs() == tyrFissionSentinel }

// FixedN reports a fixed outgoing-neutron multiplicity encoded directly
// (|TYR| in {1,2,3,4}), and the multiplicity itself.
func (t TyrDistribution) FixedN() (n int, ok bool) {
	a := t.abs()
	if a >= 1 && a <= 4 {
		return a, true
	}
	return 0, false
}

// InlineNuOffset reports the DLW-relative offset of an inlined nu-bar
// table (|TYR| > 100).
func (t TyrDistribution) InlineNuOffset() (offset int, ok bool) {
	a := t.abs()
	if a > tyrInlineNuOffset {
		return a - (tyrInlineNuOffset + 1), true
	}
	return 0, false
}

// NeutronReaction is one entry of the ACE reaction container.
type NeutronReaction struct {
	MT  int
	Q   float64
	Tyr TyrDistribution

	XS CrossSection

	Angular *AngularDistribution // nil: no_data sentinel (isotropic CM assumed downstream, or angle-in-law44)
	Energy  *EnergyLaw           // linked list head; nil only for elastic (angle-only reaction)

	// InlineNu is the per-reaction nu-bar table inlined in the DLW block
	// when |TYR| > 100; nil otherwise.
	InlineNu *NuData
}

// NuData is the NU block payload: polynomial or tabular nu-bar, optionally
// split into prompt and total tables.
type NuData struct {
	Polynomial []float64 // coefficients c_0..c_k, Σ c_k E^k

	TabularEnergies []float64
	TabularNu       []float64

	// Prompt is set when the NU block stores both a prompt and a total
	// table (KNU pair); Total is always populated.
	Prompt *NuData
}

// PrecursorGroup is one delayed-neutron precursor family from the BDD
// block: its decay constant and the tabulated probability (as a function
// of incident energy) that a delayed neutron belongs to this family.
type PrecursorGroup struct {
	DecayConstant float64
	Energies      []float64
	Probabilities []float64
}

// DelayedData is the parsed DNU/BDD/DNEDL/DNED block set:
// the delayed nu-bar table, the precursor families, and one energy-law
// chain per family.
type DelayedData struct {
	Nu     *NuData
	Groups []PrecursorGroup
	Laws   []*EnergyLaw // one chain per precursor group, DNED-relative
}

// ReactionContainer is the parsed set of named reactions for one isotope.
type ReactionContainer struct {
	Total      CrossSection
	Elastic    NeutronReaction
	Absorption CrossSection
	ByMT       map[int]*NeutronReaction
	Order      []int // MT numbers in file order, excluding elastic
	Nu         *NuData
	Delayed    *DelayedData
}

func (r *ReactionContainer) GetTotal() CrossSection      { return r.Total }
func (r *ReactionContainer) GetElastic() *NeutronReaction { return &r.Elastic }
func (r *ReactionContainer) GetAbsorption() CrossSection { return r.Absorption }

// GetReactions returns every non-elastic reaction in file order.
func (r *ReactionContainer) GetReactions() []*NeutronReaction {
	out := make([]*NeutronReaction, 0, len(r.Order))
	for _, mt := range r.Order {
		out = append(out, r.ByMT[mt])
	}
	return out
}

// GetMT looks up a reaction by MT number.
func (r *ReactionContainer) GetMT(mt int) (*NeutronReaction, bool) {
	if mt == MTElastic {
		return &r.Elastic, true
	}
	rx, ok := r.ByMT[mt]
	return rx, ok
}

// GetXS looks up a reaction's cross section by MT number.
func (r *ReactionContainer) GetXS(mt int) (CrossSection, bool) {
	rx, ok := r.GetMT(mt)
	if !ok {
		return CrossSection{}, false
	}
	return rx.XS, true
}
