// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ace parses the fixed-format ACE continuous-energy cross-section
// tables into typed NeutronTable values, and serializes a
// table back to ACE format byte-exactly.
package ace

// NXS slot indices, following the MCNP ACE conventions.
const (
	nxsLGT  = 0  // length of the second block of data
	nxsZA   = 1  // ZAID
	nxsNES  = 2  // number of energies
	nxsNTR  = 3  // number of reactions, excluding elastic
	nxsNR   = 4  // number of reactions with secondary neutrons, excluding elastic
	nxsNTRP = 5  // number of photon production reactions
	nxsNPCR = 7  // number of delayed neutron precursor families
	nxsNT   = 14 // number of PIKMT reactions
	nxsPHT  = 15 // photon production flag
)

// JXS slot indices (0-based here; the ACE file itself is 1-based FORTRAN
// addressing, handled by Cursor).
const (
	jxsESZ   = 0
	jxsNU    = 1
	jxsMTR   = 2
	jxsLQR   = 3
	jxsTYR   = 4
	jxsLSIG  = 5
	jxsSIG   = 6
	jxsLAND  = 7
	jxsAND   = 8
	jxsLDLW  = 9
	jxsDLW   = 10
	jxsGPD   = 11
	jxsMTRP  = 12
	jxsLSIGP = 13
	jxsSIGP  = 14
	jxsLANDP = 15
	jxsANDP  = 16
	jxsLDLWP = 17
	jxsDLWP  = 18
	jxsYP    = 19
	jxsFIS   = 20
	jxsEND   = 21
	jxsLUNR  = 22
	jxsDNU   = 23
	jxsBDD   = 24
	jxsDNEDL = 25
	jxsDNED  = 26
)

// ENDF MT numbers relevant to the reaction catalog.
const (
	MTElastic      = 2
	MTTotalFission = 18
	MTCapture      = 102
)

// IsChanceFissionMT reports whether mt is one of the first/second/third/
// fourth chance fission partial reactions (19, 20, 21, 38).
func IsChanceFissionMT(mt int) bool {
	switch mt {
	case 19, 20, 21, 38:
		return true
	}
	return false
}

// IsFissionMT reports whether mt identifies any fission channel.
func IsFissionMT(mt int) bool {
	return mt == MTTotalFission || IsChanceFissionMT(mt)
}

// IsDisappearanceMT reports an absorption (non-elastic, non-scattering)
// channel contributing to the disappearance cross section: radiative
// capture and charged-particle emission ranges.
func IsDisappearanceMT(mt int) bool {
	if mt == MTCapture {
		return true
	}
	if mt >= 600 && mt <= 849 {
		return true
	}
	return false
}

// IsSecondaryNeutronMT reports an (n,n') style inelastic scattering
// channel producing secondary neutrons.
func IsSecondaryNeutronMT(mt int) bool {
	return mt >= 50 && mt <= 91
}

// NeutronTable is one isotope's parsed ACE continuous-energy table.
type NeutronTable struct {
	TableName string
	AWR         float64 // atomic weight ratio
	Temperature float64 // kT, in MeV
	Date        string
	Comment     string
	IZ          []int
	AW          []float64

	NXS [16]int
	JXS [32]int
	XSS []float64

	// Energies is the ESZ block's energy grid, this isotope's own tabulated
	// energy points — the grid internal/isotope registers as a ChildGrid
	// against the shared MasterGrid.
	Energies []float64

	Reactions *ReactionContainer
}

func (t *NeutronTable) jxsAddr(slot int) int { return t.JXS[slot] }
func (t *NeutronTable) hasBlock(slot int) bool {
	return t.jxsAddr(slot) > 0
}
