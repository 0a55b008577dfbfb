// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

// parseESZ reads the ESZ block: five NES-length segments — energy grid,
// total xs, absorption xs, elastic xs, average heating number.
func parseESZ(t *NeutronTable) (energies, total, absorption, elastic, heating []float64, err error) {
	nes := t.NXS[nxsNES]
	c := NewCursor(t.TableName, t.XSS, t.JXS[jxsESZ])
	if energies, err = c.ReadVec("ESZ.energy", nes); err != nil {
		return
	}
	if total, err = c.ReadVec("ESZ.total", nes); err != nil {
		return
	}
	if absorption, err = c.ReadVec("ESZ.absorption", nes); err != nil {
		return
	}
	if elastic, err = c.ReadVec("ESZ.elastic", nes); err != nil {
		return
	}
	heating, err = c.ReadVec("ESZ.heating", nes)
	return
}

// parseCatalog reads MTR/LQR/TYR: the ordered list of non-elastic reaction
// MT numbers, their Q values, and their TYR multiplicity/frame codes.
func parseCatalog(t *NeutronTable) (mts []int, q []float64, tyr []TyrDistribution, err error) {
	ntr := t.NXS[nxsNTR]
	if ntr == 0 {
		return nil, nil, nil, nil
	}
	cMTR := NewCursor(t.TableName, t.XSS, t.JXS[jxsMTR])
	if mts, err = cMTR.ReadIntVec("MTR", ntr); err != nil {
		return
	}
	cLQR := NewCursor(t.TableName, t.XSS, t.JXS[jxsLQR])
	if q, err = cLQR.ReadVec("LQR", ntr); err != nil {
		return
	}
	cTYR := NewCursor(t.TableName, t.XSS, t.JXS[jxsTYR])
	raw, err := cTYR.ReadIntVec("TYR", ntr)
	if err != nil {
		return
	}
	tyr = make([]TyrDistribution, ntr)
	for i, v := range raw {
		tyr[i] = TyrDistribution{Raw: v}
	}
	return
}

// parseSIG reads LSIG/SIG: for each cataloged reaction, a locator into SIG
// and the reaction's CrossSection.
func parseSIG(t *NeutronTable, mts []int) (map[int]CrossSection, error) {
	out := make(map[int]CrossSection, len(mts))
	if len(mts) == 0 {
		return out, nil
	}
	cLoc := NewCursor(t.TableName, t.XSS, t.JXS[jxsLSIG])
	locs, err := cLoc.ReadIntVec("LSIG", len(mts))
	if err != nil {
		return nil, err
	}
	sigBase := t.JXS[jxsSIG]
	for i, mt := range mts {
		c := NewCursor(t.TableName, t.XSS, sigBase+locs[i]-1)
		ie, err := c.ReadInt("SIG.IE")
		if err != nil {
			return nil, err
		}
		np, err := c.ReadInt("SIG.NP")
		if err != nil {
			return nil, err
		}
		data, err := c.ReadVec("SIG.xs", np)
		if err != nil {
			return nil, err
		}
		out[mt] = NewCrossSection(ie, data)
	}
	return out, nil
}

// landAndTargets returns the MT list the LAND/AND block covers: elastic
// first, then every cataloged reaction with secondary neutrons (TYR != 0),
// in file order.
func landAndTargets(mts []int, tyr []TyrDistribution) []int {
	out := make([]int, 0, len(mts)+1)
	out = append(out, MTElastic)
	for i, mt := range mts {
		if tyr[i].Raw != 0 {
			out = append(out, mt)
		}
	}
	return out
}

// parseAngular reads one LAND/AND table at a 1-based DLW-relative locator,
// returning nil for the no_data / isotropic sentinel and the in-law44
// sentinel handled by the caller.
func parseAngular(t *NeutronTable, andBase, loc int) (*AngularDistribution, error) {
	if loc == 0 {
		return nil, nil // isotropic in CM, no table
	}
	c := NewCursor(t.TableName, t.XSS, andBase+loc-1)
	ne, err := c.ReadInt("AND.NE")
	if err != nil {
		return nil, err
	}
	energies, err := c.ReadVec("AND.energies", ne)
	if err != nil {
		return nil, err
	}
	locs, err := c.ReadIntVec("AND.locators", ne)
	if err != nil {
		return nil, err
	}
	tables := make([]AngularTable, ne)
	for i, l := range locs {
		table, err := parseAngularTableAt(t, andBase, l)
		if err != nil {
			return nil, err
		}
		tables[i] = table
	}
	return &AngularDistribution{Energies: energies, Tables: tables}, nil
}

// parseAngularTableAt reads a single LAND/AND-style angular table at a
// signed, 1-based locator relative to base: positive selects the
// 32-equiprobable-bin form, negative the tabular pdf/cdf form, zero is
// isotropic. Shared by parseAngular's per-incident-energy rows and Law
// 61's per-outgoing-energy nested angular sub-table.
func parseAngularTableAt(t *NeutronTable, base, l int) (AngularTable, error) {
	switch {
	case l > 0:
		tc := NewCursor(t.TableName, t.XSS, base+l-1)
		np, err := tc.ReadInt("AND.equibins.np")
		if err != nil {
			return AngularTable{}, err
		}
		bins, err := tc.ReadVec("AND.equibins.bins", np)
		if err != nil {
			return AngularTable{}, err
		}
		return AngularTable{Kind: AngularEquiBins, Bins: bins}, nil
	case l < 0:
		tc := NewCursor(t.TableName, t.XSS, base-l-1)
		jflag, err := tc.ReadInt("AND.tab.intt")
		if err != nil {
			return AngularTable{}, err
		}
		np, err := tc.ReadInt("AND.tab.np")
		if err != nil {
			return AngularTable{}, err
		}
		cosines, err := tc.ReadVec("AND.tab.mu", np)
		if err != nil {
			return AngularTable{}, err
		}
		pdf, err := tc.ReadVec("AND.tab.pdf", np)
		if err != nil {
			return AngularTable{}, err
		}
		cdf, err := tc.ReadVec("AND.tab.cdf", np)
		if err != nil {
			return AngularTable{}, err
		}
		kind := AngularTabularLinLin
		if jflag == 1 {
			kind = AngularTabularHistogram
		}
		return AngularTable{Kind: kind, Bins: cosines, PDF: pdf, CDF: cdf}, nil
	default:
		return AngularTable{Kind: AngularIsotropic}, nil
	}
}

// parseEnergyProb reads the common Law header shared by every energy law:
// the incident-energy grid over which the law's activation probability is
// tabulated, NR interpolation regions being ignored beyond linear-linear.
func parseEnergyProb(c *Cursor) (energies, probs []float64, err error) {
	nr, err := c.ReadInt("DLW.NR")
	if err != nil {
		return
	}
	if nr > 0 {
		if _, err = c.ReadIntVec("DLW.NBT", nr); err != nil {
			return
		}
		if _, err = c.ReadIntVec("DLW.INT", nr); err != nil {
			return
		}
	}
	ne, err := c.ReadInt("DLW.NE")
	if err != nil {
		return
	}
	if energies, err = c.ReadVec("DLW.E", ne); err != nil {
		return
	}
	probs, err = c.ReadVec("DLW.P", ne)
	return
}

// skipInterp consumes the NR/NBT/INT interpolation-region header carried
// at the head of every tabulated law payload. Regions beyond linear-linear
// are not distinguished, but the words must still be stepped over.
func skipInterp(c *Cursor, block string) error {
	nr, err := c.ReadInt(block + ".NR")
	if err != nil {
		return err
	}
	if nr > 0 {
		if _, err = c.ReadIntVec(block+".NBT", nr); err != nil {
			return err
		}
		if _, err = c.ReadIntVec(block+".INT", nr); err != nil {
			return err
		}
	}
	return nil
}

// parseContinuousTabular reads the shared Law 4/22/44/61 shape: a locator
// table over incident energy, each pointing at an (E',PDF,CDF[,R,A])
// tuple list. extraCols selects the Kalbach-87 columns (Law 44) or the
// per-point angular sub-table (Law 61).
func parseContinuousTabular(t *NeutronTable, dlwBase int, c *Cursor, kalbach, lawAngular bool) (*ContinuousTabular, error) {
	if err := skipInterp(c, "DLW4"); err != nil {
		return nil, err
	}
	ne, err := c.ReadInt("DLW4.NE")
	if err != nil {
		return nil, err
	}
	energies, err := c.ReadVec("DLW4.E", ne)
	if err != nil {
		return nil, err
	}
	locs, err := c.ReadIntVec("DLW4.L", ne)
	if err != nil {
		return nil, err
	}
	rows := make([]EnergyRow, ne)
	for i, l := range locs {
		rc := NewCursor(t.TableName, t.XSS, dlwBase+l-1)
		intt, err := rc.ReadInt("DLW4.INTT")
		if err != nil {
			return nil, err
		}
		np, err := rc.ReadInt("DLW4.NP")
		if err != nil {
			return nil, err
		}
		eOut, err := rc.ReadVec("DLW4.Eout", np)
		if err != nil {
			return nil, err
		}
		pdf, err := rc.ReadVec("DLW4.pdf", np)
		if err != nil {
			return nil, err
		}
		cdf, err := rc.ReadVec("DLW4.cdf", np)
		if err != nil {
			return nil, err
		}
		var rVals, aVals []float64
		if kalbach {
			if rVals, err = rc.ReadVec("DLW44.R", np); err != nil {
				return nil, err
			}
			if aVals, err = rc.ReadVec("DLW44.A", np); err != nil {
				return nil, err
			}
		}
		var angLocs []int
		if lawAngular {
			if angLocs, err = rc.ReadIntVec("DLW61.LC", np); err != nil {
				return nil, err
			}
		}
		points := make([]TabularPoint, np)
		for j := range points {
			p := TabularPoint{E: eOut[j], PDF: pdf[j], CDF: cdf[j]}
			if kalbach {
				p.R, p.A = rVals[j], aVals[j]
			}
			if lawAngular && angLocs[j] != 0 {
				table, err := parseAngularTableAt(t, dlwBase+l-1, angLocs[j])
				if err != nil {
					return nil, err
				}
				p.Ang = &table
			}
			points[j] = p
		}
		rows[i] = EnergyRow{Points: points, Histogram: intt%10 == 1}
	}
	return &ContinuousTabular{Energies: energies, Rows: rows}, nil
}

// parseLaw dispatches on the ACE law number, reading the law-specific
// payload at its IDAT locator (dlwBase-relative). Every supported law
// number is handled explicitly: an unrecognized one is a hard
// UnsupportedLawError, never a silent default.
func parseLaw(t *NeutronTable, mt, lawNumber, dlwBase, idat int) (*EnergyLaw, error) {
	law := &EnergyLaw{LawNumber: lawNumber}
	c := NewCursor(t.TableName, t.XSS, dlwBase+idat-1)
	switch lawNumber {
	case 1:
		if err := skipInterp(c, "L1"); err != nil {
			return nil, err
		}
		ne, err := c.ReadInt("L1.NE")
		if err != nil {
			return nil, err
		}
		energies, err := c.ReadVec("L1.E", ne)
		if err != nil {
			return nil, err
		}
		net, err := c.ReadInt("L1.NET")
		if err != nil {
			return nil, err
		}
		bins := make([][]float64, ne)
		for i := range bins {
			row, err := c.ReadVec("L1.bins", net)
			if err != nil {
				return nil, err
			}
			bins[i] = row
		}
		law.Law1 = &EquiBinsLaw{Energies: energies, Bins: bins}
	case 2:
		lp, err := c.ReadInt("L2.LP")
		if err != nil {
			return nil, err
		}
		e, err := c.ReadDouble("L2.E")
		if err != nil {
			return nil, err
		}
		law.Law2 = &DiscretePhotonLaw{LP: lp, Energy: e, AWR: t.AWR}
	case 3:
		ldat1, err := c.ReadDouble("L3.LDAT1")
		if err != nil {
			return nil, err
		}
		ldat2, err := c.ReadDouble("L3.LDAT2")
		if err != nil {
			return nil, err
		}
		law.Law3 = &LevelScatterLaw{LDAT1: ldat1, LDAT2: ldat2}
	case 4:
		ct, err := parseContinuousTabular(t, dlwBase, c, false, false)
		if err != nil {
			return nil, err
		}
		law.Law4 = ct
	case 5:
		if err := skipInterp(c, "L5"); err != nil {
			return nil, err
		}
		ne, err := c.ReadInt("L5.NE")
		if err != nil {
			return nil, err
		}
		energies, err := c.ReadVec("L5.E", ne)
		if err != nil {
			return nil, err
		}
		theta, err := c.ReadVec("L5.theta", ne)
		if err != nil {
			return nil, err
		}
		net, err := c.ReadInt("L5.NET")
		if err != nil {
			return nil, err
		}
		x, err := c.ReadVec("L5.X", net)
		if err != nil {
			return nil, err
		}
		law.Law5 = &GeneralEvaporationLaw{Energies: energies, Theta: theta, X: x}
	case 7:
		if err := skipInterp(c, "L7"); err != nil {
			return nil, err
		}
		ne, err := c.ReadInt("L7.NE")
		if err != nil {
			return nil, err
		}
		energies, err := c.ReadVec("L7.E", ne)
		if err != nil {
			return nil, err
		}
		temp, err := c.ReadVec("L7.T", ne)
		if err != nil {
			return nil, err
		}
		u, err := c.ReadDouble("L7.U")
		if err != nil {
			return nil, err
		}
		law.Law7 = &MaxwellLaw{Energies: energies, Temperature: temp, U: u}
	case 9:
		if err := skipInterp(c, "L9"); err != nil {
			return nil, err
		}
		ne, err := c.ReadInt("L9.NE")
		if err != nil {
			return nil, err
		}
		energies, err := c.ReadVec("L9.E", ne)
		if err != nil {
			return nil, err
		}
		temp, err := c.ReadVec("L9.T", ne)
		if err != nil {
			return nil, err
		}
		u, err := c.ReadDouble("L9.U")
		if err != nil {
			return nil, err
		}
		law.Law9 = &EvaporationLaw{Energies: energies, Temperature: temp, U: u}
	case 11:
		if err := skipInterp(c, "L11a"); err != nil {
			return nil, err
		}
		neA, err := c.ReadInt("L11.NEa")
		if err != nil {
			return nil, err
		}
		eA, err := c.ReadVec("L11.Ea", neA)
		if err != nil {
			return nil, err
		}
		a, err := c.ReadVec("L11.a", neA)
		if err != nil {
			return nil, err
		}
		if err := skipInterp(c, "L11b"); err != nil {
			return nil, err
		}
		neB, err := c.ReadInt("L11.NEb")
		if err != nil {
			return nil, err
		}
		eB, err := c.ReadVec("L11.Eb", neB)
		if err != nil {
			return nil, err
		}
		b, err := c.ReadVec("L11.b", neB)
		if err != nil {
			return nil, err
		}
		u, err := c.ReadDouble("L11.U")
		if err != nil {
			return nil, err
		}
		law.Law11 = &WattLaw{EnergiesA: eA, A: a, EnergiesB: eB, B: b, U: u}
	case 22:
		ct, err := parseContinuousTabular(t, dlwBase, c, false, false)
		if err != nil {
			return nil, err
		}
		law.Law22 = ct
	case 24:
		if err := skipInterp(c, "L24"); err != nil {
			return nil, err
		}
		ne, err := c.ReadInt("L24.NE")
		if err != nil {
			return nil, err
		}
		energies, err := c.ReadVec("L24.E", ne)
		if err != nil {
			return nil, err
		}
		net, err := c.ReadInt("L24.NET")
		if err != nil {
			return nil, err
		}
		points := make([][]float64, ne)
		for i := range points {
			row, err := c.ReadVec("L24.points", net)
			if err != nil {
				return nil, err
			}
			points[i] = row
		}
		law.Law24 = &UKLaw6{Energies: energies, Points: points}
	case 44:
		ct, err := parseContinuousTabular(t, dlwBase, c, true, false)
		if err != nil {
			return nil, err
		}
		law.Law44 = ct
	case 61:
		ct, err := parseContinuousTabular(t, dlwBase, c, false, true)
		if err != nil {
			return nil, err
		}
		law.Law61 = ct
	case 66:
		npsx, err := c.ReadInt("L66.NPSX")
		if err != nil {
			return nil, err
		}
		apsx, err := c.ReadDouble("L66.APSX")
		if err != nil {
			return nil, err
		}
		law.Law66 = &NBodyPhaseSpaceLaw{NBodies: npsx, APSX: apsx}
	case 67:
		if err := skipInterp(c, "L67"); err != nil {
			return nil, err
		}
		ne, err := c.ReadInt("L67.NE")
		if err != nil {
			return nil, err
		}
		energies, err := c.ReadVec("L67.E", ne)
		if err != nil {
			return nil, err
		}
		locs, err := c.ReadIntVec("L67.L", ne)
		if err != nil {
			return nil, err
		}
		rows := make([]EnergyRow, ne)
		for i, l := range locs {
			rc := NewCursor(t.TableName, t.XSS, dlwBase+l-1)
			np, err := rc.ReadInt("L67.NP")
			if err != nil {
				return nil, err
			}
			mu, err := rc.ReadVec("L67.mu", np)
			if err != nil {
				return nil, err
			}
			eOut, err := rc.ReadVec("L67.Eout", np)
			if err != nil {
				return nil, err
			}
			pdf, err := rc.ReadVec("L67.pdf", np)
			if err != nil {
				return nil, err
			}
			cdf, err := rc.ReadVec("L67.cdf", np)
			if err != nil {
				return nil, err
			}
			points := make([]TabularPoint, np)
			for j := range points {
				points[j] = TabularPoint{E: eOut[j], PDF: pdf[j], CDF: cdf[j], Mu: mu[j]}
			}
			rows[i] = EnergyRow{Points: points}
		}
		law.Law67 = &LabAngleEnergyLaw{Energies: energies, Rows: rows}
	default:
		return nil, &UnsupportedLawError{MT: mt, Law: lawNumber}
	}
	return law, nil
}

// parseEnergyChain reads one reaction's Law linked list rooted at a
// 1-based LDLW locator.
func parseEnergyChain(t *NeutronTable, dlwBase, loc int, mt int) (*EnergyLaw, error) {
	var head, tail *EnergyLaw
	for loc != 0 {
		c := NewCursor(t.TableName, t.XSS, dlwBase+loc-1)
		lnw, err := c.ReadInt("DLW.LNW")
		if err != nil {
			return nil, err
		}
		lawNumber, err := c.ReadInt("DLW.LAW")
		if err != nil {
			return nil, err
		}
		idat, err := c.ReadInt("DLW.IDAT")
		if err != nil {
			return nil, err
		}
		energies, probs, err := parseEnergyProb(c)
		if err != nil {
			return nil, err
		}
		link, err := parseLaw(t, mt, lawNumber, dlwBase, idat)
		if err != nil {
			return nil, err
		}
		link.ProbEnergies, link.ProbValues = energies, probs
		if head == nil {
			head = link
		} else {
			tail.Next = link
		}
		tail = link
		loc = lnw
	}
	return head, nil
}

// parseDLW builds every non-elastic reaction's energy distribution chain,
// keyed by the LDLW locator index assigned in catalog order, one entry
// per reaction with secondary neutrons.
func parseDLW(t *NeutronTable, mts []int, tyr []TyrDistribution) (map[int]*EnergyLaw, error) {
	out := make(map[int]*EnergyLaw)
	nr := t.NXS[nxsNR]
	if nr == 0 {
		return out, nil
	}
	cLoc := NewCursor(t.TableName, t.XSS, t.JXS[jxsLDLW])
	locs, err := cLoc.ReadIntVec("LDLW", nr)
	if err != nil {
		return nil, err
	}
	dlwBase := t.JXS[jxsDLW]
	idx := 0
	for i, mt := range mts {
		if tyr[i].Raw == 0 {
			continue
		}
		chain, err := parseEnergyChain(t, dlwBase, locs[idx], mt)
		if err != nil {
			return nil, err
		}
		out[mt] = chain
		idx++
	}
	return out, nil
}

// parseDelayed reads the delayed-neutron block set DNU/BDD/DNEDL/DNED
//: the delayed nu-bar table,
// NPCR precursor families with their decay constants and tabulated
// family probabilities, and one energy-law chain per family. Returns nil
// when the table carries no DNU block at all.
func parseDelayed(t *NeutronTable) (*DelayedData, error) {
	if !t.hasBlock(jxsDNU) {
		return nil, nil
	}
	c := NewCursor(t.TableName, t.XSS, t.JXS[jxsDNU])
	nu, err := parseNuTableSeq(c)
	if err != nil {
		return nil, err
	}
	out := &DelayedData{Nu: nu}

	npcr := t.NXS[nxsNPCR]
	if npcr == 0 || !t.hasBlock(jxsBDD) {
		return out, nil
	}

	cb := NewCursor(t.TableName, t.XSS, t.JXS[jxsBDD])
	out.Groups = make([]PrecursorGroup, npcr)
	for i := 0; i < npcr; i++ {
		dec, err := cb.ReadDouble("BDD.DEC")
		if err != nil {
			return nil, err
		}
		energies, probs, err := parseEnergyProb(cb)
		if err != nil {
			return nil, err
		}
		out.Groups[i] = PrecursorGroup{DecayConstant: dec, Energies: energies, Probabilities: probs}
	}

	if !t.hasBlock(jxsDNEDL) {
		return out, nil
	}
	cl := NewCursor(t.TableName, t.XSS, t.JXS[jxsDNEDL])
	locs, err := cl.ReadIntVec("DNEDL", npcr)
	if err != nil {
		return nil, err
	}
	dnedBase := t.JXS[jxsDNED]
	out.Laws = make([]*EnergyLaw, npcr)
	for i, loc := range locs {
		chain, err := parseEnergyChain(t, dnedBase, loc, MTTotalFission)
		if err != nil {
			return nil, err
		}
		out.Laws[i] = chain
	}
	return out, nil
}

// parseInlineNu reads the nu-bar table a |TYR| > 100 reaction inlines in
// the DLW block at offset |TYR|-101. The table
// body is the same KNU shape the NU block uses: a kind word followed by a
// polynomial or tabular payload.
func parseInlineNu(t *NeutronTable, offset int) (*NuData, error) {
	c := NewCursor(t.TableName, t.XSS, t.JXS[jxsDLW]+offset)
	return parseNuTableSeq(c)
}

// parseNU reads the NU block: a polynomial or tabular nu-bar table,
// optionally split into prompt/total pairs when the block stores both
//. The selector word
// at JXS(NU) is either the kind of a single total-only table (1 or 2), or
// negative to mark that a prompt table immediately follows, itself
// immediately followed by the total table.
func parseNU(t *NeutronTable) (*NuData, error) {
	if !t.hasBlock(jxsNU) {
		return nil, nil
	}
	c := NewCursor(t.TableName, t.XSS, t.JXS[jxsNU])
	selector, err := c.ReadDouble("NU.selector")
	if err != nil {
		return nil, err
	}
	if selector < 0 {
		prompt, err := parseNuTableSeq(c)
		if err != nil {
			return nil, err
		}
		total, err := parseNuTableSeq(c)
		if err != nil {
			return nil, err
		}
		total.Prompt = prompt
		return total, nil
	}
	return parseNuBody(c, int(selector))
}

// parseNuTableSeq reads one self-contained nu-bar table starting with its
// own kind word, advancing c past it.
func parseNuTableSeq(c *Cursor) (*NuData, error) {
	kind, err := c.ReadInt("NU.kind")
	if err != nil {
		return nil, err
	}
	return parseNuBody(c, kind)
}

// parseNuBody reads a nu-bar table body (polynomial, kind==1, or tabular,
// kind==2) from the current cursor position.
func parseNuBody(c *Cursor, kind int) (*NuData, error) {
	if kind == 1 {
		n, err := c.ReadInt("NU.poly.N")
		if err != nil {
			return nil, err
		}
		coeffs, err := c.ReadVec("NU.poly.coeffs", n)
		if err != nil {
			return nil, err
		}
		return &NuData{Polynomial: coeffs}, nil
	}
	nr, err := c.ReadInt("NU.tab.NR")
	if err != nil {
		return nil, err
	}
	if nr > 0 {
		if _, err = c.ReadIntVec("NU.tab.NBT", nr); err != nil {
			return nil, err
		}
		if _, err = c.ReadIntVec("NU.tab.INT", nr); err != nil {
			return nil, err
		}
	}
	ne, err := c.ReadInt("NU.tab.NE")
	if err != nil {
		return nil, err
	}
	energies, err := c.ReadVec("NU.tab.E", ne)
	if err != nil {
		return nil, err
	}
	nu, err := c.ReadVec("NU.tab.nu", ne)
	if err != nil {
		return nil, err
	}
	return &NuData{TabularEnergies: energies, TabularNu: nu}, nil
}
