// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import (
	"fmt"
	"strings"

	gslio "github.com/cpmech/gosl/io"
)

// readFile wraps gslio.ReadFile, which panics instead of returning an error,
// converting that panic into a regular error return.
func readFile(path string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	b = gslio.ReadFile(path)
	return b, nil
}

// ReadTable locates tableName inside the ACE library file at path, at the
// given byte offset (as reported by an xsdir index entry), parses its
// fixed-format header and XSS vector, and assembles a full NeutronTable
// including every reaction block. Reads the whole file up front, then
// parses the in-memory text.
func ReadTable(tableName, path string, address int64) (*NeutronTable, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, &LookupError{Table: tableName, Path: path, Why: err.Error()}
	}
	if address < 0 || int(address) > len(b) {
		return nil, &LookupError{Table: tableName, Path: path, Why: "address past end of file"}
	}
	return parseTable(tableName, string(b[address:]))
}

// parseTable reads one ACE table's text representation: a two-line header,
// the IZ/AW pair block, the 16-word NXS array, the 32-word JXS array, and
// the XSS double vector, then dispatches every reaction block parser,
// following the standard MCNP ACE file layout.
func parseTable(tableName, body string) (t *NeutronTable, err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, &FormatError{Table: tableName, Block: "parse", Why: fmt.Sprintf("%v", r)}
		}
	}()

	lines := strings.SplitN(body, "\n", 3)
	if len(lines) < 3 {
		return nil, &FormatError{Table: tableName, Block: "header", Why: "file too short for header"}
	}
	headerFields := strings.Fields(lines[0])
	if len(headerFields) < 4 {
		return nil, &FormatError{Table: tableName, Block: "header", Why: "short header line"}
	}
	name := headerFields[0]
	awr := atofACE(headerFields[1])
	temp := atofACE(headerFields[2])
	date := headerFields[3]
	comment := strings.TrimSpace(lines[1])

	// The IZ/AW pair block starts immediately after the comment line.
	scan := newFieldScanner(lines[2])

	nt := &NeutronTable{TableName: name, AWR: awr, Temperature: temp, Date: date, Comment: comment}
	nt.IZ = make([]int, 16)
	nt.AW = make([]float64, 16)
	for i := 0; i < 16; i++ {
		nt.IZ[i] = gslio.Atoi(scan.token())
		nt.AW[i] = atofACE(scan.token())
	}
	for i := 0; i < 16; i++ {
		nt.NXS[i] = gslio.Atoi(scan.token())
	}
	for i := 0; i < 32; i++ {
		nt.JXS[i] = gslio.Atoi(scan.token())
	}

	nxss := nt.NXS[nxsLGT]
	if nxss <= 0 {
		return nil, &FormatError{Table: tableName, Block: "NXS", Why: "non-positive XSS length"}
	}
	nt.XSS = make([]float64, nxss)
	for i := 0; i < nxss; i++ {
		nt.XSS[i] = atofACE(scan.token())
	}

	reactions, err := buildReactions(nt)
	if err != nil {
		return nil, err
	}
	nt.Reactions = reactions
	return nt, nil
}

// buildReactions runs every block parser over a fully loaded NXS/JXS/XSS
// table and assembles the ReactionContainer.
func buildReactions(t *NeutronTable) (*ReactionContainer, error) {
	energies, total, absorption, elasticXS, _, err := parseESZ(t)
	if err != nil {
		return nil, err
	}
	t.Energies = energies

	mts, q, tyr, err := parseCatalog(t)
	if err != nil {
		return nil, err
	}

	sigs, err := parseSIG(t, mts)
	if err != nil {
		return nil, err
	}

	angularByMT, err := parseAllAngular(t, mts, tyr)
	if err != nil {
		return nil, err
	}

	energyByMT, err := parseDLW(t, mts, tyr)
	if err != nil {
		return nil, err
	}

	nu, err := parseNU(t)
	if err != nil {
		return nil, err
	}

	delayed, err := parseDelayed(t)
	if err != nil {
		return nil, err
	}

	rc := &ReactionContainer{
		Total:      NewCrossSection(1, total),
		Absorption: NewCrossSection(1, absorption),
		ByMT:       make(map[int]*NeutronReaction, len(mts)),
		Order:      mts,
		Nu:         nu,
		Delayed:    delayed,
	}
	rc.Elastic = NeutronReaction{
		MT:      MTElastic,
		Tyr:     TyrDistribution{Raw: 2},
		XS:      NewCrossSection(1, elasticXS),
		Angular: angularByMT[MTElastic],
	}
	for i, mt := range mts {
		xs, ok := sigs[mt]
		if !ok {
			return nil, &FormatError{Table: t.TableName, Block: "SIG", Why: fmt.Sprintf("missing cross section for MT=%d", mt)}
		}
		nr := &NeutronReaction{
			MT:      mt,
			Q:       q[i],
			Tyr:     tyr[i],
			XS:      xs,
			Angular: angularByMT[mt],
			Energy:  energyByMT[mt],
		}
		if off, ok := tyr[i].InlineNuOffset(); ok {
			inline, err := parseInlineNu(t, off)
			if err != nil {
				return nil, err
			}
			nr.InlineNu = inline
		}
		rc.ByMT[mt] = nr
	}
	return rc, nil
}

// parseAllAngular reads the LAND/AND block for every target reaction,
// skipping the Law 44/61 in-line sentinel.
func parseAllAngular(t *NeutronTable, mts []int, tyr []TyrDistribution) (map[int]*AngularDistribution, error) {
	out := make(map[int]*AngularDistribution)
	if !t.hasBlock(jxsLAND) {
		return out, nil
	}
	targets := landAndTargets(mts, tyr)
	cLoc := NewCursor(t.TableName, t.XSS, t.JXS[jxsLAND])
	locs, err := cLoc.ReadIntVec("LAND", len(targets))
	if err != nil {
		return nil, err
	}
	andBase := t.JXS[jxsAND]
	for i, mt := range targets {
		if locs[i] == -1 {
			// Angle sampled inside the Law 44/61 energy distribution;
			// record the sentinel so the reaction builder selects the
			// null mu sampler instead of assuming isotropy.
			out[mt] = &AngularDistribution{Tables: []AngularTable{{Kind: AngularInLaw44}}}
			continue
		}
		ang, err := parseAngular(t, andBase, locs[i])
		if err != nil {
			return nil, err
		}
		out[mt] = ang
	}
	return out, nil
}

// atofACE accepts both Go/C ('E'/'e') and FORTRAN ('D'/'d') exponent
// markers, the latter common in legacy ACE distributions, before handing
// off to gosl's own Atof.
func atofACE(tok string) float64 {
	return gslio.Atof(strings.NewReplacer("D", "E", "d", "e").Replace(tok))
}

// fieldScanner tokenizes the whitespace-separated numeric body of an ACE
// file one token at a time.
type fieldScanner struct {
	fields []string
	pos    int
}

func newFieldScanner(body string) *fieldScanner {
	return &fieldScanner{fields: strings.Fields(body)}
}

// token returns the next field, or panics with a descriptive message
// recovered by parseTable into a FormatError, matching gosl/io's own
// Atoi/Atof panic-on-bad-input convention.
func (s *fieldScanner) token() string {
	if s.pos >= len(s.fields) {
		panic("XSS underrun: file ended before expected data")
	}
	tok := s.fields[s.pos]
	s.pos++
	return tok
}
