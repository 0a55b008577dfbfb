// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pellegre/helios/internal/ace"
	"github.com/pellegre/helios/internal/geom"
	"github.com/pellegre/helios/internal/grid"
	"github.com/pellegre/helios/internal/isotope"
	"github.com/pellegre/helios/internal/logx"
	"github.com/pellegre/helios/internal/material"
	"github.com/pellegre/helios/internal/sim"
	"github.com/pellegre/helios/internal/source"
	"github.com/pellegre/helios/internal/vec3"
	"github.com/pellegre/helios/internal/xsdir"
)

// defaultXSData is the compile-time default ACE data directory used when
// the input file's xs_data setting is absent.
const defaultXSData = "/usr/share/helios/xsdata"

// voidMaterialID is the reserved material id config maps every Void
// MaterialDef to, whatever that def's own id; a void cell names this id
// (-1) as its material in the input. geom.Geometry.Build's own invariant
// check treats MaterialID==0 as "unset", so void cells need a distinct
// non-zero sentinel id that still resolves (to a nil *material.Material)
// in the map SetupMaterials consults, rather than reusing 0.
const voidMaterialID = -1

// Build assembles the full object graph from this decoded Document, in
// dependency order: ACE reader -> Isotope -> MasterGrid.Setup ->
// Materials -> Geometry -> Source -> simulation environment, logging a
// summary line per stage.
func (doc *Document) Build(log *logx.Logger) (*sim.Environment, error) {
	xsData := doc.XSData
	if xsData == "" {
		xsData = defaultXSData
	}
	idx, err := xsdir.Read(doc.Xsdir, xsData)
	if err != nil {
		return nil, err
	}

	master := grid.NewMasterGrid()
	isotopes := make(map[string]*isotope.Isotope)
	for _, m := range doc.Materials {
		for _, frac := range m.Isotopes {
			if _, ok := isotopes[frac.Table]; ok {
				continue
			}
			iso, err := loadIsotope(idx, master, frac.Table)
			if err != nil {
				return nil, err
			}
			isotopes[frac.Table] = iso
			log.Msg("ace: loaded %s (awr=%.4f)", frac.Table, iso.AWR)
		}
	}
	master.Setup()
	log.Ok("grid: unionized master grid with %d points", master.Size())

	materials := make(map[int]*material.Material, len(doc.Materials))
	for _, m := range doc.Materials {
		if m.Void {
			materials[voidMaterialID] = nil
			continue
		}
		fractions := make(map[*isotope.Isotope]float64, len(m.Isotopes))
		for _, frac := range m.Isotopes {
			fractions[isotopes[frac.Table]] = frac.Fraction
		}
		materials[m.ID] = material.New(m.Name, m.Density, fractions)
		log.Msg("material %q: %d isotopes, density=%g", m.Name, len(m.Isotopes), m.Density)
	}

	g, err := doc.Geometry.build()
	if err != nil {
		return nil, err
	}
	if err := g.SetupMaterials(materials); err != nil {
		return nil, err
	}
	log.Ok("geometry: %d surfaces, %d cells, %d universes", len(g.Surfaces()), len(g.Cells()), len(g.Universes()))

	src, err := doc.Source.build()
	if err != nil {
		return nil, err
	}

	return sim.NewEnvironment(g, src), nil
}

// loadIsotope resolves tableName through the xsdir locator, validates its
// library-kind suffix, and parses and wraps its
// ACE table into an Isotope registered against master.
func loadIsotope(idx *xsdir.Index, master *grid.MasterGrid, tableName string) (*isotope.Isotope, error) {
	kind, err := xsdir.LibraryKindOf(tableName)
	if err != nil {
		return nil, err
	}
	if kind != xsdir.KindContinuousNeutron {
		return nil, fmt.Errorf("config: table %q is a thermal S(alpha,beta) table; only continuous-neutron (c) tables are supported", tableName)
	}
	path, address, err := idx.Lookup(tableName)
	if err != nil {
		return nil, err
	}
	t, err := ace.ReadTable(tableName, path, address)
	if err != nil {
		return nil, err
	}
	return isotope.New(t, master)
}

// BuildSimulation wires a Document's settings block into a ready-to-run
// KeffSimulation over the given environment.
func (doc *Document) BuildSimulation(env *sim.Environment) *sim.KeffSimulation {
	seed := uint64(1)
	if doc.Settings.Seed != nil {
		seed = *doc.Settings.Seed
	}
	return sim.NewKeffSimulation(env, doc.Settings.Particles, doc.Settings.Inactive, doc.Settings.Batches, seed)
}

// --- geometry wiring ---

func (gd *GeometryDef) build() (*geom.Geometry, error) {
	surfaceTemplates := make(map[int]geom.Surface, len(gd.Surfaces))
	surfaceDefs := make([]geom.SurfaceDef, 0, len(gd.Surfaces))
	for _, sd := range gd.Surfaces {
		s, err := sd.build()
		if err != nil {
			return nil, err
		}
		surfaceTemplates[sd.ID] = s
		surfaceDefs = append(surfaceDefs, geom.SurfaceDef{UserID: sd.ID, Template: s})
	}

	pins := make(map[int]*geom.Universe, len(gd.PinUniverses))
	for _, ud := range gd.PinUniverses {
		uni, err := buildStandaloneUniverse(ud, surfaceTemplates)
		if err != nil {
			return nil, err
		}
		pins[ud.ID] = uni
	}

	lattices := make([]*geom.Lattice, 0, len(gd.Lattices))
	for _, ld := range gd.Lattices {
		lat, err := ld.build(pins)
		if err != nil {
			return nil, err
		}
		lattices = append(lattices, lat)
	}

	cellDefs := make([]geom.CellDef, 0, len(gd.Cells))
	for _, cd := range gd.Cells {
		gcd, err := cd.build()
		if err != nil {
			return nil, err
		}
		cellDefs = append(cellDefs, gcd)
	}

	g := geom.New()
	if err := g.Build(surfaceDefs, cellDefs, lattices, gd.BaseUniverse); err != nil {
		return nil, err
	}
	return g, nil
}

func (sd *SurfaceDef) build() (geom.Surface, error) {
	flags, err := parseFlags(sd.Flags)
	if err != nil {
		return nil, err
	}
	switch sd.Type {
	case "plane":
		axis, err := parseGeomAxis(sd.Axis)
		if err != nil {
			return nil, err
		}
		return geom.NewPlaneNormal(sd.ID, flags, axis, sd.Coordinate), nil
	case "cylinder":
		axis, err := parseGeomAxis(sd.Axis)
		if err != nil {
			return nil, err
		}
		return geom.NewCylinderOnAxis(sd.ID, flags, axis, sd.Radius, vec3.Vec3(sd.Center)), nil
	case "sphere":
		return geom.NewSphereOnOrigin(sd.ID, flags, vec3.Vec3(sd.Center), sd.Radius), nil
	default:
		return nil, fmt.Errorf("config: surface %d: unknown type %q", sd.ID, sd.Type)
	}
}

func parseFlags(s string) (geom.Flags, error) {
	switch s {
	case "":
		return geom.FlagNone, nil
	case "reflecting":
		return geom.FlagReflecting, nil
	case "vacuum":
		return geom.FlagVacuum, nil
	default:
		return 0, fmt.Errorf("config: unknown surface flag %q", s)
	}
}

func parseGeomAxis(s string) (geom.Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return geom.AxisX, nil
	case "y":
		return geom.AxisY, nil
	case "z":
		return geom.AxisZ, nil
	default:
		return 0, fmt.Errorf("config: unknown axis %q", s)
	}
}

// parseOperand splits a "-3"/"3" operand token into (surface id,
// negative): a leading '-' denotes the negative sense.
func parseOperand(tok string) (id int, negative bool, err error) {
	tok = strings.TrimSpace(tok)
	if strings.HasPrefix(tok, "-") {
		negative = true
		tok = tok[1:]
	}
	id, err = strconv.Atoi(tok)
	if err != nil {
		return 0, false, fmt.Errorf("config: bad surface operand %q: %w", tok, err)
	}
	return id, negative, nil
}

func (cd *CellDef) build() (geom.CellDef, error) {
	materialID := cd.Material
	if materialID == 0 && cd.Fill == 0 && !cd.Dead {
		return geom.CellDef{}, fmt.Errorf("config: cell %d: neither material nor fill", cd.ID)
	}
	operands := make([]geom.OperandDef, 0, len(cd.Operands))
	for _, tok := range cd.Operands {
		id, neg, err := parseOperand(tok)
		if err != nil {
			return geom.CellDef{}, err
		}
		operands = append(operands, geom.OperandDef{SurfaceUserID: id, Negative: neg})
	}
	return geom.CellDef{
		UserID:         cd.ID,
		UniverseID:     cd.Universe,
		Operands:       operands,
		Negated:        cd.Negated,
		Dead:           cd.Dead,
		Transform:      geom.Transformation{Translation: vec3.Vec3(cd.Translation)},
		MaterialID:     materialID,
		FillUniverseID: cd.Fill,
	}, nil
}

// buildStandaloneUniverse builds a flat universe (no nested fills) of the
// kind a lattice's Fills reference, directly via geom's public Cell/
// Universe constructors rather than Geometry.Build's private addUniverse
// recursion, matching the pattern internal/geom's own lattice test uses.
func buildStandaloneUniverse(ud UniverseDef, templates map[int]geom.Surface) (*geom.Universe, error) {
	uni := &geom.Universe{UserID: ud.ID}
	for _, cd := range ud.Cells {
		operands := make([]geom.Operand, 0, len(cd.Operands))
		for _, tok := range cd.Operands {
			id, neg, err := parseOperand(tok)
			if err != nil {
				return nil, err
			}
			tmpl, ok := templates[id]
			if !ok {
				return nil, fmt.Errorf("config: pin universe %d cell %d: unknown surface %d", ud.ID, cd.ID, id)
			}
			operands = append(operands, geom.Operand{Surface: tmpl, Sense: !neg})
		}
		cell := geom.NewCell(cd.ID, operands, cd.Negated, cd.Dead)
		cell.MaterialID = cd.Material
		uni.AddCell(cell)
	}
	return uni, nil
}

func (ld *LatticeDef) build(pins map[int]*geom.Universe) (*geom.Lattice, error) {
	axisA, err := parseGeomAxis(ld.AxisA)
	if err != nil {
		return nil, err
	}
	axisB, err := parseGeomAxis(ld.AxisB)
	if err != nil {
		return nil, err
	}
	if len(ld.Fills) != ld.NX*ld.NY {
		return nil, fmt.Errorf("config: lattice %d: %d fills, expected %d", ld.ID, len(ld.Fills), ld.NX*ld.NY)
	}
	fills := make([]*geom.Universe, len(ld.Fills))
	for i, id := range ld.Fills {
		uni, ok := pins[id]
		if !ok {
			return nil, fmt.Errorf("config: lattice %d: unknown pin universe %d", ld.ID, id)
		}
		fills[i] = uni
	}
	return &geom.Lattice{
		UserID: ld.ID,
		AxisA:  axisA,
		AxisB:  axisB,
		NX:     ld.NX,
		NY:     ld.NY,
		PitchA: ld.PitchA,
		PitchB: ld.PitchB,
		Origin: vec3.Vec3(ld.Origin),
		Fills:  fills,
	}, nil
}

// --- source wiring ---

func (sd *SourceDef) build() (*source.Source, error) {
	sources := make([]*source.ParticleSource, 0, len(sd.Sources))
	for _, psd := range sd.Sources {
		ps, err := psd.build()
		if err != nil {
			return nil, err
		}
		sources = append(sources, ps)
	}
	return source.NewSource(sources, sd.Strengths), nil
}

func (psd *ParticleSourceDef) build() (*source.ParticleSource, error) {
	samplers := make([]*source.ParticleSampler, 0, len(psd.Samplers))
	for _, sampDef := range psd.Samplers {
		s, err := sampDef.build()
		if err != nil {
			return nil, err
		}
		samplers = append(samplers, s)
	}
	return source.NewParticleSource(psd.ID, samplers, psd.Strengths), nil
}

func (sd *ParticleSamplerDef) build() (*source.ParticleSampler, error) {
	sampler := &source.ParticleSampler{
		UserID:             sd.ID,
		ReferencePosition:  vec3.Vec3(sd.Position),
		ReferenceDirection: vec3.Vec3(sd.Direction),
		ReferenceEnergy:    sd.Energy,
	}
	if sd.Isotropic {
		sampler.Distributions = append(sampler.Distributions, source.IsotropicDirection{})
	}
	for _, b := range sd.Box {
		axis, err := parseSourceAxis(b.Axis)
		if err != nil {
			return nil, err
		}
		sampler.Distributions = append(sampler.Distributions, source.Box1D(axis, b.Min, b.Max)...)
	}
	return sampler, nil
}

func parseSourceAxis(s string) (source.Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return source.AxisX, nil
	case "y":
		return source.AxisY, nil
	case "z":
		return source.AxisZ, nil
	default:
		return 0, fmt.Errorf("config: unknown source axis %q", s)
	}
}
