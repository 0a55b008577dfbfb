// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config decodes the input document — materials, geometry,
// source, settings — into the core's own object graph: a whole-file read,
// encoding/json.Unmarshal, then a typed-DTO walk building each module in
// dependency order.
package config

import (
	"encoding/json"
	"fmt"

	gslio "github.com/cpmech/gosl/io"
)

// Document is the top-level decoded input file.
type Document struct {
	XSData string `json:"xs_data"`
	Xsdir  string `json:"xsdir"`

	Materials []MaterialDef `json:"materials"`
	Geometry  GeometryDef   `json:"geometry"`
	Source    SourceDef     `json:"source"`
	Settings  SettingsDef   `json:"settings"`
}

// MaterialDef is one named composition: a density and a set
// of (ACE table, atom-fraction) pairs, or Void for a cell with no
// collision physics.
type MaterialDef struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Density  float64           `json:"density"`
	Void     bool              `json:"void"`
	Isotopes []IsotopeFraction `json:"isotopes"`
}

// IsotopeFraction names one ACE table (by its xsdir table name, e.g.
// "92235.70c") and its atom fraction within the material.
type IsotopeFraction struct {
	Table    string  `json:"table"`
	Fraction float64 `json:"fraction"`
}

// GeometryDef is the flat input to geom.Geometry.Build: surfaces, cells,
// lattices, plus any standalone "pin" universes a lattice's Fills
// reference.
type GeometryDef struct {
	BaseUniverse int           `json:"base_universe"`
	Surfaces     []SurfaceDef  `json:"surfaces"`
	Cells        []CellDef     `json:"cells"`
	Lattices     []LatticeDef  `json:"lattices"`
	PinUniverses []UniverseDef `json:"pin_universes"`
}

// SurfaceDef is one surface template: Type selects the
// quadric variant; Axis/Coordinate apply to planes and on-axis cylinders;
// Center/Radius apply to cylinders and spheres.
type SurfaceDef struct {
	ID         int        `json:"id"`
	Type       string     `json:"type"` // "plane" | "cylinder" | "sphere"
	Axis       string     `json:"axis"` // "x" | "y" | "z"
	Coordinate float64    `json:"coordinate"`
	Center     [3]float64 `json:"center"`
	Radius     float64    `json:"radius"`
	Flags      string     `json:"flags"` // "" | "reflecting" | "vacuum"
}

// CellDef is one cell definition: Operands are surface ids,
// optionally prefixed with '-' for a negative sense.
// At least one of Material/Fill must be set. build lets a Dead cell
// through with neither, but geom.Geometry.Build still rejects such a cell.
type CellDef struct {
	ID          int        `json:"id"`
	Universe    int        `json:"universe"`
	Operands    []string   `json:"operands"`
	Negated     bool       `json:"negated"`
	Dead        bool       `json:"dead"`
	Translation [3]float64 `json:"translation"`
	Material    int        `json:"material"`
	Fill        int        `json:"fill"`
}

// UniverseDef is a standalone universe definition referenced by a
// lattice's Fills: a flat list of cells, built independently of the
// base-universe tree since a lattice's generated cells exist only after
// the lattice's own Expand runs.
type UniverseDef struct {
	ID    int       `json:"id"`
	Cells []CellDef `json:"cells"`
}

// LatticeDef is a rectilinear universe generator: AxisA/AxisB
// name the tiling plane, Fills is the row-major (j*NX+i) list of
// UniverseDef ids occupying each lattice position.
type LatticeDef struct {
	ID     int        `json:"id"`
	AxisA  string     `json:"axis_a"`
	AxisB  string     `json:"axis_b"`
	NX     int        `json:"nx"`
	NY     int        `json:"ny"`
	PitchA float64    `json:"pitch_a"`
	PitchB float64    `json:"pitch_b"`
	Origin [3]float64 `json:"origin"`
	Fills  []int      `json:"fills"`
}

// SourceDef is the top-level weighted mixture of ParticleSourceDefs.
type SourceDef struct {
	Sources   []ParticleSourceDef `json:"sources"`
	Strengths []float64           `json:"strengths"`
}

// ParticleSourceDef is a weighted mixture of ParticleSamplerDefs.
type ParticleSourceDef struct {
	ID        int                  `json:"id"`
	Samplers  []ParticleSamplerDef `json:"samplers"`
	Strengths []float64            `json:"strengths"`
}

// ParticleSamplerDef is a reference pose plus an ordered list of
// distributions.
type ParticleSamplerDef struct {
	ID        int          `json:"id"`
	Position  [3]float64   `json:"position"`
	Direction [3]float64   `json:"direction"`
	Energy    float64      `json:"energy"`
	Isotropic bool         `json:"isotropic"`
	Box       []BoxAxisDef `json:"box"`
}

// BoxAxisDef is one axis-aligned uniform distribution.
type BoxAxisDef struct {
	Axis string  `json:"axis"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// SettingsDef is the criticality block.
type SettingsDef struct {
	Particles int     `json:"particles"`
	Inactive  int     `json:"inactive"`
	Batches   int     `json:"batches"`
	Seed      *uint64 `json:"seed"`
}

// Load reads and decodes a Document from path: whole-file read via
// gosl/io, then json.Unmarshal.
func Load(path string) (*Document, error) {
	b, err := func() (b []byte, err error) {
		// gslio.ReadFile panics instead of returning an error.
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%v", r)
			}
		}()
		return gslio.ReadFile(path), nil
	}()
	if err != nil {
		return nil, fmt.Errorf("config: cannot open %q: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("config: cannot parse %q: %w", path, err)
	}
	return &doc, nil
}
