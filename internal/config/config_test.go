// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"testing"

	"github.com/pellegre/helios/internal/rand"
	"github.com/pellegre/helios/internal/vec3"
)

const sampleDocJSON = `{
	"xs_data": "/data/xs",
	"xsdir": "/data/xsdir",
	"materials": [
		{"id": 1, "name": "void", "void": true}
	],
	"geometry": {
		"base_universe": 0,
		"surfaces": [
			{"id": 1, "type": "plane", "axis": "x", "coordinate": -5, "flags": "vacuum"},
			{"id": 2, "type": "plane", "axis": "x", "coordinate": 5, "flags": "vacuum"}
		],
		"cells": [
			{"id": 1, "universe": 0, "operands": ["1", "-2"], "material": -1}
		]
	},
	"source": {
		"sources": [
			{
				"id": 1,
				"samplers": [
					{"id": 1, "position": [0,0,0], "direction": [1,0,0], "energy": 2.0, "isotropic": true}
				],
				"strengths": [1.0]
			}
		],
		"strengths": [1.0]
	},
	"settings": {"particles": 1000, "inactive": 5, "batches": 20}
}`

func TestDocumentUnmarshalsAllTopLevelKeys(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(sampleDocJSON), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.XSData != "/data/xs" {
		t.Fatalf("unexpected xs_data: %q", doc.XSData)
	}
	if len(doc.Materials) != 1 || !doc.Materials[0].Void {
		t.Fatalf("expected a single void material, got %+v", doc.Materials)
	}
	if len(doc.Geometry.Surfaces) != 2 || len(doc.Geometry.Cells) != 1 {
		t.Fatalf("unexpected geometry shape: %+v", doc.Geometry)
	}
	if doc.Settings.Particles != 1000 || doc.Settings.Inactive != 5 || doc.Settings.Batches != 20 {
		t.Fatalf("unexpected settings: %+v", doc.Settings)
	}
	if doc.Settings.Seed != nil {
		t.Fatalf("expected no seed override, got %v", *doc.Settings.Seed)
	}
}

func TestGeometryDefBuildProducesWorkingSlab(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(sampleDocJSON), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	g, err := doc.Geometry.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	c, err := g.FindCell(vec3.Vec3{0, 0, 0})
	if err != nil {
		t.Fatalf("FindCell: %v", err)
	}
	if c.UserID != 1 {
		t.Fatalf("expected cell 1, got %d", c.UserID)
	}
	if _, err := g.FindCell(vec3.Vec3{100, 0, 0}); err == nil {
		t.Fatalf("expected an error outside the modeled slab")
	}
}

func TestSourceDefBuildSamplesAConsistentParticle(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(sampleDocJSON), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	src, err := doc.Source.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	r := rand.New(7)
	p := src.Sample(r)
	if p.Energy != 2.0 {
		t.Fatalf("expected the sampled particle's energy to be 2.0, got %g", p.Energy)
	}
	if n := vec3.Norm(p.Direction); n < 0.999 || n > 1.001 {
		t.Fatalf("expected a unit direction from the isotropic distribution, got norm %g", n)
	}
}

func TestParseOperandHandlesNegativeSense(t *testing.T) {
	id, neg, err := parseOperand("-7")
	if err != nil {
		t.Fatalf("parseOperand: %v", err)
	}
	if id != 7 || !neg {
		t.Fatalf("expected (7, true), got (%d, %v)", id, neg)
	}

	id, neg, err = parseOperand("3")
	if err != nil {
		t.Fatalf("parseOperand: %v", err)
	}
	if id != 3 || neg {
		t.Fatalf("expected (3, false), got (%d, %v)", id, neg)
	}

	if _, _, err := parseOperand("not-a-number"); err == nil {
		t.Fatalf("expected an error for a malformed operand")
	}
}

func TestCellDefBuildRejectsCellWithNeitherMaterialNorFill(t *testing.T) {
	cd := CellDef{ID: 1, Operands: []string{"1"}}
	if _, err := cd.build(); err == nil {
		t.Fatalf("expected an error for a cell with neither material nor fill")
	}
}

func TestSettingsDefTranslatesCountsWhenSeedAbsent(t *testing.T) {
	doc := &Document{Settings: SettingsDef{Particles: 10, Inactive: 1, Batches: 2}}
	// BuildSimulation needs an Environment only to store the reference; its
	// own settings translation (the part under test here) never touches it.
	sim := doc.BuildSimulation(nil)
	if sim.Particles != 10 || sim.Inactive != 1 || sim.Batches != 2 {
		t.Fatalf("unexpected simulation settings: %+v", sim)
	}
}
