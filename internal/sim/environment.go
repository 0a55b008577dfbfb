// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim implements the transport/eviction core: the
// per-particle history loop, the fission-bank eviction-style scheduling
// across batches, and shared-memory worker-pool fan-out across
// independent histories.
package sim

import (
	"github.com/pellegre/helios/internal/geom"
	"github.com/pellegre/helios/internal/source"
)

// Environment bundles the fully-constructed, read-only-after-setup object
// graph every worker shares during transport. It owns no mutable
// per-history or per-batch state — that lives on KeffSimulation and the
// thread-local banks.
type Environment struct {
	Geometry *geom.Geometry
	Source   *source.Source
}

// NewEnvironment binds the geometry and source built during setup into the
// immutable object graph the simulation driver transports particles
// through.
func NewEnvironment(g *geom.Geometry, s *source.Source) *Environment {
	return &Environment{Geometry: g, Source: s}
}
