// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"github.com/pellegre/helios/internal/ace"
	"github.com/pellegre/helios/internal/particle"
	"github.com/pellegre/helios/internal/rand"
)

// ChanceFission models an isotope whose fission cross section is only
// available split across the first/second/third/fourth chance partial
// reactions (MT 19/20/21/38) rather than a single total-fission MT=18
//. The partial reaction is chosen by its own
// cross-section weight at the current energy via the shared XsSampler.
type ChanceFission struct {
	sampler *XsSampler[Reaction]
}

// NewChanceFission builds the chance-fission selector from the isotope's
// MT 19/20/21/38 reactions, keyed by their individual cross sections.
func NewChanceFission(reactions []*ace.NeutronReaction, nu *ace.NuData, awr float64, gridSize int) *ChanceFission {
	rxs := make([]Reaction, 0, len(reactions))
	xs := make([]ace.CrossSection, 0, len(reactions))
	for _, nr := range reactions {
		if !ace.IsChanceFissionMT(nr.MT) {
			continue
		}
		rxs = append(rxs, NewReaction(nr, nu, awr))
		xs = append(xs, nr.XS)
	}
	if len(rxs) == 0 {
		return nil
	}
	return &ChanceFission{sampler: NewXsSampler(rxs, xs, gridSize)}
}

// Apply selects one chance-fission partial reaction weighted by its cross
// section at the particle's current master energy index and applies it.
func (cf *ChanceFission) Apply(idx int, interpFactor float64, p *particle.Particle, r *rand.Random) []Secondary {
	rx := cf.sampler.Sample(idx, interpFactor, r)
	return rx.Apply(p, r)
}

// Total returns the summed chance-fission cross section at the given
// master index/interpolation factor, folded into the isotope's fission
// cross section bookkeeping.
func (cf *ChanceFission) Total(idx int, factor float64) float64 {
	if cf == nil {
		return 0
	}
	return cf.sampler.Total(idx, factor)
}
