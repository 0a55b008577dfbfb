// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"sort"

	"github.com/pellegre/helios/internal/ace"
	"github.com/pellegre/helios/internal/rand"
)

// XsSampler is a generic cross-section-weighted discrete sampler over a
// set of reactions, each active above its own first-nonzero-energy-index
// threshold.
//
// Used for two things: an isotope's secondary-reaction
// sampler over every non-elastic, non-fission reaction with secondary
// neutrons, and ChanceFission's sampler over the first/second/third/fourth
// chance fission partial reactions.
type XsSampler[T any] struct {
	reactions []entry[T]

	// defaultReaction is the reaction active below every other reaction's
	// threshold — the one with the lowest emin, excluded from the
	// per-energy cumulative matrix since it is implicitly "whatever is
	// left."
	defaultReaction T
	defaultXS       ace.CrossSection
	hasDefault      bool
	emin            int

	// matrix[row] holds, for each master energy index from this row's
	// reaction's threshold onward, the cumulative cross section summed
	// over this reaction and every reaction before it in sorted order.
	matrix [][]float64
}

type entry[T any] struct {
	value T
	xs    ace.CrossSection
}

// NewXsSampler builds a sampler over reactions (each paired with its
// cross section), sorting them by descending first-nonzero energy index
// so the reaction with the broadest range becomes the implicit default.
func NewXsSampler[T any](reactions []T, xs []ace.CrossSection, gridSize int) *XsSampler[T] {
	entries := make([]entry[T], len(reactions))
	for i := range reactions {
		entries[i] = entry[T]{value: reactions[i], xs: xs[i]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].xs.IE > entries[j].xs.IE
	})

	s := &XsSampler[T]{}
	if len(entries) == 0 {
		return s
	}
	s.defaultReaction = entries[len(entries)-1].value
	s.defaultXS = entries[len(entries)-1].xs
	s.hasDefault = true
	s.emin = entries[len(entries)-1].xs.IE
	s.reactions = entries[:len(entries)-1]

	s.matrix = make([][]float64, len(s.reactions))
	for row := range s.reactions {
		start := s.reactions[row].xs.IE - 1
		if start < 0 {
			start = 0
		}
		length := gridSize - start
		if length < 0 {
			length = 0
		}
		s.matrix[row] = make([]float64, length)
		for i := 0; i < length; i++ {
			idx := start + i
			sum := 0.0
			for k := 0; k <= row; k++ {
				sum += s.reactions[k].xs.At(idx)
			}
			s.matrix[row][i] = sum
		}
	}
	return s
}

// rowValue returns the cumulative cross section for row at master index
// idx, 0 when idx predates that row's threshold.
func (s *XsSampler[T]) rowValue(row, idx int) float64 {
	start := s.reactions[row].xs.IE - 1
	if start < 0 {
		start = 0
	}
	local := idx - start
	if local < 0 || local >= len(s.matrix[row]) {
		return 0
	}
	return s.matrix[row][local]
}

// Sample picks a reaction active at the given master energy index,
// linearly interpolating the cumulative row values between idx and idx+1
// by interpFactor before the cut. The draw spans the full summed cross section
// including the default reaction's share; a target past the last
// cumulative row falls through to the default.
func (s *XsSampler[T]) Sample(idx int, interpFactor float64, r *rand.Random) T {
	if len(s.reactions) == 0 {
		return s.defaultReaction
	}
	total := s.Total(idx, interpFactor)
	if total <= 0 {
		return s.defaultReaction
	}
	target := r.Uniform() * total

	row := sort.Search(len(s.reactions), func(row int) bool {
		return s.interpolate(row, idx, interpFactor) >= target
	})
	if row >= len(s.reactions) {
		return s.defaultReaction
	}
	return s.reactions[row].value
}

// interpolate linearly blends rowValue(row, idx) and rowValue(row, idx+1),
// matching how every other per-energy table in this engine interpolates
// across the bracketing master grid pair.
func (s *XsSampler[T]) interpolate(row, idx int, factor float64) float64 {
	lo := s.rowValue(row, idx)
	hi := s.rowValue(row, idx+1)
	return lo + factor*(hi-lo)
}

// Total returns the summed cross section of every reaction in this
// sampler, the default included, at the given master index/interpolation
// factor.
func (s *XsSampler[T]) Total(idx int, factor float64) float64 {
	if !s.hasDefault {
		return 0
	}
	lo := s.defaultXS.At(idx)
	hi := s.defaultXS.At(idx + 1)
	total := lo + factor*(hi-lo)
	if len(s.reactions) > 0 {
		total += s.interpolate(len(s.reactions)-1, idx, factor)
	}
	return total
}

// Empty reports whether this sampler has no reactions at all, in which
// case the zero-value default reaction is meaningless and callers should
// treat the isotope as having no such channel.
func (s *XsSampler[T]) Empty() bool { return !s.hasDefault }
