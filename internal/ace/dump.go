// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import (
	stdio "io"
	"math"
	"strings"

	gslio "github.com/cpmech/gosl/io"
)

// Dump serializes t back to ACE text format, byte-compatible with the
// fixed-width layout MCNP-family tools expect: four doubles per line in
// 20-column scientific notation with 11 significant digits, and eight
// integers per line in decimal for the NXS/JXS arrays.
func Dump(w stdio.Writer, t *NeutronTable) error {
	var b strings.Builder
	b.WriteString(gslio.Sf("%-10s %11.8E %11.5E  %8s\n", t.TableName, t.AWR, t.Temperature, t.Date))
	b.WriteString(gslio.Sf("%-70s\n", t.Comment))

	for i := 0; i < 16; i += 4 {
		for j := i; j < i+4 && j < 16; j++ {
			b.WriteString(gslio.Sf("%9d %11.8E", t.IZ[j], t.AW[j]))
		}
		b.WriteString("\n")
	}

	dumpInts(&b, t.NXS[:])
	dumpInts(&b, t.JXS[:])
	dumpFloats(&b, t.XSS)

	_, err := stdio.WriteString(w, b.String())
	return err
}

func dumpInts(b *strings.Builder, vals []int) {
	for i := 0; i < len(vals); i += 8 {
		for j := i; j < i+8 && j < len(vals); j++ {
			b.WriteString(gslio.Sf("%9d", vals[j]))
		}
		b.WriteString("\n")
	}
}

// dumpFloats writes the XSS vector four values per line. Integer-valued
// entries (block counts, MT numbers, locators) are written in 20-column
// decimal, everything else in 20-column scientific with 11 significant
// digits — downstream tools parse this exact layout.
func dumpFloats(b *strings.Builder, vals []float64) {
	for i := 0; i < len(vals); i += 4 {
		for j := i; j < i+4 && j < len(vals); j++ {
			v := vals[j]
			if v == math.Trunc(v) && math.Abs(v) < 1e15 {
				b.WriteString(gslio.Sf("%20d", int64(v)))
			} else {
				b.WriteString(gslio.Sf("%20.11E", v))
			}
		}
		b.WriteString("\n")
	}
}
