// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsdir

import (
	"os"
	"path/filepath"
	"testing"
)

func writeIndex(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "xsdir")
	content := "Fake atomic weight ratios header\n" +
		"92235.70c 1.0 2.3\n" +
		"directory\n" +
		"92235.70c  233.024800 92235.710nc 0 1 123456 8177836 0 2.5301E-08\n" +
		"1001.70c    0.999167 1001.710nc 0 1 8301356 82130 0 2.5301E-08\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write xsdir: %v", err)
	}
	return path
}

func TestReadAndLookup(t *testing.T) {
	dir := t.TempDir()
	path := writeIndex(t, dir)

	idx, err := Read(path, dir)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	fullPath, address, err := idx.Lookup("92235.70c")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got, want := filepath.Base(fullPath), "92235.710nc"; got != want {
		t.Fatalf("file name = %q, want %q", got, want)
	}
	if address != 123456 {
		t.Fatalf("address = %d, want 123456", address)
	}
}

func TestLookupMissingTableIsLookupError(t *testing.T) {
	dir := t.TempDir()
	path := writeIndex(t, dir)
	idx, err := Read(path, dir)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if _, _, err := idx.Lookup("8016.70c"); err == nil {
		t.Fatalf("expected a LookupError for a missing table")
	} else if _, ok := err.(*LookupError); !ok {
		t.Fatalf("expected *LookupError, got %T", err)
	}
}

func TestLibraryKindOf(t *testing.T) {
	if k, err := LibraryKindOf("92235.70c"); err != nil || k != KindContinuousNeutron {
		t.Fatalf("LibraryKindOf(92235.70c) = %v, %v", k, err)
	}
	if k, err := LibraryKindOf("lwtr.10t"); err != nil || k != KindThermalScattering {
		t.Fatalf("LibraryKindOf(lwtr.10t) = %v, %v", k, err)
	}
	if _, err := LibraryKindOf("92235.70x"); err == nil {
		t.Fatalf("expected UnsupportedLibraryError for unknown suffix")
	}
	if _, err := LibraryKindOf(""); err == nil {
		t.Fatalf("expected UnsupportedLibraryError for empty table name")
	}
}
