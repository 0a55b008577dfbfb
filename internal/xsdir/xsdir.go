// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xsdir reads the ASCII locator index that maps an ACE table name
// to the library file and byte address ace.ReadTable needs.
package xsdir

import (
	"fmt"
	"path/filepath"
	"strconv"
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

// Entry is one parsed xsdir line: the table's atomic-weight-ratio, the
// library file that holds it, and the byte address ace.ReadTable should
// seek to.
type Entry struct {
	TableName string
	AWR       float64
	FileName  string
	Address   int64
	Length    int64
}

// Index is the in-memory table_name -> Entry map built from one xsdir
// file, plus the data directory every relative file_name is resolved
// against.
type Index struct {
	dir     string
	entries map[string]Entry
}

// LookupError reports a table name absent from the locator index.
type LookupError struct {
	TableName string
	Path      string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("xsdir: table %q not found in %q", e.TableName, e.Path)
}

// FormatError reports a malformed xsdir line.
type FormatError struct {
	Path string
	Line string
	Why  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("xsdir: malformed line %q in %q: %s", e.Line, e.Path, e.Why)
}

// Read parses the xsdir file at path, resolving every entry's file_name
// against dataDir. Entries appear after a line that, trimmed,
// case-insensitively equals "directory"; everything
// before that (the atomic-weight table, comment headers) is skipped.
func Read(path, dataDir string) (*Index, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, &LookupError{TableName: "", Path: path}
	}
	idx := &Index{dir: dataDir, entries: make(map[string]Entry)}

	lines := strings.Split(string(b), "\n")
	inDirectory := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !inDirectory {
			if strings.EqualFold(trimmed, "directory") {
				inDirectory = true
			}
			continue
		}
		// table_name A file_name access_route file_type address
		// table_length [...].
		fields := strings.Fields(trimmed)
		if len(fields) < 7 {
			return nil, &FormatError{Path: path, Line: line, Why: "expected at least 7 fields"}
		}
		awr, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &FormatError{Path: path, Line: line, Why: "non-numeric atomic weight ratio"}
		}
		address, err := strconv.ParseInt(fields[5], 10, 64)
		if err != nil {
			return nil, &FormatError{Path: path, Line: line, Why: "non-numeric address"}
		}
		length, err := strconv.ParseInt(fields[6], 10, 64)
		if err != nil {
			return nil, &FormatError{Path: path, Line: line, Why: "non-numeric table length"}
		}
		idx.entries[fields[0]] = Entry{
			TableName: fields[0],
			AWR:       awr,
			FileName:  fields[2],
			Address:   address,
			Length:    length,
		}
	}
	return idx, nil
}

// Lookup resolves tableName to its full file path and byte address,
// ready to hand to ace.ReadTable.
func (idx *Index) Lookup(tableName string) (fullPath string, address int64, err error) {
	e, ok := idx.entries[tableName]
	if !ok {
		return "", 0, &LookupError{TableName: tableName, Path: idx.dir}
	}
	return filepath.Join(idx.dir, e.FileName), e.Address, nil
}

// LibraryKind is the last letter of a table name: "c" for continuous
// neutron tables, "t" for thermal S(alpha,beta) tables. An absent or unrecognized suffix is an
// UnsupportedLibraryError, never a silent skip.
type LibraryKind byte

const (
	KindContinuousNeutron LibraryKind = 'c'
	KindThermalScattering LibraryKind = 't'
)

// UnsupportedLibraryError reports a table id whose final letter names no
// known library kind.
type UnsupportedLibraryError struct {
	TableName string
}

func (e *UnsupportedLibraryError) Error() string {
	return fmt.Sprintf("xsdir: table id %q has no recognized library-kind suffix", e.TableName)
}

// LibraryKindOf extracts and validates the table-kind suffix: no letter,
// or one that is neither "c" nor "t", is a surfaced
// UnsupportedLibraryError rather than a silent skip.
func LibraryKindOf(tableName string) (LibraryKind, error) {
	if tableName == "" {
		return 0, &UnsupportedLibraryError{TableName: tableName}
	}
	last := tableName[len(tableName)-1]
	switch LibraryKind(last) {
	case KindContinuousNeutron, KindThermalScattering:
		return LibraryKind(last), nil
	default:
		return 0, &UnsupportedLibraryError{TableName: tableName}
	}
}
