// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import "fmt"

// LookupError reports a table, isotope, MT, distribution, or surface id
// that could not be found. All setup errors are fatal.
type LookupError struct {
	Table string
	Path  string
	Why   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("ace: lookup failed for table %q at %q: %s", e.Table, e.Path, e.Why)
}

// FormatError reports a malformed ACE file: a short XSS vector, or an
// NXS/JXS pointer that is zero/negative or points past the end of XSS.
type FormatError struct {
	Table string
	Block string
	Why   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("ace: format error in table %q block %q: %s", e.Table, e.Block, e.Why)
}

// UnsupportedLawError reports an energy or angular law number the reader
// does not implement. Never silently defaulted.
type UnsupportedLawError struct {
	MT  int
	Law int
}

func (e *UnsupportedLawError) Error() string {
	return fmt.Sprintf("ace: unsupported law %d for MT=%d", e.Law, e.MT)
}

// UnsupportedLibraryError reports a table id whose final letter does not
// name a known library kind ("c"=continuous neutron, "t"=thermal S(a,b)).
type UnsupportedLibraryError struct {
	TableName string
}

func (e *UnsupportedLibraryError) Error() string {
	return fmt.Sprintf("ace: table id %q has no recognized library-kind suffix", e.TableName)
}
