// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// GeometryError reports a malformed geometry definition or a query that
// fell outside the modeled space: a dangling surface/universe reference
// found while building the arena, a cell missing both a material and a
// fill, or findCell returning no occupant.
type GeometryError struct {
	Where string
	Why   string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry error in %s: %s", e.Where, e.Why)
}
