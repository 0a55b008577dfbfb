// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/pellegre/helios/internal/vec3"

// Transformation is a translation + rotation (degrees per axis) pair,
// composed by addition. None of the surface variants this module
// implements depend on their orientation, only their position, so only
// the translation half of a Transformation ever changes a Surface's
// coefficients; rotation is carried through for bookkeeping.
type Transformation struct {
	Translation vec3.Vec3
	Rotation    vec3.Vec3
}

// Add composes two transformations by addition: the accumulated parent
// transformation plus this cell's own.
func (t Transformation) Add(other Transformation) Transformation {
	return Transformation{
		Translation: vec3.Add(t.Translation, other.Translation),
		Rotation:    vec3.Add(t.Rotation, other.Rotation),
	}
}

// IsZero reports whether this transformation is the identity.
func (t Transformation) IsZero() bool {
	return t.Translation == vec3.Vec3{} && t.Rotation == vec3.Vec3{}
}
