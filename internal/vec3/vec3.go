// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec3 provides the small 3-vector arithmetic shared by
// internal/reaction (CM/LAB frame velocity composition) and internal/geom
// (surface normals, transformations). Normalization and scaling route
// through gosl/la; gosl/la has no 3-vector-specific dot/cross helpers, so
// those remain small local loops.
package vec3

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Vec3 is a Cartesian direction or velocity vector.
type Vec3 [3]float64

// Dot returns the Euclidean inner product of a and b.
func Dot(a, b Vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// Norm returns the Euclidean length of v, via gosl/la.VecNorm.
func Norm(v Vec3) float64 { return la.VecNorm(v[:]) }

// Scale returns alpha*v, via gosl/la.VecScale(res, 0, alpha, v).
func Scale(alpha float64, v Vec3) Vec3 {
	var out Vec3
	s := out[:]
	la.VecScale(s, 0, alpha, v[:])
	return out
}

// Add returns a+b, via gosl/la.VecAdd2(res, 1, a, 1, b).
func Add(a, b Vec3) Vec3 {
	var out Vec3
	s := out[:]
	la.VecAdd2(s, 1, a[:], 1, b[:])
	return out
}

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 {
	var out Vec3
	s := out[:]
	la.VecAdd2(s, 1, a[:], -1, b[:])
	return out
}

// Unit returns v normalized to unit length.
func Unit(v Vec3) Vec3 {
	n := Norm(v)
	return Scale(1.0/n, v)
}

// Cross returns the cross product a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Rotate applies a scattering-cosine rotation to direction: given the new
// polar cosine mu relative to the current direction and an azimuthal
// angle phi around it, returns the rotated unit direction.
func Rotate(direction Vec3, mu, phi float64) Vec3 {
	sinTheta := 0.0
	if v := 1.0 - mu*mu; v > 0 {
		sinTheta = math.Sqrt(v)
	}

	var u, v Vec3
	if math.Abs(direction[0]) > 0.9 {
		u = Unit(Cross(Vec3{0, 1, 0}, direction))
	} else {
		u = Unit(Cross(Vec3{1, 0, 0}, direction))
	}
	v = Cross(direction, u)

	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	return Add(Scale(mu, direction), Add(Scale(sinTheta*cosPhi, u), Scale(sinTheta*sinPhi, v)))
}
