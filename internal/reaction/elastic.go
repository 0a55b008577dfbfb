// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"math"

	"github.com/pellegre/helios/internal/rand"
	"github.com/pellegre/helios/internal/vec3"
)

// Free-gas thermal scattering thresholds: when the energy is above this
// multiple of kT and the nuclide is heavier than this mass ratio, the
// target is treated as stationary instead of sampling its thermal
// velocity.
const (
	EnergyFreeGasThreshold = 400.0
	AWRFreeGasThreshold    = 1.0
)

// Elastic samples a free-gas elastic scattering event entirely in the
// center-of-mass frame before converting back to lab energy and
// direction.
type Elastic struct {
	AWR         float64
	Temperature float64 // kT, in MeV
	Mu          MuSampler
}

// Scatter returns the (energy, direction) after one elastic collision.
func (e Elastic) Scatter(energy float64, direction vec3.Vec3, r *rand.Random) (newEnergy float64, newDirection vec3.Vec3) {
	velp := math.Sqrt(energy)
	vp := vec3.Scale(velp, direction)

	vt := e.targetVelocity(energy, direction, r)

	vc := vec3.Scale(1.0/(e.AWR+1.0), vec3.Add(vp, vec3.Scale(e.AWR, vt)))

	vpCM := vec3.Sub(vp, vc)
	velpCM := vec3.Norm(vpCM)

	muC := e.Mu.SetCosine(energy, r)
	phi := 2.0 * math.Pi * r.Uniform()

	dirCM := vec3.Unit(vpCM)
	dirCM = vec3.Rotate(dirCM, muC, phi)
	vpCM = vec3.Scale(velpCM, dirCM)

	vpLab := vec3.Add(vpCM, vc)
	newEnergy = vec3.Dot(vpLab, vpLab)
	newDirection = vec3.Unit(vpLab)
	return
}

// targetVelocity samples the scattering nucleus's thermal velocity via the
// MCNP5-manual rejection algorithm, or returns zero when the energy/mass
// thresholds say the target is effectively stationary.
func (e Elastic) targetVelocity(energy float64, direction vec3.Vec3, r *rand.Random) vec3.Vec3 {
	if energy > EnergyFreeGasThreshold*e.Temperature && e.AWR > AWRFreeGasThreshold {
		return vec3.Vec3{}
	}

	ar := e.AWR / e.Temperature
	ycn := math.Sqrt(energy * ar)

	var r1, z2, rnd1, rnd2, s, x2, c float64
	for {
		if r.Uniform()*(ycn+1.12837917) > ycn {
			r1 = r.Uniform()
			z2 = -math.Log(r1 * r.Uniform())
		} else {
			for {
				rnd1 = r.Uniform()
				rnd2 = r.Uniform()
				r1 = rnd1 * rnd1
				s = r1 + rnd2*rnd2
				if s <= 1.0 {
					break
				}
			}
			z2 = -r1*math.Log(s)/s - math.Log(r.Uniform())
		}

		z := math.Sqrt(z2)
		c = 2.0*r.Uniform() - 1.0
		x2 = ycn*ycn + z2 - 2*ycn*z*c
		rnd1 = r.Uniform() * (ycn + z)

		if rnd1*rnd1 <= x2 {
			break
		}
	}

	phi := 2.0 * math.Pi * r.Uniform()
	rotated := vec3.Rotate(direction, c, phi)

	vel := math.Sqrt(z2 / ar)
	return vec3.Scale(vel, rotated)
}
