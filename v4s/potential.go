package v4s

import (
	"math"

	"github.com/notargets/gov4s/geometry"
	"github.com/notargets/gov4s/types"
	"github.com/notargets/gov4s/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// Potential is the pair energy of a1 and a2 at their minimum image distance:
// Lennard-Jones with Lorentz-Berthelot mixing plus bare Coulomb. Coincident
// atoms give an infinite or NaN energy.
func Potential(a1, a2 types.Atom, box r3.Vec) (u float64) {
	var (
		R     = geometry.PeriodicDistance(a1.Pos, a2.Pos, box)
		eps   = math.Sqrt(a1.Epsilon * a2.Epsilon)
		sigma = 0.5 * (a1.Sigma + a2.Sigma)
	)
	if eps != 0 {
		u = LennardJones(eps, sigma, R)
	}
	u += Coulomb(a1.Charge, a2.Charge, R)
	return
}

func LennardJones(eps, sigma, R float64) float64 {
	sr6 := utils.POW(sigma/R, 6)
	return 4 * eps * (sr6*sr6 - sr6)
}

func Coulomb(q1, q2, R float64) float64 {
	return CoulombK * q1 * q2 / R
}
