package v4s

import (
	"math"
	"math/rand"

	"github.com/notargets/gov4s/geometry"
	"github.com/notargets/gov4s/types"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	bondLength = 0.9572
	bendAngle  = 104.52 * math.Pi / 180
)

// tip3p returns one water with its oxygen at O, the bisector along u and the
// molecular plane spanned by u and v (u, v orthonormal).
func tip3p(O, u, v r3.Vec) []types.Atom {
	var (
		c, s = math.Cos(bendAngle/2) * bondLength, math.Sin(bendAngle/2) * bondLength
	)
	return []types.Atom{
		{Label: "OW", Pos: O, Epsilon: 0.6364, Sigma: 3.15061, Charge: -0.834},
		{Label: "HW1", Pos: r3.Add(O, r3.Add(r3.Scale(c, u), r3.Scale(s, v))), Charge: 0.417},
		{Label: "HW2", Pos: r3.Add(O, r3.Sub(r3.Scale(c, u), r3.Scale(s, v))), Charge: 0.417},
	}
}

// tip4p adds a massless charge site on the bisector.
func tip4p(O, u, v r3.Vec) []types.Atom {
	w := tip3p(O, u, v)
	w[0].Epsilon, w[0].Sigma, w[0].Charge = 0.7749, 3.1536, 0
	w[1].Charge, w[2].Charge = 0.52, 0.52
	return append(w, types.Atom{Label: "MW", Pos: r3.Add(O, r3.Scale(0.15, u)), Charge: -1.04})
}

func randomFrame(rng *rand.Rand) (u, v r3.Vec) {
	u = r3.Unit(r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()})
	w := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
	v = r3.Unit(r3.Sub(w, r3.Scale(r3.Dot(w, u), u)))
	return
}

func wrap(p, box r3.Vec) r3.Vec {
	f := func(x, l float64) float64 { return x - math.Floor(x/l)*l }
	return r3.Vec{X: f(p.X, box.X), Y: f(p.Y, box.Y), Z: f(p.Z, box.Z)}
}

// waterBox fills a cubic box with n^3 randomly oriented waters on a jittered
// lattice plus a few ions, all wrapped into the box.
func waterBox(rng *rand.Rand, n int, spacing float64, model func(O, u, v r3.Vec) []types.Atom, ions int) *types.System {
	var (
		L     = float64(n) * spacing
		box   = r3.Vec{X: L, Y: L, Z: L}
		atoms []types.Atom
	)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				O := r3.Vec{
					X: (float64(i) + 0.5 + 0.1*rng.NormFloat64()) * spacing,
					Y: (float64(j) + 0.5 + 0.1*rng.NormFloat64()) * spacing,
					Z: (float64(k) + 0.5 + 0.1*rng.NormFloat64()) * spacing,
				}
				u, v := randomFrame(rng)
				for _, a := range model(O, u, v) {
					a.Pos = wrap(a.Pos, box)
					atoms = append(atoms, a)
				}
			}
		}
	}
	for i := 0; i < ions; i++ {
		q := 1.
		if i%2 == 1 {
			q = -1
		}
		atoms = append(atoms, types.Atom{
			Label:   "ION",
			Pos:     r3.Vec{X: rng.Float64() * L, Y: rng.Float64() * L, Z: rng.Float64() * L},
			Epsilon: 0.3, Sigma: 2.5, Charge: q,
		})
	}
	return types.NewSystem(atoms, box)
}

// referenceSiteEnergies is the per atom loop with the index advanced past
// neighbor molecules in place.
func referenceSiteEnergies(a int, sites geometry.Tetrahedron, atoms []types.Atom, box r3.Vec, p Parameters) (sums SiteEnergies) {
	N := len(atoms)
	for nb := 0; nb < N; nb++ {
		isO := atoms[nb].Label == p.TypeO
		if nb >= a && nb < a+p.AtomsPerMolecule {
			continue
		}
		if geometry.PeriodicDistance(atoms[nb].Pos, atoms[a].Pos, box) > p.Cutoff+1.1 {
			if isO {
				nb += p.AtomsPerMolecule - 1
			}
			continue
		}
		closest, dist := 0, geometry.PeriodicDistance(atoms[nb].Pos, sites[0], box)
		for s := 1; s < 4; s++ {
			if d := geometry.PeriodicDistance(atoms[nb].Pos, sites[s], box); d < dist {
				closest, dist = s, d
			}
		}
		if dist > p.Cutoff {
			if isO {
				nb += p.AtomsPerMolecule - 1
			}
			continue
		}
		var e float64
		for i := a; i < a+p.AtomsPerMolecule; i++ {
			e += Potential(atoms[i], atoms[nb], box)
		}
		if isO {
			for i := a; i < a+p.AtomsPerMolecule; i++ {
				for k := nb + 1; k < nb+p.AtomsPerMolecule && k < N; k++ {
					e += Potential(atoms[i], atoms[k], box)
				}
			}
			nb += p.AtomsPerMolecule - 1
		}
		sums[closest] += e
	}
	return
}
