package v4s

import (
	"github.com/notargets/gov4s/geometry"
	"github.com/notargets/gov4s/types"
	"gonum.org/v1/gonum/spatial/r3"
)

// SiteEnergies holds the interaction summed on each tetrahedral site, in the
// site order of geometry.Tetrahedron.
type SiteEnergies [geometry.NumSites]float64

// neighborUnit is the atom range [First, End) treated as one neighbor. An
// oxygen anchors its whole molecule, any other atom stands alone.
type neighborUnit struct {
	First, End int
}

// forEachNeighborUnit walks the atoms left to right, skipping the molecule
// starting at a, and hands every neighbor unit to visit.
func forEachNeighborUnit(a int, atoms []types.Atom, p Parameters, visit func(u neighborUnit)) {
	var (
		n          = len(atoms)
		centralEnd = a + p.AtomsPerMolecule
	)
	for j := 0; j < n; {
		switch {
		case j >= a && j < centralEnd:
			j++
		case atoms[j].Label == p.TypeO:
			end := j + p.AtomsPerMolecule
			if end > n {
				end = n
			}
			visit(neighborUnit{First: j, End: end})
			j = end
		default:
			visit(neighborUnit{First: j, End: j + 1})
			j++
		}
	}
}

// closestSite returns the index of the site nearest to pos, the first one on
// ties, and whether it lies within cutoff.
func closestSite(pos r3.Vec, sites geometry.Tetrahedron, box r3.Vec, cutoff float64) (index int, ok bool) {
	dist := geometry.PeriodicDistance(pos, sites[0], box)
	for i := 1; i < len(sites); i++ {
		if d := geometry.PeriodicDistance(pos, sites[i], box); d < dist {
			dist, index = d, i
		}
	}
	return index, dist <= cutoff
}

// AggregateSiteEnergies sums, per site of the molecule starting at atom a, the
// interaction of that molecule with every neighbor unit assigned to the site.
// A unit is discarded when its anchor atom is farther than
// Cutoff+PrefilterTolerance from the central oxygen, or farther than Cutoff
// from every site. Atoms of a neighbor molecule are counted once, on the site
// chosen by the molecule's oxygen.
func AggregateSiteEnergies(a int, sites geometry.Tetrahedron, atoms []types.Atom, box r3.Vec,
	p Parameters) (sums SiteEnergies) {
	var (
		central = atoms[a : a+p.AtomsPerMolecule]
		center  = atoms[a].Pos
	)
	forEachNeighborUnit(a, atoms, p, func(u neighborUnit) {
		anchor := atoms[u.First]
		if geometry.PeriodicDistance(anchor.Pos, center, box) > p.Cutoff+PrefilterTolerance {
			return
		}
		site, ok := closestSite(anchor.Pos, sites, box, p.Cutoff)
		if !ok {
			return
		}
		var e float64
		for _, c := range central {
			e += Potential(c, anchor, box)
		}
		// remaining atoms of a neighbor molecule, after its oxygen
		for _, c := range central {
			for k := u.First + 1; k < u.End; k++ {
				e += Potential(c, atoms[k], box)
			}
		}
		sums[site] += e
	})
	return
}
