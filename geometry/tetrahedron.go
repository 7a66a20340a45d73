package geometry

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// TetrahedralAngle is the ideal H-O-H angle of a perfect tetrahedron, acos(-1/3).
	TetrahedralAngle = 1.9106332362490186
	// HalfTetrahedralAngle is the angle between a vertex and the bisector of two vertices.
	HalfTetrahedralAngle = TetrahedralAngle / 2
	// SiteDistance scales the projections that place the hydrogen sites, in the
	// same length unit as the coordinates.
	SiteDistance = 1.
)

// colinearTol bounds |OH1 x OH2| / (|OH1| |OH2|), the sine of the H-O-H angle.
const colinearTol = 1.e-6

var ErrDegenerateBond = errors.New("degenerate bond geometry")

// Site indices within a Tetrahedron.
const (
	SiteH1 = iota
	SiteH2
	SiteL1
	SiteL2
	NumSites
)

// Tetrahedron holds the ideal sites of one water molecule, ordered
// [h0, h1, L1, L2]: the two hydrogen directions and the two lone pairs.
type Tetrahedron [NumSites]r3.Vec

// PerfectTetrahedron reconstructs the ideal tetrahedral sites around oxygen O
// from its two covalent hydrogens. Hydrogen sites lie in the H-O-H plane at
// HalfTetrahedralAngle from the bisector; lone pair sites mirror their
// midpoint through O and open along the plane normal. All four sites end up
// SiteDistance from O whatever the measured bond lengths. Colinear or zero
// length bonds produce NaN sites, CheckBonds detects them.
func PerfectTetrahedron(O, H1, H2, bounds r3.Vec) (tet Tetrahedron) {
	var (
		phy = Angle(H1, O, H2, bounds) / 2
	)
	o, h1, h2 := Unwrap(O, H1, H2, bounds)

	OH := [2]r3.Vec{r3.Sub(h1, o), r3.Sub(h2, o)}
	b := r3.Add(r3.Unit(OH[0]), r3.Unit(OH[1]))
	nu := r3.Unit(r3.Cross(OH[0], OH[1]))

	var h [2]r3.Vec
	for i := 0; i < 2; i++ {
		A, rhs := siteSystem(b, OH[i], nu, phy)
		h[i] = r3.Add(Solve3x3(A, rhs), o)
	}

	mH := MidPoint(h[0], h[1])
	delta := r3.Norm(r3.Sub(h[0], mH))
	mL := r3.Sub(r3.Scale(2, o), mH)

	tet[SiteH1] = h[0]
	tet[SiteH2] = h[1]
	tet[SiteL1] = r3.Add(mL, r3.Scale(delta, nu))
	tet[SiteL2] = r3.Add(mL, r3.Scale(-delta, nu))
	return
}

// siteSystem is the linear system placing a hydrogen site relative to O: its
// projections on the bisector b and on the bond oh, and zero along the normal.
func siteSystem(b, oh, nu r3.Vec, phy float64) (A Matrix3, rhs [3]float64) {
	A = NewMatrix3FromRows(b, oh, nu)
	rhs = [3]float64{
		SiteDistance * r3.Norm(b) * math.Cos(HalfTetrahedralAngle),
		SiteDistance * r3.Norm(oh) * math.Cos(HalfTetrahedralAngle-phy),
		0,
	}
	return
}

// CheckBonds reports ErrDegenerateBond when either O-H bond has zero length or
// the bonds are colinear, or when a hydrogen site system is singular: the
// inputs for which PerfectTetrahedron is undefined.
func CheckBonds(O, H1, H2, bounds r3.Vec) error {
	o, h1, h2 := Unwrap(O, H1, H2, bounds)
	oh1, oh2 := r3.Sub(h1, o), r3.Sub(h2, o)
	l1, l2 := r3.Norm(oh1), r3.Norm(oh2)
	switch {
	case l1 == 0 || l2 == 0:
		return fmt.Errorf("%w: zero length O-H bond", ErrDegenerateBond)
	case math.IsNaN(l1) || math.IsNaN(l2) || math.IsInf(l1, 0) || math.IsInf(l2, 0):
		return fmt.Errorf("%w: non-finite coordinates", ErrDegenerateBond)
	case r3.Norm(r3.Cross(oh1, oh2))/(l1*l2) <= colinearTol:
		return fmt.Errorf("%w: colinear O-H bonds", ErrDegenerateBond)
	}
	var (
		phy = Angle(H1, O, H2, bounds) / 2
		b   = r3.Add(r3.Unit(oh1), r3.Unit(oh2))
		nu  = r3.Unit(r3.Cross(oh1, oh2))
	)
	for _, oh := range [2]r3.Vec{oh1, oh2} {
		A, rhs := siteSystem(b, oh, nu, phy)
		if _, err := SolveCramer(A, rhs, colinearTol*r3.Norm(b)*r3.Norm(oh)); err != nil {
			return fmt.Errorf("%w: %w", ErrDegenerateBond, err)
		}
	}
	return nil
}
