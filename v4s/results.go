package v4s

import (
	"sort"

	"github.com/notargets/gov4s/geometry"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sorted returns the site energies in ascending order.
func (s SiteEnergies) Sorted() SiteEnergies {
	sorted := s
	sort.Float64s(sorted[:])
	return sorted
}

// V4S is the largest site energy, the last of the sorted sums.
func (s SiteEnergies) V4S() float64 {
	return s.Sorted()[geometry.NumSites-1]
}

// SitePoint pairs a site position with its summed energy.
type SitePoint struct {
	Pos    r3.Vec
	Energy float64
}

// ViSRow holds the four sites of one molecule sorted by ascending energy.
type ViSRow [geometry.NumSites]SitePoint

// NewViSRow pairs every site with its energy and sorts the pairs by energy.
// Equal energies keep the site order.
func NewViSRow(sites geometry.Tetrahedron, sums SiteEnergies) (row ViSRow) {
	for i := range sites {
		row[i] = SitePoint{Pos: sites[i], Energy: sums[i]}
	}
	sort.SliceStable(row[:], func(i, j int) bool {
		return row[i].Energy < row[j].Energy
	})
	return
}

// Values flattens the row into (x, y, z, energy) quadruples.
func (row ViSRow) Values() (v [geometry.NumSites][4]float64) {
	for i, sp := range row {
		v[i] = [4]float64{sp.Pos.X, sp.Pos.Y, sp.Pos.Z, sp.Energy}
	}
	return
}

// TetrahedronRow is the central oxygen followed by its unsorted sites.
type TetrahedronRow struct {
	Center r3.Vec
	Sites  geometry.Tetrahedron
}

func (tr TetrahedronRow) Points() (pts [geometry.NumSites + 1]r3.Vec) {
	pts[0] = tr.Center
	copy(pts[1:], tr.Sites[:])
	return
}

// Molecule is the complete result for one studied water.
type Molecule struct {
	Index    int // atom index of the oxygen
	Center   r3.Vec
	Sites    geometry.Tetrahedron
	Energies SiteEnergies
}

func (m Molecule) V4S() float64 { return m.Energies.V4S() }

func (m Molecule) ViS() ViSRow { return NewViSRow(m.Sites, m.Energies) }

func (m Molecule) Tetrahedron() TetrahedronRow {
	return TetrahedronRow{Center: m.Center, Sites: m.Sites}
}
