package writefiles

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/notargets/gov4s/geometry"
	"github.com/notargets/gov4s/v4s"
)

// V4SRecord is one row of the per-molecule V4S table.
type V4SRecord struct {
	Index int     `csv:"index"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
	V4S   float64 `csv:"v4s"`
}

// TetrahedronRecord is one row of the tetrahedra table: the oxygen, both
// hydrogen sites and both lone pair sites.
type TetrahedronRecord struct {
	Index int     `csv:"index"`
	OX    float64 `csv:"o_x"`
	OY    float64 `csv:"o_y"`
	OZ    float64 `csv:"o_z"`
	H1X   float64 `csv:"h1_x"`
	H1Y   float64 `csv:"h1_y"`
	H1Z   float64 `csv:"h1_z"`
	H2X   float64 `csv:"h2_x"`
	H2Y   float64 `csv:"h2_y"`
	H2Z   float64 `csv:"h2_z"`
	L1X   float64 `csv:"l1_x"`
	L1Y   float64 `csv:"l1_y"`
	L1Z   float64 `csv:"l1_z"`
	L2X   float64 `csv:"l2_x"`
	L2Y   float64 `csv:"l2_y"`
	L2Z   float64 `csv:"l2_z"`
}

// ViSRecord is one site of a molecule; Rank 0 has the lowest energy and rank 3
// carries the V4S value.
type ViSRecord struct {
	Index  int     `csv:"index"`
	Rank   int     `csv:"rank"`
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
	Z      float64 `csv:"z"`
	Energy float64 `csv:"energy"`
}

func V4SRecords(mols []v4s.Molecule) (recs []V4SRecord) {
	recs = make([]V4SRecord, len(mols))
	for k, m := range mols {
		recs[k] = V4SRecord{Index: m.Index, X: m.Center.X, Y: m.Center.Y, Z: m.Center.Z, V4S: m.V4S()}
	}
	return
}

// TetrahedronRecords pairs rows with the oxygen indices they were built from.
func TetrahedronRecords(indices []int, rows []v4s.TetrahedronRow) (recs []TetrahedronRecord, err error) {
	if len(indices) != len(rows) {
		return nil, fmt.Errorf("%d indices for %d tetrahedra", len(indices), len(rows))
	}
	recs = make([]TetrahedronRecord, len(rows))
	for k, row := range rows {
		s := row.Sites
		recs[k] = TetrahedronRecord{
			Index: indices[k],
			OX:    row.Center.X,
			OY:    row.Center.Y,
			OZ:    row.Center.Z,
			H1X:   s[geometry.SiteH1].X,
			H1Y:   s[geometry.SiteH1].Y,
			H1Z:   s[geometry.SiteH1].Z,
			H2X:   s[geometry.SiteH2].X,
			H2Y:   s[geometry.SiteH2].Y,
			H2Z:   s[geometry.SiteH2].Z,
			L1X:   s[geometry.SiteL1].X,
			L1Y:   s[geometry.SiteL1].Y,
			L1Z:   s[geometry.SiteL1].Z,
			L2X:   s[geometry.SiteL2].X,
			L2Y:   s[geometry.SiteL2].Y,
			L2Z:   s[geometry.SiteL2].Z,
		}
	}
	return
}

func ViSRecords(mols []v4s.Molecule) (recs []ViSRecord) {
	recs = make([]ViSRecord, 0, geometry.NumSites*len(mols))
	for _, m := range mols {
		for rank, sp := range m.ViS() {
			recs = append(recs, ViSRecord{
				Index:  m.Index,
				Rank:   rank,
				X:      sp.Pos.X,
				Y:      sp.Pos.Y,
				Z:      sp.Pos.Z,
				Energy: sp.Energy,
			})
		}
	}
	return
}

// WriteCSV writes a slice of records with a header line.
func WriteCSV(w io.Writer, records interface{}) error {
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
