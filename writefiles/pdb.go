package writefiles

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/notargets/gov4s/types"
	"github.com/notargets/gov4s/v4s"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	waterResidue = "WAT"
	siteResidue  = "SIT"
	// betaMin and betaMax are the extremes that fit the 6 column beta field.
	betaMin = -99.99
	betaMax = 999.99
)

func pdbAtom(w io.Writer, serial int, name, residue string, resSeq int, p r3.Vec, beta float64) {
	fmt.Fprintf(w, "ATOM  %5d %-4s %s %5d    %8.3f%8.3f%8.3f  1.00%6.2f\n",
		serial, name, residue, resSeq, p.X, p.Y, p.Z, math.Max(betaMin, math.Min(betaMax, beta)))
}

// WritePDB writes every studied water as a WAT residue followed by its four
// ViS sites as a SIT residue named S1..S4 in ascending energy order. The site
// energy goes into the temperature factor column, clamped to [-99.99, 999.99];
// the CSV outputs carry the exact values.
func WritePDB(w io.Writer, title string, sys *types.System, mols []v4s.Molecule, atomsPerMolecule int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "HEADER    %s\n", title)
	fmt.Fprintf(bw, "CRYST1 %9.3f%9.3f%9.3f%7.2f%7.2f%7.2f\n", sys.Box.X, sys.Box.Y, sys.Box.Z, 90., 90., 90.)
	serial := 1
	for k, m := range mols {
		if m.Index+atomsPerMolecule > sys.Len() {
			return fmt.Errorf("molecule at atom %d runs past the %d atoms of the system", m.Index, sys.Len())
		}
		for _, a := range sys.Atoms[m.Index : m.Index+atomsPerMolecule] {
			pdbAtom(bw, serial, a.Label, waterResidue, k+1, a.Pos, 0)
			serial++
		}
		for i, sp := range m.ViS() {
			pdbAtom(bw, serial, fmt.Sprintf("S%d", i+1), siteResidue, k+1, sp.Pos, sp.Energy)
			serial++
		}
	}
	fmt.Fprintln(bw, "END")
	return bw.Flush()
}

// WriteVMD writes a VMD Tcl script drawing a line from each oxygen to its
// four tetrahedron sites.
func WriteVMD(w io.Writer, rows []v4s.TetrahedronRow) error {
	bw := bufio.NewWriter(w)
	point := func(p r3.Vec) string {
		return fmt.Sprintf("{%.6f %.6f %.6f}", p.X, p.Y, p.Z)
	}
	for _, row := range rows {
		for _, site := range row.Sites {
			fmt.Fprintf(bw, "draw line %s %s\n", point(row.Center), point(site))
		}
	}
	return bw.Flush()
}
