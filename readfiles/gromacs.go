package readfiles

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notargets/gov4s/types"
	"gonum.org/v1/gonum/spatial/r3"
)

// .gro column layout: residue number, residue name, atom name, atom number
// (5 chars each) followed by x, y, z in nm (8 chars each).
var groColumns = [...]int{0, 5, 10, 15, 20, 28, 36, 44}

// ReadGro parses a GROMACS .gro configuration. Atoms are labelled with their
// atom name, coordinates and box are converted to Å. Only the three diagonal
// box entries are used.
func ReadGro(r io.Reader) (atoms []types.Atom, box r3.Vec, err error) {
	lr := newLineReader(r)
	if !lr.next() {
		return nil, box, fmt.Errorf("missing title line")
	}
	if !lr.next() {
		return nil, box, fmt.Errorf("missing atom count line")
	}
	var n int
	if n, err = strconv.Atoi(strings.TrimSpace(lr.text)); err != nil || n < 0 {
		return nil, box, lr.errorf("invalid atom count %q", lr.text)
	}
	atoms = make([]types.Atom, n)
	for i := 0; i < n; i++ {
		if !lr.next() {
			return nil, box, fmt.Errorf("unexpected EOF after %d of %d atoms", i, n)
		}
		if atoms[i], err = parseGroAtom(lr.text); err != nil {
			return nil, box, lr.errorf("%v", err)
		}
	}
	if !lr.next() {
		return nil, box, fmt.Errorf("missing box line")
	}
	var b []float64
	if b, err = parseFloats(strings.Fields(lr.text)); err != nil || len(b) < 3 {
		return nil, box, lr.errorf("invalid box line %q", lr.text)
	}
	box = r3.Scale(NmToAngstrom, r3.Vec{X: b[0], Y: b[1], Z: b[2]})
	return atoms, box, lr.err()
}

func parseGroAtom(line string) (a types.Atom, err error) {
	last := len(groColumns) - 1
	if len(line) < groColumns[last] {
		return a, fmt.Errorf("atom line too short (%d < %d chars)", len(line), groColumns[last])
	}
	field := func(k int) string {
		return strings.TrimSpace(line[groColumns[k]:groColumns[k+1]])
	}
	if a.Label = field(2); a.Label == "" {
		return a, fmt.Errorf("empty atom name")
	}
	var x []float64
	if x, err = parseFloats([]string{field(4), field(5), field(6)}); err != nil {
		return a, fmt.Errorf("invalid coordinates: %v", err)
	}
	a.Pos = r3.Scale(NmToAngstrom, r3.Vec{X: x[0], Y: x[1], Z: x[2]})
	return
}

// TopAtom is one entry of a topology [ atoms ] section.
type TopAtom struct {
	Type   string
	Charge float64
}

// Topology carries the force field data needed to parameterize a .gro file:
// LJ parameters by atom type and type/charge by atom name.
type Topology struct {
	AtomTypes map[string]LJ
	Atoms     map[string]TopAtom
}

// ReadTopology parses the [ atomtypes ] and every [ atoms ] section of a
// GROMACS .top file. Sigma is converted from nm to Å, epsilon stays in kJ/mol.
// Lennard-Jones terms therefore differ from workflows that use the .top sigma
// unscaled alongside Å coordinates.
// A section ends at the first blank line or the next section header; ";"
// comments and "#" preprocessor lines are skipped. Atoms named in several
// molecule types keep the last definition.
func ReadTopology(r io.Reader) (top *Topology, err error) {
	top = &Topology{
		AtomTypes: make(map[string]LJ),
		Atoms:     make(map[string]TopAtom),
	}
	var (
		lr      = newLineReader(r)
		section string
		sawType bool
	)
	for lr.next() {
		raw := strings.TrimSpace(lr.text)
		switch {
		case strings.HasPrefix(raw, "["):
			section = strings.TrimSpace(strings.Trim(stripComment(raw, ";"), "[]"))
			sawType = sawType || section == "atomtypes"
			continue
		case raw == "":
			section = ""
			continue
		case strings.HasPrefix(raw, ";"), strings.HasPrefix(raw, "#"):
			continue
		}
		fields := strings.Fields(stripComment(raw, ";"))
		switch section {
		case "atomtypes":
			// name [at.num] [mass charge ptype] sigma epsilon: the last two columns
			if len(fields) < 3 {
				return nil, lr.errorf("atomtypes entry needs at least 3 columns")
			}
			var v []float64
			if v, err = parseFloats(fields[len(fields)-2:]); err != nil {
				return nil, lr.errorf("invalid sigma/epsilon: %v", err)
			}
			top.AtomTypes[fields[0]] = LJ{Sigma: v[0] * NmToAngstrom, Epsilon: v[1]}
		case "atoms":
			// nr type resnr residue atom cgnr charge [mass]
			if len(fields) < 7 {
				return nil, lr.errorf("atoms entry needs at least 7 columns")
			}
			var q float64
			if q, err = strconv.ParseFloat(fields[6], 64); err != nil {
				return nil, lr.errorf("invalid charge %q", fields[6])
			}
			top.Atoms[fields[4]] = TopAtom{Type: fields[1], Charge: q}
		}
	}
	if err = lr.err(); err != nil {
		return nil, err
	}
	if !sawType {
		return nil, fmt.Errorf("no [ atomtypes ] section found")
	}
	return top, nil
}

// Apply sets charge, epsilon and sigma of every atom from its name.
func (top *Topology) Apply(atoms []types.Atom) error {
	for i := range atoms {
		ta, ok := top.Atoms[atoms[i].Label]
		if !ok {
			return fmt.Errorf("atom %d: name %q not in any [ atoms ] section", i, atoms[i].Label)
		}
		lj, ok := top.AtomTypes[ta.Type]
		if !ok {
			return fmt.Errorf("atom %d: type %q not in [ atomtypes ]", i, ta.Type)
		}
		atoms[i].Charge = ta.Charge
		atoms[i].Epsilon, atoms[i].Sigma = lj.Epsilon, lj.Sigma
	}
	return nil
}

// ReadGromacs loads a configuration and parameterizes it with a topology.
func ReadGromacs(groFile, topFile string) (sys *types.System, err error) {
	var (
		atoms []types.Atom
		box   r3.Vec
		top   *Topology
	)
	if err = withFile(groFile, func(r io.Reader) (err error) {
		atoms, box, err = ReadGro(r)
		return
	}); err != nil {
		return nil, err
	}
	if err = withFile(topFile, func(r io.Reader) (err error) {
		top, err = ReadTopology(r)
		return
	}); err != nil {
		return nil, err
	}
	if err = top.Apply(atoms); err != nil {
		return nil, fmt.Errorf("%s: %w", topFile, err)
	}
	return types.NewSystem(atoms, box), nil
}
