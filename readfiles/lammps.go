package readfiles

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notargets/gov4s/types"
	"gonum.org/v1/gonum/spatial/r3"
)

// Energy units accepted for LJ tables.
const (
	UnitsKJ   = "kJ"
	UnitsKcal = "kcal"
)

// ReadXYZ parses an xyz configuration: a count line, a comment line, then
// "label x y z" per atom in Å. A count line that parses as an integer must
// match the number of atom lines.
func ReadXYZ(r io.Reader) (atoms []types.Atom, err error) {
	lr := newLineReader(r)
	if !lr.next() {
		return nil, fmt.Errorf("missing atom count line")
	}
	count, cerr := strconv.Atoi(strings.TrimSpace(lr.text))
	if !lr.next() {
		return nil, fmt.Errorf("missing comment line")
	}
	for lr.next() {
		fields := strings.Fields(lr.text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 4 {
			return nil, lr.errorf("expected \"label x y z\", got %q", lr.text)
		}
		var x []float64
		if x, err = parseFloats(fields[1:4]); err != nil {
			return nil, lr.errorf("invalid coordinates: %v", err)
		}
		atoms = append(atoms, types.Atom{
			Label: fields[0],
			Pos:   r3.Vec{X: x[0], Y: x[1], Z: x[2]},
		})
	}
	if err = lr.err(); err != nil {
		return nil, err
	}
	if cerr == nil && count != len(atoms) {
		return nil, fmt.Errorf("header announces %d atoms, found %d", count, len(atoms))
	}
	return atoms, nil
}

// ReadLJTable parses "label epsilon sigma" lines with "#" comments. Epsilon is
// given in units (UnitsKJ or UnitsKcal, "Cal" is accepted for the latter) and
// returned in kJ/mol; sigma is in Å.
func ReadLJTable(r io.Reader, units string) (table map[string]LJ, err error) {
	var scale float64
	switch units {
	case UnitsKJ, "":
		scale = 1
	case UnitsKcal, "Cal":
		scale = KcalToKJ
	default:
		return nil, fmt.Errorf("unknown energy units %q", units)
	}
	table = make(map[string]LJ)
	lr := newLineReader(r)
	for lr.next() {
		fields := strings.Fields(stripComment(lr.text, "#"))
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, lr.errorf("expected \"label e s\", got %q", lr.text)
		}
		var v []float64
		if v, err = parseFloats(fields[1:]); err != nil {
			return nil, lr.errorf("invalid parameters: %v", err)
		}
		table[fields[0]] = LJ{Epsilon: v[0] * scale, Sigma: v[1]}
	}
	return table, lr.err()
}

// ReadSystemData extracts the charges and the box from a LAMMPS data file.
// The header supplies "N atoms" and the "lo hi xlo xhi" style bounds; the
// Atoms section (atom style full: id mol type q x y z) supplies the charge of
// each atom in file order.
func ReadSystemData(r io.Reader) (charges []float64, box r3.Vec, err error) {
	var (
		lr      = newLineReader(r)
		n       = -1
		bounds  = [3]string{"xlo xhi", "ylo yhi", "zlo zhi"}
		inAtoms bool
	)
	for lr.next() {
		line := stripComment(lr.text, "#")
		if !inAtoms {
			fields := strings.Fields(line)
			switch {
			case line == "Atoms":
				if n < 0 {
					return nil, box, lr.errorf("Atoms section before the atom count")
				}
				inAtoms = true
				charges = make([]float64, 0, n)
			case len(fields) == 2 && fields[1] == "atoms":
				if n, err = strconv.Atoi(fields[0]); err != nil || n < 0 {
					return nil, box, lr.errorf("invalid atom count %q", fields[0])
				}
			default:
				for d, flag := range bounds {
					if !strings.HasSuffix(line, flag) {
						continue
					}
					var lohi []float64
					if lohi, err = parseFloats(fields[:2]); err != nil {
						return nil, box, lr.errorf("invalid %s bounds: %v", flag, err)
					}
					set := [3]*float64{&box.X, &box.Y, &box.Z}
					*set[d] = lohi[1] - lohi[0]
				}
			}
			continue
		}
		if len(charges) == n {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 7 {
			return nil, box, lr.errorf("expected \"id mol type q x y z\", got %q", lr.text)
		}
		var q float64
		if q, err = strconv.ParseFloat(fields[3], 64); err != nil {
			return nil, box, lr.errorf("invalid charge %q", fields[3])
		}
		charges = append(charges, q)
	}
	if err = lr.err(); err != nil {
		return nil, box, err
	}
	switch {
	case !inAtoms:
		return nil, box, fmt.Errorf("no Atoms section found")
	case len(charges) != n:
		return nil, box, fmt.Errorf("Atoms section has %d of %d atoms", len(charges), n)
	}
	return charges, box, nil
}

// MergeLAMMPS applies LJ parameters by label and charges by position.
func MergeLAMMPS(atoms []types.Atom, table map[string]LJ, charges []float64) error {
	if len(atoms) != len(charges) {
		return fmt.Errorf("configuration has %d atoms, system data has %d charges",
			len(atoms), len(charges))
	}
	for i := range atoms {
		lj, ok := table[atoms[i].Label]
		if !ok {
			return fmt.Errorf("atom %d: label %q missing from the LJ table", i, atoms[i].Label)
		}
		atoms[i].Epsilon, atoms[i].Sigma = lj.Epsilon, lj.Sigma
		atoms[i].Charge = charges[i]
	}
	return nil
}

// ReadLAMMPS loads an xyz configuration, an LJ table and a data file.
func ReadLAMMPS(xyzFile, ljFile, dataFile, units string) (sys *types.System, err error) {
	var (
		atoms   []types.Atom
		table   map[string]LJ
		charges []float64
		box     r3.Vec
	)
	if err = withFile(xyzFile, func(r io.Reader) (err error) {
		atoms, err = ReadXYZ(r)
		return
	}); err != nil {
		return nil, err
	}
	if err = withFile(ljFile, func(r io.Reader) (err error) {
		table, err = ReadLJTable(r, units)
		return
	}); err != nil {
		return nil, err
	}
	if err = withFile(dataFile, func(r io.Reader) (err error) {
		charges, box, err = ReadSystemData(r)
		return
	}); err != nil {
		return nil, err
	}
	if err = MergeLAMMPS(atoms, table, charges); err != nil {
		return nil, err
	}
	return types.NewSystem(atoms, box), nil
}
