package types

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Atom is one interaction site of the system with its force field parameters.
type Atom struct {
	Label   string  // site type, e.g. "OW", "HW1"
	Pos     r3.Vec  // Å
	Epsilon float64 // Lennard-Jones well depth, kJ/mol
	Sigma   float64 // Lennard-Jones size, Å
	Charge  float64 // partial charge, e
}

// System is one configuration: a flat atom list inside an orthorhombic
// periodic box. Water molecules are contiguous runs of atoms starting at their
// oxygen.
type System struct {
	Atoms []Atom
	Box   r3.Vec // edge lengths, Å
}

func NewSystem(atoms []Atom, box r3.Vec) *System {
	return &System{Atoms: atoms, Box: box}
}

func (s *System) Len() int { return len(s.Atoms) }

// CountLabel returns how many atoms carry the given label.
func (s *System) CountLabel(label string) (n int) {
	for _, a := range s.Atoms {
		if a.Label == label {
			n++
		}
	}
	return
}
