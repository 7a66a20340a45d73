package types

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// StudyMask marks, per atom index, the oxygens whose molecules are analyzed.
type StudyMask []bool

// OxygenMask selects every atom labelled typeO.
func OxygenMask(atoms []Atom, typeO string) (m StudyMask) {
	m = make(StudyMask, len(atoms))
	for i, a := range atoms {
		m[i] = a.Label == typeO
	}
	return
}

// IndexMask selects the listed atom indices out of n atoms.
func IndexMask(n int, indices []int) (m StudyMask, err error) {
	m = make(StudyMask, n)
	for _, i := range indices {
		if i < 0 || i >= n {
			err = fmt.Errorf("study index %d out of range [0,%d)", i, n)
			return nil, err
		}
		m[i] = true
	}
	return
}

func (m StudyMask) Count() (n int) {
	for _, v := range m {
		if v {
			n++
		}
	}
	return
}

// Indices lists the selected atom indices in increasing order.
func (m StudyMask) Indices() (idx []int) {
	idx = make([]int, 0, m.Count())
	for i, v := range m {
		if v {
			idx = append(idx, i)
		}
	}
	return
}

// Restrict returns a copy of m keeping only atoms whose position is inside r.
func (m StudyMask) Restrict(atoms []Atom, r Region) (out StudyMask) {
	out = make(StudyMask, len(m))
	for i, v := range m {
		out[i] = v && i < len(atoms) && r.Contains(atoms[i].Pos)
	}
	return
}

// Region is a volume used to restrict a study mask.
type Region interface {
	Contains(p r3.Vec) bool
}

// Slab is the set of points with |z - Center| <= HalfWidth.
type Slab struct {
	Center, HalfWidth float64
}

func (s Slab) Contains(p r3.Vec) bool {
	return math.Abs(p.Z-s.Center) <= s.HalfWidth
}

// Cylinder is an infinite cylinder parallel to z through (X, Y).
type Cylinder struct {
	X, Y, Radius float64
}

func (c Cylinder) Contains(p r3.Vec) bool {
	dx, dy := p.X-c.X, p.Y-c.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Intersection contains the points inside every one of its regions.
type Intersection []Region

func (in Intersection) Contains(p r3.Vec) bool {
	for _, r := range in {
		if !r.Contains(p) {
			return false
		}
	}
	return true
}
