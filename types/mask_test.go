package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func threeWaters() []Atom {
	var atoms []Atom
	for i, z := range []float64{10, 34, 36} {
		x := float64(i) * 5
		atoms = append(atoms,
			Atom{Label: "OW", Pos: r3.Vec{X: x, Y: 0, Z: z}},
			Atom{Label: "HW1", Pos: r3.Vec{X: x + 0.75, Y: 0.58, Z: z}},
			Atom{Label: "HW2", Pos: r3.Vec{X: x - 0.75, Y: 0.58, Z: z}},
		)
	}
	return atoms
}

func TestStudyMask(t *testing.T) {
	atoms := threeWaters()
	{ // Oxygen detection
		m := OxygenMask(atoms, "OW")
		assert.Equal(t, 3, m.Count())
		assert.Equal(t, []int{0, 3, 6}, m.Indices())
		assert.Equal(t, 0, OxygenMask(atoms, "O").Count())
	}
	{ // Explicit indices
		m, err := IndexMask(len(atoms), []int{3, 6})
		require.NoError(t, err)
		assert.Equal(t, []int{3, 6}, m.Indices())
		_, err = IndexMask(len(atoms), []int{9})
		assert.Error(t, err)
	}
	{ // Region restriction
		m := OxygenMask(atoms, "OW")
		slab := m.Restrict(atoms, Slab{Center: 34.42, HalfWidth: 3.5})
		assert.Equal(t, []int{3, 6}, slab.Indices())
		cyl := m.Restrict(atoms, Cylinder{X: 0, Y: 0, Radius: 6})
		assert.Equal(t, []int{0, 3}, cyl.Indices())
		both := m.Restrict(atoms, Intersection{Slab{Center: 34.42, HalfWidth: 3.5}, Cylinder{Radius: 6}})
		assert.Equal(t, []int{3}, both.Indices())
		// the source mask is untouched
		assert.Equal(t, 3, m.Count())
	}
}

func TestSystem(t *testing.T) {
	s := NewSystem(threeWaters(), r3.Vec{X: 50, Y: 50, Z: 50})
	assert.Equal(t, 9, s.Len())
	assert.Equal(t, 3, s.CountLabel("HW1"))
	assert.Equal(t, 0, s.CountLabel("NA"))
}
