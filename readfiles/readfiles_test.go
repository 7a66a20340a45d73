package readfiles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const groFixture = `Two TIP3P waters
    6
    1SOL     OW    1   0.126   1.624   1.679
    1SOL    HW1    2   0.190   1.661   1.747
    1SOL    HW2    3   0.177   1.568   1.613
    2SOL     OW    4   1.275   0.053   0.622
    2SOL    HW1    5   1.337   0.002   0.680
    2SOL    HW2    6   1.326   0.120   0.568
   1.86206   1.86206   1.86206
`

const topFixture = `; TIP3P water
[ defaults ]
; nbfunc  comb-rule  gen-pairs  fudgeLJ  fudgeQQ
1         2          no         1.0      1.0

[ atomtypes ]
; name  at.num  mass     charge  ptype  sigma      epsilon
OW      8       15.9994  0.000   A      0.315061   0.63639
HW      1       1.0080   0.000   A      0.0        0.0

#include "ions.itp"

[ moleculetype ]
SOL  2

[ atoms ]
; nr  type  resnr  residue  atom  cgnr  charge   mass
1     OW    1      SOL      OW    1     -0.834   15.9994
2     HW    1      SOL      HW1   1      0.417   1.008
3     HW    1      SOL      HW2   1      0.417   1.008 ; trailing comment
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadGro(t *testing.T) {
	atoms, box, err := ReadGro(strings.NewReader(groFixture))
	require.NoError(t, err)
	require.Len(t, atoms, 6)
	assert.Equal(t, "OW", atoms[0].Label)
	assert.Equal(t, "HW2", atoms[5].Label)
	assert.InDelta(t, 1.26, atoms[0].Pos.X, 1.e-12)
	assert.InDelta(t, 16.24, atoms[0].Pos.Y, 1.e-12)
	assert.InDelta(t, 5.68, atoms[5].Pos.Z, 1.e-12)
	assert.InDeltaSlice(t, []float64{18.6206, 18.6206, 18.6206},
		[]float64{box.X, box.Y, box.Z}, 1.e-12)

	testCases := []struct {
		name, input, msg string
	}{
		{"bad count", "t\nsix\n", "invalid atom count"},
		{"truncated", "t\n2\n    1SOL     OW    1   0.126   1.624   1.679\n", "unexpected EOF"},
		{"short line", "t\n1\n    1SOL     OW    1   0.126\n1 1 1\n", "line 3: atom line too short"},
		{"bad box", "t\n0\n1.0 1.0\n", "invalid box line"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ReadGro(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestReadTopology(t *testing.T) {
	top, err := ReadTopology(strings.NewReader(topFixture))
	require.NoError(t, err)
	assert.Len(t, top.AtomTypes, 2)
	assert.InDelta(t, 3.15061, top.AtomTypes["OW"].Sigma, 1.e-12)
	assert.Equal(t, 0.63639, top.AtomTypes["OW"].Epsilon)
	assert.Equal(t, TopAtom{Type: "HW", Charge: 0.417}, top.Atoms["HW2"])
	assert.Equal(t, TopAtom{Type: "OW", Charge: -0.834}, top.Atoms["OW"])
	// [ defaults ] rows are not atom types
	_, ok := top.AtomTypes["1"]
	assert.False(t, ok)

	{ // Missing atomtypes
		_, err := ReadTopology(strings.NewReader("[ atoms ]\n1 OW 1 SOL OW 1 -0.8\n"))
		assert.Error(t, err)
	}
	{ // Bad charge reports its line
		bad := strings.Replace(topFixture, "-0.834", "minus", 1)
		_, err := ReadTopology(strings.NewReader(bad))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 18")
	}
}

func TestReadGromacs(t *testing.T) {
	gro := writeFixture(t, "conf.gro", groFixture)
	top := writeFixture(t, "topol.top", topFixture)
	sys, err := ReadGromacs(gro, top)
	require.NoError(t, err)
	require.Equal(t, 6, sys.Len())
	assert.Equal(t, 2, sys.CountLabel("OW"))
	ow, hw := sys.Atoms[3], sys.Atoms[4]
	assert.Equal(t, -0.834, ow.Charge)
	assert.InDelta(t, 3.15061, ow.Sigma, 1.e-12)
	assert.Equal(t, 0.417, hw.Charge)
	assert.Equal(t, 0., hw.Epsilon)

	{ // Atom names absent from the topology
		other := writeFixture(t, "other.gro", strings.Replace(groFixture, "HW2", "MW ", 1))
		_, err := ReadGromacs(other, top)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"MW"`)
	}
	{
		_, err := ReadGromacs(filepath.Join(t.TempDir(), "missing.gro"), top)
		assert.ErrorIs(t, err, os.ErrNotExist)
	}
}

const (
	xyzFixture = `4
water and a chloride
O 1.0 1.0 1.0
H 1.9572 1.0 1.0
H 0.7601 1.9266 1.0
Cl 5.0 5.0 5.0
`
	ljFixture = `# label epsilon(kcal) sigma
O 0.1521 3.1507
H 0.0 0.0   # hydrogens carry no LJ

Cl 0.1 4.4
`
	dataFixture = `LAMMPS data file

4 atoms
3 atom types
1 bonds

0.0 20.0 xlo xhi
-5.0 15.0 ylo yhi
0.0 30.0 zlo zhi

Masses

1 15.9994
2 1.008
3 35.45

Atoms # full

1 1 1 -0.834 1.0 1.0 1.0
2 1 2 0.417 1.9572 1.0 1.0
3 1 2 0.417 0.7601 1.9266 1.0
4 2 3 -1.0 5.0 5.0 5.0

Bonds

1 1 1 2
`
)

func TestReadLAMMPSParts(t *testing.T) {
	{ // xyz
		atoms, err := ReadXYZ(strings.NewReader(xyzFixture))
		require.NoError(t, err)
		require.Len(t, atoms, 4)
		assert.Equal(t, "Cl", atoms[3].Label)
		assert.Equal(t, r3.Vec{X: 0.7601, Y: 1.9266, Z: 1}, atoms[2].Pos)
		_, err = ReadXYZ(strings.NewReader("3\n\nO 0 0 0\n"))
		assert.Error(t, err)
	}
	{ // LJ table in both unit systems
		kcal, err := ReadLJTable(strings.NewReader(ljFixture), UnitsKcal)
		require.NoError(t, err)
		assert.Len(t, kcal, 3)
		assert.InDelta(t, 0.1521*KcalToKJ, kcal["O"].Epsilon, 1.e-12)
		assert.Equal(t, 3.1507, kcal["O"].Sigma)
		kj, err := ReadLJTable(strings.NewReader(ljFixture), UnitsKJ)
		require.NoError(t, err)
		assert.Equal(t, 0.1, kj["Cl"].Epsilon)
		_, err = ReadLJTable(strings.NewReader(ljFixture), "eV")
		assert.Error(t, err)
		_, err = ReadLJTable(strings.NewReader("O 0.1\n"), UnitsKJ)
		assert.Error(t, err)
	}
	{ // system data
		q, box, err := ReadSystemData(strings.NewReader(dataFixture))
		require.NoError(t, err)
		assert.Equal(t, []float64{-0.834, 0.417, 0.417, -1}, q)
		assert.Equal(t, r3.Vec{X: 20, Y: 20, Z: 30}, box)
		short := strings.Replace(dataFixture, "4 atoms", "5 atoms", 1)
		_, _, err = ReadSystemData(strings.NewReader(short))
		assert.Error(t, err)
		_, _, err = ReadSystemData(strings.NewReader("4 atoms\n"))
		assert.Error(t, err)
	}
}

func TestReadLAMMPS(t *testing.T) {
	xyz := writeFixture(t, "conf.xyz", xyzFixture)
	lj := writeFixture(t, "lj.txt", ljFixture)
	data := writeFixture(t, "system.data", dataFixture)
	sys, err := ReadLAMMPS(xyz, lj, data, UnitsKcal)
	require.NoError(t, err)
	require.Equal(t, 4, sys.Len())
	assert.Equal(t, r3.Vec{X: 20, Y: 20, Z: 30}, sys.Box)
	assert.Equal(t, -1., sys.Atoms[3].Charge)
	assert.InDelta(t, 0.1*KcalToKJ, sys.Atoms[3].Epsilon, 1.e-12)
	assert.Equal(t, 4.4, sys.Atoms[3].Sigma)

	testCases := []struct {
		name    string
		atoms   string
		table   string
		message string
	}{
		{"unknown label", strings.Replace(xyzFixture, "Cl 5.0", "Na 5.0", 1), ljFixture, `"Na"`},
		{"count mismatch", "3\n\nO 1 1 1\nH 2 1 1\nH 1 2 1\n", ljFixture, "3 atoms"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadLAMMPS(writeFixture(t, "c.xyz", tc.atoms), writeFixture(t, "lj", tc.table), data, UnitsKJ)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}
