package InputParameters

import (
	"bytes"
	"testing"

	"github.com/notargets/gov4s/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestV4SParameters(t *testing.T) {
	fileInput := []byte(`
Title: Graphene sheet
Format: gromacs
TypeO: OW
AtomsPerWaterMolecule: 4
Slab:
  Center: 34.42
  HalfWidth: 3.5
Cylinder:
  CenterX: 59.02
  CenterY: 58.97
  Radius: 12
Files:
  Gro: conf.gro
  Top: topol.top
Outputs:
  PDB: output.pdb
`)
	ip := NewV4SParameters()
	require.NoError(t, ip.Parse(fileInput))
	var echo bytes.Buffer
	ip.Print(&echo)
	assert.Contains(t, echo.String(), "(59.02000,58.97000) r = 12.00000\t= Cylinder")
	assert.Equal(t, "OW", ip.TypeO)
	assert.Equal(t, 4, ip.AtomsPerWaterMolecule)
	// Defaults survive when absent from the file
	assert.Equal(t, 5., ip.Cutoff)
	assert.Equal(t, 50, ip.HistogramBins)
	assert.Equal(t, 3.5, ip.Slab.HalfWidth)
	assert.Equal(t, 12., ip.Cylinder.Radius)
	assert.Equal(t, CylinderParameters{CenterX: 59.02, CenterY: 58.97, Radius: 12}, *ip.Cylinder)
	assert.Equal(t, "topol.top", ip.Files.Top)
	assert.Equal(t, "output.pdb", ip.Outputs.PDB)
	assert.NoError(t, ip.Validate())
	assert.Equal(t, 4, ip.Core().AtomsPerMolecule)
	ip.ResolvePaths("/data/run1")
	assert.Equal(t, "/data/run1/topol.top", ip.Files.Top)
	assert.Equal(t, "", ip.Files.XYZ)
	assert.Equal(t, "output.pdb", ip.Outputs.PDB)

	{ // Region is the intersection of slab and cylinder
		r := ip.Region()
		require.NotNil(t, r)
		assert.True(t, r.Contains(r3.Vec{X: 60, Y: 60, Z: 33}))
		assert.False(t, r.Contains(r3.Vec{X: 60, Y: 60, Z: 40}))
		assert.False(t, r.Contains(r3.Vec{X: 80, Y: 60, Z: 33}))
		assert.Nil(t, NewV4SParameters().Region())
	}
}

func TestV4SParametersValidate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"unknown format", "Format: amber\nFiles: {Gro: a, Top: b}"},
		{"missing gromacs files", "Format: gromacs\nFiles: {Gro: a}"},
		{"missing lammps files", "Format: lammps\nFiles: {XYZ: a, LJ: b}"},
		{"cutoff", "Cutoff: 0\nFiles: {Gro: a, Top: b}"},
		{"atoms per molecule", "AtomsPerWaterMolecule: 2\nFiles: {Gro: a, Top: b}"},
		{"slab", "Slab: {HalfWidth: -1}\nFiles: {Gro: a, Top: b}"},
		{"bins", "HistogramBins: 0\nFiles: {Gro: a, Top: b}"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ip := NewV4SParameters()
			require.NoError(t, ip.Parse([]byte(tc.input)))
			assert.Error(t, ip.Validate())
		})
	}
	{
		ip := NewV4SParameters()
		require.NoError(t, ip.Parse([]byte("Format: lammps\nFiles: {XYZ: a, LJ: b, SystemData: c, LJUnits: kcal}")))
		assert.NoError(t, ip.Validate())
	}
}

func TestStudyMask(t *testing.T) {
	atoms := []types.Atom{
		{Label: "O", Pos: r3.Vec{X: 1, Y: 1, Z: 1}},
		{Label: "H", Pos: r3.Vec{X: 2, Y: 1, Z: 1}},
		{Label: "H", Pos: r3.Vec{X: 1, Y: 2, Z: 1}},
		{Label: "O", Pos: r3.Vec{X: 1, Y: 1, Z: 9}},
		{Label: "H", Pos: r3.Vec{X: 2, Y: 1, Z: 9}},
		{Label: "H", Pos: r3.Vec{X: 1, Y: 2, Z: 9}},
	}
	sys := types.NewSystem(atoms, r3.Vec{X: 10, Y: 10, Z: 10})
	{
		mask, err := NewV4SParameters().StudyMask(sys)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 3}, mask.Indices())
	}
	{
		ip := NewV4SParameters()
		ip.Slab = &SlabParameters{Center: 8, HalfWidth: 2}
		mask, err := ip.StudyMask(sys)
		require.NoError(t, err)
		assert.Equal(t, []int{3}, mask.Indices())
	}
	{
		ip := NewV4SParameters()
		ip.StudyIndices = []int{3}
		mask, err := ip.StudyMask(sys)
		require.NoError(t, err)
		assert.Equal(t, []int{3}, mask.Indices())
		ip.StudyIndices = []int{6}
		_, err = ip.StudyMask(sys)
		assert.Error(t, err)
	}
}
