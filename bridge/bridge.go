// Package bridge exposes the interaction computation through flat float32
// records and buffers, the shape a foreign caller exchanges with the library.
// Every returned Buffer must be released exactly once.
package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/notargets/gov4s/geometry"
	"github.com/notargets/gov4s/types"
	"github.com/notargets/gov4s/v4s"
	"gonum.org/v1/gonum/spatial/r3"
)

var ErrAtomCount = errors.New("atom count does not match the records")

// AtomRecord is one atom as supplied by the caller.
type AtomRecord struct {
	Label   string
	X, Y, Z float32
	E, S, Q float32 // epsilon, sigma, charge
}

// Request gathers the arguments shared by every entry point. Mask may be nil
// to study every atom labelled TypeO.
type Request struct {
	Atoms            []AtomRecord
	N                int
	Bounds           [3]float32
	Mask             []bool
	TypeO            string
	AtomsPerMolecule int
	Cutoff           float32
	Workers          int
}

func (req Request) calculator() (*v4s.Calculator, error) {
	if req.N != len(req.Atoms) {
		return nil, fmt.Errorf("%w: N = %d, %d records", ErrAtomCount, req.N, len(req.Atoms))
	}
	atoms := make([]types.Atom, req.N)
	for i, ar := range req.Atoms {
		atoms[i] = types.Atom{
			Label:   ar.Label,
			Pos:     r3.Vec{X: float64(ar.X), Y: float64(ar.Y), Z: float64(ar.Z)},
			Epsilon: float64(ar.E),
			Sigma:   float64(ar.S),
			Charge:  float64(ar.Q),
		}
	}
	box := r3.Vec{X: float64(req.Bounds[0]), Y: float64(req.Bounds[1]), Z: float64(req.Bounds[2])}
	p := v4s.Parameters{
		TypeO:            req.TypeO,
		AtomsPerMolecule: req.AtomsPerMolecule,
		Cutoff:           float64(req.Cutoff),
	}
	var opts []v4s.Option
	if req.Workers > 0 {
		opts = append(opts, v4s.WithWorkers(req.Workers))
	}
	return v4s.NewCalculator(types.NewSystem(atoms, box), types.StudyMask(req.Mask), p, opts...)
}

func putVec(dst []float32, v r3.Vec) {
	dst[0], dst[1], dst[2] = float32(v.X), float32(v.Y), float32(v.Z)
}

// Tetrahedrons returns shape (n, 5, 3): the oxygen followed by h1, h2, L1, L2.
func Tetrahedrons(ctx context.Context, req Request) (*Buffer, error) {
	c, err := req.calculator()
	if err != nil {
		return nil, err
	}
	rows, err := c.Tetrahedrons(ctx)
	if err != nil {
		return nil, err
	}
	const np = geometry.NumSites + 1
	b := newBuffer(len(rows), np, 3)
	for k, row := range rows {
		for j, p := range row.Points() {
			putVec(b.data[(k*np+j)*3:], p)
		}
	}
	return b, nil
}

// V4S returns shape (n): one value per studied molecule.
func V4S(ctx context.Context, req Request) (*Buffer, error) {
	c, err := req.calculator()
	if err != nil {
		return nil, err
	}
	v, err := c.V4S(ctx)
	if err != nil {
		return nil, err
	}
	b := newBuffer(len(v))
	for k := range v {
		b.data[k] = float32(v[k])
	}
	return b, nil
}

// ViSPoints returns shape (n, 4, 4): per molecule the sites in ascending
// energy order as (x, y, z, energy).
func ViSPoints(ctx context.Context, req Request) (*Buffer, error) {
	c, err := req.calculator()
	if err != nil {
		return nil, err
	}
	rows, err := c.ViSPoints(ctx)
	if err != nil {
		return nil, err
	}
	const ns = geometry.NumSites
	b := newBuffer(len(rows), ns, 4)
	for k, row := range rows {
		for j, q := range row.Values() {
			off := (k*ns + j) * 4
			for d := range q {
				b.data[off+d] = float32(q[d])
			}
		}
	}
	return b, nil
}
