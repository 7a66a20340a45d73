package v4s

import (
	"context"
	"fmt"
	"runtime"

	"github.com/notargets/gov4s/geometry"
	"github.com/notargets/gov4s/types"
	"github.com/notargets/gov4s/utils"
)

// Calculator evaluates the studied molecules of one configuration. The
// system is only read, results are independent of the number of workers.
type Calculator struct {
	System  *types.System
	Params  Parameters
	Workers int
	studied []int
}

type Option func(c *Calculator)

// WithWorkers sets the number of goroutines sharing the molecules, values
// below 1 select runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(c *Calculator) {
		c.Workers = n
	}
}

// NewCalculator validates the inputs and prepares the list of studied
// molecules. A nil mask studies every atom labelled p.TypeO.
func NewCalculator(sys *types.System, mask types.StudyMask, p Parameters, opts ...Option) (c *Calculator, err error) {
	if mask == nil {
		mask = types.OxygenMask(sys.Atoms, p.TypeO)
	}
	if err = validate(sys, mask, p); err != nil {
		return nil, err
	}
	c = &Calculator{
		System:  sys,
		Params:  p,
		studied: mask.Indices(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Workers < 1 {
		c.Workers = runtime.NumCPU()
	}
	return
}

// Studied lists the oxygen indices of the studied molecules, in output order.
func (c *Calculator) Studied() []int {
	return append([]int(nil), c.studied...)
}

// Len is the number of studied molecules.
func (c *Calculator) Len() int { return len(c.studied) }

func (c *Calculator) tetrahedron(a int) geometry.Tetrahedron {
	atoms := c.System.Atoms
	return geometry.PerfectTetrahedron(atoms[a].Pos, atoms[a+1].Pos, atoms[a+2].Pos, c.System.Box)
}

// parallel runs f for every studied molecule, k is the output slot and a the
// oxygen index. The first error by slot order is returned.
func (c *Calculator) parallel(ctx context.Context, f func(k, a int) error) error {
	var (
		pm   = utils.NewPartitionMap(c.Workers, len(c.studied))
		errs = make([]error, pm.ParallelDegree)
	)
	pm.Run(func(bn, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			if err := ctx.Err(); err != nil {
				errs[bn] = err
				return
			}
			if err := f(k, c.studied[k]); err != nil {
				errs[bn] = err
				return
			}
		}
	})
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Molecules computes sites and site energies of every studied molecule.
func (c *Calculator) Molecules(ctx context.Context) (mols []Molecule, err error) {
	mols = make([]Molecule, len(c.studied))
	err = c.parallel(ctx, func(k, a int) error {
		var (
			atoms = c.System.Atoms
			sites = c.tetrahedron(a)
		)
		mols[k] = Molecule{
			Index:    a,
			Center:   atoms[a].Pos,
			Sites:    sites,
			Energies: AggregateSiteEnergies(a, sites, atoms, c.System.Box, c.Params),
		}
		if !utils.IsFinite(mols[k].Energies[:]...) {
			return fmt.Errorf("molecule at atom %d: %w", a, ErrNonFinite)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return
}

// Tetrahedrons returns the central oxygen and unsorted sites of every studied
// molecule. No energies are computed.
func (c *Calculator) Tetrahedrons(ctx context.Context) (rows []TetrahedronRow, err error) {
	rows = make([]TetrahedronRow, len(c.studied))
	err = c.parallel(ctx, func(k, a int) error {
		rows[k] = TetrahedronRow{Center: c.System.Atoms[a].Pos, Sites: c.tetrahedron(a)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return
}

// V4S returns the index of every studied molecule.
func (c *Calculator) V4S(ctx context.Context) (v []float64, err error) {
	var mols []Molecule
	if mols, err = c.Molecules(ctx); err != nil {
		return
	}
	v = make([]float64, len(mols))
	for k, m := range mols {
		v[k] = m.V4S()
	}
	return
}

// ViSPoints returns, per studied molecule, the sites sorted by energy.
func (c *Calculator) ViSPoints(ctx context.Context) (rows []ViSRow, err error) {
	var mols []Molecule
	if mols, err = c.Molecules(ctx); err != nil {
		return
	}
	rows = make([]ViSRow, len(mols))
	for k, m := range mols {
		rows[k] = m.ViS()
	}
	return
}
