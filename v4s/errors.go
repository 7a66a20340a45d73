package v4s

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gov4s/geometry"
	"github.com/notargets/gov4s/types"
)

var (
	ErrNonPositiveBox     = errors.New("box dimensions must be positive")
	ErrAtomsPerMolecule   = errors.New("a water molecule needs at least 3 atoms")
	ErrCutoff             = errors.New("cutoff must be positive")
	ErrMaskLength         = errors.New("study mask length differs from atom count")
	ErrIncompleteMolecule = errors.New("studied molecule runs past the end of the atom list")
	ErrNotOxygen          = errors.New("studied atom is not an oxygen")
	ErrNonFinite          = errors.New("non-finite result, check for overlapping atoms")
)

func isPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func (p Parameters) Validate() error {
	if p.AtomsPerMolecule < 3 {
		return fmt.Errorf("%w: got %d", ErrAtomsPerMolecule, p.AtomsPerMolecule)
	}
	if !isPositive(p.Cutoff) {
		return fmt.Errorf("%w: got %g", ErrCutoff, p.Cutoff)
	}
	return nil
}

// validate checks everything the per molecule computation relies on.
func validate(sys *types.System, mask types.StudyMask, p Parameters) (err error) {
	if err = p.Validate(); err != nil {
		return
	}
	box := sys.Box
	if !isPositive(box.X) || !isPositive(box.Y) || !isPositive(box.Z) {
		return fmt.Errorf("%w: got (%g, %g, %g)", ErrNonPositiveBox, box.X, box.Y, box.Z)
	}
	if len(mask) != sys.Len() {
		return fmt.Errorf("%w: %d != %d", ErrMaskLength, len(mask), sys.Len())
	}
	for _, a := range mask.Indices() {
		if a+p.AtomsPerMolecule > sys.Len() {
			return fmt.Errorf("atom %d: %w", a, ErrIncompleteMolecule)
		}
		atoms := sys.Atoms
		if atoms[a].Label != p.TypeO {
			return fmt.Errorf("atom %d labelled %q, oxygen is %q: %w",
				a, atoms[a].Label, p.TypeO, ErrNotOxygen)
		}
		if err = geometry.CheckBonds(atoms[a].Pos, atoms[a+1].Pos, atoms[a+2].Pos, box); err != nil {
			return fmt.Errorf("atom %d: %w", a, err)
		}
	}
	return
}
