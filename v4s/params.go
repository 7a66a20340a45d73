package v4s

const (
	// CoulombK converts e^2/Å into kJ/mol.
	CoulombK = 1389.35458
	// PrefilterTolerance widens the cutoff when discarding atoms by their
	// distance to the studied oxygen, so that molecules whose oxygen sits
	// just outside may still be matched to a site. The value is empirical.
	PrefilterTolerance = 1.1
)

// Parameters describe how molecules are laid out in the atom list and the
// interaction cutoff.
type Parameters struct {
	TypeO            string  // label of the water oxygen
	AtomsPerMolecule int     // atoms per water, oxygen first
	Cutoff           float64 // Å
}

func DefaultParameters() Parameters {
	return Parameters{
		TypeO:            "O",
		AtomsPerMolecule: 3,
		Cutoff:           5.,
	}
}
