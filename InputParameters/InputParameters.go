package InputParameters

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/notargets/gov4s/types"
	"github.com/notargets/gov4s/v4s"
)

// Input formats
const (
	FormatGromacs = "gromacs"
	FormatLAMMPS  = "lammps"
)

type SlabParameters struct {
	Center    float64 `json:"Center"`
	HalfWidth float64 `json:"HalfWidth"`
}

// CylinderParameters keys avoid bare X/Y: YAML 1.1 reads an unquoted Y as true.
type CylinderParameters struct {
	CenterX float64 `json:"CenterX"`
	CenterY float64 `json:"CenterY"`
	Radius  float64 `json:"Radius"`
}

// Files names the inputs of a run; which ones are needed depends on Format.
type Files struct {
	Gro        string `json:"Gro"`
	Top        string `json:"Top"`
	XYZ        string `json:"XYZ"`
	LJ         string `json:"LJ"`
	SystemData string `json:"SystemData"`
	LJUnits    string `json:"LJUnits"` // "kJ" or "kcal"
}

type Outputs struct {
	CSV       string `json:"CSV"`
	PDB       string `json:"PDB"`
	VMD       string `json:"VMD"`
	Histogram string `json:"Histogram"`
}

// Parameters obtained from the YAML input file
type V4SParameters struct {
	Title                 string              `json:"Title"`
	Format                string              `json:"Format"`
	TypeO                 string              `json:"TypeO"`
	AtomsPerWaterMolecule int                 `json:"AtomsPerWaterMolecule"`
	Cutoff                float64             `json:"Cutoff"`
	Workers               int                 `json:"Workers"`
	StudyIndices          []int               `json:"StudyIndices"` // empty selects every oxygen
	Slab                  *SlabParameters     `json:"Slab"`
	Cylinder              *CylinderParameters `json:"Cylinder"`
	HistogramBins         int                 `json:"HistogramBins"`
	Files                 Files               `json:"Files"`
	Outputs               Outputs             `json:"Outputs"`
}

func NewV4SParameters() *V4SParameters {
	def := v4s.DefaultParameters()
	return &V4SParameters{
		Format:                FormatGromacs,
		TypeO:                 def.TypeO,
		AtomsPerWaterMolecule: def.AtomsPerMolecule,
		Cutoff:                def.Cutoff,
		HistogramBins:         50,
	}
}

// Parse overlays the YAML document on the current values, so fields absent
// from the file keep their defaults.
func (ip *V4SParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// ResolvePaths makes relative input file names relative to dir, the directory
// of the parameter file. Output paths stay relative to the working directory.
func (ip *V4SParameters) ResolvePaths(dir string) {
	for _, p := range []*string{&ip.Files.Gro, &ip.Files.Top, &ip.Files.XYZ, &ip.Files.LJ, &ip.Files.SystemData} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

func (ip *V4SParameters) Validate() (err error) {
	var errs []error
	switch ip.Format {
	case FormatGromacs:
		if ip.Files.Gro == "" || ip.Files.Top == "" {
			errs = append(errs, fmt.Errorf("gromacs input needs Files.Gro and Files.Top"))
		}
	case FormatLAMMPS:
		if ip.Files.XYZ == "" || ip.Files.LJ == "" || ip.Files.SystemData == "" {
			errs = append(errs, fmt.Errorf("lammps input needs Files.XYZ, Files.LJ and Files.SystemData"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown Format %q", ip.Format))
	}
	if err = ip.Core().Validate(); err != nil {
		errs = append(errs, err)
	}
	if ip.Slab != nil && ip.Slab.HalfWidth < 0 {
		errs = append(errs, fmt.Errorf("negative Slab.HalfWidth %g", ip.Slab.HalfWidth))
	}
	if ip.Cylinder != nil && ip.Cylinder.Radius < 0 {
		errs = append(errs, fmt.Errorf("negative Cylinder.Radius %g", ip.Cylinder.Radius))
	}
	if ip.HistogramBins < 1 {
		errs = append(errs, fmt.Errorf("HistogramBins must be positive, got %d", ip.HistogramBins))
	}
	return errors.Join(errs...)
}

// Core returns the parameters of the interaction computation.
func (ip *V4SParameters) Core() v4s.Parameters {
	return v4s.Parameters{
		TypeO:            ip.TypeO,
		AtomsPerMolecule: ip.AtomsPerWaterMolecule,
		Cutoff:           ip.Cutoff,
	}
}

// Region combines the configured slab and cylinder, nil when neither is set.
func (ip *V4SParameters) Region() types.Region {
	var rs types.Intersection
	if ip.Slab != nil {
		rs = append(rs, types.Slab{Center: ip.Slab.Center, HalfWidth: ip.Slab.HalfWidth})
	}
	if ip.Cylinder != nil {
		rs = append(rs, types.Cylinder{X: ip.Cylinder.CenterX, Y: ip.Cylinder.CenterY, Radius: ip.Cylinder.Radius})
	}
	if len(rs) == 0 {
		return nil
	}
	return rs
}

// StudyMask selects the listed indices, or every oxygen when none are listed,
// then keeps those inside the configured region.
func (ip *V4SParameters) StudyMask(sys *types.System) (mask types.StudyMask, err error) {
	if len(ip.StudyIndices) != 0 {
		if mask, err = types.IndexMask(sys.Len(), ip.StudyIndices); err != nil {
			return nil, err
		}
	} else {
		mask = types.OxygenMask(sys.Atoms, ip.TypeO)
	}
	if r := ip.Region(); r != nil {
		mask = mask.Restrict(sys.Atoms, r)
	}
	return mask, nil
}

// Print echoes the run description to w.
func (ip *V4SParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t= Format\n", ip.Format)
	fmt.Fprintf(w, "[%s]\t\t\t= Oxygen Type\n", ip.TypeO)
	fmt.Fprintf(w, "[%d]\t\t\t= Atoms Per Water Molecule\n", ip.AtomsPerWaterMolecule)
	fmt.Fprintf(w, "%8.5f\t\t= Cutoff\n", ip.Cutoff)
	if len(ip.StudyIndices) != 0 {
		fmt.Fprintf(w, "%v\t= Study Indices\n", ip.StudyIndices)
	}
	if ip.Slab != nil {
		fmt.Fprintf(w, "z = %8.5f +/- %8.5f\t= Slab\n", ip.Slab.Center, ip.Slab.HalfWidth)
	}
	if ip.Cylinder != nil {
		fmt.Fprintf(w, "(%8.5f,%8.5f) r = %8.5f\t= Cylinder\n", ip.Cylinder.CenterX, ip.Cylinder.CenterY, ip.Cylinder.Radius)
	}
}
