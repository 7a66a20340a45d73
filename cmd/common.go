/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/notargets/gov4s/InputParameters"
	"github.com/notargets/gov4s/readfiles"
	"github.com/notargets/gov4s/types"
	"github.com/notargets/gov4s/utils"
	"github.com/notargets/gov4s/v4s"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const exampleFile = `
########################################
Title: "Bulk water"
Format: gromacs # or lammps
TypeO: OW
AtomsPerWaterMolecule: 4
Cutoff: 5.0
Cylinder: # optional, keeps oxygens within Radius of the z axis through (CenterX, CenterY)
  CenterX: 59.0
  CenterY: 59.0
  Radius: 12.0
Files:
  Gro: conf.gro
  Top: topol.top
Outputs:
  CSV: v4s.csv
########################################
`

// run is the state shared by the subcommands: the parsed input and the
// calculator built from it.
type run struct {
	ip   *InputParameters.V4SParameters
	sys  *types.System
	calc *v4s.Calculator
}

func addInputFlag(c *cobra.Command) {
	c.Flags().StringP("inputConditionsFile", "I", "", "YAML file describing the run, like:"+exampleFile)
}

func processInput(cmd *cobra.Command) (r *run, err error) {
	var (
		icFile string
		data   []byte
	)
	if icFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
		return
	}
	if len(icFile) == 0 {
		return nil, fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile), example:%s", exampleFile)
	}
	if data, err = os.ReadFile(icFile); err != nil {
		return
	}
	r = &run{ip: InputParameters.NewV4SParameters()}
	if err = r.ip.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", icFile, err)
	}
	r.ip.ResolvePaths(filepath.Dir(icFile))
	if err = r.ip.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", icFile, err)
	}
	r.ip.Print(cmd.ErrOrStderr())

	files := r.ip.Files
	switch r.ip.Format {
	case InputParameters.FormatGromacs:
		r.sys, err = readfiles.ReadGromacs(files.Gro, files.Top)
	case InputParameters.FormatLAMMPS:
		r.sys, err = readfiles.ReadLAMMPS(files.XYZ, files.LJ, files.SystemData, files.LJUnits)
	}
	if err != nil {
		return nil, err
	}
	var mask types.StudyMask
	if mask, err = r.ip.StudyMask(r.sys); err != nil {
		return nil, err
	}
	workers := viper.GetInt("workers")
	if workers < 1 {
		workers = r.ip.Workers
	}
	if r.calc, err = v4s.NewCalculator(r.sys, mask, r.ip.Core(), v4s.WithWorkers(workers)); err != nil {
		return nil, err
	}
	slog.Info("system loaded",
		"atoms", r.sys.Len(), "oxygens", r.sys.CountLabel(r.ip.TypeO), "studied", r.calc.Len(), "box", r.sys.Box, "workers", r.calc.Workers,
		"memory", utils.GetMemUsage())
	return
}

// writeOutput writes to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, write func(w io.Writer) error) (err error) {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	var f *os.File
	if f, err = os.Create(path); err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = write(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	slog.Info("wrote output", "path", path)
	return
}
