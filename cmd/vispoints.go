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
	"io"

	"github.com/notargets/gov4s/writefiles"
	"github.com/spf13/cobra"
)

// ViSPointsCmd represents the vispoints command
var ViSPointsCmd = &cobra.Command{
	Use:   "vispoints",
	Short: "Tetrahedron sites ranked by their interaction energy",
	Long: `
Writes the four sites of every studied molecule in ascending energy order as
CSV, and a PDB file with waters and sites when Outputs.PDB is set.

gov4s vispoints -I params.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var r *run
		if r, err = processInput(cmd); err != nil {
			return
		}
		mols, err := r.calc.Molecules(cmd.Context())
		if err != nil {
			return
		}
		if err = writeOutput(cmd, r.ip.Outputs.CSV, func(w io.Writer) error {
			return writefiles.WriteCSV(w, writefiles.ViSRecords(mols))
		}); err != nil {
			return
		}
		if r.ip.Outputs.PDB == "" {
			return
		}
		return writeOutput(cmd, r.ip.Outputs.PDB, func(w io.Writer) error {
			return writefiles.WritePDB(w, r.ip.Title, r.sys, mols, r.ip.AtomsPerWaterMolecule)
		})
	},
}

func init() {
	rootCmd.AddCommand(ViSPointsCmd)
	addInputFlag(ViSPointsCmd)
}
