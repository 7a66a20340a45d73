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

// TetrahedronsCmd represents the tetrahedrons command
var TetrahedronsCmd = &cobra.Command{
	Use:   "tetrahedrons",
	Short: "Perfect tetrahedron sites of every studied water molecule",
	Long: `
Writes the oxygen and its four ideal sites (h1, h2, L1, L2) per studied
molecule as CSV, and a VMD "draw line" script when Outputs.VMD is set.

gov4s tetrahedrons -I params.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var r *run
		if r, err = processInput(cmd); err != nil {
			return
		}
		rows, err := r.calc.Tetrahedrons(cmd.Context())
		if err != nil {
			return
		}
		recs, err := writefiles.TetrahedronRecords(r.calc.Studied(), rows)
		if err != nil {
			return
		}
		if err = writeOutput(cmd, r.ip.Outputs.CSV, func(w io.Writer) error {
			return writefiles.WriteCSV(w, recs)
		}); err != nil {
			return
		}
		if r.ip.Outputs.VMD == "" {
			return
		}
		return writeOutput(cmd, r.ip.Outputs.VMD, func(w io.Writer) error {
			return writefiles.WriteVMD(w, rows)
		})
	},
}

func init() {
	rootCmd.AddCommand(TetrahedronsCmd)
	addInputFlag(TetrahedronsCmd)
}
