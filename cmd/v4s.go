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
	"log/slog"

	"github.com/notargets/gov4s/writefiles"
	"github.com/spf13/cobra"
)

// V4SCmd represents the v4s command
var V4SCmd = &cobra.Command{
	Use:   "v4s",
	Short: "V4S index of every studied water molecule",
	Long: `
Writes one CSV row per studied molecule with its oxygen position and V4S value,
plus a histogram of the values. The histogram goes to Outputs.Histogram when
set, the CSV to Outputs.CSV or stdout.

gov4s v4s -I params.yaml`,
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
			return writefiles.WriteCSV(w, writefiles.V4SRecords(mols))
		}); err != nil {
			return
		}
		if len(mols) == 0 {
			slog.Warn("no molecules studied, skipping histogram")
			return
		}
		values := make([]float64, len(mols))
		for k, m := range mols {
			values[k] = m.V4S()
		}
		var h *writefiles.Histogram
		if h, err = writefiles.NewHistogram(values, r.ip.HistogramBins); err != nil {
			return
		}
		slog.Info("v4s summary", "molecules", h.N, "mean", h.Mean, "stddev", h.StdDev)
		if r.ip.Outputs.Histogram != "" {
			err = writeOutput(cmd, r.ip.Outputs.Histogram, h.Write)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(V4SCmd)
	addInputFlag(V4SCmd)
}
