package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Yashvi2874/digiform/pkg/material"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the built-in material property table",
	Run: func(cmd *cobra.Command, args []string) {
		tbl := material.Default()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDENSITY (kg/m³)\tE (GPa)\tPOISSON\tYIELD (MPa)\tULTIMATE (MPa)")
		for _, name := range tbl.Names() {
			r, err := tbl.Lookup(name)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%.2f\t%.0f\t%.0f\n",
				r.Name, r.Density, r.YoungsModulus/1e9, r.PoissonsRatio,
				r.YieldStrength/1e6, r.UltimateStrength/1e6)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
