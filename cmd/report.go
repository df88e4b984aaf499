package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yashvi2874/digiform/pkg/engine"
	"github.com/Yashvi2874/digiform/pkg/material"
	"github.com/Yashvi2874/digiform/pkg/report"
)

var (
	reportShape    string
	reportParams   []string
	reportMaterial string
	reportDensity  float64
	reportForce    float64
	reportFixFace  string
	reportTitle    string
	reportAuthor   string
	reportOut      string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a PDF engineering report",
	Long: `Run the full analysis workflow and write the results to a PDF.
When --force is zero the report covers mass properties only.

Examples:
  digiform report --shape beam --material Steel --force 1000 --out beam.pdf
  digiform report --shape sphere -p radius=30 --material Titanium --out sphere.pdf`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportShape, "shape", "s", "", "Shape family [required]")
	reportCmd.Flags().StringArrayVarP(&reportParams, "param", "p", nil, "Dimension as name=value (mm), repeatable")
	reportCmd.Flags().StringVarP(&reportMaterial, "material", "m", "", "Material name [required]")
	reportCmd.Flags().Float64Var(&reportDensity, "density", 0, "Density override (kg/m³)")
	reportCmd.Flags().Float64VarP(&reportForce, "force", "f", 0, "Applied force magnitude (N)")
	reportCmd.Flags().StringVar(&reportFixFace, "fix", "left", "Fixed face for the structural section")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "Report title")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "", "Report author")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "report.pdf", "Output PDF path")

	reportCmd.MarkFlagRequired("shape")
	reportCmd.MarkFlagRequired("material")
}

func runReport(cmd *cobra.Command, args []string) error {
	desc, err := parseShape(reportShape, reportParams)
	if err != nil {
		return err
	}

	rec, err := material.Default().Resolve(reportMaterial, reportDensity)
	if err != nil {
		return err
	}

	d := engine.NewDesign(desc)
	props, err := d.ComputeMassProperties(reportMaterial, reportDensity)
	if err != nil {
		return err
	}

	var res *engine.StructuralResult
	if reportForce != 0 {
		res, err = d.AnalyzeStructure(reportMaterial, reportDensity,
			[]engine.Constraint{{Type: engine.ConstraintFixed, Face: engine.Face(reportFixFace)}},
			[]engine.Load{{Type: engine.LoadForce, Magnitude: reportForce, Direction: engine.Vec3{Y: -1}}})
		if err != nil {
			return err
		}
	}

	f, err := os.Create(reportOut)
	if err != nil {
		return err
	}
	defer f.Close()

	in := report.Input{
		Title:      reportTitle,
		Author:     reportAuthor,
		Shape:      desc,
		Material:   rec,
		Mass:       props,
		Structural: res,
	}
	if err := report.Generate(f, in); err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", reportOut)
	return nil
}
