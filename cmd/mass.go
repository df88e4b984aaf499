package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Yashvi2874/digiform/pkg/engine"
	"github.com/Yashvi2874/digiform/pkg/shape"
)

var (
	massShape    string
	massParams   []string
	massMaterial string
	massDensity  float64
)

var massCmd = &cobra.Command{
	Use:   "mass",
	Short: "Compute mass properties for a shape and material",
	Long: `Compute volume, surface area, mass, center of mass and moments of
inertia for a parametric solid. Omitted dimensions take the family defaults.

Examples:
  # Default 50mm steel cube
  digiform mass --shape cube --material "Structural Steel"

  # Hollow aluminum cylinder
  digiform mass --shape cylinder -p radius=25 -p height=100 -p innerRadius=10 --material Aluminum

  # Custom density (kg/m³) on top of a named material
  digiform mass --shape sphere -p radius=30 --material Titanium --density 4400`,
	RunE: runMass,
}

func init() {
	rootCmd.AddCommand(massCmd)

	massCmd.Flags().StringVarP(&massShape, "shape", "s", "", "Shape family [required]")
	massCmd.Flags().StringArrayVarP(&massParams, "param", "p", nil, "Dimension as name=value (mm), repeatable")
	massCmd.Flags().StringVarP(&massMaterial, "material", "m", "", "Material name [required]")
	massCmd.Flags().Float64Var(&massDensity, "density", 0, "Density override (kg/m³)")

	massCmd.MarkFlagRequired("shape")
	massCmd.MarkFlagRequired("material")
}

func runMass(cmd *cobra.Command, args []string) error {
	desc, err := parseShape(massShape, massParams)
	if err != nil {
		return err
	}

	d := engine.NewDesign(desc)
	props, err := d.ComputeMassProperties(massMaterial, massDensity)
	if err != nil {
		return err
	}

	printShapeSummary(desc)
	printMassProperties(props)
	return nil
}

func printShapeSummary(desc shape.Descriptor) {
	params, err := shape.Resolve(desc)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("SHAPE: %s\n", desc.Family)
	fmt.Println("───────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, kv := range sortedParams(params) {
		if kv.key == "isHollow" {
			continue
		}
		fmt.Fprintf(w, "  %s:\t%.2f mm\n", kv.key, kv.val)
	}
	w.Flush()
}

func printMassProperties(props *engine.MassProperties) {
	fmt.Println()
	fmt.Println("MASS PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Volume:\t%.2f mm³\n", props.Volume)
	fmt.Fprintf(w, "  Surface area:\t%.2f mm²\n", props.SurfaceArea)
	fmt.Fprintf(w, "  Mass:\t%.4f kg\n", props.Mass)
	fmt.Fprintf(w, "  Density:\t%.0f kg/m³\n", props.Density)
	fmt.Fprintf(w, "  Center of mass:\t(%.2f, %.2f, %.2f) mm\n",
		props.CenterOfMass.X, props.CenterOfMass.Y, props.CenterOfMass.Z)
	fmt.Fprintf(w, "  Ixx:\t%.2f kg·mm²\n", props.MomentsOfInertia.Ixx)
	fmt.Fprintf(w, "  Iyy:\t%.2f kg·mm²\n", props.MomentsOfInertia.Iyy)
	fmt.Fprintf(w, "  Izz:\t%.2f kg·mm²\n", props.MomentsOfInertia.Izz)
	w.Flush()
	fmt.Println()
}

type paramKV struct {
	key string
	val float64
}

func sortedParams(p shape.Params) []paramKV {
	out := make([]paramKV, 0, len(p))
	for k, v := range p {
		out = append(out, paramKV{k, v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}
