package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Yashvi2874/digiform/pkg/shape"
)

var rootCmd = &cobra.Command{
	Use:   "digiform",
	Short: "Mass-property and linear-static structural analysis for parametric solids",
	Long: `digiform - parametric solid analysis engine

Computes mass properties (volume, surface area, mass, moments of inertia)
and simplified linear-static structural results (bending stress, deflection,
safety factor) for a closed taxonomy of primitive shape families.

Workflow:
  1. digiform mass     - compute mass properties for a shape and material
  2. digiform analyze  - run the gated structural analysis on top of step 1
  3. digiform report   - export a PDF engineering report

Shape dimensions are millimeters; results use SI units.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// parseShape turns the --shape and --param flags into a descriptor.
func parseShape(name string, params []string) (shape.Descriptor, error) {
	family, ok := shape.ParseFamily(name)
	if !ok {
		return shape.Descriptor{}, fmt.Errorf("unknown shape family %q (known: %s)", name, familyNames())
	}
	p := shape.Params{}
	for _, kv := range params {
		key, val, found := strings.Cut(kv, "=")
		if !found {
			return shape.Descriptor{}, fmt.Errorf("parameter %q must be name=value", kv)
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return shape.Descriptor{}, fmt.Errorf("parameter %q: %v", key, err)
		}
		p[strings.TrimSpace(key)] = f
	}
	return shape.Descriptor{Family: family, Params: p}, nil
}

func familyNames() string {
	names := make([]string, len(shape.Families))
	for i, f := range shape.Families {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
