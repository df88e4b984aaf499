package engine

import (
	"fmt"
	"math"

	"github.com/Yashvi2874/digiform/pkg/material"
	"github.com/Yashvi2874/digiform/pkg/shape"
)

// ValidationResult bundles the outcome of an input validation pass.
// Validation never mutates state and is run redundantly at the API boundary
// and again just before computation.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func resultOf(errs []string) ValidationResult {
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateMassInput checks everything the mass-property step needs:
// a recognized shape family with sane dimensions, a resolvable material,
// and a positive density override when one is supplied.
func ValidateMassInput(desc shape.Descriptor, materialName string, densityOverride float64, table *material.Table) ValidationResult {
	var errs []string
	errs = append(errs, checkGeometry(desc)...)
	errs = append(errs, checkMaterial(materialName, table)...)
	if densityOverride < 0 {
		errs = append(errs, fmt.Sprintf("density override %g must be positive", densityOverride))
	}
	return resultOf(errs)
}

// ValidateAnalysisInput checks everything the structural step needs on top
// of the mass-property inputs: at least one constraint, at least one load,
// and well-formed load vectors.
func ValidateAnalysisInput(desc shape.Descriptor, materialName string, constraints []Constraint, loads []Load, table *material.Table) ValidationResult {
	var errs []string
	errs = append(errs, checkGeometry(desc)...)
	errs = append(errs, checkMaterial(materialName, table)...)
	errs = append(errs, checkConstraints(constraints)...)
	errs = append(errs, checkLoads(loads)...)
	return resultOf(errs)
}

// checkGeometry verifies the family is known and every supplied parameter is
// finite and non-negative. Zero values are legal: the formula library
// defaults them per family.
func checkGeometry(desc shape.Descriptor) []string {
	var errs []string
	if _, err := shape.Resolve(desc); err != nil {
		errs = append(errs, fmt.Sprintf("shape family %q is not recognized", desc.Family))
		return errs
	}
	for name, v := range desc.Params {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Sprintf("parameter %q is not finite", name))
		} else if v < 0 {
			errs = append(errs, fmt.Sprintf("parameter %q is %g, must not be negative", name, v))
		}
	}
	return errs
}

// checkMaterial verifies the material resolves and carries usable mechanical
// properties. Unknown names are reported here and again, as a hard error,
// by the lookup at computation time.
func checkMaterial(name string, table *material.Table) []string {
	var errs []string
	if name == "" {
		return append(errs, "material name is required")
	}
	rec, err := table.Lookup(name)
	if err != nil {
		return append(errs, err.Error())
	}
	if rec.YoungsModulus <= 0 {
		errs = append(errs, fmt.Sprintf("material %q has non-positive Young's modulus", rec.Name))
	}
	if rec.YieldStrength <= 0 {
		errs = append(errs, fmt.Sprintf("material %q has non-positive yield strength", rec.Name))
	}
	return errs
}

func checkConstraints(constraints []Constraint) []string {
	var errs []string
	if len(constraints) == 0 {
		return append(errs, "at least one constraint is required")
	}
	for i, c := range constraints {
		if c.Type != ConstraintFixed {
			errs = append(errs, fmt.Sprintf("constraint %d has unsupported type %q", i, c.Type))
		}
		if !ValidFaces[c.Face] {
			errs = append(errs, fmt.Sprintf("constraint %d references invalid face %q", i, c.Face))
		}
	}
	return errs
}

func checkLoads(loads []Load) []string {
	var errs []string
	if len(loads) == 0 {
		return append(errs, "at least one load is required")
	}
	for i, l := range loads {
		if l.Type != LoadForce && l.Type != LoadPressure {
			errs = append(errs, fmt.Sprintf("load %d has unsupported type %q", i, l.Type))
		}
		if l.Magnitude == 0 || math.IsNaN(l.Magnitude) || math.IsInf(l.Magnitude, 0) {
			errs = append(errs, fmt.Sprintf("load %d magnitude must be a non-zero finite value", i))
		}
		if l.Direction.IsZero() {
			errs = append(errs, fmt.Sprintf("load %d direction cannot be the zero vector", i))
		}
		if l.Face != "" && !ValidFaces[l.Face] {
			errs = append(errs, fmt.Sprintf("load %d references invalid face %q", i, l.Face))
		}
	}
	return errs
}
