package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/Yashvi2874/digiform/pkg/material"
	"github.com/Yashvi2874/digiform/pkg/shape"
)

func hasError(v ValidationResult, substr string) bool {
	for _, e := range v.Errors {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidateMassInputAcceptsDefaults(t *testing.T) {
	v := ValidateMassInput(shape.Descriptor{Family: shape.FamilyCube}, "Steel", 0, material.Default())
	if !v.Valid {
		t.Fatalf("valid input rejected: %v", v.Errors)
	}
}

func TestValidateMassInputRejectsNegativeParameter(t *testing.T) {
	desc := shape.Descriptor{Family: shape.FamilyCube, Params: shape.Params{"width": -5}}
	v := ValidateMassInput(desc, "Steel", 0, material.Default())
	if v.Valid || !hasError(v, "width") {
		t.Fatalf("negative width accepted: %v", v.Errors)
	}
}

func TestValidateMassInputRejectsNonFiniteParameter(t *testing.T) {
	desc := shape.Descriptor{Family: shape.FamilyCube, Params: shape.Params{"height": math.NaN()}}
	v := ValidateMassInput(desc, "Steel", 0, material.Default())
	if v.Valid || !hasError(v, "not finite") {
		t.Fatalf("NaN height accepted: %v", v.Errors)
	}
}

func TestValidateMassInputRejectsUnknownMaterial(t *testing.T) {
	v := ValidateMassInput(shape.Descriptor{Family: shape.FamilyCube}, "Unobtainium", 0, material.Default())
	if v.Valid || !hasError(v, "unknown material") {
		t.Fatalf("unknown material accepted: %v", v.Errors)
	}
}

func TestValidateMassInputRejectsEmptyMaterial(t *testing.T) {
	v := ValidateMassInput(shape.Descriptor{Family: shape.FamilyCube}, "", 0, material.Default())
	if v.Valid || !hasError(v, "material name is required") {
		t.Fatalf("empty material accepted: %v", v.Errors)
	}
}

func TestValidateMassInputRejectsNegativeOverride(t *testing.T) {
	v := ValidateMassInput(shape.Descriptor{Family: shape.FamilyCube}, "Steel", -1, material.Default())
	if v.Valid || !hasError(v, "density override") {
		t.Fatalf("negative override accepted: %v", v.Errors)
	}
}

func TestValidateMassInputCollectsAllErrors(t *testing.T) {
	desc := shape.Descriptor{Family: shape.FamilyCube, Params: shape.Params{"width": -1, "height": math.Inf(1)}}
	v := ValidateMassInput(desc, "Unobtainium", -5, material.Default())
	if v.Valid {
		t.Fatal("invalid input accepted")
	}
	if len(v.Errors) < 4 {
		t.Fatalf("expected all errors reported, got %d: %v", len(v.Errors), v.Errors)
	}
}

func TestValidateAnalysisInputAcceptsWellFormed(t *testing.T) {
	v := ValidateAnalysisInput(shape.Descriptor{Family: shape.FamilyBeam}, "Steel",
		fixedBase(), tipForce(100), material.Default())
	if !v.Valid {
		t.Fatalf("valid input rejected: %v", v.Errors)
	}
}

func TestValidateAnalysisInputRequiresConstraintAndLoad(t *testing.T) {
	v := ValidateAnalysisInput(shape.Descriptor{Family: shape.FamilyBeam}, "Steel", nil, nil, material.Default())
	if v.Valid {
		t.Fatal("empty constraints and loads accepted")
	}
	if !hasError(v, "constraint") || !hasError(v, "load") {
		t.Fatalf("missing expected errors: %v", v.Errors)
	}
}

func TestValidateAnalysisInputRejectsBadFace(t *testing.T) {
	constraints := []Constraint{{Type: ConstraintFixed, Face: "diagonal"}}
	v := ValidateAnalysisInput(shape.Descriptor{Family: shape.FamilyBeam}, "Steel",
		constraints, tipForce(100), material.Default())
	if v.Valid || !hasError(v, "invalid face") {
		t.Fatalf("invalid face accepted: %v", v.Errors)
	}
}

func TestValidateAnalysisInputRejectsUnsupportedConstraintType(t *testing.T) {
	constraints := []Constraint{{Type: "pinned", Face: FaceLeft}}
	v := ValidateAnalysisInput(shape.Descriptor{Family: shape.FamilyBeam}, "Steel",
		constraints, tipForce(100), material.Default())
	if v.Valid || !hasError(v, "unsupported type") {
		t.Fatalf("unsupported constraint type accepted: %v", v.Errors)
	}
}

func TestValidateAnalysisInputRejectsZeroMagnitudeLoad(t *testing.T) {
	loads := []Load{{Type: LoadForce, Magnitude: 0, Direction: Vec3{Y: -1}}}
	v := ValidateAnalysisInput(shape.Descriptor{Family: shape.FamilyBeam}, "Steel",
		fixedBase(), loads, material.Default())
	if v.Valid || !hasError(v, "magnitude") {
		t.Fatalf("zero magnitude accepted: %v", v.Errors)
	}
}

func TestValidateAnalysisInputRejectsZeroDirection(t *testing.T) {
	loads := []Load{{Type: LoadForce, Magnitude: 100, Direction: Vec3{}}}
	v := ValidateAnalysisInput(shape.Descriptor{Family: shape.FamilyBeam}, "Steel",
		fixedBase(), loads, material.Default())
	if v.Valid || !hasError(v, "zero vector") {
		t.Fatalf("zero direction accepted: %v", v.Errors)
	}
}

func TestValidateAnalysisInputRejectsUnsupportedLoadType(t *testing.T) {
	loads := []Load{{Type: "torque", Magnitude: 100, Direction: Vec3{Y: -1}}}
	v := ValidateAnalysisInput(shape.Descriptor{Family: shape.FamilyBeam}, "Steel",
		fixedBase(), loads, material.Default())
	if v.Valid || !hasError(v, "unsupported type") {
		t.Fatalf("unsupported load type accepted: %v", v.Errors)
	}
}
