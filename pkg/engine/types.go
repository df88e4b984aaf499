// Package engine implements the two-phase analysis engine: mass-property
// computation (STEP 1) followed by a gated linear-static structural analysis
// (STEP 2). All computation is synchronous and pure; the only state is the
// per-design simulation gate.
package engine

import (
	"github.com/Yashvi2874/digiform/pkg/shape"
)

// Vec3 is a 3-component vector. Used for load directions and the center of
// mass (millimeters).
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// IsZero reports whether all three components are zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Face names one of the six axis-aligned faces of a part's bounding box.
type Face string

const (
	FaceLeft   Face = "left"
	FaceRight  Face = "right"
	FaceTop    Face = "top"
	FaceBottom Face = "bottom"
	FaceFront  Face = "front"
	FaceBack   Face = "back"
)

// ValidFaces is the set of recognized face names.
var ValidFaces = map[Face]bool{
	FaceLeft: true, FaceRight: true, FaceTop: true,
	FaceBottom: true, FaceFront: true, FaceBack: true,
}

// ConstraintType enumerates supported constraint kinds.
type ConstraintType string

// ConstraintFixed clamps the named face in the listed degrees of freedom.
const ConstraintFixed ConstraintType = "fixed"

// Constraint fixes a face of the part for structural analysis.
type Constraint struct {
	Type ConstraintType `json:"type"`
	Face Face           `json:"face"`
	DOF  []string       `json:"dof,omitempty"` // subset of "x","y","z"; empty = all
}

// LoadType enumerates supported load kinds.
type LoadType string

const (
	LoadForce    LoadType = "force"    // magnitude in N
	LoadPressure LoadType = "pressure" // magnitude in Pa
)

// Load is an applied force or pressure acting on a face.
type Load struct {
	Type      LoadType `json:"type"`
	Magnitude float64  `json:"magnitude"`
	Direction Vec3     `json:"direction"` // unit-like; orientation only
	Face      Face     `json:"face"`
}

// MassProperties is the STEP 1 result. Immutable once produced.
type MassProperties struct {
	Volume           float64       `json:"volume_mm3"`
	SurfaceArea      float64       `json:"surface_area_mm2"`
	Mass             float64       `json:"mass_kg"`
	CenterOfMass     Vec3          `json:"center_of_mass_mm"`
	MomentsOfInertia shape.Inertia `json:"moments_of_inertia_kg_mm2"`
	Density          float64       `json:"density_kg_m3"`
}

// Status is the pass/fail verdict of a structural run.
type Status string

const (
	StatusSafe    Status = "SAFE"
	StatusFailure Status = "FAILURE"
)

// StressSample is one point of the stress distribution along the beam.
// Position is normalized to [0,1] from the constrained end.
type StressSample struct {
	Position float64 `json:"position"`
	Stress   float64 `json:"stress"` // Pa
}

// DisplacementSample is one point of the displacement field along the beam.
type DisplacementSample struct {
	Position     float64 `json:"position"`
	Displacement float64 `json:"displacement"` // m
}

// StructuralResult is the STEP 2 result. Recomputed on every invocation and
// never persisted mutably; each run yields a fresh value tied to the
// constraint/load set used.
type StructuralResult struct {
	MaxBendingStress   float64              `json:"max_bending_stress_pa"`
	MaxVonMisesStress  float64              `json:"max_von_mises_stress_pa"`
	MaxDisplacement    float64              `json:"max_displacement_m"`
	SafetyFactor       float64              `json:"safety_factor"`
	Status             Status               `json:"status"`
	ReactionForce      float64              `json:"reaction_force_n"`
	ReactionMoment     float64              `json:"reaction_moment_nm"`
	StressDistribution []StressSample       `json:"stress_distribution"`
	DisplacementField  []DisplacementSample `json:"displacement_field"`
}
