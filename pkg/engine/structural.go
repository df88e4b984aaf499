package engine

import (
	"math"

	"github.com/Yashvi2874/digiform/pkg/material"
	"github.com/Yashvi2874/digiform/pkg/shape"
)

// distributionSamples is the number of points in the stress and displacement
// arrays. A display-resolution choice, not a physical constant.
const distributionSamples = 20

const mmToM = 1e-3

// AnalyzeStructure runs the simplified linear-static analysis: the part is
// mapped onto an equivalent cantilever beam fixed at the constrained end and
// loaded at the tip. Pure with respect to its inputs; gate sequencing is
// enforced by Design, not here.
func AnalyzeStructure(desc shape.Descriptor, mat material.Record, constraints []Constraint, loads []Load) (*StructuralResult, error) {
	if len(constraints) == 0 {
		return nil, errorf(CodeMissingConstraint, "structural analysis requires at least one fixed constraint")
	}
	if len(loads) == 0 {
		return nil, errorf(CodeMissingLoad, "structural analysis requires at least one load")
	}
	if mat.YoungsModulus <= 0 {
		return nil, errorf(CodeInvalidMaterial, "material %q has non-positive Young's modulus", mat.Name)
	}
	if mat.YieldStrength <= 0 {
		return nil, errorf(CodeInvalidMaterial, "material %q has non-positive yield strength", mat.Name)
	}

	force, err := totalForce(desc, loads)
	if err != nil {
		return nil, err
	}

	bm, err := shape.BeamFor(desc)
	if err != nil {
		return nil, errorf(CodeInvalidGeometry, "%v", err)
	}
	length := bm.Length * mmToM
	width := bm.Width * mmToM
	height := bm.Height * mmToM
	if length <= 0 || width <= 0 || height <= 0 {
		return nil, errorf(CodeInvalidGeometry,
			"equivalent beam %gx%gx%g mm has a non-positive dimension", bm.Length, bm.Width, bm.Height)
	}

	// Rectangular cross-section approximation, applied to round sections via
	// the diameter substitution.
	inertia := width * math.Pow(height, 3) / 12

	deflection := force * math.Pow(length, 3) / (3 * mat.YoungsModulus * inertia)
	moment := force * length
	stress := moment * (height / 2) / inertia

	safetyFactor := mat.YieldStrength / stress
	status := StatusFailure
	if safetyFactor > 1 {
		status = StatusSafe
	}

	stressDist := make([]StressSample, distributionSamples)
	dispField := make([]DisplacementSample, distributionSamples)
	for i := 0; i < distributionSamples; i++ {
		pos := float64(i) / float64(distributionSamples-1)
		stressDist[i] = StressSample{Position: pos, Stress: stress * pos}
		// Quadratic ramp approximating the cantilever deflection shape.
		dispField[i] = DisplacementSample{Position: pos, Displacement: deflection * pos * pos}
	}

	return &StructuralResult{
		MaxBendingStress:   stress,
		MaxVonMisesStress:  stress, // uniaxial bending: Von Mises equals the normal stress
		MaxDisplacement:    deflection,
		SafetyFactor:       safetyFactor,
		Status:             status,
		ReactionForce:      force,
		ReactionMoment:     moment,
		StressDistribution: stressDist,
		DisplacementField:  dispField,
	}, nil
}

// totalForce sums the applied loads into one equivalent tip force (N).
// Pressure loads are converted using the family's estimated cross-section.
func totalForce(desc shape.Descriptor, loads []Load) (float64, error) {
	var force float64
	for _, l := range loads {
		switch l.Type {
		case LoadForce:
			force += math.Abs(l.Magnitude)
		case LoadPressure:
			areaMM2, err := shape.CrossSectionArea(desc)
			if err != nil {
				return 0, errorf(CodeInvalidGeometry, "%v", err)
			}
			force += math.Abs(l.Magnitude) * areaMM2 * 1e-6 // mm² → m²
		default:
			force += math.Abs(l.Magnitude)
		}
	}
	return force, nil
}
