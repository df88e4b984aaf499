package engine

import (
	"math"

	"github.com/Yashvi2874/digiform/pkg/material"
	"github.com/Yashvi2874/digiform/pkg/shape"
)

// MM3ToM3 converts a millimeter³ volume to meter³. Geometry is always
// expressed in millimeters by convention of the upstream CAD layer; this
// factor is part of the engine's contract and must not be bypassed.
const MM3ToM3 = 1e-9

// ComputeMassProperties resolves the solid's volume, surface area, mass,
// center of mass and moments of inertia for the given material record.
// It is a pure function: identical inputs yield identical results.
func ComputeMassProperties(desc shape.Descriptor, mat material.Record) (*MassProperties, error) {
	volume, err := shape.Volume(desc)
	if err != nil {
		return nil, errorf(CodeInvalidGeometry, "%v", err)
	}
	if volume <= 0 || math.IsNaN(volume) || math.IsInf(volume, 0) {
		return nil, errorf(CodeInvalidGeometry,
			"computed volume %g mm³ for %s is not a positive finite value", volume, desc.Family)
	}

	// Surface area of zero is tolerated; it is informational downstream.
	area, err := shape.SurfaceArea(desc)
	if err != nil {
		return nil, errorf(CodeInvalidGeometry, "%v", err)
	}

	mass := mat.Density * volume * MM3ToM3
	if mass <= 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return nil, errorf(CodeInvalidMass,
			"computed mass %g kg from density %g kg/m³ is not a positive finite value", mass, mat.Density)
	}

	coeffs, err := shape.InertiaCoefficients(desc)
	if err != nil {
		return nil, errorf(CodeInvalidGeometry, "%v", err)
	}

	return &MassProperties{
		Volume:      volume,
		SurfaceArea: area,
		Mass:        mass,
		// The primitive taxonomy is symmetric about the origin; off-axis
		// centroids come from upstream collaborators, not this engine.
		CenterOfMass: Vec3{},
		MomentsOfInertia: shape.Inertia{
			Ixx: coeffs.Ixx * mass,
			Iyy: coeffs.Iyy * mass,
			Izz: coeffs.Izz * mass,
		},
		Density: mat.Density,
	}, nil
}
