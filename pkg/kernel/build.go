package kernel

import (
	"fmt"

	"github.com/Yashvi2874/digiform/pkg/shape"
)

// boreRadiusRatio is the gear center-bore radius as a fraction of the gear
// radius, matching the upstream generator convention.
const boreRadiusRatio = 0.2

// Bolt head proportions relative to the shank radius.
const (
	boltHeadRadiusRatio = 1.5
	boltHeadHeightRatio = 0.8
)

// Build constructs a preview solid for the descriptor using the given
// kernel. Parameter defaults are resolved by the shape package, so the
// same dimensions drive both the formulas and the preview geometry.
func Build(k Kernel, desc shape.Descriptor) (Solid, error) {
	p, err := shape.Resolve(desc)
	if err != nil {
		return nil, err
	}

	switch desc.Family {
	case shape.FamilyCube, shape.FamilyBeam:
		return k.Box(p["width"], p["height"], p["depth"]), nil

	case shape.FamilyBracket, shape.FamilyPlate:
		return k.Box(p["width"], p["height"], p["thickness"]), nil

	case shape.FamilyCylinder:
		outer := k.Cylinder(p["height"], p["radius"])
		if inner := p["innerRadius"]; inner > 0 {
			return k.Difference(outer, k.Cylinder(p["height"], inner)), nil
		}
		return outer, nil

	case shape.FamilySphere:
		return k.Sphere(p["radius"]), nil

	case shape.FamilyCone:
		return k.Cone(p["height"], p["radius"]), nil

	case shape.FamilyPyramid:
		return k.Pyramid(p["baseWidth"], p["baseDepth"], p["height"]), nil

	case shape.FamilyPrism:
		return k.Wedge(p["baseWidth"], p["baseHeight"], p["length"]), nil

	case shape.FamilyGear:
		blank := k.Cylinder(p["thickness"], p["radius"])
		bore := k.Cylinder(p["thickness"], p["radius"]*boreRadiusRatio)
		return k.Difference(blank, bore), nil

	case shape.FamilyShaft:
		return k.Cylinder(p["length"], p["radius"]), nil

	case shape.FamilyBearing:
		ring := k.Cylinder(p["thickness"], p["radius"])
		hole := k.Cylinder(p["thickness"], p["innerRadius"])
		return k.Difference(ring, hole), nil

	case shape.FamilyBolt:
		r := p["radius"]
		shank := k.Cylinder(p["length"], r)
		head := k.Cylinder(r*boltHeadHeightRatio, r*boltHeadRadiusRatio)
		// Stack the head on top of the shank.
		head = k.Translate(head, 0, 0, (p["length"]+r*boltHeadHeightRatio)/2)
		return k.Union(shank, head), nil

	default:
		return nil, fmt.Errorf("no preview builder for shape family %q", desc.Family)
	}
}

// Preview builds the descriptor's solid and tessellates it into a mesh
// tagged with the family name.
func Preview(k Kernel, desc shape.Descriptor) (*Mesh, error) {
	solid, err := Build(k, desc)
	if err != nil {
		return nil, err
	}
	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, err
	}
	mesh.Family = desc.Family.String()
	return mesh, nil
}

// BoundingBox returns the axis-aligned bounds of the descriptor's preview
// solid, in millimeters.
func BoundingBox(k Kernel, desc shape.Descriptor) (min, max [3]float64, err error) {
	solid, err := Build(k, desc)
	if err != nil {
		return min, max, err
	}
	min, max = solid.BoundingBox()
	return min, max, nil
}
