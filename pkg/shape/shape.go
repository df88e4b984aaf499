// Package shape defines the closed taxonomy of primitive solid families and
// the per-family closed-form geometry formulas (volume, surface area,
// mass-moment coefficients, cantilever beam mapping).
//
// All dimensions are millimeters by convention of the upstream CAD layer.
// Parameter defaulting happens only inside this package: after Resolve every
// formula sees a complete parameter set.
package shape

import (
	"fmt"
	"strings"
)

// Family enumerates the supported primitive shape families.
type Family int

const (
	FamilyCube Family = iota
	FamilyBeam
	FamilyCylinder
	FamilySphere
	FamilyCone
	FamilyPyramid
	FamilyPrism
	FamilyGear
	FamilyShaft
	FamilyBearing
	FamilyBracket
	FamilyPlate
	FamilyBolt
)

func (f Family) String() string {
	switch f {
	case FamilyCube:
		return "cube"
	case FamilyBeam:
		return "beam"
	case FamilyCylinder:
		return "cylinder"
	case FamilySphere:
		return "sphere"
	case FamilyCone:
		return "cone"
	case FamilyPyramid:
		return "pyramid"
	case FamilyPrism:
		return "prism"
	case FamilyGear:
		return "gear"
	case FamilyShaft:
		return "shaft"
	case FamilyBearing:
		return "bearing"
	case FamilyBracket:
		return "bracket"
	case FamilyPlate:
		return "plate"
	case FamilyBolt:
		return "bolt"
	default:
		return "unknown"
	}
}

// Families lists every supported family in declaration order.
var Families = []Family{
	FamilyCube, FamilyBeam, FamilyCylinder, FamilySphere, FamilyCone,
	FamilyPyramid, FamilyPrism, FamilyGear, FamilyShaft, FamilyBearing,
	FamilyBracket, FamilyPlate, FamilyBolt,
}

// ParseFamily converts a family name into a Family value.
func ParseFamily(s string) (Family, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Families {
		if f.String() == name {
			return f, true
		}
	}
	return Family(-1), false
}

// Params holds named dimensional parameters in millimeters.
// Boolean-ish flags (isHollow) are encoded as non-zero values.
type Params map[string]float64

// clone returns a copy of p, never nil.
func (p Params) clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// value returns the named parameter, or 0 when absent.
func (p Params) value(key string) float64 {
	if p == nil {
		return 0
	}
	return p[key]
}

// Descriptor identifies a parametric solid: a family plus its dimensions.
type Descriptor struct {
	Family Family `json:"family"`
	Params Params `json:"parameters"`
}

// ErrUnknownFamily is wrapped by errors returned for out-of-taxonomy families.
var ErrUnknownFamily = fmt.Errorf("unknown shape family")

func unknownFamily(f Family) error {
	return fmt.Errorf("%w: %d", ErrUnknownFamily, int(f))
}
