package shape

import "math"

// Inertia holds the three principal mass-moment coefficients.
// The coefficients are dimensionless per unit mass: multiplying by the part
// mass (kg) yields moments of inertia in kg·mm².
type Inertia struct {
	Ixx float64 `json:"ixx"`
	Iyy float64 `json:"iyy"`
	Izz float64 `json:"izz"`
}

// BeamModel is the equivalent cantilever used by the structural solver.
// Length runs along the load axis; Width and Height span the cross-section.
// All values are millimeters.
type BeamModel struct {
	Length float64 `json:"length_mm"`
	Width  float64 `json:"width_mm"`
	Height float64 `json:"height_mm"`
}

// formulaSet is the per-family set of closed-form property functions.
// Every method assumes resolve has already filled in defaults.
type formulaSet interface {
	resolve(Params) Params
	volume(Params) float64          // mm³
	surfaceArea(Params) float64     // mm²
	inertia(Params) Inertia         // coefficients, × mass → kg·mm²
	crossSection(Params) float64    // load-bearing cross-section, mm²
	beam(Params) BeamModel
}

// formulas is the dispatch table: one formula set per family.
// Adding a shape family means adding exactly one entry here.
var formulas = map[Family]formulaSet{
	FamilyCube:     boxSet{wKey: "width", hKey: "height", dKey: "depth", defW: 50, defH: 50, defD: 50},
	FamilyBeam:     boxSet{wKey: "width", hKey: "height", dKey: "depth", defW: 50, defH: 50, defD: 100},
	FamilyBracket:  boxSet{wKey: "width", hKey: "height", dKey: "thickness", defW: 100, defH: 50, defD: 10},
	FamilyPlate:    boxSet{wKey: "width", hKey: "height", dKey: "thickness", defW: 100, defH: 100, defD: 5},
	FamilyCylinder: cylinderSet{axialKey: "height", defRadius: 25, defAxial: 50, hollow: hollowOptional},
	FamilySphere:   sphereSet{defRadius: 25},
	FamilyCone:     coneSet{defRadius: 25, defHeight: 50},
	FamilyPyramid:  pyramidSet{defBaseWidth: 30, defBaseDepth: 30, defHeight: 40},
	FamilyPrism:    prismSet{defBaseWidth: 30, defBaseHeight: 30, defLength: 50},
	FamilyGear:     cylinderSet{axialKey: "thickness", defRadius: 25, defAxial: 10, hollow: hollowNever},
	FamilyShaft:    cylinderSet{axialKey: "length", defRadius: 12.5, defAxial: 100, hollow: hollowNever},
	FamilyBearing:  cylinderSet{axialKey: "thickness", defRadius: 30, defAxial: 15, defInner: 15, hollow: hollowAlways},
	FamilyBolt:     cylinderSet{axialKey: "length", defRadius: 4, defAxial: 30, hollow: hollowNever},
}

func setFor(f Family) (formulaSet, error) {
	s, ok := formulas[f]
	if !ok {
		return nil, unknownFamily(f)
	}
	return s, nil
}

// Resolve applies the family defaults to the descriptor parameters and
// returns the completed set. Zero and missing values default; anything else
// is preserved as supplied.
func Resolve(d Descriptor) (Params, error) {
	s, err := setFor(d.Family)
	if err != nil {
		return nil, err
	}
	return s.resolve(d.Params), nil
}

// Volume returns the solid volume in mm³.
func Volume(d Descriptor) (float64, error) {
	s, err := setFor(d.Family)
	if err != nil {
		return 0, err
	}
	return s.volume(s.resolve(d.Params)), nil
}

// SurfaceArea returns the surface area in mm². Families without a closed
// surface-area form report their standard geometric value; downstream
// consumers treat the field as informational.
func SurfaceArea(d Descriptor) (float64, error) {
	s, err := setFor(d.Family)
	if err != nil {
		return 0, err
	}
	return s.surfaceArea(s.resolve(d.Params)), nil
}

// InertiaCoefficients returns the per-unit-mass principal moment coefficients.
func InertiaCoefficients(d Descriptor) (Inertia, error) {
	s, err := setFor(d.Family)
	if err != nil {
		return Inertia{}, err
	}
	return s.inertia(s.resolve(d.Params)), nil
}

// CrossSectionArea returns the estimated load-bearing cross-section in mm²,
// used to convert pressure loads into equivalent forces.
func CrossSectionArea(d Descriptor) (float64, error) {
	s, err := setFor(d.Family)
	if err != nil {
		return 0, err
	}
	return s.crossSection(s.resolve(d.Params)), nil
}

// BeamFor maps the descriptor onto its equivalent cantilever beam.
func BeamFor(d Descriptor) (BeamModel, error) {
	s, err := setFor(d.Family)
	if err != nil {
		return BeamModel{}, err
	}
	return s.beam(s.resolve(d.Params)), nil
}

// defaulted returns v when positive, otherwise def. NaN and infinities pass
// through so that validation can reject them instead of silently masking.
func defaulted(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// ---------------------------------------------------------------------------
// Box family: cube, beam, bracket, plate
// ---------------------------------------------------------------------------

type boxSet struct {
	wKey, hKey, dKey string
	defW, defH, defD float64
}

func (s boxSet) resolve(p Params) Params {
	out := p.clone()
	out[s.wKey] = defaulted(p.value(s.wKey), s.defW)
	out[s.hKey] = defaulted(p.value(s.hKey), s.defH)
	out[s.dKey] = defaulted(p.value(s.dKey), s.defD)
	return out
}

func (s boxSet) dims(p Params) (w, h, d float64) {
	return p[s.wKey], p[s.hKey], p[s.dKey]
}

func (s boxSet) volume(p Params) float64 {
	w, h, d := s.dims(p)
	return w * h * d
}

func (s boxSet) surfaceArea(p Params) float64 {
	w, h, d := s.dims(p)
	return 2 * (w*h + w*d + h*d)
}

func (s boxSet) inertia(p Params) Inertia {
	w, h, d := s.dims(p)
	return Inertia{
		Ixx: (h*h + d*d) / 12,
		Iyy: (w*w + d*d) / 12,
		Izz: (w*w + h*h) / 12,
	}
}

func (s boxSet) crossSection(p Params) float64 {
	w, _, d := s.dims(p)
	return w * d
}

func (s boxSet) beam(p Params) BeamModel {
	w, h, d := s.dims(p)
	return BeamModel{Length: d, Width: w, Height: h}
}

// ---------------------------------------------------------------------------
// Cylinder family: cylinder, gear, shaft, bearing, bolt
// ---------------------------------------------------------------------------

type hollowMode int

const (
	hollowNever hollowMode = iota
	hollowOptional
	hollowAlways
)

type cylinderSet struct {
	axialKey  string // "height", "length" or "thickness"
	defRadius float64
	defAxial  float64
	defInner  float64
	hollow    hollowMode
}

func (s cylinderSet) resolve(p Params) Params {
	out := p.clone()
	r := defaulted(p.value("radius"), s.defRadius)
	out["radius"] = r
	out[s.axialKey] = defaulted(p.value(s.axialKey), s.defAxial)

	switch s.hollow {
	case hollowNever:
		out["innerRadius"] = 0
	case hollowAlways:
		out["innerRadius"] = defaulted(p.value("innerRadius"), s.defInner)
	case hollowOptional:
		inner := p.value("innerRadius")
		if inner == 0 && p.value("isHollow") != 0 {
			inner = r / 2
		}
		out["innerRadius"] = inner
	}
	return out
}

func (s cylinderSet) dims(p Params) (outer, inner, axial float64) {
	return p["radius"], p["innerRadius"], p[s.axialKey]
}

func (s cylinderSet) volume(p Params) float64 {
	R, r, h := s.dims(p)
	return math.Pi * (R*R - r*r) * h
}

func (s cylinderSet) surfaceArea(p Params) float64 {
	R, r, h := s.dims(p)
	if r > 0 {
		// Outer wall + inner wall + the two annular rings.
		return 2*math.Pi*R*h + 2*math.Pi*r*h + 2*math.Pi*(R*R-r*r)
	}
	return 2*math.Pi*R*h + 2*math.Pi*R*R
}

func (s cylinderSet) inertia(p Params) Inertia {
	R, r, h := s.dims(p)
	if r > 0 {
		transverse := (3*(R*R+r*r) + h*h) / 12
		return Inertia{Ixx: transverse, Iyy: transverse, Izz: (R*R + r*r) / 2}
	}
	transverse := (3*R*R + h*h) / 12
	return Inertia{Ixx: transverse, Iyy: transverse, Izz: R * R / 2}
}

func (s cylinderSet) crossSection(p Params) float64 {
	R, _, _ := s.dims(p)
	return math.Pi * R * R
}

func (s cylinderSet) beam(p Params) BeamModel {
	R, _, h := s.dims(p)
	// Diameter × diameter rectangular approximation of the round section.
	return BeamModel{Length: h, Width: 2 * R, Height: 2 * R}
}

// ---------------------------------------------------------------------------
// Sphere
// ---------------------------------------------------------------------------

type sphereSet struct {
	defRadius float64
}

func (s sphereSet) resolve(p Params) Params {
	out := p.clone()
	out["radius"] = defaulted(p.value("radius"), s.defRadius)
	return out
}

func (s sphereSet) volume(p Params) float64 {
	r := p["radius"]
	return 4.0 / 3.0 * math.Pi * r * r * r
}

func (s sphereSet) surfaceArea(p Params) float64 {
	r := p["radius"]
	return 4 * math.Pi * r * r
}

func (s sphereSet) inertia(p Params) Inertia {
	r := p["radius"]
	c := 2 * r * r / 5
	return Inertia{Ixx: c, Iyy: c, Izz: c}
}

func (s sphereSet) crossSection(p Params) float64 {
	r := p["radius"]
	return math.Pi * r * r
}

func (s sphereSet) beam(p Params) BeamModel {
	d := 2 * p["radius"]
	return BeamModel{Length: d, Width: d, Height: d}
}

// ---------------------------------------------------------------------------
// Cone
// ---------------------------------------------------------------------------

type coneSet struct {
	defRadius, defHeight float64
}

func (s coneSet) resolve(p Params) Params {
	out := p.clone()
	out["radius"] = defaulted(p.value("radius"), s.defRadius)
	out["height"] = defaulted(p.value("height"), s.defHeight)
	return out
}

func (s coneSet) volume(p Params) float64 {
	r, h := p["radius"], p["height"]
	return math.Pi * r * r * h / 3
}

func (s coneSet) surfaceArea(p Params) float64 {
	r, h := p["radius"], p["height"]
	slant := math.Sqrt(r*r + h*h)
	return math.Pi*r*slant + math.Pi*r*r
}

func (s coneSet) inertia(p Params) Inertia {
	r, h := p["radius"], p["height"]
	transverse := 3.0 / 80.0 * (4*r*r + h*h)
	return Inertia{Ixx: transverse, Iyy: transverse, Izz: 3.0 / 10.0 * r * r}
}

func (s coneSet) crossSection(p Params) float64 {
	r := p["radius"]
	return math.Pi * r * r
}

func (s coneSet) beam(p Params) BeamModel {
	r, h := p["radius"], p["height"]
	return BeamModel{Length: h, Width: 2 * r, Height: 2 * r}
}

// ---------------------------------------------------------------------------
// Pyramid (rectangular base)
// ---------------------------------------------------------------------------

type pyramidSet struct {
	defBaseWidth, defBaseDepth, defHeight float64
}

func (s pyramidSet) resolve(p Params) Params {
	out := p.clone()
	out["baseWidth"] = defaulted(p.value("baseWidth"), s.defBaseWidth)
	out["baseDepth"] = defaulted(p.value("baseDepth"), s.defBaseDepth)
	out["height"] = defaulted(p.value("height"), s.defHeight)
	return out
}

func (s pyramidSet) volume(p Params) float64 {
	return p["baseWidth"] * p["baseDepth"] * p["height"] / 3
}

func (s pyramidSet) surfaceArea(p Params) float64 {
	bw, bd, h := p["baseWidth"], p["baseDepth"], p["height"]
	s1 := math.Sqrt(h*h + bd*bd/4) // slant over the width-aligned faces
	s2 := math.Sqrt(h*h + bw*bw/4) // slant over the depth-aligned faces
	return bw*bd + bw*s1 + bd*s2
}

func (s pyramidSet) inertia(p Params) Inertia {
	bw, bd, h := p["baseWidth"], p["baseDepth"], p["height"]
	return Inertia{
		Ixx: (bd*bd + 3*h*h) / 20,
		Iyy: (bw*bw + 3*h*h) / 20,
		Izz: (bw*bw + bd*bd) / 10,
	}
}

func (s pyramidSet) crossSection(p Params) float64 {
	return p["baseWidth"] * p["baseDepth"]
}

func (s pyramidSet) beam(p Params) BeamModel {
	return BeamModel{Length: p["height"], Width: p["baseWidth"], Height: p["baseDepth"]}
}

// ---------------------------------------------------------------------------
// Prism (triangular cross-section extruded along its length)
// ---------------------------------------------------------------------------

type prismSet struct {
	defBaseWidth, defBaseHeight, defLength float64
}

func (s prismSet) resolve(p Params) Params {
	out := p.clone()
	out["baseWidth"] = defaulted(p.value("baseWidth"), s.defBaseWidth)
	out["baseHeight"] = defaulted(p.value("baseHeight"), s.defBaseHeight)
	out["length"] = defaulted(p.value("length"), s.defLength)
	return out
}

func (s prismSet) volume(p Params) float64 {
	return p["baseWidth"] * p["baseHeight"] * p["length"] / 2
}

func (s prismSet) surfaceArea(p Params) float64 {
	b, ht, l := p["baseWidth"], p["baseHeight"], p["length"]
	side := math.Sqrt(b*b/4 + ht*ht) // isosceles triangle side
	return b*ht + l*(b+2*side)
}

func (s prismSet) inertia(p Params) Inertia {
	b, ht, l := p["baseWidth"], p["baseHeight"], p["length"]
	return Inertia{
		Ixx: (ht*ht + l*l) / 18,
		Iyy: (b*b + l*l) / 18,
		Izz: (b*b + ht*ht) / 18,
	}
}

func (s prismSet) crossSection(p Params) float64 {
	return p["baseWidth"] * p["baseHeight"] / 2
}

func (s prismSet) beam(p Params) BeamModel {
	return BeamModel{Length: p["length"], Width: p["baseWidth"], Height: p["baseHeight"]}
}
