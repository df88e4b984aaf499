// Package material provides the fixed engineering material property table.
// Records are immutable after construction; lookups never mutate the table,
// so a single Table may be shared by any number of concurrent designs.
package material

import (
	"fmt"
	"strings"
)

// Record holds the mechanical properties of one material.
// Density is in kg/m³; modulus and strengths are in Pa.
type Record struct {
	Name             string  `json:"name"`
	Density          float64 `json:"density_kg_m3"`
	YoungsModulus    float64 `json:"youngs_modulus_pa"`
	PoissonsRatio    float64 `json:"poissons_ratio"`
	YieldStrength    float64 `json:"yield_strength_pa"`
	UltimateStrength float64 `json:"ultimate_strength_pa"`
}

// UnknownMaterialError is returned when a lookup name is not in the table.
// An unrecognized material is always a hard error; the table never
// substitutes a default record.
type UnknownMaterialError struct {
	Name string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown material %q", e.Name)
}

// Table is a fixed name-to-record mapping. The zero value is not usable;
// construct one with Default.
type Table struct {
	records map[string]Record
	order   []string // canonical names in definition order
}

// Default returns the built-in material table.
func Default() *Table {
	t := &Table{records: make(map[string]Record)}
	for _, r := range builtins {
		t.records[key(r.Name)] = r
		t.order = append(t.order, r.Name)
	}
	return t
}

// key normalizes a material name for lookup. Names are matched
// case-insensitively against the canonical spellings.
func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the record for the given material name.
// Returns *UnknownMaterialError if the name is not in the table.
func (t *Table) Lookup(name string) (Record, error) {
	r, ok := t.records[key(name)]
	if !ok {
		return Record{}, &UnknownMaterialError{Name: name}
	}
	return r, nil
}

// Resolve looks up a material and, if densityOverride is positive,
// substitutes only the density field. All other mechanical properties come
// from the named material. A non-positive override is ignored here; callers
// validate the sign before resolving.
func (t *Table) Resolve(name string, densityOverride float64) (Record, error) {
	r, err := t.Lookup(name)
	if err != nil {
		return Record{}, err
	}
	if densityOverride > 0 {
		r.Density = densityOverride
	}
	return r, nil
}

// Names returns the canonical material names in definition order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// builtins is the fixed property set. Densities for the metals match the
// original generator table; strengths and moduli are standard handbook
// values for the common grade of each material.
var builtins = []Record{
	{Name: "Structural Steel", Density: 7850, YoungsModulus: 200e9, PoissonsRatio: 0.30, YieldStrength: 250e6, UltimateStrength: 460e6},
	{Name: "Steel", Density: 7850, YoungsModulus: 200e9, PoissonsRatio: 0.30, YieldStrength: 250e6, UltimateStrength: 400e6},
	{Name: "Aluminum", Density: 2700, YoungsModulus: 69e9, PoissonsRatio: 0.33, YieldStrength: 95e6, UltimateStrength: 110e6},
	{Name: "Titanium", Density: 4500, YoungsModulus: 116e9, PoissonsRatio: 0.34, YieldStrength: 880e6, UltimateStrength: 950e6},
	{Name: "Copper", Density: 8960, YoungsModulus: 110e9, PoissonsRatio: 0.34, YieldStrength: 70e6, UltimateStrength: 220e6},
	{Name: "Brass", Density: 8500, YoungsModulus: 100e9, PoissonsRatio: 0.34, YieldStrength: 200e6, UltimateStrength: 550e6},
	{Name: "Plastic", Density: 1050, YoungsModulus: 2.3e9, PoissonsRatio: 0.35, YieldStrength: 40e6, UltimateStrength: 70e6},
	{Name: "Composite", Density: 1600, YoungsModulus: 70e9, PoissonsRatio: 0.30, YieldStrength: 550e6, UltimateStrength: 600e6},
	{Name: "Cast Iron", Density: 7200, YoungsModulus: 110e9, PoissonsRatio: 0.28, YieldStrength: 130e6, UltimateStrength: 200e6},
	{Name: "Stainless Steel", Density: 8000, YoungsModulus: 193e9, PoissonsRatio: 0.31, YieldStrength: 215e6, UltimateStrength: 505e6},
	{Name: "Magnesium", Density: 1800, YoungsModulus: 45e9, PoissonsRatio: 0.35, YieldStrength: 130e6, UltimateStrength: 220e6},
}
