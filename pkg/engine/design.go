package engine

import (
	"github.com/Yashvi2874/digiform/pkg/material"
	"github.com/Yashvi2874/digiform/pkg/shape"
)

// Design binds a shape descriptor to its simulation gate. It is the unit of
// isolation for concurrent callers: each design carries its own gate, and
// results are immutable once produced. A Design is not safe for concurrent
// mutation by multiple goroutines; share the results, not the design.
type Design struct {
	desc      shape.Descriptor
	gate      Gate
	materials *material.Table
}

// NewDesign creates a design around the given descriptor using the built-in
// material table.
func NewDesign(desc shape.Descriptor) *Design {
	return NewDesignWithTable(desc, material.Default())
}

// NewDesignWithTable creates a design with an explicit material table.
func NewDesignWithTable(desc shape.Descriptor, table *material.Table) *Design {
	return &Design{desc: desc, materials: table}
}

// Shape returns the current descriptor.
func (d *Design) Shape() shape.Descriptor {
	return d.desc
}

// SetShape replaces the descriptor. Any previously computed mass properties
// are stale, so the gate reverts to UNCOMPUTED.
func (d *Design) SetShape(desc shape.Descriptor) {
	d.desc = desc
	d.gate.Invalidate()
}

// SetParameter updates one dimension in place and invalidates the gate.
func (d *Design) SetParameter(name string, value float64) {
	if d.desc.Params == nil {
		d.desc.Params = shape.Params{}
	}
	d.desc.Params[name] = value
	d.gate.Invalidate()
}

// GateState exposes the gate phase for callers and tests.
func (d *Design) GateState() GateState {
	return d.gate.State()
}

// ComputeMassProperties is STEP 1. On success the gate records the
// material/override tuple, unlocking structural analysis for that tuple.
// densityOverride > 0 substitutes only the density of the resolved material;
// 0 means no override.
func (d *Design) ComputeMassProperties(materialName string, densityOverride float64) (*MassProperties, error) {
	if v := ValidateMassInput(d.desc, materialName, densityOverride, d.materials); !v.Valid {
		return nil, validationError(materialName, densityOverride, v, d.materials)
	}

	rec, err := d.materials.Resolve(materialName, densityOverride)
	if err != nil {
		return nil, errorf(CodeUnknownMaterial, "%v", err)
	}

	props, err := ComputeMassProperties(d.desc, rec)
	if err != nil {
		return nil, err
	}

	d.gate.record(materialName, densityOverride)
	return props, nil
}

// AnalyzeStructure is STEP 2. It requires the gate to be COMPUTED for the
// same material/override tuple; a stale tuple reverts the gate and fails
// with GateNotSatisfied until STEP 1 is rerun.
func (d *Design) AnalyzeStructure(materialName string, densityOverride float64, constraints []Constraint, loads []Load) (*StructuralResult, error) {
	if !d.gate.Satisfied(materialName, densityOverride) {
		d.gate.Invalidate()
		return nil, errorf(CodeGateNotSatisfied,
			"mass properties have not been computed for material %q; run the mass-property step first", materialName)
	}

	if v := ValidateAnalysisInput(d.desc, materialName, constraints, loads, d.materials); !v.Valid {
		return nil, analysisValidationError(constraints, loads, v)
	}

	rec, err := d.materials.Resolve(materialName, densityOverride)
	if err != nil {
		return nil, errorf(CodeUnknownMaterial, "%v", err)
	}

	return AnalyzeStructure(d.desc, rec, constraints, loads)
}

// validationError maps a failed mass-input validation onto the most specific
// error code available.
func validationError(materialName string, densityOverride float64, v ValidationResult, table *material.Table) *Error {
	if _, err := table.Lookup(materialName); err != nil {
		return errorf(CodeUnknownMaterial, "%v", err)
	}
	if densityOverride < 0 {
		return errorf(CodeInvalidMaterial, "density override %g must be positive", densityOverride)
	}
	return errorf(CodeInvalidGeometry, "%s", joinErrors(v.Errors))
}

// analysisValidationError maps a failed analysis-input validation onto the
// most specific error code available.
func analysisValidationError(constraints []Constraint, loads []Load, v ValidationResult) *Error {
	if len(constraints) == 0 {
		return errorf(CodeMissingConstraint, "structural analysis requires at least one fixed constraint")
	}
	if len(loads) == 0 {
		return errorf(CodeMissingLoad, "structural analysis requires at least one load")
	}
	return errorf(CodeInvalidGeometry, "%s", joinErrors(v.Errors))
}

func joinErrors(errs []string) string {
	if len(errs) == 0 {
		return "invalid input"
	}
	out := errs[0]
	for _, e := range errs[1:] {
		out += "; " + e
	}
	return out
}
