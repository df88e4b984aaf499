package engine

// GateState names the two phases of the simulation gate.
type GateState string

const (
	GateUncomputed GateState = "UNCOMPUTED"
	GateComputed   GateState = "COMPUTED"
)

// Gate is the two-phase state machine that orders the analysis steps:
// structural analysis may only run after mass properties have been computed
// for the same material/density-override tuple. Each design instance owns
// its own gate, so concurrent designs cannot interfere.
type Gate struct {
	computed        bool
	material        string
	densityOverride float64 // 0 = no override
}

// State returns the current gate state.
func (g *Gate) State() GateState {
	if g.computed {
		return GateComputed
	}
	return GateUncomputed
}

// record marks a successful mass-property run for the given tuple.
func (g *Gate) record(material string, densityOverride float64) {
	g.computed = true
	g.material = material
	g.densityOverride = densityOverride
}

// Invalidate reverts the gate to UNCOMPUTED. Called whenever the design's
// geometry changes materially; material/override changes are caught by
// Satisfied instead.
func (g *Gate) Invalidate() {
	g.computed = false
	g.material = ""
	g.densityOverride = 0
}

// Satisfied reports whether the gate is COMPUTED for exactly this
// material/override tuple. A stale tuple does not satisfy the gate: the
// caller must rerun the mass-property step first.
func (g *Gate) Satisfied(material string, densityOverride float64) bool {
	return g.computed && g.material == material && g.densityOverride == densityOverride
}
