package engine

import (
	"math"
	"testing"

	"github.com/Yashvi2874/digiform/pkg/shape"
)

func fixedBase() []Constraint {
	return []Constraint{{Type: ConstraintFixed, Face: FaceLeft}}
}

func tipForce(n float64) []Load {
	return []Load{{Type: LoadForce, Magnitude: n, Direction: Vec3{Y: -1}, Face: FaceRight}}
}

func TestCantileverBeamSteel(t *testing.T) {
	// 50×50 section, 100 mm long, 1 kN tip load.
	desc := shape.Descriptor{Family: shape.FamilyBeam, Params: shape.Params{"width": 50, "height": 50, "depth": 100}}
	res, err := AnalyzeStructure(desc, mustMaterial(t, "Steel"), fixedBase(), tipForce(1000))
	if err != nil {
		t.Fatalf("AnalyzeStructure: %v", err)
	}

	length, width, height := 0.100, 0.050, 0.050
	inertia := width * math.Pow(height, 3) / 12
	wantStress := (1000 * length) * (height / 2) / inertia
	wantDeflection := 1000 * math.Pow(length, 3) / (3 * 200e9 * inertia)

	if math.Abs(res.MaxBendingStress-wantStress) > 1 {
		t.Errorf("stress = %g Pa, want %g", res.MaxBendingStress, wantStress)
	}
	if res.MaxVonMisesStress != res.MaxBendingStress {
		t.Errorf("von Mises = %g, want equal to bending stress %g", res.MaxVonMisesStress, res.MaxBendingStress)
	}
	if math.Abs(res.MaxDisplacement-wantDeflection) > 1e-12 {
		t.Errorf("deflection = %g m, want %g", res.MaxDisplacement, wantDeflection)
	}
	if res.ReactionForce != 1000 {
		t.Errorf("reaction force = %g N, want 1000", res.ReactionForce)
	}
	if math.Abs(res.ReactionMoment-1000*length) > 1e-9 {
		t.Errorf("reaction moment = %g Nm, want %g", res.ReactionMoment, 1000*length)
	}

	wantSF := 250e6 / wantStress
	if math.Abs(res.SafetyFactor-wantSF) > 1e-6 {
		t.Errorf("safety factor = %g, want %g", res.SafetyFactor, wantSF)
	}
	if res.Status != StatusSafe {
		t.Errorf("status = %s, want SAFE (SF = %g)", res.Status, res.SafetyFactor)
	}
}

func TestStatusFollowsSafetyFactor(t *testing.T) {
	// A long slender plastic beam under a heavy tip load must fail.
	desc := shape.Descriptor{Family: shape.FamilyBeam, Params: shape.Params{"width": 10, "height": 10, "depth": 1000}}
	res, err := AnalyzeStructure(desc, mustMaterial(t, "Plastic"), fixedBase(), tipForce(10000))
	if err != nil {
		t.Fatalf("AnalyzeStructure: %v", err)
	}
	if res.SafetyFactor > 1 {
		t.Fatalf("expected SF ≤ 1, got %g", res.SafetyFactor)
	}
	if res.Status != StatusFailure {
		t.Errorf("status = %s, want FAILURE", res.Status)
	}
}

func TestSafetyFactorBoundaryIsExclusive(t *testing.T) {
	desc := shape.Descriptor{Family: shape.FamilyBeam}
	rec := mustMaterial(t, "Steel")

	// Solve for the force that yields exactly SF = 1, then check both sides.
	base, err := AnalyzeStructure(desc, rec, fixedBase(), tipForce(1))
	if err != nil {
		t.Fatalf("AnalyzeStructure: %v", err)
	}
	critical := rec.YieldStrength / base.MaxBendingStress // N for SF = 1

	above, err := AnalyzeStructure(desc, rec, fixedBase(), tipForce(critical*1.01))
	if err != nil {
		t.Fatalf("AnalyzeStructure: %v", err)
	}
	if above.Status != StatusFailure {
		t.Errorf("SF = %g above the boundary: status = %s, want FAILURE (SAFE requires SF > 1)", above.SafetyFactor, above.Status)
	}

	below, err := AnalyzeStructure(desc, rec, fixedBase(), tipForce(critical*0.99))
	if err != nil {
		t.Fatalf("AnalyzeStructure: %v", err)
	}
	if below.Status != StatusSafe {
		t.Errorf("SF = %g below the boundary: status = %s, want SAFE", below.SafetyFactor, below.Status)
	}
}

func TestMissingConstraint(t *testing.T) {
	_, err := AnalyzeStructure(shape.Descriptor{Family: shape.FamilyBeam}, mustMaterial(t, "Steel"), nil, tipForce(100))
	if code, ok := CodeOf(err); !ok || code != CodeMissingConstraint {
		t.Fatalf("code = %v (%v), want %s", code, err, CodeMissingConstraint)
	}
}

func TestMissingLoad(t *testing.T) {
	_, err := AnalyzeStructure(shape.Descriptor{Family: shape.FamilyBeam}, mustMaterial(t, "Steel"), fixedBase(), nil)
	if code, ok := CodeOf(err); !ok || code != CodeMissingLoad {
		t.Fatalf("code = %v (%v), want %s", code, err, CodeMissingLoad)
	}
}

func TestPressureLoadConversion(t *testing.T) {
	// Pressure × cross-section must equal the same applied force.
	desc := shape.Descriptor{Family: shape.FamilyCube, Params: shape.Params{"width": 50, "height": 50, "depth": 50}}
	rec := mustMaterial(t, "Steel")

	areaMM2 := 50.0 * 50.0
	pressure := 2e6 // Pa
	force := pressure * areaMM2 * 1e-6

	fromPressure, err := AnalyzeStructure(desc, rec, fixedBase(),
		[]Load{{Type: LoadPressure, Magnitude: pressure, Direction: Vec3{Z: -1}}})
	if err != nil {
		t.Fatalf("pressure run: %v", err)
	}
	fromForce, err := AnalyzeStructure(desc, rec, fixedBase(), tipForce(force))
	if err != nil {
		t.Fatalf("force run: %v", err)
	}
	if math.Abs(fromPressure.ReactionForce-fromForce.ReactionForce) > 1e-9 {
		t.Errorf("pressure-equivalent force = %g N, want %g", fromPressure.ReactionForce, fromForce.ReactionForce)
	}
	if math.Abs(fromPressure.MaxBendingStress-fromForce.MaxBendingStress) > 1e-6 {
		t.Errorf("stress mismatch: %g vs %g", fromPressure.MaxBendingStress, fromForce.MaxBendingStress)
	}
}

func TestMultipleLoadsAccumulate(t *testing.T) {
	desc := shape.Descriptor{Family: shape.FamilyBeam}
	rec := mustMaterial(t, "Steel")
	res, err := AnalyzeStructure(desc, rec, fixedBase(), []Load{
		{Type: LoadForce, Magnitude: 300, Direction: Vec3{Y: -1}},
		{Type: LoadForce, Magnitude: -200, Direction: Vec3{Y: 1}},
	})
	if err != nil {
		t.Fatalf("AnalyzeStructure: %v", err)
	}
	// Magnitudes accumulate as absolute values onto one equivalent tip force.
	if math.Abs(res.ReactionForce-500) > 1e-9 {
		t.Errorf("reaction force = %g N, want 500", res.ReactionForce)
	}
}

func TestDistributionShapes(t *testing.T) {
	desc := shape.Descriptor{Family: shape.FamilyBeam}
	res, err := AnalyzeStructure(desc, mustMaterial(t, "Steel"), fixedBase(), tipForce(1000))
	if err != nil {
		t.Fatalf("AnalyzeStructure: %v", err)
	}

	if len(res.StressDistribution) != 20 {
		t.Fatalf("stress samples = %d, want 20", len(res.StressDistribution))
	}
	if len(res.DisplacementField) != 20 {
		t.Fatalf("displacement samples = %d, want 20", len(res.DisplacementField))
	}

	first, last := res.StressDistribution[0], res.StressDistribution[19]
	if first.Position != 0 || first.Stress != 0 {
		t.Errorf("stress at root = (%g, %g), want (0, 0)", first.Position, first.Stress)
	}
	if last.Position != 1 || math.Abs(last.Stress-res.MaxBendingStress) > 1e-9 {
		t.Errorf("stress at tip = (%g, %g), want (1, %g)", last.Position, last.Stress, res.MaxBendingStress)
	}

	dispLast := res.DisplacementField[19]
	if math.Abs(dispLast.Displacement-res.MaxDisplacement) > 1e-15 {
		t.Errorf("displacement at tip = %g, want %g", dispLast.Displacement, res.MaxDisplacement)
	}

	// The stress ramp is linear, the displacement ramp quadratic: the
	// midpoint displacement fraction must sit below the stress fraction.
	mid := 10
	stressFrac := res.StressDistribution[mid].Stress / res.MaxBendingStress
	dispFrac := res.DisplacementField[mid].Displacement / res.MaxDisplacement
	if dispFrac >= stressFrac {
		t.Errorf("displacement fraction %g should be below stress fraction %g at midspan", dispFrac, stressFrac)
	}

	for i := 1; i < 20; i++ {
		if res.StressDistribution[i].Stress < res.StressDistribution[i-1].Stress {
			t.Fatalf("stress distribution not monotonic at sample %d", i)
		}
		if res.DisplacementField[i].Displacement < res.DisplacementField[i-1].Displacement {
			t.Fatalf("displacement field not monotonic at sample %d", i)
		}
	}
}

func TestAllFamiliesAnalyzable(t *testing.T) {
	rec := mustMaterial(t, "Structural Steel")
	for _, f := range shape.Families {
		res, err := AnalyzeStructure(shape.Descriptor{Family: f}, rec, fixedBase(), tipForce(100))
		if err != nil {
			t.Errorf("AnalyzeStructure(%s): %v", f, err)
			continue
		}
		if res.MaxBendingStress <= 0 || math.IsNaN(res.MaxBendingStress) {
			t.Errorf("%s: stress = %g, want positive", f, res.MaxBendingStress)
		}
		if res.SafetyFactor <= 0 {
			t.Errorf("%s: safety factor = %g, want positive", f, res.SafetyFactor)
		}
	}
}
