package shape

import (
	"math"
	"testing"
)

func approx(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %g, want %g (±%g)", what, got, want, tol)
	}
}

func TestCubeVolume(t *testing.T) {
	v, err := Volume(Descriptor{Family: FamilyCube, Params: Params{"width": 50, "height": 50, "depth": 50}})
	if err != nil {
		t.Fatalf("Volume: %v", err)
	}
	approx(t, v, 125000, 1e-9, "cube volume")
}

func TestCylinderVolume(t *testing.T) {
	v, err := Volume(Descriptor{Family: FamilyCylinder, Params: Params{"radius": 25, "height": 100}})
	if err != nil {
		t.Fatalf("Volume: %v", err)
	}
	approx(t, v, math.Pi*25*25*100, 1e-6, "cylinder volume")
	approx(t, v, 196349.54, 0.01, "cylinder volume (reference)")
}

func TestSphereVolume(t *testing.T) {
	v, err := Volume(Descriptor{Family: FamilySphere, Params: Params{"radius": 30}})
	if err != nil {
		t.Fatalf("Volume: %v", err)
	}
	approx(t, v, 113097.34, 0.01, "sphere volume")
}

func TestHollowCylinderVolume(t *testing.T) {
	solid, err := Volume(Descriptor{Family: FamilyCylinder, Params: Params{"radius": 25, "height": 50}})
	if err != nil {
		t.Fatalf("Volume: %v", err)
	}
	hollow, err := Volume(Descriptor{Family: FamilyCylinder, Params: Params{"radius": 25, "height": 50, "innerRadius": 10}})
	if err != nil {
		t.Fatalf("Volume: %v", err)
	}
	want := solid - math.Pi*10*10*50
	approx(t, hollow, want, 1e-6, "hollow cylinder volume")
}

func TestHollowFlagDefaultsInnerRadius(t *testing.T) {
	p, err := Resolve(Descriptor{Family: FamilyCylinder, Params: Params{"radius": 40, "isHollow": 1}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// Wall defaults to half the outer radius when only the flag is set.
	approx(t, p["innerRadius"], 20, 1e-9, "defaulted inner radius")
}

func TestBearingIsAlwaysHollow(t *testing.T) {
	p, err := Resolve(Descriptor{Family: FamilyBearing})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	approx(t, p["radius"], 30, 1e-9, "bearing outer radius")
	approx(t, p["innerRadius"], 15, 1e-9, "bearing inner radius")
	approx(t, p["thickness"], 15, 1e-9, "bearing thickness")
}

func TestShaftIgnoresInnerRadius(t *testing.T) {
	p, err := Resolve(Descriptor{Family: FamilyShaft, Params: Params{"innerRadius": 5}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p["innerRadius"] != 0 {
		t.Errorf("shaft innerRadius = %g, want 0 (solid family)", p["innerRadius"])
	}
}

func TestDefaultsPerFamily(t *testing.T) {
	cases := []struct {
		family Family
		key    string
		want   float64
	}{
		{FamilyCube, "width", 50},
		{FamilyBeam, "depth", 100},
		{FamilyBracket, "thickness", 10},
		{FamilyPlate, "thickness", 5},
		{FamilyCylinder, "height", 50},
		{FamilySphere, "radius", 25},
		{FamilyCone, "height", 50},
		{FamilyPyramid, "height", 40},
		{FamilyPrism, "length", 50},
		{FamilyGear, "thickness", 10},
		{FamilyShaft, "radius", 12.5},
		{FamilyBolt, "length", 30},
	}
	for _, c := range cases {
		p, err := Resolve(Descriptor{Family: c.family})
		if err != nil {
			t.Errorf("Resolve(%s): %v", c.family, err)
			continue
		}
		if p[c.key] != c.want {
			t.Errorf("%s default %s = %g, want %g", c.family, c.key, p[c.key], c.want)
		}
	}
}

func TestExplicitValuesSurviveResolve(t *testing.T) {
	p, err := Resolve(Descriptor{Family: FamilyCube, Params: Params{"width": 12.5}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	approx(t, p["width"], 12.5, 1e-9, "explicit width")
	approx(t, p["height"], 50, 1e-9, "defaulted height")
}

func TestAllFamiliesPositiveVolume(t *testing.T) {
	for _, f := range Families {
		d := Descriptor{Family: f}
		v, err := Volume(d)
		if err != nil {
			t.Errorf("Volume(%s): %v", f, err)
			continue
		}
		if v <= 0 {
			t.Errorf("Volume(%s) = %g, want > 0", f, v)
		}
		a, err := SurfaceArea(d)
		if err != nil {
			t.Errorf("SurfaceArea(%s): %v", f, err)
			continue
		}
		if a <= 0 {
			t.Errorf("SurfaceArea(%s) = %g, want > 0", f, a)
		}
	}
}

func TestBoxInertiaCoefficients(t *testing.T) {
	i, err := InertiaCoefficients(Descriptor{Family: FamilyCube, Params: Params{"width": 10, "height": 20, "depth": 30}})
	if err != nil {
		t.Fatalf("InertiaCoefficients: %v", err)
	}
	approx(t, i.Ixx, (20*20+30*30)/12.0, 1e-9, "Ixx")
	approx(t, i.Iyy, (10*10+30*30)/12.0, 1e-9, "Iyy")
	approx(t, i.Izz, (10*10+20*20)/12.0, 1e-9, "Izz")
}

func TestSphereInertiaIsIsotropic(t *testing.T) {
	i, err := InertiaCoefficients(Descriptor{Family: FamilySphere, Params: Params{"radius": 10}})
	if err != nil {
		t.Fatalf("InertiaCoefficients: %v", err)
	}
	want := 2.0 * 100 / 5
	approx(t, i.Ixx, want, 1e-9, "Ixx")
	approx(t, i.Iyy, want, 1e-9, "Iyy")
	approx(t, i.Izz, want, 1e-9, "Izz")
}

func TestPyramidInertiaCoefficients(t *testing.T) {
	i, err := InertiaCoefficients(Descriptor{Family: FamilyPyramid, Params: Params{"baseWidth": 30, "baseDepth": 30, "height": 40}})
	if err != nil {
		t.Fatalf("InertiaCoefficients: %v", err)
	}
	approx(t, i.Ixx, (30*30+3*40*40)/20.0, 1e-9, "Ixx")
	approx(t, i.Iyy, (30*30+3*40*40)/20.0, 1e-9, "Iyy")
	approx(t, i.Izz, (30*30+30*30)/10.0, 1e-9, "Izz")
}

func TestBeamMapping(t *testing.T) {
	bm, err := BeamFor(Descriptor{Family: FamilyBeam, Params: Params{"width": 50, "height": 50, "depth": 200}})
	if err != nil {
		t.Fatalf("BeamFor: %v", err)
	}
	approx(t, bm.Length, 200, 1e-9, "beam length")
	approx(t, bm.Width, 50, 1e-9, "beam width")
	approx(t, bm.Height, 50, 1e-9, "beam height")
}

func TestRoundBeamMappingUsesDiameter(t *testing.T) {
	bm, err := BeamFor(Descriptor{Family: FamilyShaft, Params: Params{"radius": 10, "length": 80}})
	if err != nil {
		t.Fatalf("BeamFor: %v", err)
	}
	approx(t, bm.Length, 80, 1e-9, "shaft length")
	approx(t, bm.Width, 20, 1e-9, "shaft width")
	approx(t, bm.Height, 20, 1e-9, "shaft height")
}

func TestUnknownFamilyErrors(t *testing.T) {
	if _, err := Volume(Descriptor{Family: Family(42)}); err == nil {
		t.Fatal("expected error for unknown family")
	}
}

func TestParseFamily(t *testing.T) {
	f, ok := ParseFamily("  Cylinder ")
	if !ok || f != FamilyCylinder {
		t.Fatalf("ParseFamily(cylinder) = %v, %v", f, ok)
	}
	if _, ok := ParseFamily("torus"); ok {
		t.Fatal("ParseFamily(torus) should fail")
	}
}
