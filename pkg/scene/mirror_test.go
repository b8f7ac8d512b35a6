package scene

import (
	"errors"
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/akimov/optiscene/pkg/materials"
)

func TestSphericalMirror(t *testing.T) {
	p, err := SphericalMirror(MirrorSpec{Diameter: 0.05, Name: "primary"}, 0.1)
	if err != nil {
		t.Fatalf("SphericalMirror returned error: %v", err)
	}
	if p.Kind != ShapeSphericalMirror {
		t.Errorf("kind = %v, want spherical mirror", p.Kind)
	}
	if p.Material.Kind != materials.KindReflector {
		t.Errorf("default material = %v, want reflector", p.Material.Kind)
	}

	faceSag := sag(0.1, 0.025)
	if math.Abs(p.CenterThickness-(faceSag+DefaultThickness)) > 1e-15 {
		t.Errorf("center thickness = %g, want face sag plus backing %g",
			p.CenterThickness, faceSag+DefaultThickness)
	}

	s := p.Solid()
	// substrate near the rim, in front of the carved face
	wantInside(t, s, v3.Vec{X: 0.0248, Z: 0.0005})
	// just behind the face vertex
	wantInside(t, s, v3.Vec{Z: faceSag + DefaultThickness/2})
	// the carve removes everything below the face
	wantOutside(t, s, v3.Vec{Z: 0.002})
	wantOutside(t, s, v3.Vec{X: 0.02, Z: 0.001})
	// outside the outline
	wantOutside(t, s, v3.Vec{X: 0.026, Z: 0.0005})
}

func TestSphericalMirrorWithHole(t *testing.T) {
	p, err := SphericalMirror(MirrorSpec{Diameter: 0.05, ApertureDiameter: 0.01}, 0.1)
	if err != nil {
		t.Fatalf("SphericalMirror returned error: %v", err)
	}

	s := p.Solid()
	faceSag := sag(0.1, 0.025)
	wantOutside(t, s, v3.Vec{X: 0.003, Z: faceSag + DefaultThickness/2})
	wantInside(t, s, v3.Vec{X: 0.0248, Z: 0.0005})
}

func TestSphericalMirrorDecentered(t *testing.T) {
	p, err := SphericalMirror(MirrorSpec{Diameter: 0.05, HorizontalDecenter: 0.005}, 0.1)
	if err != nil {
		t.Fatalf("SphericalMirror returned error: %v", err)
	}
	if p.HorizontalDecenter != 0.005 {
		t.Errorf("decenter = %g, want 0.005", p.HorizontalDecenter)
	}

	s := p.Solid()
	// the outline shifts toward +x while the curvature stays on axis
	wantInside(t, s, v3.Vec{X: 0.028, Z: 0.001})
	wantOutside(t, s, v3.Vec{X: -0.021, Z: 0.001})
}

func TestRectangularMirror(t *testing.T) {
	p, err := SphericalMirror(MirrorSpec{Width: 0.04, Height: 0.03}, 0.1)
	if err != nil {
		t.Fatalf("SphericalMirror returned error: %v", err)
	}
	if p.Width != 0.04 || p.Height != 0.03 {
		t.Errorf("outline = %g x %g, want 0.04 x 0.03", p.Width, p.Height)
	}

	s := p.Solid()
	// a box corner the round outline would not reach
	wantInside(t, s, v3.Vec{X: 0.019, Y: 0.014, Z: 0.0005})
	wantOutside(t, s, v3.Vec{X: 0.021, Z: 0.0005})
	wantOutside(t, s, v3.Vec{Y: 0.016, Z: 0.0005})
}

func TestCylindricalMirror(t *testing.T) {
	p, err := CylindricalMirror(MirrorSpec{Diameter: 0.05}, 0.1)
	if err != nil {
		t.Fatalf("CylindricalMirror returned error: %v", err)
	}
	if p.Curvature != 0.1 {
		t.Errorf("curvature = %g, want 0.1", p.Curvature)
	}

	s := p.Solid()
	// the face curves with y only: at the y rim the substrate keeps
	// its full height while the same height on x is carved away
	wantInside(t, s, v3.Vec{Y: 0.0248, Z: 0.0005})
	wantOutside(t, s, v3.Vec{X: 0.02, Z: 0.0005})
}

func TestToricMirror(t *testing.T) {
	p, err := ToricMirror(MirrorSpec{Diameter: 0.05}, 0.1, 0.2)
	if err != nil {
		t.Fatalf("ToricMirror returned error: %v", err)
	}
	if p.Curvature != 0.1 || p.CurvatureHorizontal != 0.2 {
		t.Errorf("curvatures = %g/%g, want 0.1/0.2", p.Curvature, p.CurvatureHorizontal)
	}

	faceSag := math.Max(sag(0.1, 0.025), sag(0.2, 0.025))
	if math.Abs(p.CenterThickness-(faceSag+DefaultThickness)) > 1e-15 {
		t.Errorf("center thickness = %g, want %g", p.CenterThickness, faceSag+DefaultThickness)
	}

	s := p.Solid()
	wantInside(t, s, v3.Vec{Z: faceSag + DefaultThickness/2})
	// vertical plane curves twice as hard as the horizontal one
	wantInside(t, s, v3.Vec{Y: 0.0248, Z: 0.0005})
	wantOutside(t, s, v3.Vec{X: 0.0248, Z: 0.0005})
	wantInside(t, s, v3.Vec{X: 0.0248, Z: 0.002})
}

func TestMirrorSpecValidation(t *testing.T) {
	tests := []struct {
		name string
		spec MirrorSpec
		curv float64
	}{
		{"no outline", MirrorSpec{}, 0.1},
		{"both outlines", MirrorSpec{Diameter: 0.05, Width: 0.04, Height: 0.03}, 0.1},
		{"missing height", MirrorSpec{Width: 0.04}, 0.1},
		{"negative aperture", MirrorSpec{Diameter: 0.05, ApertureDiameter: -1}, 0.1},
		{"aperture swallows outline", MirrorSpec{Diameter: 0.05, ApertureDiameter: 0.05}, 0.1},
		{"curvature smaller than extent", MirrorSpec{Diameter: 0.05}, 0.02},
		{"decenter pushes past curvature", MirrorSpec{Diameter: 0.05, HorizontalDecenter: 0.08}, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SphericalMirror(tt.spec, tt.curv)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("error = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}
