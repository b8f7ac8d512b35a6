package surface

import (
	"errors"
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/akimov/optiscene/pkg/zmx"
)

func record(typ string, curv, thickness float64) zmx.Record {
	rec := zmx.NewRecord()
	rec.Index = 1
	rec.Type = typ
	rec.Curvature = curv
	rec.Thickness = thickness
	rec.SemiDiameter = 12.5
	return rec
}

func TestFromRecordStandard(t *testing.T) {
	rec := record(TypeStandard, 0.02, 5)
	rec.Name = "primary"
	rec.Glass = "N-BK7"

	s, err := FromRecord(rec, 1.0e-3)
	if err != nil {
		t.Fatalf("FromRecord returned error: %v", err)
	}

	std, ok := s.(Standard)
	if !ok {
		t.Fatalf("surface type = %T, want Standard", s)
	}

	// curvature 0.02 1/mm inverts to 50 mm, scaled to meters
	if math.Abs(std.Radius-0.05) > 1e-12 {
		t.Errorf("radius = %g, want 0.05", std.Radius)
	}
	if math.Abs(std.Thickness-0.005) > 1e-12 {
		t.Errorf("thickness = %g, want 0.005", std.Thickness)
	}
	if math.Abs(std.SemiDiameter-0.0125) > 1e-12 {
		t.Errorf("semi-diameter = %g, want 0.0125", std.SemiDiameter)
	}
	if std.Material != "N-BK7" {
		t.Errorf("material = %q, want N-BK7", std.Material)
	}
}

func TestFromRecordFlatKeepsZeroRadius(t *testing.T) {
	s, err := FromRecord(record(TypeStandard, 0, 1), 1.0e-3)
	if err != nil {
		t.Fatalf("FromRecord returned error: %v", err)
	}
	if s.Base().Radius != 0 {
		t.Errorf("radius = %g, want 0", s.Base().Radius)
	}
}

func TestFromRecordToroidal(t *testing.T) {
	rec := record(TypeToroidal, 0.01, 2)
	rec.Params[1] = 200

	s, err := FromRecord(rec, 1.0e-3)
	if err != nil {
		t.Fatalf("FromRecord returned error: %v", err)
	}

	tor, ok := s.(Toroidal)
	if !ok {
		t.Fatalf("surface type = %T, want Toroidal", s)
	}
	if math.Abs(tor.Radius-0.1) > 1e-12 {
		t.Errorf("vertical radius = %g, want 0.1", tor.Radius)
	}
	if math.Abs(tor.RadiusHorizontal-0.2) > 1e-12 {
		t.Errorf("horizontal radius = %g, want 0.2", tor.RadiusHorizontal)
	}
}

func TestFromRecordBiconicSharesToroidal(t *testing.T) {
	rec := record(TypeBiconicX, 0.01, 2)
	rec.Params[1] = 200

	s, err := FromRecord(rec, 1.0e-3)
	if err != nil {
		t.Fatalf("FromRecord returned error: %v", err)
	}
	if _, ok := s.(Toroidal); !ok {
		t.Fatalf("surface type = %T, want Toroidal", s)
	}
}

func TestFromRecordCoordinateBreak(t *testing.T) {
	rec := record(TypeCoordinateBreak, 0, -15)
	rec.Params[1] = 1
	rec.Params[2] = 2
	rec.Params[3] = 10
	rec.Params[4] = 0
	rec.Params[5] = 0

	s, err := FromRecord(rec, 1.0e-3)
	if err != nil {
		t.Fatalf("FromRecord returned error: %v", err)
	}

	cb, ok := s.(CoordinateBreak)
	if !ok {
		t.Fatalf("surface type = %T, want CoordinateBreak", s)
	}
	if math.Abs(cb.DecenterX-0.001) > 1e-12 || math.Abs(cb.DecenterY-0.002) > 1e-12 {
		t.Errorf("decenter = (%g, %g), want (0.001, 0.002)", cb.DecenterX, cb.DecenterY)
	}
	// tilts are angles, no unit conversion
	if cb.TiltX != 10 {
		t.Errorf("tilt x = %g, want 10", cb.TiltX)
	}
}

func TestFromRecordUnsupportedType(t *testing.T) {
	_, err := FromRecord(record("EVENASPH", 0.01, 1), 1)
	var unsupported *UnsupportedSurfaceTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want UnsupportedSurfaceTypeError", err)
	}
	if unsupported.Type != "EVENASPH" {
		t.Errorf("error type = %q, want EVENASPH", unsupported.Type)
	}
}

func TestFromRecordMalformed(t *testing.T) {
	// coordinate break without its five parameters
	_, err := FromRecord(record(TypeCoordinateBreak, 0, 0), 1)
	var malformed *MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want MalformedRecordError", err)
	}
}

func TestCoordinateBreakMatrix(t *testing.T) {
	cb := CoordinateBreak{DecenterX: 1, DecenterY: 2, TiltZ: 90}

	got := cb.Matrix().MulPosition(v3.Vec{X: 1})
	want := v3.Vec{X: 1, Y: 3}

	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || math.Abs(got.Z) > 1e-9 {
		t.Errorf("transformed point = %v, want %v", got, want)
	}
}

func TestCoordinateBreakMatrixExcludesThickness(t *testing.T) {
	cb := CoordinateBreak{Common: Common{Thickness: 5}}

	got := cb.Matrix().MulPosition(v3.Vec{})
	if math.Abs(got.Z) > 1e-12 {
		t.Errorf("origin moved to z = %g, thickness must not be folded in", got.Z)
	}
}
