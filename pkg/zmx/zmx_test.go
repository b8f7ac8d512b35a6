package zmx

import (
	"math"
	"testing"
)

const samplePrescription = `VERS 190513 25 08053
MODE SEQ
UNIT MM X W X CM MR CPMM
WAVM 1 0.5876 1.0
WAVM 2 0.4861 0.5
WAVM 3 0.5876 1.0
FTYP 0 0 2 3 0 0 0
XFLN 0.0 1.0
YFLN 0.0 5.0
FWGN 1.0 1.0
VDXN 0.0 0.0
VDYN 0.0 0.1
VCXN 0.0 0.0
VCYN 0.0 0.2
VANN 0.0 0.0
SURF 0
  TYPE STANDARD
  CURV 0.0
  DISZ INFINITY
SURF 1
  COMM primary
  TYPE STANDARD
  CURV 0.02
  DISZ 5.0
  GLAS N-BK7 0 0 1.5168 64.17
  DIAM 12.5 1 0 0 1 ""
  SQAP 10.0 8.0
  OBDC 1.0 -2.0
SURF 2
  TYPE STANDARD
  CURV -0.02
  DISZ 10.0
  DIAM 12.5
SURF 3
  TYPE COORDBRK
  PARM 1 1.0
  PARM 2 2.0
  PARM 3 10.0
  PARM 4 0.0
  PARM 5 0.0
  DISZ -15.0
SURF 4
  TYPE STANDARD
  CURV 0.0
  DISZ 0.0
`

func TestParsePrescription(t *testing.T) {
	p, err := Parse([]byte(samplePrescription))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if p.UnitFactor != MillimeterFactor {
		t.Errorf("unit factor = %g, want %g", p.UnitFactor, MillimeterFactor)
	}
	if len(p.Records) != 5 {
		t.Fatalf("record count = %d, want 5", len(p.Records))
	}

	object := p.Records[0]
	if object.Index != 0 {
		t.Errorf("object index = %d, want 0", object.Index)
	}
	if !math.IsInf(object.Thickness, 1) {
		t.Errorf("object thickness = %g, want +Inf", object.Thickness)
	}

	lens := p.Records[1]
	if lens.Name != "primary" {
		t.Errorf("name = %q, want %q", lens.Name, "primary")
	}
	if lens.Type != "STANDARD" {
		t.Errorf("type = %q, want STANDARD", lens.Type)
	}
	if lens.Curvature != 0.02 {
		t.Errorf("curvature = %g, want 0.02", lens.Curvature)
	}
	if lens.Glass != "N-BK7" {
		t.Errorf("glass = %q, want N-BK7", lens.Glass)
	}
	if lens.SemiDiameter != 12.5 {
		t.Errorf("semi-diameter = %g, want 12.5", lens.SemiDiameter)
	}
	if lens.Aperture == nil || lens.Aperture.X != 10 || lens.Aperture.Y != 8 {
		t.Errorf("aperture = %v, want {10 8}", lens.Aperture)
	}
	if lens.Decenter == nil || lens.Decenter.X != 1 || lens.Decenter.Y != -2 {
		t.Errorf("decenter = %v, want {1 -2}", lens.Decenter)
	}

	cb := p.Records[3]
	if cb.Type != "COORDBRK" {
		t.Errorf("type = %q, want COORDBRK", cb.Type)
	}
	if cb.Thickness != -15 {
		t.Errorf("thickness = %g, want -15", cb.Thickness)
	}
	if len(cb.Params) != 5 {
		t.Errorf("param count = %d, want 5", len(cb.Params))
	}
	if cb.Params[3] != 10 {
		t.Errorf("param 3 = %g, want 10", cb.Params[3])
	}
}

func TestParseWavelengths(t *testing.T) {
	p, err := Parse([]byte(samplePrescription))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	// the padded repeat of 0.5876 must be dropped
	if len(p.Wavelengths) != 2 {
		t.Fatalf("wavelength count = %d, want 2", len(p.Wavelengths))
	}
	if math.Abs(p.Wavelengths[0].Value-587.6) > 1e-9 {
		t.Errorf("wavelength = %g nm, want 587.6", p.Wavelengths[0].Value)
	}
	if math.Abs(p.Wavelengths[1].Value-486.1) > 1e-9 {
		t.Errorf("wavelength = %g nm, want 486.1", p.Wavelengths[1].Value)
	}
	if p.Wavelengths[1].Weight != 0.5 {
		t.Errorf("weight = %g, want 0.5", p.Wavelengths[1].Weight)
	}
}

func TestParseFields(t *testing.T) {
	p, err := Parse([]byte(samplePrescription))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if p.Fields.Type != FieldAngle {
		t.Errorf("field type = %v, want angle", p.Fields.Type)
	}
	if len(p.Fields.Points) != 2 {
		t.Fatalf("field count = %d, want 2", len(p.Fields.Points))
	}

	second := p.Fields.Points[1]
	if second.X != 1 || second.Y != 5 {
		t.Errorf("field position = (%g, %g), want (1, 5)", second.X, second.Y)
	}
	if second.VDY != 0.1 || second.VCY != 0.2 {
		t.Errorf("vignetting = VDY %g VCY %g, want 0.1 0.2", second.VDY, second.VCY)
	}
}

func TestParseHeightFieldsConvertUnits(t *testing.T) {
	src := `UNIT MM
FTYP 1 0 1 1 0 0 0
XFLN 2.0
YFLN 10.0
SURF 0
  TYPE STANDARD
  CURV 0.0
  DISZ 0.0
`
	p, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if p.Fields.Type != FieldHeight {
		t.Fatalf("field type = %v, want height", p.Fields.Type)
	}
	f := p.Fields.Points[0]
	if math.Abs(f.X-2.0e-3) > 1e-12 || math.Abs(f.Y-10.0e-3) > 1e-12 {
		t.Errorf("field position = (%g, %g), want (0.002, 0.01)", f.X, f.Y)
	}
}

func TestFieldTransform(t *testing.T) {
	f := Field{VDX: 0.1, VCX: 0.5, VCY: 0.25}

	x, y := f.Transform(1, 1)
	if math.Abs(x-0.6) > 1e-12 {
		t.Errorf("x = %g, want 0.6", x)
	}
	if math.Abs(y-0.75) > 1e-12 {
		t.Errorf("y = %g, want 0.75", y)
	}

	// a quarter turn swaps the axes
	f = Field{VAN: math.Pi / 2}
	x, y = f.Transform(1, 0)
	if math.Abs(x) > 1e-12 || math.Abs(y-1) > 1e-12 {
		t.Errorf("rotated pupil point = (%g, %g), want (0, 1)", x, y)
	}
}

func TestParseUTF16(t *testing.T) {
	src := "UNIT MM\nSURF 0\n  TYPE STANDARD\n  CURV 0.0\n  DISZ 4.0\n"

	encoded := []byte{0xff, 0xfe} // little-endian byte order mark
	for _, r := range src {
		encoded = append(encoded, byte(r), 0)
	}

	p, err := Parse(encoded)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(p.Records) != 1 {
		t.Fatalf("record count = %d, want 1", len(p.Records))
	}
	if p.Records[0].Thickness != 4 {
		t.Errorf("thickness = %g, want 4", p.Records[0].Thickness)
	}
}

func TestParseRejectsEmptyPrescription(t *testing.T) {
	if _, err := Parse([]byte("UNIT MM\nMODE SEQ\n")); err == nil {
		t.Fatal("expected an error for a prescription without surfaces")
	}
}
