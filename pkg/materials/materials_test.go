package materials

import (
	"errors"
	"math"
	"testing"
)

func TestFindExact(t *testing.T) {
	m, err := Find("F_SILICA")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if m.Kind != KindDielectric {
		t.Errorf("kind = %v, want dielectric", m.Kind)
	}
}

func TestFindIsCaseInsensitive(t *testing.T) {
	m, err := Find("f_silica")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if m.Name != "F_SILICA" {
		t.Errorf("name = %q, want F_SILICA", m.Name)
	}
}

func TestFindEmptyNameIsNull(t *testing.T) {
	m, err := Find("")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if m.Kind != KindNull {
		t.Errorf("kind = %v, want null", m.Kind)
	}
}

func TestFindFuzzyFallback(t *testing.T) {
	// a vendor-prefixed name should still land on the catalog entry
	m, err := Find("SILICA")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if m.Name != "F_SILICA" {
		t.Errorf("name = %q, want F_SILICA", m.Name)
	}
}

func TestFindUnknown(t *testing.T) {
	_, err := Find("UNOBTAINIUM")
	var notFound *MaterialNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want MaterialNotFoundError", err)
	}
	if notFound.Name != "UNOBTAINIUM" {
		t.Errorf("error name = %q, want UNOBTAINIUM", notFound.Name)
	}
}

func TestFindReturnsCopies(t *testing.T) {
	a, err := Find("F_SILICA")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	a.TransmissionOnly = true

	b, err := Find("F_SILICA")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if b.TransmissionOnly {
		t.Error("mutation of one lookup leaked into the next")
	}
}

func TestFindReflector(t *testing.T) {
	m, err := Find(ReflectorName)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if m.Kind != KindReflector {
		t.Errorf("kind = %v, want reflector", m.Kind)
	}
}

func TestRegister(t *testing.T) {
	Register(&Material{Name: "TEST-GLASS", Kind: KindDielectric})

	m, err := Find("test-glass")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if m.Name != "TEST-GLASS" {
		t.Errorf("name = %q, want TEST-GLASS", m.Name)
	}
}

func TestIndexAtFusedSilica(t *testing.T) {
	m, err := Find("F_SILICA")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}

	// fused silica at the helium d line
	n := m.IndexAt(587.6)
	if math.Abs(n-1.4585) > 1e-3 {
		t.Errorf("index at 587.6 nm = %g, want about 1.4585", n)
	}

	// dispersion: blue refracts stronger than red
	if m.IndexAt(486.1) <= m.IndexAt(656.3) {
		t.Error("index should decrease with wavelength")
	}
}

func TestIndexAtNonDielectric(t *testing.T) {
	if n := Null().IndexAt(587.6); n != 1 {
		t.Errorf("null material index = %g, want 1", n)
	}

	m := &Material{Name: ReflectorName, Kind: KindReflector}
	if n := m.IndexAt(587.6); n != 1 {
		t.Errorf("reflector index = %g, want 1", n)
	}
}
