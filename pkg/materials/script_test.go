package materials

import (
	"strings"
	"testing"
)

func TestLoadScriptGlass(t *testing.T) {
	declared, err := LoadScript(`(glass "TEST-SELLMEIER" 1.0 0.2 1.0 0.006 0.02 100.0)`)
	if err != nil {
		t.Fatalf("LoadScript returned error: %v", err)
	}
	if len(declared) != 1 {
		t.Fatalf("declared count = %d, want 1", len(declared))
	}

	m := declared[0]
	if m.Name != "TEST-SELLMEIER" || m.Kind != KindDielectric {
		t.Errorf("declared %q kind %v, want TEST-SELLMEIER dielectric", m.Name, m.Kind)
	}
	if m.Dispersion.B2 != 0.2 || m.Dispersion.C3 != 100.0 {
		t.Errorf("dispersion = %+v, coefficients out of order", m.Dispersion)
	}

	found, err := Find("TEST-SELLMEIER")
	if err != nil {
		t.Fatalf("declared glass not registered: %v", err)
	}
	if found.Dispersion.B1 != 1.0 {
		t.Errorf("registered B1 = %g, want 1", found.Dispersion.B1)
	}
}

func TestLoadScriptReflector(t *testing.T) {
	declared, err := LoadScript(`(reflector "GOLD")`)
	if err != nil {
		t.Fatalf("LoadScript returned error: %v", err)
	}
	if len(declared) != 1 || declared[0].Kind != KindReflector {
		t.Fatalf("declared = %v, want one reflector", declared)
	}

	if _, err := Find("GOLD"); err != nil {
		t.Errorf("declared reflector not registered: %v", err)
	}
}

func TestLoadScriptMultipleDeclarations(t *testing.T) {
	src := `
(glass "SCRIPT-A" 1.0 0.0 0.0 0.006 0.0 0.0)
(glass "SCRIPT-B" 1.1 0.0 0.0 0.006 0.0 0.0)
(reflector "SCRIPT-M")
`
	declared, err := LoadScript(src)
	if err != nil {
		t.Fatalf("LoadScript returned error: %v", err)
	}
	if len(declared) != 3 {
		t.Fatalf("declared count = %d, want 3", len(declared))
	}
}

func TestLoadScriptBadArity(t *testing.T) {
	_, err := LoadScript(`(glass "SHORT" 1.0 2.0)`)
	if err == nil {
		t.Fatal("expected an error for missing Sellmeier terms")
	}

	if _, findErr := Find("SHORT"); findErr == nil {
		t.Error("failed script must not register anything")
	}
}

func TestLoadScriptParseError(t *testing.T) {
	_, err := LoadScript(`(glass "UNCLOSED"`)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error = %v, want a parse error", err)
	}
}

func TestLoadScriptNonStringName(t *testing.T) {
	if _, err := LoadScript(`(reflector 42)`); err == nil {
		t.Fatal("expected an error for a numeric name")
	}
}
