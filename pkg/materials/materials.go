// Package materials resolves prescription glass names to renderable
// material descriptions. It carries a small built-in catalog (perfect
// reflector, fused silica, common Schott glasses) that can be extended
// at runtime from a catalog script.
package materials

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
)

// ReflectorName is the glass name Zemax uses for perfectly reflecting
// surfaces. The assembly walk keys its direction bookkeeping on it.
const ReflectorName = "MIRROR"

// Kind distinguishes the optical behavior of a material.
type Kind int

const (
	KindNull       Kind = iota // pass-through, no optical effect
	KindDielectric             // refractive glass
	KindReflector              // perfect mirror
)

func (k Kind) String() string {
	switch k {
	case KindDielectric:
		return "dielectric"
	case KindReflector:
		return "reflector"
	default:
		return "null"
	}
}

// Sellmeier holds dispersion coefficients with wavelengths in
// micrometers, as printed in glass catalogs.
type Sellmeier struct {
	B1, B2, B3 float64
	C1, C2, C3 float64
}

// Material describes one resolvable glass. TransmissionOnly disables
// reflection contributions and is only meaningful for dielectrics.
type Material struct {
	Name             string
	Kind             Kind
	Dispersion       Sellmeier
	TransmissionOnly bool
}

// Null returns a fresh pass-through material for surfaces without an
// assigned medium.
func Null() *Material {
	return &Material{Kind: KindNull}
}

// IndexAt evaluates the Sellmeier equation at the given wavelength in
// nanometers. It returns 1 for non-dielectric materials.
func (m *Material) IndexAt(wavelength float64) float64 {
	if m.Kind != KindDielectric {
		return 1
	}

	w2 := (wavelength * 1.0e-3) * (wavelength * 1.0e-3) // µm²
	d := m.Dispersion
	n2 := 1 + d.B1*w2/(w2-d.C1) + d.B2*w2/(w2-d.C2) + d.B3*w2/(w2-d.C3)
	return math.Sqrt(n2)
}

// MaterialNotFoundError reports a non-empty glass name with no catalog
// entry, even after the fuzzy fallback.
type MaterialNotFoundError struct {
	Name string
}

func (e *MaterialNotFoundError) Error() string {
	return fmt.Sprintf("no material found for glass %q", e.Name)
}

var (
	catalogMu sync.RWMutex

	// Sellmeier coefficients below are transcribed from vendor
	// catalog data sheets; F_SILICA matches the Zemax catalog entry.
	catalog = map[string]*Material{
		ReflectorName: {Name: ReflectorName, Kind: KindReflector},
		"F_SILICA": {Name: "F_SILICA", Kind: KindDielectric, Dispersion: Sellmeier{
			B1: 0.6961663, B2: 0.4079426, B3: 0.8974794,
			C1: 4.6791480e-3, C2: 1.3512063e-2, C3: 97.9340025,
		}},
		"N-BK7": {Name: "N-BK7", Kind: KindDielectric, Dispersion: Sellmeier{
			B1: 1.03961212, B2: 0.231792344, B3: 1.01046945,
			C1: 6.00069867e-3, C2: 2.00179144e-2, C3: 103.560653,
		}},
		"N-SF11": {Name: "N-SF11", Kind: KindDielectric, Dispersion: Sellmeier{
			B1: 1.73759695, B2: 0.313747346, B3: 1.89878101,
			C1: 1.3188707e-2, C2: 6.23068142e-2, C3: 155.23629,
		}},
		"N-BAF10": {Name: "N-BAF10", Kind: KindDielectric, Dispersion: Sellmeier{
			B1: 1.5851495, B2: 0.143559385, B3: 1.08521269,
			C1: 9.26681282e-3, C2: 4.24489805e-2, C3: 105.613573,
		}},
		"N-SK16": {Name: "N-SK16", Kind: KindDielectric, Dispersion: Sellmeier{
			B1: 1.34317774, B2: 0.241144399, B3: 0.994317969,
			C1: 7.04687339e-3, C2: 2.29005e-2, C3: 92.7508526,
		}},
	}
)

// Register adds or replaces a catalog entry. Registered materials are
// visible to every subsequent Find call.
func Register(m *Material) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog[strings.ToUpper(m.Name)] = m
}

// Find resolves a glass name to a material. An empty name yields a
// pass-through null material. An exact (case-insensitive) match is
// preferred; otherwise a substring match against the catalog is tried
// before giving up with a MaterialNotFoundError.
//
// Find returns a copy so that per-assembly adjustments (such as the
// transmission-only pass) never leak between builds.
func Find(name string) (*Material, error) {
	if name == "" {
		return Null(), nil
	}

	catalogMu.RLock()
	defer catalogMu.RUnlock()

	if m, ok := catalog[strings.ToUpper(name)]; ok {
		clone := *m
		return &clone, nil
	}

	lower := strings.ToLower(name)
	for key, m := range catalog {
		keyLower := strings.ToLower(key)
		if strings.Contains(keyLower, lower) || strings.Contains(lower, keyLower) {
			slog.Warn("no exact material match, using nearest catalog entry",
				"glass", name, "entry", m.Name)
			clone := *m
			return &clone, nil
		}
	}

	return nil, &MaterialNotFoundError{Name: name}
}
