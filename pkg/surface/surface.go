// Package surface defines the typed optical surface variants parsed
// from a prescription and the classifier that maps their curvature
// fields onto concrete surface and shape categories.
//
// The variant set is closed: Standard, Toroidal, Tilted and
// CoordinateBreak. Surfaces are immutable once created and are held
// by value in the ordered sequence produced by the reader.
package surface

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Aperture holds rectangular aperture half-widths in meters.
type Aperture struct {
	HalfWidth  float64
	HalfHeight float64
}

// Decenter holds an aperture decenter in meters.
type Decenter struct {
	X, Y float64
}

// Common carries the fields shared by every surface variant. All
// lengths are in meters; a zero Radius means an infinite curvature
// radius (flat). An empty Material means no medium follows the
// surface (an air gap in an assembly).
type Common struct {
	Name         string
	Radius       float64
	Thickness    float64
	Material     string
	SemiDiameter float64
	Aperture     *Aperture
	Decenter     *Decenter
}

// Base returns the common surface fields.
func (c Common) Base() Common { return c }

// Surface is the closed set of prescription surface variants.
type Surface interface {
	Base() Common
	surface() // marker restricting implementations to this package
}

// Standard is a plane or a spherical surface, depending on its radius.
type Standard struct {
	Common
}

func (Standard) surface() {}

// Toroidal is a surface with two principal curvature radii: Radius in
// the vertical (y-z) plane and RadiusHorizontal in the horizontal
// (x-z) plane. Depending on the radii it degenerates to a flat,
// spherical or cylindrical surface.
type Toroidal struct {
	Common
	RadiusHorizontal float64
}

func (Toroidal) surface() {}

// Tilted is a plane tilted against the optical axis. It carries no
// curvature.
type Tilted struct {
	Common
	TanX float64
	TanY float64
}

func (Tilted) surface() {}

// CoordinateBreak re-orients the running assembly frame without being
// a physical interface. Tilts are in degrees; its radius and material
// fields are meaningless.
type CoordinateBreak struct {
	Common
	DecenterX float64
	DecenterY float64
	TiltX     float64
	TiltY     float64
	TiltZ     float64
}

func (CoordinateBreak) surface() {}

// Matrix returns the decenter-and-tilt transform of this coordinate
// break. The thickness translation along z is not included; the
// assembly walk applies it separately.
func (cb CoordinateBreak) Matrix() sdf.M44 {
	const degree = math.Pi / 180

	return sdf.Translate3d(v3.Vec{X: cb.DecenterX, Y: cb.DecenterY}).
		Mul(sdf.RotateX(cb.TiltX * degree)).
		Mul(sdf.RotateY(cb.TiltY * degree)).
		Mul(sdf.RotateZ(cb.TiltZ * degree))
}
