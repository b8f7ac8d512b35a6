package scene

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/akimov/optiscene/pkg/materials"
)

// A mirror is a thin substrate with the reflective face carved into
// its back (-z) side: the face rim sits at z = 0, the face vertex at
// z = sag, and the substrate extends to z = CenterThickness, which is
// the face sag plus a DefaultThickness backing. The face may be
// decentered: the substrate and central hole shift laterally while the
// curvature axis stays on z.
//
// MirrorSpec carries the face outline. Either Diameter (round) or
// Width and Height (rectangular) must be set, not both.
type MirrorSpec struct {
	Diameter      float64
	Width, Height float64

	// ApertureDiameter is the diameter of a central hole through the
	// substrate, zero for none.
	ApertureDiameter float64

	HorizontalDecenter float64
	VerticalDecenter   float64

	Material *materials.Material
	Name     string
}

func (s *MirrorSpec) round() bool { return s.Diameter > 0 }

func (s *MirrorSpec) validate(kind ShapeKind) error {
	if s.round() == (s.Width > 0 || s.Height > 0) {
		return geomErr(kind, "exactly one of diameter or width/height must be set")
	}
	if !s.round() && (s.Width <= 0 || s.Height <= 0) {
		return geomErr(kind, "width and height must both be positive, got %g x %g", s.Width, s.Height)
	}
	if s.ApertureDiameter < 0 {
		return geomErr(kind, "aperture diameter must not be negative, got %g", s.ApertureDiameter)
	}
	if s.round() && s.ApertureDiameter >= s.Diameter {
		return geomErr(kind, "aperture diameter %g does not fit inside diameter %g",
			s.ApertureDiameter, s.Diameter)
	}
	return nil
}

// extentX and extentY are the farthest lateral distances from the
// curvature axis to the substrate outline, per axis.
func (s *MirrorSpec) extentX() float64 {
	if s.round() {
		return s.Diameter/2 + math.Abs(s.HorizontalDecenter)
	}
	return s.Width/2 + math.Abs(s.HorizontalDecenter)
}

func (s *MirrorSpec) extentY() float64 {
	if s.round() {
		return s.Diameter/2 + math.Abs(s.VerticalDecenter)
	}
	return s.Height/2 + math.Abs(s.VerticalDecenter)
}

// extent is the farthest lateral distance from the curvature axis to
// any point of the substrate outline.
func (s *MirrorSpec) extent() float64 {
	if s.round() {
		return s.Diameter/2 + math.Hypot(s.HorizontalDecenter, s.VerticalDecenter)
	}
	return math.Hypot(s.extentX(), s.extentY())
}

// substrate builds the uncarved decentered body spanning [0, ct].
func (s *MirrorSpec) substrate(ct float64) (sdf.SDF3, error) {
	var body sdf.SDF3
	var err error
	if s.round() {
		body, err = zSpanCylinder(s.Diameter, 0, ct)
	} else {
		body, err = zSpanBox(s.Width, s.Height, 0, ct)
	}
	if err != nil {
		return nil, err
	}

	if s.HorizontalDecenter != 0 || s.VerticalDecenter != 0 {
		m := sdf.Translate3d(v3.Vec{X: s.HorizontalDecenter, Y: s.VerticalDecenter})
		body = sdf.Transform3D(body, m)
	}
	return body, nil
}

// drill removes the central hole, if any. The hole follows the
// substrate decenter.
func (s *MirrorSpec) drill(body sdf.SDF3, ct float64) (sdf.SDF3, error) {
	if s.ApertureDiameter == 0 {
		return body, nil
	}
	hole, err := zSpanCylinder(s.ApertureDiameter, -ct, 2*ct)
	if err != nil {
		return nil, err
	}
	if s.HorizontalDecenter != 0 || s.VerticalDecenter != 0 {
		m := sdf.Translate3d(v3.Vec{X: s.HorizontalDecenter, Y: s.VerticalDecenter})
		hole = sdf.Transform3D(hole, m)
	}
	return sdf.Difference3D(body, hole), nil
}

func (s *MirrorSpec) fill(p *Primitive, ct float64) {
	p.Material = s.Material
	if p.Material == nil {
		p.Material = &materials.Material{Name: materials.ReflectorName, Kind: materials.KindReflector}
	}
	p.Name = s.Name
	p.Diameter = s.Diameter
	p.Width = s.Width
	p.Height = s.Height
	p.CenterThickness = ct
	p.ApertureDiameter = s.ApertureDiameter
	p.HorizontalDecenter = s.HorizontalDecenter
	p.VerticalDecenter = s.VerticalDecenter
}

// SphericalMirror builds a mirror with a spherical face of the given
// curvature radius carved into its back side.
func SphericalMirror(spec MirrorSpec, curvature float64) (*Primitive, error) {
	const kind = ShapeSphericalMirror
	if err := spec.validate(kind); err != nil {
		return nil, err
	}
	if err := validateLensFace(kind, "face", curvature, spec.extent()); err != nil {
		return nil, err
	}

	faceSag := sag(curvature, spec.extent())
	ct := faceSag + DefaultThickness

	body, err := spec.substrate(ct)
	if err != nil {
		return nil, err
	}
	face, err := sphereAt(curvature, faceSag-curvature)
	if err != nil {
		return nil, err
	}
	solid, err := spec.drill(sdf.Difference3D(body, face), ct)
	if err != nil {
		return nil, err
	}

	p := newPrimitive(kind, solid, spec.Material, spec.Name)
	spec.fill(p, ct)
	p.Curvature = curvature
	return p, nil
}

// CylindricalMirror builds a mirror whose face curves in the vertical
// plane only.
func CylindricalMirror(spec MirrorSpec, curvature float64) (*Primitive, error) {
	const kind = ShapeCylindricalMirror
	if err := spec.validate(kind); err != nil {
		return nil, err
	}
	if err := validateLensFace(kind, "face", curvature, spec.extentY()); err != nil {
		return nil, err
	}

	faceSag := sag(curvature, spec.extentY())
	ct := faceSag + DefaultThickness

	body, err := spec.substrate(ct)
	if err != nil {
		return nil, err
	}
	face, err := crossCylinderAt(curvature, 4*spec.extentX(), faceSag-curvature)
	if err != nil {
		return nil, err
	}
	solid, err := spec.drill(sdf.Difference3D(body, face), ct)
	if err != nil {
		return nil, err
	}

	p := newPrimitive(kind, solid, spec.Material, spec.Name)
	spec.fill(p, ct)
	p.Curvature = curvature
	return p, nil
}

// ToricMirror builds a mirror with separate vertical and horizontal
// face curvature radii.
func ToricMirror(spec MirrorSpec, curvV, curvH float64) (*Primitive, error) {
	const kind = ShapeToricMirror
	if err := spec.validate(kind); err != nil {
		return nil, err
	}
	if err := validateLensFace(kind, "vertical face", curvV, spec.extentY()); err != nil {
		return nil, err
	}
	if err := validateLensFace(kind, "horizontal face", curvH, spec.extentX()); err != nil {
		return nil, err
	}

	faceSag := math.Max(sag(curvV, spec.extentY()), sag(curvH, spec.extentX()))
	ct := faceSag + DefaultThickness

	body, err := spec.substrate(ct)
	if err != nil {
		return nil, err
	}
	face := toricAt(curvV, curvH, faceSag-toricReach(curvV, curvH))
	solid, err := spec.drill(sdf.Difference3D(body, face), ct)
	if err != nil {
		return nil, err
	}

	p := newPrimitive(kind, solid, spec.Material, spec.Name)
	spec.fill(p, ct)
	p.Curvature = curvV
	p.CurvatureHorizontal = curvH
	return p, nil
}
