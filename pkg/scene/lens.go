package scene

import (
	"github.com/deadsy/sdfx/sdf"

	"github.com/akimov/optiscene/pkg/materials"
)

// Round lens bodies are a z-axis cylinder with each face either left
// flat, capped by intersecting a sphere (convex), or carved by
// subtracting one (concave). Curvatures are magnitudes; the shape kind
// encodes which way each face bends.

func validateLensBody(kind ShapeKind, diameter, ct float64) error {
	if diameter <= 0 {
		return geomErr(kind, "diameter must be positive, got %g", diameter)
	}
	if ct <= 0 {
		return geomErr(kind, "center thickness must be positive, got %g", ct)
	}
	return nil
}

func validateLensFace(kind ShapeKind, face string, curvature, semiAperture float64) error {
	if curvature <= 0 {
		return geomErr(kind, "%s curvature must be positive, got %g", face, curvature)
	}
	if curvature < semiAperture {
		return geomErr(kind, "%s curvature %g is smaller than the semi-aperture %g",
			face, curvature, semiAperture)
	}
	return nil
}

// BiConvex builds a lens with both faces bulging outward. The back
// vertex sits at z = 0, the front vertex at z = ct.
func BiConvex(diameter, ct, frontCurvature, backCurvature float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeBiConvex
	if err := validateLensBody(kind, diameter, ct); err != nil {
		return nil, err
	}
	if err := validateLensFace(kind, "front", frontCurvature, diameter/2); err != nil {
		return nil, err
	}
	if err := validateLensFace(kind, "back", backCurvature, diameter/2); err != nil {
		return nil, err
	}

	sagF := sag(frontCurvature, diameter/2)
	sagB := sag(backCurvature, diameter/2)
	if ct <= sagF+sagB {
		return nil, geomErr(kind, "center thickness %g does not clear the combined face sags %g",
			ct, sagF+sagB)
	}

	body, err := zSpanCylinder(diameter, 0, ct)
	if err != nil {
		return nil, err
	}
	back, err := sphereAt(backCurvature, backCurvature)
	if err != nil {
		return nil, err
	}
	front, err := sphereAt(frontCurvature, ct-frontCurvature)
	if err != nil {
		return nil, err
	}

	p := newPrimitive(kind, sdf.Intersect3D(sdf.Intersect3D(body, back), front), m, name)
	p.Diameter = diameter
	p.CenterThickness = ct
	p.FrontCurvature = frontCurvature
	p.BackCurvature = backCurvature
	return p, nil
}

// BiConcave builds a lens with both faces carved inward. The body edge
// extends past both vertices by the face sags.
func BiConcave(diameter, ct, frontCurvature, backCurvature float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeBiConcave
	if err := validateLensBody(kind, diameter, ct); err != nil {
		return nil, err
	}
	if err := validateLensFace(kind, "front", frontCurvature, diameter/2); err != nil {
		return nil, err
	}
	if err := validateLensFace(kind, "back", backCurvature, diameter/2); err != nil {
		return nil, err
	}

	sagF := sag(frontCurvature, diameter/2)
	sagB := sag(backCurvature, diameter/2)

	body, err := zSpanCylinder(diameter, -sagB, ct+sagF)
	if err != nil {
		return nil, err
	}
	back, err := sphereAt(backCurvature, -backCurvature)
	if err != nil {
		return nil, err
	}
	front, err := sphereAt(frontCurvature, ct+frontCurvature)
	if err != nil {
		return nil, err
	}

	p := newPrimitive(kind, sdf.Difference3D(sdf.Difference3D(body, back), front), m, name)
	p.Diameter = diameter
	p.CenterThickness = ct
	p.FrontCurvature = frontCurvature
	p.BackCurvature = backCurvature
	return p, nil
}

// PlanoConvex builds a lens with a flat back face and a convex front.
func PlanoConvex(diameter, ct, curvature float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapePlanoConvex
	if err := validateLensBody(kind, diameter, ct); err != nil {
		return nil, err
	}
	if err := validateLensFace(kind, "front", curvature, diameter/2); err != nil {
		return nil, err
	}

	sagF := sag(curvature, diameter/2)
	if ct <= sagF {
		return nil, geomErr(kind, "center thickness %g does not clear the face sag %g", ct, sagF)
	}

	body, err := zSpanCylinder(diameter, 0, ct)
	if err != nil {
		return nil, err
	}
	front, err := sphereAt(curvature, ct-curvature)
	if err != nil {
		return nil, err
	}

	p := newPrimitive(kind, sdf.Intersect3D(body, front), m, name)
	p.Diameter = diameter
	p.CenterThickness = ct
	p.FrontCurvature = curvature
	return p, nil
}

// PlanoConcave builds a lens with a flat back face and a concave front.
func PlanoConcave(diameter, ct, curvature float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapePlanoConcave
	if err := validateLensBody(kind, diameter, ct); err != nil {
		return nil, err
	}
	if err := validateLensFace(kind, "front", curvature, diameter/2); err != nil {
		return nil, err
	}

	sagF := sag(curvature, diameter/2)

	body, err := zSpanCylinder(diameter, 0, ct+sagF)
	if err != nil {
		return nil, err
	}
	front, err := sphereAt(curvature, ct+curvature)
	if err != nil {
		return nil, err
	}

	p := newPrimitive(kind, sdf.Difference3D(body, front), m, name)
	p.Diameter = diameter
	p.CenterThickness = ct
	p.FrontCurvature = curvature
	return p, nil
}

// Meniscus builds a lens with a concave back face and a convex front
// face, both bending toward +z.
func Meniscus(diameter, ct, frontCurvature, backCurvature float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeMeniscus
	if err := validateLensBody(kind, diameter, ct); err != nil {
		return nil, err
	}
	if err := validateLensFace(kind, "front", frontCurvature, diameter/2); err != nil {
		return nil, err
	}
	if err := validateLensFace(kind, "back", backCurvature, diameter/2); err != nil {
		return nil, err
	}

	sagF := sag(frontCurvature, diameter/2)
	sagB := sag(backCurvature, diameter/2)
	if ct+sagB <= sagF {
		return nil, geomErr(kind, "edge thickness %g is not positive", ct+sagB-sagF)
	}

	body, err := zSpanCylinder(diameter, -sagB, ct)
	if err != nil {
		return nil, err
	}
	front, err := sphereAt(frontCurvature, ct-frontCurvature)
	if err != nil {
		return nil, err
	}
	back, err := sphereAt(backCurvature, -backCurvature)
	if err != nil {
		return nil, err
	}

	p := newPrimitive(kind, sdf.Difference3D(sdf.Intersect3D(body, front), back), m, name)
	p.Diameter = diameter
	p.CenterThickness = ct
	p.FrontCurvature = frontCurvature
	p.BackCurvature = backCurvature
	return p, nil
}
