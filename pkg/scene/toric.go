package scene

import (
	"math"

	"github.com/deadsy/sdfx/sdf"

	"github.com/akimov/optiscene/pkg/materials"
)

// Toric lenses carry a separate curvature radius per plane on each
// curved face: vertical (y-z plane) and horizontal (x-z plane). The
// caps are tori from toricAt; with equal radii the torus degenerates
// to a sphere, so these constructors also subsume the spherical case
// even though the builders route that family elsewhere.

func validateToricFace(kind ShapeKind, face string, rv, rh, semiAperture float64) error {
	if err := validateLensFace(kind, face+" vertical", rv, semiAperture); err != nil {
		return err
	}
	return validateLensFace(kind, face+" horizontal", rh, semiAperture)
}

// toricSag is the largest face sag over a round aperture rim: the sag
// peaks on the axis of the smaller radius.
func toricSag(rv, rh, semiAperture float64) float64 {
	return math.Max(sag(rv, semiAperture), sag(rh, semiAperture))
}

// ToricBiConvex builds a lens with both faces convex, each with its
// own vertical and horizontal curvature radii.
func ToricBiConvex(diameter, ct, frontV, frontH, backV, backH float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeToricBiConvex
	if err := validateLensBody(kind, diameter, ct); err != nil {
		return nil, err
	}
	if err := validateToricFace(kind, "front", frontV, frontH, diameter/2); err != nil {
		return nil, err
	}
	if err := validateToricFace(kind, "back", backV, backH, diameter/2); err != nil {
		return nil, err
	}

	sagF := toricSag(frontV, frontH, diameter/2)
	sagB := toricSag(backV, backH, diameter/2)
	if ct <= sagF+sagB {
		return nil, geomErr(kind, "center thickness %g does not clear the combined face sags %g",
			ct, sagF+sagB)
	}

	body, err := zSpanCylinder(diameter, 0, ct)
	if err != nil {
		return nil, err
	}
	back := toricAt(backV, backH, toricReach(backV, backH))
	front := toricAt(frontV, frontH, ct-toricReach(frontV, frontH))

	p := newPrimitive(kind, sdf.Intersect3D(sdf.Intersect3D(body, back), front), m, name)
	p.Diameter = diameter
	p.CenterThickness = ct
	p.FrontCurvature = frontV
	p.FrontCurvatureHorizontal = frontH
	p.BackCurvature = backV
	p.BackCurvatureHorizontal = backH
	return p, nil
}

// ToricBiConcave builds a lens with both faces concave.
func ToricBiConcave(diameter, ct, frontV, frontH, backV, backH float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeToricBiConcave
	if err := validateLensBody(kind, diameter, ct); err != nil {
		return nil, err
	}
	if err := validateToricFace(kind, "front", frontV, frontH, diameter/2); err != nil {
		return nil, err
	}
	if err := validateToricFace(kind, "back", backV, backH, diameter/2); err != nil {
		return nil, err
	}

	sagF := toricSag(frontV, frontH, diameter/2)
	sagB := toricSag(backV, backH, diameter/2)

	body, err := zSpanCylinder(diameter, -sagB, ct+sagF)
	if err != nil {
		return nil, err
	}
	back := toricAt(backV, backH, -toricReach(backV, backH))
	front := toricAt(frontV, frontH, ct+toricReach(frontV, frontH))

	p := newPrimitive(kind, sdf.Difference3D(sdf.Difference3D(body, back), front), m, name)
	p.Diameter = diameter
	p.CenterThickness = ct
	p.FrontCurvature = frontV
	p.FrontCurvatureHorizontal = frontH
	p.BackCurvature = backV
	p.BackCurvatureHorizontal = backH
	return p, nil
}

// ToricPlanoConvex builds a lens with a flat back and a convex toric
// front.
func ToricPlanoConvex(diameter, ct, curvV, curvH float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeToricPlanoConvex
	if err := validateLensBody(kind, diameter, ct); err != nil {
		return nil, err
	}
	if err := validateToricFace(kind, "front", curvV, curvH, diameter/2); err != nil {
		return nil, err
	}

	sagF := toricSag(curvV, curvH, diameter/2)
	if ct <= sagF {
		return nil, geomErr(kind, "center thickness %g does not clear the face sag %g", ct, sagF)
	}

	body, err := zSpanCylinder(diameter, 0, ct)
	if err != nil {
		return nil, err
	}
	front := toricAt(curvV, curvH, ct-toricReach(curvV, curvH))

	p := newPrimitive(kind, sdf.Intersect3D(body, front), m, name)
	p.Diameter = diameter
	p.CenterThickness = ct
	p.FrontCurvature = curvV
	p.FrontCurvatureHorizontal = curvH
	return p, nil
}

// ToricPlanoConcave builds a lens with a flat back and a concave toric
// front.
func ToricPlanoConcave(diameter, ct, curvV, curvH float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeToricPlanoConcave
	if err := validateLensBody(kind, diameter, ct); err != nil {
		return nil, err
	}
	if err := validateToricFace(kind, "front", curvV, curvH, diameter/2); err != nil {
		return nil, err
	}

	sagF := toricSag(curvV, curvH, diameter/2)

	body, err := zSpanCylinder(diameter, 0, ct+sagF)
	if err != nil {
		return nil, err
	}
	front := toricAt(curvV, curvH, ct+toricReach(curvV, curvH))

	p := newPrimitive(kind, sdf.Difference3D(body, front), m, name)
	p.Diameter = diameter
	p.CenterThickness = ct
	p.FrontCurvature = curvV
	p.FrontCurvatureHorizontal = curvH
	return p, nil
}

// ToricMeniscus builds a lens with a concave toric back and a convex
// toric front.
func ToricMeniscus(diameter, ct, frontV, frontH, backV, backH float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeToricMeniscus
	if err := validateLensBody(kind, diameter, ct); err != nil {
		return nil, err
	}
	if err := validateToricFace(kind, "front", frontV, frontH, diameter/2); err != nil {
		return nil, err
	}
	if err := validateToricFace(kind, "back", backV, backH, diameter/2); err != nil {
		return nil, err
	}

	sagF := toricSag(frontV, frontH, diameter/2)
	sagB := toricSag(backV, backH, diameter/2)
	if ct+sagB <= sagF {
		return nil, geomErr(kind, "edge thickness %g is not positive", ct+sagB-sagF)
	}

	body, err := zSpanCylinder(diameter, -sagB, ct)
	if err != nil {
		return nil, err
	}
	front := toricAt(frontV, frontH, ct-toricReach(frontV, frontH))
	back := toricAt(backV, backH, -toricReach(backV, backH))

	p := newPrimitive(kind, sdf.Difference3D(sdf.Intersect3D(body, front), back), m, name)
	p.Diameter = diameter
	p.CenterThickness = ct
	p.FrontCurvature = frontV
	p.FrontCurvatureHorizontal = frontH
	p.BackCurvature = backV
	p.BackCurvatureHorizontal = backH
	return p, nil
}
