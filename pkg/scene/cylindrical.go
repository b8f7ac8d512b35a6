package scene

import (
	"github.com/deadsy/sdfx/sdf"

	"github.com/akimov/optiscene/pkg/materials"
)

// Cylindrical lenses curve in the vertical (y-z) plane only: the caps
// are cylinders with their axis along x, so the sag varies with y and
// the x section stays flat. A lens curved horizontally instead is the
// same primitive rotated 90 degrees about z by its builder.

// capLength returns the cap cylinder length, long enough to cover the
// body in x with margin.
func capLength(diameter float64) float64 { return 2 * diameter }

// CylindricalBiConvex builds a lens with both faces convex in the
// vertical plane.
func CylindricalBiConvex(diameter, ct, frontCurvature, backCurvature float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeCylindricalBiConvex
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
	back, err := crossCylinderAt(backCurvature, capLength(diameter), backCurvature)
	if err != nil {
		return nil, err
	}
	front, err := crossCylinderAt(frontCurvature, capLength(diameter), ct-frontCurvature)
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

// CylindricalBiConcave builds a lens with both faces concave in the
// vertical plane.
func CylindricalBiConcave(diameter, ct, frontCurvature, backCurvature float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeCylindricalBiConcave
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
	back, err := crossCylinderAt(backCurvature, capLength(diameter), -backCurvature)
	if err != nil {
		return nil, err
	}
	front, err := crossCylinderAt(frontCurvature, capLength(diameter), ct+frontCurvature)
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

// CylindricalPlanoConvex builds a lens with a flat back and a front
// face convex in the vertical plane.
func CylindricalPlanoConvex(diameter, ct, curvature float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeCylindricalPlanoConvex
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
	front, err := crossCylinderAt(curvature, capLength(diameter), ct-curvature)
	if err != nil {
		return nil, err
	}

	p := newPrimitive(kind, sdf.Intersect3D(body, front), m, name)
	p.Diameter = diameter
	p.CenterThickness = ct
	p.FrontCurvature = curvature
	return p, nil
}

// CylindricalPlanoConcave builds a lens with a flat back and a front
// face concave in the vertical plane.
func CylindricalPlanoConcave(diameter, ct, curvature float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeCylindricalPlanoConcave
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
	front, err := crossCylinderAt(curvature, capLength(diameter), ct+curvature)
	if err != nil {
		return nil, err
	}

	p := newPrimitive(kind, sdf.Difference3D(body, front), m, name)
	p.Diameter = diameter
	p.CenterThickness = ct
	p.FrontCurvature = curvature
	return p, nil
}

// CylindricalMeniscus builds a lens with a concave back and a convex
// front, both curved in the vertical plane toward +z.
func CylindricalMeniscus(diameter, ct, frontCurvature, backCurvature float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeCylindricalMeniscus
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
	front, err := crossCylinderAt(frontCurvature, capLength(diameter), ct-frontCurvature)
	if err != nil {
		return nil, err
	}
	back, err := crossCylinderAt(backCurvature, capLength(diameter), -backCurvature)
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
