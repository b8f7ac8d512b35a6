package scene

import (
	"github.com/akimov/optiscene/pkg/materials"
)

// Disk builds a flat cylinder spanning [0, thickness] on the z axis.
// It doubles as the degenerate lens body when both faces are flat.
func Disk(diameter, thickness float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeDisk
	if diameter <= 0 {
		return nil, geomErr(kind, "diameter must be positive, got %g", diameter)
	}
	if thickness <= 0 {
		return nil, geomErr(kind, "thickness must be positive, got %g", thickness)
	}

	body, err := zSpanCylinder(diameter, 0, thickness)
	if err != nil {
		return nil, err
	}

	p := newPrimitive(kind, body, m, name)
	p.Diameter = diameter
	p.CenterThickness = thickness
	return p, nil
}

// Slab builds a flat box spanning [0, thickness] on the z axis.
func Slab(width, height, thickness float64, m *materials.Material, name string) (*Primitive, error) {
	const kind = ShapeSlab
	if width <= 0 || height <= 0 {
		return nil, geomErr(kind, "width and height must be positive, got %g x %g", width, height)
	}
	if thickness <= 0 {
		return nil, geomErr(kind, "thickness must be positive, got %g", thickness)
	}

	body, err := zSpanBox(width, height, 0, thickness)
	if err != nil {
		return nil, err
	}

	p := newPrimitive(kind, body, m, name)
	p.Width = width
	p.Height = height
	p.CenterThickness = thickness
	return p, nil
}

// Circle builds a round surface with no meaningful thickness, used for
// flat mirrors, screens and image planes.
func Circle(diameter float64, m *materials.Material, name string) (*Primitive, error) {
	p, err := Disk(diameter, DefaultThickness, m, name)
	if err != nil {
		return nil, err
	}
	p.Kind = ShapeCircle
	return p, nil
}

// Rectangle builds a rectangular surface with no meaningful thickness.
func Rectangle(width, height float64, m *materials.Material, name string) (*Primitive, error) {
	p, err := Slab(width, height, DefaultThickness, m, name)
	if err != nil {
		return nil, err
	}
	p.Kind = ShapeRectangle
	return p, nil
}
