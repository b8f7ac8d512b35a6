package builders

import (
	"github.com/akimov/optiscene/pkg/materials"
	"github.com/akimov/optiscene/pkg/scene"
	"github.com/akimov/optiscene/pkg/surface"
)

// Flat fallbacks for the mirror chain: surfaces with no curvature
// become thin circles or rectangles.

func buildCircleMirror(s surface.Surface, _ int, custom *materials.Material) (*scene.Primitive, error) {
	c := s.Base()
	if c.SemiDiameter < SmallNumber {
		return nil, cannotCreate("semi-diameter of surface %q is too small: %g", c.Name, c.SemiDiameter)
	}

	surfaceType, shapeType := surface.Classify(s)
	if surfaceType != surface.SurfaceFlat {
		return nil, cannotCreate("surface %q is not flat", c.Name)
	}
	if shapeType != surface.ShapeRound {
		return nil, cannotCreate("surface %q is not round", c.Name)
	}

	m, err := resolveMaterial(custom, c.Material)
	if err != nil {
		return nil, err
	}
	return scene.Circle(2*c.SemiDiameter, m, c.Name)
}

func buildRectangleMirror(s surface.Surface, _ int, custom *materials.Material) (*scene.Primitive, error) {
	c := s.Base()
	if c.SemiDiameter < SmallNumber {
		return nil, cannotCreate("semi-diameter of surface %q is too small: %g", c.Name, c.SemiDiameter)
	}
	if c.Aperture == nil {
		return nil, cannotCreate("surface %q has no aperture dimensions", c.Name)
	}
	if c.Decenter != nil {
		return nil, cannotCreate("aperture decenter of flat surface %q is not supported", c.Name)
	}

	surfaceType, shapeType := surface.Classify(s)
	if surfaceType != surface.SurfaceFlat {
		return nil, cannotCreate("surface %q is not flat", c.Name)
	}
	if shapeType != surface.ShapeRectangular {
		return nil, cannotCreate("surface %q is not rectangular", c.Name)
	}

	m, err := resolveMaterial(custom, c.Material)
	if err != nil {
		return nil, err
	}
	return scene.Rectangle(2*c.Aperture.HalfWidth, 2*c.Aperture.HalfHeight, m, c.Name)
}
