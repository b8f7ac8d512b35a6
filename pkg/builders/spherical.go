package builders

import (
	"log/slog"
	"math"

	"github.com/akimov/optiscene/pkg/materials"
	"github.com/akimov/optiscene/pkg/scene"
	"github.com/akimov/optiscene/pkg/surface"
)

// resolveMaterial prefers a user-supplied override, otherwise looks
// the glass name up in the catalog. The result is always a private
// copy.
func resolveMaterial(custom *materials.Material, glassName string) (*materials.Material, error) {
	if custom != nil {
		clone := *custom
		return &clone, nil
	}
	return materials.Find(glassName)
}

func buildSphericalLens(back, front surface.Surface, _ int, custom *materials.Material) (*scene.Primitive, error) {
	if custom == nil {
		if err := checkMaterial(back); err != nil {
			return nil, err
		}
	}
	if err := checkSmallNumbers(back); err != nil {
		return nil, err
	}
	if err := checkSmallNumbers(front); err != nil {
		return nil, err
	}

	backType, backShape := surface.Classify(back)
	frontType, frontShape := surface.Classify(front)

	if backType != surface.SurfaceFlat && backType != surface.SurfaceSpherical {
		return nil, cannotCreate("back surface %q is not spherical or flat", back.Base().Name)
	}
	if frontType != surface.SurfaceFlat && frontType != surface.SurfaceSpherical {
		return nil, cannotCreate("front surface %q is not spherical or flat", front.Base().Name)
	}
	if backShape != surface.ShapeRound {
		slog.Warn("back surface has a non-round aperture, building a round lens",
			"surface", back.Base().Name)
	}
	if frontShape != surface.ShapeRound {
		slog.Warn("front surface has a non-round aperture, building a round lens",
			"surface", front.Base().Name)
	}

	diameter := lensDiameter(back, front)
	ct := back.Base().Thickness
	backCurv := math.Abs(back.Base().Radius)
	frontCurv := math.Abs(front.Base().Radius)

	m, err := resolveMaterial(custom, back.Base().Material)
	if err != nil {
		return nil, err
	}
	name := lensName(back, front)

	backSgn, frontSgn := CurvatureSigns(back, front)

	switch {
	case backSgn == 0 && frontSgn == 0:
		// degenerate lens: a plain window
		return scene.Disk(diameter, thicknessOrDefault(ct), m, name)

	case backSgn < 0 && frontSgn < 0:
		return scene.Meniscus(diameter, ct, frontCurv, backCurv, m, name)

	case backSgn > 0 && frontSgn > 0:
		return flipped(scene.Meniscus(diameter, ct, backCurv, frontCurv, m, name))

	case backSgn > 0 && frontSgn < 0:
		return scene.BiConvex(diameter, ct, frontCurv, backCurv, m, name)

	case backSgn < 0 && frontSgn > 0:
		return scene.BiConcave(diameter, ct, frontCurv, backCurv, m, name)

	case backSgn == 0:
		if frontSgn < 0 {
			return scene.PlanoConvex(diameter, ct, frontCurv, m, name)
		}
		return scene.PlanoConcave(diameter, ct, frontCurv, m, name)

	default: // frontSgn == 0
		if backSgn > 0 {
			return flipped(scene.PlanoConvex(diameter, ct, backCurv, m, name))
		}
		return flipped(scene.PlanoConcave(diameter, ct, backCurv, m, name))
	}
}

// flipped applies the side-swapping transform to a freshly built lens.
func flipped(p *scene.Primitive, err error) (*scene.Primitive, error) {
	if err != nil {
		return nil, err
	}
	p.Transform = Flip(p.CenterThickness)
	return p, nil
}

func thicknessOrDefault(t float64) float64 {
	if t == 0 {
		return scene.DefaultThickness
	}
	return t
}

func buildSphericalMirror(s surface.Surface, direction int, custom *materials.Material) (*scene.Primitive, error) {
	switch s.(type) {
	case surface.Standard, surface.Toroidal:
	default:
		return nil, cannotCreate("surface %q cannot define a spherical mirror", s.Base().Name)
	}
	if err := checkSmallNumbers(s); err != nil {
		return nil, err
	}

	surfaceType, shapeType := surface.Classify(s)
	if surfaceType != surface.SurfaceSpherical {
		return nil, cannotCreate("surface %q is not spherical", s.Base().Name)
	}
	if shapeType != surface.ShapeRound && shapeType != surface.ShapeRectangular {
		return nil, cannotCreate("aperture shape of surface %q is not supported", s.Base().Name)
	}

	c := s.Base()
	curvature := math.Abs(c.Radius)
	curvSign := Sign(c.Radius)

	m, err := resolveMaterial(custom, c.Material)
	if err != nil {
		return nil, err
	}

	spec := scene.MirrorSpec{Material: m, Name: c.Name}
	if shapeType == surface.ShapeRectangular {
		spec.Width = 2 * c.Aperture.HalfWidth
		spec.Height = 2 * c.Aperture.HalfHeight
	} else {
		spec.Diameter = 2 * c.SemiDiameter
	}
	if c.Decenter != nil {
		spec.HorizontalDecenter = c.Decenter.X
		spec.VerticalDecenter = c.Decenter.Y
	}
	// a turned-around mirror flips x, so the decenter flips with it
	if curvSign == -1 {
		spec.HorizontalDecenter = -spec.HorizontalDecenter
	}

	p, err := scene.SphericalMirror(spec, curvature)
	if err != nil {
		return nil, err
	}
	p.Transform = OrientMirror(p.CenterThickness, direction, curvSign)
	return p, nil
}
