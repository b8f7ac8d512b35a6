package builders

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/deadsy/sdfx/sdf"

	"github.com/akimov/optiscene/pkg/materials"
	"github.com/akimov/optiscene/pkg/scene"
	"github.com/akimov/optiscene/pkg/surface"
)

func buildCylindricalMirror(s surface.Surface, direction int, custom *materials.Material) (*scene.Primitive, error) {
	t, ok := s.(surface.Toroidal)
	if !ok {
		return nil, cannotCreate("surface %q cannot define a cylindrical mirror", s.Base().Name)
	}
	if err := checkSmallNumbers(s); err != nil {
		return nil, err
	}

	surfaceType, shapeType := surface.Classify(s)
	if surfaceType != surface.SurfaceCylindrical {
		return nil, cannotCreate("surface %q is not cylindrical", s.Base().Name)
	}
	if shapeType == surface.ShapeRectangular {
		slog.Warn("surface has a rectangular aperture, building a round mirror",
			"surface", s.Base().Name)
	}

	var curvature float64
	var curvSign int
	rotation := sdf.Identity3d()

	if t.Radius != 0 {
		curvature = math.Abs(t.Radius)
		curvSign = Sign(t.Radius)
	} else {
		curvature = math.Abs(t.RadiusHorizontal)
		curvSign = Sign(t.RadiusHorizontal)
		rotation = rotateZ90()
	}

	c := s.Base()
	m, err := resolveMaterial(custom, c.Material)
	if err != nil {
		return nil, err
	}

	p, err := scene.CylindricalMirror(scene.MirrorSpec{
		Diameter: 2 * c.SemiDiameter,
		Material: m,
		Name:     c.Name,
	}, curvature)
	if err != nil {
		return nil, err
	}
	p.Transform = OrientMirror(p.CenterThickness, direction, curvSign).Mul(rotation)
	return p, nil
}

func buildCylindricalLens(back, front surface.Surface, _ int, custom *materials.Material) (*scene.Primitive, error) {
	backTor, backOK := back.(surface.Toroidal)
	frontTor, frontOK := front.(surface.Toroidal)
	if !backOK || !frontOK {
		return nil, cannotCreate("surfaces %q and %q cannot define a cylindrical lens",
			back.Base().Name, front.Base().Name)
	}

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

	if backType != surface.SurfaceFlat && backType != surface.SurfaceCylindrical {
		return nil, cannotCreate("back surface %q is not cylindrical or flat", back.Base().Name)
	}
	if frontType != surface.SurfaceFlat && frontType != surface.SurfaceCylindrical {
		return nil, cannotCreate("front surface %q is not cylindrical or flat", front.Base().Name)
	}
	if backType == surface.SurfaceFlat && frontType == surface.SurfaceFlat {
		return nil, cannotCreate("both surfaces of %q are flat", lensName(back, front))
	}
	if backShape != surface.ShapeRound || frontShape != surface.ShapeRound {
		return nil, cannotCreate("surfaces %q and %q are not round",
			back.Base().Name, front.Base().Name)
	}

	// The curved plane must agree between the faces: both vertical or
	// both horizontal.
	var backRadius, frontRadius float64
	rotation := sdf.Identity3d()

	switch {
	case backTor.RadiusHorizontal == 0:
		if frontTor.RadiusHorizontal != 0 {
			return nil, fmt.Errorf("%w: lens faces %q and %q curve in different planes",
				ErrUnsupportedOrientation, back.Base().Name, front.Base().Name)
		}
		backRadius = backTor.Radius
		frontRadius = frontTor.Radius

	case backTor.Radius == 0:
		if frontTor.Radius != 0 {
			return nil, fmt.Errorf("%w: lens faces %q and %q curve in different planes",
				ErrUnsupportedOrientation, back.Base().Name, front.Base().Name)
		}
		backRadius = backTor.RadiusHorizontal
		frontRadius = frontTor.RadiusHorizontal
		rotation = rotateZ90()

	default:
		return nil, cannotCreate("back surface %q defines a toric surface", back.Base().Name)
	}

	diameter := lensDiameter(back, front)
	ct := thicknessOrDefault(back.Base().Thickness)
	backCurv := math.Abs(backRadius)
	frontCurv := math.Abs(frontRadius)

	m, err := resolveMaterial(custom, back.Base().Material)
	if err != nil {
		return nil, err
	}
	name := lensName(back, front)

	backSgn := Sign(backRadius)
	frontSgn := Sign(frontRadius)

	var p *scene.Primitive
	flip := false

	switch {
	case backSgn < 0 && frontSgn < 0:
		p, err = scene.CylindricalMeniscus(diameter, ct, frontCurv, backCurv, m, name)

	case backSgn > 0 && frontSgn > 0:
		p, err = scene.CylindricalMeniscus(diameter, ct, backCurv, frontCurv, m, name)
		flip = true

	case backSgn > 0 && frontSgn < 0:
		p, err = scene.CylindricalBiConvex(diameter, ct, frontCurv, backCurv, m, name)

	case backSgn < 0 && frontSgn > 0:
		p, err = scene.CylindricalBiConcave(diameter, ct, frontCurv, backCurv, m, name)

	case backSgn == 0:
		if frontSgn < 0 {
			p, err = scene.CylindricalPlanoConvex(diameter, ct, frontCurv, m, name)
		} else {
			p, err = scene.CylindricalPlanoConcave(diameter, ct, frontCurv, m, name)
		}

	default: // frontSgn == 0
		if backSgn > 0 {
			p, err = scene.CylindricalPlanoConvex(diameter, ct, backCurv, m, name)
		} else {
			p, err = scene.CylindricalPlanoConcave(diameter, ct, backCurv, m, name)
		}
		flip = true
	}
	if err != nil {
		return nil, err
	}

	if flip {
		p.Transform = Flip(p.CenterThickness).Mul(rotation)
	} else {
		p.Transform = rotation
	}
	return p, nil
}
