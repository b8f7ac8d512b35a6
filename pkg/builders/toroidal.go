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

func buildToricMirror(s surface.Surface, direction int, custom *materials.Material) (*scene.Primitive, error) {
	t, ok := s.(surface.Toroidal)
	if !ok {
		return nil, cannotCreate("surface %q cannot define a toric mirror", s.Base().Name)
	}
	if err := checkSmallNumbers(s); err != nil {
		return nil, err
	}

	surfaceType, shapeType := surface.Classify(s)
	if surfaceType != surface.SurfaceToroidal {
		return nil, cannotCreate("surface %q is not toric", s.Base().Name)
	}
	if Sign(t.Radius) != Sign(t.RadiusHorizontal) {
		return nil, fmt.Errorf("%w: toric surface %q has curvature radii of different signs",
			ErrUnsupportedOrientation, s.Base().Name)
	}
	if shapeType == surface.ShapeRectangular {
		slog.Warn("surface has a rectangular aperture, building a round mirror",
			"surface", s.Base().Name)
	}

	c := s.Base()
	m, err := resolveMaterial(custom, c.Material)
	if err != nil {
		return nil, err
	}

	p, err := scene.ToricMirror(scene.MirrorSpec{
		Diameter: 2 * c.SemiDiameter,
		Material: m,
		Name:     c.Name,
	}, math.Abs(t.Radius), math.Abs(t.RadiusHorizontal))
	if err != nil {
		return nil, err
	}

	if direction == 1 && Sign(t.Radius) == -1 {
		p.Transform = sdf.RotateY(math.Pi)
	}
	return p, nil
}

func buildToricLens(back, front surface.Surface, direction int, custom *materials.Material) (*scene.Primitive, error) {
	backTor, backOK := back.(surface.Toroidal)
	frontTor, frontOK := front.(surface.Toroidal)
	if !backOK || !frontOK {
		return nil, cannotCreate("surfaces %q and %q cannot define a toric lens",
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

	if backType != surface.SurfaceFlat && backType != surface.SurfaceToroidal {
		return nil, cannotCreate("back surface %q is not toric or flat", back.Base().Name)
	}
	if frontType != surface.SurfaceFlat && frontType != surface.SurfaceToroidal {
		return nil, cannotCreate("front surface %q is not toric or flat", front.Base().Name)
	}
	if backShape != surface.ShapeRound {
		slog.Warn("back surface has a non-round aperture, building a round lens",
			"surface", back.Base().Name)
	}
	if frontShape != surface.ShapeRound {
		slog.Warn("front surface has a non-round aperture, building a round lens",
			"surface", front.Base().Name)
	}

	if Sign(backTor.Radius) == -Sign(backTor.RadiusHorizontal) && Sign(backTor.Radius) != 0 {
		return nil, fmt.Errorf("%w: toric surface %q has curvature radii of different signs",
			ErrUnsupportedOrientation, back.Base().Name)
	}
	if Sign(frontTor.Radius) == -Sign(frontTor.RadiusHorizontal) && Sign(frontTor.Radius) != 0 {
		return nil, fmt.Errorf("%w: toric surface %q has curvature radii of different signs",
			ErrUnsupportedOrientation, front.Base().Name)
	}

	diameter := 2 * back.Base().SemiDiameter
	ct := back.Base().Thickness
	backV := math.Abs(backTor.Radius)
	backH := math.Abs(backTor.RadiusHorizontal)
	frontV := math.Abs(frontTor.Radius)
	frontH := math.Abs(frontTor.RadiusHorizontal)

	m, err := resolveMaterial(custom, back.Base().Material)
	if err != nil {
		return nil, err
	}
	name := lensName(back, front)

	// A reversed propagation direction swaps which way each face bends.
	backSgn := Sign(backTor.Radius) * Sign(float64(direction))
	frontSgn := Sign(frontTor.Radius) * Sign(float64(direction))

	switch {
	case backSgn == 0 && frontSgn == 0:
		return scene.Disk(diameter, thicknessOrDefault(ct), m, name)

	case backSgn > 0 && frontSgn < 0:
		return scene.ToricBiConvex(diameter, ct, frontV, frontH, backV, backH, m, name)

	case backSgn < 0 && frontSgn > 0:
		return scene.ToricBiConcave(diameter, ct, frontV, frontH, backV, backH, m, name)

	case backSgn < 0 && frontSgn < 0:
		return scene.ToricMeniscus(diameter, ct, frontV, frontH, backV, backH, m, name)

	case backSgn > 0 && frontSgn > 0:
		return flipped(scene.ToricMeniscus(diameter, ct, backV, backH, frontV, frontH, m, name))

	case backSgn == 0:
		if frontSgn < 0 {
			return scene.ToricPlanoConvex(diameter, ct, frontV, frontH, m, name)
		}
		return scene.ToricPlanoConcave(diameter, ct, frontV, frontH, m, name)

	default: // frontSgn == 0
		if backSgn > 0 {
			return flipped(scene.ToricPlanoConvex(diameter, ct, backV, backH, m, name))
		}
		return flipped(scene.ToricPlanoConcave(diameter, ct, backV, backH, m, name))
	}
}
