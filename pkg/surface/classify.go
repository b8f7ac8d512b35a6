package surface

import "math"

// RadiusTolerance is the numeric tolerance below which two principal
// curvature radii are considered equal.
const RadiusTolerance = 1.0e-8

// SurfaceType categorizes a surface by its curvature fields.
type SurfaceType int

const (
	SurfaceUndetermined SurfaceType = iota
	SurfaceFlat
	SurfaceSpherical
	SurfaceCylindrical
	SurfaceToroidal
)

func (t SurfaceType) String() string {
	switch t {
	case SurfaceFlat:
		return "flat"
	case SurfaceSpherical:
		return "spherical"
	case SurfaceCylindrical:
		return "cylindrical"
	case SurfaceToroidal:
		return "toroidal"
	default:
		return "undetermined"
	}
}

// ShapeType categorizes a surface's clear aperture outline.
type ShapeType int

const (
	ShapeUndetermined ShapeType = iota
	ShapeRound
	ShapeRectangular
)

func (t ShapeType) String() string {
	switch t {
	case ShapeRound:
		return "round"
	case ShapeRectangular:
		return "rectangular"
	default:
		return "undetermined"
	}
}

// Classify derives the surface and shape categories from a surface's
// fields. It is a pure function; surfaces are immutable, so repeated
// calls always agree.
//
// A Toroidal variant does not necessarily describe a toric surface:
// with equal radii it is spherical, with a single zero radius it is
// cylindrical, with both zero it is flat. Coordinate breaks are not
// physical interfaces and stay undetermined.
func Classify(s Surface) (SurfaceType, ShapeType) {
	switch v := s.(type) {
	case CoordinateBreak:
		return SurfaceUndetermined, ShapeUndetermined

	case Toroidal:
		return classifyToroidal(v), shapeOf(v)

	default:
		if s.Base().Radius == 0 {
			return SurfaceFlat, shapeOf(s)
		}
		return SurfaceSpherical, shapeOf(s)
	}
}

func shapeOf(s Surface) ShapeType {
	if s.Base().Aperture != nil {
		return ShapeRectangular
	}
	return ShapeRound
}

func classifyToroidal(t Toroidal) SurfaceType {
	rv := math.Abs(t.Radius)
	rh := math.Abs(t.RadiusHorizontal)
	equal := math.Abs(rv-rh) < RadiusTolerance

	switch {
	case rv == 0 && rh == 0:
		return SurfaceFlat
	case rv != 0 && rh != 0 && equal:
		return SurfaceSpherical
	case rv != 0 && rh != 0:
		return SurfaceToroidal
	default:
		return SurfaceCylindrical
	}
}
