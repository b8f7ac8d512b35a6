// Package builders turns classified prescription surfaces into
// positioned scene primitives. Lens builders consume two consecutive
// surfaces and pick the concrete shape from the pair of curvature
// signs; mirror builders consume one surface and orient it against the
// current ray propagation direction.
package builders

import (
	"errors"
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/akimov/optiscene/pkg/surface"
)

// SmallNumber is the floor below which a surface dimension is treated
// as degenerate, catching point sources and zero-size apertures.
const SmallNumber = 1.0e-8

// CannotCreatePrimitiveError signals that a family builder cannot
// express the given surfaces. The registry treats it as "try the next
// family"; any other error aborts the build.
type CannotCreatePrimitiveError struct {
	Reason string
}

func (e *CannotCreatePrimitiveError) Error() string {
	return "cannot create primitive: " + e.Reason
}

func cannotCreate(format string, args ...any) error {
	return &CannotCreatePrimitiveError{Reason: fmt.Sprintf(format, args...)}
}

// ErrUnsupportedOrientation reports surface pairs whose curvature
// planes or sign combinations have no primitive to express them.
// Unlike CannotCreatePrimitiveError it aborts the build: no other
// family can express them either.
var ErrUnsupportedOrientation = errors.New("unsupported surface orientation")

// Sign returns -1, 0 or 1 for a curvature radius. The convention is:
// positive radius puts the curvature center in front of the surface
// (downstream), negative behind it, zero means flat.
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// CurvatureSigns returns the curvature signs of a lens surface pair,
// each read from its own surface.
func CurvatureSigns(back, front surface.Surface) (int, int) {
	return Sign(back.Base().Radius), Sign(front.Base().Radius)
}

// Flip swaps the back and front sides of a primitive of the given
// thickness: a half turn around y followed by a shift that returns the
// body to its original z span.
func Flip(thickness float64) sdf.M44 {
	return sdf.RotateY(math.Pi).Mul(sdf.Translate3d(v3.Vec{Z: -thickness}))
}

// OrientMirror accounts for the ray propagation direction when placing
// a mirror of the given center thickness. Against the forward
// direction, a positive curvature shifts the mirror along its axis and
// a negative one turns it around; a mirror met while rays travel
// backward is already oriented.
func OrientMirror(centerThickness float64, direction, curvatureSign int) sdf.M44 {
	switch {
	case direction == 1 && curvatureSign == 1:
		return sdf.Translate3d(v3.Vec{Z: centerThickness})
	case direction == 1 && curvatureSign == -1:
		return sdf.RotateY(math.Pi)
	default:
		return sdf.Identity3d()
	}
}

// rotateZ90 turns a vertically curved primitive into a horizontally
// curved one.
func rotateZ90() sdf.M44 {
	return sdf.RotateZ(math.Pi / 2)
}

// checkSmallNumbers rejects surfaces whose semi-diameter or positive
// thickness is below the degeneracy floor.
func checkSmallNumbers(s surface.Surface) error {
	c := s.Base()
	if c.SemiDiameter < SmallNumber {
		return cannotCreate("semi-diameter of surface %q is too small: %g", c.Name, c.SemiDiameter)
	}
	if c.Thickness > 0 && c.Thickness < SmallNumber {
		return cannotCreate("thickness of surface %q is too small: %g", c.Name, c.Thickness)
	}
	return nil
}

// checkMaterial requires the back surface of a lens pair to name a
// medium: that is what marks two consecutive surfaces as one lens.
func checkMaterial(back surface.Surface) error {
	if back.Base().Material == "" {
		return cannotCreate("back surface %q is not assigned a material", back.Base().Name)
	}
	return nil
}

// lensName prefers the back surface name, falling back to the front.
func lensName(back, front surface.Surface) string {
	if name := back.Base().Name; name != "" {
		return name
	}
	return front.Base().Name
}

// lensDiameter prefers the back surface semi-diameter, falling back to
// the front.
func lensDiameter(back, front surface.Surface) float64 {
	if d := back.Base().SemiDiameter; d != 0 {
		return 2 * d
	}
	return 2 * front.Base().SemiDiameter
}
