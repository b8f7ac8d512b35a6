package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ErrInvalidGeometry wraps every parameter validation failure raised
// by the primitive constructors.
var ErrInvalidGeometry = errors.New("invalid geometry")

func geomErr(kind ShapeKind, format string, args ...any) error {
	return fmt.Errorf("%w: %v: %s", ErrInvalidGeometry, kind, fmt.Sprintf(format, args...))
}

// sag returns the depth of a spherical or cylindrical cap of the given
// curvature radius over a clear semi-aperture.
func sag(radius, semiAperture float64) float64 {
	return radius - math.Sqrt(radius*radius-semiAperture*semiAperture)
}

func translateZ(s sdf.SDF3, z float64) sdf.SDF3 {
	if z == 0 {
		return s
	}
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: z}))
}

// zSpanCylinder builds a z-axis cylinder spanning [z0, z1].
func zSpanCylinder(diameter, z0, z1 float64) (sdf.SDF3, error) {
	c, err := sdf.Cylinder3D(z1-z0, diameter/2, 0)
	if err != nil {
		return nil, err
	}
	return translateZ(c, (z0+z1)/2), nil
}

// zSpanBox builds an axis-aligned box spanning [z0, z1], centered on
// the z axis laterally.
func zSpanBox(width, height, z0, z1 float64) (sdf.SDF3, error) {
	b, err := sdf.Box3D(v3.Vec{X: width, Y: height, Z: z1 - z0}, 0)
	if err != nil {
		return nil, err
	}
	return translateZ(b, (z0+z1)/2), nil
}

// sphereAt builds a sphere centered at (0, 0, zc).
func sphereAt(radius, zc float64) (sdf.SDF3, error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, err
	}
	return translateZ(s, zc), nil
}

// crossCylinderAt builds a cylinder whose axis runs along x, centered
// at (0, 0, zc). It caps cylindrical faces: the sag then varies with y
// only.
func crossCylinderAt(radius, length, zc float64) (sdf.SDF3, error) {
	c, err := sdf.Cylinder3D(length, radius, 0)
	if err != nil {
		return nil, err
	}
	c = sdf.Transform3D(c, sdf.RotateY(math.Pi/2))
	return translateZ(c, zc), nil
}

// torus is an exact torus signed distance field. sdfx has no torus
// primitive, so the classic two-hypot distance is implemented here.
// The revolution axis is y when axisX is false, x otherwise.
type torus struct {
	major, minor float64
	axisX        bool
	bb           sdf.Box3
}

func newTorus(major, minor float64, axisX bool) *torus {
	reach := major + minor
	bb := sdf.Box3{
		Min: v3.Vec{X: -reach, Y: -minor, Z: -reach},
		Max: v3.Vec{X: reach, Y: minor, Z: reach},
	}
	if axisX {
		bb = sdf.Box3{
			Min: v3.Vec{X: -minor, Y: -reach, Z: -reach},
			Max: v3.Vec{X: minor, Y: reach, Z: reach},
		}
	}
	return &torus{major: major, minor: minor, axisX: axisX, bb: bb}
}

func (t *torus) Evaluate(p v3.Vec) float64 {
	if t.axisX {
		return math.Hypot(math.Hypot(p.Y, p.Z)-t.major, p.X) - t.minor
	}
	return math.Hypot(math.Hypot(p.X, p.Z)-t.major, p.Y) - t.minor
}

func (t *torus) BoundingBox() sdf.Box3 { return t.bb }

// toricAt builds the toric cap surface solid: a torus whose vertical
// (y-plane) curvature radius is rv and horizontal (x-plane) curvature
// radius is rh, positioned so that its center of symmetry sits at
// (0, 0, zc). Its z extent from that center is max(rv, rh), the same
// role the radius plays for sphereAt.
//
// rv == rh would degenerate the major radius to zero; that case is
// spherical and must not reach here.
func toricAt(rv, rh, zc float64) sdf.SDF3 {
	var t *torus
	if rh > rv {
		// revolve around y: major in the x-z plane
		t = newTorus(rh-rv, rv, false)
	} else {
		// revolve around x: major in the y-z plane
		t = newTorus(rv-rh, rh, true)
	}
	return translateZ(t, zc)
}

// toricReach is the distance from a toric cap's center of symmetry to
// its vertex along z.
func toricReach(rv, rh float64) float64 {
	return math.Max(rv, rh)
}
