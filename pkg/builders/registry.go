package builders

import (
	"errors"

	"github.com/akimov/optiscene/pkg/materials"
	"github.com/akimov/optiscene/pkg/scene"
	"github.com/akimov/optiscene/pkg/surface"
)

// LensFunc builds a lens primitive from a back and front surface pair.
type LensFunc func(back, front surface.Surface, direction int, m *materials.Material) (*scene.Primitive, error)

// MirrorFunc builds a mirror primitive from a single surface.
type MirrorFunc func(s surface.Surface, direction int, m *materials.Material) (*scene.Primitive, error)

type lensFamily struct {
	name  string
	build LensFunc
}

type mirrorFamily struct {
	name  string
	build MirrorFunc
}

// Family order matters: the most specific families come first, so a
// toric surface never lands in the spherical builder and a curved
// surface never degrades to a flat fallback.
var (
	lensFamilies = []lensFamily{
		{"toroidal", buildToricLens},
		{"spherical", buildSphericalLens},
		{"cylindrical", buildCylindricalLens},
	}

	mirrorFamilies = []mirrorFamily{
		{"toroidal", buildToricMirror},
		{"spherical", buildSphericalMirror},
		{"cylindrical", buildCylindricalMirror},
		{"rectangle", buildRectangleMirror},
		{"circle", buildCircleMirror},
	}
)

// BuildLens tries each lens family in order until one accepts the
// surface pair. A CannotCreatePrimitiveError moves on to the next
// family; any other error aborts immediately. If no family accepts,
// the last rejection is returned.
func BuildLens(back, front surface.Surface, direction int, m *materials.Material) (*scene.Primitive, error) {
	var lastErr error
	for _, family := range lensFamilies {
		p, err := family.build(back, front, direction, m)
		if err == nil {
			return p, nil
		}

		var reject *CannotCreatePrimitiveError
		if !errors.As(err, &reject) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// BuildMirror tries each mirror family in order until one accepts the
// surface, with the same error policy as BuildLens.
func BuildMirror(s surface.Surface, direction int, m *materials.Material) (*scene.Primitive, error) {
	var lastErr error
	for _, family := range mirrorFamilies {
		p, err := family.build(s, direction, m)
		if err == nil {
			return p, nil
		}

		var reject *CannotCreatePrimitiveError
		if !errors.As(err, &reject) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}
