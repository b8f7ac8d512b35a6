// Package assembly walks an ordered list of prescription surfaces and
// places built primitives into a scene node. Coordinate breaks fold
// into a running transform, consecutive surface pairs are tried as
// lenses before falling back to single-surface mirrors, and passing an
// odd number of reflectors toggles the propagation direction.
package assembly

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/akimov/optiscene/pkg/builders"
	"github.com/akimov/optiscene/pkg/materials"
	"github.com/akimov/optiscene/pkg/scene"
	"github.com/akimov/optiscene/pkg/surface"
)

// KeepPolicy controls what happens to surfaces without an assigned
// material.
type KeepPolicy int

const (
	// KeepNever drops every empty surface, advancing the running
	// transform by its thickness.
	KeepNever KeepPolicy = iota
	// KeepImage keeps only the last surface of the prescription, the
	// image plane.
	KeepImage
	// KeepAlways keeps every empty surface.
	KeepAlways
)

func (p KeepPolicy) String() string {
	switch p {
	case KeepImage:
		return "image"
	case KeepAlways:
		return "always"
	default:
		return "never"
	}
}

// Options configures a Build run.
type Options struct {
	// Materials overrides the catalog lookup, keyed first by surface
	// name, then by glass name.
	Materials map[string]*materials.Material

	// KeepEmptySurfaces selects the policy for surfaces without a
	// material.
	KeepEmptySurfaces KeepPolicy

	// TransmissionOnly disables reflection contributions on every
	// dielectric in the built node.
	TransmissionOnly bool

	// Name names the resulting node.
	Name string
}

// BuildError wraps a failure with the surface it happened at.
type BuildError struct {
	Index int
	Name  string
	Err   error
}

func (e *BuildError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("surface %d (%q): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("surface %d: %v", e.Index, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

type walker struct {
	opts      Options
	transform sdf.M44
	direction int
	mirrors   int
}

// Build assembles a scene node from prescription surfaces.
func Build(surfaces []surface.Surface, opts Options) (*scene.Node, error) {
	w := &walker{
		opts:      opts,
		transform: sdf.Identity3d(),
		direction: 1,
	}
	return w.run(surfaces)
}

func (w *walker) run(surfaces []surface.Surface) (*scene.Node, error) {
	node := scene.NewNode(w.opts.Name)
	n := len(surfaces)

	slog.Debug("assembling optical node", "surfaces", n)

	idx := 0
	for idx < n {
		s := surfaces[idx]

		if cb, ok := s.(surface.CoordinateBreak); ok {
			w.foldCoordinateBreak(cb)
			idx++
			continue
		}

		if w.skipEmpty(s, idx, n) {
			idx++
			continue
		}

		if math.IsInf(s.Base().Thickness, 0) {
			slog.Debug("surface has infinite thickness, skipping", "index", idx)
			idx++
			continue
		}

		custom := w.customMaterial(s)

		if idx+1 < n {
			if _, isBreak := surfaces[idx+1].(surface.CoordinateBreak); !isBreak {
				next := surfaces[idx+1]

				lens, err := builders.BuildLens(s, next, w.direction, custom)
				if err == nil {
					w.place(node, lens)
					w.advancePastLens(s, next)
					w.countReflector(s)

					slog.Info("lens created",
						"back", idx, "front", idx+1, "kind", lens.Kind.String())

					idx++
					// a front surface without a material belongs to
					// this lens alone
					if next.Base().Material == "" {
						idx++
					}
					continue
				}

				var reject *builders.CannotCreatePrimitiveError
				if !errors.As(err, &reject) {
					return nil, &BuildError{Index: idx, Name: s.Base().Name, Err: err}
				}
			}
		}

		mirror, err := builders.BuildMirror(s, w.direction, custom)
		if err != nil {
			return nil, &BuildError{Index: idx, Name: s.Base().Name, Err: err}
		}

		w.place(node, mirror)
		w.transform = w.transform.Mul(translateZ(s.Base().Thickness))
		w.countReflector(s)

		slog.Info("mirror created", "index", idx, "kind", mirror.Kind.String())
		idx++
	}

	if w.opts.TransmissionOnly {
		setTransmissionOnly(node)
	}

	return node, nil
}

// foldCoordinateBreak folds a break's decenter, tilts and thickness
// into the running transform. A nonzero thickness also sets the ray
// propagation direction.
func (w *walker) foldCoordinateBreak(cb surface.CoordinateBreak) {
	w.transform = w.transform.Mul(cb.Matrix()).Mul(translateZ(cb.Thickness))

	if cb.Thickness != 0 {
		w.direction = builders.Sign(cb.Thickness)
		slog.Debug("direction set", "direction", w.direction)
	}
}

// skipEmpty decides whether a surface without a material is dropped.
// Dropped surfaces still contribute their thickness to the running
// transform, unless that thickness is infinite.
func (w *walker) skipEmpty(s surface.Surface, idx, n int) bool {
	if s.Base().Material != "" {
		return false
	}

	isImage := idx == n-1
	if w.opts.KeepEmptySurfaces == KeepAlways || (w.opts.KeepEmptySurfaces == KeepImage && isImage) {
		return false
	}

	slog.Debug("surface has no material, skipping", "index", idx)
	if !math.IsInf(s.Base().Thickness, 0) {
		w.transform = w.transform.Mul(translateZ(s.Base().Thickness))
	}
	return true
}

func (w *walker) customMaterial(s surface.Surface) *materials.Material {
	if w.opts.Materials == nil {
		return nil
	}
	if m, ok := w.opts.Materials[s.Base().Name]; ok {
		return m
	}
	if glass := s.Base().Material; glass != "" {
		if m, ok := w.opts.Materials[glass]; ok {
			return m
		}
	}
	return nil
}

func (w *walker) place(node *scene.Node, p *scene.Primitive) {
	p.Transform = w.transform.Mul(p.Transform)
	node.Attach(p)
}

// advancePastLens moves the running transform beyond a built lens. A
// front surface with its own material starts the next lens, so a thin
// padding proportional to the thickness keeps the elements apart;
// otherwise both surface thicknesses belong to this lens.
func (w *walker) advancePastLens(back, front surface.Surface) {
	backTh := back.Base().Thickness
	if front.Base().Material != "" {
		padding := backTh * 1.0e-6
		w.transform = w.transform.Mul(translateZ(backTh + padding))
		return
	}
	w.transform = w.transform.Mul(translateZ(backTh + front.Base().Thickness))
}

// countReflector toggles the propagation direction after an odd
// number of reflective surfaces.
func (w *walker) countReflector(s surface.Surface) {
	if s.Base().Material != materials.ReflectorName {
		return
	}
	w.mirrors++
	if w.mirrors%2 == 1 {
		w.direction = -w.direction
	}
	slog.Debug("reflector passed", "count", w.mirrors, "direction", w.direction)
}

func setTransmissionOnly(node *scene.Node) {
	for _, child := range node.Children() {
		if child.Material != nil && child.Material.Kind == materials.KindDielectric {
			child.Material.TransmissionOnly = true
		}
	}
}

func translateZ(z float64) sdf.M44 {
	return sdf.Translate3d(v3.Vec{Z: z})
}

// SetGlobalReference re-bases every primitive of a node so that the
// chosen child sits at the origin with an identity orientation.
func SetGlobalReference(node *scene.Node, idx int) error {
	if idx < 0 || idx >= node.Len() {
		return fmt.Errorf("reference index %d out of range, node has %d primitives", idx, node.Len())
	}

	inverse := node.Child(idx).Transform.Inverse()
	for _, child := range node.Children() {
		child.Transform = inverse.Mul(child.Transform)
	}
	return nil
}
