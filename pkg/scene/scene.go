// Package scene wraps the sdfx geometry kernel with the shaped
// primitives an optical assembly is made of: lens bodies, curved
// mirrors and flat elements. Each constructor validates its numeric
// parameters, builds a solid by CSG over sdf.SDF3, and returns a
// Primitive carrying a settable local transform.
//
// The local frame convention follows the prescription order: the
// optical axis is z, the back face of a primitive sits at z = 0 and
// its front face at z = CenterThickness.
package scene

import (
	"github.com/deadsy/sdfx/sdf"

	"github.com/akimov/optiscene/pkg/materials"
)

// DefaultThickness is the stand-in thickness for elements that are
// geometrically two-dimensional (bare apertures, image planes).
const DefaultThickness = 1.0e-6

// ShapeKind identifies the concrete shape of a primitive.
type ShapeKind int

const (
	ShapeUnknown ShapeKind = iota

	// Flat elements.
	ShapeDisk
	ShapeSlab
	ShapeCircle
	ShapeRectangle

	// Spherical lenses.
	ShapeBiConvex
	ShapeBiConcave
	ShapePlanoConvex
	ShapePlanoConcave
	ShapeMeniscus

	// Cylindrical lenses.
	ShapeCylindricalBiConvex
	ShapeCylindricalBiConcave
	ShapeCylindricalPlanoConvex
	ShapeCylindricalPlanoConcave
	ShapeCylindricalMeniscus

	// Toric lenses.
	ShapeToricBiConvex
	ShapeToricBiConcave
	ShapeToricPlanoConvex
	ShapeToricPlanoConcave
	ShapeToricMeniscus

	// Mirrors.
	ShapeSphericalMirror
	ShapeCylindricalMirror
	ShapeToricMirror
)

var shapeNames = map[ShapeKind]string{
	ShapeDisk:                    "disk",
	ShapeSlab:                    "slab",
	ShapeCircle:                  "circle",
	ShapeRectangle:               "rectangle",
	ShapeBiConvex:                "biconvex lens",
	ShapeBiConcave:               "biconcave lens",
	ShapePlanoConvex:             "plano-convex lens",
	ShapePlanoConcave:            "plano-concave lens",
	ShapeMeniscus:                "meniscus lens",
	ShapeCylindricalBiConvex:     "cylindrical biconvex lens",
	ShapeCylindricalBiConcave:    "cylindrical biconcave lens",
	ShapeCylindricalPlanoConvex:  "cylindrical plano-convex lens",
	ShapeCylindricalPlanoConcave: "cylindrical plano-concave lens",
	ShapeCylindricalMeniscus:     "cylindrical meniscus lens",
	ShapeToricBiConvex:           "toric biconvex lens",
	ShapeToricBiConcave:          "toric biconcave lens",
	ShapeToricPlanoConvex:        "toric plano-convex lens",
	ShapeToricPlanoConcave:       "toric plano-concave lens",
	ShapeToricMeniscus:           "toric meniscus lens",
	ShapeSphericalMirror:         "spherical mirror",
	ShapeCylindricalMirror:       "cylindrical mirror",
	ShapeToricMirror:             "toric mirror",
}

func (k ShapeKind) String() string {
	if name, ok := shapeNames[k]; ok {
		return name
	}
	return "unknown"
}

// Primitive is one constructed optical element: a solid, the
// parameters it was built from, and a local transform relative to its
// parent node. Unused parameter fields stay zero (a mirror has no
// back/front curvature split, a round element no width/height).
type Primitive struct {
	Name     string
	Kind     ShapeKind
	Material *materials.Material

	Diameter        float64
	Width, Height   float64
	CenterThickness float64

	// Lens face curvature magnitudes.
	BackCurvature            float64
	FrontCurvature           float64
	BackCurvatureHorizontal  float64
	FrontCurvatureHorizontal float64

	// Single-face (mirror) curvature magnitudes.
	Curvature           float64
	CurvatureHorizontal float64

	ApertureDiameter   float64
	HorizontalDecenter float64
	VerticalDecenter   float64

	Transform sdf.M44

	solid sdf.SDF3
}

// Solid returns the primitive's untransformed solid.
func (p *Primitive) Solid() sdf.SDF3 { return p.solid }

func newPrimitive(kind ShapeKind, solid sdf.SDF3, m *materials.Material, name string) *Primitive {
	if m == nil {
		m = materials.Null()
	}
	return &Primitive{
		Name:      name,
		Kind:      kind,
		Material:  m,
		Transform: sdf.Identity3d(),
		solid:     solid,
	}
}

// Node is the root of a built assembly: an ordered list of primitives,
// each positioned by its own transform.
type Node struct {
	Name     string
	children []*Primitive
}

// NewNode returns an empty assembly node.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Attach appends a primitive as the last child.
func (n *Node) Attach(p *Primitive) {
	n.children = append(n.children, p)
}

// Children returns the attached primitives in attachment order.
func (n *Node) Children() []*Primitive { return n.children }

// Child returns the i-th attached primitive.
func (n *Node) Child(i int) *Primitive { return n.children[i] }

// Len returns the number of attached primitives.
func (n *Node) Len() int { return len(n.children) }
