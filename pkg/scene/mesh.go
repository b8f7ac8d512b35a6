package scene

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
)

// Mesh is a flat triangle mesh of one positioned primitive. Vertices
// and normals carry 3 floats per vertex, three vertices per triangle.
type Mesh struct {
	Vertices []float32
	Normals  []float32
	PartName string
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) / 3 }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Vertices) / 9 }

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool { return len(m.Vertices) == 0 }

// Triangles renders a primitive's solid, placed by its transform,
// using uniform marching cubes. cells is the sampling resolution
// along the longest bounding box axis.
func Triangles(p *Primitive, cells int) []*sdf.Triangle3 {
	solid := sdf.Transform3D(p.Solid(), p.Transform)

	renderer := render.NewMarchingCubesUniform(cells)
	return render.ToTriangles(solid, renderer)
}

// ToMesh renders a primitive and flattens the triangles into
// per-vertex arrays with face normals.
func ToMesh(p *Primitive, cells int) *Mesh {
	triangles := Triangles(p, cells)

	mesh := &Mesh{
		Vertices: make([]float32, 0, len(triangles)*9),
		Normals:  make([]float32, 0, len(triangles)*9),
		PartName: p.Name,
	}

	for _, tri := range triangles {
		n := tri.Normal()
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			mesh.Vertices = append(mesh.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			mesh.Normals = append(mesh.Normals, nx, ny, nz)
		}
	}

	return mesh
}
