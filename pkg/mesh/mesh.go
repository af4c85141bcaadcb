// Package mesh provides the read-only triangle mesh snapshot used by
// the closest-point and cross-section queries. A mesh is a vertex
// buffer plus a triangle index buffer in world space; queries never
// mutate it.
package mesh

import "github.com/philipparndt/gopipes/pkg/geometry"

// Mesh is a triangle mesh: a vertex buffer and index triples.
type Mesh struct {
	Vertices  []geometry.Vector3
	Triangles [][3]int
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// IsEmpty reports whether the mesh has no triangles or no vertices
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Triangles) == 0
}

// Triangle returns triangle i as a geometry value
func (m *Mesh) Triangle(i int) geometry.Triangle {
	t := m.Triangles[i]
	return geometry.NewTriangle(m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]])
}

// Bounds returns the axis-aligned bounding box of all vertices
func (m *Mesh) Bounds() geometry.BoundingBox {
	box := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		box.Extend(v)
	}
	return box
}

// IsFinite reports whether every vertex is finite. Meshes with NaN or
// infinite coordinates are skipped by queries.
func (m *Mesh) IsFinite() bool {
	for _, v := range m.Vertices {
		if !v.IsFinite() {
			return false
		}
	}
	return true
}
