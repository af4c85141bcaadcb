package geometry

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// Normal computes the unit normal vector for the triangle
func (t Triangle) Normal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}

// Barycentric returns the barycentric coordinates (u, v, w) of point p
// with respect to the triangle, where p = u*V1 + v*V2 + w*V3.
// For points on or inside the triangle all three lie in [0,1] and sum to 1.
func (t Triangle) Barycentric(p Vector3) (u, v, w float64) {
	e0 := t.V2.Sub(t.V1)
	e1 := t.V3.Sub(t.V1)
	e2 := p.Sub(t.V1)

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := e2.Dot(e0)
	d21 := e2.Dot(e1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		// Degenerate triangle, collapse to the first vertex.
		return 1, 0, 0
	}
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w
}
