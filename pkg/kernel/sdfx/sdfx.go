// Package sdfx implements the kernel.Intersecter interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/philipparndt/gopipes/pkg/geometry"
	"github.com/philipparndt/gopipes/pkg/kernel"
	"github.com/philipparndt/gopipes/pkg/mesh"
)

// Compile-time interface check.
var _ kernel.Intersecter = (*Kernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 120

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() geometry.BoundingBox {
	bb := s.s.BoundingBox()
	box := geometry.NewBoundingBox()
	box.Extend(geometry.NewVector3(bb.Min.X, bb.Min.Y, bb.Min.Z))
	box.Extend(geometry.NewVector3(bb.Max.X, bb.Max.Y, bb.Max.Z))
	return box
}

// Kernel implements kernel.Intersecter using sdfx.
type Kernel struct {
	// MeshCells is the marching cubes resolution; zero selects the default.
	MeshCells int
}

// New returns a new sdfx kernel.
func New() *Kernel {
	return &Kernel{}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// PipeSolid builds a cylinder along the centerline from start to end.
// sdf.Cylinder3D is axis-aligned with Z and centered at the origin, so
// the solid is rotated onto the centerline direction and translated to
// the midpoint.
func (k *Kernel) PipeSolid(start, end geometry.Vector3, radius float64) (kernel.Solid, error) {
	direction := end.Sub(start)
	length := direction.Length()
	if length == 0 {
		return nil, fmt.Errorf("pipe solid: zero-length centerline")
	}
	if radius <= 0 {
		return nil, fmt.Errorf("pipe solid: non-positive radius %v", radius)
	}

	s, err := sdf.Cylinder3D(length, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Cylinder3D: %w", err)
	}

	// Rotate the Z axis onto the direction: pitch about Y by the polar
	// angle, then yaw about Y-plane azimuth. direction is normalized in
	// spherical terms relative to +Z.
	d := direction.Mul(1 / length)
	polar := math.Acos(clamp(d.Y, -1, 1))
	azimuth := math.Atan2(d.X, d.Z)

	mid := start.Lerp(end, 0.5)
	m := sdf.Translate3d(v3.Vec{X: mid.X, Y: mid.Y, Z: mid.Z}).
		Mul(sdf.RotateY(azimuth)).
		Mul(sdf.RotateX(polar - math.Pi/2))
	return wrap(sdf.Transform3D(s, m)), nil
}

// Slab builds a thin box centered on the cutting plane. The box spans
// width along the plane's horizontal axis and height vertically, with
// thickness along the plane normal, then is rotated about the vertical
// axis by the plane rotation.
func (k *Kernel) Slab(center geometry.Vector3, rotationDeg, width, height, thickness float64) (kernel.Solid, error) {
	s, err := sdf.Box3D(v3.Vec{X: width, Y: height, Z: thickness}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Box3D: %w", err)
	}

	angle := rotationDeg * math.Pi / 180.0
	m := sdf.Translate3d(v3.Vec{X: center.X, Y: center.Y, Z: center.Z}).
		Mul(sdf.RotateY(angle))
	return wrap(sdf.Transform3D(s, m)), nil
}

// Intersect returns the boolean intersection of two solids.
func (k *Kernel) Intersect(a, b kernel.Solid) (kernel.Solid, error) {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b))), nil
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *Kernel) ToMesh(s kernel.Solid) (*mesh.Mesh, error) {
	cells := k.MeshCells
	if cells <= 0 {
		cells = defaultMeshCells
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(unwrap(s), renderer)
	if len(triangles) == 0 {
		return nil, fmt.Errorf("sdfx: solid produced no triangles")
	}

	m := &mesh.Mesh{}
	for _, tri := range triangles {
		base := len(m.Vertices)
		for j := 0; j < 3; j++ {
			v := tri[j]
			m.Vertices = append(m.Vertices, geometry.NewVector3(v.X, v.Y, v.Z))
		}
		m.Triangles = append(m.Triangles, [3]int{base, base + 1, base + 2})
	}
	return m, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
