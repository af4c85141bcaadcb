// Package kernel defines the boolean-geometry capability consumed by
// the cross-section computer. The engine never implements solid
// booleans itself; an implementation (sdfx, or a fake in tests) is
// injected behind this interface.
package kernel

import (
	"github.com/philipparndt/gopipes/pkg/geometry"
	"github.com/philipparndt/gopipes/pkg/mesh"
)

// Solid is an opaque handle to a kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() geometry.BoundingBox
}

// Intersecter is the boolean-geometry interface.
type Intersecter interface {
	// PipeSolid builds a cylindrical solid along a centerline.
	PipeSolid(start, end geometry.Vector3, radius float64) (Solid, error)

	// Slab builds a thin box centered on a vertical cutting plane.
	// rotationDeg is the plane rotation about the vertical axis; width
	// and height span the plane, thickness is along its normal.
	Slab(center geometry.Vector3, rotationDeg, width, height, thickness float64) (Solid, error)

	// Intersect returns the boolean intersection of two solids.
	Intersect(a, b Solid) (Solid, error)

	// ToMesh converts a solid to a triangle mesh.
	ToMesh(s Solid) (*mesh.Mesh, error)
}
