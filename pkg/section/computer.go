// Package section computes the cross-section of pipe solids against a
// vertical cutting plane: centerline intersection points, section
// outlines, clipped solid geometry from an injected boolean-geometry
// kernel, and the vertical leader lines used for depth annotations.
package section

import (
	"math"

	"github.com/philipparndt/gopipes/pkg/geometry"
	"github.com/philipparndt/gopipes/pkg/kernel"
	"github.com/philipparndt/gopipes/pkg/mesh"
)

// parallelEps is the |normal . direction| threshold below which a
// centerline is treated as parallel to the plane.
const parallelEps = 1e-9

// Target is one pipe offered to a cross-section query: its centerline
// segment and, optionally, a solid mesh snapshot used for input
// validation. Targets are read-only.
type Target struct {
	ID      string
	Segment geometry.Segment
	Solid   *mesh.Mesh
}

// Leader is the vertical annotation line for one sectioned pipe, from
// grade level straight down to the pipe's top-of-pipe elevation.
type Leader struct {
	Grade     geometry.Vector3
	TopOfPipe geometry.Vector3
}

// Depth returns the top-of-pipe elevation (negative below grade)
func (l Leader) Depth() float64 {
	return l.TopOfPipe.Y
}

// Entry is the cross-section finding for a single pipe.
type Entry struct {
	ID string

	// Point is the centerline-plane intersection.
	Point geometry.Vector3

	// T is the centerline parameter of Point, 0 at the segment start.
	T float64

	// Parallel marks centerlines with no unique plane intersection;
	// Point is then the segment start snapped onto the plane.
	Parallel bool

	// Loop is the analytic section outline: a circle for perpendicular
	// cuts, an ellipse-like loop for oblique ones. Nil for parallel
	// centerlines.
	Loop []geometry.Vector3

	// Solid is the clipped geometry returned by the boolean kernel,
	// stored as-is. Nil when no kernel is configured or the kernel
	// failed for this pipe.
	Solid *mesh.Mesh

	Leader Leader
}

// Result is one complete cross-section query answer. Every call
// allocates a fresh Result: previous query results are never reused
// or accumulated into.
type Result struct {
	Plane   Plane
	Clicked *Entry
	Others  []Entry
}

// Computer runs cross-section queries. The boolean-geometry kernel is
// an injected collaborator; with a nil kernel the computer still
// produces intersection points, outlines and leaders.
type Computer struct {
	Kernel kernel.Intersecter

	// SlabThickness is the slab extent along the plane normal. It must
	// stay well below the smallest pipe diameter.
	SlabThickness float64

	// LoopSegments is the number of points in a section outline.
	LoopSegments int
}

// NewComputer returns a computer with default tuning
func NewComputer(k kernel.Intersecter) *Computer {
	return &Computer{
		Kernel:        k,
		SlabThickness: 0.01,
		LoopSegments:  48,
	}
}

// Compute intersects the clicked pipe and all other pipes with the
// cutting plane. Pipes the plane does not cross are omitted; malformed
// pipes (non-finite radius or coordinates) are skipped without
// aborting the batch.
func (c *Computer) Compute(clicked Target, plane Plane, others []Target) *Result {
	result := &Result{Plane: plane}

	if entry, ok := c.sectionEntry(clicked, plane, false); ok {
		result.Clicked = entry
	}

	for _, target := range others {
		if entry, ok := c.sectionEntry(target, plane, true); ok {
			result.Others = append(result.Others, *entry)
		}
	}

	return result
}

// PreviewIntersection is the cheap drag-move tier: the centerline
// intersection point only, no outline and no kernel work.
func PreviewIntersection(seg geometry.Segment, plane Plane) (geometry.Vector3, bool) {
	if !seg.IsFinite() {
		return geometry.Vector3{}, false
	}
	point, _, _ := intersect(seg, plane)
	return point, true
}

// sectionEntry produces the entry for one pipe, or ok=false when the
// pipe is skipped. Acceptance rules differ for the clicked pipe: its
// intersection is always kept, while other pipes require the plane to
// cross their extent (t in [0,1], or plane within one radius for
// parallel centerlines).
func (c *Computer) sectionEntry(target Target, plane Plane, restrict bool) (*Entry, bool) {
	seg := target.Segment
	if !seg.IsFinite() || seg.Radius <= 0 {
		return nil, false
	}
	if target.Solid != nil && !target.Solid.IsFinite() {
		return nil, false
	}

	point, t, parallel := intersect(seg, plane)

	if restrict {
		if parallel {
			// The snap is only honest when the centerline runs close to
			// the plane; one radius is the tolerance.
			if math.Abs(plane.SignedDistance(seg.Start)) > seg.Radius {
				return nil, false
			}
		} else if t < 0 || t > 1 {
			return nil, false
		}
	}

	entry := &Entry{
		ID:       target.ID,
		Point:    point,
		T:        t,
		Parallel: parallel,
		Leader: Leader{
			Grade:     geometry.NewVector3(point.X, 0, point.Z),
			TopOfPipe: geometry.NewVector3(point.X, point.Y+seg.Radius, point.Z),
		},
	}

	if !parallel {
		entry.Loop = c.sectionLoop(seg, plane, point)
		entry.Solid = c.clipSolid(seg, plane, point)
	}

	return entry, true
}

// intersect returns the centerline-plane intersection via the
// parametric line-plane formula t = n.(anchor-start) / n.dir. A
// centerline parallel to the plane has no unique intersection; the
// segment start is snapped onto the plane instead.
func intersect(seg geometry.Segment, plane Plane) (point geometry.Vector3, t float64, parallel bool) {
	normal := plane.Normal()
	dir := seg.Direction()

	denom := normal.Dot(dir)
	if math.Abs(denom) < parallelEps {
		return plane.Project(seg.Start), 0, true
	}

	t = normal.Dot(plane.Anchor.Sub(seg.Start)) / denom
	return seg.At(t), t, false
}

// sectionLoop builds the analytic outline of the cylinder-plane
// intersection: a circle of the pipe radius for perpendicular cuts,
// an ellipse with minor/major axis ratio cos(theta) for cuts oblique
// at angle theta to the centerline.
func (c *Computer) sectionLoop(seg geometry.Segment, plane Plane, center geometry.Vector3) []geometry.Vector3 {
	segments := c.LoopSegments
	if segments < 8 {
		segments = 8
	}

	normal := plane.Normal()
	axis := seg.Direction().Normalize()

	cosTheta := math.Abs(normal.Dot(axis))
	if cosTheta < parallelEps {
		return nil
	}

	minor := seg.Radius
	major := seg.Radius / cosTheta

	// Major axis lies along the centerline's projection into the plane;
	// for a perpendicular cut that projection vanishes and any in-plane
	// basis serves, since the loop is a circle.
	majorDir := axis.Sub(normal.Mul(normal.Dot(axis)))
	if majorDir.LengthSq() < parallelEps {
		majorDir = plane.Horizontal()
	} else {
		majorDir = majorDir.Normalize()
	}
	minorDir := normal.Cross(majorDir).Normalize()

	loop := make([]geometry.Vector3, 0, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		offset := majorDir.Mul(major * math.Cos(angle)).
			Add(minorDir.Mul(minor * math.Sin(angle)))
		loop = append(loop, center.Add(offset))
	}
	return loop
}

// clipSolid delegates to the boolean kernel: intersect the pipe solid
// with a thin slab centered on the plane. Kernel failures drop only
// this pipe's clipped geometry, never the batch.
func (c *Computer) clipSolid(seg geometry.Segment, plane Plane, center geometry.Vector3) *mesh.Mesh {
	if c.Kernel == nil {
		return nil
	}

	thickness := c.SlabThickness
	if thickness <= 0 {
		thickness = 0.01
	}
	// The slab must cover the full section ellipse, whose extent grows
	// with obliqueness; the centerline length plus a radius margin
	// always bounds it.
	extent := seg.Length() + 4*seg.Radius

	pipe, err := c.Kernel.PipeSolid(seg.Start, seg.End, seg.Radius)
	if err != nil {
		return nil
	}
	slab, err := c.Kernel.Slab(center, plane.RotationAngleDegrees, extent, extent, thickness)
	if err != nil {
		return nil
	}
	clipped, err := c.Kernel.Intersect(pipe, slab)
	if err != nil {
		return nil
	}
	m, err := c.Kernel.ToMesh(clipped)
	if err != nil {
		return nil
	}
	return m
}
