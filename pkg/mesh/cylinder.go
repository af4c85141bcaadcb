package mesh

import (
	"math"

	"github.com/philipparndt/gopipes/pkg/geometry"
)

// Cylinder tessellates a pipe segment into a closed cylinder mesh with
// the given number of circumference segments (minimum 3). The scene
// usually supplies pipe meshes; this builder exists for the CLI and
// for tests that need a solid without a renderer.
func Cylinder(seg geometry.Segment, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	axis := seg.Direction().Normalize()
	u, v := perpendicularFrame(axis)

	m := &Mesh{}

	// Two rings of vertices, start ring first.
	for ring := 0; ring < 2; ring++ {
		center := seg.Start
		if ring == 1 {
			center = seg.End
		}
		for i := 0; i < segments; i++ {
			angle := 2 * math.Pi * float64(i) / float64(segments)
			offset := u.Mul(math.Cos(angle) * seg.Radius).Add(v.Mul(math.Sin(angle) * seg.Radius))
			m.Vertices = append(m.Vertices, center.Add(offset))
		}
	}

	// Side wall: one quad (two triangles) per segment.
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		a, b := i, next
		c, d := segments+i, segments+next
		m.Triangles = append(m.Triangles, [3]int{a, c, b}, [3]int{b, c, d})
	}

	// End caps as fans around the ring centers.
	startCenter := len(m.Vertices)
	m.Vertices = append(m.Vertices, seg.Start)
	endCenter := len(m.Vertices)
	m.Vertices = append(m.Vertices, seg.End)

	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		m.Triangles = append(m.Triangles, [3]int{startCenter, next, i})
		m.Triangles = append(m.Triangles, [3]int{endCenter, segments + i, segments + next})
	}

	return m
}

// perpendicularFrame returns two unit vectors orthogonal to axis and
// to each other.
func perpendicularFrame(axis geometry.Vector3) (u, v geometry.Vector3) {
	reference := geometry.NewVector3(0, 1, 0)
	if math.Abs(axis.Y) > 0.99 {
		// Near-vertical axis, pick a horizontal reference instead.
		reference = geometry.NewVector3(1, 0, 0)
	}
	u = axis.Cross(reference).Normalize()
	v = axis.Cross(u).Normalize()
	return u, v
}
