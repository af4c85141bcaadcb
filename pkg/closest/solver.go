// Package closest implements nearest-point queries between segments,
// triangles and triangle meshes. All functions are pure: they never
// mutate their inputs and results are freshly allocated per query.
package closest

import (
	"github.com/philipparndt/gopipes/pkg/geometry"
	"github.com/philipparndt/gopipes/pkg/mesh"
)

// epsilon is the squared-length threshold below which a segment is
// treated as a single point.
const epsilon = 1e-12

// Result carries the two witness points of a nearest-point query and
// the Euclidean distance between them.
type Result struct {
	PointA   geometry.Vector3
	PointB   geometry.Vector3
	Distance float64
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// PointOnSegment returns the point on segment [a, b] closest to p.
// A zero-length segment collapses to the point a.
func PointOnSegment(p, a, b geometry.Vector3) geometry.Vector3 {
	ab := b.Sub(a)
	lengthSq := ab.LengthSq()
	if lengthSq <= epsilon {
		return a
	}
	t := clamp01(p.Sub(a).Dot(ab) / lengthSq)
	return a.Add(ab.Mul(t))
}

// SegmentPoints returns the closest pair of points between segments
// [a1, a2] and [b1, b2] via the standard parametric reduction: solve
// for the unclamped parameters, clamp to [0, 1], and re-solve the
// other parameter when a clamp pushes it out of range. Zero-length
// segments collapse to points so no division by zero can occur.
func SegmentPoints(a1, a2, b1, b2 geometry.Vector3) (pointA, pointB geometry.Vector3) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	r := a1.Sub(b1)

	lenA := d1.LengthSq()
	lenB := d2.LengthSq()
	f := d2.Dot(r)

	var s, t float64

	switch {
	case lenA <= epsilon && lenB <= epsilon:
		// Both segments are points.
		return a1, b1

	case lenA <= epsilon:
		// First segment is a point, project it onto the second.
		s = 0
		t = clamp01(f / lenB)

	default:
		c := d1.Dot(r)
		if lenB <= epsilon {
			// Second segment is a point, project it onto the first.
			t = 0
			s = clamp01(-c / lenA)
		} else {
			b := d1.Dot(d2)
			denom := lenA*lenB - b*b

			// Parallel segments leave s underdetermined; pick 0.
			if denom != 0 {
				s = clamp01((b*f - c*lenB) / denom)
			} else {
				s = 0
			}

			t = (b*s + f) / lenB

			// Clamping t invalidates s, recompute it for the clamped t.
			if t < 0 {
				t = 0
				s = clamp01(-c / lenA)
			} else if t > 1 {
				t = 1
				s = clamp01((b - c) / lenA)
			}
		}
	}

	return a1.Add(d1.Mul(s)), b1.Add(d2.Mul(t))
}

// Segments is the cheap preview tier used during drag interactions:
// centerline-to-centerline only, no mesh work.
func Segments(a, b geometry.Segment) *Result {
	pa, pb := SegmentPoints(a.Start, a.End, b.Start, b.End)
	return &Result{PointA: pa, PointB: pb, Distance: pa.Distance(pb)}
}

// PointOnTriangle returns the point of the triangle (v0, v1, v2)
// closest to p and the distance to it, using the seven-region
// barycentric classification: the interior, the three edges and the
// three vertices each get an explicit branch.
func PointOnTriangle(p, v0, v1, v2 geometry.Vector3) (geometry.Vector3, float64) {
	ab := v1.Sub(v0)
	ac := v2.Sub(v0)
	ap := p.Sub(v0)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		// Vertex region v0.
		return v0, p.Distance(v0)
	}

	bp := p.Sub(v1)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		// Vertex region v1.
		return v1, p.Distance(v1)
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		// Edge region v0-v1.
		t := d1 / (d1 - d3)
		q := v0.Add(ab.Mul(t))
		return q, p.Distance(q)
	}

	cp := p.Sub(v2)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		// Vertex region v2.
		return v2, p.Distance(v2)
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		// Edge region v0-v2.
		t := d2 / (d2 - d6)
		q := v0.Add(ac.Mul(t))
		return q, p.Distance(q)
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		// Edge region v1-v2.
		t := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		q := v1.Add(v2.Sub(v1).Mul(t))
		return q, p.Distance(q)
	}

	// Interior region.
	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	q := v0.Add(ab.Mul(v)).Add(ac.Mul(w))
	return q, p.Distance(q)
}

// MeshPoints returns the closest pair of points between two meshes,
// or nil when either mesh lacks an index buffer or has no vertices.
//
// Coverage is brute force in three passes: every vertex of A against
// every face of B, every vertex of B against every face of A, and
// every edge of A against every edge of B. Vertex-face checks alone
// miss skew edge pairs whose true closest points are mid-edge, and
// edge-edge checks alone miss a vertex hovering over a face interior,
// so all three passes are required.
//
// The running minimum is replaced only on strictly smaller distances,
// so ties keep the first-found witness pair. The result is therefore
// deterministic but order-dependent.
func MeshPoints(a, b *mesh.Mesh) *Result {
	if a == nil || b == nil || a.IsEmpty() || b.IsEmpty() {
		return nil
	}

	best := &Result{Distance: -1}

	consider := func(pa, pb geometry.Vector3) {
		d := pa.Distance(pb)
		if best.Distance < 0 || d < best.Distance {
			best.PointA = pa
			best.PointB = pb
			best.Distance = d
		}
	}

	// Pass 1: vertices of A against faces of B.
	for _, v := range a.Vertices {
		for i := 0; i < b.TriangleCount(); i++ {
			tri := b.Triangle(i)
			q, _ := PointOnTriangle(v, tri.V1, tri.V2, tri.V3)
			consider(v, q)
		}
	}

	// Pass 2: vertices of B against faces of A.
	for _, v := range b.Vertices {
		for i := 0; i < a.TriangleCount(); i++ {
			tri := a.Triangle(i)
			q, _ := PointOnTriangle(v, tri.V1, tri.V2, tri.V3)
			consider(q, v)
		}
	}

	// Pass 3: edges of A against edges of B.
	for i := 0; i < a.TriangleCount(); i++ {
		ta := a.Triangle(i)
		edgesA := [3][2]geometry.Vector3{
			{ta.V1, ta.V2}, {ta.V2, ta.V3}, {ta.V3, ta.V1},
		}
		for j := 0; j < b.TriangleCount(); j++ {
			tb := b.Triangle(j)
			edgesB := [3][2]geometry.Vector3{
				{tb.V1, tb.V2}, {tb.V2, tb.V3}, {tb.V3, tb.V1},
			}
			for _, ea := range edgesA {
				for _, eb := range edgesB {
					pa, pb := SegmentPoints(ea[0], ea[1], eb[0], eb[1])
					consider(pa, pb)
				}
			}
		}
	}

	return best
}
