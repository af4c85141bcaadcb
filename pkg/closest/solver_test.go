package closest_test

import (
	"math"
	"testing"

	"github.com/philipparndt/gopipes/pkg/closest"
	"github.com/philipparndt/gopipes/pkg/geometry"
	"github.com/philipparndt/gopipes/pkg/mesh"
)

func vec(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

func TestSegmentPointsParallel(t *testing.T) {
	// Two parallel horizontal segments 1 m apart along their whole length.
	a1, a2 := vec(0, 0, 0), vec(10, 0, 0)
	b1, b2 := vec(0, 1, 0), vec(10, 1, 0)

	pa, pb := closest.SegmentPoints(a1, a2, b1, b2)
	d := pa.Distance(pb)
	if math.Abs(d-1.0) > 1e-12 {
		t.Errorf("distance = %v, want 1.0", d)
	}
	// Witness points are directly across from each other.
	if math.Abs(pa.X-pb.X) > 1e-12 || math.Abs(pa.Z-pb.Z) > 1e-12 {
		t.Errorf("witness points not across from each other: %v vs %v", pa, pb)
	}
}

func TestSegmentPointsSymmetry(t *testing.T) {
	cases := [][4]geometry.Vector3{
		{vec(0, 0, 0), vec(1, 0, 0), vec(2, 1, 0), vec(3, 1, 0)},
		{vec(0, 0, 0), vec(0, 0, 0), vec(5, 5, 5), vec(6, 6, 6)},
		{vec(-1, 2, 3), vec(4, -2, 0), vec(0, 0, 9), vec(0, 1, 9)},
		{vec(0, 0, 0), vec(1, 1, 1), vec(1, 0, 0), vec(0, 1, 1)},
	}

	for i, c := range cases {
		pa1, pb1 := closest.SegmentPoints(c[0], c[1], c[2], c[3])
		pa2, pb2 := closest.SegmentPoints(c[2], c[3], c[0], c[1])

		d1 := pa1.Distance(pb1)
		d2 := pa2.Distance(pb2)
		if math.Abs(d1-d2) > 1e-10 {
			t.Errorf("case %d: distance not symmetric: %v vs %v", i, d1, d2)
		}
	}
}

func TestSegmentPointsDegenerate(t *testing.T) {
	// A collapsed first segment must behave exactly like a point query.
	p := vec(2, 3, -1)
	b1, b2 := vec(0, 0, 0), vec(10, 0, 0)

	pa, pb := closest.SegmentPoints(p, p, b1, b2)
	want := closest.PointOnSegment(p, b1, b2)

	if pa != p {
		t.Errorf("witness on collapsed segment should be the point itself, got %v", pa)
	}
	if pb.Distance(want) > 1e-12 {
		t.Errorf("witness on segment = %v, want %v", pb, want)
	}

	// Both collapsed.
	pa, pb = closest.SegmentPoints(p, p, b1, b1)
	if pa != p || pb != b1 {
		t.Errorf("both collapsed: got %v, %v", pa, pb)
	}
}

func TestSegmentPointsCrossing(t *testing.T) {
	// Skew perpendicular segments crossing at distance 2.
	a1, a2 := vec(-5, 0, 0), vec(5, 0, 0)
	b1, b2 := vec(0, 2, -5), vec(0, 2, 5)

	pa, pb := closest.SegmentPoints(a1, a2, b1, b2)
	if pa.Distance(vec(0, 0, 0)) > 1e-10 {
		t.Errorf("witness A = %v, want origin", pa)
	}
	if pb.Distance(vec(0, 2, 0)) > 1e-10 {
		t.Errorf("witness B = %v, want (0,2,0)", pb)
	}
}

func TestSegmentPointsClampReSolve(t *testing.T) {
	// The closest point on B to segment A lies past B's end; t must be
	// clamped and s re-solved.
	a1, a2 := vec(0, 0, 0), vec(10, 0, 0)
	b1, b2 := vec(20, 1, 0), vec(30, 1, 0)

	pa, pb := closest.SegmentPoints(a1, a2, b1, b2)
	if pa != a2 {
		t.Errorf("witness A = %v, want segment end %v", pa, a2)
	}
	if pb != b1 {
		t.Errorf("witness B = %v, want segment start %v", pb, b1)
	}
}

func TestPointOnTriangleRegions(t *testing.T) {
	v0, v1, v2 := vec(0, 0, 0), vec(4, 0, 0), vec(0, 4, 0)

	cases := []struct {
		name  string
		point geometry.Vector3
		want  geometry.Vector3
	}{
		{"interior", vec(1, 1, 5), vec(1, 1, 0)},
		{"vertex v0", vec(-1, -1, 0), v0},
		{"vertex v1", vec(6, -1, 0), v1},
		{"vertex v2", vec(-1, 6, 0), v2},
		{"edge v0-v1", vec(2, -3, 0), vec(2, 0, 0)},
		{"edge v0-v2", vec(-3, 2, 0), vec(0, 2, 0)},
		{"edge v1-v2", vec(3, 3, 0), vec(2, 2, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, dist := closest.PointOnTriangle(tc.point, v0, v1, v2)
			if got.Distance(tc.want) > 1e-10 {
				t.Errorf("closest point = %v, want %v", got, tc.want)
			}
			if math.Abs(dist-tc.point.Distance(tc.want)) > 1e-10 {
				t.Errorf("distance = %v, want %v", dist, tc.point.Distance(tc.want))
			}
		})
	}
}

func TestPointOnTriangleBarycentricContainment(t *testing.T) {
	tri := geometry.NewTriangle(vec(0, 0, 0), vec(3, 0, 1), vec(1, 5, -2))

	// Probe points all around the triangle, including far outside every
	// region; the returned point must always stay on the triangle.
	probes := []geometry.Vector3{
		vec(10, 10, 10), vec(-10, 0, 0), vec(0, -10, 5),
		vec(2, 2, 0), vec(1, 1, 1), vec(-3, 7, -4), vec(100, -50, 3),
	}

	for _, p := range probes {
		q, _ := closest.PointOnTriangle(p, tri.V1, tri.V2, tri.V3)
		u, v, w := tri.Barycentric(q)

		const tol = 1e-9
		for i, c := range []float64{u, v, w} {
			if c < -tol || c > 1+tol {
				t.Errorf("probe %v: barycentric %d = %v out of [0,1]", p, i, c)
			}
		}
		if math.Abs(u+v+w-1) > tol {
			t.Errorf("probe %v: barycentric sum = %v", p, u+v+w)
		}
	}
}

func triangleMesh(a, b, c geometry.Vector3) *mesh.Mesh {
	return &mesh.Mesh{
		Vertices:  []geometry.Vector3{a, b, c},
		Triangles: [][3]int{{0, 1, 2}},
	}
}

func TestMeshPointsNilCases(t *testing.T) {
	full := triangleMesh(vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0))
	empty := &mesh.Mesh{}
	noIndex := &mesh.Mesh{Vertices: []geometry.Vector3{vec(0, 0, 0)}}

	if closest.MeshPoints(full, empty) != nil {
		t.Error("expected nil for empty second mesh")
	}
	if closest.MeshPoints(empty, full) != nil {
		t.Error("expected nil for empty first mesh")
	}
	if closest.MeshPoints(full, noIndex) != nil {
		t.Error("expected nil for mesh without index buffer")
	}
	if closest.MeshPoints(nil, full) != nil {
		t.Error("expected nil for nil mesh")
	}
}

func TestMeshPointsVertexFace(t *testing.T) {
	// A vertex of A hovers directly over the interior of B's face; only
	// the vertex-face pass finds the true minimum.
	a := triangleMesh(vec(1, 1, 3), vec(2, 1, 3), vec(1, 2, 3))
	b := triangleMesh(vec(0, 0, 0), vec(10, 0, 0), vec(0, 10, 0))

	result := closest.MeshPoints(a, b)
	if result == nil {
		t.Fatal("expected a result")
	}
	if math.Abs(result.Distance-3.0) > 1e-10 {
		t.Errorf("distance = %v, want 3.0", result.Distance)
	}
	if result.PointB.Distance(vec(result.PointA.X, result.PointA.Y, 0)) > 1e-10 {
		t.Errorf("witness B = %v not below witness A = %v", result.PointB, result.PointA)
	}
}

func TestMeshPointsSkewEdges(t *testing.T) {
	// Two skew edges whose closest points are mid-edge: vertex-face
	// passes alone would miss this configuration.
	a := triangleMesh(vec(-5, 0, 0), vec(5, 0, 0), vec(0, -10, 0))
	b := triangleMesh(vec(0, 1, -5), vec(0, 1, 5), vec(0, 11, 0))

	result := closest.MeshPoints(a, b)
	if result == nil {
		t.Fatal("expected a result")
	}
	if math.Abs(result.Distance-1.0) > 1e-10 {
		t.Errorf("distance = %v, want 1.0", result.Distance)
	}
	if result.PointA.Distance(vec(0, 0, 0)) > 1e-10 {
		t.Errorf("witness A = %v, want origin", result.PointA)
	}
	if result.PointB.Distance(vec(0, 1, 0)) > 1e-10 {
		t.Errorf("witness B = %v, want (0,1,0)", result.PointB)
	}
}

func TestMeshPointsCylinders(t *testing.T) {
	// Two parallel pipes, centerlines 2 m apart, radius 0.5 each:
	// surface distance 1 m.
	segA := geometry.NewSegment(vec(0, 0, 0), vec(10, 0, 0), 0.5)
	segB := geometry.NewSegment(vec(0, 0, 2), vec(10, 0, 2), 0.5)

	a := mesh.Cylinder(segA, 64)
	b := mesh.Cylinder(segB, 64)

	result := closest.MeshPoints(a, b)
	if result == nil {
		t.Fatal("expected a result")
	}
	// Tessellation chords make the surfaces slightly faceted.
	if math.Abs(result.Distance-1.0) > 0.01 {
		t.Errorf("surface distance = %v, want near 1.0", result.Distance)
	}
}

func TestSegmentsPreview(t *testing.T) {
	a := geometry.NewSegment(vec(0, 0, 0), vec(10, 0, 0), 0.3)
	b := geometry.NewSegment(vec(0, 4, 0), vec(10, 4, 0), 0.3)

	result := closest.Segments(a, b)
	if math.Abs(result.Distance-4.0) > 1e-12 {
		t.Errorf("preview distance = %v, want 4.0", result.Distance)
	}
}
