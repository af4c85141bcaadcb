package catalog

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gopipes/pkg/geometry"
)

// ErrTooFewVertices is returned when a record's polyline cannot form a
// centerline segment.
var ErrTooFewVertices = errors.New("pipe record has fewer than two vertices")

// Mapper converts a pipe record's stored attributes into a 3D
// centerline segment with an effective radius in meters.
//
// The radius unit in upstream catalogs is ambiguous: some producers
// store millimeters, some meters. Values above MillimeterThreshold are
// assumed to be millimeters and divided by 1000. This heuristic is a
// known upstream data-quality workaround; changing it would require
// changing the upstream data contract.
type Mapper struct {
	// MinRadius is the floor applied after unit normalization so that
	// no pipe produces a degenerate solid.
	MinRadius float64
	// MillimeterThreshold is the raw value above which the radius is
	// assumed to be stored in millimeters.
	MillimeterThreshold float64
}

// DefaultMapper returns a mapper with the standard thresholds
func DefaultMapper() Mapper {
	return Mapper{
		MinRadius:           0.05,
		MillimeterThreshold: 5,
	}
}

// NormalizeRadius applies the millimeter heuristic and the minimum
// radius floor, returning a radius in meters.
func (m Mapper) NormalizeRadius(raw float64) float64 {
	radius := raw
	if radius > m.MillimeterThreshold {
		radius /= 1000
	}
	if radius < m.MinRadius {
		radius = m.MinRadius
	}
	return radius
}

// Segment derives the centerline segment for a record.
//
// Raw vertices store (east/west, north/south, elevation) in index
// order (0,1,2); the result uses the world convention
// (east/west, elevation, north/south).
//
// When both depth attributes are present they are top-of-pipe depths
// in centimeters: the centerline elevation is -(depth + radius) for
// depths at or below grade (>= 0), and the converted value unchanged
// for negative depths, which already express an elevation. Without
// depth attributes the raw vertex elevation is treated as top-of-pipe
// and the radius subtracted.
func (m Mapper) Segment(r *PipeRecord) (geometry.Segment, error) {
	if r.VertexCount() < 2 {
		return geometry.Segment{}, fmt.Errorf("pipe %s: %w", r.ID, ErrTooFewVertices)
	}

	radius := m.NormalizeRadius(r.Radius)

	first := r.Vertices[0]
	last := r.Vertices[len(r.Vertices)-1]

	start := geometry.NewVector3(first[0], first[2], first[1])
	end := geometry.NewVector3(last[0], last[2], last[1])

	if r.HasDepths() {
		start.Y = centerlineElevation(*r.StartDepth, radius)
		end.Y = centerlineElevation(*r.EndDepth, radius)
	} else {
		// Raw elevations are top-of-pipe; drop to the centerline.
		start.Y -= radius
		end.Y -= radius
	}

	return geometry.NewSegment(start, end, radius), nil
}

// centerlineElevation converts a top-of-pipe depth in centimeters to a
// centerline elevation in meters.
//
// A depth of exactly zero takes the below-grade branch (top of pipe at
// grade). Some catalog producers treat zero as "at grade, no offset";
// that variant is a latent off-by-one at the boundary and is
// deliberately not reproduced here.
func centerlineElevation(depthCm, radius float64) float64 {
	depthM := depthCm / 100
	if depthCm >= 0 {
		return -(depthM + radius)
	}
	return depthM
}

// MapSegment derives a centerline segment using the default mapper
func MapSegment(r *PipeRecord) (geometry.Segment, error) {
	return DefaultMapper().Segment(r)
}
