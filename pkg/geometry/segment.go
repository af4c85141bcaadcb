package geometry

import "math"

// Segment represents a pipe centerline: two 3D endpoints plus the
// effective pipe radius in meters. It is the canonical geometric
// representation consumed by the measurement and cross-section code;
// raw catalog attributes never travel past the coordinate mapper.
type Segment struct {
	Start  Vector3
	End    Vector3
	Radius float64
}

// NewSegment creates a new segment
func NewSegment(start, end Vector3, radius float64) Segment {
	return Segment{Start: start, End: end, Radius: radius}
}

// Direction returns the unnormalized vector from Start to End
func (s Segment) Direction() Vector3 {
	return s.End.Sub(s.Start)
}

// Length returns the centerline length
func (s Segment) Length() float64 {
	return s.Direction().Length()
}

// At returns the point at parameter t, with t=0 at Start and t=1 at End.
// t is not clamped.
func (s Segment) At(t float64) Vector3 {
	return s.Start.Lerp(s.End, t)
}

// Midpoint returns the point halfway along the segment
func (s Segment) Midpoint() Vector3 {
	return s.At(0.5)
}

// IsFinite reports whether both endpoints and the radius are finite
func (s Segment) IsFinite() bool {
	return s.Start.IsFinite() && s.End.IsFinite() &&
		!math.IsNaN(s.Radius) && !math.IsInf(s.Radius, 0)
}
