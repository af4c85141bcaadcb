package section

import (
	"math"

	"github.com/philipparndt/gopipes/pkg/geometry"
)

// Plane is a vertical cutting plane: an anchor point plus a rotation
// about the vertical axis. The plane always contains the vertical
// axis direction, so its normal has no Y component.
type Plane struct {
	Anchor               geometry.Vector3
	RotationAngleDegrees float64
}

// NewPlane creates a cutting plane
func NewPlane(anchor geometry.Vector3, rotationDeg float64) Plane {
	return Plane{Anchor: anchor, RotationAngleDegrees: rotationDeg}
}

// Normal returns the unit plane normal. At zero rotation the normal
// points along +Z (north), matching the catalog viewer's default
// section orientation; rotation turns it about the vertical axis.
func (p Plane) Normal() geometry.Vector3 {
	angle := p.RotationAngleDegrees * math.Pi / 180.0
	return geometry.NewVector3(math.Sin(angle), 0, math.Cos(angle))
}

// Horizontal returns the in-plane horizontal unit axis, perpendicular
// to both the normal and the vertical axis.
func (p Plane) Horizontal() geometry.Vector3 {
	angle := p.RotationAngleDegrees * math.Pi / 180.0
	return geometry.NewVector3(math.Cos(angle), 0, -math.Sin(angle))
}

// SignedDistance returns the signed distance from a point to the plane
// along the normal.
func (p Plane) SignedDistance(point geometry.Vector3) float64 {
	return p.Normal().Dot(point.Sub(p.Anchor))
}

// Project returns the point snapped onto the plane along the normal
func (p Plane) Project(point geometry.Vector3) geometry.Vector3 {
	return point.Sub(p.Normal().Mul(p.SignedDistance(point)))
}
