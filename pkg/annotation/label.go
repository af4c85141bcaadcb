package annotation

import (
	"fmt"
	"math"
)

// ScaleParams fixes the label sizing rule so legibility is
// reproducible across viewers: a label at BaseDistance from the
// viewer renders at BaseScale, scales linearly with distance, and is
// clamped to [MinScale, MaxScale].
type ScaleParams struct {
	BaseDistance float64
	BaseScale    float64
	MinScale     float64
	MaxScale     float64
}

// DefaultScaleParams returns the label sizing defaults
func DefaultScaleParams() ScaleParams {
	return ScaleParams{
		BaseDistance: 10,
		BaseScale:    1,
		MinScale:     0.5,
		MaxScale:     5,
	}
}

// FormatDepth renders a depth as label text: the absolute value in
// meters at millimeter precision. Depth labels never carry a sign;
// below grade is implied by the grid.
func FormatDepth(depth float64) string {
	return fmt.Sprintf("%.3f m", math.Abs(depth))
}

// Scale computes a label's visual scale for a viewer at the given
// distance.
func Scale(distance float64, p ScaleParams) float64 {
	if p.BaseDistance <= 0 {
		p = DefaultScaleParams()
	}
	scale := distance / p.BaseDistance * p.BaseScale
	return math.Min(math.Max(scale, p.MinScale), p.MaxScale)
}
