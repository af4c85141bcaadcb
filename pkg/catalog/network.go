package catalog

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Network is the in-memory pipe catalog
type Network struct {
	Records []*PipeRecord

	byID map[string]*PipeRecord
}

// NewNetwork creates an empty network
func NewNetwork() *Network {
	return &Network{byID: make(map[string]*PipeRecord)}
}

// Add appends a record to the network
func (n *Network) Add(record *PipeRecord) {
	n.Records = append(n.Records, record)
	n.byID[record.ID] = record
}

// ByID returns the record with the given identifier, or nil
func (n *Network) ByID(id string) *PipeRecord {
	return n.byID[id]
}

// Count returns the number of records
func (n *Network) Count() int {
	return len(n.Records)
}

// planLine returns the plan-view (east, north) polyline of a record
func planLine(r *PipeRecord) orb.LineString {
	line := make(orb.LineString, 0, len(r.Vertices))
	for _, v := range r.Vertices {
		line = append(line, orb.Point{v[0], v[1]})
	}
	return line
}

// PlanBounds returns the plan-view bounding rectangle of the whole
// network in catalog coordinates
func (n *Network) PlanBounds() orb.Bound {
	var bound orb.Bound
	first := true
	for _, r := range n.Records {
		line := planLine(r)
		if len(line) == 0 {
			continue
		}
		if first {
			bound = line.Bound()
			first = false
			continue
		}
		bound = bound.Union(line.Bound())
	}
	return bound
}

// PlanLength returns the total plan-view centerline length of the network
func (n *Network) PlanLength() float64 {
	total := 0.0
	for _, r := range n.Records {
		total += planar.Length(planLine(r))
	}
	return total
}

// Materials returns a count of records per material tag
func (n *Network) Materials() map[string]int {
	counts := make(map[string]int)
	for _, r := range n.Records {
		counts[r.Material]++
	}
	return counts
}

// DepthRange returns the minimum and maximum top-of-pipe depth in
// centimeters across all records carrying depth attributes.
// ok is false when no record has depths.
func (n *Network) DepthRange() (min, max float64, ok bool) {
	min = math.MaxFloat64
	max = -math.MaxFloat64
	for _, r := range n.Records {
		for _, d := range []*float64{r.StartDepth, r.EndDepth} {
			if d == nil {
				continue
			}
			ok = true
			min = math.Min(min, *d)
			max = math.Max(max, *d)
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}
