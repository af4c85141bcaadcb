// Package annotation lays out the depth-grid overlay for a
// cross-section view: evenly stepped depth lines from grade down to a
// floor, one extra line per sectioned pipe at its top-of-pipe depth,
// and the label text and sizing rules that go with them.
package annotation

import (
	"sort"

	"github.com/philipparndt/gopipes/pkg/geometry"
	"github.com/philipparndt/gopipes/pkg/section"
)

// Default grid extent below grade and spacing between grid lines,
// in meters.
const (
	DefaultFloorDepth = -50.0
	DefaultStep       = 1.0
)

// GridAnnotation is one depth line of the overlay: the depth it marks
// (negative below grade), an anchor point on the cutting plane, and
// the label text.
type GridAnnotation struct {
	Depth  float64
	Anchor geometry.Vector3
	Text   string
}

// BuildGrid derives the depth-grid annotations for a cross-section
// result: one per step from grade (depth 0) down to floorDepth, all
// anchored on the plane, plus one per sectioned pipe at its leader's
// top-of-pipe depth. Annotations are ordered top down.
func BuildGrid(plane section.Plane, result *section.Result, floorDepth, step float64) []GridAnnotation {
	if step <= 0 {
		step = DefaultStep
	}
	if floorDepth >= 0 {
		floorDepth = DefaultFloorDepth
	}

	var grid []GridAnnotation
	for depth := 0.0; depth >= floorDepth; depth -= step {
		grid = append(grid, GridAnnotation{
			Depth:  depth,
			Anchor: geometry.NewVector3(plane.Anchor.X, depth, plane.Anchor.Z),
			Text:   FormatDepth(depth),
		})
	}

	if result != nil {
		for _, entry := range entries(result) {
			leader := entry.Leader
			grid = append(grid, GridAnnotation{
				Depth:  leader.Depth(),
				Anchor: leader.TopOfPipe,
				Text:   FormatDepth(leader.Depth()),
			})
		}
	}

	sort.SliceStable(grid, func(i, j int) bool {
		return grid[i].Depth > grid[j].Depth
	})
	return grid
}

func entries(result *section.Result) []section.Entry {
	var all []section.Entry
	if result.Clicked != nil {
		all = append(all, *result.Clicked)
	}
	all = append(all, result.Others...)
	return all
}
