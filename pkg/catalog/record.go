package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PipeRecord is a single pipe as stored in the catalog. Records are
// immutable once loaded; the viewer shell owns the catalog and hands
// records to the geometry engine read-only.
//
// Radius is stored in the upstream data's ambiguous unit (millimeters
// or meters, see Mapper). StartDepth and EndDepth are top-of-pipe
// depths in centimeters; nil when the attribute is absent or
// non-numeric. Vertices hold the raw planar polyline in
// (east/west, north/south, elevation) index order.
type PipeRecord struct {
	ID         string
	Kind       string
	Material   string
	Radius     float64
	StartDepth *float64
	EndDepth   *float64
	Vertices   [][3]float64
}

// rawRecord mirrors the catalog JSON. Depth attributes in the wild
// appear as numbers, numeric strings, null, or are missing entirely,
// so they are decoded from raw messages.
type rawRecord struct {
	ID         string          `json:"id"`
	Kind       string          `json:"pipe_kind"`
	Material   string          `json:"material"`
	Radius     float64         `json:"radius"`
	StartDepth json.RawMessage `json:"start_point_depth"`
	EndDepth   json.RawMessage `json:"end_point_depth"`
	Vertices   [][3]float64    `json:"points"`
}

// parseDepth interprets a raw JSON depth attribute.
// Returns nil for absent, null, or non-numeric values.
func parseDepth(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	s := strings.TrimSpace(string(raw))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &value
}

// VertexCount returns the number of polyline vertices
func (r *PipeRecord) VertexCount() int {
	return len(r.Vertices)
}

// HasDepths reports whether both depth attributes are present
func (r *PipeRecord) HasDepths() bool {
	return r.StartDepth != nil && r.EndDepth != nil
}
