// Package config loads the engine tunables from a TOML file. Every
// knob has a default; a missing config file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/philipparndt/gopipes/pkg/annotation"
	"github.com/philipparndt/gopipes/pkg/catalog"
)

// Config is the full tunable surface of the measurement engine.
type Config struct {
	Mapper  Mapper  `toml:"mapper"`
	Section Section `toml:"section"`
	Grid    Grid    `toml:"grid"`
	Labels  Labels  `toml:"labels"`
}

// Mapper tunes the catalog-to-world coordinate mapping.
type Mapper struct {
	// MinRadius is the smallest accepted pipe radius in meters.
	MinRadius float64 `toml:"min_radius"`
	// MillimeterThreshold is the raw radius above which the value is
	// read as millimeters instead of meters.
	MillimeterThreshold float64 `toml:"millimeter_threshold"`
}

// Section tunes cross-section queries.
type Section struct {
	SlabThickness float64 `toml:"slab_thickness"`
	LoopSegments  int     `toml:"loop_segments"`
	MeshCells     int     `toml:"mesh_cells"`
}

// Grid tunes the depth-grid overlay.
type Grid struct {
	FloorDepth float64 `toml:"floor_depth"`
	Step       float64 `toml:"step"`
}

// Labels tunes depth-label sizing.
type Labels struct {
	BaseDistance float64 `toml:"base_distance"`
	BaseScale    float64 `toml:"base_scale"`
	MinScale     float64 `toml:"min_scale"`
	MaxScale     float64 `toml:"max_scale"`
}

// Default returns the built-in tunables.
func Default() Config {
	mapper := catalog.DefaultMapper()
	labels := annotation.DefaultScaleParams()
	return Config{
		Mapper: Mapper{
			MinRadius:           mapper.MinRadius,
			MillimeterThreshold: mapper.MillimeterThreshold,
		},
		Section: Section{
			SlabThickness: 0.01,
			LoopSegments:  48,
			MeshCells:     120,
		},
		Grid: Grid{
			FloorDepth: annotation.DefaultFloorDepth,
			Step:       annotation.DefaultStep,
		},
		Labels: Labels{
			BaseDistance: labels.BaseDistance,
			BaseScale:    labels.BaseScale,
			MinScale:     labels.MinScale,
			MaxScale:     labels.MaxScale,
		},
	}
}

// Load reads a config file, overlaying the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// NewMapper builds a coordinate mapper from the config.
func (c Config) NewMapper() catalog.Mapper {
	return catalog.Mapper{
		MinRadius:           c.Mapper.MinRadius,
		MillimeterThreshold: c.Mapper.MillimeterThreshold,
	}
}

// ScaleParams builds the label sizing rule from the config.
func (c Config) ScaleParams() annotation.ScaleParams {
	return annotation.ScaleParams{
		BaseDistance: c.Labels.BaseDistance,
		BaseScale:    c.Labels.BaseScale,
		MinScale:     c.Labels.MinScale,
		MaxScale:     c.Labels.MaxScale,
	}
}
