package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadPartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gopipes.toml")
	content := `
[mapper]
min_radius = 0.1

[grid]
floor_depth = -20.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Mapper.MinRadius != 0.1 {
		t.Errorf("min_radius = %v, want 0.1", cfg.Mapper.MinRadius)
	}
	if cfg.Grid.FloorDepth != -20 {
		t.Errorf("floor_depth = %v, want -20", cfg.Grid.FloorDepth)
	}

	// Untouched keys keep their defaults.
	def := Default()
	if cfg.Mapper.MillimeterThreshold != def.Mapper.MillimeterThreshold {
		t.Errorf("millimeter_threshold = %v, want default", cfg.Mapper.MillimeterThreshold)
	}
	if cfg.Section.LoopSegments != def.Section.LoopSegments {
		t.Errorf("loop_segments = %v, want default", cfg.Section.LoopSegments)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[mapper\nmin_radius ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML should error")
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()

	m := cfg.NewMapper()
	if m.MinRadius != cfg.Mapper.MinRadius || m.MillimeterThreshold != cfg.Mapper.MillimeterThreshold {
		t.Errorf("NewMapper mismatch: %+v", m)
	}

	p := cfg.ScaleParams()
	if p.BaseDistance != cfg.Labels.BaseDistance || p.MaxScale != cfg.Labels.MaxScale {
		t.Errorf("ScaleParams mismatch: %+v", p)
	}
}
