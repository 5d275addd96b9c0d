package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Display.TileCols != 128 || cfg.Display.TileRows != 96 || cfg.Display.TileSize != 8 {
		t.Errorf("display = %+v, want 128x96 tiles of 8px", cfg.Display)
	}
	if cfg.Camera.FOV != 0.25 {
		t.Errorf("fov = %v, want 0.25", cfg.Camera.FOV)
	}
	if cfg.Movement.MoveSpeed != 2.0 || cfg.Movement.TurnSpeed != 0.5 {
		t.Errorf("movement = %+v, want speed 2.0 and turn 0.5", cfg.Movement)
	}
	if cfg.Timing.FrameWindow != 64 {
		t.Errorf("frame_window = %d, want 64", cfg.Timing.FrameWindow)
	}
	if len(cfg.World.Map) != 16 {
		t.Errorf("default map has %d rows, want 16", len(cfg.World.Map))
	}
	if cfg.World.SpawnX != 1.5 || cfg.World.SpawnY != 14.5 || cfg.World.SpawnAngle != 0 {
		t.Errorf("spawn = %+v, want (1.5, 14.5) facing 0", cfg.World)
	}
}

func TestLoadOverrides(t *testing.T) {
	yaml := `
display:
  tile_cols: 64
  tile_rows: 48
render:
  mode: flat
camera:
  fov: 0.2
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Display.TileCols != 64 || cfg.Display.TileRows != 48 {
		t.Errorf("display = %+v, want 64x48", cfg.Display)
	}
	if cfg.Render.Mode != "flat" {
		t.Errorf("mode = %q, want flat", cfg.Render.Mode)
	}
	if cfg.Camera.FOV != 0.2 {
		t.Errorf("fov = %v, want 0.2", cfg.Camera.FOV)
	}
	// untouched keys keep their defaults
	if cfg.Movement.MoveSpeed != 2.0 {
		t.Errorf("move_speed = %v, want default 2.0", cfg.Movement.MoveSpeed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing config file must fail")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("load defaults: %v", err)
		}
		return cfg
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"fov too wide", func(c *Config) { c.Camera.FOV = 0.5 }},
		{"fov zero", func(c *Config) { c.Camera.FOV = 0 }},
		{"tiny grid", func(c *Config) { c.Display.TileCols = 1 }},
		{"bad tile size", func(c *Config) { c.Display.TileSize = 0 }},
		{"bad frame window", func(c *Config) { c.Timing.FrameWindow = 0 }},
		{"bad mode", func(c *Config) { c.Render.Mode = "wireframe" }},
		{"empty map", func(c *Config) { c.World.Map = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("want validation error")
			}
		})
	}
}
