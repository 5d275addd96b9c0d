// Package config loads the engine's tunables from an optional YAML file
// over compiled-in defaults: a 128x96 tile screen of 8px tiles, a
// quarter-turn field of view, and the built-in 16x16 map.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all engine configuration values.
type Config struct {
	Display  DisplayConfig  `mapstructure:"display"`
	Camera   CameraConfig   `mapstructure:"camera"`
	Movement MovementConfig `mapstructure:"movement"`
	Render   RenderConfig   `mapstructure:"render"`
	Timing   TimingConfig   `mapstructure:"timing"`
	World    WorldConfig    `mapstructure:"world"`
}

type DisplayConfig struct {
	TileCols    int    `mapstructure:"tile_cols"`
	TileRows    int    `mapstructure:"tile_rows"`
	TileSize    int    `mapstructure:"tile_size"`
	WindowTitle string `mapstructure:"window_title"`
}

type CameraConfig struct {
	// FOV is the horizontal field of view in turns, exclusive (0, 0.5).
	FOV float64 `mapstructure:"fov"`
}

type MovementConfig struct {
	MoveSpeed float64 `mapstructure:"move_speed"` // map units per second
	TurnSpeed float64 `mapstructure:"turn_speed"` // turns per second
}

type RenderConfig struct {
	// Mode selects the program variant: "flat" colored walls or
	// "textured" walls plus billboard sprites.
	Mode string `mapstructure:"mode"`
}

type TimingConfig struct {
	// FrameWindow is the capacity of the frame-duration ring buffer.
	FrameWindow int `mapstructure:"frame_window"`
}

type WorldConfig struct {
	Map        []string `mapstructure:"map"`
	SpawnX     float64  `mapstructure:"spawn_x"`
	SpawnY     float64  `mapstructure:"spawn_y"`
	SpawnAngle float64  `mapstructure:"spawn_angle"` // turns
}

// defaultMap is the demo grid. 'b' and 'p' mark barrel and pillar spawn
// points on open floor.
var defaultMap = []string{
	"#########.......",
	"#..............#",
	"#.......########",
	"#.........p....#",
	"#......##......#",
	"#......##......#",
	"#...........b..#",
	"###............#",
	"##.............#",
	"#......####..###",
	"#......#.......#",
	"#......#.......#",
	"#...b..........#",
	"#......#########",
	"#..............#",
	"################",
}

// Load reads the config at path, or just the defaults when path is empty.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("display.tile_cols", 128)
	v.SetDefault("display.tile_rows", 96)
	v.SetDefault("display.tile_size", 8)
	v.SetDefault("display.window_title", "tilecaster")
	v.SetDefault("camera.fov", 0.25)
	v.SetDefault("movement.move_speed", 2.0)
	v.SetDefault("movement.turn_speed", 0.5)
	v.SetDefault("render.mode", "textured")
	v.SetDefault("timing.frame_window", 64)
	v.SetDefault("world.map", defaultMap)
	v.SetDefault("world.spawn_x", 1.5)
	v.SetDefault("world.spawn_y", 14.5)
	v.SetDefault("world.spawn_angle", 0.0)
}

// Validate rejects values the renderer cannot work with.
func (c *Config) Validate() error {
	if c.Display.TileCols < 2 || c.Display.TileRows < 2 {
		return fmt.Errorf("display: tile grid %dx%d is too small", c.Display.TileCols, c.Display.TileRows)
	}
	if c.Display.TileSize < 1 {
		return fmt.Errorf("display: tile_size %d must be positive", c.Display.TileSize)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 0.5 {
		return fmt.Errorf("camera: fov %v turns must be inside (0, 0.5)", c.Camera.FOV)
	}
	if c.Timing.FrameWindow < 1 {
		return fmt.Errorf("timing: frame_window %d must be at least 1", c.Timing.FrameWindow)
	}
	if c.Render.Mode != "flat" && c.Render.Mode != "textured" {
		return fmt.Errorf("render: unknown mode %q", c.Render.Mode)
	}
	if len(c.World.Map) == 0 {
		return fmt.Errorf("world: map has no rows")
	}
	return nil
}
