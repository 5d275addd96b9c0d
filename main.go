package main

import (
	"embed"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"tilecaster/internal/config"
	"tilecaster/internal/game"
	"tilecaster/internal/logging"
	"tilecaster/internal/raycast"
	"tilecaster/internal/render"
	"tilecaster/internal/world"
)

//go:embed assets/*
var assets embed.FS

func main() {
	configPath := flag.String("config", "", "optional YAML config file overriding the built-in defaults")
	logPath := flag.String("log", "tilecaster.log", "log file path")
	flag.Parse()

	logger := logging.New(*logPath)
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalw("load config", "err", err)
	}

	grid, markers, err := world.Parse(cfg.World.Map)
	if err != nil {
		logger.Fatalw("parse map", "err", err)
	}
	entities, err := world.SpawnFromMarkers(markers)
	if err != nil {
		logger.Fatalw("spawn entities", "err", err)
	}

	mode, err := render.ParseMode(cfg.Render.Mode)
	if err != nil {
		logger.Fatalw("select render mode", "err", err)
	}
	textures, err := render.LoadTextures(assets)
	if err != nil {
		logger.Fatalw("load textures", "err", err)
	}

	cam := raycast.NewCamera(cfg.World.SpawnX, cfg.World.SpawnY, cfg.World.SpawnAngle)
	caster := raycast.NewCaster(grid, cfg.Camera.FOV)
	projector := raycast.NewProjector(cfg.Display.TileCols, cfg.Display.TileRows, cfg.Camera.FOV)

	renderer, err := render.NewRenderer(cfg.Display.TileCols, cfg.Display.TileRows, cfg.Display.TileSize, mode, caster, projector, textures)
	if err != nil {
		logger.Fatalw("build renderer", "err", err)
	}

	g := game.New(cfg, cam, grid, entities, renderer)

	ebiten.SetWindowSize(cfg.Display.TileCols*cfg.Display.TileSize, cfg.Display.TileRows*cfg.Display.TileSize)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)

	logger.Infow("starting",
		"mode", cfg.Render.Mode,
		"grid", []int{grid.Width(), grid.Height()},
		"entities", len(entities),
	)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatalw("game loop", "err", err)
	}
	logger.Infow("clean exit")
}
