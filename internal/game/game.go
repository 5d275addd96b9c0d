// Package game runs the per-frame loop: poll input, integrate the camera,
// then hand the frame to the renderer. Everything is single-threaded;
// ebiten guarantees Update and Draw never interleave.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tilecaster/internal/config"
	"tilecaster/internal/raycast"
	"tilecaster/internal/render"
	"tilecaster/internal/timing"
	"tilecaster/internal/world"
)

// Game owns the scene for the life of the process and implements
// ebiten.Game.
type Game struct {
	cfg      *config.Config
	cam      *raycast.Camera
	grid     *world.Grid
	entities []*world.Entity
	renderer *render.Renderer
	frames   *timing.Ring

	prev        time.Time
	hideOverlay bool
}

// New wires the loaded scene into a runnable game.
func New(cfg *config.Config, cam *raycast.Camera, grid *world.Grid, entities []*world.Entity, renderer *render.Renderer) *Game {
	return &Game{
		cfg:      cfg,
		cam:      cam,
		grid:     grid,
		entities: entities,
		renderer: renderer,
		frames:   timing.NewRing(cfg.Timing.FrameWindow),
	}
}

// Update measures the elapsed frame time, polls the held keys, and
// integrates the camera. Returning ebiten.Termination ends the loop after
// the current frame.
func (g *Game) Update() error {
	now := time.Now()
	var dt float64
	if !g.prev.IsZero() {
		dt = now.Sub(g.prev).Seconds()
	}
	g.prev = now
	g.frames.Add(dt * 1000)

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.hideOverlay = !g.hideOverlay
	}

	g.handleMovement(dt)
	return nil
}

func (g *Game) handleMovement(dt float64) {
	move := g.cfg.Movement.MoveSpeed
	turn := g.cfg.Movement.TurnSpeed

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.cam.MoveForward(move, dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.cam.MoveForward(-move, dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.cam.Strafe(-move, dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.cam.Strafe(move, dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.cam.Rotate(-turn, dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.cam.Rotate(turn, dt)
	}
}

// Draw renders walls, sprites (textured variant only), the diagnostics
// line, and the minimap, in that order.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawWalls(screen, g.cam)
	if g.renderer.Mode() == render.ModeTextured {
		g.renderer.DrawSprites(screen, g.cam, g.entities)
	}
	if !g.hideOverlay {
		g.renderer.DrawHUD(screen, g.cam, g.frames)
		g.renderer.DrawMinimap(screen, g.grid, g.cam)
	}
}

// Layout reports the window resolution. The renderer computes geometry on
// the tile grid and scales it up by tile_size, so the diagnostics text
// draws at full resolution instead of being squeezed into tile pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Display.TileCols * g.cfg.Display.TileSize, g.cfg.Display.TileRows * g.cfg.Display.TileSize
}
