package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tilecaster/internal/raycast"
	"tilecaster/internal/world"
)

var (
	minimapWall   = color.RGBA{255, 255, 255, 255}
	minimapFloor  = color.RGBA{0, 0, 0, 255}
	minimapPlayer = color.RGBA{150, 63, 255, 255}
)

// DrawMinimap draws the grid in the screen's top-right corner, one tile per
// cell, with the player's cell highlighted.
func (r *Renderer) DrawMinimap(screen *ebiten.Image, grid *world.Grid, cam *raycast.Camera) {
	ts := r.tileSize
	originX := (r.cols - grid.Width()) * ts

	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			c := minimapFloor
			if grid.IsWall(col, row) {
				c = minimapWall
			}
			vector.DrawFilledRect(screen, float32(originX+col*ts), float32(row*ts), float32(ts), float32(ts), c, false)
		}
	}

	px := int(math.Floor(cam.Pos.X))
	py := int(math.Floor(cam.Pos.Y))
	if px >= 0 && px < grid.Width() && py >= 0 && py < grid.Height() {
		vector.DrawFilledRect(screen, float32(originX+px*ts), float32(py*ts), float32(ts), float32(ts), minimapPlayer, false)
	}
}
