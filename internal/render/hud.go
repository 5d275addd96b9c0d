package render

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"tilecaster/internal/raycast"
	"tilecaster/internal/timing"
)

func newFace(pixels float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bundled font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: pixels}), nil
}

// hudLine formats the diagnostics: player pose, the center column's hit
// coordinates and forward distance, and the rolling frame average.
func hudLine(cam *raycast.Camera, center raycast.Hit, avgMs float64) string {
	return fmt.Sprintf(
		"X=%.2f, Y=%.2f, A=%.2f ;  X=%.2f, Y=%.2f, D=%.2f ;  t=%.1f ms",
		cam.Pos.X, cam.Pos.Y, cam.Angle,
		center.Point.X, center.Point.Y, center.Dist,
		avgMs,
	)
}

// DrawHUD prints the diagnostics line. The screen is window-resolution, so
// the full line fits; the baseline sits two tiles below the top edge.
func (r *Renderer) DrawHUD(screen *ebiten.Image, cam *raycast.Camera, frames *timing.Ring) {
	text.Draw(screen, hudLine(cam, r.center, frames.Average()), r.face, 2, 2*r.tileSize, color.White)
}
