// Package render rasterizes the frame: the per-column wall field, the
// billboard sprites on top of it, and the minimap and diagnostics overlays.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"tilecaster/internal/raycast"
)

// Mode selects the program variant.
type Mode int

const (
	// ModeFlat draws solid-colored wall strips and no sprites.
	ModeFlat Mode = iota
	// ModeTextured draws texture-mapped wall strips and billboard sprites.
	ModeTextured
)

// ParseMode converts the config string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "flat":
		return ModeFlat, nil
	case "textured":
		return ModeTextured, nil
	}
	return ModeFlat, fmt.Errorf("unknown render mode %q", s)
}

var (
	groundColor = color.RGBA{40, 40, 40, 255}
	skyColor    = color.RGBA{135, 206, 235, 255}
)

// Renderer draws one frame. Geometry is computed on the logical tile grid
// and scaled by the tile size when rasterized, so the screen is
// window-resolution and overlay text stays readable. The renderer owns no
// game state; the camera and entity list are passed in each frame.
type Renderer struct {
	cols, rows int
	tileSize   int
	mode       Mode
	caster     *raycast.Caster
	projector  *raycast.Projector
	textures   *Textures
	face       font.Face

	// center keeps the center column's hit for the diagnostics line.
	center raycast.Hit
}

// NewRenderer builds a renderer for a cols x rows tile grid drawn at
// tileSize pixels per tile. textures may be nil in flat mode.
func NewRenderer(cols, rows, tileSize int, mode Mode, caster *raycast.Caster, projector *raycast.Projector, textures *Textures) (*Renderer, error) {
	if tileSize < 1 {
		return nil, fmt.Errorf("tile size %d must be positive", tileSize)
	}
	if mode == ModeTextured && textures == nil {
		return nil, fmt.Errorf("textured mode needs textures")
	}
	// a face two tiles tall keeps the diagnostics line well inside the
	// window width
	face, err := newFace(float64(2 * tileSize))
	if err != nil {
		return nil, fmt.Errorf("hud face: %w", err)
	}
	return &Renderer{
		cols:      cols,
		rows:      rows,
		tileSize:  tileSize,
		mode:      mode,
		caster:    caster,
		projector: projector,
		textures:  textures,
		face:      face,
	}, nil
}

// Mode returns the variant the renderer was built for.
func (r *Renderer) Mode() Mode { return r.mode }

// DrawWalls fills the background bands and draws one tile-wide wall strip
// per tile column. Columns with no hit keep showing sky and ground.
func (r *Renderer) DrawWalls(screen *ebiten.Image, cam *raycast.Camera) {
	w := float32(r.cols * r.tileSize)
	h := float32(r.rows * r.tileSize)
	vector.DrawFilledRect(screen, 0, 0, w, h, groundColor, false)
	vector.DrawFilledRect(screen, 0, 0, w, h/2, skyColor, false)

	r.center = raycast.Hit{}
	for col := 0; col < r.cols; col++ {
		angle := r.caster.ColumnAngle(cam.Angle, col, r.cols)
		hit, ok := r.caster.Cast(cam, angle)
		if !ok {
			continue
		}
		if col == r.cols/2 {
			r.center = hit
		}
		r.drawWallStrip(screen, col, hit)
	}
}

func (r *Renderer) drawWallStrip(screen *ebiten.Image, col int, hit raycast.Hit) {
	top, height := wallSpan(r.rows, hit.Dist)
	if height <= 0 {
		return
	}
	bright := brightness(hit.Dist)
	ts := float64(r.tileSize)

	switch r.mode {
	case ModeFlat:
		vector.DrawFilledRect(screen, float32(float64(col)*ts), float32(top*ts), float32(ts), float32(height*ts), shade(wallColor(hit.Face), bright), false)
	case ModeTextured:
		tex := r.textures.Wall(hit.Face)
		texH := tex.Bounds().Dy()
		strip := tex.SubImage(image.Rect(hit.TexColumn, 0, hit.TexColumn+1, texH)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(ts, height*ts/float64(texH))
		op.GeoM.Translate(float64(col)*ts, top*ts)
		op.ColorScale.Scale(float32(bright), float32(bright), float32(bright), 1)
		screen.DrawImage(strip, op)
	}
}

// wallSpan returns the top coordinate and height of a wall strip in tile
// rows for a forward distance, centered on the horizon row.
func wallSpan(rows int, dist float64) (top, height float64) {
	halfH := math.Round(float64(rows/2) / dist)
	return float64(rows/2) - halfH, 2 * halfH
}

// brightness darkens distant walls, staying within [0.8, 1.0] so nothing
// ever goes fully black.
func brightness(dist float64) float64 {
	return 0.2*math.Min(1/dist, 1) + 0.8
}

// wallColor maps a wall orientation to its flat-mode material: the x-axis
// face pair is red, the y-axis pair green.
func wallColor(face raycast.Orientation) color.RGBA {
	switch face {
	case raycast.FaceWest, raycast.FaceEast:
		return color.RGBA{255, 0, 0, 255}
	case raycast.FaceNorth, raycast.FaceSouth:
		return color.RGBA{0, 255, 0, 255}
	}
	return color.RGBA{200, 200, 200, 255}
}

func shade(c color.RGBA, mult float64) color.RGBA {
	return color.RGBA{
		R: uint8(mult * float64(c.R)),
		G: uint8(mult * float64(c.G)),
		B: uint8(mult * float64(c.B)),
		A: c.A,
	}
}
