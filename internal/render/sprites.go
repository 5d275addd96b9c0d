package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"tilecaster/internal/raycast"
	"tilecaster/internal/world"
)

// DrawSprites composites the billboard entities over the wall field. Every
// entity's scene coordinates are recomputed from scratch, then the visible
// ones are drawn back to front (painter's algorithm). Sprites are not
// clipped against nearer walls; a sprite behind a wall still draws on top
// of it.
func (r *Renderer) DrawSprites(screen *ebiten.Image, cam *raycast.Camera, entities []*world.Entity) {
	for _, e := range entities {
		s := raycast.SceneFromWorld(cam, e.Pos, 0)
		e.SceneX, e.SceneZ = s.X, s.Z
	}

	for _, e := range drawOrder(entities) {
		dst, _, ok := r.projector.ProjectBillboard(cam, e.Pos, e.HalfW, e.HalfH)
		if !ok || dst.Dx() <= 0 || dst.Dy() <= 0 {
			continue
		}
		img := r.textures.Sprite(e.Kind)
		if img == nil {
			continue
		}

		// dst is in tile units; scale up to window pixels
		ts := r.tileSize
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(
			float64(dst.Dx()*ts)/float64(img.Bounds().Dx()),
			float64(dst.Dy()*ts)/float64(img.Bounds().Dy()),
		)
		op.GeoM.Translate(float64(dst.Min.X*ts), float64(dst.Min.Y*ts))
		screen.DrawImage(img, op)
	}
}

// drawOrder returns entities in strictly decreasing scene depth, dropping
// anything at or behind the near plane. Entities must have their scene
// coordinates already computed for this frame.
func drawOrder(entities []*world.Entity) []*world.Entity {
	visible := make([]*world.Entity, 0, len(entities))
	for _, e := range entities {
		if e.SceneZ > raycast.Epsilon {
			visible = append(visible, e)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].SceneZ > visible[j].SceneZ
	})
	return visible
}
