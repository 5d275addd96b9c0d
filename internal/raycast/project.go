package raycast

import (
	"image"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Scene space is the camera-relative frame before perspective division:
// X rightward, Z forward depth, Y vertical with up negative. View space is
// scene space with X and Y divided by depth.

// Epsilon is the minimum forward depth a scene point may have before
// projection. Points at or behind it are behind the camera and must be
// skipped by the caller; ViewFromScene itself does not guard.
const Epsilon = 1e-6

// ScenePoint is a camera-relative position.
type ScenePoint struct {
	X, Y, Z float64
}

// ViewPoint is a perspective-divided scene point.
type ViewPoint struct {
	X, Y float64
}

// SceneFromWorld rotates a world position into the camera basis. height is
// the point's vertical position above the floor in world units.
func SceneFromWorld(cam *Camera, p geom.Vector2, height float64) ScenePoint {
	dx := p.X - cam.Pos.X
	dy := p.Y - cam.Pos.Y
	fwd := cam.Forward()
	right := cam.Right()
	return ScenePoint{
		X: right.X*dx + right.Y*dy,
		Y: -(height - cam.Height),
		Z: fwd.X*dx + fwd.Y*dy,
	}
}

// ViewFromScene perspective-divides a scene point. Undefined for Z <= 0;
// callers guard with Epsilon.
func ViewFromScene(p ScenePoint) ViewPoint {
	return ViewPoint{X: p.X / p.Z, Y: p.Y / p.Z}
}

// Projector maps view-space coordinates onto the logical pixel grid. It
// uses the same tangent-space scale as the column sampler so billboards
// line up with wall columns cast under the same FOV.
type Projector struct {
	Cols, Rows  int
	tanMax      float64
	tilePerView float64
}

// NewProjector builds a projector for a cols x rows logical screen and a
// horizontal field of view in turns.
func NewProjector(cols, rows int, fovTurns float64) *Projector {
	tanMax := math.Tan(Radians(fovTurns / 2))
	return &Projector{
		Cols:        cols,
		Rows:        rows,
		tanMax:      tanMax,
		tilePerView: float64(cols-1) / (2 * tanMax),
	}
}

// ScreenFromView maps a view point to logical pixel coordinates. View x
// spans [-tanMax, tanMax] across the columns; view y 0 is the screen
// center row.
func (p *Projector) ScreenFromView(v ViewPoint) (float64, float64) {
	x := (v.X + p.tanMax) * p.tilePerView
	y := float64(p.Rows)/2 + v.Y*p.tilePerView
	return x, y
}

// ProjectBillboard projects an entity footprint into a destination pixel
// rectangle. The footprint is centered on pos horizontally, stands on the
// floor, and extends 2*halfH up and halfW to each side. depth is the scene
// Z of the center; ok is false when the center is at or behind the near
// plane and nothing should be drawn.
func (p *Projector) ProjectBillboard(cam *Camera, pos geom.Vector2, halfW, halfH float64) (rect image.Rectangle, depth float64, ok bool) {
	center := SceneFromWorld(cam, pos, 0)
	if center.Z <= Epsilon {
		return image.Rectangle{}, center.Z, false
	}

	topLeft := ViewFromScene(ScenePoint{X: center.X - halfW, Y: -(2*halfH - cam.Height), Z: center.Z})
	bottomRight := ViewFromScene(ScenePoint{X: center.X + halfW, Y: cam.Height, Z: center.Z})

	x0, y0 := p.ScreenFromView(topLeft)
	x1, y1 := p.ScreenFromView(bottomRight)
	rect = image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x1)), int(math.Round(y1)),
	)
	return rect, center.Z, true
}
