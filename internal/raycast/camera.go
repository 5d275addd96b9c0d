package raycast

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Camera is the player's viewpoint: a continuous map position, a facing
// angle in turns, and the eye height used when projecting billboards.
// Movement is not clipped against walls; the map has no collision in this
// engine.
type Camera struct {
	Pos    geom.Vector2
	Angle  float64 // turns, always in [0,1)
	Height float64 // eye height in world units, walls span [0,1]
}

// NewCamera returns a camera at (x, y) facing the given turn angle.
func NewCamera(x, y, angle float64) *Camera {
	return &Camera{
		Pos:    geom.Vector2{X: x, Y: y},
		Angle:  WrapAngle(angle),
		Height: 0.5,
	}
}

// Forward returns the unit facing vector.
func (c *Camera) Forward() geom.Vector2 {
	return geom.Vector2{X: math.Cos(Radians(c.Angle)), Y: math.Sin(Radians(c.Angle))}
}

// Right returns the unit vector a quarter turn from the facing direction,
// pointing toward increasing screen columns.
func (c *Camera) Right() geom.Vector2 {
	r := WrapAngle(c.Angle + 0.25)
	return geom.Vector2{X: math.Cos(Radians(r)), Y: math.Sin(Radians(r))}
}

// MoveForward advances the camera along its facing direction. speed is in
// map units per second, dt in seconds; negative speed moves backward.
func (c *Camera) MoveForward(speed, dt float64) {
	c.moveAlong(speed*dt, c.Angle)
}

// Strafe moves sideways, a quarter turn from the facing direction.
func (c *Camera) Strafe(speed, dt float64) {
	c.moveAlong(speed*dt, WrapAngle(c.Angle+0.25))
}

// Rotate turns the camera by turnsPerSec*dt and renormalizes the angle.
func (c *Camera) Rotate(turnsPerSec, dt float64) {
	c.Angle = WrapAngle(c.Angle + turnsPerSec*dt)
}

func (c *Camera) moveAlong(amt, angle float64) {
	c.Pos.X += amt * math.Cos(Radians(angle))
	c.Pos.Y += amt * math.Sin(Radians(angle))
}
