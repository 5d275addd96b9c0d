package raycast

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// GridQuery is the cell occupancy the caster scans against. Cells are
// addressed by (col, row); out-of-bounds queries must report open space.
type GridQuery interface {
	IsWall(col, row int) bool
	Width() int
	Height() int
}

// Orientation identifies which cardinal face of a wall cell a ray struck.
type Orientation int

const (
	FaceNone Orientation = iota
	FaceWest
	FaceNorth
	FaceEast
	FaceSouth
)

func (o Orientation) String() string {
	switch o {
	case FaceWest:
		return "west"
	case FaceNorth:
		return "north"
	case FaceEast:
		return "east"
	case FaceSouth:
		return "south"
	}
	return "none"
}

// TexStripColumns is the number of 1-pixel strips in a wall texture.
const TexStripColumns = 16

// Hit is a wall intersection for one screen column. Dist is the projection
// of the hit offset onto the camera's forward vector, not the Euclidean
// distance; dividing the screen height by it yields a perspective-correct
// wall height without a separate fisheye correction. A Dist of zero is the
// "no hit" sentinel.
type Hit struct {
	Point     geom.Vector2
	Dist      float64
	Face      Orientation
	TexColumn int // 0..TexStripColumns-1, from the hit's slide along the face
}

// Caster shoots per-column rays against a cardinal-aligned grid. The grid
// has only four wall orientations, so instead of a generic DDA it runs up
// to four independent axis scans and keeps the nearest hit.
type Caster struct {
	grid   GridQuery
	tanMax float64 // tangent of half the horizontal FOV
}

// NewCaster builds a caster for the given grid and horizontal field of
// view in turns.
func NewCaster(grid GridQuery, fovTurns float64) *Caster {
	return &Caster{
		grid:   grid,
		tanMax: math.Tan(Radians(fovTurns / 2)),
	}
}

// ColumnAngle maps a screen column to its ray angle. Columns sample the
// view plane uniformly in tangent space, not angle space, which keeps the
// projection planar; the column whose tangent offset is zero comes back as
// the facing angle itself.
func (c *Caster) ColumnAngle(facing float64, col, cols int) float64 {
	t := -c.tanMax + 2*c.tanMax*float64(col)/float64(cols-1)
	return WrapAngle(facing + math.Atan(t)/Tau)
}

// Cast shoots one ray from the camera at the given wrapped angle and
// returns the nearest wall hit across the four cardinal orientations. Each
// scan is attempted only when the angle lies in the half-plane where that
// orientation can be struck first. ok is false when no scan produced a
// strictly positive forward distance.
func (c *Caster) Cast(cam *Camera, angle float64) (Hit, bool) {
	fwd := cam.Forward()

	var hits [4]Hit
	if angle < 0.25 || angle > 0.75 {
		hits[0] = c.scanWestFacing(cam, angle, fwd)
	}
	if angle > 0 && angle < 0.5 {
		hits[1] = c.scanNorthFacing(cam, angle, fwd)
	}
	if angle > 0.25 && angle < 0.75 {
		hits[2] = c.scanEastFacing(cam, angle, fwd)
	}
	if angle > 0.5 {
		hits[3] = c.scanSouthFacing(cam, angle, fwd)
	}

	var best Hit
	for _, h := range hits {
		if h.Dist != 0 && (best.Dist == 0 || h.Dist < best.Dist) {
			best = h
		}
	}
	return best, best.Dist != 0
}

// scanWestFacing walks integer x planes away from the camera toward +x,
// looking for the first wall cell whose west face the ray crosses.
func (c *Caster) scanWestFacing(cam *Camera, angle float64, fwd geom.Vector2) Hit {
	slope := math.Tan(Radians(angle))

	x1 := int(math.Ceil(cam.Pos.X))
	if x1 < 0 {
		x1 = 0
	}
	for x := x1; x < c.grid.Width(); x++ {
		y := (float64(x)-cam.Pos.X)*slope + cam.Pos.Y
		row := int(math.Floor(y))
		if c.grid.IsWall(x, row) {
			return c.hit(cam, fwd, float64(x), y, FaceWest, y)
		}
	}
	return Hit{}
}

// scanNorthFacing walks integer y planes toward +y.
func (c *Caster) scanNorthFacing(cam *Camera, angle float64, fwd geom.Vector2) Hit {
	slope := math.Tan(Radians(0.25 - angle))

	y1 := int(math.Ceil(cam.Pos.Y))
	if y1 < 0 {
		y1 = 0
	}
	for y := y1; y < c.grid.Height(); y++ {
		x := (float64(y)-cam.Pos.Y)*slope + cam.Pos.X
		col := int(math.Floor(x))
		if c.grid.IsWall(col, y) {
			return c.hit(cam, fwd, x, float64(y), FaceNorth, x)
		}
	}
	return Hit{}
}

// scanEastFacing walks integer x planes toward -x; the candidate wall cell
// sits west of the crossed plane.
func (c *Caster) scanEastFacing(cam *Camera, angle float64, fwd geom.Vector2) Hit {
	slope := math.Tan(Radians(angle))

	x1 := int(math.Floor(cam.Pos.X))
	if x1 > c.grid.Width()-1 {
		x1 = c.grid.Width() - 1
	}
	for x := x1; x >= 1; x-- {
		y := (float64(x)-cam.Pos.X)*slope + cam.Pos.Y
		row := int(math.Floor(y))
		if c.grid.IsWall(x-1, row) {
			return c.hit(cam, fwd, float64(x), y, FaceEast, y)
		}
	}
	return Hit{}
}

// scanSouthFacing walks integer y planes toward -y; the candidate wall cell
// sits north of the crossed plane.
func (c *Caster) scanSouthFacing(cam *Camera, angle float64, fwd geom.Vector2) Hit {
	slope := math.Tan(Radians(0.25 - angle))

	y1 := int(math.Floor(cam.Pos.Y))
	if y1 > c.grid.Height()-1 {
		y1 = c.grid.Height() - 1
	}
	for y := y1; y >= 1; y-- {
		x := (float64(y)-cam.Pos.Y)*slope + cam.Pos.X
		col := int(math.Floor(x))
		if c.grid.IsWall(col, y-1) {
			return c.hit(cam, fwd, x, float64(y), FaceSouth, x)
		}
	}
	return Hit{}
}

func (c *Caster) hit(cam *Camera, fwd geom.Vector2, x, y float64, face Orientation, slide float64) Hit {
	return Hit{
		Point:     geom.Vector2{X: x, Y: y},
		Dist:      fwd.X*(x-cam.Pos.X) + fwd.Y*(y-cam.Pos.Y),
		Face:      face,
		TexColumn: texColumn(slide),
	}
}

// texColumn picks a strip index from the fractional part of the coordinate
// that varies along the struck wall face.
func texColumn(slide float64) int {
	i := int(TexStripColumns * (slide - math.Floor(slide)))
	if i > TexStripColumns-1 {
		i = TexStripColumns - 1
	}
	return i
}
