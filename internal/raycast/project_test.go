package raycast

import (
	"math"
	"testing"

	"github.com/harbdog/raycaster-go/geom"
)

func TestSceneFromWorldFacingEast(t *testing.T) {
	cam := NewCamera(2, 3, 0)

	s := SceneFromWorld(cam, geom.Vector2{X: 5, Y: 3}, 0.5)
	if math.Abs(s.X) > eps || math.Abs(s.Y) > eps || math.Abs(s.Z-3) > eps {
		t.Errorf("scene = %+v, want (0, 0, 3)", s)
	}

	// a point to the camera's right lands on positive scene x
	s = SceneFromWorld(cam, geom.Vector2{X: 2, Y: 5}, 0.5)
	if math.Abs(s.X-2) > eps || math.Abs(s.Z) > eps {
		t.Errorf("scene = %+v, want (2, 0, 0)", s)
	}

	// higher world points go up, which is negative scene y
	s = SceneFromWorld(cam, geom.Vector2{X: 3, Y: 3}, 1.0)
	if math.Abs(s.Y+0.5) > eps {
		t.Errorf("scene y = %v, want -0.5", s.Y)
	}
}

func TestSceneFromWorldRotates(t *testing.T) {
	cam := NewCamera(1, 1, 0.25) // facing +y

	s := SceneFromWorld(cam, geom.Vector2{X: 1, Y: 4}, 0.5)
	if math.Abs(s.X) > eps || math.Abs(s.Z-3) > eps {
		t.Errorf("scene = %+v, want depth 3 dead ahead", s)
	}

	s = SceneFromWorld(cam, geom.Vector2{X: 0, Y: 1}, 0.5)
	if math.Abs(s.X-1) > eps || math.Abs(s.Z) > eps {
		t.Errorf("scene = %+v, want (1, _, 0)", s)
	}
}

func TestViewFromSceneDivides(t *testing.T) {
	v := ViewFromScene(ScenePoint{X: 2, Y: 1, Z: 4})
	if math.Abs(v.X-0.5) > eps || math.Abs(v.Y-0.25) > eps {
		t.Errorf("view = %+v, want (0.5, 0.25)", v)
	}
}

func TestProjectBillboardBehindCamera(t *testing.T) {
	p := NewProjector(128, 96, 0.25)
	cam := NewCamera(4, 4, 0)

	for _, pos := range []geom.Vector2{
		{X: 1, Y: 4},           // behind
		{X: 4, Y: 6},           // exactly beside, depth 0
		{X: 4 + Epsilon, Y: 4}, // at the near plane
	} {
		if _, _, ok := p.ProjectBillboard(cam, pos, 0.3, 0.3); ok {
			t.Errorf("entity at %+v should be skipped", pos)
		}
	}
}

func TestProjectBillboardAhead(t *testing.T) {
	p := NewProjector(128, 96, 0.25)
	cam := NewCamera(0.5, 0.5, 0)

	rect, depth, ok := p.ProjectBillboard(cam, geom.Vector2{X: 4.5, Y: 0.5}, 0.3, 0.5)
	if !ok {
		t.Fatal("entity ahead must project")
	}
	if math.Abs(depth-4) > eps {
		t.Errorf("depth = %v, want 4", depth)
	}
	if rect.Min.X >= rect.Max.X || rect.Min.Y >= rect.Max.Y {
		t.Fatalf("degenerate rect %v", rect)
	}

	// dead-ahead entities center on the middle column
	centerX := float64(rect.Min.X+rect.Max.X) / 2
	if math.Abs(centerX-127.0/2) > 1 {
		t.Errorf("rect centered at %v, want about %v", centerX, 127.0/2)
	}

	// farther entities project smaller
	farRect, _, ok := p.ProjectBillboard(cam, geom.Vector2{X: 8.5, Y: 0.5}, 0.3, 0.5)
	if !ok {
		t.Fatal("far entity must project")
	}
	if farRect.Dx() >= rect.Dx() || farRect.Dy() >= rect.Dy() {
		t.Errorf("far rect %v not smaller than near rect %v", farRect, rect)
	}
}

func TestScreenFromViewUsesColumnScale(t *testing.T) {
	const cols, rows, fov = 128, 96, 0.25
	p := NewProjector(cols, rows, fov)
	tanMax := math.Tan(Radians(fov / 2))

	// view x at the tangent extremes lands on the first and last columns
	x, y := p.ScreenFromView(ViewPoint{X: -tanMax, Y: 0})
	if math.Abs(x) > eps || math.Abs(y-rows/2) > eps {
		t.Errorf("left extreme = (%v, %v), want (0, %v)", x, y, rows/2)
	}
	x, _ = p.ScreenFromView(ViewPoint{X: tanMax, Y: 0})
	if math.Abs(x-(cols-1)) > eps {
		t.Errorf("right extreme x = %v, want %v", x, cols-1)
	}
}
