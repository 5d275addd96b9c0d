package raycast

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestCameraMoveForwardScalesByDt(t *testing.T) {
	c := NewCamera(1.5, 14.5, 0)
	c.MoveForward(2.0, 0.5)
	if math.Abs(c.Pos.X-2.5) > eps || math.Abs(c.Pos.Y-14.5) > eps {
		t.Errorf("after forward: pos = (%v, %v), want (2.5, 14.5)", c.Pos.X, c.Pos.Y)
	}
}

func TestCameraStrafeIsQuarterTurn(t *testing.T) {
	c := NewCamera(0, 0, 0)
	c.Strafe(1.0, 1.0)
	// facing +x, strafing positive moves toward +y
	if math.Abs(c.Pos.X) > eps || math.Abs(c.Pos.Y-1) > eps {
		t.Errorf("after strafe: pos = (%v, %v), want (0, 1)", c.Pos.X, c.Pos.Y)
	}

	c = NewCamera(0, 0, 0.25)
	c.Strafe(-2.0, 0.5)
	// facing +y, strafing negative moves toward +x
	if math.Abs(c.Pos.X-1) > eps || math.Abs(c.Pos.Y) > eps {
		t.Errorf("after strafe: pos = (%v, %v), want (1, 0)", c.Pos.X, c.Pos.Y)
	}
}

func TestCameraRotateWraps(t *testing.T) {
	c := NewCamera(0, 0, 0.9)
	c.Rotate(0.5, 0.4) // +0.2 turns
	if math.Abs(c.Angle-0.1) > eps {
		t.Errorf("angle = %v, want 0.1", c.Angle)
	}
	c.Rotate(-0.5, 0.6) // -0.3 turns
	if math.Abs(c.Angle-0.8) > eps {
		t.Errorf("angle = %v, want 0.8", c.Angle)
	}
	if c.Angle < 0 || c.Angle >= 1 {
		t.Errorf("angle %v escaped [0,1)", c.Angle)
	}
}

func TestCameraBasisVectors(t *testing.T) {
	c := NewCamera(0, 0, 0)
	fwd, right := c.Forward(), c.Right()
	if math.Abs(fwd.X-1) > eps || math.Abs(fwd.Y) > eps {
		t.Errorf("forward = (%v, %v), want (1, 0)", fwd.X, fwd.Y)
	}
	if math.Abs(right.X) > eps || math.Abs(right.Y-1) > eps {
		t.Errorf("right = (%v, %v), want (0, 1)", right.X, right.Y)
	}
}
