package raycast

import (
	"math"
	"testing"
)

func TestWrapAngleRange(t *testing.T) {
	inputs := []float64{
		0, 0.5, 0.999999, 1, 1.25, 2, 17.75,
		-0.25, -1, -3.5, -1e-9, 1e-9, 123456.789, -98765.4321,
	}
	for _, a := range inputs {
		got := WrapAngle(a)
		if got < 0 || got >= 1 {
			t.Errorf("WrapAngle(%v) = %v, out of [0,1)", a, got)
		}
	}
}

func TestWrapAngleCongruence(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.25, 0.25},
		{-0.25, 0.75},
		{-1.5, 0.5},
		{3.125, 0.125},
	}
	for _, tc := range cases {
		got := WrapAngle(tc.in)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWrapAngleIdempotent(t *testing.T) {
	for _, a := range []float64{0, 0.1, 0.5, 0.9999} {
		if got := WrapAngle(WrapAngle(a)); got != a {
			t.Errorf("WrapAngle(WrapAngle(%v)) = %v, want unchanged", a, got)
		}
	}
}
