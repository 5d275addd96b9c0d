package raycast

import "math"

// Angles are stored as turns: 0 is the +x axis, 0.25 is +y, and a full
// rotation is 1. Every mutation renormalizes back into [0,1).

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// WrapAngle renormalizes a turn angle into [0,1). It is total over all
// finite inputs; negative angles wrap upward.
func WrapAngle(a float64) float64 {
	a -= math.Floor(a)
	if a >= 1 {
		// a-floor(a) can round up to exactly 1 for tiny negatives
		a = 0
	}
	return a
}

// Radians converts a turn angle to radians.
func Radians(turns float64) float64 {
	return Tau * turns
}
