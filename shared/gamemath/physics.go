package gamemath

import "math"

// DecayVelocity scales a velocity by factor and snaps it to zero once its
// magnitude falls below snap.
func DecayVelocity(v, factor, snap float64) float64 {
	v *= factor
	if math.Abs(v) < snap {
		return 0
	}
	return v
}

// StepPixels converts a fractional velocity into a whole-pixel displacement.
func StepPixels(v float64) int {
	return int(math.Round(v))
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AbsInt returns |v|.
func AbsInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
