package arith

import "math"

// Epsilon is the tolerance used by Clean.
const Epsilon = 1e-10

// Clean masks floating point representation error.
//
// Values closer than Epsilon to zero become exactly zero, values closer than Epsilon to an
// integer become that integer. NaN and infinities are returned unchanged.
func Clean(v float64) float64 {
	if math.Abs(v) < Epsilon {
		return 0
	}
	if rounded := math.Round(v); math.Abs(v-rounded) < Epsilon {
		return rounded
	}
	return v
}
