package core

import (
	"cmp"
	"math"
)

// Clamp limits v to [lo, hi]. Swapped bounds are reordered first.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}

	return min(max(v, lo), hi)
}

// NearlyEqual reports whether a and b agree within eps, absolutely or
// relative to the larger magnitude. A non-positive eps means 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = 1e-12
	}

	diff := math.Abs(a - b)
	scale := max(1, math.Abs(a), math.Abs(b))

	return diff <= eps*scale
}

// DBToLinear converts an amplitude level in dB to a linear gain.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts a linear amplitude to dB. Zero maps to -Inf and
// negative input to NaN.
func LinearToDB(linear float64) float64 {
	switch {
	case linear < 0:
		return math.NaN()
	case linear == 0:
		return math.Inf(-1)
	default:
		return 20 * math.Log10(linear)
	}
}
