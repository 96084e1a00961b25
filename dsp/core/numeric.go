package core

import "math"

// Clamp limits value to [lo, hi]. Swapped bounds are reordered. NaN passes
// through unchanged.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	switch {
	case value < lo:
		return lo
	case value > hi:
		return hi
	default:
		return value
	}
}

// NearlyEqual reports whether a and b agree to within eps, absolutely or
// relative to the larger magnitude. A non-positive eps selects 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = 1e-12
	}
	diff := math.Abs(a - b)
	return diff <= eps || diff <= eps*math.Max(math.Abs(a), math.Abs(b))
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// LinearToDB converts an amplitude ratio to dB. Zero maps to -Inf and
// negative input to NaN.
func LinearToDB(linear float64) float64 {
	switch {
	case linear < 0:
		return math.NaN()
	case linear == 0:
		return math.Inf(-1)
	}
	return 20 * math.Log10(linear)
}
