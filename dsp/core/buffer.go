package core

import "math"

// SampleCount returns the number of samples covering seconds at sampleRate,
// rounded to the nearest integer. Non-positive or non-finite inputs yield 0.
func SampleCount(seconds, sampleRate float64) int {
	n := seconds * sampleRate
	if !(n > 0) || math.IsInf(n, 0) {
		return 0
	}
	return int(math.Round(n))
}
