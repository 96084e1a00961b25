package pass

import "math"

// bilinearK computes the bilinear transform frequency warping factor tan(π*freq/sampleRate).
// Returns (k, true) on success, (0, false) if parameters are invalid.
func bilinearK(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 ||
		math.IsNaN(freq) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	return math.Tan(math.Pi * freq / sampleRate), true
}
