package pass

import "github.com/cwbudde/monosynth/dsp/filter/biquad"

// ButterworthFirstOrderLP designs a first-order (one-pole) lowpass
// Butterworth section via the bilinear transform of H(s) = wc / (s + wc):
//
//	k  = tan(π*freq/sampleRate)
//	b0 = b1 = k / (1 + k)
//	a1 = (k - 1) / (1 + k)
//
// The result has unity gain at DC, -3 dB at freq and a zero at Nyquist.
// Invalid parameters (freq outside (0, Nyquist), non-positive sample rate)
// yield zero coefficients.
func ButterworthFirstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		B2: 0,
		A1: (k - 1) * norm,
		A2: 0,
	}
}
