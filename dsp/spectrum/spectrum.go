package spectrum

import "github.com/cwbudde/algo-vecmath"

// Magnitude returns |X[k]| for each bin of a complex spectrum.
func Magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	n := len(bins)
	split := make([]float64, 3*n)
	re, im, out := split[:n], split[n:2*n], split[2*n:]

	for k, c := range bins {
		re[k], im[k] = real(c), imag(c)
	}

	vecmath.Magnitude(out, re, im)
	return out
}
