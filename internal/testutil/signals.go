package testutil

import "math"

// Sine returns length samples of amplitude*sin(2*pi*freqHz*n/sampleRate),
// starting at phase 0.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	w := 2 * math.Pi * freqHz / sampleRate
	for n := range out {
		out[n] = amplitude * math.Sin(w*float64(n))
	}
	return out
}

// Ramp returns an endpoint-inclusive linear ramp from `from` to `to`.
func Ramp(length int, from, to float64) []float64 {
	out := make([]float64, length)
	if length == 1 {
		out[0] = from
	}
	if length < 2 {
		return out
	}
	step := (to - from) / float64(length-1)
	for n := range out {
		out[n] = from + step*float64(n)
	}
	out[length-1] = to
	return out
}

// Impulse returns a unit impulse at pos; an out-of-range pos gives silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC returns a constant signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for n := range out {
		out[n] = value
	}
	return out
}
