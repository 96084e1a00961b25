package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates H(e^jw) at freqHz for the given sample rate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	zInv := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate)
	num := poly(c.B0, c.B1, c.B2, zInv)
	den := poly(1, c.A1, c.A2, zInv)
	return num / den
}

// MagnitudeSquared returns |H(f)|^2.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	h := c.Response(freqHz, sampleRate)
	return real(h)*real(h) + imag(h)*imag(h)
}

// MagnitudeDB returns the gain at freqHz in dB.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// poly evaluates p0 + p1 x + p2 x^2.
func poly(p0, p1, p2 float64, x complex128) complex128 {
	return complex(p0, 0) + x*(complex(p1, 0)+x*complex(p2, 0))
}
