// Package pass designs pass-band filter coefficients for the biquad runtime.
//
// Only the first-order Butterworth lowpass used by the synth voice is
// provided; it matches the classic bilinear-transform one-pole design.
package pass
