// Package biquad provides the IIR section runtime used by the synth's filter.
//
// A [Section] implements Direct Form II Transposed processing for a single
// section defined by [Coefficients]. First-order designs (B2 = A2 = 0), such
// as the one-pole low-pass in dsp/filter/lowpass, run through the same code.
//
// This package provides the processing runtime and response analysis only.
// Coefficient design lives in dsp/filter/design/pass.
package biquad
