// Package spectrum provides FFT-based analysis of rendered notes.
//
// [Analyze] windows a signal, transforms it with algo-fft and reports the
// dominant frequency and the spectral centroid. [Magnitude] is the
// SIMD-backed bin magnitude helper it builds on.
package spectrum
