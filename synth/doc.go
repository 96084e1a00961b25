// Package synth renders single monophonic notes.
//
// An [Engine] chains a normalized sawtooth oscillator, a one-pole
// Butterworth lowpass and a linear ADSR envelope. The cutoff comes either
// from the request or, while the LFO is enabled, from the engine's
// background LFO clock sampled once per note. Rendered notes are returned
// and optionally handed to a [Sink] such as a WAV writer or an audio player.
//
// Parameters live in a [Config] that may be changed from any goroutine
// while notes are being rendered.
package synth
