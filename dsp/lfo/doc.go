// Package lfo provides the low-frequency oscillator clock that sweeps the
// synth's filter cutoff.
//
// A [Clock] runs one background goroutine that recomputes a sawtooth value
// from the wall clock every tick. Start and Stop are idempotent and Stop
// returns only after the goroutine has exited.
package lfo
