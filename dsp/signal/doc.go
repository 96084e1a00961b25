// Package signal provides the note oscillator and small signal utilities.
//
// [Generator.Sawtooth] renders the raw, peak-normalized sawtooth that feeds
// the synth's filter stage. [Sawtooth] is the underlying shape function and is
// shared with the LFO.
package signal
