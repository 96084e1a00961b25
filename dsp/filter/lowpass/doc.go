// Package lowpass implements the synth voice filter: a first-order
// Butterworth lowpass designed from a user-movable cutoff.
//
// Cutoffs are clamped to [MinCutoffHz, MaxCutoffHz] (and below Nyquist)
// rather than rejected, so any slider or LFO position produces a valid,
// stable filter.
package lowpass
