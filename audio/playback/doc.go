// Package playback plays rendered notes on the default audio device via
// oto. Build with the headless tag to swap in a player that only validates
// and counts samples.
package playback
