package lowpass

import (
	"fmt"
	"math"

	"github.com/cwbudde/monosynth/dsp/core"
	"github.com/cwbudde/monosynth/dsp/filter/biquad"
	"github.com/cwbudde/monosynth/dsp/filter/design/pass"
)

const (
	// MinCutoffHz is the lowest cutoff the filter will be designed at.
	MinCutoffHz = 1.0
	// MaxCutoffHz is the highest cutoff the filter will be designed at.
	MaxCutoffHz = 5000.0

	// nyquistGuard keeps the designed cutoff strictly below Nyquist when
	// MaxCutoffHz is not representable at low sample rates.
	nyquistGuard = 0.99
)

// Filter designs and applies a one-pole Butterworth lowpass whose cutoff is
// silently clamped into [MinCutoffHz, MaxCutoffHz].
type Filter struct {
	sampleRate float64
}

// New creates a lowpass for the given sample rate.
func New(sampleRate float64) (*Filter, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("lowpass sample rate must be > 0 and finite: %f", sampleRate)
	}
	return &Filter{sampleRate: sampleRate}, nil
}

// SampleRate returns the sample rate the filter designs for.
func (f *Filter) SampleRate() float64 {
	return f.sampleRate
}

// ClampCutoff maps a requested cutoff into the designable range. NaN maps to
// the minimum.
func (f *Filter) ClampCutoff(cutoffHz float64) float64 {
	if math.IsNaN(cutoffHz) {
		return MinCutoffHz
	}

	hi := math.Min(MaxCutoffHz, nyquistGuard*0.5*f.sampleRate)
	lo := math.Min(MinCutoffHz, hi)
	return core.Clamp(cutoffHz, lo, hi)
}

// Design returns the one-pole coefficients for the clamped cutoff.
func (f *Filter) Design(cutoffHz float64) biquad.Coefficients {
	return pass.ButterworthFirstOrderLP(f.ClampCutoff(cutoffHz), f.sampleRate)
}

// Apply filters signal from a zero initial state and returns a new slice of
// the same length. The input is not modified.
func (f *Filter) Apply(signal []float64, cutoffHz float64) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	s := biquad.NewSection(f.Design(cutoffHz))
	s.ProcessBlockTo(out, signal)
	return out
}
