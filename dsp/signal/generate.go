package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/monosynth/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg: core.ApplyProcessorOptions(opts...),
	}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SampleCount returns the buffer length used for a signal of durationSec.
func (g *Generator) SampleCount(durationSec float64) int {
	return core.SampleCount(durationSec, g.cfg.SampleRate)
}

// Sawtooth generates a rising sawtooth at freqHz lasting durationSec, sampled
// on a uniform grid over [0, durationSec) and normalized to a peak of 1.
//
// A zero duration yields an empty signal. A zero frequency yields a constant
// signal.
func (g *Generator) Sawtooth(freqHz, durationSec float64) ([]float64, error) {
	if freqHz < 0 || !core.IsFinite(freqHz) {
		return nil, fmt.Errorf("sawtooth frequency must be >= 0 and finite: %f", freqHz)
	}
	if durationSec < 0 || !core.IsFinite(durationSec) {
		return nil, fmt.Errorf("sawtooth duration must be >= 0 and finite: %f", durationSec)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sawtooth sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	n := g.SampleCount(durationSec)
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	dt := durationSec / float64(n)
	for i := range out {
		ph := freqHz * dt * float64(i)
		out[i] = 2*(ph-math.Floor(ph)) - 1
	}

	NormalizeInPlace(out)
	return out, nil
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Sawtooth evaluates a unit sawtooth at phase x (radians). The result rises
// linearly from -1 at x = 0 towards 1 and wraps every 2*pi.
func Sawtooth(x float64) float64 {
	m := math.Mod(x, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m/math.Pi - 1
}

// NormalizeInPlace scales data so its peak absolute value is 1.
// A silent (all-zero) or empty signal is left unchanged.
func NormalizeInPlace(data []float64) {
	if len(data) == 0 {
		return
	}

	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 || !core.IsFinite(maxAbs) {
		return
	}

	vecmath.ScaleBlockInPlace(data, 1/maxAbs)
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := vecmath.MaxAbs(data)

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
