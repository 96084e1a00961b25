package synth

import (
	"sync"

	"github.com/cwbudde/monosynth/dsp/core"
	"github.com/cwbudde/monosynth/dsp/envelope"
)

// DefaultLFORate is the LFO rate of a new Config in Hz.
const DefaultLFORate = 1.0

// Settings is a point-in-time copy of a Config.
type Settings struct {
	SampleRate float64
	LFOEnabled bool
	LFORate    float64
	Envelope   envelope.ADSR
}

// Config holds the synth parameters that may change while notes are being
// generated. All methods are safe for concurrent use.
//
// The sample rate is fixed at construction. Config implements lfo.Source.
type Config struct {
	sampleRate float64

	mu         sync.RWMutex
	lfoEnabled bool
	lfoRate    float64
	env        envelope.ADSR
}

// NewConfig returns a Config with the LFO off, DefaultLFORate and the
// default envelope.
func NewConfig(opts ...core.ProcessorOption) *Config {
	pc := core.ApplyProcessorOptions(opts...)
	return &Config{
		sampleRate: pc.SampleRate,
		lfoRate:    DefaultLFORate,
		env:        envelope.Default(),
	}
}

// SampleRate returns the fixed sample rate in Hz.
func (c *Config) SampleRate() float64 {
	return c.sampleRate
}

// SetLFOEnabled switches the LFO cutoff sweep on or off.
func (c *Config) SetLFOEnabled(enabled bool) {
	c.mu.Lock()
	c.lfoEnabled = enabled
	c.mu.Unlock()
}

// LFOEnabled reports whether the LFO drives the cutoff.
func (c *Config) LFOEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lfoEnabled
}

// SetLFORate sets the LFO rate in Hz. Negative and NaN rates are stored as
// 0, which pauses the sweep.
func (c *Config) SetLFORate(rateHz float64) {
	if !(rateHz > 0) {
		rateHz = 0
	}
	c.mu.Lock()
	c.lfoRate = rateHz
	c.mu.Unlock()
}

// LFORate returns the LFO rate in Hz.
func (c *Config) LFORate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lfoRate
}

// SetEnvelope replaces the ADSR parameters. Times are clamped to >= 0 and
// the sustain level to [0, 1].
func (c *Config) SetEnvelope(env envelope.ADSR) {
	env = env.Clamped()
	c.mu.Lock()
	c.env = env
	c.mu.Unlock()
}

// Envelope returns the current ADSR parameters.
func (c *Config) Envelope() envelope.ADSR {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.env
}

// SetAttack sets the attack time in seconds.
func (c *Config) SetAttack(sec float64) {
	c.update(func(e *envelope.ADSR) { e.Attack = sec })
}

// SetDecay sets the decay time in seconds.
func (c *Config) SetDecay(sec float64) {
	c.update(func(e *envelope.ADSR) { e.Decay = sec })
}

// SetSustain sets the sustain level.
func (c *Config) SetSustain(level float64) {
	c.update(func(e *envelope.ADSR) { e.Sustain = level })
}

// SetRelease sets the release time in seconds.
func (c *Config) SetRelease(sec float64) {
	c.update(func(e *envelope.ADSR) { e.Release = sec })
}

// Snapshot returns a consistent copy of all parameters.
func (c *Config) Snapshot() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Settings{
		SampleRate: c.sampleRate,
		LFOEnabled: c.lfoEnabled,
		LFORate:    c.lfoRate,
		Envelope:   c.env,
	}
}

func (c *Config) update(fn func(*envelope.ADSR)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	env := c.env
	fn(&env)
	c.env = env.Clamped()
}

