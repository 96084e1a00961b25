package synth

import (
	"fmt"
	"io"
	"log"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/monosynth/dsp/core"
	"github.com/cwbudde/monosynth/dsp/filter/lowpass"
	"github.com/cwbudde/monosynth/dsp/lfo"
	"github.com/cwbudde/monosynth/dsp/signal"
)

// Option configures an Engine.
type Option func(*Engine)

// WithConfig uses cfg instead of a default Config. The engine renders at
// cfg's sample rate.
func WithConfig(cfg *Config) Option {
	return func(e *Engine) {
		if cfg != nil {
			e.cfg = cfg
		}
	}
}

// WithSink hands every rendered note to s.
func WithSink(s Sink) Option {
	return func(e *Engine) {
		e.sink = s
	}
}

// WithLogger sets the logger for per-note diagnostics. The default logger
// discards output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClockOptions passes options to the engine's LFO clock.
func WithClockOptions(opts ...lfo.Option) Option {
	return func(e *Engine) {
		e.clockOpts = append(e.clockOpts, opts...)
	}
}

// Engine renders notes through the oscillator, lowpass and envelope chain.
// GenerateNote may be called from several goroutines at once; every call
// works on freshly allocated buffers.
type Engine struct {
	cfg       *Config
	sink      Sink
	logger    *log.Logger
	clockOpts []lfo.Option

	osc    *signal.Generator
	filter *lowpass.Filter
	clock  *lfo.Clock
}

// New creates an engine. The LFO clock is created stopped.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if e.cfg == nil {
		e.cfg = NewConfig()
	}

	rate := e.cfg.SampleRate()

	filter, err := lowpass.New(rate)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	e.osc = signal.NewGenerator(core.WithSampleRate(rate))
	e.filter = filter
	e.clock = lfo.NewClock(e.cfg, e.clockOpts...)
	return e, nil
}

// Config returns the live parameter set.
func (e *Engine) Config() *Config {
	return e.cfg
}

// GenerateNote renders req and hands the result to the sink, if any.
//
// When the sink fails, the rendered note is returned together with the
// wrapped sink error.
func (e *Engine) GenerateNote(req NoteRequest) (Note, error) {
	if err := req.Validate(); err != nil {
		return Note{}, err
	}

	s := e.cfg.Snapshot()

	cutoff := req.Cutoff
	var lfoValue float64
	if s.LFOEnabled {
		lfoValue = e.clock.Value()
		cutoff = lfoValue * lowpass.MaxCutoffHz
	}
	cutoff = e.filter.ClampCutoff(cutoff)

	raw, err := e.osc.Sawtooth(req.Frequency, req.Duration)
	if err != nil {
		return Note{}, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	filtered := e.filter.Apply(raw, cutoff)
	env := s.Envelope.Generate(req.Duration, s.SampleRate)

	out, err := applyEnvelope(filtered, env)
	if err != nil {
		return Note{}, err
	}

	note := Note{
		Samples:         out,
		SampleRate:      s.SampleRate,
		EffectiveCutoff: cutoff,
		LFOValue:        lfoValue,
		Request:         req,
	}

	e.logger.Printf("synth: rendered %.2f Hz for %.3f s (%d samples) at cutoff %.1f Hz",
		req.Frequency, req.Duration, len(out), cutoff)

	if e.sink != nil {
		if err := e.sink.Consume(note); err != nil {
			return note, fmt.Errorf("synth: sink: %w", err)
		}
	}
	return note, nil
}

// StartLFO starts the LFO clock and seeds its value so the next note
// already sees a current sweep position. It reports false when the clock was
// already running.
func (e *Engine) StartLFO() bool {
	started := e.clock.Start()
	if started {
		e.clock.Update()
		e.logger.Printf("synth: lfo started at %.2f Hz", e.cfg.LFORate())
	}
	return started
}

// StopLFO stops the LFO clock and waits for its goroutine to exit.
func (e *Engine) StopLFO() error {
	if err := e.clock.Stop(); err != nil {
		return fmt.Errorf("synth: stop lfo: %w", err)
	}
	return nil
}

// LFORunning reports whether the LFO clock is running.
func (e *Engine) LFORunning() bool {
	return e.clock.Running()
}

// LFOValue returns the latest LFO value in [0, 1].
func (e *Engine) LFOValue() float64 {
	return e.clock.Value()
}

// Close stops the LFO clock.
func (e *Engine) Close() error {
	return e.StopLFO()
}

// applyEnvelope multiplies a filtered signal by its envelope into a new
// buffer.
func applyEnvelope(filtered, env []float64) ([]float64, error) {
	if len(filtered) != len(env) {
		return nil, fmt.Errorf("%w: signal has %d samples, envelope %d",
			ErrLengthMismatch, len(filtered), len(env))
	}

	out := make([]float64, len(env))
	if len(out) == 0 {
		return out, nil
	}
	vecmath.MulBlock(out, filtered, env)
	return out, nil
}
