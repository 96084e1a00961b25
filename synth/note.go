package synth

import (
	"fmt"
	"math"
)

// NoteRequest describes one note to render.
type NoteRequest struct {
	// Frequency is the oscillator pitch in Hz.
	Frequency float64
	// Duration is the note length in seconds, release included.
	Duration float64
	// Cutoff is the lowpass cutoff in Hz. It is clamped into the filter
	// range and ignored while the LFO is enabled.
	Cutoff float64
}

// Validate reports requests the engine rejects. Errors wrap
// ErrInvalidParameter.
func (r NoteRequest) Validate() error {
	if !(r.Frequency > 0) || math.IsInf(r.Frequency, 0) {
		return fmt.Errorf("%w: frequency must be > 0 and finite: %f", ErrInvalidParameter, r.Frequency)
	}
	if !(r.Duration > 0) || math.IsInf(r.Duration, 0) {
		return fmt.Errorf("%w: duration must be > 0 and finite: %f", ErrInvalidParameter, r.Duration)
	}
	if math.IsNaN(r.Cutoff) || math.IsInf(r.Cutoff, 0) {
		return fmt.Errorf("%w: cutoff must be finite: %f", ErrInvalidParameter, r.Cutoff)
	}
	return nil
}

// Note is a rendered note, ready to be written or played.
type Note struct {
	Samples    []float64
	SampleRate float64
	// EffectiveCutoff is the cutoff the filter was designed at, after LFO
	// mapping and clamping.
	EffectiveCutoff float64
	// LFOValue is the LFO value sampled for this note, or 0 when the LFO
	// was disabled.
	LFOValue float64
	Request  NoteRequest
}

// Duration returns the rendered length in seconds.
func (n Note) Duration() float64 {
	if n.SampleRate <= 0 {
		return 0
	}
	return float64(len(n.Samples)) / n.SampleRate
}

// Sink receives every note the engine renders.
type Sink interface {
	Consume(note Note) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(note Note) error

// Consume calls f(note).
func (f SinkFunc) Consume(note Note) error {
	return f(note)
}

// MultiSink hands a note to every sink in order and stops at the first
// error.
type MultiSink []Sink

// Consume implements Sink.
func (m MultiSink) Consume(note Note) error {
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Consume(note); err != nil {
			return err
		}
	}
	return nil
}
