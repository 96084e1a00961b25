//go:build headless

package playback

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/cwbudde/monosynth/synth"
)

// Player discards notes in headless builds. It keeps the same contract as
// the device-backed player so callers need no build tags.
type Player struct {
	sampleRate int
	played     atomic.Int64
}

// New returns a headless player.
func New(sampleRate int) (*Player, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("playback sample rate must be > 0: %d", sampleRate)
	}
	return &Player{sampleRate: sampleRate}, nil
}

// Play validates note and returns immediately.
func (p *Player) Play(ctx context.Context, note synth.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkRate(note, p.sampleRate); err != nil {
		return err
	}
	p.played.Add(int64(len(note.Samples)))
	return nil
}

// Consume implements synth.Sink.
func (p *Player) Consume(note synth.Note) error {
	return p.Play(context.Background(), note)
}

// Played returns the number of samples consumed so far.
func (p *Player) Played() int64 {
	return p.played.Load()
}

var _ synth.Sink = (*Player)(nil)
