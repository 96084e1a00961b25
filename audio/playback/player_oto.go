//go:build !headless

package playback

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/monosynth/synth"
)

// pollInterval is how often Play checks whether the device has drained.
const pollInterval = 10 * time.Millisecond

// oto allows a single context per process.
var (
	sharedMu   sync.Mutex
	shared     *oto.Context
	sharedRate int
)

func sharedContext(sampleRate int) (*oto.Context, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared != nil {
		if sharedRate != sampleRate {
			return nil, fmt.Errorf("playback device already open at %d Hz, requested %d Hz",
				sharedRate, sampleRate)
		}
		return shared, nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}
	<-ready

	shared, sharedRate = ctx, sampleRate
	return ctx, nil
}

// Player plays rendered notes on the default audio device.
type Player struct {
	ctx        *oto.Context
	sampleRate int

	mu sync.Mutex // serializes notes
}

// New opens the audio device at sampleRate.
func New(sampleRate int) (*Player, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("playback sample rate must be > 0: %d", sampleRate)
	}

	ctx, err := sharedContext(sampleRate)
	if err != nil {
		return nil, err
	}
	return &Player{ctx: ctx, sampleRate: sampleRate}, nil
}

// Play plays note and blocks until it has finished or ctx is done.
func (p *Player) Play(ctx context.Context, note synth.Note) error {
	if err := checkRate(note, p.sampleRate); err != nil {
		return err
	}
	if len(note.Samples) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	player := p.ctx.NewPlayer(bytes.NewReader(float32LE(note.Samples)))
	defer player.Close()

	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Consume implements synth.Sink by playing the note to completion.
func (p *Player) Consume(note synth.Note) error {
	return p.Play(context.Background(), note)
}

var _ synth.Sink = (*Player)(nil)
