package lfo

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/monosynth/dsp/signal"
)

// DefaultTick is the update interval of a running clock.
const DefaultTick = 10 * time.Millisecond

// Source supplies the modulation settings a clock reads on every tick.
// Implementations must be safe for concurrent use.
type Source interface {
	LFOEnabled() bool
	LFORate() float64
}

// Option configures a Clock.
type Option func(*Clock)

// WithTick sets the update interval. Non-positive values are ignored.
func WithTick(d time.Duration) Option {
	return func(c *Clock) {
		if d > 0 {
			c.tick = d
		}
	}
}

// WithNow replaces the wall-clock time source.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		if now != nil {
			c.now = now
		}
	}
}

// Clock is a free-running sawtooth LFO. While started, a background
// goroutine recomputes the value from the wall clock once per tick; readers
// get the latest value without locking.
type Clock struct {
	src  Source
	tick time.Duration
	now  func() time.Time

	value atomic.Uint64 // math.Float64bits of the current value

	lifecycle sync.Mutex // serializes Start and Stop, held across the join

	mu     sync.Mutex
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewClock creates a stopped clock reading its settings from src.
func NewClock(src Source, opts ...Option) *Clock {
	c := &Clock{
		src:  src,
		tick: DefaultTick,
		now:  time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Start launches the update loop. It returns false, and does nothing, when
// the loop is already running. A Start that races a Stop waits for the old
// loop to exit before launching a new one.
func (c *Clock) Start() bool {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.run(ctx)
	})

	c.cancel = cancel
	c.group = g
	return true
}

// Stop signals the update loop to exit and waits until it has. Concurrent
// callers all return only after the loop is gone. Stopping a clock that is
// not running is a no-op.
func (c *Clock) Stop() error {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	c.mu.Lock()
	cancel, g := c.cancel, c.group
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()
	err := g.Wait()

	c.mu.Lock()
	c.cancel, c.group = nil, nil
	c.mu.Unlock()
	return err
}

// Running reports whether the update loop is active. It stays true until a
// Stop has joined the loop.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

// Value returns the most recently computed value in [0, 1].
func (c *Clock) Value() float64 {
	return math.Float64frombits(c.value.Load())
}

// Update performs one tick synchronously. It reports whether the value was
// recomputed; a disabled LFO or a non-positive rate leaves it unchanged.
func (c *Clock) Update() bool {
	if c.src == nil || !c.src.LFOEnabled() {
		return false
	}

	v, ok := ValueAt(c.now(), c.src.LFORate())
	if !ok {
		return false
	}

	c.value.Store(math.Float64bits(v))
	return true
}

func (c *Clock) run(ctx context.Context) error {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.Update()
		}
	}
}

// ValueAt evaluates the LFO at wall-clock time now for rateHz. The phase
// is the time modulo one LFO period, and the sawtooth is mapped from [-1, 1)
// to [0, 1). It returns false for rates that are not positive and finite.
func ValueAt(now time.Time, rateHz float64) (float64, bool) {
	if !(rateHz > 0) || math.IsInf(rateHz, 0) {
		return 0, false
	}

	secs := float64(now.Unix()) + float64(now.Nanosecond())/1e9
	t := math.Mod(secs, 1/rateHz)
	return 0.5 * (1 + signal.Sawtooth(2*math.Pi*rateHz*t)), true
}
