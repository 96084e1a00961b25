package envelope

import (
	"fmt"
	"math"

	"github.com/cwbudde/monosynth/dsp/core"
)

// Default ADSR parameters.
const (
	DefaultAttack  = 0.1
	DefaultDecay   = 0.1
	DefaultSustain = 0.7
	DefaultRelease = 0.2
)

// Stage identifies one segment of an ADSR envelope.
type Stage int

const (
	// StageAttack ramps from 0 to 1.
	StageAttack Stage = iota
	// StageDecay ramps from 1 down to the sustain level.
	StageDecay
	// StageSustain holds the sustain level.
	StageSustain
	// StageRelease ramps from the sustain level down to 0.
	StageRelease
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageAttack:
		return "attack"
	case StageDecay:
		return "decay"
	case StageSustain:
		return "sustain"
	case StageRelease:
		return "release"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// ADSR holds attack, decay and release times in seconds and the sustain
// level in [0, 1].
type ADSR struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// Default returns the default envelope shape.
func Default() ADSR {
	return ADSR{
		Attack:  DefaultAttack,
		Decay:   DefaultDecay,
		Sustain: DefaultSustain,
		Release: DefaultRelease,
	}
}

// Clamped returns a copy with negative (or NaN) times set to 0 and the
// sustain level limited to [0, 1].
func (e ADSR) Clamped() ADSR {
	return ADSR{
		Attack:  nonNegative(e.Attack),
		Decay:   nonNegative(e.Decay),
		Sustain: clampLevel(e.Sustain),
		Release: nonNegative(e.Release),
	}
}

// Validate reports parameters that Clamped would have to change.
func (e ADSR) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"attack", e.Attack}, {"decay", e.Decay}, {"release", e.Release},
	} {
		if p.v < 0 || !core.IsFinite(p.v) {
			return fmt.Errorf("envelope %s must be >= 0 and finite: %f", p.name, p.v)
		}
	}
	if e.Sustain < 0 || e.Sustain > 1 || math.IsNaN(e.Sustain) {
		return fmt.Errorf("envelope sustain must be in [0, 1]: %f", e.Sustain)
	}
	return nil
}

// Stages holds the sample count of every envelope segment. Attack and decay
// are nominal lengths that Generate clips to Total; sustain and release
// always fit in what attack and decay leave.
type Stages struct {
	Attack  int
	Decay   int
	Sustain int
	Release int
	Total   int
}

// Stages computes the stage lengths for a note of durationSec.
//
// Every stage time is rounded to samples on its own. Sustain takes whatever
// the other three leave and is never negative; release then takes the
// remaining samples, so whenever the note outlasts attack and decay the
// release ends on the last sample. A note shorter than attack+decay+release
// has no sustain and a shortened release.
func (e ADSR) Stages(durationSec, sampleRate float64) Stages {
	c := e.Clamped()
	st := Stages{
		Attack: core.SampleCount(c.Attack, sampleRate),
		Decay:  core.SampleCount(c.Decay, sampleRate),
		Total:  core.SampleCount(durationSec, sampleRate),
	}

	release := core.SampleCount(c.Release, sampleRate)
	st.Sustain = max(0, st.Total-st.Attack-st.Decay-release)
	st.Release = max(0, st.Total-st.Attack-st.Decay-st.Sustain)
	return st
}

// Generate renders the amplitude envelope for a note of durationSec.
//
// The result has exactly round(durationSec*sampleRate) samples. Stages are
// written in order, each clipped to the space that remains.
func (e ADSR) Generate(durationSec, sampleRate float64) []float64 {
	c := e.Clamped()
	st := c.Stages(durationSec, sampleRate)
	out := make([]float64, st.Total)

	pos := 0
	pos += ramp(out[pos:], st.Attack, 0, 1)
	pos += ramp(out[pos:], st.Decay, 1, c.Sustain)
	pos += ramp(out[pos:], st.Sustain, c.Sustain, c.Sustain)
	ramp(out[pos:], st.Release, c.Sustain, 0)

	return out
}

// StageAt reports which stage sample index i of a note falls in, and false
// when i lies outside every written stage.
func (st Stages) StageAt(i int) (Stage, bool) {
	if i < 0 || i >= st.Total {
		return 0, false
	}
	bounds := [...]int{st.Attack, st.Decay, st.Sustain, st.Release}
	end := 0
	for s, n := range bounds {
		end += n
		if i < end {
			return Stage(s), true
		}
	}
	return 0, false
}

// ramp writes an endpoint-inclusive linear ramp of n samples from `from` to
// `to` into dst, clipped to len(dst). A single-sample ramp is just `to`. It
// returns the number of samples written.
func ramp(dst []float64, n int, from, to float64) int {
	if n < len(dst) {
		dst = dst[:n]
	}
	if len(dst) == 0 {
		return 0
	}

	if n == 1 {
		dst[0] = to
		return 1
	}

	step := (to - from) / float64(n-1)
	for i := range dst {
		dst[i] = from + step*float64(i)
	}
	if len(dst) == n {
		dst[n-1] = to
	}
	return len(dst)
}

func nonNegative(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return v
}

func clampLevel(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return core.Clamp(v, 0, 1)
}
