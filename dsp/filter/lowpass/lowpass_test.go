package lowpass

import (
	"math"
	"testing"

	"github.com/cwbudde/monosynth/dsp/filter/design/pass"
	"github.com/cwbudde/monosynth/internal/testutil"
)

func TestNewValidation(t *testing.T) {
	for _, sr := range []float64{0, -44100, math.NaN(), math.Inf(1)} {
		if _, err := New(sr); err == nil {
			t.Fatalf("New(%v) expected error", sr)
		}
	}
	f, err := New(44100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := f.SampleRate(); got != 44100 {
		t.Fatalf("SampleRate() = %v, want 44100", got)
	}
}

func TestClampCutoff(t *testing.T) {
	f, err := New(44100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		in, want float64
	}{
		{in: 0, want: 1},
		{in: -300, want: 1},
		{in: 0.5, want: 1},
		{in: 1, want: 1},
		{in: 2000, want: 2000},
		{in: 5000, want: 5000},
		{in: 5000.1, want: 5000},
		{in: 20000, want: 5000},
		{in: math.Inf(1), want: 5000},
		{in: math.NaN(), want: 1},
	}
	for _, tt := range tests {
		if got := f.ClampCutoff(tt.in); got != tt.want {
			t.Fatalf("ClampCutoff(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampCutoff_LowSampleRateStaysBelowNyquist(t *testing.T) {
	f, err := New(8000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	got := f.ClampCutoff(5000)
	if got >= 4000 {
		t.Fatalf("ClampCutoff(5000) = %v, want < Nyquist", got)
	}
	c := f.Design(5000)
	if c.B0 == 0 || !c.Stable() {
		t.Fatalf("expected valid stable design, got %#v", c)
	}
}

func TestDesignMatchesButterworth(t *testing.T) {
	f, err := New(44100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got, want := f.Design(2000), pass.ButterworthFirstOrderLP(2000, 44100); got != want {
		t.Fatalf("Design(2000) = %#v, want %#v", got, want)
	}
	if got, want := f.Design(9000), pass.ButterworthFirstOrderLP(5000, 44100); got != want {
		t.Fatalf("Design(9000) = %#v, want clamped %#v", got, want)
	}
}

func TestApplyZeroSignal(t *testing.T) {
	f, err := New(44100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	in := make([]float64, 1024)
	out := f.Apply(in, 1000)
	testutil.RequireSliceNearlyEqual(t, out, in, 0)
}

func TestApplyPreservesLengthAndInput(t *testing.T) {
	f, err := New(44100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	in := testutil.Sine(440, 44100, 1, 999)
	orig := append([]float64(nil), in...)

	out := f.Apply(in, 2000)
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	testutil.RequireFinite(t, out)
	testutil.RequireBitIdentical(t, in, orig)

	if empty := f.Apply(nil, 2000); len(empty) != 0 {
		t.Fatalf("Apply(nil) len = %d, want 0", len(empty))
	}
}

func TestApplyMatchesDifferenceEquation(t *testing.T) {
	// y[n] = b0*x[n] + b1*x[n-1] - a1*y[n-1], zero initial conditions.
	f, err := New(44100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c := f.Design(1500)
	in := testutil.Sine(3000, 44100, 0.8, 256)
	in[10] += 1

	want := make([]float64, len(in))
	var xPrev, yPrev float64
	for n, x := range in {
		y := c.B0*x + c.B1*xPrev - c.A1*yPrev
		want[n] = y
		xPrev, yPrev = x, y
	}

	testutil.RequireSliceNearlyEqual(t, f.Apply(in, 1500), want, 1e-12)
}

func TestApplyAttenuatesAboveCutoff(t *testing.T) {
	const sr = 44100.0
	f, err := New(sr)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	low := testutil.Sine(100, sr, 1, 8820)
	high := testutil.Sine(8000, sr, 1, 8820)

	// Skip the transient at the start.
	lowRMS := testutil.RMS(f.Apply(low, 500)[4410:])
	highRMS := testutil.RMS(f.Apply(high, 500)[4410:])

	if lowRMS < 0.6 {
		t.Fatalf("passband RMS = %v, want > 0.6", lowRMS)
	}
	if highRMS > 0.1 {
		t.Fatalf("stopband RMS = %v, want < 0.1", highRMS)
	}
}
