package pass

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/monosynth/dsp/filter/biquad"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func mag(c biquad.Coefficients, freq, sr float64) float64 {
	return cmplx.Abs(c.Response(freq, sr))
}

func TestButterworthFirstOrderLP_ReferenceCoefficients(t *testing.T) {
	// Reference values from the standard digital Butterworth design
	// (bilinear transform, order 1, normalized cutoff freq/(sr/2)).
	tests := []struct {
		freq, sr float64
		b, a1    float64
	}{
		{freq: 2000, sr: 44100, b: 0.1254519934497456, a1: -0.7490960131005089},
		{freq: 1000, sr: 48000, b: 0.061511768503621556, a1: -0.8769764629927568},
		{freq: 5000, sr: 44100, b: 0.2711682917536427, a1: -0.45766341649271447},
	}

	for _, tt := range tests {
		c := ButterworthFirstOrderLP(tt.freq, tt.sr)
		if !almostEqual(c.B0, tt.b, 1e-14) || !almostEqual(c.B1, tt.b, 1e-14) {
			t.Fatalf("%v Hz: b = [%v %v], want %v", tt.freq, c.B0, c.B1, tt.b)
		}
		if !almostEqual(c.A1, tt.a1, 1e-14) {
			t.Fatalf("%v Hz: a1 = %v, want %v", tt.freq, c.A1, tt.a1)
		}
		if c.B2 != 0 || c.A2 != 0 {
			t.Fatalf("%v Hz: second-order terms must be zero: %#v", tt.freq, c)
		}
	}
}

func TestButterworthFirstOrderLP_Minus3dBAtCutoff(t *testing.T) {
	for _, sr := range []float64{22050, 44100, 48000, 96000} {
		for _, fc := range []float64{1, 100, 1000, 5000} {
			c := ButterworthFirstOrderLP(fc, sr)
			if got := mag(c, fc, sr); !almostEqual(got, 1/math.Sqrt2, tol) {
				t.Fatalf("sr=%v fc=%v: |H(fc)| = %v, want %v", sr, fc, got, 1/math.Sqrt2)
			}
			if got := mag(c, 0, sr); !almostEqual(got, 1, tol) {
				t.Fatalf("sr=%v fc=%v: DC gain = %v, want 1", sr, fc, got)
			}
			if !c.Stable() {
				t.Fatalf("sr=%v fc=%v: unstable section %#v", sr, fc, c)
			}
		}
	}
}

func TestButterworthFirstOrderLP_RollOff(t *testing.T) {
	const sr = 96000.0
	c := ButterworthFirstOrderLP(500, sr)
	// One octave and a decade well below Nyquist: about 6 dB/octave.
	d1 := c.MagnitudeDB(4000, sr)
	d2 := c.MagnitudeDB(8000, sr)
	if slope := d1 - d2; slope < 5 || slope > 6.5 {
		t.Fatalf("octave slope = %v dB, want ~6", slope)
	}
}

func TestButterworthFirstOrderLP_InvalidInputs(t *testing.T) {
	for _, tc := range []struct{ freq, sr float64 }{
		{0, 48000}, {-10, 48000}, {24000, 48000}, {30000, 48000}, {1000, 0}, {math.NaN(), 48000},
	} {
		if c := ButterworthFirstOrderLP(tc.freq, tc.sr); c != (biquad.Coefficients{}) {
			t.Fatalf("freq=%v sr=%v: expected zero coefficients, got %#v", tc.freq, tc.sr, c)
		}
	}
}

func TestBilinearK_ValidAndInvalid(t *testing.T) {
	k, ok := bilinearK(1000, 48000)
	if !ok || k <= 0 {
		t.Fatalf("expected valid k>0, got k=%v ok=%v", k, ok)
	}
	if _, ok := bilinearK(0, 48000); ok {
		t.Fatal("expected invalid for zero frequency")
	}
	if _, ok := bilinearK(24000, 48000); ok {
		t.Fatal("expected invalid at Nyquist")
	}
}
