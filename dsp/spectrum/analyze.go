package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/monosynth/dsp/core"
	"github.com/cwbudde/monosynth/dsp/window"
)

// maxFFTSize bounds the analysis frame; longer signals are analyzed over
// their first maxFFTSize samples.
const maxFFTSize = 1 << 16

// Option configures Analyze.
type Option func(*config)

type config struct {
	window window.Type
}

// WithWindow selects the analysis window. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// Analysis summarizes the spectrum of a rendered note.
type Analysis struct {
	FFTSize    int
	BinWidthHz float64
	Window     window.Type
	// PeakHz is the centre frequency of the strongest non-DC bin.
	PeakHz float64
	// CentroidHz is the magnitude-weighted mean frequency, a brightness
	// measure that follows the filter cutoff.
	CentroidHz float64
	// PeakLevel is the largest absolute sample value of the input.
	PeakLevel float64
	// PeakDB is PeakLevel in dB relative to full scale.
	PeakDB float64
	// NoiseBandwidthHz is the equivalent noise bandwidth of the analysis
	// window. It is 0 when the window has no coherent gain.
	NoiseBandwidthHz float64
}

// Analyze computes a windowed magnitude spectrum of samples and derives the
// dominant frequency and the spectral centroid.
func Analyze(samples []float64, sampleRate float64, opts ...Option) (Analysis, error) {
	if len(samples) < 2 {
		return Analysis{}, fmt.Errorf("spectrum analysis needs at least 2 samples: %d", len(samples))
	}
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return Analysis{}, fmt.Errorf("spectrum sample rate must be > 0 and finite: %f", sampleRate)
	}

	cfg := config{window: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := min(len(samples), maxFFTSize)
	size := nextPow2(n)

	coeffs := window.Generate(cfg.window, n)
	frame := make([]float64, n)
	copy(frame, samples[:n])
	if err := window.ApplyCoefficientsInPlace(frame, coeffs); err != nil {
		return Analysis{}, fmt.Errorf("spectrum window: %w", err)
	}

	in := make([]complex128, size)
	for i, v := range frame {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Analysis{}, fmt.Errorf("spectrum plan: %w", err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return Analysis{}, fmt.Errorf("spectrum forward transform: %w", err)
	}

	mags := Magnitude(out[:size/2+1])
	binHz := sampleRate / float64(size)

	peak := vecmath.MaxAbs(samples)
	res := Analysis{
		FFTSize:    size,
		BinWidthHz: binHz,
		Window:     cfg.window,
		PeakLevel:  peak,
		PeakDB:     core.LinearToDB(peak),
	}
	if enbw, err := window.EquivalentNoiseBandwidth(coeffs); err == nil {
		res.NoiseBandwidthHz = enbw * sampleRate / float64(n)
	}

	peakBin := 0
	var sum, weighted float64
	for k := 1; k < len(mags); k++ {
		m := mags[k]
		if m > mags[peakBin] || peakBin == 0 {
			peakBin = k
		}
		sum += m
		weighted += m * float64(k) * binHz
	}

	res.PeakHz = float64(peakBin) * binHz
	if sum > 0 {
		res.CentroidHz = weighted / sum
	} else {
		res.PeakHz = 0
	}
	return res, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
