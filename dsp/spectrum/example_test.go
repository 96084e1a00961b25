package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/monosynth/dsp/spectrum"
)

func ExampleAnalyze() {
	const sr = 8000.0
	in := make([]float64, 1024)
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * 1000 * float64(i) / sr)
	}

	a, err := spectrum.Analyze(in, sr)
	if err != nil {
		panic(err)
	}
	fmt.Printf("fft=%d peak=%.0f Hz\n", a.FFTSize, a.PeakHz)
	// Output: fft=1024 peak=1000 Hz
}
