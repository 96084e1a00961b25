package core_test

import (
	"fmt"

	"github.com/cwbudde/monosynth/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(48000))

	fmt.Printf("sampleRate=%.0f nyquist=%.0f\n", cfg.SampleRate, cfg.Nyquist())

	// Output:
	// sampleRate=48000 nyquist=24000
}

func ExampleSampleCount() {
	fmt.Println(core.SampleCount(0.5, 44100))

	// Output:
	// 22050
}
