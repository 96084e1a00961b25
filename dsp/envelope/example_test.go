package envelope_test

import (
	"fmt"

	"github.com/cwbudde/monosynth/dsp/envelope"
)

func ExampleADSR_Generate() {
	e := envelope.ADSR{Attack: 0.002, Decay: 0.002, Sustain: 0.5, Release: 0.002}

	// 10 samples at 1 kHz: 2 attack, 2 decay, 4 sustain, 2 release.
	fmt.Println(e.Generate(0.01, 1000))

	// Output:
	// [0 1 1 0.5 0.5 0.5 0.5 0.5 0.5 0]
}
