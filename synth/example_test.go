package synth_test

import (
	"fmt"

	"github.com/cwbudde/monosynth/synth"
)

func ExampleEngine_GenerateNote() {
	e, err := synth.New()
	if err != nil {
		panic(err)
	}
	defer e.Close()

	note, err := e.GenerateNote(synth.NoteRequest{Frequency: 440, Duration: 0.5, Cutoff: 9000})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d samples at %.0f Hz, cutoff %.0f Hz\n",
		len(note.Samples), note.SampleRate, note.EffectiveCutoff)
	// Output: 22050 samples at 44100 Hz, cutoff 5000 Hz
}
