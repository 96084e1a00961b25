package playback

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cwbudde/monosynth/dsp/core"
	"github.com/cwbudde/monosynth/synth"
)

// bytesPerSample is the width of one float32 LE mono frame.
const bytesPerSample = 4

// float32LE converts samples to little-endian float32 PCM, clipping to
// [-1, 1].
func float32LE(samples []float64) []byte {
	buf := make([]byte, len(samples)*bytesPerSample)
	for i, v := range samples {
		bits := math.Float32bits(float32(core.Clamp(v, -1, 1)))
		binary.LittleEndian.PutUint32(buf[i*bytesPerSample:], bits)
	}
	return buf
}

func checkRate(note synth.Note, sampleRate int) error {
	if int(note.SampleRate+0.5) != sampleRate {
		return fmt.Errorf("playback note sample rate %.0f does not match device rate %d",
			note.SampleRate, sampleRate)
	}
	return nil
}
