package wavfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cwbudde/wav"

	"github.com/cwbudde/monosynth/dsp/core"
	"github.com/cwbudde/monosynth/synth"
)

const (
	// DefaultPath is where Sink writes when no path is set.
	DefaultPath = "generated-audios/test.wav"
	// DefaultBitDepth is the PCM sample width used when none is given.
	DefaultBitDepth = 16

	pcmFormat = 1
	mono      = 1
)

// Encode writes samples as a mono PCM WAV stream. Samples outside [-1, 1]
// are clipped. A bitDepth of 0 selects DefaultBitDepth.
func Encode(w io.WriteSeeker, samples []float64, sampleRate, bitDepth int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wav sample rate must be > 0: %d", sampleRate)
	}
	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("wav bit depth must be 8, 16, 24 or 32: %d", bitDepth)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, mono, pcmFormat)
	for i, v := range samples {
		if err := enc.WriteFrame(float32(core.Clamp(v, -1, 1))); err != nil {
			return fmt.Errorf("failed to write frame %d: %w", i, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to close encoder: %w", err)
	}
	return nil
}

// WriteFile encodes samples into the file at path, creating parent
// directories as needed.
func WriteFile(path string, samples []float64, sampleRate, bitDepth int) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close file: %w", cerr))
		}
	}()

	return Encode(file, samples, sampleRate, bitDepth)
}

// Sink writes every note it consumes to a WAV file, replacing the previous
// one.
type Sink struct {
	// Path is the output file. Empty means DefaultPath.
	Path string
	// BitDepth is the PCM sample width. Zero means DefaultBitDepth.
	BitDepth int
}

// Consume implements synth.Sink.
func (s Sink) Consume(note synth.Note) error {
	path := s.Path
	if path == "" {
		path = DefaultPath
	}
	return WriteFile(path, note.Samples, int(note.SampleRate+0.5), s.BitDepth)
}

var _ synth.Sink = Sink{}
