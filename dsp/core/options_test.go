package core

import (
	"math"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
	if cfg.Nyquist() != 48000 {
		t.Fatalf("nyquist = %v, want 48000", cfg.Nyquist())
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithSampleRate(-1), WithSampleRate(math.Inf(1)), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
	if def.SampleRate != 44100 {
		t.Fatalf("default sample rate = %v, want 44100", def.SampleRate)
	}
}

func TestNaNSampleRateIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(math.NaN()))
	if cfg.SampleRate != DefaultSampleRate {
		t.Fatalf("sample rate = %v, want %v", cfg.SampleRate, DefaultSampleRate)
	}
}
