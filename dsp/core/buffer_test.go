package core

import (
	"math"
	"testing"
)

func TestSampleCount(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		rate    float64
		want    int
	}{
		{name: "one second", seconds: 1, rate: 44100, want: 44100},
		{name: "half second", seconds: 0.5, rate: 44100, want: 22050},
		{name: "attack", seconds: 0.1, rate: 44100, want: 4410},
		{name: "rounds", seconds: 0.00001, rate: 44100, want: 0},
		{name: "rounds up", seconds: 0.0000114, rate: 44100, want: 1},
		{name: "zero", seconds: 0, rate: 44100, want: 0},
		{name: "negative", seconds: -1, rate: 44100, want: 0},
		{name: "nan", seconds: math.NaN(), rate: 44100, want: 0},
		{name: "inf", seconds: math.Inf(1), rate: 44100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SampleCount(tt.seconds, tt.rate); got != tt.want {
				t.Fatalf("SampleCount(%v, %v) = %d, want %d", tt.seconds, tt.rate, got, tt.want)
			}
		})
	}
}
