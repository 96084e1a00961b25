package window

import (
	"math"
	"testing"

	"github.com/cwbudde/monosynth/internal/testutil"
)

func TestGenerateShapes(t *testing.T) {
	tests := []struct {
		typ  Type
		want []float64
	}{
		{TypeRectangular, []float64{1, 1, 1, 1, 1}},
		{TypeHann, []float64{0, 0.5, 1, 0.5, 0}},
		{TypeHamming, []float64{0.08, 0.54, 1, 0.54, 0.08}},
		{TypeBlackman, []float64{0, 0.34, 1, 0.34, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			testutil.RequireSliceNearlyEqual(t, Generate(tc.typ, 5), tc.want, 1e-12)
		})
	}
}

func TestGeneratePeriodic(t *testing.T) {
	got := Generate(TypeHann, 4, WithPeriodic())
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.5, 1, 0.5}, 1e-12)
}

func TestGenerateDegenerate(t *testing.T) {
	if Generate(TypeHann, 0) != nil {
		t.Fatal("expected nil for zero length")
	}
	testutil.RequireSliceNearlyEqual(t, Generate(TypeHann, 1), []float64{0}, 0)

	if _, err := Hann(0); err == nil {
		t.Fatal("expected error for zero size")
	}
}

func TestApply(t *testing.T) {
	buf := []float64{2, 2, 2, 2, 2}
	Apply(TypeHann, buf)
	testutil.RequireSliceNearlyEqual(t, buf, []float64{0, 1, 2, 1, 0}, 1e-12)

	Apply(TypeHann, nil)
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	buf := []float64{1, 2, 3}
	if err := ApplyCoefficientsInPlace(buf, []float64{0.5, 0.5, 2}); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, buf, []float64{0.5, 1, 6}, 0)

	if err := ApplyCoefficientsInPlace(buf, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestGainAndENBW(t *testing.T) {
	w := Generate(TypeHann, 4096, WithPeriodic())

	cg, err := CoherentGain(w)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cg-0.5) > 1e-9 {
		t.Fatalf("CoherentGain = %f, want 0.5", cg)
	}

	enbw, err := EquivalentNoiseBandwidth(w)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(enbw-1.5) > 1e-6 {
		t.Fatalf("ENBW = %f, want 1.5", enbw)
	}

	if _, err := CoherentGain(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}
	if _, err := EquivalentNoiseBandwidth([]float64{1, -1}); err == nil {
		t.Fatal("expected error for zero coherent gain")
	}
}

func TestTypeString(t *testing.T) {
	if got := Type(99).String(); got != "Type(99)" {
		t.Fatalf("String() = %q", got)
	}
}
