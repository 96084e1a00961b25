package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// String returns the lower-case window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// cosineTerms holds the generalized-cosine coefficients a_k of
// w(x) = sum_k a_k cos(2*pi*k*x) for x in [0, 1].
var cosineTerms = map[Type][]float64{
	TypeRectangular: {1},
	TypeHann:        {0.5, -0.5},
	TypeHamming:     {0.54, -0.46},
	TypeBlackman:    {0.42, -0.5, 0.08},
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic (DFT-even) form, which drops the
// repeated end point of the symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns length coefficients of window t. Unknown types yield a
// rectangular window; a non-positive length yields nil.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	terms, ok := cosineTerms[t]
	if !ok {
		terms = cosineTerms[TypeRectangular]
	}

	span := float64(length - 1)
	if cfg.periodic {
		span = float64(length)
	}

	out := make([]float64, length)
	for n := range out {
		x := 0.0
		if span > 0 {
			x = float64(n) / span
		}
		out[n] = sumCosines(terms, 2*math.Pi*x)
	}
	return out
}

// Apply tapers buf in place with window t.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}
	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}
	return Generate(TypeHann, size, opts...), nil
}

// CoherentGain returns the mean coefficient, the amplitude scaling a window
// applies to a bin-centred sinusoid.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}
	sum, _ := sums(coeffs)
	return sum / float64(len(coeffs)), nil
}

// EquivalentNoiseBandwidth returns the noise bandwidth of coeffs in bins.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}
	sum, sumSq := sums(coeffs)
	if sum == 0 {
		return 0, errZeroCoherentGain
	}
	return float64(len(coeffs)) * sumSq / (sum * sum), nil
}

// ApplyCoefficientsInPlace multiplies samples by coeffs element-wise.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}
	vecmath.MulBlockInPlace(samples, coeffs)
	return nil
}

func sumCosines(terms []float64, phase float64) float64 {
	v := 0.0
	for k, a := range terms {
		v += a * math.Cos(float64(k)*phase)
	}
	return v
}

func sums(coeffs []float64) (sum, sumSq float64) {
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	return sum, sumSq
}
