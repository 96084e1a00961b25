package biquad

// Coefficients is a normalized (a0 = 1) transfer function of at most second
// order:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
//
// One-pole designs leave B2 and A2 at zero.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Section runs Coefficients over a signal in transposed direct form II:
//
//	y  = B0*x + z1
//	z1 = B1*x - A1*y + z2
//	z2 = B2*x - A2*y
//
// A Section is not safe for concurrent use.
type Section struct {
	Coefficients

	z1, z2 float64
}

// NewSection returns a section with zero initial state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.z1
	s.z1 = s.B1*x - s.A1*y + s.z2
	s.z2 = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in place.
func (s *Section) ProcessBlock(buf []float64) {
	s.ProcessBlockTo(buf, buf)
}

// ProcessBlockTo filters src into dst, which must be at least as long as
// src. dst and src may be the same slice. It does not allocate.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	dst = dst[:len(src)]

	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	z1, z2 := s.z1, s.z2

	for i, x := range src {
		y := b0*x + z1
		z1 = b1*x - a1*y + z2
		z2 = b2*x - a2*y
		dst[i] = y
	}

	s.z1, s.z2 = z1, z2
}

// Reset returns the section to zero state.
func (s *Section) Reset() {
	s.z1, s.z2 = 0, 0
}

// State returns the delay registers [z1, z2].
func (s *Section) State() [2]float64 {
	return [2]float64{s.z1, s.z2}
}
