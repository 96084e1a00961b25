package biquad

import "math/cmplx"

// Poles returns the roots of z^2 + A1 z + A2. A first-order section has its
// second pole at the origin.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Stable reports whether both poles are strictly inside the unit circle.
func (c *Coefficients) Stable() bool {
	p := c.Poles()
	return cmplx.Abs(p[0]) < 1 && cmplx.Abs(p[1]) < 1
}

// quadraticRoots solves a x^2 + b x + c = 0 for a != 0.
func quadraticRoots(a, b, c float64) [2]complex128 {
	sq := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	mb := complex(-b, 0)
	twoA := complex(2*a, 0)
	return [2]complex128{(mb + sq) / twoA, (mb - sq) / twoA}
}
