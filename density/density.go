package density

import (
	"math/big"

	"github.com/calebcase/ensemble/interval"
)

// Density is a probability density together with the interval it is
// declared to be supported on.
type Density interface {
	// At returns the density at x.
	At(x float64) float64

	// Support returns the declared support interval.
	Support() interval.Interval
}

// IsSupportedOn reports whether d declares i as its support.
func IsSupportedOn(d Density, i interval.Interval) bool {
	return d.Support().Equal(i)
}

// Equal reports structural equality for the shapes this package
// manufactures: uniforms by support, uniform sums by support and component
// widths. Opaque densities never compare equal.
func Equal(a, b Density) bool {
	switch a := a.(type) {
	case Uniform:
		b, ok := b.(Uniform)

		return ok && a.support.Equal(b.support)
	case UniformSum:
		b, ok := b.(UniformSum)

		return ok &&
			a.support.Equal(b.support) &&
			a.wa.Cmp(b.wa) == 0 &&
			a.wb.Cmp(b.wb) == 0
	}

	return false
}

// Uniform is the canonical density over an interval: constant inside the
// support, zero outside.
type Uniform struct {
	support interval.Interval
	height  float64
}

// NewUniform returns the uniform density over i. The interval must have
// come from the interval package's constructors.
func NewUniform(i interval.Interval) Uniform {
	return Uniform{
		support: i,
		height:  1 / i.WidthFloat(),
	}
}

// At implements Density.
func (u Uniform) At(x float64) float64 {
	if !u.support.Contains(x) {
		return 0
	}

	return u.height
}

// Support implements Density.
func (u Uniform) Support() interval.Interval {
	return u.support
}

// UniformSum is the density of the sum of two independent uniform
// variables: a trapezoid over the bound sum of the supports, degenerating
// to a triangle when the component widths match.
type UniformSum struct {
	support interval.Interval

	// Component widths, shorter first.
	wa, wb *big.Rat
}

// At implements Density.
func (s UniformSum) At(x float64) float64 {
	lo := s.support.LowerFloat()
	wa, _ := s.wa.Float64()
	wb, _ := s.wb.Float64()

	t := x - lo

	switch {
	case t < 0 || t > wa+wb:
		return 0
	case t < wa:
		return t / (wa * wb)
	case t <= wb:
		return 1 / wb
	default:
		return (wa + wb - t) / (wa * wb)
	}
}

// Support implements Density.
func (s UniformSum) Support() interval.Interval {
	return s.support
}

// Widths returns copies of the component widths, shorter first.
func (s UniformSum) Widths() (a, b *big.Rat) {
	return new(big.Rat).Set(s.wa), new(big.Rat).Set(s.wb)
}
