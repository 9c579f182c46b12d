package density

import (
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/calebcase/ensemble/interval"
)

// Convolve returns the density of the sum of two independent variables with
// densities a and b. The result's declared support is the bound sum of the
// input supports.
//
// Two uniforms convolve to an exact UniformSum. Anything else falls back to
// numeric evaluation, which changes how values are computed but never what
// support is declared.
func Convolve(a, b Density) Density {
	sum := interval.Add(a.Support(), b.Support())

	ua, aok := a.(Uniform)
	ub, bok := b.(Uniform)

	if aok && bok {
		wa := ua.support.Width()
		wb := ub.support.Width()

		if wa.Cmp(wb) > 0 {
			wa, wb = wb, wa
		}

		return UniformSum{
			support: sum,
			wa:      wa,
			wb:      wb,
		}
	}

	return convolution{
		a:       a,
		b:       b,
		support: sum,
	}
}

// quadPoints is the Gauss-Legendre order for the convolution integral.
const quadPoints = 129

// convolution evaluates ∫ a(t)·b(x-t) dt numerically over a's support.
type convolution struct {
	a, b    Density
	support interval.Interval
}

// At implements Density.
func (c convolution) At(x float64) float64 {
	s := c.a.Support()

	return quad.Fixed(func(t float64) float64 {
		return c.a.At(t) * c.b.At(x-t)
	}, s.LowerFloat(), s.UpperFloat(), quadPoints, nil, 0)
}

// Support implements Density.
func (c convolution) Support() interval.Interval {
	return c.support
}
