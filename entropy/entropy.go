package entropy

import (
	"math"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/calebcase/ensemble/density"
)

// Error is the class of entropy errors.
var Error = errs.Class("entropy")

// ErrUnknownShape indicates a density with no closed-form entropy.
var ErrUnknownShape = Error.New("unknown density shape")

// Functional evaluates the differential entropy of a density. See the
// package documentation for the contracts implementations must satisfy.
type Functional interface {
	Entropy(d density.Density) (float64, error)
}

// Default is the functional used when callers do not inject one.
var Default Functional = Closed{}

// Closed evaluates entropy by closed form.
//
// A uniform over width w has differential entropy ln(w). The sum of two
// uniforms with widths a <= b is trapezoidal with entropy ln(b) + a/(2b),
// which reduces to the triangular ln(a) + 1/2 when a = b. Densities of any
// other shape fail with ErrUnknownShape.
type Closed struct{}

// Entropy implements Functional.
func (Closed) Entropy(d density.Density) (float64, error) {
	switch d := d.(type) {
	case density.Uniform:
		s := d.Support()
		u := distuv.Uniform{
			Min: s.LowerFloat(),
			Max: s.UpperFloat(),
		}

		return u.Entropy(), nil
	case density.UniformSum:
		wa, wb := d.Widths()
		a, _ := wa.Float64()
		b, _ := wb.Float64()

		return math.Log(b) + a/(2*b), nil
	}

	return 0, oops.Trace(ErrUnknownShape)
}

// DefaultPoints is the quadrature order Numeric uses when none is set.
const DefaultPoints = 501

// Numeric evaluates -∫ p·ln p over the declared support by Gauss-Legendre
// quadrature. It handles any density whose At is cheap to evaluate.
type Numeric struct {
	// Points is the quadrature order. Zero means DefaultPoints.
	Points int
}

// Entropy implements Functional.
func (n Numeric) Entropy(d density.Density) (float64, error) {
	points := n.Points
	if points <= 0 {
		points = DefaultPoints
	}

	s := d.Support()

	h := quad.Fixed(func(x float64) float64 {
		p := d.At(x)
		if p <= 0 {
			return 0
		}

		return -p * math.Log(p)
	}, s.LowerFloat(), s.UpperFloat(), points, nil, 0)

	return h, nil
}
