// Package interval provides closed intervals with exact rational bounds.
//
// Bounds are held as big.Rat values so that interval arithmetic carries no
// rounding slack: two intervals derived by algebraically equal but
// syntactically different routes compare equal by value. Every finite
// float64 is itself a rational, so float bounds convert losslessly.
package interval

import (
	"fmt"
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the class of interval errors.
var Error = errs.Class("interval")

// ErrInvalidInterval indicates bounds that are not strictly ordered (or are
// not finite numbers).
var ErrInvalidInterval = Error.New("invalid interval")

// Interval is a closed interval [lower, upper] with lower < upper.
//
// The invariant is established once at construction and never re-derived;
// downstream code trusts the type. The zero value is not a valid interval:
// use Make or FromFloats.
type Interval struct {
	lower *big.Rat
	upper *big.Rat
}

// Make returns the interval [lower, upper]. It fails with
// ErrInvalidInterval unless lower < upper. The bounds are copied.
func Make(lower, upper *big.Rat) (i Interval, err error) {
	if lower == nil || upper == nil {
		return i, oops.Trace(ErrInvalidInterval)
	}
	if lower.Cmp(upper) >= 0 {
		return i, oops.Trace(ErrInvalidInterval)
	}

	i.lower = new(big.Rat).Set(lower)
	i.upper = new(big.Rat).Set(upper)

	return i, nil
}

// FromFloats returns the interval [lower, upper]. The conversion is exact.
// Non-finite bounds fail with ErrInvalidInterval.
func FromFloats(lower, upper float64) (i Interval, err error) {
	lo := new(big.Rat).SetFloat64(lower)
	hi := new(big.Rat).SetFloat64(upper)

	if lo == nil || hi == nil {
		return i, oops.Trace(ErrInvalidInterval)
	}

	return Make(lo, hi)
}

// Add returns the interval of pairwise bound sums. It is total for valid
// inputs: the sum of two strict inequalities is itself strict.
func Add(a, b Interval) Interval {
	return Interval{
		lower: new(big.Rat).Add(a.lower, b.lower),
		upper: new(big.Rat).Add(a.upper, b.upper),
	}
}

// Equal reports whether the bound values are pairwise equal. Nothing beyond
// the bounds participates in equality: however the ordering obligation was
// discharged at construction, intervals with the same numbers are the same
// interval.
func (i Interval) Equal(o Interval) bool {
	return i.lower.Cmp(o.lower) == 0 && i.upper.Cmp(o.upper) == 0
}

// Lower returns a copy of the lower bound.
func (i Interval) Lower() *big.Rat {
	return new(big.Rat).Set(i.lower)
}

// Upper returns a copy of the upper bound.
func (i Interval) Upper() *big.Rat {
	return new(big.Rat).Set(i.upper)
}

// LowerFloat returns the lower bound as the nearest float64.
func (i Interval) LowerFloat() float64 {
	f, _ := i.lower.Float64()

	return f
}

// UpperFloat returns the upper bound as the nearest float64.
func (i Interval) UpperFloat() float64 {
	f, _ := i.upper.Float64()

	return f
}

// Width returns upper - lower. Always positive.
func (i Interval) Width() *big.Rat {
	return new(big.Rat).Sub(i.upper, i.lower)
}

// WidthFloat returns the width as the nearest float64.
func (i Interval) WidthFloat() float64 {
	f, _ := i.Width().Float64()

	return f
}

// Mid returns the midpoint (lower + upper) / 2.
func (i Interval) Mid() *big.Rat {
	m := new(big.Rat).Add(i.lower, i.upper)

	return m.Quo(m, big.NewRat(2, 1))
}

// Contains reports whether x lies in the closed interval. Non-finite x is
// never contained.
func (i Interval) Contains(x float64) bool {
	r := new(big.Rat).SetFloat64(x)
	if r == nil {
		return false
	}

	return i.lower.Cmp(r) <= 0 && r.Cmp(i.upper) <= 0
}

// String implements fmt.Stringer.
func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s]", i.lower.RatString(), i.upper.RatString())
}
