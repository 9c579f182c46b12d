package ensemble

import (
	"fmt"
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/ensemble/density"
	"github.com/calebcase/ensemble/interval"
)

// Error is the class of ensemble errors.
var Error = errs.Class("ensemble")

var (
	// ErrInvalidErrorRadius indicates a nonpositive error radius.
	ErrInvalidErrorRadius = Error.New("invalid error radius")

	// ErrSupportMismatch indicates a density whose declared support is
	// not the interval implied by (mu, delta).
	ErrSupportMismatch = Error.New("support mismatch")
)

// FloatEnsemble is a floating value modeled as (nominal value, error
// radius, density). The density's declared support is always exactly
// [mu-delta, mu+delta].
//
// The zero value is not a valid ensemble; use New, FromFloats, or Make.
// Values are immutable once built.
type FloatEnsemble struct {
	mu    *big.Rat
	delta *big.Rat
	d     density.Density

	// The implied interval, fixed at construction.
	iv interval.Interval
}

// Make returns the ensemble (mu, delta, d). It fails with
// ErrInvalidErrorRadius when delta <= 0 and with ErrSupportMismatch when
// d's declared support is not [mu-delta, mu+delta].
func Make(mu, delta *big.Rat, d density.Density) (f FloatEnsemble, err error) {
	if mu == nil {
		return f, Error.New("nil nominal value")
	}
	if delta == nil || delta.Sign() <= 0 {
		return f, oops.Trace(ErrInvalidErrorRadius)
	}

	iv, err := interval.Make(
		new(big.Rat).Sub(mu, delta),
		new(big.Rat).Add(mu, delta),
	)
	if err != nil {
		// Unreachable: mu-delta < mu+delta whenever delta > 0.
		return f, err
	}

	if !density.IsSupportedOn(d, iv) {
		return f, oops.Trace(ErrSupportMismatch)
	}

	return FloatEnsemble{
		mu:    new(big.Rat).Set(mu),
		delta: new(big.Rat).Set(delta),
		d:     d,
		iv:    iv,
	}, nil
}

// FromFloats is Make with float64 inputs, converted exactly. A non-finite
// delta fails with ErrInvalidErrorRadius.
func FromFloats(mu, delta float64, d density.Density) (f FloatEnsemble, err error) {
	mr := new(big.Rat).SetFloat64(mu)
	if mr == nil {
		return f, Error.New("non-finite nominal value")
	}

	dr := new(big.Rat).SetFloat64(delta)
	if dr == nil {
		return f, oops.Trace(ErrInvalidErrorRadius)
	}

	return Make(mr, dr, d)
}

// New builds an ensemble from raw input. The density is uniform by
// convention: a raw value carries no information beyond its interval.
func New(mu, delta float64) (f FloatEnsemble, err error) {
	mr := new(big.Rat).SetFloat64(mu)
	if mr == nil {
		return f, Error.New("non-finite nominal value")
	}

	dr := new(big.Rat).SetFloat64(delta)
	if dr == nil || dr.Sign() <= 0 {
		return f, oops.Trace(ErrInvalidErrorRadius)
	}

	iv, err := interval.Make(
		new(big.Rat).Sub(mr, dr),
		new(big.Rat).Add(mr, dr),
	)
	if err != nil {
		return f, err
	}

	return Make(mr, dr, density.NewUniform(iv))
}

// Mu returns a copy of the nominal value.
func (f FloatEnsemble) Mu() *big.Rat {
	return new(big.Rat).Set(f.mu)
}

// Delta returns a copy of the error radius.
func (f FloatEnsemble) Delta() *big.Rat {
	return new(big.Rat).Set(f.delta)
}

// MuFloat returns the nominal value as the nearest float64.
func (f FloatEnsemble) MuFloat() float64 {
	v, _ := f.mu.Float64()

	return v
}

// DeltaFloat returns the error radius as the nearest float64.
func (f FloatEnsemble) DeltaFloat() float64 {
	v, _ := f.delta.Float64()

	return v
}

// Density returns the ensemble's density.
func (f FloatEnsemble) Density() density.Density {
	return f.d
}

// Interval returns [mu-delta, mu+delta].
func (f FloatEnsemble) Interval() interval.Interval {
	return f.iv
}

// Equal reports whether the ensembles have equal mu, delta, and
// (structurally comparable) densities.
func (f FloatEnsemble) Equal(o FloatEnsemble) bool {
	return f.mu.Cmp(o.mu) == 0 &&
		f.delta.Cmp(o.delta) == 0 &&
		density.Equal(f.d, o.d)
}

// String implements fmt.Stringer.
func (f FloatEnsemble) String() string {
	return fmt.Sprintf("%s ± %s over %s",
		f.mu.RatString(),
		f.delta.RatString(),
		f.iv,
	)
}
