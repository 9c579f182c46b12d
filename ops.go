package ensemble

import (
	"math/big"

	"github.com/calebcase/oops"

	"github.com/calebcase/ensemble/density"
	"github.com/calebcase/ensemble/entropy"
)

// ExactAdd combines two ensembles without losing information: mu and delta
// add as rationals, the densities convolve.
//
// The result's density is supported on the bound sum of the input
// intervals, and with rational arithmetic that is the same interval value
// as [mu-delta, mu+delta] of the result. A support mismatch here therefore
// signals a bug in the convolution or the bound arithmetic, not caller
// error; it is surfaced, never swallowed.
func ExactAdd(x, y FloatEnsemble) (FloatEnsemble, error) {
	mu := new(big.Rat).Add(x.mu, y.mu)
	delta := new(big.Rat).Add(x.delta, y.delta)

	f, err := Make(mu, delta, density.Convolve(x.d, y.d))
	if err != nil {
		return f, oops.Trace(err)
	}

	return f, nil
}

// CoarseGrain projects the ensemble onto the canonical uniform density for
// its interval, discarding distributional shape. mu and delta are
// unchanged. Idempotent, and total: the uniform over the ensemble's own
// interval trivially satisfies the support invariant.
func CoarseGrain(f FloatEnsemble) FloatEnsemble {
	return FloatEnsemble{
		mu:    f.mu,
		delta: f.delta,
		d:     density.NewUniform(f.iv),
		iv:    f.iv,
	}
}

// FloatAdd is addition as a floating register performs it: compute exactly,
// then coarse-grain for storage.
func FloatAdd(x, y FloatEnsemble) (FloatEnsemble, error) {
	f, err := ExactAdd(x, y)
	if err != nil {
		return f, err
	}

	return CoarseGrain(f), nil
}

// InformationLoss returns the entropy cost of storing the sum of x and y:
//
//	Entropy(FloatAdd(x, y).Density()) - Entropy(ExactAdd(x, y).Density())
//
// For canonical inputs (uniform densities) the loss is strictly positive.
func InformationLoss(fn entropy.Functional, x, y FloatEnsemble) (float64, error) {
	exact, err := ExactAdd(x, y)
	if err != nil {
		return 0, err
	}

	he, err := fn.Entropy(exact.Density())
	if err != nil {
		return 0, err
	}

	hc, err := fn.Entropy(CoarseGrain(exact).Density())
	if err != nil {
		return 0, err
	}

	return hc - he, nil
}
