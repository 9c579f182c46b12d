// Package ensemble models a floating-point value as a statistical ensemble
// rather than a bare scalar: a nominal value mu, an error radius delta, and
// a probability density describing the likely true value within
// [mu-delta, mu+delta].
//
// The point of the model is to make precise, and mechanically checkable,
// the claim that storing a computed result back into a floating register
// discards distributional information. Combining two ensembles exactly
// keeps everything:
//
//	ExactAdd(X, Y)   mu and delta add; the densities convolve.
//
// Storing the result coarse-grains it:
//
//	CoarseGrain(F)   same mu and delta; the density is replaced by the
//	                 canonical uniform over F's interval.
//
//	FloatAdd(X, Y) = CoarseGrain(ExactAdd(X, Y))
//
// Coarse-graining projects onto the maximum-entropy representative for the
// interval, so it can only raise entropy, and for canonical inputs (uniform
// densities) the ordering is strict:
//
//	Entropy(ExactAdd(X, Y).Density()) < Entropy(FloatAdd(X, Y).Density())
//
// That strict ordering is the central contract of the package; it follows
// from the entropy functional's axioms (see the entropy package) once the
// support intervals are recognized as equal.
//
// Support Bookkeeping
//
// Every ensemble's density is supported exactly on [mu-delta, mu+delta],
// re-established by every constructor and every derived operation. The
// identity
//
//	(Xmu+Ymu) - (Xdelta+Ydelta) = (Xmu-Xdelta) + (Ymu-Ydelta)
//
// (and symmetrically for the upper bound) must hold exactly for ExactAdd to
// assemble its result, so mu, delta, and interval bounds are carried as
// big.Rat values: rational arithmetic leaves no rounding slack to produce a
// spurious support mismatch.
//
// All values are immutable; every operation is a pure function over its
// inputs.
package ensemble
