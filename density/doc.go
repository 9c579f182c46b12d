// Package density provides probability densities tagged with the interval
// they are supported on.
//
// A Density pairs a real-valued function with a declared support interval.
// The support is an assertion made by whoever manufactured the density, not
// something inferred from the function's values: a caller declaring a
// support that does not reflect the density's shape breaks the contract and
// gets whatever it gets.
//
// The package manufactures two concrete shapes and one opaque one:
//
//	Uniform     The canonical maximum-entropy density over an interval.
//	UniformSum  The exact trapezoidal convolution of two uniforms.
//	(opaque)    The numeric convolution of anything else.
//
// Convolve conserves support by construction: the declared support of the
// result is always the pairwise bound sum of the input supports, whatever
// the result's shape and however its values are evaluated. This is the
// property everything downstream leans on: interval bookkeeping never
// depends on how (or whether) the convolution integral is computed.
package density
