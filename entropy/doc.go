// Package entropy evaluates the differential entropy of a density.
//
// The functional is injectable: the ensemble model only needs two
// mathematical contracts from it, not any particular formula. Every
// implementation must satisfy:
//
//  1. Max-entropy bound. For any density d supported on I,
//
//     Entropy(d) <= Entropy(Uniform(I))
//
//     with equality exactly when d is itself uniform on I.
//
//  2. Convolution strictly loses entropy. For any intervals I1, I2,
//
//     Entropy(Convolve(Uniform(I1), Uniform(I2))) < Entropy(Uniform(Add(I1, I2)))
//
//     The inequality is strict: convolving two uniforms never matches the
//     entropy of a uniform spanning the combined width.
//
// Closed implements the functional by closed form for the shapes the
// density package manufactures. Numeric integrates -∫ p·ln p by quadrature
// and handles any density; it exists mostly to cross-check Closed.
package entropy
