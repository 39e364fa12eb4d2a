// Package kernel provides the small numeric primitives shared by the
// autoencoder and correlation-clustering packages: the sigmoid activation,
// matrix-vector and outer products, RMSE, and the quantization helpers used
// by the ensemble's optional low-precision mode.
//
// Every function here is pure: it allocates its result and never mutates
// its arguments. Matrices are represented as row-major [][]float64; there
// is no shared Dense type, since every caller in this module needs a
// different shape discipline (square correlation matrix, rectangular
// weight matrix) and a single generic type would buy nothing over plain
// slices at this size.
package kernel
