// Package autoencoder implements a single-hidden-layer, tied-weights
// denoising autoencoder trained online with one SGD step per observation.
//
// An AE normalizes its input with a running min/max, optionally corrupts
// it (denoising), forwards through sigmoid(x·W+bh) and sigmoid(y·Wᵀ+bv),
// and reports its reconstruction RMSE. Weight initialization uses a
// per-instance pseudo-random source seeded with a fixed constant so that
// two identically configured autoencoders fed the same stream converge to
// bit-identical parameters.
//
// Behavior is selected by functional options (New) rather than
// subclassing: normalization, fixed-point input rounding, corruption, and
// weight/activation quantization are all orthogonal toggles on one
// concrete type.
package autoencoder
