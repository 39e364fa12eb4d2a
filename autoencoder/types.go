package autoencoder

import "math/rand"

// EpsilonNorm is the additive guard used in the min/max normalization
// denominator to avoid division by zero while preserving identity on
// constant features in the limit.
const EpsilonNorm = 1e-16

// DefaultHiddenRatio is used when neither WithHiddenSize nor
// WithHiddenRatio is supplied.
const DefaultHiddenRatio = 0.75

// DefaultLearningRate is the SGD step size used when WithLearningRate is
// not supplied.
const DefaultLearningRate = 0.1

// QuantConfig is a tagged variant for the optional quantized
// weights/activations mode: {None | (wBits, aBits)}. Modeling it as a
// value rather than a subclass keeps New's signature flat and keeps
// Train/Execute's control flow a single linear function.
type QuantConfig struct {
	Enabled bool
	WBits   int
	ABits   int
}

// Config holds the immutable parameters of an AE, fixed at construction.
type Config struct {
	NVisible        int
	NHidden         int
	LearningRate    float64
	CorruptionLevel float64
	GracePeriod     int
	Normalize       bool
	// InputPrecisionSet reports whether input rounding is enabled;
	// InputPrecision holds the digit count when it is.
	InputPrecisionSet bool
	InputPrecision    int
	Quant             QuantConfig
}

// AE is a single-hidden-layer denoising autoencoder with online SGD
// training, online min/max normalization, and optional quantization.
type AE struct {
	Config Config

	W  [][]float64 // n_visible x n_hidden
	Bv []float64   // n_visible
	Bh []float64   // n_hidden

	NormMin []float64 // n_visible, starts at +Inf
	NormMax []float64 // n_visible, starts at -Inf

	NSeen int

	rng *rand.Rand
}
