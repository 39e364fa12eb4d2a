package autoencoder

// Option configures an AE at construction time. Options are applied
// left-to-right; later options override earlier ones for the same field.
type Option func(*buildOptions)

type buildOptions struct {
	hiddenSize  int     // explicit hidden size; 0 means unset
	hiddenRatio float64 // 0 means unset
	lr          float64
	corruption  float64
	grace       int
	normalize   bool
	precisionOk bool
	precision   int
	quant       QuantConfig
}

func defaultBuildOptions() buildOptions {
	return buildOptions{
		lr:        DefaultLearningRate,
		normalize: true,
	}
}

// WithHiddenSize fixes n_hidden to an explicit value, overriding any
// hidden-ratio derivation.
func WithHiddenSize(n int) Option {
	return func(o *buildOptions) {
		o.hiddenSize = n
		o.hiddenRatio = 0
	}
}

// WithHiddenRatio derives n_hidden as ceil(n_visible * ratio). Overrides
// any explicit hidden size set earlier.
func WithHiddenRatio(ratio float64) Option {
	return func(o *buildOptions) {
		o.hiddenRatio = ratio
		o.hiddenSize = 0
	}
}

// WithLearningRate sets the SGD step size.
func WithLearningRate(lr float64) Option {
	return func(o *buildOptions) { o.lr = lr }
}

// WithCorruptionLevel sets the denoising corruption probability p_c in
// [0,1). Each input component is independently zeroed with this
// probability during training.
func WithCorruptionLevel(p float64) Option {
	return func(o *buildOptions) { o.corruption = p }
}

// WithGracePeriod sets the number of Train calls before Execute starts
// returning non-zero scores.
func WithGracePeriod(g int) Option {
	return func(o *buildOptions) { o.grace = g }
}

// WithNormalize enables or disables online min/max normalization. Enabled
// by default.
func WithNormalize(enabled bool) Option {
	return func(o *buildOptions) { o.normalize = enabled }
}

// WithInputPrecision rounds inputs to p decimal digits before the forward
// pass, after normalization.
func WithInputPrecision(p int) Option {
	return func(o *buildOptions) {
		o.precisionOk = true
		o.precision = p
	}
}

// WithQuantization enables quantized weights and activations at the given
// bit widths.
func WithQuantization(wBits, aBits int) Option {
	return func(o *buildOptions) {
		o.quant = QuantConfig{Enabled: true, WBits: wBits, ABits: aBits}
	}
}
