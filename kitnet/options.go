package kitnet

import (
	"github.com/katalvlaran/kitnet/autoencoder"
	"github.com/katalvlaran/kitnet/snapshot"
)

// Option configures an Engine at construction time.
type Option func(*buildOptions)

type buildOptions struct {
	fmGrace     int
	adGrace     int
	lr          float64
	hiddenRatio float64
	partition   [][]int
	hasPreset   bool
	normalize   bool
	precisionOk bool
	precision   int
	quant       QuantConfig
	sink        snapshot.Sink
	modelPath   string
}

func defaultBuildOptions() buildOptions {
	return buildOptions{
		lr:          autoencoder.DefaultLearningRate,
		hiddenRatio: autoencoder.DefaultHiddenRatio,
		normalize:   true,
		sink:        snapshot.NoopSink{},
	}
}

// WithFMGrace sets the FM-training (S0) grace period: the FM absorbs the
// observations seen at n_trained = 0..g (g+1 of them), and the partition
// is derived and the ensemble allocated on the last of these. Ignored if
// a preset partition is supplied via WithPartition.
func WithFMGrace(g int) Option {
	return func(o *buildOptions) { o.fmGrace = g }
}

// WithADGrace sets the number of AD-training (S1) observations absorbed
// before the engine transitions to execute-only (S2).
func WithADGrace(g int) Option {
	return func(o *buildOptions) { o.adGrace = g }
}

// WithLearningRate sets the SGD learning rate shared by every ensemble
// member and the output autoencoder.
func WithLearningRate(lr float64) Option {
	return func(o *buildOptions) { o.lr = lr }
}

// WithHiddenRatio sets the hidden-to-visible ratio shared by every
// ensemble member and the output autoencoder.
func WithHiddenRatio(ratio float64) Option {
	return func(o *buildOptions) { o.hiddenRatio = ratio }
}

// WithPartition supplies a feature partition at construction, skipping S0
// entirely: AEs are allocated immediately and the first Process call is
// treated as an S1 (AD-training) step.
func WithPartition(partition [][]int) Option {
	return func(o *buildOptions) {
		o.partition = partition
		o.hasPreset = true
	}
}

// WithNormalize enables or disables online min/max normalization on every
// autoencoder. Enabled by default.
func WithNormalize(enabled bool) Option {
	return func(o *buildOptions) { o.normalize = enabled }
}

// WithInputPrecision rounds every autoencoder's normalized input to p
// decimal digits before the forward pass.
func WithInputPrecision(p int) Option {
	return func(o *buildOptions) {
		o.precisionOk = true
		o.precision = p
	}
}

// WithQuantization enables quantized weights and activations, at the
// given bit widths, on every autoencoder.
func WithQuantization(wBits, aBits int) Option {
	return func(o *buildOptions) {
		o.quant = QuantConfig{Enabled: true, WBits: wBits, ABits: aBits}
	}
}

// WithSnapshotSink sets the destination for the normalization-parameter
// snapshot written after every S1 training step. Defaults to
// snapshot.NoopSink, so the hot path touches disk only when a caller
// opts in.
func WithSnapshotSink(sink snapshot.Sink) Option {
	return func(o *buildOptions) { o.sink = sink }
}

// WithModelPath records the configured model path from which
// WriteTorchModel derives its ".pth" export path (see
// snapshot.TorchModelPath). The snapshot sink is configured separately
// via WithSnapshotSink.
func WithModelPath(path string) Option {
	return func(o *buildOptions) { o.modelPath = path }
}
