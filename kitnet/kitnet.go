package kitnet

import (
	"github.com/katalvlaran/kitnet/autoencoder"
	"github.com/katalvlaran/kitnet/fm"
)

// New constructs an Engine over n-dimensional observations with ensemble
// autoencoders of at most m visible units each. m is coerced to >= 1.
func New(n, m int, opts ...Option) (*Engine, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}
	if m < 1 {
		m = 1
	}

	bo := defaultBuildOptions()
	for _, opt := range opts {
		opt(&bo)
	}

	acc, err := fm.New(n)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		n:           n,
		m:           m,
		fmGrace:     bo.fmGrace,
		adGrace:     bo.adGrace,
		lr:          bo.lr,
		hiddenRatio: bo.hiddenRatio,
		normalize:   bo.normalize,
		precisionOk: bo.precisionOk,
		precision:   bo.precision,
		quant:       bo.quant,
		fmAcc:       acc,
		sink:        bo.sink,
		modelPath:   bo.modelPath,
	}

	if bo.hasPreset {
		e.presetPartition = true
		if err := e.allocateAEs(bo.partition); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Process is the single streaming entry point: it returns 0 and skips all
// state while the skip sentinel is observed, routes to the train phase
// while n_trained is within the combined grace window, and routes to
// execute thereafter.
func (e *Engine) Process(x []float64) (float64, error) {
	if len(x) != e.n {
		return 0, ErrInputShapeMismatch
	}
	if isSkip(x) {
		return 0, nil
	}

	if e.nTrained > e.effectiveFMGrace()+e.adGrace {
		return e.Execute(x)
	}
	if err := e.train(x); err != nil {
		return 0, err
	}
	return 0, nil
}

// Predict applies Process to each row of batch in order, returning the
// resulting scores.
func (e *Engine) Predict(batch [][]float64) ([]float64, error) {
	out := make([]float64, len(batch))
	for i, x := range batch {
		s, err := e.Process(x)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// DecisionFunction wraps Process for a single 1-row batch, sign-flipping
// the score so that larger means more normal, matching the convention of
// upstream anomaly-detector interfaces.
func (e *Engine) DecisionFunction(x2d [][]float64) ([]float64, error) {
	if len(x2d) == 0 {
		return nil, ErrInputShapeMismatch
	}
	s, err := e.Process(x2d[0])
	if err != nil {
		return nil, err
	}
	return []float64{-s}, nil
}

// train advances the engine by one observation in the training phase
// (S0 or S1), incrementing n_trained at the end.
func (e *Engine) train(x []float64) error {
	fmGrace := e.effectiveFMGrace()

	if e.partition == nil && e.nTrained <= fmGrace {
		if err := e.fmAcc.Update(x); err != nil {
			return err
		}
		if e.nTrained == fmGrace {
			partition := e.fmAcc.Cluster(e.m)
			if err := e.allocateAEs(partition); err != nil {
				return err
			}
		}
	} else {
		if err := e.trainS1(x); err != nil {
			return err
		}
	}

	e.nTrained++
	return nil
}

// trainS1 trains every ensemble autoencoder on its routed sub-vector,
// trains the output autoencoder on the resulting score vector, and
// persists a normalization snapshot.
func (e *Engine) trainS1(x []float64) error {
	scores := make([]float64, len(e.partition))
	for a, idxs := range e.partition {
		sub := subVector(x, idxs)
		s, err := e.ensemble[a].Train(sub)
		if err != nil {
			return err
		}
		scores[a] = s
	}
	if _, err := e.output.Train(scores); err != nil {
		return err
	}
	return e.persistSnapshot()
}

// Execute scores x without updating any trainable state: it fails with
// ErrNoFeatureMap if no partition exists yet.
func (e *Engine) Execute(x []float64) (float64, error) {
	if len(x) != e.n {
		return 0, ErrInputShapeMismatch
	}
	if e.partition == nil {
		return 0, ErrNoFeatureMap
	}

	scores := make([]float64, len(e.partition))
	for a, idxs := range e.partition {
		sub := subVector(x, idxs)
		s, err := e.ensemble[a].Execute(sub)
		if err != nil {
			return 0, err
		}
		scores[a] = s
	}
	out, err := e.output.Execute(scores)
	if err != nil {
		return 0, err
	}
	e.nExecuted++
	return out, nil
}

// allocateAEs realizes partition as the engine's feature partition and
// constructs one ensemble autoencoder per cluster plus the output
// autoencoder. Child AEs have a zero grace period: the orchestrator alone
// governs the S0/S1/S2 lifecycle.
func (e *Engine) allocateAEs(partition [][]int) error {
	ensemble := make([]*autoencoder.AE, len(partition))
	for a, idxs := range partition {
		ae, err := autoencoder.New(len(idxs), e.aeOptions()...)
		if err != nil {
			return err
		}
		ensemble[a] = ae
	}

	output, err := autoencoder.New(len(partition), e.aeOptions()...)
	if err != nil {
		return err
	}

	e.partition = partition
	e.ensemble = ensemble
	e.output = output
	return nil
}

// aeOptions builds the per-autoencoder options shared by every ensemble
// member and the output AE, derived from the engine's configuration.
func (e *Engine) aeOptions() []autoencoder.Option {
	opts := []autoencoder.Option{
		autoencoder.WithHiddenRatio(e.hiddenRatio),
		autoencoder.WithLearningRate(e.lr),
		autoencoder.WithGracePeriod(0),
		autoencoder.WithNormalize(e.normalize),
	}
	if e.precisionOk {
		opts = append(opts, autoencoder.WithInputPrecision(e.precision))
	}
	if e.quant.Enabled {
		opts = append(opts, autoencoder.WithQuantization(e.quant.WBits, e.quant.ABits))
	}
	return opts
}

// subVector gathers x[idxs[0]], x[idxs[1]], ... into a fresh slice.
func subVector(x []float64, idxs []int) []float64 {
	out := make([]float64, len(idxs))
	for i, idx := range idxs {
		out[i] = x[idx]
	}
	return out
}
