package autoencoder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/kitnet/kernel"
)

// weightSeed is the fixed, deterministic seed for the per-instance weight
// initialization RNG. Every AE uses this same constant: reproducibility
// of an ensemble depends on each autoencoder restarting its own stream at
// a known point, not on a shared global source.
const weightSeed = 1234

// New constructs an AE with nVisible input units. n_hidden is either set
// explicitly via WithHiddenSize or derived as ceil(nVisible*ratio) from
// WithHiddenRatio (DefaultHiddenRatio if neither is given).
func New(nVisible int, opts ...Option) (*AE, error) {
	if nVisible <= 0 {
		return nil, ErrInvalidVisibleSize
	}

	bo := defaultBuildOptions()
	for _, opt := range opts {
		opt(&bo)
	}

	hiddenSize := bo.hiddenSize
	if hiddenSize == 0 {
		ratio := bo.hiddenRatio
		if ratio == 0 {
			ratio = DefaultHiddenRatio
		}
		hiddenSize = int(math.Ceil(float64(nVisible) * ratio))
	}
	if hiddenSize <= 0 {
		return nil, ErrInvalidHiddenSize
	}

	ae := &AE{
		Config: Config{
			NVisible:          nVisible,
			NHidden:           hiddenSize,
			LearningRate:      bo.lr,
			CorruptionLevel:   bo.corruption,
			GracePeriod:       bo.grace,
			Normalize:         bo.normalize,
			InputPrecisionSet: bo.precisionOk,
			InputPrecision:    bo.precision,
			Quant:             bo.quant,
		},
		rng: rand.New(rand.NewSource(weightSeed)),
	}
	ae.initParams()

	return ae, nil
}

func (ae *AE) initParams() {
	nv, nh := ae.Config.NVisible, ae.Config.NHidden

	w := make([][]float64, nv)
	for i := range w {
		row := make([]float64, nh)
		for j := range row {
			row[j] = (ae.rng.Float64()*2 - 1) / float64(nv)
		}
		w[i] = row
	}
	if ae.Config.Quant.Enabled {
		w = kernel.QuantizeWeights(w, ae.Config.Quant.WBits)
	}
	ae.W = w
	ae.Bv = make([]float64, nv)
	ae.Bh = make([]float64, nh)

	ae.NormMin = make([]float64, nv)
	ae.NormMax = make([]float64, nv)
	for i := 0; i < nv; i++ {
		ae.NormMin[i] = math.Inf(1)
		ae.NormMax[i] = math.Inf(-1)
	}
}

// normalizeForward applies the running min/max normalization (updating
// norm_min/norm_max when track is true) and then input-precision
// squeezing, returning the preprocessed vector.
func (ae *AE) normalizeForward(x []float64, track bool) []float64 {
	out := x
	if ae.Config.Normalize {
		n := len(x)
		normed := make([]float64, n)
		for i := 0; i < n; i++ {
			if track {
				if x[i] > ae.NormMax[i] {
					ae.NormMax[i] = x[i]
				}
				if x[i] < ae.NormMin[i] {
					ae.NormMin[i] = x[i]
				}
			}
			normed[i] = (x[i] - ae.NormMin[i]) / (ae.NormMax[i] - ae.NormMin[i] + EpsilonNorm)
		}
		out = normed
	}
	if ae.Config.InputPrecisionSet {
		out = kernel.SqueezeFeatures(out, ae.Config.InputPrecision)
	}
	return out
}

// corrupt applies the denoising mask: each component is independently
// zeroed with probability p_c, using the AE's own deterministic RNG.
func (ae *AE) corrupt(x []float64) []float64 {
	p := ae.Config.CorruptionLevel
	if p <= 0 {
		return x
	}
	out := make([]float64, len(x))
	for i, v := range x {
		if ae.rng.Float64() < p {
			out[i] = 0
		} else {
			out[i] = v
		}
	}
	return out
}

// forward runs the tied-weights encode/decode pass on an already
// preprocessed (normalized, squeezed, possibly corrupted) input xTilde,
// returning the hidden activation y and the reconstruction z.
func (ae *AE) forward(xTilde []float64) (y, z []float64) {
	hIn := kernel.AddVec(kernel.MatVec(xTilde, ae.W), ae.Bh)
	y = kernel.Sigmoid(hIn)
	if ae.Config.Quant.Enabled {
		y = kernel.Quantize(y, ae.Config.Quant.ABits)
	}
	vIn := kernel.AddVec(kernel.MatVecTranspose(y, ae.W), ae.Bv)
	z = kernel.Sigmoid(vIn)
	return y, z
}

// Train performs one online SGD step on x and returns the reconstruction
// RMSE (sqrt(mean(L_vis^2))).
func (ae *AE) Train(x []float64) (float64, error) {
	if len(x) != ae.Config.NVisible {
		return 0, ErrInputShapeMismatch
	}

	ae.NSeen++

	xn := ae.normalizeForward(x, true)
	xTilde := ae.corrupt(xn)

	y, z := ae.forward(xTilde)

	lVis := kernel.SubVec(xn, z)
	oneMinusY := make([]float64, len(y))
	for i, v := range y {
		oneMinusY[i] = 1 - v
	}
	lHid := kernel.MulVec(kernel.MulVec(kernel.MatVec(lVis, ae.W), y), oneMinusY)

	lr := ae.Config.LearningRate
	dw1 := kernel.Outer(xTilde, lHid)
	dw2 := kernel.Outer(lVis, y)
	for i := range ae.W {
		row := ae.W[i]
		r1, r2 := dw1[i], dw2[i]
		for j := range row {
			row[j] += lr * (r1[j] + r2[j])
		}
	}
	for i := range ae.Bh {
		ae.Bh[i] += lr * lHid[i]
	}
	for i := range ae.Bv {
		ae.Bv[i] += lr * lVis[i]
	}

	if ae.Config.Quant.Enabled {
		ae.W = kernel.QuantizeWeights(ae.W, ae.Config.Quant.WBits)
		ae.Bh = kernel.QuantizeWeightsVec(ae.Bh, ae.Config.Quant.WBits)
		ae.Bv = kernel.QuantizeWeightsVec(ae.Bv, ae.Config.Quant.WBits)
	}

	return kernel.RMSE(lVis), nil
}

// Execute scores x without updating any state. It returns 0 while
// n_seen < grace period.
func (ae *AE) Execute(x []float64) (float64, error) {
	if len(x) != ae.Config.NVisible {
		return 0, ErrInputShapeMismatch
	}
	if ae.NSeen < ae.Config.GracePeriod {
		return 0, nil
	}

	xn := ae.normalizeForward(x, false)
	z := ae.Reconstruct(xn)
	diff := kernel.SubVec(xn, z)
	return kernel.RMSE(diff), nil
}

// Reconstruct runs the forward pass on an already-preprocessed vector
// (normalized and precision-squeezed, not corrupted) and returns z.
func (ae *AE) Reconstruct(xPreprocessed []float64) []float64 {
	_, z := ae.forward(xPreprocessed)
	return z
}
