package export

import (
	"bytes"
	"encoding/gob"
	"os"
	"strconv"

	"github.com/katalvlaran/kitnet/autoencoder"
	"github.com/katalvlaran/kitnet/kernel"
)

// AEWeights is the stateless forward-pass representation of one
// autoencoder, including the input-precision and activation-quantization
// settings needed to reproduce its preprocessing and forward pass exactly
// (spec §8 scenario E5). W/Bh/Bv are already weight-quantized at export
// time when quantization is enabled, matching autoencoder.Train's
// in-place QuantizeWeights step; only the activation quantization applied
// fresh on every forward pass needs to travel separately.
type AEWeights struct {
	W  [][]float64
	Bh []float64
	Bv []float64

	InputPrecisionSet bool
	InputPrecision    int

	QuantEnabled bool
	QuantABits   int
}

// TorchModel is the full frozen export: one AEWeights per ensemble
// cluster, the output AEWeights, the feature partition that routes
// inputs to ensemble members, and the original input dimension.
type TorchModel struct {
	Ensemble  []AEWeights
	Output    AEWeights
	Partition [][]int
	N         int
}

// FromParams builds a TorchModel from raw parameter blobs and their
// source configs, avoiding any dependency on the kitnet package (which
// depends on export, not the reverse).
func FromParams(ensemble []autoencoder.Params, ensembleConfig []autoencoder.Config, output autoencoder.Params, outputConfig autoencoder.Config, partition [][]int, n int) TorchModel {
	ens := make([]AEWeights, len(ensemble))
	for i, p := range ensemble {
		ens[i] = weightsFromParams(p, ensembleConfig[i])
	}
	return TorchModel{
		Ensemble:  ens,
		Output:    weightsFromParams(output, outputConfig),
		Partition: partition,
		N:         n,
	}
}

func weightsFromParams(p autoencoder.Params, cfg autoencoder.Config) AEWeights {
	return AEWeights{
		W: p.W, Bh: p.Bh, Bv: p.Bv,
		InputPrecisionSet: cfg.InputPrecisionSet,
		InputPrecision:    cfg.InputPrecision,
		QuantEnabled:      cfg.Quant.Enabled,
		QuantABits:        cfg.Quant.ABits,
	}
}

// Write serializes m with encoding/gob to path, the ".pth"-suffixed
// sibling of the engine's configured model path (spec §6).
func (m TorchModel) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(m)
}

// Bytes serializes m with encoding/gob without touching disk, for callers
// that want to ship the blob over a transport of their own.
func (m TorchModel) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Forward reproduces a stateless execute(x) pass using only the exported
// weights plus the normalization ranges written to the side-channel
// snapshot (spec §4.5): each cluster's sub-vector is normalized against
// its norm_min_<firstIdx>/norm_max_<firstIdx> pair, reconstructed through
// its AEWeights, and the per-cluster RMSEs form the output AE's input,
// normalized in turn against norm_min_output/norm_max_output. This is the
// independent forward-pass implementation referenced by spec §8 scenario
// E5. Forward always applies this min/max normalization: AEWeights
// carries no normalization flag, so for an engine built with
// normalization disabled Forward does not reproduce Execute.
func (m TorchModel) Forward(x []float64, normParams map[string][]float64) float64 {
	scores := make([]float64, len(m.Partition))
	for a, idxs := range m.Partition {
		sub := make([]float64, len(idxs))
		for i, idx := range idxs {
			sub[i] = x[idx]
		}
		key := strconv.Itoa(idxs[0])
		normed := normalize(sub, normParams["norm_min_"+key], normParams["norm_max_"+key])
		scores[a] = aeRMSE(m.Ensemble[a], normed)
	}
	normedScores := normalize(scores, normParams["norm_min_output"], normParams["norm_max_output"])
	return aeRMSE(m.Output, normedScores)
}

// normalize applies the same online min/max normalization formula as
// autoencoder.normalizeForward, using already-finalized min/max vectors
// rather than tracking them live. The input-precision squeeze that
// follows it is applied by aeRMSE.
func normalize(x, min, max []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - min[i]) / (max[i] - min[i] + autoencoder.EpsilonNorm)
	}
	return out
}

func aeRMSE(w AEWeights, x []float64) float64 {
	if w.InputPrecisionSet {
		x = kernel.SqueezeFeatures(x, w.InputPrecision)
	}
	z := aeReconstruct(w, x)
	return kernel.RMSE(kernel.SubVec(x, z))
}

func aeReconstruct(w AEWeights, x []float64) []float64 {
	y := kernel.Sigmoid(kernel.AddVec(kernel.MatVec(x, w.W), w.Bh))
	if w.QuantEnabled {
		y = kernel.Quantize(y, w.QuantABits)
	}
	z := kernel.Sigmoid(kernel.AddVec(kernel.MatVecTranspose(y, w.W), w.Bv))
	return z
}
