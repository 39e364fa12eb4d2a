package kitnet

import (
	"github.com/katalvlaran/kitnet/autoencoder"
	"github.com/katalvlaran/kitnet/fm"
	"github.com/katalvlaran/kitnet/snapshot"
)

// QuantConfig mirrors autoencoder.QuantConfig; every ensemble member and
// the output AE share one quantization policy.
type QuantConfig struct {
	Enabled bool
	WBits   int
	ABits   int
}

// Engine is the ensemble orchestrator: an FM accumulator feeding a
// one-shot partition, an ensemble of autoencoders routed by that
// partition, and a single output autoencoder consuming the ensemble's
// reconstruction errors.
type Engine struct {
	n int // input dimension
	m int // max cluster size

	fmGrace int
	adGrace int

	lr          float64
	hiddenRatio float64
	normalize   bool
	precisionOk bool
	precision   int
	quant       QuantConfig

	presetPartition bool
	partition       [][]int

	fmAcc *fm.Accumulator

	ensemble []*autoencoder.AE
	output   *autoencoder.AE

	nTrained  int
	nExecuted int

	sink      snapshot.Sink
	modelPath string
}

// N returns the configured input dimension.
func (e *Engine) N() int { return e.n }

// Partition returns the realized feature partition, or nil if none has
// been derived or supplied yet.
func (e *Engine) Partition() [][]int {
	if e.partition == nil {
		return nil
	}
	out := make([][]int, len(e.partition))
	for i, c := range e.partition {
		out[i] = append([]int(nil), c...)
	}
	return out
}

// NTrained returns the number of training-phase Process calls absorbed
// so far (S0 and S1 combined).
func (e *Engine) NTrained() int { return e.nTrained }

// NExecuted returns the number of S2 execute calls served so far.
func (e *Engine) NExecuted() int { return e.nExecuted }

// effectiveFMGrace returns the FM grace period actually governing the
// lifecycle: 0 when the partition was supplied at construction (S0 is
// skipped entirely), the configured value otherwise.
func (e *Engine) effectiveFMGrace() int {
	if e.presetPartition {
		return 0
	}
	return e.fmGrace
}

// isSkip reports whether x is the all-(-1) skip sentinel.
func isSkip(x []float64) bool {
	for _, v := range x {
		if v != -1 {
			return false
		}
	}
	return true
}
