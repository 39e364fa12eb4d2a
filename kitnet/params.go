package kitnet

import (
	"github.com/katalvlaran/kitnet/autoencoder"
	"github.com/katalvlaran/kitnet/export"
	"github.com/katalvlaran/kitnet/snapshot"
)

// Params is the hierarchical parameter blob exchanged via GetParams and
// SetParams: one autoencoder.Params per ensemble member plus the output
// autoencoder's.
type Params struct {
	Ensemble []autoencoder.Params
	Output   autoencoder.Params
}

// GetParams returns a deep copy of every autoencoder's weights and biases.
func (e *Engine) GetParams() Params {
	ens := make([]autoencoder.Params, len(e.ensemble))
	for i, ae := range e.ensemble {
		ens[i] = ae.GetParams()
	}
	return Params{
		Ensemble: ens,
		Output:   e.output.GetParams(),
	}
}

// SetParams restores every autoencoder's weights and biases from p,
// without renegotiating shape: p must match the existing partition's
// ensemble/output shapes exactly, or ErrParamsShapeMismatch is returned.
//
// SetParams does not restore norm_min/norm_max; those travel through the
// snapshot side-channel, not Params, and must be re-supplied separately
// via RestoreNormParams before the restored engine's Execute is usable.
func (e *Engine) SetParams(p Params) error {
	if e.partition == nil || len(p.Ensemble) != len(e.ensemble) {
		return ErrParamsShapeMismatch
	}
	for i, ae := range e.ensemble {
		if err := ae.SetParams(p.Ensemble[i]); err != nil {
			return ErrParamsShapeMismatch
		}
	}
	if err := e.output.SetParams(p.Output); err != nil {
		return ErrParamsShapeMismatch
	}
	return nil
}

// TorchModel builds the frozen, parameter-only export representation of
// the current ensemble, suitable for a downstream tensor-graph runtime.
// It fails with ErrNoFeatureMap if no partition exists yet.
func (e *Engine) TorchModel() (export.TorchModel, error) {
	if e.partition == nil {
		return export.TorchModel{}, ErrNoFeatureMap
	}
	params := e.GetParams()
	ensembleConfig := make([]autoencoder.Config, len(e.ensemble))
	for i, ae := range e.ensemble {
		ensembleConfig[i] = ae.Config
	}
	return export.FromParams(params.Ensemble, ensembleConfig, params.Output, e.output.Config, e.Partition(), e.n), nil
}

// WriteTorchModel derives the ".pth" sibling path of the engine's
// configured model path and writes the export representation there.
func (e *Engine) WriteTorchModel() error {
	m, err := e.TorchModel()
	if err != nil {
		return err
	}
	return m.Write(snapshot.TorchModelPath(e.modelPath))
}
