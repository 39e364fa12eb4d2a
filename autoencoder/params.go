package autoencoder

// Params is the dense parameter blob {W, Bh, Bv} exposed by GetParams and
// accepted by SetParams. Matrix layout is row-major, matching the
// orchestrator's and export adaptor's expectations.
type Params struct {
	W  [][]float64
	Bh []float64
	Bv []float64
}

// GetParams returns a copy of the AE's weights and biases.
func (ae *AE) GetParams() Params {
	w := make([][]float64, len(ae.W))
	for i, row := range ae.W {
		w[i] = append([]float64(nil), row...)
	}
	return Params{
		W:  w,
		Bh: append([]float64(nil), ae.Bh...),
		Bv: append([]float64(nil), ae.Bv...),
	}
}

// SetParams replaces W, Bh, Bv in place without renegotiating shape: p's
// dimensions must match this AE's existing (n_visible, n_hidden), or
// ErrShapeMismatch is returned. Normalization ranges and quantization
// config are not restored here; see the snapshot package for the
// normalization side-channel.
func (ae *AE) SetParams(p Params) error {
	nv, nh := ae.Config.NVisible, ae.Config.NHidden
	if len(p.W) != nv || len(p.Bh) != nh || len(p.Bv) != nv {
		return ErrShapeMismatch
	}
	for _, row := range p.W {
		if len(row) != nh {
			return ErrShapeMismatch
		}
	}

	w := make([][]float64, nv)
	for i, row := range p.W {
		w[i] = append([]float64(nil), row...)
	}
	ae.W = w
	ae.Bh = append([]float64(nil), p.Bh...)
	ae.Bv = append([]float64(nil), p.Bv...)
	return nil
}

// SetNormRange restores the running min/max normalization bounds
// SetParams deliberately leaves untouched. min and max must each have
// length n_visible, or ErrShapeMismatch is returned. Without this, an AE
// restored via SetParams alone keeps its initial NormMin=+Inf/NormMax=-Inf
// and produces NaN scores on the first post-restore Execute call.
func (ae *AE) SetNormRange(min, max []float64) error {
	nv := ae.Config.NVisible
	if len(min) != nv || len(max) != nv {
		return ErrShapeMismatch
	}
	ae.NormMin = append([]float64(nil), min...)
	ae.NormMax = append([]float64(nil), max...)
	return nil
}
