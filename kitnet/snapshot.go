package kitnet

import "strconv"

// persistSnapshot writes the current per-cluster and output normalization
// ranges to the configured sink, keyed by the first feature index of each
// cluster (spec §6): norm_min_<firstIdx>, norm_max_<firstIdx> per
// ensemble member, plus norm_min_output, norm_max_output.
func (e *Engine) persistSnapshot() error {
	params := make(map[string][]float64, 2*len(e.ensemble)+2)
	for a, idxs := range e.partition {
		key := strconv.Itoa(idxs[0])
		params["norm_min_"+key] = append([]float64(nil), e.ensemble[a].NormMin...)
		params["norm_max_"+key] = append([]float64(nil), e.ensemble[a].NormMax...)
	}
	params["norm_min_output"] = append([]float64(nil), e.output.NormMin...)
	params["norm_max_output"] = append([]float64(nil), e.output.NormMax...)

	return e.sink.WriteNormParams(params)
}

// RestoreNormParams re-supplies the per-cluster and output normalization
// ranges previously captured by persistSnapshot, using the same key
// scheme. It is the counterpart SetParams intentionally omits (spec §9):
// a SetParams-only restore leaves every autoencoder's NormMin/NormMax at
// their +Inf/-Inf initial values, so subsequent Execute calls return NaN
// until this is called with the matching snapshot. Requires a realized
// partition; fails with ErrNoFeatureMap otherwise.
func (e *Engine) RestoreNormParams(params map[string][]float64) error {
	if e.partition == nil {
		return ErrNoFeatureMap
	}
	for a, idxs := range e.partition {
		key := strconv.Itoa(idxs[0])
		min, max := params["norm_min_"+key], params["norm_max_"+key]
		if err := e.ensemble[a].SetNormRange(min, max); err != nil {
			return ErrParamsShapeMismatch
		}
	}
	if err := e.output.SetNormRange(params["norm_min_output"], params["norm_max_output"]); err != nil {
		return ErrParamsShapeMismatch
	}
	return nil
}
