package kernel

import "math"

// Quantize rounds each element of x onto the grid of 2^k evenly spaced
// levels in [0,1]: round(n*x)/n where n = 2^k - 1. Values outside [0,1] are quantized onto
// the same grid without clamping, matching the reference formula exactly.
func Quantize(x []float64, k int) []float64 {
	n := float64(uint64(1)<<uint(k) - 1)
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Round(n*v) / n
	}
	return out
}

// QuantizeScalar applies Quantize to a single value.
func QuantizeScalar(x float64, k int) float64 {
	n := float64(uint64(1)<<uint(k) - 1)
	return math.Round(n*x) / n
}

// QuantizeWeights quantizes a weight matrix to k bits via a tanh-squash:
// t = tanh(w); q = 0.5*t/max(|t|) + 0.5; return 2*Quantize(q,k) - 1.
//
// max(|t|) is taken over the whole matrix so all weights share one scale,
// matching the reference semantics of scaling the full tensor at once.
func QuantizeWeights(w [][]float64, k int) [][]float64 {
	maxAbs := 0.0
	t := make([][]float64, len(w))
	for i, row := range w {
		tRow := make([]float64, len(row))
		for j, v := range row {
			tv := math.Tanh(v)
			tRow[j] = tv
			if a := math.Abs(tv); a > maxAbs {
				maxAbs = a
			}
		}
		t[i] = tRow
	}
	if maxAbs == 0 {
		maxAbs = 1e-100
	}
	out := make([][]float64, len(w))
	for i, tRow := range t {
		row := make([]float64, len(tRow))
		for j, tv := range tRow {
			q := 0.5*tv/maxAbs + 0.5
			row[j] = 2*QuantizeScalar(q, k) - 1
		}
		out[i] = row
	}
	return out
}

// QuantizeWeightsVec is QuantizeWeights specialized for a 1-D weight/bias
// vector (e.g. hidden or visible bias), sharing the same tanh-squash scale
// computed over that vector alone.
func QuantizeWeightsVec(w []float64, k int) []float64 {
	maxAbs := 0.0
	t := make([]float64, len(w))
	for i, v := range w {
		tv := math.Tanh(v)
		t[i] = tv
		if a := math.Abs(tv); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		maxAbs = 1e-100
	}
	out := make([]float64, len(w))
	for i, tv := range t {
		q := 0.5*tv/maxAbs + 0.5
		out[i] = 2*QuantizeScalar(q, k) - 1
	}
	return out
}

// SqueezeFeatures rounds each element of x to p decimal digits.
func SqueezeFeatures(x []float64, p int) []float64 {
	scale := math.Pow(10, float64(p))
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Round(v*scale) / scale
	}
	return out
}
