package kernel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kitnet/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmoid(t *testing.T) {
	out := kernel.Sigmoid([]float64{0, math.Inf(1), math.Inf(-1)})
	require.Len(t, out, 3)
	assert.InDelta(t, 0.5, out[0], 1e-12)
	assert.InDelta(t, 1.0, out[1], 1e-12)
	assert.InDelta(t, 0.0, out[2], 1e-12)
}

func TestMatVecAndTranspose(t *testing.T) {
	// W is 2x3: row-major, n_visible=2, n_hidden=3.
	w := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}
	x := []float64{1, 1}
	y := kernel.MatVec(x, w)
	assert.Equal(t, []float64{5, 7, 9}, y)

	z := kernel.MatVecTranspose(y, w)
	assert.Equal(t, []float64{5*1 + 7*2 + 9*3, 5*4 + 7*5 + 9*6}, z)
}

func TestOuter(t *testing.T) {
	out := kernel.Outer([]float64{1, 2}, []float64{3, 4, 5})
	assert.Equal(t, [][]float64{{3, 4, 5}, {6, 8, 10}}, out)
}

func TestRMSE(t *testing.T) {
	assert.Equal(t, 0.0, kernel.RMSE(nil))
	assert.InDelta(t, math.Sqrt((1.0+4.0+9.0)/3.0), kernel.RMSE([]float64{1, 2, 3}), 1e-12)
}

func TestVecHelpersPanicOnMismatch(t *testing.T) {
	assert.Panics(t, func() { kernel.AddVec([]float64{1}, []float64{1, 2}) })
	assert.Panics(t, func() { kernel.SubVec([]float64{1}, []float64{1, 2}) })
	assert.Panics(t, func() { kernel.MulVec([]float64{1}, []float64{1, 2}) })
}

func TestSquaredDiffVec(t *testing.T) {
	out := kernel.SquaredDiffVec([]float64{3, 5}, []float64{1, 1})
	assert.Equal(t, []float64{4, 16}, out)
}
