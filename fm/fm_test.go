package fm_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/kitnet/fm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositiveDimension(t *testing.T) {
	_, err := fm.New(0)
	assert.ErrorIs(t, err, fm.ErrInvalidDimension)
}

func TestUpdateShapeMismatch(t *testing.T) {
	acc, err := fm.New(3)
	require.NoError(t, err)
	err = acc.Update([]float64{1, 2})
	assert.ErrorIs(t, err, fm.ErrInputShapeMismatch)
}

func TestCorrDistSymmetricNonNegativeNoNaN(t *testing.T) {
	acc, err := fm.New(3)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		x := []float64{r.NormFloat64(), r.NormFloat64(), 7} // feature 2 constant
		require.NoError(t, acc.Update(x))
	}
	d := acc.CorrDist()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.False(t, math.IsNaN(d[i][j]), "d[%d][%d] is NaN", i, j)
			assert.GreaterOrEqual(t, d[i][j], 0.0)
			assert.InDelta(t, d[i][j], d[j][i], 1e-12)
		}
	}
	// constant feature 2 should show maximal distance (up to clamping) to others.
	assert.InDelta(t, 1.0, d[0][2], 1e-9)
	assert.InDelta(t, 1.0, d[1][2], 1e-9)
}

func TestClusterSingleFeature(t *testing.T) {
	acc, err := fm.New(1)
	require.NoError(t, err)
	require.NoError(t, acc.Update([]float64{1}))
	clusters := acc.Cluster(5)
	assert.Equal(t, [][]int{{0}}, clusters)
}

func TestClusterIsDisjointCoverBoundedBySize(t *testing.T) {
	n := 8
	maxClust := 3
	acc, err := fm.New(n)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		x := make([]float64, n)
		for j := range x {
			x[j] = r.NormFloat64()
		}
		require.NoError(t, acc.Update(x))
	}

	clusters := acc.Cluster(maxClust)

	seen := map[int]bool{}
	for _, c := range clusters {
		assert.LessOrEqual(t, len(c), maxClust)
		assert.GreaterOrEqual(t, len(c), 1)
		ids := append([]int(nil), c...)
		assert.True(t, sort.IntsAreSorted(ids))
		for _, idx := range c {
			assert.False(t, seen[idx], "index %d covered twice", idx)
			seen[idx] = true
		}
	}
	assert.Len(t, seen, n)
}

func TestClusterMaxClustClamped(t *testing.T) {
	acc, err := fm.New(4)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, acc.Update([]float64{float64(i), float64(2 * i), float64(3 * i), float64(4 * i)}))
	}
	clusters := acc.Cluster(0)
	for _, c := range clusters {
		assert.LessOrEqual(t, len(c), 1)
	}

	clusters = acc.Cluster(1000)
	assert.Len(t, clusters, 1)
	assert.Len(t, clusters[0], 4)
}
