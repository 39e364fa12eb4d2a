package kitnet_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kitnet/kitnet"
	"github.com/katalvlaran/kitnet/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randVec(r *rand.Rand, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = r.NormFloat64()
	}
	return x
}

func TestNewRejectsNonPositiveDimension(t *testing.T) {
	_, err := kitnet.New(0, 2)
	assert.ErrorIs(t, err, kitnet.ErrInvalidDimension)
}

func TestNewCoercesMaxClustToOne(t *testing.T) {
	e, err := kitnet.New(4, 0, kitnet.WithFMGrace(1), kitnet.WithADGrace(1))
	require.NoError(t, err)
	require.NotNil(t, e)

	r := rand.New(rand.NewSource(13))
	for i := 0; i < 2; i++ {
		_, err := e.Process(randVec(r, 4))
		require.NoError(t, err)
	}
	partition := e.Partition()
	require.Len(t, partition, 4)
	for _, c := range partition {
		assert.Len(t, c, 1)
	}
}

func TestProcessShapeMismatch(t *testing.T) {
	e, err := kitnet.New(4, 2, kitnet.WithFMGrace(2), kitnet.WithADGrace(2))
	require.NoError(t, err)
	_, err = e.Process([]float64{1, 2, 3})
	assert.ErrorIs(t, err, kitnet.ErrInputShapeMismatch)
}

// E4: skip sentinel returns 0 exactly and leaves n_trained unchanged.
func TestSkipSentinelLeavesStateUnchanged(t *testing.T) {
	e, err := kitnet.New(4, 2, kitnet.WithFMGrace(5), kitnet.WithADGrace(5))
	require.NoError(t, err)

	score, err := e.Process([]float64{-1, -1, -1, -1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
	assert.Equal(t, 0, e.NTrained())
}

// Property 1: n_trained advances by 1 per non-skip Process call during
// training, then stops advancing once execution begins; n_executed
// advances by 1 per S2 call.
func TestLifecycleCounters(t *testing.T) {
	const n, m = 4, 2
	const fmGrace, adGrace = 3, 5
	e, err := kitnet.New(n, m, kitnet.WithFMGrace(fmGrace), kitnet.WithADGrace(adGrace))
	require.NoError(t, err)

	r := rand.New(rand.NewSource(7))
	totalTrainCalls := fmGrace + adGrace + 1 // off-by-one inherited from the reference lifecycle
	for i := 0; i < totalTrainCalls; i++ {
		score, err := e.Process(randVec(r, n))
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
		assert.Equal(t, i+1, e.NTrained())
	}

	for i := 0; i < 5; i++ {
		_, err := e.Process(randVec(r, n))
		require.NoError(t, err)
		assert.Equal(t, totalTrainCalls, e.NTrained())
		assert.Equal(t, i+1, e.NExecuted())
	}
}

// E2: a preset partition skips S0 entirely; FM state stays untouched and
// the first call is treated as S1.
func TestPresetPartitionSkipsS0(t *testing.T) {
	e, err := kitnet.New(4, 2,
		kitnet.WithPartition([][]int{{0, 1}, {2, 3}}),
		kitnet.WithADGrace(3),
	)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(3))
	score, err := e.Process(randVec(r, 4))
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
	assert.Equal(t, 1, e.NTrained())
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, e.Partition())
}

// E1-style scenario: after the combined grace window, scores are finite
// and the engine never diverges on a repeated input.
func TestEndToEndFiniteBoundedScores(t *testing.T) {
	const n, m = 4, 2
	const fmGrace, adGrace = 50, 50
	e, err := kitnet.New(n, m, kitnet.WithFMGrace(fmGrace), kitnet.WithADGrace(adGrace))
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	var mean [4]float64
	samples := make([][]float64, 0, fmGrace+adGrace)
	for i := 0; i < fmGrace+adGrace+1; i++ {
		x := randVec(r, n)
		samples = append(samples, x)
		if i < fmGrace {
			for j, v := range x {
				mean[j] += v
			}
		}
		score, err := e.Process(x)
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	}
	for j := range mean {
		mean[j] /= float64(fmGrace)
	}

	probe := mean[:]
	var prev float64
	for i := 0; i < 5; i++ {
		score, err := e.Process(probe)
		require.NoError(t, err)
		require.False(t, math.IsNaN(score))
		require.False(t, math.IsInf(score, 0))
		require.GreaterOrEqual(t, score, 0.0)
		if i > 0 {
			assert.LessOrEqual(t, score, prev+1e-6)
		}
		prev = score
	}
}

// Property 3 / grace behavior: Execute is forbidden before a partition
// exists.
func TestExecuteBeforePartitionErrors(t *testing.T) {
	e, err := kitnet.New(4, 2, kitnet.WithFMGrace(10), kitnet.WithADGrace(10))
	require.NoError(t, err)
	_, err = e.Execute([]float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, kitnet.ErrNoFeatureMap)
}

// Property 6: two engines built identically and fed an identical stream
// produce identical scores (fixed seed 1234 inside autoencoder.New).
func TestDeterminism(t *testing.T) {
	build := func() *kitnet.Engine {
		e, err := kitnet.New(4, 2, kitnet.WithFMGrace(10), kitnet.WithADGrace(10))
		require.NoError(t, err)
		return e
	}
	a, b := build(), build()

	r := rand.New(rand.NewSource(99))
	stream := make([][]float64, 0, 25)
	for i := 0; i < 25; i++ {
		stream = append(stream, randVec(r, 4))
	}

	var scoresA, scoresB []float64
	for _, x := range stream {
		sa, err := a.Process(x)
		require.NoError(t, err)
		sb, err := b.Process(x)
		require.NoError(t, err)
		scoresA = append(scoresA, sa)
		scoresB = append(scoresB, sb)
	}
	assert.Equal(t, scoresA, scoresB)
}

// Property 5: set_params(get_params()) leaves subsequent Execute outputs
// bit-identical given an identical post-restore input stream.
func TestParamsRoundTripReproducesScores(t *testing.T) {
	const n, m = 4, 2
	const fmGrace, adGrace = 10, 10
	sink := &snapshot.MemorySink{}
	e, err := kitnet.New(n, m, kitnet.WithFMGrace(fmGrace), kitnet.WithADGrace(adGrace), kitnet.WithSnapshotSink(sink))
	require.NoError(t, err)

	r := rand.New(rand.NewSource(11))
	for i := 0; i < fmGrace+adGrace+1; i++ {
		_, err := e.Process(randVec(r, n))
		require.NoError(t, err)
	}

	params := e.GetParams()
	probe := randVec(r, n)
	want, err := e.Execute(probe)
	require.NoError(t, err)

	// SetParams alone restores weights/biases but not the running
	// normalization ranges (spec §9 asymmetry); RestoreNormParams re-supplies
	// them from the same side-channel snapshot persistSnapshot wrote.
	restored, err := kitnet.New(n, m, kitnet.WithPartition(e.Partition()), kitnet.WithADGrace(0))
	require.NoError(t, err)
	require.NoError(t, restored.SetParams(params))
	require.NoError(t, restored.RestoreNormParams(sink.Last))

	got, err := restored.Execute(probe)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

// E6: quantized mode trains without divergence and stays finite.
func TestQuantizedModeStaysFinite(t *testing.T) {
	e, err := kitnet.New(4, 2,
		kitnet.WithFMGrace(20),
		kitnet.WithADGrace(20),
		kitnet.WithQuantization(4, 4),
	)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(5))
	var last float64
	for i := 0; i < 45; i++ {
		s, err := e.Process(randVec(r, 4))
		require.NoError(t, err)
		require.False(t, math.IsNaN(s))
		last = s
	}
	assert.GreaterOrEqual(t, last, 0.0)
}

func TestSnapshotSinkReceivesWritesDuringS1(t *testing.T) {
	sink := &snapshot.MemorySink{}
	e, err := kitnet.New(4, 2,
		kitnet.WithPartition([][]int{{0, 1}, {2, 3}}),
		kitnet.WithADGrace(1),
		kitnet.WithSnapshotSink(sink),
	)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	_, err = e.Process(randVec(r, 4))
	require.NoError(t, err)

	assert.Contains(t, sink.Last, "norm_min_0")
	assert.Contains(t, sink.Last, "norm_min_2")
	assert.Contains(t, sink.Last, "norm_min_output")
}
