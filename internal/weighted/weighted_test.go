package weighted

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_SingleMass(t *testing.T) {
	// All mass on index 2: every draw must select it.
	weights := []float64{0, 0, 1, 0}
	for _, r := range []float64{0, 0.25, 0.5, 0.9999} {
		draw := func() float64 { return r }
		idx, err := Sample(draw, weights)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
	}
}

func TestSample_OriginalOrder(t *testing.T) {
	// Unsorted weights: cumulative slots must map to original indices.
	weights := []float64{1, 4, 2, 3} // total 10, cumsum 1,5,7,10
	tests := []struct {
		r    float64
		want int
	}{
		{0.05, 0},
		{0.099, 0},
		{0.1, 1},
		{0.49, 1},
		{0.5, 2},
		{0.69, 2},
		{0.7, 3},
		{0.99, 3},
	}
	for _, tt := range tests {
		draw := func() float64 { return tt.r }
		idx, err := Sample(draw, weights)
		require.NoError(t, err)
		assert.Equal(t, tt.want, idx, "r=%v", tt.r)
	}
}

func TestSample_ZeroWeights(t *testing.T) {
	draw := func() float64 { return 0.5 }

	_, err := Sample(draw, []float64{0, 0, 0})
	assert.ErrorIs(t, err, ErrZeroWeights)

	_, err = Sample(draw, nil)
	assert.ErrorIs(t, err, ErrZeroWeights)
}

func TestSample_ClampsToLastIndex(t *testing.T) {
	// A draw of exactly the total mass can only happen through rounding;
	// the sampler clamps to the last index instead of failing.
	draw := func() float64 { return 1.0 }
	idx, err := Sample(draw, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestSample_Distribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	weights := []float64{1, 3}

	counts := make([]int, 2)
	const n = 10000
	for i := 0; i < n; i++ {
		idx, err := Sample(rng.Float64, weights)
		require.NoError(t, err)
		counts[idx]++
	}

	// Expect roughly a 1:3 split.
	assert.InDelta(t, 0.25, float64(counts[0])/n, 0.03)
	assert.InDelta(t, 0.75, float64(counts[1])/n, 0.03)
}
