package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRNG_Reset(t *testing.T) {
	r := NewRNG(7)
	first := r.Float64()

	r.Reset()
	assert.Equal(t, first, r.Float64())
	assert.Equal(t, int64(7), r.Seed())
}

func TestGenerateClusters(t *testing.T) {
	r := NewRNG(1)
	centers := [][]float64{{0, 0}, {100, 100}}

	data := r.GenerateClusters(centers, 5, 0.1)
	require.Equal(t, 2, data.Rows())
	require.Equal(t, 10, data.Cols())

	// Columns are grouped by center: the first five hug (0,0), the rest
	// hug (100,100).
	for j := 0; j < 5; j++ {
		assert.InDelta(t, 0, data.At(0, j), 1)
		assert.InDelta(t, 0, data.At(1, j), 1)
	}
	for j := 5; j < 10; j++ {
		assert.InDelta(t, 100, data.At(0, j), 1)
		assert.InDelta(t, 100, data.At(1, j), 1)
	}
}

func TestGenerateClusters_Panics(t *testing.T) {
	r := NewRNG(1)
	assert.Panics(t, func() { r.GenerateClusters(nil, 5, 0.1) })
	assert.Panics(t, func() { r.GenerateClusters([][]float64{{0}}, 0, 0.1) })
}

func TestDataset(t *testing.T) {
	m := Dataset([]float64{1, 2}, []float64{3, 4})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, []float64{3, 4}, m.Col(1))

	assert.Panics(t, func() { Dataset() })
}

func TestMaxAbsDiff(t *testing.T) {
	assert.Equal(t, 3.0, MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 5, 2}))
	assert.Equal(t, 0.0, MaxAbsDiff(nil, nil))
}
