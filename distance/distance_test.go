package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1, 2}, []float64{1, 1, -2}, -4},
		{"Single", []float64{2}, []float64{3}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestSquaredEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredEuclidean(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestEuclidean(t *testing.T) {
	assert.InDelta(t, 5.0, Euclidean([]float64{0, 0}, []float64{3, 4}), 1e-12)
	assert.InDelta(t, 0.0, Euclidean([]float64{1, 1}, []float64{1, 1}), 1e-12)
}

func TestNormalize(t *testing.T) {
	t.Run("InPlace", func(t *testing.T) {
		v := []float64{3, 4}
		ok := NormalizeInPlace(v)
		assert.True(t, ok)
		assert.InDelta(t, 0.6, v[0], 1e-12)
		assert.InDelta(t, 0.8, v[1], 1e-12)
		assert.InDelta(t, 1.0, math.Sqrt(v[0]*v[0]+v[1]*v[1]), 1e-12)

		assert.False(t, NormalizeInPlace([]float64{0, 0}))
		assert.False(t, NormalizeInPlace([]float64{}))
	})

	t.Run("Copy", func(t *testing.T) {
		v := []float64{1, 0}
		dst, ok := NormalizeCopy(v)
		assert.True(t, ok)
		assert.Equal(t, 1.0, dst[0])
		assert.NotSame(t, &v[0], &dst[0])

		dst, ok = NormalizeCopy([]float64{0, 0})
		assert.False(t, ok)
		assert.Nil(t, dst)
	})
}
