package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/clustergo/matrix"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a normally distributed pseudo-random number.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// GenerateClusters builds a dataset of gaussian blobs: perCluster samples
// around each center, with the given standard deviation per feature. The
// result is a features × (len(centers)*perCluster) matrix whose columns are
// grouped by generating center, in center order.
func (r *RNG) GenerateClusters(centers [][]float64, perCluster int, stddev float64) *matrix.Dense {
	if len(centers) == 0 || perCluster <= 0 {
		panic("testutil: need at least one center and one sample per cluster")
	}

	features := len(centers[0])
	cols := make([][]float64, 0, len(centers)*perCluster)
	for _, center := range centers {
		for s := 0; s < perCluster; s++ {
			col := make([]float64, features)
			for f := range col {
				col[f] = center[f] + r.NormFloat64()*stddev
			}
			cols = append(cols, col)
		}
	}

	m, err := matrix.NewDenseFromColumns(cols)
	if err != nil {
		panic(err)
	}
	return m
}

// Dataset builds a features × samples matrix from column slices, panicking on
// malformed input. Intended for test fixtures.
func Dataset(cols ...[]float64) *matrix.Dense {
	m, err := matrix.NewDenseFromColumns(cols)
	if err != nil {
		panic(err)
	}
	return m
}

// MaxAbsDiff returns the largest absolute elementwise difference between two
// equal-length slices.
func MaxAbsDiff(a, b []float64) float64 {
	var max float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}
