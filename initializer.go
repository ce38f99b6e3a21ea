package clustergo

import (
	"fmt"

	"github.com/hupe1980/clustergo/distance"
	"github.com/hupe1980/clustergo/internal/weighted"
	"github.com/hupe1980/clustergo/matrix"
)

// Initializer produces the initial centroid columns for a fit. The dataset is
// read-only; implementations overwrite all K columns of centroids (features ×
// K) or fail.
//
// Built-in strategies are Random, KMeansPP and Manual. Custom strategies may
// be supplied through WithInitializer.
type Initializer interface {
	// Initialize populates centroids from data using rng as the only source
	// of randomness.
	Initialize(rng *RNG, data, centroids *matrix.Dense) error

	fmt.Stringer
}

// Random seeds each centroid uniformly at random within the per-feature
// bounding box of the dataset.
type Random struct{}

// Initialize implements Initializer.
func (Random) Initialize(rng *RNG, data, centroids *matrix.Dense) error {
	mins := data.RowMins()
	maxs := data.RowMaxs()

	for j := 0; j < centroids.Cols(); j++ {
		for i := 0; i < centroids.Rows(); i++ {
			centroids.Set(i, j, mins[i]+rng.Float64()*(maxs[i]-mins[i]))
		}
	}

	return nil
}

func (Random) String() string { return "random" }

// KMeansPP seeds centroids with the k-means++ strategy: the first centroid is
// a uniformly drawn sample, and each subsequent centroid is a sample drawn
// with probability proportional to its squared distance from the nearest
// already-chosen centroid. This tends to spread the seeds and improves
// convergence quality over pure random seeding.
type KMeansPP struct{}

// Initialize implements Initializer.
func (KMeansPP) Initialize(rng *RNG, data, centroids *matrix.Dense) error {
	n := data.Cols()
	k := centroids.Cols()

	centroids.SetCol(0, data.Col(rng.Intn(n)))

	weights := make([]float64, n)
	point := make([]float64, data.Rows())
	scratch := make([]float64, data.Rows())

	for c := 1; c < k; c++ {
		// Weight every sample by its squared distance to the nearest of the
		// c centroids chosen so far.
		for i := 0; i < n; i++ {
			data.CopyCol(point, i)
			nearest, _ := nearestColumn(centroids, c, point, scratch)
			centroids.CopyCol(scratch, nearest)
			weights[i] = distance.SquaredEuclidean(scratch, point)
		}

		idx, err := weighted.Sample(rng.Float64, weights)
		if err != nil {
			return fmt.Errorf("k-means++ seeding centroid %d: %w", c, err)
		}
		centroids.SetCol(c, data.Col(idx))
	}

	return nil
}

func (KMeansPP) String() string { return "kmeans++" }

// Manual uses caller-supplied centroids verbatim. Centroids must be a
// features × K matrix matching the dataset's feature count.
type Manual struct {
	Centroids *matrix.Dense
}

// Initialize implements Initializer.
func (m Manual) Initialize(_ *RNG, _, centroids *matrix.Dense) error {
	if m.Centroids.IsEmpty() {
		return fmt.Errorf("manual initializer: %w", matrix.ErrEmptyOperand)
	}
	if m.Centroids.Rows() != centroids.Rows() || m.Centroids.Cols() != centroids.Cols() {
		return &ErrCentroidShape{
			Rows:     m.Centroids.Rows(),
			Cols:     m.Centroids.Cols(),
			WantRows: centroids.Rows(),
			WantCols: centroids.Cols(),
		}
	}
	return centroids.CopyFrom(m.Centroids)
}

func (m Manual) String() string { return "manual" }
