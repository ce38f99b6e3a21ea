package clustergo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrEmptyDataset is returned when Fit receives a nil or empty dataset.
	ErrEmptyDataset = errors.New("dataset must not be empty")

	// ErrNotFitted is returned when labels, centroids or diagnostics are
	// requested before a successful Fit.
	ErrNotFitted = errors.New("model has not been fitted")

	// ErrNilInitializer is returned when the configured initializer is nil.
	ErrNilInitializer = errors.New("initializer must not be nil")
)

// ErrTooFewSamples indicates that more clusters were requested than the
// dataset has samples.
type ErrTooFewSamples struct {
	K       int
	Samples int
}

func (e *ErrTooFewSamples) Error() string {
	return fmt.Sprintf("the number of samples (%d) must be at least the number of clusters (%d)", e.Samples, e.K)
}

// ErrCentroidShape indicates that caller-supplied centroids do not match the
// expected feature count and cluster count.
type ErrCentroidShape struct {
	Rows, Cols         int
	WantRows, WantCols int
}

func (e *ErrCentroidShape) Error() string {
	return fmt.Sprintf("centroid shape mismatch: got %dx%d, want %dx%d",
		e.Rows, e.Cols, e.WantRows, e.WantCols)
}

// ErrInvalidCluster indicates a cluster id outside [0, K).
type ErrInvalidCluster struct {
	Cluster int
	K       int
}

func (e *ErrInvalidCluster) Error() string {
	return fmt.Sprintf("cluster %d out of range [0,%d)", e.Cluster, e.K)
}

// ErrPointDimension indicates a query point whose length does not match the
// dataset's feature count.
type ErrPointDimension struct {
	Expected int
	Actual   int
}

func (e *ErrPointDimension) Error() string {
	return fmt.Sprintf("point dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
