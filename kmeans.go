package clustergo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clustergo/codec"
	"github.com/hupe1980/clustergo/distance"
	"github.com/hupe1980/clustergo/matrix"
)

// KMeans clusters the columns of a dense dataset into K groups using Lloyd's
// algorithm. A zero-value KMeans is not usable; construct one with New.
//
// KMeans is not safe for concurrent use. Run concurrent fits on separate
// engines, each with its own RNG.
type KMeans struct {
	initializer   Initializer
	rng           *RNG
	maxIterations int
	parallel      int
	logger        *Logger
	metrics       MetricsCollector
	codec         codec.Codec
	compression   Compression

	k          int
	features   int
	centroids  *matrix.Dense
	labels     []int
	iterations int
	converged  bool
	fitted     bool
	members    []*roaring.Bitmap // per-cluster sample ids, built after fit
}

// New creates a KMeans engine. By default it seeds with k-means++, draws from
// a wall-clock seeded RNG, assigns sequentially and iterates until the label
// assignment is stable.
func New(opts ...Option) *KMeans {
	km := &KMeans{
		initializer: KMeansPP{},
		rng:         NewTimeRNG(),
		parallel:    1,
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		compression: CompressionLZ4,
	}
	for _, opt := range opts {
		opt(km)
	}
	return km
}

// Fit clusters the dataset (features × samples, one sample per column) into k
// groups. It runs initialization followed by assign/update rounds until no
// label changes, the optional iteration cap is reached, or ctx is cancelled.
//
// Configuration problems (k out of range, nil initializer, malformed manual
// centroids) are reported before any clustering work starts. Fit replaces any
// state from a previous call.
func (km *KMeans) Fit(ctx context.Context, data *matrix.Dense, k int) error {
	start := time.Now()
	err := km.fit(ctx, data, k)
	km.metrics.RecordFit(km.iterations, time.Since(start), err)
	km.logger.LogFit(ctx, k, km.iterations, err)
	return err
}

func (km *KMeans) fit(ctx context.Context, data *matrix.Dense, k int) error {
	km.fitted = false
	km.converged = false
	km.iterations = 0

	if data.IsEmpty() {
		return ErrEmptyDataset
	}
	if k <= 0 {
		return ErrInvalidK
	}
	n := data.Cols()
	if n < k {
		return &ErrTooFewSamples{K: k, Samples: n}
	}
	if km.initializer == nil {
		return ErrNilInitializer
	}

	centroids, err := matrix.NewDense(data.Rows(), k)
	if err != nil {
		return err
	}
	if err := km.initializer.Initialize(km.rng, data, centroids); err != nil {
		return fmt.Errorf("initialize (%s): %w", km.initializer, err)
	}

	labels := make([]int, n)
	prev := make([]int, n) // all-zero sentinel forces at least one round

	iter := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := km.assignLabels(ctx, data, centroids, labels); err != nil {
			return err
		}

		centroids = updateCentroids(data, centroids, labels)
		iter++

		if !labelsChanged(labels, prev) {
			km.converged = true
			break
		}
		// Swap buffers: the next assignment overwrites labels in full.
		labels, prev = prev, labels

		if km.maxIterations > 0 && iter >= km.maxIterations {
			labels = prev
			break
		}
	}

	km.k = k
	km.features = data.Rows()
	km.centroids = centroids
	km.labels = labels
	km.iterations = iter
	km.rebuildMembers()
	km.fitted = true

	return nil
}

// assignLabels maps every sample to its nearest centroid by Euclidean
// distance, lowest index winning ties. Centroids are read-only during the
// scan, so samples are partitioned across workers when parallelism is
// enabled.
func (km *KMeans) assignLabels(ctx context.Context, data, centroids *matrix.Dense, labels []int) error {
	n := data.Cols()

	if km.parallel <= 1 || n < km.parallel {
		point := make([]float64, data.Rows())
		scratch := make([]float64, data.Rows())
		for i := 0; i < n; i++ {
			data.CopyCol(point, i)
			labels[i], _ = nearestColumn(centroids, centroids.Cols(), point, scratch)
		}
		return nil
	}

	g, _ := errgroup.WithContext(ctx)
	chunk := (n + km.parallel - 1) / km.parallel
	for w := 0; w < km.parallel; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			point := make([]float64, data.Rows())
			scratch := make([]float64, data.Rows())
			for i := lo; i < hi; i++ {
				data.CopyCol(point, i)
				labels[i], _ = nearestColumn(centroids, centroids.Cols(), point, scratch)
			}
			return nil
		})
	}
	return g.Wait()
}

// updateCentroids returns the next centroid matrix: each cluster's column
// becomes the per-feature mean of its members, and a cluster with no members
// keeps its previous column so it can recover members in a later round. The
// previous matrix is never written, which keeps the read-old/write-new
// ordering structural.
func updateCentroids(data, centroids *matrix.Dense, labels []int) *matrix.Dense {
	d := data.Rows()
	k := centroids.Cols()

	next := centroids.Clone()

	sums := make([]float64, k*d)
	counts := make([]int, k)
	col := make([]float64, d)

	for i, label := range labels {
		data.CopyCol(col, i)
		sum := sums[label*d : (label+1)*d]
		for f, v := range col {
			sum[f] += v
		}
		counts[label]++
	}

	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			continue
		}
		mean := sums[c*d : (c+1)*d]
		inv := 1 / float64(counts[c])
		for f := range mean {
			mean[f] *= inv
		}
		next.SetCol(c, mean)
	}

	return next
}

func labelsChanged(labels, prev []int) bool {
	for i, l := range labels {
		if l != prev[i] {
			return true
		}
	}
	return false
}

// nearestColumn returns the index of the column of m among the first limit
// columns with minimum Euclidean distance to point, and that distance. Ties
// resolve to the lowest index.
func nearestColumn(m *matrix.Dense, limit int, point, scratch []float64) (int, float64) {
	best := 0
	bestDist := math.Inf(1)
	for j := 0; j < limit; j++ {
		m.CopyCol(scratch, j)
		if d := distance.Euclidean(scratch, point); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best, bestDist
}

func (km *KMeans) rebuildMembers() {
	km.members = make([]*roaring.Bitmap, km.k)
	for c := range km.members {
		km.members[c] = roaring.New()
	}
	for i, label := range km.labels {
		km.members[label].Add(uint32(i))
	}
}

// K returns the cluster count of the last fit.
func (km *KMeans) K() int { return km.k }

// Iterations returns the number of assign/update rounds the last fit ran.
func (km *KMeans) Iterations() int { return km.iterations }

// Converged reports whether the last fit reached a stable label assignment.
// It is false when the fit stopped at the WithMaxIterations cap.
func (km *KMeans) Converged() bool { return km.converged }

// Labels returns a copy of the label vector: one cluster id in [0, K) per
// sample, in sample order.
func (km *KMeans) Labels() ([]int, error) {
	if !km.fitted {
		return nil, ErrNotFitted
	}
	out := make([]int, len(km.labels))
	copy(out, km.labels)
	return out, nil
}

// Centroids returns a copy of the centroid matrix (features × K).
func (km *KMeans) Centroids() (*matrix.Dense, error) {
	if !km.fitted {
		return nil, ErrNotFitted
	}
	return km.centroids.Clone(), nil
}
