package clustergo

import (
	"math"

	"github.com/hupe1980/clustergo/distance"
	"github.com/hupe1980/clustergo/matrix"
)

// IndicesWithLabel returns the sample indices assigned to the given cluster,
// in ascending order.
func (km *KMeans) IndicesWithLabel(cluster int) ([]int, error) {
	if !km.fitted {
		return nil, ErrNotFitted
	}
	if cluster < 0 || cluster >= km.k {
		return nil, &ErrInvalidCluster{Cluster: cluster, K: km.k}
	}

	ids := km.members[cluster].ToArray()
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out, nil
}

// PointsWithLabel returns the dataset columns assigned to the given cluster
// as a features × members matrix, columns in ascending sample order. It
// returns a nil matrix when the cluster has no members.
func (km *KMeans) PointsWithLabel(data *matrix.Dense, cluster int) (*matrix.Dense, error) {
	indices, err := km.IndicesWithLabel(cluster)
	if err != nil {
		return nil, err
	}
	if data.IsEmpty() {
		return nil, ErrEmptyDataset
	}
	if len(indices) == 0 {
		return nil, nil
	}

	out, err := matrix.NewDense(data.Rows(), len(indices))
	if err != nil {
		return nil, err
	}
	col := make([]float64, data.Rows())
	for j, idx := range indices {
		data.CopyCol(col, idx)
		out.SetCol(j, col)
	}
	return out, nil
}

// ClosestCluster returns the cluster whose centroid is nearest to point by
// Euclidean distance, lowest index winning ties.
func (km *KMeans) ClosestCluster(point []float64) (int, error) {
	if !km.fitted {
		return 0, ErrNotFitted
	}
	if len(point) != km.features {
		return 0, &ErrPointDimension{Expected: km.features, Actual: len(point)}
	}

	scratch := make([]float64, km.features)
	idx, _ := nearestColumn(km.centroids, km.k, point, scratch)
	return idx, nil
}

// MLEVariance returns the maximum-likelihood dispersion estimate of the fit:
// for each cluster, the mean Euclidean distance of its members to the
// centroid, summed over all K clusters. Empty clusters contribute zero.
func (km *KMeans) MLEVariance(data *matrix.Dense) (float64, error) {
	if !km.fitted {
		return 0, ErrNotFitted
	}
	if data.IsEmpty() {
		return 0, ErrEmptyDataset
	}

	center := make([]float64, km.features)
	col := make([]float64, km.features)

	var overall float64
	for c := 0; c < km.k; c++ {
		ids := km.members[c].ToArray()
		if len(ids) == 0 {
			continue
		}
		km.centroids.CopyCol(center, c)

		var sum float64
		for _, id := range ids {
			data.CopyCol(col, int(id))
			sum += distance.Euclidean(center, col)
		}
		overall += sum / float64(len(ids))
	}
	return overall, nil
}

// ClosestPoint returns the index of the dataset column nearest to point by
// Euclidean distance, lowest index winning ties.
func ClosestPoint(data *matrix.Dense, point []float64) (int, error) {
	if data.IsEmpty() {
		return 0, ErrEmptyDataset
	}
	if len(point) != data.Rows() {
		return 0, &ErrPointDimension{Expected: data.Rows(), Actual: len(point)}
	}

	scratch := make([]float64, data.Rows())
	idx, _ := nearestColumn(data, data.Cols(), point, scratch)
	return idx, nil
}

// ClosestPointDistance returns the Euclidean distance from point to the
// nearest dataset column whose index is not in excluded. With every column
// excluded the result is +Inf.
func ClosestPointDistance(data *matrix.Dense, point []float64, excluded ...int) (float64, error) {
	if data.IsEmpty() {
		return 0, ErrEmptyDataset
	}
	if len(point) != data.Rows() {
		return 0, &ErrPointDimension{Expected: data.Rows(), Actual: len(point)}
	}

	skip := make(map[int]struct{}, len(excluded))
	for _, id := range excluded {
		skip[id] = struct{}{}
	}

	col := make([]float64, data.Rows())
	minDist := math.Inf(1)
	for i := 0; i < data.Cols(); i++ {
		if _, ok := skip[i]; ok {
			continue
		}
		data.CopyCol(col, i)
		if d := distance.Euclidean(col, point); d < minDist {
			minDist = d
		}
	}
	return minDist, nil
}
