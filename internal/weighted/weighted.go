// Package weighted implements sampling of an index proportional to a vector
// of nonnegative weights. It is the seeding subroutine used by k-means++.
package weighted

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrZeroWeights is returned when every weight is zero, leaving no valid
// probability mass to sample from.
var ErrZeroWeights = errors.New("weighted: all weights are zero")

// Sample returns an index in [0, len(weights)) with probability proportional
// to its weight. draw must return a uniform value in [0, 1).
//
// The cumulative sum is built over the weights in their original order, so a
// given cumulative slot always maps back to the original index. If rounding
// leaves the cumulative total just under the drawn value, the last index is
// selected rather than failing; that branch is unreachable with exact
// arithmetic.
func Sample(draw func() float64, weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, ErrZeroWeights
	}

	total := floats.Sum(weights)
	if total == 0 {
		return 0, ErrZeroWeights
	}

	cumulative := make([]float64, len(weights))
	floats.CumSum(cumulative, weights)

	r := draw() * total
	for i, c := range cumulative {
		if r < c {
			return i, nil
		}
	}

	return len(weights) - 1, nil
}
