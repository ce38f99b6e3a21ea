// Package distance provides Euclidean distance primitives on float64 vectors.
package distance

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// SquaredEuclidean calculates the squared L2 (Euclidean) distance between two
// vectors. Assumes vectors are the same length (caller's responsibility).
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i, av := range a {
		d := av - b[i]
		sum += d * d
	}
	return sum
}

// Euclidean calculates the L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// Norm returns the L2 norm of v.
func Norm(v []float64) float64 {
	return math.Sqrt(floats.Dot(v, v))
}

// NormalizeInPlace L2-normalizes v in place.
// Returns false if v has zero L2 norm.
func NormalizeInPlace(v []float64) bool {
	if len(v) == 0 {
		return false
	}
	norm2 := floats.Dot(v, v)
	if norm2 == 0 {
		return false
	}
	floats.Scale(1/math.Sqrt(norm2), v)
	return true
}

// NormalizeCopy returns a normalized copy of src.
// Returns false if src has zero L2 norm.
func NormalizeCopy(src []float64) ([]float64, bool) {
	dst := slices.Clone(src)
	if !NormalizeInPlace(dst) {
		return nil, false
	}
	return dst, true
}
