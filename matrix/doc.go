// Package matrix provides dense matrix and vector primitives for tabular
// numeric data.
//
// A Dense matrix stores float64 values in row-major order. By convention in
// this module, each column is one sample and each row is one feature, so a
// dataset with n samples of d features is a d×n matrix.
//
// # Failure behavior
//
// All package-level operations validate their operands and fail fast with a
// descriptive error on size mismatches or empty operands. They never silently
// produce a corrupted result:
//
//	sum, err := matrix.Add(a, b)
//	if err != nil {
//	    // a and b have different shapes, or one of them is empty
//	}
//
// Element accessors (At, Set, Col, ...) panic on out-of-range indices, in line
// with slice indexing semantics.
//
// # Linear algebra
//
// Inverse, Det and Rank delegate to gonum's mat package. Inverse rejects
// non-square and singular (zero determinant) inputs with an error instead of
// returning NaNs.
package matrix
