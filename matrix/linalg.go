package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// asGonum converts a Dense into a gonum mat.Dense sharing no storage.
func asGonum(a *Dense) *mat.Dense {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return mat.NewDense(a.rows, a.cols, data)
}

// Det returns the determinant of a square, non-empty matrix.
func Det(a *Dense) (float64, error) {
	if a.IsEmpty() {
		return 0, ErrEmptyOperand
	}
	if a.rows != a.cols {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, a.rows, a.cols)
	}
	return mat.Det(asGonum(a)), nil
}

// Inverse returns the inverse of a square, non-empty, non-singular matrix.
// A zero determinant yields ErrSingular.
func Inverse(a *Dense) (*Dense, error) {
	det, err := Det(a)
	if err != nil {
		return nil, err
	}
	if det == 0 {
		return nil, ErrSingular
	}
	var inv mat.Dense
	if err := inv.Inverse(asGonum(a)); err != nil {
		// Near-singular inputs can slip past the determinant check.
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	out, newErr := NewDense(a.rows, a.cols)
	if newErr != nil {
		return nil, newErr
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[i*a.cols+j] = inv.At(i, j)
		}
	}
	return out, nil
}

// Rank returns the rank of a non-empty matrix, computed from its singular
// values. Values below max(rows,cols)*eps*sigma_max are treated as zero.
func Rank(a *Dense) (int, error) {
	if a.IsEmpty() {
		return 0, ErrEmptyOperand
	}
	var svd mat.SVD
	if ok := svd.Factorize(asGonum(a), mat.SVDNone); !ok {
		return 0, fmt.Errorf("matrix: Rank: SVD factorization failed")
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 0, nil
	}
	n := a.rows
	if a.cols > n {
		n = a.cols
	}
	eps := math.Nextafter(1, 2) - 1
	tol := float64(n) * values[0] * eps
	rank := 0
	for _, v := range values {
		if v > tol {
			rank++
		}
	}
	return rank, nil
}
