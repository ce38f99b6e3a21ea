package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

func checkSameShape(op string, a, b *Dense) error {
	if a.IsEmpty() || b.IsEmpty() {
		return ErrEmptyOperand
	}
	if a.rows != b.rows || a.cols != b.cols {
		return &ErrShapeMismatch{Op: op, ARows: a.rows, ACols: a.cols, BRows: b.rows, BCols: b.cols}
	}
	return nil
}

// Add returns the elementwise sum a+b. The operands must have identical
// shapes and must not be empty.
func Add(a, b *Dense) (*Dense, error) {
	if err := checkSameShape("Add", a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	floats.Add(out.data, b.data)
	return out, nil
}

// AddScalar returns a with s added to every element.
func AddScalar(a *Dense, s float64) (*Dense, error) {
	if a.IsEmpty() {
		return nil, ErrEmptyOperand
	}
	out := a.Clone()
	floats.AddConst(s, out.data)
	return out, nil
}

// Sub returns the elementwise difference a-b. The operands must have
// identical shapes and must not be empty.
func Sub(a, b *Dense) (*Dense, error) {
	if err := checkSameShape("Sub", a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	floats.Sub(out.data, b.data)
	return out, nil
}

// SubScalar returns a with s subtracted from every element.
func SubScalar(a *Dense, s float64) (*Dense, error) {
	return AddScalar(a, -s)
}

// Scale returns a with every element multiplied by s.
func Scale(a *Dense, s float64) (*Dense, error) {
	if a.IsEmpty() {
		return nil, ErrEmptyOperand
	}
	out := a.Clone()
	floats.Scale(s, out.data)
	return out, nil
}

// Mul returns the matrix product a*b. The column count of a must equal the
// row count of b.
func Mul(a, b *Dense) (*Dense, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return nil, ErrEmptyOperand
	}
	if a.cols != b.rows {
		return nil, &ErrShapeMismatch{Op: "Mul", ARows: a.rows, ACols: a.cols, BRows: b.rows, BCols: b.cols}
	}
	out, err := NewDense(a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.rows; i++ {
		arow := a.data[i*a.cols : (i+1)*a.cols]
		orow := out.data[i*out.cols : (i+1)*out.cols]
		for k, av := range arow {
			if av == 0 {
				continue
			}
			brow := b.data[k*b.cols : (k+1)*b.cols]
			floats.AddScaled(orow, av, brow)
		}
	}
	return out, nil
}

// Transpose returns the transpose of a.
func Transpose(a *Dense) (*Dense, error) {
	if a.IsEmpty() {
		return nil, ErrEmptyOperand
	}
	out, err := NewDense(a.cols, a.rows)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j*out.cols+i] = a.data[i*a.cols+j]
		}
	}
	return out, nil
}

// LogicalAnd returns the elementwise logical AND of a and b, treating nonzero
// values as true. The result holds 0 or 1. The operands must have identical
// shapes and must not be empty.
func LogicalAnd(a, b *Dense) (*Dense, error) {
	if err := checkSameShape("LogicalAnd", a, b); err != nil {
		return nil, err
	}
	out, _ := NewDense(a.rows, a.cols)
	for i, av := range a.data {
		if av != 0 && b.data[i] != 0 {
			out.data[i] = 1
		}
	}
	return out, nil
}

// LogicalOr returns the elementwise logical OR of a and b, treating nonzero
// values as true. The result holds 0 or 1. The operands must have identical
// shapes and must not be empty.
func LogicalOr(a, b *Dense) (*Dense, error) {
	if err := checkSameShape("LogicalOr", a, b); err != nil {
		return nil, err
	}
	out, _ := NewDense(a.rows, a.cols)
	for i, av := range a.data {
		if av != 0 || b.data[i] != 0 {
			out.data[i] = 1
		}
	}
	return out, nil
}

// LogicalNot returns the elementwise logical negation of a, treating nonzero
// values as true. The result holds 0 or 1.
func LogicalNot(a *Dense) (*Dense, error) {
	if a.IsEmpty() {
		return nil, ErrEmptyOperand
	}
	out, _ := NewDense(a.rows, a.cols)
	for i, av := range a.data {
		if av == 0 {
			out.data[i] = 1
		}
	}
	return out, nil
}

// Norm computes the p-norm of a along the given axis: axis 0 produces one
// value per column, axis 1 one value per row.
func Norm(a *Dense, p float64, axis int) ([]float64, error) {
	if a.IsEmpty() {
		return nil, ErrEmptyOperand
	}
	switch axis {
	case 0:
		out := make([]float64, a.cols)
		for j := 0; j < a.cols; j++ {
			var sum float64
			for i := 0; i < a.rows; i++ {
				sum += math.Pow(math.Abs(a.data[i*a.cols+j]), p)
			}
			out[j] = math.Pow(sum, 1/p)
		}
		return out, nil
	case 1:
		out := make([]float64, a.rows)
		for i := 0; i < a.rows; i++ {
			var sum float64
			for _, v := range a.data[i*a.cols : (i+1)*a.cols] {
				sum += math.Pow(math.Abs(v), p)
			}
			out[i] = math.Pow(sum, 1/p)
		}
		return out, nil
	default:
		return nil, ErrInvalidAxis
	}
}

// Normalize divides each column (axis 0) or row (axis 1) of a by its p-norm.
func Normalize(a *Dense, p float64, axis int) (*Dense, error) {
	norms, err := Norm(a, p, axis)
	if err != nil {
		return nil, err
	}
	out := a.Clone()
	switch axis {
	case 0:
		for j := 0; j < a.cols; j++ {
			if norms[j] == 0 {
				continue
			}
			for i := 0; i < a.rows; i++ {
				out.data[i*a.cols+j] /= norms[j]
			}
		}
	case 1:
		for i := 0; i < a.rows; i++ {
			if norms[i] == 0 {
				continue
			}
			floats.Scale(1/norms[i], out.data[i*a.cols:(i+1)*a.cols])
		}
	}
	return out, nil
}

// FrobeniusNorm returns the Frobenius norm of a.
func FrobeniusNorm(a *Dense) (float64, error) {
	if a.IsEmpty() {
		return 0, ErrEmptyOperand
	}
	return math.Sqrt(floats.Dot(a.data, a.data)), nil
}

// Trace returns the sum of the diagonal elements of a square matrix.
func Trace(a *Dense) (float64, error) {
	if a.IsEmpty() {
		return 0, ErrEmptyOperand
	}
	if a.rows != a.cols {
		return 0, ErrNotSquare
	}
	var sum float64
	for i := 0; i < a.rows; i++ {
		sum += a.data[i*a.cols+i]
	}
	return sum, nil
}

// Dot returns the dot product of two equal-length, non-empty vectors.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrLengthMismatch{Op: "Dot", A: len(a), B: len(b)}
	}
	if len(a) == 0 {
		return 0, ErrEmptyOperand
	}
	return floats.Dot(a, b), nil
}

// Outer returns the outer product of two non-empty vectors as a
// len(a)×len(b) matrix.
func Outer(a, b []float64) (*Dense, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyOperand
	}
	out, err := NewDense(len(a), len(b))
	if err != nil {
		return nil, err
	}
	for i, av := range a {
		row := out.data[i*len(b) : (i+1)*len(b)]
		for j, bv := range b {
			row[j] = av * bv
		}
	}
	return out, nil
}

// EqualApprox reports whether a and b have the same shape and their elements
// differ by at most tol.
func EqualApprox(a, b *Dense, tol float64) bool {
	if a.IsEmpty() || b.IsEmpty() || a.rows != b.rows || a.cols != b.cols {
		return false
	}
	return floats.EqualApprox(a.data, b.data, tol)
}
