package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOperand is returned when an operation receives a matrix or
	// vector with no elements.
	ErrEmptyOperand = errors.New("matrix: empty operand")

	// ErrInvalidDimensions is returned when requested dimensions are not
	// positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be positive")

	// ErrNotSquare is returned when a square matrix is required.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a matrix has no inverse (zero determinant).
	ErrSingular = errors.New("matrix: matrix is singular")

	// ErrInvalidAxis is returned when an axis argument is not 0 (column-wise)
	// or 1 (row-wise).
	ErrInvalidAxis = errors.New("matrix: axis must be 0 or 1")
)

// ErrShapeMismatch indicates that two matrix operands have incompatible
// shapes for the attempted operation.
type ErrShapeMismatch struct {
	Op           string
	ARows, ACols int
	BRows, BCols int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("matrix: %s: shape mismatch: %dx%d vs %dx%d",
		e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

// ErrLengthMismatch indicates that two vector operands have different lengths.
type ErrLengthMismatch struct {
	Op   string
	A, B int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("matrix: %s: vector length mismatch: %d vs %d", e.Op, e.A, e.B)
}
