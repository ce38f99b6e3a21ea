package matrix

import (
	"fmt"
	"strings"
)

// Dense is a dense matrix of float64 values stored in row-major order.
type Dense struct {
	rows, cols int
	data       []float64 // length rows*cols
}

// NewDense creates a rows×cols matrix initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromData creates a rows×cols matrix backed by a copy of data, which
// must be in row-major order and hold exactly rows*cols values.
func NewDenseFromData(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("matrix: need %d values for %dx%d, got %d",
			rows*cols, rows, cols, len(data))
	}
	d := make([]float64, len(data))
	copy(d, data)
	return &Dense{rows: rows, cols: cols, data: d}, nil
}

// NewDenseFromColumns creates a matrix whose i-th column is cols[i]. All
// columns must have the same length.
func NewDenseFromColumns(cols [][]float64) (*Dense, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrEmptyOperand
	}
	rows := len(cols[0])
	m, err := NewDense(rows, len(cols))
	if err != nil {
		return nil, err
	}
	for j, col := range cols {
		if len(col) != rows {
			return nil, &ErrLengthMismatch{Op: "NewDenseFromColumns", A: rows, B: len(col)}
		}
		m.SetCol(j, col)
	}
	return m, nil
}

// Rows returns the number of rows (features).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns (samples).
func (m *Dense) Cols() int { return m.cols }

// Dims returns the row and column counts.
func (m *Dense) Dims() (rows, cols int) { return m.rows, m.cols }

// IsEmpty reports whether the matrix holds no elements. A nil matrix is empty.
func (m *Dense) IsEmpty() bool { return m == nil || m.rows == 0 || m.cols == 0 }

// At returns the element at (row, col). It panics if the index is out of range.
func (m *Dense) At(row, col int) float64 {
	m.checkIndex(row, col)
	return m.data[row*m.cols+col]
}

// Set assigns v to the element at (row, col). It panics if the index is out
// of range.
func (m *Dense) Set(row, col int, v float64) {
	m.checkIndex(row, col)
	m.data[row*m.cols+col] = v
}

func (m *Dense) checkIndex(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", row, col, m.rows, m.cols))
	}
}

// Col returns a copy of column j. It panics if j is out of range.
func (m *Dense) Col(j int) []float64 {
	dst := make([]float64, m.rows)
	m.CopyCol(dst, j)
	return dst
}

// CopyCol copies column j into dst, which must have length Rows. It panics if
// j is out of range or dst has the wrong length.
func (m *Dense) CopyCol(dst []float64, j int) {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: column %d out of range for %dx%d", j, m.rows, m.cols))
	}
	if len(dst) != m.rows {
		panic(fmt.Sprintf("matrix: dst length %d, want %d", len(dst), m.rows))
	}
	for i := 0; i < m.rows; i++ {
		dst[i] = m.data[i*m.cols+j]
	}
}

// SetCol overwrites column j with src, which must have length Rows. It panics
// if j is out of range or src has the wrong length.
func (m *Dense) SetCol(j int, src []float64) {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: column %d out of range for %dx%d", j, m.rows, m.cols))
	}
	if len(src) != m.rows {
		panic(fmt.Sprintf("matrix: src length %d, want %d", len(src), m.rows))
	}
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+j] = src[i]
	}
}

// Row returns a copy of row i. It panics if i is out of range.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("matrix: row %d out of range for %dx%d", i, m.rows, m.cols))
	}
	dst := make([]float64, m.cols)
	copy(dst, m.data[i*m.cols:(i+1)*m.cols])
	return dst
}

// RowMins returns the minimum of each row across all columns.
func (m *Dense) RowMins() []float64 {
	mins := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		best := row[0]
		for _, v := range row[1:] {
			if v < best {
				best = v
			}
		}
		mins[i] = best
	}
	return mins
}

// RowMaxs returns the maximum of each row across all columns.
func (m *Dense) RowMaxs() []float64 {
	maxs := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		best := row[0]
		for _, v := range row[1:] {
			if v > best {
				best = v
			}
		}
		maxs[i] = best
	}
	return maxs
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// CopyFrom overwrites the receiver with the contents of src, which must have
// the same shape.
func (m *Dense) CopyFrom(src *Dense) error {
	if m.rows != src.rows || m.cols != src.cols {
		return &ErrShapeMismatch{Op: "CopyFrom", ARows: m.rows, ACols: m.cols, BRows: src.rows, BCols: src.cols}
	}
	copy(m.data, src.data)
	return nil
}

// RawData returns the backing slice in row-major order. Mutating it mutates
// the matrix.
func (m *Dense) RawData() []float64 { return m.data }

// String implements fmt.Stringer.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.cols+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
