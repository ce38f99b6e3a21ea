package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense(t *testing.T) {
	m, err := NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 0.0, m.At(1, 2))

	_, err = NewDense(0, 3)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewDense(2, -1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewDenseFromData(t *testing.T) {
	m, err := NewDenseFromData(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 2.0, m.At(0, 1))
	assert.Equal(t, 3.0, m.At(1, 0))
	assert.Equal(t, 4.0, m.At(1, 1))

	_, err = NewDenseFromData(2, 2, []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestNewDenseFromColumns(t *testing.T) {
	m, err := NewDenseFromColumns([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, []float64{3, 4}, m.Col(1))

	_, err = NewDenseFromColumns(nil)
	assert.ErrorIs(t, err, ErrEmptyOperand)

	_, err = NewDenseFromColumns([][]float64{{1, 2}, {3}})
	var lengthErr *ErrLengthMismatch
	assert.ErrorAs(t, err, &lengthErr)
}

func TestDense_AtSetPanics(t *testing.T) {
	m, err := NewDense(2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0, -1) })
	assert.Panics(t, func() { m.Set(-1, 0, 1) })
	assert.Panics(t, func() { m.Col(5) })
}

func TestDense_Columns(t *testing.T) {
	m, err := NewDenseFromData(3, 2, []float64{
		1, 4,
		2, 5,
		3, 6,
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, m.Col(0))

	m.SetCol(1, []float64{7, 8, 9})
	assert.Equal(t, []float64{7, 8, 9}, m.Col(1))

	dst := make([]float64, 3)
	m.CopyCol(dst, 0)
	assert.Equal(t, []float64{1, 2, 3}, dst)

	assert.Equal(t, []float64{1, 7}, m.Row(0))
}

func TestDense_RowMinsMaxs(t *testing.T) {
	m, err := NewDenseFromData(2, 3, []float64{
		3, -1, 2,
		0, 5, -4,
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{-1, -4}, m.RowMins())
	assert.Equal(t, []float64{3, 5}, m.RowMaxs())
}

func TestDense_Clone(t *testing.T) {
	m, err := NewDenseFromData(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	clone := m.Clone()
	clone.Set(0, 0, 99)

	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 99.0, clone.At(0, 0))
}

func TestDense_CopyFrom(t *testing.T) {
	dst, err := NewDense(2, 2)
	require.NoError(t, err)
	src, err := NewDenseFromData(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, 4.0, dst.At(1, 1))

	other, err := NewDense(3, 2)
	require.NoError(t, err)
	var shapeErr *ErrShapeMismatch
	assert.ErrorAs(t, dst.CopyFrom(other), &shapeErr)
}

func TestDense_IsEmpty(t *testing.T) {
	var nilMatrix *Dense
	assert.True(t, nilMatrix.IsEmpty())

	m, err := NewDense(1, 1)
	require.NoError(t, err)
	assert.False(t, m.IsEmpty())
}

func TestDense_String(t *testing.T) {
	m, err := NewDenseFromData(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
