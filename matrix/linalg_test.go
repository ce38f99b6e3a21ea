package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDet(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{
		4, 7,
		2, 6,
	})

	got, err := Det(a)
	require.NoError(t, err)
	assert.InDelta(t, 10, got, 1e-9)

	rect := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	_, err = Det(rect)
	assert.ErrorIs(t, err, ErrNotSquare)

	_, err = Det(nil)
	assert.ErrorIs(t, err, ErrEmptyOperand)
}

func TestInverse(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{
		4, 7,
		2, 6,
	})

	inv, err := Inverse(a)
	require.NoError(t, err)

	want := mustDense(t, 2, 2, []float64{
		0.6, -0.7,
		-0.2, 0.4,
	})
	assert.True(t, EqualApprox(inv, want, 1e-9))

	// Multiplying back recovers the identity.
	prod, err := Mul(a, inv)
	require.NoError(t, err)
	identity := mustDense(t, 2, 2, []float64{1, 0, 0, 1})
	assert.True(t, EqualApprox(prod, identity, 1e-9))
}

func TestInverse_Singular(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{
		1, 2,
		2, 4,
	})

	_, err := Inverse(a)
	assert.ErrorIs(t, err, ErrSingular)
}

func TestInverse_NotSquare(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	_, err := Inverse(a)
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestRank(t *testing.T) {
	full := mustDense(t, 2, 2, []float64{
		1, 0,
		0, 1,
	})
	got, err := Rank(full)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	deficient := mustDense(t, 3, 3, []float64{
		1, 2, 3,
		2, 4, 6,
		1, 1, 1,
	})
	got, err = Rank(deficient)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	rect := mustDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	got, err = Rank(rect)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = Rank(nil)
	assert.ErrorIs(t, err, ErrEmptyOperand)
}
