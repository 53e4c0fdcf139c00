package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedAdd(t *testing.T) {
	z, err := CheckedAdd(2, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), z)

	z, err = CheckedAdd(math.MaxUint64, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), z)

	_, err = CheckedAdd(math.MaxUint64, 1)
	assert.Equal(t, ErrOverflow, err)
}

func TestCheckedSub(t *testing.T) {
	z, err := CheckedSub(5, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), z)

	_, err = CheckedSub(3, 5)
	assert.Equal(t, ErrOverflow, err)
}

func TestCheckedMul(t *testing.T) {
	z, err := CheckedMul(1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000), z)

	z, err = CheckedMul(0, math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), z)

	_, err = CheckedMul(math.MaxUint64, 2)
	assert.Equal(t, ErrOverflow, err)
}

func TestCheckedDiv(t *testing.T) {
	z, err := CheckedDiv(7, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), z)

	_, err = CheckedDiv(7, 0)
	assert.Equal(t, ErrDivideByZero, err)
}

func TestCheckedCeilDiv(t *testing.T) {
	tests := []struct {
		x, y, want uint64
	}{
		{7, 2, 4},
		{6, 2, 3},
		{1, 100, 1},
		{0, 100, 0},
		{math.MaxUint64, 1, math.MaxUint64},
	}
	for _, tt := range tests {
		z, err := CheckedCeilDiv(tt.x, tt.y)
		require.NoError(t, err)
		assert.Equal(t, tt.want, z)
	}

	_, err := CheckedCeilDiv(1, 0)
	assert.Equal(t, ErrDivideByZero, err)
}

func TestMulDiv(t *testing.T) {
	z, err := MulDiv(100, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), z)

	// double-width intermediate: max * max / max = max
	z, err = MulDiv(math.MaxUint64, math.MaxUint64, math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), z)

	_, err = MulDiv(math.MaxUint64, 2, 1)
	assert.Equal(t, ErrOverflow, err)

	_, err = MulDiv(1, 1, 0)
	assert.Equal(t, ErrDivideByZero, err)
}

func TestMulDivCeil(t *testing.T) {
	z, err := MulDivCeil(100, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), z)

	z, err = MulDivCeil(101, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), z)

	z, err = MulDivCeil(99, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), z)

	_, err = MulDivCeil(1, 1, 0)
	assert.Equal(t, ErrDivideByZero, err)
}

func TestFloorCeilConsistency(t *testing.T) {
	for _, v := range []uint64{0, 1, 99, 100, 101, 12345, math.MaxUint64 / 3} {
		floor, err := MulDiv(v, 25, 10000)
		require.NoError(t, err)
		ceil, err := MulDivCeil(v, 25, 10000)
		require.NoError(t, err)
		assert.True(t, ceil >= floor)
		assert.True(t, ceil-floor <= 1)
	}
}
