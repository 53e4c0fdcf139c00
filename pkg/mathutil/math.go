package mathutil

import (
	"errors"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// ErrOverflow is thrown when the result of a checked operation does not fit into an uint64
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrDivideByZero ...
	ErrDivideByZero = errors.New("division by zero")
)

func init() {
	decimal.DivisionPrecision = 8
}

// CheckedAdd takes two uint64 numbers and returns x + y, or ErrOverflow if the sum wraps
func CheckedAdd(x, y uint64) (uint64, error) {
	if x > math.MaxUint64-y {
		return 0, ErrOverflow
	}
	return x + y, nil
}

// CheckedSub takes two uint64 numbers and returns x - y, or ErrOverflow if y > x
func CheckedSub(x, y uint64) (uint64, error) {
	if y > x {
		return 0, ErrOverflow
	}
	return x - y, nil
}

// CheckedMul takes two uint64 numbers and returns x * y, or ErrOverflow if the product wraps
func CheckedMul(x, y uint64) (uint64, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}
	z := x * y
	if z/x != y {
		return 0, ErrOverflow
	}
	return z, nil
}

// CheckedDiv takes two uint64 numbers and returns floor(x / y), or ErrDivideByZero
func CheckedDiv(x, y uint64) (uint64, error) {
	if y == 0 {
		return 0, ErrDivideByZero
	}
	return x / y, nil
}

// CheckedCeilDiv takes two uint64 numbers and returns ceil(x / y), or ErrDivideByZero
func CheckedCeilDiv(x, y uint64) (uint64, error) {
	if y == 0 {
		return 0, ErrDivideByZero
	}
	z := x / y
	if x%y != 0 {
		z++
	}
	return z, nil
}

// MulDiv returns floor(value * numerator / denominator). The multiplication goes
// through a big.Int intermediate so it cannot wrap before the division.
func MulDiv(value, numerator, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, ErrDivideByZero
	}
	z := new(big.Int).Mul(
		new(big.Int).SetUint64(value), new(big.Int).SetUint64(numerator),
	)
	z.Quo(z, new(big.Int).SetUint64(denominator))
	if !z.IsUint64() {
		return 0, ErrOverflow
	}
	return z.Uint64(), nil
}

// MulDivCeil returns ceil(value * numerator / denominator) with the same
// double-width guarantees of MulDiv.
func MulDivCeil(value, numerator, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, ErrDivideByZero
	}
	den := new(big.Int).SetUint64(denominator)
	z := new(big.Int).Mul(
		new(big.Int).SetUint64(value), new(big.Int).SetUint64(numerator),
	)
	z.Add(z, new(big.Int).Sub(den, big.NewInt(1)))
	z.Quo(z, den)
	if !z.IsUint64() {
		return 0, ErrOverflow
	}
	return z.Uint64(), nil
}

// BigSqrt returns the integer square root of the given big.Int.
func BigSqrt(x *big.Int) *big.Int {
	return new(big.Int).Sqrt(x)
}

// Div takes two uint64 numbers and divides them x / y and returns the result as decimal.Decimal
func Div(x, y uint64) (z decimal.Decimal) {
	X, Y := decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0), decimal.NewFromBigInt(new(big.Int).SetUint64(y), 0)
	z = DivDecimal(X, Y)
	return
}

// DivDecimal takes two decimal.Decimal numbers and divides them x / y and returns the result as decimal.Decimal
func DivDecimal(X, Y decimal.Decimal) (z decimal.Decimal) {
	z = X.Div(Y)
	return
}
