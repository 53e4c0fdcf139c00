// Package swapcurve defines the pricing curves a liquidity pool can be
// configured with, together with the fee calculator applied on top of them.
package swapcurve

import (
	"errors"

	"github.com/shopspring/decimal"
)

// CurveType discriminates the closed set of supported pricing curves.
type CurveType int

const (
	CurveTypeConstantProduct CurveType = iota
	CurveTypeConstantPrice
	CurveTypeStable
	CurveTypeOffset
)

// String returns the human readable name of the curve type.
func (t CurveType) String() string {
	switch t {
	case CurveTypeConstantProduct:
		return "constant_product"
	case CurveTypeConstantPrice:
		return "constant_price"
	case CurveTypeStable:
		return "stable"
	case CurveTypeOffset:
		return "offset"
	default:
		return "unknown"
	}
}

// ParseCurveType parses the string form produced by String.
func ParseCurveType(s string) (CurveType, error) {
	switch s {
	case "constant_product":
		return CurveTypeConstantProduct, nil
	case "constant_price":
		return CurveTypeConstantPrice, nil
	case "stable":
		return CurveTypeStable, nil
	case "offset":
		return CurveTypeOffset, nil
	default:
		return 0, ErrInvalidCurveParameters
	}
}

// TradeDirection tells which side of the pair is being sold.
type TradeDirection int

const (
	TradeDirectionAtoB TradeDirection = iota
	TradeDirectionBtoA
)

// RoundDirection drives the rounding of pool token conversions: withdrawals
// round down to protect the pool, deposits round up to protect the holders.
type RoundDirection int

const (
	RoundDown RoundDirection = iota
	RoundUp
)

var (
	// ErrZeroTradingTokens is thrown when a non-zero request would result in zero tokens moved
	ErrZeroTradingTokens = errors.New("given amount results in zero trading tokens")
	// ErrCalculationFailure is thrown when an iterative solver does not converge within its budget
	ErrCalculationFailure = errors.New("curve calculation failure")
	// ErrEmptySupply is thrown when a pool reserve required by the curve is zero
	ErrEmptySupply = errors.New("pool reserves must not be empty")
	// ErrInvalidCurveParameters ...
	ErrInvalidCurveParameters = errors.New("curve parameters are not valid")
	// ErrUnsupportedCurveOperation is thrown for operations a curve variant does not allow
	ErrUnsupportedCurveOperation = errors.New("operation is not supported by the curve")
)

// SwapWithoutFeesResult holds the outcome of a fee-less swap computed by a curve.
type SwapWithoutFeesResult struct {
	// Amount of source tokens the curve actually consumed. It can be lower
	// than the requested amount when the formula cannot use it all.
	SourceAmountSwapped uint64
	// Amount of destination tokens the pool gives back.
	DestinationAmountSwapped uint64
}

// TradingTokenResult holds the token pair amounts corresponding to an amount
// of pool tokens.
type TradingTokenResult struct {
	TokenAAmount uint64
	TokenBAmount uint64
}

// Params carries the variant-specific curve parameters. Only the field
// relevant to the configured CurveType is read.
type Params struct {
	// Amplification coefficient of the stable curve.
	Amp uint64
	// Fixed price of token B denominated in token A units.
	TokenBPrice uint64
	// Virtual amount added to the token B reserve.
	TokenBOffset uint64
}

// Calculator is the capability interface every curve variant implements.
// All operations are pure: they take reserve snapshots and return decisions.
type Calculator interface {
	// SwapWithoutFees computes the destination amount given a net source
	// amount, without applying any trading fee.
	SwapWithoutFees(
		sourceAmount, sourceReserve, destReserve uint64,
		direction TradeDirection,
	) (*SwapWithoutFeesResult, error)

	// PoolTokensToTradingTokens converts an amount of pool tokens to the
	// underlying token pair amounts, honoring the given rounding direction.
	PoolTokensToTradingTokens(
		poolTokens, poolTokenSupply, reserveA, reserveB uint64,
		rounding RoundDirection,
	) (*TradingTokenResult, error)

	// DepositSingleTokenType returns the amount of pool tokens minted for a
	// single-sided deposit of the given source amount. For single-sided
	// operations the direction names the side involved: TradeDirectionAtoB
	// means token A, TradeDirectionBtoA token B.
	DepositSingleTokenType(
		sourceAmount, reserveA, reserveB, poolTokenSupply uint64,
		direction TradeDirection,
	) (uint64, error)

	// WithdrawSingleTokenTypeExactOut returns the amount of pool tokens to
	// burn to withdraw exactly destinationAmount of one side.
	WithdrawSingleTokenTypeExactOut(
		destinationAmount, reserveA, reserveB, poolTokenSupply uint64,
		direction TradeDirection,
	) (uint64, error)

	// NormalizedValue values the two reserves in pool token units. It sets
	// the amount minted by the very first deposit.
	NormalizedValue(reserveA, reserveB uint64) (uint64, error)

	// ValidateSupply rejects reserve snapshots the curve cannot price.
	ValidateSupply(reserveA, reserveB uint64) error

	// SpotPrice returns the marginal destination/source price for the pair.
	SpotPrice(
		reserveA, reserveB uint64, direction TradeDirection,
	) (decimal.Decimal, error)

	// AllowsDeposits tells whether the curve accepts new liquidity.
	AllowsDeposits() bool

	Type() CurveType
}

// NewCalculator returns the calculator matching the given curve type.
func NewCalculator(t CurveType, params Params) (Calculator, error) {
	switch t {
	case CurveTypeConstantProduct:
		return &ConstantProductCurve{}, nil
	case CurveTypeConstantPrice:
		return NewConstantPriceCurve(params.TokenBPrice)
	case CurveTypeStable:
		return NewStableCurve(params.Amp)
	case CurveTypeOffset:
		return NewOffsetCurve(params.TokenBOffset)
	default:
		return nil, ErrInvalidCurveParameters
	}
}
