package swapcurve

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/poolswap-network/poolswap-core/pkg/mathutil"
)

// OffsetCurve is a constant product curve with a virtual, non-withdrawable
// amount added to the token B reserve: (a) * (b + offset) = k. It lets a
// pool discover a price before any real token B liquidity exists.
type OffsetCurve struct {
	TokenBOffset uint64
}

// NewOffsetCurve rejects a zero offset, which would degenerate into a plain
// constant product curve.
func NewOffsetCurve(tokenBOffset uint64) (*OffsetCurve, error) {
	if tokenBOffset == 0 {
		return nil, ErrInvalidCurveParameters
	}
	return &OffsetCurve{TokenBOffset: tokenBOffset}, nil
}

func (c *OffsetCurve) SwapWithoutFees(
	sourceAmount, sourceReserve, destReserve uint64, direction TradeDirection,
) (*SwapWithoutFeesResult, error) {
	virtualSource, virtualDest := sourceReserve, destReserve
	var err error
	if direction == TradeDirectionAtoB {
		virtualDest, err = mathutil.CheckedAdd(destReserve, c.TokenBOffset)
	} else {
		virtualSource, err = mathutil.CheckedAdd(sourceReserve, c.TokenBOffset)
	}
	if err != nil {
		return nil, err
	}

	res, err := constantProductSwap(sourceAmount, virtualSource, virtualDest)
	if err != nil {
		return nil, err
	}
	// The offset is not backed by real tokens: the pool can never pay out
	// more than the actual destination reserve.
	if res.DestinationAmountSwapped > destReserve {
		return nil, ErrCalculationFailure
	}
	return res, nil
}

func (c *OffsetCurve) PoolTokensToTradingTokens(
	poolTokens, poolTokenSupply, reserveA, reserveB uint64,
	rounding RoundDirection,
) (*TradingTokenResult, error) {
	// Withdrawals operate on real reserves only, the offset stays in the pool.
	return proportionalTradingTokens(
		poolTokens, poolTokenSupply, reserveA, reserveB, rounding,
	)
}

func (c *OffsetCurve) DepositSingleTokenType(
	sourceAmount, reserveA, reserveB, poolTokenSupply uint64,
	direction TradeDirection,
) (uint64, error) {
	return 0, ErrUnsupportedCurveOperation
}

func (c *OffsetCurve) WithdrawSingleTokenTypeExactOut(
	destinationAmount, reserveA, reserveB, poolTokenSupply uint64,
	direction TradeDirection,
) (uint64, error) {
	reserve := reserveA
	if direction == TradeDirectionBtoA {
		reserve = reserveB
	}
	return sqrtWithdrawPoolTokens(destinationAmount, reserve, poolTokenSupply)
}

// NormalizedValue uses the virtual token B reserve, mirroring the invariant
// the swaps preserve.
func (c *OffsetCurve) NormalizedValue(reserveA, reserveB uint64) (uint64, error) {
	virtualB, err := mathutil.CheckedAdd(reserveB, c.TokenBOffset)
	if err != nil {
		return 0, err
	}
	product := new(big.Int).Mul(
		new(big.Int).SetUint64(reserveA), new(big.Int).SetUint64(virtualB),
	)
	value := new(big.Int).Mul(mathutil.BigSqrt(product), big.NewInt(2))
	if !value.IsUint64() {
		return 0, mathutil.ErrOverflow
	}
	return value.Uint64(), nil
}

// ValidateSupply accepts an empty token B reserve: the offset seeds that side.
func (c *OffsetCurve) ValidateSupply(reserveA, _ uint64) error {
	if reserveA == 0 {
		return ErrEmptySupply
	}
	return nil
}

func (c *OffsetCurve) SpotPrice(
	reserveA, reserveB uint64, direction TradeDirection,
) (decimal.Decimal, error) {
	if reserveA == 0 {
		return decimal.Zero, ErrEmptySupply
	}
	virtualB, err := mathutil.CheckedAdd(reserveB, c.TokenBOffset)
	if err != nil {
		return decimal.Zero, err
	}
	if direction == TradeDirectionAtoB {
		return mathutil.Div(virtualB, reserveA), nil
	}
	return mathutil.Div(reserveA, virtualB), nil
}

// AllowsDeposits is false: minting pool tokens against a virtual reserve
// would assign depositors value that does not exist.
func (c *OffsetCurve) AllowsDeposits() bool { return false }

func (c *OffsetCurve) Type() CurveType { return CurveTypeOffset }
