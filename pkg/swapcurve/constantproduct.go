package swapcurve

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/poolswap-network/poolswap-core/pkg/mathutil"
)

// ConstantProductCurve implements the classic x*y=k formula. Swaps round the
// new destination reserve up so that the invariant never decreases.
type ConstantProductCurve struct{}

func (c *ConstantProductCurve) SwapWithoutFees(
	sourceAmount, sourceReserve, destReserve uint64, _ TradeDirection,
) (*SwapWithoutFeesResult, error) {
	return constantProductSwap(sourceAmount, sourceReserve, destReserve)
}

func (c *ConstantProductCurve) PoolTokensToTradingTokens(
	poolTokens, poolTokenSupply, reserveA, reserveB uint64,
	rounding RoundDirection,
) (*TradingTokenResult, error) {
	return proportionalTradingTokens(
		poolTokens, poolTokenSupply, reserveA, reserveB, rounding,
	)
}

func (c *ConstantProductCurve) DepositSingleTokenType(
	sourceAmount, reserveA, reserveB, poolTokenSupply uint64,
	direction TradeDirection,
) (uint64, error) {
	reserve := reserveA
	if direction == TradeDirectionBtoA {
		reserve = reserveB
	}
	return sqrtDepositPoolTokens(sourceAmount, reserve, poolTokenSupply)
}

func (c *ConstantProductCurve) WithdrawSingleTokenTypeExactOut(
	destinationAmount, reserveA, reserveB, poolTokenSupply uint64,
	direction TradeDirection,
) (uint64, error) {
	reserve := reserveA
	if direction == TradeDirectionBtoA {
		reserve = reserveB
	}
	return sqrtWithdrawPoolTokens(destinationAmount, reserve, poolTokenSupply)
}

// NormalizedValue is 2*sqrt(a*b), the value function of the product curve.
// For a balanced pair it equals a+b, giving the first depositor a 1:1 rate.
func (c *ConstantProductCurve) NormalizedValue(
	reserveA, reserveB uint64,
) (uint64, error) {
	product := new(big.Int).Mul(
		new(big.Int).SetUint64(reserveA), new(big.Int).SetUint64(reserveB),
	)
	value := new(big.Int).Mul(mathutil.BigSqrt(product), big.NewInt(2))
	if !value.IsUint64() {
		return 0, mathutil.ErrOverflow
	}
	return value.Uint64(), nil
}

func (c *ConstantProductCurve) ValidateSupply(reserveA, reserveB uint64) error {
	if reserveA == 0 || reserveB == 0 {
		return ErrEmptySupply
	}
	return nil
}

func (c *ConstantProductCurve) SpotPrice(
	reserveA, reserveB uint64, direction TradeDirection,
) (decimal.Decimal, error) {
	if reserveA == 0 || reserveB == 0 {
		return decimal.Zero, ErrEmptySupply
	}
	if direction == TradeDirectionAtoB {
		return mathutil.Div(reserveB, reserveA), nil
	}
	return mathutil.Div(reserveA, reserveB), nil
}

func (c *ConstantProductCurve) AllowsDeposits() bool { return true }

func (c *ConstantProductCurve) Type() CurveType { return CurveTypeConstantProduct }

// constantProductSwap moves sourceAmount along x*y=k. The new destination
// reserve is the ceiling of k/(x+dx), keeping the rounding remainder in the
// pool.
func constantProductSwap(
	sourceAmount, sourceReserve, destReserve uint64,
) (*SwapWithoutFeesResult, error) {
	if sourceAmount == 0 {
		return nil, ErrZeroTradingTokens
	}
	newSourceReserve, err := mathutil.CheckedAdd(sourceReserve, sourceAmount)
	if err != nil {
		return nil, err
	}
	newDestReserve, err := mathutil.MulDivCeil(
		sourceReserve, destReserve, newSourceReserve,
	)
	if err != nil {
		return nil, err
	}
	destAmount, err := mathutil.CheckedSub(destReserve, newDestReserve)
	if err != nil {
		return nil, err
	}
	if destAmount == 0 {
		return nil, ErrZeroTradingTokens
	}
	return &SwapWithoutFeesResult{
		SourceAmountSwapped:      sourceAmount,
		DestinationAmountSwapped: destAmount,
	}, nil
}

// proportionalTradingTokens converts pool tokens to the pro-rata share of
// both reserves. Used by every variant: a pool token is always a
// proportional claim, only its valuation differs across curves.
func proportionalTradingTokens(
	poolTokens, poolTokenSupply, reserveA, reserveB uint64,
	rounding RoundDirection,
) (*TradingTokenResult, error) {
	if poolTokenSupply == 0 {
		return nil, ErrEmptySupply
	}
	if poolTokens == 0 {
		return nil, ErrZeroTradingTokens
	}

	convert := mathutil.MulDiv
	if rounding == RoundUp {
		convert = mathutil.MulDivCeil
	}
	tokenA, err := convert(poolTokens, reserveA, poolTokenSupply)
	if err != nil {
		return nil, err
	}
	tokenB, err := convert(poolTokens, reserveB, poolTokenSupply)
	if err != nil {
		return nil, err
	}
	if tokenA == 0 && tokenB == 0 {
		return nil, ErrZeroTradingTokens
	}
	return &TradingTokenResult{TokenAAmount: tokenA, TokenBAmount: tokenB}, nil
}

// sqrtDepositPoolTokens prices a single-sided deposit on the product curve:
// minted = supply * (sqrt((reserve+amount)/reserve) - 1), floored.
func sqrtDepositPoolTokens(
	sourceAmount, reserve, poolTokenSupply uint64,
) (uint64, error) {
	if reserve == 0 || poolTokenSupply == 0 {
		return 0, ErrEmptySupply
	}
	if sourceAmount == 0 {
		return 0, ErrZeroTradingTokens
	}
	newReserve, err := mathutil.CheckedAdd(reserve, sourceAmount)
	if err != nil {
		return 0, err
	}

	supply := new(big.Int).SetUint64(poolTokenSupply)
	scaled := new(big.Int).Mul(supply, supply)
	scaled.Mul(scaled, new(big.Int).SetUint64(newReserve))
	scaled.Quo(scaled, new(big.Int).SetUint64(reserve))

	minted := new(big.Int).Sub(mathutil.BigSqrt(scaled), supply)
	if minted.Sign() <= 0 {
		return 0, ErrZeroTradingTokens
	}
	if !minted.IsUint64() {
		return 0, mathutil.ErrOverflow
	}
	return minted.Uint64(), nil
}

// sqrtWithdrawPoolTokens is the inverse of sqrtDepositPoolTokens for an exact
// destination amount: burned = supply - sqrt(supply^2 * (reserve-amount)/reserve).
// Flooring the root rounds the burned amount up, in the pool's favor.
func sqrtWithdrawPoolTokens(
	destinationAmount, reserve, poolTokenSupply uint64,
) (uint64, error) {
	if reserve == 0 || poolTokenSupply == 0 {
		return 0, ErrEmptySupply
	}
	if destinationAmount == 0 {
		return 0, ErrZeroTradingTokens
	}
	remaining, err := mathutil.CheckedSub(reserve, destinationAmount)
	if err != nil {
		return 0, err
	}

	supply := new(big.Int).SetUint64(poolTokenSupply)
	scaled := new(big.Int).Mul(supply, supply)
	scaled.Mul(scaled, new(big.Int).SetUint64(remaining))
	scaled.Quo(scaled, new(big.Int).SetUint64(reserve))

	burned := new(big.Int).Sub(supply, mathutil.BigSqrt(scaled))
	if burned.Sign() <= 0 {
		return 0, ErrZeroTradingTokens
	}
	if !burned.IsUint64() {
		return 0, mathutil.ErrOverflow
	}
	return burned.Uint64(), nil
}
