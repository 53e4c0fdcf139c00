package swapcurve

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/poolswap-network/poolswap-core/pkg/mathutil"
)

// ConstantPriceCurve exchanges the pair at a fixed rate: one token B always
// costs TokenBPrice token A units, regardless of the trade size.
type ConstantPriceCurve struct {
	TokenBPrice uint64
}

// NewConstantPriceCurve rejects a zero price, the curve would otherwise
// divide by zero on every A to B trade.
func NewConstantPriceCurve(tokenBPrice uint64) (*ConstantPriceCurve, error) {
	if tokenBPrice == 0 {
		return nil, ErrInvalidCurveParameters
	}
	return &ConstantPriceCurve{TokenBPrice: tokenBPrice}, nil
}

func (c *ConstantPriceCurve) SwapWithoutFees(
	sourceAmount, sourceReserve, destReserve uint64, direction TradeDirection,
) (*SwapWithoutFeesResult, error) {
	if sourceAmount == 0 {
		return nil, ErrZeroTradingTokens
	}

	if direction == TradeDirectionBtoA {
		destAmount, err := mathutil.CheckedMul(sourceAmount, c.TokenBPrice)
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

	destAmount, err := mathutil.CheckedDiv(sourceAmount, c.TokenBPrice)
	if err != nil {
		return nil, err
	}
	if destAmount == 0 {
		return nil, ErrZeroTradingTokens
	}
	// Only consume the amount the integer price can actually convert, the
	// dust remainder stays with the trader.
	consumed, err := mathutil.CheckedMul(destAmount, c.TokenBPrice)
	if err != nil {
		return nil, err
	}
	return &SwapWithoutFeesResult{
		SourceAmountSwapped:      consumed,
		DestinationAmountSwapped: destAmount,
	}, nil
}

func (c *ConstantPriceCurve) PoolTokensToTradingTokens(
	poolTokens, poolTokenSupply, reserveA, reserveB uint64,
	rounding RoundDirection,
) (*TradingTokenResult, error) {
	return proportionalTradingTokens(
		poolTokens, poolTokenSupply, reserveA, reserveB, rounding,
	)
}

func (c *ConstantPriceCurve) DepositSingleTokenType(
	sourceAmount, reserveA, reserveB, poolTokenSupply uint64,
	direction TradeDirection,
) (uint64, error) {
	if poolTokenSupply == 0 {
		return 0, ErrEmptySupply
	}
	if sourceAmount == 0 {
		return 0, ErrZeroTradingTokens
	}
	depositValue, err := c.tokenValue(sourceAmount, direction)
	if err != nil {
		return 0, err
	}
	totalValue, err := c.NormalizedValue(reserveA, reserveB)
	if err != nil {
		return 0, err
	}
	if totalValue == 0 {
		return 0, ErrEmptySupply
	}
	minted, err := mathutil.MulDiv(poolTokenSupply, depositValue, totalValue)
	if err != nil {
		return 0, err
	}
	if minted == 0 {
		return 0, ErrZeroTradingTokens
	}
	return minted, nil
}

func (c *ConstantPriceCurve) WithdrawSingleTokenTypeExactOut(
	destinationAmount, reserveA, reserveB, poolTokenSupply uint64,
	direction TradeDirection,
) (uint64, error) {
	if poolTokenSupply == 0 {
		return 0, ErrEmptySupply
	}
	if destinationAmount == 0 {
		return 0, ErrZeroTradingTokens
	}
	withdrawValue, err := c.tokenValue(destinationAmount, direction)
	if err != nil {
		return 0, err
	}
	totalValue, err := c.NormalizedValue(reserveA, reserveB)
	if err != nil {
		return 0, err
	}
	if totalValue == 0 {
		return 0, ErrEmptySupply
	}
	burned, err := mathutil.MulDivCeil(poolTokenSupply, withdrawValue, totalValue)
	if err != nil {
		return 0, err
	}
	if burned == 0 {
		return 0, ErrZeroTradingTokens
	}
	return burned, nil
}

// NormalizedValue is reserveA + price*reserveB, the pair valued in token A
// units.
func (c *ConstantPriceCurve) NormalizedValue(
	reserveA, reserveB uint64,
) (uint64, error) {
	value := new(big.Int).Mul(
		new(big.Int).SetUint64(reserveB), new(big.Int).SetUint64(c.TokenBPrice),
	)
	value.Add(value, new(big.Int).SetUint64(reserveA))
	if !value.IsUint64() {
		return 0, mathutil.ErrOverflow
	}
	return value.Uint64(), nil
}

func (c *ConstantPriceCurve) ValidateSupply(reserveA, reserveB uint64) error {
	if reserveA == 0 || reserveB == 0 {
		return ErrEmptySupply
	}
	return nil
}

func (c *ConstantPriceCurve) SpotPrice(
	_, _ uint64, direction TradeDirection,
) (decimal.Decimal, error) {
	price := decimal.NewFromBigInt(new(big.Int).SetUint64(c.TokenBPrice), 0)
	if direction == TradeDirectionBtoA {
		return price, nil
	}
	return mathutil.DivDecimal(decimal.NewFromInt(1), price), nil
}

func (c *ConstantPriceCurve) AllowsDeposits() bool { return true }

func (c *ConstantPriceCurve) Type() CurveType { return CurveTypeConstantPrice }

// tokenValue converts a token amount of the sold side to token A units.
func (c *ConstantPriceCurve) tokenValue(
	amount uint64, direction TradeDirection,
) (uint64, error) {
	if direction == TradeDirectionAtoB {
		return amount, nil
	}
	return mathutil.CheckedMul(amount, c.TokenBPrice)
}
