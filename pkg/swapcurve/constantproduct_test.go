package swapcurve

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantProductSwap(t *testing.T) {
	curve := &ConstantProductCurve{}

	tests := []struct {
		name          string
		sourceAmount  uint64
		sourceReserve uint64
		destReserve   uint64
		wantOut       uint64
	}{
		{"balanced pool", 100, 1000, 1000, 90},
		{"imbalanced pool", 100, 1000, 2000, 181},
		{"large trade", 1000, 1000, 1000, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := curve.SwapWithoutFees(
				tt.sourceAmount, tt.sourceReserve, tt.destReserve, TradeDirectionAtoB,
			)
			require.NoError(t, err)
			assert.Equal(t, tt.sourceAmount, res.SourceAmountSwapped)
			assert.Equal(t, tt.wantOut, res.DestinationAmountSwapped)
		})
	}
}

func TestConstantProductSwapFailures(t *testing.T) {
	curve := &ConstantProductCurve{}

	t.Run("zero input", func(t *testing.T) {
		_, err := curve.SwapWithoutFees(0, 1000, 1000, TradeDirectionAtoB)
		assert.Equal(t, ErrZeroTradingTokens, err)
	})

	t.Run("dust input rounds to zero output", func(t *testing.T) {
		_, err := curve.SwapWithoutFees(1, 1000000, 10, TradeDirectionAtoB)
		assert.Equal(t, ErrZeroTradingTokens, err)
	})
}

func TestConstantProductInvariantNeverDecreases(t *testing.T) {
	curve := &ConstantProductCurve{}
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		sourceReserve := uint64(r.Int63n(1_000_000_000)) + 1
		destReserve := uint64(r.Int63n(1_000_000_000)) + 1
		amount := uint64(r.Int63n(int64(sourceReserve))) + 1

		res, err := curve.SwapWithoutFees(
			amount, sourceReserve, destReserve, TradeDirectionAtoB,
		)
		if err == ErrZeroTradingTokens {
			continue
		}
		require.NoError(t, err)

		kBefore := new(big.Int).Mul(
			new(big.Int).SetUint64(sourceReserve),
			new(big.Int).SetUint64(destReserve),
		)
		kAfter := new(big.Int).Mul(
			new(big.Int).SetUint64(sourceReserve+res.SourceAmountSwapped),
			new(big.Int).SetUint64(destReserve-res.DestinationAmountSwapped),
		)
		assert.True(
			t, kAfter.Cmp(kBefore) >= 0,
			"invariant decreased: %s < %s", kAfter, kBefore,
		)
		assert.True(t, res.DestinationAmountSwapped <= destReserve)
	}
}

func TestConstantProductMonotonicPriceImpact(t *testing.T) {
	curve := &ConstantProductCurve{}
	var previous uint64

	for amount := uint64(100); amount <= 100_000; amount += 100 {
		res, err := curve.SwapWithoutFees(amount, 100_000, 100_000, TradeDirectionAtoB)
		require.NoError(t, err)
		assert.True(t, res.DestinationAmountSwapped > previous)
		assert.True(t, res.DestinationAmountSwapped < 100_000)
		previous = res.DestinationAmountSwapped
	}
}

func TestConstantProductNearMaxReserves(t *testing.T) {
	curve := &ConstantProductCurve{}

	res, err := curve.SwapWithoutFees(
		math.MaxUint64/4, math.MaxUint64/2, math.MaxUint64/2, TradeDirectionAtoB,
	)
	require.NoError(t, err)
	assert.True(t, res.DestinationAmountSwapped <= math.MaxUint64/2)

	// pushing the source reserve beyond u64 must fail, not wrap
	_, err = curve.SwapWithoutFees(
		math.MaxUint64, math.MaxUint64, 1000, TradeDirectionAtoB,
	)
	assert.Error(t, err)
}

func TestPoolTokensToTradingTokens(t *testing.T) {
	curve := &ConstantProductCurve{}

	t.Run("round down protects the pool", func(t *testing.T) {
		res, err := curve.PoolTokensToTradingTokens(10, 100, 1005, 1005, RoundDown)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), res.TokenAAmount)
		assert.Equal(t, uint64(100), res.TokenBAmount)
	})

	t.Run("round up protects the holders", func(t *testing.T) {
		res, err := curve.PoolTokensToTradingTokens(10, 100, 1005, 1005, RoundUp)
		require.NoError(t, err)
		assert.Equal(t, uint64(101), res.TokenAAmount)
		assert.Equal(t, uint64(101), res.TokenBAmount)
	})

	t.Run("zero supply", func(t *testing.T) {
		_, err := curve.PoolTokensToTradingTokens(10, 0, 1000, 1000, RoundDown)
		assert.Equal(t, ErrEmptySupply, err)
	})

	t.Run("zero pool tokens", func(t *testing.T) {
		_, err := curve.PoolTokensToTradingTokens(0, 100, 1000, 1000, RoundDown)
		assert.Equal(t, ErrZeroTradingTokens, err)
	})

	t.Run("dust share of huge supply", func(t *testing.T) {
		_, err := curve.PoolTokensToTradingTokens(1, math.MaxUint64, 10, 10, RoundDown)
		assert.Equal(t, ErrZeroTradingTokens, err)
	})
}

// A deposit immediately followed by a withdrawal of the same pool tokens must
// never hand back more than was put in.
func TestDepositWithdrawRoundTripNeverProfits(t *testing.T) {
	curve := &ConstantProductCurve{}
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		supply := uint64(r.Int63n(1_000_000)) + 100
		reserveA := uint64(r.Int63n(1_000_000_000)) + 100
		reserveB := uint64(r.Int63n(1_000_000_000)) + 100
		poolTokens := uint64(r.Int63n(int64(supply))) + 1

		in, err := curve.PoolTokensToTradingTokens(
			poolTokens, supply, reserveA, reserveB, RoundUp,
		)
		if err != nil {
			continue
		}
		out, err := curve.PoolTokensToTradingTokens(
			poolTokens, supply+poolTokens, reserveA+in.TokenAAmount, reserveB+in.TokenBAmount, RoundDown,
		)
		if err != nil {
			continue
		}
		assert.True(t, out.TokenAAmount <= in.TokenAAmount)
		assert.True(t, out.TokenBAmount <= in.TokenBAmount)
	}
}

func TestSingleSidedDeposit(t *testing.T) {
	curve := &ConstantProductCurve{}

	minted, err := curve.DepositSingleTokenType(
		2100, 10_000, 50_000, 100_000, TradeDirectionAtoB,
	)
	require.NoError(t, err)
	// sqrt(12100/10000) = 1.1 exactly: 10% of the supply
	assert.Equal(t, uint64(10_000), minted)

	t.Run("zero amount", func(t *testing.T) {
		_, err := curve.DepositSingleTokenType(0, 10_000, 50_000, 100_000, TradeDirectionAtoB)
		assert.Equal(t, ErrZeroTradingTokens, err)
	})

	t.Run("empty pool", func(t *testing.T) {
		_, err := curve.DepositSingleTokenType(100, 0, 50_000, 100_000, TradeDirectionAtoB)
		assert.Equal(t, ErrEmptySupply, err)
	})
}

func TestSingleSidedWithdraw(t *testing.T) {
	curve := &ConstantProductCurve{}

	// withdrawing what a 10% single-sided deposit added burns at least the
	// minted amount
	burned, err := curve.WithdrawSingleTokenTypeExactOut(
		2100, 12_100, 50_000, 110_000, TradeDirectionAtoB,
	)
	require.NoError(t, err)
	assert.True(t, burned >= 10_000)

	t.Run("more than the reserve", func(t *testing.T) {
		_, err := curve.WithdrawSingleTokenTypeExactOut(
			20_000, 10_000, 50_000, 100_000, TradeDirectionAtoB,
		)
		assert.Error(t, err)
	})
}

func TestConstantProductValidateSupply(t *testing.T) {
	curve := &ConstantProductCurve{}
	require.NoError(t, curve.ValidateSupply(1, 1))
	assert.Equal(t, ErrEmptySupply, curve.ValidateSupply(0, 1))
	assert.Equal(t, ErrEmptySupply, curve.ValidateSupply(1, 0))
}

func TestConstantProductDeterminism(t *testing.T) {
	curve := &ConstantProductCurve{}
	first, err := curve.SwapWithoutFees(12345, 999_999, 777_777, TradeDirectionAtoB)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := curve.SwapWithoutFees(12345, 999_999, 777_777, TradeDirectionAtoB)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
