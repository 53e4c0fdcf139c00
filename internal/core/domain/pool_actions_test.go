package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolswap-network/poolswap-core/pkg/swapcurve"
)

func TestDepositAllTokenTypes(t *testing.T) {
	pool := newInitializedPool(t, swapcurve.Fees{})

	t.Run("proportional deposit rounds up", func(t *testing.T) {
		res, err := pool.DepositAllTokenTypes(
			10, 200, 200,
			1005, 1005, 100,
		)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), res.PoolTokensMinted)
		// 10*1005/100 = 100.5, rounded up against the depositor
		assert.Equal(t, uint64(101), res.TokenAAmount)
		assert.Equal(t, uint64(101), res.TokenBAmount)
	})

	t.Run("maximum amounts exceeded", func(t *testing.T) {
		_, err := pool.DepositAllTokenTypes(
			10, 100, 100,
			1005, 1005, 100,
		)
		assert.Equal(t, ErrSlippageExceeded, err)
	})

	t.Run("zero pool tokens", func(t *testing.T) {
		_, err := pool.DepositAllTokenTypes(0, 100, 100, 1000, 1000, 100)
		assert.Equal(t, ErrZeroAmount, err)
	})

	t.Run("uninitialized pool", func(t *testing.T) {
		fresh := newTestPool(t, swapcurve.Fees{})
		_, err := fresh.DepositAllTokenTypes(10, 100, 100, 1000, 1000, 100)
		assert.Equal(t, ErrPoolNotInitialized, err)
	})
}

// The first deposit takes the maximum amounts as the deposit itself and mints
// the curve-normalized value of the pair, without fees.
func TestFirstDeposit(t *testing.T) {
	pool := newInitializedPool(t, swapcurve.Fees{
		OwnerWithdrawFeeNumerator: 1, OwnerWithdrawFeeDenominator: 100,
	})

	res, err := pool.DepositAllTokenTypes(
		1, 1000, 4000,
		0, 0, 0,
	)
	require.NoError(t, err)
	// 2*sqrt(1000*4000) = 4000
	assert.Equal(t, uint64(4000), res.PoolTokensMinted)
	assert.Equal(t, uint64(1000), res.TokenAAmount)
	assert.Equal(t, uint64(4000), res.TokenBAmount)

	t.Run("degenerate initial reserves", func(t *testing.T) {
		_, err := pool.DepositAllTokenTypes(1, 1000, 0, 0, 0, 0)
		assert.Equal(t, ErrInvalidCurve, err)
	})
}

func TestWithdrawAllTokenTypes(t *testing.T) {
	t.Run("no fee rounds down", func(t *testing.T) {
		pool := newInitializedPool(t, swapcurve.Fees{})
		res, err := pool.WithdrawAllTokenTypes(
			10, 0, 0,
			1005, 1005, 100,
		)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), res.PoolTokensBurned)
		assert.Zero(t, res.OwnerFee)
		// 10*1005/100 = 100.5, rounded down against the withdrawer
		assert.Equal(t, uint64(100), res.TokenAAmount)
		assert.Equal(t, uint64(100), res.TokenBAmount)
	})

	t.Run("owner withdraw fee charged on pool tokens", func(t *testing.T) {
		pool := newInitializedPool(t, swapcurve.Fees{
			OwnerWithdrawFeeNumerator: 1, OwnerWithdrawFeeDenominator: 10,
		})
		res, err := pool.WithdrawAllTokenTypes(
			100, 0, 0,
			1000, 1000, 1000,
		)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), res.PoolTokensBurned)
		assert.Equal(t, uint64(10), res.OwnerFee)
		// only the net 90 converts to token amounts
		assert.Equal(t, uint64(90), res.TokenAAmount)
		assert.Equal(t, uint64(90), res.TokenBAmount)
	})

	t.Run("minimum amounts not met", func(t *testing.T) {
		pool := newInitializedPool(t, swapcurve.Fees{})
		_, err := pool.WithdrawAllTokenTypes(
			10, 101, 0,
			1005, 1005, 100,
		)
		assert.Equal(t, ErrSlippageExceeded, err)
	})

	t.Run("fee consumes the whole amount", func(t *testing.T) {
		pool := newInitializedPool(t, swapcurve.Fees{
			OwnerWithdrawFeeNumerator: 1, OwnerWithdrawFeeDenominator: 1,
		})
		_, err := pool.WithdrawAllTokenTypes(10, 0, 0, 1000, 1000, 100)
		assert.Equal(t, swapcurve.ErrZeroTradingTokens, err)
	})
}

func TestDepositSingleTokenType(t *testing.T) {
	pool := newInitializedPool(t, swapcurve.Fees{})

	res, err := pool.DepositSingleTokenType(
		tokenAAsset, 2100, 0,
		10_000, 10_000, 100_000,
	)
	require.NoError(t, err)
	// sqrt(100000^2 * 12100/10000) - 100000 = 110000 - 100000
	assert.Equal(t, uint64(10_000), res.PoolTokensMinted)
	assert.Equal(t, uint64(2100), res.TokenAAmount)
	assert.Zero(t, res.TokenBAmount)

	t.Run("minimum pool tokens not met", func(t *testing.T) {
		_, err := pool.DepositSingleTokenType(
			tokenAAsset, 2100, 10_001,
			10_000, 10_000, 100_000,
		)
		assert.Equal(t, ErrSlippageExceeded, err)
	})

	t.Run("wrong asset", func(t *testing.T) {
		_, err := pool.DepositSingleTokenType(
			poolTokenAsset, 2100, 0,
			10_000, 10_000, 100_000,
		)
		assert.Equal(t, ErrInvalidTokenAsset, err)
	})

	t.Run("token B side", func(t *testing.T) {
		res, err := pool.DepositSingleTokenType(
			tokenBAsset, 2100, 0,
			10_000, 10_000, 100_000,
		)
		require.NoError(t, err)
		assert.Zero(t, res.TokenAAmount)
		assert.Equal(t, uint64(2100), res.TokenBAmount)
	})
}

func TestWithdrawSingleTokenTypeExactOut(t *testing.T) {
	pool := newInitializedPool(t, swapcurve.Fees{})

	res, err := pool.WithdrawSingleTokenTypeExactOut(
		tokenAAsset, 2100, 1<<40,
		12_100, 10_000, 110_000,
	)
	require.NoError(t, err)
	// inverse of the 2100 single-sided deposit above
	assert.Equal(t, uint64(10_000), res.PoolTokensBurned)
	assert.Equal(t, uint64(2100), res.TokenAAmount)
	assert.Zero(t, res.TokenBAmount)

	t.Run("owner fee added on top of the burn", func(t *testing.T) {
		feePool := newInitializedPool(t, swapcurve.Fees{
			OwnerWithdrawFeeNumerator: 1, OwnerWithdrawFeeDenominator: 100,
		})
		res, err := feePool.WithdrawSingleTokenTypeExactOut(
			tokenAAsset, 2100, 1<<40,
			12_100, 10_000, 110_000,
		)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), res.OwnerFee)
		assert.Equal(t, uint64(10_100), res.PoolTokensBurned)
	})

	t.Run("burn above maximum", func(t *testing.T) {
		_, err := pool.WithdrawSingleTokenTypeExactOut(
			tokenAAsset, 2100, 9_999,
			12_100, 10_000, 110_000,
		)
		assert.Equal(t, ErrSlippageExceeded, err)
	})
}

func TestOffsetPoolDisallowsDeposits(t *testing.T) {
	pool, err := NewPool(
		"pool-2", tokenAAsset, tokenBAsset, poolTokenAsset,
		swapcurve.CurveTypeOffset, swapcurve.Params{TokenBOffset: 1000},
		swapcurve.Fees{},
	)
	require.NoError(t, err)
	require.NoError(t, pool.Init(1000, 0))

	_, err = pool.DepositAllTokenTypes(10, 100, 100, 1000, 0, 100)
	assert.Equal(t, swapcurve.ErrUnsupportedCurveOperation, err)

	_, err = pool.DepositSingleTokenType(tokenAAsset, 100, 0, 1000, 0, 100)
	assert.Equal(t, swapcurve.ErrUnsupportedCurveOperation, err)
}
