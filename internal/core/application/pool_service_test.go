package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolswap-network/poolswap-core/internal/core/application"
	"github.com/poolswap-network/poolswap-core/internal/core/domain"
	"github.com/poolswap-network/poolswap-core/internal/infrastructure/storage/db/inmemory"
	"github.com/poolswap-network/poolswap-core/pkg/swapcurve"
)

const (
	assetA = "aa00aa00aa00aa00aa00aa00aa00aa00aa00aa00aa00aa00aa00aa00aa00aa00"
	assetB = "bb00bb00bb00bb00bb00bb00bb00bb00bb00bb00bb00bb00bb00bb00bb00bb00"
	assetP = "cc00cc00cc00cc00cc00cc00cc00cc00cc00cc00cc00cc00cc00cc00cc00cc00"
)

func newTestService(t *testing.T) (application.PoolService, *application.PoolInfo) {
	t.Helper()
	svc := application.NewPoolService(inmemory.NewPoolRepositoryImpl())

	info, err := svc.CreatePool(context.Background(), application.CreatePoolRequest{
		TokenAAsset:    assetA,
		TokenBAsset:    assetB,
		PoolTokenAsset: assetP,
		CurveType:      swapcurve.CurveTypeConstantProduct,
	})
	require.NoError(t, err)
	return svc, info
}

func TestCreatePool(t *testing.T) {
	svc, info := newTestService(t)
	ctx := context.Background()

	assert.NotEmpty(t, info.Id)
	assert.False(t, info.Initialized)

	t.Run("duplicate pair", func(t *testing.T) {
		_, err := svc.CreatePool(ctx, application.CreatePoolRequest{
			TokenAAsset:    assetA,
			TokenBAsset:    assetB,
			PoolTokenAsset: assetP,
			CurveType:      swapcurve.CurveTypeConstantProduct,
		})
		assert.Equal(t, application.ErrPoolAlreadyExists, err)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		_, err := svc.CreatePool(ctx, application.CreatePoolRequest{
			TokenAAsset:    assetA,
			TokenBAsset:    assetP,
			PoolTokenAsset: assetB,
			CurveType:      swapcurve.CurveTypeStable,
		})
		assert.Equal(t, domain.ErrInvalidCurve, err)
	})
}

func TestInitPool(t *testing.T) {
	svc, info := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.InitPool(ctx, info.Id, 1000, 1000))

	stored, err := svc.GetPool(ctx, info.Id)
	require.NoError(t, err)
	assert.True(t, stored.Initialized)

	assert.Equal(t, domain.ErrPoolAlreadyInUse, svc.InitPool(ctx, info.Id, 1000, 1000))
}

func TestPreviewSwap(t *testing.T) {
	svc, info := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.InitPool(ctx, info.Id, 1000, 1000))

	res, err := svc.PreviewSwap(ctx, info.Id, domain.SwapRequest{
		SourceAsset: assetA, SourceAmount: 100,
		ReserveA: 1000, ReserveB: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(90), res.DestinationAmountSwapped)

	t.Run("unknown pool", func(t *testing.T) {
		_, err := svc.PreviewSwap(ctx, "missing", domain.SwapRequest{
			SourceAsset: assetA, SourceAmount: 100,
			ReserveA: 1000, ReserveB: 1000,
		})
		assert.Equal(t, application.ErrPoolNotFound, err)
	})
}

func TestGetSpotPrice(t *testing.T) {
	svc, info := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.InitPool(ctx, info.Id, 1000, 4000))

	price, err := svc.GetSpotPrice(ctx, info.Id, assetA, 1000, 4000)
	require.NoError(t, err)
	assert.Equal(t, "4", price.String())
}

func TestPreviewLiquidityOps(t *testing.T) {
	svc, info := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.InitPool(ctx, info.Id, 1000, 1000))

	dep, err := svc.PreviewDeposit(ctx, info.Id, application.DepositRequest{
		PoolTokenAmount: 100,
		MaxTokenA:       1000, MaxTokenB: 1000,
		ReserveA: 1000, ReserveB: 1000, PoolTokenSupply: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(50), dep.TokenAAmount)
	assert.Equal(t, uint64(50), dep.TokenBAmount)

	wd, err := svc.PreviewWithdraw(ctx, info.Id, application.WithdrawRequest{
		PoolTokenAmount: 100,
		ReserveA:        1000, ReserveB: 1000, PoolTokenSupply: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(50), wd.TokenAAmount)

	sd, err := svc.PreviewSingleDeposit(ctx, info.Id, application.SingleDepositRequest{
		SourceAsset:  assetA,
		SourceAmount: 2100,
		ReserveA:     10_000, ReserveB: 10_000, PoolTokenSupply: 100_000,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(10_000), sd.PoolTokensMinted)

	sw, err := svc.PreviewSingleWithdraw(ctx, info.Id, application.SingleWithdrawRequest{
		DestinationAsset:  assetA,
		DestinationAmount: 2100,
		MaxPoolTokens:     1 << 40,
		ReserveA:          12_100, ReserveB: 10_000, PoolTokenSupply: 110_000,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(10_000), sw.PoolTokensBurned)
}

func TestListPools(t *testing.T) {
	svc, _ := newTestService(t)
	pools, err := svc.ListPools(context.Background())
	require.NoError(t, err)
	assert.Len(t, pools, 1)
}
