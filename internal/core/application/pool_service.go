package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/poolswap-network/poolswap-core/internal/core/domain"
)

// PoolService exposes the pool lifecycle and every pricing operation. All
// pricing runs against the reserve snapshot carried by the request: the
// service never holds balances and its answers are decisions for the caller
// to execute.
type PoolService interface {
	CreatePool(ctx context.Context, req CreatePoolRequest) (*PoolInfo, error)
	InitPool(ctx context.Context, poolId string, reserveA, reserveB uint64) error
	GetPool(ctx context.Context, poolId string) (*PoolInfo, error)
	GetPoolByAssets(ctx context.Context, tokenAAsset, tokenBAsset string) (*PoolInfo, error)
	ListPools(ctx context.Context) ([]PoolInfo, error)
	PreviewSwap(ctx context.Context, poolId string, req domain.SwapRequest) (*domain.SwapResult, error)
	GetSpotPrice(ctx context.Context, poolId, sourceAsset string, reserveA, reserveB uint64) (decimal.Decimal, error)
	PreviewDeposit(ctx context.Context, poolId string, req DepositRequest) (*domain.DepositResult, error)
	PreviewWithdraw(ctx context.Context, poolId string, req WithdrawRequest) (*domain.WithdrawResult, error)
	PreviewSingleDeposit(ctx context.Context, poolId string, req SingleDepositRequest) (*domain.DepositResult, error)
	PreviewSingleWithdraw(ctx context.Context, poolId string, req SingleWithdrawRequest) (*domain.WithdrawResult, error)
}

type poolService struct {
	poolRepository domain.PoolRepository
}

// NewPoolService returns a PoolService backed by the given repository.
func NewPoolService(poolRepository domain.PoolRepository) PoolService {
	return &poolService{poolRepository: poolRepository}
}

func (s *poolService) CreatePool(
	ctx context.Context, req CreatePoolRequest,
) (*PoolInfo, error) {
	existing, err := s.poolRepository.GetPoolByAssets(
		ctx, req.TokenAAsset, req.TokenBAsset,
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPoolAlreadyExists
	}

	pool, err := domain.NewPool(
		uuid.New().String(),
		req.TokenAAsset, req.TokenBAsset, req.PoolTokenAsset,
		req.CurveType, req.CurveParams, req.Fees,
	)
	if err != nil {
		return nil, err
	}
	if err := s.poolRepository.AddPool(ctx, pool); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"pool_id": pool.Id,
		"curve":   pool.CurveType.String(),
	}).Info("pool created")
	return poolInfo(pool), nil
}

func (s *poolService) InitPool(
	ctx context.Context, poolId string, reserveA, reserveB uint64,
) error {
	if err := s.poolRepository.UpdatePool(
		ctx, poolId,
		func(pool *domain.Pool) (*domain.Pool, error) {
			if err := pool.Init(reserveA, reserveB); err != nil {
				return nil, err
			}
			return pool, nil
		},
	); err != nil {
		return err
	}

	log.WithField("pool_id", poolId).Info("pool initialized")
	return nil
}

func (s *poolService) GetPool(
	ctx context.Context, poolId string,
) (*PoolInfo, error) {
	pool, err := s.getPool(ctx, poolId)
	if err != nil {
		return nil, err
	}
	return poolInfo(pool), nil
}

func (s *poolService) GetPoolByAssets(
	ctx context.Context, tokenAAsset, tokenBAsset string,
) (*PoolInfo, error) {
	pool, err := s.poolRepository.GetPoolByAssets(ctx, tokenAAsset, tokenBAsset)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, ErrPoolNotFound
	}
	return poolInfo(pool), nil
}

func (s *poolService) ListPools(ctx context.Context) ([]PoolInfo, error) {
	pools, err := s.poolRepository.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]PoolInfo, 0, len(pools))
	for i := range pools {
		infos = append(infos, *poolInfo(&pools[i]))
	}
	return infos, nil
}

func (s *poolService) PreviewSwap(
	ctx context.Context, poolId string, req domain.SwapRequest,
) (*domain.SwapResult, error) {
	pool, err := s.getPool(ctx, poolId)
	if err != nil {
		return nil, err
	}

	res, err := pool.Swap(req)
	observeSwap(err)
	if err != nil {
		log.WithError(err).WithField("pool_id", poolId).Debug("swap rejected")
		return nil, err
	}
	return res, nil
}

func (s *poolService) GetSpotPrice(
	ctx context.Context, poolId, sourceAsset string, reserveA, reserveB uint64,
) (decimal.Decimal, error) {
	pool, err := s.getPool(ctx, poolId)
	if err != nil {
		return decimal.Zero, err
	}
	return pool.SpotPrice(sourceAsset, reserveA, reserveB)
}

func (s *poolService) PreviewDeposit(
	ctx context.Context, poolId string, req DepositRequest,
) (*domain.DepositResult, error) {
	pool, err := s.getPool(ctx, poolId)
	if err != nil {
		return nil, err
	}
	res, err := pool.DepositAllTokenTypes(
		req.PoolTokenAmount, req.MaxTokenA, req.MaxTokenB,
		req.ReserveA, req.ReserveB, req.PoolTokenSupply,
	)
	if err != nil {
		return nil, err
	}
	liquidityOpsCounter.WithLabelValues("deposit").Inc()
	return res, nil
}

func (s *poolService) PreviewWithdraw(
	ctx context.Context, poolId string, req WithdrawRequest,
) (*domain.WithdrawResult, error) {
	pool, err := s.getPool(ctx, poolId)
	if err != nil {
		return nil, err
	}
	res, err := pool.WithdrawAllTokenTypes(
		req.PoolTokenAmount, req.MinTokenA, req.MinTokenB,
		req.ReserveA, req.ReserveB, req.PoolTokenSupply,
	)
	if err != nil {
		return nil, err
	}
	liquidityOpsCounter.WithLabelValues("withdraw").Inc()
	return res, nil
}

func (s *poolService) PreviewSingleDeposit(
	ctx context.Context, poolId string, req SingleDepositRequest,
) (*domain.DepositResult, error) {
	pool, err := s.getPool(ctx, poolId)
	if err != nil {
		return nil, err
	}
	res, err := pool.DepositSingleTokenType(
		req.SourceAsset, req.SourceAmount, req.MinPoolTokens,
		req.ReserveA, req.ReserveB, req.PoolTokenSupply,
	)
	if err != nil {
		return nil, err
	}
	liquidityOpsCounter.WithLabelValues("deposit_single").Inc()
	return res, nil
}

func (s *poolService) PreviewSingleWithdraw(
	ctx context.Context, poolId string, req SingleWithdrawRequest,
) (*domain.WithdrawResult, error) {
	pool, err := s.getPool(ctx, poolId)
	if err != nil {
		return nil, err
	}
	res, err := pool.WithdrawSingleTokenTypeExactOut(
		req.DestinationAsset, req.DestinationAmount, req.MaxPoolTokens,
		req.ReserveA, req.ReserveB, req.PoolTokenSupply,
	)
	if err != nil {
		return nil, err
	}
	liquidityOpsCounter.WithLabelValues("withdraw_single").Inc()
	return res, nil
}

func (s *poolService) getPool(
	ctx context.Context, poolId string,
) (*domain.Pool, error) {
	pool, err := s.poolRepository.GetPool(ctx, poolId)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, ErrPoolNotFound
	}
	return pool, nil
}
