package inmemory

import (
	"context"
	"errors"
	"sync"

	"github.com/poolswap-network/poolswap-core/internal/core/domain"
)

var (
	// ErrPoolExist is thrown when inserting a pool whose id is already taken
	ErrPoolExist = errors.New("pool already exists")
	// ErrPoolNotExist is thrown when updating a pool that is not stored
	ErrPoolNotExist = errors.New("pool does not exist")
)

// PoolRepositoryImpl represents an in memory storage
type PoolRepositoryImpl struct {
	pools        map[string]domain.Pool
	poolsByAsset map[string]string

	lock *sync.RWMutex
}

// NewPoolRepositoryImpl returns a new empty PoolRepositoryImpl
func NewPoolRepositoryImpl() *PoolRepositoryImpl {
	return &PoolRepositoryImpl{
		pools:        map[string]domain.Pool{},
		poolsByAsset: map[string]string{},
		lock:         &sync.RWMutex{},
	}
}

func (r *PoolRepositoryImpl) AddPool(
	_ context.Context, pool *domain.Pool,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.pools[pool.Id]; ok {
		return ErrPoolExist
	}
	r.pools[pool.Id] = *pool
	r.poolsByAsset[pairKey(pool.TokenAAsset, pool.TokenBAsset)] = pool.Id
	return nil
}

func (r *PoolRepositoryImpl) GetPool(
	_ context.Context, id string,
) (*domain.Pool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.getPool(id), nil
}

func (r *PoolRepositoryImpl) GetPoolByAssets(
	_ context.Context, tokenAAsset, tokenBAsset string,
) (*domain.Pool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	id, ok := r.poolsByAsset[pairKey(tokenAAsset, tokenBAsset)]
	if !ok {
		return nil, nil
	}
	return r.getPool(id), nil
}

func (r *PoolRepositoryImpl) GetAllPools(
	_ context.Context,
) ([]domain.Pool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	pools := make([]domain.Pool, 0, len(r.pools))
	for _, pool := range r.pools {
		pools = append(pools, pool)
	}
	return pools, nil
}

func (r *PoolRepositoryImpl) UpdatePool(
	_ context.Context, id string,
	updateFn func(pool *domain.Pool) (*domain.Pool, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	currentPool := r.getPool(id)
	if currentPool == nil {
		return ErrPoolNotExist
	}

	updatedPool, err := updateFn(currentPool)
	if err != nil {
		return err
	}

	r.pools[id] = *updatedPool
	return nil
}

func (r *PoolRepositoryImpl) getPool(id string) *domain.Pool {
	pool, ok := r.pools[id]
	if !ok {
		return nil
	}
	return &pool
}

// pairKey normalizes the asset pair so lookups work in both orders.
func pairKey(tokenAAsset, tokenBAsset string) string {
	if tokenBAsset < tokenAAsset {
		tokenAAsset, tokenBAsset = tokenBAsset, tokenAAsset
	}
	return tokenAAsset + ":" + tokenBAsset
}
