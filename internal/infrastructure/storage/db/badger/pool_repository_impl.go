package dbbadger

import (
	"context"
	"fmt"

	"github.com/timshannon/badgerhold/v4"

	"github.com/poolswap-network/poolswap-core/internal/core/domain"
)

type poolRepositoryImpl struct {
	db *DbManager
}

// NewPoolRepositoryImpl returns a badger implementation of the pool repository.
func NewPoolRepositoryImpl(db *DbManager) domain.PoolRepository {
	return poolRepositoryImpl{db: db}
}

func (p poolRepositoryImpl) AddPool(
	_ context.Context, pool *domain.Pool,
) error {
	if err := p.db.PoolStore.Insert(pool.Id, pool); err != nil {
		if err == badgerhold.ErrKeyExists {
			return fmt.Errorf("pool with id %s already exists", pool.Id)
		}
		return err
	}
	return nil
}

func (p poolRepositoryImpl) GetPool(
	_ context.Context, id string,
) (*domain.Pool, error) {
	return p.getPool(id)
}

func (p poolRepositoryImpl) GetPoolByAssets(
	_ context.Context, tokenAAsset, tokenBAsset string,
) (*domain.Pool, error) {
	query := badgerhold.
		Where("TokenAAsset").Eq(tokenAAsset).And("TokenBAsset").Eq(tokenBAsset).
		Or(badgerhold.Where("TokenAAsset").Eq(tokenBAsset).And("TokenBAsset").Eq(tokenAAsset))

	pools, err := p.findPools(query)
	if err != nil {
		return nil, err
	}
	if len(pools) == 0 {
		return nil, nil
	}
	return &pools[0], nil
}

func (p poolRepositoryImpl) GetAllPools(
	_ context.Context,
) ([]domain.Pool, error) {
	return p.findPools(&badgerhold.Query{})
}

func (p poolRepositoryImpl) UpdatePool(
	_ context.Context, id string,
	updateFn func(pool *domain.Pool) (*domain.Pool, error),
) error {
	currentPool, err := p.getPool(id)
	if err != nil {
		return err
	}
	if currentPool == nil {
		return fmt.Errorf("pool with id %s not found", id)
	}

	updatedPool, err := updateFn(currentPool)
	if err != nil {
		return err
	}

	return p.db.PoolStore.Update(id, updatedPool)
}

func (p poolRepositoryImpl) getPool(id string) (*domain.Pool, error) {
	var pool domain.Pool
	if err := p.db.PoolStore.Get(id, &pool); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &pool, nil
}

func (p poolRepositoryImpl) findPools(
	query *badgerhold.Query,
) ([]domain.Pool, error) {
	var pools []domain.Pool
	if err := p.db.PoolStore.Find(&pools, query); err != nil {
		return nil, err
	}
	return pools, nil
}
