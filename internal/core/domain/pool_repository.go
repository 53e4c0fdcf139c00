package domain

import "context"

// PoolRepository defines the storage contract for pools. Implementations
// must serialize conflicting updates on the same pool: two decisions priced
// against the same stale snapshot cannot both be applied.
type PoolRepository interface {
	// AddPool persists a new pool, failing if the id is already taken.
	AddPool(ctx context.Context, pool *Pool) error
	// GetPool returns the pool with the given id, nil if not found.
	GetPool(ctx context.Context, id string) (*Pool, error)
	// GetPoolByAssets returns the pool holding the given pair, nil if not found.
	GetPoolByAssets(ctx context.Context, tokenAAsset, tokenBAsset string) (*Pool, error)
	// GetAllPools returns every stored pool.
	GetAllPools(ctx context.Context) ([]Pool, error)
	// UpdatePool applies updateFn to the stored pool under the repository's
	// concurrency control and persists the result.
	UpdatePool(
		ctx context.Context, id string,
		updateFn func(pool *Pool) (*Pool, error),
	) error
}
