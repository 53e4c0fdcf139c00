package application

import (
	"github.com/poolswap-network/poolswap-core/internal/core/domain"
	"github.com/poolswap-network/poolswap-core/pkg/swapcurve"
)

// CreatePoolRequest groups the static configuration of a new pool.
type CreatePoolRequest struct {
	TokenAAsset    string
	TokenBAsset    string
	PoolTokenAsset string
	CurveType      swapcurve.CurveType
	CurveParams    swapcurve.Params
	Fees           swapcurve.Fees
}

// PoolInfo is the read model returned to callers of the service.
type PoolInfo struct {
	Id             string
	TokenAAsset    string
	TokenBAsset    string
	PoolTokenAsset string
	CurveType      swapcurve.CurveType
	CurveParams    swapcurve.Params
	Fees           swapcurve.Fees
	Initialized    bool
}

func poolInfo(pool *domain.Pool) *PoolInfo {
	return &PoolInfo{
		Id:             pool.Id,
		TokenAAsset:    pool.TokenAAsset,
		TokenBAsset:    pool.TokenBAsset,
		PoolTokenAsset: pool.PoolTokenAsset,
		CurveType:      pool.CurveType,
		CurveParams:    pool.CurveParams,
		Fees:           pool.Fees,
		Initialized:    pool.IsInitialized(),
	}
}

// DepositRequest prices a proportional deposit against a reserve snapshot.
type DepositRequest struct {
	PoolTokenAmount uint64
	MaxTokenA       uint64
	MaxTokenB       uint64
	ReserveA        uint64
	ReserveB        uint64
	PoolTokenSupply uint64
}

// WithdrawRequest prices a proportional withdrawal against a reserve snapshot.
type WithdrawRequest struct {
	PoolTokenAmount uint64
	MinTokenA       uint64
	MinTokenB       uint64
	ReserveA        uint64
	ReserveB        uint64
	PoolTokenSupply uint64
}

// SingleDepositRequest prices a one-sided deposit.
type SingleDepositRequest struct {
	SourceAsset     string
	SourceAmount    uint64
	MinPoolTokens   uint64
	ReserveA        uint64
	ReserveB        uint64
	PoolTokenSupply uint64
}

// SingleWithdrawRequest prices a one-sided withdrawal of an exact amount.
type SingleWithdrawRequest struct {
	DestinationAsset  string
	DestinationAmount uint64
	MaxPoolTokens     uint64
	ReserveA          uint64
	ReserveB          uint64
	PoolTokenSupply   uint64
}
