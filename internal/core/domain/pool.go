package domain

import (
	"encoding/hex"

	"github.com/shopspring/decimal"

	"github.com/poolswap-network/poolswap-core/pkg/swapcurve"
)

// Pool defines the entity holding the configuration and lifecycle state of a
// liquidity pool. The pool never owns balances: reserves and the pool token
// supply are snapshots passed in by the caller, and every operation returns a
// decision the caller executes as actual transfers.
type Pool struct {
	// Unique id of the pool.
	Id string
	// Token A asset in hex format.
	TokenAAsset string
	// Token B asset in hex format.
	TokenBAsset string
	// Asset of the pool's liquidity-share token.
	PoolTokenAsset string
	// Pricing curve discriminant.
	CurveType swapcurve.CurveType
	// Variant-specific curve parameters.
	CurveParams swapcurve.Params
	// Fee schedule applied on swaps and withdrawals.
	Fees swapcurve.Fees
	// Whether the pool completed initialization.
	Initialized bool
}

// NewPool returns a new pool in uninitialized state with the given pair,
// curve configuration and fee schedule. The configuration is validated here,
// the reserve-dependent checks happen in Init.
func NewPool(
	id, tokenAAsset, tokenBAsset, poolTokenAsset string,
	curveType swapcurve.CurveType, curveParams swapcurve.Params,
	fees swapcurve.Fees,
) (*Pool, error) {
	if !isValidAsset(tokenAAsset) {
		return nil, ErrPoolInvalidTokenAAsset
	}
	if !isValidAsset(tokenBAsset) || tokenBAsset == tokenAAsset {
		return nil, ErrPoolInvalidTokenBAsset
	}
	if !isValidAsset(poolTokenAsset) ||
		poolTokenAsset == tokenAAsset || poolTokenAsset == tokenBAsset {
		return nil, ErrPoolInvalidPoolTokenAsset
	}
	if err := fees.Validate(); err != nil {
		return nil, ErrInvalidFee
	}
	if _, err := swapcurve.NewCalculator(curveType, curveParams); err != nil {
		return nil, ErrInvalidCurve
	}

	return &Pool{
		Id:             id,
		TokenAAsset:    tokenAAsset,
		TokenBAsset:    tokenBAsset,
		PoolTokenAsset: poolTokenAsset,
		CurveType:      curveType,
		CurveParams:    curveParams,
		Fees:           fees,
	}, nil
}

// IsInitialized returns whether the pool completed initialization.
func (p *Pool) IsInitialized() bool {
	return p.Initialized
}

// Init validates the initial reserves against the curve and transitions the
// pool to initialized. Calling it on an initialized pool fails.
func (p *Pool) Init(initialReserveA, initialReserveB uint64) error {
	if p.IsInitialized() {
		return ErrPoolAlreadyInUse
	}
	curve, err := p.curve()
	if err != nil {
		return err
	}
	if err := curve.ValidateSupply(initialReserveA, initialReserveB); err != nil {
		return ErrInvalidCurve
	}
	p.Initialized = true
	return nil
}

// SpotPrice returns the current marginal price for selling the given asset.
func (p *Pool) SpotPrice(
	sourceAsset string, reserveA, reserveB uint64,
) (decimal.Decimal, error) {
	if !p.IsInitialized() {
		return decimal.Zero, ErrPoolNotInitialized
	}
	direction, err := p.directionForAsset(sourceAsset)
	if err != nil {
		return decimal.Zero, err
	}
	curve, err := p.curve()
	if err != nil {
		return decimal.Zero, err
	}
	return curve.SpotPrice(reserveA, reserveB, direction)
}

func (p *Pool) curve() (swapcurve.Calculator, error) {
	calc, err := swapcurve.NewCalculator(p.CurveType, p.CurveParams)
	if err != nil {
		return nil, ErrInvalidCurve
	}
	return calc, nil
}

// directionForAsset maps the sold asset to a trade direction.
func (p *Pool) directionForAsset(sourceAsset string) (swapcurve.TradeDirection, error) {
	switch sourceAsset {
	case p.TokenAAsset:
		return swapcurve.TradeDirectionAtoB, nil
	case p.TokenBAsset:
		return swapcurve.TradeDirectionBtoA, nil
	default:
		return 0, ErrInvalidTokenAsset
	}
}

func isValidAsset(asset string) bool {
	if len(asset) == 0 {
		return false
	}
	if _, err := hex.DecodeString(asset); err != nil {
		return false
	}
	return true
}
