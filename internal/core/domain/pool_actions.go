package domain

import (
	"github.com/poolswap-network/poolswap-core/pkg/mathutil"
	"github.com/poolswap-network/poolswap-core/pkg/swapcurve"
)

// DepositResult tells the caller how many tokens to pull from the depositor
// and how many pool tokens to mint in exchange.
type DepositResult struct {
	PoolTokensMinted uint64
	TokenAAmount     uint64
	TokenBAmount     uint64
}

// WithdrawResult tells the caller how many pool tokens to burn, how many of
// them are kept by the owner as fee, and how many tokens to release.
type WithdrawResult struct {
	PoolTokensBurned uint64
	OwnerFee         uint64
	TokenAAmount     uint64
	TokenBAmount     uint64
}

// DepositAllTokenTypes prices a proportional deposit: the caller asks for an
// amount of pool tokens and declares the maximum it is willing to pay on
// each side. Token amounts round up to protect existing holders.
//
// On the very first deposit (zero supply) the maximum amounts are taken as
// the actual deposit and the minted amount is the curve-normalized value of
// the pair, fee-free, establishing a 1:1 rate between value and supply.
func (p *Pool) DepositAllTokenTypes(
	poolTokenAmount, maxTokenA, maxTokenB uint64,
	reserveA, reserveB, poolTokenSupply uint64,
) (*DepositResult, error) {
	curve, err := p.depositCurve()
	if err != nil {
		return nil, err
	}
	if poolTokenAmount == 0 {
		return nil, ErrZeroAmount
	}

	if poolTokenSupply == 0 {
		if err := curve.ValidateSupply(maxTokenA, maxTokenB); err != nil {
			return nil, ErrInvalidCurve
		}
		minted, err := curve.NormalizedValue(maxTokenA, maxTokenB)
		if err != nil {
			return nil, err
		}
		if minted == 0 {
			return nil, swapcurve.ErrZeroTradingTokens
		}
		return &DepositResult{
			PoolTokensMinted: minted,
			TokenAAmount:     maxTokenA,
			TokenBAmount:     maxTokenB,
		}, nil
	}

	amounts, err := curve.PoolTokensToTradingTokens(
		poolTokenAmount, poolTokenSupply, reserveA, reserveB, swapcurve.RoundUp,
	)
	if err != nil {
		return nil, err
	}
	if amounts.TokenAAmount > maxTokenA || amounts.TokenBAmount > maxTokenB {
		return nil, ErrSlippageExceeded
	}
	return &DepositResult{
		PoolTokensMinted: poolTokenAmount,
		TokenAAmount:     amounts.TokenAAmount,
		TokenBAmount:     amounts.TokenBAmount,
	}, nil
}

// WithdrawAllTokenTypes prices a proportional withdrawal. The owner withdraw
// fee is charged on the pool tokens, and the remainder converts to token
// amounts rounded down in the pool's favor.
func (p *Pool) WithdrawAllTokenTypes(
	poolTokenAmount, minTokenA, minTokenB uint64,
	reserveA, reserveB, poolTokenSupply uint64,
) (*WithdrawResult, error) {
	if !p.IsInitialized() {
		return nil, ErrPoolNotInitialized
	}
	if poolTokenAmount == 0 {
		return nil, ErrZeroAmount
	}
	curve, err := p.curve()
	if err != nil {
		return nil, err
	}

	feeRes, err := p.Fees.SplitWithdrawFee(poolTokenAmount)
	if err != nil {
		return nil, err
	}
	if feeRes.Net == 0 {
		return nil, swapcurve.ErrZeroTradingTokens
	}

	amounts, err := curve.PoolTokensToTradingTokens(
		feeRes.Net, poolTokenSupply, reserveA, reserveB, swapcurve.RoundDown,
	)
	if err != nil {
		return nil, err
	}
	if amounts.TokenAAmount < minTokenA || amounts.TokenBAmount < minTokenB {
		return nil, ErrSlippageExceeded
	}
	return &WithdrawResult{
		PoolTokensBurned: poolTokenAmount,
		OwnerFee:         feeRes.Fee,
		TokenAAmount:     amounts.TokenAAmount,
		TokenBAmount:     amounts.TokenBAmount,
	}, nil
}

// DepositSingleTokenType prices a single-sided deposit of sourceAsset.
func (p *Pool) DepositSingleTokenType(
	sourceAsset string, sourceAmount, minPoolTokens uint64,
	reserveA, reserveB, poolTokenSupply uint64,
) (*DepositResult, error) {
	curve, err := p.depositCurve()
	if err != nil {
		return nil, err
	}
	if sourceAmount == 0 {
		return nil, ErrZeroAmount
	}
	direction, err := p.directionForAsset(sourceAsset)
	if err != nil {
		return nil, err
	}

	minted, err := curve.DepositSingleTokenType(
		sourceAmount, reserveA, reserveB, poolTokenSupply, direction,
	)
	if err != nil {
		return nil, err
	}
	if minted < minPoolTokens {
		return nil, ErrSlippageExceeded
	}

	res := &DepositResult{PoolTokensMinted: minted}
	if direction == swapcurve.TradeDirectionAtoB {
		res.TokenAAmount = sourceAmount
	} else {
		res.TokenBAmount = sourceAmount
	}
	return res, nil
}

// WithdrawSingleTokenTypeExactOut prices a single-sided withdrawal of an
// exact destination amount, bounded by the maximum pool tokens the caller is
// willing to burn. The owner withdraw fee is added on top of the burn.
func (p *Pool) WithdrawSingleTokenTypeExactOut(
	destinationAsset string, destinationAmount, maxPoolTokens uint64,
	reserveA, reserveB, poolTokenSupply uint64,
) (*WithdrawResult, error) {
	if !p.IsInitialized() {
		return nil, ErrPoolNotInitialized
	}
	if destinationAmount == 0 {
		return nil, ErrZeroAmount
	}
	direction, err := p.directionForAsset(destinationAsset)
	if err != nil {
		return nil, err
	}
	curve, err := p.curve()
	if err != nil {
		return nil, err
	}

	burned, err := curve.WithdrawSingleTokenTypeExactOut(
		destinationAmount, reserveA, reserveB, poolTokenSupply, direction,
	)
	if err != nil {
		return nil, err
	}
	ownerFee, err := p.Fees.OwnerWithdrawFee(burned)
	if err != nil {
		return nil, err
	}
	totalBurned, err := mathutil.CheckedAdd(burned, ownerFee)
	if err != nil {
		return nil, err
	}
	if totalBurned > maxPoolTokens {
		return nil, ErrSlippageExceeded
	}

	res := &WithdrawResult{
		PoolTokensBurned: totalBurned,
		OwnerFee:         ownerFee,
	}
	if direction == swapcurve.TradeDirectionAtoB {
		res.TokenAAmount = destinationAmount
	} else {
		res.TokenBAmount = destinationAmount
	}
	return res, nil
}

// depositCurve resolves the curve and rejects deposits the variant does not
// allow.
func (p *Pool) depositCurve() (swapcurve.Calculator, error) {
	if !p.IsInitialized() {
		return nil, ErrPoolNotInitialized
	}
	curve, err := p.curve()
	if err != nil {
		return nil, err
	}
	if !curve.AllowsDeposits() {
		return nil, swapcurve.ErrUnsupportedCurveOperation
	}
	return curve, nil
}
