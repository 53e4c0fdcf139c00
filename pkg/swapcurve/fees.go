package swapcurve

import (
	"errors"

	"github.com/poolswap-network/poolswap-core/pkg/mathutil"
)

// ErrInvalidFee is thrown when a fee fraction has a zero denominator or a
// numerator greater than its denominator.
var ErrInvalidFee = errors.New("fee fraction is not valid")

// Fees holds the fee schedule of a pool. Every fee is a fraction applied to
// the amounts moved by an operation.
type Fees struct {
	// Trading fee charged on every swap, kept in the pool reserves.
	TradeFeeNumerator   uint64
	TradeFeeDenominator uint64
	// Portion of the trading fee carved out for the pool owner.
	OwnerTradeFeeNumerator   uint64
	OwnerTradeFeeDenominator uint64
	// Fee charged on pool tokens when withdrawing, routed to the pool owner.
	OwnerWithdrawFeeNumerator   uint64
	OwnerWithdrawFeeDenominator uint64
	// Portion of the trading fee routed to an optional host account.
	HostFeeNumerator   uint64
	HostFeeDenominator uint64
}

// FeeResult is the breakdown of a fee computation. Gross == Fee + Net always
// holds, no remainder is ever lost.
type FeeResult struct {
	Gross uint64
	Fee   uint64
	Net   uint64
}

// Validate checks every fee fraction of the schedule. A zero numerator stands
// for a disabled fee and admits any denominator.
func (f Fees) Validate() error {
	fractions := [][2]uint64{
		{f.TradeFeeNumerator, f.TradeFeeDenominator},
		{f.OwnerTradeFeeNumerator, f.OwnerTradeFeeDenominator},
		{f.OwnerWithdrawFeeNumerator, f.OwnerWithdrawFeeDenominator},
		{f.HostFeeNumerator, f.HostFeeDenominator},
	}
	for _, fr := range fractions {
		if err := validateFraction(fr[0], fr[1]); err != nil {
			return err
		}
	}
	return nil
}

func validateFraction(numerator, denominator uint64) error {
	if numerator == 0 {
		return nil
	}
	if denominator == 0 || numerator > denominator {
		return ErrInvalidFee
	}
	return nil
}

// TradingFee returns the fee charged on the gross input of a swap, rounded
// up in the pool's favor.
func (f Fees) TradingFee(amount uint64) (uint64, error) {
	return ceilFee(amount, f.TradeFeeNumerator, f.TradeFeeDenominator)
}

// OwnerTradingFee returns the owner portion computed on the same gross
// amount. It is carved out of the trading fee, never added on top of it.
func (f Fees) OwnerTradingFee(amount uint64) (uint64, error) {
	return ceilFee(amount, f.OwnerTradeFeeNumerator, f.OwnerTradeFeeDenominator)
}

// OwnerWithdrawFee returns the fee charged on a pool token amount being
// withdrawn.
func (f Fees) OwnerWithdrawFee(poolTokenAmount uint64) (uint64, error) {
	return ceilFee(
		poolTokenAmount, f.OwnerWithdrawFeeNumerator, f.OwnerWithdrawFeeDenominator,
	)
}

// HostFee returns the portion of the given trading fee routed to the host
// account.
func (f Fees) HostFee(tradingFeeAmount uint64) (uint64, error) {
	return ceilFee(tradingFeeAmount, f.HostFeeNumerator, f.HostFeeDenominator)
}

// SplitTradingFee applies the trading fee to a gross swap input and returns
// the exact gross/fee/net decomposition.
func (f Fees) SplitTradingFee(amount uint64) (*FeeResult, error) {
	fee, err := f.TradingFee(amount)
	if err != nil {
		return nil, err
	}
	net, err := mathutil.CheckedSub(amount, fee)
	if err != nil {
		return nil, err
	}
	return &FeeResult{Gross: amount, Fee: fee, Net: net}, nil
}

// SplitWithdrawFee applies the owner withdraw fee to a pool token amount.
func (f Fees) SplitWithdrawFee(poolTokenAmount uint64) (*FeeResult, error) {
	fee, err := f.OwnerWithdrawFee(poolTokenAmount)
	if err != nil {
		return nil, err
	}
	net, err := mathutil.CheckedSub(poolTokenAmount, fee)
	if err != nil {
		return nil, err
	}
	return &FeeResult{Gross: poolTokenAmount, Fee: fee, Net: net}, nil
}

// ceilFee rounds in favor of the pool so that repeated tiny trades cannot
// avoid fees. A disabled fraction or a zero amount yields a zero fee.
func ceilFee(amount, numerator, denominator uint64) (uint64, error) {
	if numerator == 0 || amount == 0 {
		return 0, nil
	}
	return mathutil.MulDivCeil(amount, numerator, denominator)
}
