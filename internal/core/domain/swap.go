package domain

import (
	"github.com/poolswap-network/poolswap-core/pkg/mathutil"
	"github.com/poolswap-network/poolswap-core/pkg/swapcurve"
)

// SwapRequest carries a swap to be priced along with the reserve snapshot
// the caller read from its ledger.
type SwapRequest struct {
	// Asset being sold, either side of the pair.
	SourceAsset string
	// Gross amount of source tokens offered.
	SourceAmount uint64
	// Caller-declared slippage protection on the output.
	MinimumAmountOut uint64
	// Current reserve snapshot.
	ReserveA uint64
	ReserveB uint64
}

// SwapResult is the full breakdown of a priced swap. The caller executes it
// as transfers: source tokens in, destination tokens out, owner and host fee
// portions to their accounts; the remaining trade fee stays in the reserves.
type SwapResult struct {
	// Source tokens actually consumed, fees included. Never above the
	// requested amount.
	SourceAmountSwapped uint64
	// Destination tokens to deliver.
	DestinationAmountSwapped uint64
	// Total trading fee charged on the input.
	TradeFee uint64
	// Portion of the trade fee owed to the pool owner.
	OwnerFee uint64
	// Portion of the owner fee routed to the host account, if any.
	HostFee uint64
	// Reserve values after executing the decision.
	NewSourceReserve      uint64
	NewDestinationReserve uint64
}

// Swap prices a swap request against the pool's curve and fee schedule.
func (p *Pool) Swap(req SwapRequest) (*SwapResult, error) {
	if !p.IsInitialized() {
		return nil, ErrPoolNotInitialized
	}
	direction, err := p.directionForAsset(req.SourceAsset)
	if err != nil {
		return nil, err
	}
	curve, err := p.curve()
	if err != nil {
		return nil, err
	}

	sourceReserve, destReserve := req.ReserveA, req.ReserveB
	if direction == swapcurve.TradeDirectionBtoA {
		sourceReserve, destReserve = req.ReserveB, req.ReserveA
	}
	return executeSwap(
		curve, p.Fees, req.SourceAmount, sourceReserve, destReserve,
		req.MinimumAmountOut, direction,
	)
}

// executeSwap runs the swap pipeline: trading fee on the gross input, net
// amount through the curve, slippage validation, fee split. The owner fee is
// carved out of the trading fee and the host fee out of the owner fee, so
// the three never add up to more than the trading fee itself.
func executeSwap(
	curve swapcurve.Calculator, fees swapcurve.Fees,
	sourceAmount, sourceReserve, destReserve, minimumAmountOut uint64,
	direction swapcurve.TradeDirection,
) (*SwapResult, error) {
	if sourceAmount == 0 {
		return nil, ErrZeroAmount
	}

	feeRes, err := fees.SplitTradingFee(sourceAmount)
	if err != nil {
		return nil, err
	}
	if feeRes.Net == 0 {
		return nil, swapcurve.ErrZeroTradingTokens
	}

	swapRes, err := curve.SwapWithoutFees(
		feeRes.Net, sourceReserve, destReserve, direction,
	)
	if err != nil {
		return nil, err
	}
	if swapRes.DestinationAmountSwapped < minimumAmountOut {
		return nil, ErrSlippageExceeded
	}

	ownerFee, err := fees.OwnerTradingFee(sourceAmount)
	if err != nil {
		return nil, err
	}
	if ownerFee > feeRes.Fee {
		ownerFee = feeRes.Fee
	}
	hostFee, err := fees.HostFee(feeRes.Fee)
	if err != nil {
		return nil, err
	}
	if hostFee > ownerFee {
		hostFee = ownerFee
	}

	sourceSwapped, err := mathutil.CheckedAdd(swapRes.SourceAmountSwapped, feeRes.Fee)
	if err != nil {
		return nil, err
	}
	// owner and host portions leave the pool, the rest of the fee stays in
	// the source reserve
	newSourceReserve, err := mathutil.CheckedAdd(sourceReserve, sourceSwapped)
	if err != nil {
		return nil, err
	}
	newSourceReserve, err = mathutil.CheckedSub(newSourceReserve, ownerFee)
	if err != nil {
		return nil, err
	}
	newDestReserve, err := mathutil.CheckedSub(
		destReserve, swapRes.DestinationAmountSwapped,
	)
	if err != nil {
		return nil, err
	}

	return &SwapResult{
		SourceAmountSwapped:      sourceSwapped,
		DestinationAmountSwapped: swapRes.DestinationAmountSwapped,
		TradeFee:                 feeRes.Fee,
		OwnerFee:                 ownerFee,
		HostFee:                  hostFee,
		NewSourceReserve:         newSourceReserve,
		NewDestinationReserve:    newDestReserve,
	}, nil
}
