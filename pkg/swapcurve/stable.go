package swapcurve

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/poolswap-network/poolswap-core/pkg/mathutil"
)

const (
	nCoins        = 2
	nCoinsSquared = 4
	// maxStableIterations bounds both Newton solvers. Non-convergence within
	// the budget is a calculation failure, never a longer loop.
	maxStableIterations = 32
)

// StableCurve implements a StableSwap-style hybrid between constant sum and
// constant product, controlled by the amplification coefficient: the higher
// the amp, the flatter the price around the balance point.
type StableCurve struct {
	Amp uint64
}

// NewStableCurve requires amp >= 1; leverage would otherwise be zero and the
// invariant undefined.
func NewStableCurve(amp uint64) (*StableCurve, error) {
	if amp == 0 {
		return nil, ErrInvalidCurveParameters
	}
	return &StableCurve{Amp: amp}, nil
}

func (c *StableCurve) leverage() *big.Int {
	return new(big.Int).Mul(
		new(big.Int).SetUint64(c.Amp), big.NewInt(nCoins),
	)
}

func (c *StableCurve) SwapWithoutFees(
	sourceAmount, sourceReserve, destReserve uint64, _ TradeDirection,
) (*SwapWithoutFeesResult, error) {
	if sourceAmount == 0 {
		return nil, ErrZeroTradingTokens
	}
	leverage := c.leverage()
	source := new(big.Int).SetUint64(sourceReserve)
	dest := new(big.Int).SetUint64(destReserve)

	d, err := computeD(leverage, source, dest, maxStableIterations)
	if err != nil {
		return nil, err
	}
	newSource := new(big.Int).Add(source, new(big.Int).SetUint64(sourceAmount))
	newDest, err := computeNewDestination(leverage, newSource, d, maxStableIterations)
	if err != nil {
		return nil, err
	}
	destAmount := new(big.Int).Sub(dest, newDest)
	if destAmount.Sign() <= 0 {
		return nil, ErrZeroTradingTokens
	}
	if !destAmount.IsUint64() {
		return nil, mathutil.ErrOverflow
	}
	return &SwapWithoutFeesResult{
		SourceAmountSwapped:      sourceAmount,
		DestinationAmountSwapped: destAmount.Uint64(),
	}, nil
}

func (c *StableCurve) PoolTokensToTradingTokens(
	poolTokens, poolTokenSupply, reserveA, reserveB uint64,
	rounding RoundDirection,
) (*TradingTokenResult, error) {
	return proportionalTradingTokens(
		poolTokens, poolTokenSupply, reserveA, reserveB, rounding,
	)
}

// DepositSingleTokenType mints pool tokens proportionally to the growth of
// the invariant D caused by the deposit.
func (c *StableCurve) DepositSingleTokenType(
	sourceAmount, reserveA, reserveB, poolTokenSupply uint64,
	direction TradeDirection,
) (uint64, error) {
	if poolTokenSupply == 0 {
		return 0, ErrEmptySupply
	}
	if sourceAmount == 0 {
		return 0, ErrZeroTradingTokens
	}
	newReserveA, newReserveB := reserveA, reserveB
	var err error
	if direction == TradeDirectionAtoB {
		newReserveA, err = mathutil.CheckedAdd(reserveA, sourceAmount)
	} else {
		newReserveB, err = mathutil.CheckedAdd(reserveB, sourceAmount)
	}
	if err != nil {
		return 0, err
	}

	d0, d1, err := c.invariantPair(reserveA, reserveB, newReserveA, newReserveB)
	if err != nil {
		return 0, err
	}
	growth := new(big.Int).Sub(d1, d0)
	if growth.Sign() <= 0 {
		return 0, ErrZeroTradingTokens
	}
	minted := new(big.Int).Mul(new(big.Int).SetUint64(poolTokenSupply), growth)
	minted.Quo(minted, d0)
	if minted.Sign() <= 0 {
		return 0, ErrZeroTradingTokens
	}
	if !minted.IsUint64() {
		return 0, mathutil.ErrOverflow
	}
	return minted.Uint64(), nil
}

// WithdrawSingleTokenTypeExactOut burns pool tokens proportionally to the
// shrinkage of D, rounded up against the withdrawer.
func (c *StableCurve) WithdrawSingleTokenTypeExactOut(
	destinationAmount, reserveA, reserveB, poolTokenSupply uint64,
	direction TradeDirection,
) (uint64, error) {
	if poolTokenSupply == 0 {
		return 0, ErrEmptySupply
	}
	if destinationAmount == 0 {
		return 0, ErrZeroTradingTokens
	}
	newReserveA, newReserveB := reserveA, reserveB
	var err error
	if direction == TradeDirectionAtoB {
		newReserveA, err = mathutil.CheckedSub(reserveA, destinationAmount)
	} else {
		newReserveB, err = mathutil.CheckedSub(reserveB, destinationAmount)
	}
	if err != nil {
		return 0, err
	}

	d0, d1, err := c.invariantPair(reserveA, reserveB, newReserveA, newReserveB)
	if err != nil {
		return 0, err
	}
	shrink := new(big.Int).Sub(d0, d1)
	if shrink.Sign() <= 0 {
		return 0, ErrZeroTradingTokens
	}
	burned := new(big.Int).Mul(new(big.Int).SetUint64(poolTokenSupply), shrink)
	burned.Add(burned, new(big.Int).Sub(d0, big.NewInt(1)))
	burned.Quo(burned, d0)
	if burned.Sign() <= 0 {
		return 0, ErrZeroTradingTokens
	}
	if !burned.IsUint64() {
		return 0, mathutil.ErrOverflow
	}
	return burned.Uint64(), nil
}

// NormalizedValue is the invariant D itself: the total amount of tokens the
// pool would hold if perfectly balanced.
func (c *StableCurve) NormalizedValue(reserveA, reserveB uint64) (uint64, error) {
	d, err := computeD(
		c.leverage(),
		new(big.Int).SetUint64(reserveA),
		new(big.Int).SetUint64(reserveB),
		maxStableIterations,
	)
	if err != nil {
		return 0, err
	}
	if !d.IsUint64() {
		return 0, mathutil.ErrOverflow
	}
	return d.Uint64(), nil
}

func (c *StableCurve) ValidateSupply(reserveA, reserveB uint64) error {
	if reserveA == 0 || reserveB == 0 {
		return ErrEmptySupply
	}
	return nil
}

// SpotPrice probes the marginal price with a trade of 1/1000th of the source
// reserve; the stable invariant has no closed-form derivative in integers.
func (c *StableCurve) SpotPrice(
	reserveA, reserveB uint64, direction TradeDirection,
) (decimal.Decimal, error) {
	if reserveA == 0 || reserveB == 0 {
		return decimal.Zero, ErrEmptySupply
	}
	sourceReserve, destReserve := reserveA, reserveB
	if direction == TradeDirectionBtoA {
		sourceReserve, destReserve = reserveB, reserveA
	}
	probe := sourceReserve / 1000
	if probe == 0 {
		probe = 1
	}
	res, err := c.SwapWithoutFees(probe, sourceReserve, destReserve, direction)
	if err != nil {
		return decimal.Zero, err
	}
	return mathutil.Div(res.DestinationAmountSwapped, res.SourceAmountSwapped), nil
}

func (c *StableCurve) AllowsDeposits() bool { return true }

func (c *StableCurve) Type() CurveType { return CurveTypeStable }

func (c *StableCurve) invariantPair(
	reserveA, reserveB, newReserveA, newReserveB uint64,
) (d0, d1 *big.Int, err error) {
	leverage := c.leverage()
	d0, err = computeD(
		leverage,
		new(big.Int).SetUint64(reserveA),
		new(big.Int).SetUint64(reserveB),
		maxStableIterations,
	)
	if err != nil {
		return nil, nil, err
	}
	if d0.Sign() == 0 {
		return nil, nil, ErrEmptySupply
	}
	d1, err = computeD(
		leverage,
		new(big.Int).SetUint64(newReserveA),
		new(big.Int).SetUint64(newReserveB),
		maxStableIterations,
	)
	if err != nil {
		return nil, nil, err
	}
	return d0, d1, nil
}

// computeD solves the StableSwap invariant D with Newton's method:
// leverage * sum(x) + D_p * n = (leverage - 1) * D + (n + 1) * D_p,
// where D_p = D^(n+1) / (n^n * prod(x)). The iteration stops at the first
// fixed point and fails after maxIterations steps without one.
func computeD(
	leverage, sourceReserve, destReserve *big.Int, maxIterations int,
) (*big.Int, error) {
	sumX := new(big.Int).Add(sourceReserve, destReserve)
	if sumX.Sign() == 0 {
		return big.NewInt(0), nil
	}

	coins := big.NewInt(nCoins)
	// The +1 mirrors the reference implementation: it keeps the divisor
	// non-zero for empty reserves without affecting large pools.
	sourceTimesCoins := new(big.Int).Add(
		new(big.Int).Mul(sourceReserve, coins), big.NewInt(1),
	)
	destTimesCoins := new(big.Int).Add(
		new(big.Int).Mul(destReserve, coins), big.NewInt(1),
	)

	d := new(big.Int).Set(sumX)
	for i := 0; i < maxIterations; i++ {
		dProduct := new(big.Int).Set(d)
		dProduct.Quo(new(big.Int).Mul(dProduct, d), sourceTimesCoins)
		dProduct.Quo(new(big.Int).Mul(dProduct, d), destTimesCoins)

		dPrevious := new(big.Int).Set(d)
		d = stableStep(d, leverage, sumX, dProduct)
		if converged(d, dPrevious) {
			return d, nil
		}
	}
	return nil, ErrCalculationFailure
}

// converged tolerates a difference of one unit: integer Newton steps can
// oscillate around the root by a single unit forever.
func converged(d, dPrevious *big.Int) bool {
	diff := new(big.Int).Sub(d, dPrevious)
	return diff.CmpAbs(big.NewInt(1)) <= 0
}

func stableStep(d, leverage, sumX, dProduct *big.Int) *big.Int {
	coins := big.NewInt(nCoins)
	numerator := new(big.Int).Mul(
		new(big.Int).Add(
			new(big.Int).Mul(leverage, sumX),
			new(big.Int).Mul(dProduct, coins),
		),
		d,
	)
	denominator := new(big.Int).Add(
		new(big.Int).Mul(d, new(big.Int).Sub(leverage, big.NewInt(1))),
		new(big.Int).Mul(dProduct, new(big.Int).Add(coins, big.NewInt(1))),
	)
	return numerator.Quo(numerator, denominator)
}

// computeNewDestination solves for the destination reserve that keeps D
// constant after the source reserve moved, again with bounded Newton steps.
func computeNewDestination(
	leverage, newSourceReserve, d *big.Int, maxIterations int,
) (*big.Int, error) {
	if newSourceReserve.Sign() == 0 || leverage.Sign() == 0 {
		return nil, ErrCalculationFailure
	}

	c := new(big.Int).Exp(d, big.NewInt(nCoins+1), nil)
	c.Quo(c, new(big.Int).Mul(
		new(big.Int).Mul(newSourceReserve, big.NewInt(nCoinsSquared)), leverage,
	))
	b := new(big.Int).Add(newSourceReserve, new(big.Int).Quo(d, leverage))

	y := new(big.Int).Set(d)
	for i := 0; i < maxIterations; i++ {
		yPrevious := new(big.Int).Set(y)
		numerator := new(big.Int).Add(new(big.Int).Mul(y, y), c)
		denominator := new(big.Int).Sub(
			new(big.Int).Add(new(big.Int).Mul(y, big.NewInt(2)), b), d,
		)
		if denominator.Sign() == 0 {
			return nil, ErrCalculationFailure
		}
		y = numerator.Quo(numerator, denominator)
		if converged(y, yPrevious) {
			return y, nil
		}
	}
	return nil, ErrCalculationFailure
}
