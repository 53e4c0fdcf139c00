package domain

import "errors"

var (
	// ErrPoolNotInitialized is thrown when operating on a pool that has not completed initialization
	ErrPoolNotInitialized = errors.New("pool is not initialized")
	// ErrPoolAlreadyInUse is thrown when initializing a pool twice
	ErrPoolAlreadyInUse = errors.New("pool is already in use")
	// ErrInvalidFee is thrown when the configured fee schedule is not valid
	ErrInvalidFee = errors.New("fee schedule is not valid")
	// ErrInvalidCurve is thrown when the curve configuration cannot price the supplied reserves
	ErrInvalidCurve = errors.New("curve configuration is not valid")
	// ErrInvalidTokenAsset is thrown when a request names an asset outside the pool's pair
	ErrInvalidTokenAsset = errors.New("asset does not belong to the pool pair")
	// ErrZeroAmount is thrown for zero-amount requests
	ErrZeroAmount = errors.New("amount must not be zero")
	// ErrSlippageExceeded is thrown when a result violates the caller's declared bound
	ErrSlippageExceeded = errors.New("slippage limit exceeded")
	// ErrPoolInvalidTokenAAsset ...
	ErrPoolInvalidTokenAAsset = errors.New("token A asset must be a valid asset string")
	// ErrPoolInvalidTokenBAsset ...
	ErrPoolInvalidTokenBAsset = errors.New("token B asset must be a valid asset string")
	// ErrPoolInvalidPoolTokenAsset ...
	ErrPoolInvalidPoolTokenAsset = errors.New("pool token asset must be a valid asset string")
)
