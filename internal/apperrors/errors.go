package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPair is returned when a quote is requested for a token against itself.
	ErrInvalidPair = errors.New("invalid pair: from and to tokens are the same")

	// ErrInvalidToken is returned when a token violates its invariants
	// (for example a non-positive reference price).
	ErrInvalidToken = errors.New("invalid token")

	// ErrStalePoolLiquidity is returned when the pool depth used for price
	// impact is zero or negative.
	ErrStalePoolLiquidity = errors.New("stale pool liquidity")

	// ErrTokenNotFound is returned when a symbol is not in the registry.
	ErrTokenNotFound = errors.New("token not found")

	// ErrInvalidTokenAddress is returned when a custom token import candidate
	// is not a 0x-prefixed 20 byte hex address.
	ErrInvalidTokenAddress = errors.New("invalid token address")

	// ErrHighImpactNotAcknowledged is returned when a swap with high price
	// impact is committed without explicit acknowledgment.
	ErrHighImpactNotAcknowledged = errors.New("high price impact not acknowledged")

	// ErrSlippageExceeded is returned when the fresh quote is below the
	// minimum amount the caller agreed to receive.
	ErrSlippageExceeded = errors.New("slippage tolerance exceeded")
)
