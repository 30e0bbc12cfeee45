package dto

import "github.com/shopspring/decimal"

// SwapKind names what a committed swap did.
type SwapKind string

const (
	SwapKindSwap   SwapKind = "swap"
	SwapKindWrap   SwapKind = "wrap"
	SwapKindUnwrap SwapKind = "unwrap"
)

// SwapRequest commits a quote.
type SwapRequest struct {
	Quote QuoteRequest
	// MinReceived rejects the swap when the fresh quote falls below it.
	MinReceived           *decimal.Decimal
	AcknowledgeHighImpact bool
}

// SwapResponse is the simulated receipt of a committed swap.
type SwapResponse struct {
	TxHash string         `json:"txHash"`
	Kind   SwapKind       `json:"kind"`
	Quote  *QuoteResponse `json:"quote"`
}
