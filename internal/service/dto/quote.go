package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fleshka4/swap-quote/internal/quote"
)

// QuoteRequest asks for a quote between two registry symbols.
type QuoteRequest struct {
	From   string
	To     string
	Amount decimal.Decimal
	// SlippagePercent overrides the stored preference when set.
	SlippagePercent *decimal.Decimal
}

// QuoteResponse is a computed quote with its display classification.
type QuoteResponse struct {
	From                   quote.Token       `json:"from"`
	To                     quote.Token       `json:"to"`
	Amount                 decimal.Decimal   `json:"amount"`
	InputValueUSD          decimal.Decimal   `json:"inputValueUsd"`
	Gross                  decimal.Decimal   `json:"outputAmountGross"`
	Net                    decimal.Decimal   `json:"outputAmountNet"`
	PriceImpactPercent     decimal.Decimal   `json:"priceImpactPercent"`
	ImpactLevel            quote.ImpactLevel `json:"impactLevel"`
	RequiresAcknowledgment bool              `json:"requiresAcknowledgment"`
	SlippagePercent        decimal.Decimal   `json:"slippagePercent"`
	MinimumReceived        decimal.Decimal   `json:"minimumReceived"`
	FeeRate                decimal.Decimal   `json:"feeRate"`
	PoolLiquidityUSD       decimal.Decimal   `json:"poolLiquidityUsd"`
	Wrap                   bool              `json:"wrap"`
}
