package quote

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fleshka4/swap-quote/internal/apperrors"
)

// Token is an asset priced against a common USD numeraire.
type Token struct {
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Logo     string          `json:"logo,omitempty"`
	Balance  decimal.Decimal `json:"balance"`
	PriceUSD decimal.Decimal `json:"priceUsd"`
	Decimals int32           `json:"decimals"`
	Address  string          `json:"address,omitempty"`
	Imported bool            `json:"imported"`
}

// Validate checks the token invariants.
func (t Token) Validate() error {
	if strings.TrimSpace(t.Symbol) == "" {
		return errors.Wrap(apperrors.ErrInvalidToken, "symbol cannot be empty")
	}
	if !t.PriceUSD.IsPositive() {
		return errors.Wrapf(apperrors.ErrInvalidToken, "%s: reference price must be positive", t.Symbol)
	}
	return nil
}

// SameAsset reports whether both tokens refer to the same symbol.
func (t Token) SameAsset(o Token) bool {
	return strings.EqualFold(t.Symbol, o.Symbol)
}

// ValueUSD returns the USD value of amount units of the token.
func (t Token) ValueUSD(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(t.PriceUSD)
}
