package validate

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fleshka4/swap-quote/internal/apperrors"
	"github.com/fleshka4/swap-quote/internal/quote"
	"github.com/fleshka4/swap-quote/internal/service/dto"
)

var hundred = decimal.NewFromInt(100)

// QuoteRequestValidate validates business logic request. The amount is not
// checked: empty and negative amounts resolve to a zero quote.
func QuoteRequestValidate(req dto.QuoteRequest) error {
	if strings.TrimSpace(req.From) == "" || strings.TrimSpace(req.To) == "" {
		return errors.Wrap(apperrors.ErrInvalidArgument, "token symbol cannot be empty")
	}

	if strings.EqualFold(strings.TrimSpace(req.From), strings.TrimSpace(req.To)) {
		return errors.Wrap(apperrors.ErrInvalidPair, "destination token cannot be the same as source token")
	}

	if req.SlippagePercent != nil && (!quote.InRange(*req.SlippagePercent) ||
		req.SlippagePercent.IsNegative() || req.SlippagePercent.GreaterThan(hundred)) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "slippage must be within [0, 100]")
	}

	return nil
}

// SwapRequestValidate validates a swap commit.
func SwapRequestValidate(req dto.SwapRequest) error {
	if err := QuoteRequestValidate(req.Quote); err != nil {
		return err
	}

	if !req.Quote.Amount.IsPositive() || !quote.InRange(req.Quote.Amount) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "swap amount must be positive")
	}

	if req.MinReceived != nil && (!quote.InRange(*req.MinReceived) || req.MinReceived.IsNegative()) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "minimum received must be a non-negative amount")
	}

	return nil
}
