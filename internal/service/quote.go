package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/swap-quote/internal/apperrors"
	"github.com/fleshka4/swap-quote/internal/quote"
	"github.com/fleshka4/swap-quote/internal/service/dto"
	"github.com/fleshka4/swap-quote/internal/service/validate"
)

// Quote resolves both symbols in the registry, prices the trade and derives
// the minimum received at the requested (or stored) slippage tolerance.
func (s *QuoteService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	resp, err := s.quote(ctx, req)
	if err != nil {
		s.metrics.ObserveQuote("error", "", 0, false)
		return nil, err
	}

	outcome := "ok"
	if resp.Net.IsZero() {
		outcome = "zero"
	}
	s.metrics.ObserveQuote(outcome, resp.ImpactLevel.String(), resp.PriceImpactPercent.InexactFloat64(), !resp.Wrap && !resp.Net.IsZero())
	return resp, nil
}

func (s *QuoteService) quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if err := validate.QuoteRequestValidate(req); err != nil {
		return nil, err
	}

	snap := s.registry.Snapshot()
	from, ok := snap.Lookup(req.From)
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrTokenNotFound, "from %q", req.From)
	}
	to, ok := snap.Lookup(req.To)
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrTokenNotFound, "to %q", req.To)
	}

	slippage := req.SlippagePercent
	if slippage == nil {
		prefs, err := s.prefs.Load(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "s.prefs.Load")
		}
		slippage = &prefs.SlippagePercent
	}

	pool := s.liquidity.LiquidityFor(from.Symbol, to.Symbol)
	res, err := s.engine.Compute(quote.Request{
		From:             from,
		To:               to,
		Amount:           req.Amount,
		PoolLiquidityUSD: pool,
		FeeRate:          s.feeRate,
	})
	if err != nil {
		return nil, errors.Wrap(err, "s.engine.Compute")
	}

	level := s.thresholds.Classify(res.PriceImpactPercent)

	s.logger.Debug("quote computed",
		zap.String("from", from.Symbol),
		zap.String("to", to.Symbol),
		zap.String("amount", req.Amount.String()),
		zap.String("net", res.Net.String()),
		zap.String("impact", res.PriceImpactPercent.String()),
		zap.Stringer("band", level),
	)

	return &dto.QuoteResponse{
		From:                   from,
		To:                     to,
		Amount:                 req.Amount,
		InputValueUSD:          res.InputValueUSD,
		Gross:                  res.Gross,
		Net:                    res.Net,
		PriceImpactPercent:     res.PriceImpactPercent,
		ImpactLevel:            level,
		RequiresAcknowledgment: level == quote.ImpactHigh,
		SlippagePercent:        *slippage,
		MinimumReceived:        res.MinimumReceived(*slippage),
		FeeRate:                s.feeRate,
		PoolLiquidityUSD:       pool,
		Wrap:                   res.Wrap,
	}, nil
}
