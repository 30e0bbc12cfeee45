package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/swap-quote/internal/apperrors"
	"github.com/fleshka4/swap-quote/internal/notify"
	"github.com/fleshka4/swap-quote/internal/quote"
	"github.com/fleshka4/swap-quote/internal/service/dto"
	"github.com/fleshka4/swap-quote/internal/service/validate"
)

// Swap re-prices the request and commits it after the simulated
// confirmation delay. High impact trades need an acknowledgment unless
// expert mode is on.
func (s *QuoteService) Swap(ctx context.Context, req dto.SwapRequest) (*dto.SwapResponse, error) {
	resp, err := s.swap(ctx, req)
	if err != nil {
		s.metrics.ObserveSwap(swapOutcome(err))
		return nil, err
	}
	s.metrics.ObserveSwap("ok")
	return resp, nil
}

func (s *QuoteService) swap(ctx context.Context, req dto.SwapRequest) (*dto.SwapResponse, error) {
	if err := validate.SwapRequestValidate(req); err != nil {
		return nil, err
	}

	prefs, err := s.prefs.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "s.prefs.Load")
	}

	q, err := s.quote(ctx, req.Quote)
	if err != nil {
		return nil, err
	}
	if q.Net.IsZero() {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "quote has no output")
	}

	if q.ImpactLevel == quote.ImpactHigh && !prefs.ExpertMode && !req.AcknowledgeHighImpact {
		return nil, errors.Wrapf(apperrors.ErrHighImpactNotAcknowledged, "impact %s%%", q.PriceImpactPercent)
	}
	if req.MinReceived != nil && q.Net.LessThan(*req.MinReceived) {
		return nil, errors.Wrapf(apperrors.ErrSlippageExceeded, "net %s below %s", q.Net, req.MinReceived)
	}

	kind := swapKind(q)

	if s.swapLatency > 0 {
		timer := time.NewTimer(s.swapLatency)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.notifySwap(context.WithoutCancel(ctx), prefs.Notifications.Swaps, notify.Notification{
				Title:   "Swap Failed",
				Message: fmt.Sprintf("%s %s to %s was not confirmed", q.Amount, q.From.Symbol, q.To.Symbol),
				Type:    notify.TypeError,
			})
			return nil, errors.Wrap(ctx.Err(), "swap cancelled")
		case <-timer.C:
		}
	}

	txHash := crypto.Keccak256Hash([]byte(uuid.NewString())).Hex()

	s.logger.Info("swap committed",
		zap.String("tx_hash", txHash),
		zap.String("kind", string(kind)),
		zap.String("from", q.From.Symbol),
		zap.String("to", q.To.Symbol),
		zap.String("amount", q.Amount.String()),
		zap.String("net", q.Net.String()),
	)

	s.notifySwap(ctx, prefs.Notifications.Swaps, notify.Notification{
		Title:   "Swap Complete",
		Message: swapMessage(kind, q),
		Type:    notify.TypeSuccess,
		Icon:    q.To.Logo,
	})

	return &dto.SwapResponse{
		TxHash: txHash,
		Kind:   kind,
		Quote:  q,
	}, nil
}

func (s *QuoteService) notifySwap(ctx context.Context, enabled bool, n notify.Notification) {
	if !enabled {
		return
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("swap notification failed", zap.Error(err))
	}
}

func swapKind(q *dto.QuoteResponse) dto.SwapKind {
	if !q.Wrap {
		return dto.SwapKindSwap
	}
	if strings.EqualFold("W"+q.To.Symbol, q.From.Symbol) {
		return dto.SwapKindUnwrap
	}
	return dto.SwapKindWrap
}

func swapMessage(kind dto.SwapKind, q *dto.QuoteResponse) string {
	verb := "Exchanged"
	if kind != dto.SwapKindSwap {
		verb = "Converted"
	}
	return fmt.Sprintf("%s %s %s for %s %s",
		verb, q.Amount, q.From.Symbol, q.Net.StringFixed(q.To.Decimals), q.To.Symbol)
}

func swapOutcome(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrHighImpactNotAcknowledged):
		return "unacknowledged"
	case errors.Is(err, apperrors.ErrSlippageExceeded):
		return "slippage"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}
