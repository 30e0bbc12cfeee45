package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/swap-quote/internal/apperrors"
	"github.com/fleshka4/swap-quote/internal/transport/http/dto"
)

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("response write error", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	msg := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
		msg = "internal error"
	}
	s.writeJSON(w, code, dto.ErrorResponse{Error: msg})
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	s.writeError(w, statusFor(err), err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument),
		errors.Is(err, apperrors.ErrInvalidPair),
		errors.Is(err, apperrors.ErrInvalidTokenAddress),
		errors.Is(err, apperrors.ErrInvalidToken):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrHighImpactNotAcknowledged),
		errors.Is(err, apperrors.ErrSlippageExceeded):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrStalePoolLiquidity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
