package http

import (
	"net/http"

	"github.com/fleshka4/swap-quote/internal/transport/http/validate"
)

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.QuoteRequestValidate(r)
	if err != nil {
		s.writeError(w, badRequest(code), err)
		return
	}
	ctx, cancel := s.withTimeout(r)
	defer cancel()

	out, err := s.svc.Quote(ctx, *req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTokens(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.withTimeout(r)
	defer cancel()

	out, err := s.svc.Tokens(ctx)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	address, code, err := validate.ImportRequestValidate(r)
	if err != nil {
		s.writeError(w, badRequest(code), err)
		return
	}
	ctx, cancel := s.withTimeout(r)
	defer cancel()

	out, err := s.svc.ImportToken(ctx, address)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.withTimeout(r)
	defer cancel()

	out, err := s.svc.Preferences(ctx)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	p, code, err := validate.PreferencesRequestValidate(r)
	if err != nil {
		s.writeError(w, badRequest(code), err)
		return
	}
	ctx, cancel := s.withTimeout(r)
	defer cancel()

	out, err := s.svc.UpdatePreferences(ctx, *p)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.SwapRequestValidate(r)
	if err != nil {
		s.writeError(w, badRequest(code), err)
		return
	}
	ctx, cancel := s.withTimeout(r)
	defer cancel()

	out, err := s.svc.Swap(ctx, *req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func badRequest(code int) int {
	if code == 0 {
		return http.StatusBadRequest
	}
	return code
}
