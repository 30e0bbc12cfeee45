package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/fleshka4/swap-quote/internal/apperrors"
	"github.com/fleshka4/swap-quote/internal/preferences"
	"github.com/fleshka4/swap-quote/internal/quote"
)

// Tokens lists the registry sorted by symbol.
func (s *QuoteService) Tokens(_ context.Context) ([]quote.Token, error) {
	return s.registry.List(), nil
}

// ImportToken adds a custom token by contract address.
func (s *QuoteService) ImportToken(ctx context.Context, address string) (*quote.Token, error) {
	t, err := s.registry.Import(ctx, address)
	if err != nil {
		outcome := "error"
		if errors.Is(err, apperrors.ErrInvalidTokenAddress) {
			outcome = "invalid"
		}
		s.metrics.ObserveImport(outcome)
		return nil, errors.Wrap(err, "s.registry.Import")
	}

	s.metrics.ObserveImport("ok")
	return &t, nil
}

// Preferences returns the stored user preferences.
func (s *QuoteService) Preferences(ctx context.Context) (preferences.Preferences, error) {
	p, err := s.prefs.Load(ctx)
	if err != nil {
		return preferences.Preferences{}, errors.Wrap(err, "s.prefs.Load")
	}
	return p, nil
}

// UpdatePreferences validates and stores p.
func (s *QuoteService) UpdatePreferences(ctx context.Context, p preferences.Preferences) (preferences.Preferences, error) {
	if err := p.Validate(); err != nil {
		return preferences.Preferences{}, err
	}
	if err := s.prefs.Save(ctx, p); err != nil {
		return preferences.Preferences{}, errors.Wrap(err, "s.prefs.Save")
	}
	return p, nil
}
