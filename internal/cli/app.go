package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fleshka4/swap-quote/internal/config"
	"github.com/fleshka4/swap-quote/internal/preferences"
	"github.com/fleshka4/swap-quote/internal/registry"
	"github.com/fleshka4/swap-quote/internal/service"
)

type app struct {
	cfg *config.Config
	svc *service.QuoteService
}

// loadApp wires the quote service from the config named by --config.
// Notifications stay silent in the CLI.
func loadApp(cmd *cobra.Command) (*app, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, errors.Wrap(err, "config flag")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "config.Load")
	}

	tokens, err := cfg.QuoteTokens()
	if err != nil {
		return nil, errors.Wrap(err, "cfg.QuoteTokens")
	}
	reg, err := registry.New(tokens)
	if err != nil {
		return nil, errors.Wrap(err, "registry.New")
	}
	engine, err := cfg.Quote.Engine()
	if err != nil {
		return nil, errors.Wrap(err, "cfg.Quote.Engine")
	}

	thresholds := cfg.Quote.Thresholds()
	svc := service.NewQuoteService(service.Deps{
		Registry:    reg,
		Engine:      engine,
		Preferences: preferences.NewFileStore(cfg.PreferencesPath),
		Logger:      zap.NewNop(),
		Liquidity:   cfg.Quote,
		FeeRate:     cfg.Quote.FeeRateDecimal(),
		Thresholds:  &thresholds,
		SwapLatency: cfg.Quote.SwapLatency,
	})
	return &app{cfg: cfg, svc: svc}, nil
}
