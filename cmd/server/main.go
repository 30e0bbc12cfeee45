package main

import (
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/fleshka4/swap-quote/internal/config"
	"github.com/fleshka4/swap-quote/internal/logger"
	"github.com/fleshka4/swap-quote/internal/metrics"
	"github.com/fleshka4/swap-quote/internal/notify"
	"github.com/fleshka4/swap-quote/internal/preferences"
	"github.com/fleshka4/swap-quote/internal/registry"
	"github.com/fleshka4/swap-quote/internal/service"
	transport "github.com/fleshka4/swap-quote/internal/transport/http"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	l, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger.New: %v", err)
	}
	defer func() {
		_ = l.Sync()
	}()

	tokens, err := cfg.QuoteTokens()
	if err != nil {
		l.Fatal("cfg.QuoteTokens", zap.Error(err))
	}
	reg, err := registry.New(tokens,
		registry.WithImportLatency(cfg.Import.Latency),
		registry.WithLogger(l.Named("registry")),
	)
	if err != nil {
		l.Fatal("registry.New", zap.Error(err))
	}

	engine, err := cfg.Quote.Engine()
	if err != nil {
		l.Fatal("cfg.Quote.Engine", zap.Error(err))
	}

	m := metrics.New()

	thresholds := cfg.Quote.Thresholds()
	svc := service.NewQuoteService(service.Deps{
		Registry:    reg,
		Engine:      engine,
		Preferences: preferences.NewFileStore(cfg.PreferencesPath),
		Notifier:    newNotifier(cfg, l),
		Metrics:     m,
		Logger:      l.Named("service"),
		Liquidity:   cfg.Quote,
		FeeRate:     cfg.Quote.FeeRateDecimal(),
		Thresholds:  &thresholds,
		SwapLatency: cfg.Quote.SwapLatency,
	})

	srv, err := transport.NewServer(svc, cfg,
		transport.WithLogger(l.Named("http")),
		transport.WithMetrics(m),
	)
	if err != nil {
		l.Fatal("transport.NewServer", zap.Error(err))
	}

	l.Info("quote engine ready",
		zap.String("impact_model", engine.Model().Name()),
		zap.Int("tokens", len(tokens)),
	)

	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		l.Fatal("srv.ListenAndServe", zap.Error(err))
	}
}

func newNotifier(cfg *config.Config, l *zap.Logger) notify.Notifier {
	logNotifier := notify.NewLogNotifier(l.Named("notify"))
	if cfg.Webhook.URL == "" {
		return logNotifier
	}

	return notify.Multi{
		logNotifier,
		notify.NewWebhookNotifier(cfg.Webhook.URL, cfg.Webhook.Token, cfg.Webhook.TargetURL,
			notify.WithHTTPClient(&http.Client{Timeout: cfg.Webhook.Timeout}),
			notify.WithMaxTries(cfg.Webhook.MaxTries),
			notify.WithWebhookLogger(l.Named("webhook")),
		),
	}
}
