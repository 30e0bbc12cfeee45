package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fleshka4/swap-quote/internal/metrics"
	"github.com/fleshka4/swap-quote/internal/notify"
	"github.com/fleshka4/swap-quote/internal/preferences"
	"github.com/fleshka4/swap-quote/internal/quote"
	"github.com/fleshka4/swap-quote/internal/registry"
	"github.com/fleshka4/swap-quote/internal/service/dto"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// Service represents interface for business logic.
type Service interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error)
	Tokens(ctx context.Context) ([]quote.Token, error)
	ImportToken(ctx context.Context, address string) (*quote.Token, error)
	Preferences(ctx context.Context) (preferences.Preferences, error)
	UpdatePreferences(ctx context.Context, p preferences.Preferences) (preferences.Preferences, error)
	Swap(ctx context.Context, req dto.SwapRequest) (*dto.SwapResponse, error)
}

// LiquiditySource returns the simulated pool depth of a pair in USD.
type LiquiditySource interface {
	LiquidityFor(from, to string) decimal.Decimal
}

// StaticLiquidity gives every pair the same depth.
type StaticLiquidity struct {
	USD decimal.Decimal
}

// LiquidityFor implements LiquiditySource.
func (l StaticLiquidity) LiquidityFor(_, _ string) decimal.Decimal {
	return l.USD
}

// Deps are the collaborators of QuoteService.
type Deps struct {
	Registry    *registry.Registry
	Engine      *quote.Engine
	Preferences preferences.Store
	Notifier    notify.Notifier
	Metrics     *metrics.Metrics
	Logger      *zap.Logger

	Liquidity   LiquiditySource
	FeeRate     decimal.Decimal
	// Thresholds defaults to quote.DefaultThresholds when nil.
	Thresholds  *quote.Thresholds
	SwapLatency time.Duration
}

// QuoteService represents struct for business logic.
type QuoteService struct {
	registry *registry.Registry
	engine   *quote.Engine
	prefs    preferences.Store
	notifier notify.Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger

	liquidity   LiquiditySource
	feeRate     decimal.Decimal
	thresholds  quote.Thresholds
	swapLatency time.Duration
}

// NewQuoteService creates QuoteService. Nil optional collaborators get
// in-memory or no-op stand-ins.
func NewQuoteService(d Deps) *QuoteService {
	s := &QuoteService{
		registry:    d.Registry,
		engine:      d.Engine,
		prefs:       d.Preferences,
		notifier:    d.Notifier,
		metrics:     d.Metrics,
		logger:      d.Logger,
		liquidity:   d.Liquidity,
		feeRate:     d.FeeRate,
		thresholds:  quote.DefaultThresholds(),
		swapLatency: d.SwapLatency,
	}
	if s.engine == nil {
		s.engine = quote.NewEngine()
	}
	if s.prefs == nil {
		s.prefs = preferences.NewMemoryStore()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.notifier == nil {
		s.notifier = notify.NewLogNotifier(s.logger)
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	if d.Thresholds != nil {
		s.thresholds = *d.Thresholds
	}
	if s.liquidity == nil {
		s.liquidity = StaticLiquidity{USD: decimal.NewFromInt(500000)}
	}
	return s
}
