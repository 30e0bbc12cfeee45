package preferences

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fleshka4/swap-quote/internal/apperrors"
	"github.com/fleshka4/swap-quote/internal/quote"
)

//go:generate mockgen -source=preferences.go -destination=mock/store.go -package=mock

// MaxSlippagePercent bounds the user slippage tolerance.
var MaxSlippagePercent = decimal.NewFromInt(50)

// Notifications selects which events reach the user.
type Notifications struct {
	Mints       bool `yaml:"mints" json:"mints"`
	PriceAlerts bool `yaml:"price_alerts" json:"priceAlerts"`
	Swaps       bool `yaml:"swaps" json:"swaps"`
}

// Preferences is the per-user configuration handed to the presentation layer.
type Preferences struct {
	ExpertMode      bool            `yaml:"expert_mode" json:"expertMode"`
	SlippagePercent decimal.Decimal `yaml:"slippage_percent" json:"slippagePercent"`
	Notifications   Notifications   `yaml:"notifications" json:"notifications"`
}

// Default returns 0.5% slippage, expert mode off and every notification on.
func Default() Preferences {
	return Preferences{
		SlippagePercent: decimal.RequireFromString("0.5"),
		Notifications: Notifications{
			Mints:       true,
			PriceAlerts: true,
			Swaps:       true,
		},
	}
}

// Validate checks that slippage lies in [0, MaxSlippagePercent].
func (p Preferences) Validate() error {
	if !quote.InRange(p.SlippagePercent) ||
		p.SlippagePercent.IsNegative() || p.SlippagePercent.GreaterThan(MaxSlippagePercent) {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "slippage %s%% out of [0, %s]", p.SlippagePercent, MaxSlippagePercent)
	}
	return nil
}

// Store persists preferences.
type Store interface {
	// Load returns the stored preferences, or Default when nothing is stored.
	Load(ctx context.Context) (Preferences, error)
	// Save replaces the stored preferences.
	Save(ctx context.Context, p Preferences) error
}
