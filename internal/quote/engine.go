package quote

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fleshka4/swap-quote/internal/apperrors"
)

// Request is the input of a single quote computation.
type Request struct {
	From             Token
	To               Token
	Amount           decimal.Decimal
	PoolLiquidityUSD decimal.Decimal
	// FeeRate is a fraction, 0.003 means 30 bps.
	FeeRate decimal.Decimal
}

// Result is the outcome of a quote. The zero value is the empty-input quote.
type Result struct {
	InputValueUSD      decimal.Decimal
	Gross              decimal.Decimal
	Net                decimal.Decimal
	PriceImpactPercent decimal.Decimal
	// Wrap is set when the pair is pegged and no market trade happens.
	Wrap bool
}

// IsZero reports whether the result carries no output.
func (r Result) IsZero() bool {
	return r.Net.IsZero() && r.Gross.IsZero()
}

// MinimumReceived is the least amount accepted at the given slippage tolerance.
func (r Result) MinimumReceived(slippagePercent decimal.Decimal) decimal.Decimal {
	return MinimumReceived(r.Net, slippagePercent)
}

// MinimumReceived returns net * (1 - slippagePercent/100). Slippage is
// clamped to [0, 100].
func MinimumReceived(net, slippagePercent decimal.Decimal) decimal.Decimal {
	if slippagePercent.IsNegative() {
		slippagePercent = decimal.Zero
	}
	if slippagePercent.GreaterThan(hundred) {
		slippagePercent = hundred
	}
	return net.Mul(decimal.NewFromInt(1).Sub(slippagePercent.Div(hundred)))
}

// MaxScale bounds both the decimal exponent and the digit count of numbers
// the engine accepts.
const MaxScale = 64

// InRange reports whether d has an exponent within [-MaxScale, MaxScale] and
// at most MaxScale digits. Arithmetic on anything wider rescales through
// arbitrarily large integers.
func InRange(d decimal.Decimal) bool {
	e := d.Exponent()
	return e >= -MaxScale && e <= MaxScale && d.NumDigits() <= MaxScale
}

// ParseAmount converts user input into an amount. Anything unparsable or out
// of range is zero.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !InRange(d) {
		return decimal.Zero
	}
	return d
}

// Engine computes quotes. It is stateless after construction and safe for
// concurrent use.
type Engine struct {
	pegs  PegSet
	model ImpactModel
}

// Option configures an Engine.
type Option func(*Engine)

// WithPegs replaces the pegged pairs.
func WithPegs(p PegSet) Option {
	return func(e *Engine) { e.pegs = p }
}

// WithImpactModel replaces the price impact model.
func WithImpactModel(m ImpactModel) Option {
	return func(e *Engine) {
		if m != nil {
			e.model = m
		}
	}
}

// NewEngine creates an Engine with ETH/WETH pegged and linear impact unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		pegs:  DefaultPegs(),
		model: LinearImpact{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model returns the configured impact model.
func (e *Engine) Model() ImpactModel {
	return e.model
}

// Compute converts req.Amount of req.From into req.To.
//
// Zero and negative amounts yield a zero Result without error. Pegged pairs pass
// the amount through untouched. Otherwise the amount is bridged through USD
// reference prices, haircut by the clamped price impact and then by the fee.
func (e *Engine) Compute(req Request) (Result, error) {
	if req.From.SameAsset(req.To) {
		return Result{}, errors.Wrapf(apperrors.ErrInvalidPair, "%s -> %s", req.From.Symbol, req.To.Symbol)
	}
	if !req.Amount.IsPositive() {
		return Result{}, nil
	}
	if !InRange(req.Amount) {
		return Result{}, errors.Wrapf(apperrors.ErrInvalidArgument, "amount exponent %d out of range", req.Amount.Exponent())
	}

	if e.pegs.Pegged(req.From.Symbol, req.To.Symbol) {
		return Result{
			InputValueUSD:      req.From.ValueUSD(req.Amount),
			Gross:              req.Amount,
			Net:                req.Amount,
			PriceImpactPercent: decimal.Zero,
			Wrap:               true,
		}, nil
	}

	if !req.PoolLiquidityUSD.IsPositive() {
		return Result{}, errors.Wrapf(apperrors.ErrStalePoolLiquidity, "pool liquidity %s", req.PoolLiquidityUSD)
	}
	if err := req.From.Validate(); err != nil {
		return Result{}, err
	}
	if err := req.To.Validate(); err != nil {
		return Result{}, err
	}
	if req.FeeRate.IsNegative() || req.FeeRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Result{}, errors.Wrapf(apperrors.ErrInvalidArgument, "fee rate %s out of [0, 1)", req.FeeRate)
	}

	inputValueUSD := req.From.ValueUSD(req.Amount)
	gross := inputValueUSD.Div(req.To.PriceUSD)

	impact := clampImpact(e.model.ImpactPercent(inputValueUSD, req.PoolLiquidityUSD))

	one := decimal.NewFromInt(1)
	netAfterImpact := gross.Mul(one.Sub(impact.Div(hundred)))
	net := netAfterImpact.Mul(one.Sub(req.FeeRate))

	return Result{
		InputValueUSD:      inputValueUSD,
		Gross:              gross,
		Net:                net,
		PriceImpactPercent: impact,
	}, nil
}
