package quote

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)

	// MaxImpactPercent is the upper clamp for price impact.
	MaxImpactPercent = decimal.NewFromInt(99)
)

// ImpactModel estimates how far a trade of inputValueUSD moves the price of a
// pool with the given depth. Results are clamped by the Engine.
type ImpactModel interface {
	ImpactPercent(inputValueUSD, poolLiquidityUSD decimal.Decimal) decimal.Decimal
	Name() string
}

// LinearImpact treats impact as trade size relative to pool depth.
type LinearImpact struct{}

// ImpactPercent returns inputValueUSD / poolLiquidityUSD * 100.
func (LinearImpact) ImpactPercent(inputValueUSD, poolLiquidityUSD decimal.Decimal) decimal.Decimal {
	return inputValueUSD.Div(poolLiquidityUSD).Mul(hundred)
}

// Name implements ImpactModel.
func (LinearImpact) Name() string { return "linear" }

// ConstantProductImpact prices the trade against virtual x*y=k reserves,
// with half of the pool depth on each side:
//
//	outUSD = half*inUSD / (half + inUSD)
//	impact = (1 - outUSD/inUSD) * 100 = inUSD*100 / (half + inUSD)
//
// It produces different numbers than LinearImpact for the same input.
type ConstantProductImpact struct{}

// ImpactPercent implements ImpactModel.
func (ConstantProductImpact) ImpactPercent(inputValueUSD, poolLiquidityUSD decimal.Decimal) decimal.Decimal {
	half := poolLiquidityUSD.Div(two)
	return inputValueUSD.Mul(hundred).Div(half.Add(inputValueUSD))
}

// Name implements ImpactModel.
func (ConstantProductImpact) Name() string { return "constant_product" }

// ParseImpactModel maps a config name to an ImpactModel. Empty means linear.
func ParseImpactModel(name string) (ImpactModel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return LinearImpact{}, nil
	case "constant_product", "xyk":
		return ConstantProductImpact{}, nil
	default:
		return nil, errors.Errorf("unknown impact model %q", name)
	}
}

// clampImpact bounds impact to [0, MaxImpactPercent].
func clampImpact(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(MaxImpactPercent) {
		return MaxImpactPercent
	}
	return p
}

// ImpactLevel is the display band a price impact falls into.
type ImpactLevel int

const (
	// ImpactSafe is below the caution threshold.
	ImpactSafe ImpactLevel = iota
	// ImpactCaution is between the caution and high thresholds, inclusive.
	ImpactCaution
	// ImpactHigh is above the high threshold and needs explicit acknowledgment.
	ImpactHigh
)

func (l ImpactLevel) String() string {
	switch l {
	case ImpactSafe:
		return "safe"
	case ImpactCaution:
		return "caution"
	case ImpactHigh:
		return "high"
	default:
		return "unknown"
	}
}

// MarshalText renders the level name in JSON payloads.
func (l ImpactLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Thresholds are the price impact band boundaries in percent.
type Thresholds struct {
	CautionPercent decimal.Decimal
	HighPercent    decimal.Decimal
}

// DefaultThresholds returns 1% caution and 5% high.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CautionPercent: decimal.NewFromInt(1),
		HighPercent:    decimal.NewFromInt(5),
	}
}

// Classify returns the band for impactPercent.
func (t Thresholds) Classify(impactPercent decimal.Decimal) ImpactLevel {
	switch {
	case impactPercent.LessThan(t.CautionPercent):
		return ImpactSafe
	case impactPercent.GreaterThan(t.HighPercent):
		return ImpactHigh
	default:
		return ImpactCaution
	}
}
