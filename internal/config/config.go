package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fleshka4/swap-quote/internal/quote"
)

// Config holds application configuration loaded from file.
type Config struct {
	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	LogLevel          string        `yaml:"log_level"`

	Quote           Quote         `yaml:"quote"`
	Tokens          []Token       `yaml:"tokens"`
	Import          Import        `yaml:"import"`
	PreferencesPath string        `yaml:"preferences_path"`
	Webhook         Webhook       `yaml:"webhook"`
	Session         SessionTiming `yaml:"session"`
}

// Quote holds the pricing parameters of the engine.
type Quote struct {
	// FeeRate is a fraction. Nil means DefaultFeeRate; zero is a valid fee.
	FeeRate              *float64        `yaml:"fee_rate"`
	PoolLiquidityUSD     float64         `yaml:"pool_liquidity_usd"`
	PairLiquidityUSD     []PairLiquidity `yaml:"pair_liquidity_usd"`
	ImpactModel          string          `yaml:"impact_model"`
	// Nil thresholds take the defaults; zero is a valid threshold.
	CautionImpactPercent *float64        `yaml:"caution_impact_percent"`
	HighImpactPercent    *float64        `yaml:"high_impact_percent"`
	PeggedPairs          [][]string      `yaml:"pegged_pairs"`
	SwapLatency          time.Duration   `yaml:"swap_latency"`
}

// PairLiquidity overrides the pool depth for one pair, in either direction.
type PairLiquidity struct {
	From         string  `yaml:"from"`
	To           string  `yaml:"to"`
	LiquidityUSD float64 `yaml:"liquidity_usd"`
}

// Token seeds the registry.
type Token struct {
	Symbol   string  `yaml:"symbol"`
	Name     string  `yaml:"name"`
	Logo     string  `yaml:"logo"`
	Balance  string  `yaml:"balance"`
	PriceUSD float64 `yaml:"price_usd"`
	Decimals int32   `yaml:"decimals"`
}

// Import configures the custom token import flow.
type Import struct {
	Latency time.Duration `yaml:"latency"`
}

// Webhook configures the push notification sink. Empty URL disables it.
type Webhook struct {
	URL       string        `yaml:"url"`
	Token     string        `yaml:"token"`
	TargetURL string        `yaml:"target_url"`
	Timeout   time.Duration `yaml:"timeout"`
	MaxTries  uint          `yaml:"max_tries"`
}

// SessionTiming configures debounce and simulated latency for quote sessions.
type SessionTiming struct {
	Debounce time.Duration `yaml:"debounce"`
	Latency  time.Duration `yaml:"latency"`
}

// Defaults.
const (
	DefaultListenAddr       = ":1337"
	DefaultFeeRate          = 0.003
	DefaultPoolLiquidityUSD = 500000
	DefaultCautionImpact    = 1
	DefaultHighImpact       = 5
	DefaultSwapLatency      = 2 * time.Second
	DefaultImportLatency    = 600 * time.Millisecond
	DefaultDebounce         = 300 * time.Millisecond
	DefaultQuoteLatency     = 400 * time.Millisecond
	DefaultPreferencesPath  = "data/preferences.yaml"
	DefaultWebhookTries     = 3

	defaultTimeout = 5 * time.Second
)

// DefaultTokens mirrors the built-in token list.
func DefaultTokens() []Token {
	return []Token{
		{Symbol: "ETH", Name: "Ethereum", Logo: "https://cryptologos.cc/logos/ethereum-eth-logo.png", Balance: "1.42", PriceUSD: 2450.12, Decimals: 6},
		{Symbol: "WETH", Name: "Wrapped Ether", Logo: "https://cryptologos.cc/logos/ethereum-eth-logo.png", Balance: "0.85", PriceUSD: 2450.12, Decimals: 6},
		{Symbol: "USDC", Name: "USD Coin", Logo: "https://cryptologos.cc/logos/usd-coin-usdc-logo.png", Balance: "542.10", PriceUSD: 1.00, Decimals: 2},
		{Symbol: "cbBTC", Name: "Coinbase BTC", Logo: "https://assets.coingecko.com/coins/images/39906/standard/cbbtc.png", Balance: "0.005", PriceUSD: 92450.00, Decimals: 8},
		{Symbol: "DEGEN", Name: "Degen", Logo: "https://assets.coingecko.com/coins/images/34515/standard/degen.png", Balance: "12400", PriceUSD: 0.018, Decimals: 2},
		{Symbol: "AERO", Name: "Aerodrome", Logo: "https://assets.coingecko.com/coins/images/31583/standard/AERO.png", Balance: "45.0", PriceUSD: 0.82, Decimals: 4},
	}
}

// Load reads the config from a YAML file path and applies fallbacks.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "os.Open")
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoder.Decode")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "cfg.Validate")
	}

	return &cfg, nil
}

// Default returns a config with every fallback applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.GraceTimeout == 0 {
		c.GraceTimeout = defaultTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaultTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Quote.FeeRate == nil {
		fee := DefaultFeeRate
		c.Quote.FeeRate = &fee
	}
	if c.Quote.PoolLiquidityUSD == 0 {
		c.Quote.PoolLiquidityUSD = DefaultPoolLiquidityUSD
	}
	if c.Quote.CautionImpactPercent == nil {
		caution := float64(DefaultCautionImpact)
		c.Quote.CautionImpactPercent = &caution
	}
	if c.Quote.HighImpactPercent == nil {
		high := float64(DefaultHighImpact)
		c.Quote.HighImpactPercent = &high
	}
	if c.Quote.PeggedPairs == nil {
		c.Quote.PeggedPairs = [][]string{{"ETH", "WETH"}}
	}
	if c.Quote.SwapLatency == 0 {
		c.Quote.SwapLatency = DefaultSwapLatency
	}

	if len(c.Tokens) == 0 {
		c.Tokens = DefaultTokens()
	}
	if c.Import.Latency == 0 {
		c.Import.Latency = DefaultImportLatency
	}
	if c.PreferencesPath == "" {
		c.PreferencesPath = DefaultPreferencesPath
	}
	if c.Webhook.Timeout == 0 {
		c.Webhook.Timeout = defaultTimeout
	}
	if c.Webhook.MaxTries == 0 {
		c.Webhook.MaxTries = DefaultWebhookTries
	}
	if c.Session.Debounce == 0 {
		c.Session.Debounce = DefaultDebounce
	}
	if c.Session.Latency == 0 {
		c.Session.Latency = DefaultQuoteLatency
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Quote.FeeRate != nil && (*c.Quote.FeeRate < 0 || *c.Quote.FeeRate >= 1) {
		return errors.Errorf("fee_rate must be in [0, 1), got %v", *c.Quote.FeeRate)
	}
	if c.Quote.PoolLiquidityUSD <= 0 {
		return errors.Errorf("pool_liquidity_usd must be positive, got %v", c.Quote.PoolLiquidityUSD)
	}
	for _, p := range c.Quote.PairLiquidityUSD {
		if p.From == "" || p.To == "" || p.LiquidityUSD <= 0 {
			return errors.Errorf("invalid pair_liquidity_usd entry %s/%s", p.From, p.To)
		}
	}
	th := c.Quote.thresholdValues()
	if th[0] < 0 || th[0] > th[1] {
		return errors.Errorf("impact thresholds must satisfy 0 <= caution (%v) <= high (%v)", th[0], th[1])
	}
	if _, err := quote.ParseImpactModel(c.Quote.ImpactModel); err != nil {
		return err
	}
	for _, p := range c.Quote.PeggedPairs {
		if len(p) != 2 {
			return errors.Errorf("pegged pair must have two symbols, got %v", p)
		}
	}
	seen := make(map[string]struct{}, len(c.Tokens))
	for _, t := range c.Tokens {
		key := strings.ToUpper(t.Symbol)
		if key == "" {
			return errors.New("token symbol is required")
		}
		if _, ok := seen[key]; ok {
			return errors.Errorf("duplicate token %s", t.Symbol)
		}
		seen[key] = struct{}{}
		if t.PriceUSD <= 0 {
			return errors.Errorf("token %s: price_usd must be positive", t.Symbol)
		}
	}
	return nil
}

// FeeRateDecimal returns the configured fee as a decimal.
func (q Quote) FeeRateDecimal() decimal.Decimal {
	if q.FeeRate == nil {
		return decimal.NewFromFloat(DefaultFeeRate)
	}
	return decimal.NewFromFloat(*q.FeeRate)
}

// LiquidityFor returns the pool depth for a pair, falling back to the default.
func (q Quote) LiquidityFor(from, to string) decimal.Decimal {
	for _, p := range q.PairLiquidityUSD {
		if (strings.EqualFold(p.From, from) && strings.EqualFold(p.To, to)) ||
			(strings.EqualFold(p.From, to) && strings.EqualFold(p.To, from)) {
			return decimal.NewFromFloat(p.LiquidityUSD)
		}
	}
	return decimal.NewFromFloat(q.PoolLiquidityUSD)
}

// Thresholds returns the impact bands.
func (q Quote) Thresholds() quote.Thresholds {
	th := q.thresholdValues()
	return quote.Thresholds{
		CautionPercent: decimal.NewFromFloat(th[0]),
		HighPercent:    decimal.NewFromFloat(th[1]),
	}
}

func (q Quote) thresholdValues() [2]float64 {
	th := [2]float64{DefaultCautionImpact, DefaultHighImpact}
	if q.CautionImpactPercent != nil {
		th[0] = *q.CautionImpactPercent
	}
	if q.HighImpactPercent != nil {
		th[1] = *q.HighImpactPercent
	}
	return th
}

// Pegs returns the configured pegged pairs.
func (q Quote) Pegs() quote.PegSet {
	pairs := make([][2]string, 0, len(q.PeggedPairs))
	for _, p := range q.PeggedPairs {
		if len(p) == 2 {
			pairs = append(pairs, [2]string{p[0], p[1]})
		}
	}
	return quote.NewPegSet(pairs...)
}

// Engine builds a quote engine from the config.
func (q Quote) Engine() (*quote.Engine, error) {
	model, err := quote.ParseImpactModel(q.ImpactModel)
	if err != nil {
		return nil, err
	}
	return quote.NewEngine(quote.WithPegs(q.Pegs()), quote.WithImpactModel(model)), nil
}

// QuoteTokens converts seeds into quote tokens.
func (c *Config) QuoteTokens() ([]quote.Token, error) {
	out := make([]quote.Token, 0, len(c.Tokens))
	for _, t := range c.Tokens {
		balance := decimal.Zero
		if t.Balance != "" {
			b, err := decimal.NewFromString(t.Balance)
			if err != nil {
				return nil, errors.Wrapf(err, "token %s balance", t.Symbol)
			}
			balance = b
		}
		out = append(out, quote.Token{
			Symbol:   t.Symbol,
			Name:     t.Name,
			Logo:     t.Logo,
			Balance:  balance,
			PriceUSD: decimal.NewFromFloat(t.PriceUSD),
			Decimals: t.Decimals,
		})
	}
	return out, nil
}
