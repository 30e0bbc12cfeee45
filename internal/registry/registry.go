package registry

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/swap-quote/internal/apperrors"
	"github.com/fleshka4/swap-quote/internal/quote"
)

// Snapshot is an immutable view of the registry. Readers hold on to it for
// as long as they need; writers never modify a published snapshot.
type Snapshot struct {
	bySymbol  map[string]quote.Token
	byAddress map[string]string
}

func key(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Lookup returns the token with the given symbol, case-insensitively.
func (s *Snapshot) Lookup(symbol string) (quote.Token, bool) {
	t, ok := s.bySymbol[key(symbol)]
	return t, ok
}

// LookupAddress returns an imported token by contract address.
func (s *Snapshot) LookupAddress(address string) (quote.Token, bool) {
	sym, ok := s.byAddress[strings.ToLower(address)]
	if !ok {
		return quote.Token{}, false
	}
	return s.Lookup(sym)
}

// List returns the tokens sorted by symbol.
func (s *Snapshot) List() []quote.Token {
	out := make([]quote.Token, 0, len(s.bySymbol))
	for _, t := range s.bySymbol {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return key(out[i].Symbol) < key(out[j].Symbol)
	})
	return out
}

// Len returns the number of tokens.
func (s *Snapshot) Len() int {
	return len(s.bySymbol)
}

func (s *Snapshot) with(tokens ...quote.Token) *Snapshot {
	next := &Snapshot{
		bySymbol:  make(map[string]quote.Token, len(s.bySymbol)+len(tokens)),
		byAddress: make(map[string]string, len(s.byAddress)+len(tokens)),
	}
	for k, v := range s.bySymbol {
		next.bySymbol[k] = v
	}
	for k, v := range s.byAddress {
		next.byAddress[k] = v
	}
	for _, t := range tokens {
		k := key(t.Symbol)
		if prev, ok := next.bySymbol[k]; ok && prev.Address != "" {
			addr := strings.ToLower(prev.Address)
			if next.byAddress[addr] == k {
				delete(next.byAddress, addr)
			}
		}
		next.bySymbol[k] = t
		if t.Address != "" {
			next.byAddress[strings.ToLower(t.Address)] = k
		}
	}
	return next
}

// Registry maps symbols to tokens. Updates publish a complete new Snapshot
// atomically, so concurrent readers never see a partially written entry.
type Registry struct {
	current atomic.Pointer[Snapshot]
	// mu serializes writers so no publish is lost.
	mu sync.Mutex

	importLatency time.Duration
	logger        *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithImportLatency sets the simulated delay of a custom token import.
func WithImportLatency(d time.Duration) Option {
	return func(r *Registry) { r.importLatency = d }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a registry seeded with tokens.
func New(tokens []quote.Token, opts ...Option) (*Registry, error) {
	r := &Registry{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if err := t.Validate(); err != nil {
			return nil, errors.Wrap(err, "seed token")
		}
		if _, ok := seen[key(t.Symbol)]; ok {
			return nil, errors.Wrapf(apperrors.ErrInvalidArgument, "duplicate token %s", t.Symbol)
		}
		seen[key(t.Symbol)] = struct{}{}
	}

	empty := &Snapshot{bySymbol: map[string]quote.Token{}, byAddress: map[string]string{}}
	r.current.Store(empty.with(tokens...))
	return r, nil
}

// Snapshot returns the current immutable view.
func (r *Registry) Snapshot() *Snapshot {
	return r.current.Load()
}

// Lookup resolves a symbol or returns apperrors.ErrTokenNotFound.
func (r *Registry) Lookup(symbol string) (quote.Token, error) {
	t, ok := r.Snapshot().Lookup(symbol)
	if !ok {
		return quote.Token{}, errors.Wrapf(apperrors.ErrTokenNotFound, "symbol %q", symbol)
	}
	return t, nil
}

// List returns all tokens sorted by symbol.
func (r *Registry) List() []quote.Token {
	return r.Snapshot().List()
}

// Publish adds or replaces tokens and publishes the resulting snapshot.
func (r *Registry) Publish(tokens ...quote.Token) error {
	for _, t := range tokens {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.current.Store(r.current.Load().with(tokens...))
	return nil
}

// Import validates a contract address, waits the simulated lookup delay and
// publishes a placeholder token for it. Importing a known address returns the
// existing token.
func (r *Registry) Import(ctx context.Context, address string) (quote.Token, error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return quote.Token{}, err
	}

	if t, ok := r.Snapshot().LookupAddress(addr.Hex()); ok {
		return t, nil
	}

	if r.importLatency > 0 {
		timer := time.NewTimer(r.importLatency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return quote.Token{}, errors.Wrap(ctx.Err(), "import cancelled")
		case <-timer.C:
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.current.Load()
	if t, ok := snap.LookupAddress(addr.Hex()); ok {
		return t, nil
	}

	token := Placeholder(addr, func(sym string) bool {
		_, taken := snap.Lookup(sym)
		return taken
	})
	r.current.Store(snap.with(token))

	r.logger.Info("custom token imported",
		zap.String("address", token.Address),
		zap.String("symbol", token.Symbol),
		zap.String("price_usd", token.PriceUSD.String()),
	)
	return token, nil
}
