package registry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleshka4/swap-quote/internal/apperrors"
	"github.com/fleshka4/swap-quote/internal/quote"
)

const usdcAddr = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"

func seed() []quote.Token {
	return []quote.Token{
		{Symbol: "ETH", Name: "Ethereum", PriceUSD: decimal.RequireFromString("2450.12")},
		{Symbol: "USDC", Name: "USD Coin", PriceUSD: decimal.NewFromInt(1)},
		{Symbol: "cbBTC", Name: "Coinbase BTC", PriceUSD: decimal.NewFromInt(92450)},
	}
}

func newRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()

	r, err := New(seed(), opts...)
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("seeded", func(t *testing.T) {
		t.Parallel()

		r := newRegistry(t)
		require.Equal(t, 3, r.Snapshot().Len())

		list := r.List()
		require.Equal(t, []string{"CBBTC", "ETH", "USDC"}, []string{
			key(list[0].Symbol), key(list[1].Symbol), key(list[2].Symbol),
		})
	})

	t.Run("duplicate", func(t *testing.T) {
		t.Parallel()

		tokens := append(seed(), quote.Token{Symbol: "eth", PriceUSD: decimal.NewFromInt(1)})
		_, err := New(tokens)
		require.Error(t, err)
	})

	t.Run("invalid price", func(t *testing.T) {
		t.Parallel()

		_, err := New([]quote.Token{{Symbol: "BAD", PriceUSD: decimal.Zero}})
		require.Error(t, err)
		require.True(t, errors.Is(err, apperrors.ErrInvalidToken))
	})
}

func TestLookup(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)

	tok, err := r.Lookup("CBBTC")
	require.NoError(t, err)
	require.Equal(t, "cbBTC", tok.Symbol)

	_, err = r.Lookup("DOGE")
	require.True(t, errors.Is(err, apperrors.ErrTokenNotFound))
}

func TestPublish_CopyOnWrite(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)
	before := r.Snapshot()

	require.NoError(t, r.Publish(quote.Token{Symbol: "AERO", PriceUSD: decimal.RequireFromString("0.82")}))

	_, ok := before.Lookup("AERO")
	require.False(t, ok, "published snapshot must not change")

	_, ok = r.Snapshot().Lookup("AERO")
	require.True(t, ok)

	require.Error(t, r.Publish(quote.Token{Symbol: "ZERO"}))
}

func TestPublish_ReplaceDropsOldAddress(t *testing.T) {
	t.Parallel()

	const otherAddr = "0x4200000000000000000000000000000000000006"

	r := newRegistry(t)
	price := decimal.NewFromInt(3)

	require.NoError(t, r.Publish(quote.Token{Symbol: "TKN", PriceUSD: price, Address: usdcAddr, Imported: true}))
	got, ok := r.Snapshot().LookupAddress(usdcAddr)
	require.True(t, ok)
	require.Equal(t, "TKN", got.Symbol)

	require.NoError(t, r.Publish(quote.Token{Symbol: "tkn", PriceUSD: price, Address: otherAddr}))

	_, ok = r.Snapshot().LookupAddress(usdcAddr)
	require.False(t, ok)

	got, ok = r.Snapshot().LookupAddress(otherAddr)
	require.True(t, ok)
	require.Equal(t, "tkn", got.Symbol)

	require.NoError(t, r.Publish(quote.Token{Symbol: "TKN", PriceUSD: price}))
	_, ok = r.Snapshot().LookupAddress(otherAddr)
	require.False(t, ok)
}

func TestPublish_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = r.Publish(quote.Token{
					Symbol:   "T" + decimal.NewFromInt(int64(i*100+j)).String(),
					PriceUSD: decimal.NewFromInt(1),
				})
			}
		}(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				for _, tok := range r.List() {
					assert.True(t, tok.PriceUSD.IsPositive())
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 3+8*50, r.Snapshot().Len())
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr assert.ErrorAssertionFunc
	}{
		{name: "valid checksum", in: usdcAddr, wantErr: assert.NoError},
		{name: "valid lowercase", in: "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913", wantErr: assert.NoError},
		{name: "surrounding spaces", in: "  " + usdcAddr + " ", wantErr: assert.NoError},
		{name: "missing prefix", in: "833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", wantErr: assert.Error},
		{name: "upper prefix", in: "0X833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", wantErr: assert.Error},
		{name: "too short", in: "0x1234", wantErr: assert.Error},
		{name: "too long", in: usdcAddr + "00", wantErr: assert.Error},
		{name: "not hex", in: "0xZZ3589fCD6eDb6E08f4c7C32D4f71b54bdA02913", wantErr: assert.Error},
		{name: "zero address", in: "0x0000000000000000000000000000000000000000", wantErr: assert.Error},
		{name: "empty", in: "", wantErr: assert.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseAddress(tt.in)
			tt.wantErr(t, err)
			if err != nil {
				require.True(t, errors.Is(err, apperrors.ErrInvalidTokenAddress))
			}
		})
	}
}

func TestPlaceholder_Deterministic(t *testing.T) {
	t.Parallel()

	addr := common.HexToAddress(usdcAddr)
	a := Placeholder(addr, nil)
	b := Placeholder(addr, nil)

	require.Equal(t, a, b)
	require.NoError(t, a.Validate())
	require.True(t, a.Imported)
	require.Equal(t, addr.Hex(), a.Address)
	require.Len(t, a.Symbol, 7)
	require.True(t, a.PriceUSD.LessThanOrEqual(decimal.NewFromInt(10)))

	c := Placeholder(addr, func(s string) bool { return s == a.Symbol })
	require.NotEqual(t, a.Symbol, c.Symbol)
	require.Len(t, c.Symbol, 9)
}

func TestImport(t *testing.T) {
	t.Parallel()

	r := newRegistry(t, WithImportLatency(10*time.Millisecond))

	tok, err := r.Import(context.Background(), usdcAddr)
	require.NoError(t, err)
	require.True(t, tok.Imported)

	got, err := r.Lookup(tok.Symbol)
	require.NoError(t, err)
	require.Equal(t, tok, got)

	again, err := r.Import(context.Background(), "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913")
	require.NoError(t, err)
	require.Equal(t, tok, again)
	require.Equal(t, 4, r.Snapshot().Len())
}

func TestImport_InvalidAddress(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)
	_, err := r.Import(context.Background(), "0xnothex")
	require.True(t, errors.Is(err, apperrors.ErrInvalidTokenAddress))
	require.Equal(t, 3, r.Snapshot().Len())
}

func TestImport_Cancelled(t *testing.T) {
	t.Parallel()

	r := newRegistry(t, WithImportLatency(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Import(ctx, usdcAddr)
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, 3, r.Snapshot().Len())
}

func TestImport_EngineAcceptsImportedToken(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)
	imported, err := r.Import(context.Background(), usdcAddr)
	require.NoError(t, err)

	usdc, err := r.Lookup("USDC")
	require.NoError(t, err)

	res, err := quote.NewEngine().Compute(quote.Request{
		From:             imported,
		To:               usdc,
		Amount:           decimal.NewFromInt(10),
		PoolLiquidityUSD: decimal.NewFromInt(500000),
		FeeRate:          decimal.RequireFromString("0.003"),
	})
	require.NoError(t, err)
	require.True(t, res.Net.IsPositive())
}
