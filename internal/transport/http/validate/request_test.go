package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantAmount string
		wantSlip   string
		wantCode   int
		wantErr    assert.ErrorAssertionFunc
	}{
		{
			name:       "valid",
			query:      "from=ETH&to=USDC&amount=1.5",
			wantAmount: "1.5",
			wantErr:    assert.NoError,
		},
		{
			name:       "with slippage",
			query:      "from=ETH&to=USDC&amount=1&slippage=0.3",
			wantAmount: "1",
			wantSlip:   "0.3",
			wantErr:    assert.NoError,
		},
		{
			name:       "unparsable amount is zero",
			query:      "from=ETH&to=USDC&amount=abc",
			wantAmount: "0",
			wantErr:    assert.NoError,
		},
		{
			name:       "huge exponent amount is zero",
			query:      "from=ETH&to=USDC&amount=1e99999999",
			wantAmount: "0",
			wantErr:    assert.NoError,
		},
		{
			name:       "tiny exponent amount is zero",
			query:      "from=ETH&to=USDC&amount=1e-99999999",
			wantAmount: "0",
			wantErr:    assert.NoError,
		},
		{
			name:       "missing amount is zero",
			query:      "from=ETH&to=USDC",
			wantAmount: "0",
			wantErr:    assert.NoError,
		},
		{
			name:     "missing to",
			query:    "from=ETH&amount=1",
			wantCode: http.StatusBadRequest,
			wantErr:  assert.Error,
		},
		{
			name:     "bad slippage",
			query:    "from=ETH&to=USDC&amount=1&slippage=lots",
			wantCode: http.StatusBadRequest,
			wantErr:  assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/quote?"+tt.query, nil)
			req, code, err := QuoteRequestValidate(r)
			if !tt.wantErr(t, err) {
				return
			}
			assert.Equal(t, tt.wantCode, code)
			if err != nil {
				assert.Nil(t, req)
				return
			}

			require.NotNil(t, req)
			assert.Equal(t, tt.wantAmount, req.Amount.String())
			if tt.wantSlip == "" {
				assert.Nil(t, req.SlippagePercent)
			} else {
				require.NotNil(t, req.SlippagePercent)
				assert.Equal(t, tt.wantSlip, req.SlippagePercent.String())
			}
		})
	}
}

func TestSwapRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  assert.ErrorAssertionFunc
	}{
		{
			name:    "valid",
			body:    `{"from":"ETH","to":"USDC","amount":"1","minReceived":"2400","acknowledgeHighImpact":true}`,
			wantErr: assert.NoError,
		},
		{
			name:     "empty body",
			body:     ``,
			wantCode: http.StatusBadRequest,
			wantErr:  assert.Error,
		},
		{
			name:     "unknown field",
			body:     `{"from":"ETH","to":"USDC","amount":"1","gas":"lots"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  assert.Error,
		},
		{
			name:     "negative amount",
			body:     `{"from":"ETH","to":"USDC","amount":"-1"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  assert.Error,
		},
		{
			name:     "bad min received",
			body:     `{"from":"ETH","to":"USDC","amount":"1","minReceived":"x"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/swap", strings.NewReader(tt.body))
			req, code, err := SwapRequestValidate(r)
			if !tt.wantErr(t, err) {
				return
			}
			assert.Equal(t, tt.wantCode, code)
			if err == nil {
				require.NotNil(t, req)
				assert.Equal(t, "ETH", req.Quote.From)
				assert.True(t, req.AcknowledgeHighImpact)
				require.NotNil(t, req.MinReceived)
				assert.Equal(t, "2400", req.MinReceived.String())
			}
		})
	}
}

func TestImportRequestValidate(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/tokens/import", strings.NewReader(`{"address":" 0xabc "}`))
	address, code, err := ImportRequestValidate(r)
	require.NoError(t, err)
	require.Zero(t, code)
	require.Equal(t, "0xabc", address)

	r = httptest.NewRequest(http.MethodPost, "/tokens/import", strings.NewReader(`{"address":""}`))
	_, code, err = ImportRequestValidate(r)
	require.Error(t, err)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestPreferencesRequestValidate(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPut, "/preferences", strings.NewReader(`{"expertMode":true,"slippagePercent":"1.2"}`))
	p, code, err := PreferencesRequestValidate(r)
	require.NoError(t, err)
	require.Zero(t, code)
	require.True(t, p.ExpertMode)
	require.Equal(t, "1.2", p.SlippagePercent.String())
	require.True(t, p.Notifications.Swaps)
}
