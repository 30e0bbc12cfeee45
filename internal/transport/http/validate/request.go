package validate

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fleshka4/swap-quote/internal/preferences"
	"github.com/fleshka4/swap-quote/internal/quote"
	svcdto "github.com/fleshka4/swap-quote/internal/service/dto"
	"github.com/fleshka4/swap-quote/internal/transport/http/dto"
)

const maxBodyBytes = 1 << 16

// QuoteRequestValidate validates /quote request and returns service dto.
// An unparsable amount yields a zero quote rather than an error.
func QuoteRequestValidate(r *http.Request) (*svcdto.QuoteRequest, int, error) {
	q := r.URL.Query()
	from := strings.TrimSpace(q.Get("from"))
	to := strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		return nil, http.StatusBadRequest, errors.New("missing params")
	}

	slippage, err := optionalDecimal(q.Get("slippage"), "slippage")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &svcdto.QuoteRequest{
		From:            from,
		To:              to,
		Amount:          quote.ParseAmount(q.Get("amount")),
		SlippagePercent: slippage,
	}, 0, nil
}

// ImportRequestValidate validates /tokens/import request and returns the address.
func ImportRequestValidate(r *http.Request) (string, int, error) {
	var body dto.ImportRequest
	if code, err := decodeBody(r, &body); err != nil {
		return "", code, err
	}
	address := strings.TrimSpace(body.Address)
	if address == "" {
		return "", http.StatusBadRequest, errors.New("missing address")
	}
	return address, 0, nil
}

// SwapRequestValidate validates /swap request and returns service dto.
func SwapRequestValidate(r *http.Request) (*svcdto.SwapRequest, int, error) {
	var body dto.SwapRequest
	if code, err := decodeBody(r, &body); err != nil {
		return nil, code, err
	}

	from := strings.TrimSpace(body.From)
	to := strings.TrimSpace(body.To)
	if from == "" || to == "" || body.Amount == "" {
		return nil, http.StatusBadRequest, errors.New("missing params")
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, http.StatusBadRequest, errors.New("bad amount")
	}

	var slippage, minReceived *decimal.Decimal
	if body.SlippagePercent != nil {
		if slippage, err = optionalDecimal(*body.SlippagePercent, "slippagePercent"); err != nil {
			return nil, http.StatusBadRequest, err
		}
	}
	if body.MinReceived != nil {
		if minReceived, err = optionalDecimal(*body.MinReceived, "minReceived"); err != nil {
			return nil, http.StatusBadRequest, err
		}
	}

	return &svcdto.SwapRequest{
		Quote: svcdto.QuoteRequest{
			From:            from,
			To:              to,
			Amount:          amount,
			SlippagePercent: slippage,
		},
		MinReceived:           minReceived,
		AcknowledgeHighImpact: body.AcknowledgeHighImpact,
	}, 0, nil
}

// PreferencesRequestValidate decodes PUT /preferences. Omitted fields keep
// their default values.
func PreferencesRequestValidate(r *http.Request) (*preferences.Preferences, int, error) {
	p := preferences.Default()
	if code, err := decodeBody(r, &p); err != nil {
		return nil, code, err
	}
	return &p, 0, nil
}

func optionalDecimal(s, name string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.Errorf("bad %s", name)
	}
	return &v, nil
}

func decodeBody(r *http.Request, v any) (int, error) {
	if r.Body == nil {
		return http.StatusBadRequest, errors.New("empty body")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return http.StatusBadRequest, errors.New("empty body")
		}
		return http.StatusBadRequest, errors.Wrap(err, "bad body")
	}
	return 0, nil
}
