package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	maxTitleLen = 32
	maxBodyLen  = 128
)

// webhookPayload is the push notification body accepted by mini app hosts.
type webhookPayload struct {
	NotificationID string   `json:"notificationId"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	TargetURL      string   `json:"targetUrl"`
	Tokens         []string `json:"tokens"`
}

// WebhookNotifier POSTs notifications to a webhook URL, retrying transient
// failures with exponential backoff. 4xx responses are not retried.
type WebhookNotifier struct {
	url        string
	token      string
	targetURL  string
	client     *http.Client
	maxTries   uint
	newBackOff func() backoff.BackOff
	logger     *zap.Logger
}

// WebhookOption configures a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(w *WebhookNotifier) { w.client = c }
}

// WithMaxTries bounds delivery attempts.
func WithMaxTries(n uint) WebhookOption {
	return func(w *WebhookNotifier) {
		if n > 0 {
			w.maxTries = n
		}
	}
}

// WithInitialInterval sets the first retry delay.
func WithInitialInterval(d time.Duration) WebhookOption {
	return func(w *WebhookNotifier) {
		w.newBackOff = func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = d
			return b
		}
	}
}

// WithWebhookLogger sets the logger.
func WithWebhookLogger(l *zap.Logger) WebhookOption {
	return func(w *WebhookNotifier) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWebhookNotifier creates a notifier posting to url with the given
// subscription token. targetURL is where the notification leads the user.
func NewWebhookNotifier(url, token, targetURL string, opts ...WebhookOption) *WebhookNotifier {
	w := &WebhookNotifier{
		url:       url,
		token:     token,
		targetURL: targetURL,
		client:    &http.Client{Timeout: 5 * time.Second},
		maxTries:  3,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Notify implements Notifier.
func (w *WebhookNotifier) Notify(ctx context.Context, n Notification) error {
	body, err := json.Marshal(webhookPayload{
		NotificationID: uuid.NewString(),
		Title:          truncate(n.Title, maxTitleLen),
		Body:           truncate(n.Message, maxBodyLen),
		TargetURL:      w.targetURL,
		Tokens:         []string{w.token},
	})
	if err != nil {
		return errors.Wrap(err, "json.Marshal")
	}

	attempt := 0
	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		return struct{}{}, w.post(ctx, body)
	}, backoff.WithBackOff(w.newBackOff()), backoff.WithMaxTries(w.maxTries))
	if err != nil {
		w.logger.Warn("webhook delivery failed",
			zap.String("url", w.url),
			zap.Int("attempts", attempt),
			zap.Error(err),
		)
		return errors.Wrap(err, "webhook delivery")
	}
	return nil
}

func (w *WebhookNotifier) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(errors.Wrap(err, "http.NewRequestWithContext"))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "w.client.Do")
	}
	defer func(Body io.ReadCloser) {
		_, _ = io.Copy(io.Discard, Body)
		_ = Body.Close()
	}(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return backoff.Permanent(errors.Errorf("webhook rejected notification: %s", resp.Status))
	default:
		return errors.Errorf("webhook unavailable: %s", resp.Status)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
